package models

import "time"

// StudentFee is a persisted fee obligation for one student, one row per
// fee component of their course at admission time ('student_fees' table).
// Rows are created in bulk at admission and never regenerated when the
// course fee structure changes later.
type StudentFee struct {
	ID         int64     `json:"id" db:"id"`
	StudentID  int64     `json:"studentId" db:"student_id"`
	FeeType    string    `json:"feeType" db:"fee_type" example:"Tuition"`
	AmountDue  float64   `json:"amountDue" db:"amount_due" example:"50000"`
	AmountPaid float64   `json:"amountPaid" db:"amount_paid" example:"0"`
	Balance    float64   `json:"balance" db:"balance" example:"50000"`
	DueDate    time.Time `json:"dueDate" db:"due_date"`
	Status     FeeStatus `json:"status" db:"status" example:"PENDING"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
}

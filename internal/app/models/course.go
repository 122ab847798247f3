package models

// Course represents a course students are admitted into.
type Course struct {
	ID             int64  `json:"id" db:"id"`
	Name           string `json:"name" db:"name"`
	Code           string `json:"code" db:"code"`
	DurationMonths int    `json:"durationMonths" db:"duration_months"`
	IsActive       bool   `json:"isActive" db:"is_active"`

	// Relations (populated when needed)
	FeeStructure []*FeeComponent `json:"feeStructure,omitempty"`
}

// FeeComponent is one named charge in a course's fee structure,
// based on the 'fee_structure' table.
type FeeComponent struct {
	ID        int64   `json:"id" db:"id"`
	CourseID  int64   `json:"courseId" db:"course_id"`
	FeeType   string  `json:"feeType" db:"fee_type" example:"Tuition"`
	Amount    float64 `json:"amount" db:"amount" example:"50000"`
	Mandatory bool    `json:"mandatory" db:"mandatory"`
	IsActive  bool    `json:"isActive" db:"is_active"`
}

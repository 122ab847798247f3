package models

import (
	"fmt"
	"time"
)

// StudentIDPrefix is the prefix for generated student identifiers
const StudentIDPrefix = "CHS"

// Student defines the student model based on the 'students' table
type Student struct {
	ID            int64              `json:"id" db:"id" example:"1"`                      // Unique identifier for the student record
	UserID        int64              `json:"userId" db:"user_id" example:"5"`             // ID of the owning user account (1:1)
	StudentID     string             `json:"studentId" db:"student_id" example:"CHS-00042"` // Generated human-readable student ID
	FirstName     string             `json:"firstName" db:"first_name" example:"Alice"`
	LastName      string             `json:"lastName" db:"last_name" example:"Wanjiru"`
	IDType        IdentificationType `json:"idType" db:"id_type" example:"NATIONAL_ID"`
	IDNumber      string             `json:"idNumber" db:"id_number" example:"12345678"` // Unique together with IDType
	Phone         string             `json:"phone" db:"phone" example:"0712345678"`
	Gender        string             `json:"gender" db:"gender" example:"F"`
	DateOfBirth   time.Time          `json:"dateOfBirth" db:"date_of_birth"`
	CourseID      int64              `json:"courseId" db:"course_id" example:"2"`
	AdmissionDate time.Time          `json:"admissionDate" db:"admission_date"`
	IsActive      bool               `json:"isActive" db:"is_active" example:"true"`

	// Relations (populated when needed)
	User   *User   `json:"user,omitempty"`
	Course *Course `json:"course,omitempty"`
}

// FormatStudentID derives the human-readable student ID from the account's
// numeric id. Deriving from a monotonically increasing key guarantees
// uniqueness without random generation.
func FormatStudentID(userID int64) string {
	return fmt.Sprintf("%s-%05d", StudentIDPrefix, userID)
}

package dto

// AdmissionRequest carries the raw admission form fields. Field-level
// validation is performed by the admission service so that all errors are
// collected in one pass; binding here only enforces JSON shape.
type AdmissionRequest struct {
	FirstName   string `json:"firstName" example:"Alice"`
	LastName    string `json:"lastName" example:"Wanjiru"`
	IDType      string `json:"idType" example:"NATIONAL_ID" enums:"NATIONAL_ID,PASSPORT"`
	IDNumber    string `json:"idNumber" example:"12345678"`
	Phone       string `json:"phone" example:"0712345678"`
	Email       string `json:"email" example:"alice@example.com"`
	Gender      string `json:"gender" example:"F" enums:"M,F"`
	DateOfBirth string `json:"dateOfBirth" example:"2004-05-21"` // YYYY-MM-DD
	CourseID    int64  `json:"courseId" example:"2"`
}

// AdmissionResponse is the caller-facing confirmation of a committed admission
type AdmissionResponse struct {
	StudentID    string  `json:"studentId" example:"CHS-00042"`
	Username     string  `json:"username" example:"alice5678"`
	CourseCode   string  `json:"courseCode" example:"ICT-D"`
	TotalFeesDue float64 `json:"totalFeesDue" example:"55000"`
	Message      string  `json:"message" example:"Student CHS-00042 admitted. Total fees due: 55000.00"`
}

package dto

// CreateCourseRequest represents a request to register a new course
type CreateCourseRequest struct {
	Name           string `json:"name" binding:"required" example:"Diploma in ICT"`
	Code           string `json:"code" binding:"required" example:"ICT-D"`
	DurationMonths int    `json:"durationMonths" binding:"required,min=1" example:"24"`
}

// CreateFeeComponentRequest adds one charge to a course's fee structure
type CreateFeeComponentRequest struct {
	FeeType   string  `json:"feeType" binding:"required" example:"Tuition"`
	Amount    float64 `json:"amount" binding:"required,gt=0" example:"50000"`
	Mandatory bool    `json:"mandatory" example:"true"`
}

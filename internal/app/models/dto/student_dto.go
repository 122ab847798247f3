package dto

import "github.com/mkamau/collegehub/internal/app/models"

// StudentFeesResponse lists a student's fee obligations with the running totals
type StudentFeesResponse struct {
	StudentID    string               `json:"studentId" example:"CHS-00042"`
	Fees         []*models.StudentFee `json:"fees"`
	TotalDue     float64              `json:"totalDue" example:"55000"`
	TotalPaid    float64              `json:"totalPaid" example:"0"`
	TotalBalance float64              `json:"totalBalance" example:"55000"`
}

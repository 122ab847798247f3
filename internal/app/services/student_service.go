package services

import (
	"context"
	"fmt"

	"github.com/mkamau/collegehub/internal/app/models"
	"github.com/mkamau/collegehub/internal/app/models/dto"
	"github.com/mkamau/collegehub/internal/app/repositories"
)

// StudentService handles student read operations for the registrar portal
type StudentService struct {
	studentRepo repositories.IStudentRepository
	feeRepo     repositories.IStudentFeeRepository
}

// NewStudentService creates a new StudentService
func NewStudentService(studentRepo repositories.IStudentRepository, feeRepo repositories.IStudentFeeRepository) *StudentService {
	return &StudentService{
		studentRepo: studentRepo,
		feeRepo:     feeRepo,
	}
}

// GetStudent retrieves a student by the generated student ID
func (s *StudentService) GetStudent(ctx context.Context, studentID string) (*models.Student, error) {
	return s.studentRepo.GetStudentByStudentID(ctx, studentID)
}

// ListStudents retrieves all students
func (s *StudentService) ListStudents(ctx context.Context) ([]*models.Student, error) {
	return s.studentRepo.ListStudents(ctx)
}

// GetStudentFees retrieves a student's fee rows with running totals
func (s *StudentService) GetStudentFees(ctx context.Context, studentID string) (*dto.StudentFeesResponse, error) {
	student, err := s.studentRepo.GetStudentByStudentID(ctx, studentID)
	if err != nil {
		return nil, err
	}

	fees, err := s.feeRepo.GetFeesByStudentID(ctx, student.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load student fees: %w", err)
	}

	resp := &dto.StudentFeesResponse{
		StudentID: student.StudentID,
		Fees:      fees,
	}
	for _, fee := range fees {
		resp.TotalDue += fee.AmountDue
		resp.TotalPaid += fee.AmountPaid
		resp.TotalBalance += fee.Balance
	}

	return resp, nil
}

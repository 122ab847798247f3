package services

import (
	"context"
	"fmt"

	"github.com/mkamau/collegehub/internal/app/models"
	"github.com/mkamau/collegehub/internal/app/models/dto"
	"github.com/mkamau/collegehub/internal/app/repositories"
)

// CourseService handles course and fee-structure operations
type CourseService struct {
	courseRepo repositories.ICourseRepository
}

// NewCourseService creates a new CourseService
func NewCourseService(courseRepo repositories.ICourseRepository) *CourseService {
	return &CourseService{courseRepo: courseRepo}
}

// CreateCourse registers a new course
func (s *CourseService) CreateCourse(ctx context.Context, req *dto.CreateCourseRequest) (*models.Course, error) {
	course := &models.Course{
		Name:           req.Name,
		Code:           req.Code,
		DurationMonths: req.DurationMonths,
		IsActive:       true,
	}

	id, err := s.courseRepo.CreateCourse(ctx, course)
	if err != nil {
		return nil, err
	}
	course.ID = id

	return course, nil
}

// GetAllCourses retrieves all courses
func (s *CourseService) GetAllCourses(ctx context.Context) ([]*models.Course, error) {
	return s.courseRepo.GetAllCourses(ctx)
}

// GetCourseWithFees retrieves a course together with its full fee structure
func (s *CourseService) GetCourseWithFees(ctx context.Context, id int64) (*models.Course, error) {
	course, err := s.courseRepo.GetCourseByID(ctx, id)
	if err != nil {
		return nil, err
	}

	components, err := s.courseRepo.GetFeeComponents(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load fee structure: %w", err)
	}
	course.FeeStructure = components

	return course, nil
}

// AddFeeComponent adds one charge to an existing course's fee structure.
// Fee rows already invoiced against students are never touched.
func (s *CourseService) AddFeeComponent(ctx context.Context, courseID int64, req *dto.CreateFeeComponentRequest) (*models.FeeComponent, error) {
	if _, err := s.courseRepo.GetCourseByID(ctx, courseID); err != nil {
		return nil, err
	}

	component := &models.FeeComponent{
		CourseID:  courseID,
		FeeType:   req.FeeType,
		Amount:    req.Amount,
		Mandatory: req.Mandatory,
		IsActive:  true,
	}

	id, err := s.courseRepo.CreateFeeComponent(ctx, component)
	if err != nil {
		return nil, err
	}
	component.ID = id

	return component, nil
}

package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mkamau/collegehub/internal/app/models"
	"github.com/mkamau/collegehub/internal/db"
	"github.com/mkamau/collegehub/internal/pkg/apperrors"
	"github.com/mkamau/collegehub/internal/pkg/dberrors"
)

// ICourseRepository defines the interface for course-related database operations
type ICourseRepository interface {
	CreateCourse(ctx context.Context, course *models.Course) (int64, error)
	GetCourseByID(ctx context.Context, id int64) (*models.Course, error)
	GetAllCourses(ctx context.Context) ([]*models.Course, error)
	CreateFeeComponent(ctx context.Context, component *models.FeeComponent) (int64, error)
	GetFeeComponents(ctx context.Context, courseID int64) ([]*models.FeeComponent, error)
	GetActiveFeeComponents(ctx context.Context, courseID int64) ([]*models.FeeComponent, error)
}

// CourseRepository handles course and fee-structure database operations
type CourseRepository struct {
	db db.DBTX
}

// NewCourseRepository creates a new CourseRepository
func NewCourseRepository(pool *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{db: pool}
}

// CreateCourse creates a new course and returns its id
func (r *CourseRepository) CreateCourse(ctx context.Context, course *models.Course) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO courses (name, code, duration_months, is_active)
		VALUES ($1, $2, $3, $4)
		RETURNING id`,
		course.Name, course.Code, course.DurationMonths, course.IsActive).Scan(&id)

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "courses_code_key") {
			return 0, apperrors.ErrCourseAlreadyExists
		}
		return 0, fmt.Errorf("error creating course: %w", err)
	}

	return id, nil
}

// GetCourseByID retrieves a course by ID
func (r *CourseRepository) GetCourseByID(ctx context.Context, id int64) (*models.Course, error) {
	course := &models.Course{}
	err := r.db.QueryRow(ctx, `
		SELECT id, name, code, duration_months, is_active
		FROM courses
		WHERE id = $1`,
		id).Scan(&course.ID, &course.Name, &course.Code, &course.DurationMonths, &course.IsActive)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error fetching course: %w", err)
	}

	return course, nil
}

// GetAllCourses retrieves all courses
func (r *CourseRepository) GetAllCourses(ctx context.Context) ([]*models.Course, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, code, duration_months, is_active
		FROM courses
		ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("error listing courses: %w", err)
	}
	defer rows.Close()

	var courses []*models.Course
	for rows.Next() {
		course := &models.Course{}
		if err := rows.Scan(&course.ID, &course.Name, &course.Code, &course.DurationMonths, &course.IsActive); err != nil {
			return nil, fmt.Errorf("error scanning course: %w", err)
		}
		courses = append(courses, course)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating courses: %w", err)
	}

	return courses, nil
}

// CreateFeeComponent adds a charge to a course's fee structure
func (r *CourseRepository) CreateFeeComponent(ctx context.Context, component *models.FeeComponent) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO fee_structure (course_id, fee_type, amount, mandatory, is_active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		component.CourseID, component.FeeType, component.Amount, component.Mandatory, component.IsActive).Scan(&id)

	if err != nil {
		return 0, fmt.Errorf("error creating fee component: %w", err)
	}

	return id, nil
}

// GetFeeComponents retrieves a course's full fee structure
func (r *CourseRepository) GetFeeComponents(ctx context.Context, courseID int64) ([]*models.FeeComponent, error) {
	return r.queryFeeComponents(ctx, `
		SELECT id, course_id, fee_type, amount, mandatory, is_active
		FROM fee_structure
		WHERE course_id = $1
		ORDER BY id`, courseID)
}

// GetActiveFeeComponents retrieves the active fee components of a course,
// in insertion order. An empty result is valid: a course with no fees.
func (r *CourseRepository) GetActiveFeeComponents(ctx context.Context, courseID int64) ([]*models.FeeComponent, error) {
	return r.queryFeeComponents(ctx, `
		SELECT id, course_id, fee_type, amount, mandatory, is_active
		FROM fee_structure
		WHERE course_id = $1 AND is_active = TRUE
		ORDER BY id`, courseID)
}

func (r *CourseRepository) queryFeeComponents(ctx context.Context, query string, courseID int64) ([]*models.FeeComponent, error) {
	rows, err := r.db.Query(ctx, query, courseID)
	if err != nil {
		return nil, fmt.Errorf("error listing fee components: %w", err)
	}
	defer rows.Close()

	var components []*models.FeeComponent
	for rows.Next() {
		c := &models.FeeComponent{}
		if err := rows.Scan(&c.ID, &c.CourseID, &c.FeeType, &c.Amount, &c.Mandatory, &c.IsActive); err != nil {
			return nil, fmt.Errorf("error scanning fee component: %w", err)
		}
		components = append(components, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating fee components: %w", err)
	}

	return components, nil
}

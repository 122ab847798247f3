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
)

// IStudentRepository defines the interface for student-related database operations
type IStudentRepository interface {
	CreateStudent(ctx context.Context, student *models.Student) (int64, error)
	GetStudentByStudentID(ctx context.Context, studentID string) (*models.Student, error)
	IdentificationExists(ctx context.Context, idType models.IdentificationType, idNumber string) (bool, error)
	ListStudents(ctx context.Context) ([]*models.Student, error)
}

// StudentRepository handles student database operations
type StudentRepository struct {
	db db.DBTX
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(pool *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{db: pool}
}

// WithTx returns a copy of the repository that runs inside the given transaction
func (r *StudentRepository) WithTx(tx pgx.Tx) *StudentRepository {
	return &StudentRepository{db: tx}
}

const studentColumns = `id, user_id, student_id, first_name, last_name, id_type, id_number,
	phone, gender, date_of_birth, course_id, admission_date, is_active`

func scanStudent(row pgx.Row) (*models.Student, error) {
	s := &models.Student{}
	err := row.Scan(
		&s.ID, &s.UserID, &s.StudentID, &s.FirstName, &s.LastName, &s.IDType, &s.IDNumber,
		&s.Phone, &s.Gender, &s.DateOfBirth, &s.CourseID, &s.AdmissionDate, &s.IsActive)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// CreateStudent creates a new student record and returns its id
func (r *StudentRepository) CreateStudent(ctx context.Context, student *models.Student) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO students (user_id, student_id, first_name, last_name, id_type, id_number,
			phone, gender, date_of_birth, course_id, admission_date, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id`,
		student.UserID, student.StudentID, student.FirstName, student.LastName,
		student.IDType, student.IDNumber, student.Phone, student.Gender,
		student.DateOfBirth, student.CourseID, student.AdmissionDate, student.IsActive).Scan(&id)

	if err != nil {
		return 0, fmt.Errorf("error creating student: %w", err)
	}

	return id, nil
}

// GetStudentByStudentID retrieves a student by the generated student ID
func (r *StudentRepository) GetStudentByStudentID(ctx context.Context, studentID string) (*models.Student, error) {
	student, err := scanStudent(r.db.QueryRow(ctx, `
		SELECT `+studentColumns+`
		FROM students
		WHERE student_id = $1`,
		studentID))

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error fetching student: %w", err)
	}

	return student, nil
}

// IdentificationExists checks if a student with the same identification is already registered
func (r *StudentRepository) IdentificationExists(ctx context.Context, idType models.IdentificationType, idNumber string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM students WHERE id_type = $1 AND id_number = $2)`,
		idType, idNumber).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking identification: %w", err)
	}

	return exists, nil
}

// ListStudents retrieves all students, most recently admitted first
func (r *StudentRepository) ListStudents(ctx context.Context) ([]*models.Student, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+studentColumns+`
		FROM students
		ORDER BY admission_date DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("error listing students: %w", err)
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		s, err := scanStudent(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning student: %w", err)
		}
		students = append(students, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating students: %w", err)
	}

	return students, nil
}

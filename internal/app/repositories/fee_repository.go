package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mkamau/collegehub/internal/app/models"
	"github.com/mkamau/collegehub/internal/db"
)

// IStudentFeeRepository defines the interface for student fee database operations
type IStudentFeeRepository interface {
	CreateStudentFee(ctx context.Context, fee *models.StudentFee) (int64, error)
	GetFeesByStudentID(ctx context.Context, studentID int64) ([]*models.StudentFee, error)
}

// StudentFeeRepository handles student fee database operations
type StudentFeeRepository struct {
	db db.DBTX
}

// NewStudentFeeRepository creates a new StudentFeeRepository
func NewStudentFeeRepository(pool *pgxpool.Pool) *StudentFeeRepository {
	return &StudentFeeRepository{db: pool}
}

// WithTx returns a copy of the repository that runs inside the given transaction
func (r *StudentFeeRepository) WithTx(tx pgx.Tx) *StudentFeeRepository {
	return &StudentFeeRepository{db: tx}
}

// CreateStudentFee persists one fee obligation row
func (r *StudentFeeRepository) CreateStudentFee(ctx context.Context, fee *models.StudentFee) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO student_fees (student_id, fee_type, amount_due, amount_paid, balance, due_date, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`,
		fee.StudentID, fee.FeeType, fee.AmountDue, fee.AmountPaid, fee.Balance, fee.DueDate, fee.Status).Scan(&id)

	if err != nil {
		return 0, fmt.Errorf("error creating student fee: %w", err)
	}

	return id, nil
}

// GetFeesByStudentID retrieves all fee rows for a student
func (r *StudentFeeRepository) GetFeesByStudentID(ctx context.Context, studentID int64) ([]*models.StudentFee, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, student_id, fee_type, amount_due, amount_paid, balance, due_date, status, created_at
		FROM student_fees
		WHERE student_id = $1
		ORDER BY id`,
		studentID)
	if err != nil {
		return nil, fmt.Errorf("error listing student fees: %w", err)
	}
	defer rows.Close()

	var fees []*models.StudentFee
	for rows.Next() {
		fee := &models.StudentFee{}
		if err := rows.Scan(&fee.ID, &fee.StudentID, &fee.FeeType, &fee.AmountDue,
			&fee.AmountPaid, &fee.Balance, &fee.DueDate, &fee.Status, &fee.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning student fee: %w", err)
		}
		fees = append(fees, fee)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating student fees: %w", err)
	}

	return fees, nil
}

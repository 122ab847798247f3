package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mkamau/collegehub/internal/app/models"
	"github.com/mkamau/collegehub/internal/db"
)

// AdmissionTx groups the writes that must happen atomically when a student
// is admitted. All three run on the same database transaction.
type AdmissionTx interface {
	CreateUser(ctx context.Context, user *models.User) (int64, error)
	CreateStudent(ctx context.Context, student *models.Student) (int64, error)
	CreateStudentFee(ctx context.Context, fee *models.StudentFee) (int64, error)
}

// IAdmissionStore is everything the admission workflow needs from the
// database: read-only pre-checks on the pool, and an atomic transaction
// for the writes.
type IAdmissionStore interface {
	EmailExists(ctx context.Context, email string) (bool, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
	IdentificationExists(ctx context.Context, idType models.IdentificationType, idNumber string) (bool, error)
	GetCourseByID(ctx context.Context, id int64) (*models.Course, error)
	GetActiveFeeComponents(ctx context.Context, courseID int64) ([]*models.FeeComponent, error)
	InTransaction(ctx context.Context, fn func(tx AdmissionTx) error) error
}

// AdmissionStore implements IAdmissionStore over pgx
type AdmissionStore struct {
	pool     *pgxpool.Pool
	users    *UserRepository
	students *StudentRepository
	courses  *CourseRepository
	fees     *StudentFeeRepository
}

// NewAdmissionStore creates a new AdmissionStore
func NewAdmissionStore(pool *pgxpool.Pool) *AdmissionStore {
	return &AdmissionStore{
		pool:     pool,
		users:    NewUserRepository(pool),
		students: NewStudentRepository(pool),
		courses:  NewCourseRepository(pool),
		fees:     NewStudentFeeRepository(pool),
	}
}

// EmailExists checks if an email is already registered
func (s *AdmissionStore) EmailExists(ctx context.Context, email string) (bool, error) {
	return s.users.EmailExists(ctx, email)
}

// UsernameExists checks if a username is already taken
func (s *AdmissionStore) UsernameExists(ctx context.Context, username string) (bool, error) {
	return s.users.UsernameExists(ctx, username)
}

// IdentificationExists checks if an identification is already registered
func (s *AdmissionStore) IdentificationExists(ctx context.Context, idType models.IdentificationType, idNumber string) (bool, error) {
	return s.students.IdentificationExists(ctx, idType, idNumber)
}

// GetCourseByID retrieves a course by ID
func (s *AdmissionStore) GetCourseByID(ctx context.Context, id int64) (*models.Course, error) {
	return s.courses.GetCourseByID(ctx, id)
}

// GetActiveFeeComponents retrieves the active fee components of a course
func (s *AdmissionStore) GetActiveFeeComponents(ctx context.Context, courseID int64) ([]*models.FeeComponent, error) {
	return s.courses.GetActiveFeeComponents(ctx, courseID)
}

// admissionTx binds the write repositories to one pgx transaction
type admissionTx struct {
	users    *UserRepository
	students *StudentRepository
	fees     *StudentFeeRepository
}

func (t *admissionTx) CreateUser(ctx context.Context, user *models.User) (int64, error) {
	return t.users.CreateUser(ctx, user)
}

func (t *admissionTx) CreateStudent(ctx context.Context, student *models.Student) (int64, error) {
	return t.students.CreateStudent(ctx, student)
}

func (t *admissionTx) CreateStudentFee(ctx context.Context, fee *models.StudentFee) (int64, error) {
	return t.fees.CreateStudentFee(ctx, fee)
}

// InTransaction runs fn within one database transaction. Any error from fn
// rolls back every write made through the AdmissionTx it received.
func (s *AdmissionStore) InTransaction(ctx context.Context, fn func(tx AdmissionTx) error) error {
	return db.WithTransaction(ctx, s.pool, func(ctx context.Context, tx pgx.Tx) error {
		return fn(&admissionTx{
			users:    s.users.WithTx(tx),
			students: s.students.WithTx(tx),
			fees:     s.fees.WithTx(tx),
		})
	})
}

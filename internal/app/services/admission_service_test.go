package services

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkamau/collegehub/internal/app/models"
	"github.com/mkamau/collegehub/internal/app/models/dto"
	"github.com/mkamau/collegehub/internal/app/repositories"
	"github.com/mkamau/collegehub/internal/pkg/apperrors"
)

// fakeStore implements repositories.IAdmissionStore in memory. Writes made
// through the transaction are staged and only become visible when the
// transaction function returns nil, mirroring commit/rollback semantics.
type fakeStore struct {
	usernames map[string]bool
	emails    map[string]bool
	idents    map[string]bool

	course     *models.Course
	components []*models.FeeComponent

	allUsernamesTaken bool
	createUserErr     error
	createStudentErr  error
	createFeeErr      error

	nextID int64

	// committed state
	users    []*models.User
	students []*models.Student
	fees     []*models.StudentFee
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		usernames: map[string]bool{},
		emails:    map[string]bool{},
		idents:    map[string]bool{},
		course: &models.Course{
			ID:             1,
			Name:           "Information Communication Technology",
			Code:           "ICT",
			DurationMonths: 24,
			IsActive:       true,
		},
		components: []*models.FeeComponent{
			{ID: 1, CourseID: 1, FeeType: "TUITION", Amount: 50000, Mandatory: true, IsActive: true},
			{ID: 2, CourseID: 1, FeeType: "EXAMINATION", Amount: 5000, Mandatory: true, IsActive: true},
		},
		nextID: 41,
	}
}

func identKey(idType models.IdentificationType, idNumber string) string {
	return string(idType) + ":" + idNumber
}

func (s *fakeStore) EmailExists(ctx context.Context, email string) (bool, error) {
	return s.emails[email], nil
}

func (s *fakeStore) UsernameExists(ctx context.Context, username string) (bool, error) {
	if s.allUsernamesTaken {
		return true, nil
	}
	return s.usernames[username], nil
}

func (s *fakeStore) IdentificationExists(ctx context.Context, idType models.IdentificationType, idNumber string) (bool, error) {
	return s.idents[identKey(idType, idNumber)], nil
}

func (s *fakeStore) GetCourseByID(ctx context.Context, id int64) (*models.Course, error) {
	if s.course == nil || s.course.ID != id {
		return nil, apperrors.ErrCourseNotFound
	}
	return s.course, nil
}

func (s *fakeStore) GetActiveFeeComponents(ctx context.Context, courseID int64) ([]*models.FeeComponent, error) {
	var active []*models.FeeComponent
	for _, c := range s.components {
		if c.CourseID == courseID && c.IsActive {
			active = append(active, c)
		}
	}
	return active, nil
}

func (s *fakeStore) InTransaction(ctx context.Context, fn func(tx repositories.AdmissionTx) error) error {
	tx := &fakeTx{store: s}
	if err := fn(tx); err != nil {
		// Staged writes are discarded
		return err
	}
	s.users = append(s.users, tx.users...)
	s.students = append(s.students, tx.students...)
	s.fees = append(s.fees, tx.fees...)
	return nil
}

// fakeTx stages writes until the surrounding fake transaction commits
type fakeTx struct {
	store    *fakeStore
	users    []*models.User
	students []*models.Student
	fees     []*models.StudentFee
}

func (t *fakeTx) CreateUser(ctx context.Context, user *models.User) (int64, error) {
	if t.store.createUserErr != nil {
		return 0, t.store.createUserErr
	}
	t.store.nextID++
	user.ID = t.store.nextID
	t.users = append(t.users, user)
	return user.ID, nil
}

func (t *fakeTx) CreateStudent(ctx context.Context, student *models.Student) (int64, error) {
	if t.store.createStudentErr != nil {
		return 0, t.store.createStudentErr
	}
	t.store.nextID++
	student.ID = t.store.nextID
	t.students = append(t.students, student)
	return student.ID, nil
}

func (t *fakeTx) CreateStudentFee(ctx context.Context, fee *models.StudentFee) (int64, error) {
	if t.store.createFeeErr != nil {
		return 0, t.store.createFeeErr
	}
	t.store.nextID++
	fee.ID = t.store.nextID
	t.fees = append(t.fees, fee)
	return fee.ID, nil
}

type sentMail struct {
	toEmail      string
	studentID    string
	username     string
	tempPassword string
	totalDue     float64
}

type fakeMailer struct {
	sent []sentMail
	err  error
}

func (m *fakeMailer) SendAdmissionEmail(toEmail, toName, studentID, username, tempPassword string, totalDue float64) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, sentMail{
		toEmail:      toEmail,
		studentID:    studentID,
		username:     username,
		tempPassword: tempPassword,
		totalDue:     totalDue,
	})
	return nil
}

type fakeActivity struct {
	entries []string
	err     error
}

func (a *fakeActivity) LogActivity(ctx context.Context, actorID int64, eventType, description string) error {
	if a.err != nil {
		return a.err
	}
	a.entries = append(a.entries, eventType+": "+description)
	return nil
}

func (a *fakeActivity) ListRecent(ctx context.Context, limit int) ([]*models.ActivityLog, error) {
	return nil, nil
}

var testNow = time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

func newTestService(store *fakeStore, activity *fakeActivity, mailer *fakeMailer) *AdmissionService {
	svc := NewAdmissionService(store, activity, mailer, zerolog.Nop())
	svc.now = func() time.Time { return testNow }
	return svc
}

func validRequest() *dto.AdmissionRequest {
	return &dto.AdmissionRequest{
		FirstName:   "Jane",
		LastName:    "Wanjiku",
		IDType:      "NATIONAL_ID",
		IDNumber:    "12345678",
		Phone:       "0712345678",
		Email:       "jane@example.com",
		Gender:      "F",
		DateOfBirth: "2000-05-10",
		CourseID:    1,
	}
}

func TestAdmitStudent_Success(t *testing.T) {
	store := newFakeStore()
	activity := &fakeActivity{}
	mailer := &fakeMailer{}
	svc := newTestService(store, activity, mailer)

	resp, err := svc.AdmitStudent(context.Background(), 7, validRequest())
	require.NoError(t, err)

	assert.Equal(t, "CHS-00042", resp.StudentID)
	assert.Equal(t, "jane5678", resp.Username)
	assert.Equal(t, "ICT", resp.CourseCode)
	assert.Equal(t, 55000.0, resp.TotalFeesDue)

	require.Len(t, store.users, 1)
	user := store.users[0]
	assert.Equal(t, "jane5678", user.Username)
	assert.Equal(t, "jane@example.com", user.Email)
	assert.Equal(t, models.RoleStudent, user.Role)
	assert.True(t, user.IsActive)
	assert.NotEmpty(t, user.Password, "password hash should be set")

	require.Len(t, store.students, 1)
	student := store.students[0]
	assert.Equal(t, "CHS-00042", student.StudentID)
	assert.Equal(t, user.ID, student.UserID)
	assert.Equal(t, testNow, student.AdmissionDate)

	require.Len(t, store.fees, 2)
	for _, fee := range store.fees {
		assert.Equal(t, student.ID, fee.StudentID)
		assert.Equal(t, models.FeeStatusPending, fee.Status)
		assert.Equal(t, fee.AmountDue, fee.Balance)
		assert.Equal(t, testNow.AddDate(0, 0, 30), fee.DueDate)
	}
	assert.Equal(t, "TUITION", store.fees[0].FeeType)
	assert.Equal(t, 50000.0, store.fees[0].AmountDue)
	assert.Equal(t, "EXAMINATION", store.fees[1].FeeType)
	assert.Equal(t, 5000.0, store.fees[1].AmountDue)

	require.Len(t, mailer.sent, 1)
	assert.Equal(t, "jane@example.com", mailer.sent[0].toEmail)
	assert.Equal(t, "jane5678", mailer.sent[0].username)
	assert.NotEmpty(t, mailer.sent[0].tempPassword)
	assert.Equal(t, 55000.0, mailer.sent[0].totalDue)

	require.Len(t, activity.entries, 1)
	assert.Contains(t, activity.entries[0], EventStudentAdmitted)
	assert.Contains(t, activity.entries[0], "CHS-00042")
}

func TestAdmitStudent_EmptyFeeStructure(t *testing.T) {
	store := newFakeStore()
	store.components = nil
	svc := newTestService(store, &fakeActivity{}, &fakeMailer{})

	resp, err := svc.AdmitStudent(context.Background(), 7, validRequest())
	require.NoError(t, err)

	assert.Equal(t, 0.0, resp.TotalFeesDue)
	assert.Len(t, store.fees, 0)
	assert.Len(t, store.students, 1)
}

func TestAdmitStudent_RollbackOnFeeFailure(t *testing.T) {
	store := newFakeStore()
	store.createFeeErr = errors.New("disk full")
	mailer := &fakeMailer{}
	activity := &fakeActivity{}
	svc := newTestService(store, activity, mailer)

	_, err := svc.AdmitStudent(context.Background(), 7, validRequest())
	require.ErrorIs(t, err, apperrors.ErrAdmissionFailed)

	// Nothing partial may survive a failed transaction
	assert.Len(t, store.users, 0)
	assert.Len(t, store.students, 0)
	assert.Len(t, store.fees, 0)
	assert.Len(t, mailer.sent, 0)
	assert.Len(t, activity.entries, 0)
}

func TestAdmitStudent_DuplicateIdentification(t *testing.T) {
	store := newFakeStore()
	store.idents[identKey(models.IDTypeNational, "12345678")] = true
	svc := newTestService(store, &fakeActivity{}, &fakeMailer{})

	_, err := svc.AdmitStudent(context.Background(), 7, validRequest())

	verr, ok := apperrors.AsValidationError(err)
	require.True(t, ok, "expected a validation error, got %v", err)
	assert.Contains(t, verr.Fields, "idNumber")
	assert.Len(t, store.users, 0)
}

func TestAdmitStudent_DuplicateEmail(t *testing.T) {
	store := newFakeStore()
	store.emails["jane@example.com"] = true
	svc := newTestService(store, &fakeActivity{}, &fakeMailer{})

	_, err := svc.AdmitStudent(context.Background(), 7, validRequest())

	verr, ok := apperrors.AsValidationError(err)
	require.True(t, ok)
	assert.Contains(t, verr.Fields, "email")
}

func TestAdmitStudent_LateDuplicateAtCommit(t *testing.T) {
	// Another admission won the race between the pre-check and the insert.
	// The constraint violation must surface as the same field error.
	store := newFakeStore()
	store.createUserErr = &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}
	svc := newTestService(store, &fakeActivity{}, &fakeMailer{})

	_, err := svc.AdmitStudent(context.Background(), 7, validRequest())

	verr, ok := apperrors.AsValidationError(err)
	require.True(t, ok)
	assert.Contains(t, verr.Fields, "email")
	assert.Len(t, store.users, 0)
}

func TestAdmitStudent_CollectsAllFieldErrors(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store, &fakeActivity{}, &fakeMailer{})

	_, err := svc.AdmitStudent(context.Background(), 7, &dto.AdmissionRequest{
		FirstName:   "",
		LastName:    "",
		IDType:      "DRIVING_LICENSE",
		IDNumber:    "x",
		Phone:       "123",
		Email:       "not-an-email",
		Gender:      "X",
		DateOfBirth: "garbage",
		CourseID:    0,
	})

	verr, ok := apperrors.AsValidationError(err)
	require.True(t, ok)
	for _, field := range []string{
		"firstName", "lastName", "idType", "phone", "email", "gender", "dateOfBirth", "courseId",
	} {
		assert.Contains(t, verr.Fields, field)
	}
}

func TestAdmitStudent_AgeBoundary(t *testing.T) {
	cases := []struct {
		name        string
		dateOfBirth string
		wantOK      bool
	}{
		{"exactly sixteen today", "2010-09-01", true},
		{"sixteen tomorrow", "2010-09-02", false},
		{"well over sixteen", "1990-01-15", true},
		{"future date", "2030-01-01", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := newFakeStore()
			svc := newTestService(store, &fakeActivity{}, &fakeMailer{})

			req := validRequest()
			req.DateOfBirth = tc.dateOfBirth

			_, err := svc.AdmitStudent(context.Background(), 7, req)
			if tc.wantOK {
				assert.NoError(t, err)
			} else {
				verr, ok := apperrors.AsValidationError(err)
				require.True(t, ok)
				assert.Contains(t, verr.Fields, "dateOfBirth")
			}
		})
	}
}

func TestAdmitStudent_CourseNotFound(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store, &fakeActivity{}, &fakeMailer{})

	req := validRequest()
	req.CourseID = 99

	_, err := svc.AdmitStudent(context.Background(), 7, req)

	verr, ok := apperrors.AsValidationError(err)
	require.True(t, ok)
	assert.Contains(t, verr.Fields, "courseId")
}

func TestAdmitStudent_InactiveCourse(t *testing.T) {
	store := newFakeStore()
	store.course.IsActive = false
	svc := newTestService(store, &fakeActivity{}, &fakeMailer{})

	_, err := svc.AdmitStudent(context.Background(), 7, validRequest())

	verr, ok := apperrors.AsValidationError(err)
	require.True(t, ok)
	assert.Contains(t, verr.Fields, "courseId")
}

func TestAdmitStudent_EmailFailureDoesNotFailAdmission(t *testing.T) {
	store := newFakeStore()
	mailer := &fakeMailer{err: errors.New("smtp unreachable")}
	svc := newTestService(store, &fakeActivity{}, mailer)

	resp, err := svc.AdmitStudent(context.Background(), 7, validRequest())
	require.NoError(t, err)

	// The admission is committed even though the email never went out
	assert.Equal(t, "CHS-00042", resp.StudentID)
	assert.Len(t, store.users, 1)
	assert.Len(t, store.fees, 2)
}

func TestAdmitStudent_AuditFailureDoesNotFailAdmission(t *testing.T) {
	store := newFakeStore()
	activity := &fakeActivity{err: errors.New("audit table locked")}
	svc := newTestService(store, activity, &fakeMailer{})

	_, err := svc.AdmitStudent(context.Background(), 7, validRequest())
	require.NoError(t, err)
	assert.Len(t, store.users, 1)
}

func TestAllocateUsername_Collisions(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store, &fakeActivity{}, &fakeMailer{})

	username, err := svc.allocateUsername(context.Background(), "Alice", "00001234")
	require.NoError(t, err)
	assert.Equal(t, "alice1234", username)

	store.usernames["alice1234"] = true
	username, err = svc.allocateUsername(context.Background(), "Alice", "00001234")
	require.NoError(t, err)
	assert.Equal(t, "alice12341", username)

	store.usernames["alice12341"] = true
	username, err = svc.allocateUsername(context.Background(), "Alice", "00001234")
	require.NoError(t, err)
	assert.Equal(t, "alice12342", username)
}

func TestAllocateUsername_ShortIDNumber(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store, &fakeActivity{}, &fakeMailer{})

	username, err := svc.allocateUsername(context.Background(), "Bob", "A12")
	require.NoError(t, err)
	assert.Equal(t, "boba12", username)
}

func TestAllocateUsername_Exhausted(t *testing.T) {
	store := newFakeStore()
	store.allUsernamesTaken = true
	svc := newTestService(store, &fakeActivity{}, &fakeMailer{})

	_, err := svc.allocateUsername(context.Background(), "Alice", "00001234")
	require.ErrorIs(t, err, apperrors.ErrUsernameExhausted)
}

func TestFormatStudentID(t *testing.T) {
	assert.Equal(t, "CHS-00042", models.FormatStudentID(42))
	assert.Equal(t, "CHS-00001", models.FormatStudentID(1))
	assert.Equal(t, "CHS-123456", models.FormatStudentID(123456))
	assert.Equal(t, fmt.Sprintf("%s-00007", models.StudentIDPrefix), models.FormatStudentID(7))
}

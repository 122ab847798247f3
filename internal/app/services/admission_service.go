package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/mkamau/collegehub/internal/app/models"
	"github.com/mkamau/collegehub/internal/app/models/dto"
	"github.com/mkamau/collegehub/internal/app/repositories"
	"github.com/mkamau/collegehub/internal/pkg/apperrors"
	"github.com/mkamau/collegehub/internal/pkg/auth"
	"github.com/mkamau/collegehub/internal/pkg/dberrors"
	"github.com/mkamau/collegehub/internal/pkg/email"
	"github.com/mkamau/collegehub/internal/pkg/validation"
)

// Unique constraint names the admission transaction can trip over. A late
// duplicate caught at commit must surface exactly like the pre-write check.
const (
	constraintUsersEmail    = "users_email_key"
	constraintUsersUsername = "users_username_key"
	constraintStudentsIdent = "students_id_type_id_number_key"
)

// feeDueOffsetDays is the payment window granted at admission
const feeDueOffsetDays = 30

// EventStudentAdmitted is the audit trail event type for admissions
const EventStudentAdmitted = "STUDENT_ADMITTED"

const dateLayout = "2006-01-02"

// AdmissionService orchestrates the admission workflow: validation, account
// and student creation, and invoice generation in one transaction, followed
// by best-effort notification.
type AdmissionService struct {
	store    repositories.IAdmissionStore
	activity repositories.IActivityRepository
	mailer   email.Service
	logger   zerolog.Logger

	// now is time.Now outside of tests
	now func() time.Time
}

// NewAdmissionService creates a new AdmissionService
func NewAdmissionService(
	store repositories.IAdmissionStore,
	activity repositories.IActivityRepository,
	mailer email.Service,
	logger zerolog.Logger,
) *AdmissionService {
	return &AdmissionService{
		store:    store,
		activity: activity,
		mailer:   mailer,
		logger:   logger,
		now:      time.Now,
	}
}

// admissionInput is the validated, parsed form
type admissionInput struct {
	firstName   string
	lastName    string
	idType      models.IdentificationType
	idNumber    string
	phone       string
	email       string
	gender      string
	dateOfBirth time.Time
	courseID    int64
}

// AdmitStudent runs the full admission workflow on behalf of actorID (the
// registrar performing the admission). On success the account, student
// record and fee rows all exist; on any failure before commit none of them
// do. Post-commit notification failures never fail the admission.
func (s *AdmissionService) AdmitStudent(ctx context.Context, actorID int64, req *dto.AdmissionRequest) (*dto.AdmissionResponse, error) {
	// Step 1: validate. Nothing has been persisted; every field problem is
	// collected and reported together.
	input, verr, err := s.validate(ctx, req)
	if err != nil {
		s.logger.Error().Err(err).Msg("Admission pre-checks failed")
		return nil, apperrors.ErrAdmissionFailed
	}
	if verr.HasErrors() {
		return nil, verr
	}

	// Allocate the login identity before opening the transaction: the probe
	// is read-only and keeps the write transaction short.
	username, err := s.allocateUsername(ctx, input.firstName, input.idNumber)
	if err != nil {
		return nil, err
	}

	tempPassword, err := auth.GenerateTempPassword()
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to generate temporary password")
		return nil, apperrors.ErrAdmissionFailed
	}
	passwordHash, err := auth.HashPassword(tempPassword)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to hash temporary password")
		return nil, apperrors.ErrAdmissionFailed
	}

	// Fee structure snapshot for the chosen course. Missing course aborts;
	// an empty fee structure does not.
	course, err := s.store.GetCourseByID(ctx, input.courseID)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrCourseNotFound) {
			verr.Add("courseId", "Selected course does not exist")
			return nil, verr
		}
		s.logger.Error().Err(err).Int64("courseId", input.courseID).Msg("Failed to load course")
		return nil, apperrors.ErrAdmissionFailed
	}
	if !course.IsActive {
		verr.Add("courseId", "Selected course is not accepting admissions")
		return nil, verr
	}

	components, err := s.store.GetActiveFeeComponents(ctx, input.courseID)
	if err != nil {
		s.logger.Error().Err(err).Int64("courseId", input.courseID).Msg("Failed to load fee structure")
		return nil, apperrors.ErrAdmissionFailed
	}

	admissionDate := s.now()
	dueDate := admissionDate.AddDate(0, 0, feeDueOffsetDays)

	var totalDue float64
	feeRows := make([]*models.StudentFee, 0, len(components))
	for _, c := range components {
		totalDue += c.Amount
		feeRows = append(feeRows, &models.StudentFee{
			FeeType:   c.FeeType,
			AmountDue: c.Amount,
			Balance:   c.Amount,
			DueDate:   dueDate,
			Status:    models.FeeStatusPending,
		})
	}

	// Steps 2-5: account, student record and fee rows are created atomically.
	var studentID string
	txErr := s.store.InTransaction(ctx, func(tx repositories.AdmissionTx) error {
		userID, err := tx.CreateUser(ctx, &models.User{
			Username: username,
			Email:    input.email,
			Password: passwordHash,
			Role:     models.RoleStudent,
			IsActive: true,
		})
		if err != nil {
			return err
		}

		studentID = models.FormatStudentID(userID)
		studentRowID, err := tx.CreateStudent(ctx, &models.Student{
			UserID:        userID,
			StudentID:     studentID,
			FirstName:     input.firstName,
			LastName:      input.lastName,
			IDType:        input.idType,
			IDNumber:      input.idNumber,
			Phone:         input.phone,
			Gender:        input.gender,
			DateOfBirth:   input.dateOfBirth,
			CourseID:      input.courseID,
			AdmissionDate: admissionDate,
			IsActive:      true,
		})
		if err != nil {
			return err
		}

		for _, fee := range feeRows {
			fee.StudentID = studentRowID
			if _, err := tx.CreateStudentFee(ctx, fee); err != nil {
				return err
			}
		}

		return nil
	})
	if txErr != nil {
		return nil, s.mapAdmissionError(txErr)
	}

	// Step 6, post-commit: audit trail and welcome email are best-effort.
	// The admission is already committed; failures here are logged only.
	if err := s.activity.LogActivity(ctx, actorID, EventStudentAdmitted,
		fmt.Sprintf("Admitted student %s (%s %s) into %s", studentID, input.firstName, input.lastName, course.Code)); err != nil {
		s.logger.Warn().Err(err).Str("studentId", studentID).Msg("Failed to write admission audit entry")
	}

	toName := input.firstName + " " + input.lastName
	if err := s.mailer.SendAdmissionEmail(input.email, toName, studentID, username, tempPassword, totalDue); err != nil {
		s.logger.Warn().Err(err).Str("studentId", studentID).Msg("Failed to send admission email")
	}

	s.logger.Info().
		Str("studentId", studentID).
		Str("username", username).
		Float64("totalDue", totalDue).
		Msg("Student admitted")

	return &dto.AdmissionResponse{
		StudentID:    studentID,
		Username:     username,
		CourseCode:   course.Code,
		TotalFeesDue: totalDue,
		Message:      fmt.Sprintf("Student %s admitted. Total fees due: %.2f", studentID, totalDue),
	}, nil
}

// validate collects every field-level problem in one pass. Uniqueness
// pre-checks run only when the field itself is well-formed; the database
// unique constraints remain the authoritative guard against races.
func (s *AdmissionService) validate(ctx context.Context, req *dto.AdmissionRequest) (*admissionInput, *apperrors.ValidationError, error) {
	verr := apperrors.NewValidationError()
	input := &admissionInput{
		firstName: strings.TrimSpace(req.FirstName),
		lastName:  strings.TrimSpace(req.LastName),
		idNumber:  strings.TrimSpace(req.IDNumber),
		phone:     strings.TrimSpace(req.Phone),
		email:     strings.TrimSpace(strings.ToLower(req.Email)),
		gender:    strings.TrimSpace(req.Gender),
		courseID:  req.CourseID,
	}

	if input.firstName == "" {
		verr.Add("firstName", "First name is required")
	}
	if input.lastName == "" {
		verr.Add("lastName", "Last name is required")
	}

	switch models.IdentificationType(req.IDType) {
	case models.IDTypeNational:
		input.idType = models.IDTypeNational
		if input.idNumber == "" {
			verr.Add("idNumber", "Identification number is required")
		} else if !validation.IsValidNationalID(input.idNumber) {
			verr.Add("idNumber", "National ID must be an 8-digit number")
		}
	case models.IDTypePassport:
		input.idType = models.IDTypePassport
		if input.idNumber == "" {
			verr.Add("idNumber", "Identification number is required")
		} else if !validation.IsValidPassport(input.idNumber) {
			verr.Add("idNumber", "Passport number must be 6-9 alphanumeric characters")
		}
	default:
		verr.Add("idType", "Identification type must be NATIONAL_ID or PASSPORT")
	}

	if input.phone == "" {
		verr.Add("phone", "Phone number is required")
	} else if !validation.IsValidPhone(input.phone) {
		verr.Add("phone", "Enter a valid local (07.../01...) or international (+...) phone number")
	}

	if input.email == "" {
		verr.Add("email", "Email address is required")
	} else if !validation.IsValidEmail(input.email) {
		verr.Add("email", "Enter a valid email address")
	} else {
		exists, err := s.store.EmailExists(ctx, input.email)
		if err != nil {
			return nil, nil, fmt.Errorf("error checking email: %w", err)
		}
		if exists {
			verr.Add("email", "Email already registered")
		}
	}

	if input.gender != "M" && input.gender != "F" {
		verr.Add("gender", "Gender must be M or F")
	}

	if strings.TrimSpace(req.DateOfBirth) == "" {
		verr.Add("dateOfBirth", "Date of birth is required")
	} else if dob, err := time.Parse(dateLayout, req.DateOfBirth); err != nil {
		verr.Add("dateOfBirth", "Date of birth must be in YYYY-MM-DD format")
	} else {
		input.dateOfBirth = dob
		now := s.now()
		if dob.After(now) {
			verr.Add("dateOfBirth", "Date of birth cannot be in the future")
		} else if validation.AgeAt(dob, now) < validation.MinAdmissionAge {
			verr.Add("dateOfBirth", fmt.Sprintf("Student must be at least %d years old", validation.MinAdmissionAge))
		}
	}

	if input.courseID <= 0 {
		verr.Add("courseId", "Course is required")
	}

	if input.idType != "" && input.idNumber != "" {
		if _, bad := verr.Fields["idNumber"]; !bad {
			exists, err := s.store.IdentificationExists(ctx, input.idType, input.idNumber)
			if err != nil {
				return nil, nil, fmt.Errorf("error checking identification: %w", err)
			}
			if exists {
				verr.Add("idNumber", "Identification number already registered")
			}
		}
	}

	return input, verr, nil
}

// mapAdmissionError translates a transaction failure into the caller-facing
// error. Unique violations become the same field errors the pre-checks
// produce; everything else is a generic failure with the cause logged.
func (s *AdmissionService) mapAdmissionError(err error) error {
	switch {
	case dberrors.IsDuplicateConstraintError(err, constraintUsersEmail):
		verr := apperrors.NewValidationError()
		verr.Add("email", "Email already registered")
		return verr
	case dberrors.IsDuplicateConstraintError(err, constraintStudentsIdent):
		verr := apperrors.NewValidationError()
		verr.Add("idNumber", "Identification number already registered")
		return verr
	case dberrors.IsDuplicateConstraintError(err, constraintUsersUsername):
		// Lost a race on the probed username
		return apperrors.ErrUsernameExhausted
	default:
		s.logger.Error().Err(err).Msg("Admission transaction failed")
		return apperrors.ErrAdmissionFailed
	}
}

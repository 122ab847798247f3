package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	appModels "github.com/mkamau/collegehub/internal/app/models"
	appRepos "github.com/mkamau/collegehub/internal/app/repositories"
	"github.com/mkamau/collegehub/internal/pkg/apperrors"
	"github.com/mkamau/collegehub/internal/pkg/auth"
)

// Default staff credentials created on first start. These are meant to be
// changed immediately after the first login.
const (
	defaultDirectorUsername  = "director"
	defaultDirectorEmail     = "director@collegehub.local"
	defaultRegistrarUsername = "registrar"
	defaultRegistrarEmail    = "registrar@collegehub.local"
	defaultStaffPassword     = "ChangeMe123!"
)

// CreateDefaultData creates the default staff accounts and sample courses if
// they don't exist. Every step is idempotent; errors are collected and
// returned together so one failure doesn't hide the rest.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	userRepo := appRepos.NewUserRepository(dbPool)
	courseRepo := appRepos.NewCourseRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default data (staff accounts, sample courses)...")
	var finalErr error

	if err := createStaffAccount(ctx, userRepo, lgr,
		defaultDirectorUsername, defaultDirectorEmail, appModels.RoleDirector); err != nil {
		finalErr = errors.Join(finalErr, err)
	}
	if err := createStaffAccount(ctx, userRepo, lgr,
		defaultRegistrarUsername, defaultRegistrarEmail, appModels.RoleRegistrar); err != nil {
		finalErr = errors.Join(finalErr, err)
	}

	// --- Sample courses with fee structures --- //
	ictFees := []*appModels.FeeComponent{
		{FeeType: "TUITION", Amount: 50000, Mandatory: true, IsActive: true},
		{FeeType: "EXAMINATION", Amount: 5000, Mandatory: true, IsActive: true},
	}
	if err := createCourse(ctx, courseRepo, lgr,
		"Information Communication Technology", "ICT", 24, ictFees); err != nil {
		finalErr = errors.Join(finalErr, err)
	}

	bizFees := []*appModels.FeeComponent{
		{FeeType: "TUITION", Amount: 45000, Mandatory: true, IsActive: true},
		{FeeType: "EXAMINATION", Amount: 5000, Mandatory: true, IsActive: true},
		{FeeType: "LIBRARY", Amount: 2000, Mandatory: false, IsActive: true},
	}
	if err := createCourse(ctx, courseRepo, lgr,
		"Business Management", "BM", 18, bizFees); err != nil {
		finalErr = errors.Join(finalErr, err)
	}

	return finalErr
}

// createStaffAccount creates one staff account unless the email is taken
func createStaffAccount(
	ctx context.Context,
	userRepo *appRepos.UserRepository,
	lgr zerolog.Logger,
	username, emailAddr string,
	role appModels.RoleType,
) error {
	exists, err := userRepo.EmailExists(ctx, emailAddr)
	if err != nil {
		lgr.Error().Err(err).Str("email", emailAddr).Msg("Error checking if staff account exists")
		return err
	}
	if exists {
		return nil
	}

	lgr.Info().Str("username", username).Str("role", string(role)).Msg("Creating default staff account...")

	hashed, err := auth.HashPassword(defaultStaffPassword)
	if err != nil {
		lgr.Error().Err(err).Msg("Error hashing default staff password")
		return err
	}

	if _, err := userRepo.CreateUser(ctx, &appModels.User{
		Username: username,
		Email:    emailAddr,
		Password: hashed,
		Role:     role,
		IsActive: true,
	}); err != nil {
		lgr.Error().Err(err).Str("username", username).Msg("Error creating default staff account")
		return err
	}

	return nil
}

// createCourse creates one course and its fee components unless the code is taken
func createCourse(
	ctx context.Context,
	courseRepo *appRepos.CourseRepository,
	lgr zerolog.Logger,
	name, code string,
	durationMonths int,
	fees []*appModels.FeeComponent,
) error {
	courseID, err := courseRepo.CreateCourse(ctx, &appModels.Course{
		Name:           name,
		Code:           code,
		DurationMonths: durationMonths,
		IsActive:       true,
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrCourseAlreadyExists) {
			return nil
		}
		lgr.Error().Err(err).Str("code", code).Msg("Error creating sample course")
		return err
	}

	for _, fee := range fees {
		fee.CourseID = courseID
		if _, err := courseRepo.CreateFeeComponent(ctx, fee); err != nil {
			lgr.Error().Err(err).Str("code", code).Str("feeType", fee.FeeType).Msg("Error creating sample fee component")
			return err
		}
	}

	return nil
}

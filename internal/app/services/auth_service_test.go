package services

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkamau/collegehub/internal/app/models"
	"github.com/mkamau/collegehub/internal/app/models/dto"
	"github.com/mkamau/collegehub/internal/pkg/apperrors"
	"github.com/mkamau/collegehub/internal/pkg/auth"
)

// fakeUserRepo implements repositories.IUserRepository in memory
type fakeUserRepo struct {
	users          map[string]*models.User // keyed by username
	lastLoginCalls []int64
	lastLoginErr   error
}

func newFakeUserRepo(users ...*models.User) *fakeUserRepo {
	repo := &fakeUserRepo{users: map[string]*models.User{}}
	for _, u := range users {
		repo.users[u.Username] = u
	}
	return repo
}

func (r *fakeUserRepo) CreateUser(ctx context.Context, user *models.User) (int64, error) {
	user.ID = int64(len(r.users) + 1)
	r.users[user.Username] = user
	return user.ID, nil
}

func (r *fakeUserRepo) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (r *fakeUserRepo) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	if u, ok := r.users[username]; ok {
		return u, nil
	}
	return nil, apperrors.ErrUserNotFound
}

func (r *fakeUserRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	for _, u := range r.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeUserRepo) UsernameExists(ctx context.Context, username string) (bool, error) {
	_, ok := r.users[username]
	return ok, nil
}

func (r *fakeUserRepo) UpdateLastLogin(ctx context.Context, userID int64) error {
	if r.lastLoginErr != nil {
		return r.lastLoginErr
	}
	r.lastLoginCalls = append(r.lastLoginCalls, userID)
	return nil
}

func testUser(t *testing.T, username, password string, role models.RoleType, active bool) *models.User {
	t.Helper()
	hash, err := auth.HashPassword(password)
	require.NoError(t, err)
	return &models.User{
		ID:       1,
		Username: username,
		Email:    username + "@collegehub.local",
		Password: hash,
		Role:     role,
		IsActive: active,
	}
}

func newAuthTestService(repo *fakeUserRepo) *AuthService {
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "collegehub.test",
	})
	return NewAuthService(repo, jwtService, zerolog.Nop())
}

func TestLogin_Success(t *testing.T) {
	repo := newFakeUserRepo(testUser(t, "registrar", "Secret123!", models.RoleRegistrar, true))
	svc := newAuthTestService(repo)

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{
		Username: "registrar",
		Password: "Secret123!",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, "Bearer", resp.TokenType)
	assert.Equal(t, int64(3600), resp.ExpiresIn)
	assert.Equal(t, []int64{1}, repo.lastLoginCalls)
}

func TestLogin_WrongPassword(t *testing.T) {
	repo := newFakeUserRepo(testUser(t, "registrar", "Secret123!", models.RoleRegistrar, true))
	svc := newAuthTestService(repo)

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Username: "registrar",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLogin_UnknownUsername(t *testing.T) {
	svc := newAuthTestService(newFakeUserRepo())

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Username: "ghost",
		Password: "whatever",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLogin_DisabledAccount(t *testing.T) {
	repo := newFakeUserRepo(testUser(t, "registrar", "Secret123!", models.RoleRegistrar, false))
	svc := newAuthTestService(repo)

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Username: "registrar",
		Password: "Secret123!",
	})
	assert.ErrorIs(t, err, apperrors.ErrAccountDisabled)
}

func TestLogin_LastLoginFailureIsNotFatal(t *testing.T) {
	repo := newFakeUserRepo(testUser(t, "registrar", "Secret123!", models.RoleRegistrar, true))
	repo.lastLoginErr = assert.AnError
	svc := newAuthTestService(repo)

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{
		Username: "registrar",
		Password: "Secret123!",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
}

func TestGetProfile(t *testing.T) {
	repo := newFakeUserRepo(testUser(t, "registrar", "Secret123!", models.RoleRegistrar, true))
	svc := newAuthTestService(repo)

	profile, err := svc.GetProfile(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "registrar", profile.Username)
	assert.Equal(t, string(models.RoleRegistrar), profile.Role)

	_, err = svc.GetProfile(context.Background(), 99)
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

package service

import (
	"context"
	"testing"

	"shopops/internal/apierror"
	"shopops/internal/config"
	"shopops/internal/dto"
	"shopops/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func buildAuthSvc() (AuthService, *stubUserRepo) {
	userRepo := newStubUserRepo()
	cfg := &config.Config{
		JWTSecret:          "test-secret",
		JWTExpirationHours: 1,
		JWTRefreshHours:    24,
	}
	return NewAuthService(userRepo, cfg), userRepo
}

func seedCredentials(t *testing.T, repo *stubUserRepo, email, password, role string) *model.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	u := seedUser(repo, "Test User", email, role)
	u.PasswordHash = string(hash)
	return u
}

func TestLogin_Success(t *testing.T) {
	svc, userRepo := buildAuthSvc()
	seedCredentials(t, userRepo, "admin@shopops.dev", "s3cret-pass", model.RoleAdmin)

	resp, err := svc.Login(context.Background(), dto.LoginRequest{
		Email:    "ADMIN@shopops.dev",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "bearer", resp.TokenType)
	assert.Equal(t, 3600, resp.ExpiresIn)
	assert.Equal(t, model.RoleAdmin, resp.User.Role)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, userRepo := buildAuthSvc()
	seedCredentials(t, userRepo, "admin@shopops.dev", "s3cret-pass", model.RoleAdmin)

	_, err := svc.Login(context.Background(), dto.LoginRequest{
		Email:    "admin@shopops.dev",
		Password: "wrong",
	})
	assert.Equal(t, 401, apierror.StatusOf(err))
}

func TestLogin_InactiveUser(t *testing.T) {
	svc, userRepo := buildAuthSvc()
	u := seedCredentials(t, userRepo, "gone@shopops.dev", "s3cret-pass", model.RoleUser)
	u.IsActive = false

	_, err := svc.Login(context.Background(), dto.LoginRequest{
		Email:    "gone@shopops.dev",
		Password: "s3cret-pass",
	})
	assert.Equal(t, 401, apierror.StatusOf(err))
}

func TestRefresh_RotatesTokens(t *testing.T) {
	svc, userRepo := buildAuthSvc()
	seedCredentials(t, userRepo, "admin@shopops.dev", "s3cret-pass", model.RoleAdmin)

	login, err := svc.Login(context.Background(), dto.LoginRequest{
		Email:    "admin@shopops.dev",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)

	refreshed, err := svc.Refresh(context.Background(), login.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
	assert.Equal(t, login.User.ID, refreshed.User.ID)
}

func TestRefresh_GarbageToken(t *testing.T) {
	svc, _ := buildAuthSvc()
	_, err := svc.Refresh(context.Background(), "not-a-jwt")
	assert.Equal(t, 401, apierror.StatusOf(err))
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	svc, userRepo := buildAuthSvc()
	seedUser(userRepo, "Maria", "maria@shopops.dev", model.RoleManager)

	_, err := svc.CreateUser(context.Background(), dto.CreateUserRequest{
		Name:     "Other Maria",
		Email:    "maria@shopops.dev",
		Password: "longenough",
		Role:     model.RoleUser,
	})
	assert.Equal(t, 409, apierror.StatusOf(err))
}

func TestListManagers_OnlyActiveManagers(t *testing.T) {
	svc, userRepo := buildAuthSvc()
	seedUser(userRepo, "Maria", "maria@shopops.dev", model.RoleManager)
	seedUser(userRepo, "Alex", "alex@shopops.dev", model.RoleAdmin)
	inactive := seedUser(userRepo, "Nina", "nina@shopops.dev", model.RoleManager)
	inactive.IsActive = false

	admin := seedUser(userRepo, "Root", "root@shopops.dev", model.RoleAdmin)
	managers, err := svc.ListManagers(context.Background(), Caller{UserID: admin.ID, Role: admin.Role})
	require.NoError(t, err)
	require.Len(t, managers, 1)
	assert.Equal(t, "maria@shopops.dev", managers[0].Email)
}

func TestListManagers_RequiresAuthentication(t *testing.T) {
	svc, _ := buildAuthSvc()
	_, err := svc.ListManagers(context.Background(), Caller{})
	assert.Equal(t, 401, apierror.StatusOf(err))
}

func TestDeactivateReactivateUser(t *testing.T) {
	svc, userRepo := buildAuthSvc()
	u := seedUser(userRepo, "Maria", "maria@shopops.dev", model.RoleManager)

	require.NoError(t, svc.DeactivateUser(context.Background(), u.ID))
	assert.False(t, userRepo.users[u.ID].IsActive)

	require.NoError(t, svc.ReactivateUser(context.Background(), u.ID))
	assert.True(t, userRepo.users[u.ID].IsActive)
}

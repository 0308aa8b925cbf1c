package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/worktrace/worktrace-backend-go/internal/config"
	"github.com/worktrace/worktrace-backend-go/internal/domain/auth"
	"github.com/worktrace/worktrace-backend-go/internal/pkg/jwt"
	"github.com/worktrace/worktrace-backend-go/internal/pkg/validator"
	"golang.org/x/crypto/bcrypt"
)

func newTestService(t *testing.T, cfg config.AuthConfig) (auth.Service, jwt.Service) {
	t.Helper()
	jwtService := jwt.NewJWTService("test-secret-key", "1h")
	return NewAuthService(cfg, jwtService), jwtService
}

func TestLogin_Success_Plaintext(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t, config.AuthConfig{Password: "hunter2"})

	resp, err := svc.Login(ctx, auth.LoginRequest{Password: "hunter2"})

	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Greater(t, resp.ExpiresAt, int64(0))
}

func TestLogin_Success_BcryptHash(t *testing.T) {
	ctx := context.Background()
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	require.NoError(t, err)

	svc, _ := newTestService(t, config.AuthConfig{PasswordHash: string(hash)})

	resp, err := svc.Login(ctx, auth.LoginRequest{Password: "hunter2"})

	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
}

func TestLogin_WrongPassword(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t, config.AuthConfig{Password: "hunter2"})

	_, err := svc.Login(ctx, auth.LoginRequest{Password: "wrong"})

	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLogin_HashTakesPrecedence(t *testing.T) {
	ctx := context.Background()
	hash, err := bcrypt.GenerateFromPassword([]byte("real"), bcrypt.MinCost)
	require.NoError(t, err)

	// Plaintext is set too but must be ignored when a hash is present.
	svc, _ := newTestService(t, config.AuthConfig{Password: "decoy", PasswordHash: string(hash)})

	_, err = svc.Login(ctx, auth.LoginRequest{Password: "decoy"})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)

	_, err = svc.Login(ctx, auth.LoginRequest{Password: "real"})
	assert.NoError(t, err)
}

func TestLogin_EmptyPassword(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t, config.AuthConfig{Password: "hunter2"})

	_, err := svc.Login(ctx, auth.LoginRequest{Password: "  "})

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs.ToMap(), "password")
}

func TestLogout_RevokesToken(t *testing.T) {
	ctx := context.Background()
	svc, jwtService := newTestService(t, config.AuthConfig{Password: "hunter2"})

	resp, err := svc.Login(ctx, auth.LoginRequest{Password: "hunter2"})
	require.NoError(t, err)
	assert.False(t, jwtService.IsTokenRevoked(resp.Token))

	svc.Logout(ctx, resp.Token)

	assert.True(t, jwtService.IsTokenRevoked(resp.Token))
}

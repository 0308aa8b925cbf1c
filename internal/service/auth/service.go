package auth

import (
	"context"
	"crypto/subtle"
	"fmt"

	"github.com/worktrace/worktrace-backend-go/internal/config"
	"github.com/worktrace/worktrace-backend-go/internal/domain/auth"
	"github.com/worktrace/worktrace-backend-go/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

type authServiceImpl struct {
	cfg        config.AuthConfig
	jwtService jwt.Service
}

func NewAuthService(cfg config.AuthConfig, jwtService jwt.Service) auth.Service {
	return &authServiceImpl{
		cfg:        cfg,
		jwtService: jwtService,
	}
}

// Login implements auth.Service. The dashboard has exactly one shared
// secret; a match issues a session token, anything else is
// ErrInvalidCredentials.
func (s *authServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	if !s.passwordMatches(req.Password) {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	token, expiresAt, err := s.jwtService.GenerateSessionToken()
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to generate session token: %w", err)
	}

	return auth.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}

// Logout implements auth.Service.
func (s *authServiceImpl) Logout(ctx context.Context, token string) {
	s.jwtService.RevokeToken(token)
}

func (s *authServiceImpl) passwordMatches(candidate string) bool {
	if s.cfg.PasswordHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(s.cfg.PasswordHash), []byte(candidate)) == nil
	}
	// Plaintext dev fallback, compared in constant time.
	return subtle.ConstantTimeCompare([]byte(s.cfg.Password), []byte(candidate)) == 1
}

package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/worktrace/worktrace-backend-go/internal/config"
	"github.com/worktrace/worktrace-backend-go/internal/handler/http/middleware"
	"github.com/worktrace/worktrace-backend-go/internal/pkg/jwt"
	authService "github.com/worktrace/worktrace-backend-go/internal/service/auth"
)

const (
	handlerTestSecret   = "test-secret-key-for-jwt"
	handlerTestPassword = "dashboard-password"
)

// newSessionTestRouter wires the auth handler plus a protected probe
// route behind the session middleware, without touching the database.
func newSessionTestRouter() (*chi.Mux, jwt.Service) {
	jwtService := jwt.NewJWTService(handlerTestSecret, "1h")
	svc := authService.NewAuthService(config.AuthConfig{Password: handlerTestPassword}, jwtService)
	authHandler := NewAuthHandler(svc)

	r := chi.NewRouter()
	r.Post("/auth/login", authHandler.Login)
	r.Group(func(r chi.Router) {
		r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
		r.Use(middleware.SessionRequired(jwtService))
		r.Post("/auth/logout", authHandler.Logout)
		r.Get("/protected", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		})
	})
	return r, jwtService
}

func loginForToken(t *testing.T, router *chi.Mux, password string) (*httptest.ResponseRecorder, string) {
	body, _ := json.Marshal(map[string]string{"password": password})
	req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var envelope struct {
		Success bool `json:"success"`
		Data    struct {
			Token     string `json:"token"`
			ExpiresAt int64  `json:"expires_at"`
		} `json:"data"`
	}
	_ = json.Unmarshal(rec.Body.Bytes(), &envelope)
	return rec, envelope.Data.Token
}

func TestLogin_Success(t *testing.T) {
	router, _ := newSessionTestRouter()

	rec, token := loginForToken(t, router, handlerTestPassword)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, token)
}

func TestLogin_WrongPassword(t *testing.T) {
	router, _ := newSessionTestRouter()

	rec, token := loginForToken(t, router, "not-the-password")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, token)
}

func TestLogin_MissingPassword(t *testing.T) {
	router, _ := newSessionTestRouter()

	rec, _ := loginForToken(t, router, "")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestSessionMiddleware_AllowsValidToken(t *testing.T) {
	router, _ := newSessionTestRouter()
	_, token := loginForToken(t, router, handlerTestPassword)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSessionMiddleware_RejectsMissingToken(t *testing.T) {
	router, _ := newSessionTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSessionMiddleware_RejectsGarbageToken(t *testing.T) {
	router, _ := newSessionTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not.a.jwt")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSessionMiddleware_RejectsRevokedToken(t *testing.T) {
	router, _ := newSessionTestRouter()
	_, token := loginForToken(t, router, handlerTestPassword)

	logoutReq := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	logoutReq.Header.Set("Authorization", "Bearer "+token)
	logoutRec := httptest.NewRecorder()
	router.ServeHTTP(logoutRec, logoutReq)
	require.Equal(t, http.StatusOK, logoutRec.Code)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSessionMiddleware_RejectsWrongTokenType(t *testing.T) {
	_, jwtService := newSessionTestRouter()
	router, _ := newSessionTestRouter()

	// Forge a token with the right key but the wrong type claim.
	_, forged, err := jwtService.JWTAuth().Encode(map[string]interface{}{"type": "refresh"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+forged)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

package auth

import "context"

// Service is the session gate: a single shared secret unlocks one logical
// session. There is no user model behind it.
type Service interface {
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
	Logout(ctx context.Context, token string)
}

package auth

import "context"

type AuthService interface {
	// Login verifies credentials and issues an access token carrying the
	// user_id, role and admin_id claims consumed by the tenant resolver.
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
}

package admin

import "context"

type AdminService interface {
	Register(ctx context.Context, req RegisterRequest) (AdminResponse, error)

	// Login verifies the password and issues an admin access token.
	// Deactivated accounts are rejected the same way as bad credentials.
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)

	List(ctx context.Context) ([]AdminResponse, error)

	// SeedDefault creates the initial admin account when the table is empty
	// so a fresh install can always be administered.
	SeedDefault(ctx context.Context) error
}

package admin

import "errors"

// Admin domain errors
var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrAdminNotFound      = errors.New("admin account not found")
	ErrUsernameExists     = errors.New("username already exists")
	ErrAdminInactive      = errors.New("admin account is deactivated")
	ErrInvalidToken       = errors.New("invalid or expired token")
)

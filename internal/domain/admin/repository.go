package admin

import "context"

type AdminRepository interface {
	Create(ctx context.Context, adm *Admin) error

	// FindByUsername returns ErrAdminNotFound when no account matches.
	FindByUsername(ctx context.Context, username string) (*Admin, error)

	ListAll(ctx context.Context) ([]Admin, error)

	ExistsAny(ctx context.Context) (bool, error)
}

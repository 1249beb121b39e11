package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/hiroakiwakabayashi/kao-kintai-go/internal/domain/admin"
	"github.com/hiroakiwakabayashi/kao-kintai-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type adminRepository struct {
	db *database.DB
}

// Create implements admin.AdminRepository.
func (a *adminRepository) Create(ctx context.Context, adm *admin.Admin) error {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO admins (username, display_name, password_hash, role, is_active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query,
		adm.Username, adm.DisplayName, adm.PasswordHash, adm.Role, adm.IsActive,
	).Scan(&adm.ID, &adm.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return admin.ErrUsernameExists
		}
		return fmt.Errorf("failed to create admin: %w", err)
	}

	return nil
}

// FindByUsername implements admin.AdminRepository.
func (a *adminRepository) FindByUsername(ctx context.Context, username string) (*admin.Admin, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT id, username, display_name, password_hash, role, is_active, created_at
		FROM admins
		WHERE username = $1
	`

	var adm admin.Admin
	err := q.QueryRow(ctx, query, username).Scan(
		&adm.ID, &adm.Username, &adm.DisplayName, &adm.PasswordHash,
		&adm.Role, &adm.IsActive, &adm.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, admin.ErrAdminNotFound
		}
		return nil, fmt.Errorf("failed to find admin by username: %w", err)
	}

	return &adm, nil
}

// ListAll implements admin.AdminRepository.
func (a *adminRepository) ListAll(ctx context.Context) ([]admin.Admin, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT id, username, display_name, password_hash, role, is_active, created_at
		FROM admins
		ORDER BY id ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list admins: %w", err)
	}
	defer rows.Close()

	var admins []admin.Admin
	for rows.Next() {
		var adm admin.Admin
		err := rows.Scan(
			&adm.ID, &adm.Username, &adm.DisplayName, &adm.PasswordHash,
			&adm.Role, &adm.IsActive, &adm.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan admin: %w", err)
		}
		admins = append(admins, adm)
	}

	return admins, nil
}

// ExistsAny implements admin.AdminRepository.
func (a *adminRepository) ExistsAny(ctx context.Context) (bool, error) {
	q := GetQuerier(ctx, a.db)

	var exists bool
	if err := q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM admins)`).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check admins existence: %w", err)
	}

	return exists, nil
}

func NewAdminRepository(db *database.DB) admin.AdminRepository {
	return &adminRepository{db: db}
}

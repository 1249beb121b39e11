package admin

import (
	"context"
	"testing"

	"github.com/hiroakiwakabayashi/kao-kintai-go/internal/domain/admin"
	"github.com/hiroakiwakabayashi/kao-kintai-go/internal/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAdminRepository struct {
	nextID int64
	admins []admin.Admin
}

var _ admin.AdminRepository = (*fakeAdminRepository)(nil)

func (f *fakeAdminRepository) Create(ctx context.Context, adm *admin.Admin) error {
	for _, existing := range f.admins {
		if existing.Username == adm.Username {
			return admin.ErrUsernameExists
		}
	}
	f.nextID++
	adm.ID = f.nextID
	f.admins = append(f.admins, *adm)
	return nil
}

func (f *fakeAdminRepository) FindByUsername(ctx context.Context, username string) (*admin.Admin, error) {
	for _, adm := range f.admins {
		if adm.Username == username {
			a := adm
			return &a, nil
		}
	}
	return nil, admin.ErrAdminNotFound
}

func (f *fakeAdminRepository) ListAll(ctx context.Context) ([]admin.Admin, error) {
	return f.admins, nil
}

func (f *fakeAdminRepository) ExistsAny(ctx context.Context) (bool, error) {
	return len(f.admins) > 0, nil
}

func newTestService() (admin.AdminService, *fakeAdminRepository) {
	repo := &fakeAdminRepository{}
	return NewAdminService(repo, jwt.NewJWTService("test-secret-key", "1h")), repo
}

func TestRegisterAndLogin(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	resp, err := svc.Register(ctx, admin.RegisterRequest{
		Username:    "manager",
		DisplayName: "Store Manager",
		Password:    "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, "manager", resp.Username)
	assert.True(t, resp.IsActive)

	login, err := svc.Login(ctx, admin.LoginRequest{Username: "manager", Password: "secret123"})
	require.NoError(t, err)
	assert.NotEmpty(t, login.AccessToken)
	assert.Greater(t, login.ExpiresAt, int64(0))
	assert.Equal(t, "manager", login.Admin.Username)
}

func TestLoginWrongPassword(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	_, err := svc.Register(ctx, admin.RegisterRequest{
		Username:    "manager",
		DisplayName: "Store Manager",
		Password:    "secret123",
	})
	require.NoError(t, err)

	_, err = svc.Login(ctx, admin.LoginRequest{Username: "manager", Password: "wrong"})
	assert.ErrorIs(t, err, admin.ErrInvalidCredentials)

	_, err = svc.Login(ctx, admin.LoginRequest{Username: "nobody", Password: "secret123"})
	assert.ErrorIs(t, err, admin.ErrInvalidCredentials)
}

func TestLoginInactiveAdmin(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService()

	_, err := svc.Register(ctx, admin.RegisterRequest{
		Username:    "manager",
		DisplayName: "Store Manager",
		Password:    "secret123",
	})
	require.NoError(t, err)
	repo.admins[0].IsActive = false

	_, err = svc.Login(ctx, admin.LoginRequest{Username: "manager", Password: "secret123"})
	assert.ErrorIs(t, err, admin.ErrAdminInactive)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	req := admin.RegisterRequest{Username: "manager", DisplayName: "One", Password: "secret123"}
	_, err := svc.Register(ctx, req)
	require.NoError(t, err)

	_, err = svc.Register(ctx, req)
	assert.ErrorIs(t, err, admin.ErrUsernameExists)
}

func TestSeedDefault(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService()

	require.NoError(t, svc.SeedDefault(ctx))
	require.Len(t, repo.admins, 1)
	assert.Equal(t, "admin01", repo.admins[0].Username)

	login, err := svc.Login(ctx, admin.LoginRequest{Username: "admin01", Password: "admin01"})
	require.NoError(t, err)
	assert.NotEmpty(t, login.AccessToken)

	// Seeding is skipped once any admin exists.
	require.NoError(t, svc.SeedDefault(ctx))
	assert.Len(t, repo.admins, 1)
}

func TestRegisterValidation(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	_, err := svc.Register(ctx, admin.RegisterRequest{Username: "ab", DisplayName: "X", Password: "secret123"})
	assert.Error(t, err)

	_, err = svc.Register(ctx, admin.RegisterRequest{Username: "manager", DisplayName: "X", Password: "short"})
	assert.Error(t, err)
}

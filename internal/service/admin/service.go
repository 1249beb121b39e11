package admin

import (
	"context"
	"errors"
	"log/slog"

	"github.com/hiroakiwakabayashi/kao-kintai-go/internal/domain/admin"
	"github.com/hiroakiwakabayashi/kao-kintai-go/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

const (
	defaultUsername = "admin01"
	defaultPassword = "admin01"
)

type AdminServiceImpl struct {
	admin.AdminRepository
	jwtService jwt.Service
}

// Register implements admin.AdminService.
func (a *AdminServiceImpl) Register(ctx context.Context, req admin.RegisterRequest) (admin.AdminResponse, error) {
	if err := req.Validate(); err != nil {
		return admin.AdminResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return admin.AdminResponse{}, err
	}

	adm := &admin.Admin{
		Username:     req.Username,
		DisplayName:  req.DisplayName,
		PasswordHash: hash,
		Role:         admin.RoleAdmin,
		IsActive:     true,
	}
	if err := a.AdminRepository.Create(ctx, adm); err != nil {
		return admin.AdminResponse{}, err
	}

	return toResponse(*adm), nil
}

// Login implements admin.AdminService.
func (a *AdminServiceImpl) Login(ctx context.Context, req admin.LoginRequest) (admin.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return admin.LoginResponse{}, err
	}

	adm, err := a.AdminRepository.FindByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, admin.ErrAdminNotFound) {
			return admin.LoginResponse{}, admin.ErrInvalidCredentials
		}
		return admin.LoginResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword(adm.PasswordHash, []byte(req.Password)); err != nil {
		return admin.LoginResponse{}, admin.ErrInvalidCredentials
	}

	if !adm.IsActive {
		return admin.LoginResponse{}, admin.ErrAdminInactive
	}

	token, expiresAt, err := a.jwtService.GenerateAccessToken(adm.ID, adm.Username, adm.Role)
	if err != nil {
		return admin.LoginResponse{}, err
	}

	return admin.LoginResponse{
		AccessToken: token,
		ExpiresAt:   expiresAt,
		Admin:       toResponse(*adm),
	}, nil
}

// List implements admin.AdminService.
func (a *AdminServiceImpl) List(ctx context.Context) ([]admin.AdminResponse, error) {
	admins, err := a.AdminRepository.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]admin.AdminResponse, 0, len(admins))
	for _, adm := range admins {
		responses = append(responses, toResponse(adm))
	}
	return responses, nil
}

// SeedDefault implements admin.AdminService.
func (a *AdminServiceImpl) SeedDefault(ctx context.Context) error {
	exists, err := a.AdminRepository.ExistsAny(ctx)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(defaultPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	adm := &admin.Admin{
		Username:     defaultUsername,
		DisplayName:  "Administrator",
		PasswordHash: hash,
		Role:         admin.RoleAdmin,
		IsActive:     true,
	}
	if err := a.AdminRepository.Create(ctx, adm); err != nil {
		// A concurrent boot may have seeded it first.
		if errors.Is(err, admin.ErrUsernameExists) {
			return nil
		}
		return err
	}

	slog.Warn("Seeded default admin account, change its password", "username", defaultUsername)
	return nil
}

func toResponse(adm admin.Admin) admin.AdminResponse {
	return admin.AdminResponse{
		ID:          adm.ID,
		Username:    adm.Username,
		DisplayName: adm.DisplayName,
		Role:        adm.Role,
		IsActive:    adm.IsActive,
		CreatedAt:   adm.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

func NewAdminService(adminRepository admin.AdminRepository, jwtService jwt.Service) admin.AdminService {
	return &AdminServiceImpl{
		AdminRepository: adminRepository,
		jwtService:      jwtService,
	}
}

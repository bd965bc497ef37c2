package service

import (
	"context"
	"errors"
	"fmt"

	"gefen_backend/internal/model"
	"gefen_backend/internal/repository"
	"gefen_backend/internal/utils"
)

// ErrInvalidCredentials is returned for both an unknown email and a wrong
// password so the response never reveals which half failed.
var ErrInvalidCredentials = errors.New("invalid email or password")

// AuthService provides authentication related services
type AuthService interface {
	Login(ctx context.Context, email, password string) (*model.Admin, string, error)
}

type authService struct {
	adminRepo repository.AdminRepository
	jwtUtil   *utils.JWTUtil
}

// NewAuthService creates a new AuthService
func NewAuthService(adminRepo repository.AdminRepository, jwtUtil *utils.JWTUtil) AuthService {
	return &authService{
		adminRepo: adminRepo,
		jwtUtil:   jwtUtil,
	}
}

// Login authenticates an admin and returns the account plus a signed token
func (s *authService) Login(ctx context.Context, email, password string) (*model.Admin, string, error) {
	admin, err := s.adminRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, "", fmt.Errorf("error finding admin by email: %w", err)
	}
	if admin == nil {
		return nil, "", ErrInvalidCredentials // No such email
	}

	if !utils.CheckPasswordHash(password, admin.PasswordHash) {
		return nil, "", ErrInvalidCredentials // Password mismatch
	}

	token, err := s.jwtUtil.GenerateToken(admin.ID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}

	return admin, token, nil
}

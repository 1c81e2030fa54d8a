package auth

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/attendly-hq/attendly-backend-go/internal/domain/auth"
	"github.com/attendly-hq/attendly-backend-go/internal/domain/employee"
	"github.com/attendly-hq/attendly-backend-go/internal/domain/user"
	"github.com/attendly-hq/attendly-backend-go/internal/pkg/database"
	"github.com/attendly-hq/attendly-backend-go/internal/pkg/jwt"
)

type AuthServiceImpl struct {
	tx           database.TxRunner
	userRepo     user.UserRepository
	employeeRepo employee.EmployeeRepository
	jwtService   jwt.Service
}

func NewAuthService(tx database.TxRunner, userRepo user.UserRepository, employeeRepo employee.EmployeeRepository, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		tx:           tx,
		userRepo:     userRepo,
		employeeRepo: employeeRepo,
		jwtService:   jwtService,
	}
}

// Register implements auth.AuthService. The account identity and its employee
// record are created in one unit of work; a duplicate email or employee code
// rolls back both.
func (s *AuthServiceImpl) Register(ctx context.Context, req auth.RegisterRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	var (
		createdUser     user.User
		createdEmployee employee.Employee
	)
	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		createdUser, err = s.userRepo.Create(ctx, user.User{
			Email:        req.Email,
			PasswordHash: string(passwordHash),
			Role:         user.RoleEmployee,
		})
		if err != nil {
			return err
		}

		createdEmployee, err = s.employeeRepo.Create(ctx, employee.Employee{
			UserID:       createdUser.ID,
			EmployeeCode: req.EmployeeCode,
			Name:         req.Name,
			Department:   req.Department,
			State:        req.State,
			MobileNumber: req.MobileNumber,
		})
		return err
	})
	if err != nil {
		return auth.TokenResponse{}, err
	}

	return s.issueTokens(createdUser.ID, createdUser.Email, &createdEmployee.ID, createdUser.Role)
}

// Login implements auth.AuthService. Unknown emails and wrong passwords are
// indistinguishable to the caller.
func (s *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	u, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	return s.issueTokens(u.ID, u.Email, u.EmployeeID, u.Role)
}

// Refresh implements auth.AuthService. The presented token is rotated: a new
// pair is issued and the old refresh token is revoked.
func (s *AuthServiceImpl) Refresh(ctx context.Context, refreshToken string) (auth.TokenResponse, error) {
	if s.jwtService.IsTokenRevoked(refreshToken) {
		return auth.TokenResponse{}, auth.ErrTokenRevoked
	}

	userID, err := s.jwtService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidToken
		}
		return auth.TokenResponse{}, err
	}

	resp, err := s.issueTokens(u.ID, u.Email, u.EmployeeID, u.Role)
	if err != nil {
		return auth.TokenResponse{}, err
	}

	s.jwtService.RevokeToken(refreshToken)
	return resp, nil
}

// Logout implements auth.AuthService.
func (s *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}

	if _, err := s.jwtService.ValidateRefreshToken(refreshToken); err != nil {
		return auth.ErrInvalidToken
	}

	s.jwtService.RevokeToken(refreshToken)
	return nil
}

func (s *AuthServiceImpl) issueTokens(userID, email string, employeeID *string, role user.Role) (auth.TokenResponse, error) {
	accessToken, accessExpiresAt, err := s.jwtService.GenerateAccessToken(userID, email, employeeID, role)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, refreshExpiresAt, err := s.jwtService.GenerateRefreshToken(userID)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	resp := auth.TokenResponse{
		AccessToken:      accessToken,
		ExpiresAt:        accessExpiresAt,
		RefreshToken:     refreshToken,
		RefreshExpiresAt: refreshExpiresAt,
		UserID:           userID,
		Role:             string(role),
	}
	if employeeID != nil {
		resp.EmployeeID = *employeeID
	}

	return resp, nil
}

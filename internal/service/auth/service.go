package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/utiliops/fieldforce-backend-go/internal/domain/auth"
	"github.com/utiliops/fieldforce-backend-go/internal/domain/employee"
	"github.com/utiliops/fieldforce-backend-go/internal/domain/user"
	"github.com/utiliops/fieldforce-backend-go/internal/pkg/jwt"
	"github.com/utiliops/fieldforce-backend-go/internal/pkg/oauth"
)

type AuthServiceImpl struct {
	user.UserRepository
	employee.EmployeeRepository
	jwtService    jwt.Service
	googleService oauth.GoogleService
}

func NewAuthService(
	userRepo user.UserRepository,
	employeeRepo employee.EmployeeRepository,
	jwtService jwt.Service,
	googleService oauth.GoogleService,
) auth.AuthService {
	return &AuthServiceImpl{
		UserRepository:     userRepo,
		EmployeeRepository: employeeRepo,
		jwtService:         jwtService,
		googleService:      googleService,
	}
}

// issueTokens loads the linked employee record and mints the token pair.
func (s *AuthServiceImpl) issueTokens(ctx context.Context, u user.User) (auth.TokenResponse, error) {
	var emp employee.Employee
	if u.EmployeeID != nil {
		var err error
		emp, err = s.EmployeeRepository.GetByID(ctx, *u.EmployeeID)
		if err != nil && !errors.Is(err, employee.ErrEmployeeNotFound) {
			return auth.TokenResponse{}, fmt.Errorf("failed to load employee record: %w", err)
		}
	}

	access, expiresAt, err := s.jwtService.GenerateAccessToken(
		u.ID, u.Email, u.EmployeeID, emp.Role, emp.Department, emp.DepartmentSet())
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	refresh, refreshExpiresAt, err := s.jwtService.GenerateRefreshToken(u.ID)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return auth.TokenResponse{
		AccessToken:      access,
		RefreshToken:     refresh,
		ExpiresIn:        expiresAt - time.Now().Unix(),
		RefreshExpiresAt: refreshExpiresAt,
	}, nil
}

// Login implements auth.AuthService.
func (s *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	u, err := s.UserRepository.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenResponse{}, user.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get user: %w", err)
	}
	if !u.Active {
		return auth.TokenResponse{}, user.ErrUserInactive
	}
	if u.PasswordHash == nil {
		return auth.TokenResponse{}, user.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(*u.PasswordHash), []byte(req.Password)); err != nil {
		return auth.TokenResponse{}, user.ErrInvalidCredentials
	}

	return s.issueTokens(ctx, u)
}

// Refresh implements auth.AuthService.
func (s *AuthServiceImpl) Refresh(ctx context.Context, req auth.RefreshRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	if s.jwtService.IsTokenRevoked(req.RefreshToken) {
		return auth.TokenResponse{}, auth.ErrRevokedToken
	}

	userID, err := s.jwtService.ValidateRefreshToken(req.RefreshToken)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	u, err := s.UserRepository.GetByID(ctx, userID)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to get user: %w", err)
	}
	if !u.Active {
		return auth.TokenResponse{}, user.ErrUserInactive
	}

	// Rotate: the old refresh token dies with the exchange.
	s.jwtService.RevokeToken(req.RefreshToken)

	return s.issueTokens(ctx, u)
}

// Logout implements auth.AuthService.
func (s *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}
	s.jwtService.RevokeToken(refreshToken)
	return nil
}

// Profile implements auth.AuthService.
func (s *AuthServiceImpl) Profile(ctx context.Context, userID string) (auth.ProfileResponse, error) {
	u, err := s.UserRepository.GetByID(ctx, userID)
	if err != nil {
		return auth.ProfileResponse{}, err
	}

	resp := auth.ProfileResponse{
		UserID:     u.ID,
		Email:      u.Email,
		EmployeeID: u.EmployeeID,
	}

	if u.EmployeeID != nil {
		emp, err := s.EmployeeRepository.GetByID(ctx, *u.EmployeeID)
		if err == nil {
			resp.FullName = emp.FullName
			resp.Role = string(emp.Role)
			resp.Department = emp.Department
			resp.Departments = emp.DepartmentSet()
		}
	}

	return resp, nil
}

// GoogleAuthURL implements auth.AuthService.
func (s *AuthServiceImpl) GoogleAuthURL(state string) string {
	return s.googleService.RedirectURL(state)
}

// GoogleCallback implements auth.AuthService.
func (s *AuthServiceImpl) GoogleCallback(ctx context.Context, code string) (auth.TokenResponse, error) {
	token, err := s.googleService.VerifyToken(ctx, code)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to exchange oauth code: %w", err)
	}

	info, err := s.googleService.VerifyUser(ctx, token)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to verify google user: %w", err)
	}

	u, err := s.UserRepository.GetByGoogleID(ctx, info.GoogleID)
	if err != nil {
		if !errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenResponse{}, fmt.Errorf("failed to get user: %w", err)
		}
		// First Google sign-in for an existing account links the identity.
		u, err = s.UserRepository.GetByEmail(ctx, info.Email)
		if err != nil {
			return auth.TokenResponse{}, err
		}
		if err := s.UserRepository.LinkGoogleID(ctx, u.ID, info.GoogleID); err != nil {
			return auth.TokenResponse{}, fmt.Errorf("failed to link google account: %w", err)
		}
	}
	if !u.Active {
		return auth.TokenResponse{}, user.ErrUserInactive
	}

	return s.issueTokens(ctx, u)
}

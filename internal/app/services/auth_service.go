package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/akademik/akademik/internal/app/models"
	"github.com/akademik/akademik/internal/app/models/dto"
	"github.com/akademik/akademik/internal/app/procedures"
	"github.com/akademik/akademik/internal/app/repositories"
	"github.com/akademik/akademik/internal/pkg/apperrors"
	"github.com/akademik/akademik/internal/pkg/auth"
	"github.com/rs/zerolog"
)

// AuthService handles authentication and account operations
type AuthService struct {
	authRepo   *repositories.AuthRepository
	jwtService *auth.JWTService
	logger     zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(authRepo *repositories.AuthRepository, jwtService *auth.JWTService, logger zerolog.Logger) *AuthService {
	return &AuthService{
		authRepo:   authRepo,
		jwtService: jwtService,
		logger:     logger,
	}
}

// LoginResult is the first row returned by the login procedure together with
// a signed session token
type LoginResult struct {
	User  procedures.Row
	Token string
}

// Login checks credentials. Zero rows means ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*LoginResult, error) {
	rows, err := s.authRepo.Login(ctx, req)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		s.logger.Info().Interface("username", req.Username.Raw()).Msg("Login rejected")
		return nil, apperrors.ErrInvalidCredentials
	}

	result := &LoginResult{User: rows[0]}
	if s.jwtService == nil {
		return result, nil
	}

	user, err := userFromRow(rows[0])
	if err != nil {
		s.logger.Warn().Err(err).Msg("Login row could not be read as a user, no token issued")
		return result, nil
	}

	token, _, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return nil, err
	}
	result.Token = token

	s.logger.Info().Int64("userID", user.UserID).Str("role", string(user.RoleName)).Msg("User logged in")
	return result, nil
}

// Register creates a user account and returns the new user id
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (any, error) {
	return s.authRepo.CreateUser(ctx, req)
}

// UpdateContact changes a user's email and phone
func (s *AuthService) UpdateContact(ctx context.Context, req *dto.UpdateContactRequest) error {
	return s.authRepo.UpdateContact(ctx, req)
}

// Deactivate disables a user account
func (s *AuthService) Deactivate(ctx context.Context, req *dto.DeactivateRequest) error {
	return s.authRepo.Deactivate(ctx, req)
}

// userFromRow reads the identity columns of a login row
func userFromRow(row procedures.Row) (*models.User, error) {
	data, err := json.Marshal(row)
	if err != nil {
		return nil, err
	}

	var user models.User
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, err
	}
	if user.UserID <= 0 || !user.RoleName.Valid() {
		return nil, fmt.Errorf("login row has no usable identity: user %d role %q", user.UserID, user.RoleName)
	}
	return &user, nil
}

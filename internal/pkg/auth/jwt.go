package auth

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/akademik/akademik/internal/app/models"
	"github.com/akademik/akademik/internal/pkg/apperrors"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// JWTConfig defines JWT configuration settings
type JWTConfig struct {
	SecretKey   string
	TokenExp    time.Duration
	TokenIssuer string
}

// JWTService handles JWT operations
type JWTService struct {
	config JWTConfig
}

// NewJWTService creates a new JWT service
func NewJWTService(config JWTConfig) *JWTService {
	return &JWTService{
		config: config,
	}
}

// Claims defines JWT token content
type Claims struct {
	UserID   int64           `json:"userId"`
	Username string          `json:"username"`
	RoleName models.RoleName `json:"roleName"`
	jwt.RegisteredClaims
}

// GenerateToken creates a session token for a logged in user
func (s *JWTService) GenerateToken(user *models.User) (token string, expiresIn int, err error) {
	if user == nil {
		return "", 0, apperrors.ErrInvalidCredentials
	}

	now := time.Now()
	claims := &Claims{
		UserID:   user.UserID,
		Username: user.Username,
		RoleName: user.RoleName,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.config.TokenExp)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    s.config.TokenIssuer,
			Subject:   strconv.FormatInt(user.UserID, 10),
			ID:        uuid.New().String(),
		},
	}

	token, err = jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.config.SecretKey))
	if err != nil {
		return "", 0, fmt.Errorf("failed to create token: %w", err)
	}

	return token, int(s.config.TokenExp.Seconds()), nil
}

// ValidateToken validates a token
func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		// Validate algorithm
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.SecretKey), nil
	}, jwt.WithIssuer(s.config.TokenIssuer))

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperrors.ErrTokenExpired
		}
		return nil, fmt.Errorf("%w: %v", apperrors.ErrTokenInvalid, err)
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, apperrors.ErrTokenInvalid
}

// ExtractBearerToken extracts the token from the Authorization header
func ExtractBearerToken(authHeader string) (string, error) {
	authHeader = strings.TrimSpace(authHeader)
	if authHeader == "" {
		return "", apperrors.ErrTokenNotFound
	}

	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer ")), nil
	}

	// Otherwise just return the entire header value as the token
	return authHeader, nil
}

// ValidateAndExtractClaims validates and extracts claims from a token string
func (s *JWTService) ValidateAndExtractClaims(tokenString string) (*Claims, error) {
	if tokenString == "" {
		return nil, apperrors.ErrTokenNotFound
	}

	claims, err := s.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}

	if claims.UserID <= 0 || !claims.RoleName.Valid() {
		return nil, apperrors.ErrTokenInvalid
	}

	return claims, nil
}

package auth

import (
	"testing"
	"time"

	"github.com/akademik/akademik/internal/app/models"
	"github.com/akademik/akademik/internal/pkg/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(exp time.Duration) *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:   "test-secret",
		TokenExp:    exp,
		TokenIssuer: "akademik",
	})
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc := newService(time.Hour)
	user := &models.User{UserID: 7, Username: "hoca", RoleName: models.RoleAcademic}

	token, expiresIn, err := svc.GenerateToken(user)
	require.NoError(t, err)
	assert.Equal(t, 3600, expiresIn)

	claims, err := svc.ValidateAndExtractClaims(token)
	require.NoError(t, err)
	assert.Equal(t, int64(7), claims.UserID)
	assert.Equal(t, "hoca", claims.Username)
	assert.Equal(t, models.RoleAcademic, claims.RoleName)
	assert.Equal(t, "7", claims.Subject)
}

func TestExpiredToken(t *testing.T) {
	svc := newService(-time.Minute)
	token, _, err := svc.GenerateToken(&models.User{UserID: 1, RoleName: models.RoleStudent})
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, apperrors.ErrTokenExpired)
}

func TestTokenSignedWithOtherSecret(t *testing.T) {
	token, _, err := newService(time.Hour).GenerateToken(&models.User{UserID: 1, RoleName: models.RoleAdmin})
	require.NoError(t, err)

	other := NewJWTService(JWTConfig{SecretKey: "other", TokenExp: time.Hour, TokenIssuer: "akademik"})
	_, err = other.ValidateToken(token)
	assert.ErrorIs(t, err, apperrors.ErrTokenInvalid)
}

func TestTokenWithUnknownRole(t *testing.T) {
	svc := newService(time.Hour)
	token, _, err := svc.GenerateToken(&models.User{UserID: 1, RoleName: "Guest"})
	require.NoError(t, err)

	_, err = svc.ValidateAndExtractClaims(token)
	assert.ErrorIs(t, err, apperrors.ErrTokenInvalid)
}

func TestExtractBearerToken(t *testing.T) {
	token, err := ExtractBearerToken("Bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	token, err = ExtractBearerToken("abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	_, err = ExtractBearerToken("")
	assert.ErrorIs(t, err, apperrors.ErrTokenNotFound)
}

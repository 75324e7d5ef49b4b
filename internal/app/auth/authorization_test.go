package auth

import (
	"testing"

	"github.com/akademik/akademik/internal/app/models"
	"github.com/akademik/akademik/internal/pkg/apperrors"
	"github.com/stretchr/testify/assert"
)

func TestAuthorizeDisabled(t *testing.T) {
	svc := NewAuthorizationService(false)
	assert.False(t, svc.Enforced())
	assert.NoError(t, svc.Authorize(models.RoleStudent, AdminOnly...))
}

func TestAuthorizeEnforced(t *testing.T) {
	svc := NewAuthorizationService(true)

	assert.NoError(t, svc.Authorize(models.RoleAdmin, AdminOnly...))
	assert.NoError(t, svc.Authorize(models.RoleAcademic, AcademicOrAdmin...))
	assert.ErrorIs(t, svc.Authorize(models.RoleStudent, AcademicOrAdmin...), apperrors.ErrPermissionDenied)
	assert.ErrorIs(t, svc.Authorize(models.RoleAcademic, AdminOnly...), apperrors.ErrPermissionDenied)
}

package auth

import (
	"fmt"

	"github.com/akademik/akademik/internal/app/models"
	"github.com/akademik/akademik/internal/pkg/apperrors"
)

// Role groups used by the route table
var (
	AdminOnly       = []models.RoleName{models.RoleAdmin}
	AcademicOrAdmin = []models.RoleName{models.RoleAcademic, models.RoleAdmin}
	StudentOrAbove  = []models.RoleName{models.RoleStudent, models.RoleAcademic, models.RoleAdmin}
)

// AuthorizationService decides whether a role may call a route. When
// enforcement is off every request is allowed and roles only drive what the
// client shows.
type AuthorizationService struct {
	enforce bool
}

// NewAuthorizationService creates a new AuthorizationService
func NewAuthorizationService(enforce bool) *AuthorizationService {
	return &AuthorizationService{enforce: enforce}
}

// Enforced reports whether role checks are active
func (s *AuthorizationService) Enforced() bool {
	return s != nil && s.enforce
}

// Authorize returns ErrPermissionDenied when role is not in allowed
func (s *AuthorizationService) Authorize(role models.RoleName, allowed ...models.RoleName) error {
	if !s.Enforced() {
		return nil
	}

	for _, r := range allowed {
		if r == role {
			return nil
		}
	}

	return fmt.Errorf("%w: role %q", apperrors.ErrPermissionDenied, role)
}

package repositories

import (
	"context"

	"github.com/akademik/akademik/internal/app/models/dto"
	"github.com/akademik/akademik/internal/app/procedures"
)

// AuthRepository calls the user account procedures
type AuthRepository struct {
	exec Executor
}

// NewAuthRepository creates a new auth repository
func NewAuthRepository(exec Executor) *AuthRepository {
	return &AuthRepository{exec: exec}
}

// Login returns the matching user rows; empty when the credentials are wrong
func (r *AuthRepository) Login(ctx context.Context, req *dto.LoginRequest) ([]procedures.Row, error) {
	call := procedures.New(ProcLoginUser).
		In("Username", procedures.NVarChar(50), req.Username).
		In("PasswordPlain", procedures.NVarChar(255), req.Password)
	return recordset(ctx, r.exec, call)
}

// CreateUser creates an account and returns its NewUserID
func (r *AuthRepository) CreateUser(ctx context.Context, req *dto.RegisterRequest) (any, error) {
	call := procedures.New(ProcCreateUser).
		In("RoleName", procedures.NVarChar(50), req.RoleName).
		In("Username", procedures.NVarChar(50), req.Username).
		In("PasswordPlain", procedures.NVarChar(255), req.Password).
		In("Email", procedures.NVarChar(255), req.Email).
		In("Phone", procedures.NVarChar(20), req.Phone.OrNull()).
		Out("NewUserID", procedures.Int)
	return output(ctx, r.exec, call, "NewUserID")
}

// UpdateContact changes the email and phone of a user
func (r *AuthRepository) UpdateContact(ctx context.Context, req *dto.UpdateContactRequest) error {
	call := procedures.New(ProcUpdateUserContact).
		In("UserID", procedures.Int, req.UserID).
		In("Email", procedures.NVarChar(255), req.Email).
		In("Phone", procedures.NVarChar(20), req.Phone.OrNull())
	return run(ctx, r.exec, call)
}

// Deactivate disables a user account
func (r *AuthRepository) Deactivate(ctx context.Context, req *dto.DeactivateRequest) error {
	call := procedures.New(ProcDeactivateUser).
		In("UserID", procedures.Int, req.UserID).
		In("Reason", procedures.NVarChar(255), req.Reason.OrNull())
	return run(ctx, r.exec, call)
}

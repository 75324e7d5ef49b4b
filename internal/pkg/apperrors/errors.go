package apperrors

import (
	"errors"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	mssql "github.com/microsoft/go-mssqldb"
)

// Common errors
var (
	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrTokenNotFound      = errors.New("token not found")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Request errors
	ErrInvalidParameter = errors.New("invalid parameter")
	ErrMalformedRequest = errors.New("malformed request body")

	// Procedure errors
	ErrProcedureFailed  = errors.New("stored procedure failed")
	ErrNoDatabase       = errors.New("database connection is not available")
	ErrUnsupportedDB    = errors.New("unsupported database driver")
	ErrMissingProcedure = errors.New("stored procedure not found")
)

// ParameterError is returned when a request value cannot be coerced to the
// declared SQL type of a procedure parameter.
type ParameterError struct {
	Parameter string
	Reason    string
}

// Error implements error interface
func (e *ParameterError) Error() string {
	return "Validation failed for parameter '" + e.Parameter + "'. " + e.Reason
}

// Unwrap implements errors.Unwrap interface
func (e *ParameterError) Unwrap() error {
	return ErrInvalidParameter
}

// NewParameterError creates a ParameterError
func NewParameterError(parameter, reason string) *ParameterError {
	return &ParameterError{Parameter: parameter, Reason: reason}
}

// ProcedureError wraps an error raised while executing a stored procedure.
// Error() is the database message as the driver reported it, so it can be
// forwarded to clients unchanged.
type ProcedureError struct {
	Procedure string
	Err       error
}

// Error implements error interface
func (e *ProcedureError) Error() string {
	if e.Err == nil {
		return ErrProcedureFailed.Error()
	}

	var msErr mssql.Error
	if errors.As(e.Err, &msErr) {
		return msErr.Message
	}

	var pgErr *pgconn.PgError
	if errors.As(e.Err, &pgErr) {
		return pgErr.Message
	}

	var myErr *mysql.MySQLError
	if errors.As(e.Err, &myErr) {
		return myErr.Message
	}

	var paramErr *ParameterError
	if errors.As(e.Err, &paramErr) {
		return paramErr.Error()
	}

	return e.Err.Error()
}

// Unwrap implements errors.Unwrap interface
func (e *ProcedureError) Unwrap() error {
	return e.Err
}

// NewProcedureError wraps err with the procedure name
func NewProcedureError(procedure string, err error) *ProcedureError {
	return &ProcedureError{Procedure: procedure, Err: err}
}

// Is reports whether err matches target or any of errList
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}

	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}

	return false
}

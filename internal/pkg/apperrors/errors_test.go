package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	mssql "github.com/microsoft/go-mssqldb"
	"github.com/stretchr/testify/assert"
)

func TestProcedureErrorMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "sql server raiserror",
			err:      mssql.Error{Number: 50000, Class: 16, Message: "Bu ders için kontenjan dolu"},
			expected: "Bu ders için kontenjan dolu",
		},
		{
			name:     "wrapped sql server throw",
			err:      fmt.Errorf("exec: %w", mssql.Error{Number: 51000, Message: "Öğrenci bulunamadı"}),
			expected: "Öğrenci bulunamadı",
		},
		{
			name:     "postgres raise exception",
			err:      &pgconn.PgError{Severity: "ERROR", Code: "P0001", Message: "Kontenjan dolu"},
			expected: "Kontenjan dolu",
		},
		{
			name:     "mysql signal",
			err:      &mysql.MySQLError{Number: 1644, Message: "Öğrenci zaten kayıtlı"},
			expected: "Öğrenci zaten kayıtlı",
		},
		{
			name:     "wrapped postgres error",
			err:      fmt.Errorf("query: %w", &pgconn.PgError{Message: "Ağırlık toplamı 100 olmalı"}),
			expected: "Ağırlık toplamı 100 olmalı",
		},
		{
			name:     "parameter error",
			err:      NewParameterError("OfferingID", "Invalid number."),
			expected: "Validation failed for parameter 'OfferingID'. Invalid number.",
		},
		{
			name:     "plain error",
			err:      errors.New("dial tcp 127.0.0.1:5432: connect: connection refused"),
			expected: "dial tcp 127.0.0.1:5432: connect: connection refused",
		},
		{
			name:     "nil error",
			err:      nil,
			expected: "stored procedure failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			procErr := NewProcedureError("sp_EnrollStudent", tt.err)
			assert.Equal(t, tt.expected, procErr.Error())
		})
	}
}

func TestParameterErrorUnwrap(t *testing.T) {
	err := NewProcedureError("sp_GetGradeBook", NewParameterError("OfferingID", "Invalid number."))

	assert.True(t, errors.Is(err, ErrInvalidParameter))

	var procErr *ProcedureError
	assert.True(t, errors.As(err, &procErr))
	assert.Equal(t, "sp_GetGradeBook", procErr.Procedure)
}

func TestIs(t *testing.T) {
	err := fmt.Errorf("login: %w", ErrInvalidCredentials)

	assert.True(t, Is(err, ErrTokenInvalid, ErrInvalidCredentials))
	assert.False(t, Is(err, ErrTokenInvalid, ErrPermissionDenied))
}

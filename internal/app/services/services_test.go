package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/akademik/akademik/internal/app/models"
	"github.com/akademik/akademik/internal/app/models/dto"
	"github.com/akademik/akademik/internal/app/procedures"
	"github.com/akademik/akademik/internal/app/repositories"
	"github.com/akademik/akademik/internal/pkg/apperrors"
	"github.com/akademik/akademik/internal/pkg/auth"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedExecutor answers each procedure with a canned result or error
type scriptedExecutor struct {
	results map[string]*procedures.Result
	errs    map[string]error
	called  []string
}

func (s *scriptedExecutor) Execute(_ context.Context, call *procedures.Call) (*procedures.Result, error) {
	s.called = append(s.called, call.Name)
	if err, ok := s.errs[call.Name]; ok {
		return nil, err
	}
	if res, ok := s.results[call.Name]; ok {
		return res, nil
	}
	return &procedures.Result{Recordset: []procedures.Row{}, Output: map[string]any{}}, nil
}

func newJWT() *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{SecretKey: "test-secret", TokenExp: time.Hour, TokenIssuer: "akademik"})
}

func loginRequest(t *testing.T) *dto.LoginRequest {
	t.Helper()
	var req dto.LoginRequest
	require.NoError(t, json.Unmarshal([]byte(`{"username":"ayse","password":"x"}`), &req))
	return &req
}

func TestLoginWithoutRowsIsInvalidCredentials(t *testing.T) {
	exec := &scriptedExecutor{}
	svc := NewAuthService(repositories.NewAuthRepository(exec), newJWT(), zerolog.Nop())

	_, err := svc.Login(context.Background(), loginRequest(t))
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLoginReturnsRowAndToken(t *testing.T) {
	row := procedures.Row{"UserID": int64(3), "Username": "ayse", "RoleName": "Academic", "FullName": "Ayşe Yılmaz"}
	exec := &scriptedExecutor{results: map[string]*procedures.Result{
		repositories.ProcLoginUser: {Recordset: []procedures.Row{row}},
	}}
	jwtService := newJWT()
	svc := NewAuthService(repositories.NewAuthRepository(exec), jwtService, zerolog.Nop())

	result, err := svc.Login(context.Background(), loginRequest(t))
	require.NoError(t, err)
	assert.Equal(t, row, result.User)
	require.NotEmpty(t, result.Token)

	claims, err := jwtService.ValidateAndExtractClaims(result.Token)
	require.NoError(t, err)
	assert.Equal(t, int64(3), claims.UserID)
	assert.Equal(t, models.RoleAcademic, claims.RoleName)
}

func TestLoginRowWithoutRoleSkipsToken(t *testing.T) {
	exec := &scriptedExecutor{results: map[string]*procedures.Result{
		repositories.ProcLoginUser: {Recordset: []procedures.Row{{"UserID": int64(3)}}},
	}}
	svc := NewAuthService(repositories.NewAuthRepository(exec), newJWT(), zerolog.Nop())

	result, err := svc.Login(context.Background(), loginRequest(t))
	require.NoError(t, err)
	assert.Empty(t, result.Token)
}

func TestLoginDatabaseErrorIsReturned(t *testing.T) {
	boom := errors.New("Hesap pasif")
	exec := &scriptedExecutor{errs: map[string]error{repositories.ProcLoginUser: boom}}
	svc := NewAuthService(repositories.NewAuthRepository(exec), newJWT(), zerolog.Nop())

	_, err := svc.Login(context.Background(), loginRequest(t))
	assert.ErrorIs(t, err, boom)
}

func TestAcademicCoursesFallsBackToCatalog(t *testing.T) {
	catalog := []procedures.Row{{"OfferingID": int64(1)}, {"OfferingID": int64(2)}}
	exec := &scriptedExecutor{
		errs:    map[string]error{repositories.ProcGetAcademicCourses: errors.New("Could not find stored procedure")},
		results: map[string]*procedures.Result{repositories.ProcGetCourseCatalog: {Recordset: catalog}},
	}
	svc := NewCourseService(repositories.NewCourseRepository(exec), zerolog.Nop())

	rows, err := svc.AcademicCourses(context.Background(), "5", "2025-FALL")
	require.NoError(t, err)
	assert.Equal(t, catalog, rows)
	assert.Equal(t, []string{repositories.ProcGetAcademicCourses, repositories.ProcGetCourseCatalog}, exec.called)
}

func TestAcademicCoursesWithoutFailureMakesOneCall(t *testing.T) {
	own := []procedures.Row{{"OfferingID": int64(7)}}
	exec := &scriptedExecutor{results: map[string]*procedures.Result{
		repositories.ProcGetAcademicCourses: {Recordset: own},
	}}
	svc := NewCourseService(repositories.NewCourseRepository(exec), zerolog.Nop())

	rows, err := svc.AcademicCourses(context.Background(), "5", nil)
	require.NoError(t, err)
	assert.Equal(t, own, rows)
	assert.Equal(t, []string{repositories.ProcGetAcademicCourses}, exec.called)
}

func TestAcademicCoursesFallbackFailure(t *testing.T) {
	exec := &scriptedExecutor{errs: map[string]error{
		repositories.ProcGetAcademicCourses: errors.New("first"),
		repositories.ProcGetCourseCatalog:   errors.New("second"),
	}}
	svc := NewCourseService(repositories.NewCourseRepository(exec), zerolog.Nop())

	_, err := svc.AcademicCourses(context.Background(), "5", nil)
	assert.EqualError(t, err, "second")
}

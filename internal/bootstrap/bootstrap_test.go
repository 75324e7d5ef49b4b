package bootstrap

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/akademik/akademik/internal/app/models"
	"github.com/akademik/akademik/internal/app/procedures"
	"github.com/akademik/akademik/internal/config"
	"github.com/akademik/akademik/internal/db"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	mssql "github.com/microsoft/go-mssqldb"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testApp struct {
	router *gin.Engine
	mock   sqlmock.Sqlmock
	deps   *Dependencies
}

func newTestApp(t *testing.T, enforceRoles bool) *testApp {
	t.Helper()
	return newDialectApp(t, procedures.Postgres, enforceRoles)
}

func newDialectApp(t *testing.T, dialect procedures.Dialect, enforceRoles bool) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	cfg := &config.Config{}
	cfg.Database.Schema = "dbo"
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.Expiration = "1h"
	cfg.JWT.Issuer = "akademik"
	cfg.Auth.EnforceRoles = enforceRoles
	cfg.Metrics.Enabled = true
	cfg.Metrics.Path = "/metrics"

	database := &db.Database{SQL: sqlDB, Dialect: dialect}
	deps, err := BuildDependencies(cfg, database, zerolog.Nop())
	require.NoError(t, err)

	return &testApp{router: SetupRouter(cfg, deps, zerolog.Nop()), mock: mock, deps: deps}
}

func (a *testApp) do(t *testing.T, method, path, body string, headers ...string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var reader *bytes.Reader
	if body != "" {
		reader = bytes.NewReader([]byte(body))
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)

	var decoded map[string]any
	if w.Header().Get("Content-Type") != "" && bytes.HasPrefix(w.Body.Bytes(), []byte("{")) {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &decoded))
	}
	return w, decoded
}

const loginSQL = `SELECT * FROM "dbo"."sp_LoginUser"("Username" => $1::varchar(50), "PasswordPlain" => $2::varchar(255))`

func TestHealth(t *testing.T) {
	app := newTestApp(t, false)

	w, body := app.do(t, http.MethodGet, "/api/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", body["status"])
	_, err := time.Parse(time.RFC3339, body["timestamp"].(string))
	assert.NoError(t, err)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestUnknownRoute(t *testing.T) {
	app := newTestApp(t, false)

	w, body := app.do(t, http.MethodGet, "/api/nothing-here", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Endpoint bulunamadı", body["message"])
}

func TestLoginWithoutRowsIs401(t *testing.T) {
	app := newTestApp(t, false)
	app.mock.ExpectQuery(loginSQL).
		WithArgs("ayse", "wrong").
		WillReturnRows(sqlmock.NewRows([]string{"UserID", "Username", "RoleName"}))

	w, body := app.do(t, http.MethodPost, "/api/auth/login", `{"username":"ayse","password":"wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, map[string]any{"success": false, "message": "Giriş başarısız"}, body)
	assert.NoError(t, app.mock.ExpectationsWereMet())
}

func TestLoginReturnsUserAndToken(t *testing.T) {
	app := newTestApp(t, false)
	app.mock.ExpectQuery(loginSQL).
		WithArgs("ayse", "Sifre123!").
		WillReturnRows(sqlmock.NewRows([]string{"UserID", "Username", "RoleName", "FullName"}).
			AddRow(int64(5), "ayse", "Student", "Ayşe Yılmaz"))

	w, body := app.do(t, http.MethodPost, "/api/auth/login", `{"username":"ayse","password":"Sifre123!"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, body["success"])

	user := body["user"].(map[string]any)
	assert.Equal(t, float64(5), user["UserID"])
	assert.Equal(t, "Ayşe Yılmaz", user["FullName"])
	assert.NotEmpty(t, body["token"])
}

func TestDatabaseMessageIsForwarded(t *testing.T) {
	app := newTestApp(t, false)
	app.mock.ExpectQuery(`SELECT * FROM "dbo"."sp_EnrollStudent"("OfferingID" => $1::integer, "StudentID" => $2::integer)`).
		WithArgs(int64(3), int64(9)).
		WillReturnError(&pgconn.PgError{Severity: "ERROR", Code: "P0001", Message: "Kontenjan dolu"})

	w, body := app.do(t, http.MethodPost, "/api/course/enroll", `{"offeringId":3,"studentId":"9"}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, map[string]any{"success": false, "message": "Kontenjan dolu"}, body)
}

func TestCoercionFailureIs500WithoutQuery(t *testing.T) {
	app := newTestApp(t, false)

	w, body := app.do(t, http.MethodGet, "/api/grading/gradebook/abc", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Validation failed for parameter 'OfferingID'. Invalid number.", body["message"])
	assert.NoError(t, app.mock.ExpectationsWereMet())
}

func TestMalformedBodyIsServerError(t *testing.T) {
	app := newTestApp(t, false)

	w, body := app.do(t, http.MethodPost, "/api/course/enroll", `{"offeringId":`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Sunucu hatası", body["message"])
	assert.NotEmpty(t, body["error"])
}

func TestBulkRecord(t *testing.T) {
	app := newTestApp(t, false)
	app.mock.ExpectQuery(`SELECT * FROM "dbo"."sp_BulkRecordAttendance"("SessionID" => $1::integer, "AttendanceJSON" => $2::text, "RecordedBy" => $3::integer)`).
		WithArgs(int64(12), `[{"studentId":1,"status":"Present"},{"studentId":2,"status":"Late"}]`, int64(4)).
		WillReturnRows(sqlmock.NewRows([]string{"RecordedCount"}).AddRow(int64(2)))

	w, body := app.do(t, http.MethodPost, "/api/attendance/bulk-record",
		`{"sessionId":12,"attendanceData":[{"studentId":1,"status":"Present"},{"studentId":2,"status":"Late"}],"recordedBy":4}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, map[string]any{"success": true, "recordedCount": float64(2)}, body)
	assert.NoError(t, app.mock.ExpectationsWereMet())
}

func TestCreateCourseReturnsOutput(t *testing.T) {
	app := newTestApp(t, false)
	app.mock.ExpectQuery(`SELECT * FROM "dbo"."sp_CreateCourse"("CourseCode" => $1::varchar(20), "CourseName" => $2::varchar(150), "ProgramID" => $3::integer, "Credit" => $4::numeric(4,2), "ECTS" => $5::numeric(4,1), "SemesterOffered" => $6::smallint)`).
		WithArgs("BIL101", "Programlamaya Giriş", int64(2), "3", "5", nil).
		WillReturnRows(sqlmock.NewRows([]string{"NewCourseID"}).AddRow(int64(77)))

	w, body := app.do(t, http.MethodPost, "/api/course",
		`{"courseCode":"BIL101","courseName":"Programlamaya Giriş","programId":2,"credit":3,"ects":5}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, map[string]any{"success": true, "courseId": float64(77)}, body)
}

func TestSQLServerCreateCourseReturnsOutput(t *testing.T) {
	app := newDialectApp(t, procedures.SQLServer, false)
	app.mock.ExpectQuery("DECLARE @NewCourseID Int; "+
		"EXEC [dbo].[sp_CreateCourse] @CourseCode = @p1, @CourseName = @p2, @ProgramID = @p3, @Credit = @p4, @ECTS = @p5, @SemesterOffered = @p6, @NewCourseID = @NewCourseID OUTPUT; "+
		"SELECT @NewCourseID AS [NewCourseID];").
		WithArgs("BIL101", "Programlamaya Giriş", int64(2), "3", "5", nil).
		WillReturnRows(sqlmock.NewRows([]string{"NewCourseID"}).AddRow(int64(77)))

	w, body := app.do(t, http.MethodPost, "/api/course",
		`{"courseCode":"BIL101","courseName":"Programlamaya Giriş","programId":2,"credit":3,"ects":5}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, map[string]any{"success": true, "courseId": float64(77)}, body)
	assert.NoError(t, app.mock.ExpectationsWereMet())
}

func TestSQLServerMessageIsForwarded(t *testing.T) {
	app := newDialectApp(t, procedures.SQLServer, false)
	app.mock.ExpectQuery("EXEC [dbo].[sp_EnrollStudent] @OfferingID = @p1, @StudentID = @p2;").
		WithArgs(int64(3), int64(9)).
		WillReturnError(mssql.Error{Number: 50000, Class: 16, Message: "Kontenjan dolu"})

	w, body := app.do(t, http.MethodPost, "/api/course/enroll", `{"offeringId":3.0,"studentId":"9"}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, map[string]any{"success": false, "message": "Kontenjan dolu"}, body)
}

func TestAcademicCoursesFallback(t *testing.T) {
	app := newTestApp(t, false)
	app.mock.ExpectQuery(`SELECT * FROM "dbo"."sp_GetAcademicCourses"("AcademicID" => $1::integer, "Term" => $2::varchar(20))`).
		WithArgs(int64(8), "2025-FALL").
		WillReturnError(errors.New("function does not exist"))
	app.mock.ExpectQuery(`SELECT * FROM "dbo"."sp_GetCourseCatalog"("ProgramID" => $1::integer, "Term" => $2::varchar(20))`).
		WithArgs(nil, "2025-FALL").
		WillReturnRows(sqlmock.NewRows([]string{"OfferingID", "CourseCode"}).AddRow(int64(1), "BIL101"))

	w, body := app.do(t, http.MethodGet, "/api/course/academic-courses/8?term=2025-FALL", "")
	require.Equal(t, http.StatusOK, w.Code)
	courses := body["courses"].([]any)
	assert.Len(t, courses, 1)
	assert.NoError(t, app.mock.ExpectationsWereMet())
}

func TestEmptyRecordsetIsEmptyArray(t *testing.T) {
	app := newTestApp(t, false)
	app.mock.ExpectQuery(`SELECT * FROM "dbo"."sp_ListNotifications"("UserID" => $1::integer)`).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"NotificationID"}))

	w, _ := app.do(t, http.MethodGet, "/api/reporting/notifications/3", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"notifications":[]}`, w.Body.String())
}

func TestRoleEnforcement(t *testing.T) {
	app := newTestApp(t, true)

	token := func(role models.RoleName) string {
		tok, _, err := app.deps.JWTService.GenerateToken(&models.User{UserID: 1, Username: "u", RoleName: role})
		require.NoError(t, err)
		return "Bearer " + tok
	}

	w, _ := app.do(t, http.MethodGet, "/api/reporting/audit", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, _ = app.do(t, http.MethodGet, "/api/reporting/audit", "", "Authorization", token(models.RoleStudent))
	assert.Equal(t, http.StatusForbidden, w.Code)

	app.mock.ExpectQuery(`SELECT * FROM "dbo"."sp_SearchAuditLog"("DateFrom" => $1::timestamp, "DateTo" => $2::timestamp, "ActionType" => $3::varchar(50), "TableName" => $4::varchar(100))`).
		WithArgs(nil, nil, "UPDATE", nil).
		WillReturnRows(sqlmock.NewRows([]string{"AuditID"}).AddRow(int64(1)))

	w, _ = app.do(t, http.MethodGet, "/api/reporting/audit?actionType=UPDATE", "", "Authorization", token(models.RoleAdmin))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NoError(t, app.mock.ExpectationsWereMet())
}

func TestEnrollRequiresSignedInUser(t *testing.T) {
	app := newTestApp(t, true)

	w, _ := app.do(t, http.MethodPost, "/api/course/enroll", `{"offeringId":3,"studentId":9}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	tok, _, err := app.deps.JWTService.GenerateToken(&models.User{UserID: 9, Username: "ogrenci", RoleName: models.RoleStudent})
	require.NoError(t, err)

	app.mock.ExpectQuery(`SELECT * FROM "dbo"."sp_EnrollStudent"("OfferingID" => $1::integer, "StudentID" => $2::integer)`).
		WithArgs(int64(3), int64(9)).
		WillReturnRows(sqlmock.NewRows(nil))

	w, _ = app.do(t, http.MethodPost, "/api/course/enroll", `{"offeringId":3,"studentId":9}`, "Authorization", "Bearer "+tok)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NoError(t, app.mock.ExpectationsWereMet())
}

func TestRolesNotEnforcedByDefault(t *testing.T) {
	app := newTestApp(t, false)
	app.mock.ExpectQuery(`SELECT * FROM "dbo"."sp_SearchAuditLog"("DateFrom" => $1::timestamp, "DateTo" => $2::timestamp, "ActionType" => $3::varchar(50), "TableName" => $4::varchar(100))`).
		WithArgs(nil, nil, nil, nil).
		WillReturnRows(sqlmock.NewRows([]string{"AuditID"}))

	w, _ := app.do(t, http.MethodGet, "/api/reporting/audit", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	app := newTestApp(t, false)
	app.do(t, http.MethodGet, "/api/health", "")

	w := httptest.NewRecorder()
	app.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "akademik_http_requests_total")
}

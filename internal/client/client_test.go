package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/akademik/akademik/internal/app/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorded struct {
	method string
	path   string
	query  string
	auth   string
	body   map[string]any
}

func newServer(t *testing.T, status int, response string) (*Client, *recorded) {
	t.Helper()
	rec := &recorded{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec.method = r.Method
		rec.path = r.URL.Path
		rec.query = r.URL.RawQuery
		rec.auth = r.Header.Get("Authorization")
		if data, _ := io.ReadAll(r.Body); len(data) > 0 {
			assert.NoError(t, json.Unmarshal(data, &rec.body))
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, response)
	}))
	t.Cleanup(srv.Close)
	return New(srv.URL + "/api"), rec
}

func TestLogin(t *testing.T) {
	c, rec := newServer(t, http.StatusOK, `{"success":true,"user":{"UserID":7,"Username":"ayse","RoleName":"Student"},"token":"tok"}`)

	user, token, err := c.Login(context.Background(), "ayse", "secret")
	require.NoError(t, err)
	assert.Equal(t, int64(7), user.UserID)
	assert.Equal(t, models.RoleStudent, user.RoleName)
	assert.Equal(t, "tok", token)

	assert.Equal(t, http.MethodPost, rec.method)
	assert.Equal(t, "/api/auth/login", rec.path)
	assert.Equal(t, map[string]any{"username": "ayse", "password": "secret"}, rec.body)
}

func TestLoginFailed(t *testing.T) {
	c, _ := newServer(t, http.StatusUnauthorized, `{"success":false,"message":"Giriş başarısız"}`)

	_, _, err := c.Login(context.Background(), "ayse", "wrong")
	require.Error(t, err)
	assert.Equal(t, http.StatusUnauthorized, StatusOf(err))
	assert.Equal(t, "Giriş başarısız", err.Error())
}

func TestErrorWithoutMessage(t *testing.T) {
	c, _ := newServer(t, http.StatusBadGateway, `<html>bad gateway</html>`)

	_, err := c.Notifications(context.Background(), 1)
	require.Error(t, err)
	assert.Equal(t, DefaultMessage, err.Error())
	assert.Equal(t, http.StatusBadGateway, StatusOf(err))
}

func TestDatabaseMessageForwarded(t *testing.T) {
	c, _ := newServer(t, http.StatusInternalServerError, `{"success":false,"message":"Kontenjan dolu"}`)

	err := c.Enroll(context.Background(), 3, 9)
	require.Error(t, err)
	assert.Equal(t, "Kontenjan dolu", err.Error())
}

func TestCatalogQuery(t *testing.T) {
	c, rec := newServer(t, http.StatusOK, `{"success":true,"courses":[{"OfferingID":1,"CourseCode":"BIL101","CourseName":"Programlama","Term":"2025-FALL","Section":"01"}]}`)

	courses, err := c.Catalog(context.Background(), nil, "2025-FALL")
	require.NoError(t, err)
	require.Len(t, courses, 1)
	assert.Equal(t, "BIL101", courses[0].CourseCode)
	assert.Equal(t, "term=2025-FALL", rec.query)

	program := int64(4)
	_, err = c.Catalog(context.Background(), &program, "")
	require.NoError(t, err)
	assert.Equal(t, "programId=4", rec.query)
}

func TestTokenSent(t *testing.T) {
	c, rec := newServer(t, http.StatusOK, `{"success":true,"logs":[]}`)
	c.SetToken("abc")

	logs, err := c.SearchAuditLog(context.Background(), AuditFilter{ActionType: "StatusChange"})
	require.NoError(t, err)
	assert.Empty(t, logs)
	assert.Equal(t, "Bearer abc", rec.auth)
	assert.Equal(t, "actionType=StatusChange", rec.query)
}

func TestBulkRecord(t *testing.T) {
	c, rec := newServer(t, http.StatusOK, `{"success":true,"recordedCount":2}`)

	n, err := c.BulkRecord(context.Background(), 11, []models.AttendanceMark{
		{StudentID: 1, Status: models.AttendancePresent},
		{StudentID: 2, Status: models.AttendanceLate},
	}, 5)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
	assert.Equal(t, "/api/attendance/bulk-record", rec.path)
	assert.Len(t, rec.body["attendanceData"], 2)
}

func TestDefineComponent(t *testing.T) {
	c, rec := newServer(t, http.StatusOK, `{"success":true,"componentId":12}`)

	componentID, err := c.DefineComponent(context.Background(), 3, "Vize", decimal.NewFromInt(40), true)
	require.NoError(t, err)
	require.NotNil(t, componentID)
	assert.Equal(t, int64(12), *componentID)
	assert.Equal(t, true, rec.body["isMandatory"])
	assert.Equal(t, "Vize", rec.body["componentName"])
}

func TestMarkNotificationRead(t *testing.T) {
	c, rec := newServer(t, http.StatusOK, `{"success":true}`)

	require.NoError(t, c.MarkNotificationRead(context.Background(), 8))
	assert.Equal(t, http.MethodPut, rec.method)
	assert.Equal(t, "/api/reporting/notifications/8/read", rec.path)
}

func TestHealth(t *testing.T) {
	c, _ := newServer(t, http.StatusOK, `{"status":"ok","timestamp":"2025-09-15T08:00:00.000Z"}`)

	health, err := c.Health(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ok", health.Status)
}

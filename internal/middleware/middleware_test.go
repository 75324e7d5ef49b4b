package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	appauth "github.com/akademik/akademik/internal/app/auth"
	"github.com/akademik/akademik/internal/app/models"
	"github.com/akademik/akademik/internal/app/models/dto"
	"github.com/akademik/akademik/internal/pkg/apperrors"
	"github.com/akademik/akademik/internal/pkg/auth"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestHandleAPIError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		body   string
	}{
		{name: "invalid credentials", err: apperrors.ErrInvalidCredentials, status: 401, body: `{"success":false,"message":"Giriş başarısız"}`},
		{name: "expired token", err: apperrors.ErrTokenExpired, status: 401, body: `{"success":false,"message":"Oturum geçersiz"}`},
		{name: "permission", err: apperrors.ErrPermissionDenied, status: 403, body: `{"success":false,"message":"Bu işlem için yetkiniz yok"}`},
		{name: "database", err: apperrors.NewProcedureError("sp_EnrollStudent", errors.New("Kontenjan dolu")), status: 500, body: `{"success":false,"message":"Kontenjan dolu"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			HandleAPIError(c, tt.err)

			assert.Equal(t, tt.status, w.Code)
			assert.JSONEq(t, tt.body, w.Body.String())
		})
	}
}

func TestRecovery(t *testing.T) {
	router := gin.New()
	router.Use(Recovery())
	router.GET("/boom", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"success":false,"message":"Sunucu hatası","error":"boom"}`, w.Body.String())
}

func TestBindBody(t *testing.T) {
	bind := func(contentType, body string) (dto.EnrollRequest, *httptest.ResponseRecorder, bool) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
		if contentType != "" {
			c.Request.Header.Set("Content-Type", contentType)
		}
		var req dto.EnrollRequest
		ok := BindBody(c, &req)
		return req, w, ok
	}

	req, _, ok := bind("application/json", `{"offeringId":3,"studentId":"9"}`)
	require.True(t, ok)
	assert.Equal(t, json.Number("3"), req.OfferingID.Raw())
	assert.Equal(t, "9", req.StudentID.Raw())

	req, _, ok = bind("application/x-www-form-urlencoded", "offeringId=4&studentId=10")
	require.True(t, ok)
	assert.Equal(t, "4", req.OfferingID.Raw())

	req, _, ok = bind("", "")
	require.True(t, ok)
	assert.False(t, req.OfferingID.IsSet())

	_, w, ok := bind("application/json", `{"offeringId":`)
	assert.False(t, ok)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Sunucu hatası")
}

func TestRequestID(t *testing.T) {
	router := gin.New()
	router.Use(RequestID())
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Len(t, w.Header().Get(RequestIDHeader), 36)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, "abc", w.Header().Get(RequestIDHeader))
}

func TestSessionAndRoles(t *testing.T) {
	jwtService := auth.NewJWTService(auth.JWTConfig{SecretKey: "s", TokenExp: time.Hour, TokenIssuer: "akademik"})
	m := NewAuthMiddleware(jwtService, appauth.NewAuthorizationService(true))

	router := gin.New()
	router.Use(m.Session())
	router.GET("/staff", m.RequireRoles(appauth.AcademicOrAdmin...), func(c *gin.Context) {
		role, _ := RoleFromContext(c)
		c.String(http.StatusOK, string(role))
	})

	call := func(header string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/staff", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	assert.Equal(t, http.StatusUnauthorized, call("").Code)
	assert.Equal(t, http.StatusUnauthorized, call("Bearer not-a-token").Code)

	student, _, err := jwtService.GenerateToken(&models.User{UserID: 2, Username: "s", RoleName: models.RoleStudent})
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, call("Bearer "+student).Code)

	academic, _, err := jwtService.GenerateToken(&models.User{UserID: 3, Username: "a", RoleName: models.RoleAcademic})
	require.NoError(t, err)
	w := call("Bearer " + academic)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Academic", w.Body.String())
}

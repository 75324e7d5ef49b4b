package middleware

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/akademik/akademik/internal/app/models/dto"
	"github.com/akademik/akademik/internal/pkg/apperrors"
	"github.com/akademik/akademik/internal/pkg/logger"
	"github.com/gin-gonic/gin"
)

// Fixed client messages
const (
	MessageLoginFailed  = "Giriş başarısız"
	MessageNotFound     = "Endpoint bulunamadı"
	MessageServerError  = "Sunucu hatası"
	MessageUnauthorized = "Oturum geçersiz"
	MessageForbidden    = "Bu işlem için yetkiniz yok"
)

// HandleAPIError writes the failure envelope for err. Database and parameter
// errors are forwarded with their original message.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse(MessageLoginFailed))
	case apperrors.Is(err, apperrors.ErrTokenExpired, apperrors.ErrTokenInvalid, apperrors.ErrTokenNotFound):
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse(MessageUnauthorized))
	case errors.Is(err, apperrors.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, dto.NewErrorResponse(MessageForbidden))
	case errors.Is(err, apperrors.ErrMalformedRequest):
		logger.Ctx(c.Request.Context()).Error().Err(err).Msg(MessageServerError)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Success: false,
			Message: MessageServerError,
			Error:   err.Error(),
		})
	default:
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(err.Error()))
	}
}

// NotFound answers requests that match no route
func NotFound() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(MessageNotFound))
	}
}

// Recovery turns a panic into a 500 server error envelope
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		err := fmt.Errorf("%v", recovered)
		logger.Ctx(c.Request.Context()).Error().
			Err(err).
			Str("path", c.Request.URL.Path).
			Msg(MessageServerError)

		c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{
			Success: false,
			Message: MessageServerError,
			Error:   err.Error(),
		})
	})
}

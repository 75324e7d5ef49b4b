package controllers

import (
	"net/http"

	"github.com/akademik/akademik/internal/app/models/dto"
	"github.com/akademik/akademik/internal/app/services"
	"github.com/akademik/akademik/internal/middleware"
	"github.com/gin-gonic/gin"
)

// AuthController handles login and account endpoints
type AuthController struct {
	authService *services.AuthService
}

// NewAuthController creates a new AuthController
func NewAuthController(authService *services.AuthService) *AuthController {
	return &AuthController{
		authService: authService,
	}
}

// Login handles user login
// @Summary User login
// @Description Checks the credentials with sp_LoginUser and returns the user row and a session token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 401 {object} dto.ErrorResponse "Giriş başarısız"
// @Failure 500 {object} dto.ErrorResponse "Database error"
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if !middleware.BindBody(ctx, &req) {
		return
	}

	result, err := c.authService.Login(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	body := gin.H{"success": true, "user": result.User}
	if result.Token != "" {
		body["token"] = result.Token
	}
	ctx.JSON(http.StatusOK, body)
}

// Register handles user creation
// @Summary Create user
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "User information"
// @Success 200 {object} map[string]interface{} "{success, userId}"
// @Failure 500 {object} dto.ErrorResponse
// @Router /auth/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req dto.RegisterRequest
	if !middleware.BindBody(ctx, &req) {
		return
	}

	userID, err := c.authService.Register(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ok(ctx, "userId", userID)
}

// UpdateContact handles contact updates
// @Summary Update user contact
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.UpdateContactRequest true "Contact information"
// @Success 200 {object} dto.SuccessResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /auth/contact [put]
func (c *AuthController) UpdateContact(ctx *gin.Context) {
	var req dto.UpdateContactRequest
	if !middleware.BindBody(ctx, &req) {
		return
	}

	if err := c.authService.UpdateContact(ctx.Request.Context(), &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ok(ctx, "", nil)
}

// Deactivate handles account deactivation
// @Summary Deactivate user
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.DeactivateRequest true "User and reason"
// @Success 200 {object} dto.SuccessResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /auth/deactivate [post]
func (c *AuthController) Deactivate(ctx *gin.Context) {
	var req dto.DeactivateRequest
	if !middleware.BindBody(ctx, &req) {
		return
	}

	if err := c.authService.Deactivate(ctx.Request.Context(), &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ok(ctx, "", nil)
}

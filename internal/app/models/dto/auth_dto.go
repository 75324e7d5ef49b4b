package dto

import "github.com/akademik/akademik/internal/app/models"

// LoginRequest represents login credentials
type LoginRequest struct {
	Username Param `json:"username" swaggertype:"string" example:"ayse.yilmaz"`
	Password Param `json:"password" swaggertype:"string" example:"Sifre123!"`
}

// LoginResponse is returned by a successful login
type LoginResponse struct {
	Success bool         `json:"success" example:"true"`
	User    *models.User `json:"user"`
	Token   string       `json:"token,omitempty"`
}

// RegisterRequest creates a user account
type RegisterRequest struct {
	RoleName Param `json:"roleName" swaggertype:"string" example:"Admin"`
	Username Param `json:"username" swaggertype:"string"`
	Password Param `json:"password" swaggertype:"string"`
	Email    Param `json:"email" swaggertype:"string"`
	Phone    Param `json:"phone" swaggertype:"string"`
}

// UpdateContactRequest changes a user's email and phone
type UpdateContactRequest struct {
	UserID Param `json:"userId" swaggertype:"integer"`
	Email  Param `json:"email" swaggertype:"string"`
	Phone  Param `json:"phone" swaggertype:"string"`
}

// DeactivateRequest deactivates a user account
type DeactivateRequest struct {
	UserID Param `json:"userId" swaggertype:"integer"`
	Reason Param `json:"reason" swaggertype:"string"`
}

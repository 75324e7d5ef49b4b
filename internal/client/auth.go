package client

import (
	"context"
	"net/http"

	"github.com/akademik/akademik/internal/app/models"
	"github.com/akademik/akademik/internal/app/models/dto"
)

// Health checks that the gateway is up
func (c *Client) Health(ctx context.Context) (*dto.HealthResponse, error) {
	env, err := c.do(ctx, http.MethodGet, "/health", nil, nil)
	if err != nil {
		return nil, err
	}
	var health dto.HealthResponse
	if err := env.decode("status", &health.Status); err != nil {
		return nil, err
	}
	if err := env.decode("timestamp", &health.Timestamp); err != nil {
		return nil, err
	}
	return &health, nil
}

// Login returns the user row and session token for valid credentials
func (c *Client) Login(ctx context.Context, username, password string) (*models.User, string, error) {
	env, err := c.do(ctx, http.MethodPost, "/auth/login", nil, dto.LoginRequest{
		Username: dto.NewParam(username),
		Password: dto.NewParam(password),
	})
	if err != nil {
		return nil, "", err
	}

	var user models.User
	if err := env.decode("user", &user); err != nil {
		return nil, "", err
	}
	var token string
	if err := env.decode("token", &token); err != nil {
		return nil, "", err
	}
	return &user, token, nil
}

// Register creates a user and returns its id
func (c *Client) Register(ctx context.Context, req dto.RegisterRequest) (*int64, error) {
	var userID *int64
	err := c.fetch(ctx, http.MethodPost, "/auth/register", nil, req, "userId", &userID)
	return userID, err
}

// UpdateContact changes a user's email and phone
func (c *Client) UpdateContact(ctx context.Context, userID int64, email, phone string) error {
	return c.fetch(ctx, http.MethodPut, "/auth/contact", nil, dto.UpdateContactRequest{
		UserID: dto.NewParam(userID),
		Email:  dto.NewParam(email),
		Phone:  dto.NewParam(phone),
	}, "", nil)
}

// Deactivate deactivates a user account
func (c *Client) Deactivate(ctx context.Context, userID int64, reason string) error {
	return c.fetch(ctx, http.MethodPost, "/auth/deactivate", nil, dto.DeactivateRequest{
		UserID: dto.NewParam(userID),
		Reason: dto.NewParam(reason),
	}, "", nil)
}

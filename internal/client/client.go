// Package client is a typed HTTP client for the gateway. Every method maps to
// one route and decodes the keyed payload of the success envelope.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// DefaultMessage is reported when a failed response carries no message
const DefaultMessage = "Bir hata oluştu"

// DefaultBaseURL is the gateway address used when none is configured
const DefaultBaseURL = "http://localhost:5000/api"

// APIError is a non-success answer of the gateway
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

// StatusOf returns the HTTP status of an APIError, or 0
func StatusOf(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return 0
}

// Client talks to the gateway
type Client struct {
	baseURL    string
	httpClient *http.Client
	token      string
	log        zerolog.Logger
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithToken sets the session token sent as a bearer token
func WithToken(token string) Option {
	return func(c *Client) {
		c.token = token
	}
}

// WithLogger sets the client logger
func WithLogger(log zerolog.Logger) Option {
	return func(c *Client) {
		c.log = log
	}
}

// New creates a client for the gateway at baseURL, e.g. http://host:5000/api
func New(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		log: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetToken replaces the session token
func (c *Client) SetToken(token string) {
	c.token = token
}

type envelope map[string]json.RawMessage

func (e envelope) decode(key string, v any) error {
	raw, ok := e[key]
	if !ok || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("failed to decode %s: %w", key, err)
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any) (envelope, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	var env envelope
	decodeErr := json.Unmarshal(data, &env)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{Status: resp.StatusCode, Message: DefaultMessage}
		if decodeErr == nil {
			var msg string
			if err := env.decode("message", &msg); err == nil && msg != "" {
				apiErr.Message = msg
			}
		}
		c.log.Error().
			Str("method", method).
			Str("path", path).
			Int("status", resp.StatusCode).
			Msg(apiErr.Message)
		return nil, apiErr
	}

	if decodeErr != nil {
		return nil, fmt.Errorf("failed to decode response: %w", decodeErr)
	}

	var success bool
	if err := env.decode("success", &success); err == nil && !success {
		if _, ok := env["success"]; ok {
			apiErr := &APIError{Status: resp.StatusCode, Message: DefaultMessage}
			var msg string
			if err := env.decode("message", &msg); err == nil && msg != "" {
				apiErr.Message = msg
			}
			return nil, apiErr
		}
	}
	return env, nil
}

func (c *Client) fetch(ctx context.Context, method, path string, query url.Values, body any, key string, v any) error {
	env, err := c.do(ctx, method, path, query, body)
	if err != nil {
		return err
	}
	if key == "" {
		return nil
	}
	return env.decode(key, v)
}

func id(n int64) string {
	return strconv.FormatInt(n, 10)
}

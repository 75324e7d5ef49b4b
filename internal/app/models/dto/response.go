package dto

// SuccessResponse is returned by procedures without a result
type SuccessResponse struct {
	Success bool `json:"success" example:"true"`
}

// ErrorResponse is the failure envelope. Message carries the database error
// text unchanged.
type ErrorResponse struct {
	Success bool   `json:"success" example:"false"`
	Message string `json:"message" example:"Kontenjan dolu"`
	Error   string `json:"error,omitempty"`
}

// NewErrorResponse creates a failure envelope
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Success: false, Message: message}
}

// HealthResponse is returned by the health check
type HealthResponse struct {
	Status    string `json:"status" example:"ok"`
	Timestamp string `json:"timestamp" example:"2025-09-15T08:00:00.000Z"`
}

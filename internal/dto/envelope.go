package dto

// ErrorResponse is the failure envelope shared by every endpoint.
type ErrorResponse struct {
	Success bool   `json:"success" example:"false"`
	Error   string `json:"error" example:"failed to fetch random user"`
}

func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Success: false, Error: message}
}

// HealthResponse is returned by GET /api/health.
type HealthResponse struct {
	Status string `json:"status" example:"OK"`
	Port   int    `json:"port" example:"3000"`
}

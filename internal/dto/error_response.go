package dto

// ErrorResponse is the uniform error body returned by every failing
// endpoint, including the authentication gate.
type ErrorResponse struct {
	ErrorCode string `json:"errorCode"`
	Message   string `json:"message"`
}

package dto

// APIResponse is the envelope every endpoint returns.
type APIResponse struct {
	StatusCode int    `json:"statusCode"`
	Data       any    `json:"data"`
	Message    string `json:"message"`
	Success    bool   `json:"success"`
	ErrorKind  string `json:"errorKind,omitempty"`
}

// NewSuccessResponse wraps payload data in the response envelope.
func NewSuccessResponse(statusCode int, data any, message string) APIResponse {
	return APIResponse{
		StatusCode: statusCode,
		Data:       data,
		Message:    message,
		Success:    true,
	}
}

// NewErrorResponse builds the envelope for a failed request. Data is always
// null on errors.
func NewErrorResponse(statusCode int, message string, errorKind string) APIResponse {
	return APIResponse{
		StatusCode: statusCode,
		Message:    message,
		Success:    false,
		ErrorKind:  errorKind,
	}
}

package dto

// APIResponse is the uniform response envelope: data on success, a
// structured error otherwise, never both.
type APIResponse struct {
	Data  interface{}  `json:"data"`
	Error *ErrorDetail `json:"error"`
}

// NewSuccessResponse wraps payload data in the standard envelope
func NewSuccessResponse(data interface{}) APIResponse {
	return APIResponse{Data: data}
}

// NewErrorEnvelope wraps an error detail in the standard envelope
func NewErrorEnvelope(detail *ErrorDetail) APIResponse {
	return APIResponse{Error: detail}
}

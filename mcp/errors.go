package mcp

// ErrorResponse is the uniform error envelope for every failed operation.
// Code repeats the HTTP status of the response carrying it.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

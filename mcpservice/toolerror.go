package mcpservice

import "fmt"

// ToolErrorKind discriminates the structured tool error shapes.
type ToolErrorKind string

const (
	ToolErrorMissingParameter ToolErrorKind = "MissingParameter"
	ToolErrorInvalidType      ToolErrorKind = "InvalidType"
	ToolErrorInvalidValue     ToolErrorKind = "InvalidValue"
	ToolErrorExecutionFailed  ToolErrorKind = "ExecutionFailed"
	ToolErrorTimeout          ToolErrorKind = "Timeout"
)

// ToolError is a structured error tool implementations can return instead of
// an ad-hoc message. The dispatch engine treats it like any other capability
// error; its value is the consistent message and status mapping.
type ToolError struct {
	Kind     ToolErrorKind
	Param    string
	Expected string
	Got      string
	Reason   string
	Detail   string
	Seconds  uint64
}

// MissingParameter reports an absent required parameter.
func MissingParameter(param string) *ToolError {
	return &ToolError{Kind: ToolErrorMissingParameter, Param: param}
}

// InvalidType reports a parameter of the wrong type.
func InvalidType(param, expected, got string) *ToolError {
	return &ToolError{Kind: ToolErrorInvalidType, Param: param, Expected: expected, Got: got}
}

// InvalidValue reports a well-typed but unacceptable parameter value.
func InvalidValue(param, reason string) *ToolError {
	return &ToolError{Kind: ToolErrorInvalidValue, Param: param, Reason: reason}
}

// ExecutionFailed reports a failure in the tool's own logic.
func ExecutionFailed(detail string) *ToolError {
	return &ToolError{Kind: ToolErrorExecutionFailed, Detail: detail}
}

// ExecutionTimeout reports that the tool gave up after the given number of
// seconds.
func ExecutionTimeout(seconds uint64) *ToolError {
	return &ToolError{Kind: ToolErrorTimeout, Seconds: seconds}
}

func (e *ToolError) Error() string {
	switch e.Kind {
	case ToolErrorMissingParameter:
		return fmt.Sprintf("Missing required parameter: %s", e.Param)
	case ToolErrorInvalidType:
		return fmt.Sprintf("Invalid parameter '%s': expected %s, got %s", e.Param, e.Expected, e.Got)
	case ToolErrorInvalidValue:
		return fmt.Sprintf("Invalid value for parameter '%s': %s", e.Param, e.Reason)
	case ToolErrorExecutionFailed:
		return fmt.Sprintf("Execution failed: %s", e.Detail)
	case ToolErrorTimeout:
		return fmt.Sprintf("Execution timed out after %d seconds", e.Seconds)
	}
	return string(e.Kind)
}

// StatusCode maps the error kind to an HTTP status: parameter problems are
// 400, execution failures 500, timeouts 504.
func (e *ToolError) StatusCode() int {
	switch e.Kind {
	case ToolErrorMissingParameter, ToolErrorInvalidType, ToolErrorInvalidValue:
		return 400
	case ToolErrorTimeout:
		return 504
	default:
		return 500
	}
}

// ToolErrorResponse is the JSON shape of a structured tool error.
type ToolErrorResponse struct {
	Code      int    `json:"code"`
	Message   string `json:"message"`
	ErrorType string `json:"error_type"`
	Details   string `json:"details,omitempty"`
}

// Response renders the error as its wire representation.
func (e *ToolError) Response() ToolErrorResponse {
	resp := ToolErrorResponse{
		Code:      e.StatusCode(),
		Message:   e.Error(),
		ErrorType: string(e.Kind),
	}
	switch e.Kind {
	case ToolErrorInvalidType:
		resp.Details = fmt.Sprintf("Parameter '%s' should be %s but got %s", e.Param, e.Expected, e.Got)
	case ToolErrorInvalidValue:
		resp.Details = fmt.Sprintf("Parameter '%s' is invalid: %s", e.Param, e.Reason)
	}
	return resp
}

package mcpserver

import (
	"fmt"
	"net/http"
)

// ErrorKind classifies a registration or dispatch failure.
type ErrorKind string

const (
	// KindInvalidIdentifier indicates a name or URI that fails syntactic
	// validation. Caller error.
	KindInvalidIdentifier ErrorKind = "invalid_identifier"
	// KindSchemaViolation indicates arguments rejected by the tool's declared
	// input schema. Caller error.
	KindSchemaViolation ErrorKind = "schema_violation"
	// KindNotFound indicates a syntactically valid identifier with no
	// registration.
	KindNotFound ErrorKind = "not_found"
	// KindSchemaCompileFailure indicates a registered schema that does not
	// compile. Server misconfiguration; the envelope stays generic and the
	// compile error goes to the log.
	KindSchemaCompileFailure ErrorKind = "schema_compile_failure"
	// KindCapabilityError indicates the capability itself returned an error.
	KindCapabilityError ErrorKind = "capability_error"
	// KindTimeout indicates the capability did not finish within the
	// configured duration.
	KindTimeout ErrorKind = "timeout"
	// KindSerializationFailure indicates a tool result that could not be
	// encoded as JSON.
	KindSerializationFailure ErrorKind = "serialization_failure"
)

// Error is the failure outcome of every registration and dispatch operation.
// Message is written to be returned to callers verbatim.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string { return e.Message }

// HTTPStatus maps the error kind to the status code its response envelope
// carries.
func (e *Error) HTTPStatus() int {
	switch e.Kind {
	case KindInvalidIdentifier, KindSchemaViolation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func newError(kind ErrorKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

package mcpservice

import "testing"

func TestToolError_Messages(t *testing.T) {
	cases := []struct {
		name string
		err  *ToolError
		msg  string
		code int
	}{
		{"missing", MissingParameter("city"), "Missing required parameter: city", 400},
		{"type", InvalidType("count", "integer", "string"), "Invalid parameter 'count': expected integer, got string", 400},
		{"value", InvalidValue("unit", "must be celsius or fahrenheit"), "Invalid value for parameter 'unit': must be celsius or fahrenheit", 400},
		{"exec", ExecutionFailed("backend unavailable"), "Execution failed: backend unavailable", 500},
		{"timeout", ExecutionTimeout(30), "Execution timed out after 30 seconds", 504},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.err.Error(); got != tc.msg {
				t.Fatalf("Error() = %q, want %q", got, tc.msg)
			}
			if got := tc.err.StatusCode(); got != tc.code {
				t.Fatalf("StatusCode() = %d, want %d", got, tc.code)
			}
		})
	}
}

func TestToolError_Response(t *testing.T) {
	resp := InvalidType("count", "integer", "string").Response()
	if resp.Code != 400 {
		t.Fatalf("code = %d", resp.Code)
	}
	if resp.ErrorType != string(ToolErrorInvalidType) {
		t.Fatalf("error_type = %q", resp.ErrorType)
	}
	if resp.Details != "Parameter 'count' should be integer but got string" {
		t.Fatalf("details = %q", resp.Details)
	}

	resp = InvalidValue("unit", "unsupported").Response()
	if resp.Details != "Parameter 'unit' is invalid: unsupported" {
		t.Fatalf("details = %q", resp.Details)
	}

	resp = MissingParameter("city").Response()
	if resp.Details != "" {
		t.Fatalf("missing parameter should carry no details, got %q", resp.Details)
	}
}

package resthttp

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcpkit/mcp-http-go/mcpserver"
)

func TestRequestID_GeneratedWhenAbsent(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := doJSON(t, h, http.MethodGet, "/health", nil)
	id := rec.Header().Get("X-Request-Id")
	require.NotEmpty(t, id)
	assert.NoError(t, uuid.Validate(id))
}

func TestRequestID_EchoesInbound(t *testing.T) {
	h, _ := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-Id", "req-42")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, "req-42", rec.Header().Get("X-Request-Id"))
}

func TestCORS_HeadersOnEveryResponse(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := doJSON(t, h, http.MethodGet, "/health", nil)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "GET, POST, OPTIONS", rec.Header().Get("Access-Control-Allow-Methods"))
	assert.Equal(t, "Content-Type, Authorization, X-Request-Id", rec.Header().Get("Access-Control-Allow-Headers"))
}

func TestCORS_Preflight(t *testing.T) {
	h, _ := newTestHandler(t)

	req := httptest.NewRequest(http.MethodOptions, "/tools/call", nil)
	req.Header.Set("Origin", "https://example.com")
	req.Header.Set("Access-Control-Request-Method", "POST")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Empty(t, rec.Body.String())
}

func TestBodyLimit_RejectsOversizedPost(t *testing.T) {
	h, _ := newTestHandler(t, mcpserver.WithMaxBodySize(64))

	big := `{"name":"echo","arguments":{"message":"` + strings.Repeat("x", 256) + `"}}`
	req := httptest.NewRequest(http.MethodPost, "/tools/call", strings.NewReader(big))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeErrorBody(t, rec)
	assert.Equal(t, "Invalid JSON in request body", resp.Message)
}

func TestBodyLimit_LeavesGetAlone(t *testing.T) {
	h, _ := newTestHandler(t, mcpserver.WithMaxBodySize(1))

	rec := doJSON(t, h, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLogging_EmitsStartAndCompletionRecords(t *testing.T) {
	var buf bytes.Buffer
	srv := mcpserver.NewServer(mcpserver.WithLogger(discardLogger()))
	h := New(srv, WithLogger(slog.New(slog.NewTextHandler(&buf, nil))))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-Id", "log-test")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	out := buf.String()
	assert.Contains(t, out, "http.request.start")
	assert.Contains(t, out, "http.request.done")
	assert.Contains(t, out, "req.id=log-test")
	assert.Contains(t, out, "req.path=/health")
	assert.Contains(t, out, "status=200")
}

package resthttp

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/elnormous/contenttype"

	"github.com/mcpkit/mcp-http-go/internal/logctx"
	"github.com/mcpkit/mcp-http-go/mcp"
	"github.com/mcpkit/mcp-http-go/mcpserver"
)

var jsonMediaType = contenttype.NewMediaType("application/json")

// writeJSON writes v as the response body with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", jsonMediaType.String())
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError writes the uniform error envelope, repeating the HTTP status in
// the code field.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, mcp.ErrorResponse{Code: status, Message: message})
}

// Option configures the Handler.
type Option func(*newConfig)

type newConfig struct {
	logger *slog.Logger
}

// WithLogger sets the logger for request events. Defaults to slog.Default().
func WithLogger(log *slog.Logger) Option {
	return func(c *newConfig) { c.logger = log }
}

// Handler serves the REST surface for a capability server.
type Handler struct {
	srv *mcpserver.Server
	log *slog.Logger
	mux http.Handler
}

// New builds the HTTP surface for srv: the seven capability routes behind
// request ID, logging, CORS and body size middleware.
func New(srv *mcpserver.Server, opts ...Option) *Handler {
	cfg := newConfig{logger: slog.Default()}
	for _, opt := range opts {
		opt(&cfg)
	}

	h := &Handler{
		srv: srv,
		log: slog.New(logctx.Handler{Handler: cfg.logger.Handler()}),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", h.handleHealth)
	mux.HandleFunc("GET /tools/list", h.handleListTools)
	mux.HandleFunc("POST /tools/call", h.handleCallTool)
	mux.HandleFunc("GET /resources/list", h.handleListResources)
	mux.HandleFunc("POST /resources/read", h.handleReadResource)
	mux.HandleFunc("GET /prompts/list", h.handleListPrompts)
	mux.HandleFunc("POST /prompts/get", h.handleGetPrompt)

	h.mux = chain(mux,
		requestID(),
		logging(h.log),
		cors(),
		bodyLimit(srv.Config().MaxBodySize),
	)
	return h
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.srv.Health())
}

func (h *Handler) handleListTools(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, mcp.ListToolsResult{Tools: h.srv.ListTools()})
}

func (h *Handler) handleCallTool(w http.ResponseWriter, r *http.Request) {
	var req mcp.CallToolRequest
	if !h.decodeBody(w, r, &req) {
		return
	}
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "Missing 'name' field in request")
		return
	}

	result, err := h.srv.CallTool(r.Context(), req.Name, req.Arguments)
	if err != nil {
		h.writeDispatchError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *Handler) handleListResources(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, mcp.ListResourcesResult{Resources: h.srv.ListResources()})
}

func (h *Handler) handleReadResource(w http.ResponseWriter, r *http.Request) {
	var req mcp.ReadResourceRequest
	if !h.decodeBody(w, r, &req) {
		return
	}
	if req.URI == "" {
		writeError(w, http.StatusBadRequest, "Missing 'uri' field in request")
		return
	}

	result, err := h.srv.ReadResource(r.Context(), req.URI)
	if err != nil {
		h.writeDispatchError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *Handler) handleListPrompts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, mcp.ListPromptsResult{Prompts: h.srv.ListPrompts()})
}

func (h *Handler) handleGetPrompt(w http.ResponseWriter, r *http.Request) {
	var req mcp.GetPromptRequest
	if !h.decodeBody(w, r, &req) {
		return
	}
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "Missing 'name' field in request")
		return
	}

	result, err := h.srv.GetPrompt(r.Context(), req.Name, req.Arguments)
	if err != nil {
		h.writeDispatchError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// decodeBody enforces the JSON media type and decodes the request body into
// dst. On failure the error response has already been written. Body size
// overruns surface here as decode failures.
func (h *Handler) decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	ctype, err := contenttype.GetMediaType(r)
	if err != nil || !ctype.Matches(jsonMediaType) {
		writeError(w, http.StatusUnsupportedMediaType, "content-type must be application/json")
		h.log.WarnContext(r.Context(), "content_type.unsupported")
		return false
	}
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON in request body")
		h.log.WarnContext(r.Context(), "json.decode.fail", slog.String("err", err.Error()))
		return false
	}
	return true
}

// writeDispatchError maps an engine error onto its HTTP status. The engine
// already logged the failure; nothing to add here.
func (h *Handler) writeDispatchError(w http.ResponseWriter, err error) {
	var de *mcpserver.Error
	if errors.As(err, &de) {
		writeError(w, de.HTTPStatus(), de.Message)
		return
	}
	writeError(w, http.StatusInternalServerError, err.Error())
}

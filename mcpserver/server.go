package mcpserver

import (
	"log/slog"
	"time"

	"github.com/mcpkit/mcp-http-go/internal/logctx"
	"github.com/mcpkit/mcp-http-go/mcp"
	"github.com/mcpkit/mcp-http-go/mcpservice"
	"github.com/mcpkit/mcp-http-go/validation"
)

// Option configures a Server at construction time.
type Option func(*newConfig)

type newConfig struct {
	cfg    Config
	logger *slog.Logger
}

// WithConfig replaces the default configuration wholesale.
func WithConfig(cfg Config) Option {
	return func(c *newConfig) { c.cfg = cfg }
}

// WithLogger sets the logger for dispatch events. Defaults to slog.Default().
func WithLogger(log *slog.Logger) Option {
	return func(c *newConfig) { c.logger = log }
}

// WithToolTimeout overrides the tool execution timeout.
func WithToolTimeout(d time.Duration) Option {
	return func(c *newConfig) { c.cfg.ToolTimeout = d }
}

// WithResourceTimeout overrides the resource read timeout.
func WithResourceTimeout(d time.Duration) Option {
	return func(c *newConfig) { c.cfg.ResourceTimeout = d }
}

// WithPromptTimeout overrides the prompt render timeout.
func WithPromptTimeout(d time.Duration) Option {
	return func(c *newConfig) { c.cfg.PromptTimeout = d }
}

// WithMaxBodySize overrides the request body cap in bytes.
func WithMaxBodySize(n int64) Option {
	return func(c *newConfig) { c.cfg.MaxBodySize = n }
}

// Server is the capability dispatch engine: three insertion-ordered
// registries plus the configuration governing invocation.
//
// Populate the registries before serving traffic. The containers are
// threadsafe, but replacing capabilities while dispatches are in flight is
// outside the supported contract; an in-flight invocation holds its own
// handle and is never invalidated by a replacement.
type Server struct {
	cfg Config
	log *slog.Logger

	tools     *registry[mcpservice.Tool]
	resources *registry[mcpservice.Resource]
	prompts   *registry[mcpservice.Prompt]
}

// NewServer builds an empty Server.
func NewServer(opts ...Option) *Server {
	nc := newConfig{cfg: DefaultConfig(), logger: slog.Default()}
	for _, opt := range opts {
		opt(&nc)
	}
	return &Server{
		cfg:       nc.cfg,
		log:       slog.New(logctx.Handler{Handler: nc.logger.Handler()}),
		tools:     newRegistry[mcpservice.Tool](),
		resources: newRegistry[mcpservice.Resource](),
		prompts:   newRegistry[mcpservice.Prompt](),
	}
}

// Config returns the server's configuration.
func (s *Server) Config() Config { return s.cfg }

// RegisterTool validates the name and inserts the tool, replacing any
// previous registration under the same name.
func (s *Server) RegisterTool(name string, tool mcpservice.Tool) error {
	if err := validation.ValidateToolName(name); err != nil {
		return newError(KindInvalidIdentifier, "Invalid tool name '%s': %s", name, err)
	}
	s.tools.put(name, tool)
	return nil
}

// RegisterResource validates the URI and inserts the resource, replacing any
// previous registration under the same URI.
func (s *Server) RegisterResource(uri string, res mcpservice.Resource) error {
	if err := validation.ValidateResourceURI(uri); err != nil {
		return newError(KindInvalidIdentifier, "Invalid resource URI '%s': %s", uri, err)
	}
	s.resources.put(uri, res)
	return nil
}

// RegisterPrompt validates the name and inserts the prompt, replacing any
// previous registration under the same name.
func (s *Server) RegisterPrompt(name string, prompt mcpservice.Prompt) error {
	if err := validation.ValidatePromptName(name); err != nil {
		return newError(KindInvalidIdentifier, "Invalid prompt name '%s': %s", name, err)
	}
	s.prompts.put(name, prompt)
	return nil
}

// ListTools returns tool descriptors in registration order.
func (s *Server) ListTools() []mcp.Tool {
	entries := s.tools.snapshot()
	out := make([]mcp.Tool, 0, len(entries))
	for _, e := range entries {
		out = append(out, mcp.Tool{
			Name:        e.key,
			Description: e.val.Description(),
			InputSchema: e.val.InputSchema(),
		})
	}
	return out
}

// ListResources returns resource descriptors in registration order.
func (s *Server) ListResources() []mcp.Resource {
	entries := s.resources.snapshot()
	out := make([]mcp.Resource, 0, len(entries))
	for _, e := range entries {
		out = append(out, mcp.Resource{
			URI:         e.key,
			Name:        e.val.Name(),
			Description: e.val.Description(),
			MimeType:    e.val.MimeType(),
		})
	}
	return out
}

// ListPrompts returns prompt descriptors in registration order.
func (s *Server) ListPrompts() []mcp.Prompt {
	entries := s.prompts.snapshot()
	out := make([]mcp.Prompt, 0, len(entries))
	for _, e := range entries {
		out = append(out, mcp.Prompt{
			Name:        e.key,
			Description: e.val.Description(),
			Arguments:   e.val.Arguments(),
		})
	}
	return out
}

// Health reports the server version and registry counts.
func (s *Server) Health() mcp.HealthResult {
	return mcp.HealthResult{
		Status:    "ok",
		Version:   mcp.Version,
		Tools:     s.tools.len(),
		Resources: s.resources.len(),
		Prompts:   s.prompts.len(),
	}
}

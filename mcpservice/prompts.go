package mcpservice

import (
	"context"

	"github.com/mcpkit/mcp-http-go/mcp"
)

// Prompt renders parameterized text. Arguments returns the descriptors shown
// in listings; unlike tools, prompt arguments are not schema-validated before
// Render runs.
type Prompt interface {
	Description() string
	Arguments() []mcp.PromptArgument
	Render(ctx context.Context, args map[string]any) (string, error)
}

// RenderFunc is the function signature backing function-adapted prompts.
type RenderFunc func(ctx context.Context, args map[string]any) (string, error)

type promptFunc struct {
	description string
	arguments   []mcp.PromptArgument
	fn          RenderFunc
}

// NewPromptFunc adapts a plain function into a Prompt.
func NewPromptFunc(description string, arguments []mcp.PromptArgument, fn RenderFunc) Prompt {
	return &promptFunc{description: description, arguments: arguments, fn: fn}
}

func (p *promptFunc) Description() string              { return p.description }
func (p *promptFunc) Arguments() []mcp.PromptArgument  { return p.arguments }
func (p *promptFunc) Render(ctx context.Context, args map[string]any) (string, error) {
	return p.fn(ctx, args)
}

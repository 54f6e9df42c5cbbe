package mcpservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
	"github.com/mcpkit/mcp-http-go/mcp"
)

// Tool is a callable capability. Implementations receive the validated
// argument object and return a JSON-serializable value or an error. The
// dispatch engine validates arguments against InputSchema before Call runs.
type Tool interface {
	Description() string
	InputSchema() mcp.ToolInputSchema
	Call(ctx context.Context, args map[string]any) (any, error)
}

// CallFunc is the function signature backing function-adapted tools.
type CallFunc func(ctx context.Context, args map[string]any) (any, error)

type toolFunc struct {
	description string
	schema      mcp.ToolInputSchema
	fn          CallFunc
}

// NewToolFunc adapts a plain function into a Tool with an explicit input
// schema. Pair it with schema.FromDocstring for docstring-derived schemas.
func NewToolFunc(description string, schema mcp.ToolInputSchema, fn CallFunc) Tool {
	if schema.Type == "" {
		schema.Type = "object"
	}
	return &toolFunc{description: description, schema: schema, fn: fn}
}

func (t *toolFunc) Description() string                { return t.description }
func (t *toolFunc) InputSchema() mcp.ToolInputSchema   { return t.schema }
func (t *toolFunc) Call(ctx context.Context, args map[string]any) (any, error) {
	return t.fn(ctx, args)
}

// ToolOption configures NewTool behavior.
type ToolOption func(*toolConfig)

type toolConfig struct {
	allowAdditionalProperties bool // default false (strict)
}

// WithAllowAdditionalProperties controls whether unknown argument fields are
// allowed. When false (default), the generated schema sets
// additionalProperties=false and decoding rejects unknown fields.
func WithAllowAdditionalProperties(allow bool) ToolOption {
	return func(c *toolConfig) { c.allowAdditionalProperties = allow }
}

type typedTool[A any] struct {
	description string
	schema      mcp.ToolInputSchema
	strict      bool
	fn          func(ctx context.Context, args A) (any, error)
}

// NewTool constructs a Tool from a typed argument struct A. It reflects a
// JSON Schema from A, down-converts it to the simplified wire schema, and
// decodes validated arguments into A before invoking fn (rejecting unknown
// fields by default).
func NewTool[A any](description string, fn func(ctx context.Context, args A) (any, error), opts ...ToolOption) Tool {
	cfg := toolConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &typedTool[A]{
		description: description,
		schema:      reflectInputSchema[A](cfg.allowAdditionalProperties),
		strict:      !cfg.allowAdditionalProperties,
		fn:          fn,
	}
}

func (t *typedTool[A]) Description() string              { return t.description }
func (t *typedTool[A]) InputSchema() mcp.ToolInputSchema { return t.schema }

func (t *typedTool[A]) Call(ctx context.Context, args map[string]any) (any, error) {
	raw, err := json.Marshal(args)
	if err != nil {
		return nil, fmt.Errorf("invalid arguments: %v", err)
	}
	var a A
	if t.strict {
		dec := json.NewDecoder(bytes.NewReader(raw))
		dec.DisallowUnknownFields()
		err = dec.Decode(&a)
	} else {
		err = json.Unmarshal(raw, &a)
	}
	if err != nil {
		return nil, fmt.Errorf("invalid arguments: %v", err)
	}
	return t.fn(ctx, a)
}

// reflectInputSchema reflects a Go type A into a jsonschema.Schema and
// converts it to the simplified mcp.ToolInputSchema. The unknown-field policy
// is surfaced via the AdditionalProperties flag on the returned schema.
func reflectInputSchema[A any](allowAdditional bool) mcp.ToolInputSchema {
	r := &jsonschema.Reflector{
		DoNotReference:            true, // inline defs
		ExpandedStruct:            true, // put struct at root
		AllowAdditionalProperties: allowAdditional,
	}
	s := r.Reflect(new(A))

	// Only object schemas map cleanly to the wire schema. Anything else is
	// exposed as an empty object with the configured policy.
	if s == nil || s.Type != "object" {
		return mcp.ToolInputSchema{
			Type:                 "object",
			Properties:           map[string]mcp.SchemaProperty{},
			AdditionalProperties: allowAdditional,
		}
	}

	props := make(map[string]mcp.SchemaProperty)
	if s.Properties != nil {
		for el := s.Properties.Oldest(); el != nil; el = el.Next() {
			props[el.Key] = toSchemaProperty(el.Value)
		}
	}
	var required []string
	if len(s.Required) > 0 {
		required = append(required, s.Required...)
	}

	return mcp.ToolInputSchema{
		Type:                 "object",
		Properties:           props,
		Required:             required,
		AdditionalProperties: allowAdditional,
	}
}

// toSchemaProperty recursively maps a jsonschema.Schema to the simplified
// wire SchemaProperty.
func toSchemaProperty(s *jsonschema.Schema) mcp.SchemaProperty {
	if s == nil {
		return mcp.SchemaProperty{}
	}
	p := mcp.SchemaProperty{
		Type:        s.Type,
		Description: s.Description,
		Default:     s.Default,
	}
	if len(s.Enum) > 0 {
		p.Enum = s.Enum
	}
	if s.Type == "array" && s.Items != nil {
		item := toSchemaProperty(s.Items)
		p.Items = &item
	}
	if s.Type == "object" && s.Properties != nil {
		m := make(map[string]mcp.SchemaProperty, s.Properties.Len())
		for el := s.Properties.Oldest(); el != nil; el = el.Next() {
			m[el.Key] = toSchemaProperty(el.Value)
		}
		p.Properties = m
	}
	return p
}

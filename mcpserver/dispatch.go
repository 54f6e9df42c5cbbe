package mcpserver

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/mcpkit/mcp-http-go/internal/logctx"
	"github.com/mcpkit/mcp-http-go/mcp"
	"github.com/mcpkit/mcp-http-go/validation"
)

// outcome carries a capability's result across the timeout race.
type outcome[T any] struct {
	value T
	err   error
}

// runBounded executes fn in its own goroutine and waits at most d for the
// result. On timeout fn keeps running to completion and its eventual result
// is discarded; nothing requires the capability to observe cancellation.
func runBounded[T any](d time.Duration, fn func() (T, error)) (value T, timedOut bool, err error) {
	ch := make(chan outcome[T], 1)
	go func() {
		v, err := fn()
		ch <- outcome[T]{value: v, err: err}
	}()

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case out := <-ch:
		return out.value, false, out.err
	case <-timer.C:
		var zero T
		return zero, true, nil
	}
}

// decodeArgs decodes a raw argument payload. Absent, null, or undecodable
// arguments become an empty object.
func decodeArgs(raw json.RawMessage) any {
	if len(raw) == 0 {
		return map[string]any{}
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil || v == nil {
		return map[string]any{}
	}
	return v
}

// CallTool dispatches a tool invocation: name validation, lookup, argument
// schema validation, then execution bounded by Config.ToolTimeout. The
// returned error is always a *Error.
func (s *Server) CallTool(ctx context.Context, name string, rawArgs json.RawMessage) (*mcp.CallToolResult, error) {
	if err := validation.ValidateToolName(name); err != nil {
		return nil, newError(KindInvalidIdentifier, "Invalid tool name: %s", err)
	}

	tool, ok := s.tools.get(name)
	if !ok {
		return nil, newError(KindNotFound, "Tool '%s' not found", name)
	}

	ctx = logctx.WithCapabilityData(ctx, &logctx.CapabilityData{Kind: "tool", Name: name})

	args := decodeArgs(rawArgs)
	if err := s.checkArgs(ctx, name, tool.InputSchema(), args); err != nil {
		return nil, err
	}
	argsMap, _ := args.(map[string]any)
	if argsMap == nil {
		argsMap = map[string]any{}
	}

	start := time.Now()
	result, timedOut, err := runBounded(s.cfg.ToolTimeout, func() (any, error) {
		return tool.Call(ctx, argsMap)
	})
	if timedOut {
		s.log.WarnContext(ctx, "tool.call.timeout", slog.Duration("timeout", s.cfg.ToolTimeout))
		return nil, newError(KindTimeout, "Tool '%s' execution timed out after %s", name, s.cfg.ToolTimeout)
	}
	if err != nil {
		s.log.ErrorContext(ctx, "tool.call.fail",
			slog.String("err", err.Error()),
			slog.Duration("dur", time.Since(start)))
		return nil, newError(KindCapabilityError, "Tool execution failed: %s", err)
	}

	text, err := marshalResult(result)
	if err != nil {
		s.log.ErrorContext(ctx, "tool.result.serialize_fail", slog.String("err", err.Error()))
		return nil, newError(KindSerializationFailure, "Failed to serialize tool result")
	}

	s.log.DebugContext(ctx, "tool.call.ok", slog.Duration("dur", time.Since(start)))
	return &mcp.CallToolResult{
		Content: []mcp.ContentBlock{{Type: mcp.ContentTypeText, Text: string(text)}},
	}, nil
}

// marshalResult encodes a tool result. Non-finite numbers encode as null
// rather than failing, per JSON number encoding; when encoding/json rejects
// them, the value is re-encoded with the offenders substituted.
func marshalResult(result any) ([]byte, error) {
	text, err := json.Marshal(result)
	if err == nil {
		return text, nil
	}
	var uve *json.UnsupportedValueError
	if errors.As(err, &uve) {
		return json.Marshal(sanitizeJSONValue(result))
	}
	return nil, err
}

// sanitizeJSONValue copies the dynamic value tree with non-finite floats
// replaced by nil. Values outside the dynamic forms pass through unchanged.
func sanitizeJSONValue(v any) any {
	switch x := v.(type) {
	case float64:
		if math.IsInf(x, 0) || math.IsNaN(x) {
			return nil
		}
	case float32:
		if f := float64(x); math.IsInf(f, 0) || math.IsNaN(f) {
			return nil
		}
	case map[string]any:
		out := make(map[string]any, len(x))
		for k, e := range x {
			out[k] = sanitizeJSONValue(e)
		}
		return out
	case []any:
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = sanitizeJSONValue(e)
		}
		return out
	}
	return v
}

// checkArgs validates decoded arguments against the tool's declared input
// schema. Compile failures are server misconfiguration: the caller sees a
// generic message and the real error goes to the log.
func (s *Server) checkArgs(ctx context.Context, name string, schema mcp.ToolInputSchema, args any) error {
	doc, err := json.Marshal(schema)
	if err != nil {
		s.log.WarnContext(ctx, "tool.schema.compile_fail", slog.String("err", err.Error()))
		return newError(KindSchemaCompileFailure, "Invalid tool schema configuration")
	}
	compiled, err := jsonschema.CompileString("schema.json", string(doc))
	if err != nil {
		s.log.WarnContext(ctx, "tool.schema.compile_fail", slog.String("err", err.Error()))
		return newError(KindSchemaCompileFailure, "Invalid tool schema configuration")
	}

	if err := compiled.Validate(args); err != nil {
		detail := err.Error()
		var ve *jsonschema.ValidationError
		if errors.As(err, &ve) {
			detail = strings.Join(flattenCauses(ve), ", ")
		}
		s.log.DebugContext(ctx, "tool.schema.invalid_args", slog.String("violations", detail))
		return newError(KindSchemaViolation, "Arguments for tool '%s' failed schema validation: %s", name, detail)
	}
	return nil
}

// flattenCauses walks the validation error tree and renders each leaf
// violation as "<instance path>: <message>", with "root" for the empty path.
func flattenCauses(ve *jsonschema.ValidationError) []string {
	if len(ve.Causes) == 0 {
		path := ve.InstanceLocation
		if path == "" {
			path = "root"
		}
		return []string{path + ": " + ve.Message}
	}
	var out []string
	for _, cause := range ve.Causes {
		out = append(out, flattenCauses(cause)...)
	}
	return out
}

// ReadResource dispatches a resource read: URI validation, lookup, then the
// read bounded by Config.ResourceTimeout. The returned error is always a
// *Error.
func (s *Server) ReadResource(ctx context.Context, uri string) (*mcp.ReadResourceResult, error) {
	if err := validation.ValidateResourceURI(uri); err != nil {
		return nil, newError(KindInvalidIdentifier, "Invalid resource URI: %s", err)
	}

	res, ok := s.resources.get(uri)
	if !ok {
		return nil, newError(KindNotFound, "Resource '%s' not found", uri)
	}

	ctx = logctx.WithCapabilityData(ctx, &logctx.CapabilityData{Kind: "resource", Name: uri})

	mimeType := res.MimeType()
	start := time.Now()
	text, timedOut, err := runBounded(s.cfg.ResourceTimeout, func() (string, error) {
		return res.Read(ctx)
	})
	if timedOut {
		s.log.WarnContext(ctx, "resource.read.timeout", slog.Duration("timeout", s.cfg.ResourceTimeout))
		return nil, newError(KindTimeout, "Resource '%s' read timed out after %s", uri, s.cfg.ResourceTimeout)
	}
	if err != nil {
		s.log.ErrorContext(ctx, "resource.read.fail",
			slog.String("err", err.Error()),
			slog.Duration("dur", time.Since(start)))
		return nil, newError(KindCapabilityError, "Resource read failed: %s", err)
	}

	s.log.DebugContext(ctx, "resource.read.ok", slog.Duration("dur", time.Since(start)))
	return &mcp.ReadResourceResult{
		Contents: []mcp.ResourceContents{{URI: uri, MimeType: mimeType, Text: text}},
	}, nil
}

// GetPrompt dispatches a prompt render: name validation, lookup, then the
// render bounded by Config.PromptTimeout. Arguments that are not a JSON
// object are treated as empty. The returned error is always a *Error.
func (s *Server) GetPrompt(ctx context.Context, name string, rawArgs json.RawMessage) (*mcp.GetPromptResult, error) {
	if err := validation.ValidatePromptName(name); err != nil {
		return nil, newError(KindInvalidIdentifier, "Invalid prompt name: %s", err)
	}

	prompt, ok := s.prompts.get(name)
	if !ok {
		return nil, newError(KindNotFound, "Prompt '%s' not found", name)
	}

	ctx = logctx.WithCapabilityData(ctx, &logctx.CapabilityData{Kind: "prompt", Name: name})

	args, _ := decodeArgs(rawArgs).(map[string]any)
	if args == nil {
		args = map[string]any{}
	}

	start := time.Now()
	text, timedOut, err := runBounded(s.cfg.PromptTimeout, func() (string, error) {
		return prompt.Render(ctx, args)
	})
	if timedOut {
		s.log.WarnContext(ctx, "prompt.render.timeout", slog.Duration("timeout", s.cfg.PromptTimeout))
		return nil, newError(KindTimeout, "Prompt '%s' render timed out after %s", name, s.cfg.PromptTimeout)
	}
	if err != nil {
		s.log.ErrorContext(ctx, "prompt.render.fail",
			slog.String("err", err.Error()),
			slog.Duration("dur", time.Since(start)))
		return nil, newError(KindCapabilityError, "Prompt render failed: %s", err)
	}

	s.log.DebugContext(ctx, "prompt.render.ok", slog.Duration("dur", time.Since(start)))
	return &mcp.GetPromptResult{
		Messages: []mcp.PromptMessage{{
			Role:    mcp.RoleUser,
			Content: mcp.ContentBlock{Type: mcp.ContentTypeText, Text: text},
		}},
	}, nil
}

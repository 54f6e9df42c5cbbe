// Package mcpservice provides the building blocks for authoring MCP server
// capabilities: the Tool, Resource, and Prompt interfaces consumed by the
// dispatch engine, plus helpers that remove most of the boilerplate from
// implementing them.
//
// Quick start:
//
//	type EchoArgs struct {
//	    Text string `json:"text"`
//	}
//	echo := mcpservice.NewTool[EchoArgs]("Echo a message back to the caller",
//	    func(ctx context.Context, args EchoArgs) (any, error) {
//	        return map[string]any{"echoed": args.Text}, nil
//	    })
//
//	readme := mcpservice.NewResourceFunc("readme", "Project README", "text/markdown",
//	    func(ctx context.Context) (string, error) { return readmeText, nil })
//
// # Tools
//
// A Tool declares a description and an input schema and implements Call. Use
// NewTool to derive the schema from a typed argument struct via reflection,
// or NewToolFunc to pair an explicit schema (for example one produced by
// schema.FromDocstring) with a plain function. Argument extraction helpers
// (StringArg, NumberArg, ...) cover tools that work with untyped maps.
//
// # Resources and prompts
//
// Resources are read-only and take no arguments; prompts render parameterized
// text. NewResourceFunc and NewPromptFunc adapt plain functions. DirResources
// exposes the files under a directory as resources, with content caching and
// filesystem-watch invalidation.
//
// # Errors
//
// Capability implementations report failure by returning an error; the
// dispatch engine wraps it into the protocol error envelope. ToolError values
// produce consistent, structured messages for the common failure shapes.
package mcpservice

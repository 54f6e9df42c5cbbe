// Package mcpserver implements the capability dispatch engine: a Server
// holding insertion-ordered tool, resource, and prompt registries plus the
// configuration governing invocation.
//
// Dispatch runs a fixed pipeline per request: identifier validation, lookup,
// argument schema validation (tools only), then execution raced against the
// per-kind timeout. The loser of the race is never cancelled; its eventual
// result is discarded. Every failure is a *Error carrying a taxonomy kind,
// which the HTTP layer converts to a response envelope via HTTPStatus.
//
// Quick start:
//
//	srv := mcpserver.NewServer(
//	    mcpserver.WithToolTimeout(5 * time.Second),
//	)
//	err := srv.RegisterTool("echo", mcpservice.NewToolFunc(
//	    "Echo a message back to the caller",
//	    mcp.ToolInputSchema{
//	        Type: "object",
//	        Properties: map[string]mcp.SchemaProperty{
//	            "message": {Type: "string"},
//	        },
//	        Required: []string{"message"},
//	    },
//	    func(ctx context.Context, args map[string]any) (any, error) {
//	        msg, err := mcpservice.StringArg(args, "message")
//	        if err != nil {
//	            return nil, err
//	        }
//	        return map[string]any{"echoed": msg}, nil
//	    },
//	))
//	...
//	res, err := srv.CallTool(ctx, "echo", json.RawMessage(`{"message":"hi"}`))
//
// Registries are last-write-wins: registering a name again replaces the
// capability but keeps its listing position. Populate fully before serving;
// registration concurrent with live dispatch is outside the supported
// contract.
package mcpserver

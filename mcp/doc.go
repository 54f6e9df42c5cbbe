// Package mcp contains the protocol data types shared by the dispatch engine,
// the HTTP surface, and capability implementations. It mirrors the wire
// representation of the Model Context Protocol's REST envelopes while keeping
// the surface Go-friendly (exported structs with json tags and string
// constants for enumerations).
//
// The package is intentionally free of transport and dispatch logic: the HTTP
// layer imports these types but implements its own routing and middleware,
// and the server packages (mcpserver, mcpservice) construct responses using
// these concrete types.
//
// # Envelopes
//
// Each capability kind has a request and result envelope pair
// (CallToolRequest/CallToolResult and so on). List results wrap descriptor
// slices; HealthResult reports registered capability counts. Failures of any
// operation serialize as ErrorResponse.
//
// Example (tool result construction):
//
//	res := &mcp.CallToolResult{
//	    Content: []mcp.ContentBlock{{Type: mcp.ContentTypeText, Text: "hello"}},
//	}
package mcp

// Package resthttp exposes a capability server over a small REST surface.
//
// Seven routes cover the capability operations:
//
//	GET  /health
//	GET  /tools/list
//	POST /tools/call
//	GET  /resources/list
//	POST /resources/read
//	GET  /prompts/list
//	POST /prompts/get
//
// Success bodies are the wire types from the mcp package. Every failure is
// the uniform envelope {code, message, details?} with the HTTP status
// repeated in code. POST bodies must be application/json and are capped at
// the server's configured maximum size.
//
// Responses carry an X-Request-Id header, honoring an inbound value and
// generating one otherwise, and permissive CORS headers on every route.
//
// Mount a Handler anywhere an http.Handler fits, or use Serve for a
// ready-made listen loop with graceful shutdown:
//
//	srv := mcpserver.NewServer()
//	// register tools, resources, prompts
//	h := resthttp.New(srv)
//	resthttp.Serve(ctx, "127.0.0.1:8080", h)
package resthttp

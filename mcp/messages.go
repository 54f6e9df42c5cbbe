package mcp

import "encoding/json"

// Tools
// ListToolsResult returns the available tools.
type ListToolsResult struct {
	Tools []Tool `json:"tools"`
}

// CallToolRequest is the server-received representation for a tool call.
// Absent arguments are treated as an empty object.
type CallToolRequest struct {
	Name      string          `json:"name"`
	Arguments json.RawMessage `json:"arguments,omitempty"`
}

// CallToolResult represents a successful tool invocation. The tool's return
// value is JSON-serialized into a single text content block.
type CallToolResult struct {
	Content []ContentBlock `json:"content"`
}

// Resources
// ListResourcesResult returns the available resources.
type ListResourcesResult struct {
	Resources []Resource `json:"resources"`
}

// ReadResourceRequest requests the contents of a resource by URI.
type ReadResourceRequest struct {
	URI string `json:"uri"`
}

// ReadResourceResult returns resource contents.
type ReadResourceResult struct {
	Contents []ResourceContents `json:"contents"`
}

// Prompts
// ListPromptsResult returns the available prompts.
type ListPromptsResult struct {
	Prompts []Prompt `json:"prompts"`
}

// GetPromptRequest is the server-received representation for a prompt render.
type GetPromptRequest struct {
	Name      string          `json:"name"`
	Arguments json.RawMessage `json:"arguments,omitempty"`
}

// GetPromptResult returns the rendered prompt as a single user message.
type GetPromptResult struct {
	Messages []PromptMessage `json:"messages"`
}

// Health
// HealthResult reports server liveness and registered capability counts.
type HealthResult struct {
	Status    string `json:"status"`
	Version   string `json:"version"`
	Tools     int    `json:"tools"`
	Resources int    `json:"resources"`
	Prompts   int    `json:"prompts"`
}

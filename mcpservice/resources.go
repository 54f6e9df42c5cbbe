package mcpservice

import "context"

// Resource is a read-only capability addressed by URI. Read returns the
// resource's textual contents; the dispatch engine wraps them with the URI
// and MIME type for the wire envelope.
type Resource interface {
	Name() string
	Description() string
	MimeType() string
	Read(ctx context.Context) (string, error)
}

// ReadFunc is the function signature backing function-adapted resources.
type ReadFunc func(ctx context.Context) (string, error)

type resourceFunc struct {
	name        string
	description string
	mimeType    string
	fn          ReadFunc
}

// NewResourceFunc adapts a plain function into a Resource.
func NewResourceFunc(name, description, mimeType string, fn ReadFunc) Resource {
	return &resourceFunc{name: name, description: description, mimeType: mimeType, fn: fn}
}

func (r *resourceFunc) Name() string        { return r.name }
func (r *resourceFunc) Description() string { return r.description }
func (r *resourceFunc) MimeType() string    { return r.mimeType }
func (r *resourceFunc) Read(ctx context.Context) (string, error) {
	return r.fn(ctx)
}

// StaticResource returns a Resource serving fixed text.
func StaticResource(name, description, mimeType, text string) Resource {
	return NewResourceFunc(name, description, mimeType, func(context.Context) (string, error) {
		return text, nil
	})
}

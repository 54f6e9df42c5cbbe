package mcpservice

import (
	"context"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"unicode/utf8"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"
	"github.com/mcpkit/mcp-http-go/mcp"
)

// DirResources exposes the regular files under an OS directory as read-only
// resources. File contents are cached after the first read; Watch runs an
// fsnotify loop that invalidates cache entries and signals subscribers when
// files change on disk.
//
// Reads are constrained to the configured root, including through symlinks.
type DirResources struct {
	root    string // absolute, symlink-evaluated
	baseURI string
	globs   []string // doublestar patterns; empty means every file

	mu    sync.RWMutex
	cache map[string]string // rel path -> contents

	notifier changeNotifier
	watching atomic.Bool
}

// DirEntry pairs a resource descriptor with its implementation, ready for
// registration.
type DirEntry struct {
	Descriptor mcp.Resource
	Resource   Resource
}

// DirOption configures DirResources.
type DirOption func(*DirResources)

// WithBaseURI sets the URI prefix used for entries, e.g. "docs://site".
// Defaults to "file://".
func WithBaseURI(base string) DirOption {
	return func(d *DirResources) { d.baseURI = strings.TrimRight(base, "/") }
}

// WithGlobs restricts entries to files matching at least one of the given
// doublestar patterns (relative to the root, slash-separated), e.g.
// "**/*.md".
func WithGlobs(patterns ...string) DirOption {
	return func(d *DirResources) { d.globs = patterns }
}

// NewDirResources constructs a directory-backed resource set rooted at root.
// The root must exist.
func NewDirResources(root string, opts ...DirOption) (*DirResources, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve root %q: %w", root, err)
	}
	real, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return nil, fmt.Errorf("resolve root %q: %w", root, err)
	}
	d := &DirResources{
		root:    real,
		baseURI: "file://",
		cache:   make(map[string]string),
	}
	for _, o := range opts {
		o(d)
	}
	return d, nil
}

// Entries walks the root and returns one entry per matching regular file,
// ordered by URI. Register the result before serving begins.
func (d *DirResources) Entries(ctx context.Context) ([]DirEntry, error) {
	var out []DirEntry
	err := fs.WalkDir(os.DirFS(d.root), ".", func(p string, de fs.DirEntry, err error) error {
		if err != nil {
			return nil // best-effort listing
		}
		if de.IsDir() || de.Type()&fs.ModeSymlink != 0 {
			return nil
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if !d.matches(p) {
			return nil
		}
		uri := d.uriFor(p)
		out = append(out, DirEntry{
			Descriptor: mcp.Resource{
				URI:      uri,
				Name:     path.Base(p),
				MimeType: mimeTypeFor(p),
			},
			Resource: &dirFile{d: d, rel: p},
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Descriptor.URI < out[j].Descriptor.URI })
	return out, nil
}

// Watch runs the fsnotify loop until ctx is cancelled, invalidating cached
// contents and notifying subscribers as files change. At most one loop runs
// per DirResources.
func (d *DirResources) Watch(ctx context.Context) error {
	if !d.watching.CompareAndSwap(false, true) {
		return nil
	}
	defer d.watching.Store(false)

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("start watcher: %w", err)
	}
	defer func() {
		_ = w.Close()
	}()

	err = filepath.WalkDir(d.root, func(p string, de fs.DirEntry, err error) error {
		if err != nil || !de.IsDir() {
			return nil
		}
		return w.Add(p)
	})
	if err != nil {
		return fmt.Errorf("watch %s: %w", d.root, err)
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if ev.Op&fsnotify.Create != 0 {
				if fi, err := os.Stat(ev.Name); err == nil && fi.IsDir() {
					_ = w.Add(ev.Name)
				}
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) != 0 {
				d.invalidate(ev.Name)
				d.notifier.notify()
			}
		case _, ok := <-w.Errors:
			if !ok {
				return nil
			}
		}
	}
}

// Subscriber returns a channel that receives a signal whenever a watched
// file changes. The channel is buffered; signals coalesce under load.
func (d *DirResources) Subscriber() <-chan struct{} {
	return d.notifier.subscriber()
}

func (d *DirResources) matches(rel string) bool {
	if len(d.globs) == 0 {
		return true
	}
	for _, g := range d.globs {
		if ok, err := doublestar.Match(g, rel); err == nil && ok {
			return true
		}
	}
	return false
}

func (d *DirResources) uriFor(rel string) string {
	segs := strings.Split(rel, "/")
	for i, s := range segs {
		segs[i] = url.PathEscape(s)
	}
	return d.baseURI + "/" + strings.Join(segs, "/")
}

func (d *DirResources) invalidate(absPath string) {
	rel, err := filepath.Rel(d.root, absPath)
	if err != nil {
		return
	}
	d.mu.Lock()
	delete(d.cache, filepath.ToSlash(rel))
	d.mu.Unlock()
}

// read returns the file's contents, serving from cache when possible. The
// resolved path must stay within the root.
func (d *DirResources) read(rel string) (string, error) {
	d.mu.RLock()
	text, ok := d.cache[rel]
	d.mu.RUnlock()
	if ok {
		return text, nil
	}

	abs := filepath.Join(d.root, filepath.FromSlash(rel))
	real, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", fmt.Errorf("Failed to read file '%s': %v", rel, err)
	}
	if !within(real, d.root) {
		return "", fmt.Errorf("Failed to read file '%s': outside resource root", rel)
	}
	data, err := os.ReadFile(real)
	if err != nil {
		return "", fmt.Errorf("Failed to read file '%s': %v", rel, err)
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("Failed to read file '%s': not valid UTF-8", rel)
	}
	text = string(data)

	d.mu.Lock()
	d.cache[rel] = text
	d.mu.Unlock()
	return text, nil
}

type dirFile struct {
	d   *DirResources
	rel string
}

func (f *dirFile) Name() string        { return path.Base(f.rel) }
func (f *dirFile) Description() string { return fmt.Sprintf("File %s", f.rel) }
func (f *dirFile) MimeType() string    { return mimeTypeFor(f.rel) }
func (f *dirFile) Read(ctx context.Context) (string, error) {
	return f.d.read(f.rel)
}

// mimeTypeFor resolves a MIME type from the file extension.
func mimeTypeFor(p string) string {
	switch strings.ToLower(strings.TrimPrefix(path.Ext(p), ".")) {
	case "txt":
		return "text/plain"
	case "json":
		return "application/json"
	case "yaml", "yml":
		return "text/yaml"
	case "md":
		return "text/markdown"
	case "html":
		return "text/html"
	case "css":
		return "text/css"
	case "js":
		return "application/javascript"
	case "go":
		return "text/x-go"
	case "py":
		return "text/x-python"
	case "":
		return "text/plain"
	default:
		return "application/octet-stream"
	}
}

// within reports whether target equals root or is a descendant of it.
func within(target, root string) bool {
	rel, err := filepath.Rel(root, target)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(os.PathSeparator)))
}

// changeNotifier is a minimal in-process pub-sub used to surface watch
// events. Sends never block; a backed-up subscriber misses intermediate
// signals, not the fact of change.
type changeNotifier struct {
	mu   sync.Mutex
	subs []chan struct{}
}

func (n *changeNotifier) notify() {
	n.mu.Lock()
	defer n.mu.Unlock()
	for _, ch := range n.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

func (n *changeNotifier) subscriber() <-chan struct{} {
	n.mu.Lock()
	defer n.mu.Unlock()
	ch := make(chan struct{}, 1)
	n.subs = append(n.subs, ch)
	return ch
}

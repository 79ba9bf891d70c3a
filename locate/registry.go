package locate

import (
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// Default is the process-wide adapter registry.
var Default = NewRegistry()

// Registry maps format names and file extensions to adapters.
type Registry struct {
	mu     sync.RWMutex
	byName map[string]Adapter
	byExt  map[string]string // ".json" -> "json"
}

// NewRegistry returns a new empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byName: make(map[string]Adapter),
		byExt:  make(map[string]string),
	}
}

// Register adds an adapter. A later registration for the same name or
// extension wins, which lets applications shadow a built-in adapter.
func (r *Registry) Register(a Adapter) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byName[a.Name] = a
	for _, ext := range a.Extensions {
		r.byExt[strings.ToLower(ext)] = a.Name
	}
}

// Get returns the adapter registered under the given format name.
func (r *Registry) Get(name string) (Adapter, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.byName[name]
	return a, ok
}

// ForPath resolves an adapter from the path's extension, case-insensitively.
func (r *Registry) ForPath(path string) (Adapter, bool) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == "" {
		return Adapter{}, false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	name, ok := r.byExt[ext]
	if !ok {
		return Adapter{}, false
	}
	a, ok := r.byName[name]
	return a, ok
}

// Adapters returns every registered adapter sorted by name.
func (r *Registry) Adapters() []Adapter {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Adapter, 0, len(r.byName))
	for _, a := range r.byName {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Register adds an adapter to the default registry.
func Register(a Adapter) { Default.Register(a) }

// ForPath resolves an adapter from the default registry by file extension.
func ForPath(path string) (Adapter, bool) { return Default.ForPath(path) }

// Supported returns the default registry's adapters sorted by name.
func Supported() []Adapter { return Default.Adapters() }

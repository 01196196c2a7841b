package convert

import (
	"sort"
	"sync"

	"github.com/vango-dev/utemplates/internal/errors"
)

// Registry maps dotted names used in configuration to conversion functions.
// Registration is safe for concurrent use. Resolved pipelines copy the
// functions and do not observe later registrations.
type Registry struct {
	mu    sync.RWMutex
	funcs map[string]Func
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{funcs: make(map[string]Func)}
}

// Default is the process-wide registry. Built-in conversions are
// registered under "utemplates.convert.*".
var Default = NewRegistry()

func init() {
	registerBuiltins(Default)
}

// Register adds or replaces the function for name.
func (r *Registry) Register(name string, fn Func) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.funcs[name] = fn
}

// Lookup returns the function registered under name.
func (r *Registry) Lookup(name string) (Func, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn, ok := r.funcs[name]
	return fn, ok
}

// Names returns all registered names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.funcs))
	for name := range r.funcs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Resolve builds a pipeline from names in order. The first unknown name
// fails with an E121 error naming it.
func (r *Registry) Resolve(names []string) (Pipeline, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	conversions := make([]Conversion, 0, len(names))
	for _, name := range names {
		fn, ok := r.funcs[name]
		if !ok {
			return Pipeline{}, errors.New("E121").
				WithPath(name).
				WithSuggestion("Register the function with convert.Register before loading the configuration")
		}
		conversions = append(conversions, Conversion{Name: name, Fn: fn})
	}
	return NewPipeline(conversions...), nil
}

// Register adds fn to the Default registry.
func Register(name string, fn Func) {
	Default.Register(name, fn)
}

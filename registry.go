package gocomp

import (
	"fmt"
	"sort"
	"sync"
)

// ComponentDefinition binds a unique name to a schema and a template.
// It is immutable once registered.
type ComponentDefinition struct {
	Name     string
	Schema   Schema
	Template TemplateFunc
}

// Registry holds component definitions by name. Registration belongs to a
// load phase; lookups are safe from concurrent invocations.
type Registry struct {
	mu   sync.RWMutex
	defs map[string]ComponentDefinition
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{defs: map[string]ComponentDefinition{}}
}

// Register adds def. It fails with ErrDuplicateName when the name is taken and
// with ErrInvalidSchema when the definition is malformed; the registry is left
// unchanged in both cases.
func (r *Registry) Register(def ComponentDefinition) error {
	if def.Name == "" {
		return fmt.Errorf("%w: empty component name", ErrInvalidSchema)
	}
	if def.Template == nil {
		return fmt.Errorf("%w: component %q has no template", ErrInvalidSchema, def.Name)
	}
	if err := def.Schema.Check(); err != nil {
		return fmt.Errorf("component %q: %w", def.Name, err)
	}
	def.Schema = def.Schema.clone()

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.defs == nil {
		r.defs = map[string]ComponentDefinition{}
	}
	if _, dup := r.defs[def.Name]; dup {
		return fmt.Errorf("%w: %q", ErrDuplicateName, def.Name)
	}
	r.defs[def.Name] = def
	return nil
}

// MustRegister is Register that panics on error. It suits package-level
// registration of built-in components.
func (r *Registry) MustRegister(def ComponentDefinition) {
	if err := r.Register(def); err != nil {
		panic(err)
	}
}

// Lookup returns the definition registered under name.
func (r *Registry) Lookup(name string) (ComponentDefinition, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	def, ok := r.defs[name]
	if ok {
		def.Schema = def.Schema.clone()
	}
	return def, ok
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.defs))
	for n := range r.defs {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered components.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.defs)
}

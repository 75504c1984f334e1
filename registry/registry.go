// Package registry implements the in-memory object registry used to
// resolve reference-valued configuration options ("#name") to live
// instances.
package registry

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"sync"
)

// Sentinel errors for common error patterns. These allow both errors.Is()
// checks and errors.As() for detailed information.
var (
	// ErrNotFound is returned when no object is bound under a name.
	ErrNotFound = errors.New("object not found")

	// ErrAlreadyBound is returned when a name is registered twice.
	ErrAlreadyBound = errors.New("name already bound")
)

// NotFoundError reports which name had no binding.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("object not found: %s", e.Name)
}

// Is implements error matching for errors.Is() checks.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// Registry is a thread-safe name-to-instance map. It implements the
// verify.Registry port.
type Registry struct {
	mu      sync.RWMutex
	objects map[string]any
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{objects: make(map[string]any)}
}

// Register binds an instance under a name. Rebinding an existing name is
// an error; use Deregister first to replace.
func (r *Registry) Register(name string, instance any) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.objects[name]; exists {
		return fmt.Errorf("%q: %w", name, ErrAlreadyBound)
	}
	r.objects[name] = instance
	return nil
}

// Deregister removes a binding. Removing an unbound name is a no-op.
func (r *Registry) Deregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.objects, name)
}

// Resolve returns the instance bound under name.
func (r *Registry) Resolve(name string) (any, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	instance, ok := r.objects[name]
	if !ok {
		return nil, &NotFoundError{Name: name}
	}
	return instance, nil
}

// Names returns all bound names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Sorted(maps.Keys(r.objects))
}

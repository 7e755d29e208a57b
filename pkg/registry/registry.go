package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/arthur-debert/snippet/pkg/errors"
)

// Registry stores and retrieves items by name
type Registry[T any] interface {
	// Register adds an item to the registry
	Register(name string, item T) error

	// Get retrieves an item from the registry
	Get(name string) (T, error)

	// List returns all registered names, sorted
	List() []string

	// Has checks if an item is registered
	Has(name string) bool

	// Count returns the number of registered items
	Count() int

	// Freeze rejects any further registration
	Freeze()
}

// Option configures a registry
type Option func(*options)

type options struct {
	kind         string
	notFoundCode errors.ErrorCode
}

// WithKind sets the noun used in error messages ("codec", "template")
func WithKind(kind string) Option {
	return func(o *options) { o.kind = kind }
}

// WithNotFoundCode sets the error code returned by Get for unknown names
func WithNotFoundCode(code errors.ErrorCode) Option {
	return func(o *options) { o.notFoundCode = code }
}

type registry[T any] struct {
	mu     sync.RWMutex
	items  map[string]T
	frozen bool
	opts   options
}

// New creates a new Registry instance
func New[T any](opts ...Option) Registry[T] {
	o := options{kind: "item", notFoundCode: errors.ErrNotFound}
	for _, opt := range opts {
		opt(&o)
	}
	return &registry[T]{
		items: make(map[string]T),
		opts:  o,
	}
}

func (r *registry[T]) Register(name string, item T) error {
	if name == "" {
		return errors.Newf(errors.ErrInvalidInput, "%s name cannot be empty", r.opts.kind)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.frozen {
		return errors.Newf(errors.ErrInvalidInput, "cannot register %s '%s': registry is frozen", r.opts.kind, name)
	}

	if _, exists := r.items[name]; exists {
		return errors.Newf(errors.ErrAlreadyExists, "%s '%s' is already registered", r.opts.kind, name).
			WithDetail("name", name)
	}

	r.items[name] = item
	return nil
}

func (r *registry[T]) Get(name string) (T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, exists := r.items[name]
	if !exists {
		var zero T
		return zero, errors.Newf(r.opts.notFoundCode, "unknown %s '%s'", r.opts.kind, name).
			WithDetail("name", name)
	}

	return item, nil
}

func (r *registry[T]) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.items))
	for name := range r.items {
		names = append(names, name)
	}

	sort.Strings(names)
	return names
}

func (r *registry[T]) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.items[name]
	return exists
}

func (r *registry[T]) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.items)
}

func (r *registry[T]) Freeze() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.frozen = true
}

// MustRegister registers an item and panics if registration fails.
// Meant for init() functions, where a failure is a programming error.
func MustRegister[T any](reg Registry[T], name string, item T) {
	if err := reg.Register(name, item); err != nil {
		panic(fmt.Sprintf("failed to register %s: %v", name, err))
	}
}

// Package codecs holds the named string transforms applied by placeholder
// codec chains such as <name:b64:url>.
//
// Default() is process-wide and frozen after init, so concurrent lookups
// from independent renders are safe. Callers that need extra codecs build
// their own registry with NewRegistry and Register.
package codecs

import (
	"github.com/arthur-debert/snippet/pkg/errors"
	"github.com/arthur-debert/snippet/pkg/registry"
)

// Func is a pure string transform
type Func func(string) string

// Codec pairs a transform with a human-readable description
type Codec struct {
	Description string
	Transform   Func
}

// Registry maps codec names to transforms
type Registry struct {
	codecs registry.Registry[Codec]
}

// Lookuper is the read side of a registry, as needed by the resolver
type Lookuper interface {
	Lookup(name string) (Func, error)
}

// NewRegistry returns a registry pre-populated with the built-in codecs
func NewRegistry() *Registry {
	r := NewEmptyRegistry()
	for name, codec := range builtins {
		registry.MustRegister(r.codecs, name, codec)
	}
	return r
}

// NewEmptyRegistry returns a registry with no codecs
func NewEmptyRegistry() *Registry {
	return &Registry{
		codecs: registry.New[Codec](
			registry.WithKind("codec"),
			registry.WithNotFoundCode(errors.ErrUnknownCodec),
		),
	}
}

// Register adds a codec. Empty names, duplicates and frozen registries are rejected.
func (r *Registry) Register(name, description string, fn Func) error {
	if fn == nil {
		return errors.Newf(errors.ErrInvalidInput, "codec '%s' has no transform", name)
	}
	return r.codecs.Register(name, Codec{Description: description, Transform: fn})
}

// Lookup returns the transform registered under name, or an UNKNOWN_CODEC error
func (r *Registry) Lookup(name string) (Func, error) {
	codec, err := r.codecs.Get(name)
	if err != nil {
		return nil, err
	}
	return codec.Transform, nil
}

// Describe returns the description registered under name
func (r *Registry) Describe(name string) (string, error) {
	codec, err := r.codecs.Get(name)
	if err != nil {
		return "", err
	}
	return codec.Description, nil
}

// Has reports whether name is registered
func (r *Registry) Has(name string) bool {
	return r.codecs.Has(name)
}

// List returns the registered codec names, sorted
func (r *Registry) List() []string {
	return r.codecs.List()
}

// Freeze makes the registry read-only
func (r *Registry) Freeze() {
	r.codecs.Freeze()
}

var defaultRegistry *Registry

func init() {
	defaultRegistry = NewRegistry()
	defaultRegistry.Freeze()
}

// Default returns the shared, read-only registry of built-in codecs
func Default() *Registry {
	return defaultRegistry
}

// Lookup resolves name against the default registry
func Lookup(name string) (Func, error) {
	return defaultRegistry.Lookup(name)
}

// List returns the names in the default registry
func List() []string {
	return defaultRegistry.List()
}

package render

import (
	"github.com/arthur-debert/snippet/pkg/arguments"
	"github.com/arthur-debert/snippet/pkg/codecs"
	"github.com/arthur-debert/snippet/pkg/errors"
	"github.com/arthur-debert/snippet/pkg/template"
)

// Resolver turns a placeholder spec into its value for one combination
type Resolver struct {
	codecs codecs.Lookuper
}

// NewResolver returns a Resolver applying codecs from lookup
func NewResolver(lookup codecs.Lookuper) *Resolver {
	return &Resolver{codecs: lookup}
}

// Resolve picks the bound value (or the default) and runs it through the
// codec chain left to right. Codecs are looked up before the value so an
// unknown codec is reported even when the value is missing.
func (r *Resolver) Resolve(spec template.Spec, bindings *arguments.Bindings, combo Combination) (string, error) {
	chain := make([]codecs.Func, 0, len(spec.Codecs))
	for _, name := range spec.Codecs {
		fn, err := r.codecs.Lookup(name)
		if err != nil {
			return "", err
		}
		chain = append(chain, fn)
	}

	var value string
	if values, ok := bindings.Values(spec.Name); ok {
		idx := 0
		if len(values) > 1 {
			idx = combo.Index(spec.Name)
		}
		if idx < 0 || idx >= len(values) {
			return "", errors.Newf(errors.ErrInternal, "index %d out of range for %s (%d values)", idx, spec.Name, len(values))
		}
		value = values[idx]
	} else if spec.HasDefault {
		value = spec.Default
	} else {
		return "", errors.Newf(errors.ErrMissingArgument, "no value for placeholder %s", spec.Name).
			WithDetail("name", spec.Name)
	}

	for _, fn := range chain {
		value = fn(value)
	}
	return value, nil
}

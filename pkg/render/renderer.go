package render

import (
	"strings"

	"github.com/arthur-debert/snippet/pkg/arguments"
	"github.com/arthur-debert/snippet/pkg/codecs"
	"github.com/arthur-debert/snippet/pkg/errors"
	"github.com/arthur-debert/snippet/pkg/logging"
	"github.com/arthur-debert/snippet/pkg/template"
	"github.com/rs/zerolog"
)

// Renderer expands templates against bindings
type Renderer struct {
	resolver *Resolver
	codecs   codecs.Lookuper
	logger   zerolog.Logger
}

// New returns a Renderer using lookup for codec chains
func New(lookup codecs.Lookuper) *Renderer {
	return &Renderer{
		resolver: NewResolver(lookup),
		codecs:   lookup,
		logger:   logging.GetLogger("render"),
	}
}

// WithLogger replaces the renderer's logger
func (r *Renderer) WithLogger(logger zerolog.Logger) *Renderer {
	r.logger = logger
	return r
}

// Render returns one output per combination, in enumeration order.
// Any fatal error discards every output.
func (r *Renderer) Render(tmpl *template.Template, bindings *arguments.Bindings) ([]string, error) {
	if err := r.checkCodecs(tmpl); err != nil {
		return nil, err
	}

	it := NewCombinations(bindings)
	r.logger.Debug().
		Strs("multiValued", it.Names()).
		Int("combinations", it.Count()).
		Msg("Rendering template")

	outputs := make([]string, 0, it.Count())
	for it.Next() {
		out, err := r.RenderCombination(tmpl, bindings, it.Current())
		if err != nil {
			return nil, err
		}
		outputs = append(outputs, out)
	}
	return outputs, nil
}

// RenderCombination renders the tree once for combo
func (r *Renderer) RenderCombination(tmpl *template.Template, bindings *arguments.Bindings, combo Combination) (string, error) {
	var b strings.Builder
	for _, seg := range tmpl.Segments {
		switch s := seg.(type) {
		case template.Literal:
			b.WriteString(s.Text)
		case template.Placeholder:
			value, err := r.resolver.Resolve(s.Spec, bindings, combo)
			if err != nil {
				return "", errors.Wrapf(err, errors.GetErrorCode(err), "placeholder at position %d", s.Pos).
					WithDetail("name", s.Spec.Name).
					WithDetail("position", s.Pos)
			}
			b.WriteString(value)
		case template.Optional:
			text, err := r.renderOptional(s, bindings, combo)
			if err != nil {
				return "", err
			}
			b.WriteString(text)
		}
	}
	return b.String(), nil
}

// renderOptional renders a block, returning "" when a child has no value
func (r *Renderer) renderOptional(block template.Optional, bindings *arguments.Bindings, combo Combination) (string, error) {
	var b strings.Builder
	for _, child := range block.Children {
		switch s := child.(type) {
		case template.Literal:
			b.WriteString(s.Text)
		case template.Placeholder:
			value, err := r.resolver.Resolve(s.Spec, bindings, combo)
			if errors.IsErrorCode(err, errors.ErrMissingArgument) {
				r.logger.Trace().
					Str("name", s.Spec.Name).
					Int("position", block.Pos).
					Msg("Optional block elided")
				return "", nil
			}
			if err != nil {
				return "", err
			}
			b.WriteString(value)
		}
	}
	return b.String(), nil
}

// checkCodecs fails on the first unknown codec anywhere in the tree, so
// an elided block cannot hide it
func (r *Renderer) checkCodecs(tmpl *template.Template) error {
	for _, usage := range tmpl.Placeholders() {
		for _, name := range usage.Spec.Codecs {
			if _, err := r.codecs.Lookup(name); err != nil {
				return errors.Wrapf(err, errors.ErrUnknownCodec, "placeholder %s at position %d", usage.Spec.Name, usage.Pos).
					WithDetail("name", name).
					WithDetail("position", usage.Pos)
			}
		}
	}
	return nil
}

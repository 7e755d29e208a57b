// Package snippet ties the pieces together: it parses a template, binds
// the raw arguments and renders every combination.
//
//	s := snippet.New(
//		snippet.WithTemplate("abc <arg1> [<arg2>]"),
//		snippet.WithArguments("arg1=test"),
//	)
//	outputs, err := s.Build() // ["abc test "]
//
// A Snippet is plain configuration. Build keeps no state between calls,
// but a Snippet must not be mutated while another goroutine builds it.
package snippet

import (
	"github.com/arthur-debert/snippet/pkg/arguments"
	"github.com/arthur-debert/snippet/pkg/codecs"
	"github.com/arthur-debert/snippet/pkg/filesystem"
	"github.com/arthur-debert/snippet/pkg/logging"
	"github.com/arthur-debert/snippet/pkg/render"
	"github.com/arthur-debert/snippet/pkg/template"
	"github.com/rs/zerolog"
)

// Snippet holds a template and the raw arguments to render it with
type Snippet struct {
	Template  string
	Arguments []string

	codecs codecs.Lookuper
	reader filesystem.LineReader
	logger zerolog.Logger
}

// Option configures a Snippet
type Option func(*Snippet)

// WithTemplate sets the template text
func WithTemplate(tmpl string) Option {
	return func(s *Snippet) { s.Template = tmpl }
}

// WithArguments sets the raw name=value / name:path arguments
func WithArguments(args ...string) Option {
	return func(s *Snippet) { s.Arguments = append([]string(nil), args...) }
}

// WithCodecs replaces the default codec registry
func WithCodecs(lookup codecs.Lookuper) Option {
	return func(s *Snippet) { s.codecs = lookup }
}

// WithLineReader replaces the OS-backed reader used for name:path arguments
func WithLineReader(reader filesystem.LineReader) Option {
	return func(s *Snippet) { s.reader = reader }
}

// WithLogger sets the logger used by Build, the binder and the renderer.
// Parsing goes through the shared template cache and logs under the
// template.parser component of the global logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Snippet) { s.logger = logger }
}

// New creates a Snippet
func New(opts ...Option) *Snippet {
	s := &Snippet{
		codecs: codecs.Default(),
		reader: filesystem.NewLineReader(filesystem.NewOS()),
		logger: logging.GetLogger("snippet"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Build parses the template, binds the arguments and renders one output
// per combination of multi-valued arguments. On error no outputs are
// returned.
func (s *Snippet) Build() ([]string, error) {
	done := logging.LogOperationStart(s.logger, "build")
	defer done()

	tmpl, err := template.ParseCached(s.Template)
	if err != nil {
		return nil, err
	}

	bindings, err := arguments.NewBinder(s.reader).
		WithLogger(s.logger.With().Str("stage", "bind").Logger()).
		Bind(s.Arguments)
	if err != nil {
		return nil, err
	}

	for _, usage := range tmpl.Placeholders() {
		if !bindings.Has(usage.Spec.Name) {
			s.logger.Debug().
				Str("name", usage.Spec.Name).
				Bool("hasDefault", usage.Spec.HasDefault).
				Bool("optional", usage.Optional).
				Msg("Placeholder has no bound value")
			continue
		}
		if usage.Spec.Repeatable {
			continue
		}
		if values, ok := bindings.Values(usage.Spec.Name); ok && len(values) > 1 {
			s.logger.Debug().
				Str("name", usage.Spec.Name).
				Int("values", len(values)).
				Msg("Multi-valued argument bound to placeholder not marked repeatable")
		}
	}

	outputs, err := render.New(s.codecs).
		WithLogger(s.logger.With().Str("stage", "render").Logger()).
		Render(tmpl, bindings)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int("outputs", len(outputs)).Msg("Snippet built")
	return outputs, nil
}

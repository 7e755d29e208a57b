// Package ui renders build results in the selected output format and
// styles the human-facing parts (errors, tables) for the terminal.
package ui

import (
	"io"

	"github.com/arthur-debert/snippet/pkg/errors"
	"github.com/arthur-debert/snippet/pkg/ui/json"
	"github.com/arthur-debert/snippet/pkg/ui/text"
	"github.com/arthur-debert/snippet/pkg/ui/yaml"
)

// Renderer is the common interface for all output renderers
type Renderer interface {
	// RenderOutputs renders the outputs of one build
	RenderOutputs(outputs []string) error

	// RenderError renders an error with appropriate formatting
	RenderError(err error) error

	// RenderMessage renders a simple message
	RenderMessage(msg string) error
}

// Options configures NewRenderer
type Options struct {
	// Separator is written between outputs in text format
	Separator string
}

// NewRenderer creates a new renderer based on the specified format
func NewRenderer(format Format, output io.Writer, opts Options) (Renderer, error) {
	switch format {
	case FormatText:
		return text.New(output, opts.Separator), nil
	case FormatJSON:
		return json.New(output), nil
	case FormatYAML:
		return yaml.New(output), nil
	default:
		return nil, errors.Newf(errors.ErrOutputFormat, "unknown format: %v", format)
	}
}

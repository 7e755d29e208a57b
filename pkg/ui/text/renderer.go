// Package text writes build outputs as plain text
package text

import (
	"fmt"
	"io"
	"strings"
)

// Renderer writes outputs joined by a separator
type Renderer struct {
	output    io.Writer
	separator string
}

// New creates a new text renderer. An empty separator means newline.
func New(output io.Writer, separator string) *Renderer {
	if separator == "" {
		separator = "\n"
	}
	return &Renderer{output: output, separator: separator}
}

// RenderOutputs writes the outputs joined by the separator, ending with a newline
func (r *Renderer) RenderOutputs(outputs []string) error {
	joined := strings.Join(outputs, r.separator)
	if !strings.HasSuffix(joined, "\n") {
		joined += "\n"
	}
	_, err := io.WriteString(r.output, joined)
	return err
}

// RenderError writes the error message
func (r *Renderer) RenderError(err error) error {
	_, werr := fmt.Fprintf(r.output, "Error: %v\n", err)
	return werr
}

// RenderMessage writes msg on its own line
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}

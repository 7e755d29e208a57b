// Package yaml writes build outputs as a YAML sequence
package yaml

import (
	"io"

	"gopkg.in/yaml.v3"
)

// Renderer provides YAML output
type Renderer struct {
	output io.Writer
}

// New creates a new YAML renderer
func New(output io.Writer) *Renderer {
	return &Renderer{output: output}
}

func (r *Renderer) encode(v interface{}) error {
	enc := yaml.NewEncoder(r.output)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

// RenderOutputs renders the outputs as a YAML sequence
func (r *Renderer) RenderOutputs(outputs []string) error {
	if outputs == nil {
		outputs = []string{}
	}
	return r.encode(outputs)
}

// RenderError renders an error as a YAML mapping
func (r *Renderer) RenderError(err error) error {
	return r.encode(map[string]string{"error": err.Error()})
}

// RenderMessage renders a simple message as a YAML mapping
func (r *Renderer) RenderMessage(msg string) error {
	return r.encode(map[string]string{"message": msg})
}

package config

import (
	"sort"

	"github.com/arthur-debert/snippet/pkg/errors"
)

// Config is the decoded configuration
type Config struct {
	Logging   Logging             `koanf:"logging" toml:"logging" yaml:"logging"`
	Output    Output              `koanf:"output" toml:"output" yaml:"output"`
	Templates map[string]Template `koanf:"templates" toml:"templates" yaml:"templates"`
}

// Logging holds logging settings
type Logging struct {
	// Verbosity is added to the -v count
	Verbosity int `koanf:"verbosity" toml:"verbosity" yaml:"verbosity"`
}

// Output holds rendering output settings
type Output struct {
	Format    string `koanf:"format" toml:"format" yaml:"format"`
	Separator string `koanf:"separator" toml:"separator" yaml:"separator"`
}

// Template is a named, reusable template
type Template struct {
	Description string `koanf:"description" toml:"description" yaml:"description"`
	Template    string `koanf:"template" toml:"template" yaml:"template"`
	// Arguments are prepended to the arguments given on the command line
	Arguments []string `koanf:"arguments" toml:"arguments" yaml:"arguments"`
}

// Template returns the template configured under name
func (c *Config) Template(name string) (Template, error) {
	tmpl, ok := c.Templates[name]
	if !ok {
		return Template{}, errors.Newf(errors.ErrTemplateNotFound, "no template named '%s' in configuration", name).
			WithDetail("name", name)
	}
	return tmpl, nil
}

// TemplateNames returns the configured template names, sorted
func (c *Config) TemplateNames() []string {
	names := make([]string, 0, len(c.Templates))
	for name := range c.Templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (c *Config) validate() error {
	if c.Logging.Verbosity < 0 {
		return errors.Newf(errors.ErrConfigParse, "logging.verbosity must not be negative, got %d", c.Logging.Verbosity)
	}
	for _, name := range c.TemplateNames() {
		if c.Templates[name].Template == "" {
			return errors.Newf(errors.ErrConfigParse, "template '%s' has an empty template string", name).
				WithDetail("name", name)
		}
	}
	return nil
}

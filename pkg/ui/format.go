package ui

import (
	"os"
	"strings"

	"github.com/arthur-debert/snippet/pkg/errors"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Format represents the output format type
type Format int

const (
	// FormatText writes outputs joined by a separator
	FormatText Format = iota
	// FormatJSON writes a JSON array of outputs
	FormatJSON
	// FormatYAML writes a YAML sequence of outputs
	FormatYAML
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatText:
		return "text"
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// FormatNames lists the accepted format names
var FormatNames = []string{"text", "json", "yaml"}

// ParseFormat parses a string into a Format value
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "text", "plain", "":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return FormatText, errors.Newf(errors.ErrOutputFormat, "unknown format: %s (want one of %s)",
			s, strings.Join(FormatNames, ", ")).
			WithDetail("format", s)
	}
}

// UseColor reports whether styled output should be written to output
func UseColor(output *os.File) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}

	if !isatty.IsTerminal(output.Fd()) && !isatty.IsCygwinTerminal(output.Fd()) {
		return false
	}

	return termenv.NewOutput(output).ColorProfile() != termenv.Ascii
}

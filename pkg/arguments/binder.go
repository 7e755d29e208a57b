package arguments

import (
	"sort"
	"strings"

	"github.com/arthur-debert/snippet/pkg/errors"
	"github.com/arthur-debert/snippet/pkg/filesystem"
	"github.com/arthur-debert/snippet/pkg/logging"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// Form tells how an argument supplies its values
type Form int

const (
	// FormLiteral is name=value
	FormLiteral Form = iota
	// FormFile is name:path, one value per line
	FormFile
)

func (f Form) String() string {
	switch f {
	case FormLiteral:
		return "literal"
	case FormFile:
		return "file"
	default:
		return "unknown"
	}
}

// Argument is one parsed raw entry
type Argument struct {
	Raw   string
	Name  string
	Form  Form
	Value string // literal value or file path
}

// ParseArgument splits raw at the first '=' or ':'. Whichever comes first
// decides the form; everything after it is taken verbatim.
func ParseArgument(raw string) (Argument, error) {
	idx := strings.IndexAny(raw, "=:")
	if idx < 0 {
		return Argument{}, errors.Newf(errors.ErrInvalidArgumentSyntax,
			"argument %q must be name=value or name:path", raw).
			WithDetail("argument", raw)
	}
	if idx == 0 {
		return Argument{}, errors.Newf(errors.ErrInvalidArgumentSyntax,
			"argument %q has no name", raw).
			WithDetail("argument", raw)
	}

	arg := Argument{
		Raw:   raw,
		Name:  raw[:idx],
		Value: raw[idx+1:],
	}
	if raw[idx] == ':' {
		arg.Form = FormFile
	}
	return arg, nil
}

// Binder resolves raw argument lists into Bindings
type Binder struct {
	reader filesystem.LineReader
	logger zerolog.Logger
}

// NewBinder returns a Binder reading file-backed arguments through reader
func NewBinder(reader filesystem.LineReader) *Binder {
	return &Binder{
		reader: reader,
		logger: logging.GetLogger("arguments.binder"),
	}
}

// WithLogger replaces the binder's logger
func (b *Binder) WithLogger(logger zerolog.Logger) *Binder {
	b.logger = logger
	return b
}

// Bind parses every raw entry and accumulates values by name.
// The first failing entry aborts the whole bind.
func (b *Binder) Bind(raw []string) (*Bindings, error) {
	bindings := NewBindings()

	for _, entry := range raw {
		arg, err := ParseArgument(entry)
		if err != nil {
			return nil, err
		}
		b.logger.Trace().
			Str("name", arg.Name).
			Stringer("form", arg.Form).
			Msg("Parsed argument")

		switch arg.Form {
		case FormLiteral:
			bindings.Add(arg.Name, arg.Value)
		case FormFile:
			lines, err := b.reader.ReadLines(arg.Value)
			if err != nil {
				if !errors.IsErrorCode(err, errors.ErrFileRead) {
					err = errors.Wrapf(err, errors.ErrFileRead, "cannot read %s", arg.Value)
				}
				return nil, err
			}
			if len(lines) == 0 {
				return nil, errors.Newf(errors.ErrFileRead, "argument %s: %s has no lines", arg.Name, arg.Value).
					WithDetail("argument", entry).
					WithDetail("path", arg.Value)
			}
			b.logger.Debug().
				Str("name", arg.Name).
				Stringer("form", arg.Form).
				Str("path", arg.Value).
				Int("lines", len(lines)).
				Msg("Bound file argument")
			bindings.Add(arg.Name, lines...)
		}
	}

	b.logger.Trace().
		Strs("names", bindings.Names()).
		Strs("multiValued", bindings.MultiValued()).
		Msg("Arguments bound")

	return bindings, nil
}

// FromEnvFile reads a dotenv file and returns its entries as name=value
// arguments, sorted by name so builds are reproducible.
func FromEnvFile(path string) ([]string, error) {
	env, err := godotenv.Read(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileRead, "cannot read env file %s", path).
			WithDetail("path", path)
	}

	names := make([]string, 0, len(env))
	for name := range env {
		names = append(names, name)
	}
	sort.Strings(names)

	args := make([]string, 0, len(names))
	for _, name := range names {
		args = append(args, name+"="+env[name])
	}
	return args, nil
}

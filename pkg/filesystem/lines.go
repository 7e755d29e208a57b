package filesystem

import (
	"io/fs"
	"strings"

	"github.com/arthur-debert/snippet/pkg/errors"
	"github.com/arthur-debert/snippet/pkg/paths"
)

// LineReader returns the lines of the file at path
type LineReader interface {
	ReadLines(path string) ([]string, error)
}

// LineReaderFunc adapts a function to LineReader
type LineReaderFunc func(path string) ([]string, error)

func (f LineReaderFunc) ReadLines(path string) ([]string, error) {
	return f(path)
}

type fsLineReader struct {
	fs FS
}

// NewLineReader returns a LineReader backed by fsys
func NewLineReader(fsys FS) LineReader {
	return &fsLineReader{fs: fsys}
}

// ReadLines reads path and splits it with SplitLines.
// Every failure is reported as FILE_READ with the path attached.
func (r *fsLineReader) ReadLines(path string) ([]string, error) {
	resolved := paths.ExpandHome(path)

	info, err := r.fs.Stat(resolved)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileRead, "cannot read %s", path).
			WithDetail("path", path)
	}
	if info.IsDir() {
		return nil, errors.Wrapf(&fs.PathError{Op: "read", Path: path, Err: fs.ErrInvalid},
			errors.ErrFileRead, "cannot read %s: is a directory", path).
			WithDetail("path", path)
	}

	data, err := r.fs.ReadFile(resolved)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileRead, "cannot read %s", path).
			WithDetail("path", path)
	}

	return SplitLines(string(data)), nil
}

// SplitLines splits content on \n or \r\n. Line content, including
// surrounding whitespace, is kept; a final newline does not produce a
// trailing empty line. Empty content yields no lines.
func SplitLines(content string) []string {
	if content == "" {
		return nil
	}

	content = strings.TrimSuffix(content, "\n")
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

package template

import (
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/arthur-debert/snippet/pkg/errors"
	"github.com/arthur-debert/snippet/pkg/logging"
)

// Parse parses src into a segment tree
func Parse(src string) (*Template, error) {
	logger := logging.GetLogger("template.parser")

	p := &parser{src: src}
	segments, err := p.parseSegments(false)
	if err != nil {
		logger.Debug().Err(err).Str("template", src).Msg("Template rejected")
		return nil, err
	}

	tmpl := &Template{Source: src, Segments: segments}
	logger.Trace().
		Int("segments", len(segments)).
		Strs("names", tmpl.Names()).
		Msg("Template parsed")
	return tmpl, nil
}

var cache sync.Map

// ParseCached parses src once per distinct string and shares the tree.
// Failed parses are not cached.
func ParseCached(src string) (*Template, error) {
	if cached, ok := cache.Load(src); ok {
		return cached.(*Template), nil
	}
	tmpl, err := Parse(src)
	if err != nil {
		return nil, err
	}
	actual, _ := cache.LoadOrStore(src, tmpl)
	return actual.(*Template), nil
}

type parser struct {
	src string
	pos int
}

// parseSegments scans until end of input, or until the ']' closing the
// current block when inBlock is set.
func (p *parser) parseSegments(inBlock bool) ([]Segment, error) {
	var segments []Segment
	litStart := p.pos

	flush := func() {
		if p.pos > litStart {
			segments = append(segments, Literal{Text: p.src[litStart:p.pos]})
		}
	}

	for p.pos < len(p.src) {
		switch p.src[p.pos] {
		case '<':
			flush()
			ph, err := p.parsePlaceholder()
			if err != nil {
				return nil, err
			}
			segments = append(segments, ph)
			litStart = p.pos

		case '[':
			if inBlock {
				return nil, p.errorAt(p.pos, "optional blocks cannot be nested")
			}
			flush()
			start := p.pos
			p.pos++
			children, err := p.parseSegments(true)
			if err != nil {
				return nil, err
			}
			if p.pos >= len(p.src) || p.src[p.pos] != ']' {
				return nil, p.errorAt(start, "unterminated optional block")
			}
			p.pos++
			segments = append(segments, Optional{Children: children, Pos: start})
			litStart = p.pos

		case ']':
			if inBlock {
				flush()
				return segments, nil
			}
			p.pos++

		default:
			p.pos++
		}
	}

	flush()
	return segments, nil
}

// parsePlaceholder consumes <...> starting at p.pos
func (p *parser) parsePlaceholder() (Placeholder, error) {
	start := p.pos
	end := strings.IndexByte(p.src[start+1:], '>')
	if end < 0 {
		return Placeholder{}, p.errorAt(start, "unterminated placeholder")
	}
	bodyStart := start + 1
	body := p.src[bodyStart : bodyStart+end]
	p.pos = bodyStart + end + 1

	var spec Spec
	i := 0

	name, n := scanIdent(body[i:])
	if name == "" {
		return Placeholder{}, p.errorAt(bodyStart+i+n, "placeholder name is empty or invalid")
	}
	spec.Name = name
	i += n

	for i < len(body) && body[i] == ':' {
		i++
		codec, n := scanIdent(body[i:])
		if codec == "" {
			return Placeholder{}, p.errorAt(bodyStart+i, "codec name is empty or invalid")
		}
		spec.Codecs = append(spec.Codecs, codec)
		i += n
	}

	if strings.HasPrefix(body[i:], "...") {
		spec.Repeatable = true
		i += 3
	}

	if i < len(body) {
		if body[i] != '=' {
			return Placeholder{}, p.errorAt(bodyStart+i, "unexpected %q in placeholder %q", body[i], name)
		}
		spec.Default = body[i+1:]
		spec.HasDefault = true
	}

	return Placeholder{Spec: spec, Pos: start}, nil
}

func (p *parser) errorAt(pos int, format string, args ...interface{}) error {
	return errors.Newf(errors.ErrInvalidTemplate, format, args...).
		WithDetail("position", pos).
		WithDetail("template", p.src)
}

// scanIdent returns the identifier prefix of s and its byte length
func scanIdent(s string) (string, int) {
	i := 0
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])
		if !isIdentRune(r) {
			break
		}
		i += size
	}
	return s[:i], i
}

func isIdentRune(r rune) bool {
	return r == '_' || r == '-' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

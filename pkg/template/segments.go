package template

import (
	"strings"
)

// Segment is one of Literal, Placeholder or Optional
type Segment interface {
	isSegment()
}

// Literal is text emitted unchanged
type Literal struct {
	Text string
}

// Placeholder is a named substitution point
type Placeholder struct {
	Spec Spec
	// Pos is the byte offset of the opening '<'
	Pos int
}

// Optional is a [...] block, elided when any placeholder inside it has no value
type Optional struct {
	Children []Segment
	Pos      int
}

func (Literal) isSegment()     {}
func (Placeholder) isSegment() {}
func (Optional) isSegment()    {}

// Spec describes how a placeholder resolves
type Spec struct {
	Name string
	// Codecs are applied left to right
	Codecs []string
	// Repeatable marks names expected to carry several values (<name...>).
	// It does not change resolution.
	Repeatable bool
	Default    string
	HasDefault bool
}

// String renders the spec back to placeholder syntax
func (s Spec) String() string {
	var b strings.Builder
	b.WriteByte('<')
	b.WriteString(s.Name)
	for _, codec := range s.Codecs {
		b.WriteByte(':')
		b.WriteString(codec)
	}
	if s.Repeatable {
		b.WriteString("...")
	}
	if s.HasDefault {
		b.WriteByte('=')
		b.WriteString(s.Default)
	}
	b.WriteByte('>')
	return b.String()
}

// Template is a parsed template. Treat it as read-only; trees returned by
// ParseCached are shared.
type Template struct {
	Source   string
	Segments []Segment
}

// Usage is a placeholder occurrence and whether it sits in an optional block
type Usage struct {
	Spec     Spec
	Optional bool
	Pos      int
}

// Placeholders lists every placeholder occurrence in template order
func (t *Template) Placeholders() []Usage {
	var usages []Usage
	for _, seg := range t.Segments {
		switch s := seg.(type) {
		case Placeholder:
			usages = append(usages, Usage{Spec: s.Spec, Pos: s.Pos})
		case Optional:
			for _, child := range s.Children {
				if ph, ok := child.(Placeholder); ok {
					usages = append(usages, Usage{Spec: ph.Spec, Optional: true, Pos: ph.Pos})
				}
			}
		}
	}
	return usages
}

// Names lists distinct placeholder names in order of first use
func (t *Template) Names() []string {
	seen := make(map[string]bool)
	var names []string
	for _, usage := range t.Placeholders() {
		if !seen[usage.Spec.Name] {
			seen[usage.Spec.Name] = true
			names = append(names, usage.Spec.Name)
		}
	}
	return names
}

// String reconstructs the template text in canonical form
func (t *Template) String() string {
	var b strings.Builder
	writeSegments(&b, t.Segments)
	return b.String()
}

func writeSegments(b *strings.Builder, segments []Segment) {
	for _, seg := range segments {
		switch s := seg.(type) {
		case Literal:
			b.WriteString(s.Text)
		case Placeholder:
			b.WriteString(s.Spec.String())
		case Optional:
			b.WriteByte('[')
			writeSegments(b, s.Children)
			b.WriteByte(']')
		}
	}
}

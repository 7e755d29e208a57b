// Package render resolves placeholders against argument bindings and
// expands a parsed template into one output per combination of
// multi-valued arguments.
//
// Names bound to more than one value span a cartesian product, ordered
// outermost-first by the names' first appearance in the argument list.
// Single-valued names always use their only value.
//
// A placeholder without a value or default inside an optional block
// elides the whole block; at top level it fails the render. Unknown
// codecs fail the render wherever they appear.
package render

// Package template parses snippet templates into an immutable segment tree.
//
// Grammar:
//
//	template       := segment*
//	segment        := literal | placeholder | optional_block
//	optional_block := '[' (literal | placeholder)* ']'
//	placeholder    := '<' name (':' codec)* ('...')? ('=' default)? '>'
//
// Names and codecs are identifiers (letters, digits, '_' and '-'). A default
// runs verbatim up to the closing '>', so <arg1==!x!=> has the default
// "=!x!=". Optional blocks do not nest, and there is no escaping: every '<'
// opens a placeholder and every '[' opens a block. A ']' outside a block is
// plain text.
//
// The tree does not depend on argument bindings, so ParseCached can share
// one tree between builds of the same template.
package template

// Package arguments turns raw "name=value" and "name:path" entries into
// name bindings.
//
// A literal entry contributes one value. A file entry contributes one
// value per line of the file. Repeating a name appends to its values, so
//
//	arg1=a arg2:values.txt arg1=b
//
// binds arg1 to [a b] and arg2 to the lines of values.txt. Names keep the
// order of their first appearance; that order drives how multi-valued
// names expand into several rendered outputs.
package arguments

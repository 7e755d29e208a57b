// Package registry provides a generic, thread-safe name to item registry.
// A registry can be frozen once populated, after which it only serves
// lookups; the codec registry uses this to stay read-only after init.
package registry

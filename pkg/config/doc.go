// Package config loads snippet's layered configuration with koanf.
//
// Layers, later wins: embedded defaults, ~/.snippet.toml, the XDG app
// config (config.toml or config.yaml), an explicit --config file, and
// SNIPPET_* environment variables (SNIPPET_OUTPUT_FORMAT sets
// output.format).
package config

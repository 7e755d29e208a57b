package commands

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Generate text snippets from templates"
	MsgBuildShort      = "Render a template with arguments"
	MsgInspectShort    = "Show the placeholders of a template"
	MsgListShort       = "List configured templates"
	MsgCodecsShort     = "List available codecs"
	MsgGenConfigShort  = "Print a commented default configuration"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Status messages
	MsgNoTemplates   = "No templates configured."
	MsgNoPlaceholder = "Template has no placeholders."
	MsgVersionFormat = "snippet version %s\n  commit: %s\n  built:  %s\n"

	// Error messages
	MsgErrNoTemplate   = "no template given: pass one as the first argument or use --name"
	MsgErrLoadConfig   = "failed to load configuration"
	MsgErrReadEnvFile  = "failed to read env file"
	MsgErrGenConfig    = "failed to generate configuration"
	MsgErrRenderOutput = "failed to write output"

	// Flag descriptions
	MsgFlagVerbose   = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig    = "Config file (default is $XDG_CONFIG_HOME/snippet/config.toml)"
	MsgFlagName      = "Use the named template from the configuration"
	MsgFlagEnvFile   = "Read name=value arguments from a dotenv file"
	MsgFlagFormat    = "Output format (text, json, yaml)"
	MsgFlagSeparator = "Separator between outputs in text format (escapes like \\n and \\t are decoded)"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/build-long.txt
	msgBuildLongRaw string
	MsgBuildLong    = strings.TrimSpace(msgBuildLongRaw)

	//go:embed msgs/build-example.txt
	msgBuildExampleRaw string
	MsgBuildExample    = strings.TrimRight(msgBuildExampleRaw, "\n")

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)
)

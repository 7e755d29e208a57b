// Package commands holds the cobra command tree of the snippet CLI
package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/arthur-debert/snippet/internal/version"
	"github.com/arthur-debert/snippet/pkg/config"
	"github.com/arthur-debert/snippet/pkg/errors"
	"github.com/arthur-debert/snippet/pkg/logging"
	"github.com/arthur-debert/snippet/pkg/paths"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// app is the state shared by the commands of one root command
type app struct {
	verbosity  int
	configPath string
	cfg        *config.Config
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:     "snippet",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadWithOverrides(paths.New(), a.configPath, flagOverrides(cmd.Flags()))
			if err != nil {
				return errors.Wrap(err, errors.GetErrorCode(err), MsgErrLoadConfig)
			}
			a.cfg = cfg

			logging.SetupLogger(a.verbosity + cfg.Logging.Verbosity)
			logging.LogCommand(cmd.Name(), args)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return fmt.Errorf("no command specified")
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&a.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", MsgFlagConfig)

	rootCmd.AddGroup(&cobra.Group{ID: "core", Title: "COMMANDS:"})
	rootCmd.AddGroup(&cobra.Group{ID: "misc", Title: "MISC:"})

	rootCmd.AddCommand(newBuildCmd(a))
	rootCmd.AddCommand(newInspectCmd(a))
	rootCmd.AddCommand(newListCmd(a))
	rootCmd.AddCommand(newCodecsCmd())
	rootCmd.AddCommand(newGenConfigCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

// flagOverrides maps explicitly set output flags onto config keys so they
// win over every file and environment layer
func flagOverrides(flags *pflag.FlagSet) map[string]interface{} {
	overrides := map[string]interface{}{}
	for flagName, key := range map[string]string{
		"format":    "output.format",
		"separator": "output.separator",
	} {
		f := flags.Lookup(flagName)
		if f != nil && f.Changed {
			overrides[key] = unescape(f.Value.String())
		}
	}
	return overrides
}

// unescape decodes Go escapes such as \n and \t typed on a command line.
// Values that do not decode are kept as given.
func unescape(v string) string {
	if !strings.Contains(v, `\`) {
		return v
	}
	decoded, err := strconv.Unquote(`"` + strings.ReplaceAll(v, `"`, `\"`) + `"`)
	if err != nil {
		return v
	}
	return decoded
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version, version.Commit, version.Date)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		GroupID:               "misc",
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			switch args[0] {
			case "bash":
				err = cmd.Root().GenBashCompletion(cmd.OutOrStdout())
			case "zsh":
				err = cmd.Root().GenZshCompletion(cmd.OutOrStdout())
			case "fish":
				err = cmd.Root().GenFishCompletion(cmd.OutOrStdout(), true)
			case "powershell":
				err = cmd.Root().GenPowerShellCompletionWithDesc(cmd.OutOrStdout())
			}
			if err != nil {
				log.Error().Err(err).Str("shell", args[0]).Msg("Failed to generate completion")
			}
			return err
		},
	}
}

package commands

import (
	"io"

	"github.com/arthur-debert/snippet/pkg/arguments"
	"github.com/arthur-debert/snippet/pkg/errors"
	"github.com/arthur-debert/snippet/pkg/snippet"
	"github.com/arthur-debert/snippet/pkg/ui"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newBuildCmd(a *app) *cobra.Command {
	var (
		name    string
		envFile string
	)

	cmd := &cobra.Command{
		Use:     "build [template] [args...]",
		Short:   MsgBuildShort,
		Long:    MsgBuildLong,
		Example: MsgBuildExample,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			tmpl, cliArgs, err := a.resolveTemplate(name, args)
			if err != nil {
				return err
			}

			if envFile != "" {
				envArgs, err := arguments.FromEnvFile(envFile)
				if err != nil {
					return errors.Wrap(err, errors.GetErrorCode(err), MsgErrReadEnvFile).
						WithDetail("path", envFile)
				}
				cliArgs = append(envArgs, cliArgs...)
			}

			format, renderer, err := a.newRenderer(cmd.OutOrStdout())
			if err != nil {
				return err
			}

			log.Info().
				Str("template", tmpl).
				Int("arguments", len(cliArgs)).
				Str("format", format.String()).
				Msg("Building snippet")

			outputs, err := snippet.New(
				snippet.WithTemplate(tmpl),
				snippet.WithArguments(cliArgs...),
			).Build()
			if err != nil {
				// machine formats report the error on stdout as well
				if format != ui.FormatText {
					_ = renderer.RenderError(err)
				}
				return err
			}

			if err := renderer.RenderOutputs(outputs); err != nil {
				return errors.Wrap(err, errors.ErrInternal, MsgErrRenderOutput)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", MsgFlagName)
	cmd.Flags().StringVar(&envFile, "env-file", "", MsgFlagEnvFile)
	cmd.Flags().StringP("format", "o", "", MsgFlagFormat)
	cmd.Flags().String("separator", "", MsgFlagSeparator)

	_ = cmd.RegisterFlagCompletionFunc("name", a.templateNamesCompletion)
	_ = cmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return ui.FormatNames, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

// newRenderer builds the renderer for the configured output format
func (a *app) newRenderer(w io.Writer) (ui.Format, ui.Renderer, error) {
	format, err := ui.ParseFormat(a.cfg.Output.Format)
	if err != nil {
		return format, nil, err
	}
	renderer, err := ui.NewRenderer(format, w, ui.Options{Separator: a.cfg.Output.Separator})
	return format, renderer, err
}

// resolveTemplate picks the template text and the arguments to bind.
// With a name, the configured arguments come before every positional.
func (a *app) resolveTemplate(name string, args []string) (string, []string, error) {
	if name == "" {
		if len(args) == 0 {
			return "", nil, errors.New(errors.ErrInvalidInput, MsgErrNoTemplate)
		}
		return args[0], append([]string(nil), args[1:]...), nil
	}

	configured, err := a.cfg.Template(name)
	if err != nil {
		return "", nil, err
	}

	combined := make([]string, 0, len(configured.Arguments)+len(args))
	combined = append(combined, configured.Arguments...)
	combined = append(combined, args...)
	return configured.Template, combined, nil
}

// templateNamesCompletion completes configured template names
func (a *app) templateNamesCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if a.cfg == nil {
		if err := cmd.Root().PersistentPreRunE(cmd, args); err != nil {
			return nil, cobra.ShellCompDirectiveError
		}
	}
	return a.cfg.TemplateNames(), cobra.ShellCompDirectiveNoFileComp
}

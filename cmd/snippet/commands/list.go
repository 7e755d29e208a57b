package commands

import (
	"github.com/arthur-debert/snippet/pkg/codecs"
	"github.com/arthur-debert/snippet/pkg/ui"
	"github.com/spf13/cobra"
)

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Short:   MsgListShort,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			names := a.cfg.TemplateNames()
			if len(names) == 0 {
				_, renderer, err := a.newRenderer(out)
				if err != nil {
					return err
				}
				return renderer.RenderMessage(MsgNoTemplates)
			}

			rows := make([][]string, 0, len(names))
			for _, name := range names {
				t, err := a.cfg.Template(name)
				if err != nil {
					return err
				}
				rows = append(rows, []string{name, t.Description, t.Template})
			}
			return ui.RenderTable(out, []string{"NAME", "DESCRIPTION", "TEMPLATE"}, rows, colorFor(out))
		},
	}
}

func newCodecsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "codecs",
		Short:   MsgCodecsShort,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			registry := codecs.Default()
			names := registry.List()

			rows := make([][]string, 0, len(names))
			for _, name := range names {
				desc, err := registry.Describe(name)
				if err != nil {
					return err
				}
				rows = append(rows, []string{name, desc})
			}
			out := cmd.OutOrStdout()
			return ui.RenderTable(out, []string{"NAME", "DESCRIPTION"}, rows, colorFor(out))
		},
	}
}

package commands

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/arthur-debert/snippet/pkg/codecs"
	"github.com/arthur-debert/snippet/pkg/template"
	"github.com/arthur-debert/snippet/pkg/ui"
	"github.com/spf13/cobra"
)

func newInspectCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "inspect <template>",
		Short:   MsgInspectShort,
		GroupID: "core",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tmpl, err := template.Parse(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			usages := tmpl.Placeholders()
			if len(usages) == 0 {
				_, renderer, err := a.newRenderer(out)
				if err != nil {
					return err
				}
				return renderer.RenderMessage(MsgNoPlaceholder)
			}

			registry := codecs.Default()

			rows := make([][]string, 0, len(usages))
			for _, u := range usages {
				def := ""
				if u.Spec.HasDefault {
					def = fmt.Sprintf("%q", u.Spec.Default)
				}
				rows = append(rows, []string{
					u.Spec.Name,
					codecList(registry, u.Spec.Codecs),
					yesNo(u.Spec.Repeatable),
					def,
					yesNo(u.Optional),
				})
			}

			return ui.RenderTable(out,
				[]string{"NAME", "CODECS", "REPEATABLE", "DEFAULT", "OPTIONAL"},
				rows, colorFor(out))
		},
	}
}

// codecList joins a codec chain, marking names the registry does not know
func codecList(registry *codecs.Registry, chain []string) string {
	names := make([]string, len(chain))
	for i, name := range chain {
		names[i] = name
		if !registry.Has(name) {
			names[i] += " (unknown)"
		}
	}
	return strings.Join(names, ":")
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

// colorFor reports whether w is a terminal that takes styled output
func colorFor(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && ui.UseColor(f)
}

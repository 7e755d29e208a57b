package main

import (
	"os"

	"github.com/arthur-debert/snippet/cmd/snippet/commands"
	"github.com/arthur-debert/snippet/pkg/ui"
)

func main() {
	rootCmd := commands.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		ui.PrintError(os.Stderr, err, ui.UseColor(os.Stderr))
		os.Exit(1)
	}
}

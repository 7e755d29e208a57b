package ui

import (
	"fmt"
	"io"

	"github.com/pterm/pterm"
)

// RenderTable writes header and rows as an aligned table.
// Without color the table is plain text.
func RenderTable(w io.Writer, header []string, rows [][]string, color bool) error {
	if !color {
		pterm.DisableStyling()
		defer pterm.EnableStyling()
	}

	data := pterm.TableData{header}
	data = append(data, rows...)

	out, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, out)
	return err
}

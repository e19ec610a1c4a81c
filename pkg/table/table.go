package table

import (
	"io"

	"github.com/pterm/pterm"
)

// PrintTableNoPad renders rows without the box padding pterm adds by default.
func PrintTableNoPad(w io.Writer, rows pterm.TableData, hasHeader bool) error {
	return pterm.DefaultTable.
		WithHasHeader(hasHeader).
		WithLeftAlignment().
		WithData(rows).
		WithWriter(w).
		Render()
}

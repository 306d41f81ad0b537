package command

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"
)

const (
	outputPlain = "plain"
	outputTable = "table"
)

// render writes one report. Plain output is one space-separated row per line,
// with a "==> name <==" banner when more than one file is rendered.
func (cl *Commandline) render(w io.Writer, name string, rep report, i, total int) error {
	if cl.output == outputTable {
		table := tablewriter.NewWriter(w)
		table.SetHeader(rep.header)
		table.SetAutoFormatHeaders(false)
		table.SetCaption(true, name)
		table.AppendBulk(rep.rows)
		table.Render()

		return nil
	}

	if total > 1 {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "==> %s <==\n", name); err != nil {
			return err
		}
	}
	for _, row := range rep.rows {
		if _, err := fmt.Fprintln(w, strings.Join(row, " ")); err != nil {
			return err
		}
	}

	return nil
}

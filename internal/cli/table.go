package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

const (
	columnGap  = 2
	emptyCell  = "-"
	emptyTable = "(none)"
)

// writeTable aligns rows under headers. Short rows are padded with "-" so
// tabwriter keeps every column in place.
func writeTable(out io.Writer, headers []string, rows [][]string) error {
	w := tabwriter.NewWriter(out, 0, 0, columnGap, ' ', 0)
	if len(headers) > 0 {
		fmt.Fprintln(w, strings.Join(headers, "\t"))
	}
	if len(rows) == 0 {
		fmt.Fprintln(w, emptyTable)
	}
	for _, row := range rows {
		cells := make([]string, max(len(headers), len(row)))
		for i := range cells {
			cells[i] = emptyCell
			if i < len(row) && row[i] != "" {
				cells[i] = row[i]
			}
		}
		fmt.Fprintln(w, strings.Join(cells, "\t"))
	}
	return w.Flush()
}

func formatYesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}

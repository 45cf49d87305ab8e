package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/rivnakm/chcolors/internal/applier"
)

var fileSummaryHeaders = []string{"PROGRAM", "FILE", "PATTERNS", "CHANGED"}

func writeTable(out io.Writer, headers []string, rows [][]string) error {
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for _, cells := range append([][]string{headers}, rows...) {
		if len(cells) == 0 {
			continue
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}
	return tw.Flush()
}

// writeFileSummary lists the files in which at least one pattern matched.
// Nothing is written when no file matched.
func writeFileSummary(out io.Writer, files []applier.FileResult) error {
	var rows [][]string
	for _, file := range files {
		if file.Patterns == 0 {
			continue
		}
		changed := "no"
		if file.Modified {
			changed = "yes"
		}
		rows = append(rows, []string{file.Program, file.Path, strconv.Itoa(file.Patterns), changed})
	}
	if len(rows) == 0 {
		return nil
	}
	return writeTable(out, fileSummaryHeaders, rows)
}

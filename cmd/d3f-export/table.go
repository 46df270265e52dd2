package main

import (
	"fmt"
	"io"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"

	"github.com/yourmjk/d3f-metadata-exporter/internal/export"
)

// summaryColumns are the right-aligned count columns of the summary table.
var summaryColumns = []string{"Entries", "Exported", "Failed"}

// renderSummary renders one row per exported collection and a totals footer.
func renderSummary(report *export.Report) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Collection", "Path", summaryColumns[0], summaryColumns[1], summaryColumns[2]})

	var total, exported, failed int
	for _, c := range report.Collections {
		tw.AppendRow(table.Row{c.Collection.Name(), c.Path, c.Total, c.Exported, c.Failed})
		total += c.Total
		exported += c.Exported
		failed += c.Failed
	}
	tw.AppendFooter(table.Row{"Total", "", total, exported, failed})

	configs := []table.ColumnConfig{
		{Name: "Collection", AlignHeader: text.AlignLeft},
		{Name: "Path", AlignHeader: text.AlignLeft, WidthMax: 60},
	}
	for _, name := range summaryColumns {
		configs = append(configs, table.ColumnConfig{
			Name:        name,
			Align:       text.AlignRight,
			AlignHeader: text.AlignRight,
			AlignFooter: text.AlignRight,
		})
	}
	tw.SetColumnConfigs(configs)

	return tw.Render()
}

func printSummary(out io.Writer, report *export.Report) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, renderSummary(report))
	fmt.Fprintf(out, "%d directories, %d files written\n", report.Units, report.Files)
}

func isTerminal(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

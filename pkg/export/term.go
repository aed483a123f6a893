package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/linerate/linerate/pkg/models"
)

// table is a minimal fixed-width table renderer for terminal output.
type table struct {
	headers []string
	rows    [][]string
	colored []bool
	widths  []int
}

func newTable(headers []string) *table {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}

	return &table{headers: headers, widths: widths}
}

func (t *table) addRow(row []string, highlight bool) {
	for i, cell := range row {
		if i < len(t.widths) && len(cell) > t.widths[i] {
			t.widths[i] = len(cell)
		}
	}

	t.rows = append(t.rows, row)
	t.colored = append(t.colored, highlight)
}

func (t *table) render(w io.Writer) {
	header := color.New(color.FgCyan, color.Bold)
	bottleneck := color.New(color.FgRed, color.Bold)

	for i, h := range t.headers {
		header.Fprintf(w, "%-*s  ", t.widths[i], h)
	}

	fmt.Fprintln(w)

	for i := range t.headers {
		fmt.Fprint(w, strings.Repeat("-", t.widths[i]), "  ")
	}

	fmt.Fprintln(w)

	for r, row := range t.rows {
		for i, cell := range row {
			if i >= len(t.widths) {
				continue
			}

			if t.colored[r] {
				bottleneck.Fprintf(w, "%-*s  ", t.widths[i], cell)
			} else {
				fmt.Fprintf(w, "%-*s  ", t.widths[i], cell)
			}
		}

		fmt.Fprintln(w)
	}
}

// Terminal writes a colored human-readable report to w, with the bottleneck
// row highlighted in red. Colors degrade to plain text when w is not a TTY.
func Terminal(w io.Writer, report *models.Report, recommendations []string) {
	unit := report.TimeUnit

	t := newTable([]string{
		"Step",
		"Resources",
		fmt.Sprintf("Time (%s)", unit),
		fmt.Sprintf("Capacity (units/%s)", unit),
		"Utilization",
		"Status",
	})

	for _, row := range report.Rows {
		status := ""
		if row.IsBottleneck {
			status = "BOTTLENECK"
		}

		t.addRow([]string{
			row.Step,
			fmt.Sprintf("%d", row.Resources),
			fmt.Sprintf("%.1f", row.ProcessingTime),
			fmt.Sprintf("%.3f", row.Capacity),
			fmt.Sprintf("%.1f%%", row.Utilization*100),
			status,
		}, row.IsBottleneck)
	}

	t.render(w)

	fmt.Fprintln(w)
	fmt.Fprintf(w, "System throughput: %.3f units/%s\n", report.SystemCapacity, unit)
	fmt.Fprintf(w, "Cycle time:        %.2f %ss/unit\n", report.CycleTime, unit)
	fmt.Fprintf(w, "Avg utilization:   %.1f%%\n", report.AverageUtilization*100)

	if len(recommendations) > 0 {
		fmt.Fprintln(w)
		color.New(color.FgYellow, color.Bold).Fprintln(w, "Recommendations")

		for _, rec := range recommendations {
			fmt.Fprintf(w, "  - %s\n", rec)
		}
	}
}

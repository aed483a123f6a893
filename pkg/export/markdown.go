// Package export renders analysis reports into presentation formats:
// Markdown, CSV and colored terminal output. Rendering is pure; callers own
// all file and network I/O.
package export

import (
	"fmt"
	"strings"

	"github.com/linerate/linerate/pkg/models"
)

// Markdown renders the report as a Markdown document with an executive
// summary, a per-step table and the improvement recommendations.
func Markdown(report *models.Report, recommendations []string) string {
	var b strings.Builder

	unit := report.TimeUnit

	b.WriteString("# Process Bottleneck Analysis Report\n\n")
	b.WriteString("## Executive Summary\n\n")
	fmt.Fprintf(&b, "- **Bottleneck Step:** %s\n", report.BottleneckStep)
	fmt.Fprintf(&b, "- **System Throughput:** %.3f units/%s\n", report.SystemCapacity, unit)
	fmt.Fprintf(&b, "- **Cycle Time:** %.2f %ss/unit\n", report.CycleTime, unit)
	fmt.Fprintf(&b, "- **Average Utilization:** %.1f%%\n", report.AverageUtilization*100)

	if report.SecondaryBottleneck != "" {
		fmt.Fprintf(&b, "- **Secondary Bottleneck:** %s\n", report.SecondaryBottleneck)
	}

	b.WriteString("\n## Process Steps\n\n")
	fmt.Fprintf(&b, "| Step | Resources | Processing Time (%s) | Capacity (units/%s) | Utilization | Status |\n", unit, unit)
	b.WriteString("|------|-----------|---------------------|--------------------|-------------|--------|\n")

	for _, row := range report.Rows {
		status := "Normal"
		if row.IsBottleneck {
			status = "**BOTTLENECK**"
		}

		fmt.Fprintf(&b, "| %s | %d | %.1f | %.3f | %.1f%% | %s |\n",
			row.Step, row.Resources, row.ProcessingTime, row.Capacity, row.Utilization*100, status)
	}

	if len(recommendations) > 0 {
		b.WriteString("\n## Recommendations\n\n")

		for i, rec := range recommendations {
			fmt.Fprintf(&b, "%d. %s\n", i+1, rec)
		}
	}

	return b.String()
}

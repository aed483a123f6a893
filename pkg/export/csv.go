package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/linerate/linerate/pkg/models"
)

// CSV renders the report as comma-separated values, one row per step in
// process order.
func CSV(report *models.Report) ([]byte, error) {
	var buf bytes.Buffer

	w := csv.NewWriter(&buf)

	header := []string{"name", "resources", "processing_time", "capacity", "utilization", "is_bottleneck"}
	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, row := range report.Rows {
		record := []string{
			row.Step,
			strconv.Itoa(row.Resources),
			strconv.FormatFloat(row.ProcessingTime, 'f', -1, 64),
			strconv.FormatFloat(row.Capacity, 'f', -1, 64),
			strconv.FormatFloat(row.Utilization, 'f', -1, 64),
			strconv.FormatBool(row.IsBottleneck),
		}

		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV row for step %q: %w", row.Step, err)
		}
	}

	w.Flush()

	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush CSV output: %w", err)
	}

	return buf.Bytes(), nil
}

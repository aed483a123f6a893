package engine

import "github.com/linerate/linerate/pkg/models"

// ToReport renders an analysis result into the structured report consumed
// by exporters and the presentation layer: one row per step in process
// order plus the system-level summary fields.
func ToReport(p *models.Process, result *models.AnalysisResult) *models.Report {
	report := &models.Report{
		TimeUnit:            result.TimeUnit,
		SystemCapacity:      result.SystemCapacity,
		CycleTime:           result.CycleTime,
		BottleneckStep:      result.BottleneckStep,
		SecondaryBottleneck: result.SecondaryBottleneck,
		AverageUtilization:  result.AverageUtilization,
		Rows:                make([]models.ReportRow, 0, p.Len()),
	}

	for _, step := range p.Steps() {
		report.Rows = append(report.Rows, models.ReportRow{
			Step:           step.Name,
			Resources:      len(step.Resources),
			ProcessingTime: step.MeanProcessingTime(),
			Capacity:       result.StepCapacities[step.Name],
			Utilization:    result.Utilizations[step.Name],
			IsBottleneck:   step.Name == result.BottleneckStep,
		})
	}

	return report
}

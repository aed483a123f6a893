package models

// AnalysisResult is the immutable output of one bottleneck analysis run.
// Maps are keyed by step name; StepOrder preserves process order for
// deterministic rendering.
type AnalysisResult struct {
	StepOrder           []string           `json:"step_order"`
	StepCapacities      map[string]float64 `json:"step_capacities"`
	BottleneckStep      string             `json:"bottleneck_step"`
	SecondaryBottleneck string             `json:"secondary_bottleneck,omitempty"`
	SystemCapacity      float64            `json:"system_capacity"`
	CycleTime           float64            `json:"cycle_time"`
	Utilizations        map[string]float64 `json:"utilizations"`
	AverageUtilization  float64            `json:"average_utilization"`
	TimeUnit            string             `json:"time_unit"`
}

// ReportRow describes one process step in a rendered report.
type ReportRow struct {
	Step           string  `json:"step"`
	Resources      int     `json:"resources"`
	ProcessingTime float64 `json:"processing_time"`
	Capacity       float64 `json:"capacity"`
	Utilization    float64 `json:"utilization"`
	IsBottleneck   bool    `json:"is_bottleneck"`
}

// Report is the structured analysis report: one row per step in process
// order plus system-level summary fields. It carries no rendering logic;
// exporters and the presentation layer turn it into terminal, Markdown or
// CSV output.
type Report struct {
	TimeUnit            string      `json:"time_unit"`
	SystemCapacity      float64     `json:"system_capacity"`
	CycleTime           float64     `json:"cycle_time"`
	BottleneckStep      string      `json:"bottleneck_step"`
	SecondaryBottleneck string      `json:"secondary_bottleneck,omitempty"`
	AverageUtilization  float64     `json:"average_utilization"`
	Rows                []ReportRow `json:"rows"`
}

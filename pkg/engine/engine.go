// Package engine derives system-level bottleneck metrics from a completed
// process model. All functions are pure: they take an in-memory Process,
// produce immutable values and never touch I/O.
package engine

import (
	"fmt"

	"github.com/linerate/linerate/pkg/models"
)

// Analyze computes per-step capacities, identifies the bottleneck and
// returns the system-level metrics. The process must have at least one step,
// each with at least one resource and positive processing times; this is
// re-checked defensively even though Process construction already enforces
// it.
func Analyze(p *models.Process) (*models.AnalysisResult, error) {
	if err := validateProcess(p); err != nil {
		return nil, err
	}

	steps := p.Steps()
	result := &models.AnalysisResult{
		StepOrder:      make([]string, 0, len(steps)),
		StepCapacities: make(map[string]float64, len(steps)),
		Utilizations:   make(map[string]float64, len(steps)),
		TimeUnit:       p.TimeUnit(),
	}

	for _, step := range steps {
		capacity, err := p.StepCapacity(step.Name)
		if err != nil {
			return nil, err
		}

		result.StepOrder = append(result.StepOrder, step.Name)
		result.StepCapacities[step.Name] = capacity

		// First step attaining the minimum wins ties.
		if result.BottleneckStep == "" || capacity < result.SystemCapacity {
			result.BottleneckStep = step.Name
			result.SystemCapacity = capacity
		}
	}

	var totalUtilization float64

	for _, name := range result.StepOrder {
		utilization := result.SystemCapacity / result.StepCapacities[name]
		result.Utilizations[name] = utilization
		totalUtilization += utilization
	}

	result.CycleTime = 1 / result.SystemCapacity
	result.AverageUtilization = totalUtilization / float64(len(result.StepOrder))
	result.SecondaryBottleneck = secondaryBottleneck(result)

	return result, nil
}

// secondaryBottleneck returns the lowest-capacity step other than the
// bottleneck itself, the constraint that would bind next once the primary
// one is resolved. Empty for single-step processes.
func secondaryBottleneck(result *models.AnalysisResult) string {
	var (
		name     string
		capacity float64
	)

	for _, step := range result.StepOrder {
		if step == result.BottleneckStep {
			continue
		}

		if name == "" || result.StepCapacities[step] < capacity {
			name = step
			capacity = result.StepCapacities[step]
		}
	}

	return name
}

func validateProcess(p *models.Process) error {
	if p == nil {
		return fmt.Errorf("%w: process is nil", ErrInvalidProcess)
	}

	if p.Len() == 0 {
		return fmt.Errorf("%w: process has no steps", ErrInvalidProcess)
	}

	for _, step := range p.Steps() {
		if len(step.Resources) == 0 {
			return fmt.Errorf("%w: step %q has no resources", ErrInvalidProcess, step.Name)
		}

		for _, r := range step.Resources {
			if r.ProcessingTime <= 0 {
				return fmt.Errorf("%w: resource %q in step %q has non-positive processing time",
					ErrInvalidProcess, r.Name, step.Name)
			}
		}
	}

	return nil
}

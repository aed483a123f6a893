package engine

import (
	"fmt"

	"github.com/linerate/linerate/pkg/models"
)

// Utilization below this share of the bottleneck is considered spare
// capacity worth rebalancing toward.
const underutilizedThreshold = 0.7

// Recommend produces human-readable improvement guidance for an analysis
// result: what the bottleneck costs, and the standard levers to relieve it.
// It never mutates the result.
func Recommend(p *models.Process, result *models.AnalysisResult) []string {
	unit := result.TimeUnit
	recommendations := []string{
		fmt.Sprintf("%s is the bottleneck: it caps system throughput at %.3f units per %s (cycle time %.2f %ss per unit).",
			result.BottleneckStep, result.SystemCapacity, unit, result.CycleTime, unit),
	}

	if step := findStep(p, result.BottleneckStep); step != nil {
		withExtra := result.SystemCapacity + 1/step.MeanProcessingTime()
		recommendations = append(recommendations,
			fmt.Sprintf("Add one resource to %s: capacity rises to %.3f units per %s.",
				step.Name, withExtra, unit),
			fmt.Sprintf("Reduce processing time at %s by 20%%: capacity rises to %.3f units per %s.",
				step.Name, result.SystemCapacity/0.8, unit),
		)
	}

	for _, name := range result.StepOrder {
		if name == result.BottleneckStep {
			continue
		}

		if utilization := result.Utilizations[name]; utilization < underutilizedThreshold {
			recommendations = append(recommendations,
				fmt.Sprintf("%s runs at %.1f%% utilization; consider rebalancing work from %s toward it.",
					name, utilization*100, result.BottleneckStep))
		}
	}

	if result.SecondaryBottleneck != "" {
		recommendations = append(recommendations,
			fmt.Sprintf("Once %s is relieved, %s becomes the next constraint at %.3f units per %s.",
				result.BottleneckStep, result.SecondaryBottleneck,
				result.StepCapacities[result.SecondaryBottleneck], unit))
	}

	return recommendations
}

func findStep(p *models.Process, name string) *models.ProcessStep {
	for _, step := range p.Steps() {
		if step.Name == name {
			return step
		}
	}

	return nil
}

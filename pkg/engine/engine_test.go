package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linerate/linerate/pkg/models"
)

func buildProcess(t *testing.T, steps map[string][]models.Resource, order []string) *models.Process {
	t.Helper()

	p := models.NewProcess("minute")
	for _, name := range order {
		require.NoError(t, p.AddStep(name, steps[name]))
	}

	return p
}

func TestAnalyze_SingleStep(t *testing.T) {
	t.Parallel()

	p := buildProcess(t, map[string][]models.Resource{
		"Assembly": {{Name: "Worker A", ProcessingTime: 2.0}},
	}, []string{"Assembly"})

	result, err := Analyze(p)
	require.NoError(t, err)

	assert.Equal(t, 0.5, result.StepCapacities["Assembly"])
	assert.Equal(t, "Assembly", result.BottleneckStep)
	assert.Equal(t, 0.5, result.SystemCapacity)
	assert.Equal(t, 1.0, result.Utilizations["Assembly"])
	assert.Equal(t, 2.0, result.CycleTime)
	assert.Empty(t, result.SecondaryBottleneck)
}

func TestAnalyze_TwoSteps(t *testing.T) {
	t.Parallel()

	p := buildProcess(t, map[string][]models.Resource{
		"Step1": {{Name: "Worker A", ProcessingTime: 1.0}},
		"Step2": {{Name: "Worker B", ProcessingTime: 2.0}},
	}, []string{"Step1", "Step2"})

	result, err := Analyze(p)
	require.NoError(t, err)

	assert.Equal(t, "Step2", result.BottleneckStep)
	assert.Equal(t, 0.5, result.SystemCapacity)
	assert.Equal(t, 0.5, result.Utilizations["Step1"])
	assert.Equal(t, 1.0, result.Utilizations["Step2"])
	assert.Equal(t, "Step1", result.SecondaryBottleneck)
}

func TestAnalyze_TieBreaksOnProcessOrder(t *testing.T) {
	t.Parallel()

	p := buildProcess(t, map[string][]models.Resource{
		"Step1": {
			{Name: "Worker A", ProcessingTime: 2.0},
			{Name: "Worker B", ProcessingTime: 2.0},
		},
		"Step2": {{Name: "Worker C", ProcessingTime: 1.0}},
	}, []string{"Step1", "Step2"})

	result, err := Analyze(p)
	require.NoError(t, err)

	assert.Equal(t, 1.0, result.StepCapacities["Step1"])
	assert.Equal(t, 1.0, result.StepCapacities["Step2"])
	assert.Equal(t, "Step1", result.BottleneckStep)
	assert.Equal(t, 1.0, result.SystemCapacity)
}

func TestAnalyze_UtilizationBounds(t *testing.T) {
	t.Parallel()

	p := buildProcess(t, map[string][]models.Resource{
		"Cutting":   {{Name: "Machine 1", ProcessingTime: 2.0}, {Name: "Machine 2", ProcessingTime: 2.0}},
		"Welding":   {{Name: "Machine 3", ProcessingTime: 3.0}, {Name: "Machine 4", ProcessingTime: 3.0}},
		"Assembly":  {{Name: "Worker A", ProcessingTime: 4.0}, {Name: "Worker B", ProcessingTime: 4.0}, {Name: "Worker C", ProcessingTime: 4.0}},
		"Testing":   {{Name: "Rig", ProcessingTime: 1.5}},
		"Packaging": {{Name: "Packer 1", ProcessingTime: 1.0}, {Name: "Packer 2", ProcessingTime: 1.0}},
	}, []string{"Cutting", "Welding", "Assembly", "Testing", "Packaging"})

	result, err := Analyze(p)
	require.NoError(t, err)

	minCapacity := result.StepCapacities[result.StepOrder[0]]
	for _, name := range result.StepOrder {
		utilization := result.Utilizations[name]
		assert.Greater(t, utilization, 0.0)
		assert.LessOrEqual(t, utilization, 1.0)

		if result.StepCapacities[name] < minCapacity {
			minCapacity = result.StepCapacities[name]
		}
	}

	assert.Equal(t, minCapacity, result.SystemCapacity)
	assert.Equal(t, 1.0, result.Utilizations[result.BottleneckStep])
	// Welding and Testing tie at the minimum; Welding comes first.
	assert.Equal(t, "Welding", result.BottleneckStep)
}

func TestAnalyze_AddResourceToNonBottleneck(t *testing.T) {
	t.Parallel()

	p := buildProcess(t, map[string][]models.Resource{
		"Step1": {{Name: "Worker A", ProcessingTime: 1.0}},
		"Step2": {{Name: "Worker B", ProcessingTime: 2.0}},
	}, []string{"Step1", "Step2"})

	before, err := Analyze(p)
	require.NoError(t, err)

	require.NoError(t, p.AddResourceToStep("Step1", "Worker C", 1.0))

	after, err := Analyze(p)
	require.NoError(t, err)

	assert.Equal(t, before.SystemCapacity, after.SystemCapacity)
	assert.Equal(t, before.BottleneckStep, after.BottleneckStep)
}

func TestAnalyze_AddResourceToBottleneck(t *testing.T) {
	t.Parallel()

	p := buildProcess(t, map[string][]models.Resource{
		"Step1": {{Name: "Worker A", ProcessingTime: 1.0}},
		"Step2": {{Name: "Worker B", ProcessingTime: 2.0}},
	}, []string{"Step1", "Step2"})

	before, err := Analyze(p)
	require.NoError(t, err)
	require.Equal(t, "Step2", before.BottleneckStep)

	require.NoError(t, p.AddResourceToStep("Step2", "Worker C", 2.0))

	after, err := Analyze(p)
	require.NoError(t, err)

	assert.Greater(t, after.SystemCapacity, before.SystemCapacity)
	assert.Equal(t, "Step1", after.BottleneckStep)
}

func TestAnalyze_InvalidProcess(t *testing.T) {
	t.Parallel()

	_, err := Analyze(nil)
	require.ErrorIs(t, err, ErrInvalidProcess)
	assert.True(t, IsInvalidProcess(err))

	_, err = Analyze(models.NewProcess("minute"))
	require.ErrorIs(t, err, ErrInvalidProcess)
}

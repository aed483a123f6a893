package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/linerate/linerate/pkg/engine"
	"github.com/linerate/linerate/pkg/models"
)

// ResourceInput is one resource of a submitted process definition.
type ResourceInput struct {
	Name           string  `json:"name"            yaml:"name"            validate:"required,min=1"`
	ProcessingTime float64 `json:"processing_time" yaml:"processing_time" validate:"required,gt=0"`
}

// StepInput is one step of a submitted process definition.
type StepInput struct {
	Name      string          `json:"name"      yaml:"name"      validate:"required,min=1"`
	Resources []ResourceInput `json:"resources" yaml:"resources" validate:"required,min=1,dive"`
}

// Definition is a complete process definition as submitted by the CLI or
// API: an ordered sequence of steps plus a display time-unit label.
type Definition struct {
	TimeUnit string      `json:"time_unit,omitempty" yaml:"time_unit"`
	Steps    []StepInput `json:"steps"               yaml:"steps"     validate:"required,min=1,dive"`
}

// Run is the complete outcome of one analysis run.
type Run struct {
	ID              string                 `json:"id"`
	Result          *models.AnalysisResult `json:"result"`
	Report          *models.Report         `json:"report"`
	Recommendations []string               `json:"recommendations"`
}

// Analysis orchestrates one analysis run: decode and validate a definition,
// build the process model, invoke the engine. It holds no per-run state, so
// a single instance serves concurrent callers.
type Analysis struct {
	logger   *slog.Logger
	validate *validator.Validate
}

// NewAnalysis creates a new analysis service.
func NewAnalysis(logger *slog.Logger) *Analysis {
	return &Analysis{
		logger:   logger,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Run validates the definition, builds a fresh Process and produces the
// analysis result, report and recommendations.
func (a *Analysis) Run(ctx context.Context, def Definition) (*Run, error) {
	if err := a.validate.Struct(def); err != nil {
		return nil, &ServiceError{Op: "analysis.run", Err: fmt.Errorf("%w: %w", ErrInvalidDefinition, err)}
	}

	process, err := BuildProcess(def)
	if err != nil {
		return nil, &ServiceError{Op: "analysis.run", Err: err}
	}

	return a.run(ctx, process)
}

// RunRaw behaves like Run for a raw JSON definition body, validating it
// against the definition JSON Schema first.
func (a *Analysis) RunRaw(ctx context.Context, raw []byte) (*Run, error) {
	if err := validateDefinitionJSON(raw); err != nil {
		return nil, &ServiceError{Op: "analysis.run", Err: err}
	}

	var def Definition
	if err := json.Unmarshal(raw, &def); err != nil {
		return nil, &ServiceError{Op: "analysis.run", Err: fmt.Errorf("%w: %w", ErrInvalidDefinition, err)}
	}

	return a.Run(ctx, def)
}

// RunTemplate runs the analysis for a built-in example template.
func (a *Analysis) RunTemplate(ctx context.Context, templateID string) (*Run, error) {
	template, err := models.TemplateByID(templateID)
	if err != nil {
		return nil, &ServiceError{Op: "analysis.template", Err: err}
	}

	process, err := template.Process()
	if err != nil {
		return nil, &ServiceError{Op: "analysis.template", Err: err}
	}

	return a.run(ctx, process)
}

func (a *Analysis) run(ctx context.Context, process *models.Process) (*Run, error) {
	result, err := engine.Analyze(process)
	if err != nil {
		return nil, &ServiceError{Op: "analysis.run", Err: err}
	}

	run := &Run{
		ID:              uuid.NewString(),
		Result:          result,
		Report:          engine.ToReport(process, result),
		Recommendations: engine.Recommend(process, result),
	}

	a.logger.InfoContext(ctx, "Analysis completed",
		"run_id", run.ID,
		"steps", process.Len(),
		"bottleneck", result.BottleneckStep,
		"system_capacity", result.SystemCapacity,
	)

	return run, nil
}

// BuildProcess constructs a Process from a validated definition. Model-level
// validation (duplicate names, non-positive times) still applies and is
// surfaced unchanged.
func BuildProcess(def Definition) (*models.Process, error) {
	process := models.NewProcess(def.TimeUnit)

	for _, step := range def.Steps {
		resources := make([]models.Resource, 0, len(step.Resources))
		for _, r := range step.Resources {
			resources = append(resources, models.Resource{
				Name:           r.Name,
				ProcessingTime: r.ProcessingTime,
			})
		}

		if err := process.AddStep(step.Name, resources); err != nil {
			return nil, err
		}
	}

	return process, nil
}

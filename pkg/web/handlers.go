// Package web provides the HTTP handlers for the bottleneck analysis API.
package web

import (
	"github.com/gofiber/fiber/v3"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/linerate/linerate/pkg/models"
	"github.com/linerate/linerate/pkg/otelhelper"
	"github.com/linerate/linerate/pkg/services"
)

// APIHandlers serves the analysis endpoints. The service layer is stateless,
// so a single handler set safely serves concurrent requests; each request
// builds its own process model.
type APIHandlers struct {
	analysisService *services.Analysis
	tracer          trace.Tracer
}

// NewAPIHandlers creates the handler set. tracer may be nil to disable
// tracing.
func NewAPIHandlers(analysisService *services.Analysis, tracer trace.Tracer) *APIHandlers {
	return &APIHandlers{
		analysisService: analysisService,
		tracer:          tracer,
	}
}

// CreateAnalysis runs a bottleneck analysis for the process definition in
// the request body and returns the result, report and recommendations.
// Nothing is stored; resubmit the definition to re-analyze.
func (h *APIHandlers) CreateAnalysis(c fiber.Ctx) error {
	ctx := c.Context()

	if h.tracer != nil {
		var span trace.Span

		ctx, span = otelhelper.StartSpan(ctx, h.tracer, "analysis.run")
		defer span.End()
	}

	run, err := h.analysisService.RunRaw(ctx, c.Body())
	if err != nil {
		if h.tracer != nil {
			otelhelper.SetError(trace.SpanFromContext(ctx), err)
		}

		return handleServiceError(c, err)
	}

	if h.tracer != nil {
		trace.SpanFromContext(ctx).SetAttributes(
			attribute.String(otelhelper.RunIDKey, run.ID),
			attribute.String(otelhelper.BottleneckKey, run.Result.BottleneckStep),
			attribute.Int(otelhelper.StepCountKey, len(run.Result.StepOrder)),
		)
	}

	return c.Status(fiber.StatusCreated).JSON(run)
}

// GetTemplates lists the built-in example processes.
func (h *APIHandlers) GetTemplates(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"templates": models.Templates(),
	})
}

// GetTemplate returns one built-in example process definition.
func (h *APIHandlers) GetTemplate(c fiber.Ctx) error {
	template, err := models.TemplateByID(c.Params("id"))
	if err != nil {
		return notFound(c, err.Error())
	}

	return c.JSON(template)
}

// GetTemplateAnalysis runs the analysis for a built-in example process.
func (h *APIHandlers) GetTemplateAnalysis(c fiber.Ctx) error {
	run, err := h.analysisService.RunTemplate(c.Context(), c.Params("id"))
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(run)
}

// HealthCheck reports service liveness. The engine holds no state, so there
// is nothing deeper to probe.
func (h *APIHandlers) HealthCheck(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "healthy",
	})
}

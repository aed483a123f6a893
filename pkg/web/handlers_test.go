package web_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linerate/linerate/pkg/log"
	"github.com/linerate/linerate/pkg/services"
	"github.com/linerate/linerate/pkg/web"
)

func setupTestApp(t *testing.T) *fiber.App {
	t.Helper()

	analysisService := services.NewAnalysis(log.WithModule("test"))
	handlers := web.NewAPIHandlers(analysisService, nil)

	app := fiber.New()
	app.Post("/analyses", handlers.CreateAnalysis)

	templates := app.Group("/templates")
	templates.Get("/", handlers.GetTemplates)
	templates.Get("/:id", handlers.GetTemplate)
	templates.Get("/:id/analysis", handlers.GetTemplateAnalysis)

	app.Get("/health", handlers.HealthCheck)

	return app
}

func TestAPIHandlers_CreateAnalysis(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		body           string
		expectedStatus int
		validateResult func(t *testing.T, body []byte)
	}{
		{
			name: "successful analysis",
			body: `{
				"time_unit": "minute",
				"steps": [
					{"name": "Step1", "resources": [{"name": "Worker A", "processing_time": 1.0}]},
					{"name": "Step2", "resources": [{"name": "Worker B", "processing_time": 2.0}]}
				]
			}`,
			expectedStatus: http.StatusCreated,
			validateResult: func(t *testing.T, body []byte) {
				t.Helper()

				var run services.Run
				require.NoError(t, json.Unmarshal(body, &run))

				assert.NotEmpty(t, run.ID)
				assert.Equal(t, "Step2", run.Result.BottleneckStep)
				assert.Equal(t, 0.5, run.Result.SystemCapacity)
				require.Len(t, run.Report.Rows, 2)
				assert.True(t, run.Report.Rows[1].IsBottleneck)
				assert.NotEmpty(t, run.Recommendations)
			},
		},
		{
			name:           "empty steps rejected",
			body:           `{"steps": []}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "non-positive processing time rejected",
			body:           `{"steps": [{"name": "Step1", "resources": [{"name": "A", "processing_time": -1}]}]}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "duplicate step name rejected",
			body: `{"steps": [
				{"name": "Step1", "resources": [{"name": "A", "processing_time": 1.0}]},
				{"name": "Step1", "resources": [{"name": "B", "processing_time": 2.0}]}
			]}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "malformed JSON rejected",
			body:           `{"steps": [`,
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			app := setupTestApp(t)

			req := httptest.NewRequest(http.MethodPost, "/analyses", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")

			resp, err := app.Test(req)
			require.NoError(t, err)

			defer resp.Body.Close()

			assert.Equal(t, tt.expectedStatus, resp.StatusCode)

			if tt.validateResult != nil {
				body, err := io.ReadAll(resp.Body)
				require.NoError(t, err)
				tt.validateResult(t, body)
			}
		})
	}
}

func TestAPIHandlers_CreateAnalysis_ProblemResponse(t *testing.T) {
	t.Parallel()

	app := setupTestApp(t)

	req := httptest.NewRequest(http.MethodPost, "/analyses", strings.NewReader(`{"steps": []}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)

	defer resp.Body.Close()

	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var problem map[string]any
	require.NoError(t, json.Unmarshal(body, &problem))
	assert.Equal(t, "validation_error", problem["type"])
	assert.Equal(t, "/analyses", problem["instance"])
}

func TestAPIHandlers_GetTemplates(t *testing.T) {
	t.Parallel()

	app := setupTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/templates/", nil)

	resp, err := app.Test(req)
	require.NoError(t, err)

	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var payload struct {
		Templates []struct {
			ID string `json:"id"`
		} `json:"templates"`
	}

	require.NoError(t, json.Unmarshal(body, &payload))
	require.Len(t, payload.Templates, 2)
	assert.Equal(t, "manufacturing", payload.Templates[0].ID)
}

func TestAPIHandlers_GetTemplate(t *testing.T) {
	t.Parallel()

	app := setupTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/templates/service", nil)

	resp, err := app.Test(req)
	require.NoError(t, err)

	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAPIHandlers_GetTemplate_NotFound(t *testing.T) {
	t.Parallel()

	app := setupTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/templates/does-not-exist", nil)

	resp, err := app.Test(req)
	require.NoError(t, err)

	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAPIHandlers_GetTemplateAnalysis(t *testing.T) {
	t.Parallel()

	app := setupTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/templates/manufacturing/analysis", nil)

	resp, err := app.Test(req)
	require.NoError(t, err)

	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var run services.Run
	require.NoError(t, json.Unmarshal(body, &run))
	assert.Equal(t, "Welding", run.Result.BottleneckStep)
}

func TestAPIHandlers_HealthCheck(t *testing.T) {
	t.Parallel()

	app := setupTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)

	resp, err := app.Test(req)
	require.NoError(t, err)

	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

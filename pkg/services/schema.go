package services

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// definitionSchema is the JSON Schema for raw process definitions submitted
// to the API. It rejects structural problems (missing steps, non-positive
// processing times) before any domain object is built.
var definitionSchema = map[string]any{
	"type":     "object",
	"required": []string{"steps"},
	"properties": map[string]any{
		"time_unit": map[string]any{
			"type": "string",
		},
		"steps": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type":     "object",
				"required": []string{"name", "resources"},
				"properties": map[string]any{
					"name": map[string]any{
						"type":      "string",
						"minLength": 1,
					},
					"resources": map[string]any{
						"type":     "array",
						"minItems": 1,
						"items": map[string]any{
							"type":     "object",
							"required": []string{"name", "processing_time"},
							"properties": map[string]any{
								"name": map[string]any{
									"type":      "string",
									"minLength": 1,
								},
								"processing_time": map[string]any{
									"type":             "number",
									"exclusiveMinimum": 0,
								},
							},
						},
					},
				},
			},
		},
	},
}

// validateDefinitionJSON validates a raw JSON definition body against the
// definition schema.
func validateDefinitionJSON(raw []byte) error {
	schemaLoader := gojsonschema.NewGoLoader(definitionSchema)
	dataLoader := gojsonschema.NewBytesLoader(raw)

	result, err := gojsonschema.Validate(schemaLoader, dataLoader)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDefinition, err)
	}

	if !result.Valid() {
		details := make([]string, 0, len(result.Errors()))
		for _, resultError := range result.Errors() {
			details = append(details, resultError.String())
		}

		return fmt.Errorf("%w: %s", ErrInvalidDefinition, strings.Join(details, "; "))
	}

	return nil
}

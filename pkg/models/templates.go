package models

import (
	"errors"
	"fmt"
)

// ErrTemplateNotFound is returned when looking up an unknown template ID.
var ErrTemplateNotFound = errors.New("template not found")

// TemplateStep defines one step of an example process: a number of identical
// resources sharing the same processing time.
type TemplateStep struct {
	Name           string  `json:"name"`
	ProcessingTime float64 `json:"processing_time"`
	Resources      int     `json:"resources"`
}

// Template is a built-in example process used as a starting point for
// exploration.
type Template struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	TimeUnit    string         `json:"time_unit"`
	Steps       []TemplateStep `json:"steps"`
}

// Process expands the template into a Process, turning each step's resource
// count into that many identically timed resources.
func (t Template) Process() (*Process, error) {
	p := NewProcess(t.TimeUnit)

	for _, s := range t.Steps {
		resources := make([]Resource, 0, s.Resources)
		for i := 1; i <= s.Resources; i++ {
			resources = append(resources, Resource{
				Name:           fmt.Sprintf("Resource %d", i),
				ProcessingTime: s.ProcessingTime,
			})
		}

		if err := p.AddStep(s.Name, resources); err != nil {
			return nil, err
		}
	}

	return p, nil
}

// Templates returns the built-in example processes in a stable order.
func Templates() []Template {
	return []Template{
		{
			ID:          "manufacturing",
			Name:        "Manufacturing Line",
			Description: "Five-step fabrication line from cutting to packaging",
			TimeUnit:    "minute",
			Steps: []TemplateStep{
				{Name: "Cutting", ProcessingTime: 2.0, Resources: 2},
				{Name: "Welding", ProcessingTime: 3.0, Resources: 2},
				{Name: "Assembly", ProcessingTime: 4.0, Resources: 3},
				{Name: "Testing", ProcessingTime: 1.5, Resources: 1},
				{Name: "Packaging", ProcessingTime: 1.0, Resources: 2},
			},
		},
		{
			ID:          "service",
			Name:        "Food Service",
			Description: "Restaurant order flow from order taking to delivery",
			TimeUnit:    "minute",
			Steps: []TemplateStep{
				{Name: "Order Taking", ProcessingTime: 1.0, Resources: 2},
				{Name: "Food Preparation", ProcessingTime: 10.0, Resources: 3},
				{Name: "Cooking", ProcessingTime: 8.0, Resources: 4},
				{Name: "Quality Check", ProcessingTime: 0.5, Resources: 1},
				{Name: "Delivery", ProcessingTime: 2.0, Resources: 5},
			},
		},
	}
}

// TemplateByID looks up a built-in template by its identifier.
func TemplateByID(id string) (Template, error) {
	for _, t := range Templates() {
		if t.ID == id {
			return t, nil
		}
	}

	return Template{}, fmt.Errorf("%w: %q", ErrTemplateNotFound, id)
}

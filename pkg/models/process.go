// Package models defines the core domain models for process capacity analysis.
package models

import (
	"fmt"
	"strings"
)

// Resource is a single worker or machine inside a process step. Resources
// within a step work in parallel, each processing one unit at a time.
type Resource struct {
	Name           string  `json:"name"            yaml:"name"            validate:"required,min=1"`
	ProcessingTime float64 `json:"processing_time" yaml:"processing_time" validate:"required,gt=0"`
}

// UnitCapacity returns the throughput of this resource alone, in units per
// time period. ProcessingTime must be positive; construction through Process
// guarantees that.
func (r Resource) UnitCapacity() float64 {
	return 1 / r.ProcessingTime
}

// ProcessStep is one stage of the process. Its capacity is the sum of its
// resources' unit capacities.
type ProcessStep struct {
	Name      string     `json:"name"      yaml:"name"`
	Resources []Resource `json:"resources" yaml:"resources"`
}

// Capacity returns the step's total throughput in units per time period.
func (s *ProcessStep) Capacity() float64 {
	var total float64
	for _, r := range s.Resources {
		total += r.UnitCapacity()
	}

	return total
}

// MeanProcessingTime returns the average processing time across the step's
// resources. Used for report display only.
func (s *ProcessStep) MeanProcessingTime() float64 {
	if len(s.Resources) == 0 {
		return 0
	}

	var total float64
	for _, r := range s.Resources {
		total += r.ProcessingTime
	}

	return total / float64(len(s.Resources))
}

// Process holds an ordered collection of steps. Steps are stored in insertion
// order, which is also their display order; the capacity math treats steps as
// independent. A Process is built fresh for each analysis run and is not safe
// for concurrent mutation.
type Process struct {
	timeUnit string
	steps    []*ProcessStep
	index    map[string]*ProcessStep
}

// NewProcess creates an empty process. The time unit label (e.g. "minute") is
// display metadata only and never affects the calculations.
func NewProcess(timeUnit string) *Process {
	if timeUnit == "" {
		timeUnit = "minute"
	}

	return &Process{
		timeUnit: timeUnit,
		steps:    make([]*ProcessStep, 0),
		index:    make(map[string]*ProcessStep),
	}
}

// TimeUnit returns the display time unit label.
func (p *Process) TimeUnit() string {
	return p.timeUnit
}

// Steps returns the process steps in process order. Callers must not mutate
// the returned slice.
func (p *Process) Steps() []*ProcessStep {
	return p.steps
}

// Len returns the number of steps.
func (p *Process) Len() int {
	return len(p.steps)
}

// AddStep appends a step with the given resources. The step name must be
// non-empty and unique within the process, and at least one resource with a
// positive processing time is required.
func (p *Process) AddStep(name string, resources []Resource) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyStepName
	}

	if _, exists := p.index[name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateStep, name)
	}

	if len(resources) == 0 {
		return fmt.Errorf("%w: step %q", ErrNoResources, name)
	}

	step := &ProcessStep{Name: name, Resources: make([]Resource, 0, len(resources))}
	seen := make(map[string]struct{}, len(resources))

	for _, r := range resources {
		if err := validateResource(step, seen, r.Name, r.ProcessingTime); err != nil {
			return err
		}

		seen[r.Name] = struct{}{}
		step.Resources = append(step.Resources, r)
	}

	p.steps = append(p.steps, step)
	p.index[name] = step

	return nil
}

// AddResourceToStep appends a resource to an existing step. The resource name
// must be unique within that step and the processing time positive.
func (p *Process) AddResourceToStep(stepName, resourceName string, processingTime float64) error {
	step, ok := p.index[stepName]
	if !ok {
		return fmt.Errorf("%w: %q", ErrStepNotFound, stepName)
	}

	seen := make(map[string]struct{}, len(step.Resources))
	for _, r := range step.Resources {
		seen[r.Name] = struct{}{}
	}

	if err := validateResource(step, seen, resourceName, processingTime); err != nil {
		return err
	}

	step.Resources = append(step.Resources, Resource{Name: resourceName, ProcessingTime: processingTime})

	return nil
}

// StepCapacity returns the capacity of the named step.
func (p *Process) StepCapacity(stepName string) (float64, error) {
	step, ok := p.index[stepName]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrStepNotFound, stepName)
	}

	return step.Capacity(), nil
}

func validateResource(step *ProcessStep, seen map[string]struct{}, name string, processingTime float64) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: step %q", ErrEmptyResourceName, step.Name)
	}

	if _, dup := seen[name]; dup {
		return fmt.Errorf("%w: %q in step %q", ErrDuplicateResource, name, step.Name)
	}

	if processingTime <= 0 {
		return fmt.Errorf("%w: resource %q in step %q", ErrNonPositiveTime, name, step.Name)
	}

	return nil
}

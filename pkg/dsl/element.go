package dsl

import (
	"slices"

	"github.com/aretw0/elementium/pkg/domain"
)

// ElementBuilder provides a fluent API for configuring a descriptor.
type ElementBuilder struct {
	descriptor domain.Descriptor
}

// Name sets the display name.
func (e *ElementBuilder) Name(name string) *ElementBuilder {
	e.descriptor.Name = name
	return e
}

// Describe sets the description.
func (e *ElementBuilder) Describe(description string) *ElementBuilder {
	e.descriptor.Description = description
	return e
}

// Grant adds elements implied by this one.
func (e *ElementBuilder) Grant(refs ...domain.Ref) *ElementBuilder {
	e.descriptor.Granted = append(e.descriptor.Granted, refs...)
	return e
}

// Choose adds an option: pick count descriptors among choices.
func (e *ElementBuilder) Choose(count int, choices ...domain.Choice) *ElementBuilder {
	e.descriptor.Options = append(e.descriptor.Options, domain.Option{Choices: choices, Count: count})
	return e
}

// Formula binds the formula of a variable.
func (e *ElementBuilder) Formula(f domain.Evaluator) *ElementBuilder {
	e.descriptor.Formula = f
	return e
}

// Ref returns a (type, id) reference to the element being defined.
func (e *ElementBuilder) Ref() domain.Ref {
	return domain.ID(e.descriptor.Type, e.descriptor.ID)
}

// Build returns a snapshot of the descriptor. Each call allocates a new
// descriptor, so editing the builder never reaches one already registered.
// Use Ref to point at the element by (type, id).
func (e *ElementBuilder) Build() *domain.Descriptor {
	d := e.descriptor
	d.Granted = slices.Clone(d.Granted)
	d.Options = slices.Clone(d.Options)
	for i := range d.Options {
		d.Options[i].Choices = slices.Clone(d.Options[i].Choices)
	}
	return &d
}

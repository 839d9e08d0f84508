package dsl

import (
	"errors"
	"fmt"

	"github.com/aretw0/elementium/pkg/domain"
	"github.com/aretw0/elementium/pkg/registry"
)

// Builder collects content definitions and registers them in one step.
type Builder struct {
	elements []*ElementBuilder
}

// New creates a new content builder.
func New() *Builder {
	return &Builder{}
}

// Element starts the definition of an element of type t.
// Defining the same (type, id) twice is reported when registering.
func (b *Builder) Element(t domain.Type, id string) *ElementBuilder {
	eb := &ElementBuilder{
		descriptor: domain.Descriptor{Type: t, ID: id},
	}
	b.elements = append(b.elements, eb)
	return eb
}

// Variable starts the definition of a variable computed by f.
func (b *Builder) Variable(id string, f domain.Evaluator) *ElementBuilder {
	return b.Element(domain.TypeVariable, id).Formula(f)
}

// Group returns a builder whose elements default to type t.
func (b *Builder) Group(t domain.Type) *GroupBuilder {
	return &GroupBuilder{builder: b, typ: t}
}

// Descriptors returns the descriptors defined so far, in definition order.
func (b *Builder) Descriptors() []*domain.Descriptor {
	out := make([]*domain.Descriptor, len(b.elements))
	for i, eb := range b.elements {
		out[i] = eb.Build()
	}
	return out
}

// Register adds every defined descriptor to reg, in definition order.
// Every descriptor is attempted; the returned error joins all failures.
func (b *Builder) Register(reg *registry.Registry) error {
	var errs []error
	for _, d := range b.Descriptors() {
		if err := reg.Register(d); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("register content: %w", errors.Join(errs...))
	}
	return nil
}

// Build registers the definitions into a new registry.
func (b *Builder) Build(opts ...registry.Option) (*registry.Registry, error) {
	reg := registry.New(opts...)
	if err := b.Register(reg); err != nil {
		return nil, err
	}
	return reg, nil
}

// GroupBuilder defines elements sharing a default type.
type GroupBuilder struct {
	builder *Builder
	typ     domain.Type
}

// Element starts the definition of an element of the group's type.
func (g *GroupBuilder) Element(id string) *ElementBuilder {
	return g.builder.Element(g.typ, id)
}

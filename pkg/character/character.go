package character

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/aretw0/elementium/internal/logging"
	"github.com/aretw0/elementium/pkg/domain"
	"github.com/aretw0/elementium/pkg/registry"
)

// Character is a collection of elements plus one instance of every registered
// variable. Variable values are computed from the elements on every read.
//
// A Character is not safe for concurrent evaluation: callers must keep at
// most one evaluation in flight per character.
type Character struct {
	registry  *registry.Registry
	elements  map[domain.Type][]*Element
	variables map[string]*Variable

	// evaluating holds the ids on stack, the active evaluation chain.
	evaluating map[string]struct{}
	stack      []string

	expandGrants bool
	logger       *slog.Logger
	hooks        domain.LifecycleHooks
}

// New builds a character from an ordered list of element references.
// References are not necessarily unique: the same descriptor may be added
// more than once. Pair references must be registered in reg.
// Variables are not taken from refs; every variable registered in reg is
// instantiated exactly once.
func New(reg *registry.Registry, refs []domain.Ref, opts ...Option) (*Character, error) {
	c := &Character{
		registry:   reg,
		elements:   make(map[domain.Type][]*Element),
		variables:  make(map[string]*Variable),
		evaluating: make(map[string]struct{}),
		logger:     logging.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}

	for _, ref := range refs {
		d, err := c.resolve(ref)
		if err != nil {
			return nil, fmt.Errorf("build character: %w", err)
		}
		if err := c.add(d, nil); err != nil {
			return nil, fmt.Errorf("build character: %w", err)
		}
	}

	vars := reg.Descriptors(domain.TypeVariable)
	group := make([]*Element, 0, len(vars))
	for _, d := range vars {
		e := &Element{descriptor: d, character: c}
		group = append(group, e)
		c.variables[d.ID] = &Variable{Element: e}
	}
	c.elements[domain.TypeVariable] = group

	c.logger.Debug("character built", "elements", len(refs), "variables", len(vars))
	return c, nil
}

// add instantiates d, and its grants when expansion is on.
// path holds the keys of the grant chain that led to d.
func (c *Character) add(d *domain.Descriptor, path []domain.Key) error {
	if d.IsVariable() {
		c.logger.Debug("explicit variable reference ignored", "id", d.ID)
		return nil
	}
	c.elements[d.Type] = append(c.elements[d.Type], &Element{descriptor: d, character: c})

	if !c.expandGrants || len(d.Granted) == 0 {
		return nil
	}
	path = append(path, d.Key())
	for _, ref := range d.Granted {
		granted, err := c.resolve(ref)
		if err != nil {
			return fmt.Errorf("grant of %s: %w", d.Key(), err)
		}
		if slices.Contains(path, granted.Key()) {
			return &domain.CircularGrantError{Key: granted.Key(), Chain: append(slices.Clone(path), granted.Key())}
		}
		if err := c.add(granted, path); err != nil {
			return err
		}
	}
	return nil
}

// resolve looks ref up in the registry. Descriptor literals bypass
// registration, so their metadata is validated here instead.
func (c *Character) resolve(ref domain.Ref) (*domain.Descriptor, error) {
	d, err := c.registry.Resolve(ref)
	if err != nil {
		return nil, err
	}
	if ref.Descriptor != nil {
		if err := d.Validate(); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// Registry returns the registry the character was built from.
func (c *Character) Registry() *registry.Registry {
	return c.registry
}

// Variable returns the variable instance with the given id.
func (c *Character) Variable(id string) (*Variable, error) {
	v, ok := c.variables[id]
	if !ok {
		return nil, &domain.NotFoundError{Kind: "variable", Key: domain.Key{Type: domain.TypeVariable, ID: id}}
	}
	return v, nil
}

// Variables returns the character's variables keyed by id.
func (c *Character) Variables() map[string]*Variable {
	out := make(map[string]*Variable, len(c.variables))
	for id, v := range c.variables {
		out[id] = v
	}
	return out
}

// GetVariable evaluates the variable with the given id.
// A CircularDependencyError from the evaluation is returned unchanged.
func (c *Character) GetVariable(id string) (any, error) {
	v, err := c.Variable(id)
	if err != nil {
		return nil, err
	}
	return v.Evaluate()
}

// CountElements returns how many instances of the referenced descriptor the
// character has. Only instances of the same type with the exact same id count.
func (c *Character) CountElements(ref domain.Ref) (int, error) {
	if ref.IsZero() {
		return 0, &domain.NotFoundError{Key: ref.Key()}
	}
	key := ref.Key()
	n := 0
	for _, e := range c.elements[key.Type] {
		if e.ID() == key.ID {
			n++
		}
	}
	return n, nil
}

// ElementsOfType returns the character's elements of type t in insertion order.
func (c *Character) ElementsOfType(t domain.Type) []*Element {
	return slices.Clone(c.elements[t])
}

// AllVariableValues evaluates every variable once.
// The first error aborts the batch and no partial result is returned.
func (c *Character) AllVariableValues() (map[string]any, error) {
	values := make(map[string]any, len(c.variables))
	for _, e := range c.elements[domain.TypeVariable] {
		value, err := c.variables[e.ID()].Evaluate()
		if err != nil {
			return nil, err
		}
		values[e.ID()] = value
	}
	return values, nil
}

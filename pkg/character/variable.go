package character

import (
	"slices"
	"time"

	"github.com/aretw0/elementium/pkg/domain"
)

// Variable is an element computed by exactly one formula.
type Variable struct {
	*Element
}

// Evaluate runs the variable's formula against its character.
//
// Re-entering a variable that is already on the active evaluation chain fails
// with a CircularDependencyError naming it. The variable is always removed from
// the chain on exit, so a failed evaluation does not poison later ones.
// Values are never cached.
func (v *Variable) Evaluate() (value any, err error) {
	c := v.character
	id := v.ID()

	if _, busy := c.evaluating[id]; busy {
		chain := append(slices.Clone(c.stack), id)
		cycleErr := &domain.CircularDependencyError{
			VariableID: id,
			Name:       v.Name(),
			Chain:      chain,
		}
		c.logger.Warn("circular dependency detected", "variable", id, "chain", chain)
		if c.hooks.OnCircularDependency != nil {
			c.hooks.OnCircularDependency(&domain.VariableEvent{VariableID: id, Depth: len(c.stack), Err: cycleErr})
		}
		return nil, cycleErr
	}

	depth := len(c.stack)
	c.evaluating[id] = struct{}{}
	c.stack = append(c.stack, id)
	if c.hooks.OnVariableEnter != nil {
		c.hooks.OnVariableEnter(&domain.VariableEvent{VariableID: id, Depth: depth})
	}

	start := time.Now()
	defer func() {
		delete(c.evaluating, id)
		c.stack = c.stack[:depth]
		if c.hooks.OnVariableLeave != nil {
			c.hooks.OnVariableLeave(&domain.VariableEvent{
				VariableID: id,
				Depth:      depth,
				Duration:   time.Since(start),
				Err:        err,
			})
		}
	}()

	value, err = v.descriptor.Formula.Evaluate(c)
	c.logger.Debug("variable evaluated", "variable", id, "depth", depth, "value", value, "err", err)
	return value, err
}

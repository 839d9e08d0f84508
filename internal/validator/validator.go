package validator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aretw0/elementium/pkg/character"
	"github.com/aretw0/elementium/pkg/domain"
	"github.com/aretw0/elementium/pkg/registry"
)

// Error lists every integrity problem found in a registry.
type Error struct {
	Problems []string
}

func (e *Error) Error() string {
	return fmt.Sprintf("found %d errors:\n- %s", len(e.Problems), strings.Join(e.Problems, "\n- "))
}

// ValidateRegistry checks registered content for integrity problems:
// grants and choices that point at unregistered elements, grant cycles, and
// variables that depend on themselves.
//
// Variable cycles are checked against a character with no elements, so a cycle
// that only closes when some element is present goes unnoticed.
func ValidateRegistry(reg *registry.Registry) error {
	var problems []string

	// 1. Crawler over every non-variable descriptor, following grants.
	visited := make(map[domain.Key]bool)
	var queue []*domain.Descriptor
	for _, t := range reg.Types() {
		if t == domain.TypeVariable {
			continue
		}
		queue = append(queue, reg.Descriptors(t)...)
	}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if visited[current.Key()] {
			continue
		}
		visited[current.Key()] = true

		for _, ref := range current.Granted {
			target, err := reg.Resolve(ref)
			if err != nil {
				problems = append(problems, fmt.Sprintf("%s grants missing element %s", current.Key(), ref.Key()))
				continue
			}
			if !visited[target.Key()] {
				queue = append(queue, target)
			}
		}

		for i := range current.Options {
			if _, err := reg.ResolveChoices(current, i); err != nil {
				problems = append(problems, fmt.Sprintf("%s option %d: %v", current.Key(), i, err))
			}
		}

		// 2. Grant cycles, via the same expansion a character performs.
		if len(current.Granted) > 0 {
			_, err := character.New(reg, []domain.Ref{domain.RefTo(current)}, character.WithGrantExpansion())
			var cycle *domain.CircularGrantError
			if errors.As(err, &cycle) && cycle.Key == current.Key() {
				problems = append(problems, cycle.Error())
			}
		}
	}

	// 3. Variable cycles.
	empty, err := character.New(reg, nil)
	if err != nil {
		return fmt.Errorf("empty character: %w", err)
	}
	for _, d := range reg.Descriptors(domain.TypeVariable) {
		_, err := empty.GetVariable(d.ID)
		var cycle *domain.CircularDependencyError
		if errors.As(err, &cycle) && cycle.VariableID == d.ID {
			problems = append(problems, cycle.Error())
		}
	}

	if len(problems) > 0 {
		return &Error{Problems: problems}
	}
	return nil
}

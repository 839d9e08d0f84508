package character

import "github.com/aretw0/elementium/pkg/domain"

// Element is one occurrence of a descriptor in a character.
// It holds a non-owning reference back to its character.
type Element struct {
	descriptor *domain.Descriptor
	character  *Character
}

// Descriptor returns the static definition of the element.
func (e *Element) Descriptor() *domain.Descriptor { return e.descriptor }

// Character returns the character that owns the element.
func (e *Element) Character() *Character { return e.character }

// Type returns the element's category.
func (e *Element) Type() domain.Type { return e.descriptor.Type }

// ID returns the element's id, unique within its type.
func (e *Element) ID() string { return e.descriptor.ID }

// Name returns the element's display name.
func (e *Element) Name() string { return e.descriptor.Name }

// ResolveChoices expands one of the element's options into its legal descriptors,
// using the registry the character was built from.
func (e *Element) ResolveChoices(option int) ([]*domain.Descriptor, error) {
	return e.character.registry.ResolveChoices(e.descriptor, option)
}

package domain

import "fmt"

// Descriptor is the static definition of one content kind.
// A descriptor may be instantiated many times in the same character.
type Descriptor struct {
	Type        Type
	ID          string
	Name        string
	Description string

	// Granted lists elements implied by this one.
	Granted []Ref

	// Options lists the choice slots this element opens.
	Options []Option

	// Formula is required for TypeVariable descriptors.
	Formula Evaluator
}

// AbstractElement is the base element marker. It can never be registered.
var AbstractElement = &Descriptor{ID: "element", Name: "Element"}

// Key returns the registry key of the descriptor.
func (d *Descriptor) Key() Key {
	return Key{Type: d.Type, ID: d.ID}
}

// IsVariable reports whether the descriptor defines a variable.
func (d *Descriptor) IsVariable() bool {
	return d.Type == TypeVariable
}

// Summary returns the description, falling back to DefaultDescription.
func (d *Descriptor) Summary() string {
	if d.Description == "" {
		return DefaultDescription
	}
	return d.Description
}

// Validate checks that the descriptor's required metadata is resolvable.
func (d *Descriptor) Validate() error {
	if d == nil {
		return &InvalidRegistrationError{Reason: "nil descriptor"}
	}
	if d == AbstractElement {
		return &InvalidRegistrationError{Key: d.Key(), Reason: "cannot register base element"}
	}
	invalid := func(format string, args ...any) error {
		return &InvalidRegistrationError{Key: d.Key(), Reason: fmt.Sprintf(format, args...)}
	}
	if d.Type < 0 {
		return invalid("negative type %d", int(d.Type))
	}
	if d.ID == "" {
		return invalid("missing id")
	}
	if d.Name == "" {
		return invalid("missing name")
	}
	if d.IsVariable() {
		if d.Formula == nil {
			return invalid("variable has no formula")
		}
		if v, ok := d.Formula.(interface{ Valid() bool }); ok && !v.Valid() {
			return invalid("variable has an empty formula")
		}
	}
	for i, ref := range d.Granted {
		if ref.IsZero() {
			return invalid("granted[%d] is empty", i)
		}
	}
	for i, opt := range d.Options {
		if opt.Count <= 0 {
			return invalid("option %d: count must be positive, got %d", i, opt.Count)
		}
		if len(opt.Choices) == 0 {
			return invalid("option %d: no choices", i)
		}
		for j, c := range opt.Choices {
			if err := c.validate(); err != nil {
				return invalid("option %d choice %d: %v", i, j, err)
			}
		}
	}
	return nil
}

func (c Choice) validate() error {
	switch c.Kind {
	case ChoiceDescriptor:
		if c.Descriptor == nil {
			return fmt.Errorf("nil descriptor")
		}
	case ChoiceID:
		if c.ID == "" {
			return fmt.Errorf("missing id")
		}
	case ChoiceFilter:
		if c.Filter == nil {
			return fmt.Errorf("missing filter")
		}
	case ChoiceType:
	default:
		return fmt.Errorf("unknown choice kind %d", int(c.Kind))
	}
	return nil
}

package domain

import "fmt"

// Key identifies a descriptor across the whole registry.
type Key struct {
	Type Type
	ID   string
}

func (k Key) String() string {
	return fmt.Sprintf("%s:%s", k.Type, k.ID)
}

// Ref refers to a descriptor, either directly or by (type, id).
// When Descriptor is set the pair fields are ignored.
type Ref struct {
	Descriptor *Descriptor
	Type       Type
	ID         string
}

// RefTo builds a reference to a descriptor literal.
func RefTo(d *Descriptor) Ref {
	return Ref{Descriptor: d}
}

// ID builds a (type, id) reference resolved through a registry.
func ID(t Type, id string) Ref {
	return Ref{Type: t, ID: id}
}

// Key returns the (type, id) the reference points at.
func (r Ref) Key() Key {
	if r.Descriptor != nil {
		return r.Descriptor.Key()
	}
	return Key{Type: r.Type, ID: r.ID}
}

// IsZero reports whether the reference names nothing.
func (r Ref) IsZero() bool {
	return r.Descriptor == nil && r.ID == ""
}

func (r Ref) String() string {
	return r.Key().String()
}

// ChoiceKind tags the variant held by a Choice.
type ChoiceKind int

const (
	// ChoiceDescriptor is a descriptor literal.
	ChoiceDescriptor ChoiceKind = iota
	// ChoiceID is an explicit (type, id) pair.
	ChoiceID
	// ChoiceFilter selects every descriptor of Type accepted by Filter.
	ChoiceFilter
	// ChoiceType selects every descriptor registered under Type.
	ChoiceType
)

// Choice is one candidate entry of an Option.
type Choice struct {
	Kind       ChoiceKind
	Descriptor *Descriptor
	Type       Type
	ID         string
	Filter     func(*Descriptor) bool
}

// Literal offers a single descriptor.
func Literal(d *Descriptor) Choice {
	return Choice{Kind: ChoiceDescriptor, Descriptor: d}
}

// ByID offers the descriptor registered as (t, id).
func ByID(t Type, id string) Choice {
	return Choice{Kind: ChoiceID, Type: t, ID: id}
}

// Where offers every descriptor of type t accepted by pred.
func Where(t Type, pred func(*Descriptor) bool) Choice {
	return Choice{Kind: ChoiceFilter, Type: t, Filter: pred}
}

// AllOf offers every descriptor registered under t.
func AllOf(t Type) Choice {
	return Choice{Kind: ChoiceType, Type: t}
}

// Option is a choice slot: pick Count descriptors among Choices.
type Option struct {
	Choices []Choice
	Count   int
}

package domain

// Querier is the surface a character exposes to formulas.
type Querier interface {
	// GetVariable evaluates the variable with the given id.
	GetVariable(id string) (any, error)
	// CountElements counts instances of the referenced descriptor.
	CountElements(ref Ref) (int, error)
}

// Evaluator computes a value from a character.
// Formulas of any result type satisfy it.
type Evaluator interface {
	Evaluate(q Querier) (any, error)
}

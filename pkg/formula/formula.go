package formula

import (
	"errors"
	"fmt"

	"github.com/aretw0/elementium/pkg/domain"
)

// ErrEmptyFormula is returned when evaluating the zero Formula.
var ErrEmptyFormula = fmt.Errorf("empty formula: %w", domain.ErrInvalidRegistration)

// Func computes a value from a character.
type Func[T any] func(q domain.Querier) (T, error)

// Formula is an immutable expression over a character.
// Evaluating it has no side effects and nothing is cached: every call re-runs
// the whole computation.
type Formula[T any] struct {
	fn Func[T]
}

// New wraps fn as a Formula.
func New[T any](fn Func[T]) Formula[T] {
	return Formula[T]{fn: fn}
}

// Valid reports whether the formula has a function bound.
func (f Formula[T]) Valid() bool {
	return f.fn != nil
}

// Eval computes the formula's value against q.
func (f Formula[T]) Eval(q domain.Querier) (T, error) {
	if f.fn == nil {
		var zero T
		return zero, ErrEmptyFormula
	}
	return f.fn(q)
}

// Evaluate is Eval with the result boxed, so any Formula can back a variable.
func (f Formula[T]) Evaluate(q domain.Querier) (any, error) {
	v, err := f.Eval(q)
	if err != nil {
		return nil, err
	}
	return v, nil
}

// Const always evaluates to value.
func Const[T any](value T) Formula[T] {
	return New[T](func(domain.Querier) (T, error) {
		return value, nil
	})
}

// Var evaluates to the value of the variable id.
// A value that is not a T fails with a TypeError.
func Var[T any](id string) Formula[T] {
	return New[T](func(q domain.Querier) (T, error) {
		var zero T
		v, err := q.GetVariable(id)
		if err != nil {
			return zero, err
		}
		typed, ok := v.(T)
		if !ok {
			return zero, &domain.TypeError{
				Op:   fmt.Sprintf("variable %q", id),
				Want: fmt.Sprintf("%T", zero),
				Got:  v,
			}
		}
		return typed, nil
	})
}

// Count evaluates to the number of instances of ref in the character.
func Count(ref domain.Ref) Formula[int] {
	return New[int](func(q domain.Querier) (int, error) {
		return q.CountElements(ref)
	})
}

// Has evaluates to whether the character has at least one instance of ref.
func Has(ref domain.Ref) Formula[bool] {
	return New[bool](func(q domain.Querier) (bool, error) {
		n, err := q.CountElements(ref)
		if err != nil {
			return false, err
		}
		return n > 0, nil
	})
}

// If evaluates pred and then only the selected branch.
func If[T any](pred Formula[bool], ifTrue, ifFalse Formula[T]) Formula[T] {
	return New[T](func(q domain.Querier) (T, error) {
		ok, err := pred.Eval(q)
		if err != nil {
			var zero T
			return zero, err
		}
		if ok {
			return ifTrue.Eval(q)
		}
		return ifFalse.Eval(q)
	})
}

// Map applies fn to the value of f.
func Map[T, U any](f Formula[T], fn func(T) (U, error)) Formula[U] {
	return New[U](func(q domain.Querier) (U, error) {
		v, err := f.Eval(q)
		if err != nil {
			var zero U
			return zero, err
		}
		return fn(v)
	})
}

// binary evaluates a then b, then combines them with op.
func binary[T, U, V any](a Formula[T], b Formula[U], op func(T, U) (V, error)) Formula[V] {
	return New[V](func(q domain.Querier) (V, error) {
		var zero V
		x, err := a.Eval(q)
		if err != nil {
			return zero, err
		}
		y, err := b.Eval(q)
		if err != nil {
			return zero, err
		}
		return op(x, y)
	})
}

// IsCircular reports whether err stems from a circular variable dependency.
func IsCircular(err error) bool {
	return errors.Is(err, domain.ErrCircularDependency)
}

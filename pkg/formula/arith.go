package formula

import (
	"math"

	"golang.org/x/exp/constraints"

	"github.com/aretw0/elementium/pkg/domain"
)

// Number is the set of types the arithmetic combinators accept.
type Number interface {
	constraints.Integer | constraints.Float
}

// Add evaluates to a + b.
func Add[T Number](a, b Formula[T]) Formula[T] {
	return binary(a, b, func(x, y T) (T, error) { return x + y, nil })
}

// Sub evaluates to a - b.
func Sub[T Number](a, b Formula[T]) Formula[T] {
	return binary(a, b, func(x, y T) (T, error) { return x - y, nil })
}

// Mul evaluates to a * b.
func Mul[T Number](a, b Formula[T]) Formula[T] {
	return binary(a, b, func(x, y T) (T, error) { return x * y, nil })
}

// Div evaluates to the true quotient a / b, for integers too.
func Div[T Number](a, b Formula[T]) Formula[float64] {
	return binary(a, b, func(x, y T) (float64, error) {
		if y == 0 {
			return 0, divisionByZero("div")
		}
		return float64(x) / float64(y), nil
	})
}

// FloorDiv evaluates to a / b rounded toward negative infinity.
func FloorDiv[T Number](a, b Formula[T]) Formula[T] {
	return binary(a, b, func(x, y T) (T, error) {
		if y == 0 {
			return 0, divisionByZero("floordiv")
		}
		return floorDiv(x, y), nil
	})
}

// Mod evaluates to the remainder of FloorDiv; its sign follows b.
func Mod[T Number](a, b Formula[T]) Formula[T] {
	return binary(a, b, func(x, y T) (T, error) {
		if y == 0 {
			return 0, divisionByZero("mod")
		}
		return x - floorDiv(x, y)*y, nil
	})
}

// Neg evaluates to -a.
func Neg[T Number](a Formula[T]) Formula[T] {
	return Map(a, func(x T) (T, error) { return -x, nil })
}

// Min evaluates to the smaller of a and b.
func Min[T Number](a, b Formula[T]) Formula[T] {
	return binary(a, b, func(x, y T) (T, error) { return min(x, y), nil })
}

// Max evaluates to the larger of a and b.
func Max[T Number](a, b Formula[T]) Formula[T] {
	return binary(a, b, func(x, y T) (T, error) { return max(x, y), nil })
}

// Sum adds terms left to right. Sum() is Const(0).
func Sum[T Number](terms ...Formula[T]) Formula[T] {
	acc := Const(T(0))
	for i, term := range terms {
		if i == 0 {
			acc = term
			continue
		}
		acc = Add(acc, term)
	}
	return acc
}

// Convert changes the numeric type of a, like a Go conversion.
func Convert[T, U Number](a Formula[T]) Formula[U] {
	return Map(a, func(x T) (U, error) { return U(x), nil })
}

func floorDiv[T Number](x, y T) T {
	if isFloat[T]() {
		return T(math.Floor(float64(x) / float64(y)))
	}
	q := x / y
	if q*y != x && (x < 0) != (y < 0) {
		q--
	}
	return q
}

// isFloat reports whether T is a floating point type.
func isFloat[T Number]() bool {
	var one T = 1
	return one/2 != 0
}

func divisionByZero(op string) error {
	return &domain.ArithmeticError{Op: op, Reason: "division by zero"}
}

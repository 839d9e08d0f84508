package formula

import "cmp"

// Gt evaluates to a > b.
func Gt[T cmp.Ordered](a, b Formula[T]) Formula[bool] {
	return binary(a, b, func(x, y T) (bool, error) { return x > y, nil })
}

// Ge evaluates to a >= b.
func Ge[T cmp.Ordered](a, b Formula[T]) Formula[bool] {
	return binary(a, b, func(x, y T) (bool, error) { return x >= y, nil })
}

// Lt evaluates to a < b.
func Lt[T cmp.Ordered](a, b Formula[T]) Formula[bool] {
	return binary(a, b, func(x, y T) (bool, error) { return x < y, nil })
}

// Le evaluates to a <= b.
func Le[T cmp.Ordered](a, b Formula[T]) Formula[bool] {
	return binary(a, b, func(x, y T) (bool, error) { return x <= y, nil })
}

// Eq evaluates to a == b.
func Eq[T comparable](a, b Formula[T]) Formula[bool] {
	return binary(a, b, func(x, y T) (bool, error) { return x == y, nil })
}

// Not negates a.
func Not(a Formula[bool]) Formula[bool] {
	return Map(a, func(x bool) (bool, error) { return !x, nil })
}

// And short-circuits: b is not evaluated when a is false.
func And(a, b Formula[bool]) Formula[bool] {
	return If(a, b, Const(false))
}

// Or short-circuits: b is not evaluated when a is true.
func Or(a, b Formula[bool]) Formula[bool] {
	return If(a, Const(true), b)
}

// Truthy evaluates to a != 0.
func Truthy[T Number](a Formula[T]) Formula[bool] {
	return Map(a, func(x T) (bool, error) { return x != 0, nil })
}

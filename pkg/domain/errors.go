package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrDuplicateID is returned when a (type, id) pair is registered twice.
	ErrDuplicateID = errors.New("duplicate element id")

	// ErrInvalidRegistration is returned for malformed descriptors and for the abstract base element.
	ErrInvalidRegistration = errors.New("invalid registration")

	// ErrNotFound is returned when a descriptor, variable or option does not exist.
	ErrNotFound = errors.New("not found")

	// ErrCircularDependency is returned when an evaluation re-enters a variable already on the active chain.
	ErrCircularDependency = errors.New("circular dependency")

	// ErrType is returned when a formula operand has an unexpected dynamic type.
	ErrType = errors.New("type mismatch")

	// ErrArithmetic is returned for undefined arithmetic such as division by zero.
	ErrArithmetic = errors.New("arithmetic error")
)

// DuplicateIDError reports a second registration of the same key.
type DuplicateIDError struct {
	Key Key
}

func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("element %s registered twice", e.Key)
}

func (e *DuplicateIDError) Is(target error) bool { return target == ErrDuplicateID }

// InvalidRegistrationError reports a descriptor that cannot be registered.
type InvalidRegistrationError struct {
	Key    Key
	Reason string
}

func (e *InvalidRegistrationError) Error() string {
	if e.Key.ID == "" {
		return fmt.Sprintf("invalid registration: %s", e.Reason)
	}
	return fmt.Sprintf("invalid registration of %s: %s", e.Key, e.Reason)
}

func (e *InvalidRegistrationError) Is(target error) bool { return target == ErrInvalidRegistration }

// NotFoundError reports a lookup miss. Kind is "element", "variable" or "option".
type NotFoundError struct {
	Kind string
	Key  Key
}

func (e *NotFoundError) Error() string {
	switch e.Kind {
	case "variable":
		return fmt.Sprintf("variable %q not found", e.Key.ID)
	case "":
		return fmt.Sprintf("element %s not found", e.Key)
	default:
		return fmt.Sprintf("%s %s not found", e.Kind, e.Key)
	}
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// CircularDependencyError identifies the variable whose re-entry was detected.
// Chain lists the active evaluation stack, outermost first, ending with the re-entered id.
type CircularDependencyError struct {
	VariableID string
	Name       string
	Chain      []string
}

func (e *CircularDependencyError) Error() string {
	msg := fmt.Sprintf("variable %s trapped in circular dependency", e.Name)
	if len(e.Chain) > 0 {
		msg += " (" + strings.Join(e.Chain, " -> ") + ")"
	}
	return msg
}

func (e *CircularDependencyError) Is(target error) bool { return target == ErrCircularDependency }

// CircularGrantError is returned when granted elements imply themselves.
type CircularGrantError struct {
	Key   Key
	Chain []Key
}

func (e *CircularGrantError) Error() string {
	parts := make([]string, len(e.Chain))
	for i, k := range e.Chain {
		parts[i] = k.String()
	}
	return fmt.Sprintf("element %s grants itself (%s)", e.Key, strings.Join(parts, " -> "))
}

func (e *CircularGrantError) Is(target error) bool { return target == ErrCircularDependency }

// TypeError reports an operand whose dynamic type does not fit the formula.
type TypeError struct {
	Op   string
	Want string
	Got  any
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("%s: expected %s, got %T", e.Op, e.Want, e.Got)
}

func (e *TypeError) Is(target error) bool { return target == ErrType }

// ArithmeticError reports an undefined arithmetic operation.
type ArithmeticError struct {
	Op     string
	Reason string
}

func (e *ArithmeticError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Reason)
}

func (e *ArithmeticError) Is(target error) bool { return target == ErrArithmetic }

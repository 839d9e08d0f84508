package domain

import "time"

// VariableEvent describes one variable evaluation.
type VariableEvent struct {
	VariableID string
	// Depth is the number of variables already on the evaluation stack.
	Depth int
	// Duration and Err are only set on leave.
	Duration time.Duration
	Err      error
}

// LifecycleHooks defines callbacks for evaluation observability.
// Any hook may be nil.
type LifecycleHooks struct {
	OnVariableEnter      func(*VariableEvent)
	OnVariableLeave      func(*VariableEvent)
	OnCircularDependency func(*VariableEvent)
}

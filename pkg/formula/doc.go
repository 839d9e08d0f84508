/*
Package formula builds lazily-evaluated expressions over a character.

A Formula is built before any character exists and can be evaluated many
times against different characters. Composition is explicit: arithmetic and
predicates are plain functions over formulas, and constants are lifted with
Const, so operand order is always visible at the call site.

	wizard := domain.ID(domain.TypeClass, "wizard")
	wizardHP := formula.Add(
		formula.If(formula.Has(wizard), formula.Const(2), formula.Const(0)),
		formula.Mul(formula.Count(wizard), formula.Const(4)),
	)

Type mismatches between static operand types are compile errors. Values read
through Var are checked when evaluated and fail with a domain.TypeError.
*/
package formula

package content

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/aretw0/elementium/pkg/formula"
)

type intOp func(a, b formula.Formula[int]) formula.Formula[int]

type cmpOp func(a, b formula.Formula[int]) formula.Formula[bool]

var intFolds = map[string]intOp{
	"add":      formula.Add[int],
	"sub":      formula.Sub[int],
	"mul":      formula.Mul[int],
	"floordiv": formula.FloorDiv[int],
	"mod":      formula.Mod[int],
	"min":      formula.Min[int],
	"max":      formula.Max[int],
}

var comparisons = map[string]cmpOp{
	"gt": formula.Gt[int],
	"ge": formula.Ge[int],
	"lt": formula.Lt[int],
	"le": formula.Le[int],
	"eq": formula.Eq[int],
}

// compileInt turns a formula tree into an integer formula.
// at locates the node for error messages.
func compileInt(node any, at string) (formula.Formula[int], error) {
	var zero formula.Formula[int]

	if n, ok := node.(int); ok {
		return formula.Const(n), nil
	}
	m, ok := node.(map[string]any)
	if !ok {
		return zero, fmt.Errorf("%s: expected integer or operator map, got %T", at, node)
	}

	if _, ok := m["if"]; ok {
		return compileIf(m, at)
	}
	op, arg, err := single(m, at)
	if err != nil {
		return zero, err
	}
	at = at + "." + op

	switch op {
	case "const":
		n, ok := arg.(int)
		if !ok {
			return zero, fmt.Errorf("%s: expected integer, got %T", at, arg)
		}
		return formula.Const(n), nil
	case "var":
		id, ok := arg.(string)
		if !ok || id == "" {
			return zero, fmt.Errorf("%s: expected variable id", at)
		}
		return formula.Var[int](id), nil
	case "count":
		ref, err := ParseRef(arg)
		if err != nil {
			return zero, fmt.Errorf("%s: %w", at, err)
		}
		return formula.Count(ref), nil
	case "neg":
		inner, err := compileInt(arg, at)
		if err != nil {
			return zero, err
		}
		return formula.Neg(inner), nil
	}

	fold, ok := intFolds[op]
	if !ok {
		return zero, fmt.Errorf("%s: unknown integer operator", at)
	}
	args, err := operands(arg, at, compileInt)
	if err != nil {
		return zero, err
	}
	if len(args) < 2 {
		return zero, fmt.Errorf("%s: needs at least two operands", at)
	}
	acc := args[0]
	for _, next := range args[1:] {
		acc = fold(acc, next)
	}
	return acc, nil
}

func compileIf(m map[string]any, at string) (formula.Formula[int], error) {
	var zero formula.Formula[int]
	at = at + ".if"
	for k := range m {
		if k != "if" && k != "then" && k != "else" {
			return zero, fmt.Errorf("%s: unexpected key %q", at, k)
		}
	}
	pred, err := compileBool(m["if"], at)
	if err != nil {
		return zero, err
	}
	then, err := compileInt(m["then"], at+".then")
	if err != nil {
		return zero, err
	}
	otherwise, err := compileInt(m["else"], at+".else")
	if err != nil {
		return zero, err
	}
	return formula.If(pred, then, otherwise), nil
}

// compileBool turns a formula tree into a boolean formula.
func compileBool(node any, at string) (formula.Formula[bool], error) {
	var zero formula.Formula[bool]

	if b, ok := node.(bool); ok {
		return formula.Const(b), nil
	}
	m, ok := node.(map[string]any)
	if !ok {
		return zero, fmt.Errorf("%s: expected boolean or operator map, got %T", at, node)
	}
	op, arg, err := single(m, at)
	if err != nil {
		return zero, err
	}
	at = at + "." + op

	switch op {
	case "const":
		b, ok := arg.(bool)
		if !ok {
			return zero, fmt.Errorf("%s: expected boolean, got %T", at, arg)
		}
		return formula.Const(b), nil
	case "has":
		ref, err := ParseRef(arg)
		if err != nil {
			return zero, fmt.Errorf("%s: %w", at, err)
		}
		return formula.Has(ref), nil
	case "not":
		inner, err := compileBool(arg, at)
		if err != nil {
			return zero, err
		}
		return formula.Not(inner), nil
	case "and", "or":
		args, err := operands(arg, at, compileBool)
		if err != nil {
			return zero, err
		}
		if len(args) < 2 {
			return zero, fmt.Errorf("%s: needs at least two operands", at)
		}
		join := formula.And
		if op == "or" {
			join = formula.Or
		}
		acc := args[0]
		for _, next := range args[1:] {
			acc = join(acc, next)
		}
		return acc, nil
	}

	compare, ok := comparisons[op]
	if !ok {
		return zero, fmt.Errorf("%s: unknown boolean operator", at)
	}
	args, err := operands(arg, at, compileInt)
	if err != nil {
		return zero, err
	}
	if len(args) != 2 {
		return zero, fmt.Errorf("%s: needs exactly two operands", at)
	}
	return compare(args[0], args[1]), nil
}

// single returns the only key of an operator map.
func single(m map[string]any, at string) (string, any, error) {
	if len(m) != 1 {
		keys := slices.Sorted(maps.Keys(m))
		return "", nil, fmt.Errorf("%s: expected one operator, got [%s]", at, strings.Join(keys, ", "))
	}
	var op string
	for k := range m {
		op = k
	}
	return op, m[op], nil
}

func operands[T any](arg any, at string, compile func(any, string) (formula.Formula[T], error)) ([]formula.Formula[T], error) {
	list, ok := arg.([]any)
	if !ok {
		return nil, fmt.Errorf("%s: expected a list of operands, got %T", at, arg)
	}
	out := make([]formula.Formula[T], 0, len(list))
	for i, item := range list {
		f, err := compile(item, fmt.Sprintf("%s[%d]", at, i))
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, nil
}

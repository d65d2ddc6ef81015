package boolexpr

import (
	"fmt"
)

func (v Variable) Solve(assignment Assignment) (bool, error) {
	value, ok := assignment[v.Name]
	if !ok {
		return false, NewUnknownVariableError(v.Name)
	}
	return value, nil
}

func (n Negation) Solve(assignment Assignment) (bool, error) {
	result, err := n.Operand.Solve(assignment)
	if err != nil {
		return false, fmt.Errorf("failed solving NOT sub-expression: %w", err)
	}
	return !result, nil
}

func (c Conjunction) Solve(assignment Assignment) (bool, error) {
	left, right, err := solveOperands(c.Left, c.Right, assignment)
	if err != nil {
		return false, err
	}
	return left && right, nil
}

func (d Disjunction) Solve(assignment Assignment) (bool, error) {
	left, right, err := solveOperands(d.Left, d.Right, assignment)
	if err != nil {
		return false, err
	}
	return left || right, nil
}

func (i Implication) Solve(assignment Assignment) (bool, error) {
	antecedent, consequent, err := solveOperands(i.Left, i.Right, assignment)
	if err != nil {
		return false, err
	}
	return !antecedent || consequent, nil
}

func (b Biconditional) Solve(assignment Assignment) (bool, error) {
	left, right, err := solveOperands(b.Left, b.Right, assignment)
	if err != nil {
		return false, err
	}
	return left == right, nil
}

// solveOperands always evaluates both sides, so an unknown variable is
// reported even when the left side alone would decide the result.
func solveOperands(left, right Expr, assignment Assignment) (bool, bool, error) {
	leftResult, err := left.Solve(assignment)
	if err != nil {
		return false, false, fmt.Errorf("failed solving left expression: %w", err)
	}
	rightResult, err := right.Solve(assignment)
	if err != nil {
		return false, false, fmt.Errorf("failed solving right expression: %w", err)
	}
	return leftResult, rightResult, nil
}

package boolexpr

import (
	"fmt"
	"strings"
)

// Expr is a parsed propositional formula. The set of implementations is closed:
// every connective has to provide each behavior below, so adding one does not
// compile until the solver, the variable collector and the printers handle it.
type Expr interface {
	// Solve evaluates the expression with the variable values in assignment.
	Solve(assignment Assignment) (bool, error)
	// String returns the canonical, fully parenthesized form of the expression.
	String() string

	collectVariables(seen map[string]struct{})
	writeTree(sb *strings.Builder, prefix, branch string)
}

// Assignment maps variable names to their truth values.
type Assignment map[string]bool

type Variable struct {
	Name string
}

type Negation struct {
	Operand Expr
}

type Conjunction struct {
	Left  Expr
	Right Expr
}

type Disjunction struct {
	Left  Expr
	Right Expr
}

// Implication is material implication; Left is the antecedent.
type Implication struct {
	Left  Expr
	Right Expr
}

type Biconditional struct {
	Left  Expr
	Right Expr
}

// Formula keeps every stage of a compiled formula so callers can inspect the
// tokens and the tree without lexing or parsing again.
type Formula struct {
	Source string
	Tokens []Token
	Expr   Expr
}

// Compile lexes and parses the given formula.
// Example usage:
//
//	formula, err := boolexpr.Compile("P & Q -> R")
//	if err != nil {
//		log.Fatalf("failed to compile formula: %v", err)
//	}
//	fmt.Println(formula.Expr) // Output: ((P & Q) -> R)
func Compile(source string) (*Formula, error) {
	tokens, err := Lex(source)
	if err != nil {
		return nil, err
	}

	expr, err := Parse(tokens)
	if err != nil {
		return nil, err
	}

	return &Formula{
		Source: source,
		Tokens: tokens,
		Expr:   expr,
	}, nil
}

// New creates a new solvable boolean expression based on the given input string
// Example usage:
//
//	expr, err := boolexpr.New("A & (B | !C)")
//	if err != nil {
//		log.Fatalf("failed to build expression: %v", err)
//	}
//	fmt.Println(expr.Solve(boolexpr.Assignment{"A": true, "B": false, "C": false})) // Output: true <nil>
func New(expression string) (Expr, error) {
	formula, err := Compile(expression)
	if err != nil {
		return nil, fmt.Errorf("failed to build expression '%s': %w", expression, err)
	}
	return formula.Expr, nil
}

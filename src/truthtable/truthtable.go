package truthtable

import (
	"fmt"
	"log/slog"

	"github.com/eriklarko/truth-table/src/boolexpr"
)

// MaxVariables is the number of distinct variables a formula can reference;
// one per uppercase letter.
const MaxVariables = 26

type Row struct {
	// Values holds the value of each variable, in the order of Table.Variables.
	Values []bool
	Result bool
}

type Table struct {
	Formula   string
	Variables []string
	Rows      []Row
}

// Generate evaluates expr under every assignment of its variables. Rows are
// ordered as a binary count from all-true down to all-false, with the first
// variable as the most significant bit. A formula without variables still
// gets one row.
//
// Either every row is evaluated or an error is returned, never a partial table.
func Generate(expr boolexpr.Expr, formula string) (*Table, error) {
	variables := boolexpr.Variables(expr)
	n := len(variables)
	if n > MaxVariables {
		return nil, fmt.Errorf("formula references %d variables, at most %d are supported", n, MaxVariables)
	}

	slog.Debug("generating truth table", "variables", variables, "rows", uint64(1)<<n)

	rows, err := evaluateRows(expr, variables)
	if err != nil {
		return nil, err
	}

	return &Table{
		Formula:   formula,
		Variables: variables,
		Rows:      rows,
	}, nil
}

type solver interface {
	Solve(assignment boolexpr.Assignment) (bool, error)
}

func evaluateRows(expr solver, variables []string) ([]Row, error) {
	n := len(variables)
	rows := make([]Row, 0, 1<<n)

	for i := uint64(1)<<n - 1; ; i-- {
		values := assignmentValues(i, n)

		result, err := expr.Solve(toAssignment(variables, values))
		if err != nil {
			return nil, fmt.Errorf("failed evaluating row %d: %w", len(rows), err)
		}
		rows = append(rows, Row{Values: values, Result: result})

		if i == 0 {
			return rows, nil
		}
	}
}

// assignmentValues reads the n low bits of bits, most significant first.
func assignmentValues(bits uint64, n int) []bool {
	values := make([]bool, n)
	for i := range values {
		values[i] = bits&(1<<(n-1-i)) != 0
	}
	return values
}

func toAssignment(variables []string, values []bool) boolexpr.Assignment {
	assignment := make(boolexpr.Assignment, len(variables))
	for i, name := range variables {
		assignment[name] = values[i]
	}
	return assignment
}

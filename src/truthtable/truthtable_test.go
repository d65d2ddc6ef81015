package truthtable_test

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/eriklarko/truth-table/src/boolexpr"
	"github.com/eriklarko/truth-table/src/truthtable"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func generate(t *testing.T, formula string) *truthtable.Table {
	t.Helper()

	expr, err := boolexpr.New(formula)
	require.NoError(t, err)

	table, err := truthtable.Generate(expr, formula)
	require.NoError(t, err)

	return table
}

func TestGenerateConjunction(t *testing.T) {
	table := generate(t, "P & Q")

	assert.Equal(t, []string{"P", "Q"}, table.Variables)
	assert.Equal(t, []truthtable.Row{
		{Values: []bool{true, true}, Result: true},
		{Values: []bool{true, false}, Result: false},
		{Values: []bool{false, true}, Result: false},
		{Values: []bool{false, false}, Result: false},
	}, table.Rows)
}

func TestGenerateNegatedDisjunction(t *testing.T) {
	table := generate(t, "!A | B")

	assert.Equal(t, []string{"A", "B"}, table.Variables)
	results := lo.Map(table.Rows, func(row truthtable.Row, _ int) bool {
		return row.Result
	})
	assert.Equal(t, []bool{true, false, true, true}, results)
}

func TestGenerateEnumeratesInDescendingBinaryOrder(t *testing.T) {
	for _, formula := range []string{"A", "A | B", "C -> A & B", "A <-> B | C & !D", "A & B & C & D & E"} {
		t.Run(formula, func(t *testing.T) {
			table := generate(t, formula)
			n := len(table.Variables)

			require.Len(t, table.Rows, 1<<n)

			seen := make(map[string]bool)
			for i, row := range table.Rows {
				expected := (1<<n - 1) - i
				bits := lo.Reduce(row.Values, func(agg int, value bool, _ int) int {
					agg <<= 1
					if value {
						agg |= 1
					}
					return agg
				}, 0)
				assert.Equal(t, expected, bits, "row %d", i)

				seen[fmt.Sprint(row.Values)] = true
			}
			assert.Len(t, seen, 1<<n)
		})
	}
}

func TestGenerateEvaluatesEveryRow(t *testing.T) {
	formula := "(A -> B) <-> (!A | B)"
	table := generate(t, formula)

	for _, row := range table.Rows {
		assert.True(t, row.Result)
	}
}

func TestWriteText(t *testing.T) {
	table := generate(t, "P & Q")

	var out bytes.Buffer
	err := table.WriteText(&out, truthtable.DefaultSymbols)
	require.NoError(t, err)

	expected := "" +
		"P | Q | P & Q\n" +
		"-------------\n" +
		"T | T | T\n" +
		"T | F | F\n" +
		"F | T | F\n" +
		"F | F | F\n"
	assert.Equal(t, expected, out.String())
}

func TestWriteTextUsesFormulaAsWritten(t *testing.T) {
	table := generate(t, "!A|B")

	var out bytes.Buffer
	err := table.WriteText(&out, truthtable.Symbols{True: "1", False: "0"})
	require.NoError(t, err)

	expected := "" +
		"A | B | !A|B\n" +
		"------------\n" +
		"1 | 1 | 1\n" +
		"1 | 0 | 0\n" +
		"0 | 1 | 1\n" +
		"0 | 0 | 1\n"
	assert.Equal(t, expected, out.String())
}

func TestWriteTextWithoutVariables(t *testing.T) {
	table := &truthtable.Table{
		Formula: "X",
		Rows:    []truthtable.Row{{Result: true}},
	}

	var out bytes.Buffer
	err := table.WriteText(&out, truthtable.DefaultSymbols)
	require.NoError(t, err)
	assert.Equal(t, "X\n-\nT\n", out.String())
}

func TestWriteCSV(t *testing.T) {
	table := generate(t, "A -> B")

	var out bytes.Buffer
	err := table.WriteCSV(&out, truthtable.DefaultSymbols)
	require.NoError(t, err)

	expected := "" +
		"A,B,A -> B\n" +
		"T,T,T\n" +
		"T,F,F\n" +
		"F,T,T\n" +
		"F,F,T\n"
	assert.Equal(t, expected, out.String())
}

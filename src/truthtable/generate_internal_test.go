package truthtable

import (
	"testing"

	"github.com/eriklarko/truth-table/src/boolexpr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type constant bool

func (c constant) Solve(boolexpr.Assignment) (bool, error) {
	return bool(c), nil
}

func TestEvaluateRowsWithoutVariables(t *testing.T) {
	rows, err := evaluateRows(constant(true), nil)
	require.NoError(t, err)
	assert.Equal(t, []Row{{Values: []bool{}, Result: true}}, rows)

	rows, err = evaluateRows(constant(false), nil)
	require.NoError(t, err)
	assert.Equal(t, []Row{{Values: []bool{}, Result: false}}, rows)
}

func TestEvaluateRowsFailsWithoutPartialResult(t *testing.T) {
	expr, err := boolexpr.New("A & B")
	require.NoError(t, err)

	// B is missing from the enumerated variables
	rows, err := evaluateRows(expr, []string{"A"})
	assert.Nil(t, rows)

	var errUnknownVar *boolexpr.UnknownVariableError
	require.ErrorAs(t, err, &errUnknownVar)
	assert.Equal(t, "B", errUnknownVar.VariableName)
}

func TestAssignmentValues(t *testing.T) {
	testCases := map[uint64][]bool{
		0b000: {false, false, false},
		0b001: {false, false, true},
		0b100: {true, false, false},
		0b110: {true, true, false},
		0b111: {true, true, true},
	}

	for bits, expected := range testCases {
		assert.Equal(t, expected, assignmentValues(bits, 3), "bits %03b", bits)
	}
}

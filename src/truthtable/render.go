package truthtable

import (
	"encoding/csv"
	"fmt"
	"io"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/samber/lo"
)

type Symbols struct {
	True  string
	False string
}

var DefaultSymbols = Symbols{True: "T", False: "F"}

func (s Symbols) format(value bool) string {
	if value {
		return s.True
	}
	return s.False
}

const columnSeparator = " | "

// WriteText writes the table as a header line of variable names followed by
// the formula, a rule as long as the header, and one line per row.
//
//	P | Q | P & Q
//	-------------
//	T | T | T
func (t *Table) WriteText(w io.Writer, symbols Symbols) error {
	header := strings.Join(append(slices.Clone(t.Variables), t.Formula), columnSeparator)

	if _, err := fmt.Fprintln(w, header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	if _, err := fmt.Fprintln(w, strings.Repeat("-", utf8.RuneCountInString(header))); err != nil {
		return fmt.Errorf("failed to write separator: %w", err)
	}

	for i, row := range t.Rows {
		line := strings.Join(row.cells(symbols), columnSeparator)
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i, err)
		}
	}

	return nil
}

// WriteCSV writes the table as CSV with a header record of the variable names
// and the formula.
func (t *Table) WriteCSV(w io.Writer, symbols Symbols) error {
	writer := csv.NewWriter(w)

	header := append(slices.Clone(t.Variables), t.Formula)
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write record %v: %w", header, err)
	}

	for _, row := range t.Rows {
		record := row.cells(symbols)
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write record %v: %w", record, err)
		}
	}

	writer.Flush()
	return writer.Error()
}

func (r Row) cells(symbols Symbols) []string {
	cells := lo.Map(r.Values, func(value bool, _ int) string {
		return symbols.format(value)
	})
	return append(cells, symbols.format(r.Result))
}

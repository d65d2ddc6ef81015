package boolexpr

import (
	"fmt"
)

// LexError is returned when the input contains a character that does not start
// any token, or when a multi-character operator is left incomplete.
type LexError struct {
	Char     rune
	Position int
	// Expected names the operator the lexer was in the middle of, if any.
	Expected string
}

func NewLexError(char rune, position int, expected string) error {
	return &LexError{Char: char, Position: position, Expected: expected}
}

func (e *LexError) Error() string {
	if e.Expected != "" {
		return fmt.Sprintf("unexpected character '%c' at position %d, expected '%s'", e.Char, e.Position, e.Expected)
	}
	return fmt.Sprintf("unexpected character '%c' at position %d", e.Char, e.Position)
}

// ParseError is returned when the token stream does not match the grammar.
type ParseError struct {
	Expected string
	Found    Token
}

func NewParseError(expected string, found Token) error {
	return &ParseError{Expected: expected, Found: found}
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("expected %s but found %s at position %d", e.Expected, e.Found.Kind, e.Found.Position)
}

// UnknownVariableError is returned when an unknown variable is encountered.
type UnknownVariableError struct {
	VariableName string
}

// NewUnknownVariableError creates a new UnknownVariableError with the given variable name.
func NewUnknownVariableError(variableName string) error {
	return &UnknownVariableError{VariableName: variableName}
}

func (e UnknownVariableError) Error() string {
	return fmt.Sprintf("unknown variable: %s", e.VariableName)
}

package boolexpr

import "fmt"

type TokenKind int

const (
	LPAREN TokenKind = iota
	RPAREN
	NOT
	AND
	OR
	IMPLIES
	BICONDITIONAL
	VARIABLE
	EOF
)

var tokenKindNames = map[TokenKind]string{
	LPAREN:        "'('",
	RPAREN:        "')'",
	NOT:           "'!'",
	AND:           "'&'",
	OR:            "'|'",
	IMPLIES:       "'->'",
	BICONDITIONAL: "'<->'",
	VARIABLE:      "variable",
	EOF:           "end of input",
}

func (k TokenKind) String() string {
	if name, ok := tokenKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("TokenKind(%d)", int(k))
}

// Token is a single lexeme of a formula. Position is the zero-based rune offset
// of the token's first character in the source.
type Token struct {
	Kind     TokenKind
	Lexeme   string
	Position int
}

func (t Token) String() string {
	if t.Kind == EOF {
		return fmt.Sprintf("Token(%s, %d)", t.Kind, t.Position)
	}
	return fmt.Sprintf("Token(%s, %q, %d)", t.Kind, t.Lexeme, t.Position)
}

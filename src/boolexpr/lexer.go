package boolexpr

import (
	"unicode"
)

type lexer struct {
	input    []rune
	position int
	tokens   []Token
}

// Lex splits the formula into tokens. The returned slice always ends with
// exactly one EOF token.
//
// Variables are single uppercase letters, so "AB" is two variables.
func Lex(input string) ([]Token, error) {
	l := &lexer{input: []rune(input)}
	return l.lex()
}

func (l *lexer) lex() ([]Token, error) {
	for l.position < len(l.input) {
		current := l.input[l.position]

		switch {
		case unicode.IsSpace(current):
			l.advance(1)
		case current == '(':
			l.emit(LPAREN, "(")
		case current == ')':
			l.emit(RPAREN, ")")
		case current == '!':
			l.emit(NOT, "!")
		case current == '&':
			l.emit(AND, "&")
		case current == '|':
			l.emit(OR, "|")
		case current == '-':
			if !l.matches("->") {
				return nil, NewLexError(current, l.position, "->")
			}
			l.emit(IMPLIES, "->")
		case current == '<':
			if !l.matches("<->") {
				return nil, NewLexError(current, l.position, "<->")
			}
			l.emit(BICONDITIONAL, "<->")
		case 'A' <= current && current <= 'Z':
			l.emit(VARIABLE, string(current))
		default:
			return nil, NewLexError(current, l.position, "")
		}
	}

	l.tokens = append(l.tokens, Token{Kind: EOF, Position: len(l.input)})
	return l.tokens, nil
}

func (l *lexer) emit(kind TokenKind, lexeme string) {
	l.tokens = append(l.tokens, Token{Kind: kind, Lexeme: lexeme, Position: l.position})
	l.advance(len([]rune(lexeme)))
}

func (l *lexer) advance(count int) {
	l.position += count
}

// matches reports whether the input at the cursor starts with operator.
func (l *lexer) matches(operator string) bool {
	for offset, want := range []rune(operator) {
		if l.position+offset >= len(l.input) || l.input[l.position+offset] != want {
			return false
		}
	}
	return true
}

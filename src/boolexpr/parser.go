package boolexpr

// Grammar, lowest precedence first:
//
//	biconditional := implication ( '<->' implication )*
//	implication   := disjunction ( '->' implication )?
//	disjunction   := conjunction ( '|' conjunction )*
//	conjunction   := negation ( '&' negation )*
//	negation      := '!' negation | primary
//	primary       := VARIABLE | '(' biconditional ')'
//
// Implication is right-associative, every other binary connective folds to the left.
type parser struct {
	tokens   []Token
	position int
}

// Parse builds an expression tree from the output of Lex. The whole token
// stream has to be consumed.
func Parse(tokens []Token) (Expr, error) {
	p := &parser{tokens: tokens}

	expr, err := p.parseBiconditional()
	if err != nil {
		return nil, err
	}

	if next := p.peek(); next.Kind != EOF {
		return nil, NewParseError(EOF.String(), next)
	}
	return expr, nil
}

func (p *parser) peek() Token {
	if p.position < len(p.tokens) {
		return p.tokens[p.position]
	}

	// a token slice that was not produced by Lex may lack the EOF token
	end := 0
	if len(p.tokens) > 0 {
		last := p.tokens[len(p.tokens)-1]
		end = last.Position + len([]rune(last.Lexeme))
	}
	return Token{Kind: EOF, Position: end}
}

func (p *parser) consume(expected TokenKind) (Token, error) {
	token := p.peek()
	if token.Kind != expected {
		return token, NewParseError(expected.String(), token)
	}
	p.position++
	return token, nil
}

func (p *parser) parseBiconditional() (Expr, error) {
	left, err := p.parseImplication()
	if err != nil {
		return nil, err
	}

	for p.peek().Kind == BICONDITIONAL {
		p.position++
		right, err := p.parseImplication()
		if err != nil {
			return nil, err
		}
		left = Biconditional{Left: left, Right: right}
	}
	return left, nil
}

func (p *parser) parseImplication() (Expr, error) {
	left, err := p.parseDisjunction()
	if err != nil {
		return nil, err
	}

	if p.peek().Kind != IMPLIES {
		return left, nil
	}
	p.position++

	right, err := p.parseImplication()
	if err != nil {
		return nil, err
	}
	return Implication{Left: left, Right: right}, nil
}

func (p *parser) parseDisjunction() (Expr, error) {
	left, err := p.parseConjunction()
	if err != nil {
		return nil, err
	}

	for p.peek().Kind == OR {
		p.position++
		right, err := p.parseConjunction()
		if err != nil {
			return nil, err
		}
		left = Disjunction{Left: left, Right: right}
	}
	return left, nil
}

func (p *parser) parseConjunction() (Expr, error) {
	left, err := p.parseNegation()
	if err != nil {
		return nil, err
	}

	for p.peek().Kind == AND {
		p.position++
		right, err := p.parseNegation()
		if err != nil {
			return nil, err
		}
		left = Conjunction{Left: left, Right: right}
	}
	return left, nil
}

func (p *parser) parseNegation() (Expr, error) {
	if p.peek().Kind != NOT {
		return p.parsePrimary()
	}
	p.position++

	operand, err := p.parseNegation()
	if err != nil {
		return nil, err
	}
	return Negation{Operand: operand}, nil
}

func (p *parser) parsePrimary() (Expr, error) {
	token := p.peek()

	switch token.Kind {
	case VARIABLE:
		p.position++
		return Variable{Name: token.Lexeme}, nil

	case LPAREN:
		p.position++
		expr, err := p.parseBiconditional()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(RPAREN); err != nil {
			return nil, err
		}
		return expr, nil

	default:
		return nil, NewParseError(VARIABLE.String()+" or "+LPAREN.String(), token)
	}
}

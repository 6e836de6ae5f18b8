package engine

import (
	"fmt"
	"math"
)

// operand is the annotated value handed up between precedence tiers.
// percent marks a bare percent literal (e.g. the "10%" in "200 + 10%")
// whose final meaning depends on the enclosing binary operator: the
// additive tier re-scales it against its left operand, every other tier
// consumes it as the already-divided fraction.
type operand struct {
	value   float64
	percent bool
}

// Eval tokenizes and evaluates input in one step.
func Eval(input string) (float64, error) {
	tokens, err := Tokenize(input)
	if err != nil {
		return 0, err
	}
	return Evaluate(tokens)
}

// Evaluate reduces a token sequence to a single value. The grammar is one
// recursive level per precedence tier, lowest binding first:
//
//	additive       -> multiplicative (('+' | '-') multiplicative)*
//	multiplicative -> power (('*' | '/') power)*
//	power          -> postfix ('^' power)?          right-associative
//	postfix        -> primary '%'?
//	primary        -> number | '(' additive ')'
//
// Evaluate never mutates tokens and keeps no state across calls.
func Evaluate(tokens []Token) (float64, error) {
	if len(tokens) == 0 {
		return 0, fmt.Errorf("%w: empty expression", ErrMalformedExpression)
	}

	p := &parser{tokens: tokens}
	res, err := p.parseAdditive()
	if err != nil {
		return 0, err
	}
	if !p.isEnd() {
		tok := p.peek()
		if tok.Kind == TokenRParen {
			return 0, fmt.Errorf("%w: ')' at offset %d was never opened", ErrUnbalancedParentheses, tok.Pos)
		}
		return 0, fmt.Errorf("%w: unexpected %s at offset %d", ErrMalformedExpression, tok, tok.Pos)
	}
	return res.value, nil
}

type parser struct {
	tokens []Token
	pos    int
	depth  int // open parenthesis nesting
}

func (p *parser) parseAdditive() (operand, error) {
	left, err := p.parseMultiplicative()
	if err != nil {
		return operand{}, err
	}

	for {
		switch {
		case p.match(TokenPlus):
			right, err := p.parseMultiplicative()
			if err != nil {
				return operand{}, err
			}
			if right.percent {
				// "200 + 10%" adds 10% of the base, not 0.1.
				left.value += left.value * right.value
			} else {
				left.value += right.value
			}
			left.percent = false
		case p.match(TokenMinus):
			right, err := p.parseMultiplicative()
			if err != nil {
				return operand{}, err
			}
			if right.percent {
				left.value -= left.value * right.value
			} else {
				left.value -= right.value
			}
			left.percent = false
		default:
			return left, nil
		}
	}
}

func (p *parser) parseMultiplicative() (operand, error) {
	left, err := p.parsePower()
	if err != nil {
		return operand{}, err
	}

	for {
		switch {
		case p.match(TokenStar):
			right, err := p.parsePower()
			if err != nil {
				return operand{}, err
			}
			// A percent operand is already the fraction, so plain
			// multiplication covers "200 * 10%" = 20.
			left.value *= right.value
			left.percent = false
		case p.match(TokenSlash):
			right, err := p.parsePower()
			if err != nil {
				return operand{}, err
			}
			if right.value == 0 {
				return operand{}, ErrDivisionByZero
			}
			left.value /= right.value
			left.percent = false
		default:
			return left, nil
		}
	}
}

func (p *parser) parsePower() (operand, error) {
	base, err := p.parsePostfix()
	if err != nil {
		return operand{}, err
	}
	if p.match(TokenCaret) {
		// Right-associative: 2^3^2 = 2^(3^2) = 512. math.Pow gives the
		// conventional 0^0 = 1.
		exp, err := p.parsePower()
		if err != nil {
			return operand{}, err
		}
		base.value = math.Pow(base.value, exp.value)
		base.percent = false
	}
	return base, nil
}

func (p *parser) parsePostfix() (operand, error) {
	value, err := p.parsePrimary()
	if err != nil {
		return operand{}, err
	}
	if p.match(TokenPercent) {
		if !p.isEnd() && p.peek().Kind == TokenPercent {
			return operand{}, fmt.Errorf("%w: chained '%%' at offset %d", ErrMalformedExpression, p.peek().Pos)
		}
		return operand{value: value / 100, percent: true}, nil
	}
	return operand{value: value}, nil
}

func (p *parser) parsePrimary() (float64, error) {
	if p.isEnd() {
		return 0, fmt.Errorf("%w: expression ends where an operand was expected", ErrMalformedExpression)
	}

	tok := p.peek()
	switch tok.Kind {
	case TokenNumber:
		p.pos++
		return tok.Value, nil
	case TokenLParen:
		p.pos++
		p.depth++
		inner, err := p.parseAdditive()
		if err != nil {
			return 0, err
		}
		if !p.match(TokenRParen) {
			return 0, fmt.Errorf("%w: '(' at offset %d was never closed", ErrUnbalancedParentheses, tok.Pos)
		}
		p.depth--
		// Parentheses seal percent context: "(10%)" is plain 0.1 even
		// under an enclosing '+'.
		return inner.value, nil
	case TokenRParen:
		if p.depth == 0 {
			return 0, fmt.Errorf("%w: ')' at offset %d was never opened", ErrUnbalancedParentheses, tok.Pos)
		}
		return 0, fmt.Errorf("%w: empty group at offset %d", ErrMalformedExpression, tok.Pos)
	default:
		return 0, fmt.Errorf("%w: unexpected %s at offset %d", ErrMalformedExpression, tok, tok.Pos)
	}
}

func (p *parser) match(kind TokenKind) bool {
	if p.isEnd() || p.tokens[p.pos].Kind != kind {
		return false
	}
	p.pos++
	return true
}

func (p *parser) peek() Token {
	return p.tokens[p.pos]
}

func (p *parser) isEnd() bool {
	return p.pos >= len(p.tokens)
}

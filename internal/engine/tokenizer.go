package engine

import (
	"fmt"
	"strconv"
	"strings"
)

// Tokenize splits input into tokens in left-to-right textual order.
// Whitespace is skipped. A '-' at the start of the input, directly after
// another operator, or directly after '(' is folded into the sign of the
// number that follows it, so the evaluator only ever sees binary minus
// tokens. Empty input yields an empty, non-nil slice.
func Tokenize(input string) ([]Token, error) {
	t := &tokenizer{input: input, tokens: []Token{}}
	if err := t.run(); err != nil {
		return nil, err
	}
	return t.tokens, nil
}

type tokenizer struct {
	input  string
	pos    int
	tokens []Token
}

func (t *tokenizer) run() error {
	for {
		t.skipSpaces()
		if t.isEnd() {
			return nil
		}

		start := t.pos
		ch := t.peek()
		switch {
		case isDigit(ch) || ch == '.':
			value, err := t.scanNumber(start, false)
			if err != nil {
				return err
			}
			t.emit(Token{Kind: TokenNumber, Value: value, Pos: start})
		case ch == '-' && t.unaryContext():
			t.pos++
			if t.isEnd() || !(isDigit(t.peek()) || t.peek() == '.') {
				return fmt.Errorf("%w: '-' without operand at offset %d", ErrMalformedExpression, start)
			}
			value, err := t.scanNumber(start, true)
			if err != nil {
				return err
			}
			t.emit(Token{Kind: TokenNumber, Value: value, Pos: start})
		case ch == '+':
			t.emitOperator(TokenPlus)
		case ch == '-':
			t.emitOperator(TokenMinus)
		case ch == '*':
			t.emitOperator(TokenStar)
		case ch == '/':
			t.emitOperator(TokenSlash)
		case ch == '^':
			t.emitOperator(TokenCaret)
		case ch == '%':
			t.emitOperator(TokenPercent)
		case ch == '(':
			t.emitOperator(TokenLParen)
		case ch == ')':
			t.emitOperator(TokenRParen)
		default:
			return fmt.Errorf("%w %q at offset %d", ErrUnexpectedCharacter, ch, t.pos)
		}
	}
}

// scanNumber consumes a run of digits with at most one decimal point,
// starting at the current position. start is the offset of the literal for
// error context; negative selects the folded unary-minus form.
func (t *tokenizer) scanNumber(start int, negative bool) (float64, error) {
	from := t.pos
	dots := 0
	for !t.isEnd() {
		ch := t.peek()
		if isDigit(ch) {
			t.pos++
			continue
		}
		if ch == '.' {
			dots++
			t.pos++
			continue
		}
		break
	}

	literal := t.input[from:t.pos]
	if dots > 1 {
		return 0, fmt.Errorf("%w: numeric literal %q has multiple decimal points", ErrMalformedExpression, literal)
	}
	if literal == "" || literal == "." {
		return 0, fmt.Errorf("%w: invalid numeric literal at offset %d", ErrMalformedExpression, start)
	}

	value, err := strconv.ParseFloat(literal, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid numeric literal %q", ErrMalformedExpression, literal)
	}
	if negative {
		value = -value
	}
	return value, nil
}

// unaryContext reports whether a '-' at the current position is a sign
// rather than a binary operator: at the start of the input, after another
// operator, or after '('.
func (t *tokenizer) unaryContext() bool {
	if len(t.tokens) == 0 {
		return true
	}
	switch t.tokens[len(t.tokens)-1].Kind {
	case TokenPlus, TokenMinus, TokenStar, TokenSlash, TokenCaret, TokenLParen:
		return true
	default:
		return false
	}
}

func (t *tokenizer) emitOperator(kind TokenKind) {
	t.emit(Token{Kind: kind, Pos: t.pos})
	t.pos++
}

func (t *tokenizer) emit(tok Token) {
	t.tokens = append(t.tokens, tok)
}

func (t *tokenizer) skipSpaces() {
	for !t.isEnd() {
		switch t.peek() {
		case ' ', '\t', '\n', '\r':
			t.pos++
		default:
			return
		}
	}
}

func (t *tokenizer) peek() byte {
	return t.input[t.pos]
}

func (t *tokenizer) isEnd() bool {
	return t.pos >= len(t.input)
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

// Tokens renders a token slice back to a compact source form, used in
// debug logs.
func Tokens(tokens []Token) string {
	parts := make([]string, len(tokens))
	for i, tok := range tokens {
		parts[i] = tok.String()
	}
	return strings.Join(parts, " ")
}

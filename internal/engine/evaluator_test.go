package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const epsilon = 1e-9

func TestEvalArithmetic(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
	}{
		{name: "addition", input: "5 + 3", want: 8},
		{name: "subtraction", input: "10 - 4", want: 6},
		{name: "multiplication", input: "7 * 3", want: 21},
		{name: "division", input: "20 / 4", want: 5},
		{name: "floating point", input: "1.5 + 2.5", want: 4},
		{name: "precedence", input: "2 + 3 * 4", want: 14},
		{name: "parentheses override precedence", input: "(2 + 3) * 4", want: 20},
		{name: "nested parentheses", input: "((2 + 3) * (4 - 1))", want: 15},
		{name: "left-associative subtraction", input: "10 - 4 - 3", want: 3},
		{name: "left-associative division", input: "100 / 5 / 2", want: 10},
		{name: "complex", input: "3 + 4 * 2 / ( 1 - 5 ) ^ 2", want: 3.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Eval(tt.input)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, epsilon)
		})
	}
}

func TestEvalPower(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
	}{
		{name: "integer exponent", input: "2 ^ 3", want: 8},
		{name: "right-associative", input: "2 ^ 3 ^ 2", want: 512},
		{name: "fractional exponent", input: "9 ^ 0.5", want: 3},
		{name: "negative exponent", input: "2 ^ -2", want: 0.25},
		// 0^0 = 1 follows the math.Pow convention; the calculator treats
		// it as defined rather than as an error.
		{name: "zero to the zero", input: "0 ^ 0", want: 1},
		{name: "binds tighter than multiplication", input: "2 * 3 ^ 2", want: 18},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Eval(tt.input)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, epsilon)
		})
	}
}

func TestEvalPercent(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
	}{
		{name: "bare percent", input: "50%", want: 0.5},
		{name: "percent of base under addition", input: "200 + 10%", want: 220},
		{name: "percent of base under subtraction", input: "200 - 10%", want: 180},
		{name: "plain fraction under multiplication", input: "200 * 10%", want: 20},
		{name: "plain fraction under division", input: "200 / 10%", want: 2000},
		{name: "hundred minus quarter", input: "100 - 25%", want: 75},
		{name: "negative percent literal", input: "-50%", want: -0.5},
		{name: "percent of parenthesized group", input: "(200 + 100)%", want: 3},
		// Parentheses seal the context: the inner percent is resolved as
		// a plain fraction before '+' ever sees it.
		{name: "parenthesized percent under addition", input: "200 + (10%)", want: 200.1},
		{name: "percent of accumulated left operand", input: "100 + 100 + 10%", want: 220},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Eval(tt.input)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, epsilon)
		})
	}
}

func TestEvalUnarySign(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
	}{
		{name: "leading minus", input: "-5 + 3", want: -2},
		{name: "minus after operator", input: "5 - -3", want: 8},
		{name: "minus after multiplication", input: "10 * -2", want: -20},
		{name: "minus inside parentheses", input: "(-3) * 2", want: -6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Eval(tt.input)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, epsilon)
		})
	}
}

func TestEvalErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{name: "division by zero", input: "5 / 0", want: ErrDivisionByZero},
		{name: "division by percent-derived zero", input: "5 / 0%", want: ErrDivisionByZero},
		{name: "unclosed parenthesis", input: "(2 + 3", want: ErrUnbalancedParentheses},
		{name: "unopened parenthesis", input: "2 + 3)", want: ErrUnbalancedParentheses},
		{name: "lone right parenthesis", input: ")", want: ErrUnbalancedParentheses},
		{name: "unknown character", input: "2 & 3", want: ErrUnexpectedCharacter},
		{name: "consecutive operators", input: "5 * + 3", want: ErrMalformedExpression},
		{name: "trailing operator", input: "5 +", want: ErrMalformedExpression},
		{name: "leading binary operator", input: "* 5", want: ErrMalformedExpression},
		{name: "empty input", input: "", want: ErrMalformedExpression},
		{name: "whitespace only", input: "   ", want: ErrMalformedExpression},
		{name: "empty group", input: "()", want: ErrMalformedExpression},
		// Chained percent tokens are rejected rather than applying /100
		// twice; a single postfix '%' per operand is the documented rule.
		{name: "chained percent", input: "50%%", want: ErrMalformedExpression},
		{name: "number after percent", input: "50% 2", want: ErrMalformedExpression},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Eval(tt.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestEvalDivisionNeverProducesInfinity(t *testing.T) {
	for _, input := range []string{"5 / 0", "0 / 0", "5 / (3 - 3)"} {
		_, err := Eval(input)
		assert.ErrorIs(t, err, ErrDivisionByZero, "input %q", input)
	}
}

func TestEvaluateIsPure(t *testing.T) {
	tokens, err := Tokenize("200 + 10% * 2")
	require.NoError(t, err)

	snapshot := make([]Token, len(tokens))
	copy(snapshot, tokens)

	first, err := Evaluate(tokens)
	require.NoError(t, err)
	second, err := Evaluate(tokens)
	require.NoError(t, err)

	assert.Equal(t, first, second, "repeated evaluation must not drift")
	assert.Equal(t, snapshot, tokens, "Evaluate must not mutate its input")
}

func TestEvaluateEmptySequence(t *testing.T) {
	_, err := Evaluate(nil)
	assert.ErrorIs(t, err, ErrMalformedExpression)

	_, err = Evaluate([]Token{})
	assert.ErrorIs(t, err, ErrMalformedExpression)
}

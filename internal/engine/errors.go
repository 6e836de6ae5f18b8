package engine

import "errors"

// Every failure mode of the engine maps to exactly one of these sentinel
// errors. They are returned wrapped with position or token context, so
// callers match them with errors.Is.
var (
	// ErrUnexpectedCharacter is returned by the tokenizer for any input
	// character outside the recognized set.
	ErrUnexpectedCharacter = errors.New("unexpected character")

	// ErrUnbalancedParentheses is returned for a '(' that is never closed
	// or a ')' that was never opened.
	ErrUnbalancedParentheses = errors.New("unbalanced parentheses")

	// ErrDivisionByZero is returned when the right-hand side of a division
	// resolves to zero, including zero divisors derived from '%'.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrMalformedExpression covers structural problems: empty input,
	// doubled decimal points, consecutive binary operators, input that
	// ends mid-operator, and chained '%' tokens.
	ErrMalformedExpression = errors.New("malformed expression")
)

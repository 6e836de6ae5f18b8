// Package engine implements the expression engine behind the calculator:
// a tokenizer and a precedence-climbing evaluator. Each evaluation is a
// pure function of its input string; the engine keeps no state between
// calls.
package engine

import "fmt"

// TokenKind identifies the lexical category of a token.
type TokenKind int

const (
	TokenNumber TokenKind = iota
	TokenPlus
	TokenMinus
	TokenStar
	TokenSlash
	TokenCaret
	TokenPercent
	TokenLParen
	TokenRParen
)

// String returns the source representation of the token kind.
func (k TokenKind) String() string {
	switch k {
	case TokenNumber:
		return "number"
	case TokenPlus:
		return "+"
	case TokenMinus:
		return "-"
	case TokenStar:
		return "*"
	case TokenSlash:
		return "/"
	case TokenCaret:
		return "^"
	case TokenPercent:
		return "%"
	case TokenLParen:
		return "("
	case TokenRParen:
		return ")"
	default:
		return "unknown"
	}
}

// Token is a single lexical unit of an expression. Value is only
// meaningful for TokenNumber tokens. Pos is the byte offset of the first
// character of the token in the original input, used for error context.
type Token struct {
	Kind  TokenKind
	Value float64
	Pos   int
}

func (t Token) String() string {
	if t.Kind == TokenNumber {
		return fmt.Sprintf("number(%g)", t.Value)
	}
	return t.Kind.String()
}

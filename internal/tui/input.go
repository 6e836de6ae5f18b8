package tui

import "strings"

// Pure editing helpers for the display string. Operators are stored
// padded with spaces ("5 + 3"), which backspace and sign-toggling rely
// on.

// lastSegment returns the part of s after the last operator or
// parenthesis, i.e. the number currently being typed.
func lastSegment(s string) string {
	idx := strings.LastIndexAny(s, "+-*/^()")
	if idx < 0 {
		return s
	}
	return s[idx+1:]
}

// toggleSign flips the sign of the trailing number: "5 + 3" becomes
// "5 + -3" and back. A display without a trailing number is returned
// unchanged.
func toggleSign(s string) string {
	i := len(s)
	for i > 0 && (isDigitByte(s[i-1]) || s[i-1] == '.') {
		i--
	}
	if i == len(s) {
		// ends with an operator or parenthesis, nothing to flip
		return s
	}
	if i > 0 && s[i-1] == '-' && (i == 1 || isSignContext(s[i-2])) {
		return s[:i-1] + s[i:]
	}
	if i == 0 && s == "0" {
		return s
	}
	return s[:i] + "-" + s[i:]
}

// deleteLast removes the last character, or a whole padded operator in
// one step. An emptied display resets to "0".
func deleteLast(s string) string {
	if len(s) <= 1 {
		return "0"
	}
	trimmed := s[:len(s)-1]
	if strings.HasSuffix(s, " ") {
		trimmed = strings.TrimRight(trimmed, "+-*/^")
	}
	trimmed = strings.TrimRight(trimmed, " ")
	if trimmed == "" {
		return "0"
	}
	return trimmed
}

func isDigitByte(c byte) bool {
	return c >= '0' && c <= '9'
}

// isSignContext reports whether a '-' after c is a sign rather than a
// binary operator.
func isSignContext(c byte) bool {
	switch c {
	case ' ', '(', '+', '-', '*', '/', '^':
		return true
	default:
		return false
	}
}

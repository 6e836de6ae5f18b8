package tui

import "testing"

func TestToggleSign(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain number", input: "5", want: "-5"},
		{name: "already negative", input: "-5", want: "5"},
		{name: "multi digit", input: "120", want: "-120"},
		{name: "after operator", input: "5 + 3", want: "5 + -3"},
		{name: "negated after operator", input: "5 + -3", want: "5 + 3"},
		{name: "after open paren", input: "(3", want: "(-3"},
		{name: "negated after open paren", input: "(-3", want: "(3"},
		{name: "zero stays zero", input: "0", want: "0"},
		{name: "trailing operator untouched", input: "5 + ", want: "5 + "},
		{name: "decimal number", input: "2 * 1.5", want: "2 * -1.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := toggleSign(tt.input); got != tt.want {
				t.Errorf("toggleSign(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestDeleteLast(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "digit", input: "123", want: "12"},
		{name: "single digit resets", input: "5", want: "0"},
		{name: "padded operator removed atomically", input: "5 + ", want: "5"},
		{name: "decimal point", input: "3.", want: "3"},
		{name: "empty resets", input: "", want: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := deleteLast(tt.input); got != tt.want {
				t.Errorf("deleteLast(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestLastSegment(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "no operators", input: "3.14", want: "3.14"},
		{name: "after plus", input: "3.14 + 2", want: " 2"},
		{name: "after paren", input: "(2", want: "2"},
		{name: "trailing operator", input: "5 + ", want: " "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := lastSegment(tt.input); got != tt.want {
				t.Errorf("lastSegment(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

package graph

import (
	"strings"
	"testing"
)

func TestEscapeFilterValue_CleanStringUnchanged(t *testing.T) {
	in := "Hello World 123"
	if got := EscapeFilterValue(in); got != in {
		t.Errorf("Expected clean string unchanged, got %q", got)
	}
}

func TestEscapeFilterValue_Idempotent(t *testing.T) {
	// Escaping a string with no unsafe characters returns it
	// unchanged, so double-escaping clean input is harmless.
	in := "plain text (no specials)"
	once := EscapeFilterValue(in)
	twice := EscapeFilterValue(once)
	if once != twice {
		t.Errorf("Expected idempotence, got %q then %q", once, twice)
	}
}

func TestEscapeFilterValue_SpecialCharacters(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`a\b`, `a\\b`},
		{"it's", `it\'s`},
		{"10:30", `10\:30`},
		{"a,b", `a\,b`},
		{"a;b", `a\;b`},
		{"[pin]", `\[pin\]`},
		{"100%", `100\%`},
	}

	for _, tt := range tests {
		if got := EscapeFilterValue(tt.in); got != tt.want {
			t.Errorf("EscapeFilterValue(%q): expected %q, got %q", tt.in, tt.want, got)
		}
	}
}

func TestEscapeFilterValue_ControlCharacters(t *testing.T) {
	// Every control character maps to a safe representation; none may
	// survive into the output.
	for c := byte(0); c < 0x20; c++ {
		got := EscapeFilterValue("x" + string(rune(c)) + "y")
		if strings.ContainsRune(got, rune(c)) {
			t.Errorf("Control character 0x%02x survived escaping: %q", c, got)
		}
	}

	if got := EscapeFilterValue("a\x7fb"); strings.ContainsRune(got, 0x7f) {
		t.Errorf("DEL survived escaping: %q", got)
	}
}

func TestEscapeFilterValue_Total(t *testing.T) {
	// The function must accept anything, including invalid UTF-8 and
	// empty input, without panicking.
	inputs := []string{"", "\xff\xfe", strings.Repeat("'", 100), "mixed:\n\t[x];%"}
	for _, in := range inputs {
		_ = EscapeFilterValue(in)
	}
}

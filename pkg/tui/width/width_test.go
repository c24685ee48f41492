// ABOUTME: Tests for display-width measurement utilities
// ABOUTME: Covers ASCII fast path, wide glyphs, ellipsis, truncation and padding

package width

import "testing"

func TestString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  int
	}{
		{name: "empty string", input: "", want: 0},
		{name: "ascii", input: "Google.Chrome", want: 13},
		{name: "ellipsis one column three bytes", input: "Micro…", want: 6},
		{name: "cjk wide", input: "你好", want: 4},
		{name: "mixed", input: "7-Zip…", want: 6},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := String(tt.input)
			if got != tt.want {
				t.Errorf("String(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestRune(t *testing.T) {
	t.Parallel()

	tests := []struct {
		r    rune
		want int
	}{
		{'a', 1},
		{'…', 1},
		{'好', 2},
	}

	for _, tt := range tests {
		got := Rune(tt.r)
		if got != tt.want {
			t.Errorf("Rune(%q) = %d, want %d", tt.r, got, tt.want)
		}
	}
}

func TestIsPlainASCII(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "plain ascii", input: "Name Id Version", want: true},
		{name: "with tab", input: "a\tb", want: false},
		{name: "empty", input: "", want: true},
		{name: "unicode", input: "Versión", want: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := isPlainASCII(tt.input)
			if got != tt.want {
				t.Errorf("isPlainASCII(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		max   int
		want  string
	}{
		{name: "fits unchanged", input: "winget", max: 10, want: "winget"},
		{name: "cut with ellipsis", input: "Google Chrome", max: 7, want: "Google…"},
		{name: "zero max", input: "x", max: 0, want: ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Truncate(tt.input, tt.max)
			if got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.input, tt.max, got, tt.want)
			}
		})
	}
}

func TestPad(t *testing.T) {
	t.Parallel()

	if got := Pad("id", 5); got != "id   " {
		t.Errorf("Pad(%q, 5) = %q, want %q", "id", got, "id   ")
	}
	if got := Pad("Google Chrome", 7); got != "Google…" {
		t.Errorf("Pad truncates = %q, want %q", got, "Google…")
	}
	if got := String(Pad("Micro…", 10)); got != 10 {
		t.Errorf("Pad width = %d, want 10", got)
	}
}

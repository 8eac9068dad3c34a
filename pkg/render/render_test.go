package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sandrolain/goalgebra/pkg/parser"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"integer", "42", "42"},
		{"variable", "abc", "abc"},
		{"addition", "1+2", "(1 + 2)"},
		{"negation", "-x", "(-x)"},
		{"stacked negation", "--x", "(-(-x))"},
		{"precedence is explicit", "1+2*3", "(1 + (2 * 3))"},
		{"left associativity is explicit", "1-2-3", "((1 - 2) - 3)"},
		{"division", "x/y", "(x / y)"},
		{"redundant parens are not preserved", "((x))", "x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expr, err := parser.Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, Render(expr.AST()))
		})
	}
}

func TestRenderTypeset(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"integer", "42", "42"},
		{"variable", "x", "x"},
		{"addition has no forced parens", "1+2", "1 + 2"},
		{"negation", "-x", "-x"},
		{"division is a fraction", "x/y", `\frac{x}{y}`},
		{"nested fraction", "1/(x/2)", `\frac{1}{\frac{x}{2}}`},
		{"multiplication glyph", "2*x", `2 \cdot x`},
		{"mixed", "a+b/2", `a + \frac{b}{2}`},
		{"negated fraction", "-(1/3)", `-\frac{1}{3}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expr, err := parser.Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, RenderTypeset(expr.AST()))
		})
	}
}

// Render output must reparse to the identical tree: the parenthesization is
// total, so no precedence information is lost.
func TestRenderRoundTrip(t *testing.T) {
	sources := []string{
		"1 + 10",
		"4 + x + 1",
		"-2 * 3",
		"--x",
		"(a + b) / (a - b)",
		"1 - 2 - 3",
		"x / 0",
	}

	for _, src := range sources {
		t.Run(src, func(t *testing.T) {
			expr, err := parser.Parse(src)
			require.NoError(t, err)

			reparsed, err := parser.Parse(Render(expr.AST()))
			require.NoError(t, err)
			assert.True(t, reparsed.AST().Equal(expr.AST()))
		})
	}
}

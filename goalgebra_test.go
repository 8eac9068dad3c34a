package goalgebra

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sandrolain/goalgebra/pkg/evaluator"
	"github.com/sandrolain/goalgebra/pkg/types"
)

func TestSimplifyCases(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"addition", "1 + 10", "11"},
		{"negative result", "5 - 9", "(-4)"},
		{"exact division", "4 / 2", "2"},
		{"inexact division stays symbolic", "4 / 3", "(4 / 3)"},
		{"no folding across a variable", "4 + x + 1", "((4 + x) + 1)"},
		{"double negation", "--5", "5"},
		{"variable only", "x", "x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Simplify(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseErrors(t *testing.T) {
	for _, input := range []string{"1 + ", "(1 + 2", "", "1 2", "1 $ 2"} {
		t.Run(input, func(t *testing.T) {
			_, err := Parse(input)
			require.Error(t, err)
			assert.True(t, types.IsSyntaxError(err))
		})
	}
}

func TestEvaluateFacade(t *testing.T) {
	expr, err := Parse("1 + 10")
	require.NoError(t, err)

	// The parsed tree has the documented shape.
	want := types.NewBinary(types.NodeAdd, types.NewInt(1), types.NewInt(10))
	assert.True(t, expr.AST().Equal(want))

	out, err := Evaluate(expr)
	require.NoError(t, err)
	assert.True(t, out.Equal(types.NewInt(11)))
}

func TestRenderFacade(t *testing.T) {
	expr := MustParse("1/2 + x")
	assert.Equal(t, "((1 / 2) + x)", Render(expr.AST()))
	assert.Equal(t, `\frac{1}{2} + x`, RenderTypeset(expr.AST()))
}

func TestMustParsePanics(t *testing.T) {
	assert.Panics(t, func() { MustParse("1 + ") })
	assert.NotPanics(t, func() { MustParse("1 + 1") })
}

func TestEquivalentFacade(t *testing.T) {
	a := MustParse("x + x")
	b := MustParse("2 * x")
	same, err := Equivalent(a, b, evaluator.WithSeed(1))
	require.NoError(t, err)
	assert.True(t, same)

	c := MustParse("x * x")
	same, err = Equivalent(a, c, evaluator.WithSeed(1))
	require.NoError(t, err)
	assert.False(t, same)

	// Known gap: a universally undefined expression refutes nothing.
	same, err = Equivalent(MustParse("x / 0"), MustParse("1"), evaluator.WithSeed(1))
	require.NoError(t, err)
	assert.True(t, same)
}

// Rendering adds no information beyond structure: parsing the rendered form
// and evaluating must reach the same normal form as evaluating the original.
func TestRenderEvaluateRoundTrip(t *testing.T) {
	sources := []string{
		"1 + 10",
		"5 - 9",
		"4 / 3",
		"4 + x + 1",
		"--5",
		"-2 * 3 + x / 0",
		"(a + b) / (a - b)",
	}

	for _, src := range sources {
		t.Run(src, func(t *testing.T) {
			expr := MustParse(src)

			direct, err := Evaluate(expr)
			require.NoError(t, err)

			reparsed, err := Parse(Render(expr.AST()))
			require.NoError(t, err)
			viaRender, err := Evaluate(reparsed)
			require.NoError(t, err)

			assert.True(t, viaRender.Equal(direct))
		})
	}
}

func TestSimplifyWithCaching(t *testing.T) {
	out, err := Simplify("4 + x + 1", evaluator.WithCaching(true))
	require.NoError(t, err)
	assert.Equal(t, "((4 + x) + 1)", out)
}

func TestVersion(t *testing.T) {
	assert.NotEmpty(t, Version())
}

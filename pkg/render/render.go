// Package render converts expression trees back into text.
//
// Two output formats are provided:
//   - Render: fully parenthesized plain infix, suitable for display and
//     round-tripping through the parser
//   - RenderTypeset: math-typesetting (LaTeX) output with fractions for
//     division and an explicit multiplication glyph
//
// Both are pure tree walks with no state.
package render

import (
	"strconv"
	"strings"

	"github.com/sandrolain/goalgebra/pkg/types"
)

// Render returns the fully parenthesized infix form of the expression,
// e.g. Add(Int 1, Int 2) renders as "(1 + 2)" and Neg(Var x) as "(-x)".
func Render(n *types.ASTNode) string {
	var b strings.Builder
	writeInfix(&b, n)
	return b.String()
}

func writeInfix(b *strings.Builder, n *types.ASTNode) {
	switch n.Type {
	case types.NodeInt:
		b.WriteString(strconv.FormatInt(n.IntValue, 10))
	case types.NodeVar:
		b.WriteString(n.Name)
	case types.NodeNeg:
		b.WriteString("(-")
		writeInfix(b, n.LHS)
		b.WriteByte(')')
	default:
		b.WriteByte('(')
		writeInfix(b, n.LHS)
		b.WriteByte(' ')
		b.WriteString(n.Type.Operator())
		b.WriteByte(' ')
		writeInfix(b, n.RHS)
		b.WriteByte(')')
	}
}

// RenderTypeset returns the LaTeX form of the expression: division becomes
// \frac{..}{..}, multiplication uses \cdot, and everything else is plain
// infix without forced parentheses.
func RenderTypeset(n *types.ASTNode) string {
	var b strings.Builder
	writeTypeset(&b, n)
	return b.String()
}

func writeTypeset(b *strings.Builder, n *types.ASTNode) {
	switch n.Type {
	case types.NodeInt:
		b.WriteString(strconv.FormatInt(n.IntValue, 10))
	case types.NodeVar:
		b.WriteString(n.Name)
	case types.NodeNeg:
		b.WriteByte('-')
		writeTypeset(b, n.LHS)
	case types.NodeDiv:
		b.WriteString(`\frac{`)
		writeTypeset(b, n.LHS)
		b.WriteString(`}{`)
		writeTypeset(b, n.RHS)
		b.WriteByte('}')
	case types.NodeMul:
		writeTypeset(b, n.LHS)
		b.WriteString(` \cdot `)
		writeTypeset(b, n.RHS)
	default:
		writeTypeset(b, n.LHS)
		b.WriteByte(' ')
		b.WriteString(n.Type.Operator())
		b.WriteByte(' ')
		writeTypeset(b, n.RHS)
	}
}

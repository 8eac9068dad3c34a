package evaluator

import (
	"github.com/sandrolain/goalgebra/pkg/types"
)

// Substitute returns a copy of the tree with every Var leaf whose name
// appears in bindings replaced by the standardized form of its value.
// All other structure is left untouched. The input tree is not modified.
func Substitute(n *types.ASTNode, bindings map[string]int64) *types.ASTNode {
	switch n.Type {
	case types.NodeInt:
		return n
	case types.NodeVar:
		if v, ok := bindings[n.Name]; ok {
			return standardize(v)
		}
		return n
	case types.NodeNeg:
		return types.NewNeg(Substitute(n.LHS, bindings))
	default:
		return types.NewBinary(n.Type,
			Substitute(n.LHS, bindings),
			Substitute(n.RHS, bindings))
	}
}

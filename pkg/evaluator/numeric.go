package evaluator

import (
	"fmt"

	"github.com/sandrolain/goalgebra/pkg/types"
)

// isNumeric reports whether the node represents a single signed integer:
// either Int(n) or Neg(Int(n)).
func isNumeric(n *types.ASTNode) bool {
	if n.Type == types.NodeInt {
		return true
	}
	return n.Type == types.NodeNeg && n.LHS.Type == types.NodeInt
}

// numericValue extracts the signed integer value of a numeric node.
// Calling it on a non-numeric node is an invariant violation and yields an
// E-coded error; the evaluator only calls it after an isNumeric check.
func numericValue(n *types.ASTNode) (int64, error) {
	switch {
	case n.Type == types.NodeInt:
		return n.IntValue, nil
	case n.Type == types.NodeNeg && n.LHS.Type == types.NodeInt:
		return -n.LHS.IntValue, nil
	default:
		return 0, &types.Error{
			Code:     types.ErrNotNumeric,
			Message:  fmt.Sprintf("Node %s is not in numeric form", n.Type),
			Position: n.Position,
		}
	}
}

// standardize emits the canonical tree for a signed integer:
// Int(v) when v >= 0, Neg(Int(-v)) otherwise.
func standardize(v int64) *types.ASTNode {
	if v >= 0 {
		return types.NewInt(v)
	}
	return types.NewNeg(types.NewInt(-v))
}

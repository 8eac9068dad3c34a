package types

// NodeType identifies the variant of an AST node.
type NodeType uint8

// The variant set is closed: every expression is built from exactly these
// seven node kinds. Negative numbers have no direct representation — they are
// always NodeNeg wrapping a NodeInt.
const (
	NodeInt NodeType = iota // non-negative integer literal
	NodeVar                 // opaque identifier
	NodeAdd                 // binary +
	NodeSub                 // binary -
	NodeMul                 // binary *
	NodeDiv                 // binary /
	NodeNeg                 // unary -
)

// String returns a string representation of the node type.
func (nt NodeType) String() string {
	switch nt {
	case NodeInt:
		return "int"
	case NodeVar:
		return "var"
	case NodeAdd:
		return "add"
	case NodeSub:
		return "sub"
	case NodeMul:
		return "mul"
	case NodeDiv:
		return "div"
	case NodeNeg:
		return "neg"
	default:
		return "(unknown)"
	}
}

// IsBinary reports whether the node type is one of the four binary operators.
func (nt NodeType) IsBinary() bool {
	switch nt {
	case NodeAdd, NodeSub, NodeMul, NodeDiv:
		return true
	default:
		return false
	}
}

// Operator returns the surface syntax for an operator node type
// ("+", "-", "*", "/"), or "" for leaf types. NodeNeg yields "-".
func (nt NodeType) Operator() string {
	switch nt {
	case NodeAdd:
		return "+"
	case NodeSub, NodeNeg:
		return "-"
	case NodeMul:
		return "*"
	case NodeDiv:
		return "/"
	default:
		return ""
	}
}

// ASTNode represents a node in the expression tree.
//
// Nodes are treated as immutable once constructed: the evaluator and the
// substitution pass always build new trees rather than rewriting in place, so
// an ASTNode may be safely shared between goroutines for reading.
//
// Field usage by variant:
//   - NodeInt: IntValue (always >= 0)
//   - NodeVar: Name
//   - NodeAdd/NodeSub/NodeMul/NodeDiv: LHS, RHS
//   - NodeNeg: LHS only
type ASTNode struct {
	Type     NodeType
	IntValue int64
	Name     string
	Position int // byte offset in the source, -1 for synthesized nodes

	LHS *ASTNode
	RHS *ASTNode
}

// NewInt creates an integer literal node. value must be >= 0; callers that
// need a negative number wrap the literal in NewNeg.
func NewInt(value int64) *ASTNode {
	return &ASTNode{Type: NodeInt, IntValue: value, Position: -1}
}

// NewVar creates a variable node with the given name.
func NewVar(name string) *ASTNode {
	return &ASTNode{Type: NodeVar, Name: name, Position: -1}
}

// NewBinary creates a binary operator node. op must be one of
// NodeAdd, NodeSub, NodeMul, NodeDiv.
func NewBinary(op NodeType, lhs, rhs *ASTNode) *ASTNode {
	return &ASTNode{Type: op, LHS: lhs, RHS: rhs, Position: -1}
}

// NewNeg creates a unary negation node.
func NewNeg(arg *ASTNode) *ASTNode {
	return &ASTNode{Type: NodeNeg, LHS: arg, Position: -1}
}

// Equal reports whether two trees are structurally identical.
// Position is ignored; only the variant and its payload matter.
func (n *ASTNode) Equal(other *ASTNode) bool {
	if n == nil || other == nil {
		return n == other
	}
	if n.Type != other.Type {
		return false
	}
	switch n.Type {
	case NodeInt:
		return n.IntValue == other.IntValue
	case NodeVar:
		return n.Name == other.Name
	case NodeNeg:
		return n.LHS.Equal(other.LHS)
	default:
		return n.LHS.Equal(other.LHS) && n.RHS.Equal(other.RHS)
	}
}

// Vars collects the distinct variable names appearing in the tree into dst,
// allocating a new map when dst is nil, and returns it. Names are matched
// exactly (case-sensitive).
func (n *ASTNode) Vars(dst map[string]struct{}) map[string]struct{} {
	if dst == nil {
		dst = make(map[string]struct{})
	}
	if n == nil {
		return dst
	}
	switch n.Type {
	case NodeVar:
		dst[n.Name] = struct{}{}
	case NodeInt:
	default:
		n.LHS.Vars(dst)
		if n.RHS != nil {
			n.RHS.Vars(dst)
		}
	}
	return dst
}

// String returns a string representation of the node type.
func (n *ASTNode) String() string {
	return n.Type.String()
}

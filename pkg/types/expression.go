// Package types defines the core type system for goalgebra.
//
// This package contains type definitions for:
//   - Expression: Parsed algebraic expressions
//   - ASTNode: Abstract Syntax Tree nodes
//   - Error types: Structured errors with codes
package types

// Expression represents a parsed algebraic expression.
//
// An Expression can be rendered, evaluated and compared for equivalence any
// number of times. It is safe for concurrent use by multiple goroutines:
// the tree it wraps is never mutated after parsing.
type Expression struct {
	ast    *ASTNode
	source string
}

// NewExpression creates a new Expression from an AST.
func NewExpression(ast *ASTNode, source string) *Expression {
	return &Expression{
		ast:    ast,
		source: source,
	}
}

// AST returns the Abstract Syntax Tree of the expression.
func (e *Expression) AST() *ASTNode {
	return e.ast
}

// Source returns the original source text of the expression.
func (e *Expression) Source() string {
	return e.source
}

// String returns a string representation of the expression.
func (e *Expression) String() string {
	return e.source
}

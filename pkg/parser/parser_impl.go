package parser

import (
	"fmt"
	"strconv"

	"github.com/sandrolain/goalgebra/pkg/types"
)

// Parser implements a recursive descent parser for algebraic expressions.
// It uses precedence climbing (Pratt's "Top Down Operator Precedence") to
// handle operator precedence and left associativity.
type Parser struct {
	source string
	tokens []Token
	pos    int // cursor into tokens; advances monotonically
	depth  int
	opts   CompileOptions
}

// NewParser creates a new parser for the given input string.
func NewParser(source string, opts ...CompileOption) *Parser {
	options := CompileOptions{
		MaxDepth: 200,
	}
	for _, opt := range opts {
		opt(&options)
	}

	return &Parser{
		source: source,
		opts:   options,
	}
}

// Parse parses the entire expression and returns the compiled Expression.
func (p *Parser) Parse() (*types.Expression, error) {
	tokens, err := NewLexer(p.source).Tokenize()
	if err != nil {
		return nil, err
	}
	p.tokens = tokens
	p.pos = 0

	node, err := p.parseExpression(0)
	if err != nil {
		return nil, err
	}

	if t := p.current(); t.Type != TokenEOF {
		return nil, p.errorAt(t, types.ErrTrailingTokens,
			fmt.Sprintf("Unexpected token %q after expression", t.Value))
	}

	return types.NewExpression(node, p.source), nil
}

// Operator precedence table (binding power).
// Higher values bind more tightly.
var precedence = map[TokenType]int{
	TokenPlus:  50, // +
	TokenMinus: 50, // -
	TokenMult:  60, // *
	TokenDiv:   60, // /
}

// bpPrefix is the binding power of unary minus. It exceeds the binding power
// of * and /, so -2*3 parses as (-2)*3, and it stacks (--x is Neg(Neg(x))).
const bpPrefix = 70

// binaryNodeType maps an operator token to its AST node type.
var binaryNodeType = map[TokenType]types.NodeType{
	TokenPlus:  types.NodeAdd,
	TokenMinus: types.NodeSub,
	TokenMult:  types.NodeMul,
	TokenDiv:   types.NodeDiv,
}

// getPrecedence returns the precedence of a token type.
func (p *Parser) getPrecedence(tt TokenType) int {
	if prec, ok := precedence[tt]; ok {
		return prec
	}
	return 0
}

// current returns the token under the cursor, or a synthesized EOF token when
// the sequence is exhausted.
func (p *Parser) current() Token {
	if p.pos >= len(p.tokens) {
		return Token{Type: TokenEOF, Position: len(p.source)}
	}
	return p.tokens[p.pos]
}

// advance moves the cursor to the next token.
func (p *Parser) advance() {
	p.pos++
}

// errorAt creates a parser error for the given token.
func (p *Parser) errorAt(t Token, code types.ErrorCode, message string) error {
	return &types.Error{
		Code:     code,
		Message:  message,
		Position: t.Position,
		Token:    t.Value,
	}
}

// parseExpression parses an expression with operator precedence.
// rbp is the right binding power (minimum precedence). Binary operators fold
// left because the loop condition is strict: an operator of equal precedence
// terminates the recursive call and is consumed by the caller's loop instead.
func (p *Parser) parseExpression(rbp int) (*types.ASTNode, error) {
	p.depth++
	defer func() { p.depth-- }()
	if p.opts.MaxDepth > 0 && p.depth > p.opts.MaxDepth {
		return nil, p.errorAt(p.current(), types.ErrDepthExceeded,
			fmt.Sprintf("Expression exceeds maximum nesting depth of %d", p.opts.MaxDepth))
	}

	left, err := p.parsePrefix()
	if err != nil {
		return nil, err
	}

	for rbp < p.getPrecedence(p.current().Type) {
		left, err = p.parseInfix(left)
		if err != nil {
			return nil, err
		}
	}

	return left, nil
}

// parsePrefix parses an expression that does not require a left-hand side:
// a number, a variable, a unary minus, or a parenthesized group.
func (p *Parser) parsePrefix() (*types.ASTNode, error) {
	token := p.current()

	switch token.Type {
	case TokenNumber:
		return p.parseNumber()
	case TokenVar:
		return p.parseVariable()
	case TokenMinus:
		return p.parseUnaryMinus()
	case TokenParenOpen:
		return p.parseGrouping()
	case TokenEOF:
		return nil, p.errorAt(token, types.ErrUnexpectedEnd,
			"Unexpected end of expression, operand expected")
	default:
		return nil, p.errorAt(token, types.ErrUnexpectedToken,
			fmt.Sprintf("Unexpected token %q, operand expected", token.Value))
	}
}

// parseInfix parses a binary operator expression given its left-hand side.
func (p *Parser) parseInfix(left *types.ASTNode) (*types.ASTNode, error) {
	token := p.current()

	op, ok := binaryNodeType[token.Type]
	if !ok {
		return nil, p.errorAt(token, types.ErrUnexpectedToken,
			fmt.Sprintf("Unexpected token %q, operator expected", token.Value))
	}
	p.advance()

	right, err := p.parseExpression(p.getPrecedence(token.Type))
	if err != nil {
		return nil, err
	}

	node := types.NewBinary(op, left, right)
	node.Position = token.Position
	return node, nil
}

// parseNumber parses a non-negative integer literal.
func (p *Parser) parseNumber() (*types.ASTNode, error) {
	token := p.current()

	val, err := strconv.ParseInt(token.Value, 10, 64)
	if err != nil {
		return nil, p.errorAt(token, types.ErrUnexpectedToken,
			fmt.Sprintf("Invalid number %q", token.Value))
	}

	node := types.NewInt(val)
	node.Position = token.Position
	p.advance()
	return node, nil
}

// parseVariable parses a variable reference.
func (p *Parser) parseVariable() (*types.ASTNode, error) {
	token := p.current()
	node := types.NewVar(token.Value)
	node.Position = token.Position
	p.advance()
	return node, nil
}

// parseUnaryMinus parses a negation. The operand is parsed at bpPrefix, so
// the minus applies to the next primary expression only.
func (p *Parser) parseUnaryMinus() (*types.ASTNode, error) {
	token := p.current()
	p.advance()

	arg, err := p.parseExpression(bpPrefix)
	if err != nil {
		return nil, err
	}

	node := types.NewNeg(arg)
	node.Position = token.Position
	return node, nil
}

// parseGrouping parses a parenthesized expression. The inner expression is
// parsed at the lowest precedence.
func (p *Parser) parseGrouping() (*types.ASTNode, error) {
	p.advance() // consume (

	node, err := p.parseExpression(0)
	if err != nil {
		return nil, err
	}

	if t := p.current(); t.Type != TokenParenClose {
		return nil, p.errorAt(t, types.ErrExpectedToken,
			fmt.Sprintf("Expected %s but got %s", TokenParenClose, t.Type))
	}
	p.advance() // consume )

	return node, nil
}

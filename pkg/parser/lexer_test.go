package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sandrolain/goalgebra/pkg/types"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Token
	}{
		{
			name:  "single number",
			input: "42",
			want:  []Token{{TokenNumber, "42", 0}},
		},
		{
			name:  "single variable",
			input: "x",
			want:  []Token{{TokenVar, "x", 0}},
		},
		{
			name:  "multi-letter variable is one token",
			input: "abc",
			want:  []Token{{TokenVar, "abc", 0}},
		},
		{
			name:  "operators and parens",
			input: "(1+2)*3",
			want: []Token{
				{TokenParenOpen, "(", 0},
				{TokenNumber, "1", 1},
				{TokenPlus, "+", 2},
				{TokenNumber, "2", 3},
				{TokenParenClose, ")", 4},
				{TokenMult, "*", 5},
				{TokenNumber, "3", 6},
			},
		},
		{
			name:  "whitespace is skipped",
			input: "  1 \t+\n 10 ",
			want: []Token{
				{TokenNumber, "1", 2},
				{TokenPlus, "+", 5},
				{TokenNumber, "10", 8},
			},
		},
		{
			name:  "minus and divide",
			input: "x - y / 2",
			want: []Token{
				{TokenVar, "x", 0},
				{TokenMinus, "-", 2},
				{TokenVar, "y", 4},
				{TokenDiv, "/", 6},
				{TokenNumber, "2", 8},
			},
		},
		{
			name:  "digits then letters split",
			input: "2x",
			want: []Token{
				{TokenNumber, "2", 0},
				{TokenVar, "x", 1},
			},
		},
		{
			name:  "leading zeroes kept verbatim",
			input: "007",
			want:  []Token{{TokenNumber, "007", 0}},
		},
		{
			name:  "empty input",
			input: "",
			want:  nil,
		},
		{
			name:  "whitespace only",
			input: "   ",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := NewLexer(tt.input).Tokenize()
			require.NoError(t, err)
			assert.Equal(t, tt.want, tokens)
		})
	}
}

func TestTokenizeUnexpectedCharacter(t *testing.T) {
	tests := []struct {
		name  string
		input string
		pos   int
	}{
		{"dot", "1.5", 1},
		{"hash", "# comment", 0},
		{"equals", "x = 1", 2},
		{"unicode", "2 × 3", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewLexer(tt.input).Tokenize()
			require.Error(t, err)
			require.True(t, types.IsSyntaxError(err))

			var terr *types.Error
			require.ErrorAs(t, err, &terr)
			assert.Equal(t, types.ErrUnexpectedChar, terr.Code)
			assert.Equal(t, tt.pos, terr.Position)
		})
	}
}

func TestLexerErrorSticks(t *testing.T) {
	l := NewLexer("1 . 2")
	for l.Next().Type != TokenError {
	}
	// After the first error the lexer keeps reporting it.
	assert.Equal(t, TokenError, l.Next().Type)
	require.Error(t, l.Error())
}

func TestTokenTypeString(t *testing.T) {
	assert.Equal(t, "(number)", TokenNumber.String())
	assert.Equal(t, "(variable)", TokenVar.String())
	assert.Equal(t, "+", TokenPlus.String())
	assert.Equal(t, ")", TokenParenClose.String())
}

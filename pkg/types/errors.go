package types

import "fmt"

// ErrorCode identifies a goalgebra error.
type ErrorCode string

// Error codes. S-codes are syntax errors raised while tokenizing or parsing;
// E-codes are evaluation errors (internal invariant violations).
const (
	// Sxxxx: Tokenizer/Parser errors
	ErrUnexpectedChar  ErrorCode = "S0101"
	ErrUnexpectedEnd   ErrorCode = "S0104"
	ErrUnexpectedToken ErrorCode = "S0201"
	ErrExpectedToken   ErrorCode = "S0202"
	ErrTrailingTokens  ErrorCode = "S0203"
	ErrDepthExceeded   ErrorCode = "S0204"

	// Exxxx: Evaluation errors
	ErrNotNumeric ErrorCode = "E1001"
)

// ErrorKind is the coarse classification of an error: syntax or evaluation.
type ErrorKind uint8

const (
	KindUnknown ErrorKind = iota
	KindSyntax
	KindEvaluation
)

// Kind returns the classification of the code by its prefix.
func (c ErrorCode) Kind() ErrorKind {
	if len(c) == 0 {
		return KindUnknown
	}
	switch c[0] {
	case 'S':
		return KindSyntax
	case 'E':
		return KindEvaluation
	default:
		return KindUnknown
	}
}

// Error represents a structured goalgebra error.
type Error struct {
	Code     ErrorCode
	Message  string
	Position int    // byte offset in the source, -1 when unknown
	Token    string // offending token or character, if any
}

// NewError creates a new error with the given code, message and position.
func NewError(code ErrorCode, message string, position int) *Error {
	return &Error{
		Code:     code,
		Message:  message,
		Position: position,
	}
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Position >= 0 {
		return fmt.Sprintf("%s at position %d: %s", e.Code, e.Position, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// WithToken adds the offending token to the error.
func (e *Error) WithToken(token string) *Error {
	e.Token = token
	return e
}

// IsSyntaxError reports whether err is a goalgebra syntax error.
func IsSyntaxError(err error) bool {
	e, ok := err.(*Error)
	return ok && e.Code.Kind() == KindSyntax
}

// IsEvaluationError reports whether err is a goalgebra evaluation error.
func IsEvaluationError(err error) bool {
	e, ok := err.(*Error)
	return ok && e.Code.Kind() == KindEvaluation
}

package calc

import "fmt"

// Kind classifies an evaluation failure.
type Kind int

const (
	// InvalidCharacter means a character that cannot start any token.
	InvalidCharacter Kind = iota + 1
	// InvalidNumberFormat means a run of digits and dots that is not a number, e.g. "1.2.3".
	InvalidNumberFormat
	// MismatchedParentheses means an unmatched "(" or ")".
	MismatchedParentheses
	// InsufficientOperands means an operator was applied with fewer than two operands.
	InsufficientOperands
	// DivisionByZero means a "/" whose right operand is exactly zero.
	DivisionByZero
	// InvalidExpressionFormat means the operand stack did not end with exactly one value.
	InvalidExpressionFormat
)

var kinds = [...]string{
	InvalidCharacter:        "InvalidCharacter",
	InvalidNumberFormat:     "InvalidNumberFormat",
	MismatchedParentheses:   "MismatchedParentheses",
	InsufficientOperands:    "InsufficientOperands",
	DivisionByZero:          "DivisionByZero",
	InvalidExpressionFormat: "InvalidExpressionFormat",
}

func (k Kind) String() string {
	if k > 0 && int(k) < len(kinds) {
		return kinds[k]
	}
	return "Unknown"
}

// IsArithmetic reports whether the failure happened while computing rather
// than while reading the expression.
func (k Kind) IsArithmetic() bool {
	return k == DivisionByZero
}

// Error represents a failure to evaluate an expression.
type Error struct {
	Kind    Kind
	Message string
	// Found is the offending character, number literal or operator, if any.
	Found string
	// Missing is '(' or ')' for MismatchedParentheses.
	Missing rune
	Pos     Position
}

// Sentinels for errors.Is. Only the Kind is compared.
var (
	ErrInvalidCharacter        = &Error{Kind: InvalidCharacter}
	ErrInvalidNumberFormat     = &Error{Kind: InvalidNumberFormat}
	ErrMismatchedParentheses   = &Error{Kind: MismatchedParentheses}
	ErrInsufficientOperands    = &Error{Kind: InsufficientOperands}
	ErrDivisionByZero          = &Error{Kind: DivisionByZero}
	ErrInvalidExpressionFormat = &Error{Kind: InvalidExpressionFormat}
)

// Error returns the string representation of the error.
func (e *Error) Error() string {
	return fmt.Sprintf("%s at line %d, char %d", e.Message, e.Pos.Line+1, e.Pos.Column+1)
}

// Is reports whether target is an *Error of the same Kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

func newInvalidCharacter(tok Token) *Error {
	return &Error{
		Kind:    InvalidCharacter,
		Message: fmt.Sprintf("invalid character in expression: '%s'", tok.Lexeme),
		Found:   tok.Lexeme,
		Pos:     tok.Position,
	}
}

func newInvalidNumber(tok Token) *Error {
	return &Error{
		Kind:    InvalidNumberFormat,
		Message: fmt.Sprintf("invalid number format in expression: '%s'", tok.Lexeme),
		Found:   tok.Lexeme,
		Pos:     tok.Position,
	}
}

func newMismatched(missing rune, pos Position) *Error {
	msg := "mismatched parentheses: missing closing parenthesis"
	if missing == '(' {
		msg = "mismatched parentheses: missing opening parenthesis for a closing one"
	}
	return &Error{
		Kind:    MismatchedParentheses,
		Message: msg,
		Found:   string(missing),
		Missing: missing,
		Pos:     pos,
	}
}

func newInsufficientOperands(op Token) *Error {
	return &Error{
		Kind:    InsufficientOperands,
		Message: fmt.Sprintf("insufficient operands for operator %s", op.Lexeme),
		Found:   op.Lexeme,
		Pos:     op.Position,
	}
}

func newInvalidFormat(pos Position) *Error {
	return &Error{
		Kind:    InvalidExpressionFormat,
		Message: "invalid expression format, check operators and operands",
		Pos:     pos,
	}
}

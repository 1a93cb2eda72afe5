package calc

import "fmt"

// Operator represents one of the binary arithmetic operators.
type Operator int

// Types of operators
const (
	Add      Operator = iota // +
	Subtract                 // -
	Multiply                 // *
	Divide                   // /
)

var operatorSymbols = [...]string{
	Add:      "+",
	Subtract: "-",
	Multiply: "*",
	Divide:   "/",
}

// precedence ranks operators; higher binds tighter. All operators are
// left-associative.
var precedence = [...]int{
	Add:      1,
	Subtract: 1,
	Multiply: 2,
	Divide:   2,
}

// operatorOf maps an ADDOP/MULOP token to its Operator.
func operatorOf(tok Token) (Operator, bool) {
	switch tok.Lexeme {
	case "+":
		return Add, true
	case "-":
		return Subtract, true
	case "*":
		return Multiply, true
	case "/":
		return Divide, true
	}
	return 0, false
}

// String returns the operator symbol.
func (op Operator) String() string {
	if op >= 0 && op < Operator(len(operatorSymbols)) {
		return operatorSymbols[op]
	}
	return ""
}

// Precedence returns the binding strength of the operator.
func (op Operator) Precedence() int {
	return precedence[op]
}

// Apply combines lhs and rhs. Division by exactly zero is reported as
// a DivisionByZero error.
func (op Operator) Apply(lhs, rhs float64) (float64, error) {
	switch op {
	case Add:
		return lhs + rhs, nil
	case Subtract:
		return lhs - rhs, nil
	case Multiply:
		return lhs * rhs, nil
	case Divide:
		if rhs == 0 {
			return 0, &Error{Kind: DivisionByZero, Message: "division by zero is not allowed"}
		}
		return lhs / rhs, nil
	}
	return 0, &Error{Kind: InvalidExpressionFormat, Message: fmt.Sprintf("unknown operator %d", int(op))}
}

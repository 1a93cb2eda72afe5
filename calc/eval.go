// Package calc evaluates infix arithmetic expressions over decimal numbers
// with + - * / and parentheses.
package calc

import (
	"errors"
	"strconv"
	"strings"
)

// evaluator computes the value of one infix arithmetic expression with an
// operand stack and an operator stack in a single left-to-right pass. It is
// used once and discarded.
type evaluator struct {
	scanner   *Scanner
	operands  []float64
	operators []Token
}

func newEvaluator(scanner *Scanner) *evaluator {
	return &evaluator{
		scanner:   scanner,
		operands:  []float64{},
		operators: []Token{},
	}
}

// Evaluate evaluates an arithmetic expression such as "(2+3)*4.5".
// An expression made only of whitespace evaluates to 0. Numbers are written
// with ASCII digits; other Unicode digits are reported as InvalidNumberFormat.
// Failures are returned as *Error.
func Evaluate(s string) (float64, error) {
	return newEvaluator(NewScanner(strings.NewReader(s))).evaluate()
}

// evaluate consumes the scanner and returns the value of the expression.
func (e *evaluator) evaluate() (float64, error) {
	tok := e.scanner.Scan()
	if tok.TokenType == EOF {
		return 0, nil
	}

	for ; tok.TokenType != EOF; tok = e.scanner.Scan() {
		switch tok.TokenType {
		case NUM:
			value, err := parseNumber(tok)
			if err != nil {
				return 0, err
			}
			e.operands = append(e.operands, value)

		case LPAREN:
			e.operators = append(e.operators, tok)

		case RPAREN:
			if err := e.closeParen(tok); err != nil {
				return 0, err
			}

		case ADDOP, MULOP:
			if err := e.pushOperator(tok); err != nil {
				return 0, err
			}

		default:
			return 0, newInvalidCharacter(tok)
		}
	}

	// Apply whatever is left; an open parenthesis here was never closed.
	for len(e.operators) > 0 {
		top := e.pop()
		if top.TokenType == LPAREN {
			return 0, newMismatched(')', top.Position)
		}
		if err := e.apply(top); err != nil {
			return 0, err
		}
	}

	if len(e.operands) != 1 {
		return 0, newInvalidFormat(tok.Position)
	}
	return e.operands[0], nil
}

// parseNumber converts a NUM token. Magnitudes beyond float64 become ±Inf.
func parseNumber(tok Token) (float64, error) {
	value, err := strconv.ParseFloat(tok.Lexeme, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, newInvalidNumber(tok)
	}
	return value, nil
}

// closeParen applies operators down to the matching "(" and discards it.
func (e *evaluator) closeParen(tok Token) error {
	for len(e.operators) > 0 && e.top().TokenType != LPAREN {
		if err := e.apply(e.pop()); err != nil {
			return err
		}
	}
	if len(e.operators) == 0 {
		return newMismatched('(', tok.Position)
	}
	e.pop()
	return nil
}

// pushOperator reduces every stacked operator that binds at least as tightly
// as tok, then pushes tok.
func (e *evaluator) pushOperator(tok Token) error {
	current, _ := operatorOf(tok)
	for len(e.operators) > 0 && e.top().TokenType.IsOperator() {
		stacked, _ := operatorOf(e.top())
		if stacked.Precedence() < current.Precedence() {
			break
		}
		if err := e.apply(e.pop()); err != nil {
			return err
		}
	}
	e.operators = append(e.operators, tok)
	return nil
}

// apply pops two operands, combines them with the operator and pushes the
// result. The operand popped first is the right-hand side.
func (e *evaluator) apply(tok Token) error {
	n := len(e.operands)
	if n < 2 {
		return newInsufficientOperands(tok)
	}
	rhs, lhs := e.operands[n-1], e.operands[n-2]
	e.operands = e.operands[:n-2]

	op, _ := operatorOf(tok)
	value, err := op.Apply(lhs, rhs)
	if err != nil {
		var evalErr *Error
		if errors.As(err, &evalErr) {
			evalErr.Pos = tok.Position
		}
		return err
	}
	e.operands = append(e.operands, value)
	return nil
}

func (e *evaluator) top() Token {
	return e.operators[len(e.operators)-1]
}

func (e *evaluator) pop() Token {
	tok := e.top()
	e.operators = e.operators[:len(e.operators)-1]
	return tok
}

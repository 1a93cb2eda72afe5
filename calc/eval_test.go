package calc

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name string
		expr string
		want float64
	}{
		{name: "xpass: precedence", expr: "2+3*4", want: 14},
		{name: "xpass: parentheses override precedence", expr: "(2+3)*4", want: 20},
		{name: "xpass: empty", expr: "", want: 0},
		{name: "xpass: only whitespace", expr: " \t\r\n ", want: 0},
		{name: "xpass: single number", expr: "42", want: 42},
		{name: "xpass: leading dot", expr: ".9", want: 0.9},
		{name: "xpass: trailing dot", expr: "3.", want: 3},
		{name: "xpass: decimals", expr: "1.5*4", want: 6},
		{name: "xpass: subtraction is left associative", expr: "8-3-2", want: 3},
		{name: "xpass: division is left associative", expr: "16/4/2", want: 2},
		{name: "xpass: mixed precedence", expr: "2*3+4*5", want: 26},
		{name: "xpass: subtract product", expr: "10-2*3", want: 4},
		{name: "xpass: nested parentheses", expr: "2*(3+(4-1))", want: 12},
		{name: "xpass: redundant parentheses", expr: "((7))", want: 7},
		{name: "xpass: spaces between tokens", expr: " ( 2 + 3 ) * 4 ", want: 20},
		{name: "xpass: spaces inside a number", expr: "1 2+1 . 5", want: 13.5},
		{name: "xpass: multi-line", expr: "1 +\n2 *\r\n3", want: 7},
		{name: "xpass: fractional result", expr: "7/2", want: 3.5},
		{name: "xpass: negative result", expr: "2-5", want: -3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Evaluate(tt.expr)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestEvaluate_Errors(t *testing.T) {
	tests := []struct {
		name    string
		expr    string
		kind    Kind
		found   string
		missing rune
		pos     Position
	}{
		{name: "xfail: division by zero", expr: "10/0", kind: DivisionByZero, pos: Position{Column: 2}},
		{name: "xfail: division by zero expression", expr: "5/(3-3)", kind: DivisionByZero, pos: Position{Column: 1}},
		{name: "xfail: division by negative zero", expr: "1/(0*(0-1))", kind: DivisionByZero, pos: Position{Column: 1}},
		{name: "xfail: dangling operator", expr: "2+", kind: InsufficientOperands, found: "+", pos: Position{Column: 1}},
		{name: "xfail: unary minus", expr: "-5", kind: InsufficientOperands, found: "-"},
		{name: "xfail: double operator", expr: "2**3", kind: InsufficientOperands, found: "*", pos: Position{Column: 1}},
		{name: "xfail: missing closing", expr: "(1+2", kind: MismatchedParentheses, found: ")", missing: ')'},
		{name: "xfail: missing opening", expr: "1+2)", kind: MismatchedParentheses, found: "(", missing: '(', pos: Position{Column: 3}},
		{name: "xfail: lone closing", expr: ")", kind: MismatchedParentheses, found: "(", missing: '('},
		{name: "xfail: two dots", expr: "1.2.3+1", kind: InvalidNumberFormat, found: "1.2.3"},
		{name: "xfail: arabic-indic digit", expr: "1+٣", kind: InvalidNumberFormat, found: "٣", pos: Position{Column: 2}},
		{name: "xfail: mixed digit systems", expr: "1٣*2", kind: InvalidNumberFormat, found: "1٣"},
		{name: "xfail: lone dot", expr: "2+.", kind: InvalidNumberFormat, found: ".", pos: Position{Column: 2}},
		{name: "xfail: letter", expr: "2 # 3", kind: InvalidCharacter, found: "#", pos: Position{Column: 2}},
		{name: "xfail: exponent", expr: "2^3", kind: InvalidCharacter, found: "^", pos: Position{Column: 1}},
		{name: "xfail: variable", expr: "x+1", kind: InvalidCharacter, found: "x"},
		{name: "xfail: nul character", expr: "1+\x00", kind: InvalidCharacter, found: "\x00", pos: Position{Column: 2}},
		{name: "xfail: empty parentheses", expr: "()", kind: InvalidExpressionFormat, pos: Position{Column: 2}},
		{name: "xfail: adjacent groups", expr: "(1)(2)", kind: InvalidExpressionFormat, pos: Position{Column: 6}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Evaluate(tt.expr)
			require.Error(t, err)

			var evalErr *Error
			require.True(t, errors.As(err, &evalErr), "expected *Error, got %T", err)
			assert.Equal(t, tt.kind, evalErr.Kind, evalErr.Error())
			assert.Equal(t, tt.found, evalErr.Found)
			assert.Equal(t, tt.missing, evalErr.Missing)
			assert.Equal(t, tt.pos, evalErr.Pos)
		})
	}
}

func TestEvaluate_Sentinels(t *testing.T) {
	_, err := Evaluate("10/0")
	assert.ErrorIs(t, err, ErrDivisionByZero)
	assert.NotErrorIs(t, err, ErrInvalidExpressionFormat)

	_, err = Evaluate("(1+2")
	assert.ErrorIs(t, err, ErrMismatchedParentheses)

	_, err = Evaluate("2+")
	assert.True(t, errors.Is(err, ErrInsufficientOperands) || errors.Is(err, ErrInvalidExpressionFormat))
}

func TestEvaluate_Overflow(t *testing.T) {
	huge := "1"
	for i := 0; i < 400; i++ {
		huge += "0"
	}
	got, err := Evaluate(huge)
	require.NoError(t, err)
	assert.True(t, math.IsInf(got, 1))
}

func TestError_Message(t *testing.T) {
	_, err := Evaluate("2 $ 2")
	require.Error(t, err)
	assert.Equal(t, "invalid character in expression: '$' at line 1, char 3", err.Error())

	_, err = Evaluate("(1+2")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing closing parenthesis")

	_, err = Evaluate("1+2)")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing opening parenthesis")
}

func TestKind(t *testing.T) {
	assert.Equal(t, "DivisionByZero", DivisionByZero.String())
	assert.Equal(t, "Unknown", Kind(0).String())
	assert.True(t, DivisionByZero.IsArithmetic())
	for _, k := range []Kind{InvalidCharacter, InvalidNumberFormat, MismatchedParentheses, InsufficientOperands, InvalidExpressionFormat} {
		assert.False(t, k.IsArithmetic(), k.String())
	}
}

func TestEvaluate_Concurrent(t *testing.T) {
	done := make(chan error)
	for i := 0; i < 16; i++ {
		go func() {
			for j := 0; j < 100; j++ {
				got, err := Evaluate("(1+2)*3-4/2")
				if err != nil {
					done <- err
					return
				}
				if got != 7 {
					done <- errors.New("unexpected result")
					return
				}
			}
			done <- nil
		}()
	}
	for i := 0; i < 16; i++ {
		require.NoError(t, <-done)
	}
}

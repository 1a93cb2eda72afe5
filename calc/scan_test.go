package calc

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func scanAll(s string) []Token {
	scanner := NewScanner(strings.NewReader(s))
	var toks []Token
	for {
		tok := scanner.Scan()
		toks = append(toks, tok)
		if tok.TokenType == EOF {
			return toks
		}
	}
}

func TestScanner_Scan(t *testing.T) {
	got := scanAll("(12.5 +x)\n* .3/")
	want := []Token{
		{TokenType: LPAREN, Lexeme: "(", Position: Position{Line: 0, Column: 0}},
		{TokenType: NUM, Lexeme: "12.5", Position: Position{Line: 0, Column: 1}},
		{TokenType: ADDOP, Lexeme: "+", Position: Position{Line: 0, Column: 6}},
		{TokenType: ILLEGAL, Lexeme: "x", Position: Position{Line: 0, Column: 7}},
		{TokenType: RPAREN, Lexeme: ")", Position: Position{Line: 0, Column: 8}},
		{TokenType: MULOP, Lexeme: "*", Position: Position{Line: 1, Column: 0}},
		{TokenType: NUM, Lexeme: ".3", Position: Position{Line: 1, Column: 2}},
		{TokenType: MULOP, Lexeme: "/", Position: Position{Line: 1, Column: 4}},
		{TokenType: EOF, Lexeme: "EOF", Position: Position{Line: 1, Column: 5}},
	}
	assert.Equal(t, want, got)
}

func TestScanner_NumberAcrossWhitespace(t *testing.T) {
	got := scanAll("1 0\t.5 )")
	assert.Equal(t, NUM, got[0].TokenType)
	assert.Equal(t, "10.5", got[0].Lexeme)
	assert.Equal(t, RPAREN, got[1].TokenType)
	assert.Equal(t, EOF, got[2].TokenType)
}

func TestScanner_LineEndings(t *testing.T) {
	got := scanAll("1\r\n+\r2\r")
	want := []Token{
		{TokenType: NUM, Lexeme: "1", Position: Position{Line: 0, Column: 0}},
		{TokenType: ADDOP, Lexeme: "+", Position: Position{Line: 1, Column: 0}},
		{TokenType: NUM, Lexeme: "2", Position: Position{Line: 2, Column: 0}},
		{TokenType: EOF, Lexeme: "EOF", Position: Position{Line: 3, Column: 0}},
	}
	assert.Equal(t, want, got)
}

func TestScanner_EOFIsSticky(t *testing.T) {
	scanner := NewScanner(strings.NewReader("7"))
	assert.Equal(t, NUM, scanner.Scan().TokenType)
	assert.Equal(t, EOF, scanner.Scan().TokenType)
	assert.Equal(t, EOF, scanner.Scan().TokenType)
}

func TestTokenType_String(t *testing.T) {
	assert.Equal(t, "(", LPAREN.String())
	assert.Equal(t, "NUM", NUM.String())
	assert.Equal(t, "", TokenType(99).String())
	assert.True(t, ADDOP.IsOperator())
	assert.True(t, MULOP.IsOperator())
	assert.False(t, LPAREN.IsOperator())
}

func TestOperator_Apply(t *testing.T) {
	tests := []struct {
		op   Operator
		want float64
	}{
		{Add, 8},
		{Subtract, 4},
		{Multiply, 12},
		{Divide, 3},
	}
	for _, tt := range tests {
		t.Run(tt.op.String(), func(t *testing.T) {
			got, err := tt.op.Apply(6, 2)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := Divide.Apply(1, 0)
	assert.ErrorIs(t, err, ErrDivisionByZero)

	_, err = Operator(9).Apply(1, 2)
	assert.ErrorIs(t, err, ErrInvalidExpressionFormat)
	assert.Greater(t, Multiply.Precedence(), Add.Precedence())
	assert.Equal(t, Divide.Precedence(), Multiply.Precedence())
	assert.Equal(t, Subtract.Precedence(), Add.Precedence())
}

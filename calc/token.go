package calc

// TokenType represents a lexical token.
type TokenType int

// Expression tokens
const (
	// Special tokens
	ILLEGAL TokenType = iota
	EOF

	// Symbols
	LPAREN // (
	RPAREN // )

	// Operators
	ADDOP // + | -
	MULOP // * | /

	// Literals
	NUM
)

// Position specifies the line and character position of a token.
// The Column and Line are both zero-based indexes.
type Position struct {
	Line   int
	Column int
}

type Token struct {
	TokenType TokenType
	Lexeme    string
	Position  Position
}

var tokens = [...]string{
	ILLEGAL: "ILLEGAL",
	EOF:     "EOF",

	// Symbols
	LPAREN: "(",
	RPAREN: ")",

	// Operators
	ADDOP: "ADDOP",
	MULOP: "MULOP",

	// Literals
	NUM: "NUM",
}

// String returns the string representation of the token.
func (tok TokenType) String() string {
	if tok >= 0 && tok < TokenType(len(tokens)) {
		return tokens[tok]
	}
	return ""
}

// IsOperator reports whether the token is one of + - * /.
func (tok TokenType) IsOperator() bool {
	return tok == ADDOP || tok == MULOP
}

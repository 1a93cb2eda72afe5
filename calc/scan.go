package calc

import (
	"bufio"
	"bytes"
	"io"
	"unicode"
)

// eof is returned by read once the reader is exhausted. A NUL rune in the
// input is an ordinary (illegal) character, so the sentinel lies outside the
// valid rune range.
var eof = rune(-1)

// Scanner represents a lexical scanner for arithmetic expressions.
type Scanner struct {
	Reader      *bufio.Reader
	position    Position
	eof         bool
	bufferIndex int
	bufferSize  int
	buffer      [4]struct {
		ch       rune
		position Position
	}
}

// isWhitespace matches the characters stripped from an expression before
// evaluation.
func isWhitespace(ch rune) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\v' || ch == '\f' || ch == '\r'
}

// isDigit accepts any Unicode decimal digit. Only ASCII digits parse as a
// number, so "٣" scans as a number run and fails with InvalidNumberFormat.
func isDigit(ch rune) bool {
	return unicode.IsDigit(ch)
}

// NewScanner returns a new instance of Scanner.
func NewScanner(reader io.Reader) *Scanner {
	return &Scanner{
		Reader: bufio.NewReader(reader),
	}
}

// read reads the next rune from the bufferred reader.
// Returns eof if an error occurs (or io.EOF is returned).
func (s *Scanner) read() (rune, Position) {
	// If we have unread characters then read them off the buffer first.
	if s.bufferSize > 0 {
		s.bufferSize--
		return s.curr()
	}

	// Read next rune from underlying reader.
	// Any error (including io.EOF) should return as EOF.
	ch, _, err := s.Reader.ReadRune()
	if err != nil {
		ch = eof
	} else if ch == '\r' {
		// "\r\n" and a lone "\r" both end a line.
		if next, _, err := s.Reader.ReadRune(); err == nil && next != '\n' {
			_ = s.Reader.UnreadRune()
		}
		ch = '\n'
	}

	// Save character and position to the buffer.
	s.bufferIndex = (s.bufferIndex + 1) % len(s.buffer)
	buffer := &s.buffer[s.bufferIndex]
	buffer.ch, buffer.position = ch, s.position

	// Update position.
	// Only count EOF once.
	if ch == '\n' {
		s.position.Line++
		s.position.Column = 0
	} else if !s.eof {
		s.position.Column++
	}

	if ch == eof {
		s.eof = true
	}

	return s.curr()
}

// curr returns the last read character and position.
func (s *Scanner) curr() (ch rune, pos Position) {
	bufferIndex := (s.bufferIndex - s.bufferSize + len(s.buffer)) % len(s.buffer)
	buffer := &s.buffer[bufferIndex]
	return buffer.ch, buffer.position
}

// Unscan pushes the previously read rune back onto the buffer.
func (s *Scanner) Unscan() {
	s.bufferSize++
}

// Scan returns the next token. Whitespace between tokens is skipped.
func (s *Scanner) Scan() Token {
	ch, pos := s.read()
	for isWhitespace(ch) {
		ch, pos = s.read()
	}

	// A digit or a dot starts a number; ".9" is the same as "0.9".
	if isDigit(ch) || ch == '.' {
		s.Unscan()
		return s.scanNum()
	}

	// Otherwise read the individual character.
	switch ch {
	case eof:
		return Token{TokenType: EOF, Lexeme: "EOF", Position: pos}

	case '+', '-':
		return Token{TokenType: ADDOP, Lexeme: string(ch), Position: pos}

	case '*', '/':
		return Token{TokenType: MULOP, Lexeme: string(ch), Position: pos}

	case '(':
		return Token{TokenType: LPAREN, Lexeme: string(ch), Position: pos}

	case ')':
		return Token{TokenType: RPAREN, Lexeme: string(ch), Position: pos}
	}

	return Token{TokenType: ILLEGAL, Lexeme: string(ch), Position: pos}
}

// scanNum consumes a series of digits and dots. Whitespace is insignificant
// anywhere in an expression, so "1 2" is the number 12. Whether the run is a
// well-formed number is decided by the evaluator.
func (s *Scanner) scanNum() Token {
	var buf bytes.Buffer
	ch, pos := s.read()

	for {
		if isWhitespace(ch) {
			ch, _ = s.read()
			continue
		}
		if !isDigit(ch) && ch != '.' {
			s.Unscan()
			break
		}
		_, _ = buf.WriteRune(ch)
		ch, _ = s.read()
	}

	return Token{TokenType: NUM, Lexeme: buf.String(), Position: pos}
}

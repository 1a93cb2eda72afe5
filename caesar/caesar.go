// Package caesar implements a Caesar substitution cipher over the Latin and
// Cyrillic alphabets. Letter case is preserved and characters outside the
// alphabets pass through unchanged.
package caesar

import (
	"strings"
	"unicode/utf8"
)

// Candidate is one distinct result of a brute-force decryption.
type Candidate struct {
	Text  string
	Shift int
}

// Candidates is ordered by ascending Shift. Texts are unique.
type Candidates []Candidate

// Shift returns the smallest shift that produced text.
func (c Candidates) Shift(text string) (int, bool) {
	for _, candidate := range c {
		if candidate.Text == text {
			return candidate.Shift, true
		}
	}
	return 0, false
}

// Texts returns the candidate texts in order.
func (c Candidates) Texts() []string {
	texts := make([]string, 0, len(c))
	for _, candidate := range c {
		texts = append(texts, candidate.Text)
	}
	return texts
}

// Encrypt shifts every letter of text forward by shift positions within its
// own alphabet. Negative shifts move backwards.
func Encrypt(text string, shift int) string {
	return rotate(text, shift, 1)
}

// Decrypt reverses Encrypt for the same shift.
func Decrypt(text string, shift int) string {
	return rotate(text, shift, -1)
}

// BruteForce decrypts text with every shift in [0, MaxShift) and returns
// each distinct result once, paired with the smallest shift producing it.
func BruteForce(text string) Candidates {
	candidates := Candidates{}
	seen := make(map[string]struct{}, MaxShift)
	for shift := 0; shift < MaxShift; shift++ {
		decrypted := Decrypt(text, shift)
		if _, ok := seen[decrypted]; ok {
			continue
		}
		seen[decrypted] = struct{}{}
		candidates = append(candidates, Candidate{Text: decrypted, Shift: shift})
	}
	return candidates
}

// rotate moves letters by direction*shift. The shift is reduced modulo the
// letter's alphabet length before the direction is applied, so negation
// never overflows.
func rotate(text string, shift, direction int) string {
	if text == "" || shift == 0 {
		return text
	}

	var b strings.Builder
	b.Grow(len(text))
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		l, ok := letters[r]
		if !ok {
			b.WriteString(text[i : i+size])
			i += size
			continue
		}

		n := l.alphabet.Len()
		offset := direction * (shift % n)
		index := (l.index + offset) % n
		if index < 0 {
			index += n
		}
		b.WriteRune(l.alphabet.runes[index])
		i += size
	}
	return b.String()
}

package caesar

// Alphabet is an ordered, fixed sequence of letters used for cyclic
// substitution. Its letters cannot be changed after construction.
type Alphabet struct {
	runes []rune
}

// MaxShift is the number of shifts tried by BruteForce: the length of the
// longest alphabet.
const MaxShift = 33

// Supported alphabets, in lookup order.
var (
	latinUpper    = Alphabet{runes: []rune("ABCDEFGHIJKLMNOPQRSTUVWXYZ")}
	latinLower    = Alphabet{runes: []rune("abcdefghijklmnopqrstuvwxyz")}
	cyrillicUpper = Alphabet{runes: []rune("АБВГДЕЁЖЗИЙКЛМНОПРСТУФХЦЧШЩЪЫЬЭЮЯ")}
	cyrillicLower = Alphabet{runes: []rune("абвгдеёжзийклмнопрстуфхцчшщъыьэюя")}

	alphabets = []Alphabet{latinUpper, latinLower, cyrillicUpper, cyrillicLower}
)

// letter locates a rune inside one of the alphabets.
type letter struct {
	alphabet Alphabet
	index    int
}

// letters is built once and only read afterwards.
var letters = buildIndex(alphabets)

func buildIndex(alphabets []Alphabet) map[rune]letter {
	index := make(map[rune]letter)
	for _, a := range alphabets {
		for i, r := range a.runes {
			// First match wins.
			if _, exists := index[r]; !exists {
				index[r] = letter{alphabet: a, index: i}
			}
		}
	}
	return index
}

// Alphabets returns the supported alphabets in the order a character is
// matched against them.
func Alphabets() []Alphabet {
	return append([]Alphabet(nil), alphabets...)
}

// AlphabetOf returns the alphabet containing r. It reports false when r is
// not a supported letter.
func AlphabetOf(r rune) (Alphabet, bool) {
	l, ok := letters[r]
	return l.alphabet, ok
}

// Len returns the number of letters in the alphabet.
func (a Alphabet) Len() int {
	return len(a.runes)
}

// Letters returns a copy of the letters in order.
func (a Alphabet) Letters() []rune {
	return append([]rune(nil), a.runes...)
}

// String returns the letters as a string.
func (a Alphabet) String() string {
	return string(a.runes)
}

// Contains reports whether r belongs to the alphabet.
func (a Alphabet) Contains(r rune) bool {
	return a.Index(r) >= 0
}

// Index returns the position of r in the alphabet, or -1.
func (a Alphabet) Index(r rune) int {
	for i, c := range a.runes {
		if c == r {
			return i
		}
	}
	return -1
}

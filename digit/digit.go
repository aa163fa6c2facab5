// Package digit defines the ten decimal digits along with their
// spelled-out English names.
package digit

import (
	"errors"
	"fmt"

	"fortio.org/safecast"
)

// Token is one of the ten decimal digits.
type Token uint8

const (
	Zero Token = iota
	One
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
)

var (
	ErrOutOfRange = errors.New("digit out of range")
	ErrNoMatch    = errors.New("no matching digit")
)

var words = [...]string{
	Zero:  "zero",
	One:   "one",
	Two:   "two",
	Three: "three",
	Four:  "four",
	Five:  "five",
	Six:   "six",
	Seven: "seven",
	Eight: "eight",
	Nine:  "nine",
}

// All returns the ten tokens in value order.
func All() []Token {
	return []Token{Zero, One, Two, Three, Four, Five, Six, Seven, Eight, Nine}
}

// Value returns the integer value of t.
func (t Token) Value() int {
	return int(t)
}

// Word returns the spelled-out name of t.
func (t Token) Word() string {
	if !t.valid() {
		return ""
	}
	return words[t]
}

// WordLen returns the length in bytes of the spelled-out name of t.
func (t Token) WordLen() int {
	return len(t.Word())
}

func (t Token) String() string {
	if !t.valid() {
		return fmt.Sprintf("Token(%d)", uint8(t))
	}
	return words[t]
}

func (t Token) valid() bool {
	return t <= Nine
}

// FromValue returns the token for n.
// It returns ErrOutOfRange if n is not in [0, 9].
func FromValue(n int) (Token, error) {
	v, err := safecast.Conv[uint8](n)
	if err != nil || Token(v) > Nine {
		return 0, fmt.Errorf("%w: %d", ErrOutOfRange, n)
	}
	return Token(v), nil
}

// FromWord returns the token whose name is exactly s. The match is case
// sensitive and no surrounding whitespace is allowed.
func FromWord(s string) (Token, error) {
	for t, w := range words {
		if s == w {
			return Token(t), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrNoMatch, s)
}

// FromByte reports the token for a literal '0'-'9' character.
func FromByte(c byte) (Token, bool) {
	if c < '0' || c > '9' {
		return 0, false
	}
	return Token(c - '0'), true
}

// Parse accepts either a single literal digit or a spelled-out name.
func Parse(s string) (Token, error) {
	if len(s) == 1 {
		if t, ok := FromByte(s[0]); ok {
			return t, nil
		}
	}
	return FromWord(s)
}

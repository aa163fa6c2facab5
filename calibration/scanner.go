// Package calibration recovers trebuchet calibration values: the first
// and last digit of a line, where a digit may be written as 0-9 or
// spelled out as zero through nine.
package calibration

import (
	"fmt"

	"github.com/maisem/aoc2023/digit"
)

// Result holds the leftmost and rightmost digits of a line.
type Result struct {
	First, Last digit.Token
}

// Value returns the two-digit number formed by r.
func (r Result) Value() int {
	return r.First.Value()*10 + r.Last.Value()
}

func (r Result) String() string {
	return fmt.Sprintf("(%v, %v)", r.First, r.Last)
}

// Scanner finds the calibration digits of a line. The zero value
// recognizes both literal digits and spelled-out words.
type Scanner struct {
	// DigitsOnly ignores spelled-out words.
	DigitsOnly bool
}

// Scan is Scanner{}.Scan.
func Scan(line string) (Result, bool) {
	return Scanner{}.Scan(line)
}

// Scan returns the leftmost and rightmost digits of line. A line with a
// single digit returns that digit twice. It reports false if line
// holds no digit at all.
func (s Scanner) Scan(line string) (Result, bool) {
	first, at, ok := s.first(line)
	if !ok {
		return Result{}, false
	}
	// Every occurrence starting after the leftmost one lies wholly in
	// line[at+1:], including words overlapping it ("oneight").
	last, ok := s.last(line[at+1:])
	if !ok {
		last = first
	}
	return Result{First: first, Last: last}, true
}

// first returns the leftmost digit in line and the offset it starts at.
func (s Scanner) first(line string) (digit.Token, int, bool) {
	for i := 0; i < len(line); i++ {
		if t, ok := digit.FromByte(line[i]); ok {
			return t, i, true
		}
		if s.DigitsOnly {
			continue
		}
		for _, n := range digit.Starting(line[i]) {
			if i+n > len(line) {
				continue
			}
			if t, err := digit.FromWord(line[i : i+n]); err == nil {
				return t, i, true
			}
		}
	}
	return 0, 0, false
}

// last returns the rightmost digit in line.
func (s Scanner) last(line string) (digit.Token, bool) {
	for j := len(line); j > 0; j-- {
		c := line[j-1]
		if t, ok := digit.FromByte(c); ok {
			return t, true
		}
		if s.DigitsOnly {
			continue
		}
		for _, n := range digit.Ending(c) {
			if j-n < 0 {
				continue
			}
			if t, err := digit.FromWord(line[j-n : j]); err == nil {
				return t, true
			}
		}
	}
	return 0, false
}

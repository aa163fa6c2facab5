package calibration

import (
	"github.com/maisem/aoc2023"
)

// LineValue returns the calibration value of line, or 0 if the line
// has no digit.
func (s Scanner) LineValue(line string) int {
	r, ok := s.Scan(line)
	if !ok {
		return 0
	}
	return r.Value()
}

// Sum returns the sum of the calibration values of lines. Lines are
// scanned in parallel.
func (s Scanner) Sum(lines []string) int {
	return aoc.ParallelMapFold(lines, s.LineValue, aoc.Add[int], 0)
}

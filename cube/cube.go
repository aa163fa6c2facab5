// Package cube parses cube conundrum games: an elf repeatedly draws
// handfuls of coloured cubes from a bag and shows them.
package cube

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"golang.org/x/exp/maps"
)

var ErrMalformed = errors.New("malformed game")

// Set maps a colour to a number of cubes.
type Set map[string]int

// DefaultBag is the bag the elf asks about.
var DefaultBag = Set{"red": 12, "green": 13, "blue": 14}

// Power returns the product of the red, green and blue counts.
func (s Set) Power() int {
	return s["red"] * s["green"] * s["blue"]
}

func (s Set) String() string {
	colours := maps.Keys(s)
	slices.Sort(colours)
	var sb strings.Builder
	for i, c := range colours {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%d %s", s[c], c)
	}
	return sb.String()
}

// Game is one line of the record.
type Game struct {
	ID    int
	Draws []Set
}

// Possible reports whether every draw of g fits in bag. Colours missing
// from bag hold no cubes.
func (g Game) Possible(bag Set) bool {
	for _, d := range g.Draws {
		for c, n := range d {
			if n > bag[c] {
				return false
			}
		}
	}
	return true
}

// MinBag returns the fewest cubes of each colour that make g possible.
func (g Game) MinBag() Set {
	out := Set{}
	for _, d := range g.Draws {
		for c, n := range d {
			out[c] = max(out[c], n)
		}
	}
	return out
}

// ParseGame parses a line like
//
//	Game 1: 3 blue, 4 red; 1 red, 2 green, 6 blue; 2 green
//
// The count may also follow the colour ("blue 3").
func ParseGame(line string) (Game, error) {
	head, rest, ok := strings.Cut(line, ":")
	if !ok {
		return Game{}, fmt.Errorf("%w: missing ':' in %q", ErrMalformed, line)
	}
	idStr, ok := strings.CutPrefix(strings.TrimSpace(head), "Game")
	if !ok {
		return Game{}, fmt.Errorf("%w: bad header %q", ErrMalformed, head)
	}
	id, err := strconv.Atoi(strings.TrimSpace(idStr))
	if err != nil {
		return Game{}, fmt.Errorf("%w: bad id %q", ErrMalformed, idStr)
	}
	g := Game{ID: id}
	for _, draw := range strings.Split(rest, ";") {
		d := Set{}
		for _, cubes := range strings.Split(draw, ",") {
			c, n, err := parseCubes(cubes)
			if err != nil {
				return Game{}, fmt.Errorf("game %d: %w", id, err)
			}
			d[c] += n
		}
		g.Draws = append(g.Draws, d)
	}
	return g, nil
}

func parseCubes(s string) (colour string, n int, err error) {
	f := strings.Fields(s)
	if len(f) != 2 {
		return "", 0, fmt.Errorf("%w: want count and colour, got %q", ErrMalformed, s)
	}
	if n, err := strconv.Atoi(f[0]); err == nil {
		return f[1], n, nil
	}
	if n, err := strconv.Atoi(f[1]); err == nil {
		return f[0], n, nil
	}
	return "", 0, fmt.Errorf("%w: no count in %q", ErrMalformed, s)
}

// LoadBag reads a bag from a TOML file of colour = count pairs.
func LoadBag(path string) (Set, error) {
	bag := Set{}
	if _, err := toml.DecodeFile(path, &bag); err != nil {
		return nil, fmt.Errorf("loading bag: %w", err)
	}
	return bag, nil
}

package cube

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

const sample = `Game 1: 3 blue, 4 red; 1 red, 2 green, 6 blue; 2 green
Game 2: 1 blue, 2 green; 3 green, 4 blue, 1 red; 1 green, 1 blue
Game 3: 8 green, 6 blue, 20 red; 5 blue, 4 red, 13 green; 5 green, 1 red
Game 4: 1 green, 3 red, 6 blue; 3 green, 6 red; 3 green, 15 blue, 14 red
Game 5: 6 red, 1 blue, 3 green; 2 blue, 1 red, 2 green`

func parseSample(t *testing.T) []Game {
	t.Helper()
	var games []Game
	for _, line := range strings.Split(sample, "\n") {
		g, err := ParseGame(line)
		if err != nil {
			t.Fatalf("ParseGame(%q): %v", line, err)
		}
		games = append(games, g)
	}
	return games
}

func TestParseGame(t *testing.T) {
	got, err := ParseGame("Game 12: 3 blue, red 4; 2 green")
	if err != nil {
		t.Fatal(err)
	}
	want := Game{
		ID: 12,
		Draws: []Set{
			{"blue": 3, "red": 4},
			{"green": 2},
		},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParseGame = %+v, want %+v", got, want)
	}
}

func TestParseGameErrors(t *testing.T) {
	for _, line := range []string{
		"",
		"Game 1 3 blue",
		"Round 1: 3 blue",
		"Game x: 3 blue",
		"Game 1: 3",
		"Game 1: three blue",
		"Game 1: 3 blue 4",
	} {
		if _, err := ParseGame(line); !errors.Is(err, ErrMalformed) {
			t.Errorf("ParseGame(%q) err = %v, want ErrMalformed", line, err)
		}
	}
}

func TestPossible(t *testing.T) {
	var sum int
	for _, g := range parseSample(t) {
		if g.Possible(DefaultBag) {
			sum += g.ID
		}
	}
	if sum != 8 {
		t.Errorf("sum of possible IDs = %d, want 8", sum)
	}

	g := Game{ID: 1, Draws: []Set{{"purple": 1}}}
	if g.Possible(DefaultBag) {
		t.Errorf("game with unknown colour is possible")
	}
}

func TestMinBagPower(t *testing.T) {
	wantPowers := []int{48, 12, 1560, 630, 36}
	for i, g := range parseSample(t) {
		if got := g.MinBag().Power(); got != wantPowers[i] {
			t.Errorf("game %d: power = %d, want %d", g.ID, got, wantPowers[i])
		}
	}
	if got := (Game{ID: 1, Draws: []Set{{"red": 5}}}).MinBag().Power(); got != 0 {
		t.Errorf("power without green and blue = %d, want 0", got)
	}
}

func TestSetString(t *testing.T) {
	s := Set{"red": 4, "blue": 3, "green": 1}
	if got, want := s.String(), "3 blue, 1 green, 4 red"; got != want {
		t.Errorf("String = %q, want %q", got, want)
	}
}

func TestLoadBag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bag.toml")
	if err := os.WriteFile(path, []byte("red = 1\ngreen = 2\nblue = 3\n"), 0644); err != nil {
		t.Fatal(err)
	}
	got, err := LoadBag(path)
	if err != nil {
		t.Fatal(err)
	}
	if want := (Set{"red": 1, "green": 2, "blue": 3}); !reflect.DeepEqual(got, want) {
		t.Errorf("LoadBag = %v, want %v", got, want)
	}

	if err := os.WriteFile(path, []byte("red = \"lots\"\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadBag(path); err == nil {
		t.Errorf("LoadBag with string count succeeded")
	}
}

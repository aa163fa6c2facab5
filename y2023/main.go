package main

import (
	_ "embed"

	"github.com/maisem/aoc2023"
	"github.com/maisem/aoc2023/calibration"
	"github.com/maisem/aoc2023/cube"
)

func main() {
	aoc.Run(2023, source, &solver{})
}

//go:embed main.go
var source []byte

type solver struct {
	*aoc.Puzzle
}

/*
want=142

1abc2
pqr3stu8vwx
a1b2c3d4e5f
treb7uchet
*/
func (s solver) D1p1() any {
	return calibration.Scanner{DigitsOnly: true}.Sum(s.Lines())
}

/*
want=281

two1nine
eightwothree
abcone2threexyz
xtwone3four
4nineeightseven2
zoneight234
7pqrstsixteen
*/
func (s solver) D1p2() any {
	var sc calibration.Scanner
	lines := s.Lines()
	for _, l := range lines {
		r, ok := sc.Scan(l)
		s.Debugf("%s: %v %v", l, r, ok)
	}
	return sc.Sum(lines)
}

/*
want=8

Game 1: 3 blue, 4 red; 1 red, 2 green, 6 blue; 2 green
Game 2: 1 blue, 2 green; 3 green, 4 blue, 1 red; 1 green, 1 blue
Game 3: 8 green, 6 blue, 20 red; 5 blue, 4 red, 13 green; 5 green, 1 red
Game 4: 1 green, 3 red, 6 blue; 3 green, 6 red; 3 green, 15 blue, 14 red
Game 5: 6 red, 1 blue, 3 green; 2 blue, 1 red, 2 green
*/
func (s solver) D2p1() any {
	var ids []int
	for _, g := range s.games() {
		if g.Possible(cube.DefaultBag) {
			ids = append(ids, g.ID)
		}
	}
	return aoc.Sum(ids...)
}

// want=2286
func (s solver) D2p2() any {
	var powers []int
	for _, g := range s.games() {
		powers = append(powers, g.MinBag().Power())
	}
	return aoc.Sum(powers...)
}

func (s solver) games() []cube.Game {
	var games []cube.Game
	s.ForLines(func(line string) {
		g, err := cube.ParseGame(line)
		if err != nil {
			s.Log().Fatal(err)
		}
		games = append(games, g)
	})
	return games
}

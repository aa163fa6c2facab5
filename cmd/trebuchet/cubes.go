package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"github.com/maisem/aoc2023/cube"
)

var cubesCmd = &cobra.Command{
	Use:   "cubes [flags] file",
	Short: "Sum the IDs of possible games, or the powers of their minimum bags",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		bagPath, _ := cmd.Flags().GetString("bag")
		power, _ := cmd.Flags().GetBool("power")

		bag := cube.DefaultBag
		if bagPath != "" {
			var err error
			if bag, err = cube.LoadBag(bagPath); err != nil {
				return err
			}
		}
		return runCubes(cmd.OutOrStdout(), args[0], bag, power)
	},
}

func init() {
	cubesCmd.Flags().String("bag", "", "TOML file of colour = count pairs (default 12 red, 13 green, 14 blue)")
	cubesCmd.Flags().Bool("power", false, "sum the power of each game's minimum bag instead")
}

func runCubes(w io.Writer, path string, bag cube.Set, power bool) error {
	lines, err := readLines(path)
	if err != nil {
		return err
	}
	log.Debugf("bag: %v", bag)
	var sum int
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		g, err := cube.ParseGame(line)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		log.Debugf("game: %s", spew.Sdump(g))
		switch {
		case power:
			sum += g.MinBag().Power()
		case g.Possible(bag):
			sum += g.ID
		}
	}
	if power {
		fmt.Fprintf(w, "Sum of powers: %d\n", sum)
	} else {
		fmt.Fprintf(w, "Sum of possible IDs: %d\n", sum)
	}
	return nil
}

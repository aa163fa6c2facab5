package main

import (
	"context"
	"fmt"
	"io"

	"github.com/davecgh/go-spew/spew"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/maisem/aoc2023/calibration"
)

var calibrateCmd = &cobra.Command{
	Use:   "calibrate [flags] file...",
	Short: "Sum the calibration values of every line",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		digitsOnly, err := cmd.Flags().GetBool("digits-only")
		if err != nil {
			return fmt.Errorf("failed to get digits-only flag: %w", err)
		}
		return runCalibrate(cmd.Context(), cmd.OutOrStdout(), calibration.Scanner{DigitsOnly: digitsOnly}, args)
	},
}

func init() {
	calibrateCmd.Flags().Bool("digits-only", false, "ignore spelled-out digits")
}

// calibrate returns the calibration sum of each file, in argument order.
func calibrate(ctx context.Context, sc calibration.Scanner, paths []string) ([]int, error) {
	sums := make([]int, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			lines, err := readLines(path)
			if err != nil {
				return err
			}
			if log.IsLevelEnabled(logrus.DebugLevel) {
				for _, l := range lines {
					r, ok := sc.Scan(l)
					log.WithField("file", path).Debugf("%q: %s found=%v", l, spew.Sprint(r), ok)
				}
			}
			sums[i] = sc.Sum(lines)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return sums, nil
}

func runCalibrate(ctx context.Context, w io.Writer, sc calibration.Scanner, paths []string) error {
	sums, err := calibrate(ctx, sc, paths)
	if err != nil {
		return err
	}
	var total int
	for i, s := range sums {
		if len(paths) > 1 {
			fmt.Fprintf(w, "%s: %d\n", paths[i], s)
		}
		total += s
	}
	fmt.Fprintf(w, "Sum: %d\n", total)
	return nil
}

// Command trebuchet sums calibration values and cube game records read
// from input files.
package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var log = logrus.New()

var rootCmd = &cobra.Command{
	Use:           "trebuchet",
	Short:         "Recover calibration values and cube game sums",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if debug, _ := cmd.Flags().GetBool("debug"); debug {
			log.SetLevel(logrus.DebugLevel)
		}
	},
}

func main() {
	log.SetOutput(os.Stderr)

	rootCmd.AddCommand(calibrateCmd)
	rootCmd.AddCommand(cubesCmd)
	rootCmd.PersistentFlags().Bool("debug", false, "log every line as it is processed")

	if err := rootCmd.Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

// readLines returns the lines of the file at path.
func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	s := bufio.NewScanner(f)
	for s.Scan() {
		lines = append(lines, s.Text())
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return lines, nil
}

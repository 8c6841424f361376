// Command leiden runs the Leiden community-detection loop over a graph file
// and writes the resulting membership vector.
package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	log.SetFlags(0)
	logger := log.New(os.Stderr, "leiden: ", 0)
	if err := newRootCmd(logger).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(logger *log.Logger) *cobra.Command {
	var (
		gamma       float64
		seed        int64
		inpFmt      string
		resFmt      string
		quality     string
		maxCommSize int
		outputPath  string
	)

	cmd := &cobra.Command{
		Use:   "leiden <input> [output]",
		Short: "Detect communities in a graph with the Leiden method",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			inputPath := args[0]
			if len(args) == 2 {
				outputPath = args[1]
			}
			return run(runConfig{
				inputPath:   inputPath,
				outputPath:  outputPath,
				gamma:       gamma,
				seed:        seed,
				inpFmt:      inpFmt,
				resFmt:      resFmt,
				quality:     quality,
				maxCommSize: maxCommSize,
			}, logger)
		},
	}

	cmd.Flags().Float64Var(&gamma, "gamma", 1.0, "resolution parameter for CPM/RBER/RBConfiguration")
	cmd.Flags().Int64Var(&seed, "seed", 0, "RNG seed")
	cmd.Flags().StringVar(&inpFmt, "inp-fmt", "", "input format: NSE, NSA, or NCOL (inferred from extension if omitted)")
	cmd.Flags().StringVar(&resFmt, "res-fmt", "membership", "output format (only \"membership\" is supported)")
	cmd.Flags().StringVar(&quality, "quality", "cpm", "quality function: modularity, cpm, rber, rbconfiguration, significance, surprise")
	cmd.Flags().IntVar(&maxCommSize, "max-comm-size", 0, "cap on community size for any accepted move, 0 means unbounded")

	return cmd
}

package cli

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/heldkarp/internal/config"
	"github.com/katalvlaran/heldkarp/tsp"
	"github.com/katalvlaran/heldkarp/tsplib"
)

// solveCommand creates the solve command.
func (c *CLI) solveCommand() *cobra.Command {
	var (
		file          string
		format        string
		threads       int
		maxN          int
		memoryLimitMB uint64
		tour          bool
	)

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Compute the optimal tour cost of an instance",
		Long: `Solve reads an instance file and prints the exact optimal tour cost.

Supported inputs are .mat matrices, TSPLIB files (EUC_2D, EXPLICIT),
coordinate files and lower-triangular matrices; see --format.`,
		Example: `  heldkarp solve -f instances/matrix/10.mat
  heldkarp solve -f eil15.tsp -t 8 --tour`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			f, err := tsplib.ParseFormat(format)
			if err != nil {
				return err
			}
			cfg := c.cfg
			flags := cmd.Flags()
			if flags.Changed("threads") {
				cfg.Workers = threads
			}
			if flags.Changed("max-n") {
				cfg.MaxVertices = maxN
			}
			if flags.Changed("memory-limit-mb") {
				cfg.MemoryLimitMB = memoryLimitMB
			}
			if flags.Changed("tour") {
				cfg.ReconstructTour = tour
			}
			if err = cfg.Validate(); err != nil {
				return err
			}
			opts := cfg.SolveOptions()
			opts.Logger = logger

			in, err := tsplib.ReadFile(file, f)
			if err != nil {
				return err
			}
			if err = tsp.CheckFeasible(in.Dimension, opts); err != nil {
				return fmt.Errorf("%s: %w", file, err)
			}
			dist, err := in.Oracle()
			if err != nil {
				return fmt.Errorf("%s: %w", file, err)
			}
			if err = ctx.Err(); err != nil {
				return err
			}

			workers := opts.Workers
			if workers == 0 {
				workers = runtime.GOMAXPROCS(0)
			}
			logger.Infof("Running with %d threads", workers)
			logger.Debug("instance loaded", "name", in.Name, "n", in.Dimension, "table_bytes", tsp.TableBytes(in.Dimension))

			prog := newProgress(logger)
			res, err := tsp.Solve(dist, opts)
			if err != nil {
				return fmt.Errorf("%s: %w", file, err)
			}
			prog.done(fmt.Sprintf("Solved %s (n=%d)", in.Name, in.Dimension))
			logger.Debug("phase timings",
				"binomial", res.Phases.BuildBinomial,
				"subsets", res.Phases.GenerateSubsets,
				"fill", res.Phases.FillClasses,
				"finalize", res.Phases.Finalize)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Tour cost = %d\n", res.Cost)
			if res.Tour != nil {
				fmt.Fprintf(out, "Tour = %s\n", formatTour(res.Tour))
			}
			fmt.Fprintf(out, "Execution time: %s\n", res.Elapsed)

			return ctx.Err()
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "instance file (required)")
	cmd.Flags().StringVar(&format, "format", "auto", "input format: auto, matrix, tsplib, coords, lower")
	cmd.Flags().IntVarP(&threads, "threads", "t", 0, "worker threads (0 = all hardware threads)")
	cmd.Flags().IntVar(&maxN, "max-n", tsp.DefaultMaxVertices, fmt.Sprintf("refuse instances above this many vertices (max %d)", tsp.HardMaxVertices))
	cmd.Flags().Uint64Var(&memoryLimitMB, "memory-limit-mb", 0, fmt.Sprintf("refuse instances needing more memory (0 = unlimited, max %d)", uint64(config.MaxMemoryLimitMB)))
	cmd.Flags().BoolVar(&tour, "tour", false, "also print an optimal tour")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

// formatTour renders a tour as "0 -> 2 -> 3 -> 1 -> 0".
func formatTour(tour []int) string {
	parts := make([]string, len(tour))
	for i, v := range tour {
		parts[i] = fmt.Sprint(v)
	}
	return strings.Join(parts, " -> ")
}

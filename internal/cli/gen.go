package cli

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/heldkarp/builder"
	"github.com/katalvlaran/heldkarp/tsplib"
)

const (
	kindMatrix = "matrix"
	kindPoints = "points"

	distUniform = "uniform"
	distNormal  = "normal"
)

// genCommand creates the gen command.
func (c *CLI) genCommand() *cobra.Command {
	var (
		n          int
		seed       int64
		kind       string
		asymmetric bool
		maxWeight  int
		dist       string
		mean       float64
		stddev     float64
		extent     float64
		output     string
	)

	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate a seeded random instance",
		Long: `Gen writes a random instance: an integer distance matrix in .mat format
(--kind matrix) or planar points in coordinate format (--kind points).
Matrix entries are uniform in [1, max-weight] (--dist uniform) or drawn
from N(mean, stddev), rounded and clipped at 0 (--dist normal).
The same seed always produces the same instance.`,
		Example: `  heldkarp gen --n 16 --seed 7 -o 16.mat
  heldkarp gen --n 14 --dist normal --mean 50 --stddev 15 -o 14.mat
  heldkarp gen --n 12 --kind points -o 12.xy`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			if maxWeight < 1 {
				return fmt.Errorf("--max-weight must be at least 1, got %d", maxWeight)
			}
			if !(extent > 0) {
				return fmt.Errorf("--extent must be positive, got %g", extent)
			}
			var weights builder.BuilderOption
			switch dist {
			case distUniform:
				weights = builder.WithUniformIntWeight(1, maxWeight)
			case distNormal:
				if !(stddev >= 0) || math.IsInf(stddev, 0) || math.IsNaN(mean) || math.IsInf(mean, 0) {
					return fmt.Errorf("--dist normal needs finite --mean and --stddev >= 0, got %g and %g", mean, stddev)
				}
				weights = builder.WithNormalWeight(mean, stddev)
			default:
				return fmt.Errorf("--dist %q: want %s or %s", dist, distUniform, distNormal)
			}
			opts := []builder.BuilderOption{
				builder.WithSeed(seed),
				weights,
				builder.WithExtent(extent),
			}
			if asymmetric {
				opts = append(opts, builder.WithAsymmetric())
			}

			w, closeFn, err := openOutput(cmd.OutOrStdout(), output)
			if err != nil {
				return err
			}

			switch kind {
			case kindMatrix:
				m, genErr := builder.RandomMatrix(n, opts...)
				if genErr == nil {
					genErr = tsplib.WriteMatrix(w, m)
				}
				err = genErr
			case kindPoints:
				pts, genErr := builder.RandomPoints(n, opts...)
				if genErr == nil {
					genErr = tsplib.WriteCoords(w, pts)
				}
				err = genErr
			default:
				err = fmt.Errorf("--kind %q: want %s or %s", kind, kindMatrix, kindPoints)
			}
			if closeErr := closeFn(); err == nil {
				err = closeErr
			}
			if err != nil {
				return err
			}

			logger.Debug("instance generated", "kind", kind, "dist", dist, "n", n, "seed", seed)
			return nil
		},
	}

	cmd.Flags().IntVar(&n, "n", 10, "number of vertices")
	cmd.Flags().Int64Var(&seed, "seed", 1, "random seed")
	cmd.Flags().StringVar(&kind, "kind", kindMatrix, "instance kind: matrix or points")
	cmd.Flags().BoolVar(&asymmetric, "asymmetric", false, "draw a[i][j] and a[j][i] independently (matrix only)")
	cmd.Flags().IntVar(&maxWeight, "max-weight", 100, "largest matrix entry (entries are integers in [1, max-weight])")
	cmd.Flags().StringVar(&dist, "dist", distUniform, "matrix entry distribution: uniform or normal")
	cmd.Flags().Float64Var(&mean, "mean", 50, "mean of --dist normal")
	cmd.Flags().Float64Var(&stddev, "stddev", 15, "standard deviation of --dist normal")
	cmd.Flags().Float64Var(&extent, "extent", 1000, "side of the square points are drawn from")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")

	return cmd
}

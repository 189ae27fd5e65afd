package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/heldkarp/tsplib"
)

// convertCommand creates the convert command.
func (c *CLI) convertCommand() *cobra.Command {
	var (
		file   string
		format string
		output string
	)

	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Rewrite an instance as a full distance matrix",
		Long: `Convert reads coordinates, a lower-triangular matrix or a TSPLIB file and
writes the full n×n matrix in .mat format. Coordinates become unrounded
Euclidean distances.`,
		Example: `  heldkarp convert -f points.xy -o points.mat
  heldkarp convert -f gr17.tri --format lower`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			f, err := tsplib.ParseFormat(format)
			if err != nil {
				return err
			}
			in, err := tsplib.ReadFile(file, f)
			if err != nil {
				return err
			}
			m, err := in.Matrix()
			if err != nil {
				return fmt.Errorf("%s: %w", file, err)
			}

			w, closeFn, err := openOutput(cmd.OutOrStdout(), output)
			if err != nil {
				return err
			}
			if err = tsplib.WriteMatrix(w, m); err != nil {
				closeFn()
				return err
			}
			if err = closeFn(); err != nil {
				return err
			}
			if output != "" {
				logger.Infof("Wrote %d×%d matrix to %s", in.Dimension, in.Dimension, output)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "input file (required)")
	cmd.Flags().StringVar(&format, "format", "auto", "input format: auto, matrix, tsplib, coords, lower")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

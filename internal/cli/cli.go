// Package cli implements the heldkarp command-line interface.
//
// # Commands
//
//   - solve: exact optimal tour cost of an instance file
//   - convert: rewrite a coordinate or lower-triangle file as a full matrix
//   - gen: write a seeded random instance
//
// # Logging
//
// Log lines go to stderr through charmbracelet/log; results go to stdout.
// --verbose (-v) switches to debug level, which includes per-phase solver
// timings. The logger is passed to commands through context.Context.
//
// # Configuration
//
// heldkarp.toml supplies defaults for solve (see internal/config); flags win.
package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/heldkarp/internal/buildinfo"
	"github.com/katalvlaran/heldkarp/internal/config"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	cfg     config.Config
	cfgPath string
	verbose bool
}

// New creates a CLI whose logger writes to w at level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		cfg:    config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "heldkarp",
		Short:         "heldkarp computes exact optimal TSP tours",
		Long:          `heldkarp solves the travelling salesman problem exactly with a parallel Held-Karp dynamic program. It is practical up to a few dozen cities.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup(cmd)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&c.cfgPath, "config", "", "config file (default $XDG_CONFIG_HOME/heldkarp/heldkarp.toml)")

	root.AddCommand(c.solveCommand())
	root.AddCommand(c.convertCommand())
	root.AddCommand(c.genCommand())

	return root
}

// setup loads the config, applies the log level and attaches the logger to
// the command context.
func (c *CLI) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(c.cfgPath)
	if err != nil {
		return err
	}
	level, err := cfg.Level()
	if err != nil {
		return err
	}
	if c.verbose {
		level = LogDebug
	}
	c.cfg = cfg
	c.SetLogLevel(level)
	cmd.SetContext(withLogger(cmd.Context(), c.Logger))

	return nil
}

// openOutput returns stdout-equivalent w when path is empty, else a new file.
func openOutput(w io.Writer, path string) (io.Writer, func() error, error) {
	if path == "" {
		return w, func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}

	return f, f.Close, nil
}

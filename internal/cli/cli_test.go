package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/heldkarp/internal/config"
	"github.com/katalvlaran/heldkarp/tsp"
	"github.com/katalvlaran/heldkarp/tsplib"
)

const classicMat = "4\n0 10 15 20\n10 0 35 25\n15 35 0 30\n20 25 30 0\n"

// run executes the root command with args and returns stdout and log output.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, logs bytes.Buffer
	c := New(&logs, LogInfo)
	root := c.RootCommand()
	root.SetOut(&out)
	root.SetErr(&logs)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())

	return out.String(), logs.String(), err
}

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestSolveCommand(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	path := writeFile(t, dir, "classic.mat", classicMat)

	out, logs, err := run(t, "solve", "-f", path, "-t", "2", "--tour")
	require.NoError(t, err)
	require.Contains(t, out, "Tour cost = 80\n")
	require.Contains(t, out, "Tour = 0 -> 2 -> 3 -> 1 -> 0\n")
	require.Contains(t, out, "Execution time: ")
	require.Contains(t, logs, "Running with 2 threads")
	require.Contains(t, logs, "Solved classic (n=4)")
	require.NotContains(t, logs, "phase timings")

	_, logs, err = run(t, "solve", "-v", "-f", path)
	require.NoError(t, err)
	require.Contains(t, logs, "phase timings")
	require.Contains(t, logs, "phase done")
}

func TestSolveCommand_Config(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	path := writeFile(t, dir, "classic.mat", classicMat)
	cfg := writeFile(t, dir, "custom.toml", "workers = 3\nreconstruct_tour = true\n")

	out, logs, err := run(t, "--config", cfg, "solve", "-f", path)
	require.NoError(t, err)
	require.Contains(t, logs, "Running with 3 threads")
	require.Contains(t, out, "Tour = ")

	out, _, err = run(t, "--config", cfg, "solve", "-f", path, "--tour=false")
	require.NoError(t, err)
	require.NotContains(t, out, "Tour = ", "flags override the config file")

	bad := writeFile(t, dir, "bad.toml", "workers = -1\n")
	_, _, err = run(t, "--config", bad, "solve", "-f", path)
	require.Error(t, err)
}

func TestSolveCommand_Errors(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	path := writeFile(t, dir, "classic.mat", classicMat)

	_, _, err := run(t, "solve", "-f", path, "--max-n", "3")
	require.ErrorIs(t, err, tsp.ErrInfeasibleSize)

	neg := writeFile(t, dir, "neg.mat", "2\n0 -1\n1 0\n")
	_, _, err = run(t, "solve", "-f", neg)
	require.ErrorIs(t, err, tsp.ErrMalformedInput)

	_, _, err = run(t, "solve")
	require.Error(t, err, "--file is required")

	_, _, err = run(t, "solve", "-f", path, "--format", "xml")
	require.Error(t, err)
}

func TestSolveCommand_FlagRanges(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	path := writeFile(t, dir, "classic.mat", classicMat)

	for name, args := range map[string][]string{
		"negative threads":  {"--threads=-1"},
		"max-n above hard":  {"--max-n", "33"},
		"memory wraps":      {"--memory-limit-mb", "18446744073709551615"},
		"memory above 2^40": {"--memory-limit-mb", "1099511627777"},
	} {
		_, logs, err := run(t, append([]string{"solve", "-f", path}, args...)...)
		require.ErrorIs(t, err, config.ErrInvalid, name)
		require.NotContains(t, logs, "Running with", name)
	}

	_, logs, err := run(t, "solve", "-f", path, "--max-n", "3")
	require.ErrorIs(t, err, tsp.ErrInfeasibleSize)
	require.NotContains(t, logs, "Running with")

	out, logs, err := run(t, "solve", "-f", path, "--memory-limit-mb", "1099511627776", "-t", "2")
	require.NoError(t, err)
	require.Contains(t, out, "Tour cost = 80")
	require.Contains(t, logs, "Running with 2 threads")
}

func TestGenCommand_NormalDist(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	path := filepath.Join(dir, "normal.mat")
	_, _, err := run(t, "gen", "--n", "8", "--seed", "3", "--asymmetric", "--dist", "normal", "--mean", "40", "--stddev", "25", "-o", path)
	require.NoError(t, err)

	uniform, _, err := run(t, "gen", "--n", "8", "--seed", "3", "--asymmetric")
	require.NoError(t, err)
	body, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NotEqual(t, uniform, string(body))

	in, err := tsplib.ReadFile(path, tsplib.FormatAuto)
	require.NoError(t, err)
	require.Equal(t, 8, in.Dimension)

	out, _, err := run(t, "solve", "-f", path)
	require.NoError(t, err)
	require.Contains(t, out, "Tour cost = ")

	constant, _, err := run(t, "gen", "--n", "4", "--dist", "normal", "--mean", "7", "--stddev", "0")
	require.NoError(t, err)
	require.Equal(t, "4\n0 7 7 7\n7 0 7 7\n7 7 0 7\n7 7 7 0\n", constant)
}

func TestConvertCommand(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	coords := writeFile(t, dir, "tri.xy", "3\n0 0\n3 0\n0 4\n")
	out, _, err := run(t, "convert", "-f", coords)
	require.NoError(t, err)
	require.Equal(t, "3\n0 3 4\n3 0 5\n4 5 0\n", out)

	lower := writeFile(t, dir, "c4.tri", "4\n0\n10 0\n15 35 0\n20 25 30 0\n")
	target := filepath.Join(dir, "c4.mat")
	_, logs, err := run(t, "convert", "-f", lower, "-o", target)
	require.NoError(t, err)
	require.Contains(t, logs, "Wrote 4×4 matrix")
	got, err := os.ReadFile(target)
	require.NoError(t, err)
	require.Equal(t, classicMat, string(got))
}

func TestGenCommand(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	a, _, err := run(t, "gen", "--n", "6", "--seed", "5")
	require.NoError(t, err)
	b, _, err := run(t, "gen", "--n", "6", "--seed", "5")
	require.NoError(t, err)
	require.Equal(t, a, b)

	path := filepath.Join(dir, "pts.xy")
	_, _, err = run(t, "gen", "--n", "7", "--kind", "points", "--extent", "50", "-o", path)
	require.NoError(t, err)
	out, _, err := run(t, "solve", "-f", path)
	require.NoError(t, err)
	require.Contains(t, out, "Tour cost = ")

	_, _, err = run(t, "gen", "--kind", "graph")
	require.Error(t, err)
	_, _, err = run(t, "gen", "--dist", "zipf")
	require.Error(t, err)
	_, _, err = run(t, "gen", "--dist", "normal", "--stddev=-1")
	require.Error(t, err)
	_, _, err = run(t, "gen", "--max-weight", "0")
	require.Error(t, err)
	_, _, err = run(t, "gen", "--n", "0")
	require.Error(t, err)
}

package tsplib

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/heldkarp/matrix"
	"github.com/katalvlaran/heldkarp/tsp"
)

// MaxDimension bounds the vertex count any reader accepts. It is far above
// what the exact solver takes; the conversion tools use the headroom.
const MaxDimension = 4096

// Instance is a parsed problem. Exactly one of Coords and Weights is set.
type Instance struct {
	// Name is the TSPLIB NAME, or the file's base name for headerless formats.
	Name string

	// Dimension is the vertex count.
	Dimension int

	// Coords holds planar coordinates (EUC_2D and coordinate files).
	Coords [][2]float64

	// Weights holds an explicit n×n cost matrix.
	Weights *matrix.Dense
}

// Oracle returns the distance oracle for the instance. Coordinates use the
// rounded Euclidean metric; explicit weights are validated as a distance matrix.
func (in *Instance) Oracle() (tsp.Oracle, error) {
	if in.Coords != nil {
		o, err := tsp.NewEuclideanOracle(in.Coords)
		if err != nil {
			return nil, err
		}
		return o, nil
	}
	if in.Weights == nil {
		return nil, fmt.Errorf("empty instance: %w", ErrMalformedInput)
	}

	o, err := tsp.NewMatrixOracle(in.Weights)
	if err != nil {
		return nil, err
	}

	return o, nil
}

// Matrix returns the explicit cost matrix. For coordinate instances it is the
// unrounded Euclidean distance matrix.
//
// Complexity: O(n²).
func (in *Instance) Matrix() (*matrix.Dense, error) {
	if in.Weights != nil {
		return in.Weights, nil
	}
	if len(in.Coords) == 0 {
		return nil, fmt.Errorf("empty instance: %w", ErrMalformedInput)
	}

	var (
		n    = len(in.Coords)
		rows = make([][]float64, n)
		i, j int
	)
	for i = 0; i < n; i++ {
		rows[i] = make([]float64, n)
		for j = 0; j < n; j++ {
			if i != j {
				rows[i][j] = math.Hypot(in.Coords[j][0]-in.Coords[i][0], in.Coords[j][1]-in.Coords[i][1])
			}
		}
	}

	return matrix.NewDenseFromRows(rows)
}

// ReadFile opens path and reads it with f. FormatAuto consults the extension
// first and sniffs the content second.
func ReadFile(path string, f Format) (*Instance, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	if f == FormatAuto {
		f = FormatForPath(path)
	}
	in, err := Read(file, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if in.Name == "" {
		base := filepath.Base(path)
		in.Name = strings.TrimSuffix(base, filepath.Ext(base))
	}

	return in, nil
}

// Read parses r in format f.
func Read(r io.Reader, f Format) (*Instance, error) {
	br := bufio.NewReader(r)
	if f == FormatAuto {
		var err error
		if f, err = sniff(br); err != nil {
			return nil, err
		}
	}

	fr := newFieldReader(br)
	switch f {
	case FormatMatrix:
		return readMatrix(fr)
	case FormatTSPLIB:
		return readTSPLIB(fr)
	case FormatCoords:
		return readCoords(fr)
	case FormatLowerTriangle:
		return readLowerTriangle(fr)
	default:
		return nil, fmt.Errorf("%v: %w", f, ErrUnsupportedFormat)
	}
}

// sniff looks at the first non-blank byte: a digit starts a headerless
// matrix file, anything else a TSPLIB header.
func sniff(br *bufio.Reader) (Format, error) {
	var (
		buf []byte
		err error
		i   int
	)
	for size := 64; ; size *= 2 {
		buf, err = br.Peek(size)
		for i = 0; i < len(buf); i++ {
			switch c := buf[i]; {
			case c == ' ' || c == '\t' || c == '\r' || c == '\n':
				continue
			case c >= '0' && c <= '9':
				return FormatMatrix, nil
			default:
				return FormatTSPLIB, nil
			}
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return FormatAuto, fmt.Errorf("empty input: %w", ErrMalformedInput)
			}
			if !errors.Is(err, bufio.ErrBufferFull) {
				return FormatAuto, err
			}
			return FormatAuto, fmt.Errorf("no content in first %d bytes: %w", len(buf), ErrMalformedInput)
		}
	}
}

// readMatrix reads `n` then n×n costs.
func readMatrix(fr *fieldReader) (*Instance, error) {
	n, err := fr.dimension()
	if err != nil {
		return nil, err
	}
	rows, err := readFullRows(fr, n)
	if err != nil {
		return nil, err
	}
	if err = fr.end(); err != nil {
		return nil, err
	}

	return explicitInstance("", rows)
}

// readCoords reads `n` then n `x y` pairs.
func readCoords(fr *fieldReader) (*Instance, error) {
	n, err := fr.dimension()
	if err != nil {
		return nil, err
	}
	pts := make([][2]float64, n)
	for i := range pts {
		if pts[i][0], err = fr.nextFloat(); err != nil {
			return nil, err
		}
		if pts[i][1], err = fr.nextFloat(); err != nil {
			return nil, err
		}
	}
	if err = fr.end(); err != nil {
		return nil, err
	}

	return &Instance{Dimension: n, Coords: pts}, nil
}

// readLowerTriangle reads `n` then the lower triangle including the diagonal.
func readLowerTriangle(fr *fieldReader) (*Instance, error) {
	n, err := fr.dimension()
	if err != nil {
		return nil, err
	}
	rows, err := readLowerDiagRows(fr, n)
	if err != nil {
		return nil, err
	}
	if err = fr.end(); err != nil {
		return nil, err
	}

	return explicitInstance("", rows)
}

func explicitInstance(name string, rows [][]float64) (*Instance, error) {
	m, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedInput, err)
	}

	return &Instance{Name: name, Dimension: len(rows), Weights: m}, nil
}

func newRows(n int) [][]float64 {
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
	}

	return rows
}

func readFullRows(fr *fieldReader, n int) ([][]float64, error) {
	var (
		rows = newRows(n)
		i, j int
		err  error
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if rows[i][j], err = fr.nextFloat(); err != nil {
				return nil, err
			}
		}
	}

	return rows, nil
}

// readLowerDiagRows reads row i as a[i][0..i] and mirrors it.
func readLowerDiagRows(fr *fieldReader, n int) ([][]float64, error) {
	var (
		rows = newRows(n)
		i, j int
		err  error
	)
	for i = 0; i < n; i++ {
		for j = 0; j <= i; j++ {
			if rows[i][j], err = fr.nextFloat(); err != nil {
				return nil, err
			}
			rows[j][i] = rows[i][j]
		}
	}

	return rows, nil
}

// readUpperRows reads row i as a[i][i+1..n-1] and mirrors it; the diagonal is 0.
func readUpperRows(fr *fieldReader, n int) ([][]float64, error) {
	var (
		rows = newRows(n)
		i, j int
		err  error
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if rows[i][j], err = fr.nextFloat(); err != nil {
				return nil, err
			}
			rows[j][i] = rows[i][j]
		}
	}

	return rows, nil
}

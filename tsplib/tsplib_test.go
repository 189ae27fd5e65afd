package tsplib_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/heldkarp/builder"
	"github.com/katalvlaran/heldkarp/tsp"
	"github.com/katalvlaran/heldkarp/tsplib"
)

const classicMat = `4
0 10 15 20
10 0 35 25
15 35 0 30
20 25 30 0
`

func solveInstance(t *testing.T, in *tsplib.Instance) int64 {
	t.Helper()
	dist, err := in.Oracle()
	require.NoError(t, err)
	res, err := tsp.Solve(dist, tsp.Options{})
	require.NoError(t, err)

	return res.Cost
}

func TestReadMatrix(t *testing.T) {
	t.Parallel()

	in, err := tsplib.Read(strings.NewReader(classicMat), tsplib.FormatMatrix)
	require.NoError(t, err)
	require.Equal(t, 4, in.Dimension)
	require.Nil(t, in.Coords)
	require.Equal(t, int64(80), solveInstance(t, in))

	auto, err := tsplib.Read(strings.NewReader("\n  "+classicMat), tsplib.FormatAuto)
	require.NoError(t, err)
	require.Equal(t, in.Weights.String(), auto.Weights.String())
}

func TestReadCoordsAndLowerTriangle(t *testing.T) {
	t.Parallel()

	in, err := tsplib.Read(strings.NewReader("3\n0 0\n3 0\n0 4\n"), tsplib.FormatCoords)
	require.NoError(t, err)
	require.Equal(t, [][2]float64{{0, 0}, {3, 0}, {0, 4}}, in.Coords)
	require.Equal(t, int64(12), solveInstance(t, in))

	m, err := in.Matrix()
	require.NoError(t, err)
	require.Equal(t, "[0, 3, 4]\n[3, 0, 5]\n[4, 5, 0]\n", m.String())

	lower := "4\n0\n10 0\n15 35 0\n20 25 30 0\n"
	in, err = tsplib.Read(strings.NewReader(lower), tsplib.FormatLowerTriangle)
	require.NoError(t, err)
	want, err := tsplib.Read(strings.NewReader(classicMat), tsplib.FormatMatrix)
	require.NoError(t, err)
	require.Equal(t, want.Weights.String(), in.Weights.String())
}

func TestReadTSPLIB_Euc2D(t *testing.T) {
	t.Parallel()

	src := `NAME : square5
COMMENT : four corners and a centre
TYPE : TSP
DIMENSION : 5
EDGE_WEIGHT_TYPE : EUC_2D
NODE_COORD_SECTION
1 0 0
3 10 10
2 10 0
4 0 10
5 5 5
EOF
`
	in, err := tsplib.Read(strings.NewReader(src), tsplib.FormatAuto)
	require.NoError(t, err)
	require.Equal(t, "square5", in.Name)
	require.Equal(t, 5, in.Dimension)
	require.Equal(t, [2]float64{10, 0}, in.Coords[1])
	// Square 40 minus one side 10 plus two half-diagonals nint(7.07)=7 each.
	require.Equal(t, int64(44), solveInstance(t, in))
}

func TestReadTSPLIB_Explicit(t *testing.T) {
	t.Parallel()

	full := "NAME: c4\nTYPE: ATSP\nDIMENSION: 4\nEDGE_WEIGHT_TYPE: EXPLICIT\nEDGE_WEIGHT_FORMAT: FULL_MATRIX\nEDGE_WEIGHT_SECTION\n" +
		strings.SplitN(classicMat, "\n", 2)[1] + "EOF\n"
	lower := "DIMENSION 4\nEDGE_WEIGHT_TYPE EXPLICIT\nEDGE_WEIGHT_FORMAT LOWER_DIAG_ROW\nEDGE_WEIGHT_SECTION\n0 10 0 15 35 0 20 25 30 0\n"
	upper := "DIMENSION: 4\nEDGE_WEIGHT_TYPE: EXPLICIT\nEDGE_WEIGHT_FORMAT: UPPER_ROW\nEDGE_WEIGHT_SECTION\n10 15 20\n35 25\n30\nDISPLAY_DATA_SECTION\n1 0 0\n"

	for name, src := range map[string]string{"full": full, "lower": lower, "upper": upper} {
		in, err := tsplib.Read(strings.NewReader(src), tsplib.FormatTSPLIB)
		require.NoError(t, err, name)
		require.Equal(t, int64(80), solveInstance(t, in), name)
	}
}

// TestReadTSPLIB_ATSPDiagonal reads the TSPLIB convention of a large
// self-distance on the diagonal.
func TestReadTSPLIB_ATSPDiagonal(t *testing.T) {
	t.Parallel()

	src := "NAME: c4\nTYPE: ATSP\nDIMENSION: 4\nEDGE_WEIGHT_TYPE: EXPLICIT\nEDGE_WEIGHT_FORMAT: FULL_MATRIX\nEDGE_WEIGHT_SECTION\n" +
		"9999 10 15 20\n10 9999 35 25\n15 35 9999 30\n20 25 30 9999\nEOF\n"
	in, err := tsplib.Read(strings.NewReader(src), tsplib.FormatTSPLIB)
	require.NoError(t, err)
	require.Equal(t, int64(80), solveInstance(t, in))
}

func TestRead_Errors(t *testing.T) {
	t.Parallel()

	malformed := map[string]struct {
		src string
		f   tsplib.Format
	}{
		"short matrix":    {"3\n0 1 2\n1 0\n", tsplib.FormatMatrix},
		"trailing":        {"1\n0\n7\n", tsplib.FormatMatrix},
		"not a number":    {"2\n0 x\n1 0\n", tsplib.FormatMatrix},
		"zero dimension":  {"0\n", tsplib.FormatMatrix},
		"huge dimension":  {"999999\n", tsplib.FormatCoords},
		"empty":           {"  \n ", tsplib.FormatAuto},
		"no section":      {"DIMENSION: 3\nEDGE_WEIGHT_TYPE: EUC_2D\n", tsplib.FormatTSPLIB},
		"bad node id":     {"DIMENSION: 2\nEDGE_WEIGHT_TYPE: EUC_2D\nNODE_COORD_SECTION\n1 0 0\n1 1 1\n", tsplib.FormatTSPLIB},
		"wrong section":   {"DIMENSION: 2\nEDGE_WEIGHT_TYPE: EUC_2D\nEDGE_WEIGHT_SECTION\n0 1\n", tsplib.FormatTSPLIB},
		"missing dim":     {"EDGE_WEIGHT_TYPE: EUC_2D\nNODE_COORD_SECTION\n", tsplib.FormatTSPLIB},
		"eof before data": {"DIMENSION: 2\nEOF\n", tsplib.FormatTSPLIB},
	}
	for name, tc := range malformed {
		_, err := tsplib.Read(strings.NewReader(tc.src), tc.f)
		require.ErrorIs(t, err, tsplib.ErrMalformedInput, name)
	}

	unsupported := map[string]string{
		"geo":  "DIMENSION: 2\nEDGE_WEIGHT_TYPE: GEO\nNODE_COORD_SECTION\n1 0 0\n2 1 1\n",
		"hcp":  "TYPE: HCP\nDIMENSION: 2\nEDGE_DATA_SECTION\n",
		"func": "DIMENSION: 2\nEDGE_WEIGHT_TYPE: EXPLICIT\nEDGE_WEIGHT_FORMAT: FUNCTION\nEDGE_WEIGHT_SECTION\n",
	}
	for name, src := range unsupported {
		_, err := tsplib.Read(strings.NewReader(src), tsplib.FormatTSPLIB)
		require.ErrorIs(t, err, tsplib.ErrUnsupportedFormat, name)
	}

	_, err := tsplib.Read(strings.NewReader("1\n0\n"), tsplib.Format(42))
	require.ErrorIs(t, err, tsplib.ErrUnsupportedFormat)

	_, err = tsplib.Read(strings.NewReader("2\n0 1\n"), tsplib.FormatMatrix)
	require.ErrorContains(t, err, "line 2")
}

func TestFormat(t *testing.T) {
	t.Parallel()

	for _, f := range []tsplib.Format{tsplib.FormatAuto, tsplib.FormatMatrix, tsplib.FormatTSPLIB, tsplib.FormatCoords, tsplib.FormatLowerTriangle} {
		got, err := tsplib.ParseFormat(f.String())
		require.NoError(t, err)
		require.Equal(t, f, got)
	}
	_, err := tsplib.ParseFormat("xml")
	require.ErrorIs(t, err, tsplib.ErrUnsupportedFormat)
	require.Equal(t, "format(42)", tsplib.Format(42).String())

	require.Equal(t, tsplib.FormatMatrix, tsplib.FormatForPath("a/b.MAT"))
	require.Equal(t, tsplib.FormatTSPLIB, tsplib.FormatForPath("eil51.tsp"))
	require.Equal(t, tsplib.FormatCoords, tsplib.FormatForPath("pts.xy"))
	require.Equal(t, tsplib.FormatLowerTriangle, tsplib.FormatForPath("gr.tri"))
	require.Equal(t, tsplib.FormatAuto, tsplib.FormatForPath("instance"))
}

func TestWriteMatrix_RoundTrip(t *testing.T) {
	t.Parallel()

	m, err := builder.RandomMatrix(7, builder.WithSeed(9), builder.WithAsymmetric(), builder.WithUniformWeight(0, 50))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, tsplib.WriteMatrix(&buf, m))
	in, err := tsplib.Read(&buf, tsplib.FormatMatrix)
	require.NoError(t, err)
	require.Equal(t, m.String(), in.Weights.String())

	require.Error(t, tsplib.WriteMatrix(&buf, nil))
}

func TestWriteCoords_ReadFile(t *testing.T) {
	t.Parallel()

	pts, err := builder.RandomPoints(6, builder.WithSeed(4))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "pts.xy")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, tsplib.WriteCoords(f, pts))
	require.NoError(t, f.Close())

	in, err := tsplib.ReadFile(path, tsplib.FormatAuto)
	require.NoError(t, err)
	require.Equal(t, "pts", in.Name)
	require.Equal(t, pts, in.Coords)

	_, err = tsplib.ReadFile(filepath.Join(t.TempDir(), "missing.mat"), tsplib.FormatAuto)
	require.ErrorIs(t, err, os.ErrNotExist)
}

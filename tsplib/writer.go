package tsplib

import (
	"bufio"
	"io"
	"strconv"

	"github.com/katalvlaran/heldkarp/matrix"
)

// WriteMatrix writes m in FormatMatrix: the dimension on its own line, then
// one line per row of space-separated values in shortest round-trip form.
func WriteMatrix(w io.Writer, m matrix.Matrix) error {
	if err := matrix.ValidateSquare(m); err != nil {
		return err
	}

	var (
		bw   = bufio.NewWriter(w)
		n    = m.Rows()
		buf  = make([]byte, 0, 32)
		i, j int
		v    float64
		err  error
	)
	bw.WriteString(strconv.Itoa(n))
	bw.WriteByte('\n')
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if v, err = m.At(i, j); err != nil {
				return err
			}
			if j > 0 {
				bw.WriteByte(' ')
			}
			bw.Write(strconv.AppendFloat(buf[:0], v, 'g', -1, 64))
		}
		bw.WriteByte('\n')
	}

	return bw.Flush()
}

// WriteCoords writes pts in FormatCoords: the count, then one `x y` per line.
func WriteCoords(w io.Writer, pts [][2]float64) error {
	bw := bufio.NewWriter(w)
	bw.WriteString(strconv.Itoa(len(pts)))
	bw.WriteByte('\n')
	buf := make([]byte, 0, 32)
	for _, p := range pts {
		bw.Write(strconv.AppendFloat(buf[:0], p[0], 'g', -1, 64))
		bw.WriteByte(' ')
		bw.Write(strconv.AppendFloat(buf[:0], p[1], 'g', -1, 64))
		bw.WriteByte('\n')
	}

	return bw.Flush()
}

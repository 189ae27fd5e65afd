package tsplib

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format selects an input reader.
type Format int

const (
	// FormatAuto picks a reader from the file extension, then by sniffing the
	// first token (a number ⇒ FormatMatrix, otherwise FormatTSPLIB).
	FormatAuto Format = iota
	FormatMatrix
	FormatTSPLIB
	FormatCoords
	FormatLowerTriangle
)

var formatNames = [...]string{
	FormatAuto:          "auto",
	FormatMatrix:        "matrix",
	FormatTSPLIB:        "tsplib",
	FormatCoords:        "coords",
	FormatLowerTriangle: "lower",
}

// String implements fmt.Stringer.
func (f Format) String() string {
	if f >= 0 && int(f) < len(formatNames) {
		return formatNames[f]
	}

	return fmt.Sprintf("format(%d)", int(f))
}

// ParseFormat maps a flag value ("auto", "matrix", "tsplib", "coords",
// "lower") to a Format.
func ParseFormat(s string) (Format, error) {
	for f, name := range formatNames {
		if strings.EqualFold(s, name) {
			return Format(f), nil
		}
	}

	return FormatAuto, fmt.Errorf("format %q: %w", s, ErrUnsupportedFormat)
}

// FormatForPath guesses a Format from the file extension.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mat":
		return FormatMatrix
	case ".tsp", ".atsp":
		return FormatTSPLIB
	case ".xy", ".coord", ".coords":
		return FormatCoords
	case ".tri", ".lower":
		return FormatLowerTriangle
	default:
		return FormatAuto
	}
}

// Package tsplib reads and writes the instance files the heldkarp command
// accepts.
//
// Supported inputs:
//
//   - FormatMatrix: `n` followed by n×n whitespace-separated costs (.mat).
//   - FormatTSPLIB: TSPLIB 95 headers with EDGE_WEIGHT_TYPE EUC_2D
//     (NODE_COORD_SECTION) or EXPLICIT with EDGE_WEIGHT_FORMAT FULL_MATRIX,
//     LOWER_DIAG_ROW or UPPER_ROW (EDGE_WEIGHT_SECTION) (.tsp, .atsp).
//   - FormatCoords: `n` followed by n `x y` pairs (.xy, .coord).
//   - FormatLowerTriangle: `n` followed by the lower triangle including the
//     diagonal, row by row (.tri, .lower).
//
// Every reader returns an *Instance holding either coordinates or an explicit
// matrix. Instance.Oracle turns it into a tsp.Oracle; coordinates use TSPLIB
// nint rounding. WriteMatrix emits FormatMatrix, so converted files read back
// unchanged.
//
// Errors are ErrMalformedInput (bad numbers, short or trailing data, bad
// dimension) and ErrUnsupportedFormat (TSPLIB variants not listed above), both
// carrying the offending line number.
package tsplib

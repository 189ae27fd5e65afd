package tsplib

import (
	"fmt"
	"strconv"
	"strings"
)

// TSPLIB header keys and values this package understands.
const (
	keyName       = "NAME"
	keyType       = "TYPE"
	keyDimension  = "DIMENSION"
	keyWeightType = "EDGE_WEIGHT_TYPE"
	keyWeightFmt  = "EDGE_WEIGHT_FORMAT"
	keyEOF        = "EOF"

	sectionCoords  = "NODE_COORD_SECTION"
	sectionWeights = "EDGE_WEIGHT_SECTION"

	weightEuc2D    = "EUC_2D"
	weightExplicit = "EXPLICIT"

	fmtFullMatrix   = "FULL_MATRIX"
	fmtLowerDiagRow = "LOWER_DIAG_ROW"
	fmtUpperRow     = "UPPER_ROW"
)

// readTSPLIB reads `KEY : VALUE` header lines up to the first *_SECTION
// keyword, then the section body. Anything after the body is ignored.
func readTSPLIB(fr *fieldReader) (*Instance, error) {
	hdr, section, err := readHeader(fr)
	if err != nil {
		return nil, err
	}

	if typ := strings.ToUpper(hdr[keyType]); typ != "" && typ != "TSP" && typ != "ATSP" {
		return nil, fmt.Errorf("TYPE %s: %w", typ, ErrUnsupportedFormat)
	}
	raw, ok := hdr[keyDimension]
	if !ok {
		return nil, fmt.Errorf("missing %s: %w", keyDimension, ErrMalformedInput)
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("%s %q: %w", keyDimension, raw, ErrMalformedInput)
	}
	if n, err = checkDimension(n, fr.line); err != nil {
		return nil, err
	}

	ewt := strings.ToUpper(hdr[keyWeightType])
	switch ewt {
	case weightEuc2D:
		if section != sectionCoords {
			return nil, fmt.Errorf("line %d: %s before %s: %w", fr.line, section, sectionCoords, ErrMalformedInput)
		}
		pts, err := readNodeCoords(fr, n)
		if err != nil {
			return nil, err
		}
		return &Instance{Name: hdr[keyName], Dimension: n, Coords: pts}, nil

	case weightExplicit:
		if section != sectionWeights {
			return nil, fmt.Errorf("line %d: %s before %s: %w", fr.line, section, sectionWeights, ErrMalformedInput)
		}
		var rows [][]float64
		switch ewf := strings.ToUpper(hdr[keyWeightFmt]); ewf {
		case fmtFullMatrix:
			rows, err = readFullRows(fr, n)
		case fmtLowerDiagRow:
			rows, err = readLowerDiagRows(fr, n)
		case fmtUpperRow:
			rows, err = readUpperRows(fr, n)
		default:
			return nil, fmt.Errorf("%s %q: %w", keyWeightFmt, ewf, ErrUnsupportedFormat)
		}
		if err != nil {
			return nil, err
		}
		return explicitInstance(hdr[keyName], rows)

	default:
		return nil, fmt.Errorf("%s %q: %w", keyWeightType, ewt, ErrUnsupportedFormat)
	}
}

// readHeader collects header entries and returns the section keyword that
// ended it.
func readHeader(fr *fieldReader) (map[string]string, string, error) {
	hdr := make(map[string]string)
	for {
		line, ok, err := fr.nextLine()
		if err != nil {
			return nil, "", err
		}
		if !ok {
			return nil, "", fmt.Errorf("line %d: no data section: %w", fr.line, ErrMalformedInput)
		}
		key, val := splitHeader(line)
		switch {
		case key == "":
			continue
		case key == keyEOF:
			return nil, "", fmt.Errorf("line %d: %s before any data section: %w", fr.line, keyEOF, ErrMalformedInput)
		case strings.HasSuffix(key, "_SECTION"):
			return hdr, key, nil
		default:
			hdr[key] = val
		}
	}
}

// splitHeader accepts both `KEY : VALUE` and `KEY VALUE`.
func splitHeader(line string) (key, val string) {
	line = strings.TrimSpace(line)
	if k, v, found := strings.Cut(line, ":"); found {
		return strings.ToUpper(strings.TrimSpace(k)), strings.TrimSpace(v)
	}
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", ""
	}

	return strings.ToUpper(fields[0]), strings.Join(fields[1:], " ")
}

// readNodeCoords reads n `id x y` lines. Ids are 1-based and may come in any
// order, but each must appear once.
func readNodeCoords(fr *fieldReader, n int) ([][2]float64, error) {
	var (
		pts  = make([][2]float64, n)
		seen = make([]bool, n)
		i    int
		id   int
		err  error
	)
	for i = 0; i < n; i++ {
		if id, err = fr.nextInt(); err != nil {
			return nil, err
		}
		if id < 1 || id > n || seen[id-1] {
			return nil, fmt.Errorf("line %d: node id %d: %w", fr.line, id, ErrMalformedInput)
		}
		seen[id-1] = true
		if pts[id-1][0], err = fr.nextFloat(); err != nil {
			return nil, err
		}
		if pts[id-1][1], err = fr.nextFloat(); err != nil {
			return nil, err
		}
	}

	return pts, nil
}

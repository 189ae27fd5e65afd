package tsplib

import "errors"

var (
	// ErrMalformedInput reports input that does not follow its declared format.
	ErrMalformedInput = errors.New("tsplib: malformed input")

	// ErrUnsupportedFormat reports a well-formed TSPLIB variant this package
	// does not read.
	ErrUnsupportedFormat = errors.New("tsplib: unsupported format")
)

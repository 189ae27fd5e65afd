package tsplib

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// maxLineBytes bounds a single input line (a full matrix row of a large
// instance fits comfortably).
const maxLineBytes = 16 << 20

// fieldReader yields whitespace-separated fields and remembers the line they
// came from, so errors can point at it.
type fieldReader struct {
	sc    *bufio.Scanner
	line  int
	queue []string
}

func newFieldReader(r io.Reader) *fieldReader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64<<10), maxLineBytes)

	return &fieldReader{sc: sc}
}

// nextLine returns the next raw line. Pending fields of the current line are
// discarded.
func (fr *fieldReader) nextLine() (string, bool, error) {
	fr.queue = nil
	if !fr.sc.Scan() {
		return "", false, fr.scanErr()
	}
	fr.line++

	return fr.sc.Text(), true, nil
}

// peek returns the next field without consuming it. ok is false at end of input.
func (fr *fieldReader) peek() (string, bool, error) {
	for len(fr.queue) == 0 {
		if !fr.sc.Scan() {
			return "", false, fr.scanErr()
		}
		fr.line++
		fr.queue = strings.Fields(fr.sc.Text())
	}

	return fr.queue[0], true, nil
}

// next consumes one field. End of input is ErrMalformedInput.
func (fr *fieldReader) next() (string, error) {
	tok, ok, err := fr.peek()
	if err != nil {
		return "", err
	}
	if !ok {
		return "", fmt.Errorf("line %d: unexpected end of input: %w", fr.line, ErrMalformedInput)
	}
	fr.queue = fr.queue[1:]

	return tok, nil
}

func (fr *fieldReader) nextInt() (int, error) {
	tok, err := fr.next()
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("line %d: %q is not an integer: %w", fr.line, tok, ErrMalformedInput)
	}

	return v, nil
}

func (fr *fieldReader) nextFloat() (float64, error) {
	tok, err := fr.next()
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, fmt.Errorf("line %d: %q is not a number: %w", fr.line, tok, ErrMalformedInput)
	}

	return v, nil
}

// dimension reads n and checks it against MaxDimension.
func (fr *fieldReader) dimension() (int, error) {
	n, err := fr.nextInt()
	if err != nil {
		return 0, err
	}

	return checkDimension(n, fr.line)
}

// end fails if any field other than an optional TSPLIB "EOF" marker remains.
func (fr *fieldReader) end() error {
	tok, ok, err := fr.peek()
	if err != nil || !ok {
		return err
	}
	if tok == "EOF" {
		fr.queue = fr.queue[1:]
		return nil
	}

	return fmt.Errorf("line %d: trailing data %q: %w", fr.line, tok, ErrMalformedInput)
}

func (fr *fieldReader) scanErr() error {
	if err := fr.sc.Err(); err != nil {
		return fmt.Errorf("line %d: %w: %w", fr.line+1, ErrMalformedInput, err)
	}

	return nil
}

func checkDimension(n, line int) (int, error) {
	if n < 1 || n > MaxDimension {
		return 0, fmt.Errorf("line %d: dimension %d not in [1,%d]: %w", line, n, MaxDimension, ErrMalformedInput)
	}

	return n, nil
}

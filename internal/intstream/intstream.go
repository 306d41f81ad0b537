// Package intstream reads whitespace-delimited integers from a text stream.
//
// Line breaks are treated like any other whitespace, so a file with one
// number per line and a file with every number on one line read the same.
package intstream

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
)

var (
	// ErrUnexpectedEOF indicates that the input ended before a required value.
	ErrUnexpectedEOF = errors.New("unexpected end of input")

	// ErrMalformed indicates that a token is not a base-10 integer.
	ErrMalformed = errors.New("malformed integer")
)

// maxTokenSize bounds a single token, not the input.
const maxTokenSize = 64 * 1024

// Reader yields the integers of an io.Reader one at a time.
type Reader struct {
	sc  *bufio.Scanner
	pos int // number of tokens consumed
}

// NewReader creates a Reader over r.
func NewReader(r io.Reader) *Reader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxTokenSize)
	sc.Split(bufio.ScanWords)

	return &Reader{sc: sc}
}

// Next returns the next integer. It returns io.EOF when the input is
// exhausted.
func (r *Reader) Next() (int64, error) {
	if !r.sc.Scan() {
		if err := r.sc.Err(); err != nil {
			return 0, fmt.Errorf("read token %d: %w", r.pos+1, err)
		}
		return 0, io.EOF
	}
	r.pos++

	tok := r.sc.Text()
	v, err := strconv.ParseInt(tok, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: token %d %q", ErrMalformed, r.pos, tok)
	}

	return v, nil
}

// Require returns the next integer, treating end of input as an error.
// name describes the value in the error message.
func (r *Reader) Require(name string) (int64, error) {
	v, err := r.Next()
	if errors.Is(err, io.EOF) {
		return 0, fmt.Errorf("%w: missing %s", ErrUnexpectedEOF, name)
	}

	return v, err
}

// ReadN returns the next n integers.
func (r *Reader) ReadN(n int, name string) ([]int64, error) {
	values := make([]int64, 0, min(n, 4096))
	for i := range n {
		v, err := r.Require(fmt.Sprintf("%s[%d]", name, i))
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}

	return values, nil
}

// ReadAll returns every remaining integer.
func (r *Reader) ReadAll() ([]int64, error) {
	var values []int64
	for {
		v, err := r.Next()
		if errors.Is(err, io.EOF) {
			return values, nil
		}
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
}

// Consumed returns the number of tokens read so far.
func (r *Reader) Consumed() int {
	return r.pos
}

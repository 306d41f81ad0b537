package intstream

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReaderMixedWhitespace(t *testing.T) {
	r := NewReader(strings.NewReader("1 3 5\n2\n\t0\r\n1 10\n"))

	values, err := r.ReadAll()
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 3, 5, 2, 0, 1, 10}, values)
	assert.Equal(t, 7, r.Consumed())
}

func TestReaderNext(t *testing.T) {
	assert := assert.New(t)
	r := NewReader(strings.NewReader("-4 9223372036854775807"))

	v, err := r.Next()
	assert.NoError(err)
	assert.Equal(int64(-4), v)

	v, err = r.Next()
	assert.NoError(err)
	assert.Equal(int64(9223372036854775807), v)

	_, err = r.Next()
	assert.ErrorIs(err, io.EOF)
}

func TestReaderMalformed(t *testing.T) {
	r := NewReader(strings.NewReader("1 two 3"))

	_, err := r.Next()
	require.NoError(t, err)

	_, err = r.Next()
	require.ErrorIs(t, err, ErrMalformed)
	assert.Contains(t, err.Error(), `token 2 "two"`)

	_, err = NewReader(strings.NewReader("1 2.5")).ReadAll()
	assert.ErrorIs(t, err, ErrMalformed)

	_, err = NewReader(strings.NewReader("99999999999999999999")).Next()
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestReaderRequire(t *testing.T) {
	r := NewReader(strings.NewReader("7"))

	v, err := r.Require("header")
	require.NoError(t, err)
	assert.Equal(t, int64(7), v)

	_, err = r.Require("travel time")
	require.ErrorIs(t, err, ErrUnexpectedEOF)
	assert.Contains(t, err.Error(), "travel time")
}

func TestReaderReadN(t *testing.T) {
	r := NewReader(strings.NewReader("1 2 3 4"))

	values, err := r.ReadN(3, "times")
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3}, values)

	_, err = r.ReadN(2, "times")
	require.ErrorIs(t, err, ErrUnexpectedEOF)
	assert.Contains(t, err.Error(), "times[1]")

	values, err = NewReader(strings.NewReader("")).ReadN(0, "none")
	require.NoError(t, err)
	assert.Empty(t, values)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("disk on fire") }

func TestReaderIOError(t *testing.T) {
	_, err := NewReader(failingReader{}).Next()
	require.Error(t, err)
	assert.NotErrorIs(t, err, io.EOF)
	assert.Contains(t, err.Error(), "disk on fire")
}

package buffer

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_New_rejectsNonPositivePageSize(t *testing.T) {
	_, err := New(strings.NewReader("x"), 0)
	assert.Error(t, err)
}

func Test_New_firstRefillPopulatesSlabZero(t *testing.T) {
	assert := assert.New(t)
	b, err := New(strings.NewReader("ab"), 4)
	if !assert.NoError(err) {
		return
	}

	assert.Equal(0, b.Active())
	data, sentinel, eof := b.Bytes(0)
	assert.Equal([]byte("ab"), data)
	assert.Equal(2, sentinel)
	assert.True(eof)
}

func Test_Switch_fillsTheOtherSlabAndFlipsActive(t *testing.T) {
	assert := assert.New(t)
	// page size 2: "ab" and "cd" are full pages; the final "e" is a short
	// read, marking that refill as true end-of-input.
	b, err := New(strings.NewReader("abcde"), 2)
	if !assert.NoError(err) {
		return
	}

	data, _, eof := b.Bytes(0)
	assert.Equal([]byte("ab"), data)
	assert.False(eof)

	if err := b.Switch(); !assert.NoError(err) {
		return
	}
	assert.Equal(1, b.Active())
	data, _, eof = b.Bytes(1)
	assert.Equal([]byte("cd"), data)
	assert.False(eof)

	if err := b.Switch(); !assert.NoError(err) {
		return
	}
	assert.Equal(0, b.Active())
	data, _, eof = b.Bytes(0)
	assert.Equal([]byte("e"), data)
	assert.True(eof)
}

func Test_Switch_isNoOpAtTrueEndOfInput(t *testing.T) {
	assert := assert.New(t)
	b, err := New(strings.NewReader("ab"), 4)
	if !assert.NoError(err) {
		return
	}

	if err := b.Switch(); !assert.NoError(err) {
		return
	}
	assert.Equal(0, b.Active(), "Switch at true EOF must not flip active slab")
}

type erroringReader struct{}

func (erroringReader) Read([]byte) (int, error) {
	return 0, errors.New("boom")
}

func Test_EnsureFilled_stickyErrorOnRefillFailure(t *testing.T) {
	assert := assert.New(t)
	_, err := New(erroringReader{}, 4)
	if !assert.Error(err) {
		return
	}
	assert.Contains(err.Error(), "boom")
}

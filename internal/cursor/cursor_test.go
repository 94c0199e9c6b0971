package cursor

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dekarrin/langtoolkit/internal/buffer"
	"github.com/dekarrin/langtoolkit/internal/token"
)

func newCursor(t *testing.T, src string, pageSize int) *Cursor {
	t.Helper()
	buf, err := buffer.New(strings.NewReader(src), pageSize)
	if err != nil {
		t.Fatalf("buffer.New: %v", err)
	}
	return New(buf)
}

func Test_Advance_readsBytesInOrderAndTracksPosition(t *testing.T) {
	assert := assert.New(t)
	c := newCursor(t, "ab\ncd", 8)

	assert.Equal(token.Position{Row: 1, Column: 1}, c.Position())

	ch, ok, err := c.Advance()
	assert.NoError(err)
	assert.True(ok)
	assert.Equal(byte('a'), ch)
	assert.Equal(token.Position{Row: 1, Column: 2}, c.Position())

	c.Advance() // 'b'
	ch, ok, err = c.Advance()
	assert.NoError(err)
	assert.True(ok)
	assert.Equal(byte('\n'), ch)
	assert.Equal(token.Position{Row: 2, Column: 1}, c.Position())
}

func Test_Advance_reportsNotOkAtTrueEndOfInput(t *testing.T) {
	assert := assert.New(t)
	c := newCursor(t, "a", 8)

	_, ok, err := c.Advance()
	assert.NoError(err)
	assert.True(ok)

	_, ok, err = c.Advance()
	assert.NoError(err)
	assert.False(ok)
}

func Test_Peek_doesNotConsumeOrMovePosition(t *testing.T) {
	assert := assert.New(t)
	c := newCursor(t, "xy", 8)

	ch, ok, err := c.Peek()
	assert.NoError(err)
	assert.True(ok)
	assert.Equal(byte('x'), ch)
	assert.Equal(token.Position{Row: 1, Column: 1}, c.Position())

	// Peeking again must return the same byte.
	ch, ok, err = c.Peek()
	assert.NoError(err)
	assert.True(ok)
	assert.Equal(byte('x'), ch)

	ch, _, _ = c.Advance()
	assert.Equal(byte('x'), ch)
}

func Test_PeekAhead_crossesASlabBoundaryWithoutMutatingTheCursor(t *testing.T) {
	assert := assert.New(t)
	// Page size 2 forces "abcd" across two slabs; PeekAhead(2) reads 'c',
	// which lives in the next slab.
	c := newCursor(t, "abcd", 2)

	ch, ok, err := c.PeekAhead(2)
	assert.NoError(err)
	assert.True(ok)
	assert.Equal(byte('c'), ch)

	// cursor position must not have moved.
	assert.Equal(token.Position{Row: 1, Column: 1}, c.Position())
	first, _, _ := c.Advance()
	assert.Equal(byte('a'), first)
}

func Test_PeekAhead_falseAtEndOfInput(t *testing.T) {
	assert := assert.New(t)
	c := newCursor(t, "ab", 8)

	_, ok, err := c.PeekAhead(5)
	assert.NoError(err)
	assert.False(ok)
}

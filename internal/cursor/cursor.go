// Package cursor implements L.cursor: a peek/advance character reader over
// a buffer.Buffer that tracks 1-indexed row/column position, per design
// §4.1.2 and §4.1.4.
package cursor

import (
	"github.com/dekarrin/langtoolkit/internal/buffer"
	"github.com/dekarrin/langtoolkit/internal/token"
)

// Cursor reads bytes one at a time from a buffer.Buffer, maintaining the
// source position of the next byte to be consumed. Advance is the sole
// mutator; Peek and PeekAhead never change Position, even though they may
// trigger a buffer refill to look across a slab boundary.
type Cursor struct {
	buf *buffer.Buffer
	pos int // index into the buffer's active slab

	row, col int
}

// New wraps buf in a Cursor positioned at row 1, column 1.
func New(buf *buffer.Buffer) *Cursor {
	return &Cursor{buf: buf, row: 1, col: 1}
}

// Position returns the row/column of the next byte Advance would consume.
func (c *Cursor) Position() token.Position {
	return token.Position{Row: c.row, Column: c.col}
}

// Peek returns the next byte without consuming it, or ok=false at true
// end-of-input. An error is returned only if looking across a slab
// boundary requires a refill that fails.
func (c *Cursor) Peek() (ch byte, ok bool, err error) {
	return c.resolve(0)
}

// PeekAhead returns the byte k positions ahead of the cursor (k=0 is the
// same as Peek), without consuming anything, walking across a slab
// boundary if needed.
func (c *Cursor) PeekAhead(k int) (ch byte, ok bool, err error) {
	return c.resolve(k)
}

// resolve walks forward k bytes from the cursor's current (slab, pos)
// without mutating c, following sentinels across a slab boundary by
// filling (but never activating) the other slab.
func (c *Cursor) resolve(k int) (byte, bool, error) {
	slab := c.buf.Active()
	pos := c.pos

	for {
		data, sentinel, eof := c.buf.Bytes(slab)

		if pos < sentinel {
			if k == 0 {
				return data[pos], true, nil
			}
			pos++
			k--
			continue
		}

		// pos == sentinel: either true EOF or a slab boundary to cross.
		if eof {
			return 0, false, nil
		}

		other := 1 - slab
		if err := c.buf.EnsureFilled(other); err != nil {
			return 0, false, err
		}
		slab = other
		pos = 0
	}
}

// Advance consumes and returns the next byte, updating row/column, and
// switching the underlying buffer to the next slab if the cursor has
// reached the current slab's sentinel. It returns ok=false at true
// end-of-input and never again advances afterward.
func (c *Cursor) Advance() (ch byte, ok bool, err error) {
	slab := c.buf.Active()
	data, sentinel, eof := c.buf.Bytes(slab)

	if c.pos == sentinel {
		if eof {
			return 0, false, nil
		}
		if err := c.buf.Switch(); err != nil {
			return 0, false, err
		}
		c.pos = 0
		slab = c.buf.Active()
		data, sentinel, eof = c.buf.Bytes(slab)
		if c.pos == sentinel && eof {
			// the newly-activated slab was itself empty: input ended
			// exactly on a page boundary.
			return 0, false, nil
		}
	}

	b := data[c.pos]
	c.pos++

	if b == '\n' {
		c.row++
		c.col = 1
	} else {
		c.col++
	}

	return b, true, nil
}

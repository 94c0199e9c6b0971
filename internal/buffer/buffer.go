// Package buffer implements L.buffer, the double-buffered byte source with
// sentinel termination described in design note §4.1.1.
//
// Two fixed-size slabs sit back-to-back. A refill reads up to PageSize
// bytes into a slab and writes a sentinel byte one past the last valid
// byte; the sentinel doubles as both an EOF marker and a buffer-boundary
// marker, so the hot single-byte path never needs a separate bounds check.
// Refill of the slab a cursor is about to enter happens lazily, either
// because the cursor advanced into it (package cursor's Advance, the sole
// mutator) or because a lookahead walked across the boundary to peek at it
// (package cursor's Peek/PeekAhead, which must stay idempotent and so only
// ever fills the *non-active* slab, never flips which one is active).
package buffer

import (
	"fmt"
	"io"
)

// Sentinel is the byte written one past the last valid byte of whichever
// slab was just filled.
const Sentinel byte = 0

// Buffer is a double-buffered, sentinel-terminated byte source.
type Buffer struct {
	r        io.Reader
	pageSize int

	slabs  [2][]byte // each pageSize+1 bytes; slabs[s][high[s]] == Sentinel
	high   [2]int    // index of the sentinel byte within slabs[s]
	eof    [2]bool   // whether slabs[s] ended on a short (or empty) read
	filled [2]bool   // whether slabs[s] holds data from the current refill
	active int       // 0 or 1: which slab the cursor is currently reading

	err error // sticky fatal error from a failed refill; never retried
}

// New creates a Buffer reading from r, with each slab sized pageSize bytes,
// and performs the first refill into slab 0.
func New(r io.Reader, pageSize int) (*Buffer, error) {
	if pageSize <= 0 {
		return nil, fmt.Errorf("buffer: page size must be positive, got %d", pageSize)
	}

	b := &Buffer{r: r, pageSize: pageSize}
	b.slabs[0] = make([]byte, pageSize+1)
	b.slabs[1] = make([]byte, pageSize+1)

	if err := b.EnsureFilled(0); err != nil {
		return nil, err
	}
	return b, nil
}

// refill reads up to pageSize bytes into slabs[slab] and writes the
// sentinel immediately after the last byte read. An I/O error other than
// EOF is fatal and sticks on the Buffer, per design note §5 ("failure of the
// buffer refill is fatal to lexing... no retry").
func (b *Buffer) refill(slab int) error {
	n, err := io.ReadFull(b.r, b.slabs[slab][:b.pageSize])
	switch {
	case err == nil:
		b.high[slab], b.eof[slab] = n, false
	case err == io.EOF || err == io.ErrUnexpectedEOF:
		b.high[slab], b.eof[slab] = n, true
	default:
		b.err = fmt.Errorf("buffer: refill failed: %w", err)
		return b.err
	}
	b.slabs[slab][b.high[slab]] = Sentinel
	b.filled[slab] = true
	return nil
}

// EnsureFilled refills slab if it does not already hold data from the
// current pass. Calling it more than once with nothing in between is a
// no-op, which is what keeps cursor.Peek idempotent even though it may call
// this to look across a slab boundary.
func (b *Buffer) EnsureFilled(slab int) error {
	if b.err != nil {
		return b.err
	}
	if b.filled[slab] {
		return nil
	}
	return b.refill(slab)
}

// Active returns the index of the slab currently being read from.
func (b *Buffer) Active() int {
	return b.active
}

// Bytes returns the valid bytes of the given slab, the index within it of
// the sentinel byte, and whether that sentinel marks true end-of-input.
// The slab must already be filled (see EnsureFilled).
func (b *Buffer) Bytes(slab int) (data []byte, sentinelIndex int, eof bool) {
	return b.slabs[slab][:b.high[slab]], b.high[slab], b.eof[slab]
}

// Switch makes the other slab active, filling it first if needed, and
// marks the slab just vacated as stale so a later EnsureFilled refills it
// rather than serving page-old bytes. It is a no-op if the active slab is
// already at true end-of-input: there is nothing further to switch to.
func (b *Buffer) Switch() error {
	if b.err != nil {
		return b.err
	}
	if b.eof[b.active] {
		return nil
	}

	other := 1 - b.active
	if err := b.EnsureFilled(other); err != nil {
		return err
	}
	b.filled[b.active] = false
	b.active = other
	return nil
}

// Err returns the sticky fatal I/O error from a prior refill, if any.
func (b *Buffer) Err() error {
	return b.err
}

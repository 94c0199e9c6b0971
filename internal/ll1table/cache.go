package ll1table

import (
	"fmt"
	"io"

	"github.com/dekarrin/rezi"

	"github.com/dekarrin/langtoolkit/internal/grammar"
)

// cachedCell and cachedTable are the rezi-friendly shapes Table's map is
// flattened to and rebuilt from: rezi has no notion of a Go map keyed by a
// struct, so the cell map is serialized as a plain slice of entries. Both
// types hand-implement encoding.BinaryMarshaler/BinaryUnmarshaler composed
// from rezi's primitive encoders, the way TunaQuest's token/tokenClass
// types do it: each field encoded in a fixed order, decoded back in the
// same order, with a nested BinaryMarshaler (cachedCell inside
// cachedTable's slice) going through rezi.EncBinary/DecBinary so its
// encoding is self-length-prefixed.
type cachedCell struct {
	NonTerminal string
	Terminal    string
	LHS         string
	Index       int
}

func (c cachedCell) MarshalBinary() ([]byte, error) {
	var data []byte
	data = append(data, rezi.EncString(c.NonTerminal)...)
	data = append(data, rezi.EncString(c.Terminal)...)
	data = append(data, rezi.EncString(c.LHS)...)
	data = append(data, rezi.EncInt(c.Index)...)
	return data, nil
}

func (c *cachedCell) UnmarshalBinary(data []byte) error {
	var err error
	var n int

	c.NonTerminal, n, err = rezi.DecString(data)
	if err != nil {
		return err
	}
	data = data[n:]

	c.Terminal, n, err = rezi.DecString(data)
	if err != nil {
		return err
	}
	data = data[n:]

	c.LHS, n, err = rezi.DecString(data)
	if err != nil {
		return err
	}
	data = data[n:]

	c.Index, _, err = rezi.DecInt(data)
	if err != nil {
		return err
	}
	return nil
}

type cachedTable struct {
	Start string
	Cells []cachedCell
}

func (t cachedTable) MarshalBinary() ([]byte, error) {
	var data []byte
	data = append(data, rezi.EncString(t.Start)...)
	data = append(data, rezi.EncInt(len(t.Cells))...)
	for _, c := range t.Cells {
		data = append(data, rezi.EncBinary(c)...)
	}
	return data, nil
}

func (t *cachedTable) UnmarshalBinary(data []byte) error {
	var err error
	var n int
	var count int

	t.Start, n, err = rezi.DecString(data)
	if err != nil {
		return err
	}
	data = data[n:]

	count, n, err = rezi.DecInt(data)
	if err != nil {
		return err
	}
	data = data[n:]
	if count < 0 {
		return fmt.Errorf("ll1table: negative cell count in cache")
	}

	t.Cells = make([]cachedCell, count)
	for i := 0; i < count; i++ {
		n, err = rezi.DecBinary(data, &t.Cells[i])
		if err != nil {
			return err
		}
		data = data[n:]
	}
	return nil
}

// SaveTo rezi-encodes t and writes it to w, for the optional `.ll1cache`
// file used to skip rebuilding a table across repeated runs. Only Start and
// Cells are persisted; Conflicts are not, so a Table returned by Load has an
// empty Conflicts list even if the saved table had conflicts.
func (t *Table) SaveTo(w io.Writer) error {
	ct := cachedTable{Start: t.Start}
	for key, ref := range t.Cells {
		ct.Cells = append(ct.Cells, cachedCell{
			NonTerminal: key.NonTerminal,
			Terminal:    key.Terminal,
			LHS:         ref.LHS,
			Index:       ref.Index,
		})
	}

	data := rezi.EncBinary(ct)
	_, err := w.Write(data)
	if err != nil {
		return fmt.Errorf("ll1table: write cache: %w", err)
	}
	return nil
}

// Load decodes a Table previously written by SaveTo from r.
func Load(r io.Reader) (*Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("ll1table: read cache: %w", err)
	}

	var ct cachedTable
	n, err := rezi.DecBinary(data, &ct)
	if err != nil {
		return nil, fmt.Errorf("ll1table: decode cache: %w", err)
	}
	if n != len(data) {
		return nil, fmt.Errorf("ll1table: decoded byte count mismatch; consumed %d/%d bytes", n, len(data))
	}

	t := &Table{Start: ct.Start, Cells: make(map[cellKey]grammar.ProductionRef, len(ct.Cells))}
	for _, c := range ct.Cells {
		t.Cells[cellKey{c.NonTerminal, c.Terminal}] = grammar.ProductionRef{LHS: c.LHS, Index: c.Index}
	}
	return t, nil
}

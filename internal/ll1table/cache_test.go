package ll1table

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dekarrin/langtoolkit/internal/firstfollow"
)

func Test_SaveTo_Load_roundTrip(t *testing.T) {
	assert := assert.New(t)

	g := exprGrammar(t)
	sets := firstfollow.Compute(g)
	tbl := Build(g, sets)

	var buf bytes.Buffer
	if err := tbl.SaveTo(&buf); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}

	loaded, err := Load(&buf)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	assert.Equal(tbl.Start, loaded.Start)
	assert.Equal(len(tbl.Cells), len(loaded.Cells))
	for key, ref := range tbl.Cells {
		got, ok := loaded.Cells[key]
		if assert.True(ok, "missing cell (%s, %s)", key.NonTerminal, key.Terminal) {
			assert.Equal(ref, got)
		}
	}
}

package symtab

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Table_IDOrInsert_assignsDenseIdsInFirstOccurrenceOrder(t *testing.T) {
	assert := assert.New(t)
	tbl := New[string]()

	id, inserted := tbl.IDOrInsert("foo")
	assert.Equal(1, id)
	assert.True(inserted)

	id, inserted = tbl.IDOrInsert("bar")
	assert.Equal(2, id)
	assert.True(inserted)

	id, inserted = tbl.IDOrInsert("foo")
	assert.Equal(1, id)
	assert.False(inserted)

	assert.Equal(2, tbl.Len())
	assert.Equal([]string{"foo", "bar"}, tbl.Keys())
}

func Test_Table_Keys_returnsACopy(t *testing.T) {
	tbl := New[string]()
	tbl.IDOrInsert("a")

	keys := tbl.Keys()
	keys[0] = "mutated"

	assert.Equal(t, []string{"a"}, tbl.Keys())
}

func Test_FormatChar(t *testing.T) {
	testCases := []struct {
		name string
		r    rune
		want string
	}{
		{"newline", '\n', `\n`},
		{"carriage return", '\r', `\r`},
		{"tab", '\t', `\t`},
		{"backslash", '\\', `\\`},
		{"single quote", '\'', `\'`},
		{"double quote", '"', `\"`},
		{"nul", 0, `\0`},
		{"printable", 'a', "a"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, FormatChar(tc.r))
		})
	}
}

func Test_EscapeString(t *testing.T) {
	assert.Equal(t, `hi\tthere\n`, EscapeString("hi\tthere\n"))
}

func Test_WriterSink_WriteEntry(t *testing.T) {
	var sb stringWriter
	sink := WriterSink{W: &sb}

	assert.NoError(t, sink.WriteEntry(1, "foo"))
	assert.NoError(t, sink.WriteEntry(2, "bar"))
	assert.NoError(t, sink.Close())

	assert.Equal(t, "1 foo\n2 bar\n", sb.String())
}

// stringWriter is a minimal io.Writer backed by a byte slice, defined
// locally to avoid importing strings just for this.
type stringWriter struct {
	data []byte
}

func (w *stringWriter) Write(p []byte) (int, error) {
	w.data = append(w.data, p...)
	return len(p), nil
}

func (w *stringWriter) String() string {
	return string(w.data)
}

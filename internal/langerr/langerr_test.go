package langerr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_New_formatsMessage(t *testing.T) {
	e := New(KindUnterminatedString, 3, 7, "unterminated string literal (partial: %q)", "abc")
	assert.Equal(t, KindUnterminatedString, e.Kind)
	assert.Equal(t, 3, e.Row)
	assert.Equal(t, 7, e.Column)
	assert.Equal(t, `unterminated string literal (partial: "abc")`, e.Message)
	assert.Empty(t, e.SourceLine)
}

func Test_WithSourceLine_returnsANewValue(t *testing.T) {
	base := New(KindInvalidSuffix, 1, 1, "bad suffix")
	withLine := base.WithSourceLine(`23abc34`)

	assert.Empty(t, base.SourceLine, "WithSourceLine must not mutate the receiver")
	assert.Equal(t, `23abc34`, withLine.SourceLine)
}

func Test_Error_rendersWithAndWithoutAPosition(t *testing.T) {
	positioned := New(KindUnknownByte, 5, 2, "unexpected byte %q", '$')
	assert.Equal(t, `error: around line 5, column 2: unexpected byte '$'`, positioned.Error())

	var zero PositionedError
	zero.Message = "no position known"
	assert.Equal(t, "error: no position known", zero.Error())
}

func Test_FullMessage_fallsBackToErrorWithoutASourceLine(t *testing.T) {
	e := New(KindUnterminatedComment, 2, 1, "unterminated block comment")
	assert.Equal(t, e.Error(), e.FullMessage())
}

func Test_FullMessage_prependsTheCaretRenderingWhenASourceLineIsAttached(t *testing.T) {
	e := New(KindInvalidExponent, 1, 5, "missing exponent digits").WithSourceLine("1e+ x")
	want := "1e+ x\n    ^\nerror: around line 1, column 5: missing exponent digits"
	assert.Equal(t, want, e.FullMessage())
}

func Test_SourceLineWithCursor_isEmptyWithoutASourceLine(t *testing.T) {
	e := New(KindMalformedCharOrLifetime, 1, 1, "empty character literal")
	assert.Equal(t, "", e.SourceLineWithCursor())
}

func Test_SourceLineWithCursor_placesTheCaretAtColumn(t *testing.T) {
	e := New(KindMalformedCharOrLifetime, 1, 3, "empty character literal").WithSourceLine("'' rest")
	assert.Equal(t, "'' rest\n  ^", e.SourceLineWithCursor())
}

package ansistrip

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

func TestBytesPlainText(t *testing.T) {
	assert.Equal(t, []byte("hello"), Bytes([]byte("hello")))
}

func TestBytesStripsSgrColor(t *testing.T) {
	got := Bytes([]byte("\x1b[31mred\x1b[0m plain"))
	assert.Equal(t, []byte("red plain"), got)
}

func TestBytesStripsCursorMovement(t *testing.T) {
	got := Bytes([]byte("before\x1b[2J\x1b[Hafter"))
	assert.Equal(t, []byte("beforeafter"), got)
}

func TestBytesStripsOscTitle(t *testing.T) {
	got := Bytes([]byte("\x1b]0;window title\x07visible"))
	assert.Equal(t, []byte("visible"), got)
}

func TestBytesStripsDcs(t *testing.T) {
	got := Bytes([]byte("a\x1bP+q6b64\x1b\\b"))
	assert.Equal(t, []byte("ab"), got)
}

func TestBytesDropsC0Controls(t *testing.T) {
	got := Bytes([]byte("a\x07b\x08c"))
	assert.Equal(t, []byte("abc"), got)
}

func TestBytesStripsNewlinesAndTabsAsC0(t *testing.T) {
	// Newlines and tabs are C0 bytes in the core grammar; ansistrip only
	// forwards Raw runs, so they disappear along with everything else a
	// terminal would otherwise interpret.
	got := Bytes([]byte("line1\nline2\tindented"))
	assert.Equal(t, []byte("line1line2indented"), got)
}

func TestStringMatchesBytes(t *testing.T) {
	input := "\x1b[1;32mok\x1b[0m"
	assert.Equal(t, string(Bytes([]byte(input))), String(input))
}

func TestFuncInvokedPerRun(t *testing.T) {
	var runs []string
	Func([]byte("a\x1b[31mb\x1b[0mc"), func(raw []byte) {
		runs = append(runs, string(raw))
	})
	assert.Equal(t, []string{"a", "b", "c"}, runs)
}

func TestFuncEmptyInputInvokesNothing(t *testing.T) {
	calls := 0
	Func(nil, func([]byte) { calls++ })
	assert.Equal(t, 0, calls)
}

// Cross-checks against github.com/charmbracelet/x/ansi's own Strip on
// inputs where both implementations are expected to agree: plain SGR
// coloring and cursor movement with no embedded C0 bytes, where "visible
// text" is unambiguous.
func TestBytesAgreesWithReferenceStripOnSgrOnlyInputs(t *testing.T) {
	cases := []string{
		"\x1b[1mbold\x1b[0m and \x1b[31mred\x1b[0m text",
		"no escapes here at all",
		"\x1b[38;5;208morange256\x1b[0m",
		"\x1b[2J\x1b[1;1Hcursor homed",
		"mixed \x1b[4munderline\x1b[24m and \x1b[7mreverse\x1b[27m styles",
	}
	for _, c := range cases {
		assert.Equal(t, ansi.Strip(c), String(c), "input: %q", c)
	}
}

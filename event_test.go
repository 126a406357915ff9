package vtparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEventKindString(t *testing.T) {
	assert.Equal(t, "Raw", EventRaw.String())
	assert.Equal(t, "DcsCancel", EventDcsCancel.String())
	assert.Contains(t, EventKind(250).String(), "Unknown")
}

func TestEventStringRaw(t *testing.T) {
	e := Event{Kind: EventRaw, Bytes: []byte("hi")}
	assert.Equal(t, `Raw("hi")`, e.String())
}

func TestEventStringC0(t *testing.T) {
	e := Event{Kind: EventC0, Byte: 0x1B}
	assert.Equal(t, "C0(0x1B)", e.String())
}

func TestEventStringCsi(t *testing.T) {
	e := Event{
		Kind:       EventCsi,
		HasPrivate: true,
		Private:    '?',
		Params:     [][]byte{[]byte("25")},
		Byte:       'h',
	}
	assert.Contains(t, e.String(), "private=?")
	assert.Contains(t, e.String(), "25")
	assert.Contains(t, e.String(), `final="h"`)
}

func TestEventStringCsiNoPrivate(t *testing.T) {
	e := Event{Kind: EventCsi, Byte: 'm'}
	assert.Contains(t, e.String(), "private=none")
}

func TestEventStringDefault(t *testing.T) {
	e := Event{Kind: EventPasteStart}
	assert.Equal(t, "PasteStart", e.String())
}

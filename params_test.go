package vtparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func slicesToStrings(slices [][]byte) []string {
	out := make([]string, len(slices))
	for i, s := range slices {
		out[i] = string(s)
	}
	return out
}

func TestParamsEmpty(t *testing.T) {
	p := NewParams(8)
	assert.True(t, p.IsEmpty())
	assert.Equal(t, 0, p.Len())
	assert.True(t, p.CurrentSliceEmpty())
	assert.Nil(t, p.Slices())
}

func TestParamsSingleValue(t *testing.T) {
	p := NewParams(8)
	p.PutByte('2')
	p.PutByte('5')
	require.Equal(t, 1, p.Len())
	assert.Equal(t, []string{"25"}, slicesToStrings(p.Slices()))
	assert.False(t, p.CurrentSliceEmpty())
}

func TestParamsSeparatedValues(t *testing.T) {
	p := NewParams(8)
	for _, b := range []byte("1;2;3;4;5") {
		if b == ';' {
			p.Separator()
		} else {
			p.PutByte(b)
		}
	}
	assert.Equal(t, []string{"1", "2", "3", "4", "5"}, slicesToStrings(p.Slices()))
}

func TestParamsSubParameterColonPreserved(t *testing.T) {
	p := NewParams(8)
	for _, b := range []byte("38:2:255:128:64") {
		p.PutByte(b)
	}
	assert.Equal(t, []string{"38:2:255:128:64"}, slicesToStrings(p.Slices()))
}

func TestParamsTrailingSeparatorProducesEmptySlice(t *testing.T) {
	p := NewParams(8)
	p.PutByte('1')
	p.Separator()
	assert.True(t, p.CurrentSliceEmpty())
	assert.Equal(t, []string{"1", ""}, slicesToStrings(p.Slices()))
}

func TestParamsPushEmptyAfterSeparatorAddsRedundantSlice(t *testing.T) {
	p := NewParams(8)
	p.PutByte('1')
	p.Separator()
	require.True(t, p.CurrentSliceEmpty())
	// Parser.csiDispatch only calls PushEmpty when CurrentSliceEmpty is
	// false; a caller who (incorrectly) calls it anyway still gets a
	// well-formed, if redundant, extra slice rather than corruption.
	p.PushEmpty()
	assert.Equal(t, []string{"1", "", ""}, slicesToStrings(p.Slices()))
}

func TestParamsOverflowDropsExcessButKeepsWhatFit(t *testing.T) {
	p := NewParams(3)
	p.PutByte('1')
	p.Separator()
	p.PutByte('2')
	p.Separator()
	p.PutByte('3')
	require.True(t, p.IsFull())
	p.Separator() // dropped: already full
	p.PutByte('4')
	assert.Equal(t, []string{"1", "2", "3"}, slicesToStrings(p.Slices()))
}

func TestParamsResetClearsEverything(t *testing.T) {
	p := NewParams(8)
	p.PutByte('1')
	p.Separator()
	p.PutByte('2')
	p.Reset()
	assert.True(t, p.IsEmpty())
	assert.True(t, p.CurrentSliceEmpty())
	assert.Nil(t, p.Slices())
}

func TestParamsStringRendersJoined(t *testing.T) {
	p := NewParams(8)
	p.PutByte('1')
	p.Separator()
	p.PutByte('2')
	assert.Equal(t, "Params{1;2}", p.String())

	empty := NewParams(8)
	assert.Equal(t, "Params{}", empty.String())
}

func TestNewParamsDefaultsWhenNonPositive(t *testing.T) {
	p := NewParams(0)
	assert.Equal(t, DefaultMaxParams, p.max)
}

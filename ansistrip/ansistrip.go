// Package ansistrip removes terminal control sequences from a byte stream,
// leaving only the ground-state text a viewer without a terminal emulator
// would want to see. It is a downstream consumer of vtparse: it never
// interprets what a sequence means, only whether it occupies space in the
// output.
package ansistrip

import (
	"strings"

	"github.com/mmastrac/vtparse"
)

// Bytes strips every ESC/CSI/OSC/DCS/SOS/PM/APC sequence and C0 control
// byte from data, returning only the concatenated Raw text runs.
func Bytes(data []byte) []byte {
	out := make([]byte, 0, len(data))
	Func(data, func(raw []byte) {
		out = append(out, raw...)
	})
	return out
}

// String is the string convenience form of Bytes.
func String(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	Func([]byte(s), func(raw []byte) {
		b.Write(raw)
	})
	return b.String()
}

// Func feeds data through a fresh parser and invokes onText once per
// surviving run of ground-state bytes, in order. onText's argument is only
// valid for the duration of the call, matching vtparse.Sink's contract.
func Func(data []byte, onText func([]byte)) {
	p := vtparse.NewParser()
	sink := func(e vtparse.Event) {
		if e.Kind == vtparse.EventRaw {
			onText(e.Bytes)
		}
	}
	p.Feed(data, sink)
	p.Finish(sink)
}

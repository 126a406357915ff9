package vtparse

// DefaultMaxIntermediates is the default cap on the number of 0x20-0x2F
// intermediate bytes collected before a final. Spec requires at least 4;
// the teacher caps at 2 (MaxIntermediates), tuned for its own Performer
// dispatch which never saw sequences needing more.
const DefaultMaxIntermediates = 4

// pasteEndTarget is the literal byte sequence that terminates a bracketed
// paste in input mode: CSI 201 ~.
var pasteEndTarget = [...]byte{0x1B, '[', '2', '0', '1', '~'}

// escByte is a shared, read-only one-byte buffer used to replay a
// previously-buffered ESC that turned out to be payload data rather than
// the start of an ST, when that decision can only be made on the next Feed
// call (the original byte's backing array is gone by then).
var escByte = [1]byte{0x1B}

// Option configures a Parser at construction time.
type Option func(*parserConfig)

type parserConfig struct {
	inputMode        bool
	maxParams        int
	maxIntermediates int
}

// WithInputMode selects the input-mode variant of the automaton: SS2/SS3
// emit distinct events, ESC ESC emits an empty-intermediates Esc event
// instead of C0(0x1B), bracketed paste (CSI 200~/201~) is recognized,
// DEL(0x7F) is emitted as C0(0x7F) instead of dropped, and a colon at DCS
// entry folds into DcsIgnore.
func WithInputMode() Option {
	return func(c *parserConfig) { c.inputMode = true }
}

// WithMaxParams overrides the parameter slot cap (default DefaultMaxParams).
func WithMaxParams(n int) Option {
	return func(c *parserConfig) {
		if n > 0 {
			c.maxParams = n
		}
	}
}

// WithMaxIntermediates overrides the intermediate byte cap (default
// DefaultMaxIntermediates).
func WithMaxIntermediates(n int) Option {
	return func(c *parserConfig) {
		if n > 0 {
			c.maxIntermediates = n
		}
	}
}

// Parser is a streaming, push-style, single-threaded byte-level automaton
// for the VT/ANSI terminal protocol. It never fails: malformed or
// pathological input is absorbed into Ignore states rather than returned as
// an error. A Parser is not safe for concurrent use.
//
// Feed and Finish drive the automaton; State and InputMode are read-only
// accessors. Construct with NewParser.
type Parser struct {
	state     State
	inputMode bool

	maxIntermediates int
	intermediates    []byte

	params *Params

	hasPrivate bool
	private    byte

	dcsPendingESC bool
	oscPendingESC bool
	sosPendingESC bool

	pasteMatchPos int
	pasteMatchBuf [len(pasteEndTarget)]byte
}

// NewParser constructs a Parser in output-mode by default; pass
// WithInputMode to select the input-mode variant.
func NewParser(opts ...Option) *Parser {
	cfg := parserConfig{
		maxParams:        DefaultMaxParams,
		maxIntermediates: DefaultMaxIntermediates,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Parser{
		state:            StateGround,
		inputMode:        cfg.inputMode,
		maxIntermediates: cfg.maxIntermediates,
		intermediates:    make([]byte, 0, cfg.maxIntermediates),
		params:           NewParams(cfg.maxParams),
	}
}

// State returns the automaton's current state, mainly useful for tests and
// diagnostics.
func (p *Parser) State() State { return p.state }

// InputMode reports which automaton variant this Parser was built with.
func (p *Parser) InputMode() bool { return p.inputMode }

func flushRun(kind EventKind, data []byte, start, end int, sink Sink) {
	if end > start {
		sink(Event{Kind: kind, Bytes: data[start:end]})
	}
}

func (p *Parser) resetSequenceScratch() {
	p.params.Reset()
	p.intermediates = p.intermediates[:0]
	p.hasPrivate = false
	p.private = 0
}

func (p *Parser) beginEscape() {
	p.resetSequenceScratch()
	p.state = StateEscape
}

func (p *Parser) collectIntermediate(b byte) bool {
	if len(p.intermediates) >= p.maxIntermediates {
		return false
	}
	p.intermediates = append(p.intermediates, b)
	return true
}

// Feed advances the automaton by data, invoking sink zero or more times in
// byte-arrival order. The same logical sequence of events is produced
// regardless of how the input is chunked across Feed calls, modulo
// fragmentation of a single Raw/OscData/DcsData run into adjacent chunks
// whose concatenation is identical. sink must not retain any slice-typed
// field of an Event past the call that delivered it.
func (p *Parser) Feed(data []byte, sink Sink) {
	i := 0
	n := len(data)
	for i < n {
		switch p.state {
		case StateGround:
			i = p.advanceGround(data, i, sink)
		case StateEscape:
			i = p.advanceEscape(data, i, sink)
		case StateEscapeIntermediate:
			i = p.advanceEscapeIntermediate(data, i, sink)
		case StateEscapeSS2:
			i = p.advanceEscapeSS2(data, i, sink)
		case StateEscapeSS3:
			i = p.advanceEscapeSS3(data, i, sink)
		case StateCSIEntry:
			i = p.advanceCsiEntry(data, i, sink)
		case StateCSIParam:
			i = p.advanceCsiParam(data, i, sink)
		case StateCSIIntermediate:
			i = p.advanceCsiIntermediate(data, i, sink)
		case StateCSIIgnore:
			i = p.advanceCsiIgnore(data, i, sink)
		case StateOSCString:
			i = p.advanceOscString(data, i, sink)
		case StateDCSEntry:
			i = p.advanceDcsEntry(data, i, sink)
		case StateDCSParam:
			i = p.advanceDcsParam(data, i, sink)
		case StateDCSIntermediate:
			i = p.advanceDcsIntermediate(data, i, sink)
		case StateDCSPassthrough:
			i = p.advanceDcsPassthrough(data, i, sink)
		case StateDCSIgnore:
			i = p.advanceDcsIgnore(data, i, sink)
		case StateSOSPMApcString:
			i = p.advanceSosPmApcString(data, i, sink)
		case StatePasteBody:
			i = p.advancePasteBody(data, i, sink)
		default:
			i++
		}
	}
}

// Finish flushes whatever can be safely closed at end-of-stream: a bare
// pending ESC (nothing collected after it yet) becomes C0(0x1B) in output
// mode or an empty-intermediates Esc event in input mode. Anything further
// along — an escape with intermediates but no final, or a CSI/DCS/OSC/paste
// sequence in flight — is dropped without emitting an event, matching the
// parser's contract of never failing and absorbing the incomplete tail. Finish is
// idempotent: calling it again on an already-finished Parser emits nothing.
func (p *Parser) Finish(sink Sink) {
	if p.state == StateEscape {
		if p.inputMode {
			sink(Event{Kind: EventEsc, Intermediates: p.intermediates, Byte: 0x1B})
		} else {
			sink(Event{Kind: EventC0, Byte: 0x1B})
		}
	}
	p.state = StateGround
	p.resetSequenceScratch()
	p.pasteMatchPos = 0
	p.dcsPendingESC = false
	p.oscPendingESC = false
	p.sosPendingESC = false
}

// --- Ground -----------------------------------------------------------

func (p *Parser) advanceGround(data []byte, i int, sink Sink) int {
	n := len(data)
	j := i
	runStart := j
	for j < n {
		b := data[j]
		switch {
		case b == 0x1B:
			flushRun(EventRaw, data, runStart, j, sink)
			p.beginEscape()
			return j + 1
		case b == 0x9B:
			flushRun(EventRaw, data, runStart, j, sink)
			p.resetSequenceScratch()
			p.state = StateCSIEntry
			return j + 1
		case b == 0x90:
			flushRun(EventRaw, data, runStart, j, sink)
			p.resetSequenceScratch()
			p.state = StateDCSEntry
			return j + 1
		case b == 0x9D:
			flushRun(EventRaw, data, runStart, j, sink)
			p.resetSequenceScratch()
			p.state = StateOSCString
			sink(Event{Kind: EventOscStart})
			return j + 1
		case b == 0x9C:
			// ST outside of any string sequence: no-op.
			flushRun(EventRaw, data, runStart, j, sink)
			runStart = j + 1
			j++
		case b == 0x18 || b == 0x1A:
			flushRun(EventRaw, data, runStart, j, sink)
			sink(Event{Kind: EventC0, Byte: b})
			runStart = j + 1
			j++
		case b == 0x7F:
			flushRun(EventRaw, data, runStart, j, sink)
			if p.inputMode {
				sink(Event{Kind: EventC0, Byte: 0x7F})
			}
			runStart = j + 1
			j++
		case b < 0x20:
			flushRun(EventRaw, data, runStart, j, sink)
			sink(Event{Kind: EventC0, Byte: b})
			runStart = j + 1
			j++
		default:
			j++
		}
	}
	flushRun(EventRaw, data, runStart, j, sink)
	return j
}

// --- Escape -------------------------------------------------------------

// escapeControlByte handles the bytes common to Escape and EscapeIntermediate:
// a second ESC restarts the escape, CAN/SUB aborts it silently, and any
// other C0 byte executes in place. It reports whether it consumed b.
func (p *Parser) escapeControlByte(b byte, sink Sink) bool {
	switch {
	case b == 0x1B:
		if p.inputMode {
			sink(Event{Kind: EventEsc, Intermediates: p.intermediates, Byte: 0x1B})
		} else {
			sink(Event{Kind: EventC0, Byte: 0x1B})
		}
		p.beginEscape()
		return true
	case b == 0x18 || b == 0x1A:
		p.state = StateGround
		return true
	case b < 0x20:
		sink(Event{Kind: EventC0, Byte: b})
		return true
	}
	return false
}

func (p *Parser) advanceEscape(data []byte, i int, sink Sink) int {
	b := data[i]
	if p.escapeControlByte(b, sink) {
		return i + 1
	}
	switch {
	case isIntermediate(b):
		p.collectIntermediate(b)
		p.state = StateEscapeIntermediate
	case b == '[':
		p.state = StateCSIEntry
	case b == ']':
		p.state = StateOSCString
		sink(Event{Kind: EventOscStart})
	case b == 'P':
		p.state = StateDCSEntry
	case b == 'X' || b == '^' || b == '_':
		p.state = StateSOSPMApcString
	case p.inputMode && b == 'N':
		p.state = StateEscapeSS2
	case p.inputMode && b == 'O':
		p.state = StateEscapeSS3
	case isEscFinal(b):
		sink(Event{Kind: EventEsc, Intermediates: p.intermediates, Byte: b})
		p.state = StateGround
	default:
		// 0x7F or stray high byte mid-escape: ignored.
	}
	return i + 1
}

func (p *Parser) advanceEscapeIntermediate(data []byte, i int, sink Sink) int {
	b := data[i]
	if p.escapeControlByte(b, sink) {
		return i + 1
	}
	switch {
	case isIntermediate(b):
		// Cap reached: further intermediate bytes are silently dropped, but
		// the sequence still dispatches on its final, with the truncated
		// intermediates collected so far — unlike CSI/DCS, an intermediate
		// overflow here is not a reason to discard the whole sequence.
		p.collectIntermediate(b)
	case isEscFinal(b):
		sink(Event{Kind: EventEsc, Intermediates: p.intermediates, Byte: b})
		p.state = StateGround
	default:
	}
	return i + 1
}

func (p *Parser) advanceEscapeSS2(data []byte, i int, sink Sink) int {
	sink(Event{Kind: EventSs2, Byte: data[i]})
	p.state = StateGround
	return i + 1
}

func (p *Parser) advanceEscapeSS3(data []byte, i int, sink Sink) int {
	sink(Event{Kind: EventSs3, Byte: data[i]})
	p.state = StateGround
	return i + 1
}

// --- CSI ------------------------------------------------------------------

// csiControlByte handles CAN/SUB (silent cancel) and other C0 bytes
// (executed in place) common to CsiEntry/CsiParam/CsiIntermediate.
func (p *Parser) csiControlByte(b byte, sink Sink) bool {
	switch {
	case b == 0x18 || b == 0x1A:
		p.state = StateGround
		return true
	case b < 0x20:
		sink(Event{Kind: EventC0, Byte: b})
		return true
	}
	return false
}

// isSingleParamString reports whether params holds exactly one slice equal
// to want.
func isSingleParamString(params *Params, want string) bool {
	slices := params.Slices()
	return len(slices) == 1 && string(slices[0]) == want
}

func (p *Parser) csiDispatch(final byte, sink Sink) {
	// Checked against the raw collected params, before the trailing-empty-slice
	// rule below would otherwise turn a single "200" into ["200", ""] and miss
	// the match.
	if p.inputMode && !p.hasPrivate && final == '~' && isSingleParamString(p.params, "200") {
		sink(Event{Kind: EventPasteStart})
		p.resetSequenceScratch()
		p.pasteMatchPos = 0
		p.state = StatePasteBody
		return
	}
	if !p.hasPrivate && !p.params.CurrentSliceEmpty() {
		p.params.PushEmpty()
	}
	sink(Event{
		Kind:          EventCsi,
		HasPrivate:    p.hasPrivate,
		Private:       p.private,
		Params:        p.params.Slices(),
		Intermediates: p.intermediates,
		Byte:          final,
	})
	p.resetSequenceScratch()
	p.state = StateGround
}

func (p *Parser) advanceCsiEntry(data []byte, i int, sink Sink) int {
	b := data[i]
	if p.csiControlByte(b, sink) {
		return i + 1
	}
	switch {
	case isParamDigit(b) || b == ':':
		p.params.PutByte(b)
		p.state = StateCSIParam
	case b == ';':
		p.params.Separator()
		p.state = StateCSIParam
	case isPrivateMarker(b):
		p.hasPrivate = true
		p.private = b
		p.state = StateCSIParam
	case isIntermediate(b):
		if p.collectIntermediate(b) {
			p.state = StateCSIIntermediate
		} else {
			p.state = StateCSIIgnore
		}
	case isCsiFinal(b):
		p.csiDispatch(b, sink)
	case b == 0x7F:
	default:
		p.state = StateCSIIgnore
	}
	return i + 1
}

func (p *Parser) advanceCsiParam(data []byte, i int, sink Sink) int {
	b := data[i]
	if p.csiControlByte(b, sink) {
		return i + 1
	}
	switch {
	case isParamDigit(b) || b == ':':
		p.params.PutByte(b)
	case b == ';':
		p.params.Separator()
	case isPrivateMarker(b):
		// Private marker only valid immediately at entry.
		p.state = StateCSIIgnore
	case isIntermediate(b):
		if p.collectIntermediate(b) {
			p.state = StateCSIIntermediate
		} else {
			p.state = StateCSIIgnore
		}
	case isCsiFinal(b):
		p.csiDispatch(b, sink)
	case b == 0x7F:
	default:
		p.state = StateCSIIgnore
	}
	return i + 1
}

func (p *Parser) advanceCsiIntermediate(data []byte, i int, sink Sink) int {
	b := data[i]
	if p.csiControlByte(b, sink) {
		return i + 1
	}
	switch {
	case isIntermediate(b):
		if !p.collectIntermediate(b) {
			p.state = StateCSIIgnore
		}
	case isCsiFinal(b):
		p.csiDispatch(b, sink)
	case b == 0x7F:
	default:
		p.state = StateCSIIgnore
	}
	return i + 1
}

func (p *Parser) advanceCsiIgnore(data []byte, i int, sink Sink) int {
	b := data[i]
	switch {
	case isCsiFinal(b):
		p.state = StateGround
	case b == 0x18 || b == 0x1A:
		p.state = StateGround
	default:
		// everything else, including C0 bytes, is absorbed without emission.
	}
	return i + 1
}

// --- OSC --------------------------------------------------------------

func (p *Parser) advanceOscString(data []byte, i int, sink Sink) int {
	n := len(data)
	j := i
	if p.oscPendingESC {
		p.oscPendingESC = false
		if j < n && data[j] == '\\' {
			sink(Event{Kind: EventOscEnd})
			p.state = StateGround
			return j + 1
		}
		sink(Event{Kind: EventOscData, Bytes: escByte[:]})
	}
	runStart := j
	for j < n {
		b := data[j]
		switch {
		case b == 0x07:
			flushRun(EventOscData, data, runStart, j, sink)
			sink(Event{Kind: EventOscEnd})
			p.state = StateGround
			return j + 1
		case b == 0x1B:
			if j+1 < n {
				if data[j+1] == '\\' {
					flushRun(EventOscData, data, runStart, j, sink)
					sink(Event{Kind: EventOscEnd})
					p.state = StateGround
					return j + 2
				}
				j++
				continue
			}
			flushRun(EventOscData, data, runStart, j, sink)
			p.oscPendingESC = true
			return n
		case b == 0x9C:
			flushRun(EventOscData, data, runStart, j, sink)
			sink(Event{Kind: EventOscEnd})
			p.state = StateGround
			return j + 1
		case b == 0x18 || b == 0x1A:
			flushRun(EventOscData, data, runStart, j, sink)
			sink(Event{Kind: EventOscCancel})
			p.state = StateGround
			return j + 1
		case b == 0x7F:
			flushRun(EventOscData, data, runStart, j, sink)
			runStart = j + 1
			j++
		default:
			j++
		}
	}
	flushRun(EventOscData, data, runStart, j, sink)
	return j
}

// --- DCS ------------------------------------------------------------------

// dcsControlByte handles CAN/SUB (silent cancel, no DcsStart was ever
// emitted so there is nothing to cancel in the event stream) and other C0
// bytes for DcsEntry/DcsParam/DcsIntermediate. Unlike CSI, these pre-hook
// DCS states do not execute C0 bytes in place — grounded on the teacher's
// advanceDCSEntry/advanceDCSParam, which silently ignore them.
func (p *Parser) dcsControlByte(b byte) bool {
	switch {
	case b == 0x18 || b == 0x1A:
		p.state = StateGround
		return true
	case b < 0x20:
		return true
	}
	return false
}

func (p *Parser) dcsHook(final byte, sink Sink) {
	sink(Event{
		Kind:          EventDcsStart,
		HasPrivate:    p.hasPrivate,
		Private:       p.private,
		Params:        p.params.Slices(),
		Intermediates: p.intermediates,
		Byte:          final,
	})
	p.resetSequenceScratch()
	p.dcsPendingESC = false
	p.state = StateDCSPassthrough
}

func (p *Parser) advanceDcsEntry(data []byte, i int, sink Sink) int {
	b := data[i]
	if p.dcsControlByte(b) {
		return i + 1
	}
	switch {
	case b == ':' && p.inputMode:
		// Input-mode variant: a colon-private DCS introducer produces no
		// events and is only exited by a terminator/cancel in DcsIgnore.
		p.state = StateDCSIgnore
	case isParamDigit(b) || b == ':':
		p.params.PutByte(b)
		p.state = StateDCSParam
	case b == ';':
		p.params.Separator()
		p.state = StateDCSParam
	case isPrivateMarker(b):
		p.hasPrivate = true
		p.private = b
		p.state = StateDCSParam
	case isIntermediate(b):
		if p.collectIntermediate(b) {
			p.state = StateDCSIntermediate
		} else {
			p.state = StateDCSIgnore
		}
	case isCsiFinal(b):
		p.dcsHook(b, sink)
	case b == 0x7F:
	default:
		p.state = StateDCSIgnore
	}
	return i + 1
}

func (p *Parser) advanceDcsParam(data []byte, i int, sink Sink) int {
	b := data[i]
	if p.dcsControlByte(b) {
		return i + 1
	}
	switch {
	case isParamDigit(b) || b == ':':
		p.params.PutByte(b)
	case b == ';':
		p.params.Separator()
	case isPrivateMarker(b):
		p.state = StateDCSIgnore
	case isIntermediate(b):
		if p.collectIntermediate(b) {
			p.state = StateDCSIntermediate
		} else {
			p.state = StateDCSIgnore
		}
	case isCsiFinal(b):
		p.dcsHook(b, sink)
	case b == 0x7F:
	default:
		p.state = StateDCSIgnore
	}
	return i + 1
}

func (p *Parser) advanceDcsIntermediate(data []byte, i int, sink Sink) int {
	b := data[i]
	if p.dcsControlByte(b) {
		return i + 1
	}
	switch {
	case isIntermediate(b):
		if !p.collectIntermediate(b) {
			p.state = StateDCSIgnore
		}
	case isCsiFinal(b):
		p.dcsHook(b, sink)
	case b == 0x7F:
	default:
		// Includes a stray digit after an intermediate: the formal grammar
		// (finals are 0x40-0x7E) wins over the narrative example in spec
		// that describes a digit as if it were a final — see DESIGN.md.
		p.state = StateDCSIgnore
	}
	return i + 1
}

func (p *Parser) advanceDcsIgnore(data []byte, i int, sink Sink) int {
	b := data[i]
	switch {
	case isCsiFinal(b):
		p.state = StateGround
	case b == 0x18 || b == 0x1A:
		p.state = StateGround
	default:
	}
	return i + 1
}

func (p *Parser) advanceDcsPassthrough(data []byte, i int, sink Sink) int {
	n := len(data)
	j := i
	if p.dcsPendingESC {
		p.dcsPendingESC = false
		if j < n && data[j] == '\\' {
			sink(Event{Kind: EventDcsEnd})
			p.state = StateGround
			return j + 1
		}
		sink(Event{Kind: EventDcsData, Bytes: escByte[:]})
	}
	runStart := j
	for j < n {
		b := data[j]
		switch {
		case b == 0x1B:
			if j+1 < n {
				if data[j+1] == '\\' {
					flushRun(EventDcsData, data, runStart, j, sink)
					sink(Event{Kind: EventDcsEnd})
					p.state = StateGround
					return j + 2
				}
				j++
				continue
			}
			flushRun(EventDcsData, data, runStart, j, sink)
			p.dcsPendingESC = true
			return n
		case b == 0x9C:
			flushRun(EventDcsData, data, runStart, j, sink)
			sink(Event{Kind: EventDcsEnd})
			p.state = StateGround
			return j + 1
		case b == 0x18 || b == 0x1A:
			flushRun(EventDcsData, data, runStart, j, sink)
			sink(Event{Kind: EventDcsCancel})
			p.state = StateGround
			return j + 1
		case b == 0x7F:
			flushRun(EventDcsData, data, runStart, j, sink)
			runStart = j + 1
			j++
		default:
			j++
		}
	}
	flushRun(EventDcsData, data, runStart, j, sink)
	return j
}

// --- SOS/PM/APC ---------------------------------------------------------

func (p *Parser) advanceSosPmApcString(data []byte, i int, sink Sink) int {
	n := len(data)
	j := i
	if p.sosPendingESC {
		p.sosPendingESC = false
		if j < n && data[j] == '\\' {
			p.state = StateGround
			return j + 1
		}
		// That ESC was part of the discarded payload; fall through.
	}
	for j < n {
		b := data[j]
		switch {
		case b == 0x1B:
			if j+1 < n {
				if data[j+1] == '\\' {
					p.state = StateGround
					return j + 2
				}
				j++
				continue
			}
			p.sosPendingESC = true
			return n
		case b == 0x9C:
			p.state = StateGround
			return j + 1
		case b == 0x18 || b == 0x1A:
			p.state = StateGround
			return j + 1
		default:
			j++
		}
	}
	return j
}

// --- Bracketed paste (input mode only) ------------------------------------

func (p *Parser) advancePasteBody(data []byte, i int, sink Sink) int {
	n := len(data)
	j := i
	runStart := j
	for j < n {
		b := data[j]
		if b == 0x18 || b == 0x1A {
			flushRun(EventRaw, data, runStart, j, sink)
			if p.pasteMatchPos > 0 {
				sink(Event{Kind: EventRaw, Bytes: p.pasteMatchBuf[:p.pasteMatchPos]})
				p.pasteMatchPos = 0
			}
			p.state = StateGround
			return j + 1
		}
		if b == pasteEndTarget[p.pasteMatchPos] {
			if p.pasteMatchPos == 0 {
				flushRun(EventRaw, data, runStart, j, sink)
			}
			p.pasteMatchBuf[p.pasteMatchPos] = b
			p.pasteMatchPos++
			j++
			if p.pasteMatchPos == len(pasteEndTarget) {
				sink(Event{Kind: EventPasteEnd})
				p.pasteMatchPos = 0
				p.state = StateGround
				return j
			}
			runStart = j
			continue
		}
		if p.pasteMatchPos > 0 {
			sink(Event{Kind: EventRaw, Bytes: p.pasteMatchBuf[:p.pasteMatchPos]})
			p.pasteMatchPos = 0
			runStart = j
			continue
		}
		j++
	}
	flushRun(EventRaw, data, runStart, j, sink)
	return j
}

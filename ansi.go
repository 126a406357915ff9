package vtparse

// C0 names the C0 control characters (0x00-0x1F), kept as ambient
// grounding from the teacher's ansi.go. The core automaton only ever
// compares against the raw byte values directly; this table exists for
// callers that want to name the byte carried by an EventC0.
var C0 = struct {
	NUL byte // Null
	SOH byte // Start of Heading
	STX byte // Start of Text
	ETX byte // End of Text
	EOT byte // End of Transmission
	ENQ byte // Enquiry
	ACK byte // Acknowledge
	BEL byte // Bell
	BS  byte // Backspace
	HT  byte // Horizontal Tab
	LF  byte // Line Feed
	VT  byte // Vertical Tab
	FF  byte // Form Feed
	CR  byte // Carriage Return
	SO  byte // Shift Out
	SI  byte // Shift In
	DLE byte // Data Link Escape
	DC1 byte // Device Control 1 (XON)
	DC2 byte // Device Control 2
	DC3 byte // Device Control 3 (XOFF)
	DC4 byte // Device Control 4
	NAK byte // Negative Acknowledge
	SYN byte // Synchronous Idle
	ETB byte // End of Transmission Block
	CAN byte // Cancel
	EM  byte // End of Medium
	SUB byte // Substitute
	ESC byte // Escape
	FS  byte // File Separator
	GS  byte // Group Separator
	RS  byte // Record Separator
	US  byte // Unit Separator
}{
	NUL: 0x00, SOH: 0x01, STX: 0x02, ETX: 0x03,
	EOT: 0x04, ENQ: 0x05, ACK: 0x06, BEL: 0x07,
	BS: 0x08, HT: 0x09, LF: 0x0A, VT: 0x0B,
	FF: 0x0C, CR: 0x0D, SO: 0x0E, SI: 0x0F,
	DLE: 0x10, DC1: 0x11, DC2: 0x12, DC3: 0x13,
	DC4: 0x14, NAK: 0x15, SYN: 0x16, ETB: 0x17,
	CAN: 0x18, EM: 0x19, SUB: 0x1A, ESC: 0x1B,
	FS: 0x1C, GS: 0x1D, RS: 0x1E, US: 0x1F,
}

// C1 names the C1 control characters (0x80-0x9F), the single-byte
// equivalents of several ESC-prefixed sequences the automaton recognizes
// directly in Ground state (CSI, DCS, OSC, ST).
var C1 = struct {
	PAD  byte // Padding Character
	HOP  byte // High Octet Preset
	BPH  byte // Break Permitted Here
	NBH  byte // No Break Here
	IND  byte // Index
	NEL  byte // Next Line
	SSA  byte // Start of Selected Area
	ESA  byte // End of Selected Area
	HTS  byte // Horizontal Tab Set
	HTJ  byte // Horizontal Tab with Justification
	VTS  byte // Vertical Tab Set
	PLD  byte // Partial Line Down
	PLU  byte // Partial Line Up
	RI   byte // Reverse Index
	SS2  byte // Single Shift 2
	SS3  byte // Single Shift 3
	DCS  byte // Device Control String
	PU1  byte // Private Use 1
	PU2  byte // Private Use 2
	STS  byte // Set Transmit State
	CCH  byte // Cancel Character
	MW   byte // Message Waiting
	SPA  byte // Start of Protected Area
	EPA  byte // End of Protected Area
	SOS  byte // Start of String
	SGCI byte // Single Graphic Character Introducer
	SCI  byte // Single Character Introducer
	CSI  byte // Control Sequence Introducer
	ST   byte // String Terminator
	OSC  byte // Operating System Command
	PM   byte // Privacy Message
	APC  byte // Application Program Command
}{
	PAD: 0x80, HOP: 0x81, BPH: 0x82, NBH: 0x83,
	IND: 0x84, NEL: 0x85, SSA: 0x86, ESA: 0x87,
	HTS: 0x88, HTJ: 0x89, VTS: 0x8A, PLD: 0x8B,
	PLU: 0x8C, RI: 0x8D, SS2: 0x8E, SS3: 0x8F,
	DCS: 0x90, PU1: 0x91, PU2: 0x92, STS: 0x93,
	CCH: 0x94, MW: 0x95, SPA: 0x96, EPA: 0x97,
	SOS: 0x98, SGCI: 0x99, SCI: 0x9A, CSI: 0x9B,
	ST: 0x9C, OSC: 0x9D, PM: 0x9E, APC: 0x9F,
}

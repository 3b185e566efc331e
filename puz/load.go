package puz

import "bytes"

// Load auto-detects whether data is the binary .puz container or the
// plain-text dialect and parses it accordingly. Binary files start with
// the fixed ACROSS&DOWN magic at a known offset; anything else is handed
// to the text parser.
func Load(data []byte) (*Puzzle, error) {
	if len(data) >= offMagic+12 && bytes.Equal(data[offMagic:offMagic+12], []byte(Magic)) {
		return LoadBinary(data)
	}
	return LoadText(data)
}

package puz

import "golang.org/x/text/encoding/charmap"

// DisplayString decodes a raw byte-string field (title, author, copyright,
// a clue, or notes) as Windows-1252, the encoding Across Lite assumes for
// all text outside the ASCII range. The Puzzle model itself never decodes
// its fields; everything on the aggregate stays an unsigned byte slice
// until a caller crosses the boundary into display text.
func DisplayString(b []byte) string {
	s, err := charmap.Windows1252.NewDecoder().Bytes(b)
	if err != nil {
		return string(b)
	}
	return string(s)
}

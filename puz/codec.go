package puz

import "encoding/binary"

// readU8 reads a single byte at off, failing if off is out of bounds.
func readU8(b []byte, off int) (uint8, error) {
	if off < 0 || off >= len(b) {
		return 0, newErrf(KindMalformedHeader, "read past end of buffer at offset %d", off)
	}
	return b[off], nil
}

// readU16LE reads a little-endian uint16 at off.
func readU16LE(b []byte, off int) (uint16, error) {
	if off < 0 || off+2 > len(b) {
		return 0, newErrf(KindMalformedHeader, "read past end of buffer at offset %d", off)
	}
	return binary.LittleEndian.Uint16(b[off : off+2]), nil
}

// writeU8 writes a single byte at off.
func writeU8(b []byte, off int, v uint8) {
	b[off] = v
}

// writeU16LE writes a little-endian uint16 at off.
func writeU16LE(b []byte, off int, v uint16) {
	binary.LittleEndian.PutUint16(b[off:off+2], v)
}

// readNulString scans b starting at off for a NUL terminator, returning a
// copy of the bytes before it (not including the NUL) and the offset just
// past the NUL. The copy never aliases b.
// maxLen bounds how far the scan may look before giving up; a maxLen of 0
// means unbounded.
func readNulString(b []byte, off, maxLen int) ([]byte, int, error) {
	limit := len(b)
	if maxLen > 0 && off+maxLen < limit {
		limit = off + maxLen
	}
	for i := off; i < limit; i++ {
		if b[i] == 0 {
			s := make([]byte, i-off)
			copy(s, b[off:i])
			return s, i + 1, nil
		}
	}
	return nil, 0, newErr(KindMalformedBody, "unterminated string: no NUL found within bounds")
}

package puz

// cksumRegion is the rotate-and-sum primitive shared by every checksum in
// the format: for each byte, rotate the accumulator right by one bit, then
// add the byte modulo 2^16.
//
// Three independent implementations of this exact routine exist in the
// wild (kobolabs/puz's C original, and at least two from-scratch Go ports);
// all rotate-then-add, confirming it as the one true algorithm rather than
// an artifact of one port.
func cksumRegion(data []byte, initial uint16) uint16 {
	sum := initial
	for _, b := range data {
		if sum&0x0001 != 0 {
			sum = (sum >> 1) | 0x8000
		} else {
			sum = sum >> 1
		}
		sum += uint16(b)
	}
	return sum
}

// cibBlock returns the 8-byte "checksummed info block": width, height,
// clue count (LE), the unknown bitmask (LE), and the scrambled tag (LE).
func (p *Puzzle) cibBlock() []byte {
	b := make([]byte, 8)
	b[0] = p.Width
	b[1] = p.Height
	writeU16LE(b, 2, p.ClueCount)
	writeU16LE(b, 4, p.unk30)
	writeU16LE(b, 6, p.ScrambledTag)
	return b
}

// cibChecksum returns the checksum of the CIB block alone.
func (p *Puzzle) cibChecksum() uint16 {
	return cksumRegion(p.cibBlock(), 0)
}

// textChecksum folds the title/author/copyright/clues/notes pieces (in
// that order) into iv. It's shared between the whole-file checksum (which
// starts from the CIB checksum after folding in the solution and grid) and
// the secondary checksum (which starts from zero and skips the grids).
func (p *Puzzle) textChecksum(iv uint16) uint16 {
	sum := iv
	if len(p.Title) > 0 {
		sum = cksumRegion(append(append([]byte{}, p.Title...), 0), sum)
	}
	if len(p.Author) > 0 {
		sum = cksumRegion(append(append([]byte{}, p.Author...), 0), sum)
	}
	if len(p.Copyright) > 0 {
		sum = cksumRegion(append(append([]byte{}, p.Copyright...), 0), sum)
	}
	for _, clue := range p.Clues {
		sum = cksumRegion(clue, sum)
	}
	if len(p.Notes) > 0 {
		sum = cksumRegion(append(append([]byte{}, p.Notes...), 0), sum)
	}
	return sum
}

// puzChecksum is the whole-file checksum: CIB, solution, grid, then the
// text pieces.
func (p *Puzzle) puzChecksum(cib uint16) uint16 {
	sum := cib
	sum = cksumRegion(p.Solution, sum)
	sum = cksumRegion(p.Grid, sum)
	sum = p.textChecksum(sum)
	return sum
}

// magicMask derives the masked checksum bytes (magic10/magic14) from the
// four constituent sums: CIB, solution, grid, secondary.
func magicMask(cib, sol, grid, secondary uint16) (lo, hi [4]byte) {
	sums := [4]uint16{cib, sol, grid, secondary}
	const loMask = "ICHE"
	const hiMask = "ATED"
	for i := 0; i < 4; i++ {
		lo[i] = byte(sums[i]&0xFF) ^ loMask[i]
		hi[i] = byte(sums[i]>>8) ^ hiMask[i]
	}
	return lo, hi
}

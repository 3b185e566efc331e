package puz

// ChecksumsCalc recomputes every checksum the puzzle's current content
// implies and stores them in the calc* shadow fields, without touching the
// fields that record what was parsed (or last committed). Call
// ChecksumsCheck to compare the two, or ChecksumsCommit to adopt the
// freshly computed values.
func (p *Puzzle) ChecksumsCalc() {
	cib := p.cibChecksum()
	secondary := p.textChecksum(0)
	solSum := cksumRegion(p.Solution, 0)
	gridSum := cksumRegion(p.Grid, 0)

	p.calcChecksumCIB = cib
	p.calcChecksumPuz = p.puzChecksum(cib)
	p.calcMagic10, p.calcMagic14 = magicMask(cib, solSum, gridSum, secondary)

	if p.HasRebus() {
		p.calcGrbsChecksum = cksumRegion(p.Grbs, 0)
		p.calcRtblChecksum = cksumRegion(joinRtbl(p.Rtbl), 0)
	}
	if p.HasTimer() {
		p.calcLtimChecksum = cksumRegion(p.Ltim, 0)
	}
	if p.HasExtras() {
		p.calcGextChecksum = cksumRegion(p.Gext, 0)
	}
	if p.HasRusr() {
		p.calcRusrChecksum = cksumRegion(rusrPayload(p.Rusr), 0)
	}
}

// ChecksumsCheck recomputes every checksum and returns how many of them
// disagree with the puzzle's recorded (parsed or committed) values. A
// trailing section only counts against the mismatch total if the puzzle
// actually carries that section; a puzzle with no rebus can't mismatch on
// a rebus checksum it never had.
func (p *Puzzle) ChecksumsCheck() int {
	p.ChecksumsCalc()

	mismatches := 0
	if p.ChecksumCIB != p.calcChecksumCIB {
		mismatches++
	}
	if p.ChecksumPuz != p.calcChecksumPuz {
		mismatches++
	}
	if p.Magic10 != p.calcMagic10 {
		mismatches++
	}
	if p.Magic14 != p.calcMagic14 {
		mismatches++
	}
	if p.HasRebus() {
		if p.grbsChecksum != p.calcGrbsChecksum {
			mismatches++
		}
		if p.rtblChecksum != p.calcRtblChecksum {
			mismatches++
		}
	}
	if p.HasTimer() && p.ltimChecksum != p.calcLtimChecksum {
		mismatches++
	}
	if p.HasExtras() && p.gextChecksum != p.calcGextChecksum {
		mismatches++
	}
	if p.HasRusr() && p.rusrChecksum != p.calcRusrChecksum {
		mismatches++
	}
	return mismatches
}

// ChecksumsCommit recomputes every checksum and adopts the freshly
// computed values as the puzzle's recorded ones. Callers that build a
// puzzle from scratch (rather than loading one) must call this before the
// recorded checksums are meaningful. Save writes freshly computed checksums
// into its output but does not commit them to the puzzle.
func (p *Puzzle) ChecksumsCommit() {
	p.ChecksumsCalc()

	p.ChecksumCIB = p.calcChecksumCIB
	p.ChecksumPuz = p.calcChecksumPuz
	p.Magic10 = p.calcMagic10
	p.Magic14 = p.calcMagic14

	if p.HasRebus() {
		p.grbsChecksum = p.calcGrbsChecksum
		p.rtblChecksum = p.calcRtblChecksum
	}
	if p.HasTimer() {
		p.ltimChecksum = p.calcLtimChecksum
	}
	if p.HasExtras() {
		p.gextChecksum = p.calcGextChecksum
	}
	if p.HasRusr() {
		p.rusrChecksum = p.calcRusrChecksum
	}
}

package puz

// canonicalSolution returns the solution letters in the order the
// scrambling cipher operates on them: column by column (x outer, y inner),
// skipping block squares entirely. This is distinct from the row-major
// order Solution is stored in.
func (p *Puzzle) canonicalSolution() []byte {
	w, h := int(p.Width), int(p.Height)
	out := make([]byte, 0, w*h)
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			c := p.Solution[y*w+x]
			if c != Block {
				out = append(out, c)
			}
		}
	}
	return out
}

// scatterCanonical writes letters (in canonical column-major, blocks
// skipped order) back into a row-major solution buffer the same shape as
// p.Solution, preserving block positions.
func (p *Puzzle) scatterCanonical(letters []byte) []byte {
	w, h := int(p.Width), int(p.Height)
	out := make([]byte, w*h)
	copy(out, p.Solution)
	i := 0
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			if out[y*w+x] != Block {
				out[y*w+x] = letters[i]
				i++
			}
		}
	}
	return out
}

// scrambleStep interleaves t into t': odd-indexed characters (in order)
// fill the first half, even-indexed characters (in order) fill the second
// half. t'[half+i/2] = t[i] for even i; t'[i/2] = t[i] for odd i.
func scrambleStep(t []byte) []byte {
	l := len(t)
	half := l / 2
	out := make([]byte, l)
	for i, c := range t {
		if i%2 == 0 {
			out[half+i/2] = c
		} else {
			out[i/2] = c
		}
	}
	return out
}

// unscrambleStep reverses scrambleStep.
func unscrambleStep(tp []byte) []byte {
	l := len(tp)
	half := l / 2
	out := make([]byte, l)
	for i := range out {
		if i%2 == 0 {
			out[i] = tp[half+i/2]
		} else {
			out[i] = tp[i/2]
		}
	}
	return out
}

// shift rotates t left by k: the prefix of length k moves to the end.
func shift(t []byte, k int) []byte {
	l := len(t)
	k = k % l
	out := make([]byte, l)
	copy(out, t[k:])
	copy(out[l-k:], t[:k])
	return out
}

// unshift is shift's exact inverse.
func unshift(t []byte, k int) []byte {
	l := len(t)
	k = k % l
	return shift(t, l-k)
}

// subtractCyclic subtracts digit d[p%4] from the character at position p,
// for every position, wrapping the alphabetic range so a result below 'A'
// is raised by 26.
func subtractCyclic(t []byte, d [4]int) []byte {
	out := make([]byte, len(t))
	for p, c := range t {
		v := int(c-'A') - d[p%4]
		v = ((v % 26) + 26) % 26
		out[p] = byte(v) + 'A'
	}
	return out
}

// addCyclic is subtractCyclic's exact inverse.
func addCyclic(t []byte, d [4]int) []byte {
	out := make([]byte, len(t))
	for p, c := range t {
		v := int(c-'A') + d[p%4]
		v = v % 26
		out[p] = byte(v) + 'A'
	}
	return out
}

// keyDigits splits a 4-digit key (each digit 1-9) into its individual
// digits, most significant first: d[0] is the thousands digit.
func keyDigits(key int) [4]int {
	return [4]int{
		(key / 1000) % 10,
		(key / 100) % 10,
		(key / 10) % 10,
		key % 10,
	}
}

// validKey reports whether key is a 4-digit number whose every digit is
// 1-9 (no zero digit is ever used as a scrambling key).
func validKey(key int) bool {
	if key < 1111 || key > 9999 {
		return false
	}
	d := keyDigits(key)
	for _, x := range d {
		if x == 0 {
			return false
		}
	}
	return true
}

// lockLetters scrambles canonical letters with the given key. It is the
// exact inverse of unlockLetters.
func lockLetters(letters []byte, key int) []byte {
	d := keyDigits(key)
	w := append([]byte(nil), letters...)
	for i := 0; i < 4; i++ {
		w = addCyclic(w, d)
		w = shift(w, d[i])
		w = scrambleStep(w)
	}
	return w
}

// unlockLetters attempts to decode canonical letters with the given key.
func unlockLetters(letters []byte, key int) []byte {
	d := keyDigits(key)
	w := append([]byte(nil), letters...)
	for i := 3; i >= 0; i-- {
		w = unscrambleStep(w)
		w = unshift(w, d[i])
		w = subtractCyclic(w, d)
	}
	return w
}

// Scramble locks the puzzle's solution with key (1111-9999, no zero
// digits), replacing Solution with its scrambled form and recording
// ScrambledChecksum and ScrambledTag. The player Grid is left untouched:
// callers that want to hide progress should blank it separately.
func (p *Puzzle) Scramble(key int) error {
	if !validKey(key) {
		return newErrf(KindInvalidArgument, "key %d is not a 4-digit code using only digits 1-9", key)
	}
	canonical := p.canonicalSolution()
	p.ScrambledChecksum = cksumRegion(canonical, 0)
	p.Solution = p.scatterCanonical(lockLetters(canonical, key))
	p.ScrambledTag = ScrambledTagLocked
	return nil
}

// Unlock attempts to unscramble the puzzle's solution with key. It fails
// with KindNotLocked if the puzzle isn't scrambled, or KindWrongKey if key
// decodes to a solution whose checksum doesn't match ScrambledChecksum; in
// both failure cases Solution is left untouched.
func (p *Puzzle) Unlock(key int) error {
	if p.ScrambledTag != ScrambledTagLocked {
		return newErr(KindNotLocked, "puzzle is not locked")
	}
	if !validKey(key) {
		return newErrf(KindInvalidArgument, "key %d is not a 4-digit code using only digits 1-9", key)
	}
	canonical := p.canonicalSolution()
	candidate := unlockLetters(canonical, key)
	if cksumRegion(candidate, 0) != p.ScrambledChecksum {
		return newErr(KindWrongKey, "key does not match the scrambled checksum")
	}
	p.Solution = p.scatterCanonical(candidate)
	p.ScrambledTag = 0
	p.ScrambledChecksum = 0
	return nil
}

// BruteForceUnlock tries every valid key (1111-9999, skipping any code
// with a zero digit) until one unlocks the puzzle, returning the key that
// worked. It fails with KindWrongKey if none does.
func (p *Puzzle) BruteForceUnlock() (int, error) {
	if p.ScrambledTag != ScrambledTagLocked {
		return 0, newErr(KindNotLocked, "puzzle is not locked")
	}
	canonical := p.canonicalSolution()
	for key := 1111; key <= 9999; key++ {
		if !validKey(key) {
			continue
		}
		candidate := unlockLetters(canonical, key)
		if cksumRegion(candidate, 0) == p.ScrambledChecksum {
			p.Solution = p.scatterCanonical(candidate)
			p.ScrambledTag = 0
			p.ScrambledChecksum = 0
			return key, nil
		}
	}
	return 0, newErr(KindWrongKey, "no key in 1111-9999 unlocks this puzzle")
}

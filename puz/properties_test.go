package puz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Property 3: cksum_region is associative over concatenation.
func TestCksumRegionAssociativeOverConcatenation(t *testing.T) {
	a := []byte("hello, ")
	b := []byte("world")
	ab := append(append([]byte(nil), a...), b...)

	whole := cksumRegion(ab, 0)
	piecewise := cksumRegion(b, cksumRegion(a, 0))
	assert.Equal(t, whole, piecewise)
}

// Property 4: magic_10/magic_14 are exactly the XOR mask over each sum's
// low/high byte.
func TestMagicMaskDerivation(t *testing.T) {
	cib := uint16(0x1234)
	sol := uint16(0xABCD)
	grid := uint16(0x5678)
	secondary := uint16(0x9E0F)

	lo, hi := magicMask(cib, sol, grid, secondary)
	sums := [4]uint16{cib, sol, grid, secondary}
	const loMask = "ICHE"
	const hiMask = "ATED"
	for i := 0; i < 4; i++ {
		assert.Equal(t, byte(sums[i]&0xFF), lo[i]^loMask[i])
		assert.Equal(t, byte(sums[i]>>8), hi[i]^hiMask[i])
	}
}

// Property 5: scramble/unscramble and shift/unshift are mutual inverses
// for any length-2-or-more run of letters.
func TestScrambleStepAndShiftAreInvertible(t *testing.T) {
	for _, l := range []int{2, 3, 4, 5, 8, 9, 20, 25} {
		letters := make([]byte, l)
		for i := range letters {
			letters[i] = byte('A' + i%26)
		}

		scrambled := scrambleStep(letters)
		assert.Equal(t, letters, unscrambleStep(scrambled), "length %d", l)

		for k := 0; k <= l; k++ {
			shifted := shift(letters, k)
			assert.Equal(t, letters, unshift(shifted, k), "length %d shift %d", l, k)
		}
	}
}

// Property 6: lock then unlock with the same code restores the original
// solution and clears the lock state.
func TestLockUnlockRoundTripIsIdentity(t *testing.T) {
	for _, code := range []int{1111, 2718, 9999, 4321} {
		p := New()
		require.NoError(t, p.SetDimensions(4, 4))
		require.NoError(t, p.SetSolution([]byte("ABCDEFGHIJKLMNOP")))
		require.NoError(t, p.SetGrid([]byte("----------------")))
		original := append([]byte(nil), p.Solution...)

		require.NoError(t, p.Scramble(code))
		require.NoError(t, p.Unlock(code))
		assert.Equal(t, original, p.Solution)
		assert.Equal(t, 0, int(p.ScrambledTag))
		assert.Equal(t, uint16(0), p.ScrambledChecksum)
	}
}

// Property 8: a text file and the binary file describing the same puzzle
// agree on every shared field, and the derived grid matches the solution
// with non-'.' replaced by '-'.
func TestTextAndBinaryAgree(t *testing.T) {
	bp := New()
	require.NoError(t, bp.SetDimensions(2, 2))
	require.NoError(t, bp.SetSolution([]byte("AB.D")))
	require.NoError(t, bp.SetGrid([]byte("--.-")))
	require.NoError(t, bp.SetClueCount(2))
	require.NoError(t, bp.SetClue(0, []byte("across one")))
	require.NoError(t, bp.SetClue(1, []byte("down one")))
	bp.Title = []byte("Agreement")
	bp.Author = []byte("Someone")
	bp.Copyright = []byte("(c) 2026")

	binData, err := Save(bp)
	require.NoError(t, err)
	fromBinary, err := LoadBinary(binData)
	require.NoError(t, err)

	textSrc := "<ACROSS PUZZLE>\n<TITLE>\nAgreement\n<AUTHOR>\nSomeone\n" +
		"<COPYRIGHT>\n(c) 2026\n<SIZE>\n2x2\n<GRID>\nAB\n.D\n" +
		"<ACROSS>\nacross one\n<DOWN>\ndown one\n"
	fromText, err := LoadText([]byte(textSrc))
	require.NoError(t, err)

	assert.Equal(t, string(fromBinary.Title), string(fromText.Title))
	assert.Equal(t, string(fromBinary.Author), string(fromText.Author))
	assert.Equal(t, string(fromBinary.Copyright), string(fromText.Copyright))
	assert.Equal(t, fromBinary.Width, fromText.Width)
	assert.Equal(t, fromBinary.Height, fromText.Height)
	assert.Equal(t, fromBinary.Solution, fromText.Solution)
	assert.Equal(t, fromBinary.Grid, fromText.Grid)
	assert.Equal(t, fromBinary.Clues, fromText.Clues)

	for i, c := range fromText.Solution {
		if c == Block {
			assert.Equal(t, byte(Block), fromText.Grid[i])
		} else {
			assert.Equal(t, byte(Empty), fromText.Grid[i])
		}
	}
}

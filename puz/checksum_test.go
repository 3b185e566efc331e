package puz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCksumRegionRotateAndAdd(t *testing.T) {
	// A single byte just gets added to the (unrotated, since the initial
	// low bit is 0) accumulator.
	assert.Equal(t, uint16(0x41), cksumRegion([]byte("A"), 0))

	// A nonzero initial value rotates right once before the byte is added.
	got := cksumRegion([]byte{0x00}, 0x0001)
	assert.Equal(t, uint16(0x8000), got)
}

func newFixture3x3(t *testing.T) *Puzzle {
	t.Helper()
	p := New()
	require.NoError(t, p.SetDimensions(3, 3))
	require.NoError(t, p.SetSolution([]byte("ABCDEFGHI")))
	require.NoError(t, p.SetGrid([]byte("---------")))
	require.NoError(t, p.SetClueCount(3))
	require.NoError(t, p.SetClue(0, []byte("a1")))
	require.NoError(t, p.SetClue(1, []byte("a2")))
	require.NoError(t, p.SetClue(2, []byte("d1")))
	return p
}

// E1: a 3x3 empty-metadata puzzle's CIB checksum is the rotate-and-sum of
// its 8-byte CIB block.
func TestChecksumsCalcCIBMatchesManualRegion(t *testing.T) {
	p := newFixture3x3(t)
	p.ChecksumsCalc()

	want := cksumRegion([]byte{3, 3, 3, 0, 1, 0, 0, 0}, 0)
	assert.Equal(t, want, p.calcChecksumCIB)
}

func TestChecksumsCommitThenCheckIsClean(t *testing.T) {
	p := newFixture3x3(t)
	p.ChecksumsCommit()
	assert.Equal(t, 0, p.ChecksumsCheck())
}

func TestChecksumsCheckDetectsTamperedBody(t *testing.T) {
	p := newFixture3x3(t)
	p.ChecksumsCommit()

	p.Solution[0] = 'Z'
	assert.Greater(t, p.ChecksumsCheck(), 0)
}

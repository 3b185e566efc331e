package puz

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidKeyRejectsZeroDigitsAndOutOfRange(t *testing.T) {
	assert.True(t, validKey(2718))
	assert.True(t, validKey(1111))
	assert.True(t, validKey(9999))
	assert.False(t, validKey(1110)) // zero digit
	assert.False(t, validKey(1000)) // all but one digit zero
	assert.False(t, validKey(1110))
	assert.False(t, validKey(111))  // too short
	assert.False(t, validKey(10000))
}

func TestLockUnlockLettersRoundTrip(t *testing.T) {
	letters := []byte("PIZZALOVERTESTSABCDE")
	locked := lockLetters(letters, 2718)
	assert.NotEqual(t, letters, locked)

	restored := unlockLetters(locked, 2718)
	assert.Equal(t, letters, restored)
}

func newScrambleFixture(t *testing.T, solution string) *Puzzle {
	t.Helper()
	p := New()
	require.NoError(t, p.SetDimensions(5, 5))
	require.NoError(t, p.SetSolution([]byte(solution)))
	require.NoError(t, p.SetGrid([]byte(strings.Repeat("-", 25))))
	return p
}

// E3: locking and unlocking a puzzle whose canonical solution has no block
// squares round-trips through the correct key and rejects the wrong one.
func TestScrambleAndUnlockE3(t *testing.T) {
	p := newScrambleFixture(t, "PIZZALOVERTESTSABCDEFGHIJ") // 25 letters, 5x5, no blocks

	original := append([]byte(nil), p.Solution...)

	require.NoError(t, p.Scramble(2718))
	assert.Equal(t, ScrambledTagLocked, int(p.ScrambledTag))
	assert.NotEqual(t, original, p.Solution)

	err := p.Unlock(1111)
	require.Error(t, err)
	var perr *Error
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, KindWrongKey, perr.Kind)
	// A failed unlock must not mutate the scrambled solution.
	assert.Equal(t, ScrambledTagLocked, int(p.ScrambledTag))

	require.NoError(t, p.Unlock(2718))
	assert.Equal(t, original, p.Solution)
	assert.Equal(t, 0, int(p.ScrambledTag))
	assert.Equal(t, uint16(0), p.ScrambledChecksum)
}

func TestUnlockNotLocked(t *testing.T) {
	p := newScrambleFixture(t, "PIZZALOVERTESTSABCDEFGHIJ")
	err := p.Unlock(2718)
	require.Error(t, err)
	var perr *Error
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, KindNotLocked, perr.Kind)
}

func TestBruteForceUnlockFindsTheKey(t *testing.T) {
	p := newScrambleFixture(t, "PIZZALOVERTESTSABCDEFGHIJ")
	original := append([]byte(nil), p.Solution...)

	require.NoError(t, p.Scramble(4321))

	found, err := p.BruteForceUnlock()
	require.NoError(t, err)
	assert.Equal(t, 4321, found)
	assert.Equal(t, original, p.Solution)
}

func TestScrambleWithBlockSquaresRoundTrips(t *testing.T) {
	p := New()
	require.NoError(t, p.SetDimensions(3, 3))
	require.NoError(t, p.SetSolution([]byte("AB.DEF.HI")))
	require.NoError(t, p.SetGrid([]byte("--.---.--")))

	original := append([]byte(nil), p.Solution...)

	require.NoError(t, p.Scramble(1234))
	for i, c := range p.Solution {
		if original[i] == Block {
			assert.Equal(t, byte(Block), c, "block squares must never be touched by scrambling")
		}
	}

	require.NoError(t, p.Unlock(1234))
	assert.Equal(t, original, p.Solution)
}

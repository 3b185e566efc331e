package puz

import (
	"strconv"
	"strings"
)

// Magic is the fixed 12-byte file magic, NUL-terminated.
const Magic = "ACROSS&DOWN\x00"

// DefaultVersion is the version string new puzzles are stamped with.
const DefaultVersion = "1.2\x00"

// ScrambledTagLocked is the value ScrambledTag takes when a puzzle's
// solution has been locked with Scramble.
const ScrambledTagLocked = 4

// HeaderSize is the size in bytes of the fixed binary header.
const HeaderSize = 0x34

// Block is the byte used for an unfillable ("black") square in the
// solution and grid.
const Block = '.'

// Empty is the byte used for a fillable-but-unfilled square in the player
// grid.
const Empty = '-'

// maxRusrEntryLen is the largest a single RUSR cell entry may be.
const maxRusrEntryLen = 100

// Puzzle is the in-memory representation of a crossword puzzle: its
// dimensions, solution and player grids, metadata, clues, and optional
// rebus/timer/extras/user-rebus sections. A Puzzle owns every byte-backed
// field it holds; nothing it returns aliases a caller-supplied buffer after
// a Load call returns.
type Puzzle struct {
	// Version is the 4-byte, NUL-terminated version string, e.g. "1.2\x00".
	Version string

	Width, Height uint8
	ClueCount     uint16
	unk30         uint16
	ScrambledTag  uint16

	// ScrambledChecksum is the checksum of the canonical (unscrambled)
	// solution, set when the puzzle is locked; zero otherwise.
	ScrambledChecksum uint16

	// ChecksumPuz and ChecksumCIB are the top-level checksums, either as
	// read from a binary file's header or as last committed by
	// ChecksumsCommit.
	ChecksumPuz uint16
	ChecksumCIB uint16

	// Magic10 and Magic14 are the derived masked-checksum bytes, likewise
	// either parsed or committed.
	Magic10 [4]byte
	Magic14 [4]byte

	// calc* hold the shadow values computed by ChecksumsCalc, compared
	// against the fields above by ChecksumsCheck and copied over them by
	// ChecksumsCommit.
	calcChecksumPuz uint16
	calcChecksumCIB uint16
	calcMagic10     [4]byte
	calcMagic14     [4]byte

	// Solution and Grid are row-major byte buffers of length Width*Height.
	// Solution holds '.' for black squares and the answer letter otherwise.
	// Grid holds '.' for black squares, '-' for an empty fillable square,
	// or a prefilled letter.
	Solution []byte
	Grid     []byte

	Title     []byte
	Author    []byte
	Copyright []byte
	Notes     []byte
	Clues     [][]byte

	// Grbs is a per-square rebus index (1-based key into Rtbl, plus one;
	// zero means no rebus), or nil if the puzzle has no rebus section.
	Grbs []byte
	// Rtbl is the ordered sequence of rebus table entries, each of the
	// form "KK:word".
	Rtbl []string
	// Ltim is the raw ASCII "elapsed,stopped" timer payload, or nil.
	Ltim []byte
	// Gext is a per-square flags byte (bit 128 = circled), or nil.
	Gext []byte
	// Rusr is a per-square optional user rebus entry (length Width*Height
	// once set; individual entries may be empty), or nil.
	Rusr   [][]byte
	rusrSz int

	grbsChecksum, calcGrbsChecksum uint16
	rtblChecksum, calcRtblChecksum uint16
	ltimChecksum, calcLtimChecksum uint16
	gextChecksum, calcGextChecksum uint16
	rusrChecksum, calcRusrChecksum uint16
}

// New returns an empty Puzzle with the version field set to DefaultVersion
// and the unknown CIB bitmask set to 1, ready to have its dimensions and
// content filled in. The file magic is not stored on the Puzzle; Save
// writes the Magic constant.
func New() *Puzzle {
	return &Puzzle{
		Version: DefaultVersion,
		unk30:   0x0001,
	}
}

// area returns Width*Height.
func (p *Puzzle) area() int {
	return int(p.Width) * int(p.Height)
}

// SetSolution installs the solution grid. The length of sol must equal
// Width*Height.
func (p *Puzzle) SetSolution(sol []byte) error {
	if p == nil {
		return newErr(KindInvalidArgument, "nil puzzle")
	}
	if len(sol) != p.area() {
		return newErrf(KindInvalidArgument, "solution length %d does not match %dx%d board", len(sol), p.Width, p.Height)
	}
	p.Solution = append([]byte(nil), sol...)
	return nil
}

// SetGrid installs the player grid. The length of grid must equal
// Width*Height.
func (p *Puzzle) SetGrid(grid []byte) error {
	if p == nil {
		return newErr(KindInvalidArgument, "nil puzzle")
	}
	if len(grid) != p.area() {
		return newErrf(KindInvalidArgument, "grid length %d does not match %dx%d board", len(grid), p.Width, p.Height)
	}
	p.Grid = append([]byte(nil), grid...)
	return nil
}

// SetDimensions sets the board width and height. It must be called before
// SetSolution, SetGrid, SetRebusGrid, SetExtras or SetUserRebus, since each
// of those validates its input against the board area.
func (p *Puzzle) SetDimensions(width, height uint8) error {
	if p == nil {
		return newErr(KindInvalidArgument, "nil puzzle")
	}
	p.Width, p.Height = width, height
	return nil
}

// SetClueCount allocates the clue array. It is a one-shot operation: if
// clues have already been allocated (even if empty entries haven't been
// assigned), it fails with KindInvalidArgument. Call ClearClues first to
// resize.
func (p *Puzzle) SetClueCount(n int) error {
	if p == nil {
		return newErr(KindInvalidArgument, "nil puzzle")
	}
	if n < 0 {
		return newErr(KindInvalidArgument, "negative clue count")
	}
	if p.Clues != nil {
		return newErr(KindInvalidArgument, "clue count already set; call ClearClues first")
	}
	p.Clues = make([][]byte, n)
	p.ClueCount = uint16(n)
	return nil
}

// ClearClues releases the clue array, allowing SetClueCount to be called
// again.
func (p *Puzzle) ClearClues() {
	p.Clues = nil
	p.ClueCount = 0
}

// SetClue assigns the text of clue i. i must be within [0, ClueCount).
func (p *Puzzle) SetClue(i int, text []byte) error {
	if p == nil {
		return newErr(KindInvalidArgument, "nil puzzle")
	}
	if i < 0 || i >= len(p.Clues) {
		return newErrf(KindInvalidArgument, "clue index %d out of range [0,%d)", i, len(p.Clues))
	}
	p.Clues[i] = append([]byte(nil), text...)
	return nil
}

// Clue returns the text of clue i, or an error if i is out of range.
func (p *Puzzle) Clue(i int) ([]byte, error) {
	if p == nil {
		return nil, newErr(KindInvalidArgument, "nil puzzle")
	}
	if i < 0 || i >= len(p.Clues) {
		return nil, newErrf(KindInvalidArgument, "clue index %d out of range [0,%d)", i, len(p.Clues))
	}
	return p.Clues[i], nil
}

// HasRebus reports whether the puzzle carries a rebus grid. An all-zero
// grid counts as no rebus, matching the loader's rule for discarding an
// all-zero GRBS section.
func (p *Puzzle) HasRebus() bool {
	if p.Grbs == nil {
		return false
	}
	for _, b := range p.Grbs {
		if b != 0 {
			return true
		}
	}
	return false
}

// SetRebusGrid installs the per-square rebus index grid. The length of
// grid must equal Width*Height. Passing an all-zero grid is recorded but
// HasRebus will report false for it, and Save will not emit a GRBS/RTBL
// section, matching the loader's rule for discarding an all-zero GRBS.
func (p *Puzzle) SetRebusGrid(grid []byte) error {
	if p == nil {
		return newErr(KindInvalidArgument, "nil puzzle")
	}
	if len(grid) != p.area() {
		return newErrf(KindInvalidArgument, "rebus grid length %d does not match %dx%d board", len(grid), p.Width, p.Height)
	}
	p.Grbs = append([]byte(nil), grid...)
	return nil
}

// ClearRebusTable releases the rebus table entries (but not the rebus
// grid itself).
func (p *Puzzle) ClearRebusTable() {
	p.Rtbl = nil
}

// SetRebusTable replaces the rebus table with entries, each of the form
// "KK:word".
func (p *Puzzle) SetRebusTable(entries []string) {
	p.Rtbl = append([]string(nil), entries...)
}

// AddRebusEntry appends one "KK:word" entry to the rebus table.
func (p *Puzzle) AddRebusEntry(entry string) {
	p.Rtbl = append(p.Rtbl, entry)
}

// HasTimer reports whether the puzzle carries a timer section.
func (p *Puzzle) HasTimer() bool { return p.Ltim != nil }

// SetTimer installs the timer section. A non-positive elapsed is encoded
// as "0,<stopped>" rather than invoking any base-10 digit-count logic on a
// non-positive number.
func (p *Puzzle) SetTimer(elapsedSeconds int, stopped bool) {
	if elapsedSeconds < 0 {
		elapsedSeconds = 0
	}
	stoppedFlag := "0"
	if stopped {
		stoppedFlag = "1"
	}
	p.Ltim = []byte(strconv.Itoa(elapsedSeconds) + "," + stoppedFlag)
}

// ClearTimer removes the timer section.
func (p *Puzzle) ClearTimer() {
	p.Ltim = nil
}

// Timer parses the "elapsed,stopped" timer payload. ok is false if there
// is no timer section or it isn't well formed.
func (p *Puzzle) Timer() (elapsedSeconds int, stopped bool, ok bool) {
	if p.Ltim == nil {
		return 0, false, false
	}
	parts := strings.SplitN(string(p.Ltim), ",", 2)
	if len(parts) != 2 {
		return 0, false, false
	}
	elapsed, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, false, false
	}
	return elapsed, parts[1] == "1", true
}

// HasExtras reports whether the puzzle carries a grid-extras section.
func (p *Puzzle) HasExtras() bool { return p.Gext != nil }

// SetExtras installs the per-square extras flags. The length of flags
// must equal Width*Height.
func (p *Puzzle) SetExtras(flags []byte) error {
	if p == nil {
		return newErr(KindInvalidArgument, "nil puzzle")
	}
	if len(flags) != p.area() {
		return newErrf(KindInvalidArgument, "extras length %d does not match %dx%d board", len(flags), p.Width, p.Height)
	}
	p.Gext = append([]byte(nil), flags...)
	return nil
}

// ClearExtras removes the grid-extras section.
func (p *Puzzle) ClearExtras() {
	p.Gext = nil
}

// circledBit marks a square as circled in the GEXT extras byte.
const circledBit = 0x80

// SetCircled marks or unmarks square (x, y) as circled, allocating the
// extras section on first use.
func (p *Puzzle) SetCircled(x, y int, circled bool) error {
	if p == nil {
		return newErr(KindInvalidArgument, "nil puzzle")
	}
	if x < 0 || x >= int(p.Width) || y < 0 || y >= int(p.Height) {
		return newErrf(KindInvalidArgument, "coordinate (%d,%d) out of range for %dx%d board", x, y, p.Width, p.Height)
	}
	if p.Gext == nil {
		p.Gext = make([]byte, p.area())
	}
	idx := y*int(p.Width) + x
	if circled {
		p.Gext[idx] |= circledBit
	} else {
		p.Gext[idx] &^= circledBit
	}
	return nil
}

// IsCircled reports whether square (x, y) is marked circled.
func (p *Puzzle) IsCircled(x, y int) bool {
	if p == nil || p.Gext == nil || x < 0 || x >= int(p.Width) || y < 0 || y >= int(p.Height) {
		return false
	}
	return p.Gext[y*int(p.Width)+x]&circledBit != 0
}

// HasRusr reports whether the puzzle carries a user-rebus section.
func (p *Puzzle) HasRusr() bool { return p.Rusr != nil }

// SetUserRebus is a one-shot operation that installs the per-square user
// rebus entries. len(entries) must equal Width*Height, and every entry
// must be at most 100 bytes. Call ClearUserRebus first to replace an
// existing set.
func (p *Puzzle) SetUserRebus(entries [][]byte) error {
	if p == nil {
		return newErr(KindInvalidArgument, "nil puzzle")
	}
	if p.Rusr != nil {
		return newErr(KindInvalidArgument, "user rebus already set; call ClearUserRebus first")
	}
	if len(entries) != p.area() {
		return newErrf(KindInvalidArgument, "user rebus entry count %d does not match %dx%d board", len(entries), p.Width, p.Height)
	}
	total := 0
	owned := make([][]byte, len(entries))
	for i, e := range entries {
		if len(e) > maxRusrEntryLen {
			return newErrf(KindInvalidArgument, "user rebus entry %d exceeds %d bytes", i, maxRusrEntryLen)
		}
		owned[i] = append([]byte(nil), e...)
		total += len(e) + 1
	}
	p.Rusr = owned
	p.rusrSz = total
	return nil
}

// ClearUserRebus removes the user-rebus section.
func (p *Puzzle) ClearUserRebus() {
	p.Rusr = nil
	p.rusrSz = 0
}


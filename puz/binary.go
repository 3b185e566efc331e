package puz

import (
	"log"
	"strings"
)

// Header field offsets, per the Across Lite .puz layout.
const (
	offChecksumPuz       = 0x00
	offMagic             = 0x02
	offChecksumCIB       = 0x0E
	offMagic10           = 0x10
	offMagic14           = 0x14
	offVersion           = 0x18
	offReserved1C        = 0x1C
	offScrambledChecksum = 0x1E
	offReserved20        = 0x20
	offWidth             = 0x2C
	offHeight            = 0x2D
	offClueCount         = 0x2E
	offUnk30             = 0x30
	offScrambledTag      = 0x32
)

// sectionHeaderSize is tag(4) + length(2).
const sectionHeaderSize = 6

// LoadBinary parses the binary .puz container format into a new Puzzle.
func LoadBinary(data []byte) (*Puzzle, error) {
	if len(data) < HeaderSize {
		return nil, newErrf(KindMalformedHeader, "buffer of %d bytes shorter than header size %d", len(data), HeaderSize)
	}

	p := New()

	checksumPuz, err := readU16LE(data, offChecksumPuz)
	if err != nil {
		return nil, err
	}
	magic := data[offMagic : offMagic+12]
	if string(magic) != Magic {
		return nil, newErr(KindMalformedHeader, "missing ACROSS&DOWN magic bytes")
	}
	checksumCIB, err := readU16LE(data, offChecksumCIB)
	if err != nil {
		return nil, err
	}
	var magic10, magic14 [4]byte
	copy(magic10[:], data[offMagic10:offMagic10+4])
	copy(magic14[:], data[offMagic14:offMagic14+4])

	p.Version = string(data[offVersion : offVersion+4])

	scrambledChecksum, err := readU16LE(data, offScrambledChecksum)
	if err != nil {
		return nil, err
	}

	width, err := readU8(data, offWidth)
	if err != nil {
		return nil, err
	}
	height, err := readU8(data, offHeight)
	if err != nil {
		return nil, err
	}
	clueCount, err := readU16LE(data, offClueCount)
	if err != nil {
		return nil, err
	}
	unk30, err := readU16LE(data, offUnk30)
	if err != nil {
		return nil, err
	}
	scrambledTag, err := readU16LE(data, offScrambledTag)
	if err != nil {
		return nil, err
	}

	p.ChecksumPuz = checksumPuz
	p.ChecksumCIB = checksumCIB
	p.Magic10 = magic10
	p.Magic14 = magic14
	p.ScrambledChecksum = scrambledChecksum
	p.Width, p.Height = width, height
	p.ClueCount = clueCount
	p.unk30 = unk30
	p.ScrambledTag = scrambledTag

	area := p.area()
	off := HeaderSize
	if off+2*area > len(data) {
		return nil, newErr(KindMalformedBody, "buffer too short for solution and grid")
	}
	p.Solution = append([]byte(nil), data[off:off+area]...)
	off += area
	p.Grid = append([]byte(nil), data[off:off+area]...)
	off += area

	p.Title, off, err = readNulString(data, off, 0)
	if err != nil {
		return nil, wrapErr(KindMalformedBody, "reading title", err)
	}
	p.Author, off, err = readNulString(data, off, 0)
	if err != nil {
		return nil, wrapErr(KindMalformedBody, "reading author", err)
	}
	p.Copyright, off, err = readNulString(data, off, 0)
	if err != nil {
		return nil, wrapErr(KindMalformedBody, "reading copyright", err)
	}

	clues := make([][]byte, 0, clueCount)
	for i := 0; i < int(clueCount); i++ {
		var clue []byte
		clue, off, err = readNulString(data, off, 0)
		if err != nil {
			return nil, newErrf(KindMalformedBody, "clue count is %d but only %d clues were present in the file", clueCount, i)
		}
		clues = append(clues, clue)
	}
	p.Clues = clues

	if off < len(data) {
		if notes, next, nerr := readNulString(data, off, 0); nerr == nil {
			p.Notes = notes
			off = next
		}
		// A puzzle that runs off the end of the buffer in the middle of the
		// notes field is tolerated: some puzzles in the wild do this, and
		// the notes field is the last thing read before the section loop.
	}

	if err := p.loadSections(data, off); err != nil {
		return nil, err
	}

	return p, nil
}

// loadSections consumes the trailing GRBS/RTBL/LTIM/GEXT/RUSR sections.
func (p *Puzzle) loadSections(data []byte, off int) error {
	area := p.area()

	for len(data)-off >= sectionHeaderSize {
		tag := string(data[off : off+4])
		length, err := readU16LE(data, off+4)
		if err != nil {
			return err
		}
		payloadStart := off + sectionHeaderSize + 2 // past tag, length, checksum
		checksum, err := readU16LE(data, off+sectionHeaderSize)
		if err != nil {
			return err
		}

		switch tag {
		case "GRBS":
			end := payloadStart + area
			if end+1 > len(data) {
				return newErr(KindMalformedBody, "GRBS section runs past end of buffer")
			}
			grid := data[payloadStart:end]
			off = end + 1 // past trailing NUL

			allZero := true
			for _, b := range grid {
				if b != 0 {
					allZero = false
					break
				}
			}

			hasRTBL := off+4 <= len(data) && string(data[off:off+4]) == "RTBL"
			if hasRTBL {
				rtblLen, err := readU16LE(data, off+4)
				if err != nil {
					return err
				}
				if rtblLen == 0 {
					return newErr(KindMalformedBody, "RTBL section contributed zero bytes")
				}
				rtblChecksum, err := readU16LE(data, off+sectionHeaderSize)
				if err != nil {
					return err
				}
				payloadEnd := off + sectionHeaderSize + 2 + int(rtblLen)
				if payloadEnd+1 > len(data) {
					return newErr(KindMalformedBody, "RTBL section runs past end of buffer")
				}
				payload := data[off+sectionHeaderSize+2 : payloadEnd]
				p.Rtbl = splitRtbl(payload)
				p.rtblChecksum = rtblChecksum
				off = payloadEnd + 1
			} else if !allZero {
				return newErr(KindMalformedBody, "GRBS section present with no following RTBL")
			}

			if !allZero {
				p.Grbs = append([]byte(nil), grid...)
				p.grbsChecksum = checksum
			}

		case "LTIM":
			if length == 0 {
				return newErr(KindMalformedBody, "LTIM section contributed zero bytes")
			}
			end := payloadStart + int(length)
			if end+1 > len(data) {
				return newErr(KindMalformedBody, "LTIM section runs past end of buffer")
			}
			p.Ltim = append([]byte(nil), data[payloadStart:end]...)
			p.ltimChecksum = checksum
			off = end + 1

		case "GEXT":
			end := payloadStart + area
			if end+1 > len(data) {
				return newErr(KindMalformedBody, "GEXT section runs past end of buffer")
			}
			p.Gext = append([]byte(nil), data[payloadStart:end]...)
			p.gextChecksum = checksum
			off = end + 1

		case "RUSR":
			if length == 0 {
				return newErr(KindMalformedBody, "RUSR section contributed zero bytes")
			}
			end := payloadStart + int(length)
			if end+1 > len(data) {
				return newErr(KindMalformedBody, "RUSR section runs past end of buffer")
			}
			payload := data[payloadStart:end]
			entries := make([][]byte, 0, area)
			cur := 0
			for i := 0; i < area; i++ {
				entry, next, err := readNulString(payload, cur, 0)
				if err != nil {
					return wrapErr(KindMalformedBody, "reading RUSR entry", err)
				}
				entries = append(entries, entry)
				cur = next
			}
			p.Rusr = entries
			p.rusrSz = int(length)
			p.rusrChecksum = checksum
			off = end + 1

		default:
			// Unknown trailing sections are non-fatal. The section frame is
			// tag(4) + length(2) + checksum(2) + payload(length) + NUL(1);
			// sectionHeaderSize (6) already accounts for tag+length, so the
			// remainder to skip is checksum + payload + NUL.
			log.Printf("puz: skipping unknown section %q (%d bytes)", tag, length)
			off = payloadStart + int(length) + 1
			if off > len(data) {
				return newErrf(KindMalformedBody, "unknown section %q runs past end of buffer", tag)
			}
		}
	}

	return nil
}

// splitRtbl splits a ";"-joined RTBL payload into its entries, discarding
// the trailing empty element produced by the final separator.
func splitRtbl(payload []byte) []string {
	s := string(payload)
	s = strings.TrimSuffix(s, ";")
	if s == "" {
		return nil
	}
	return strings.Split(s, ";")
}

// joinRtbl serializes the rebus table entries back into their ";"-joined
// wire form.
func joinRtbl(entries []string) []byte {
	return []byte(strings.Join(entries, ";"))
}

// rusrPayload concatenates the user-rebus entries into their wire form:
// each entry followed by a NUL, in order.
func rusrPayload(entries [][]byte) []byte {
	out := make([]byte, 0, len(entries)*2)
	for _, e := range entries {
		out = append(out, e...)
		out = append(out, 0)
	}
	return out
}

// Size returns the exact length in bytes of p's binary serialization.
func (p *Puzzle) Size() int {
	size := HeaderSize + 2*p.area()
	size += len(p.Title) + 1
	size += len(p.Author) + 1
	size += len(p.Copyright) + 1
	for _, c := range p.Clues {
		size += len(c) + 1
	}
	size += len(p.Notes) + 1

	if p.HasRebus() {
		size += sectionHeaderSize + 2 + p.area() + 1
		size += sectionHeaderSize + 2 + len(joinRtbl(p.Rtbl)) + 1
	}
	if p.HasTimer() {
		size += sectionHeaderSize + 2 + len(p.Ltim) + 1
	}
	if p.HasExtras() {
		size += sectionHeaderSize + 2 + p.area() + 1
	}
	if p.HasRusr() {
		size += sectionHeaderSize + 2 + p.rusrSz + 1
	}
	return size
}

// Save serializes p into the binary .puz container format, recomputing
// every checksum from its current content before writing.
func Save(p *Puzzle) ([]byte, error) {
	if p == nil {
		return nil, newErr(KindInvalidArgument, "nil puzzle")
	}
	if len(p.Solution) != p.area() || len(p.Grid) != p.area() {
		return nil, newErr(KindInvalidArgument, "solution or grid does not match the puzzle's dimensions")
	}

	p.ChecksumsCalc()

	out := make([]byte, HeaderSize, p.Size())

	writeU16LE(out, offChecksumPuz, p.calcChecksumPuz)
	copy(out[offMagic:offMagic+12], Magic)
	writeU16LE(out, offChecksumCIB, p.calcChecksumCIB)
	copy(out[offMagic10:offMagic10+4], p.calcMagic10[:])
	copy(out[offMagic14:offMagic14+4], p.calcMagic14[:])
	copy(out[offVersion:offVersion+4], fixed4(p.Version))
	writeU16LE(out, offScrambledChecksum, p.ScrambledChecksum)
	writeU8(out, offWidth, p.Width)
	writeU8(out, offHeight, p.Height)
	writeU16LE(out, offClueCount, p.ClueCount)
	writeU16LE(out, offUnk30, p.unk30)
	writeU16LE(out, offScrambledTag, p.ScrambledTag)

	out = append(out, p.Solution...)
	out = append(out, p.Grid...)
	out = appendNulString(out, p.Title)
	out = appendNulString(out, p.Author)
	out = appendNulString(out, p.Copyright)
	for _, c := range p.Clues {
		out = appendNulString(out, c)
	}
	out = appendNulString(out, p.Notes)

	if p.HasRebus() {
		out = appendSection(out, "GRBS", p.calcGrbsChecksum, p.Grbs)
		out = appendSection(out, "RTBL", p.calcRtblChecksum, joinRtbl(p.Rtbl))
	}
	if p.HasTimer() {
		out = appendSection(out, "LTIM", p.calcLtimChecksum, p.Ltim)
	}
	if p.HasExtras() {
		out = appendSection(out, "GEXT", p.calcGextChecksum, p.Gext)
	}
	if p.HasRusr() {
		out = appendSection(out, "RUSR", p.calcRusrChecksum, rusrPayload(p.Rusr))
	}

	return out, nil
}

// fixed4 pads or truncates s to exactly 4 bytes, matching the fixed-width
// version field.
func fixed4(s string) []byte {
	b := make([]byte, 4)
	copy(b, s)
	return b
}

// appendNulString appends s followed by a NUL terminator.
func appendNulString(out []byte, s []byte) []byte {
	out = append(out, s...)
	return append(out, 0)
}

// appendSection appends one trailing section: tag, length, checksum,
// payload, and a trailing NUL.
func appendSection(out []byte, tag string, checksum uint16, payload []byte) []byte {
	out = append(out, tag...)
	lenBuf := make([]byte, 2)
	writeU16LE(lenBuf, 0, uint16(len(payload)))
	out = append(out, lenBuf...)
	checksumBuf := make([]byte, 2)
	writeU16LE(checksumBuf, 0, checksum)
	out = append(out, checksumBuf...)
	out = append(out, payload...)
	return append(out, 0)
}

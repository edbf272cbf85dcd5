// Package locator finds the team region pointer table in a Mega Drive
// soccer-game ROM image without any prior knowledge of its address: it
// scans for a plausible team block by text shape, then searches nearby for
// the 6-longword pointer table that is consistent with it.
package locator

import (
	"encoding/binary"
	"fmt"

	"github.com/electrified/ss-rom-hack/attrsec"
	"github.com/electrified/ss-rom-hack/bitpack"
	"github.com/electrified/ss-rom-hack/log"
)

// Default scan bounds: the region of the ROM's code/data area where team
// blocks are known to live on every cartridge revision seen so far.
const (
	DefaultScanStart = 0x020000
	DefaultScanEnd   = 0x030000
)

const (
	minNameLen = 3
	maxNameLen = 25
	gapAfterBlock = 100
)

// PointerTable is the located 6-longword region pointer table: the start
// and end ROM offsets of each of the three team regions, plus the ROM
// offset of the table itself.
type PointerTable struct {
	TableBase int

	NationalStart, NationalEnd int
	ClubStart, ClubEnd         int
	CustomStart, CustomEnd     int
}

// Region returns the (start, end) offsets for the named category
// ("national", "club" or "custom").
func (pt *PointerTable) Region(name string) (start, end int, ok bool) {
	switch name {
	case "national":
		return pt.NationalStart, pt.NationalEnd, true
	case "club":
		return pt.ClubStart, pt.ClubEnd, true
	case "custom":
		return pt.CustomStart, pt.CustomEnd, true
	default:
		return 0, 0, false
	}
}

// tolerantUnpack decodes one 5-bit string starting at (byteOffset,
// bitOffset), but treats any decode error (invalid character, runaway
// length, truncated buffer) as "no string here" rather than propagating a
// fatal error — the heuristic scan expects to walk over plenty of bytes
// that aren't text at all.
func tolerantUnpack(data []byte, byteOffset, bitOffset int) (text string, nextByte, nextBit int, ok bool) {
	text, nextByte, nextBit, err := bitpack.UnpackString(data, byteOffset, bitOffset)
	if err != nil {
		return "", 0, 0, false
	}
	return text, nextByte, nextBit, true
}

func plausibleName(s string, ok bool) bool {
	return ok && len(s) >= minNameLen && len(s) <= maxNameLen
}

// AutoFindTeams scans [scanStart, scanEnd) of rom for offsets that look
// like the start of a team block's packed text: a plausible team name,
// followed by a known country, a plausible coach name, and a plausible
// first player name. It returns the ROM offsets of the text (not the
// attribute section, which precedes it by attrsec.Size bytes).
func AutoFindTeams(rom []byte, scanStart, scanEnd int) []int {
	var found []int

	offset := scanStart
	for offset < scanEnd && offset < len(rom) {
		name, b1, bit1, ok := tolerantUnpack(rom, offset, 0)
		if !plausibleName(name, ok) {
			offset++
			continue
		}

		country, b2, bit2, ok := tolerantUnpack(rom, b1, bit1)
		if !ok || !KnownCountries[country] {
			offset++
			continue
		}

		coach, b3, bit3, ok := tolerantUnpack(rom, b2, bit2)
		if !plausibleName(coach, ok) {
			offset++
			continue
		}

		player1, b4, bit4, ok := tolerantUnpack(rom, b3, bit3)
		if !plausibleName(player1, ok) {
			offset++
			continue
		}

		found = append(found, offset)

		textEnd := b4
		if bit4 > 0 {
			textEnd++
		}
		offset = textEnd + gapAfterBlock
	}

	return found
}

// FindPointerTable searches rom for a 6-longword pointer table consistent
// with one of the given team-text offsets: each text offset implies an
// attribute-section start (text offset minus attrsec.Size), and the table
// must name that block start as the start of one of the three regions,
// with the other five longwords in a mutually consistent order.
func FindPointerTable(rom []byte, textOffsets []int) (*PointerTable, error) {
	for _, textOff := range textOffsets {
		blockStart := textOff - attrsec.Size
		if blockStart < 0 {
			continue
		}
		var target [4]byte
		binary.BigEndian.PutUint32(target[:], uint32(blockStart))

		pos := 0
		for pos < DefaultScanEnd {
			found := indexOf(rom, target[:], pos, DefaultScanEnd)
			if found == -1 {
				break
			}

			for slot := 0; slot < 3; slot++ {
				tableBase := found - slot*4
				if tableBase < 0 || tableBase+24 > len(rom) {
					continue
				}

				natS := int(binary.BigEndian.Uint32(rom[tableBase:]))
				clubS := int(binary.BigEndian.Uint32(rom[tableBase+4:]))
				custS := int(binary.BigEndian.Uint32(rom[tableBase+8:]))
				natE := int(binary.BigEndian.Uint32(rom[tableBase+12:]))
				clubE := int(binary.BigEndian.Uint32(rom[tableBase+16:]))
				custE := int(binary.BigEndian.Uint32(rom[tableBase+20:]))

				if natS < clubS && clubS < custS &&
					natS < natE && natE <= clubS &&
					clubS < clubE && clubE <= custS &&
					custS < custE &&
					natS > 0x010000 && natS < 0x040000 {
					log.Debug("locator: pointer table found", log.F("tableBase", tableBase))
					return &PointerTable{
						TableBase:     tableBase,
						NationalStart: natS, NationalEnd: natE,
						ClubStart: clubS, ClubEnd: clubE,
						CustomStart: custS, CustomEnd: custE,
					}, nil
				}
			}

			pos = found + 1
		}
	}

	return nil, fmt.Errorf("locator: could not find a pointer table consistent with any scanned team block")
}

// indexOf returns the index of the first occurrence of sub in rom[from:to],
// or -1 if not found, mirroring Python's bytes.find(sub, from, to).
func indexOf(rom, sub []byte, from, to int) int {
	if to > len(rom) {
		to = len(rom)
	}
	if from < 0 {
		from = 0
	}
	for i := from; i+len(sub) <= to; i++ {
		if matches(rom, i, sub) {
			return i
		}
	}
	return -1
}

func matches(rom []byte, at int, sub []byte) bool {
	for j, b := range sub {
		if rom[at+j] != b {
			return false
		}
	}
	return true
}

// Locate scans rom for team blocks and, from them, the region pointer
// table. It is the entry point used when a caller has no other hint about
// where the team data lives.
func Locate(rom []byte) (*PointerTable, error) {
	textOffsets := AutoFindTeams(rom, DefaultScanStart, DefaultScanEnd)
	if len(textOffsets) == 0 {
		return nil, fmt.Errorf("locator: no team-shaped text found in scan range 0x%06X..0x%06X", DefaultScanStart, DefaultScanEnd)
	}
	return FindPointerTable(rom, textOffsets)
}

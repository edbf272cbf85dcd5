package teamrom

import (
	"encoding/binary"

	"github.com/electrified/ss-rom-hack/attrsec"
	"github.com/electrified/ss-rom-hack/bitpack"
	"github.com/electrified/ss-rom-hack/team"
)

// encodeTeamText packs all StringCount strings of a team (name, country,
// coach, then the 16 players in order) into one 5-bit packed byte slice.
func encodeTeamText(t *team.Team) ([]byte, error) {
	var values []byte

	texts := make([]string, 0, attrsec.StringCount)
	texts = append(texts, t.Team, t.Country, t.Coach)
	for _, p := range t.Players {
		texts = append(texts, p.Name)
	}

	for _, s := range texts {
		v, err := bitpack.EncodeString(s)
		if err != nil {
			return nil, err
		}
		values = append(values, v...)
	}

	return bitpack.Pack(values), nil
}

// computePackedPositions simulates the game's own text decoder over a
// block's attribute section (treated as 150 zero bytes, since only the text
// that follows matters to this simulation) plus its packed text, producing
// the StringCount packed position words ((byte_offset<<5)|bit_offset) the
// game uses to jump directly to each string.
//
// The decoder keeps two registers: D3, a byte offset that only ever
// advances in 2-byte (16-bit word) strides, and D4, a bit offset within
// the current 16-bit word (0..15). A 32-bit value is loaded at D3 on every
// word refill and is repeatedly rotated left by 5 bits to walk 5-bit
// characters off its top, reloading from D3+2 whenever D4 would reach 16.
func computePackedPositions(textBytes []byte) [attrsec.StringCount]uint16 {
	block := make([]byte, attrsec.Size+len(textBytes))
	copy(block[attrsec.Size:], textBytes)

	d3 := attrsec.Size
	d4 := 0

	var positions [attrsec.StringCount]uint16

	for i := 0; i < attrsec.StringCount; i++ {
		positions[i] = uint16(d3<<5 | d4)

		for {
			addr := d3
			var d5 uint32
			if addr+4 <= len(block) {
				d5 = uint32(block[addr])<<24 | uint32(block[addr+1])<<16 | uint32(block[addr+2])<<8 | uint32(block[addr+3])
			} else {
				var chunk [4]byte
				copy(chunk[:], block[addr:])
				d5 = uint32(chunk[0])<<24 | uint32(chunk[1])<<16 | uint32(chunk[2])<<8 | uint32(chunk[3])
			}

			if d4 > 0 {
				d5 = rotl32(d5, uint(d4))
			}

			var charVal uint32
			for {
				d4 += 5
				d5 = rotl32(d5, 5)
				charVal = d5 & 0x1F

				if charVal == 0 {
					if d4 >= 16 {
						d4 -= 16
						d3 += 2
					}
					break
				}

				if d4 >= 16 {
					d4 -= 16
					d3 += 2
					break // reload the 32-bit value at the new D3
				}
			}

			if charVal == 0 {
				break // string done
			}
		}
	}

	return positions
}

func rotl32(v uint32, n uint) uint32 {
	n &= 31
	return (v << n) | (v >> (32 - n))
}

// buildBlock writes an edited team's text and attributes into a new block,
// reusing originalAttrs as the base attribute section (for bytes this
// package never touches, and — when t.TacticBytesDiverge is set — for the
// raw tactic bytes 18 and 19, preserved verbatim instead of re-derived from
// t.Tactic).
func buildBlock(originalAttrs []byte, t *team.Team) ([]byte, error) {
	textBytes, err := encodeTeamText(t)
	if err != nil {
		return nil, err
	}
	positions := computePackedPositions(textBytes)

	attrs := make([]byte, attrsec.Size)
	copy(attrs, originalAttrs)

	attrsec.EncodePositions(attrs, positions)
	attrsec.EncodeKit(attrs, t.Kit)

	if t.TacticBytesDiverge {
		attrs[21] = byte(t.Skill&0x07)<<3 | byte(t.Flag&0x01)
	} else {
		attrsec.EncodeTeamAttrs(attrs, t.Tactic, t.Skill, t.Flag)
	}

	var playerAttrs [attrsec.PlayersPerTeam]attrsec.PlayerAttrs
	for i, p := range t.Players {
		playerAttrs[i] = attrsec.PlayerAttrs{
			Number:   p.Number,
			Position: p.Position,
			Role:     p.Role,
			Head:     p.Head,
			Star:     p.Star,
		}
	}
	attrsec.EncodePlayerAttrs(attrs, playerAttrs)

	padded := len(textBytes) % 2
	blockSize := attrsec.Size + len(textBytes) + padded
	binary.BigEndian.PutUint16(attrs[0:2], uint16(blockSize))

	block := make([]byte, 0, blockSize)
	block = append(block, attrs...)
	block = append(block, textBytes...)
	if padded != 0 {
		block = append(block, 0x00)
	}
	return block, nil
}

// Package attrsec decodes and encodes the fixed 150-byte attribute section
// that precedes every team block's packed text: the block-size word, the 19
// packed text positions, the two kit descriptors, the team-level tactic,
// skill and flag bytes, and the 16 player records.
package attrsec

import (
	"encoding/binary"

	"github.com/electrified/ss-rom-hack/team"
	"github.com/electrified/ss-rom-hack/teamcore"
)

// Size is the fixed length, in bytes, of a team's attribute section.
const Size = 150

// PlayersPerTeam mirrors team.PlayersPerTeam; kept local so this package
// does not need to special-case the value in its offset arithmetic.
const PlayersPerTeam = team.PlayersPerTeam

// StringCount is the number of packed-text strings per team: the team
// name, country, coach, and one per player.
const StringCount = 3 + PlayersPerTeam

// PositionOffsets lists, in string order (team, country, coach, then the
// 16 players), the byte offset within the attribute section at which each
// string's packed text position word is stored.
var PositionOffsets = [StringCount]int{
	2, 4, 6,
	22, 30, 38, 46, 54, 62, 70, 78, 86, 94, 102, 110, 118, 126, 134, 142,
}

const (
	kitOffset         = 8
	kitDescriptorSize = 5
	teamAttrsOffset   = 18
	skillFlagOffset   = 21
	playerBaseOffset  = 22
	playerRecordSize  = 8
	playerTextPosSize = 2
)

// DecodePositions reads the StringCount packed text-position words from an
// attribute section.
func DecodePositions(attrs []byte) [StringCount]uint16 {
	var positions [StringCount]uint16
	for i, off := range PositionOffsets {
		positions[i] = binary.BigEndian.Uint16(attrs[off : off+2])
	}
	return positions
}

// EncodePositions writes the StringCount packed text-position words into an
// attribute section.
func EncodePositions(attrs []byte, positions [StringCount]uint16) {
	for i, off := range PositionOffsets {
		binary.BigEndian.PutUint16(attrs[off:off+2], positions[i])
	}
}

func decodeKitDescriptor(attrs []byte, off int) team.KitDescriptor {
	return team.KitDescriptor{
		Style:  teamcore.StyleByID(attrs[off]),
		Shirt1: teamcore.ColorByID(attrs[off+1]),
		Shirt2: teamcore.ColorByID(attrs[off+2]),
		Shorts: teamcore.ColorByID(attrs[off+3]),
		Socks:  teamcore.ColorByID(attrs[off+4]),
	}
}

func encodeKitDescriptor(attrs []byte, off int, kd team.KitDescriptor) {
	attrs[off] = kd.Style.ID
	attrs[off+1] = kd.Shirt1.ID
	attrs[off+2] = kd.Shirt2.ID
	attrs[off+3] = kd.Shorts.ID
	attrs[off+4] = kd.Socks.ID
}

// DecodeKit reads both kit descriptors from bytes 8..17 of an attribute
// section.
func DecodeKit(attrs []byte) team.Kit {
	return team.Kit{
		First:  decodeKitDescriptor(attrs, kitOffset),
		Second: decodeKitDescriptor(attrs, kitOffset+kitDescriptorSize),
	}
}

// EncodeKit writes both kit descriptors into bytes 8..17 of an attribute
// section.
func EncodeKit(attrs []byte, kit team.Kit) {
	encodeKitDescriptor(attrs, kitOffset, kit.First)
	encodeKitDescriptor(attrs, kitOffset+kitDescriptorSize, kit.Second)
}

// TeamAttrs is the decoded form of a team's tactic, skill and flag bytes.
type TeamAttrs struct {
	Tactic   *teamcore.Tactic
	Skill    int
	Flag     int
	Diverges bool // true when byte 18 and byte 19 held different tactic IDs
}

// DecodeTeamAttrs reads the tactic, skill and flag bytes (18..21) of an
// attribute section. Byte 19 is the byte the game actually reads at match
// time; byte 18 normally mirrors it, but when the two diverge Diverges is
// set so a caller can decide how to handle the discrepancy.
func DecodeTeamAttrs(attrs []byte) TeamAttrs {
	mirror := attrs[teamAttrsOffset]
	active := attrs[teamAttrsOffset+1]
	skillFlag := attrs[skillFlagOffset]
	return TeamAttrs{
		Tactic:   teamcore.TacticByID(active),
		Skill:    int(skillFlag>>3) & 0x07,
		Flag:     int(skillFlag) & 0x01,
		Diverges: mirror != active,
	}
}

// EncodeTeamAttrs writes the tactic, skill and flag bytes (18..21) of an
// attribute section. Both tactic bytes (18 and 19) are written with the
// same ID, mirroring the game's normal layout; byte 20 is always zero.
func EncodeTeamAttrs(attrs []byte, tactic *teamcore.Tactic, skill, flag int) {
	attrs[teamAttrsOffset] = tactic.ID
	attrs[teamAttrsOffset+1] = tactic.ID
	attrs[teamAttrsOffset+2] = 0x00
	attrs[skillFlagOffset] = byte((skill&0x07)<<3) | byte(flag&0x01)
}

// PlayerAttrs is the decoded non-text portion of a single player record.
type PlayerAttrs struct {
	Number   int
	Position *teamcore.Position
	Role     *teamcore.Role
	Head     *teamcore.Head
	Star     bool
}

func playerRecordOffset(index int) int {
	return playerBaseOffset + index*playerRecordSize + playerTextPosSize
}

// DecodePlayerAttrs reads the 16 player records starting at byte 22 of an
// attribute section (each record's leading 2-byte packed text position is
// decoded separately via DecodePositions).
func DecodePlayerAttrs(attrs []byte) [PlayersPerTeam]PlayerAttrs {
	var players [PlayersPerTeam]PlayerAttrs
	for i := range players {
		off := playerRecordOffset(i)
		posByte := attrs[off]
		appByte := attrs[off+1]

		players[i] = PlayerAttrs{
			Number:   int(posByte&0x0F) + 1,
			Position: teamcore.PositionByID((posByte >> 4) & 0x0F),
			Role:     teamcore.RoleByID((appByte >> 2) & 0x03),
			Head:     teamcore.HeadByID(appByte & 0x03),
			Star:     (appByte>>4)&0x01 != 0,
		}
	}
	return players
}

// EncodePlayerAttrs writes the 16 player records into an attribute section
// starting at byte 22.
func EncodePlayerAttrs(attrs []byte, players [PlayersPerTeam]PlayerAttrs) {
	for i, p := range players {
		off := playerRecordOffset(i)
		var star byte
		if p.Star {
			star = 1
		}
		attrs[off] = (p.Position.ID<<4)&0xF0 | byte(p.Number-1)&0x0F
		attrs[off+1] = (star<<4)&0x10 | (p.Role.ID<<2)&0x0C | p.Head.ID&0x03
	}
}

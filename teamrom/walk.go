package teamrom

import (
	"encoding/binary"

	"github.com/electrified/ss-rom-hack/attrsec"
	"github.com/electrified/ss-rom-hack/bitpack"
	"github.com/electrified/ss-rom-hack/team"
)

const (
	minBlockSize = 160
	maxBlockSize = 500
)

// chainWalkRegion walks a region's team blocks using each block's leading
// 2-byte big-endian size word, returning the ROM offset of each block's
// attribute section. It fails if a size word is implausible or the walk
// doesn't land exactly on regionEnd.
func chainWalkRegion(rom []byte, regionName string, regionStart, regionEnd int) ([]int, error) {
	var blocks []int

	pos := regionStart
	for pos < regionEnd {
		if pos+2 > len(rom) {
			return nil, &BadBlockSizeError{Region: regionName, Offset: pos, Size: -1}
		}
		size := int(binary.BigEndian.Uint16(rom[pos : pos+2]))
		if size < minBlockSize || size > maxBlockSize {
			return nil, &BadBlockSizeError{Region: regionName, Offset: pos, Size: size}
		}
		blocks = append(blocks, pos)
		pos += size
	}
	if pos != regionEnd {
		return nil, &ChainUnterminatedError{Region: regionName, Got: pos, Want: regionEnd}
	}
	return blocks, nil
}

// decodedBlock is one team block's raw decode: the logical team plus the
// stored packed text positions, kept so they can be cross-checked against
// recomputed positions without re-reading the ROM.
type decodedBlock struct {
	team             team.Team
	storedPositions  [attrsec.StringCount]uint16
	textBytes        int // length, in bytes, of the packed text that followed the attribute section
}

// decodeTeamBlock decodes one team block (attribute section plus packed
// text) starting at blockOffset.
func decodeTeamBlock(rom []byte, blockOffset int) (*decodedBlock, error) {
	attrs := rom[blockOffset : blockOffset+attrsec.Size]
	textStart := blockOffset + attrsec.Size

	names := make([]string, attrsec.StringCount)
	byteOff, bitOff := textStart, 0
	for i := range names {
		s, nb, bb, err := bitpack.UnpackString(rom, byteOff, bitOff)
		if err != nil {
			return nil, err
		}
		names[i] = s
		byteOff, bitOff = nb, bb
	}

	textEnd := byteOff
	if bitOff > 0 {
		textEnd++
	}

	kit := attrsec.DecodeKit(attrs)
	ta := attrsec.DecodeTeamAttrs(attrs)
	playerAttrs := attrsec.DecodePlayerAttrs(attrs)
	positions := attrsec.DecodePositions(attrs)

	t := team.Team{
		Team:               names[0],
		Country:            names[1],
		Coach:              names[2],
		Tactic:             ta.Tactic,
		Skill:              ta.Skill,
		Flag:               ta.Flag,
		Kit:                kit,
		TacticBytesDiverge: ta.Diverges,
	}
	for i := 0; i < team.PlayersPerTeam; i++ {
		pa := playerAttrs[i]
		t.Players[i] = team.Player{
			Name:     names[3+i],
			Number:   pa.Number,
			Position: pa.Position,
			Role:     pa.Role,
			Head:     pa.Head,
			Star:     pa.Star,
		}
	}

	return &decodedBlock{
		team:            t,
		storedPositions: positions,
		textBytes:       textEnd - textStart,
	}, nil
}

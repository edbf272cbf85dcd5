package locator

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/electrified/ss-rom-hack/attrsec"
	"github.com/electrified/ss-rom-hack/bitpack"
)

// buildMinimalBlock returns a single attribute-section-plus-text block
// (team, country, coach, 16 players), zero-padded to an even length, with a
// correct 2-byte size word at the front.
func buildMinimalBlock(t *testing.T, team, country, coach string) []byte {
	t.Helper()

	var values []byte
	for _, s := range append([]string{team, country, coach}, repeat("PLAYER", 16)...) {
		v, err := bitpack.EncodeString(s)
		require.NoError(t, err)
		values = append(values, v...)
	}
	text := bitpack.Pack(values)
	if len(text)%2 != 0 {
		text = append(text, 0x00)
	}

	block := make([]byte, attrsec.Size+len(text))
	binary.BigEndian.PutUint16(block[0:2], uint16(len(block)))
	copy(block[attrsec.Size:], text)
	return block
}

func repeat(s string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = s
	}
	return out
}

func TestAutoFindTeamsFindsBlockStart(t *testing.T) {
	block := buildMinimalBlock(t, "ARSENAL", "ENGLAND", "MANAGER")

	rom := make([]byte, DefaultScanEnd+0x10000)
	textOffset := DefaultScanStart + 0x100
	copy(rom[textOffset:], block[attrsec.Size:])

	found := AutoFindTeams(rom, DefaultScanStart, DefaultScanEnd)
	require.NotEmpty(t, found)
	assert.Equal(t, textOffset, found[0])
}

func TestAutoFindTeamsRejectsUnknownCountry(t *testing.T) {
	block := buildMinimalBlock(t, "ARSENAL", "NARNIA", "MANAGER")

	rom := make([]byte, DefaultScanEnd+0x10000)
	textOffset := DefaultScanStart + 0x100
	copy(rom[textOffset:], block[attrsec.Size:])

	found := AutoFindTeams(rom, DefaultScanStart, DefaultScanEnd)
	assert.Empty(t, found)
}

func TestFindPointerTableLocatesConsistentTable(t *testing.T) {
	block := buildMinimalBlock(t, "ARSENAL", "ENGLAND", "MANAGER")

	rom := make([]byte, DefaultScanEnd+0x10000)
	blockStart := DefaultScanStart + 0x100
	textOffset := blockStart + attrsec.Size
	copy(rom[blockStart:], block)

	natEnd := blockStart + len(block)
	tableBase := 0x1000
	binary.BigEndian.PutUint32(rom[tableBase:], uint32(blockStart))
	binary.BigEndian.PutUint32(rom[tableBase+4:], uint32(natEnd))
	binary.BigEndian.PutUint32(rom[tableBase+8:], uint32(natEnd+100))
	binary.BigEndian.PutUint32(rom[tableBase+12:], uint32(natEnd))
	binary.BigEndian.PutUint32(rom[tableBase+16:], uint32(natEnd+100))
	binary.BigEndian.PutUint32(rom[tableBase+20:], uint32(natEnd+200))

	pt, err := FindPointerTable(rom, []int{textOffset})
	require.NoError(t, err)
	assert.Equal(t, tableBase, pt.TableBase)
	assert.Equal(t, blockStart, pt.NationalStart)
	assert.Equal(t, natEnd, pt.NationalEnd)
}

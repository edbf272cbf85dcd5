package teamcore

import (
	"encoding/json"
	"fmt"
)

// Head is a player's head/hair appearance sprite.
type Head struct {
	Enum

	// ID as it appears in the ROM.
	ID byte
}

// Heads is an enumeration of the possible head appearances.
var Heads = []*Head{
	{Enum{"white_dark"}, 0},
	{Enum{"white_blonde"}, 1},
	{Enum{"black_dark"}, 2},
}

// Named heads.
var (
	HeadWhiteDark   = Heads[0]
	HeadWhiteBlonde = Heads[1]
	HeadBlackDark   = Heads[2]
)

// HeadByID returns the Head for a given ID, or an Unknown placeholder if
// out of range.
func HeadByID(id byte) *Head {
	if int(id) < len(Heads) {
		return Heads[id]
	}
	return &Head{UnknownEnum(id), id}
}

// HeadFromName resolves a canonical head name.
func HeadFromName(name string) (*Head, error) {
	for _, h := range Heads {
		if h.Name == name {
			return h, nil
		}
	}
	return nil, fmt.Errorf("teamcore: unknown head name %q", name)
}

// HeadFromInt resolves a head by its underlying ID, 0..2.
func HeadFromInt(id int) (*Head, error) {
	if id < 0 || id >= len(Heads) {
		return nil, fmt.Errorf("teamcore: head ID %d out of range 0..%d", id, len(Heads)-1)
	}
	return Heads[id], nil
}

// MarshalJSON emits the canonical name.
func (h *Head) MarshalJSON() ([]byte, error) {
	return json.Marshal(h.Name)
}

// UnmarshalJSON accepts either the canonical name or the underlying int ID.
func (h *Head) UnmarshalJSON(data []byte) error {
	name, isName, num, isNum, err := decodeNameOrInt(data)
	if err != nil {
		return err
	}

	var resolved *Head
	if isName {
		resolved, err = HeadFromName(name)
	} else if isNum {
		resolved, err = HeadFromInt(num)
	}
	if err != nil {
		return err
	}

	*h = *resolved
	return nil
}

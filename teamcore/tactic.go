package teamcore

import (
	"encoding/json"
	"fmt"
)

// Tactic is a team's formation preset, stored as a single byte (0..7) and
// mirrored into attribute-section bytes 18 and 19.
type Tactic struct {
	Enum

	// ID as it appears in the ROM.
	ID byte
}

// Tactics is an enumeration of the possible tactic presets.
var Tactics = []*Tactic{
	{Enum{"4-4-2"}, 0},
	{Enum{"5-4-1"}, 1},
	{Enum{"4-5-1"}, 2},
	{Enum{"5-3-2"}, 3},
	{Enum{"3-5-2"}, 4},
	{Enum{"4-3-3"}, 5},
	{Enum{"3-3-4"}, 6},
	{Enum{"6-3-1"}, 7},
}

// Named tactics.
var (
	TacticFourFourTwo    = Tactics[0]
	TacticFiveFourOne    = Tactics[1]
	TacticFourFiveOne    = Tactics[2]
	TacticFiveThreeTwo   = Tactics[3]
	TacticThreeFiveTwo   = Tactics[4]
	TacticFourThreeThree = Tactics[5]
	TacticThreeThreeFour = Tactics[6]
	TacticSixThreeOne    = Tactics[7]
)

// TacticByID returns the Tactic for a given ID.
// A new Tactic with an Unknown name is returned if one is not found for the
// given ID (preserving the unknown ID), mirroring the decode path's need to
// surface out-of-range bytes rather than panic on them.
func TacticByID(id byte) *Tactic {
	if int(id) < len(Tactics) {
		return Tactics[id]
	}
	return &Tactic{UnknownEnum(id), id}
}

// TacticFromName resolves a canonical tactic name, e.g. "4-4-2".
func TacticFromName(name string) (*Tactic, error) {
	for _, t := range Tactics {
		if t.Name == name {
			return t, nil
		}
	}
	return nil, fmt.Errorf("teamcore: unknown tactic name %q", name)
}

// TacticFromInt resolves a tactic by its underlying ID, 0..7.
func TacticFromInt(id int) (*Tactic, error) {
	if id < 0 || id >= len(Tactics) {
		return nil, fmt.Errorf("teamcore: tactic ID %d out of range 0..%d", id, len(Tactics)-1)
	}
	return Tactics[id], nil
}

// MarshalJSON emits the canonical name.
func (t *Tactic) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Name)
}

// UnmarshalJSON accepts either the canonical name or the underlying int ID.
func (t *Tactic) UnmarshalJSON(data []byte) error {
	name, isName, num, isNum, err := decodeNameOrInt(data)
	if err != nil {
		return err
	}

	var resolved *Tactic
	if isName {
		resolved, err = TacticFromName(name)
	} else if isNum {
		resolved, err = TacticFromInt(num)
	}
	if err != nil {
		return err
	}

	*t = *resolved
	return nil
}

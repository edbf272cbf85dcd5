package teamcore

import (
	"encoding/json"
	"fmt"
)

// Position is a player's formation slot on the pitch. The valid ID space
// has a gap (11..14 are unused) so, unlike Tactic/Style/Color, Position is
// looked up by map rather than by direct slice index.
type Position struct {
	Enum

	// ID as it appears in the ROM: 0..10, or 15 for a substitute.
	ID byte
}

// Positions is an enumeration of the possible formation slots, in ID order.
var Positions = []*Position{
	{Enum{"goalkeeper"}, 0},
	{Enum{"right_back"}, 1},
	{Enum{"left_back"}, 2},
	{Enum{"centre_back"}, 3},
	{Enum{"defender"}, 4},
	{Enum{"right_midfielder"}, 5},
	{Enum{"centre_midfielder"}, 6},
	{Enum{"left_midfielder"}, 7},
	{Enum{"midfielder"}, 8},
	{Enum{"forward"}, 9},
	{Enum{"second_forward"}, 10},
	{Enum{"sub"}, 15},
}

// Named positions.
var (
	PositionGoalkeeper       = Positions[0]
	PositionRightBack        = Positions[1]
	PositionLeftBack         = Positions[2]
	PositionCentreBack       = Positions[3]
	PositionDefender         = Positions[4]
	PositionRightMidfielder  = Positions[5]
	PositionCentreMidfielder = Positions[6]
	PositionLeftMidfielder   = Positions[7]
	PositionMidfielder       = Positions[8]
	PositionForward          = Positions[9]
	PositionSecondForward    = Positions[10]
	PositionSub              = Positions[11]
)

var positionByID = func() map[byte]*Position {
	m := make(map[byte]*Position, len(Positions))
	for _, p := range Positions {
		m[p.ID] = p
	}
	return m
}()

// PositionByID returns the Position for a given ID, or an Unknown
// placeholder if the ID is not one of the valid formation slots.
func PositionByID(id byte) *Position {
	if p, ok := positionByID[id]; ok {
		return p
	}
	return &Position{UnknownEnum(id), id}
}

// PositionFromName resolves a canonical position name.
func PositionFromName(name string) (*Position, error) {
	for _, p := range Positions {
		if p.Name == name {
			return p, nil
		}
	}
	return nil, fmt.Errorf("teamcore: unknown position name %q", name)
}

// PositionFromInt resolves a position by its underlying ID (0..10 or 15).
func PositionFromInt(id int) (*Position, error) {
	if id < 0 || id > 255 {
		return nil, fmt.Errorf("teamcore: position ID %d out of range", id)
	}
	if p, ok := positionByID[byte(id)]; ok {
		return p, nil
	}
	return nil, fmt.Errorf("teamcore: position ID %d is not a valid formation slot", id)
}

// MarshalJSON emits the canonical name.
func (p *Position) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.Name)
}

// UnmarshalJSON accepts either the canonical name or the underlying int ID.
func (p *Position) UnmarshalJSON(data []byte) error {
	name, isName, num, isNum, err := decodeNameOrInt(data)
	if err != nil {
		return err
	}

	var resolved *Position
	if isName {
		resolved, err = PositionFromName(name)
	} else if isNum {
		resolved, err = PositionFromInt(num)
	}
	if err != nil {
		return err
	}

	*p = *resolved
	return nil
}

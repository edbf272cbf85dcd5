package teamcore

import (
	"encoding/json"
	"fmt"
)

// Style is a kit's shirt pattern.
type Style struct {
	Enum

	// ID as it appears in the ROM.
	ID byte
}

// Styles is an enumeration of the possible kit styles.
var Styles = []*Style{
	{Enum{"plain"}, 0},
	{Enum{"sleeves"}, 1},
	{Enum{"vertical"}, 2},
	{Enum{"horizontal"}, 3},
}

// Named styles.
var (
	StylePlain      = Styles[0]
	StyleSleeves    = Styles[1]
	StyleVertical   = Styles[2]
	StyleHorizontal = Styles[3]
)

// StyleByID returns the Style for a given ID, or an Unknown placeholder if
// out of range.
func StyleByID(id byte) *Style {
	if int(id) < len(Styles) {
		return Styles[id]
	}
	return &Style{UnknownEnum(id), id}
}

// StyleFromName resolves a canonical style name.
func StyleFromName(name string) (*Style, error) {
	for _, s := range Styles {
		if s.Name == name {
			return s, nil
		}
	}
	return nil, fmt.Errorf("teamcore: unknown style name %q", name)
}

// StyleFromInt resolves a style by its underlying ID, 0..3.
func StyleFromInt(id int) (*Style, error) {
	if id < 0 || id >= len(Styles) {
		return nil, fmt.Errorf("teamcore: style ID %d out of range 0..%d", id, len(Styles)-1)
	}
	return Styles[id], nil
}

// MarshalJSON emits the canonical name.
func (s *Style) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Name)
}

// UnmarshalJSON accepts either the canonical name or the underlying int ID.
func (s *Style) UnmarshalJSON(data []byte) error {
	name, isName, num, isNum, err := decodeNameOrInt(data)
	if err != nil {
		return err
	}

	var resolved *Style
	if isName {
		resolved, err = StyleFromName(name)
	} else if isNum {
		resolved, err = StyleFromInt(num)
	}
	if err != nil {
		return err
	}

	*s = *resolved
	return nil
}

package teamcore

import (
	"encoding/json"
	"fmt"
)

// Color is a kit color, one of the 15 palette entries the cartridge
// supports for shirts, shorts and socks. ID 0 is not a valid color (colour
// values run 1..15); colorTable is indexed directly by ID, so ColorByID(0)
// falls through to the Unknown placeholder like any other out-of-range value.
type Color struct {
	Enum

	// ID as it appears in the ROM, 1..15.
	ID byte
}

// colorTable is indexed by ID; index 0 is left as a placeholder (nil) since
// 0 is not an assignable color.
var colorTable = [16]*Color{
	1:  {Enum{"grey"}, 0x01},
	2:  {Enum{"white"}, 0x02},
	3:  {Enum{"black"}, 0x03},
	4:  {Enum{"brown"}, 0x04},
	5:  {Enum{"dark_orange"}, 0x05},
	6:  {Enum{"orange"}, 0x06},
	7:  {Enum{"light_grey"}, 0x07},
	8:  {Enum{"dark_grey"}, 0x08},
	9:  {Enum{"dark_grey_2"}, 0x09},
	10: {Enum{"red"}, 0x0A},
	11: {Enum{"blue"}, 0x0B},
	12: {Enum{"dark_red"}, 0x0C},
	13: {Enum{"light_blue"}, 0x0D},
	14: {Enum{"green"}, 0x0E},
	15: {Enum{"yellow"}, 0x0F},
}

// Colors is an enumeration of the possible kit colors, in ID order (1..15).
var Colors = colorTable[1:]

// Named colors.
var (
	ColorGrey       = colorTable[1]
	ColorWhite      = colorTable[2]
	ColorBlack      = colorTable[3]
	ColorBrown      = colorTable[4]
	ColorDarkOrange = colorTable[5]
	ColorOrange     = colorTable[6]
	ColorLightGrey  = colorTable[7]
	ColorDarkGrey   = colorTable[8]
	ColorDarkGrey2  = colorTable[9]
	ColorRed        = colorTable[10]
	ColorBlue       = colorTable[11]
	ColorDarkRed    = colorTable[12]
	ColorLightBlue  = colorTable[13]
	ColorGreen      = colorTable[14]
	ColorYellow     = colorTable[15]
)

// ColorByID returns the Color for a given ID, or an Unknown placeholder if
// out of range (including ID 0, which is not an assignable color).
func ColorByID(id byte) *Color {
	if int(id) < len(colorTable) && colorTable[id] != nil {
		return colorTable[id]
	}
	return &Color{UnknownEnum(id), id}
}

// ColorFromName resolves a canonical color name.
func ColorFromName(name string) (*Color, error) {
	for _, c := range Colors {
		if c.Name == name {
			return c, nil
		}
	}
	return nil, fmt.Errorf("teamcore: unknown color name %q", name)
}

// ColorFromInt resolves a color by its underlying ID, 1..15.
func ColorFromInt(id int) (*Color, error) {
	if id < 1 || id >= len(colorTable) || colorTable[id] == nil {
		return nil, fmt.Errorf("teamcore: color ID %d out of range 1..15", id)
	}
	return colorTable[id], nil
}

// MarshalJSON emits the canonical name.
func (c *Color) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Name)
}

// UnmarshalJSON accepts either the canonical name or the underlying int ID.
func (c *Color) UnmarshalJSON(data []byte) error {
	name, isName, num, isNum, err := decodeNameOrInt(data)
	if err != nil {
		return err
	}

	var resolved *Color
	if isName {
		resolved, err = ColorFromName(name)
	} else if isNum {
		resolved, err = ColorFromInt(num)
	}
	if err != nil {
		return err
	}

	*c = *resolved
	return nil
}

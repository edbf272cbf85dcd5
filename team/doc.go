// Package team contains the logical, JSON-isomorphic team document handed
// to and returned from the ROM codec (package teamrom): Doc, Team, Kit,
// KitDescriptor and Player.
package team

import "github.com/electrified/ss-rom-hack/teamcore"

// PlayersPerTeam is the fixed number of player records in every team block.
const PlayersPerTeam = 16

// Doc is the full team document decoded from, or to be re-embedded into, a
// ROM image.
type Doc struct {
	National []Team `json:"national"`
	Club     []Team `json:"club"`
	Custom   []Team `json:"custom"`
}

// Region returns the named category's team slice ("national", "club" or
// "custom"), or nil if name is not one of those three.
func (d *Doc) Region(name string) []Team {
	switch name {
	case "national":
		return d.National
	case "club":
		return d.Club
	case "custom":
		return d.Custom
	default:
		return nil
	}
}

// Categories lists the three region names in the order they appear in the
// ROM's pointer table.
var Categories = [3]string{"national", "club", "custom"}

// Team is one team's editable record: its name, country, coaching staff
// text, tactical/kit/roster attributes and 16 players.
type Team struct {
	Team    string `json:"team"`
	Country string `json:"country"`
	Coach   string `json:"coach"`

	Tactic *teamcore.Tactic `json:"tactic"`
	Skill  int              `json:"skill"`
	Flag   int              `json:"flag"`

	Kit Kit `json:"kit"`

	Players [PlayersPerTeam]Player `json:"players"`

	// TacticBytesDiverge reports that the source ROM's two tactic bytes (18
	// and 19) differed rather than mirroring each other. Decode sets this so
	// a caller can detect and deliberately resolve the discrepancy. On a team
	// with this flag set, Update preserves both original bytes verbatim and
	// does not write Tactic to either of them, whatever its value; with the
	// flag cleared, Update writes Tactic to both bytes.
	TacticBytesDiverge bool `json:"tacticBytesDiverge,omitempty"`
}

// Kit bundles a team's two kit descriptors (the vast majority of matches
// are played in the first kit; the second is worn on a color clash).
type Kit struct {
	First  KitDescriptor `json:"first"`
	Second KitDescriptor `json:"second"`
}

// KitDescriptor is one kit's shirt style and the four colors it is drawn
// from (shirt primary/secondary, shorts, socks).
type KitDescriptor struct {
	Style  *teamcore.Style `json:"style"`
	Shirt1 *teamcore.Color `json:"shirt1"`
	Shirt2 *teamcore.Color `json:"shirt2"`
	Shorts *teamcore.Color `json:"shorts"`
	Socks  *teamcore.Color `json:"socks"`
}

// Player is one of a team's 16 player records.
type Player struct {
	Name   string `json:"name"`
	Number int    `json:"number"`

	Position *teamcore.Position `json:"position"`
	Role     *teamcore.Role     `json:"role"`
	Head     *teamcore.Head     `json:"head"`

	Star bool `json:"star,omitempty"`
}

package teamrom

import (
	"encoding/binary"
	"testing"

	"github.com/electrified/ss-rom-hack/locator"
	"github.com/electrified/ss-rom-hack/team"
	"github.com/electrified/ss-rom-hack/teamcore"
)

// sampleTeam returns a fully populated, structurally valid team with
// distinct, recognizable field values — useful as a base a test can tweak.
func sampleTeam(name, country, coach string) team.Team {
	t := team.Team{
		Team:    name,
		Country: country,
		Coach:   coach,
		Tactic:  teamcore.TacticFourFourTwo,
		Skill:   4,
		Flag:    0,
		Kit: team.Kit{
			First: team.KitDescriptor{
				Style: teamcore.StylePlain, Shirt1: teamcore.ColorRed, Shirt2: teamcore.ColorWhite,
				Shorts: teamcore.ColorWhite, Socks: teamcore.ColorRed,
			},
			Second: team.KitDescriptor{
				Style: teamcore.StyleVertical, Shirt1: teamcore.ColorBlue, Shirt2: teamcore.ColorBlue,
				Shorts: teamcore.ColorBlue, Socks: teamcore.ColorBlue,
			},
		},
	}

	positions := []*teamcore.Position{
		teamcore.PositionGoalkeeper,
		teamcore.PositionRightBack, teamcore.PositionLeftBack, teamcore.PositionCentreBack, teamcore.PositionDefender,
		teamcore.PositionRightMidfielder, teamcore.PositionCentreMidfielder, teamcore.PositionLeftMidfielder, teamcore.PositionMidfielder,
		teamcore.PositionForward, teamcore.PositionSecondForward,
		teamcore.PositionSub, teamcore.PositionSub, teamcore.PositionSub, teamcore.PositionSub, teamcore.PositionSub,
	}
	for i := range t.Players {
		t.Players[i] = team.Player{
			Name:     "PLAYER",
			Number:   i + 1,
			Position: positions[i],
			Role:     teamcore.RoleMidfielder,
			Head:     teamcore.HeadWhiteDark,
			Star:     i == 0,
		}
	}
	return t
}

// buildFixtureRegion packs a list of teams into a region's raw bytes using
// the package's own builder, starting from an all-zero attribute section
// for each block (so EncodeTeamAttrs always runs and nothing is carried
// over from a prior ROM).
func buildFixtureRegion(t *testing.T, teams []team.Team) []byte {
	t.Helper()
	var region []byte
	zeroAttrs := make([]byte, 150)
	for i := range teams {
		block, err := buildBlock(zeroAttrs, &teams[i])
		if err != nil {
			t.Fatalf("buildBlock: %v", err)
		}
		region = append(region, block...)
	}
	return region
}

// buildFixtureROM lays out national/club/custom regions (each built from
// the given teams) into a synthetic ROM image with a valid pointer table,
// placed so that package locator's default scan finds it, and returns the
// full ROM image. The locator only accepts a table whose regions are all
// non-empty, so national must hold at least one team, and a nil or empty
// club or custom list is replaced by one filler team.
func buildFixtureROM(t *testing.T, national, club, custom []team.Team) []byte {
	t.Helper()

	if len(club) == 0 {
		club = []team.Team{sampleTeam("FILLER CLUB", "SPAIN", "COACH")}
	}
	if len(custom) == 0 {
		custom = []team.Team{sampleTeam("FILLER XI", "ITALY", "BOSS")}
	}

	natRegion := buildFixtureRegion(t, national)
	clubRegion := buildFixtureRegion(t, club)
	custRegion := buildFixtureRegion(t, custom)

	const natStart = locator.DefaultScanStart + 0x100
	natEnd := natStart + len(natRegion)
	clubStart := natEnd + 2
	clubEnd := clubStart + len(clubRegion)
	custStart := clubEnd + 2
	custEnd := custStart + len(custRegion)

	rom := make([]byte, custEnd+0x1000)
	copy(rom[natStart:], natRegion)
	copy(rom[clubStart:], clubRegion)
	copy(rom[custStart:], custRegion)

	const tableBase = 0x001000
	putU32 := func(off, v int) { binary.BigEndian.PutUint32(rom[off:], uint32(v)) }
	putU32(tableBase+0, natStart)
	putU32(tableBase+4, clubStart)
	putU32(tableBase+8, custStart)
	putU32(tableBase+12, natEnd)
	putU32(tableBase+16, clubEnd)
	putU32(tableBase+20, custEnd)

	return rom
}

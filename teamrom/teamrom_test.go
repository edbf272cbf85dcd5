package teamrom

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/electrified/ss-rom-hack/team"
	"github.com/electrified/ss-rom-hack/teamcore"
)

func TestDecodeRoundTripsTextAndAttributes(t *testing.T) {
	national := []team.Team{sampleTeam("ARSENAL", "ENGLAND", "MANAGER")}
	club := []team.Team{sampleTeam("BARCELONA", "SPAIN", "COACH")}
	custom := []team.Team{sampleTeam("DREAM TEAM", "ITALY", "BOSS")}

	rom := buildFixtureROM(t, national, club, custom)

	doc, warnings, err := Decode(rom)
	require.NoError(t, err)
	require.Len(t, doc.National, 1)
	require.Len(t, doc.Club, 1)
	require.Len(t, doc.Custom, 1)

	assert.Equal(t, "ARSENAL", doc.National[0].Team)
	assert.Equal(t, "ENGLAND", doc.National[0].Country)
	assert.Equal(t, "MANAGER", doc.National[0].Coach)
	assert.Equal(t, teamcore.TacticFourFourTwo, doc.National[0].Tactic)
	assert.Equal(t, 4, doc.National[0].Skill)
	assert.False(t, doc.National[0].TacticBytesDiverge)
	assert.Equal(t, "PLAYER", doc.National[0].Players[0].Name)
	assert.True(t, doc.National[0].Players[0].Star)

	// sampleTeam's formation is exactly 11 distinct starter slots plus 5
	// subs, and the fixture was built with this package's own encoder, so
	// no warnings of any kind are expected here.
	assert.Empty(t, warnings)
}

func TestDecodeRejectsBadBlockSize(t *testing.T) {
	rom := buildFixtureROM(t, []team.Team{sampleTeam("ARSENAL", "ENGLAND", "MANAGER")}, nil, nil)

	// Corrupt the first block's size word to something implausible.
	const natStart = 0x020100
	rom[natStart] = 0x00
	rom[natStart+1] = 0x05 // size 5, below minBlockSize

	_, _, err := Decode(rom)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRomStructureUnrecognised)
}

func TestUpdateRoundTrip(t *testing.T) {
	national := []team.Team{sampleTeam("ARSENAL", "ENGLAND", "MANAGER")}
	rom := buildFixtureROM(t, national, nil, nil)

	doc, _, err := Decode(rom)
	require.NoError(t, err)

	doc.National[0].Team = "CHELSEA"
	doc.National[0].Skill = 7

	newRom, _, err := Update(rom, doc)
	require.NoError(t, err)

	got, _, err := Decode(newRom)
	require.NoError(t, err)
	assert.Equal(t, "CHELSEA", got.National[0].Team)
	assert.Equal(t, 7, got.National[0].Skill)
}

func TestUpdateRejectsMissingPlayerEnums(t *testing.T) {
	national := []team.Team{sampleTeam("ARSENAL", "ENGLAND", "MANAGER")}
	rom := buildFixtureROM(t, national, nil, nil)

	doc, _, err := Decode(rom)
	require.NoError(t, err)

	bad := &team.Doc{National: []team.Team{{
		Team: "X", Country: "ENGLAND", Coach: "Y",
		Tactic: teamcore.TacticFourFourTwo,
		// Players left at zero value: 16 entries but all nil enums.
	}}}
	_, _, err = Update(rom, bad)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidDocument)
	_ = doc
}

func TestUpdateRejectsTeamCountMismatch(t *testing.T) {
	national := []team.Team{sampleTeam("ARSENAL", "ENGLAND", "MANAGER")}
	rom := buildFixtureROM(t, national, nil, nil)

	doc, _, err := Decode(rom)
	require.NoError(t, err)
	doc.National = append(doc.National, sampleTeam("EXTRA", "WALES", "BOSS"))

	_, _, err = Update(rom, doc)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidDocument)
}

func TestValidateDocumentCatchesOutOfRangeSkill(t *testing.T) {
	tm := sampleTeam("ARSENAL", "ENGLAND", "MANAGER")
	tm.Skill = 99
	doc := &team.Doc{National: []team.Team{tm}}

	errs := ValidateDocument(doc)
	require.NotEmpty(t, errs)
}

func TestValidateRejectsInvalidCharacterInPlayerName(t *testing.T) {
	national := []team.Team{sampleTeam("ARSENAL", "ENGLAND", "MANAGER")}
	rom := buildFixtureROM(t, national, nil, nil)

	doc, _, err := Decode(rom)
	require.NoError(t, err)
	doc.National[0].Players[0].Name = "JAM~S"

	errs, _ := Validate(rom, doc)
	require.NotEmpty(t, errs)
	found := false
	for _, e := range errs {
		if strings.Contains(e, "invalid character") {
			found = true
		}
	}
	assert.True(t, found, "expected an invalid-character error, got %v", errs)
}

func TestValidateTeamChecksFlagsFormationSlotProblems(t *testing.T) {
	tm := sampleTeam("ARSENAL", "ENGLAND", "MANAGER")
	// Duplicate the goalkeeper slot onto player 1 instead of right_back,
	// leaving right_back uncovered; sub count is unaffected.
	tm.Players[1].Position = teamcore.PositionGoalkeeper

	_, warnings := validateTeamChecks("national", 0, &tm)
	require.NotEmpty(t, warnings)

	var sawSlots, sawSubs bool
	for _, w := range warnings {
		if strings.Contains(w.Message, "formation slots invalid") {
			sawSlots = true
		}
		if strings.Contains(w.Message, "expected 5 subs") {
			sawSubs = true
		}
	}
	assert.True(t, sawSlots, "expected a formation-slots warning, got %v", warnings)
	assert.False(t, sawSubs, "sub count is unaffected by this edit, got %v", warnings)
}

func TestDecodeRejectsTruncatedROM(t *testing.T) {
	national := []team.Team{sampleTeam("ARSENAL", "ENGLAND", "MANAGER")}
	rom := buildFixtureROM(t, national, nil, nil)

	truncated := rom[:len(rom)/2]

	_, _, err := Decode(truncated)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRomStructureUnrecognised)
}

func TestUpdateRejectsOverflow(t *testing.T) {
	national := []team.Team{sampleTeam("ARSENAL", "ENGLAND", "MANAGER")}
	rom := buildFixtureROM(t, national, nil, nil)

	doc, _, err := Decode(rom)
	require.NoError(t, err)
	// The fixture leaves no free space beyond the custom region, so any
	// growth in re-encoded size overflows.
	doc.National[0].Team = "A MUCH LONGER TEAM NAME"

	_, _, err = Update(rom, doc)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrOverflow)
}

func TestTacticBytesDivergePreservedThroughUpdate(t *testing.T) {
	national := []team.Team{sampleTeam("ARSENAL", "ENGLAND", "MANAGER")}
	rom := buildFixtureROM(t, national, nil, nil)

	// Manually diverge the stored tactic bytes in the ROM.
	const blockOff = 0x020100
	rom[blockOff+18] = teamcore.TacticSixThreeOne.ID

	doc, _, err := Decode(rom)
	require.NoError(t, err)
	require.True(t, doc.National[0].TacticBytesDiverge)

	newRom, _, err := Update(rom, doc)
	require.NoError(t, err)
	assert.Equal(t, teamcore.TacticSixThreeOne.ID, newRom[blockOff+18])
	assert.Equal(t, doc.National[0].Tactic.ID, newRom[blockOff+19])
}

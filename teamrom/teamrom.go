// Package teamrom is the public codec: it turns a Mega Drive soccer-game
// ROM image into a team.Doc and back, validating structure and roster
// shape along the way. Decode, Validate and Update always locate the region
// pointer table themselves (via package locator).
package teamrom

import (
	"errors"
	"fmt"
	"runtime"
	"sort"

	"github.com/electrified/ss-rom-hack/attrsec"
	"github.com/electrified/ss-rom-hack/bitpack"
	"github.com/electrified/ss-rom-hack/locator"
	"github.com/electrified/ss-rom-hack/log"
	"github.com/electrified/ss-rom-hack/team"
	"github.com/electrified/ss-rom-hack/teamcore"
)

// Decode locates the team region pointer table in rom and decodes all
// three regions into a team.Doc, along with any non-fatal warnings found
// along the way (stored-position mismatches, formation coverage gaps,
// unusual substitute counts).
func Decode(rom []byte) (doc *team.Doc, warnings []Warning, err error) {
	return decodeProtected(rom)
}

// decodeProtected calls decode but recovers from panics (untrusted input,
// or an implementation bug) and turns them into ErrParsing, mirroring the
// recover-to-sentinel-error boundary used at this package's other public
// entry points.
func decodeProtected(rom []byte) (doc *team.Doc, warnings []Warning, err error) {
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 2000)
			n := runtime.Stack(buf, false)
			log.Error("teamrom: panic during decode", log.F("recovered", fmt.Sprint(r)), log.F("stack", string(buf[:n])))
			doc, warnings, err = nil, nil, ErrParsing
		}
	}()
	return decode(rom)
}

func decode(rom []byte) (*team.Doc, []Warning, error) {
	pt, err := locator.Locate(rom)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrRomStructureUnrecognised, err)
	}

	doc := &team.Doc{}
	var warnings []Warning

	for _, region := range team.Categories[:] {
		start, end, _ := pt.Region(region)
		teams, w, err := decodeRegion(rom, region, start, end)
		if err != nil {
			return nil, nil, err
		}
		warnings = append(warnings, w...)

		switch region {
		case "national":
			doc.National = teams
		case "club":
			doc.Club = teams
		case "custom":
			doc.Custom = teams
		}
	}

	return doc, warnings, nil
}

func decodeRegion(rom []byte, region string, start, end int) ([]team.Team, []Warning, error) {
	blockOffsets, err := chainWalkRegion(rom, region, start, end)
	if err != nil {
		return nil, nil, err
	}

	teams := make([]team.Team, len(blockOffsets))
	var warnings []Warning

	for i, blockOff := range blockOffsets {
		decoded, err := decodeTeamBlock(rom, blockOff)
		if err != nil {
			return nil, nil, fmt.Errorf("teamrom: decoding %s[%d] at 0x%06X: %w", region, i, blockOff, err)
		}
		teams[i] = decoded.team
		warnings = append(warnings, checkDecodedBlock(region, i, decoded)...)
	}

	return teams, warnings, nil
}

// checkDecodedBlock produces soft warnings for a decoded block: its stored
// packed text positions not matching what re-encoding its own text would
// produce, formation slots with no coverage, and an unusual substitute
// count.
func checkDecodedBlock(region string, index int, decoded *decodedBlock) []Warning {
	var warnings []Warning

	textBytes, err := encodeTeamText(&decoded.team)
	if err == nil {
		recomputed := computePackedPositions(textBytes)
		if recomputed != decoded.storedPositions {
			warnings = append(warnings, Warning{
				Region: region, TeamIndex: index,
				Message: "stored packed text positions do not match positions recomputed from the decoded text",
			})
		}
	}

	warnings = append(warnings, formationWarnings(region, index, &decoded.team)...)

	return warnings
}

// formationWarnings checks that the 11 non-sub players occupy distinct
// formation slots 0..10 and exactly 5 players are subs (slot 15), the same
// rule sslib/validate.py's validate_teams applies to a candidate document.
func formationWarnings(region string, index int, t *team.Team) []Warning {
	var starterSlots []int
	subCount := 0
	for _, p := range t.Players {
		if p.Position == nil {
			continue
		}
		if p.Position.ID == 15 {
			subCount++
		} else {
			starterSlots = append(starterSlots, int(p.Position.ID))
		}
	}

	var warnings []Warning

	sorted := append([]int(nil), starterSlots...)
	sort.Ints(sorted)
	validSlots := len(sorted) == 11
	for i := 0; validSlots && i < len(sorted); i++ {
		if sorted[i] != i {
			validSlots = false
		}
	}
	if !validSlots {
		counts := map[int]int{}
		for _, s := range starterSlots {
			counts[s]++
		}

		var missing, duped []string
		for i := 0; i < 11; i++ {
			if counts[i] == 0 {
				missing = append(missing, positionSlotName(i))
			}
		}
		var dupedIDs []int
		seen := map[int]bool{}
		for _, s := range starterSlots {
			if counts[s] > 1 && !seen[s] {
				seen[s] = true
				dupedIDs = append(dupedIDs, s)
			}
		}
		sort.Ints(dupedIDs)
		for _, id := range dupedIDs {
			duped = append(duped, positionSlotName(id))
		}

		warnings = append(warnings, Warning{
			Region: region, TeamIndex: index,
			Message: fmt.Sprintf("formation slots invalid: missing %v, duplicated %v", missing, duped),
		})
	}

	if subCount != 5 {
		warnings = append(warnings, Warning{
			Region: region, TeamIndex: index,
			Message: fmt.Sprintf("expected 5 subs, got %d", subCount),
		})
	}

	return warnings
}

func positionSlotName(id int) string {
	if id < 0 || id > 255 {
		return fmt.Sprint(id)
	}
	p := teamcore.PositionByID(byte(id))
	if p.Unknown() {
		return fmt.Sprint(id)
	}
	return p.Name
}

// ValidateDocument checks a team.Doc's structural shape independent of any
// ROM: string encodability, enum validity, numeric field ranges and
// formation shape. It runs the same per-team checks as Validate, but cannot
// catch a team-count mismatch since it has no ROM to compare against.
func ValidateDocument(doc *team.Doc) []error {
	var errs []error
	for _, region := range team.Categories[:] {
		teams := doc.Region(region)
		for i := range teams {
			teamErrs, _ := validateTeamChecks(region, i, &teams[i])
			errs = append(errs, teamErrs...)
		}
	}
	return errs
}

// Validate checks doc against rom: each region's team count must match the
// number of blocks chain-walked from that region in rom, and every team
// must pass validateTeamChecks (string encodability, enum validity, skill/
// flag/number ranges). Formation-shape issues are reported as warnings, not
// errors, mirroring sslib/validate.py's validate_teams. It is the check
// Update runs before attempting to re-encode doc into rom.
func Validate(rom []byte, doc *team.Doc) (errs, warnings []string) {
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 2000)
			n := runtime.Stack(buf, false)
			log.Error("teamrom: panic during validate", log.F("recovered", fmt.Sprint(r)), log.F("stack", string(buf[:n])))
			errs, warnings = []string{ErrParsing.Error()}, nil
		}
	}()

	pt, err := locator.Locate(rom)
	if err != nil {
		return []string{fmt.Sprintf("%s: %v", ErrRomStructureUnrecognised, err)}, nil
	}

	for _, region := range team.Categories[:] {
		start, end, _ := pt.Region(region)
		blockOffsets, err := chainWalkRegion(rom, region, start, end)
		if err != nil {
			errs = append(errs, err.Error())
			continue
		}

		teams := doc.Region(region)
		if len(teams) != len(blockOffsets) {
			errs = append(errs, (&CountMismatchError{Region: region, DocCount: len(teams), RomCount: len(blockOffsets)}).Error())
			continue
		}

		for i := range teams {
			teamErrs, teamWarnings := validateTeamChecks(region, i, &teams[i])
			for _, e := range teamErrs {
				errs = append(errs, e.Error())
			}
			for _, w := range teamWarnings {
				warnings = append(warnings, w.String())
			}
		}
	}

	return errs, warnings
}

// validateTeamChecks runs every ROM-independent check on one team: string
// encodability of the free-text fields, enum fields resolving to a known
// (non-Unknown) member, skill/flag/player-number ranges, and formation
// shape. It is shared by ValidateDocument (doc-only) and Validate
// (ROM-aware, which additionally checks team counts).
func validateTeamChecks(region string, index int, t *team.Team) (errs []error, warnings []Warning) {
	addEnumErr := func(field, detail string) {
		errs = append(errs, &InvalidEnumError{Region: region, Field: field, TeamIndex: index, Detail: detail})
	}
	// checkEnumName reports a missing (nil) or Unknown(N)-placeholder enum
	// field. name is only invoked (and so only dereferences the pointer)
	// once isNil has ruled out a nil receiver.
	checkEnumName := func(field string, isNil, isUnknown bool, name func() string) {
		switch {
		case isNil:
			addEnumErr(field, "missing")
		case isUnknown:
			addEnumErr(field, fmt.Sprintf("unrecognised value %s", name()))
		}
	}
	addString := func(field, text string) {
		if _, err := bitpack.EncodeString(text); err != nil {
			errs = append(errs, &InvalidCharacterError{Region: region, Field: field, TeamIndex: index, Detail: err.Error()})
		}
	}

	addString("team", t.Team)
	addString("country", t.Country)
	addString("coach", t.Coach)

	checkEnumName("tactic", t.Tactic == nil, t.Tactic != nil && t.Tactic.Unknown(), func() string { return t.Tactic.Name })
	if t.Skill < 0 || t.Skill > 7 {
		errs = append(errs, &OutOfRangeError{Region: region, Field: "skill", TeamIndex: index, Value: t.Skill})
	}
	if t.Flag < 0 || t.Flag > 1 {
		errs = append(errs, &OutOfRangeError{Region: region, Field: "flag", TeamIndex: index, Value: t.Flag})
	}

	for _, kd := range []struct {
		prefix string
		desc   team.KitDescriptor
	}{
		{"first", t.Kit.First}, {"second", t.Kit.Second},
	} {
		desc := kd.desc
		checkEnumName("kit."+kd.prefix+".style", desc.Style == nil, desc.Style != nil && desc.Style.Unknown(), func() string { return desc.Style.Name })
		for _, c := range []struct {
			field string
			color *teamcore.Color
		}{
			{"shirt1", desc.Shirt1}, {"shirt2", desc.Shirt2}, {"shorts", desc.Shorts}, {"socks", desc.Socks},
		} {
			c := c
			checkEnumName("kit."+kd.prefix+"."+c.field, c.color == nil, c.color != nil && c.color.Unknown(), func() string { return c.color.Name })
		}
	}

	for i := range t.Players {
		p := &t.Players[i]
		field := fmt.Sprintf("players[%d]", i)
		addString(field+".name", p.Name)
		if p.Number < 1 || p.Number > 16 {
			errs = append(errs, &OutOfRangeError{Region: region, Field: field + ".number", TeamIndex: index, Value: p.Number})
		}
		checkEnumName(field+".position", p.Position == nil, p.Position != nil && p.Position.Unknown(), func() string { return p.Position.Name })
		checkEnumName(field+".role", p.Role == nil, p.Role != nil && p.Role.Unknown(), func() string { return p.Role.Name })
		checkEnumName(field+".head", p.Head == nil, p.Head != nil && p.Head.Unknown(), func() string { return p.Head.Name })
	}

	warnings = formationWarnings(region, index, t)

	return errs, warnings
}

// Update locates the region pointer table in rom, validates doc, re-encodes
// all three regions from doc, and returns a new ROM image with the updated
// team data and pointer table. It fails with ErrOverflow if the new data no
// longer fits in the space available before the next non-zero word
// following the original custom region.
func Update(rom []byte, doc *team.Doc) (newRom []byte, warnings []Warning, err error) {
	return updateProtected(rom, doc)
}

func updateProtected(rom []byte, doc *team.Doc) (newRom []byte, warnings []Warning, err error) {
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 2000)
			n := runtime.Stack(buf, false)
			log.Error("teamrom: panic during update", log.F("recovered", fmt.Sprint(r)), log.F("stack", string(buf[:n])))
			newRom, warnings, err = nil, nil, ErrParsing
		}
	}()
	return update(rom, doc)
}

func update(rom []byte, doc *team.Doc) ([]byte, []Warning, error) {
	if errs, _ := Validate(rom, doc); len(errs) > 0 {
		return nil, nil, fmt.Errorf("%w: %s", ErrInvalidDocument, errs[0])
	}

	pt, err := locator.Locate(rom)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrRomStructureUnrecognised, err)
	}

	out := make([]byte, len(rom))
	copy(out, rom)

	regionData := make(map[string][]byte, 3)
	for _, region := range team.Categories[:] {
		start, end, _ := pt.Region(region)
		blockOffsets, err := chainWalkRegion(rom, region, start, end)
		if err != nil {
			return nil, nil, err
		}

		data, err := buildRegion(rom, region, blockOffsets, doc.Region(region))
		if err != nil {
			return nil, nil, err
		}
		regionData[region] = data
	}

	natStart, _, _ := pt.Region("national")
	_, custEnd, _ := pt.Region("custom")

	maxEnd := findAvailableSpaceEnd(rom, custEnd)

	combined := make([]byte, 0, len(regionData["national"])+len(regionData["club"])+len(regionData["custom"])+4)
	combined = append(combined, regionData["national"]...)
	combined = append(combined, 0x00, 0x00)
	combined = append(combined, regionData["club"]...)
	combined = append(combined, 0x00, 0x00)
	combined = append(combined, regionData["custom"]...)

	totalAvailable := maxEnd - natStart
	if len(combined) > totalAvailable {
		return nil, nil, &OverflowError{Region: "combined", Need: len(combined), Have: totalAvailable}
	}

	newNatStart := natStart
	newNatEnd := natStart + len(regionData["national"])
	newClubStart := newNatEnd + 2
	newClubEnd := newClubStart + len(regionData["club"])
	newCustStart := newClubEnd + 2
	newCustEnd := newCustStart + len(regionData["custom"])

	copy(out[natStart:natStart+len(combined)], combined)

	oldTotal := custEnd - natStart
	if len(combined) < oldTotal {
		for i := natStart + len(combined); i < natStart+oldTotal; i++ {
			out[i] = 0x00
		}
	}

	writePointerTable(out, pt.TableBase, newNatStart, newClubStart, newCustStart, newNatEnd, newClubEnd, newCustEnd)

	return out, nil, nil
}

// findAvailableSpaceEnd scans forward from custEnd for the first non-zero
// 16-bit word, the same heuristic the original tooling uses to find the
// boundary of the free space that follows the custom region.
func findAvailableSpaceEnd(rom []byte, custEnd int) int {
	maxEnd := custEnd
	pos := custEnd
	for pos < len(rom)-1 {
		word := uint16(rom[pos])<<8 | uint16(rom[pos+1])
		if word != 0 {
			maxEnd = pos
			break
		}
		pos += 2
	}
	return maxEnd
}

func writePointerTable(rom []byte, tableBase int, natStart, clubStart, custStart, natEnd, clubEnd, custEnd int) {
	putU32 := func(off int, v int) {
		rom[off] = byte(v >> 24)
		rom[off+1] = byte(v >> 16)
		rom[off+2] = byte(v >> 8)
		rom[off+3] = byte(v)
	}
	putU32(tableBase+0, natStart)
	putU32(tableBase+4, clubStart)
	putU32(tableBase+8, custStart)
	putU32(tableBase+12, natEnd)
	putU32(tableBase+16, clubEnd)
	putU32(tableBase+20, custEnd)
}

func buildRegion(rom []byte, region string, blockOffsets []int, teams []team.Team) ([]byte, error) {
	var out []byte
	for i, blockOff := range blockOffsets {
		originalAttrs := rom[blockOff : blockOff+attrsec.Size]
		block, err := buildBlock(originalAttrs, &teams[i])
		if err != nil {
			if errors.Is(err, bitpack.ErrInvalidCharacter) {
				return nil, &InvalidCharacterError{Region: region, Field: "text", TeamIndex: i, Detail: err.Error()}
			}
			return nil, fmt.Errorf("teamrom: building %s[%d]: %w", region, i, err)
		}
		out = append(out, block...)
	}
	return out, nil
}

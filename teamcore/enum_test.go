package teamcore

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTacticJSONRoundTrip(t *testing.T) {
	data, err := json.Marshal(TacticFiveThreeTwo)
	require.NoError(t, err)
	assert.Equal(t, `"5-3-2"`, string(data))

	var got Tactic
	require.NoError(t, json.Unmarshal([]byte(`"5-3-2"`), &got))
	assert.Equal(t, *TacticFiveThreeTwo, got)

	require.NoError(t, json.Unmarshal([]byte(`3`), &got))
	assert.Equal(t, *TacticFiveThreeTwo, got)
}

func TestTacticFromNameUnknown(t *testing.T) {
	_, err := TacticFromName("9-1-0")
	assert.Error(t, err)
}

func TestTacticFromIntOutOfRange(t *testing.T) {
	_, err := TacticFromInt(8)
	assert.Error(t, err)
}

func TestTacticByIDUnknownPreservesID(t *testing.T) {
	tac := TacticByID(200)
	assert.Equal(t, byte(200), tac.ID)
	assert.Contains(t, tac.Name, "Unknown")
}

func TestColorZeroIsNotAssignable(t *testing.T) {
	_, err := ColorFromInt(0)
	assert.Error(t, err)

	c := ColorByID(0)
	assert.Contains(t, c.Name, "Unknown")
}

func TestColorJSONRoundTrip(t *testing.T) {
	data, err := json.Marshal(ColorDarkOrange)
	require.NoError(t, err)
	assert.Equal(t, `"dark_orange"`, string(data))

	var got Color
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, *ColorDarkOrange, got)
}

func TestPositionGapIDsAreUnknown(t *testing.T) {
	for _, id := range []byte{11, 12, 13, 14} {
		p := PositionByID(id)
		assert.Contains(t, p.Name, "Unknown")
	}
}

func TestPositionSubJSON(t *testing.T) {
	data, err := json.Marshal(PositionSub)
	require.NoError(t, err)
	assert.Equal(t, `"sub"`, string(data))

	var got Position
	require.NoError(t, json.Unmarshal([]byte(`15`), &got))
	assert.Equal(t, *PositionSub, got)
}

func TestRoleAndHeadRoundTrip(t *testing.T) {
	rdata, err := json.Marshal(RoleMidfielder)
	require.NoError(t, err)
	var role Role
	require.NoError(t, json.Unmarshal(rdata, &role))
	assert.Equal(t, *RoleMidfielder, role)

	hdata, err := json.Marshal(HeadBlackDark)
	require.NoError(t, err)
	var head Head
	require.NoError(t, json.Unmarshal(hdata, &head))
	assert.Equal(t, *HeadBlackDark, head)
}

func TestStyleRoundTrip(t *testing.T) {
	data, err := json.Marshal(StyleHorizontal)
	require.NoError(t, err)
	assert.Equal(t, `"horizontal"`, string(data))

	var got Style
	require.NoError(t, json.Unmarshal([]byte(`3`), &got))
	assert.Equal(t, *StyleHorizontal, got)
}

func TestDecodeNameOrIntRejectsOther(t *testing.T) {
	_, _, _, _, err := decodeNameOrInt([]byte(`true`))
	assert.Error(t, err)
}

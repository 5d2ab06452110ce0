package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCard struct {
	Front string `json:"front"`
	Back  string `json:"back"`
}

type testDose struct {
	Drug   string  `json:"drug"`
	DoseMg float64 `json:"doseMg"`
}

func TestExtractJSONList_FencedDoses(t *testing.T) {
	raw := "```json\n{\"items\":[{\"drug\":\"Heparin\",\"doseMg\":5}]}\n```"
	doses, err := ExtractJSONList[testDose](raw)
	require.NoError(t, err)
	require.Len(t, doses, 1)
	assert.Equal(t, "Heparin", doses[0].Drug)
}

func TestExtractJSONList_SurroundingText(t *testing.T) {
	raw := "Sure! Here are the doses:\n[{\"drug\":\"Furosemide\",\"doseMg\":40}]\nStay safe!"
	doses, err := ExtractJSONList[testDose](raw)
	require.NoError(t, err)
	require.Len(t, doses, 1)
	assert.Equal(t, 40.0, doses[0].DoseMg)
}

func TestExtractJSONList_LeadingDecimalAndComments(t *testing.T) {
	raw := "[{\"drug\":\"Digoxin\", // maintenance\n\"doseMg\": .25},\n/* loading */ {\"drug\":\"Digoxin\",\"doseMg\":-.5}]"
	doses, err := ExtractJSONList[testDose](raw)
	require.NoError(t, err)
	require.Len(t, doses, 2)
	assert.Equal(t, 0.25, doses[0].DoseMg)
	assert.Equal(t, -0.5, doses[1].DoseMg)
}

func TestExtractJSONList_StringsKeepSpecialCharacters(t *testing.T) {
	raw := `[{"drug":"Give {slowly} over 5 min // IV push","doseMg":1}, {"drug":"Say \"0.5 mg\" not \".5 mg\"","doseMg":0.5}]`
	doses, err := ExtractJSONList[testDose](raw)
	require.NoError(t, err)
	require.Len(t, doses, 2)
	assert.Equal(t, "Give {slowly} over 5 min // IV push", doses[0].Drug)
	assert.Equal(t, `Say "0.5 mg" not ".5 mg"`, doses[1].Drug)
}

func TestExtractJSONList_InvalidJSON(t *testing.T) {
	_, err := ExtractJSONList[testDose](`{"items":[{"drug":"Digoxin", broken}]}`)
	assert.ErrorIs(t, err, ErrInvalidOutput)
}

func TestExtractJSONList_WrappedItems(t *testing.T) {
	raw := `{"items":[{"front":"Normal K+","back":"3.5-5.0"},{"front":"Normal Na+","back":"135-145"}]}`
	cards, err := ExtractJSONList[testCard](raw)
	require.NoError(t, err)
	require.Len(t, cards, 2)
	assert.Equal(t, "Normal Na+", cards[1].Front)
}

func TestExtractJSONList_BareArray(t *testing.T) {
	raw := "Here you go:\n```json\n[{\"front\":\"Bradycardia\",\"back\":\"HR < 60\"}]\n```"
	cards, err := ExtractJSONList[testCard](raw)
	require.NoError(t, err)
	require.Len(t, cards, 1)
	assert.Equal(t, "HR < 60", cards[0].Back)
}

func TestExtractJSONList_OtherArrayKey(t *testing.T) {
	raw := `{"count":1,"flashcards":[{"front":"Tachypnea","back":"RR > 20"}]}`
	cards, err := ExtractJSONList[testCard](raw)
	require.NoError(t, err)
	require.Len(t, cards, 1)
	assert.Equal(t, "Tachypnea", cards[0].Front)
}

func TestExtractJSONList_NoArray(t *testing.T) {
	_, err := ExtractJSONList[testCard](`{"front":"x","back":"y"}`)
	assert.ErrorIs(t, err, ErrInvalidOutput)

	_, err = ExtractJSONList[testCard]("no json here")
	assert.ErrorIs(t, err, ErrInvalidOutput)
}

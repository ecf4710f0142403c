package reconcile

import (
	"testing"

	"roster-sync/feature/roster/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseRef() models.UnitRecord {
	return models.UnitRecord{
		ID:           "orc-hunters",
		Name:         "Orc Hunters",
		Points:       35,
		Keywords:     []string{"Orc", "Elite"},
		SpecialRules: []string{"Ambush"},
		Characteristics: models.Characteristics{
			Availability:    2,
			Command:         1,
			HighCommand:     false,
			TournamentLegal: true,
		},
	}
}

func baseCSV() models.CSVUnit {
	return models.CSVUnit{
		Name:            "Orc Hunters",
		Points:          35,
		Availability:    2,
		Command:         1,
		Keywords:        []string{"Elite", "Orc"}, // order must not matter
		SpecialRules:    []string{"Ambush"},
		HighCommand:     false,
		TournamentLegal: true,
	}
}

func TestCompareFields_PerfectMatch(t *testing.T) {
	assert.Empty(t, CompareFields(baseRef(), baseCSV()))
}

func TestCompareFields_PointsMismatch(t *testing.T) {
	unit := baseCSV()
	unit.Points = 40

	mismatches := CompareFields(baseRef(), unit)
	require.Len(t, mismatches, 1)
	assert.Equal(t, "points", mismatches[0].Field)
	assert.Equal(t, "35", mismatches[0].OldValue)
	assert.Equal(t, "40", mismatches[0].NewValue)
}

func TestCompareFields_SetMismatchIsOnePerField(t *testing.T) {
	unit := baseCSV()
	unit.Keywords = []string{"Orc", "Raider"}

	mismatches := CompareFields(baseRef(), unit)
	require.Len(t, mismatches, 1)
	assert.Equal(t, "keywords", mismatches[0].Field)
	// Both full sets, sorted for stable rendering.
	assert.Equal(t, "Elite|Orc", mismatches[0].OldValue)
	assert.Equal(t, "Orc|Raider", mismatches[0].NewValue)
}

func TestCompareFields_BooleanMismatch(t *testing.T) {
	unit := baseCSV()
	unit.HighCommand = true

	mismatches := CompareFields(baseRef(), unit)
	require.Len(t, mismatches, 1)
	assert.Equal(t, "highCommand", mismatches[0].Field)
	assert.Equal(t, "false", mismatches[0].OldValue)
	assert.Equal(t, "true", mismatches[0].NewValue)
}

func TestCompareFields_TournamentLegalDefaultsAgree(t *testing.T) {
	// A reference unit without an explicit tournament flag is legal by
	// default; a CSV row without the column parses as legal too. No mismatch.
	ref := baseRef()
	ref.Characteristics.TournamentLegal = true
	unit := baseCSV()
	unit.TournamentLegal = true

	assert.Empty(t, CompareFields(ref, unit))
}

func TestCompareFields_MissingFieldsCompareAsDefaults(t *testing.T) {
	ref := baseRef()
	ref.SpecialRules = nil
	unit := baseCSV()
	unit.SpecialRules = nil

	assert.Empty(t, CompareFields(ref, unit))

	unit.SpecialRules = []string{"Ambush"}
	mismatches := CompareFields(ref, unit)
	require.Len(t, mismatches, 1)
	assert.Equal(t, "specialRules", mismatches[0].Field)
	assert.Equal(t, "", mismatches[0].OldValue)
}

func TestCompareFields_MultipleMismatches(t *testing.T) {
	unit := baseCSV()
	unit.Points = 40
	unit.Command = 3

	mismatches := CompareFields(baseRef(), unit)
	assert.Len(t, mismatches, 2)
}

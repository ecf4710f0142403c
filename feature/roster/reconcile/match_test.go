package reconcile

import (
	"testing"

	"roster-sync/feature/roster/faction"
	"roster-sync/feature/roster/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ref(name, factionID string) models.UnitRecord {
	return models.UnitRecord{
		ID:        faction.Slugify(name),
		Name:      name,
		FactionID: factionID,
	}
}

func TestFindMatch_CaseInsensitiveExact(t *testing.T) {
	reference := []models.UnitRecord{
		ref("aggressors", faction.HegemonyOfEmbersig),
		ref("Orc Hunters", faction.NorthernTribes),
	}

	match := FindMatch(models.CSVUnit{Name: "Aggressors"}, reference)
	require.NotNil(t, match)
	assert.Equal(t, 0, match.Reference)
	assert.False(t, match.Ambiguous)

	match = FindMatch(models.CSVUnit{Name: "  ORC HUNTERS  "}, reference)
	require.NotNil(t, match)
	assert.Equal(t, 1, match.Reference)
}

func TestFindMatch_BracketedSuffixStripped(t *testing.T) {
	reference := []models.UnitRecord{
		ref("Aggressors (Elite)", faction.HegemonyOfEmbersig),
	}

	match := FindMatch(models.CSVUnit{Name: "Aggressors"}, reference)
	require.NotNil(t, match)
	assert.Equal(t, 0, match.Reference)
	assert.False(t, match.Ambiguous)
}

func TestFindMatch_PunctuationInsensitive(t *testing.T) {
	reference := []models.UnitRecord{
		ref("Ahlwardt, Ice Bear", faction.NorthernTribes),
	}

	match := FindMatch(models.CSVUnit{Name: "Ahlwardt Ice Bear"}, reference)
	require.NotNil(t, match)
	assert.Equal(t, 0, match.Reference)
}

func TestFindMatch_FactionTieBreak(t *testing.T) {
	reference := []models.UnitRecord{
		ref("Warriors (Veteran)", faction.HegemonyOfEmbersig),
		ref("Warriors (Green)", faction.NorthernTribes),
	}

	match := FindMatch(models.CSVUnit{Name: "Warriors", Faction: "Northern Tribes"}, reference)
	require.NotNil(t, match)
	assert.Equal(t, 1, match.Reference)
	assert.False(t, match.Ambiguous)
}

func TestFindMatch_AmbiguousFlaggedAndDeterministic(t *testing.T) {
	reference := []models.UnitRecord{
		ref("Warriors (Veteran)", faction.NorthernTribes),
		ref("Warriors (Green)", faction.NorthernTribes),
	}

	match := FindMatch(models.CSVUnit{Name: "Warriors", Faction: "Northern Tribes"}, reference)
	require.NotNil(t, match)
	// First in reference order wins, flagged for review.
	assert.Equal(t, 0, match.Reference)
	assert.True(t, match.Ambiguous)
}

func TestFindMatch_NoMatchReturnsNil(t *testing.T) {
	reference := []models.UnitRecord{
		ref("Orc Hunters", faction.NorthernTribes),
	}

	assert.Nil(t, FindMatch(models.CSVUnit{Name: "Sky Serpents"}, reference))
	assert.Nil(t, FindMatch(models.CSVUnit{Name: "Sky Serpents"}, nil))
}

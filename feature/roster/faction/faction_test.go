package faction

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize_CasingAndPunctuationVariants(t *testing.T) {
	variants := []string{
		"Northern Tribes",
		"northern-tribes",
		"NORTHERN_TRIBES",
		"  northern tribes  ",
		"The Northern Tribes",
	}
	for _, v := range variants {
		assert.Equal(t, NorthernTribes, Normalize(v), "variant %q", v)
	}
}

func TestNormalize_Aliases(t *testing.T) {
	assert.Equal(t, Syenann, Normalize("The Sÿenann"))
	assert.Equal(t, Syenann, Normalize("syenann"))
	assert.Equal(t, ScionsOfYaldabaoth, Normalize("Scions of Taldabaoth")) // CSV typo
	assert.Equal(t, ScionsOfYaldabaoth, Normalize("Scions of Yaldabaoth"))
	assert.Equal(t, HegemonyOfEmbersig, Normalize("Hegemony"))
}

func TestNormalize_Sentinels(t *testing.T) {
	assert.Equal(t, Unknown, Normalize("null"))
	assert.Equal(t, Unknown, Normalize("undefined"))
	assert.Equal(t, Unknown, Normalize(""))
	assert.Equal(t, Unknown, Normalize("  "))
	assert.Equal(t, Unknown, Normalize("NULL"))
}

func TestNormalize_UnrecognizedFallsBackToSlug(t *testing.T) {
	key := Normalize("Some Future Faction!")
	assert.Equal(t, "some-future-faction", key)
	assert.False(t, Known(key))
}

func TestKnown(t *testing.T) {
	for _, key := range All() {
		assert.True(t, Known(key))
	}
	assert.False(t, Known(Unknown))
	assert.False(t, Known("not-a-faction"))
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "Northern Tribes.csv", FileName(NorthernTribes))
	assert.Equal(t, "The Syenann.csv", FileName(Syenann))
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "battle-scarred", Slugify("Battle-Scarred"))
	assert.Equal(t, "ahlwardt-ice-bear", Slugify("Ahlwardt, Ice Bear"))
	assert.Equal(t, "orc-hunters", Slugify("  Orc   Hunters  "))
	assert.Equal(t, "", Slugify("!!!"))
}

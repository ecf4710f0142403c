package source

import (
	"context"

	"roster-sync/feature/roster/faction"
	"roster-sync/feature/roster/models"
)

// StaticProvider serves the read-only in-process reference dataset. It backs
// local-only operation and the fallback path when the database is down.
type StaticProvider struct{}

// NewStaticProvider creates the static fallback provider.
func NewStaticProvider() *StaticProvider {
	return &StaticProvider{}
}

// Name identifies the provider.
func (p *StaticProvider) Name() string {
	return "static"
}

// Units returns a copy of the embedded dataset for the faction. Unknown
// factions yield an empty slice, never an error.
func (p *StaticProvider) Units(ctx context.Context, factionID string) ([]models.UnitRecord, error) {
	units := staticUnits[factionID]
	out := make([]models.UnitRecord, len(units))
	copy(out, units)
	return out, nil
}

// staticUnits is a trimmed snapshot of the reference data, enough to keep
// validation and generation working without the database.
var staticUnits = map[string][]models.UnitRecord{
	faction.NorthernTribes: {
		{
			ID: "battle-scarred", Name: "Battle-Scarred", FactionID: faction.NorthernTribes,
			Points:   30,
			Keywords: []string{"Orc"}, SpecialRules: []string{"Raging"},
			Category:        models.CategoryTroop,
			Characteristics: models.Characteristics{Availability: 3, TournamentLegal: true},
		},
		{
			ID: "orc-hunters", Name: "Orc Hunters", FactionID: faction.NorthernTribes,
			Points:   35,
			Keywords: []string{"Orc", "Elite"}, SpecialRules: []string{"Ambush"},
			Category:        models.CategoryTroop,
			Characteristics: models.Characteristics{Availability: 2, TournamentLegal: true},
		},
		{
			ID: "iriavik-restless-pup", Name: "Iriavik Restless Pup", FactionID: faction.NorthernTribes,
			Points:   50,
			Keywords: []string{"Vatae", "Character"}, SpecialRules: []string{"Hunter's Instinct"},
			Category:        models.CategoryCharacter,
			Characteristics: models.Characteristics{Availability: 1, TournamentLegal: true},
		},
		{
			ID: "ahlwardt-ice-bear", Name: "Ahlwardt, Ice Bear", FactionID: faction.NorthernTribes,
			Points:   60,
			Keywords: []string{"Orc", "Character"}, SpecialRules: []string{"Fearless"},
			Category:        models.CategoryHighCommand,
			Characteristics: models.Characteristics{Availability: 1, Command: 2, HighCommand: true, TournamentLegal: true},
		},
	},
	faction.HegemonyOfEmbersig: {
		{
			ID: "bucklermen", Name: "Bucklermen", FactionID: faction.HegemonyOfEmbersig,
			Points:   25,
			Keywords: []string{"Human"}, SpecialRules: []string{"Shield Wall"},
			Category:        models.CategoryTroop,
			Characteristics: models.Characteristics{Availability: 3, TournamentLegal: true},
		},
		{
			ID: "aggressors", Name: "Aggressors", FactionID: faction.HegemonyOfEmbersig,
			Points:   40,
			Keywords: []string{"Human", "Elite"}, SpecialRules: []string{"Relentless"},
			Category:        models.CategoryTroop,
			Characteristics: models.Characteristics{Availability: 2, TournamentLegal: true},
		},
		{
			ID: "lady-telia", Name: "Lady Telia", FactionID: faction.HegemonyOfEmbersig,
			Points:   55,
			Keywords: []string{"Human", "Character"}, SpecialRules: []string{"Marksman"},
			Category:        models.CategoryHighCommand,
			Characteristics: models.Characteristics{Availability: 1, Command: 2, HighCommand: true, TournamentLegal: true},
		},
	},
	faction.Syenann: {
		{
			ID: "aokora-hunters", Name: "Aokora Hunters", FactionID: faction.Syenann,
			Points:   30,
			Keywords: []string{"Elf"}, SpecialRules: []string{"Forest Walk"},
			Category:        models.CategoryTroop,
			Characteristics: models.Characteristics{Availability: 3, TournamentLegal: true},
		},
		{
			ID: "grove-guard", Name: "Grove Guard", FactionID: faction.Syenann,
			Points:   35,
			Keywords: []string{"Elf", "Elite"}, SpecialRules: []string{"Ward"},
			Category:        models.CategoryTroop,
			Characteristics: models.Characteristics{Availability: 2, TournamentLegal: true},
		},
	},
	faction.ScionsOfYaldabaoth: {
		{
			ID: "marked-ones", Name: "Marked Ones", FactionID: faction.ScionsOfYaldabaoth,
			Points:   30,
			Keywords: []string{"Aberration"}, SpecialRules: []string{"Corruption"},
			Category:        models.CategoryTroop,
			Characteristics: models.Characteristics{Availability: 3, TournamentLegal: true},
		},
	},
}

package roster

import (
	"strings"

	"roster-sync/feature/roster/faction"
	"roster-sync/feature/roster/models"
)

// CanonicalUnits converts decoded CSV rows into canonical unit records for a
// faction. IDs are slugs derived from the unit name, so they are unique
// within a faction as long as names are.
func CanonicalUnits(factionID string, csvUnits []models.CSVUnit) []models.UnitRecord {
	units := make([]models.UnitRecord, 0, len(csvUnits))
	for _, row := range csvUnits {
		units = append(units, models.UnitRecord{
			ID:           faction.Slugify(row.Name),
			Name:         row.Name,
			FactionID:    factionID,
			Points:       row.Points,
			Keywords:     row.Keywords,
			SpecialRules: row.SpecialRules,
			Category:     categoryOf(row),
			Characteristics: models.Characteristics{
				Availability:    row.Availability,
				Command:         row.Command,
				HighCommand:     row.HighCommand,
				TournamentLegal: row.TournamentLegal,
				ImageURL:        row.ImageURL,
			},
		})
	}
	return units
}

// categoryOf derives the file bucket for a CSV row: the high-command flag
// wins, then a "Character" keyword, then troop.
func categoryOf(row models.CSVUnit) models.Category {
	if row.HighCommand {
		return models.CategoryHighCommand
	}
	for _, kw := range row.Keywords {
		if strings.EqualFold(kw, "character") {
			return models.CategoryCharacter
		}
	}
	return models.CategoryTroop
}

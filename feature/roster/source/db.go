package source

import (
	"context"

	"roster-sync/feature/roster/models"

	"gorm.io/gorm"
)

// unitRow is the gorm mapping of the units table. List-valued columns are
// stored as JSON.
type unitRow struct {
	ID              string   `gorm:"column:id;primaryKey"`
	Name            string   `gorm:"column:name"`
	Faction         string   `gorm:"column:faction"`
	Points          int      `gorm:"column:points"`
	Keywords        []string `gorm:"column:keywords;serializer:json"`
	SpecialRules    []string `gorm:"column:special_rules;serializer:json"`
	Availability    int      `gorm:"column:availability"`
	Command         int      `gorm:"column:command"`
	HighCommand     bool     `gorm:"column:high_command"`
	// Pointer so a NULL column is distinguishable from false; NULL means
	// legal, matching the CSV default when the column is absent.
	TournamentLegal *bool  `gorm:"column:tournament_legal"`
	ImageURL        string `gorm:"column:image_url"`
	Category        string `gorm:"column:category"`
}

func (unitRow) TableName() string {
	return "units"
}

// DBProvider serves reference units from the relational store.
type DBProvider struct {
	db *gorm.DB
}

// NewDBProvider creates a database-backed reference provider.
func NewDBProvider(db *gorm.DB) *DBProvider {
	return &DBProvider{db: db}
}

// Name identifies the provider.
func (p *DBProvider) Name() string {
	return "database"
}

// Units loads a faction's reference units ordered by id for deterministic
// reports.
func (p *DBProvider) Units(ctx context.Context, factionID string) ([]models.UnitRecord, error) {
	if p.db == nil {
		return nil, &FetchError{Source: p.Name(), Err: gorm.ErrInvalidDB}
	}

	var rows []unitRow
	err := p.db.WithContext(ctx).
		Where("faction = ?", factionID).
		Order("id").
		Find(&rows).Error
	if err != nil {
		return nil, &FetchError{Source: p.Name(), Err: err}
	}

	units := make([]models.UnitRecord, 0, len(rows))
	for _, row := range rows {
		units = append(units, row.toRecord())
	}
	return units, nil
}

func (r unitRow) toRecord() models.UnitRecord {
	category := models.Category(r.Category)
	switch category {
	case models.CategoryTroop, models.CategoryCharacter, models.CategoryHighCommand:
	default:
		category = models.CategoryTroop
	}

	tournamentLegal := true
	if r.TournamentLegal != nil {
		tournamentLegal = *r.TournamentLegal
	}

	return models.UnitRecord{
		ID:           r.ID,
		Name:         r.Name,
		FactionID:    r.Faction,
		Points:       r.Points,
		Keywords:     r.Keywords,
		SpecialRules: r.SpecialRules,
		Category:     category,
		Characteristics: models.Characteristics{
			Availability:    r.Availability,
			Command:         r.Command,
			HighCommand:     r.HighCommand,
			TournamentLegal: tournamentLegal,
			ImageURL:        r.ImageURL,
		},
	}
}

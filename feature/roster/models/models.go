package models

// Category determines which generated file section a unit belongs to.
type Category string

const (
	CategoryTroop       Category = "troop"
	CategoryCharacter   Category = "character"
	CategoryHighCommand Category = "highCommand"
)

// Characteristics is the structured sub-record of a unit.
type Characteristics struct {
	Availability    int    `json:"availability"`
	Command         int    `json:"command"`
	HighCommand     bool   `json:"highCommand"`
	TournamentLegal bool   `json:"tournamentLegal"`
	ImageURL        string `json:"imageUrl,omitempty"`
}

// UnitRecord is the canonical representation of one game unit.
type UnitRecord struct {
	// ID is the stable identifier, a slug derived from the name.
	ID string `json:"id"`
	// Name is the display name, the source of truth for matching.
	Name string `json:"name"`
	// FactionID is the canonical faction key.
	FactionID string `json:"factionId"`
	// Points is the integer cost.
	Points int `json:"points"`
	// Keywords preserves insertion order for display; comparison is set-based.
	Keywords []string `json:"keywords"`
	// SpecialRules is a set of rule names.
	SpecialRules []string `json:"specialRules"`
	// Characteristics holds the structured sub-record.
	Characteristics Characteristics `json:"characteristics"`
	// Category determines the generated file bucket.
	Category Category `json:"category"`
}

// CSVUnit is one decoded CSV data row before canonicalization.
type CSVUnit struct {
	Name            string   `json:"name"`
	Faction         string   `json:"faction"`
	Points          int      `json:"points"`
	Availability    int      `json:"availability"`
	Command         int      `json:"command"`
	Keywords        []string `json:"keywords"`
	SpecialRules    []string `json:"specialRules"`
	HighCommand     bool     `json:"highCommand"`
	TournamentLegal bool     `json:"tournamentLegal"`
	ImageURL        string   `json:"imageUrl,omitempty"`
}

// FieldMismatch describes one differing field between a CSV unit and its
// matched reference unit. OldValue is the reference side, NewValue the CSV.
type FieldMismatch struct {
	UnitID   string `json:"unitId"`
	UnitName string `json:"unitName"`
	Field    string `json:"field"`
	OldValue string `json:"oldValue"`
	NewValue string `json:"newValue"`
}

// MatchedPair couples a CSV unit with its reference unit when no field
// mismatches were found.
type MatchedPair struct {
	CSVUnit   CSVUnit    `json:"csvUnit"`
	Reference UnitRecord `json:"referenceUnit"`
}

// ReconciliationReport aggregates one faction's reconciliation run.
// It is a transient diagnostic artifact, never persisted.
type ReconciliationReport struct {
	FactionID string `json:"factionId"`
	// ReferenceSource names the provider the reference units came from.
	ReferenceSource string `json:"referenceSource,omitempty"`
	// Matched lists pairs with zero field mismatches.
	Matched []MatchedPair `json:"matched"`
	// Mismatched lists every field difference, tagged with the unit.
	Mismatched []FieldMismatch `json:"mismatched"`
	// MissingInReference lists CSV units with no reference match.
	MissingInReference []CSVUnit `json:"missingInReference"`
	// ExtraInReference lists reference units never matched by a CSV row.
	ExtraInReference []UnitRecord `json:"extraInReference"`
	// AmbiguousMatches lists unit names whose match was resolved by
	// reference order and needs human review.
	AmbiguousMatches []string `json:"ambiguousMatches,omitempty"`
}

// GeneratedFileSet maps a logical file key (troops, characters, highCommand,
// index) to rendered source-module text for one faction.
type GeneratedFileSet map[string]string

// FileStatus reports whether a faction's CSV file exists in the object store.
type FileStatus struct {
	FactionID string `json:"factionId"`
	FileName  string `json:"fileName"`
	Present   bool   `json:"present"`
}

// FactionRun is one faction's entry in a batch validation summary.
type FactionRun struct {
	FactionID string                `json:"factionId"`
	Report    *ReconciliationReport `json:"report,omitempty"`
	Error     string                `json:"error,omitempty"`
}

// BatchSummary aggregates per-faction outcomes of a sync-all run.
// A faction's failure never collapses the whole batch.
type BatchSummary struct {
	Runs   []FactionRun `json:"runs"`
	Failed int          `json:"failed"`
}

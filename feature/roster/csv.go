package roster

import (
	"encoding/csv"
	"fmt"
	"strings"

	"roster-sync/core/utils"
	"roster-sync/feature/roster/models"
)

// MalformedCSVError indicates a CSV file that cannot be decoded at all:
// an empty header row, or a data row wider than the header. Missing optional
// cells are not an error.
type MalformedCSVError struct {
	Line   int
	Reason string
}

func (e *MalformedCSVError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("malformed csv at line %d: %s", e.Line, e.Reason)
	}
	return fmt.Sprintf("malformed csv: %s", e.Reason)
}

// Recognized column names after header normalization. Columns may appear in
// any order and optional columns may be entirely absent.
const (
	colName            = "name"
	colFaction         = "faction"
	colPoints          = "points"
	colAvailability    = "availability"
	colCommand         = "command"
	colKeywords        = "keywords"
	colSpecialRules    = "special_rules"
	colHighCommand     = "high_command"
	colTournamentLegal = "tournament_legal"
	colImageURL        = "image_url"
)

// ParseCSV decodes the full text of one faction CSV file into an ordered
// sequence of unit rows. The first row is the header; quoting, embedded
// commas and embedded newlines follow RFC 4180. Numeric cells default to 0
// on parse failure, and the tournament-legal flag defaults to true when its
// column is absent from the file.
func ParseCSV(raw string) ([]models.CSVUnit, error) {
	reader := csv.NewReader(strings.NewReader(raw))
	// Column-count validation is schema-driven below, not positional.
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, &MalformedCSVError{Reason: err.Error()}
	}
	if len(rows) == 0 {
		return nil, &MalformedCSVError{Reason: "empty file, no header row"}
	}

	header := rows[0]
	columns := make(map[string]int, len(header))
	empty := true
	for i, cell := range header {
		key := normalizeHeader(cell)
		if key == "" {
			continue
		}
		empty = false
		if _, dup := columns[key]; !dup {
			columns[key] = i
		}
	}
	if empty {
		return nil, &MalformedCSVError{Line: 1, Reason: "header row is empty"}
	}

	_, hasTournamentCol := columns[colTournamentLegal]

	units := make([]models.CSVUnit, 0, len(rows)-1)
	for n, row := range rows[1:] {
		if isBlankRow(row) {
			continue
		}
		if len(row) > len(header) {
			return nil, &MalformedCSVError{
				Line:   n + 2,
				Reason: fmt.Sprintf("row has %d cells, header has %d", len(row), len(header)),
			}
		}

		cell := func(key string) string {
			idx, ok := columns[key]
			if !ok || idx >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[idx])
		}

		unit := models.CSVUnit{
			Name:         cell(colName),
			Faction:      cell(colFaction),
			Points:       utils.ToInt(cell(colPoints)),
			Availability: utils.ToInt(cell(colAvailability)),
			Command:      utils.ToInt(cell(colCommand)),
			Keywords:     utils.ToList(cell(colKeywords)),
			SpecialRules: utils.ToList(cell(colSpecialRules)),
			HighCommand:  utils.ToBool(cell(colHighCommand)),
			ImageURL:     cell(colImageURL),
		}

		if hasTournamentCol {
			unit.TournamentLegal = utils.ToBool(cell(colTournamentLegal))
		} else {
			// Absent column means legal by default.
			unit.TournamentLegal = true
		}

		units = append(units, unit)
	}

	return units, nil
}

// normalizeHeader maps header cell variants ("Special Rules", "special-rules")
// onto the canonical column names.
func normalizeHeader(cell string) string {
	key := strings.ToLower(strings.TrimSpace(cell))
	key = strings.ReplaceAll(key, " ", "_")
	key = strings.ReplaceAll(key, "-", "_")
	return key
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

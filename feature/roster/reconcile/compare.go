package reconcile

import (
	"sort"
	"strconv"
	"strings"

	"roster-sync/feature/roster/models"
)

// CompareFields compares a matched pair field by field and returns one
// mismatch per differing field with the reference value as OldValue and the
// CSV value as NewValue. Missing fields on either side compare as defaults,
// so this never fails. The caller tags UnitID/UnitName on the results.
func CompareFields(ref models.UnitRecord, unit models.CSVUnit) []models.FieldMismatch {
	var mismatches []models.FieldMismatch

	addInt := func(field string, old, new int) {
		if old != new {
			mismatches = append(mismatches, models.FieldMismatch{
				Field:    field,
				OldValue: strconv.Itoa(old),
				NewValue: strconv.Itoa(new),
			})
		}
	}
	addBool := func(field string, old, new bool) {
		if old != new {
			mismatches = append(mismatches, models.FieldMismatch{
				Field:    field,
				OldValue: strconv.FormatBool(old),
				NewValue: strconv.FormatBool(new),
			})
		}
	}

	addInt("points", ref.Points, unit.Points)
	addInt("availability", ref.Characteristics.Availability, unit.Availability)
	addInt("command", ref.Characteristics.Command, unit.Command)
	addBool("highCommand", ref.Characteristics.HighCommand, unit.HighCommand)
	addBool("tournamentLegal", ref.Characteristics.TournamentLegal, unit.TournamentLegal)

	// Set-valued fields: order-independent, one mismatch per field carrying
	// both full sets so the caller can diff-render them.
	if !setEqual(ref.Keywords, unit.Keywords) {
		mismatches = append(mismatches, models.FieldMismatch{
			Field:    "keywords",
			OldValue: setString(ref.Keywords),
			NewValue: setString(unit.Keywords),
		})
	}
	if !setEqual(ref.SpecialRules, unit.SpecialRules) {
		mismatches = append(mismatches, models.FieldMismatch{
			Field:    "specialRules",
			OldValue: setString(ref.SpecialRules),
			NewValue: setString(unit.SpecialRules),
		})
	}

	return mismatches
}

// setEqual compares two string slices as sets, ignoring order and duplicates.
func setEqual(a, b []string) bool {
	as := make(map[string]struct{}, len(a))
	for _, s := range a {
		as[s] = struct{}{}
	}
	bs := make(map[string]struct{}, len(b))
	for _, s := range b {
		bs[s] = struct{}{}
	}
	if len(as) != len(bs) {
		return false
	}
	for s := range as {
		if _, ok := bs[s]; !ok {
			return false
		}
	}
	return true
}

// setString renders a set in sorted order for stable report output.
func setString(values []string) string {
	sorted := make([]string, len(values))
	copy(sorted, values)
	sort.Strings(sorted)
	return strings.Join(sorted, "|")
}

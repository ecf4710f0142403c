package reconcile

import (
	"roster-sync/feature/roster/faction"
	"roster-sync/feature/roster/models"
)

// BuildReport reconciles one faction's CSV rows against its reference units.
//
// Every CSV unit is matched and, when matched, compared field by field:
// clean pairs land in Matched, differing pairs contribute their mismatches to
// Mismatched, and unmatched rows go to MissingInReference. Reference units
// that were never claimed by a CSV row end up in ExtraInReference, in
// reference order. The result is fully determined by the inputs; repeated
// runs on identical data produce identical reports.
func BuildReport(factionID string, csvUnits []models.CSVUnit, reference []models.UnitRecord) *models.ReconciliationReport {
	report := &models.ReconciliationReport{
		FactionID:          factionID,
		Matched:            []models.MatchedPair{},
		Mismatched:         []models.FieldMismatch{},
		MissingInReference: []models.CSVUnit{},
		ExtraInReference:   []models.UnitRecord{},
	}

	claimed := make(map[int]struct{}, len(reference))

	for _, unit := range csvUnits {
		match := FindMatch(unit, reference)
		if match == nil {
			report.MissingInReference = append(report.MissingInReference, unit)
			continue
		}

		ref := reference[match.Reference]
		claimed[match.Reference] = struct{}{}
		if match.Ambiguous {
			report.AmbiguousMatches = append(report.AmbiguousMatches, unit.Name)
		}

		mismatches := CompareFields(ref, unit)
		if len(mismatches) == 0 {
			report.Matched = append(report.Matched, models.MatchedPair{
				CSVUnit:   unit,
				Reference: ref,
			})
			continue
		}

		unitID := ref.ID
		if unitID == "" {
			unitID = faction.Slugify(unit.Name)
		}
		for _, m := range mismatches {
			m.UnitID = unitID
			m.UnitName = ref.Name
			report.Mismatched = append(report.Mismatched, m)
		}
	}

	for i, ref := range reference {
		if _, ok := claimed[i]; !ok {
			report.ExtraInReference = append(report.ExtraInReference, ref)
		}
	}

	return report
}

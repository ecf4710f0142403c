package reconcile

import (
	"strings"

	"roster-sync/feature/roster/faction"
	"roster-sync/feature/roster/models"
)

// Match is the outcome of looking up a CSV unit in the reference set.
type Match struct {
	// Reference is the index of the matched unit in the reference slice.
	Reference int
	// Ambiguous is true when multiple reference units survived the loose
	// name comparison and the winner was picked by reference order. Such
	// matches are deterministic but need human review.
	Ambiguous bool
}

// FindMatch locates the reference unit corresponding to a CSV row.
//
// The primary rule is case-insensitive, whitespace-trimmed name equality.
// When that yields zero or multiple candidates, both names are re-compared
// with bracketed suffixes and punctuation stripped. Remaining ties prefer a
// reference unit in the same faction, then fall back to reference order.
// A missing match returns nil; absence is an expected outcome, not an error.
func FindMatch(unit models.CSVUnit, reference []models.UnitRecord) *Match {
	exact := strictName(unit.Name)

	var candidates []int
	for i, ref := range reference {
		if strictName(ref.Name) == exact {
			candidates = append(candidates, i)
		}
	}
	if len(candidates) == 1 {
		return &Match{Reference: candidates[0]}
	}

	// Secondary rule: loose comparison over all reference units.
	loose := looseName(unit.Name)
	candidates = candidates[:0]
	for i, ref := range reference {
		if looseName(ref.Name) == loose {
			candidates = append(candidates, i)
		}
	}

	switch len(candidates) {
	case 0:
		return nil
	case 1:
		return &Match{Reference: candidates[0]}
	}

	// Tie-break on faction.
	unitFaction := faction.Normalize(unit.Faction)
	var sameFaction []int
	for _, i := range candidates {
		if faction.Normalize(reference[i].FactionID) == unitFaction {
			sameFaction = append(sameFaction, i)
		}
	}
	if len(sameFaction) == 1 {
		return &Match{Reference: sameFaction[0]}
	}
	if len(sameFaction) > 1 {
		candidates = sameFaction
	}

	// Still ambiguous: first in reference order, flagged for review.
	return &Match{Reference: candidates[0], Ambiguous: true}
}

// strictName implements the primary matching rule.
func strictName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// looseName strips bracketed suffixes (e.g. "(Elite)") and punctuation so
// near-identical names still line up.
func looseName(name string) string {
	var b strings.Builder
	depth := 0
	lastSpace := true
	for _, r := range strings.ToLower(name) {
		switch {
		case r == '(' || r == '[':
			depth++
		case r == ')' || r == ']':
			if depth > 0 {
				depth--
			}
		case depth > 0:
			// inside brackets, dropped
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastSpace = false
		default:
			if !lastSpace {
				b.WriteByte(' ')
				lastSpace = true
			}
		}
	}
	return strings.TrimSpace(b.String())
}

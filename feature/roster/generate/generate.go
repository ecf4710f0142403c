package generate

import (
	"fmt"
	"sort"
	"strings"

	"roster-sync/feature/roster/faction"
	"roster-sync/feature/roster/models"
)

// Logical file keys of a faction's generated file set.
const (
	FileTroops      = "troops"
	FileCharacters  = "characters"
	FileHighCommand = "highCommand"
	FileIndex       = "index"
)

// FileKeys returns the logical file keys in publishing order.
func FileKeys() []string {
	return []string{FileTroops, FileCharacters, FileHighCommand, FileIndex}
}

// Render groups a faction's canonical units by category and renders one
// source module per category plus an index module re-exporting the three.
// Output is deterministic: units are sorted by id and field order is fixed,
// so re-running generation on unchanged data produces byte-identical files
// and no spurious diff when published.
func Render(factionID string, units []models.UnitRecord) models.GeneratedFileSet {
	buckets := map[string][]models.UnitRecord{
		FileTroops:      {},
		FileCharacters:  {},
		FileHighCommand: {},
	}

	for _, unit := range units {
		switch unit.Category {
		case models.CategoryHighCommand:
			buckets[FileHighCommand] = append(buckets[FileHighCommand], unit)
		case models.CategoryCharacter:
			buckets[FileCharacters] = append(buckets[FileCharacters], unit)
		default:
			buckets[FileTroops] = append(buckets[FileTroops], unit)
		}
	}

	files := make(models.GeneratedFileSet, 4)
	for key, bucket := range buckets {
		sort.Slice(bucket, func(i, j int) bool { return bucket[i].ID < bucket[j].ID })
		files[key] = renderModule(factionID, key, bucket)
	}
	files[FileIndex] = renderIndex(factionID)

	return files
}

// RepoPath maps a logical file key to its path inside the remote repository.
func RepoPath(prefix, factionID, key string) string {
	return fmt.Sprintf("%s/%s/%s.ts", strings.TrimSuffix(prefix, "/"), factionID, key)
}

func renderModule(factionID, key string, units []models.UnitRecord) string {
	var b strings.Builder
	b.WriteString(header())
	b.WriteString("import { Unit } from \"../../types/unit\";\n\n")
	fmt.Fprintf(&b, "export const %s: Unit[] = [\n", exportName(factionID, key))

	for _, unit := range units {
		writeUnit(&b, unit)
	}

	b.WriteString("];\n")
	return b.String()
}

func renderIndex(factionID string) string {
	var b strings.Builder
	b.WriteString(header())
	for _, key := range []string{FileTroops, FileCharacters, FileHighCommand} {
		fmt.Fprintf(&b, "export { %s } from \"./%s\";\n", exportName(factionID, key), key)
	}
	return b.String()
}

func header() string {
	return "// Generated by roster-sync. Do not edit by hand.\n"
}

// exportName builds the camelCase export identifier, e.g.
// "northernTribesTroops" or "syenannHighCommand".
func exportName(factionID, key string) string {
	parts := strings.Split(faction.Slugify(factionID), "-")
	var b strings.Builder
	for i, part := range parts {
		if part == "" {
			continue
		}
		if i == 0 {
			b.WriteString(part)
			continue
		}
		b.WriteString(strings.ToUpper(part[:1]))
		b.WriteString(part[1:])
	}
	b.WriteString(strings.ToUpper(key[:1]))
	b.WriteString(key[1:])
	return b.String()
}

func writeUnit(b *strings.Builder, unit models.UnitRecord) {
	b.WriteString("  {\n")
	fmt.Fprintf(b, "    id: %s,\n", tsString(unit.ID))
	fmt.Fprintf(b, "    name: %s,\n", tsString(unit.Name))
	fmt.Fprintf(b, "    faction: %s,\n", tsString(unit.FactionID))
	fmt.Fprintf(b, "    points: %d,\n", unit.Points)
	fmt.Fprintf(b, "    keywords: %s,\n", tsArray(unit.Keywords))
	fmt.Fprintf(b, "    specialRules: %s,\n", tsArray(unit.SpecialRules))
	b.WriteString("    characteristics: {\n")
	fmt.Fprintf(b, "      availability: %d,\n", unit.Characteristics.Availability)
	fmt.Fprintf(b, "      command: %d,\n", unit.Characteristics.Command)
	fmt.Fprintf(b, "      highCommand: %t,\n", unit.Characteristics.HighCommand)
	fmt.Fprintf(b, "      tournamentLegal: %t,\n", unit.Characteristics.TournamentLegal)
	if unit.Characteristics.ImageURL != "" {
		fmt.Fprintf(b, "      imageUrl: %s,\n", tsString(unit.Characteristics.ImageURL))
	}
	b.WriteString("    },\n")
	b.WriteString("  },\n")
}

// tsString renders a double-quoted TypeScript string literal, escaping
// backslashes, quotes and newlines.
func tsString(s string) string {
	replacer := strings.NewReplacer(
		"\\", "\\\\",
		"\"", "\\\"",
		"\n", "\\n",
		"\r", "\\r",
		"\t", "\\t",
	)
	return "\"" + replacer.Replace(s) + "\""
}

func tsArray(values []string) string {
	if len(values) == 0 {
		return "[]"
	}
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = tsString(v)
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}

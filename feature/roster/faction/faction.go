package faction

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Unknown is the sentinel key for faction strings that cannot be resolved.
const Unknown = "unknown"

// Canonical faction keys. Every reference record and CSV row must normalize
// to one of these (or to Unknown).
const (
	NorthernTribes     = "northern-tribes"
	HegemonyOfEmbersig = "hegemony-of-embersig"
	Syenann            = "syenann"
	ScionsOfYaldabaoth = "scions-of-yaldabaoth"
)

// displayNames maps canonical keys to the display names used in CSV file
// naming and report output.
var displayNames = map[string]string{
	NorthernTribes:     "Northern Tribes",
	HegemonyOfEmbersig: "Hegemony of Embersig",
	Syenann:            "The Syenann",
	ScionsOfYaldabaoth: "Scions of Yaldabaoth",
}

// aliases maps slugified variants to canonical keys. Covers display names,
// legacy ids and known CSV typos.
var aliases = map[string]string{
	"the-syenann":              Syenann,
	"syenann":                  Syenann,
	"northern-tribes":          NorthernTribes,
	"the-northern-tribes":      NorthernTribes,
	"hegemony":                 HegemonyOfEmbersig,
	"the-hegemony-of-embersig": HegemonyOfEmbersig,
	"hegemony-of-embersig":     HegemonyOfEmbersig,
	"scions-of-yaldabaoth":     ScionsOfYaldabaoth,
	// Recurring typo in upstream CSV exports.
	"scions-of-taldabaoth": ScionsOfYaldabaoth,
	"scions":               ScionsOfYaldabaoth,
}

// stripDiacritics removes combining marks so "Sÿenann" slugs like "Syenann".
var stripDiacritics = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize canonicalizes a heterogeneous faction identifier (display name,
// slug, legacy id) to one canonical key. It is a total function: unrecognized
// input falls back to its slugified form, and the literal strings "null" and
// "undefined" map to the Unknown sentinel. Callers decide whether an unknown
// key is worth a warning; this function never logs and never fails.
func Normalize(raw string) string {
	slug := Slugify(raw)
	if slug == "" || slug == "null" || slug == "undefined" {
		return Unknown
	}
	if canonical, ok := aliases[slug]; ok {
		return canonical
	}
	return slug
}

// Known reports whether key is one of the closed set of canonical keys.
func Known(key string) bool {
	_, ok := displayNames[key]
	return ok
}

// All returns the canonical faction keys in stable order.
func All() []string {
	return []string{NorthernTribes, HegemonyOfEmbersig, Syenann, ScionsOfYaldabaoth}
}

// DisplayName returns the display name for a canonical key, or the key
// itself when it has none.
func DisplayName(key string) string {
	if name, ok := displayNames[key]; ok {
		return name
	}
	return key
}

// FileName returns the CSV object name for a faction by the
// display-name-to-filename convention.
func FileName(key string) string {
	return DisplayName(key) + ".csv"
}

// Slugify lower-cases a string, strips diacritics and punctuation, and joins
// the remaining words with hyphens.
func Slugify(raw string) string {
	flattened, _, err := transform.String(stripDiacritics, raw)
	if err != nil {
		flattened = raw
	}

	var b strings.Builder
	lastHyphen := true // suppress a leading hyphen
	for _, r := range strings.ToLower(flattened) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}

	return strings.TrimSuffix(b.String(), "-")
}

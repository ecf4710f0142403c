// Package faction canonicalizes heterogeneous faction identifiers.
//
// Unit data arrives with faction names in several shapes: display names
// ("Northern Tribes"), hyphenated slugs ("northern-tribes"), legacy ids and
// the occasional upstream typo. Normalize maps all of them onto one canonical
// key so that CSV rows and reference records can be compared. The function is
// total: anything unrecognized becomes a best-effort slug, and the literal
// strings "null"/"undefined" become the Unknown sentinel.
package faction

// Package reconcile compares a faction's CSV unit rows against its reference
// unit records.
//
// The pipeline is matcher -> comparator -> report builder. The matcher finds
// the best reference unit for each CSV row by normalized-name equality with
// fuzzy fallbacks; the comparator produces type-aware field mismatches; the
// report builder aggregates matches, mismatches and the two set differences
// (missing-in-reference, extra-in-reference) into one deterministic report.
//
// Mismatches and missing units are data, not errors: the report is the
// expected output of a run and is consumed directly by the admin surfaces.
package reconcile

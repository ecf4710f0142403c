// Package remote publishes generated faction files to a version-controlled
// repository through a GitHub-style contents HTTP API.
//
// Each file update is a two-step operation: read the current content's SHA
// (the version marker), then PUT the new content with that SHA so the remote
// performs a compare-and-swap. A stale SHA surfaces as a ConflictError for
// that file only; the remote API offers no multi-file transaction, so a
// publish batch reports per-file outcomes instead of pretending atomicity.
package remote

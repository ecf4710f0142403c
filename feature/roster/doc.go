// Package roster implements the unit data reconciliation feature.
//
// It keeps hand-maintained faction CSV files and the app's unit reference
// data in agreement by reconciling two sources of truth:
//  1. Storage (S3/MinIO): one CSV file per faction, edited by maintainers.
//  2. Reference: the database unit table, or the embedded static dataset.
//
// # Pipeline
//
// CSV rows are decoded schema-first (header names select columns, order is
// irrelevant), matched against reference units by normalized name with a
// loose retry and a faction tie-break, and compared field by field. The
// result is a deterministic ReconciliationReport. The same decoded rows can
// be rendered into TypeScript data modules and published to a Git repository
// through the contents API.
//
// # Components
//
//   - Service: orchestrates check, validate, generate, and publish runs.
//   - Handler: exposes the HTTP endpoints under /roster.
//   - Feature: registers the feature with the application loader.
//
// # HTTP Endpoints
//
//   - GET  /roster/factions           : canonical faction keys and names.
//   - GET  /roster/files              : per-faction CSV presence check.
//   - GET  /roster/validate           : reconcile all factions.
//   - GET  /roster/validate/:faction  : reconcile one faction.
//   - GET  /roster/generate/:faction  : render generated files (no publish).
//   - POST /roster/publish/:faction   : render and push to the remote repo.
package roster

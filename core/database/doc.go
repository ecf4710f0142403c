// Package database manages the connection to the reference unit database.
//
// The database holds the authoritative unit records that CSV files are
// reconciled against. The connection is optional: when it cannot be
// established the roster feature may fall back to the static in-process
// dataset, depending on configuration.
package database

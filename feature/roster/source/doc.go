// Package source provides the reference unit providers.
//
// The reference dataset has two possible origins: the relational store
// (DBProvider) and a static in-process snapshot (StaticProvider). The
// Provider interface makes the choice explicit and injectable instead of a
// module-level fallback singleton; the roster service selects a provider by
// configuration and may fall back from database to static when allowed.
package source

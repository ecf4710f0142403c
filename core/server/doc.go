// Package server holds configuration for the HTTP admin server.
//
// The admin API exposes the reconciliation operations (check, validate,
// generate, publish) over HTTP. Access is protected by a shared API key
// enforced by the auth middleware.
package server

package source

import (
	"context"
	"fmt"

	"roster-sync/feature/roster/models"
)

// Provider supplies the reference units a faction's CSV file is compared
// against. Two implementations exist: the database provider and the static
// in-process fallback; the service selects between them by configuration.
type Provider interface {
	// Name identifies the provider in reports and logs.
	Name() string
	// Units returns the reference units for a canonical faction key.
	// An empty result is valid; a FetchError means the source is unreachable.
	Units(ctx context.Context, factionID string) ([]models.UnitRecord, error)
}

// FetchError indicates the reference data source was unreachable. Depending
// on configuration the caller recovers by falling back to the static dataset
// or aborts that faction's run.
type FetchError struct {
	Source string
	Err    error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("failed to fetch reference units from %s: %v", e.Source, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

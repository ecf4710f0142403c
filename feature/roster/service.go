package roster

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"roster-sync/core/remote"
	"roster-sync/core/storage"
	"roster-sync/feature/roster/faction"
	"roster-sync/feature/roster/generate"
	"roster-sync/feature/roster/models"
	"roster-sync/feature/roster/reconcile"
	"roster-sync/feature/roster/source"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// Publisher pushes generated files to the remote repository.
// *remote.Client is the production implementation.
type Publisher interface {
	Publish(ctx context.Context, files map[string]string, message string) ([]remote.FileResult, error)
}

// PublishReport is the outcome of publishing one faction's file set.
type PublishReport struct {
	FactionID string              `json:"factionId"`
	Results   []remote.FileResult `json:"results"`
}

// Service orchestrates the reconciliation operations for unit data.
type Service struct {
	client        storage.Client
	bucket        string
	prefix        string
	provider      source.Provider
	fallback      source.Provider
	allowFallback bool
	publisher     Publisher
	repoPrefix    string
	logger        *zap.Logger
}

// NewService creates a new roster service.
func NewService(
	client storage.Client,
	bucket, prefix string,
	provider, fallback source.Provider,
	publisher Publisher,
	cfg Config,
	logger *zap.Logger,
) *Service {
	return &Service{
		client:        client,
		bucket:        bucket,
		prefix:        strings.TrimSuffix(prefix, "/"),
		provider:      provider,
		fallback:      fallback,
		allowFallback: cfg.AllowFallback,
		publisher:     publisher,
		repoPrefix:    cfg.RepoPrefix,
		logger:        logger,
	}
}

// CheckFiles reports, for every canonical faction, whether its CSV file
// exists in the object store.
func (s *Service) CheckFiles(ctx context.Context) ([]models.FileStatus, error) {
	present := make(map[string]struct{})

	opts := minio.ListObjectsOptions{
		Prefix:    s.prefix + "/",
		Recursive: true,
	}
	for obj := range s.client.ListObjects(ctx, s.bucket, opts) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list csv files: %w", obj.Err)
		}
		present[obj.Key] = struct{}{}
	}

	statuses := make([]models.FileStatus, 0, len(faction.All()))
	for _, key := range faction.All() {
		name := faction.FileName(key)
		_, ok := present[s.objectName(key)]
		statuses = append(statuses, models.FileStatus{
			FactionID: key,
			FileName:  name,
			Present:   ok,
		})
	}
	return statuses, nil
}

// Validate reconciles one faction's CSV file against its reference units and
// returns the report. Mismatches and missing units are report data; only
// unreadable input is an error.
func (s *Service) Validate(ctx context.Context, factionID string) (*models.ReconciliationReport, error) {
	key := faction.Normalize(factionID)

	csvUnits, err := s.csvUnits(ctx, key)
	if err != nil {
		return nil, err
	}
	s.warnUnknownFactions(key, csvUnits)

	reference, src, err := s.referenceUnits(ctx, key)
	if err != nil {
		return nil, err
	}

	report := reconcile.BuildReport(key, csvUnits, reference)
	report.ReferenceSource = src

	if len(report.AmbiguousMatches) > 0 {
		s.logger.Warn("Ambiguous matches need human review",
			zap.String("faction", key),
			zap.Strings("units", report.AmbiguousMatches),
		)
	}
	return report, nil
}

// ValidateAll reconciles every canonical faction independently. A faction's
// failure becomes its error entry in the summary and never aborts siblings.
func (s *Service) ValidateAll(ctx context.Context) models.BatchSummary {
	summary := models.BatchSummary{Runs: make([]models.FactionRun, 0, len(faction.All()))}

	for _, key := range faction.All() {
		run := models.FactionRun{FactionID: key}
		report, err := s.Validate(ctx, key)
		if err != nil {
			run.Error = err.Error()
			summary.Failed++
			s.logger.Warn("Faction validation failed",
				zap.String("faction", key),
				zap.Error(err),
			)
		} else {
			run.Report = report
		}
		summary.Runs = append(summary.Runs, run)
	}

	return summary
}

// Generate renders one faction's CSV data into its generated file set.
func (s *Service) Generate(ctx context.Context, factionID string) (models.GeneratedFileSet, error) {
	key := faction.Normalize(factionID)

	csvUnits, err := s.csvUnits(ctx, key)
	if err != nil {
		return nil, err
	}

	return generate.Render(key, CanonicalUnits(key, csvUnits)), nil
}

// Publish regenerates a faction's file set and pushes it to the remote
// repository. Per-file failures are part of the report; only an
// authorization failure (or unreadable input) is returned as an error.
func (s *Service) Publish(ctx context.Context, factionID string) (*PublishReport, error) {
	key := faction.Normalize(factionID)

	files, err := s.Generate(ctx, key)
	if err != nil {
		return nil, err
	}

	payload := make(map[string]string, len(files))
	for fileKey, content := range files {
		payload[generate.RepoPath(s.repoPrefix, key, fileKey)] = content
	}

	message := fmt.Sprintf("Update %s unit data", faction.DisplayName(key))
	results, err := s.publisher.Publish(ctx, payload, message)
	if err != nil {
		return nil, err
	}

	for _, result := range results {
		if result.Err != nil {
			s.logger.Warn("File publish failed",
				zap.String("faction", key),
				zap.String("path", result.Path),
				zap.Error(result.Err),
			)
		}
	}

	return &PublishReport{FactionID: key, Results: results}, nil
}

func (s *Service) objectName(factionID string) string {
	return s.prefix + "/" + faction.FileName(factionID)
}

func (s *Service) csvUnits(ctx context.Context, factionID string) ([]models.CSVUnit, error) {
	raw, err := storage.ReadText(ctx, s.client, s.bucket, s.objectName(factionID))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch csv for %s: %w", factionID, err)
	}
	return ParseCSV(raw)
}

// referenceUnits loads reference data from the configured provider, falling
// back to the static dataset on fetch failure when allowed.
func (s *Service) referenceUnits(ctx context.Context, factionID string) ([]models.UnitRecord, string, error) {
	units, err := s.provider.Units(ctx, factionID)
	if err == nil {
		return units, s.provider.Name(), nil
	}

	var fetchErr *source.FetchError
	if errors.As(err, &fetchErr) && s.allowFallback && s.fallback != nil {
		s.logger.Warn("Reference source unreachable, using static fallback",
			zap.String("faction", factionID),
			zap.Error(err),
		)
		units, fallbackErr := s.fallback.Units(ctx, factionID)
		if fallbackErr == nil {
			return units, s.fallback.Name(), nil
		}
		s.logger.Error("Static fallback also failed",
			zap.String("faction", factionID),
			zap.Error(fallbackErr),
		)
	}

	return nil, "", err
}

func (s *Service) warnUnknownFactions(factionID string, csvUnits []models.CSVUnit) {
	seen := make(map[string]struct{})
	for _, unit := range csvUnits {
		key := faction.Normalize(unit.Faction)
		if faction.Known(key) {
			continue
		}
		if _, done := seen[key]; done {
			continue
		}
		seen[key] = struct{}{}
		s.logger.Warn("Unrecognized faction in csv row",
			zap.String("expected", factionID),
			zap.String("raw", unit.Faction),
			zap.String("normalized", key),
		)
	}
}

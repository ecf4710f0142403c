package cmd

import (
	"context"
	"fmt"

	"roster-sync/feature/roster/models"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var validateAll bool

// validateCmd reconciles faction CSV files against the reference units.
var validateCmd = &cobra.Command{
	Use:   "validate [faction]",
	Short: "Validate faction CSV files against the unit reference",
	Long: `Reconciles a faction's CSV file against the reference units and reports
matches, field mismatches, missing units, and extra reference units.

Examples:
  # Validate a single faction
  validate northern-tribes

  # Validate every faction (per-faction failures do not stop the batch)
  validate --all`,
	Args: cobra.MaximumNArgs(1),
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().BoolVar(&validateAll, "all", false, "Validate every canonical faction")
	RootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	if !validateAll && len(args) == 0 {
		return fmt.Errorf("faction argument required (or use --all)")
	}

	cfg, l, err := setup()
	if err != nil {
		return err
	}

	feature, err := buildFeature(cfg, l)
	if err != nil {
		return err
	}
	svc := feature.Service()

	if validateAll {
		summary := svc.ValidateAll(ctx)
		for _, run := range summary.Runs {
			if run.Error != "" {
				l.Error("Faction validation failed",
					zap.String("faction", run.FactionID),
					zap.String("error", run.Error),
				)
				continue
			}
			printReport(l, run.Report)
		}
		l.Info("Batch validation complete",
			zap.Int("factions", len(summary.Runs)),
			zap.Int("failed", summary.Failed),
		)
		if summary.Failed > 0 {
			return fmt.Errorf("%d faction(s) failed validation", summary.Failed)
		}
		return nil
	}

	key, err := resolveFaction(args[0])
	if err != nil {
		return err
	}

	report, err := svc.Validate(ctx, key)
	if err != nil {
		return fmt.Errorf("failed to validate %s: %w", key, err)
	}

	printReport(l, report)
	return nil
}

// printReport prints a formatted reconciliation report using logger.
func printReport(l *zap.Logger, report *models.ReconciliationReport) {
	l.Info("Reconciliation report",
		zap.String("faction", report.FactionID),
		zap.String("reference_source", report.ReferenceSource),
		zap.Int("matched", len(report.Matched)),
		zap.Int("mismatched", len(report.Mismatched)),
		zap.Int("missing_in_reference", len(report.MissingInReference)),
		zap.Int("extra_in_reference", len(report.ExtraInReference)),
	)

	for _, mismatch := range report.Mismatched {
		l.Warn("Field mismatch",
			zap.String("unit", mismatch.UnitName),
			zap.String("field", mismatch.Field),
			zap.String("reference", mismatch.OldValue),
			zap.String("csv", mismatch.NewValue),
		)
	}
	for _, unit := range report.MissingInReference {
		l.Warn("Unit missing in reference", zap.String("unit", unit.Name))
	}
	for _, unit := range report.ExtraInReference {
		l.Warn("Reference unit absent from csv", zap.String("unit", unit.Name))
	}
	for _, name := range report.AmbiguousMatches {
		l.Warn("Ambiguous match resolved by reference order", zap.String("unit", name))
	}
}

package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// checkCmd reports which faction CSV files exist in the object store.
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check which faction CSV files exist in storage",
	Long: `Lists every canonical faction and whether its CSV file is present in
the configured object store.`,
	RunE: runCheck,
}

func init() {
	RootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, l, err := setup()
	if err != nil {
		return err
	}

	feature, err := buildFeature(cfg, l)
	if err != nil {
		return err
	}

	statuses, err := feature.Service().CheckFiles(ctx)
	if err != nil {
		return fmt.Errorf("failed to check csv files: %w", err)
	}

	missing := 0
	for _, status := range statuses {
		if status.Present {
			l.Info("CSV file present",
				zap.String("faction", status.FactionID),
				zap.String("file", status.FileName),
			)
		} else {
			missing++
			l.Warn("CSV file missing",
				zap.String("faction", status.FactionID),
				zap.String("file", status.FileName),
			)
		}
	}

	l.Info("File check complete",
		zap.Int("total", len(statuses)),
		zap.Int("missing", missing),
	)
	return nil
}

package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var publishYes bool

// publishCmd regenerates a faction's file set and pushes it to the remote
// repository.
var publishCmd = &cobra.Command{
	Use:   "publish <faction>",
	Short: "Publish generated unit data to the app repository",
	Long: `Regenerates a faction's TypeScript modules from its CSV file and pushes
them to the configured repository through the contents API.

Publishing overwrites repository files, so it asks for confirmation unless
--yes is given.

Examples:
  # Publish with interactive confirmation
  publish northern-tribes

  # Publish with auto-confirm (non-interactive)
  publish northern-tribes --yes`,
	Args: cobra.ExactArgs(1),
	RunE: runPublish,
}

func init() {
	publishCmd.Flags().BoolVar(&publishYes, "yes", false, "Auto-confirm publishing (non-interactive)")
	RootCmd.AddCommand(publishCmd)
}

func runPublish(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	key, err := resolveFaction(args[0])
	if err != nil {
		return err
	}

	cfg, l, err := setup()
	if err != nil {
		return err
	}

	if cfg.Remote.Token == "" {
		return fmt.Errorf("remote token is not configured, set REMOTE_TOKEN")
	}
	if cfg.Remote.Owner == "" || cfg.Remote.Repo == "" {
		return fmt.Errorf("remote repository is not configured, set REMOTE_OWNER and REMOTE_REPO")
	}

	feature, err := buildFeature(cfg, l)
	if err != nil {
		return err
	}

	if !confirmPublish(key, cfg.Remote.Owner, cfg.Remote.Repo) {
		l.Warn("Publish cancelled by user. No changes were made.")
		return nil
	}

	report, err := feature.Service().Publish(ctx, key)
	if err != nil {
		return fmt.Errorf("failed to publish %s: %w", key, err)
	}

	failed := 0
	for _, result := range report.Results {
		if result.Err != nil {
			failed++
			l.Error("File publish failed",
				zap.String("path", result.Path),
				zap.Error(result.Err),
			)
			continue
		}
		l.Info("File published",
			zap.String("path", result.Path),
			zap.Bool("created", result.Created),
		)
	}

	l.Info("Publish complete",
		zap.String("faction", key),
		zap.Int("files", len(report.Results)),
		zap.Int("failed", failed),
	)
	if failed > 0 {
		return fmt.Errorf("%d file(s) failed to publish", failed)
	}
	return nil
}

func confirmPublish(factionID, owner, repo string) bool {
	if publishYes {
		fmt.Println("\n✓ Auto-confirmed via --yes flag")
		return true
	}

	fmt.Printf("\n⚠️  Type 'yes' to publish %s to %s/%s: ", factionID, owner, repo)
	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}

	return strings.TrimSpace(response) == "yes"
}

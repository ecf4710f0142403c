package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"roster-sync/feature/roster/generate"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var generateOut string

// generateCmd renders a faction's generated file set to a local directory.
var generateCmd = &cobra.Command{
	Use:   "generate <faction>",
	Short: "Generate TypeScript unit data modules for a faction",
	Long: `Renders a faction's CSV data into its generated TypeScript modules and
writes them to a local directory for inspection. Nothing is published.

Example:
  generate syenann --out ./out`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&generateOut, "out", "out", "Output directory for generated files")
	RootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	key, err := resolveFaction(args[0])
	if err != nil {
		return err
	}

	cfg, l, err := setup()
	if err != nil {
		return err
	}

	feature, err := buildFeature(cfg, l)
	if err != nil {
		return err
	}

	files, err := feature.Service().Generate(ctx, key)
	if err != nil {
		return fmt.Errorf("failed to generate %s: %w", key, err)
	}

	dir := filepath.Join(generateOut, key)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	for _, fileKey := range generate.FileKeys() {
		path := filepath.Join(dir, fileKey+".ts")
		if err := os.WriteFile(path, []byte(files[fileKey]), 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
		l.Info("Wrote generated file", zap.String("path", path))
	}

	l.Info("Generation complete",
		zap.String("faction", key),
		zap.Int("files", len(files)),
	)
	return nil
}

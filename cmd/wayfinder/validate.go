package main

import (
	"context"
	"fmt"
	"os"

	"github.com/aretw0/wayfinder/internal/config"
	"github.com/aretw0/wayfinder/internal/validator"
	"github.com/aretw0/wayfinder/pkg/highlight"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the model and region index for consistency",
	Long: `Reads the generated model and region index and reports catalog entries without a node,
regions without a node, highlighted ids without a region, duplicate or non-canonical ids and
malformed colors.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, _ := setup(cmd)
		if err := runValidate(cmd.Context(), cfg); err != nil {
			fmt.Printf("Validation failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Model and region index are consistent! ✅")
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(ctx context.Context, cfg config.Config) error {
	catalog, err := catalogFor(cfg)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	report, err := validator.Files(ctx, cfg.Path(cfg.Generate.Model), cfg.Path(cfg.Generate.Index), catalog, highlight.DefaultMap())
	if err != nil {
		return err
	}
	return report.Err()
}

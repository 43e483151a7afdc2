package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/aretw0/wayfinder"
	"github.com/aretw0/wayfinder/internal/presentation/tui"
	"github.com/aretw0/wayfinder/pkg/export"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Build the brain model and its region index",
	Long: `Builds the anatomical scene graph, writes it as binary glTF and joins its node names against
the catalog to write the region index. With --points a surface point cloud is written as well.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, logger := setup(cmd)
		flags := cmd.Flags()

		if flags.Changed("seed") {
			cfg.Generate.Seed, _ = flags.GetInt64("seed")
		}
		if flags.Changed("folds") {
			cfg.Generate.Folds, _ = flags.GetInt("folds")
		}
		if flags.Changed("model") {
			cfg.Generate.Model, _ = flags.GetString("model")
		}
		if flags.Changed("index") {
			cfg.Generate.Index, _ = flags.GetString("index")
		}
		if flags.Changed("points") {
			cfg.Generate.Points, _ = flags.GetString("points")
		}
		if flags.Changed("point-count") {
			cfg.Generate.PointCount, _ = flags.GetInt("point-count")
		}
		if flags.Changed("catalog") {
			cfg.Generate.Catalog, _ = flags.GetString("catalog")
		}
		if err := cfg.Validate(); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		catalog, err := catalogFor(cfg)
		if err != nil {
			fmt.Printf("Error loading catalog: %v\n", err)
			os.Exit(1)
		}

		if tui.IsTerminal(os.Stdout) {
			tui.PrintBanner(os.Stdout, wayfinder.Version)
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		gen := export.NewGenerator(export.Config{
			ModelPath:  cfg.Path(cfg.Generate.Model),
			IndexPath:  cfg.Path(cfg.Generate.Index),
			PointsPath: cfg.Path(cfg.Generate.Points),
			PointCount: cfg.Generate.PointCount,
			FoldCount:  cfg.Generate.Folds,
			Seed:       cfg.Generate.Seed,
			Catalog:    catalog,
		}, export.WithLogger(logger))

		res, err := gen.Run(ctx)
		if err != nil {
			fmt.Printf("Generation failed: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Generated %d regions (seed %d)\n", res.Index.Len(), res.Seed)
		for _, path := range res.Written {
			fmt.Printf("  wrote %s\n", path)
		}
		if res.Points > 0 {
			fmt.Printf("  %d surface points\n", res.Points)
		}
		if len(res.Unmatched) > 0 {
			fmt.Printf("  %d catalog entries have no node; run 'wayfinder validate' for details\n", len(res.Unmatched))
		}
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().Int64("seed", 0, "Seed for folds and point sampling (0 picks one from the clock)")
	generateCmd.Flags().Int("folds", 20, "Number of cortical folds")
	generateCmd.Flags().String("model", export.DefaultModelPath, "Output path of the model")
	generateCmd.Flags().String("index", export.DefaultIndexPath, "Output path of the region index")
	generateCmd.Flags().String("points", "", "Output path of the point cloud (e.g. "+export.DefaultPointsPath+")")
	generateCmd.Flags().Int("point-count", 5000, "Number of surface points")
	generateCmd.Flags().String("catalog", "", "Catalog file (default: built-in)")
}

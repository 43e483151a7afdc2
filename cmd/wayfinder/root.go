package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/aretw0/wayfinder/internal/config"
	"github.com/aretw0/wayfinder/pkg/anatomy"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "wayfinder",
	Short: "Wayfinder generates a brain model and highlights its regions by state",
	Long: `Wayfinder builds an anatomical brain model as binary glTF together with a JSON region index,
and derives how each region is displayed for the Flow, Anxious, Sad and Shutdown states.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", "", "Config file (default ./"+config.DefaultFile+" when present)")
	rootCmd.PersistentFlags().String("dir", ".", "Base directory for relative artifact paths")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn or error")
	rootCmd.PersistentFlags().String("log-format", "", "Log format: text or json")
}

// setup loads the configuration, applies persistent flag overrides and builds the logger.
// Configuration errors end the process.
func setup(cmd *cobra.Command) (config.Config, *slog.Logger) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}
	if cmd.Flags().Changed("dir") {
		cfg.Dir, _ = cmd.Flags().GetString("dir")
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level, _ = cmd.Flags().GetString("log-level")
	}
	if cmd.Flags().Changed("log-format") {
		cfg.Log.Format, _ = cmd.Flags().GetString("log-format")
	}

	logger, err := cfg.Logger()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	return cfg, logger
}

// catalogFor returns the configured catalog or the embedded one.
func catalogFor(cfg config.Config) (*anatomy.Catalog, error) {
	if cfg.Generate.Catalog == "" {
		return anatomy.DefaultCatalog(), nil
	}
	return anatomy.LoadCatalog(cfg.Path(cfg.Generate.Catalog))
}

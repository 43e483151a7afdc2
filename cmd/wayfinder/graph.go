package main

import (
	"fmt"
	"os"

	"github.com/aretw0/wayfinder/internal/presentation/graph"
	"github.com/aretw0/wayfinder/pkg/anatomy"
	"github.com/aretw0/wayfinder/pkg/domain"
	"github.com/aretw0/wayfinder/pkg/highlight"
	"github.com/spf13/cobra"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Export the scene graph visualization",
	Long: `Builds the brain scene and outputs a Mermaid diagram (graph TD) of its node hierarchy.
--state, --hover and --selected overlay the regions a viewer would emphasize.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, logger := setup(cmd)

		seed := cfg.Generate.Seed
		if seed == 0 {
			seed = 1
		}
		brain := anatomy.Build(
			anatomy.WithSeed(seed),
			anatomy.WithFoldCount(cfg.Generate.Folds),
			anatomy.WithLogger(logger),
		)

		var overlay *graph.GraphOverlay
		name, _ := cmd.Flags().GetString("state")
		hover, _ := cmd.Flags().GetString("hover")
		selected, _ := cmd.Flags().GetString("selected")
		if name != "" || hover != "" || selected != "" {
			overlay = &graph.GraphOverlay{}
			if name != "" {
				state, err := domain.ParseState(name)
				if err != nil {
					fmt.Printf("Error: %v\n", err)
					os.Exit(1)
				}
				for _, id := range highlight.DefaultMap().Regions(state) {
					overlay.Highlighted = append(overlay.Highlighted, anatomy.NodeName(id))
				}
			}
			if hover != "" {
				overlay.Hovered = anatomy.NodeName(hover)
			}
			if selected != "" {
				overlay.Selected = anatomy.NodeName(selected)
			}
		}

		fmt.Print(graph.GenerateMermaid(anatomy.Scene(brain), overlay))
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)

	graphCmd.Flags().String("state", "", "Highlight the regions emphasized by a state")
	graphCmd.Flags().String("hover", "", "Mark a hovered region id")
	graphCmd.Flags().String("selected", "", "Mark a selected region id")
}

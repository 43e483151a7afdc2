package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/aretw0/wayfinder/pkg/anatomy"
	"github.com/aretw0/wayfinder/pkg/domain"
	"github.com/aretw0/wayfinder/pkg/highlight"
	"github.com/aretw0/wayfinder/pkg/regions"
	"github.com/spf13/cobra"
)

var styleCmd = &cobra.Command{
	Use:   "style <state>",
	Short: "Print derived region styles as JSON",
	Long: `Derives the display style of every region for a state and prints it as JSON.
--time evaluates pulsing glows at a point in time; --mesh prints the whole-mesh highlight of
every structure instead. --points prints the point cloud size at --time.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, logger := setup(cmd)
		state, err := domain.ParseState(args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		styler := highlight.Default()

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")

		if points, _ := cmd.Flags().GetBool("points"); points {
			t, _ := cmd.Flags().GetFloat64("time")
			out := map[string]any{"state": state, "time": t, "point_size": highlight.PointSizeAt(state, t)}
			if err := enc.Encode(out); err != nil {
				fmt.Printf("Error: %v\n", err)
				os.Exit(1)
			}
			return
		}

		if mesh, _ := cmd.Flags().GetBool("mesh"); mesh {
			set := styler.Map().Regions(state)
			names := anatomy.StructureNames()
			out := make([]highlight.MeshStyle, len(names))
			for i, name := range names {
				out[i] = styler.MeshHighlight(set, name)
			}
			if err := enc.Encode(out); err != nil {
				fmt.Printf("Error: %v\n", err)
				os.Exit(1)
			}
			return
		}

		index := regions.NewLoader(regions.WithLogger(logger)).Load(cmd.Context(), cfg.IndexSource())
		hover, _ := cmd.Flags().GetString("hover")
		selected, _ := cmd.Flags().GetString("selected")
		styles := styler.DeriveAll(state, index, hover, selected)

		if cmd.Flags().Changed("time") {
			t, _ := cmd.Flags().GetFloat64("time")
			for i := range styles {
				styles[i].EmissiveIntensity = highlight.EmissiveAt(styles[i], t)
			}
		}
		if err := enc.Encode(styles); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(styleCmd)

	styleCmd.Flags().String("hover", "", "Region id under the pointer")
	styleCmd.Flags().String("selected", "", "Selected region id")
	styleCmd.Flags().Float64("time", 0, "Seconds since start, for pulsing glows")
	styleCmd.Flags().Bool("mesh", false, "Print whole-mesh highlights of the model structures")
	styleCmd.Flags().Bool("points", false, "Print the point cloud point size")
}

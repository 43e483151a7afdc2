package main

import (
	"fmt"
	"os"

	"github.com/aretw0/wayfinder/internal/presentation/tui"
	"github.com/aretw0/wayfinder/pkg/domain"
	"github.com/aretw0/wayfinder/pkg/highlight"
	"github.com/aretw0/wayfinder/pkg/regions"
	"github.com/spf13/cobra"
)

var regionsCmd = &cobra.Command{
	Use:   "regions [id]",
	Short: "List regions of the region index",
	Long: `Prints the region index as a table. With --state the derived display of every region is shown
instead of its base metadata. With a region id, prints that region the way a tooltip panel does.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, logger := setup(cmd)
		source := cfg.IndexSource()
		if cmd.Flags().Changed("index") {
			source, _ = cmd.Flags().GetString("index")
		}

		index := regions.NewLoader(regions.WithLogger(logger)).Load(cmd.Context(), source)
		render := tui.RendererFor(os.Stdout)

		if len(args) == 1 {
			region, ok := index.Find(args[0])
			if !ok {
				fmt.Printf("Error: %v: %q\n", domain.ErrRegionNotFound, args[0])
				os.Exit(1)
			}
			out, err := render(tui.RegionMarkdown(region))
			if err != nil {
				fmt.Printf("Error rendering region: %v\n", err)
				os.Exit(1)
			}
			fmt.Print(out)
			return
		}

		var styles map[string]domain.Style
		if name, _ := cmd.Flags().GetString("state"); name != "" {
			state, err := domain.ParseState(name)
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				os.Exit(1)
			}
			hover, _ := cmd.Flags().GetString("hover")
			selected, _ := cmd.Flags().GetString("selected")

			styles = make(map[string]domain.Style, index.Len())
			for _, s := range highlight.Default().DeriveAll(state, index, hover, selected) {
				styles[s.RegionID] = s
			}
		}

		out, err := render(tui.RegionsMarkdown(index, styles))
		if err != nil {
			fmt.Printf("Error rendering regions: %v\n", err)
			os.Exit(1)
		}
		fmt.Print(out)

		if tui.IsTerminal(os.Stdout) {
			for _, r := range index.Regions {
				color := r.Color
				if s, ok := styles[r.ID]; ok {
					color = s.Color
				}
				fmt.Printf("  %s  %s\n", tui.Swatch(color), r.Name)
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(regionsCmd)

	regionsCmd.Flags().String("index", "", "Region index path or URL (default from config)")
	regionsCmd.Flags().String("state", "", "Show derived styles for a state")
	regionsCmd.Flags().String("hover", "", "Region id under the pointer")
	regionsCmd.Flags().String("selected", "", "Selected region id")
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/pokedex/internal/entities"
	"github.com/KirkDiggler/pokedex/internal/services/regions"
)

func (c *cli) regionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "regions",
		Short: "List every region with its generation and location count",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := c.context(cmd)
			defer cancel()

			out, err := c.app.regions.ListRegions(ctx, &regions.ListRegionsInput{WithDetails: true})
			if err != nil {
				return fmt.Errorf("failed to list regions: %w", err)
			}
			if c.jsonOut {
				return c.printJSON(cmd, out)
			}

			w := cmd.OutOrStdout()
			for i, ref := range out.Page.Results {
				line := fmt.Sprintf("  %-8s", entities.DisplayName(ref.Name))
				if info, ok := regions.RegionInfo(ref.Name); ok {
					line += fmt.Sprintf("  Gen %d", info.Generation)
				}
				if i < len(out.Details) && out.Details[i] != nil {
					line += fmt.Sprintf("  %d locations", len(out.Details[i].Locations))
				}
				fmt.Fprintln(w, line)
			}
			return nil
		},
	}
}

func (c *cli) regionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "region [name]",
		Short: "Show a region and its locations",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := c.context(cmd)
			defer cancel()

			region, err := c.app.regions.GetRegion(ctx, &regions.GetRegionInput{Name: args[0]})
			if err != nil {
				return fmt.Errorf("failed to get region %s: %w", args[0], err)
			}
			locations, err := c.app.regions.ListLocationsByRegion(ctx, &regions.ListLocationsByRegionInput{Region: args[0]})
			if err != nil {
				return fmt.Errorf("failed to list locations for %s: %w", args[0], err)
			}
			if c.jsonOut {
				return c.printJSON(cmd, region.Region)
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%s (%s)\n", entities.DisplayName(region.Region.Name), region.Region.MainGeneration)
			if info, ok := regions.RegionInfo(region.Region.Name); ok {
				fmt.Fprintf(w, "  %s\n", info.Description)
			}
			fmt.Fprintf(w, "Locations (%d):\n", locations.Page.Count)
			for _, loc := range locations.Page.Results {
				fmt.Fprintf(w, "  - %s\n", loc.Name)
			}
			return nil
		},
	}
}

func (c *cli) locationCmd() *cobra.Command {
	var (
		area   string
		filter string
	)

	cmd := &cobra.Command{
		Use:   "location [name]",
		Short: "Show a location's areas, or one area's encounters with --area",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := c.context(cmd)
			defer cancel()

			if area != "" {
				out, err := c.app.regions.GetLocationArea(ctx, &regions.GetLocationAreaInput{Name: area})
				if err != nil {
					return fmt.Errorf("failed to get location area %s: %w", area, err)
				}
				encounters := regions.FilterEncounters(out.Area, filter)
				if c.jsonOut {
					return c.printJSON(cmd, encounters)
				}
				printEncounters(cmd, out.Area, encounters)
				return nil
			}

			out, err := c.app.regions.GetLocation(ctx, &regions.GetLocationInput{Name: args[0]})
			if err != nil {
				return fmt.Errorf("failed to get location %s: %w", args[0], err)
			}
			if c.jsonOut {
				return c.printJSON(cmd, out.Location)
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%s (%s)\n", entities.DisplayName(out.Location.Name), out.Location.Region)
			fmt.Fprintf(w, "Areas (%d):\n", len(out.Location.Areas))
			for _, a := range out.Location.Areas {
				fmt.Fprintf(w, "  - %s\n", a.Name)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&area, "area", "", "Location area to list encounters for")
	cmd.Flags().StringVar(&filter, "filter", "", "Only show encounters whose name contains this text")
	return cmd
}

func printEncounters(cmd *cobra.Command, area *entities.LocationArea, encounters []entities.Encounter) {
	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Encounters in %s:\n", entities.DisplayName(area.Name))
	if len(encounters) == 0 {
		fmt.Fprintln(w, "  No Pokémon found.")
		return
	}
	for _, enc := range encounters {
		best := 0
		for _, v := range enc.Versions {
			if v.MaxChance > best {
				best = v.MaxChance
			}
		}
		fmt.Fprintf(w, "  - %s  %d versions  up to %d%%\n", entities.DisplayName(enc.Entity.Name), len(enc.Versions), best)
	}
}

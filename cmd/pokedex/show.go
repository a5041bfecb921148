package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/pokedex/internal/entities"
	"github.com/KirkDiggler/pokedex/internal/services/catalog"
)

func (c *cli) showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [name-or-id]",
		Short: "Show one entity's details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := c.context(cmd)
			defer cancel()

			out, err := c.app.catalog.GetEntity(ctx, &catalog.GetEntityInput{NameOrID: args[0]})
			if err != nil {
				return fmt.Errorf("failed to get %s: %w", args[0], err)
			}
			if _, err := c.app.favorites.Load(ctx); err != nil {
				return fmt.Errorf("failed to load favorites: %w", err)
			}

			if c.jsonOut {
				return c.printJSON(cmd, out.Entity)
			}
			printEntity(cmd, out.Entity, c.app.favorites.IsFavorite(out.Entity.ID))
			return nil
		},
	}
}

func printEntity(cmd *cobra.Command, e *entities.Entity, favorite bool) {
	out := cmd.OutOrStdout()

	star := ""
	if favorite {
		star = " ★"
	}
	fmt.Fprintf(out, "#%04d %s%s\n", e.ID, entities.DisplayName(e.Name), star)
	fmt.Fprintf(out, "  Types:  %s\n", strings.Join(e.Types, ", "))
	fmt.Fprintf(out, "  Height: %.1f m\n", e.HeightMeters())
	fmt.Fprintf(out, "  Weight: %.1f kg\n", e.WeightKilograms())
	if art := e.Artwork(); art != "" {
		fmt.Fprintf(out, "  Image:  %s\n", art)
	}

	if len(e.Stats) > 0 {
		fmt.Fprintln(out, "  Stats:")
		for _, s := range e.Stats {
			fmt.Fprintf(out, "    %-16s %3d\n", entities.DisplayName(s.Name), s.BaseStat)
		}
		fmt.Fprintf(out, "    %-16s %3d\n", "Total", e.StatTotal())
	}
}

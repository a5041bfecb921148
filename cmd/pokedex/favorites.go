package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/pokedex/internal/entities"
	"github.com/KirkDiggler/pokedex/internal/services/catalog"
	"github.com/KirkDiggler/pokedex/internal/services/favorites"
)

func (c *cli) favoritesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "favorites",
		Short: "Manage the persisted favorites set",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "add [id]",
			Short: "Add an entity id to favorites",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return c.mutateFavorites(cmd, args[0], func(ctx context.Context, id int) (*favorites.ListOutput, error) {
					return c.app.favorites.Add(ctx, &favorites.AddInput{ID: id})
				})
			},
		},
		&cobra.Command{
			Use:   "remove [id]",
			Short: "Remove an entity id from favorites",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return c.mutateFavorites(cmd, args[0], func(ctx context.Context, id int) (*favorites.ListOutput, error) {
					return c.app.favorites.Remove(ctx, &favorites.RemoveInput{ID: id})
				})
			},
		},
		&cobra.Command{
			Use:   "toggle [id]",
			Short: "Toggle an entity id in favorites",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return c.mutateFavorites(cmd, args[0], func(ctx context.Context, id int) (*favorites.ListOutput, error) {
					out, err := c.app.favorites.Toggle(ctx, &favorites.ToggleInput{ID: id})
					if err != nil {
						return nil, err
					}
					return &favorites.ListOutput{IDs: out.IDs}, nil
				})
			},
		},
		&cobra.Command{
			Use:   "list",
			Short: "List favorites with their details",
			Args:  cobra.NoArgs,
			RunE:  c.runListFavorites,
		},
	)
	return cmd
}

func (c *cli) mutateFavorites(cmd *cobra.Command, arg string, mutate func(ctx context.Context, id int) (*favorites.ListOutput, error)) error {
	id, err := strconv.Atoi(arg)
	if err != nil {
		return fmt.Errorf("invalid id %q: %w", arg, err)
	}

	ctx, cancel := c.context(cmd)
	defer cancel()

	if _, err := c.app.favorites.Load(ctx); err != nil {
		return fmt.Errorf("failed to load favorites: %w", err)
	}
	out, err := mutate(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to update favorites: %w", err)
	}

	if c.jsonOut {
		return c.printJSON(cmd, out.IDs)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Favorites: %v\n", out.IDs)
	return nil
}

func (c *cli) runListFavorites(cmd *cobra.Command, _ []string) error {
	ctx, cancel := c.context(cmd)
	defer cancel()

	loaded, err := c.app.favorites.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load favorites: %w", err)
	}

	list := make([]*entities.Entity, 0, len(loaded.IDs))
	for _, id := range loaded.IDs {
		out, err := c.app.catalog.GetEntity(ctx, &catalog.GetEntityInput{NameOrID: strconv.Itoa(id)})
		if err != nil {
			c.app.logger.Warn("failed to load favorite",
				"id", id,
				"error", err)
			list = append(list, &entities.Entity{ID: id})
			continue
		}
		list = append(list, out.Entity)
	}

	if c.jsonOut {
		return c.printJSON(cmd, list)
	}

	out := cmd.OutOrStdout()
	if len(list) == 0 {
		fmt.Fprintln(out, "No favorites yet.")
		return nil
	}
	for _, e := range list {
		if e.Name == "" {
			fmt.Fprintf(out, "  #%04d (unavailable)\n", e.ID)
			continue
		}
		fmt.Fprintf(out, "  #%04d %s\n", e.ID, entities.DisplayName(e.Name))
	}
	return nil
}

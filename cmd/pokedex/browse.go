package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/pokedex/internal/entities"
	"github.com/KirkDiggler/pokedex/internal/orchestrators/browse"
)

func (c *cli) listCmd() *cobra.Command {
	var page int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List one page of the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := c.context(cmd)
			defer cancel()

			state, err := c.app.browse.Load(ctx)
			if err != nil {
				return fmt.Errorf("failed to load catalog: %w", err)
			}
			if page > 1 {
				state, err = c.app.browse.GoToPage(ctx, &browse.GoToPageInput{Page: page})
				if err != nil {
					return fmt.Errorf("failed to load page %d: %w", page, err)
				}
			}
			return c.printState(cmd, state)
		},
	}
	cmd.Flags().IntVar(&page, "page", 1, "Page number (1-based)")
	return cmd
}

func (c *cli) searchCmd() *cobra.Command {
	var page int

	cmd := &cobra.Command{
		Use:   "search [term]",
		Short: "Search the whole catalog by name",
		Long:  `Search matches the term as a case-insensitive substring of every entity name.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := c.context(cmd)
			defer cancel()

			state, err := c.app.browse.SetSearch(ctx, &browse.SetSearchInput{Term: args[0]})
			if err != nil {
				return fmt.Errorf("failed to search for %q: %w", args[0], err)
			}
			if page > 1 {
				state, err = c.app.browse.GoToPage(ctx, &browse.GoToPageInput{Page: page})
				if err != nil {
					return fmt.Errorf("failed to load page %d: %w", page, err)
				}
			}
			return c.printState(cmd, state)
		},
	}
	cmd.Flags().IntVar(&page, "page", 1, "Page number (1-based)")
	return cmd
}

func (c *cli) filterCmd() *cobra.Command {
	var page int

	cmd := &cobra.Command{
		Use:   "filter [category]",
		Short: "List the catalog entries carrying a category",
		Long:  fmt.Sprintf("Filter by one of: %s.", strings.Join(entities.Categories, ", ")),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := c.context(cmd)
			defer cancel()

			state, err := c.app.browse.SetCategory(ctx, &browse.SetCategoryInput{Category: args[0]})
			if err != nil {
				return fmt.Errorf("failed to filter by %q: %w", args[0], err)
			}
			if page > 1 {
				state, err = c.app.browse.GoToPage(ctx, &browse.GoToPageInput{Page: page})
				if err != nil {
					return fmt.Errorf("failed to load page %d: %w", page, err)
				}
			}
			return c.printState(cmd, state)
		},
	}
	cmd.Flags().IntVar(&page, "page", 1, "Page number (1-based)")
	return cmd
}

func (c *cli) printState(cmd *cobra.Command, state *browse.State) error {
	if c.jsonOut {
		return c.printJSON(cmd, state)
	}

	out := cmd.OutOrStdout()
	header := fmt.Sprintf("Mode: %s", state.Mode)
	switch state.Mode {
	case browse.ModeSearched:
		header += fmt.Sprintf(" (%q)", state.SearchTerm)
	case browse.ModeCategoryFiltered:
		header += fmt.Sprintf(" (%s)", state.Category)
	}
	fmt.Fprintf(out, "%s  Page %d/%d  Total %d\n", header, state.Page, state.PageCount, state.Total)

	if len(state.Items) == 0 {
		fmt.Fprintln(out, "No Pokémon found.")
		return nil
	}

	for i, item := range state.Items {
		line := fmt.Sprintf("  #%04d %s", item.ID, entities.DisplayName(item.Name))
		if i < len(state.Entities) {
			line += "  [" + strings.Join(state.Entities[i].Types, ", ") + "]"
		}
		fmt.Fprintln(out, line)
	}

	var nav []string
	if state.HasPrevious {
		nav = append(nav, "previous")
	}
	if state.HasNext {
		nav = append(nav, "next")
	}
	if len(nav) > 0 {
		fmt.Fprintf(out, "More: %s\n", strings.Join(nav, ", "))
	}
	return nil
}

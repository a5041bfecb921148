package main

import (
	"context"
	"encoding/json"
	"time"

	"github.com/spf13/cobra"
)

// cli carries the flags and the lazily built app shared by every command
type cli struct {
	build   appFactory
	app     *app
	timeout time.Duration
	jsonOut bool
}

func newRootCmd(build appFactory) *cobra.Command {
	c := &cli{build: build}

	root := &cobra.Command{
		Use:           "pokedex",
		Short:         "Pokédex catalog debug client",
		Long:          `Pokédex exercises the catalog core against the live data source: paging, filtering, searching, evolution chains, favorites and regions.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			a, err := c.build(cmd.Context())
			if err != nil {
				return err
			}
			c.app = a
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			if c.app == nil {
				return nil
			}
			return c.app.Close()
		},
	}

	root.PersistentFlags().DurationVar(&c.timeout, "timeout", 30*time.Second, "Request timeout")
	root.PersistentFlags().BoolVar(&c.jsonOut, "json", false, "Output as JSON")

	root.AddCommand(
		c.listCmd(),
		c.searchCmd(),
		c.filterCmd(),
		c.showCmd(),
		c.compareCmd(),
		c.evolutionCmd(),
		c.favoritesCmd(),
		c.regionsCmd(),
		c.regionCmd(),
		c.locationCmd(),
	)
	return root
}

// context bounds one command's work by the --timeout flag
func (c *cli) context(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	return context.WithTimeout(cmd.Context(), c.timeout)
}

// printJSON writes v as indented JSON to the command's output
func (c *cli) printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

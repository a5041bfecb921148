package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/pokedex/internal/entities"
	"github.com/KirkDiggler/pokedex/internal/services/compare"
)

func (c *cli) compareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare [left] [right]",
		Short: "Compare two entities' base stats",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := c.context(cmd)
			defer cancel()

			out, err := c.app.compare.Compare(ctx, &compare.CompareInput{Left: args[0], Right: args[1]})
			if err != nil {
				return fmt.Errorf("failed to compare: %w", err)
			}
			if c.jsonOut {
				return c.printJSON(cmd, out.Comparison)
			}
			printComparison(cmd, out.Comparison)
			return nil
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "candidates [term]",
		Short: "List entities that can be picked for comparison",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := c.context(cmd)
			defer cancel()

			input := &compare.CandidatesInput{}
			if len(args) == 1 {
				input.Term = args[0]
			}
			out, err := c.app.compare.Candidates(ctx, input)
			if err != nil {
				return fmt.Errorf("failed to list candidates: %w", err)
			}
			if c.jsonOut {
				return c.printJSON(cmd, out.Results)
			}

			w := cmd.OutOrStdout()
			if len(out.Results) == 0 {
				fmt.Fprintln(w, "No Pokémon found.")
				return nil
			}
			for _, ref := range out.Results {
				fmt.Fprintf(w, "  #%04d %s\n", ref.ID(), entities.DisplayName(ref.Name))
			}
			return nil
		},
	})
	return cmd
}

var sideMarks = map[compare.Side]string{
	compare.SideLeft:  "<",
	compare.SideRight: ">",
	compare.SideEqual: "=",
}

func printComparison(cmd *cobra.Command, cmp *compare.Comparison) {
	w := cmd.OutOrStdout()

	fmt.Fprintf(w, "%s  vs  %s\n", entityLabel(cmp.Left), entityLabel(cmp.Right))
	for _, row := range cmp.Rows {
		fmt.Fprintf(w, "  %-16s %4d %4d  %s\n", entities.DisplayName(row.Stat), row.Left, row.Right, sideMarks[row.Higher])
	}
	fmt.Fprintf(w, "  %-16s %4d %4d  %s\n", "Total", cmp.LeftTotal, cmp.RightTotal, sideMarks[cmp.Advantage])

	left, right := cmp.Wins()
	fmt.Fprintf(w, "Leads: %d - %d\n", left, right)
	switch cmp.Advantage {
	case compare.SideLeft:
		fmt.Fprintf(w, "%s might have the advantage\n", entities.DisplayName(cmp.Left.Name))
	case compare.SideRight:
		fmt.Fprintf(w, "%s might have the advantage\n", entities.DisplayName(cmp.Right.Name))
	default:
		fmt.Fprintln(w, "Evenly matched")
	}
}

package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/pokedex/internal/entities"
	"github.com/KirkDiggler/pokedex/internal/orchestrators/evolution"
)

func (c *cli) evolutionCmd() *cobra.Command {
	var step bool

	cmd := &cobra.Command{
		Use:   "evolution [name-or-id]",
		Short: "Show an entity's evolution chain",
		Long:  `Evolution follows the first branch of the chain and lists any alternate forms of the final stage.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := c.context(cmd)
			defer cancel()

			input := &evolution.ResolveInput{Name: args[0]}
			if id, err := strconv.Atoi(args[0]); err == nil {
				input = &evolution.ResolveInput{EntityID: id}
			}

			out, err := c.app.evolution.Resolve(ctx, input)
			if err != nil {
				return fmt.Errorf("failed to resolve evolution chain for %s: %w", args[0], err)
			}

			if c.jsonOut {
				return c.printJSON(cmd, out.Resolution)
			}
			if step {
				printSteps(cmd, out.Resolution)
				return nil
			}
			printResolution(cmd, out.Resolution)
			return nil
		},
	}
	cmd.Flags().BoolVar(&step, "step", false, "Step through the stages like the simulator")
	return cmd
}

const textNoStages = "This Pokémon has no evolution stages."

func printResolution(cmd *cobra.Command, res *evolution.Resolution) {
	out := cmd.OutOrStdout()
	if res.Empty() {
		fmt.Fprintln(out, textNoStages)
		return
	}

	for i, st := range res.Stages {
		if st.Transition != nil {
			fmt.Fprintf(out, "     ↓ %s\n", st.Transition.Text)
		}
		fmt.Fprintf(out, "  %d. %s\n", i+1, stageLabel(st))
	}

	if len(res.AlternateForms) > 0 {
		fmt.Fprintln(out, "Alternate forms:")
		for _, st := range res.AlternateForms {
			fmt.Fprintf(out, "  - %s (%s)\n", stageLabel(st), st.Transition.Text)
		}
	}
}

func printSteps(cmd *cobra.Command, res *evolution.Resolution) {
	out := cmd.OutOrStdout()
	stepper := evolution.NewStepper(res)
	if !stepper.Animatable() {
		fmt.Fprintln(out, textNoStages)
		return
	}

	fmt.Fprintf(out, "Start: %s\n", stageLabel(*stepper.Current()))
	for stepper.Advance() {
		st := stepper.Current()
		fmt.Fprintf(out, "Step %d/%d: %s → %s\n", stepper.Index(), stepper.Len()-1, st.Transition.Text, stageLabel(*st))
	}
	fmt.Fprintln(out, "Fully Evolved")
}

func stageLabel(st evolution.Stage) string {
	return entityLabel(st.Entity)
}

func entityLabel(e *entities.Entity) string {
	if e == nil {
		return "(none)"
	}
	return fmt.Sprintf("%s (#%d)", entities.DisplayName(e.Name), e.ID)
}

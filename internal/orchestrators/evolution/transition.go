package evolution

import (
	"fmt"

	"github.com/KirkDiggler/pokedex/internal/entities"
)

const (
	textDefault = "Evolves when conditions are met"
	textTraded  = "Evolves when traded"
	textMega    = "Mega Evolution"
)

// describe builds the transition for a stage from its first evolution detail.
// Level-up triggers prefer level, then happiness, then any other condition.
func describe(details []entities.EvolutionDetail) *Transition {
	if len(details) == 0 {
		return &Transition{Text: textDefault}
	}
	d := details[0]

	t := &Transition{
		Trigger:      d.Trigger,
		MinLevel:     d.MinLevel,
		Item:         d.Item,
		MinHappiness: d.MinHappiness,
		Condition:    otherCondition(d),
	}

	switch d.Trigger {
	case entities.TriggerLevelUp:
		switch {
		case d.MinLevel > 0:
			t.Text = fmt.Sprintf("Evolves at level %d", d.MinLevel)
		case d.MinHappiness > 0:
			t.Text = fmt.Sprintf("Evolves at happiness %d", d.MinHappiness)
		case t.Condition != "":
			t.Text = t.Condition
		default:
			t.Text = textDefault
		}
	case entities.TriggerUseItem:
		if d.Item != "" {
			t.Text = "Evolves using " + entities.DisplayName(d.Item)
		} else {
			t.Text = textDefault
		}
	case entities.TriggerTrade:
		switch {
		case d.TradeSpecies != "":
			t.Text = "Trade with " + entities.DisplayName(d.TradeSpecies)
		case d.Item != "":
			t.Text = "Trade with " + entities.DisplayName(d.Item)
		default:
			t.Text = textTraded
		}
	case "":
		t.Text = textDefault
	default:
		t.Text = entities.DisplayName(d.Trigger)
	}
	return t
}

// otherCondition returns the first present secondary requirement
func otherCondition(d entities.EvolutionDetail) string {
	switch {
	case d.TimeOfDay != "":
		return "During " + d.TimeOfDay
	case d.KnownMove != "":
		return "Knows " + entities.DisplayName(d.KnownMove)
	case d.HeldItem != "":
		return "Holding " + entities.DisplayName(d.HeldItem)
	case d.NeedsOverworldRain:
		return "When raining"
	case d.TradeSpecies != "":
		return "Trade with " + entities.DisplayName(d.TradeSpecies)
	default:
		return ""
	}
}

// megaTransition is the fixed descriptor for alternate-form stages
func megaTransition() *Transition {
	return &Transition{
		Trigger:   TriggerMegaEvolution,
		Text:      textMega,
		Alternate: true,
	}
}

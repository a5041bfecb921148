package evolution

import "github.com/KirkDiggler/pokedex/internal/entities"

// TriggerMegaEvolution marks stages taken from the alternate-form table
const TriggerMegaEvolution = "mega-evolution"

// Transition describes how a stage is reached from the previous one
type Transition struct {
	Trigger      string
	MinLevel     int
	Item         string
	MinHappiness int
	// Condition is the display text of any other requirement
	Condition string
	// Text is the display text of the whole transition
	Text string
	// Alternate is set on stages from the alternate-form table
	Alternate bool
}

// Stage is one resolved entity within a flattened evolution sequence
type Stage struct {
	Entity *entities.Entity
	// Transition is nil for the root stage
	Transition *Transition
}

// Resolution is the outcome of resolving one entity's evolution chain
type Resolution struct {
	Species *entities.Species
	ChainID int
	// Stages follows the first branch at each level, root first
	Stages []Stage
	// AlternateForms trails the final stage; empty when the table has no entry
	AlternateForms []Stage
}

// Empty reports whether no evolution data exists
func (r *Resolution) Empty() bool {
	return r == nil || len(r.Stages) == 0
}

// Animatable reports whether there are at least two stages to step through
func (r *Resolution) Animatable() bool {
	return r != nil && len(r.Stages) >= 2
}

// Final returns the last stage, or nil when empty
func (r *Resolution) Final() *Stage {
	if r.Empty() {
		return nil
	}
	return &r.Stages[len(r.Stages)-1]
}

// Status is the lifecycle of the resolver's visible state
type Status int

// Resolver states
const (
	StatusIdle Status = iota
	StatusLoading
	StatusReady
	StatusEmpty
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusReady:
		return "ready"
	case StatusEmpty:
		return "empty"
	case StatusFailed:
		return "failed"
	default:
		return "idle"
	}
}

// State is an observable snapshot of the resolver
type State struct {
	Status     Status
	Request    ResolveInput
	Resolution *Resolution
	Err        error
}

// ResolveInput identifies the entity to resolve. EntityID wins when both
// are set; Name is used for the base-name fallback of alternate forms.
type ResolveInput struct {
	EntityID int
	Name     string
}

// ResolveOutput defines the response for a resolution
type ResolveOutput struct {
	Resolution *Resolution
	// Applied is false when a newer request superseded this one
	Applied bool
}

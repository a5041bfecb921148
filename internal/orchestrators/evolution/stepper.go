package evolution

// Stepper walks a resolution's stages one at a time for the simulator view.
// It is not safe for concurrent use.
type Stepper struct {
	stages  []Stage
	current int
}

// NewStepper starts a stepper on the root stage of res
func NewStepper(res *Resolution) *Stepper {
	var stages []Stage
	if res != nil {
		stages = res.Stages
	}
	return &Stepper{stages: stages}
}

// Len returns the number of stages
func (s *Stepper) Len() int {
	return len(s.stages)
}

// Index returns the zero-based position of the current stage
func (s *Stepper) Index() int {
	return s.current
}

// Current returns the stage being shown, or nil when there are none
func (s *Stepper) Current() *Stage {
	if len(s.stages) == 0 {
		return nil
	}
	return &s.stages[s.current]
}

// Next returns the stage Advance would move to, or nil at the end
func (s *Stepper) Next() *Stage {
	if !s.CanAdvance() {
		return nil
	}
	return &s.stages[s.current+1]
}

// CanAdvance reports whether a later stage exists
func (s *Stepper) CanAdvance() bool {
	return s.current+1 < len(s.stages)
}

// Advance moves to the next stage. It returns false at the final stage.
func (s *Stepper) Advance() bool {
	if !s.CanAdvance() {
		return false
	}
	s.current++
	return true
}

// Reset returns to the root stage
func (s *Stepper) Reset() {
	s.current = 0
}

// Animatable reports whether there is anything to step through. Fewer than
// two stages is presented the same as no evolution data.
func (s *Stepper) Animatable() bool {
	return len(s.stages) >= 2
}

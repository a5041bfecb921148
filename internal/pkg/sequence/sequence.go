// Package sequence implements the last-request-wins guard used by every
// component whose state is mutated by asynchronous completions.
//
// Each new request takes a Ticket. When its result arrives the caller asks
// whether the ticket is still current; only the most recently issued ticket
// is, so a slow response for a superseded request is dropped instead of
// overwriting newer state.
package sequence

import "sync/atomic"

// Ticket identifies one issued request
type Ticket uint64

// Sequencer hands out monotonically increasing tickets
type Sequencer struct {
	counter atomic.Uint64
}

// Next issues a ticket that supersedes every earlier one
func (s *Sequencer) Next() Ticket {
	return Ticket(s.counter.Add(1))
}

// Current reports whether t is the most recently issued ticket
func (s *Sequencer) Current(t Ticket) bool {
	return s.counter.Load() == uint64(t)
}

// Latest returns the most recently issued ticket, or 0 if none was issued
func (s *Sequencer) Latest() Ticket {
	return Ticket(s.counter.Load())
}

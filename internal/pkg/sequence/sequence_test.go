package sequence_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/pokedex/internal/pkg/sequence"
)

func TestSequencer_LastRequestWins(t *testing.T) {
	var seq sequence.Sequencer
	assert.Equal(t, sequence.Ticket(0), seq.Latest())

	first := seq.Next()
	assert.True(t, seq.Current(first))

	second := seq.Next()
	assert.False(t, seq.Current(first), "superseded ticket must not be current")
	assert.True(t, seq.Current(second))
	assert.Equal(t, second, seq.Latest())
}

func TestSequencer_ConcurrentTicketsAreUnique(t *testing.T) {
	var seq sequence.Sequencer
	const n = 100

	tickets := make([]sequence.Ticket, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			tickets[idx] = seq.Next()
		}(i)
	}
	wg.Wait()

	seen := make(map[sequence.Ticket]bool, n)
	for _, ticket := range tickets {
		assert.False(t, seen[ticket], "duplicate ticket %d", ticket)
		seen[ticket] = true
	}
	assert.Equal(t, sequence.Ticket(n), seq.Latest())
}

package compare

import "github.com/KirkDiggler/pokedex/internal/entities"

// CompareInput names the two entities to compare. One side may be empty.
type CompareInput struct {
	Left  string
	Right string
}

// CompareOutput defines the response for a comparison
type CompareOutput struct {
	Comparison *Comparison
}

// CandidatesInput filters the picker list by a name fragment
type CandidatesInput struct {
	Term string
}

// CandidatesOutput defines the picker entries matching the term, in index order
type CandidatesOutput struct {
	Results []entities.NamedResource
}

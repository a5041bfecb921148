package compare

import "github.com/KirkDiggler/pokedex/internal/entities"

// Side names which of the two compared entities has the higher value
type Side int

// Comparison outcomes
const (
	SideEqual Side = iota
	SideLeft
	SideRight
)

func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return "equal"
	}
}

// StatRow is one stat of both entities side by side
type StatRow struct {
	Stat   string
	Left   int
	Right  int
	Higher Side
}

// Comparison is the stat-by-stat result for two entities. Either entity may
// be nil while the user has only picked one; every row is then SideEqual.
type Comparison struct {
	Left       *entities.Entity
	Right      *entities.Entity
	Rows       []StatRow
	LeftTotal  int
	RightTotal int
	Advantage  Side
}

// Stats compares the six base stats of left and right in the fixed stat order.
// A stat missing from an entity counts as 0.
func Stats(left, right *entities.Entity) *Comparison {
	both := left != nil && right != nil

	c := &Comparison{
		Left:  left,
		Right: right,
		Rows:  make([]StatRow, 0, len(entities.StatNames)),
	}
	for _, name := range entities.StatNames {
		row := StatRow{Stat: name, Left: statOf(left, name), Right: statOf(right, name)}
		if both {
			row.Higher = higher(row.Left, row.Right)
		}
		c.Rows = append(c.Rows, row)
	}

	if left != nil {
		c.LeftTotal = left.StatTotal()
	}
	if right != nil {
		c.RightTotal = right.StatTotal()
	}
	if both {
		c.Advantage = higher(c.LeftTotal, c.RightTotal)
	}
	return c
}

// Wins counts the rows each side leads
func (c *Comparison) Wins() (left, right int) {
	for _, row := range c.Rows {
		switch row.Higher {
		case SideLeft:
			left++
		case SideRight:
			right++
		}
	}
	return left, right
}

func statOf(e *entities.Entity, name string) int {
	if e == nil {
		return 0
	}
	v, _ := e.Stat(name)
	return v
}

func higher(left, right int) Side {
	switch {
	case left > right:
		return SideLeft
	case right > left:
		return SideRight
	default:
		return SideEqual
	}
}

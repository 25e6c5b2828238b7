package arena

// ============================================================================
// Grid model and occupancy queries
// ============================================================================

const (
	BOARD_WIDTH  = 50
	BOARD_HEIGHT = 16
)

// Position is a coordinate on the arena grid. (0,0) is top-left.
type Position struct {
	X int
	Y int
}

// Direction is a unit heading. Exactly one of DX/DY is nonzero.
type Direction struct {
	DX int
	DY int
}

var (
	UP    = Direction{DX: 0, DY: -1}
	DOWN  = Direction{DX: 0, DY: 1}
	LEFT  = Direction{DX: -1, DY: 0}
	RIGHT = Direction{DX: 1, DY: 0}
)

var AllDirections = []Direction{UP, DOWN, LEFT, RIGHT}

// TurnLeft returns the heading after a 90-degree left turn.
func (d Direction) TurnLeft() Direction {
	return Direction{DX: d.DY, DY: -d.DX}
}

// TurnRight returns the heading after a 90-degree right turn.
func (d Direction) TurnRight() Direction {
	return Direction{DX: -d.DY, DY: d.DX}
}

// Opposite returns the reversed heading. Reversal is never a legal move.
func (d Direction) Opposite() Direction {
	return Direction{DX: -d.DX, DY: -d.DY}
}

// Step returns the position one cell along the heading.
func (p Position) Step(d Direction) Position {
	return Position{X: p.X + d.DX, Y: p.Y + d.DY}
}

func manhattanDistance(a, b Position) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// GridWorld is an immutable occupancy snapshot of one pre-tick match state.
// Every heuristic in a tick reads the same snapshot, so no agent observes
// moves decided earlier in the same tick.
type GridWorld struct {
	blocked [BOARD_HEIGHT][BOARD_WIDTH]bool
}

// NewGridWorld builds the occupancy snapshot from the given agents: every
// trail cell and every living agent's head blocks, dead agents leave their
// trails as permanent obstacles.
func NewGridWorld(agents []*Agent) *GridWorld {
	g := &GridWorld{}
	for _, a := range agents {
		for _, tp := range a.Trail {
			g.occupy(tp.Pos)
		}
		if a.Alive {
			g.occupy(a.Pos)
		}
	}
	return g
}

func (g *GridWorld) occupy(p Position) {
	if p.Y >= 0 && p.Y < BOARD_HEIGHT && p.X >= 0 && p.X < BOARD_WIDTH {
		g.blocked[p.Y][p.X] = true
	}
}

// IsBlocked reports whether pos is outside the playable interior or occupied
// by a head or trail. The outer ring of the grid is a permanent wall.
func (g *GridWorld) IsBlocked(p Position) bool {
	if p.X <= 0 || p.X >= BOARD_WIDTH-1 || p.Y <= 0 || p.Y >= BOARD_HEIGHT-1 {
		return true
	}
	return g.blocked[p.Y][p.X]
}

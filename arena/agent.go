package arena

// ============================================================================
// Agents and trails
// ============================================================================

// TrailPoint is one cell of an agent's trail. In is the heading that carried
// the head into the cell, Out the heading that carried it away; the renderer
// uses the pair to pick a connector glyph. Trail points are append-only and
// never mutated after append.
type TrailPoint struct {
	Pos Position
	In  Direction
	Out Direction
}

// Agent is one autonomous light cycle.
type Agent struct {
	ID    int
	Glyph string
	Color string

	Pos   Position
	Dir   Direction
	Alive bool

	Trail       []TrailPoint
	Personality Personality
}

// Advance moves the head one cell along dir, appending the vacated head cell
// to the trail. Callers must have validated dir against the tick snapshot.
func (a *Agent) Advance(dir Direction) {
	a.Trail = append(a.Trail, TrailPoint{Pos: a.Pos, In: a.Dir, Out: dir})
	a.Pos = a.Pos.Step(dir)
	a.Dir = dir
}

// OwnsCell reports whether p is the agent's head or part of its trail.
func (a *Agent) OwnsCell(p Position) bool {
	if a.Alive && a.Pos == p {
		return true
	}
	for _, tp := range a.Trail {
		if tp.Pos == p {
			return true
		}
	}
	return false
}

var agentGlyphs = []string{"▲", "■", "●", "◆"}
var agentColors = []string{"cyan", "orange", "magenta", "green"}

// newAgents places the four agents at the interior corners, heading inward
// along the x axis.
func newAgents() []*Agent {
	starts := []struct {
		pos Position
		dir Direction
	}{
		{Position{X: 1, Y: 1}, RIGHT},
		{Position{X: BOARD_WIDTH - 2, Y: 1}, LEFT},
		{Position{X: 1, Y: BOARD_HEIGHT - 2}, RIGHT},
		{Position{X: BOARD_WIDTH - 2, Y: BOARD_HEIGHT - 2}, LEFT},
	}

	agents := make([]*Agent, 0, len(starts))
	for i, s := range starts {
		agents = append(agents, &Agent{
			ID:    i + 1,
			Glyph: agentGlyphs[i],
			Color: agentColors[i],
			Pos:   s.pos,
			Dir:   s.dir,
			Alive: true,
		})
	}
	return agents
}

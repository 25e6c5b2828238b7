package arena

import (
	"math/rand"
	"time"
)

// ============================================================================
// Match state and tick transition
// ============================================================================

// MatchState is the complete simulation state. The winner reference is nil
// until the match ends with a sole survivor.
type MatchState struct {
	Agents []*Agent
	Tick   int
	Over   bool
	Winner *Agent
}

// MatchConfig is the setup surface of a match. Grid dimensions and agent
// count are fixed constants, not parameters.
type MatchConfig struct {
	Precision bool
	// Seed drives personality generation and tie-breaking. Zero means
	// time-seeded; fix it to replay a match tick for tick.
	Seed int64
}

// GameController owns the MatchState and applies one full tick transition at
// a time: decisions against one shared snapshot, batch move application,
// collision resolution, termination check. It is not safe for concurrent
// use; the driving loop must own it exclusively.
type GameController struct {
	state   *MatchState
	mode    Mode
	engine  *DecisionEngine
	tickCap int

	steer *Direction // pending steering intent for agent 1
}

func NewGameController(cfg MatchConfig) *GameController {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	mode := ModeStandard
	tickCap := TICK_CAP_STANDARD
	if cfg.Precision {
		mode = ModePrecision
		tickCap = TICK_CAP_PRECISION
	}

	agents := newAgents()
	for _, a := range agents {
		a.Personality = NewPersonality(rng)
	}

	return &GameController{
		state:   &MatchState{Agents: agents},
		mode:    mode,
		engine:  NewDecisionEngine(mode, rng),
		tickCap: tickCap,
	}
}

// State exposes the match state to the driving loop between ticks.
func (c *GameController) State() *MatchState {
	return c.state
}

func (c *GameController) Mode() Mode {
	return c.mode
}

// Steer records a direction intent for agent 1, applied at the next tick if
// it is neither a reversal nor into a blocked cell. Only the latest pending
// intent is kept.
func (c *GameController) Steer(dir Direction) {
	d := dir
	c.steer = &d
}

// Step advances the match by exactly one tick. Every living agent decides
// against the same pre-tick snapshot, then all moves apply as one batch so
// simultaneous head-on collisions are detected rather than resolved by
// evaluation order.
func (c *GameController) Step() {
	if c.state.Over {
		return
	}

	g := NewGridWorld(c.state.Agents)

	type pendingMove struct {
		agent *Agent
		dir   Direction
	}
	moves := make([]pendingMove, 0, len(c.state.Agents))

	for _, a := range c.state.Agents {
		if !a.Alive {
			continue
		}

		dir, ok := c.steeredMove(g, a)
		if !ok {
			dir, ok = c.engine.ChooseMove(g, a, c.livingOpponents(a))
		}
		if !ok {
			// No legal candidate: the ordinary death transition. The head
			// cell was validly claimed, so it freezes into the trail.
			a.Trail = append(a.Trail, TrailPoint{Pos: a.Pos, In: a.Dir, Out: a.Dir})
			a.Alive = false
			continue
		}
		moves = append(moves, pendingMove{agent: a, dir: dir})
	}
	c.steer = nil

	for _, m := range moves {
		m.agent.Advance(m.dir)
	}

	// Resolve all collisions against the batch result before flipping any
	// alive flag, so a head-on kills both sides.
	dead := make([]bool, len(moves))
	for i, m := range moves {
		dead[i] = g.IsBlocked(m.agent.Pos)
		for j, o := range moves {
			if i != j && o.agent.Pos == m.agent.Pos {
				dead[i] = true
			}
		}
	}
	for i, m := range moves {
		if dead[i] {
			// The crash cell was never claimed; the trail ends at the last
			// safely occupied cell.
			m.agent.Alive = false
		}
	}

	c.state.Tick++
	c.checkTermination()
}

// steeredMove consumes a pending steering intent for agent 1 when legal.
func (c *GameController) steeredMove(g *GridWorld, a *Agent) (Direction, bool) {
	if c.steer == nil || a.ID != 1 {
		return Direction{}, false
	}
	dir := *c.steer
	if dir == a.Dir.Opposite() || g.IsBlocked(a.Pos.Step(dir)) {
		return Direction{}, false
	}
	return dir, true
}

func (c *GameController) livingOpponents(a *Agent) []*Agent {
	out := make([]*Agent, 0, len(c.state.Agents)-1)
	for _, o := range c.state.Agents {
		if o.ID != a.ID && o.Alive {
			out = append(out, o)
		}
	}
	return out
}

func (c *GameController) checkTermination() {
	alive := []*Agent{}
	for _, a := range c.state.Agents {
		if a.Alive {
			alive = append(alive, a)
		}
	}

	switch {
	case len(alive) == 0:
		// Simultaneous last deaths produce no winner.
		c.state.Over = true
	case len(alive) == 1 && len(c.state.Agents) > 1:
		c.state.Over = true
		c.state.Winner = alive[0]
	case c.state.Tick >= c.tickCap:
		c.state.Over = true
		// Capping out with several survivors produces no winner; a lone
		// agent that filled the clock is its own winner.
		if len(alive) == 1 {
			c.state.Winner = alive[0]
		}
	}
}

// RunHeadless advances the match to termination without a clock. Used by the
// self-play harness and the scenario tests.
func (c *GameController) RunHeadless() {
	for !c.state.Over {
		c.Step()
	}
}

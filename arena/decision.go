package arena

import (
	"log"
	"math"
	"math/rand"
	"sort"
)

// ============================================================================
// Decision engine: per-agent, per-tick move scoring and selection
// ============================================================================

// Mode selects which heuristic set and weight table the engine consults.
type Mode int

const (
	ModeStandard Mode = iota
	ModePrecision
)

func (m Mode) String() string {
	if m == ModePrecision {
		return "precision"
	}
	return "standard"
}

// DecisionEngine scores the three turning candidates for one agent against
// the shared pre-tick snapshot. All randomness (second-best swaps, band
// sampling) comes from the injected rand source so matches replay
// deterministically under a fixed seed.
type DecisionEngine struct {
	mode Mode
	rng  *rand.Rand
}

func NewDecisionEngine(mode Mode, rng *rand.Rand) *DecisionEngine {
	return &DecisionEngine{mode: mode, rng: rng}
}

type candidate struct {
	dir      Direction
	pos      Position
	straight bool
	score    float64
}

// ChooseMove picks the agent's next heading. ok is false when all three
// candidates are blocked; that is the ordinary death transition, not an
// error.
func (e *DecisionEngine) ChooseMove(g *GridWorld, agent *Agent, others []*Agent) (Direction, bool) {
	candidates := e.legalCandidates(g, agent)
	if len(candidates) == 0 {
		return Direction{}, false
	}

	for i := range candidates {
		if e.mode == ModePrecision {
			candidates[i].score = e.scorePrecision(g, agent, others, candidates[i])
		} else {
			candidates[i].score = e.scoreStandard(g, agent, others, candidates[i])
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	var chosen candidate
	if e.mode == ModePrecision {
		chosen = e.pickPrecision(agent, candidates)
	} else {
		chosen = e.pickStandard(candidates)
	}

	if debugMode {
		log.Printf("[AI] agent %d (%s): chose %v score=%.1f of %d candidates",
			agent.ID, e.mode, chosen.dir, chosen.score, len(candidates))
	}
	return chosen.dir, true
}

// legalCandidates enumerates straight, left and right turns, discarding
// blocked cells. Reversal is never legal.
func (e *DecisionEngine) legalCandidates(g *GridWorld, agent *Agent) []candidate {
	out := make([]candidate, 0, 3)
	for i, dir := range []Direction{agent.Dir, agent.Dir.TurnLeft(), agent.Dir.TurnRight()} {
		pos := agent.Pos.Step(dir)
		if g.IsBlocked(pos) {
			continue
		}
		out = append(out, candidate{dir: dir, pos: pos, straight: i == 0})
	}
	return out
}

func (e *DecisionEngine) scoreStandard(g *GridWorld, agent *Agent, others []*Agent, c candidate) float64 {
	score := WEIGHT_OPEN_SPACE * float64(OpenSpace(g, c.pos, OPEN_SPACE_CAP_STANDARD))
	score += WEIGHT_LOOKAHEAD * float64(LookAhead(g, c.pos, c.dir, LOOKAHEAD_DEPTH_STANDARD))
	if c.straight {
		score += STRAIGHT_BONUS
	}
	score += centerBias(c.pos)

	if d := nearestOpponentDistance(c.pos, others); d >= 0 && d < PROXIMITY_RANGE {
		score -= float64(PROXIMITY_RANGE-d) * PROXIMITY_PENALTY_STEP
	}
	if followUpMobility(g, c.pos, c.dir) < 2 {
		score -= MOBILITY_PENALTY
	}
	return score
}

func (e *DecisionEngine) scorePrecision(g *GridWorld, agent *Agent, others []*Agent, c candidate) float64 {
	p := agent.Personality

	score := p.Territory * float64(TerritoryPartition(g, c.pos, agent.ID, others))
	score += p.Survival * float64(SurvivalLookahead(g, c.pos, c.dir, SURVIVAL_DEPTH))

	trap := DetectTrap(g, c.pos)
	score += p.EscapeRoute * float64(trap.EscapeRoutes)
	if trap.IsTrap {
		score -= TRAP_PENALTY
	}

	score += p.OpenSpace * float64(OpenSpace(g, c.pos, OPEN_SPACE_CAP_PRECISION))
	score += p.LookAhead * float64(LookAhead(g, c.pos, c.dir, LOOKAHEAD_DEPTH_PRECISION))

	hugWeight := WALL_HUG_AVOIDED
	if p.WallHug {
		hugWeight = WALL_HUG_PREFERRED
	}
	score += wallHugScore(g, c.pos) * hugWeight

	score += p.CenterPreference * centerBias(c.pos)
	score += p.Mobility * float64(followUpMobility(g, c.pos, c.dir))
	if c.straight {
		score += PRECISION_STRAIGHT_BONUS
	}
	return score
}

// pickStandard takes the best candidate, except that with a small
// probability it takes the runner-up when the two are close, which keeps
// standard agents mildly unpredictable.
func (e *DecisionEngine) pickStandard(candidates []candidate) candidate {
	if len(candidates) >= 2 &&
		candidates[0].score-candidates[1].score < SECOND_BEST_GAP &&
		e.rng.Float64() < SECOND_BEST_CHANCE {
		return candidates[1]
	}
	return candidates[0]
}

// pickPrecision samples from a band of near-optimal candidates. Aggressive
// personalities draw from the wider band, cautious ones from a tighter
// sub-band, so agents stay near-optimal but behaviorally distinct.
func (e *DecisionEngine) pickPrecision(agent *Agent, candidates []candidate) candidate {
	best := candidates[0].score

	band := TIGHT_TIER_BAND
	if e.rng.Float64() < agent.Personality.Aggressiveness {
		band = TOP_TIER_BAND
	}
	cutoff := best - math.Abs(best)*band

	n := 1
	for n < len(candidates) && candidates[n].score >= cutoff {
		n++
	}
	return candidates[e.rng.Intn(n)]
}

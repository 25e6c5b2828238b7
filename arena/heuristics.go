package arena

// ============================================================================
// Bounded heuristics: flood fill, lookahead, trap detection, local shape
// ============================================================================

// OpenSpace counts cells reachable from origin over unblocked 4-neighbours,
// up to cap. It runs once per candidate move per living agent per tick, so
// the cap keeps the tick bounded. The origin itself is counted when free.
func OpenSpace(g *GridWorld, origin Position, cap int) int {
	if g.IsBlocked(origin) {
		return 0
	}

	visited := make(map[Position]bool)
	queue := []Position{origin}
	visited[origin] = true
	count := 0

	for len(queue) > 0 && count < cap {
		current := queue[0]
		queue = queue[1:]
		count++

		for _, dir := range AllDirections {
			next := current.Step(dir)
			if !visited[next] && !g.IsBlocked(next) {
				visited[next] = true
				queue = append(queue, next)
			}
		}
	}

	return count
}

// LookAhead counts consecutive unblocked cells in a straight line from
// origin along dir, up to depth. Cheap proxy for imminent self-entrapment.
func LookAhead(g *GridWorld, origin Position, dir Direction, depth int) int {
	count := 0
	pos := origin
	for count < depth {
		pos = pos.Step(dir)
		if g.IsBlocked(pos) {
			break
		}
		count++
	}
	return count
}

// TrapResult is the outcome of a bounded trap probe from a candidate cell.
type TrapResult struct {
	EscapeRoutes int
	Reachable    int
	IsTrap       bool
}

// DetectTrap runs a bounded BFS from origin to TRAP_DEPTH_CAP layers.
// EscapeRoutes is the number of cells first reached exactly at the cap; a
// pocket with no such frontier and few reachable cells is a trap. A true
// IsTrap dominates every other signal in scoring.
func DetectTrap(g *GridWorld, origin Position) TrapResult {
	if g.IsBlocked(origin) {
		return TrapResult{IsTrap: true}
	}

	visited := make(map[Position]bool)
	frontier := []Position{origin}
	visited[origin] = true
	reachable := 1

	for depth := 1; depth <= TRAP_DEPTH_CAP; depth++ {
		next := []Position{}
		for _, pos := range frontier {
			for _, dir := range AllDirections {
				np := pos.Step(dir)
				if !visited[np] && !g.IsBlocked(np) {
					visited[np] = true
					next = append(next, np)
				}
			}
		}
		frontier = next
		reachable += len(frontier)
		if len(frontier) == 0 {
			break
		}
		if depth == TRAP_DEPTH_CAP {
			return TrapResult{EscapeRoutes: len(frontier), Reachable: reachable}
		}
	}

	return TrapResult{
		EscapeRoutes: 0,
		Reachable:    reachable,
		IsTrap:       reachable < TRAP_DEPTH_CAP,
	}
}

// centerBias rewards positions near the middle of the arena.
func centerBias(p Position) float64 {
	cx := BOARD_WIDTH / 2
	cy := BOARD_HEIGHT / 2
	return float64((cx - abs(p.X-cx)) + (cy - abs(p.Y-cy)))
}

// wallHugScore counts blocked 4-neighbours of p. Wall-hugging personalities
// weight it up, everyone else weights it down.
func wallHugScore(g *GridWorld, p Position) float64 {
	blocked := 0
	for _, dir := range AllDirections {
		if g.IsBlocked(p.Step(dir)) {
			blocked++
		}
	}
	return float64(blocked)
}

// followUpMobility counts how many of the three follow-up moves (straight,
// left, right relative to dir) from pos are free.
func followUpMobility(g *GridWorld, pos Position, dir Direction) int {
	free := 0
	for _, nd := range []Direction{dir, dir.TurnLeft(), dir.TurnRight()} {
		if !g.IsBlocked(pos.Step(nd)) {
			free++
		}
	}
	return free
}

// nearestOpponentDistance returns the Manhattan distance from p to the
// closest living opponent head, or -1 when none are alive.
func nearestOpponentDistance(p Position, others []*Agent) int {
	best := -1
	for _, o := range others {
		if !o.Alive {
			continue
		}
		d := manhattanDistance(p, o.Pos)
		if best < 0 || d < best {
			best = d
		}
	}
	return best
}

package arena

// ============================================================================
// Bounded self-only survival lookahead
// ============================================================================

// SurvivalLookahead returns the maximum number of further moves the agent
// could make from pos with heading dir before a forced collision, exploring
// straight/left/right to the given depth and ignoring all opponents. A cell
// may not be revisited within one lookahead path.
func SurvivalLookahead(g *GridWorld, pos Position, dir Direction, depth int) int {
	visited := map[Position]bool{pos: true}
	return survivalStep(g, pos, dir, depth, visited)
}

func survivalStep(g *GridWorld, pos Position, dir Direction, depth int, visited map[Position]bool) int {
	if depth == 0 {
		return 0
	}

	best := 0
	for _, nd := range []Direction{dir, dir.TurnLeft(), dir.TurnRight()} {
		np := pos.Step(nd)
		if g.IsBlocked(np) || visited[np] {
			continue
		}
		visited[np] = true
		reached := 1 + survivalStep(g, np, nd, depth-1, visited)
		delete(visited, np)

		if reached > best {
			best = reached
		}
		if best == depth {
			break
		}
	}

	return best
}

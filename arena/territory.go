package arena

// ============================================================================
// Territory partition: simultaneous multi-source BFS (Voronoi estimate)
// ============================================================================

// TerritoryPartition estimates how many cells the evaluating agent would
// claim under simultaneous greedy expansion if it moved to candidate. Its
// wavefront starts at the candidate cell; every other living agent's
// wavefront starts at its real head. All wavefronts expand one BFS layer per
// round and a cell belongs permanently to whichever wavefront reaches it
// first. Same-round ties go to the lowest agent ID; this is a deliberate,
// documented rule, not an artifact of iteration order.
func TerritoryPartition(g *GridWorld, candidate Position, evalID int, others []*Agent) int {
	// A blocked candidate claims nothing and must not seed a wavefront:
	// expansion only checks blockedness of neighbors, so a front seeded on a
	// wall or trail cell would leak into the open cells around it.
	if g.IsBlocked(candidate) {
		return 0
	}

	type wavefront struct {
		id       int
		frontier []Position
	}

	fronts := []wavefront{}
	owner := make(map[Position]int)

	// Seed in ascending ID order so within-round claiming resolves ties to
	// the lowest ID. Callers pass others sorted by ID.
	seeded := false
	for _, o := range others {
		if !o.Alive {
			continue
		}
		if !seeded && evalID < o.ID {
			fronts = append(fronts, wavefront{id: evalID, frontier: []Position{candidate}})
			seeded = true
		}
		fronts = append(fronts, wavefront{id: o.ID, frontier: []Position{o.Pos}})
	}
	if !seeded {
		fronts = append(fronts, wavefront{id: evalID, frontier: []Position{candidate}})
	}

	// The candidate cell itself is free and claimed up front; opponent heads
	// are occupied cells and only expand outward.
	owner[candidate] = evalID
	claimed := 1

	for {
		grew := false
		for i := range fronts {
			next := []Position{}
			for _, pos := range fronts[i].frontier {
				for _, dir := range AllDirections {
					np := pos.Step(dir)
					if g.IsBlocked(np) {
						continue
					}
					if _, taken := owner[np]; taken {
						continue
					}
					owner[np] = fronts[i].id
					next = append(next, np)
					if fronts[i].id == evalID {
						claimed++
					}
				}
			}
			fronts[i].frontier = next
			if len(next) > 0 {
				grew = true
			}
		}
		if !grew {
			break
		}
	}

	return claimed
}

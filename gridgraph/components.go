package gridgraph

// Components groups every free (non-blocked) cell into connected regions,
// using 4-connectivity, or 8-connectivity when diagonal is true.
// Each component is a slice of arena indices in discovery order; components
// are ordered by their first cell in row-major order.
//
// Time:   O(R·C·d), where d = 4 or 8.
// Memory: O(R·C) for seen flags and output.
func (g *Grid) Components(diagonal bool) [][]int {
	seen := make([]bool, len(g.nodes))
	var comps [][]int

	for i0 := range g.nodes {
		if g.nodes[i0].Blocked || seen[i0] {
			continue
		}
		// BFS to collect component
		queue := []int{i0}
		seen[i0] = true
		for qi := 0; qi < len(queue); qi++ {
			g.Neighbors(queue[qi], diagonal, func(v int, _ bool) {
				if !seen[v] && !g.nodes[v].Blocked {
					seen[v] = true
					queue = append(queue, v)
				}
			})
		}
		comps = append(comps, queue)
	}

	return comps
}

// Connected reports whether a free path of adjacent cells links a and b.
// Blocked or out-of-bounds endpoints are never connected.
// Time: O(R·C·d) worst case; stops as soon as b is found.
func (g *Grid) Connected(a, b Position, diagonal bool) bool {
	if g.Blocked(a) || g.Blocked(b) {
		return false
	}
	src, dst := g.Index(a), g.Index(b)
	seen := make([]bool, len(g.nodes))
	seen[src] = true
	queue := []int{src}
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		if u == dst {
			return true
		}
		g.Neighbors(u, diagonal, func(v int, _ bool) {
			if !seen[v] && !g.nodes[v].Blocked {
				seen[v] = true
				queue = append(queue, v)
			}
		})
	}

	return false
}

package gridgraph

import (
	"container/list"
)

// ExpandToSpan finds a path from the top row to the bottom row that crosses
// the fewest closed cells (CellValues < LandThreshold). Each closed cell on
// the path costs 1, open cells cost 0.
// Returns the sequence of cell‐indices (row‐major) from a top-row cell to a
// bottom-row cell and the number of closed cells on it. A cost of 0 means
// the grid already spans.
//
// Behavior:
//  1. Seed a 0–1 BFS with every top-row cell at cost 0 (open) or 1 (closed).
//  2. Moving into an open cell costs 0, into a closed cell costs 1.
//  3. Stop when a bottom-row cell is popped; its distance is final.
//  4. Reconstruct path via predecessors.
//
// Complexity: O(W·H·d) time.
// Memory:     O(W·H) for distance and prev pointers.
func (gg *GridGraph) ExpandToSpan() (path []int, cost int) {
	N := gg.Width * gg.Height
	const inf = int(^uint(0) >> 1)
	dist := make([]int, N)
	prev := make([]int, N)
	for i := range dist {
		dist[i] = inf
		prev[i] = -1
	}
	step := func(x, y int) int {
		if gg.IsLand(x, y) {
			return 0
		}
		return 1
	}

	// 0–1 BFS: deque processes cost0 at front, cost1 at back
	dq := list.New()
	for x := 0; x < gg.Width; x++ {
		i := gg.index(x, 0)
		dist[i] = step(x, 0)
		if dist[i] == 0 {
			dq.PushFront(i)
		} else {
			dq.PushBack(i)
		}
	}

	target := -1
	for dq.Len() > 0 {
		e := dq.Front()
		dq.Remove(e)
		u := e.Value.(int)
		ux, uy := gg.Coordinate(u)
		if uy == gg.Height-1 {
			target = u
			break
		}
		for _, d := range gg.offsets {
			vx, vy := ux+d[0], uy+d[1]
			if !gg.InBounds(vx, vy) {
				continue
			}
			v := gg.index(vx, vy)
			s := step(vx, vy)
			nd := dist[u] + s
			if nd < dist[v] {
				dist[v] = nd
				prev[v] = u
				if s == 0 {
					dq.PushFront(v)
				} else {
					dq.PushBack(v)
				}
			}
		}
	}

	// Reconstruct path; every non-empty grid has a top-to-bottom path.
	for at := target; at >= 0; at = prev[at] {
		path = append([]int{at}, path...)
	}
	return path, dist[target]
}

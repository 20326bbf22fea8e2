package percolation

// find follows parent links from slot i to its tree root.
// With PathHalving every other node on the walk is re-pointed at its
// grandparent; otherwise the forest is left untouched.
func (g *Grid) find(i int) int {
	for g.parent[i] != root {
		if g.opts.PathHalving {
			if gp := g.parent[g.parent[i]]; gp != root {
				g.parent[i] = gp
			}
		}
		i = g.parent[i]
	}
	return i
}

// valid reports whether i addresses an arena slot.
func (g *Grid) valid(i int) bool {
	return i >= 0 && i < len(g.parent)
}

// connected reports whether slots a and b share a root.
func (g *Grid) connected(a, b int) bool {
	if a == b {
		return true
	}
	if !g.valid(a) || !g.valid(b) {
		return false
	}
	return g.find(a) == g.find(b)
}

// union merges the sets of a and b and raises maxComponentSize to the
// merged size. Out-of-range slots and already-joined pairs are no-ops.
func (g *Grid) union(a, b int) {
	if !g.valid(a) || !g.valid(b) {
		return
	}
	if g.connected(a, b) {
		return
	}
	if merged := g.link(a, b); merged > g.maxComponentSize {
		g.maxComponentSize = merged
	}
}

// link attaches the smaller root under the larger one and returns the size
// of the resulting tree. On equal sizes a's root goes under b's.
func (g *Grid) link(a, b int) int {
	ra, rb := g.find(a), g.find(b)
	if ra == rb {
		return g.size[ra]
	}
	if g.size[ra] > g.size[rb] {
		ra, rb = rb, ra
	}
	g.parent[ra] = rb
	g.size[rb] += g.size[ra]
	return g.size[rb]
}

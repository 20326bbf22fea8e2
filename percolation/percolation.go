package percolation

import (
	"math"
	"strings"
)

// neighborOffsets lists the four orthogonal neighbours as (dRow, dCol):
// left, right, up, down.
var neighborOffsets = [4][2]int{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}

// New builds an n×n grid with every site closed and a singleton set, then
// attaches each row-1 site to the virtual top and each row-n site to the
// virtual bottom. Returns ErrInvalidSize when n <= 0 and ErrTooLarge when
// n²+2 would overflow an int.
// Complexity: O(n²) time and memory.
func New(n int, opts ...Option) (*Grid, error) {
	if n <= 0 {
		return nil, ErrInvalidSize
	}
	if n > (math.MaxInt-2)/n {
		return nil, ErrTooLarge
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	sites := n * n
	g := &Grid{
		n:                n,
		parent:           make([]int, sites+2),
		size:             make([]int, sites+2),
		open:             make([]bool, sites),
		top:              sites,
		bottom:           sites + 1,
		maxComponentSize: 1,
		opts:             o,
	}
	for i := range g.parent {
		g.parent[i] = root
		g.size[i] = 1
	}

	// Pre-wiring is not an observed component; it does not feed maxComponentSize.
	for c := 0; c < n; c++ {
		g.link(c, g.top)
		g.link(sites-n+c, g.bottom)
	}

	return g, nil
}

// SideLength returns n.
func (g *Grid) SideLength() int {
	return g.n
}

// NumberOfOpenSites returns how many distinct sites have been opened.
func (g *Grid) NumberOfOpenSites() int {
	return g.openCount
}

// MaxComponentSize returns the largest tree size produced by any union so
// far. It starts at 1 and never decreases.
func (g *Grid) MaxComponentSize() int {
	return g.maxComponentSize
}

// InBounds reports whether (row, col) is a 1-based coordinate inside the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 1 && row <= g.n && col >= 1 && col <= g.n
}

// Index maps a 1-based (row, col) to its row-major slot: (row-1)*n + (col-1).
// The result is only meaningful when InBounds(row, col).
func (g *Grid) Index(row, col int) int {
	return (row-1)*g.n + (col - 1)
}

// IsOpen reports whether the site at (row, col) is open.
// Coordinates outside the grid are reported closed.
func (g *Grid) IsOpen(row, col int) bool {
	if !g.InBounds(row, col) {
		return false
	}
	return g.open[g.Index(row, col)]
}

// Open marks (row, col) open and joins it with every open orthogonal
// neighbour. Opening an open site changes nothing; coordinates outside the
// grid are ignored.
func (g *Grid) Open(row, col int) {
	if !g.InBounds(row, col) {
		return
	}
	idx := g.Index(row, col)
	if idx >= len(g.open) {
		return
	}
	if !g.open[idx] {
		g.open[idx] = true
		g.openCount++
	}

	for _, d := range neighborOffsets {
		nr, nc := row+d[0], col+d[1]
		if g.IsOpen(nr, nc) {
			g.union(idx, g.Index(nr, nc))
		}
	}
}

// OpenAll opens each site in order, as repeated calls to Open.
func (g *Grid) OpenAll(sites []Site) {
	for _, s := range sites {
		g.Open(s.Row, s.Col)
	}
}

// Percolates reports whether the virtual top and bottom share a set.
//
// On a 1×1 grid the lone site is pre-wired to both sentinels, so at least
// one open site is also required; for larger grids that condition is
// implied, since top and bottom only meet through unions of open sites.
func (g *Grid) Percolates() bool {
	if g.openCount == 0 {
		return false
	}
	return g.find(g.top) == g.find(g.bottom)
}

// OpenMask returns a fresh n×n matrix with 1 for open sites and 0 for
// closed ones, indexed [row-1][col-1].
func (g *Grid) OpenMask() [][]int {
	mask := make([][]int, g.n)
	for r := 0; r < g.n; r++ {
		mask[r] = make([]int, g.n)
		for c := 0; c < g.n; c++ {
			if g.open[r*g.n+c] {
				mask[r][c] = 1
			}
		}
	}
	return mask
}

// String renders the grid one row per line, '.' for open and '#' for closed.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow(g.n * (g.n + 1))
	for r := 0; r < g.n; r++ {
		for c := 0; c < g.n; c++ {
			if g.open[r*g.n+c] {
				b.WriteByte('.')
			} else {
				b.WriteByte('#')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

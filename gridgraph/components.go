package gridgraph

// ConnectedComponents finds all contiguous regions of open cells
// (CellValues[y][x] ≥ LandThreshold), according to gg.Conn connectivity.
// Returns a slice of components; each component is a slice of cell‐indices
// (row‐major) in BFS order, and components appear in row-major order of
// their first cell.
//
// To convert an index back to (x,y), use Coordinate(idx).
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (gg *GridGraph) ConnectedComponents() [][]int {
	total := gg.Width * gg.Height
	seen := make([]bool, total)
	var comps [][]int

	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if !gg.IsLand(x, y) {
				continue // closed
			}
			i0 := gg.index(x, y)
			if seen[i0] {
				continue
			}
			// BFS to collect component
			queue := []int{i0}
			seen[i0] = true

			for qi := 0; qi < len(queue); qi++ {
				ux, uy := gg.Coordinate(queue[qi])
				for _, d := range gg.offsets {
					vx, vy := ux+d[0], uy+d[1]
					if !gg.InBounds(vx, vy) || !gg.IsLand(vx, vy) {
						continue
					}
					vi := gg.index(vx, vy)
					if !seen[vi] {
						seen[vi] = true
						queue = append(queue, vi)
					}
				}
			}
			comps = append(comps, queue)
		}
	}
	return comps
}

// SpanningComponent returns the first component that contains a cell in the
// top row and a cell in the bottom row, and whether one exists.
// On a single-row grid any open cell spans.
//
// Time: O(W·H·d). Memory: O(W·H).
func (gg *GridGraph) SpanningComponent() ([]int, bool) {
	for _, comp := range gg.ConnectedComponents() {
		top, bottom := false, false
		for _, idx := range comp {
			_, y := gg.Coordinate(idx)
			if y == 0 {
				top = true
			}
			if y == gg.Height-1 {
				bottom = true
			}
		}
		if top && bottom {
			return comp, true
		}
	}
	return nil, false
}

// LargestComponent returns the number of cells in the biggest component,
// or 0 when no cell is open.
func (gg *GridGraph) LargestComponent() int {
	best := 0
	for _, comp := range gg.ConnectedComponents() {
		if len(comp) > best {
			best = len(comp)
		}
	}
	return best
}

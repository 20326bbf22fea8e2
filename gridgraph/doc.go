// Package gridgraph treats a 2D grid of cells as a graph, enabling
// component analysis and minimal-cost top-to-bottom spanning paths.
//
// What:
//
//   - GridGraph wraps a rectangular [][]int grid with tunable LandThreshold.
//   - Identifies connected components of cells with value ≥ LandThreshold
//     (open sites, when built from percolation.Grid.OpenMask).
//   - Finds the component, if any, touching both the first and last row.
//   - Computes the fewest below-threshold cells to convert (0-1 BFS) so that
//     the first row reaches the last row.
//
// Why:
//
//   - Cross-check a union-find percolation engine with a plain BFS.
//   - Answer "how far from percolating is this grid?".
//
// Complexity:
//
//   - ConnectedComponents: O(W×H×d), Memory: O(W×H)    (d = number of neighbors, 4 or 8).
//   - SpanningComponent:   O(W×H×d), Memory: O(W×H).
//   - ExpandToSpan:        O(W×H×d), Memory: O(W×H).
//
// Options:
//
//   - GridOptions.LandThreshold: minimum value considered open.
//   - GridOptions.Conn: Conn4 (4-neighbors) or Conn8 (8-neighbors).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
package gridgraph

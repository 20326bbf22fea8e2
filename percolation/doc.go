// Package percolation decides whether a square grid of sites percolates:
// whether an open path joins any site of the top row to any site of the
// bottom row after a sequence of site openings.
//
// What:
//
//   - Grid owns an n×n field of sites plus two virtual sentinels (Top, Bottom)
//     stored in a single index-addressed arena of n²+2 slots.
//   - Sites are joined with a weighted (size-based) quick-union forest.
//   - Every row-1 site is pre-attached to Top and every row-n site to Bottom,
//     so Percolates is a single find-equivalence check.
//   - MaxComponentSize tracks the largest merged tree ever produced by Open.
//
// Why:
//
//   - Percolation threshold experiments (porous media, network reliability).
//   - Replaying recorded opening sequences to check when a grid first spans.
//
// Complexity:
//
//   - New:               O(n²) time and memory.
//   - Open / Percolates: O(log n²) per find with weighted union;
//     amortized near O(1) with WithPathHalving.
//
// Options:
//
//   - WithPathHalving: shorten find paths while walking them. Never changes
//     Percolates, MaxComponentSize or connectivity, only cost.
//
// Errors:
//
//   - ErrInvalidSize: side length is zero or negative.
//
// Out-of-range coordinates are never errors: IsOpen reports them closed and
// Open ignores them, which lets edge sites probe all four neighbours blindly.
//
// A Grid is not safe for concurrent mutation; give each input its own Grid.
package percolation

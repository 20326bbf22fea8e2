// Package sitefile reads percolation input sources.
//
// A source is a whitespace-separated stream of integers. The first integer
// is the grid side length; the rest are 1-based (row, col) pairs naming the
// sites to open, in order. Lines starting with '#' are comments.
//
// Legacy quirk: a 0 read where a row is expected is consumed on its own and
// produces no request. Some recorded inputs interleave such zeros; they are
// counted in Source.SkippedZeros and otherwise ignored. A 0 in column
// position is kept and later ignored by the grid as out of range.
//
//	3
//	1 1
//	0
//	2 1
//	3 1
package sitefile

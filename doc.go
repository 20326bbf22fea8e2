// Package percolation is the home of a small grid percolation toolkit:
// replay site-opening sequences on square grids and find out whether, and
// how, they connect top to bottom.
//
// What is in here?
//
//	percolation/     — Grid: weighted quick-union over n² sites plus virtual
//	                   top/bottom sentinels; Open, Percolates, MaxComponentSize
//	gridgraph/       — BFS components over an open-site mask, spanning check,
//	                   0-1 BFS "sites left to open"
//	sitefile/        — parser for the legacy "n, then row col pairs" input
//	report/          — per-source results rendered as text, json, toml or yaml
//	internal/runner/ — batch processing with per-source isolation
//	internal/watch/  — re-run sources when files change
//	cmd/percolate/   — command line entry point
//
// Quick ASCII example (3×3, left column opened):
//
//	. # #
//	. # #      percolates: true
//	. # #
//
//	go install github.com/katalvlaran/percolation/cmd/percolate@latest
package percolation

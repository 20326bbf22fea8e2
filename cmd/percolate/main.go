// Command percolate replays site-opening sequences on square grids and
// reports whether each grid percolates.
package main

import "github.com/katalvlaran/percolation/cmd/percolate/cmd"

func main() {
	cmd.Execute()
}

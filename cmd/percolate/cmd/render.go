package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/percolation/gridgraph"
	"github.com/katalvlaran/percolation/percolation"
	"github.com/katalvlaran/percolation/sitefile"
)

var renderCmd = &cobra.Command{
	Use:   "render <file>",
	Short: "Replay one source and draw the final grid",
	Long: `Replay one source and draw the final grid ('.' open, '#' closed), followed
by the report, the size of the largest open cluster and the number of
closed sites that would still have to open for the grid to percolate.`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	parser, err := sitefile.NewParser()
	if err != nil {
		return err
	}
	src, err := parser.ParseFile(args[0])
	if err != nil {
		return err
	}
	if src.SideLength > cfg.MaxSideLength {
		return fmt.Errorf("%s: %w: %d exceeds limit %d", args[0], percolation.ErrTooLarge, src.SideLength, cfg.MaxSideLength)
	}

	var opts []percolation.Option
	if cfg.PathHalving {
		opts = append(opts, percolation.WithPathHalving())
	}
	grid, err := src.Grid(opts...)
	if err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}

	gg, err := gridgraph.From2D(grid.OpenMask(), gridgraph.Conn4)
	if err != nil {
		return err
	}
	_, toOpen := gg.ExpandToSpan()

	out := cmd.OutOrStdout()
	fmt.Fprint(out, grid)
	fmt.Fprintf(out, "\nside length: %d\nopen sites: %d\ndepth: %d\npercolates: %t\nlargest open cluster: %d\nsites to open: %d\n",
		grid.SideLength(), grid.NumberOfOpenSites(), grid.MaxComponentSize(), grid.Percolates(), gg.LargestComponent(), toOpen)
	return nil
}

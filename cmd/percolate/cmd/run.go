package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/percolation/report"
)

// errSourcesFailed makes the exit status non-zero when any source failed.
var errSourcesFailed = errors.New("one or more sources failed")

var runCmd = &cobra.Command{
	Use:   "run [paths...]",
	Short: "Process input sources and print a report for each",
	Long: `Process input sources and print one report per source.

Directories are scanned non-recursively for file names containing the
configured pattern. With no paths, the configured input directory is used.
A source that cannot be read or parsed produces an error report; the other
sources are still processed.`,
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		args = []string{cfg.InputDir}
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	r, err := newRunner()
	if err != nil {
		return err
	}
	reports, err := r.Run(ctx, args)
	if err != nil {
		return err
	}
	if len(reports) == 0 {
		log.WithField("paths", args).Warn("no input sources found")
	}

	if err := report.Write(cmd.OutOrStdout(), cfg.Format, reports); err != nil {
		return fmt.Errorf("failed to write reports: %w", err)
	}
	for _, rep := range reports {
		if rep.Failed() {
			return errSourcesFailed
		}
	}
	return nil
}

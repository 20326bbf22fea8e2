package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/percolation/internal/watch"
	"github.com/katalvlaran/percolation/report"
)

var watchCmd = &cobra.Command{
	Use:   "watch [dir]",
	Short: "Process a directory, then re-process sources as they change",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	dir := cfg.InputDir
	if len(args) == 1 {
		dir = args[0]
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	r, err := newRunner()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	emit := func(ctx context.Context, paths []string) {
		reports, err := r.Run(ctx, paths)
		if err != nil {
			return
		}
		if err := report.Write(out, cfg.Format, reports); err != nil {
			log.WithError(err).Error("failed to write reports")
		}
	}

	emit(ctx, []string{dir})

	w, err := watch.NewWatcher(dir, r.Matches, cfg.Watch.Debounce, log)
	if err != nil {
		return err
	}
	if err := w.Start(); err != nil {
		return err
	}
	log.WithFields(logrus.Fields{"dir": dir, "pattern": cfg.Pattern}).Info("watching for changes")

	w.Serve(ctx, func(path string) {
		emit(ctx, []string{path})
	})
	return nil
}

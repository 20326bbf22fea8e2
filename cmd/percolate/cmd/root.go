package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/percolation/internal/config"
	"github.com/katalvlaran/percolation/internal/runner"
)

var (
	cfg config.Config
	log = logrus.New()
)

var rootCmd = &cobra.Command{
	Use:   "percolate",
	Short: "Grid percolation checker",
	Long: `Replay site-opening sequences on square grids and report, per input
source, the side length, the largest component size ("depth") and whether
the grid percolates from the top row to the bottom row.

Examples:
  percolate run                          # every *.txt under ./percolation
  percolate run grids/ extra.txt -f json # explicit sources, JSON output
  percolate watch grids/                 # re-run whenever a source changes
  percolate render grids/input20.txt     # draw the final grid`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "config file (default .percolate.yaml)")
	pf.BoolP("verbose", "v", false, "verbose output (debug logging)")
	pf.StringP("format", "f", "text", "report format: text, json, toml, yaml")
	pf.IntP("workers", "w", 4, "sources processed concurrently")
	pf.String("pattern", ".txt", "substring a file name must contain to be a source")
	pf.Bool("path-halving", false, "enable path halving in union-find")
	pf.Bool("verify", false, "cross-check every result with a BFS")
	pf.Int("max-side", config.DefaultMaxSideLength, "reject sources whose side length exceeds this")
	pf.String("log-level", "info", "log level: debug, info, warn, error")

	for key, flag := range map[string]string{
		"verbose":         "verbose",
		"format":          "format",
		"workers":         "workers",
		"pattern":         "pattern",
		"path_halving":    "path-halving",
		"verify":          "verify",
		"max_side_length": "max-side",
		"log_level":       "log-level",
	} {
		_ = viper.BindPFlag(key, pf.Lookup(flag))
	}
}

func initConfig() {
	if cfgFile, _ := rootCmd.Flags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".percolate")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
	}

	config.BindEnv()

	// A missing config file is fine; defaults apply.
	_ = viper.ReadInConfig()
}

// setup loads configuration and prepares the shared logger.
func setup(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	if cfg.Verbose {
		level = logrus.DebugLevel
	}
	log.SetLevel(level)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	if used := viper.ConfigFileUsed(); used != "" {
		log.WithField("file", used).Debug("config loaded")
	}
	return nil
}

// newRunner builds a runner from the loaded configuration.
func newRunner() (*runner.Runner, error) {
	return runner.New(runner.Options{
		Workers:       cfg.Workers,
		Pattern:       cfg.Pattern,
		PathHalving:   cfg.PathHalving,
		Verify:        cfg.Verify,
		MaxSideLength: cfg.MaxSideLength,
	}, log)
}

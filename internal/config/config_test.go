package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/percolation/report"
)

// resetViper clears all viper state between tests to avoid cross-contamination.
func resetViper(t *testing.T) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
}

func TestLoad_Defaults(t *testing.T) {
	resetViper(t)

	cfg, err := Load()
	require.NoError(t, err)

	tests := []struct {
		name string
		got  any
		want any
	}{
		{"InputDir", cfg.InputDir, "percolation"},
		{"Pattern", cfg.Pattern, ".txt"},
		{"Format", cfg.Format, report.FormatText},
		{"Workers", cfg.Workers, 4},
		{"PathHalving", cfg.PathHalving, false},
		{"Verify", cfg.Verify, false},
		{"MaxSideLength", cfg.MaxSideLength, DefaultMaxSideLength},
		{"LogLevel", cfg.LogLevel, "info"},
		{"Debounce", cfg.Watch.Debounce, 100 * time.Millisecond},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	resetViper(t)
	BindEnv()

	t.Setenv("PERCOLATE_WORKERS", "8")
	t.Setenv("PERCOLATE_FORMAT", "json")
	t.Setenv("PERCOLATE_PATH_HALVING", "true")
	t.Setenv("PERCOLATE_MAX_SIDE_LENGTH", "128")
	t.Setenv("PERCOLATE_WATCH_DEBOUNCE", "2s")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.Workers)
	assert.Equal(t, report.FormatJSON, cfg.Format)
	assert.True(t, cfg.PathHalving)
	assert.Equal(t, 128, cfg.MaxSideLength)
	assert.Equal(t, 2*time.Second, cfg.Watch.Debounce)
}

func TestLoad_ConfigFile(t *testing.T) {
	resetViper(t)
	path := filepath.Join(t.TempDir(), ".percolate.yaml")
	body := "pattern: .dat\nverify: true\nwatch:\n  debounce: 250ms\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	viper.SetConfigFile(path)
	require.NoError(t, viper.ReadInConfig())

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ".dat", cfg.Pattern)
	assert.True(t, cfg.Verify)
	assert.Equal(t, 250*time.Millisecond, cfg.Watch.Debounce)
}

func TestValidate(t *testing.T) {
	valid := Config{Pattern: ".txt", Format: report.FormatText, Workers: 1, MaxSideLength: 1, Watch: WatchConfig{Debounce: time.Millisecond}}
	require.NoError(t, valid.Validate())

	cases := []struct {
		name   string
		mutate func(*Config)
		err    error
	}{
		{"ZeroWorkers", func(c *Config) { c.Workers = 0 }, ErrInvalidWorkers},
		{"EmptyPattern", func(c *Config) { c.Pattern = "" }, ErrEmptyPattern},
		{"UnknownFormat", func(c *Config) { c.Format = "csv" }, report.ErrUnknownFormat},
		{"ZeroDebounce", func(c *Config) { c.Watch.Debounce = 0 }, ErrInvalidDebounce},
		{"ZeroMaxSide", func(c *Config) { c.MaxSideLength = 0 }, ErrInvalidMaxSide},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := valid
			tc.mutate(&c)
			assert.ErrorIs(t, c.Validate(), tc.err)
		})
	}
}

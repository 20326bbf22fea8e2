package runner_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/percolation/internal/runner"
	"github.com/katalvlaran/percolation/percolation"
)

// writeSources creates name -> content files in a fresh directory.
func writeSources(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, body := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
	}
	return dir
}

func newRunner(t *testing.T, opts runner.Options) (*runner.Runner, *test.Hook) {
	t.Helper()
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	r, err := runner.New(opts, logger)
	require.NoError(t, err)
	return r, hook
}

func TestRun_DirectoryBatch(t *testing.T) {
	dir := writeSources(t, map[string]string{
		"a.txt":     "3\n1 1\n2 1\n3 1\n",
		"b.txt":     "3\n1 1\n3 3\n",
		"notes.md":  "ignored",
		"c.txt.bak": "2\n1 1\n2 1\n",
	})
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.txt"), 0o755))

	r, _ := newRunner(t, runner.Options{Workers: 2, Pattern: ".txt", Verify: true})
	reports, err := r.Run(context.Background(), []string{dir})
	require.NoError(t, err)
	require.Len(t, reports, 3)

	assert.Equal(t, filepath.Join(dir, "a.txt"), reports[0].Source)
	assert.True(t, reports[0].Percolates)
	assert.Equal(t, 9, reports[0].MaxComponentSize)
	assert.Equal(t, 3, reports[0].OpenSites)

	assert.Equal(t, filepath.Join(dir, "b.txt"), reports[1].Source)
	assert.False(t, reports[1].Percolates)
	assert.Equal(t, 1, reports[1].MaxComponentSize)

	// Substring match, as in legacy discovery.
	assert.Equal(t, filepath.Join(dir, "c.txt.bak"), reports[2].Source)
	assert.True(t, reports[2].Percolates)
	for _, rep := range reports {
		assert.NoError(t, rep.Err)
	}
}

func TestRun_PerSourceIsolation(t *testing.T) {
	dir := writeSources(t, map[string]string{
		"good.txt":     "2\n1 1\n2 1\n",
		"bad.txt":      "2\n1 x\n",
		"zero.txt":     "0\n",
		"dangling.txt": "2 1 1 2",
		"huge.txt":     "4294967296\n1 1\n",
		"wide.txt":     "65\n1 1\n",
	})
	missing := filepath.Join(dir, "missing.txt")
	paths := []string{
		filepath.Join(dir, "bad.txt"),
		missing,
		filepath.Join(dir, "good.txt"),
		filepath.Join(dir, "zero.txt"),
		filepath.Join(dir, "dangling.txt"),
		filepath.Join(dir, "huge.txt"),
		filepath.Join(dir, "wide.txt"),
	}

	r, hook := newRunner(t, runner.Options{Workers: 3, Pattern: ".txt", MaxSideLength: 64})
	reports, err := r.Run(context.Background(), paths)
	require.NoError(t, err)
	require.Len(t, reports, len(paths))

	for i, p := range paths {
		assert.Equal(t, p, reports[i].Source, "order preserved")
	}
	assert.Error(t, reports[0].Err)
	assert.Error(t, reports[1].Err)
	assert.NoError(t, reports[2].Err)
	assert.True(t, reports[2].Percolates)
	assert.Error(t, reports[3].Err)
	assert.Error(t, reports[4].Err)
	assert.Error(t, reports[5].Err)
	assert.ErrorIs(t, reports[6].Err, percolation.ErrTooLarge)
	assert.Equal(t, 65, reports[6].SideLength)

	warnings := 0
	for _, e := range hook.AllEntries() {
		if e.Level == logrus.WarnLevel {
			warnings++
		}
	}
	assert.Equal(t, 6, warnings)
	assert.Equal(t, "batch complete", hook.LastEntry().Message)
	assert.Equal(t, 6, hook.LastEntry().Data["failed"])
}

func TestProcess_OutOfRangeAndZeros(t *testing.T) {
	dir := writeSources(t, map[string]string{
		"odd.txt": "2\n1 1\n0\n1 3\n2 1\n",
	})
	r, hook := newRunner(t, runner.Options{Pattern: ".txt", PathHalving: true})

	rep := r.Process(filepath.Join(dir, "odd.txt"))
	require.NoError(t, rep.Err)
	assert.Equal(t, 3, rep.Requests)
	assert.Equal(t, 1, rep.OutOfRange)
	assert.Equal(t, 1, rep.SkippedZeros)
	assert.Equal(t, 2, rep.OpenSites)
	assert.True(t, rep.Percolates)

	found := false
	for _, e := range hook.AllEntries() {
		if e.Message == "ignoring out-of-range requests" {
			found = true
			assert.Equal(t, "(1,3)", e.Data["first"])
		}
	}
	assert.True(t, found)
}

func TestRun_Cancelled(t *testing.T) {
	dir := writeSources(t, map[string]string{"a.txt": "1\n1 1\n"})
	r, _ := newRunner(t, runner.Options{Workers: 1, Pattern: ".txt"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := r.Run(ctx, []string{dir})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRun_NilLogger(t *testing.T) {
	dir := writeSources(t, map[string]string{"one.txt": "1\n1 1\n"})
	r, err := runner.New(runner.Options{Pattern: ".txt"}, nil)
	require.NoError(t, err)

	reports, err := r.Run(context.Background(), []string{dir})
	require.NoError(t, err)
	require.Len(t, reports, 1)
	assert.True(t, reports[0].Percolates)
	assert.True(t, r.Matches("/x/one.txt"))
	assert.False(t, r.Matches("/x.txt/one.dat"))
}

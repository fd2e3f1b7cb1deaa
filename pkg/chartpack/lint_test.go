package chartpack_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macropower/chartpack/pkg/chartpack"
)

func TestLintAggregatesFailures(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeChart(t, filepath.Join(root, "bad-one"), "bad-one", "0.1.0")
	writeChart(t, filepath.Join(root, "bad-two"), "bad-two", "0.1.0")
	writeChart(t, filepath.Join(root, "fine"), "fine", "0.1.0")

	helm := newFakeHelm(t)

	cfg := chartpack.DefaultConfig()
	cfg.ChartRoots = []string{root}
	cfg.PlaceholderFile = filepath.Join(t.TempDir(), "chart.placeholder.txt")

	p, err := chartpack.NewPackager(cfg, chartpack.WithHelm(helm.helm()))
	require.NoError(t, err)

	err = p.Lint()
	require.Error(t, err)

	// Lint keeps going past failures and reports all of them.
	assert.Contains(t, err.Error(), "bad-one")
	assert.Contains(t, err.Error(), "bad-two")
	assert.Len(t, helm.invocations(t), 3)
}

func TestLintStrict(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeChart(t, filepath.Join(root, "fine"), "fine", "0.1.0")

	helm := newFakeHelm(t)

	cfg := chartpack.DefaultConfig()
	cfg.ChartRoots = []string{root}
	cfg.PlaceholderFile = filepath.Join(t.TempDir(), "chart.placeholder.txt")
	cfg.LintStrict = true

	p, err := chartpack.NewPackager(cfg, chartpack.WithHelm(helm.helm()))
	require.NoError(t, err)

	require.NoError(t, p.Lint())

	invocations := helm.invocations(t)
	require.Len(t, invocations, 1)
	assert.Equal(t, "lint "+filepath.Join(root, "fine")+" --strict", invocations[0])
}

func TestLintSkip(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeChart(t, filepath.Join(root, "fine"), "fine", "0.1.0")

	helm := newFakeHelm(t)

	cfg := chartpack.DefaultConfig()
	cfg.ChartRoots = []string{root}
	cfg.PlaceholderFile = filepath.Join(t.TempDir(), "chart.placeholder.txt")
	cfg.SkipLint = true

	p, err := chartpack.NewPackager(cfg, chartpack.WithHelm(helm.helm()))
	require.NoError(t, err)

	require.NoError(t, p.Lint())
	assert.Empty(t, helm.invocations(t))
}

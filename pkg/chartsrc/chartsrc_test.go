package chartsrc_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macropower/chartpack/pkg/chartsrc"
)

func writeChart(t *testing.T, dir, name, version string) {
	t.Helper()

	require.NoError(t, os.MkdirAll(dir, 0o750))

	chartfile := "apiVersion: v2\nname: " + name + "\nversion: " + version + "\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Chart.yaml"), []byte(chartfile), 0o600))
}

func TestDiscover(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeChart(t, filepath.Join(root, "zeta"), "zeta", "0.3.0")
	writeChart(t, filepath.Join(root, "alpha"), "alpha", "0.1.0")
	writeChart(t, filepath.Join(root, "nested", "beta"), "beta", "0.2.0")

	// Subcharts under a discovered chart must not surface on their own.
	writeChart(t, filepath.Join(root, "alpha", "charts", "sub"), "sub", "0.0.1")

	charts, err := chartsrc.Discover([]string{root}, nil)
	require.NoError(t, err)

	var names []string
	for _, c := range charts {
		names = append(names, c.Meta.Name)
	}

	assert.Equal(t, []string{"alpha", "beta", "zeta"}, names)
}

func TestDiscoverRootOrder(t *testing.T) {
	t.Parallel()

	rootA := t.TempDir()
	rootB := t.TempDir()
	writeChart(t, filepath.Join(rootA, "b-chart"), "b-chart", "0.1.0")
	writeChart(t, filepath.Join(rootB, "a-chart"), "a-chart", "0.1.0")

	charts, err := chartsrc.Discover([]string{rootA, rootB}, nil)
	require.NoError(t, err)
	require.Len(t, charts, 2)

	assert.Equal(t, "b-chart", charts[0].Meta.Name)
	assert.Equal(t, "a-chart", charts[1].Meta.Name)
}

func TestDiscoverExcludes(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeChart(t, filepath.Join(root, "keep"), "keep", "0.1.0")
	writeChart(t, filepath.Join(root, "deprecated"), "deprecated", "0.1.0")

	charts, err := chartsrc.Discover([]string{root}, []string{"**/deprecated"})
	require.NoError(t, err)
	require.Len(t, charts, 1)

	assert.Equal(t, "keep", charts[0].Meta.Name)
}

func TestDiscoverBadExclude(t *testing.T) {
	t.Parallel()

	_, err := chartsrc.Discover([]string{t.TempDir()}, []string{"[broken"})
	require.Error(t, err)
	assert.ErrorIs(t, err, chartsrc.ErrBadExclude)
}

func TestDiscoverBrokenChartfile(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	dir := filepath.Join(root, "broken")
	require.NoError(t, os.MkdirAll(dir, 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Chart.yaml"), []byte(":\tnot yaml"), 0o600))

	_, err := chartsrc.Discover([]string{root}, nil)
	require.Error(t, err)
}

func TestDiscoverMissingRoot(t *testing.T) {
	t.Parallel()

	_, err := chartsrc.Discover([]string{filepath.Join(t.TempDir(), "nope")}, nil)
	require.Error(t, err)
}

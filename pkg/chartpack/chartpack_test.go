package chartpack_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macropower/chartpack/pkg/chartpack"
)

func TestNewPackagerConfigurationErrors(t *testing.T) {
	t.Parallel()

	tcs := map[string]func(*chartpack.Config){
		"missing placeholder path": func(c *chartpack.Config) {
			c.PlaceholderFile = ""
		},
		"no chart roots": func(c *chartpack.Config) {
			c.ChartRoots = nil
		},
		"malformed timestamp format": func(c *chartpack.Config) {
			c.Version = "1.0.0-SNAPSHOT"
			c.TimestampOnSnapshot = true
			c.TimestampFormat = "yyyyQQ"
		},
		"malformed exclude pattern": func(c *chartpack.Config) {
			c.Excludes = []string{"[broken"}
		},
		"non-semver chart version": func(c *chartpack.Config) {
			c.Version = "not a version"
		},
	}

	for name, mutate := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			cfg := chartpack.DefaultConfig()
			mutate(cfg)

			_, err := chartpack.NewPackager(cfg)
			require.Error(t, err)
			assert.ErrorIs(t, err, chartpack.ErrConfiguration)
		})
	}
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "chartpack.yaml")
	content := `chartRoots: [charts]
outputDir: build/charts
chartVersion: 2.0.0-SNAPSHOT
timestampOnSnapshot: true
keyring: secring.gpg
key: me@example.com
skipLint: true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg := chartpack.DefaultConfig()
	require.NoError(t, chartpack.LoadConfig(path, cfg))

	assert.Equal(t, []string{"charts"}, cfg.ChartRoots)
	assert.Equal(t, "build/charts", cfg.OutputDir)
	assert.Equal(t, "2.0.0-SNAPSHOT", cfg.Version)
	assert.True(t, cfg.TimestampOnSnapshot)
	assert.True(t, cfg.SkipLint)

	// Fields the file does not set keep their defaults.
	assert.Equal(t, "helm", cfg.HelmBin)
	assert.Equal(t, chartpack.DefaultPlaceholderFile, cfg.PlaceholderFile)
}

func TestLoadConfigUnknownKey(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "chartpack.yaml")
	require.NoError(t, os.WriteFile(path, []byte("nonsense: true\n"), 0o600))

	err := chartpack.LoadConfig(path, chartpack.DefaultConfig())
	require.Error(t, err)
	assert.ErrorIs(t, err, chartpack.ErrConfigFile)
}

func TestLoadConfigMissingFile(t *testing.T) {
	t.Parallel()

	err := chartpack.LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"), chartpack.DefaultConfig())
	require.Error(t, err)
	assert.ErrorIs(t, err, chartpack.ErrConfigFile)
}

func TestManifestRegistrar(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "meta", "artifacts.yaml")
	r := chartpack.NewManifestRegistrar(path)

	require.NoError(t, r.SetArtifact("my-module", "dist/chart.placeholder.txt"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "artifact: my-module")
	assert.Contains(t, string(data), "file: dist/chart.placeholder.txt")
}

package chartpack

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Default paths under the build output directory.
const (
	DefaultOutputDir       = "dist/charts"
	DefaultPlaceholderFile = "dist/chart.placeholder.txt"
)

// Config is the full configuration surface, normally populated by the CLI
// layer from flags and an optional config file. The core only consumes the
// finished struct.
type Config struct {
	// HelmBin is the helm executable name or path. Empty means "helm" on the
	// PATH.
	HelmBin string `yaml:"helmBin,omitempty"`

	// ChartRoots are the directories searched for charts, in order.
	ChartRoots []string `yaml:"chartRoots,omitempty"`

	// Excludes are glob patterns for directories to skip during discovery.
	Excludes []string `yaml:"excludes,omitempty"`

	// OutputDir receives the packaged chart archives.
	OutputDir string `yaml:"outputDir,omitempty"`

	// Version overrides the chart version. Empty omits --version so helm
	// falls back to the chart's own metadata version.
	Version string `yaml:"chartVersion,omitempty"`

	// AppVersion sets the app version. This needn't be semver.
	AppVersion string `yaml:"appVersion,omitempty"`

	// Keyring is the path to the gpg secret keyring for signing.
	Keyring string `yaml:"keyring,omitempty"`

	// Key is the name of the gpg key in the keyring.
	Key string `yaml:"key,omitempty"`

	// Passphrase for the gpg key. Never read from the config file; the CLI
	// sources it from the environment and it is only ever forwarded to helm
	// via stdin.
	Passphrase string `yaml:"-"`

	// TimestampFormat formats snapshot timestamps (yyyy, MM, dd, HH, mm, ss
	// tokens). Empty means yyyyMMddHHmmss.
	TimestampFormat string `yaml:"timestampFormat,omitempty"`

	// PlaceholderFile is where the placeholder artifact is written. Required.
	PlaceholderFile string `yaml:"placeholderFile,omitempty"`

	// ArtifactName names the published artifact in the placeholder and the
	// manifest. Empty falls back to the packaged chart's name.
	ArtifactName string `yaml:"artifactName,omitempty"`

	// Timeout kills a helm invocation after the given duration. Zero means
	// no timeout.
	Timeout time.Duration `yaml:"timeout,omitempty"`

	// TimestampOnSnapshot replaces the SNAPSHOT suffix with a timestamp.
	TimestampOnSnapshot bool `yaml:"timestampOnSnapshot,omitempty"`

	// LintStrict makes helm lint fail on warnings.
	LintStrict bool `yaml:"lintStrict,omitempty"`

	// Skip suppresses every operation.
	Skip bool `yaml:"skip,omitempty"`

	// SkipPackage suppresses packaging even when Skip is false.
	SkipPackage bool `yaml:"skipPackage,omitempty"`

	// SkipLint suppresses linting even when Skip is false.
	SkipLint bool `yaml:"skipLint,omitempty"`

	// SkipDependencyBuild suppresses dependency building even when Skip is
	// false.
	SkipDependencyBuild bool `yaml:"skipDependencyBuild,omitempty"`
}

// DefaultConfig returns a [Config] with every default applied.
func DefaultConfig() *Config {
	return &Config{
		HelmBin:         "helm",
		ChartRoots:      []string{"."},
		OutputDir:       DefaultOutputDir,
		PlaceholderFile: DefaultPlaceholderFile,
	}
}

// LoadConfig reads a YAML config file into cfg, overriding only the fields
// the file sets. Unknown keys are an error.
func LoadConfig(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrConfigFile, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(cfg); err != nil {
		return fmt.Errorf("%w: %q: %w", ErrConfigFile, path, err)
	}

	return nil
}

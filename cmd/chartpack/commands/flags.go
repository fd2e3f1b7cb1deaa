package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"

	"github.com/macropower/chartpack/pkg/chartpack"
)

// addConfigFlags registers the configuration surface shared by every chart
// operation. Flag defaults mirror [chartpack.DefaultConfig].
func addConfigFlags(cmd *cobra.Command) {
	cmd.Flags().String("config", "", "Path to a chartpack YAML config file")
	cmd.Flags().StringSliceP("chart-dir", "p", []string{"."}, "Directory searched for charts (repeatable)")
	cmd.Flags().StringSlice("exclude", nil, "Glob pattern for chart directories to skip (repeatable)")
	cmd.Flags().StringP("output-dir", "d", chartpack.DefaultOutputDir, "Directory receiving packaged chart archives")
	cmd.Flags().String("chart-version", "", "Override the chart version")
	cmd.Flags().String("app-version", "", "Set the app version")
	cmd.Flags().String("keyring", "", "Path to a gpg secret keyring for signing")
	cmd.Flags().String("key", "", "Name of the gpg key in the keyring")
	cmd.Flags().
		String("passphrase-env", "", "Environment variable holding the gpg key passphrase (forwarded via stdin)")
	cmd.Flags().Bool("timestamp-on-snapshot", false, "Replace the SNAPSHOT suffix with a timestamp")
	cmd.Flags().String("timestamp-format", "", "Timestamp format for snapshot versions (default yyyyMMddHHmmss)")
	cmd.Flags().String("placeholder-file", chartpack.DefaultPlaceholderFile, "Path of the placeholder artifact")
	cmd.Flags().String("artifact-name", "", "Artifact name recorded in the placeholder (default: chart name)")
	cmd.Flags().String("helm-bin", "helm", "Helm executable name or path")
	cmd.Flags().Duration("timeout", 0, "Timeout per helm invocation (0 means none)")
	cmd.Flags().Bool("skip", false, "Skip every chart operation")

	must(cmd.MarkFlagFilename("config", "yaml", "yml"))
	must(cmd.MarkFlagDirname("chart-dir"))
	must(cmd.MarkFlagDirname("output-dir"))
}

// configFromFlags builds the core configuration: defaults, then the config
// file if given, then any flag the user set explicitly.
func configFromFlags(cc *cobra.Command) (*chartpack.Config, error) {
	flags := cc.Flags()
	cfg := chartpack.DefaultConfig()

	var merr error

	configFile, err := flags.GetString("config")
	if err != nil {
		merr = multierror.Append(merr, err)
	}

	if configFile != "" {
		if err := chartpack.LoadConfig(configFile, cfg); err != nil {
			return nil, err
		}
	}

	setString := func(name string, dst *string) {
		if !flags.Changed(name) {
			return
		}

		v, err := flags.GetString(name)
		if err != nil {
			merr = multierror.Append(merr, err)

			return
		}

		*dst = v
	}
	setStringSlice := func(name string, dst *[]string) {
		if !flags.Changed(name) {
			return
		}

		v, err := flags.GetStringSlice(name)
		if err != nil {
			merr = multierror.Append(merr, err)

			return
		}

		*dst = v
	}
	setBool := func(name string, dst *bool) {
		if !flags.Changed(name) {
			return
		}

		v, err := flags.GetBool(name)
		if err != nil {
			merr = multierror.Append(merr, err)

			return
		}

		*dst = v
	}
	setDuration := func(name string, dst *time.Duration) {
		if !flags.Changed(name) {
			return
		}

		v, err := flags.GetDuration(name)
		if err != nil {
			merr = multierror.Append(merr, err)

			return
		}

		*dst = v
	}

	setStringSlice("chart-dir", &cfg.ChartRoots)
	setStringSlice("exclude", &cfg.Excludes)
	setString("output-dir", &cfg.OutputDir)
	setString("chart-version", &cfg.Version)
	setString("app-version", &cfg.AppVersion)
	setString("keyring", &cfg.Keyring)
	setString("key", &cfg.Key)
	setString("timestamp-format", &cfg.TimestampFormat)
	setString("placeholder-file", &cfg.PlaceholderFile)
	setString("artifact-name", &cfg.ArtifactName)
	setString("helm-bin", &cfg.HelmBin)
	setBool("timestamp-on-snapshot", &cfg.TimestampOnSnapshot)
	setBool("skip", &cfg.Skip)
	setDuration("timeout", &cfg.Timeout)

	var passphraseEnv string

	setString("passphrase-env", &passphraseEnv)

	if passphraseEnv != "" {
		cfg.Passphrase = os.Getenv(passphraseEnv)
	}

	if merr != nil {
		return nil, fmt.Errorf("invalid argument: %w", merr)
	}

	return cfg, nil
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}

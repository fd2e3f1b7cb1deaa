package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/macropower/chartpack/pkg/chartpack"
)

const packageExample = `  # Package every chart under ./charts
  chartpack package --chart-dir charts

  # Timestamped snapshot build, signed
  chartpack package --chart-dir charts \
    --chart-version 1.4.0-SNAPSHOT --timestamp-on-snapshot \
    --keyring ~/.gnupg/secring.gpg --key ci@example.com --passphrase-env HELM_KEY_PASSPHRASE
`

// NewPackageCmd returns the package command.
func NewPackageCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "package",
		Short:   "Package charts and publish the placeholder artifact",
		Example: packageExample,
		RunE: func(cc *cobra.Command, _ []string) error {
			cfg, err := configFromFlags(cc)
			if err != nil {
				return err
			}

			// Only override the config file when the flag was set explicitly.
			if cc.Flags().Changed("skip-package") {
				skipPackage, err := cc.Flags().GetBool("skip-package")
				if err != nil {
					return fmt.Errorf("invalid argument: %w", err)
				}

				cfg.SkipPackage = skipPackage
			}

			p, err := chartpack.NewPackager(cfg)
			if err != nil {
				return err
			}

			return p.Package()
		},
		SilenceUsage: true,
	}

	addConfigFlags(cmd)
	cmd.Flags().Bool("skip-package", false, "Skip packaging even when --skip is false")

	return cmd
}

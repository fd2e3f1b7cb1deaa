package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/macropower/chartpack/pkg/chartpack"
)

// NewLintCmd returns the lint command.
func NewLintCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lint",
		Short: "Lint charts, reporting every failure",
		RunE: func(cc *cobra.Command, _ []string) error {
			cfg, err := configFromFlags(cc)
			if err != nil {
				return err
			}

			flags := cc.Flags()

			// Only override the config file when a flag was set explicitly.
			if flags.Changed("skip-lint") {
				skipLint, err := flags.GetBool("skip-lint")
				if err != nil {
					return fmt.Errorf("invalid argument: %w", err)
				}

				cfg.SkipLint = skipLint
			}

			if flags.Changed("strict") {
				strict, err := flags.GetBool("strict")
				if err != nil {
					return fmt.Errorf("invalid argument: %w", err)
				}

				cfg.LintStrict = strict
			}

			p, err := chartpack.NewPackager(cfg)
			if err != nil {
				return err
			}

			return p.Lint()
		},
		SilenceUsage: true,
	}

	addConfigFlags(cmd)
	cmd.Flags().Bool("skip-lint", false, "Skip linting even when --skip is false")
	cmd.Flags().Bool("strict", false, "Fail on lint warnings")

	return cmd
}

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/macropower/chartpack/pkg/chartpack"
)

// NewDependencyCmd returns the dependency command group.
func NewDependencyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dependency",
		Short: "Manage chart dependencies",
	}
	cmd.AddCommand(NewDependencyBuildCmd())

	return cmd
}

// NewDependencyBuildCmd returns the dependency build command.
func NewDependencyBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Rebuild chart dependencies from lock files",
		RunE: func(cc *cobra.Command, _ []string) error {
			cfg, err := configFromFlags(cc)
			if err != nil {
				return err
			}

			// Only override the config file when the flag was set explicitly.
			if cc.Flags().Changed("skip-dependency-build") {
				skip, err := cc.Flags().GetBool("skip-dependency-build")
				if err != nil {
					return fmt.Errorf("invalid argument: %w", err)
				}

				cfg.SkipDependencyBuild = skip
			}

			p, err := chartpack.NewPackager(cfg)
			if err != nil {
				return err
			}

			return p.DependencyBuild()
		},
		SilenceUsage: true,
	}

	addConfigFlags(cmd)
	cmd.Flags().Bool("skip-dependency-build", false, "Skip dependency building even when --skip is false")

	return cmd
}

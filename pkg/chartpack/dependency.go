package chartpack

import (
	"fmt"
	"log/slog"
)

// DependencyBuild rebuilds the charts/ directory of every discovered chart
// from its lock file, in discovery order, aborting on the first failure.
func (p *Packager) DependencyBuild() error {
	if p.cfg.Skip || p.cfg.SkipDependencyBuild {
		slog.Info("skip dependency build")

		return nil
	}

	charts, err := p.discover()
	if err != nil {
		return err
	}

	for _, chart := range charts {
		slog.Info("building chart dependencies",
			slog.String("chart", chart.Meta.Name),
			slog.String("dir", chart.Dir),
		)

		if _, err := p.helm.Command("dependency", "build", chart.Dir).Run(); err != nil {
			return fmt.Errorf("build dependencies for chart at %q: %w", chart.Dir, err)
		}
	}

	return nil
}

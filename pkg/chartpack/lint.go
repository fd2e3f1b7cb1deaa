package chartpack

import (
	"fmt"
	"log/slog"

	"github.com/hashicorp/go-multierror"
)

// Lint lints every discovered chart. Unlike [Packager.Package], lint does not
// stop at the first failure: every chart is checked and the failures are
// aggregated, so one run reports everything there is to fix.
func (p *Packager) Lint() error {
	if p.cfg.Skip || p.cfg.SkipLint {
		slog.Info("skip lint")

		return nil
	}

	charts, err := p.discover()
	if err != nil {
		return err
	}

	var merr error

	for _, chart := range charts {
		slog.Info("linting chart",
			slog.String("chart", chart.Meta.Name),
			slog.String("dir", chart.Dir),
		)

		cmd := p.helm.Command("lint", chart.Dir)
		if p.cfg.LintStrict {
			cmd = cmd.BoolFlag("strict")
		}

		if _, err := cmd.Run(); err != nil {
			merr = multierror.Append(merr, fmt.Errorf("lint chart at %q: %w", chart.Dir, err))
		}
	}

	return merr
}

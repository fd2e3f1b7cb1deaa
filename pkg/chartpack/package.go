package chartpack

import (
	"fmt"
	"log/slog"
	"os"
)

// Package packages every discovered chart, in discovery order, aborting on
// the first failure. Each successfully packaged chart refreshes the
// placeholder artifact; charts after a failure are never attempted.
func (p *Packager) Package() error {
	if p.cfg.Skip || p.cfg.SkipPackage {
		slog.Info("skip package")

		return nil
	}

	version := p.resolver.Resolve(p.now())
	if version != "" {
		slog.Info("setting chart version", slog.String("version", version))
	}

	charts, err := p.discover()
	if err != nil {
		return err
	}

	if len(charts) == 0 {
		slog.Warn("no charts found", slog.Any("roots", p.cfg.ChartRoots))

		return nil
	}

	if err := os.MkdirAll(p.cfg.OutputDir, 0o750); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	for _, chart := range charts {
		logger := slog.With(
			slog.String("chart", chart.Meta.Name),
			slog.String("dir", chart.Dir),
		)
		logger.Info("packaging chart", slog.String("chartVersion", chart.Meta.Version))

		cmd := p.helm.Command("package", chart.Dir).
			Flag("destination", p.cfg.OutputDir).
			Flag("version", version).
			Flag("app-version", p.cfg.AppVersion)

		if p.cfg.Keyring != "" && p.cfg.Key != "" {
			logger.Info("enable signing")

			cmd = cmd.BoolFlag("sign").
				Flag("keyring", p.cfg.Keyring).
				Flag("key", p.cfg.Key).
				SecretFlag("passphrase-file", p.cfg.Passphrase)
		}

		if _, err := cmd.Run(); err != nil {
			return fmt.Errorf("package chart at %q: %w", chart.Dir, err)
		}

		p.writePlaceholder(chart)
	}

	return nil
}

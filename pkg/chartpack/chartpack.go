package chartpack

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/Masterminds/semver/v3"

	"github.com/macropower/chartpack/pkg/chartsrc"
	"github.com/macropower/chartpack/pkg/chartver"
	"github.com/macropower/chartpack/pkg/helmexec"
)

// Packager orchestrates helm over the discovered chart directories. Create
// instances with [NewPackager]; configuration problems surface there, before
// any subprocess runs.
type Packager struct {
	cfg       *Config
	helm      *helmexec.Helm
	resolver  *chartver.Resolver
	registrar ArtifactRegistrar
	now       func() time.Time
}

// Opt configures a [Packager].
type Opt func(*Packager)

// WithHelm overrides the helm runner, e.g. for tests.
func WithHelm(h *helmexec.Helm) Opt {
	return func(p *Packager) {
		p.helm = h
	}
}

// WithRegistrar overrides the artifact registrar.
func WithRegistrar(r ArtifactRegistrar) Opt {
	return func(p *Packager) {
		p.registrar = r
	}
}

// WithNow overrides the wall clock used for snapshot timestamps.
func WithNow(now func() time.Time) Opt {
	return func(p *Packager) {
		p.now = now
	}
}

// NewPackager validates cfg and creates a [Packager].
func NewPackager(cfg *Config, opts ...Opt) (*Packager, error) {
	if cfg.PlaceholderFile == "" {
		return nil, fmt.Errorf("%w: placeholder file path is required", ErrConfiguration)
	}

	if len(cfg.ChartRoots) == 0 {
		return nil, fmt.Errorf("%w: at least one chart root is required", ErrConfiguration)
	}

	if _, err := chartsrc.CompileExcludes(cfg.Excludes); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfiguration, err)
	}

	resolver, err := chartver.NewResolver(cfg.Version, cfg.TimestampOnSnapshot, cfg.TimestampFormat)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfiguration, err)
	}

	p := &Packager{
		cfg:      cfg,
		helm:     &helmexec.Helm{Bin: cfg.HelmBin, Timeout: cfg.Timeout},
		resolver: resolver,
		now:      time.Now,
	}
	if p.helm.Bin == "" {
		p.helm.Bin = "helm"
	}

	p.registrar = NewManifestRegistrar(filepath.Join(filepath.Dir(cfg.PlaceholderFile), "artifacts.yaml"))

	for _, opt := range opts {
		opt(p)
	}

	if v := p.resolver.Resolve(p.now()); v != "" {
		if _, err := semver.NewVersion(v); err != nil {
			return nil, fmt.Errorf("%w: chart version %q is not semver: %w", ErrConfiguration, v, err)
		}
	}

	return p, nil
}

func (p *Packager) discover() ([]chartsrc.Chart, error) {
	charts, err := chartsrc.Discover(p.cfg.ChartRoots, p.cfg.Excludes)
	if err != nil {
		return nil, fmt.Errorf("discover charts: %w", err)
	}

	return charts, nil
}

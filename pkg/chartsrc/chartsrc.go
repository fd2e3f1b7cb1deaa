// Package chartsrc locates chart source directories under configured roots.
//
// Discovery order is deterministic: roots in the order given, then lexical
// within each root. Callers that abort on the first failure therefore always
// attempt the same prefix of the sequence.
package chartsrc

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/gobwas/glob"

	"helm.sh/helm/v3/pkg/chart"
	"helm.sh/helm/v3/pkg/chartutil"
)

// ErrBadExclude indicates an exclude pattern that cannot be compiled.
var ErrBadExclude = errors.New("invalid exclude pattern")

// Chart is a discovered chart source directory with its parsed descriptor.
type Chart struct {
	Meta *chart.Metadata
	Dir  string
}

// CompileExcludes compiles glob patterns matched against slash-separated
// directory paths.
func CompileExcludes(patterns []string) ([]glob.Glob, error) {
	globs := make([]glob.Glob, 0, len(patterns))

	for _, p := range patterns {
		g, err := glob.Compile(p, '/')
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %w", ErrBadExclude, p, err)
		}

		globs = append(globs, g)
	}

	return globs, nil
}

// Discover walks each root and returns every directory containing a chart
// descriptor file. Subtrees of discovered charts are not descended, so
// bundled subcharts belong to their parent. Directories matching an exclude
// pattern are skipped entirely.
func Discover(roots, excludes []string) ([]Chart, error) {
	globs, err := CompileExcludes(excludes)
	if err != nil {
		return nil, err
	}

	var charts []Chart

	for _, root := range roots {
		err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if !d.IsDir() {
				return nil
			}

			if matchesAny(globs, filepath.ToSlash(p)) {
				return fs.SkipDir
			}

			chartfile := filepath.Join(p, chartutil.ChartfileName)
			if _, err := os.Stat(chartfile); err != nil {
				if errors.Is(err, fs.ErrNotExist) {
					return nil
				}

				return fmt.Errorf("stat %q: %w", chartfile, err)
			}

			meta, err := chartutil.LoadChartfile(chartfile)
			if err != nil {
				return fmt.Errorf("load %q: %w", chartfile, err)
			}

			charts = append(charts, Chart{Dir: p, Meta: meta})

			return fs.SkipDir
		})
		if err != nil {
			return nil, fmt.Errorf("walk %q: %w", root, err)
		}
	}

	return charts, nil
}

func matchesAny(globs []glob.Glob, path string) bool {
	for _, g := range globs {
		if g.Match(path) {
			return true
		}
	}

	return false
}

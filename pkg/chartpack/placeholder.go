package chartpack

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/macropower/chartpack/pkg/chartsrc"
)

const placeholderBody = `This is NOT the file you are looking for!

To take advantage of the build dependency graph, a placeholder is published
for this artifact. The chart archive itself is deliberately kept out of that
graph.

Please check your Helm repository for the %s chart instead!
`

// writePlaceholder writes the placeholder artifact and registers it for the
// module. Packaging correctness is load-bearing; the placeholder is
// bookkeeping. Every failure here is therefore logged and swallowed, and the
// enclosing operation stays successful.
func (p *Packager) writePlaceholder(chart chartsrc.Chart) {
	name := p.cfg.ArtifactName
	if name == "" {
		name = chart.Meta.Name
	}

	logger := slog.With(
		slog.String("artifact", name),
		slog.String("path", p.cfg.PlaceholderFile),
	)

	if err := os.MkdirAll(filepath.Dir(p.cfg.PlaceholderFile), 0o750); err != nil {
		logger.Error("could not create placeholder directory", slog.Any("err", err))

		return
	}

	body := fmt.Sprintf(placeholderBody, name)
	if err := os.WriteFile(p.cfg.PlaceholderFile, []byte(body), 0o644); err != nil { //nolint:gosec // Marker file, not a secret.
		logger.Error("could not write placeholder artifact", slog.Any("err", err))

		return
	}

	logger.Debug("wrote placeholder artifact")

	if p.registrar == nil {
		return
	}

	if err := p.registrar.SetArtifact(name, p.cfg.PlaceholderFile); err != nil {
		logger.Error("could not register placeholder artifact", slog.Any("err", err))
	}
}

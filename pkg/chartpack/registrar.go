package chartpack

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ArtifactRegistrar records the artifact file published for the current
// module, so downstream dependency resolution in the host build graph can
// find it.
type ArtifactRegistrar interface {
	SetArtifact(name, path string) error
}

// ManifestRegistrar records the module artifact in a YAML manifest on disk.
// It is the default [ArtifactRegistrar]; hosts with their own artifact store
// inject a different one.
type ManifestRegistrar struct {
	// Path of the manifest file. Overwritten on every registration.
	Path string
}

// NewManifestRegistrar creates a [ManifestRegistrar] writing to path.
func NewManifestRegistrar(path string) *ManifestRegistrar {
	return &ManifestRegistrar{Path: path}
}

type artifactManifest struct {
	Artifact string `yaml:"artifact"`
	File     string `yaml:"file"`
}

// SetArtifact writes the manifest, creating parent directories as needed.
func (r *ManifestRegistrar) SetArtifact(name, path string) error {
	data, err := yaml.Marshal(artifactManifest{Artifact: name, File: path})
	if err != nil {
		return fmt.Errorf("marshal artifact manifest: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(r.Path), 0o750); err != nil {
		return fmt.Errorf("create manifest directory: %w", err)
	}

	if err := os.WriteFile(r.Path, data, 0o600); err != nil {
		return fmt.Errorf("write artifact manifest: %w", err)
	}

	return nil
}

// Package config provides the manifest loader for tabicons.
package config

import (
	"bytes"
	"errors"
	"io"
	iofs "io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/tabicons/internal/core/domain"
	"go.trai.ch/tabicons/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultFilename is the manifest file looked up in the working directory.
const DefaultFilename = domain.DefaultManifestFilename

// supportedVersion is the only manifest schema version understood.
const supportedVersion = "1"

var _ ports.ManifestLoader = (*Loader)(nil)

// Loader implements ports.ManifestLoader using a YAML file.
type Loader struct{}

// NewLoader creates a new manifest loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads the manifest at path and returns the generation plan. A missing
// file is only an error when required is set; otherwise the built-in plan is
// returned.
func (l *Loader) Load(path string, required bool) (*domain.GenerationPlan, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			if required {
				return nil, domain.WithDetail(domain.ErrManifestNotFound, "path", path)
			}
			return domain.DefaultPlan(), nil
		}
		return nil, errors.Join(domain.ErrManifestReadFailed, zerr.With(err, "path", path))
	}

	plan, err := Parse(data, filepath.Dir(path))
	if err != nil {
		return nil, domain.WithDetail(err, "path", path)
	}
	return plan, nil
}

// Parse decodes manifest content. A relative output directory is resolved
// against baseDir. Unset fields fall back to the built-in plan; an icons key
// that is present but empty is rejected.
func Parse(data []byte, baseDir string) (*domain.GenerationPlan, error) {
	var file Iconfile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Join(domain.ErrManifestParseFailed, err)
	}

	if file.Version != "" && file.Version != supportedVersion {
		return nil, domain.WithDetail(domain.ErrUnsupportedManifestVersion, "version", file.Version)
	}

	plan := domain.DefaultPlan()

	if file.Output != "" {
		plan.OutputDir = file.Output
	}
	if !filepath.IsAbs(plan.OutputDir) {
		plan.OutputDir = filepath.Join(baseDir, plan.OutputDir)
	}

	style, err := domain.ParseRenderStyle(file.Style)
	if err != nil {
		return nil, err
	}
	plan.Style = style

	if file.Icons != nil {
		plan.Icons = toManifest(*file.Icons)
	}
	if err := plan.Icons.Validate(); err != nil {
		return nil, err
	}

	return plan, nil
}

func toManifest(dtos []IconDTO) domain.Manifest {
	m := make(domain.Manifest, len(dtos))
	for i, dto := range dtos {
		m[i] = domain.IconSpec{
			Filename: dto.File,
			Category: domain.Category(dto.Category),
			Active:   dto.Active,
		}
	}
	return m
}

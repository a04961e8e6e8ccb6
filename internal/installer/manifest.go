package installer

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ManifestName is the project descriptor written next to the scaffold.
const ManifestName = "zeme.yml"

// Manifest describes a scaffolded project: site identity, feature toggles
// and the components installed into it.
type Manifest struct {
	Site struct {
		Title       string `yaml:"title"`
		Description string `yaml:"description"`
		Theme       string `yaml:"theme"`
	} `yaml:"site"`
	Features struct {
		Comments bool `yaml:"comments"`
		RSS      bool `yaml:"rss"`
		Search   bool `yaml:"search"`
	} `yaml:"features"`
	Components []string `yaml:"components,omitempty"`
}

// LoadManifest reads zeme.yml from a project directory.
func LoadManifest(dir string) (*Manifest, error) {
	content, err := os.ReadFile(filepath.Join(dir, ManifestName))
	if err != nil {
		return nil, err
	}
	var m Manifest
	if err := yaml.Unmarshal(content, &m); err != nil {
		return nil, fmt.Errorf("parse %s: %w", ManifestName, err)
	}
	return &m, nil
}

func writeManifest(opts Options, components []string) error {
	outPath := filepath.Join(opts.TargetDir, ManifestName)

	if _, err := os.Stat(outPath); err == nil && !opts.Force {
		fmt.Fprintf(opts.Out, "  skipped %s (exists)\n", outPath)
		return nil
	} else if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("stat %s: %w", outPath, err)
	}

	var m Manifest
	m.Site.Title = opts.SiteTitle
	m.Site.Description = opts.SiteDescription
	m.Site.Theme = opts.Theme
	m.Features.Comments = opts.EnableComments
	m.Features.RSS = true
	m.Features.Search = true
	m.Components = components

	content, err := yaml.Marshal(&m)
	if err != nil {
		return fmt.Errorf("marshal manifest: %w", err)
	}
	content = append([]byte("# Zeme project manifest.\n"), content...)

	if err := os.WriteFile(outPath, content, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", outPath, err)
	}
	fmt.Fprintf(opts.Out, "  created %s\n", outPath)
	return nil
}

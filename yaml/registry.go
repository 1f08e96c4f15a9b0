// Package yaml provides the YAML-backed section registry. A default
// registry ships embedded in the binary; deployments can point at their
// own config file instead.
package yaml

import (
	"context"
	_ "embed"
	"fmt"
	"os"

	"github.com/aduverger/carnet"
	"gopkg.in/yaml.v3"
)

//go:embed sections.yaml
var defaultConfig []byte

// Compile-time interface verification.
var _ carnet.SectionService = (*Registry)(nil)

// Registry implements carnet.SectionService over static YAML
// configuration. Sections are immutable once loaded.
type Registry struct {
	sections []*carnet.Section
	byID     map[string]*carnet.Section
}

// config is the YAML document shape.
type config struct {
	Sections []*carnet.Section `yaml:"sections"`
}

// NewRegistry loads the embedded default section registry.
func NewRegistry() (*Registry, error) {
	return parse(defaultConfig)
}

// NewRegistryFromFile loads a section registry from a config file.
func NewRegistryFromFile(path string) (*Registry, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read sections config: %w", err)
	}
	return parse(b)
}

func parse(b []byte) (*Registry, error) {
	var cfg config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return nil, fmt.Errorf("parse sections config: %w", err)
	}

	r := &Registry{
		sections: cfg.Sections,
		byID:     make(map[string]*carnet.Section, len(cfg.Sections)),
	}
	for _, s := range cfg.Sections {
		if s.ID == "" {
			return nil, carnet.Errorf(carnet.EINVALID, "section without id in config")
		}
		if _, ok := r.byID[s.ID]; ok {
			return nil, carnet.Errorf(carnet.EINVALID, "duplicate section id %q", s.ID)
		}
		r.byID[s.ID] = s
	}
	return r, nil
}

// Sections returns all registered sections in configuration order.
func (r *Registry) Sections(ctx context.Context) ([]*carnet.Section, error) {
	return r.sections, nil
}

// FindSectionByID retrieves a section by ID.
// Returns ENOTFOUND if the section does not exist.
func (r *Registry) FindSectionByID(ctx context.Context, id string) (*carnet.Section, error) {
	s, ok := r.byID[id]
	if !ok {
		return nil, carnet.Errorf(carnet.ENOTFOUND, "section %q not found", id)
	}
	return s, nil
}

// Package config parses the hintc.yaml options file and batch lowering
// manifests.
//
// Options control how bare surface names are qualified before lowering;
// manifests list declarations to lower in one run.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/hacklite/hintc/internal/lower"
)

// Options is the top-level hintc.yaml configuration.
type Options struct {
	// Aliases maps bare surface names to their namespace-qualified forms.
	// Entries here extend (and may override) the built-in HH autoimports.
	Aliases map[string]string `yaml:"aliases,omitempty"`
}

// hhAutoImports are the names qualified into \HH\ without an explicit
// namespace, matching the reserved-namespace autoimport convention.
var hhAutoImports = []string{
	"Awaitable",
	"Traversable",
	"KeyedTraversable",
	"Container",
	"KeyedContainer",
	"Vector",
	"ImmVector",
	"Map",
	"ImmMap",
	"Set",
	"ImmSet",
	"Pair",
	"vec",
	"dict",
	"keyset",
	"varray",
	"darray",
	"classname",
	"typename",
}

// DefaultOptions returns options seeded with the built-in autoimports.
func DefaultOptions() *Options {
	aliases := make(map[string]string, len(hhAutoImports))
	for _, name := range hhAutoImports {
		aliases[name] = "\\HH\\" + name
	}
	return &Options{Aliases: aliases}
}

// Load reads an options file and merges it over the defaults.
func Load(path string) (*Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading options: %w", err)
	}
	var loaded Options
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	opts := DefaultOptions()
	for name, qualified := range loaded.Aliases {
		opts.Aliases[name] = qualified
	}
	return opts, nil
}

// Manifest is a batch of declarations to lower.
type Manifest struct {
	Decls []Decl `yaml:"decls"`
}

// Decl describes one declaration site whose hint should be lowered.
type Decl struct {
	// Name identifies the declaration in the output unit.
	Name string `yaml:"name"`

	// Kind is the usage kind: property, return, param, typedef, upper_bound.
	Kind string `yaml:"kind"`

	// Hint is the surface hint expression.
	Hint string `yaml:"hint"`

	// TParams lists the generic parameter names in scope.
	TParams []string `yaml:"tparams,omitempty"`

	// Nullable signals declaration-site nullability.
	Nullable bool `yaml:"nullable,omitempty"`

	// SkipAwaitable requests async-wrapper unwrapping (return sites).
	SkipAwaitable bool `yaml:"skip_awaitable,omitempty"`
}

// LoadManifest reads and validates a manifest file.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &m, nil
}

// Validate checks every declaration for the fields lowering needs.
func (m *Manifest) Validate() error {
	if len(m.Decls) == 0 {
		return fmt.Errorf("manifest has no decls")
	}
	for i, d := range m.Decls {
		if d.Name == "" {
			return fmt.Errorf("decls[%d]: missing name", i)
		}
		if d.Hint == "" {
			return fmt.Errorf("decls[%d] (%s): missing hint", i, d.Name)
		}
		if _, err := lower.ParseKind(d.Kind); err != nil {
			return fmt.Errorf("decls[%d] (%s): %w", i, d.Name, err)
		}
	}
	return nil
}

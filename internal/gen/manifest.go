package gen

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ManifestVersion is the only manifest format understood.
const ManifestVersion = "1"

// Manifest describes several generator runs in one file:
//
//	version: "1"
//	defaults:
//	  func: loadEnv
//	packages:
//	  - pattern: ./internal/config
//	  - pattern: ./cmd/server
//	    out: env_gen.go
//	    exclude: [LEGACY_PORT]
type Manifest struct {
	Version  string   `yaml:"version"`
	Defaults Target   `yaml:"defaults,omitempty"`
	Packages []Target `yaml:"packages"`
}

// Target is one package pattern with its output settings.
type Target struct {
	Pattern string `yaml:"pattern,omitempty"`
	Out     string `yaml:"out,omitempty"`
	Func    string `yaml:"func,omitempty"`
	Var     string `yaml:"var,omitempty"`
	// Exclude lists environment variable names left out of the table.
	Exclude []string `yaml:"exclude,omitempty"`
}

// Config returns the generator configuration of the target.
func (t Target) Config() Config {
	return Config{Filename: t.Out, VarName: t.Var, FuncName: t.Func}
}

// LoadManifest loads and parses a YAML manifest from the given path.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest %s: %w", path, err)
	}

	return ParseManifest(data)
}

// ParseManifest parses YAML data into a Manifest, filling every target's unset
// output settings from the defaults section and then from DefaultConfig.
func ParseManifest(data []byte) (*Manifest, error) {
	var m Manifest

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest YAML: %w", err)
	}

	if err := m.Normalize(); err != nil {
		return nil, err
	}

	return &m, nil
}

// Normalize applies defaults and validates every target. ParseManifest calls it;
// manifests built in code call it themselves.
func (m *Manifest) Normalize() error {
	if m.Version == "" {
		m.Version = ManifestVersion
	}

	if m.Version != ManifestVersion {
		return fmt.Errorf("unsupported manifest version %q", m.Version)
	}

	if len(m.Packages) == 0 {
		return errors.New("manifest lists no packages")
	}

	defaults := m.Defaults.Config().Merge(DefaultConfig())

	for i := range m.Packages {
		t := &m.Packages[i]
		if t.Pattern == "" {
			return fmt.Errorf("package %d: missing pattern", i)
		}

		cfg := t.Config().Merge(defaults)
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("package %s: %w", t.Pattern, err)
		}

		t.Out, t.Var, t.Func = cfg.Filename, cfg.VarName, cfg.FuncName
		t.Exclude = append(t.Exclude, m.Defaults.Exclude...)
	}

	return nil
}

// Marshal serializes a Manifest to YAML.
func (m *Manifest) Marshal() ([]byte, error) {
	return yaml.Marshal(m)
}

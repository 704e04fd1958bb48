// Package gen produces the boilerplate that folds registered leaf failures
// into the AnyError umbrella: the Kind enum, the sealing methods and the
// static Code methods.
package gen

import (
	"fmt"
	"go/token"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Entry is one registered leaf.
type Entry struct {
	// Name is the Go type name of the leaf.
	Name string `yaml:"name"`

	// Code is the ErrorCode constant returned by the generated Code method.
	// Empty when the leaf implements Code itself.
	Code string `yaml:"code,omitempty"`
}

// Registry is the declarative list of leaves.
type Registry struct {
	Package string  `yaml:"package"`
	Leaves  []Entry `yaml:"leaves"`
}

// LoadRegistry reads and validates a registry file.
func LoadRegistry(path string) (*Registry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open registry: %w", err)
	}
	defer f.Close()

	return ParseRegistry(f)
}

// ParseRegistry decodes and validates a registry.
func ParseRegistry(r io.Reader) (*Registry, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var reg Registry
	if err := dec.Decode(&reg); err != nil {
		return nil, fmt.Errorf("failed to parse registry: %w", err)
	}

	if err := reg.Validate(); err != nil {
		return nil, err
	}
	return &reg, nil
}

// Validate checks that the registry describes a buildable umbrella: a
// package name, at least one leaf, identifiers everywhere and no leaf
// listed twice.
func (r *Registry) Validate() error {
	if !token.IsIdentifier(r.Package) {
		return fmt.Errorf("invalid package name %q", r.Package)
	}
	if len(r.Leaves) == 0 {
		return fmt.Errorf("registry lists no leaves")
	}

	seen := make(map[string]bool, len(r.Leaves))
	for i, leaf := range r.Leaves {
		if !token.IsIdentifier(leaf.Name) || !token.IsExported(leaf.Name) {
			return fmt.Errorf("leaf %d: invalid type name %q", i, leaf.Name)
		}
		if seen[leaf.Name] {
			return fmt.Errorf("leaf %s is registered more than once", leaf.Name)
		}
		seen[leaf.Name] = true

		if leaf.Code != "" && !token.IsIdentifier(leaf.Code) {
			return fmt.Errorf("leaf %s: invalid code constant %q", leaf.Name, leaf.Code)
		}
	}
	return nil
}

package suite

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"digital.vasic.selfcheck/pkg/check"
	"digital.vasic.selfcheck/pkg/registry"
)

// builtinManifest declares the built-in groups: identity,
// label, description, and execution order. It is compiled into
// the binary; nothing is read from the environment.
const builtinManifest = `version: "1"
groups:
  - id: arithmetic
    label: Arithmetic
    description: >-
      Addition, subtraction, multiplication, and division over
      fixed literal operands.
  - id: strings
    label: Strings
    description: >-
      Length, case folding, and substring containment over a
      fixed literal string.
  - id: lists
    label: Lists
    description: >-
      Length, indexed access including negative indices, and
      append growth over a fixed literal list.
  - id: dicts
    label: Dictionaries
    description: >-
      Keyed lookup, key containment, and size over a fixed
      two-entry mapping.
`

// manifest is the parsed form of the built-in group manifest.
type manifest struct {
	Version string `yaml:"version"`
	Groups  []Meta `yaml:"groups"`
}

// builders maps manifest group IDs to their constructors.
var builders = map[check.ID]func(Meta) check.Group{
	"arithmetic": newArithmeticGroup,
	"strings":    newStringsGroup,
	"lists":      newListsGroup,
	"dicts":      newDictsGroup,
}

// parseManifest unmarshals and validates a group manifest.
func parseManifest(data []byte) (*manifest, error) {
	var m manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf(
			"failed to parse group manifest: %w", err,
		)
	}

	if err := validateManifest(&m); err != nil {
		return nil, err
	}

	return &m, nil
}

// validateManifest checks manifest invariants: at least one
// group, unique non-empty IDs, and non-empty labels.
func validateManifest(m *manifest) error {
	if len(m.Groups) == 0 {
		return fmt.Errorf("manifest declares no groups")
	}

	seen := make(map[check.ID]bool, len(m.Groups))
	for _, meta := range m.Groups {
		if meta.ID == "" {
			return fmt.Errorf(
				"manifest group with empty id",
			)
		}
		if seen[meta.ID] {
			return fmt.Errorf(
				"duplicate group id in manifest: %s",
				meta.ID,
			)
		}
		seen[meta.ID] = true

		if meta.Label == "" {
			return fmt.Errorf(
				"group %s has empty label", meta.ID,
			)
		}
	}

	return nil
}

// Register parses the built-in manifest and registers its
// groups into reg in manifest order.
func Register(reg registry.Registry) error {
	return registerManifest(reg, []byte(builtinManifest))
}

// registerManifest binds manifest entries to group
// constructors and registers each group.
func registerManifest(
	reg registry.Registry,
	data []byte,
) error {
	m, err := parseManifest(data)
	if err != nil {
		return err
	}

	for _, meta := range m.Groups {
		build, ok := builders[meta.ID]
		if !ok {
			return fmt.Errorf(
				"no builder for group: %s", meta.ID,
			)
		}
		if err := reg.Register(build(meta)); err != nil {
			return fmt.Errorf(
				"failed to register group %s: %w",
				meta.ID, err,
			)
		}
	}

	return nil
}

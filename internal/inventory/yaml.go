package inventory

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/spf13/afero"
	"go.yaml.in/yaml/v3"
)

// FormatVersion is the structured inventory format this build writes.
// Readers accept any version with the same major.
const FormatVersion = "1.0.0"

// Document is the on-disk shape of a structured YAML inventory.
type Document struct {
	Version string `yaml:"version,omitempty"`
	Links   []Link `yaml:"links"`
}

// Link is one short-token/href pair in a structured inventory.
type Link struct {
	Short string `yaml:"short"`
	Href  string `yaml:"href"`
}

// ParseYAML validates and parses a structured YAML inventory. Entries later
// in the list overwrite earlier ones with the same token, matching the text
// format's last-wins rule.
func ParseYAML(data []byte, path string) (Inventory, error) {
	result, err := Validate(data)
	if err != nil {
		return nil, fmt.Errorf("validating inventory %s: %w", path, err)
	}
	if !result.Valid {
		return nil, fmt.Errorf("inventory %s is invalid:\n%s", path, result.Format())
	}

	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing inventory %s: %w", path, err)
	}

	if err := checkFormatVersion(doc.Version); err != nil {
		return nil, fmt.Errorf("inventory %s: %w", path, err)
	}

	inv := make(Inventory, len(doc.Links))
	for _, l := range doc.Links {
		inv[l.Short] = l.Href
	}
	return inv, nil
}

// WriteYAML marshals an inventory to the structured format at path, entries
// sorted by token.
func WriteYAML(fsys afero.Fs, path string, inv Inventory) error {
	doc := Document{Version: FormatVersion}
	for _, short := range inv.Tokens() {
		doc.Links = append(doc.Links, Link{Short: short, Href: inv[short]})
	}

	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshaling inventory: %w", err)
	}

	if err := afero.WriteFile(fsys, path, data, 0644); err != nil {
		return fmt.Errorf("writing inventory %s: %w", path, err)
	}
	return nil
}

// checkFormatVersion accepts an empty version (treated as current) or any
// semver with the same major as FormatVersion.
func checkFormatVersion(version string) error {
	if version == "" {
		return nil
	}

	v, err := semver.NewVersion(strings.TrimPrefix(version, "v"))
	if err != nil {
		return fmt.Errorf("parsing format version %q: %w", version, err)
	}

	supported := semver.MustParse(FormatVersion)
	if v.Major() != supported.Major() {
		return fmt.Errorf("unsupported format version %s (this build reads %d.x)", version, supported.Major())
	}
	return nil
}

package inventory

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"
)

// DefaultPath is the inventory file the shortening pass leaves behind.
const DefaultPath = "hrefInventory.txt"

// Delimiter separates the short token from the href in the text format.
// Neither field may contain it; the first occurrence splits the line.
const Delimiter = "||"

// Inventory maps short tokens to the original hrefs they stand in for.
type Inventory map[string]string

// Load reads an inventory file, choosing the format by extension:
// .yaml/.yml parse as the structured format, anything else as plain text.
// A missing file is fatal to the caller and satisfies
// errors.Is(err, fs.ErrNotExist).
func Load(fsys afero.Fs, path string) (Inventory, error) {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s not found: %w", path, fs.ErrNotExist)
		}
		return nil, fmt.Errorf("reading inventory %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAML(data, path)
	default:
		return ParseText(data), nil
	}
}

// ParseText parses the `short||href` line format. Surrounding whitespace is
// trimmed per line, the first delimiter splits the line into exactly two
// fields, and lines without the delimiter are silently skipped. A token
// declared on more than one line keeps the href from the last line.
func ParseText(data []byte) Inventory {
	inv := make(Inventory)
	for _, line := range strings.Split(string(data), "\n") {
		short, href, ok := strings.Cut(strings.TrimSpace(line), Delimiter)
		if !ok {
			continue
		}
		inv[short] = href
	}
	return inv
}

// WriteText marshals an inventory to the `short||href` line format at path,
// entries sorted by token.
func WriteText(fsys afero.Fs, path string, inv Inventory) error {
	var b strings.Builder
	for _, short := range inv.Tokens() {
		b.WriteString(short)
		b.WriteString(Delimiter)
		b.WriteString(inv[short])
		b.WriteByte('\n')
	}
	if err := afero.WriteFile(fsys, path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("writing inventory %s: %w", path, err)
	}
	return nil
}

// Tokens returns the short tokens in sorted order, for deterministic output.
func (inv Inventory) Tokens() []string {
	tokens := make([]string, 0, len(inv))
	for short := range inv {
		tokens = append(tokens, short)
	}
	sort.Strings(tokens)
	return tokens
}

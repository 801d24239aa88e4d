package restore

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/spf13/afero"

	"github.com/relink-tools/relink/internal/docs"
	"github.com/relink-tools/relink/internal/inventory"
)

// linkRe matches any markdown-style link and captures its target.
var linkRe = regexp.MustCompile(`\[.*?\]\(([^)]*)\)`)

// UnresolvedTargets walks the tree and returns link targets that look like
// short tokens but have no inventory entry, keyed by target with the files
// each appears in. Read failures are logged to errOut and skipped, same as
// a restore run.
func UnresolvedTargets(fsys afero.Fs, inv inventory.Inventory, opts Options, errOut io.Writer) (map[string][]string, error) {
	opts.setDefaults()

	paths, err := docs.Discover(fsys, opts.Root, opts.Ext, errOut)
	if err != nil {
		return nil, err
	}

	found := make(map[string][]string)
	for _, path := range paths {
		data, err := afero.ReadFile(fsys, path)
		if err != nil {
			fmt.Fprintf(errOut, "Could not read file %s: %v\n", path, err)
			continue
		}

		seen := make(map[string]bool)
		for _, m := range linkRe.FindAllStringSubmatch(string(data), -1) {
			target := m[1]
			if seen[target] || !looksLikeToken(target) {
				continue
			}
			if _, known := inv[target]; known {
				continue
			}
			seen[target] = true
			found[target] = append(found[target], path)
		}
	}

	return found, nil
}

// looksLikeToken filters out targets that are clearly real link
// destinations rather than leftover short tokens. Heuristic only.
func looksLikeToken(target string) bool {
	if target == "" || strings.ContainsAny(target, " \t") {
		return false
	}
	if strings.Contains(target, "://") {
		return false
	}
	for _, prefix := range []string{"#", "/", "./", "../", "mailto:"} {
		if strings.HasPrefix(target, prefix) {
			return false
		}
	}
	return true
}

package docs

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// DefaultExtension selects markdown documents.
const DefaultExtension = ".md"

// Discover walks the tree rooted at root and returns every regular file
// whose name ends with ext. Unreadable entries are logged to errOut and
// skipped; only a root that cannot be walked at all is an error. Traversal
// order is whatever the filesystem yields; callers must not depend on it.
func Discover(fsys afero.Fs, root, ext string, errOut io.Writer) ([]string, error) {
	var paths []string

	err := afero.Walk(fsys, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			fmt.Fprintf(errOut, "Could not read %s: %v\n", path, err)
			if info != nil && info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if info.IsDir() || !info.Mode().IsRegular() {
			return nil
		}
		if strings.HasSuffix(info.Name(), ext) {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", root, err)
	}

	return paths, nil
}

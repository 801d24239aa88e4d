package restore

import (
	"fmt"
	"io"

	"github.com/spf13/afero"

	"github.com/relink-tools/relink/internal/docs"
	"github.com/relink-tools/relink/internal/inventory"
)

// Options configure a restore run. Zero values fall back to the fixed
// conventions the shortening pass established.
type Options struct {
	Root      string // directory tree to walk; default "."
	Inventory string // inventory file path; default inventory.DefaultPath
	Ext       string // document extension; default docs.DefaultExtension
	DryRun    bool   // report what would change without writing
}

func (o *Options) setDefaults() {
	if o.Root == "" {
		o.Root = "."
	}
	if o.Inventory == "" {
		o.Inventory = inventory.DefaultPath
	}
	if o.Ext == "" {
		o.Ext = docs.DefaultExtension
	}
}

// SkippedFile records a document left untouched because of a local error.
type SkippedFile struct {
	Path   string `yaml:"path"`
	Reason string `yaml:"reason"`
}

// Summary describes one restore run.
type Summary struct {
	Root         string        `yaml:"root"`
	Inventory    string        `yaml:"inventory"`
	DryRun       bool          `yaml:"dry_run,omitempty"`
	Scanned      int           `yaml:"scanned"`
	Replacements int           `yaml:"replacements"`
	Modified     []string      `yaml:"modified,omitempty"`
	Skipped      []SkippedFile `yaml:"skipped,omitempty"`
}

// Run loads the inventory, discovers documents under the root, and applies
// the engine to each file in sequence. Per-file progress goes to out,
// per-file errors to errOut; those errors skip the file and the run
// continues. A missing inventory or unwalkable root is fatal and nothing
// is written.
func Run(fsys afero.Fs, opts Options, out, errOut io.Writer) (*Summary, error) {
	opts.setDefaults()

	inv, err := inventory.Load(fsys, opts.Inventory)
	if err != nil {
		return nil, err
	}
	engine := NewEngine(inv)

	paths, err := docs.Discover(fsys, opts.Root, opts.Ext, errOut)
	if err != nil {
		return nil, err
	}

	sum := &Summary{
		Root:      opts.Root,
		Inventory: opts.Inventory,
		DryRun:    opts.DryRun,
	}

	for _, path := range paths {
		sum.Scanned++

		data, err := afero.ReadFile(fsys, path)
		if err != nil {
			fmt.Fprintf(errOut, "Could not read file %s: %v\n", path, err)
			sum.Skipped = append(sum.Skipped, SkippedFile{Path: path, Reason: "read: " + err.Error()})
			continue
		}

		content := string(data)
		restored, n := engine.Apply(content)
		if restored == content {
			continue
		}

		if opts.DryRun {
			sum.Replacements += n
			sum.Modified = append(sum.Modified, path)
			fmt.Fprintf(out, "Would restore links in %s\n", path)
			continue
		}

		if err := afero.WriteFile(fsys, path, []byte(restored), 0644); err != nil {
			fmt.Fprintf(errOut, "Could not write to file %s: %v\n", path, err)
			sum.Skipped = append(sum.Skipped, SkippedFile{Path: path, Reason: "write: " + err.Error()})
			continue
		}

		sum.Replacements += n
		sum.Modified = append(sum.Modified, path)
		fmt.Fprintf(out, "Restored links in %s\n", path)
	}

	return sum, nil
}

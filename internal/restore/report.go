package restore

import (
	"fmt"

	"github.com/spf13/afero"
	"go.yaml.in/yaml/v3"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var totalsPrinter = message.NewPrinter(language.English)

// Totals renders the one-line human summary of a run.
func (s *Summary) Totals() string {
	verb := "restored"
	if s.DryRun {
		verb = "would restore"
	}
	return totalsPrinter.Sprintf("Scanned %d files: %s %d links in %d files.",
		s.Scanned, verb, s.Replacements, len(s.Modified))
}

// WriteSummary marshals the run summary as YAML to path.
func WriteSummary(fsys afero.Fs, path string, s *Summary) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshaling summary: %w", err)
	}
	if err := afero.WriteFile(fsys, path, data, 0644); err != nil {
		return fmt.Errorf("writing summary %s: %w", path, err)
	}
	return nil
}

package cli

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/relink-tools/relink/internal/branding"
	"github.com/relink-tools/relink/internal/config"
	"github.com/relink-tools/relink/internal/docs"
	"github.com/relink-tools/relink/internal/inventory"
	"github.com/relink-tools/relink/internal/restore"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var (
	flagRoot      string
	flagInventory string
	flagExt       string
	flagSummary   string
	flagDryRun    bool
)

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagRoot, "root", "", "Directory tree to process (default current directory)")
	pf.StringVar(&flagInventory, "inventory", "", "Inventory file path (default "+inventory.DefaultPath+")")
	pf.StringVar(&flagExt, "ext", "", "Document extension filter (default "+docs.DefaultExtension+")")

	rootCmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "Report what would change without writing")
	rootCmd.Flags().StringVar(&flagSummary, "summary", "", "Write a YAML run summary to this file")
}

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` reverses a prior link-shortening pass: it reads the href
inventory the shortener left behind, walks the document tree, and rewrites
every [label](short-token) link back to [label](original-url) in place.

Run it with no arguments from the directory the shortener ran in.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRestore(cmd)
	},
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return rootCmd.Execute()
}

// restoreOptions resolves flags over user config over the fixed conventions.
func restoreOptions() restore.Options {
	config.Load()
	return restore.Options{
		Root:      firstNonEmpty(flagRoot, config.GetDefault(config.KeyRoot, ".")),
		Inventory: firstNonEmpty(flagInventory, config.GetDefault(config.KeyInventory, inventory.DefaultPath)),
		Ext:       firstNonEmpty(flagExt, config.GetDefault(config.KeyExtension, docs.DefaultExtension)),
		DryRun:    flagDryRun,
	}
}

func runRestore(cmd *cobra.Command) error {
	opts := restoreOptions()
	fsys := afero.NewOsFs()

	sum, err := restore.Run(fsys, opts, cmd.OutOrStdout(), cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), sum.Totals())

	if flagSummary != "" {
		if err := restore.WriteSummary(fsys, flagSummary, sum); err != nil {
			return err
		}
	}
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

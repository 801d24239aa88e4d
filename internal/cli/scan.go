package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/relink-tools/relink/internal/inventory"
	"github.com/relink-tools/relink/internal/restore"
)

func init() {
	rootCmd.AddCommand(scanCmd)
}

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "List link targets that look like unrestored short tokens",
	Long: `Walk the document tree and report link targets that look like short
tokens but have no entry in the inventory. Nothing is modified.

Useful after a restore pass to spot tokens the inventory never covered.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := restoreOptions()
		fsys := afero.NewOsFs()

		inv, err := inventory.Load(fsys, opts.Inventory)
		if err != nil {
			return err
		}

		found, err := restore.UnresolvedTargets(fsys, inv, opts, cmd.ErrOrStderr())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(found) == 0 {
			fmt.Fprintln(out, "No unresolved short links found.")
			return nil
		}

		targets := make([]string, 0, len(found))
		for target := range found {
			targets = append(targets, target)
		}
		sort.Strings(targets)

		for _, target := range targets {
			fmt.Fprintln(out, target)
			for _, path := range found[target] {
				fmt.Fprintf(out, "  %s\n", path)
			}
		}
		return nil
	},
}

package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/relink-tools/relink/internal/inventory"
)

func init() {
	inventoryCmd.AddCommand(inventoryValidateCmd)
	inventoryCmd.AddCommand(inventoryConvertCmd)
	rootCmd.AddCommand(inventoryCmd)
}

var inventoryCmd = &cobra.Command{
	Use:   "inventory",
	Short: "Inspect and convert href inventory files",
}

var inventoryValidateCmd = &cobra.Command{
	Use:   "validate <path>",
	Short: "Parse an inventory file and report its entry count",
	Long: `Parse an inventory file in either format. YAML inventories are checked
against the format schema and their format version; text inventories report
how many lines parsed as entries.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		inv, err := inventory.Load(afero.NewOsFs(), path)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %d links\n", path, len(inv))
		return nil
	},
}

var inventoryConvertCmd = &cobra.Command{
	Use:   "convert <src> <dst>",
	Short: "Convert an inventory between the text and YAML formats",
	Long: `Read the inventory at <src> and write it to <dst>. The destination
extension picks the output format: .yaml/.yml for the structured format,
anything else for the ` + inventory.Delimiter + ` line format. Entries are
written sorted by token.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		src, dst := args[0], args[1]
		fsys := afero.NewOsFs()

		inv, err := inventory.Load(fsys, src)
		if err != nil {
			return err
		}

		switch strings.ToLower(filepath.Ext(dst)) {
		case ".yaml", ".yml":
			err = inventory.WriteYAML(fsys, dst, inv)
		default:
			err = inventory.WriteText(fsys, dst, inv)
		}
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d links to %s\n", len(inv), dst)
		return nil
	},
}

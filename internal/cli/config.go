package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/relink-tools/relink/internal/config"
)

func init() {
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configGetCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage user settings",
	Long: `Read and write relink configuration stored at ~/.relink/config.yaml.
Recognized keys: ` + config.KeyInventory + `, ` + config.KeyRoot + `, ` + config.KeyExtension + `.`,
}

// recognizedKeys are the settings config set accepts, matching the help text.
var recognizedKeys = map[string]bool{
	config.KeyInventory: true,
	config.KeyRoot:      true,
	config.KeyExtension: true,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		config.Load()
		key, value := args[0], args[1]
		if !recognizedKeys[key] {
			return fmt.Errorf("unknown config key %q (recognized: %s, %s, %s)",
				key, config.KeyInventory, config.KeyRoot, config.KeyExtension)
		}
		if err := config.Set(key, value); err != nil {
			return fmt.Errorf("setting config key %q: %w", key, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", key, value)
		return nil
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		config.Load()
		fmt.Fprintln(cmd.OutOrStdout(), config.Get(args[0]))
		return nil
	},
}

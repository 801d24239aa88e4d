// Package branding provides compile-time identity values for the CLI.
//
// Forkers edit branding.yaml in this package; Go's //go:embed bakes it
// into the binary.
package branding

import (
	_ "embed"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

type brand struct {
	CLIName     string `yaml:"cli_name"`
	DisplayName string `yaml:"display_name"`
	Description string `yaml:"description"`
	HomeDir     string `yaml:"home_dir"`
	EnvPrefix   string `yaml:"env_prefix"`
	GoModule    string `yaml:"go_module"`
}

var defaults = load()

func load() brand {
	// Hard defaults in case the embedded file is missing/empty.
	b := brand{
		CLIName:     "relink",
		DisplayName: "Relink",
		Description: "Restore shortened markdown links from an href inventory",
		HomeDir:     ".relink",
		EnvPrefix:   "RELINK",
		GoModule:    "github.com/relink-tools/relink",
	}
	_ = yaml.Unmarshal(rawBranding, &b)
	return b
}

// CLIName returns the root command name (e.g., "relink").
func CLIName() string { return defaults.CLIName }

// DisplayName returns the human-readable product name.
func DisplayName() string { return defaults.DisplayName }

// Description returns the short product description.
func Description() string { return defaults.Description }

// HomeDir returns the per-user directory name (e.g., ".relink").
func HomeDir() string { return defaults.HomeDir }

// EnvPrefix returns the prefix for environment variable overrides.
func EnvPrefix() string { return defaults.EnvPrefix }

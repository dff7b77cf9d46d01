// Package config provides configuration schema types for archium.
package config

import "slices"

// Package manager preferences.
const (
	PackageManagerAuto   = "auto"
	PackageManagerYay    = "yay"
	PackageManagerParu   = "paru"
	PackageManagerPacman = "pacman"
)

// PackageManagers lists every accepted package_manager value.
var PackageManagers = []string{
	PackageManagerAuto,
	PackageManagerYay,
	PackageManagerParu,
	PackageManagerPacman,
}

// Config represents the root configuration for archium.
type Config struct {
	// Verbose enables info-level logging and verbose plugin contexts.
	Verbose bool `json:"verbose" koanf:"verbose" toml:"verbose" yaml:"verbose"`

	// PackageManager selects the package manager.
	// Default: "auto" (yay, then paru, then pacman)
	PackageManager string `json:"package_manager,omitempty" koanf:"package_manager" toml:"package_manager,omitempty" yaml:"package_manager,omitempty"`

	// JSONOutput switches machine-readable listings to JSON.
	JSONOutput bool `json:"json_output" koanf:"json_output" toml:"json_output" yaml:"json_output"`

	// BatchMode suppresses interactive prompts where possible.
	BatchMode bool `json:"batch_mode" koanf:"batch_mode" toml:"batch_mode" yaml:"batch_mode"`

	// Plugins contains configuration for the plugin subsystem.
	Plugins *PluginConfig `json:"plugins,omitempty" koanf:"plugins" toml:"plugins,omitempty" yaml:"plugins,omitempty"`
}

// GetPlugins returns the plugin configuration, never nil.
func (c *Config) GetPlugins() *PluginConfig {
	if c == nil || c.Plugins == nil {
		return &PluginConfig{}
	}

	return c.Plugins
}

// PreferredPackageManager returns the configured package manager, or
// PackageManagerAuto when unset.
func (c *Config) PreferredPackageManager() string {
	if c == nil || c.PackageManager == "" {
		return PackageManagerAuto
	}

	return c.PackageManager
}

// IsValidPackageManager reports whether name is an accepted package_manager value.
func IsValidPackageManager(name string) bool {
	return slices.Contains(PackageManagers, name)
}

package config

import "github.com/archium/archium/pkg/config"

// DefaultConfig returns a Config with all default values populated.
func DefaultConfig() *config.Config {
	enabled := true
	lua := true

	return &config.Config{
		PackageManager: config.PackageManagerAuto,
		Plugins: &config.PluginConfig{
			Enabled: &enabled,
			Lua:     &lua,
			Ignore:  []string{},
		},
	}
}

// defaultsToMap flattens DefaultConfig into koanf keys.
func defaultsToMap() map[string]any {
	return map[string]any{
		"verbose":         false,
		"package_manager": config.PackageManagerAuto,
		"json_output":     false,
		"batch_mode":      false,
		"plugins.enabled": true,
		"plugins.lua":     true,
		"plugins.ignore":  []string{},
	}
}

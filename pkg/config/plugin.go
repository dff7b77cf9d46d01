package config

// PluginConfig contains configuration for the plugin system.
type PluginConfig struct {
	// Enabled controls whether plugins are loaded at startup.
	// Default: true
	Enabled *bool `json:"enabled,omitempty" koanf:"enabled" toml:"enabled,omitempty" yaml:"enabled,omitempty"`

	// Directory overrides the plugin directory.
	// Default: "~/.config/archium/plugins"
	Directory string `json:"directory,omitempty" koanf:"directory" toml:"directory,omitempty" yaml:"directory,omitempty"`

	// Ignore lists glob patterns (doublestar syntax) matched against file
	// names in the plugin directory. Matching files are never opened.
	Ignore []string `json:"ignore,omitempty" koanf:"ignore" toml:"ignore,omitempty" yaml:"ignore,omitempty"`

	// Lua controls whether .lua script plugins are accepted.
	// Default: true
	Lua *bool `json:"lua,omitempty" koanf:"lua" toml:"lua,omitempty" yaml:"lua,omitempty"`
}

// IsEnabled returns whether plugins are enabled.
func (p *PluginConfig) IsEnabled() bool {
	if p == nil || p.Enabled == nil {
		return true
	}

	return *p.Enabled
}

// IsLuaEnabled returns whether Lua script plugins are accepted.
func (p *PluginConfig) IsLuaEnabled() bool {
	if p == nil || p.Lua == nil {
		return true
	}

	return *p.Lua
}

// GetIgnore returns the ignore patterns.
func (p *PluginConfig) GetIgnore() []string {
	if p == nil {
		return nil
	}

	return p.Ignore
}

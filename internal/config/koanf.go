// Package config provides internal configuration loading and processing.
package config

import (
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	tomlparser "github.com/knadh/koanf/parsers/toml/v2"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/archium/archium/internal/xdg"
	"github.com/archium/archium/pkg/config"
)

var (
	// ErrInvalidTOML is returned when the TOML file cannot be parsed.
	ErrInvalidTOML = errors.New("invalid TOML")

	// ErrInvalidPermissions is returned when config file has insecure permissions.
	ErrInvalidPermissions = errors.New("config file has insecure permissions")
)

// EnvPrefix is the prefix of environment variables mapped onto config keys.
const EnvPrefix = "ARCHIUM_"

// Loader handles configuration loading from multiple sources using koanf.
// Precedence order (highest to lowest):
// 1. CLI Flags
// 2. Environment Variables (ARCHIUM_*)
// 3. Config file (~/.config/archium/config.toml)
// 4. Defaults
type Loader struct {
	k          *koanf.Koanf
	configFile string
	unmarshal  koanf.UnmarshalConf
}

// NewLoader creates a new Loader reading the user's config file.
func NewLoader() (*Loader, error) {
	paths, err := xdg.Resolve()
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve config paths")
	}

	return NewLoaderWithFile(paths.ConfigFile), nil
}

// NewLoaderWithFile creates a new Loader reading configFile (for testing).
func NewLoaderWithFile(configFile string) *Loader {
	return &Loader{
		k:          koanf.New("."),
		configFile: configFile,
		unmarshal: koanf.UnmarshalConf{
			Tag:       "koanf",
			FlatPaths: false,
		},
	}
}

// ConfigFile returns the path of the config file.
func (l *Loader) ConfigFile() string {
	return l.configFile
}

// HasConfigFile checks if the config file exists.
func (l *Loader) HasConfigFile() bool {
	return fileExists(l.configFile)
}

// Load loads configuration from all sources with precedence and validates it.
// Defaults → TOML → Env Vars → CLI Flags
func (l *Loader) Load(flags map[string]any) (*config.Config, error) {
	cfg, err := l.LoadWithoutValidation(flags)
	if err != nil {
		return nil, err
	}

	if err := Validate(cfg); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return cfg, nil
}

// LoadWithoutValidation loads configuration without running validation.
func (l *Loader) LoadWithoutValidation(flags map[string]any) (*config.Config, error) {
	l.k = koanf.New(".")

	// 1. Defaults
	if err := l.k.Load(confmap.Provider(defaultsToMap(), "."), nil); err != nil {
		return nil, errors.Wrap(err, "failed to load defaults")
	}

	// 2. Config file
	if err := l.loadTOMLFile(l.k, l.configFile); err != nil && !os.IsNotExist(err) {
		return nil, errors.Wrap(err, "failed to load config file")
	}

	// 3. Environment variables: ARCHIUM_*
	envOpt := env.Opt{
		Prefix:        EnvPrefix,
		TransformFunc: envTransform,
	}

	if err := l.k.Load(env.Provider(".", envOpt), nil); err != nil {
		return nil, errors.Wrap(err, "failed to load env vars")
	}

	// 4. CLI flags
	if len(flags) > 0 {
		if err := l.k.Load(confmap.Provider(flagsToConfig(flags), "."), nil); err != nil {
			return nil, errors.Wrap(err, "failed to load flags")
		}
	}

	var cfg config.Config
	if err := l.k.UnmarshalWithConf("", &cfg, l.unmarshal); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	return &cfg, nil
}

// LoadFileOnly loads only the config file, without defaults, env or flags.
// Used when editing the file so other sources do not leak into it.
// A missing file yields an empty config.
func (l *Loader) LoadFileOnly() (*koanf.Koanf, error) {
	k := koanf.New(".")

	if err := l.loadTOMLFile(k, l.configFile); err != nil && !os.IsNotExist(err) {
		return nil, errors.Wrap(err, "failed to load config file")
	}

	return k, nil
}

// loadTOMLFile loads a TOML configuration file with security checks.
func (*Loader) loadTOMLFile(k *koanf.Koanf, path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}

	if info.Mode().Perm()&0o002 != 0 {
		return errors.Wrapf(
			ErrInvalidPermissions,
			"%s is world-writable (mode: %s)",
			path,
			info.Mode().Perm(),
		)
	}

	if err := k.Load(file.Provider(path), tomlparser.Parser()); err != nil {
		return errors.Wrapf(ErrInvalidTOML, "%s: %v", path, err)
	}

	return nil
}

// envTransform maps environment variable names to config paths.
// ARCHIUM_PACKAGE_MANAGER → package_manager
// ARCHIUM_PLUGINS_IGNORE  → plugins.ignore (comma separated)
func envTransform(key, value string) (string, any) {
	key = strings.ToLower(strings.TrimPrefix(key, EnvPrefix))

	rest, ok := strings.CutPrefix(key, "plugins_")
	if !ok {
		return key, value
	}

	key = "plugins." + rest
	if rest == "ignore" {
		return key, splitList(value)
	}

	return key, value
}

// flagsToConfig converts CLI flags to a configuration map.
func flagsToConfig(flags map[string]any) map[string]any {
	result := make(map[string]any)

	for key, value := range flags {
		switch key {
		case "verbose", "package_manager", "json_output", "batch_mode":
			result[key] = value
		case "plugin-dir":
			if dir, ok := value.(string); ok && dir != "" {
				result["plugins.directory"] = dir
			}
		case "no-plugins":
			if disabled, ok := value.(bool); ok && disabled {
				result["plugins.enabled"] = false
			}
		}
	}

	return result
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))

	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}

	return out
}

func fileExists(path string) bool {
	info, err := os.Stat(path)

	return err == nil && !info.IsDir()
}

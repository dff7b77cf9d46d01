// Package xdg provides centralized path management following XDG Base Directory conventions.
// All paths archium touches on disk are defined here.
package xdg

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
)

const appName = "archium"

// Directory and file modes used when creating archium paths.
const (
	DirMode  = 0o700
	FileMode = 0o600
)

// ErrNoHome is returned when neither the XDG variables nor the home directory
// can be resolved.
var ErrNoHome = errors.New("unable to determine home directory")

// Paths holds every location archium uses.
type Paths struct {
	// ConfigDir is ConfigHome()/archium.
	ConfigDir string

	// CacheDir is CacheHome()/archium.
	CacheDir string

	// PluginDir is ConfigDir/plugins.
	PluginDir string

	// ConfigFile is ConfigDir/config.toml.
	ConfigFile string

	// LogFile is ConfigDir/archium.log unless ARCHIUM_LOG_FILE is set.
	LogFile string

	// LegacyParuMarker is ~/.archium-use-paru, the pre-config package manager switch.
	LegacyParuMarker string
}

// Resolve returns the paths for the current user.
func Resolve() (*Paths, error) {
	home, homeErr := os.UserHomeDir()

	configHome := os.Getenv("XDG_CONFIG_HOME")
	cacheHome := os.Getenv("XDG_CACHE_HOME")

	if homeErr != nil && (configHome == "" || cacheHome == "") {
		return nil, errors.Wrap(ErrNoHome, homeErr.Error())
	}

	if configHome == "" {
		configHome = filepath.Join(home, ".config")
	}

	if cacheHome == "" {
		cacheHome = filepath.Join(home, ".cache")
	}

	p := build(configHome, cacheHome)
	if home != "" {
		p.LegacyParuMarker = filepath.Join(home, ".archium-use-paru")
	}

	return p, nil
}

// ResolveFor returns the paths rooted at homeDir, ignoring XDG variables.
// ARCHIUM_LOG_FILE is still honored.
func ResolveFor(homeDir string) *Paths {
	p := build(filepath.Join(homeDir, ".config"), filepath.Join(homeDir, ".cache"))
	p.LegacyParuMarker = filepath.Join(homeDir, ".archium-use-paru")

	return p
}

func build(configHome, cacheHome string) *Paths {
	configDir := filepath.Join(configHome, appName)

	logFile := os.Getenv("ARCHIUM_LOG_FILE")
	if logFile == "" {
		logFile = filepath.Join(configDir, "archium.log")
	}

	return &Paths{
		ConfigDir:  configDir,
		CacheDir:   filepath.Join(cacheHome, appName),
		PluginDir:  filepath.Join(configDir, "plugins"),
		ConfigFile: filepath.Join(configDir, "config.toml"),
		LogFile:    logFile,
	}
}

// Ensure creates the config, cache and plugin directories.
func (p *Paths) Ensure() error {
	for _, dir := range []string{p.ConfigDir, p.CacheDir, p.PluginDir} {
		if err := EnsureDir(dir); err != nil {
			return err
		}
	}

	return nil
}

// --- Utility functions ---

// ExpandPath resolves ~ prefix to the user's home directory.
// Returns the path unchanged if it doesn't start with ~.
// Returns error for invalid tilde usage like "~foo".
func ExpandPath(path string) (string, error) {
	if len(path) == 0 || path[0] != '~' {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "failed to get home directory")
	}

	switch {
	case path == "~":
		return home, nil
	case strings.HasPrefix(path, "~/"):
		return filepath.Join(home, path[2:]), nil
	default:
		return "", errors.Newf("paths starting with ~ must be either ~ or ~/subdir, got %q", path)
	}
}

// EnsureDir creates a directory with DirMode permissions if it doesn't exist.
// Existing directories are left as they are.
func EnsureDir(path string) error {
	info, err := os.Stat(path)
	if err == nil {
		if !info.IsDir() {
			return errors.Newf("%s exists and is not a directory", path)
		}

		return nil
	}

	if err := os.MkdirAll(path, DirMode); err != nil {
		return errors.Wrapf(err, "failed to create directory %s", path)
	}

	return nil
}

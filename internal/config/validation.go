package config

import (
	"github.com/bmatcuk/doublestar/v4"
	"github.com/cockroachdb/errors"

	"github.com/archium/archium/internal/xdg"
	"github.com/archium/archium/pkg/config"
)

var (
	// ErrInvalidConfig is returned when the configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrInvalidOption is returned when an option value is invalid.
	ErrInvalidOption = errors.New("invalid option value")

	// ErrInvalidPattern is returned when an ignore glob cannot be parsed.
	ErrInvalidPattern = errors.New("invalid glob pattern")
)

// check inspects one part of a config and returns its problems.
type check func(cfg *config.Config) []error

var checks = []check{
	checkPackageManager,
	checkIgnorePatterns,
	checkPluginDirectory,
}

// Validate runs every check and reports all problems at once. The returned
// error wraps ErrInvalidConfig; the individual problems are attached as a
// secondary error.
func Validate(cfg *config.Config) error {
	if cfg == nil {
		return errors.Wrap(ErrInvalidConfig, "config is nil")
	}

	var problems []error

	for _, c := range checks {
		problems = append(problems, c(cfg)...)
	}

	if len(problems) == 0 {
		return nil
	}

	return errors.WithSecondaryError(
		errors.Wrapf(ErrInvalidConfig, "%d problem(s)", len(problems)),
		errors.Join(problems...),
	)
}

func checkPackageManager(cfg *config.Config) []error {
	if config.IsValidPackageManager(cfg.PreferredPackageManager()) {
		return nil
	}

	return []error{errors.Wrapf(ErrInvalidOption,
		"package_manager must be one of %v, got %q", config.PackageManagers, cfg.PackageManager)}
}

func checkIgnorePatterns(cfg *config.Config) []error {
	var errs []error

	for _, pattern := range cfg.GetPlugins().GetIgnore() {
		if !doublestar.ValidatePattern(pattern) {
			errs = append(errs, errors.Wrapf(ErrInvalidPattern, "plugins.ignore: %q", pattern))
		}
	}

	return errs
}

func checkPluginDirectory(cfg *config.Config) []error {
	dir := cfg.GetPlugins().Directory
	if dir == "" {
		return nil
	}

	if _, err := xdg.ExpandPath(dir); err != nil {
		return []error{errors.Wrapf(ErrInvalidOption, "plugins.directory: %v", err)}
	}

	return nil
}

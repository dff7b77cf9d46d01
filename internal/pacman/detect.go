// Package pacman detects the package manager and builds the shell command
// lines of the built-in commands.
package pacman

import (
	"bytes"
	"context"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/archium/archium/internal/exec"
	"github.com/archium/archium/pkg/config"
	"github.com/archium/archium/pkg/logger"
)

// ErrNoPackageManager is returned when none of yay, paru or pacman is in PATH.
var ErrNoPackageManager = errors.New("no suitable package manager is installed")

// UnknownVersion is reported when a version cannot be determined.
const UnknownVersion = "unknown"

// searchOrder is the order package managers are looked up in under "auto".
var searchOrder = []string{
	config.PackageManagerYay,
	config.PackageManagerParu,
	config.PackageManagerPacman,
}

// Detector picks the package manager to use.
type Detector struct {
	tools      exec.ToolChecker
	preference string
	log        logger.Logger
}

// NewDetector creates a Detector. preference is a package_manager value;
// "auto" or empty searches PATH in the default order.
func NewDetector(tools exec.ToolChecker, preference string, log logger.Logger) *Detector {
	if log == nil {
		log = logger.NewNoOpLogger()
	}

	return &Detector{tools: tools, preference: preference, log: log}
}

// Detect returns the package manager name. An explicit preference wins when
// it is installed; otherwise yay, paru and pacman are tried in that order.
func (d *Detector) Detect() (string, error) {
	if d.preference != "" && d.preference != config.PackageManagerAuto {
		if d.tools.IsAvailable(d.preference) {
			return d.preference, nil
		}

		d.log.Info("preferred package manager not found, probing PATH", "preference", d.preference)
	}

	if found := d.tools.FindTool(searchOrder...); found != "" {
		return found, nil
	}

	return "", ErrNoPackageManager
}

// Version returns the first line of "<pm> --version", or UnknownVersion.
func Version(ctx context.Context, runner exec.ShellRunner, packageManager string) string {
	if packageManager == "" {
		return UnknownVersion
	}

	var out bytes.Buffer

	result, err := runner.Run(ctx, packageManager+" --version", &out, &out)
	if err != nil || !result.Success() {
		return UnknownVersion
	}

	line, _, _ := strings.Cut(strings.TrimSpace(out.String()), "\n")
	if line == "" {
		return UnknownVersion
	}

	return strings.TrimSpace(line)
}

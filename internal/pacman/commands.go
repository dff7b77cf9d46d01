package pacman

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/archium/archium/pkg/plugin"
)

// Help categories.
const (
	CategoryPackages = "packages"
	CategorySystem   = "system"
	CategoryInfo     = "info"
	CategoryConfig   = "config"
)

// Categories lists the help categories in display order.
var Categories = []string{CategoryPackages, CategorySystem, CategoryInfo, CategoryConfig}

// OrphanQuery lists orphaned packages one name per line.
const OrphanQuery = "pacman -Qdtq"

// BackupTimeFormat names pacman.conf backups.
const BackupTimeFormat = "20060102_150405"

// Request carries what a built-in needs to build its command lines.
type Request struct {
	PackageManager string
	Args           string
	CacheDir       string
	Now            time.Time
}

// Builtin is one of the built-in single-token commands that map to
// package manager invocations.
type Builtin struct {
	Token       string
	Description string
	Category    string

	// Prompt asks for arguments when none followed the token.
	Prompt string

	// Action is the log message recorded after the command ran.
	Action string

	// Failure is reported when a command line exits non-zero. Zero means
	// plugin.ErrorCodeProcessFailed.
	Failure plugin.ErrorCode

	// Lines builds the shell command lines to run, in order.
	Lines func(req Request) []string
}

func withPM(format string) func(Request) []string {
	return func(req Request) []string {
		return []string{fmt.Sprintf(format, req.PackageManager)}
	}
}

func withPMArgs(format string) func(Request) []string {
	return func(req Request) []string {
		return []string{fmt.Sprintf(format, req.PackageManager, req.Args)}
	}
}

func fixed(lines ...string) func(Request) []string {
	return func(Request) []string {
		return lines
	}
}

var builtins = []Builtin{
	{
		Token:       "u",
		Description: "Update system (u <package> upgrades one package)",
		Category:    CategoryPackages,
		Failure:     plugin.ErrorCodePackageUpdateFailed,
		Action:      "Upgrading system",
		Lines: func(req Request) []string {
			if req.Args != "" {
				return []string{fmt.Sprintf("%s -S %s", req.PackageManager, req.Args)}
			}

			return []string{fmt.Sprintf("%s -Syu --noconfirm", req.PackageManager)}
		},
	},
	{
		Token:       "i",
		Description: "Install packages",
		Category:    CategoryPackages,
		Failure:     plugin.ErrorCodePackageInstallFailed,
		Prompt:      "Enter package names to install",
		Action:      "Installing packages",
		Lines:       withPMArgs("%s -S %s"),
	},
	{
		Token:       "r",
		Description: "Remove packages",
		Category:    CategoryPackages,
		Failure:     plugin.ErrorCodePackageRemoveFailed,
		Prompt:      "Enter package names to remove",
		Action:      "Removing packages",
		Lines:       withPMArgs("%s -R %s"),
	},
	{
		Token:       "p",
		Description: "Purge packages with their dependencies and configuration",
		Category:    CategoryPackages,
		Failure:     plugin.ErrorCodePackageRemoveFailed,
		Prompt:      "Enter package names to purge",
		Action:      "Purging packages",
		Lines:       withPMArgs("%s -Rns %s"),
	},
	{
		Token:       "s",
		Description: "Search for a package",
		Category:    CategoryPackages,
		Failure:     plugin.ErrorCodePackageNotFound,
		Prompt:      "Enter package name to search",
		Action:      "Searched packages",
		Lines:       withPMArgs("%s -Ss %s"),
	},
	{
		Token:       "c",
		Description: "Clean the package cache",
		Category:    CategorySystem,
		Action:      "Cleaning package cache",
		Lines:       withPM("%s -Sc --noconfirm"),
	},
	{
		Token:       "cc",
		Description: "Clear the archium, yay and paru build caches",
		Category:    CategorySystem,
		Action:      "Clearing build caches",
		Lines: func(req Request) []string {
			var lines []string
			if req.CacheDir != "" {
				lines = append(lines, "rm -rf "+filepath.Clean(req.CacheDir)+"/*")
			}

			return append(lines, "rm -rf \"$HOME/.cache/yay\"", "rm -rf \"$HOME/.cache/paru\"")
		},
	},
	{
		Token:       "o",
		Description: "Remove orphaned packages",
		Category:    CategorySystem,
		Failure:     plugin.ErrorCodePackageRemoveFailed,
		Action:      "Cleaning orphaned packages",
		Lines:       withPMArgs("%s -Rns %s"),
	},
	{
		Token:       "lo",
		Description: "List orphaned packages",
		Category:    CategoryInfo,
		Lines:       fixed("pacman -Qdt"),
	},
	{
		Token:       "l",
		Description: "List installed packages",
		Category:    CategoryInfo,
		Lines:       fixed("pacman -Qe"),
	},
	{
		Token:       "?",
		Description: "Show package information",
		Category:    CategoryInfo,
		Failure:     plugin.ErrorCodePackageNotFound,
		Prompt:      "Enter package name to show info",
		Lines:       withPMArgs("%s -Si %s"),
	},
	{
		Token:       "cu",
		Description: "Check for available updates",
		Category:    CategoryInfo,
		Action:      "Checked for updates",
		Lines:       fixed("pacman -Qu"),
	},
	{
		Token:       "dt",
		Description: "Show the dependency tree of a package",
		Category:    CategoryInfo,
		Failure:     plugin.ErrorCodePackageNotFound,
		Prompt:      "Enter package name to view dependencies",
		Lines: func(req Request) []string {
			return []string{"pactree " + req.Args}
		},
	},
	{
		Token:       "si",
		Description: "List installed packages by size",
		Category:    CategoryInfo,
		Action:      "Listed packages by size",
		Lines: fixed(`pacman -Qi | awk '/^Name/{name=$3} /^Installed Size/{size=$4$5; print size, name}' | sort -h`),
	},
	{
		Token:       "re",
		Description: "List recently installed packages",
		Category:    CategoryInfo,
		Action:      "Listed recent installations",
		Lines:       fixed("grep -i installed /var/log/pacman.log | tail -n 20"),
	},
	{
		Token:       "ex",
		Description: "List explicitly installed packages outside base",
		Category:    CategoryInfo,
		Action:      "Listed explicit installations",
		Lines: fixed(`pacman -Qei | awk '/^Name/ { name=$3 } /^Groups/ { if ($3 != "base" && $3 != "base-devel") { print name } }'`),
	},
	{
		Token:       "ow",
		Description: "Find the package owning a file",
		Category:    CategoryInfo,
		Failure:     plugin.ErrorCodeFileNotFound,
		Prompt:      "Enter file path",
		Lines: func(req Request) []string {
			return []string{"pacman -Qo " + req.Args}
		},
	},
	{
		Token:       "ba",
		Description: "Back up /etc/pacman.conf",
		Category:    CategorySystem,
		Failure:     plugin.ErrorCodeSystemCall,
		Action:      "Pacman configuration backed up",
		Lines: func(req Request) []string {
			return []string{"sudo cp /etc/pacman.conf " + BackupPath(req.Now)}
		},
	},
}

// Builtins returns the package manager built-ins in help order.
func Builtins() []Builtin {
	out := make([]Builtin, len(builtins))
	copy(out, builtins)

	return out
}

// Lookup returns the built-in for token.
func Lookup(token string) (Builtin, bool) {
	for _, b := range builtins {
		if b.Token == token {
			return b, true
		}
	}

	return Builtin{}, false
}

// FailureCode returns the code reported when one of b's lines fails.
func (b Builtin) FailureCode() plugin.ErrorCode {
	if b.Failure == 0 {
		return plugin.ErrorCodeProcessFailed
	}

	return b.Failure
}

// BackupPath is where "ba" copies pacman.conf at time now.
func BackupPath(now time.Time) string {
	return "/etc/pacman.conf.backup_" + now.Format(BackupTimeFormat)
}

// ParseOrphans turns OrphanQuery output into a space separated package list.
func ParseOrphans(output string) string {
	return strings.Join(strings.Fields(output), " ")
}

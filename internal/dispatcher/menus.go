package dispatcher

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/archium/archium/internal/prompt"
	"github.com/archium/archium/pkg/config"
	"github.com/archium/archium/pkg/plugin"
)

// Menu choices.
const (
	choicePackageManager = "1"
	choiceConfigDir      = "2"
	choiceLogFile        = "3"

	choiceList    = "1"
	choiceDir     = "2"
	choiceExample = "3"
)

// configure runs "config". With arguments it accepts "show" and
// "set <key> <value>"; without, it shows a menu.
func (d *Dispatcher) configure(args string) (plugin.ErrorCode, error) {
	sub, rest := splitCommand(args)

	switch sub {
	case "":
	case "show":
		d.showDirs()

		return plugin.ErrorCodeSuccess, nil
	case "set":
		key, value := splitCommand(rest)
		if key == "" || value == "" {
			return plugin.ErrorCodeInvalidArg, nil
		}

		return d.setPreference(key, value), nil
	default:
		return plugin.ErrorCodeInvalidArg, nil
	}

	fmt.Fprintln(d.out, d.theme.Heading.Render("Archium Configuration"))
	fmt.Fprintln(d.out, "Available preferences:")
	fmt.Fprintln(d.out, "1. Package manager preference (auto/yay/paru/pacman)")
	fmt.Fprintln(d.out, "2. View current configuration directory")
	fmt.Fprintln(d.out, "3. View log file location")

	choice, err := d.prompter.Input("Enter your choice", "")
	if err != nil {
		return menuError(err)
	}

	switch choice {
	case choicePackageManager:
		pref, err := d.prompter.Input("Enter preferred package manager", config.PackageManagerAuto)
		if err != nil {
			return menuError(err)
		}

		pref = strings.ToLower(pref)
		if !config.IsValidPackageManager(pref) {
			fmt.Fprintln(d.out, "Invalid package manager. Choose one of: "+strings.Join(config.PackageManagers, ", "))

			return plugin.ErrorCodeConfigInvalid, nil
		}

		return d.setPreference("package_manager", pref), nil
	case choiceConfigDir:
		fmt.Fprintln(d.out, "Configuration directory: "+d.dirs.ConfigDir)
	case choiceLogFile:
		fmt.Fprintln(d.out, "Log file: "+d.dirs.LogFile)
	default:
		return plugin.ErrorCodeInvalidInput, nil
	}

	return plugin.ErrorCodeSuccess, nil
}

func (d *Dispatcher) showDirs() {
	fmt.Fprintln(d.out, "Configuration directory: "+d.dirs.ConfigDir)
	fmt.Fprintln(d.out, "Cache directory: "+d.dirs.CacheDir)
	fmt.Fprintln(d.out, "Plugin directory: "+d.plugins.Dir())
	fmt.Fprintln(d.out, "Log file: "+d.dirs.LogFile)
}

func (d *Dispatcher) setPreference(key, value string) plugin.ErrorCode {
	if d.prefs == nil {
		return plugin.ErrorCodeConfigMissing
	}

	if err := d.prefs.Set(key, value); err != nil {
		d.log.Error("failed to save preference", "key", key, "error", err)
		fmt.Fprintln(d.errOut, d.theme.Error.Render(err.Error()))

		return plugin.ErrorCodeConfigInvalid
	}

	d.log.Info("preference saved", "kind", "action", "key", key, "value", value)
	fmt.Fprintln(d.out, d.theme.Success.Render(fmt.Sprintf("Saved %s = %s. Restart archium to apply.", key, value)))

	return plugin.ErrorCodeSuccess
}

// managePlugins runs "plugin". Arguments "list", "dir" and "example" pick
// an action directly; without arguments a menu is shown.
func (d *Dispatcher) managePlugins(args string) (plugin.ErrorCode, error) {
	choice := args

	if choice == "" {
		fmt.Fprintln(d.out, d.theme.Heading.Render("Plugin Management"))
		fmt.Fprintln(d.out, "1. List loaded plugins")
		fmt.Fprintln(d.out, "2. Show plugin directory")
		fmt.Fprintln(d.out, "3. Create example plugin")

		answer, err := d.prompter.Input("Enter your choice", "")
		if err != nil {
			return menuError(err)
		}

		choice = answer
	}

	switch choice {
	case choiceList, "list":
		if err := d.plugins.ListLoaded(d.out, d.theme); err != nil {
			return plugin.ErrorCodeSystemCall, errors.Wrap(err, "failed to list plugins")
		}
	case choiceDir, "dir":
		fmt.Fprintln(d.out, "Plugin directory: "+d.plugins.Dir())
	case choiceExample, "example":
		dir, err := d.plugins.CreateExample()
		if err != nil {
			d.log.Error("failed to create example plugin", "error", err)

			return plugin.ErrorCodeFileAccess, nil
		}

		fmt.Fprintln(d.out, d.theme.Success.Render("Example plugin created in "+dir))
		fmt.Fprintln(d.out, "Build it with: make -C "+dir)
	default:
		return plugin.ErrorCodeInvalidInput, nil
	}

	return plugin.ErrorCodeSuccess, nil
}

// menuError maps a failed menu prompt to a result. Empty answers are
// invalid input; read failures are returned to the caller.
func menuError(err error) (plugin.ErrorCode, error) {
	if errors.Is(err, prompt.ErrEmptyInput) {
		return plugin.ErrorCodeInvalidInput, nil
	}

	return plugin.ErrorCodeInvalidInput, err
}

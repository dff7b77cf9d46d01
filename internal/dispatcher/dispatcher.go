// Package dispatcher maps typed command lines to built-in package manager
// operations and plugin commands, wrapping every command in plugin hooks.
package dispatcher

import (
	"context"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"time"
	"unicode"

	"github.com/cockroachdb/errors"
	"github.com/hako/durafmt"

	"github.com/archium/archium/internal/color"
	"github.com/archium/archium/internal/exec"
	"github.com/archium/archium/internal/pacman"
	pluginhost "github.com/archium/archium/internal/plugin"
	"github.com/archium/archium/internal/prompt"
	"github.com/archium/archium/pkg/logger"
	"github.com/archium/archium/pkg/plugin"
)

// ErrQuit is returned by Dispatch when the user asked to leave.
var ErrQuit = errors.New("quit requested")

// durationDisplayUnits limits logged durations to the two largest units.
const durationDisplayUnits = 2

// Tokens handled by the dispatcher itself rather than by pacman built-ins.
const (
	cmdHelp     = "h"
	cmdHelpLong = "help"
	cmdConfig   = "config"
	cmdPlugin   = "plugin"
	cmdPlugins  = "plugins"
	cmdOrphans  = "o"
	cmdOwner    = "ow"
	cmdBackup   = "ba"
)

var quitTokens = []string{"q", "quit", "exit"}

// Dirs are the locations shown by the config menu and used by cache commands.
type Dirs struct {
	ConfigDir string
	CacheDir  string
	LogFile   string
}

// Dispatcher runs one command line at a time.
type Dispatcher struct {
	plugins  PluginHost
	runner   exec.ShellRunner
	prompter prompt.Prompter
	prefs    Preferences

	packageManager string
	dirs           Dirs

	out    io.Writer
	errOut io.Writer
	theme  color.Theme
	log    logger.Logger
	now    func() time.Time
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithPackageManager sets the package manager name passed to commands and hooks.
func WithPackageManager(name string) Option {
	return func(d *Dispatcher) {
		d.packageManager = name
	}
}

// WithDirs sets the archium directories.
func WithDirs(dirs Dirs) Option {
	return func(d *Dispatcher) {
		d.dirs = dirs
	}
}

// WithPreferences sets where the config menu persists changes.
func WithPreferences(prefs Preferences) Option {
	return func(d *Dispatcher) {
		d.prefs = prefs
	}
}

// WithOutput sets the writers for regular and error output.
func WithOutput(out, errOut io.Writer) Option {
	return func(d *Dispatcher) {
		d.out = out
		d.errOut = errOut
	}
}

// WithTheme sets the output styles.
func WithTheme(theme color.Theme) Option {
	return func(d *Dispatcher) {
		d.theme = theme
	}
}

// WithLogger sets the logger.
func WithLogger(log logger.Logger) Option {
	return func(d *Dispatcher) {
		d.log = log
	}
}

// WithClock sets the time source.
func WithClock(now func() time.Time) Option {
	return func(d *Dispatcher) {
		d.now = now
	}
}

// New creates a Dispatcher.
func New(plugins PluginHost, runner exec.ShellRunner, prompter prompt.Prompter, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		plugins:  plugins,
		runner:   runner,
		prompter: prompter,
		out:      os.Stdout,
		errOut:   os.Stderr,
		log:      logger.NewNoOpLogger(),
		now:      time.Now,
	}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

// PackageManager returns the package manager commands run with.
func (d *Dispatcher) PackageManager() string {
	return d.packageManager
}

// Dispatch runs the command line input. Every valid command is preceded by
// the plugins' before hooks, any of which may veto it, and followed by the
// after hooks. Non-success results are reported on the error writer.
//
// The returned error is ErrQuit for q, quit and exit, or a prompt failure
// such as end of input. The code is the command's result.
func (d *Dispatcher) Dispatch(ctx context.Context, input string) (plugin.ErrorCode, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return plugin.ErrorCodeSuccess, nil
	}

	d.log.Info(input, "kind", "action")

	command, args := splitCommand(input)

	if isQuit(command) {
		return plugin.ErrorCodeSuccess, ErrQuit
	}

	if !d.isBuiltin(command) {
		if !d.plugins.IsPluginCommand(input) {
			d.report(plugin.ErrorCodeInvalidInput)

			return plugin.ErrorCodeInvalidInput, nil
		}

		command = pluginhost.CommandToken(input)
	}

	if code := d.plugins.BeforeCommand(command, args, d.packageManager); !code.IsSuccess() {
		d.log.Info("command blocked by plugin", "command", command, "code", code.String())
		d.plugins.AfterCommand(command, args, d.packageManager, code)
		d.report(code)

		return code, nil
	}

	start := d.now()

	code, err := d.run(ctx, command, args)

	d.log.Info("command finished",
		"command", command,
		"code", code.String(),
		"duration", durafmt.Parse(d.now().Sub(start)).LimitFirstN(durationDisplayUnits).String(),
	)

	d.plugins.AfterCommand(command, args, d.packageManager, code)

	if !code.IsSuccess() {
		d.report(code)
	}

	return code, err
}

func (d *Dispatcher) isBuiltin(command string) bool {
	switch command {
	case cmdHelp, cmdHelpLong, cmdConfig, cmdPlugin, cmdPlugins:
		return true
	}

	_, ok := pacman.Lookup(command)

	return ok
}

func (d *Dispatcher) run(ctx context.Context, command, args string) (plugin.ErrorCode, error) {
	switch command {
	case cmdHelp, cmdHelpLong:
		return d.help(args), nil
	case cmdConfig:
		return d.configure(args)
	case cmdPlugin, cmdPlugins:
		return d.managePlugins(args)
	}

	if b, ok := pacman.Lookup(command); ok {
		return d.runBuiltin(ctx, b, args)
	}

	return d.plugins.Execute(command, args, d.packageManager), nil
}

func (d *Dispatcher) runBuiltin(ctx context.Context, b pacman.Builtin, args string) (plugin.ErrorCode, error) {
	if args == "" && b.Prompt != "" {
		answer, err := d.prompter.Input(b.Prompt, "")
		if err != nil {
			if errors.Is(err, prompt.ErrEmptyInput) {
				return plugin.ErrorCodeInvalidInput, nil
			}

			return plugin.ErrorCodeInvalidInput, err
		}

		args = answer
	}

	req := pacman.Request{
		PackageManager: d.packageManager,
		Args:           args,
		CacheDir:       d.dirs.CacheDir,
		Now:            d.now(),
	}

	switch b.Token {
	case cmdOrphans:
		return d.removeOrphans(ctx, b, req), nil
	case cmdOwner:
		if _, err := os.Stat(args); err != nil {
			d.log.Debug("cannot stat file", "path", args, "error", err)

			return plugin.ErrorCodeFileNotFound, nil
		}
	}

	code := d.runLines(ctx, b, b.Lines(req))

	if code.IsSuccess() && b.Token == cmdBackup {
		fmt.Fprintln(d.out, d.theme.Success.Render("Backup created: "+pacman.BackupPath(req.Now)))
	}

	return code, nil
}

func (d *Dispatcher) removeOrphans(ctx context.Context, b pacman.Builtin, req pacman.Request) plugin.ErrorCode {
	var out strings.Builder

	result, err := d.runner.Run(ctx, pacman.OrphanQuery, &out, io.Discard)
	if err != nil {
		d.log.Error("failed to check for orphaned packages", "error", err)

		return plugin.ErrorCodeProcessFailed
	}

	// pacman -Qdtq exits 1 when there are no orphans.
	req.Args = pacman.ParseOrphans(out.String())
	if req.Args == "" || !result.Success() {
		fmt.Fprintln(d.out, d.theme.Success.Render("No orphaned packages found."))

		return plugin.ErrorCodeSuccess
	}

	return d.runLines(ctx, b, b.Lines(req))
}

// runLines runs each line in order and stops at the first failure.
func (d *Dispatcher) runLines(ctx context.Context, b pacman.Builtin, lines []string) plugin.ErrorCode {
	for _, line := range lines {
		result, err := d.runner.Run(ctx, line, d.out, d.errOut)
		if err != nil {
			d.log.Error("command could not run", "line", line, "error", err)

			return plugin.ErrorCodeProcessFailed
		}

		if !result.Success() {
			d.log.Error("command failed", "line", line, "exit", result.ExitCode)

			return b.FailureCode()
		}
	}

	if b.Action != "" {
		d.log.Info(b.Action, "kind", "action")
	}

	return plugin.ErrorCodeSuccess
}

// report prints the description of a failed result.
func (d *Dispatcher) report(code plugin.ErrorCode) {
	fmt.Fprintln(d.errOut, d.theme.Error.Render("Error: "+code.Description()))
}

// splitCommand separates the first token from the rest of a trimmed line.
func splitCommand(input string) (string, string) {
	end := strings.IndexFunc(input, unicode.IsSpace)
	if end == -1 {
		return input, ""
	}

	return input[:end], strings.TrimSpace(input[end:])
}

func isQuit(command string) bool {
	return slices.Contains(quitTokens, command)
}

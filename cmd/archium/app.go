package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"syscall"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/archium/archium/internal/color"
	internalconfig "github.com/archium/archium/internal/config"
	"github.com/archium/archium/internal/dispatcher"
	"github.com/archium/archium/internal/exec"
	"github.com/archium/archium/internal/pacman"
	internalplugin "github.com/archium/archium/internal/plugin"
	"github.com/archium/archium/internal/prompt"
	"github.com/archium/archium/internal/xdg"
	"github.com/archium/archium/pkg/config"
	"github.com/archium/archium/pkg/logger"
)

// app holds everything a CLI invocation shares.
type app struct {
	paths   *xdg.Paths
	loader  *internalconfig.Loader
	writer  *internalconfig.Writer
	cfg     *config.Config
	fileLog *logger.SlogAdapter
	log     logger.Logger
	theme   color.Theme
	runner  exec.ShellRunner
	plugins *internalplugin.Manager

	out    io.Writer
	errOut io.Writer

	packageManager string

	shutdownOnce sync.Once
}

// newApp resolves paths, loads configuration and opens the log file.
// Plugins are not loaded yet.
func newApp(cmd *cobra.Command) (*app, error) {
	paths, err := xdg.Resolve()
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve archium directories")
	}

	ensureErr := paths.Ensure()

	loader := internalconfig.NewLoaderWithFile(paths.ConfigFile)
	writer := internalconfig.NewWriter(loader)

	migrated, migrateErr := internalconfig.MigrateLegacyParu(writer, paths.LegacyParuMarker)

	cfg, err := loader.Load(flagValues(cmd))
	if err != nil {
		return nil, errors.Wrap(err, "failed to load configuration")
	}

	fileLog, err := logger.NewFileLogger(paths.LogFile, logger.LevelFromFlags(cfg.Verbose, debugFlag))
	if err != nil {
		return nil, errors.Wrap(err, "failed to open log file")
	}

	log := fileLog.With("session", uuid.NewString())

	if ensureErr != nil {
		log.Error("failed to create archium directories", "error", ensureErr)
	}

	if migrateErr != nil {
		log.Error("failed to migrate legacy paru marker", "error", migrateErr)
	} else if migrated {
		log.Info("migrated legacy paru marker", "marker", paths.LegacyParuMarker)
	}

	runner := exec.NewShellRunner(exec.WithStdin(os.Stdin), exec.WithLogger(log))

	a := &app{
		paths:   paths,
		loader:  loader,
		writer:  writer,
		cfg:     cfg,
		fileLog: fileLog,
		log:     log,
		theme:   color.NewTheme(color.Enabled(noColorFlag, os.Stdout)),
		runner:  runner,
		out:     os.Stdout,
		errOut:  os.Stderr,
	}

	a.plugins = a.newPluginManager()

	return a, nil
}

// flagValues returns the config-relevant flags the user actually set.
func flagValues(cmd *cobra.Command) map[string]any {
	flags := make(map[string]any)

	if cmd.Flags().Changed("verbose") {
		flags["verbose"] = verboseFlag
	}

	if cmd.Flags().Changed("plugin-dir") {
		flags["plugin-dir"] = pluginDirFlag
	}

	if cmd.Flags().Changed("no-plugins") {
		flags["no-plugins"] = noPluginsFlag
	}

	return flags
}

func (a *app) pluginDir() string {
	if dir := a.cfg.GetPlugins().Directory; dir != "" {
		return dir
	}

	return a.paths.PluginDir
}

func (a *app) newPluginManager() *internalplugin.Manager {
	pc := a.cfg.GetPlugins()

	contexts := &internalplugin.ContextBuilder{
		Verbose:   func() bool { return a.cfg.Verbose },
		ConfigDir: a.paths.ConfigDir,
		CacheDir:  a.paths.CacheDir,
		Runner:    a.runner,
	}

	return internalplugin.NewManager(
		internalplugin.WithDir(a.pluginDir()),
		internalplugin.WithContextBuilder(contexts),
		internalplugin.WithLoaderOptions(
			internalplugin.WithOpeners(internalplugin.DefaultOpeners(pc.IsLuaEnabled())),
			internalplugin.WithIgnore(pc.GetIgnore()),
		),
		internalplugin.WithLogger(a.log.With("component", "plugins")),
	)
}

// initPlugins loads plugins unless they are disabled. A failure leaves the
// session without plugins.
func (a *app) initPlugins() {
	if !a.cfg.GetPlugins().IsEnabled() {
		a.log.Debug("plugins disabled")

		return
	}

	if err := a.plugins.Init(); err != nil {
		a.log.Error("failed to initialize plugins", "error", err)
		fmt.Fprintln(a.errOut, a.theme.Warning.Render("Warning: plugins are unavailable: "+err.Error()))
	}
}

func (a *app) detectPackageManager() (string, error) {
	d := pacman.NewDetector(exec.NewToolChecker(), a.cfg.PreferredPackageManager(), a.log)

	return d.Detect()
}

func (a *app) prompter() prompt.Prompter {
	if a.cfg.BatchMode {
		return prompt.NewPrompter(strings.NewReader(""), a.out)
	}

	return prompt.NewPrompter(os.Stdin, a.out)
}

func (a *app) dispatcher(prompter prompt.Prompter) *dispatcher.Dispatcher {
	return dispatcher.New(a.plugins, a.runner, prompter,
		dispatcher.WithPackageManager(a.packageManager),
		dispatcher.WithDirs(dispatcher.Dirs{
			ConfigDir: a.paths.ConfigDir,
			CacheDir:  a.paths.CacheDir,
			LogFile:   a.paths.LogFile,
		}),
		dispatcher.WithPreferences(a.writer),
		dispatcher.WithOutput(a.out, a.errOut),
		dispatcher.WithTheme(a.theme),
		dispatcher.WithLogger(a.log),
	)
}

func (a *app) printBanner(ctx context.Context) {
	fmt.Fprintln(a.out, a.theme.Banner.Render("Welcome to Archium "+version))
	fmt.Fprintf(a.out, "Package manager: %s %s\n",
		a.theme.Name.Render(a.packageManager),
		pacman.Version(ctx, a.runner, a.packageManager),
	)
	fmt.Fprintln(a.out, a.theme.Muted.Render(`Type "h" for help or "q" to quit.`))
}

// exitSignals end a session. Receiving one only cancels the session context;
// exit hooks and plugin cleanup run on the main goroutine after the command
// in flight returns.
var exitSignals = []os.Signal{os.Interrupt, syscall.SIGTERM, syscall.SIGABRT}

// interrupted reports whether an exit signal ended the session and, if so,
// leaves the terminal on a fresh line.
func (a *app) interrupted(ctx context.Context) bool {
	if ctx.Err() == nil {
		return false
	}

	a.log.Info("received exit signal")
	fmt.Fprintln(a.out)

	return true
}

// shutdown notifies on-exit hooks, unloads plugins and closes the log.
// Only the first call has an effect.
func (a *app) shutdown() {
	a.shutdownOnce.Do(func() {
		a.plugins.NotifyExit("", "", a.packageManager)

		if err := a.plugins.Close(); err != nil {
			a.log.Error("failed to unload plugins", "error", err)
		}

		if err := a.fileLog.Close(); err != nil {
			fmt.Fprintf(a.errOut, "Warning: failed to close log file: %v\n", err)
		}
	})
}

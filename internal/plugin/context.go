package plugin

import (
	"io"

	"github.com/archium/archium/internal/exec"
	"github.com/archium/archium/pkg/logger"
	"github.com/archium/archium/pkg/plugin"
)

// ContextBuilder produces the context handed to plugin entry points.
// Directory fields left empty stay empty in every context; plugins must
// tolerate that.
type ContextBuilder struct {
	// Verbose reports the current verbosity. It is read on every Base call
	// so that changes between dispatches are visible.
	Verbose func() bool

	ConfigDir string
	PluginDir string
	CacheDir  string

	Logger logger.Logger
	Runner exec.ShellRunner
}

// Base returns a context holding process-wide state only.
func (b *ContextBuilder) Base() *plugin.Context {
	ctx := &plugin.Context{
		ConfigDir: b.ConfigDir,
		PluginDir: b.PluginDir,
		CacheDir:  b.CacheDir,
	}

	if b.Verbose != nil {
		ctx.Verbose = b.Verbose()
	}

	if b.Logger != nil {
		log := b.Logger.With("source", "plugin")

		ctx.LogInfo = func(message string) {
			log.Info(message)
		}
		ctx.LogDebug = func(message string) {
			log.Debug(message)
		}
		ctx.LogAction = func(message string) {
			log.Info(message, "kind", "action")
		}
		ctx.LogError = func(message string, code plugin.ErrorCode) {
			log.Error(message, "code", code.String())
		}
	}

	if b.Runner != nil {
		runner := b.Runner

		ctx.RunCommand = func(command string, output io.Writer) int {
			return exec.RunCommand(runner, command, output)
		}
	}

	return ctx
}

// Fill returns a fresh base context with the per-invocation fields set.
func (b *ContextBuilder) Fill(command, args, packageManager string) *plugin.Context {
	ctx := b.Base()
	ctx.Command = command
	ctx.Args = args
	ctx.PackageManager = packageManager

	return ctx
}

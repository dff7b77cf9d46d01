package plugin

import "io"

// Context is the read-only view of archium handed to every entry point.
// It is valid only for the duration of the call that received it; plugins
// must not retain it.
//
// Command, Args and PackageManager are empty when the entry point is invoked
// outside a specific command (for example Init). Directory fields are empty
// when archium could not resolve them. Callbacks may be nil; the helper
// methods below are safe to use in either case.
type Context struct {
	// PackageManager is the active package manager ("yay", "paru" or "pacman").
	PackageManager string

	// Command is the command token being executed.
	Command string

	// Args are the arguments that followed the command token.
	Args string

	// Verbose mirrors the global verbose setting.
	Verbose bool

	// ConfigDir is the archium configuration directory.
	ConfigDir string

	// PluginDir is the directory plugins are loaded from.
	PluginDir string

	// CacheDir is the archium cache directory.
	CacheDir string

	// LogInfo writes an info-level entry to the archium log.
	LogInfo func(message string)

	// LogDebug writes a debug-level entry to the archium log.
	LogDebug func(message string)

	// LogAction records a user-visible action in the archium log.
	LogAction func(message string)

	// LogError writes an error-level entry carrying an error code.
	LogError func(message string, code ErrorCode)

	// RunCommand executes a shell command line, writes its combined output to
	// output and returns the exit status.
	RunCommand func(command string, output io.Writer) int
}

// Info logs through LogInfo when it is set.
func (c *Context) Info(message string) {
	if c != nil && c.LogInfo != nil {
		c.LogInfo(message)
	}
}

// Debug logs through LogDebug when it is set.
func (c *Context) Debug(message string) {
	if c != nil && c.LogDebug != nil {
		c.LogDebug(message)
	}
}

// Action logs through LogAction when it is set.
func (c *Context) Action(message string) {
	if c != nil && c.LogAction != nil {
		c.LogAction(message)
	}
}

// Error logs through LogError when it is set.
func (c *Context) Error(message string, code ErrorCode) {
	if c != nil && c.LogError != nil {
		c.LogError(message, code)
	}
}

// Run executes command through RunCommand. It returns -1 when no runner is
// available.
func (c *Context) Run(command string, output io.Writer) int {
	if c == nil || c.RunCommand == nil {
		return -1
	}

	if output == nil {
		output = io.Discard
	}

	return c.RunCommand(command, output)
}

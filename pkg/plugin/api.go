// Package plugin provides the public API for archium plugin authors.
//
// A plugin adds one command to the archium prompt and may hook into the
// lifecycle of every other command. Plugins can be written as:
//   - Go plugins (.so files built with -buildmode=plugin)
//   - Lua scripts (.lua files interpreted in-process)
//
// Both kinds export the same set of entry points, resolved by name at load
// time. GetName, GetCommand, GetDescription and Execute are required; the rest
// are optional and their absence means the plugin does not take part in that
// lifecycle stage.
//
// Example Go plugin:
//
//	package main
//
//	import "github.com/archium/archium/pkg/plugin"
//
//	func GetName() string        { return "Hello Plugin" }
//	func GetCommand() string     { return "hello" }
//	func GetDescription() string { return "A hello world plugin" }
//	func GetAPIVersion() int     { return plugin.APIVersion }
//
//	func Execute(args, packageManager string) plugin.ErrorCode {
//		fmt.Println("Hello from Archium!")
//		return plugin.ErrorCodeSuccess
//	}
//
// Build it with:
//
//	go build -buildmode=plugin -o hello.so hello.go
package plugin

// APIVersion is the current plugin API version. Plugins reporting a lower
// version are still loaded.
const APIVersion = 2

// Bounds on the metadata a plugin reports. Values must be strictly shorter.
const (
	// MaxNameLength bounds the plugin name.
	MaxNameLength = 64

	// MaxCommandLength bounds the command token.
	MaxCommandLength = 32

	// MaxDescriptionLength bounds the description.
	MaxDescriptionLength = 256
)

// Exported symbol names looked up in every plugin module.
const (
	SymbolGetName        = "GetName"
	SymbolGetCommand     = "GetCommand"
	SymbolGetDescription = "GetDescription"
	SymbolExecute        = "Execute"
	SymbolGetAPIVersion  = "GetAPIVersion"
	SymbolInit           = "Init"
	SymbolBeforeCommand  = "BeforeCommand"
	SymbolAfterCommand   = "AfterCommand"
	SymbolOnExit         = "OnExit"
	SymbolCleanup        = "Cleanup"
)

// StringFunc is the signature of the name, command and description getters.
type StringFunc = func() string

// ExecuteFunc runs the plugin command.
type ExecuteFunc = func(args, packageManager string) ErrorCode

// APIVersionFunc reports the API version the plugin was built against.
type APIVersionFunc = func() int

// InitFunc is called once after the plugin is admitted.
type InitFunc = func(ctx *Context)

// BeforeCommandFunc runs before any command. A non-success result aborts the
// command and the remaining before hooks.
type BeforeCommandFunc = func(ctx *Context) ErrorCode

// AfterCommandFunc observes the result of a finished command.
type AfterCommandFunc = func(ctx *Context, result ErrorCode)

// OnExitFunc is called once during graceful shutdown.
type OnExitFunc = func(ctx *Context)

// CleanupFunc releases plugin resources before the module is closed.
type CleanupFunc = func()

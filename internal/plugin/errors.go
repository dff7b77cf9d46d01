package plugin

import "github.com/cockroachdb/errors"

// Sentinel errors reported by the plugin subsystem.
var (
	// ErrConfigUnavailable is returned when the plugin directory cannot be resolved.
	ErrConfigUnavailable = errors.New("plugin directory unavailable")

	// ErrInvalidExtension is returned when the plugin file extension is not accepted.
	ErrInvalidExtension = errors.New("invalid plugin file extension")

	// ErrPathTraversal is returned when path traversal patterns are detected.
	ErrPathTraversal = errors.New("path traversal detected")

	// ErrSymbolNotFound is returned by Module.Lookup for absent symbols.
	ErrSymbolNotFound = errors.New("symbol not found")

	// ErrMissingSymbol is returned when a required entry point is absent.
	ErrMissingSymbol = errors.New("required symbol missing")

	// ErrSymbolType is returned when a symbol has an unexpected signature.
	ErrSymbolType = errors.New("symbol has unexpected type")

	// ErrEmptyValue is returned when a metadata getter returns an empty string.
	ErrEmptyValue = errors.New("empty plugin metadata")

	// ErrValueTooLong is returned when metadata exceeds its bound.
	ErrValueTooLong = errors.New("plugin metadata too long")

	// ErrDuplicateCommand is returned when the command is already registered.
	ErrDuplicateCommand = errors.New("plugin command already registered")

	// ErrRegistryFull is returned when the registry holds MaxPlugins records.
	ErrRegistryFull = errors.New("plugin registry full")

	// ErrModuleClosed is returned when a closed module is used.
	ErrModuleClosed = errors.New("plugin module closed")

	// ErrManagerClosed is returned by operations on a closed manager.
	ErrManagerClosed = errors.New("plugin manager closed")

	// ErrPluginPanic wraps a panic raised by plugin code.
	ErrPluginPanic = errors.New("plugin panicked")
)

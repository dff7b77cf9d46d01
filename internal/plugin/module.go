// Package plugin provides internal plugin loading and execution infrastructure.
package plugin

//go:generate mockgen -source=module.go -destination=module_mock.go -package=plugin

import (
	goplugin "plugin"
	"sync"

	"github.com/cockroachdb/errors"
)

// Module is a loaded extension module whose entry points are resolved by name.
// The record that admits a module owns it exclusively until Close.
type Module interface {
	// Path returns the file the module was loaded from.
	Path() string

	// Lookup resolves an exported symbol. Absent symbols yield an error
	// wrapping ErrSymbolNotFound.
	Lookup(symbol string) (any, error)

	// Close releases the module. Entry points must not be called afterwards.
	Close() error
}

// Opener opens the module stored at path.
type Opener func(path string) (Module, error)

// Accepted module suffixes.
const (
	ExtGoPlugin = ".so"
	ExtLua      = ".lua"
)

// DefaultOpeners returns the opener for every supported suffix.
func DefaultOpeners(lua bool) map[string]Opener {
	openers := map[string]Opener{
		ExtGoPlugin: OpenGoModule,
	}

	if lua {
		openers[ExtLua] = OpenLuaModule
	}

	return openers
}

// goModule wraps a native Go plugin.
//
// The Go runtime cannot unload plugins, so Close only marks the module
// released; lookups fail afterwards.
type goModule struct {
	mu     sync.Mutex
	path   string
	plugin *goplugin.Plugin
	closed bool
}

// OpenGoModule opens a Go plugin built with -buildmode=plugin.
//
//nolint:ireturn // Opener signature
func OpenGoModule(path string) (Module, error) {
	p, err := goplugin.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open Go plugin")
	}

	return &goModule{path: path, plugin: p}, nil
}

// Path returns the plugin file path.
func (m *goModule) Path() string {
	return m.path
}

// Lookup resolves an exported function or variable.
func (m *goModule) Lookup(symbol string) (any, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return nil, ErrModuleClosed
	}

	sym, err := m.plugin.Lookup(symbol)
	if err != nil {
		return nil, errors.Wrapf(ErrSymbolNotFound, "%s: %v", symbol, err)
	}

	return sym, nil
}

// Close marks the module released.
func (m *goModule) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.closed = true

	return nil
}

package plugin

import (
	"sync"

	"github.com/cockroachdb/errors"

	"github.com/archium/archium/pkg/logger"
	"github.com/archium/archium/pkg/plugin"
)

// DirResolver returns the plugin directory.
type DirResolver func() (string, error)

// Manager owns the plugin registry and is the interface the command
// dispatcher uses: loading, lookup, execution, lifecycle hooks and teardown.
//
// Entry points run synchronously on the caller's goroutine while holding the
// mutex, so no two plugin calls overlap and none runs once Close has begun.
type Manager struct {
	mu sync.Mutex

	registry *Registry
	contexts *ContextBuilder
	resolve  DirResolver
	loadOpts []LoaderOption
	log      logger.Logger

	dir    string
	closed bool
}

// ManagerOption configures a Manager.
type ManagerOption func(*Manager)

// WithDirResolver sets how Init finds the plugin directory.
func WithDirResolver(resolve DirResolver) ManagerOption {
	return func(m *Manager) {
		m.resolve = resolve
	}
}

// WithDir makes Init load from dir.
func WithDir(dir string) ManagerOption {
	return WithDirResolver(func() (string, error) {
		return ResolveDir(dir)
	})
}

// WithContextBuilder sets the builder for entry point contexts.
func WithContextBuilder(b *ContextBuilder) ManagerOption {
	return func(m *Manager) {
		m.contexts = b
	}
}

// WithLoaderOptions passes options to the Loader created by Init.
func WithLoaderOptions(opts ...LoaderOption) ManagerOption {
	return func(m *Manager) {
		m.loadOpts = append(m.loadOpts, opts...)
	}
}

// WithLogger sets the logger.
func WithLogger(log logger.Logger) ManagerOption {
	return func(m *Manager) {
		m.log = log
	}
}

// NewManager creates a Manager with an empty registry. Nothing is loaded
// until Init.
func NewManager(opts ...ManagerOption) *Manager {
	m := &Manager{
		registry: NewRegistry(),
		contexts: &ContextBuilder{},
		log:      logger.NewNoOpLogger(),
		resolve: func() (string, error) {
			return "", errors.New("no plugin directory configured")
		},
	}

	for _, opt := range opts {
		opt(m)
	}

	if m.contexts.Logger == nil {
		m.contexts.Logger = m.log
	}

	return m
}

// Init resolves the plugin directory and loads every valid module in it.
// A missing directory is not an error; an unresolvable one returns
// ErrConfigUnavailable. Init also reopens a closed Manager.
func (m *Manager) Init() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	dir, err := m.resolve()
	if err != nil {
		return errors.Mark(errors.Wrap(err, "failed to resolve plugin directory"), ErrConfigUnavailable)
	}

	m.dir = dir
	m.closed = false

	if m.contexts.PluginDir == "" {
		m.contexts.PluginDir = dir
	}

	opts := append([]LoaderOption{WithLoaderLogger(m.log)}, m.loadOpts...)
	loader := NewLoader(m.contexts, opts...)

	if err := loader.Load(m.registry, dir); err != nil {
		return err
	}

	m.log.Debug("plugins initialized", "dir", dir, "count", m.registry.Len())

	return nil
}

// Dir returns the plugin directory resolved by the last Init.
func (m *Manager) Dir() string {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.dir
}

// Records returns the loaded plugins in registration order.
func (m *Manager) Records() []*Record {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.registry.Records()
}

// Len returns the number of loaded plugins.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.registry.Len()
}

// IsPluginCommand reports whether the first token of input is a plugin command.
func (m *Manager) IsPluginCommand(input string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.registry.IsPluginCommand(input)
}

// Execute runs the plugin registered for command. Unknown commands yield
// ErrorCodeInvalidInput; otherwise the plugin's result is returned as is.
// A panicking plugin yields ErrorCodePlugin.
func (m *Manager) Execute(command, args, packageManager string) plugin.ErrorCode {
	m.mu.Lock()
	defer m.mu.Unlock()

	rec := m.registry.Get(m.registry.FindByCommand(command))
	if rec == nil {
		return plugin.ErrorCodeInvalidInput
	}

	result := plugin.ErrorCodeSuccess

	if err := protect(func() { result = rec.Execute(args, packageManager) }); err != nil {
		m.log.Error("plugin panicked", "plugin", rec.Command, "error", err)

		return plugin.ErrorCodePlugin
	}

	return result
}

// Close calls every Cleanup entry point, closes every module and empties the
// registry. Calling it again is a no-op. It returns the module close errors.
func (m *Manager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return nil
	}

	m.closed = true

	var errs []error

	for _, rec := range m.registry.records {
		if rec.Cleanup != nil {
			if err := protect(rec.Cleanup); err != nil {
				m.log.Error("plugin cleanup panicked", "plugin", rec.Command, "error", err)
			}
		}

		if rec.Module == nil {
			continue
		}

		if err := rec.Module.Close(); err != nil {
			errs = append(errs, errors.Wrapf(err, "closing %s", rec.Path()))
		}
	}

	count := m.registry.Len()
	m.registry.reset()

	m.log.Debug("plugins unloaded", "count", count)

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}

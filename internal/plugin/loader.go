package plugin

import (
	"os"
	"path/filepath"
	"slices"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/cockroachdb/errors"

	"github.com/archium/archium/pkg/logger"
	"github.com/archium/archium/pkg/plugin"
)

// Loader scans a plugin directory and admits well-formed modules into a
// Registry.
type Loader struct {
	openers  map[string]Opener
	ignore   []string
	contexts *ContextBuilder
	log      logger.Logger
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithOpeners replaces the suffix to opener map.
func WithOpeners(openers map[string]Opener) LoaderOption {
	return func(l *Loader) {
		l.openers = openers
	}
}

// WithIgnore sets glob patterns for file names that are never opened.
func WithIgnore(patterns []string) LoaderOption {
	return func(l *Loader) {
		l.ignore = patterns
	}
}

// WithLoaderLogger sets the logger.
func WithLoaderLogger(log logger.Logger) LoaderOption {
	return func(l *Loader) {
		l.log = log
	}
}

// NewLoader creates a Loader that builds init contexts with contexts.
func NewLoader(contexts *ContextBuilder, opts ...LoaderOption) *Loader {
	l := &Loader{
		openers:  DefaultOpeners(true),
		contexts: contexts,
		log:      logger.NewNoOpLogger(),
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Extensions returns the accepted file suffixes.
func (l *Loader) Extensions() []string {
	exts := make([]string, 0, len(l.openers))
	for ext := range l.openers {
		exts = append(exts, ext)
	}

	slices.Sort(exts)

	return exts
}

// Load admits every valid module in dir into reg. Entries are visited in
// the order the filesystem returns them. A missing or unreadable directory
// means zero plugins. Rejected modules are closed and logged at debug level.
// Admission stops silently once reg is full.
func (l *Loader) Load(reg *Registry, dir string) error {
	f, err := os.Open(dir)
	if err != nil {
		if os.IsNotExist(err) {
			l.log.Debug("plugin directory does not exist", "dir", dir)
		} else {
			l.log.Debug("cannot open plugin directory", "dir", dir, "error", err)
		}

		return nil
	}
	defer f.Close()

	// File.ReadDir keeps directory order; os.ReadDir would sort by name.
	entries, err := f.ReadDir(-1)
	if err != nil {
		l.log.Debug("error reading plugin directory", "dir", dir, "error", err)
	}

	extensions := l.Extensions()

	for _, entry := range entries {
		if reg.IsFull() {
			break
		}

		if !entry.Type().IsRegular() {
			continue
		}

		name := entry.Name()
		if ValidateExtension(name, extensions) != nil {
			continue
		}

		if l.isIgnored(name) {
			l.log.Debug("ignoring plugin file", "file", name)

			continue
		}

		l.admit(reg, filepath.Join(dir, name))
	}

	return nil
}

func (l *Loader) isIgnored(name string) bool {
	for _, pattern := range l.ignore {
		if ok, err := doublestar.Match(pattern, name); err == nil && ok {
			return true
		}
	}

	return false
}

func (l *Loader) admit(reg *Registry, path string) {
	open := l.openers[filepath.Ext(path)]
	if open == nil {
		l.log.Debug("no opener for plugin file", "path", path)

		return
	}

	mod, err := open(path)
	if err != nil {
		l.log.Debug("failed to load plugin", "path", path, "error", err)

		return
	}

	rec, err := resolveRecord(mod)
	if err == nil {
		err = reg.Add(rec)
	}

	if err != nil {
		l.log.Debug("rejected plugin", "path", path, "error", err)

		if closeErr := mod.Close(); closeErr != nil {
			l.log.Debug("failed to close rejected plugin", "path", path, "error", closeErr)
		}

		return
	}

	l.log.Info("loaded plugin", "name", rec.Name, "command", rec.Command, "path", path)

	if rec.IsLegacy() {
		l.log.Debug("plugin uses legacy API version",
			"command", rec.Command,
			"version", rec.APIVersion,
			"current", plugin.APIVersion,
		)
	}

	if rec.Init != nil {
		ctx := l.contexts.Fill("", "", "")
		if err := protect(func() { rec.Init(ctx) }); err != nil {
			l.log.Debug("plugin init failed", "command", rec.Command, "error", err)
		}
	}
}

// resolveRecord checks the symbol contract of mod and builds its record.
// All required symbols resolve before any of them is called.
func resolveRecord(mod Module) (*Record, error) {
	rec := &Record{Module: mod}

	getName, err := required[plugin.StringFunc](mod, plugin.SymbolGetName)
	if err != nil {
		return nil, err
	}

	getCommand, err := required[plugin.StringFunc](mod, plugin.SymbolGetCommand)
	if err != nil {
		return nil, err
	}

	getDescription, err := required[plugin.StringFunc](mod, plugin.SymbolGetDescription)
	if err != nil {
		return nil, err
	}

	if rec.Execute, err = required[plugin.ExecuteFunc](mod, plugin.SymbolExecute); err != nil {
		return nil, err
	}

	if rec.Name, err = metadata(getName, plugin.SymbolGetName, plugin.MaxNameLength); err != nil {
		return nil, err
	}

	if rec.Command, err = metadata(getCommand, plugin.SymbolGetCommand, plugin.MaxCommandLength); err != nil {
		return nil, err
	}

	if rec.Description, err = metadata(getDescription, plugin.SymbolGetDescription, plugin.MaxDescriptionLength); err != nil {
		return nil, err
	}

	getVersion, err := optional[plugin.APIVersionFunc](mod, plugin.SymbolGetAPIVersion)
	if err != nil {
		return nil, err
	}

	if getVersion != nil {
		if err := protect(func() { rec.APIVersion = getVersion() }); err != nil {
			return nil, errors.Wrap(err, plugin.SymbolGetAPIVersion)
		}
	}

	if rec.Init, err = optional[plugin.InitFunc](mod, plugin.SymbolInit); err != nil {
		return nil, err
	}

	if rec.BeforeCommand, err = optional[plugin.BeforeCommandFunc](mod, plugin.SymbolBeforeCommand); err != nil {
		return nil, err
	}

	if rec.AfterCommand, err = optional[plugin.AfterCommandFunc](mod, plugin.SymbolAfterCommand); err != nil {
		return nil, err
	}

	if rec.OnExit, err = optional[plugin.OnExitFunc](mod, plugin.SymbolOnExit); err != nil {
		return nil, err
	}

	if rec.Cleanup, err = optional[plugin.CleanupFunc](mod, plugin.SymbolCleanup); err != nil {
		return nil, err
	}

	return rec, nil
}

// metadata calls a string getter and checks its result is non-empty and
// strictly shorter than limit bytes.
func metadata(get plugin.StringFunc, symbol string, limit int) (string, error) {
	var value string
	if err := protect(func() { value = get() }); err != nil {
		return "", errors.Wrap(err, symbol)
	}

	if value == "" {
		return "", errors.Wrapf(ErrEmptyValue, "%s returned an empty string", symbol)
	}

	if len(value) >= limit {
		return "", errors.Wrapf(ErrValueTooLong, "%s returned %d bytes, limit %d", symbol, len(value), limit-1)
	}

	return value, nil
}

func required[T any](mod Module, symbol string) (T, error) {
	fn, found, err := lookup[T](mod, symbol)
	if err != nil {
		return fn, err
	}

	if !found {
		return fn, errors.Wrapf(ErrMissingSymbol, "%s", symbol)
	}

	return fn, nil
}

func optional[T any](mod Module, symbol string) (T, error) {
	fn, _, err := lookup[T](mod, symbol)

	return fn, err
}

// lookup resolves symbol as a T. Exported functions resolve to T and
// exported variables to *T; both are accepted.
func lookup[T any](mod Module, symbol string) (T, bool, error) {
	var zero T

	sym, err := mod.Lookup(symbol)
	if err != nil {
		if errors.Is(err, ErrSymbolNotFound) {
			return zero, false, nil
		}

		return zero, false, err
	}

	switch fn := sym.(type) {
	case T:
		return fn, true, nil
	case *T:
		if fn != nil {
			return *fn, true, nil
		}
	}

	return zero, false, errors.Wrapf(ErrSymbolType, "%s has type %T, want %T", symbol, sym, zero)
}

package plugin_test

import (
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	. "github.com/onsi/gomega"

	"github.com/archium/archium/internal/plugin"
	api "github.com/archium/archium/pkg/plugin"
)

var errOpenFailed = errors.New("open failed")

// fakeModule serves symbols from a map.
type fakeModule struct {
	path    string
	symbols map[string]any
	closed  int
}

func (f *fakeModule) Path() string {
	return f.path
}

func (f *fakeModule) Lookup(symbol string) (any, error) {
	sym, ok := f.symbols[symbol]
	if !ok {
		return nil, errors.Wrapf(plugin.ErrSymbolNotFound, "%s", symbol)
	}

	return sym, nil
}

func (f *fakeModule) Close() error {
	f.closed++

	return nil
}

// validSymbols returns the required entry points for a plugin answering to
// command.
func validSymbols(command string) map[string]any {
	return map[string]any{
		api.SymbolGetName:        func() string { return "Hello Plugin" },
		api.SymbolGetCommand:     func() string { return command },
		api.SymbolGetDescription: func() string { return "A hello world plugin" },
		api.SymbolExecute: func(string, string) api.ErrorCode {
			return api.ErrorCodeSuccess
		},
	}
}

// fakeDir maps file names in a plugin directory to fake modules.
type fakeDir struct {
	dir     string
	modules map[string]*fakeModule
	opened  []string
}

func newFakeDir(dir string) *fakeDir {
	return &fakeDir{dir: dir, modules: map[string]*fakeModule{}}
}

// add creates file name in the directory and serves symbols for it.
func (d *fakeDir) add(name string, symbols map[string]any) *fakeModule {
	path := filepath.Join(d.dir, name)
	Expect(os.WriteFile(path, []byte("module"), 0o600)).To(Succeed())

	mod := &fakeModule{path: path, symbols: symbols}
	d.modules[name] = mod

	return mod
}

func (d *fakeDir) open(path string) (plugin.Module, error) {
	d.opened = append(d.opened, filepath.Base(path))

	mod, ok := d.modules[filepath.Base(path)]
	if !ok {
		return nil, errOpenFailed
	}

	return mod, nil
}

func (d *fakeDir) openers() map[string]plugin.Opener {
	return map[string]plugin.Opener{plugin.ExtGoPlugin: d.open}
}

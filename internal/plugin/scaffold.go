package plugin

import (
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"

	"github.com/archium/archium/internal/templates"
	"github.com/archium/archium/internal/xdg"
	"github.com/archium/archium/pkg/plugin"
)

// APIPackage is the import path plugin sources compile against.
const APIPackage = "github.com/archium/archium/pkg/plugin"

// Scaffolded file names.
const (
	ExampleSource   = "example.go"
	ExampleMakefile = "Makefile"
)

const scaffoldFileMode = 0o644

// CreateExample writes an example plugin source file and a Makefile into the
// plugin directory and returns the directory. Existing files are replaced.
// A closed Manager returns ErrManagerClosed until Init reopens it.
func (m *Manager) CreateExample() (string, error) {
	m.mu.Lock()
	closed, dir := m.closed, m.dir
	m.mu.Unlock()

	if closed {
		return "", ErrManagerClosed
	}

	if dir == "" {
		resolved, err := m.resolve()
		if err != nil {
			return "", errors.Mark(errors.Wrap(err, "failed to resolve plugin directory"), ErrConfigUnavailable)
		}

		dir = resolved
	}

	if err := xdg.EnsureDir(dir); err != nil {
		return "", err
	}

	data := templates.PluginExample{
		Package:     APIPackage,
		Name:        "Example Plugin",
		Command:     "example",
		Description: "An example plugin",
		APIVersion:  plugin.APIVersion,
		Output:      "example" + ExtGoPlugin,
	}

	files := []struct {
		name    string
		content string
	}{
		{ExampleSource, templates.MustExecute(templates.PluginSourceTemplate, data)},
		{ExampleMakefile, templates.MustExecute(templates.PluginMakefileTemplate, data)},
	}

	for _, f := range files {
		path := filepath.Join(dir, f.name)
		if err := os.WriteFile(path, []byte(f.content), scaffoldFileMode); err != nil {
			return "", errors.Wrapf(err, "failed to write %s", path)
		}
	}

	m.log.Info("created example plugin", "dir", dir)

	return dir, nil
}

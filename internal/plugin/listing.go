package plugin

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/archium/archium/internal/color"
)

// helpCommandWidth is the display width command tokens are padded to in help.
const helpCommandWidth = 12

// Summary is the serializable view of a loaded plugin.
type Summary struct {
	Command     string   `json:"command" yaml:"command"`
	Name        string   `json:"name" yaml:"name"`
	Description string   `json:"description" yaml:"description"`
	APIVersion  int      `json:"api_version,omitempty" yaml:"api_version,omitempty"`
	Path        string   `json:"path" yaml:"path"`
	Hooks       []string `json:"hooks,omitempty" yaml:"hooks,omitempty"`
}

// Summaries returns a Summary per loaded plugin in registration order.
func (m *Manager) Summaries() []Summary {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]Summary, 0, m.registry.Len())

	for _, rec := range m.registry.records {
		out = append(out, Summary{
			Command:     rec.Command,
			Name:        rec.Name,
			Description: rec.Description,
			APIVersion:  rec.APIVersion,
			Path:        rec.Path(),
			Hooks:       rec.Hooks(),
		})
	}

	return out
}

// Hooks lists the optional entry points the plugin provides.
func (r *Record) Hooks() []string {
	var hooks []string

	for _, h := range []struct {
		name    string
		present bool
	}{
		{"init", r.Init != nil},
		{"before_command", r.BeforeCommand != nil},
		{"after_command", r.AfterCommand != nil},
		{"on_exit", r.OnExit != nil},
		{"cleanup", r.Cleanup != nil},
	} {
		if h.present {
			hooks = append(hooks, h.name)
		}
	}

	return hooks
}

// ListLoaded writes a table of the loaded plugins, or a notice when none
// are loaded.
func (m *Manager) ListLoaded(w io.Writer, theme color.Theme) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.registry.Len() == 0 {
		_, err := fmt.Fprintln(w, theme.Warning.Render("No plugins loaded."))

		return err
	}

	var buf bytes.Buffer

	t := tablewriter.NewTable(&buf,
		tablewriter.WithRenderer(renderer.NewBlueprint(tw.Rendition{
			Symbols: tw.NewSymbols(tw.StyleRounded),
		})),
		tablewriter.WithPadding(tw.Padding{Left: " ", Right: " "}),
	)

	t.Header([]string{"Command", "Name", "Description", "API", "Path"})

	for _, rec := range m.registry.records {
		version := "-"
		if rec.APIVersion != 0 {
			version = strconv.Itoa(rec.APIVersion)
		}

		if err := t.Append([]string{rec.Command, rec.Name, rec.Description, version, rec.Path()}); err != nil {
			return err
		}
	}

	if err := t.Render(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "%s\n%s\n",
		theme.Heading.Render("Loaded plugins:"),
		strings.TrimRight(buf.String(), "\n"),
	)

	return err
}

// DisplayHelp writes one "command - description" line per plugin under a
// heading. Nothing is written when no plugins are loaded.
func (m *Manager) DisplayHelp(w io.Writer, theme color.Theme) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.registry.Len() == 0 {
		return nil
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(theme.Warning.Render("Plugin commands:"))
	b.WriteString("\n")

	for _, rec := range m.registry.records {
		pad := max(helpCommandWidth-runewidth.StringWidth(rec.Command), 0)

		b.WriteString(theme.Command.Render(rec.Command))
		b.WriteString(strings.Repeat(" ", pad))
		b.WriteString(" - ")
		b.WriteString(rec.Description)
		b.WriteString("\n")
	}

	_, err := io.WriteString(w, b.String())

	return err
}

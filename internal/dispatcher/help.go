package dispatcher

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/archium/archium/internal/pacman"
	"github.com/archium/archium/internal/templates"
	"github.com/archium/archium/pkg/plugin"
)

// Help topics besides categories and command tokens.
const topicQuick = "quick"

var sectionTitles = map[string]string{
	pacman.CategoryPackages: "Package management",
	pacman.CategorySystem:   "System maintenance",
	pacman.CategoryInfo:     "Information",
	pacman.CategoryConfig:   "Configuration",
}

// sessionEntries are the commands the dispatcher implements itself.
var sessionEntries = []templates.HelpEntry{
	{Token: cmdConfig, Description: "Configure preferences"},
	{Token: cmdPlugin, Description: "Manage plugins (list, dir, example)"},
	{Token: "h [topic]", Description: "Show help for a category, a command or \"quick\""},
	{Token: "q", Description: "Quit archium"},
}

func (d *Dispatcher) help(topic string) plugin.ErrorCode {
	switch {
	case topic == "":
		d.writeHelp(pacman.Categories...)

		if err := d.plugins.DisplayHelp(d.out, d.theme); err != nil {
			d.log.Error("failed to display plugin help", "error", err)
		}

		return plugin.ErrorCodeSuccess
	case topic == topicQuick:
		fmt.Fprintln(d.out, quickHelp())

		return plugin.ErrorCodeSuccess
	case slices.Contains(pacman.Categories, topic):
		d.writeHelp(topic)

		return plugin.ErrorCodeSuccess
	}

	if b, ok := pacman.Lookup(topic); ok {
		fmt.Fprintf(d.out, "%s - %s\n", d.theme.Command.Render(b.Token), b.Description)

		return plugin.ErrorCodeSuccess
	}

	for _, e := range sessionEntries {
		if strings.Fields(e.Token)[0] == topic {
			fmt.Fprintf(d.out, "%s - %s\n", d.theme.Command.Render(e.Token), e.Description)

			return plugin.ErrorCodeSuccess
		}
	}

	fmt.Fprintf(d.out, "No help available for %q.\n", topic)

	return plugin.ErrorCodeInvalidCommand
}

func (d *Dispatcher) writeHelp(categories ...string) {
	page := templates.HelpPage{}
	if len(categories) > 1 {
		page.Header = d.theme.Heading.Render("Archium commands:")
	}

	for _, category := range categories {
		section := templates.HelpSection{Title: d.theme.Warning.Render(sectionTitles[category] + ":")}

		for _, b := range pacman.Builtins() {
			if b.Category == category {
				section.Entries = append(section.Entries, templates.HelpEntry{Token: b.Token, Description: b.Description})
			}
		}

		if category == pacman.CategoryConfig {
			section.Entries = append(section.Entries, sessionEntries...)
		}

		page.Sections = append(page.Sections, section)
	}

	text, err := templates.Execute(templates.HelpTemplate, page)
	if err != nil {
		d.log.Error("failed to render help", "error", err)

		return
	}

	_, _ = io.WriteString(d.out, text)
}

func quickHelp() string {
	tokens := make([]string, 0, len(pacman.Builtins())+len(sessionEntries))
	for _, b := range pacman.Builtins() {
		tokens = append(tokens, b.Token)
	}

	for _, e := range sessionEntries {
		tokens = append(tokens, strings.Fields(e.Token)[0])
	}

	return strings.Join(tokens, " ")
}

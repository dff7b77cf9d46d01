// Package color decides whether archium output is colored and holds the
// lipgloss styles used for it.
package color

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Mode is the color choice derived from flags and environment.
type Mode int

const (
	// ModeAuto colors output written to a terminal.
	ModeAuto Mode = iota
	// ModeNever disables color.
	ModeNever
	// ModeAlways colors output even when it is piped.
	ModeAlways
)

// ModeFromEnv derives the Mode. In order: --no-color and NO_COLOR
// (https://no-color.org) disable color, CLICOLOR_FORCE forces it, and
// CLICOLOR=0 or TERM=dumb disable it.
func ModeFromEnv(noColorFlag bool) Mode {
	if noColorFlag {
		return ModeNever
	}

	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return ModeNever
	}

	if force := os.Getenv("CLICOLOR_FORCE"); force != "" && force != "0" {
		return ModeAlways
	}

	if os.Getenv("CLICOLOR") == "0" || os.Getenv("TERM") == "dumb" {
		return ModeNever
	}

	return ModeAuto
}

// Enabled reports whether output written to f is colored.
func Enabled(noColorFlag bool, f *os.File) bool {
	switch ModeFromEnv(noColorFlag) {
	case ModeAlways:
		return true
	case ModeNever:
		return false
	default:
		return IsTerminal(f)
	}
}

// IsTerminal reports whether f is a terminal.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}

// Theme holds the styles for archium output. The zero Theme renders text
// unchanged.
type Theme struct {
	Banner  lipgloss.Style
	Prompt  lipgloss.Style
	Heading lipgloss.Style
	Command lipgloss.Style
	Name    lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Muted   lipgloss.Style
}

// ANSI palette indexes.
const (
	gray    = lipgloss.Color("8")
	red     = lipgloss.Color("9")
	green   = lipgloss.Color("10")
	yellow  = lipgloss.Color("11")
	blue    = lipgloss.Color("12")
	magenta = lipgloss.Color("13")
	cyan    = lipgloss.Color("14")
)

// NewTheme returns the archium theme, or the zero Theme when color is false.
func NewTheme(color bool) Theme {
	if !color {
		return Theme{}
	}

	bold := lipgloss.NewStyle().Bold(true)

	return Theme{
		Banner:  bold.Foreground(cyan),
		Prompt:  bold.Foreground(green),
		Heading: bold.Foreground(blue),
		Command: bold.Foreground(magenta),
		Name:    bold.Foreground(cyan),
		Success: lipgloss.NewStyle().Foreground(green),
		Warning: bold.Foreground(yellow),
		Error:   bold.Foreground(red),
		Muted:   lipgloss.NewStyle().Foreground(gray),
	}
}

package dispatcher

//go:generate mockgen -source=host.go -destination=host_mock.go -package=dispatcher

import (
	"io"

	"github.com/archium/archium/internal/color"
	"github.com/archium/archium/pkg/plugin"
)

// PluginHost is the plugin subsystem as seen by the dispatcher.
// *plugin.Manager from internal/plugin implements it.
type PluginHost interface {
	IsPluginCommand(input string) bool
	Execute(command, args, packageManager string) plugin.ErrorCode
	BeforeCommand(command, args, packageManager string) plugin.ErrorCode
	AfterCommand(command, args, packageManager string, result plugin.ErrorCode)
	NotifyExit(command, args, packageManager string)
	ListLoaded(w io.Writer, theme color.Theme) error
	DisplayHelp(w io.Writer, theme color.Theme) error
	CreateExample() (string, error)
	Dir() string
}

// Preferences persists configuration changes.
// *config.Writer from internal/config implements it.
type Preferences interface {
	Set(key, value string) error
}

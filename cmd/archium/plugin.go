package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	internalplugin "github.com/archium/archium/internal/plugin"
)

// Listing formats.
const (
	formatTable = "table"
	formatJSON  = "json"
	formatYAML  = "yaml"
)

// ErrUnknownFormat is returned for an unsupported --format value.
var ErrUnknownFormat = errors.New("unknown output format")

var listFormat string

var pluginCmd = &cobra.Command{
	Use:     "plugin",
	Aliases: []string{"plugins"},
	Short:   "Manage archium plugins",
	Long: `Manage archium plugins.

Plugins are shared objects built with -buildmode=plugin (.so) or Lua
scripts (.lua) in the plugin directory. Each adds one command and may hook
into every command archium runs.`,
}

var pluginListCmd = &cobra.Command{
	Use:   "list",
	Short: "List loaded plugins",
	Args:  cobra.NoArgs,
	RunE:  runPluginList,
}

var pluginDirCmd = &cobra.Command{
	Use:   "dir",
	Short: "Print the plugin directory",
	Args:  cobra.NoArgs,
	RunE:  runPluginDir,
}

var pluginExampleCmd = &cobra.Command{
	Use:   "example",
	Short: "Write an example plugin into the plugin directory",
	Args:  cobra.NoArgs,
	RunE:  runPluginExample,
}

var pluginHelpCmd = &cobra.Command{
	Use:   "help",
	Short: "Show the commands plugins provide",
	Args:  cobra.NoArgs,
	RunE:  runPluginCommands,
}

func init() {
	rootCmd.AddCommand(pluginCmd)
	pluginCmd.AddCommand(pluginListCmd, pluginDirCmd, pluginExampleCmd, pluginHelpCmd)

	pluginListCmd.Flags().StringVarP(&listFormat, "format", "f", "",
		"Output format: table, json or yaml (default table, json when json_output is set)")
}

// withPlugins runs fn with plugins loaded and releases them afterwards.
func withPlugins(cmd *cobra.Command, fn func(a *app) error) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.shutdown()

	a.initPlugins()

	return fn(a)
}

func runPluginList(cmd *cobra.Command, _ []string) error {
	return withPlugins(cmd, func(a *app) error {
		format := listFormat
		if format == "" {
			format = formatTable
			if a.cfg.JSONOutput {
				format = formatJSON
			}
		}

		if format == formatTable {
			return a.plugins.ListLoaded(a.out, a.theme)
		}

		return writeSummaries(a.out, format, a.plugins.Summaries())
	})
}

func runPluginDir(cmd *cobra.Command, _ []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.shutdown()

	dir, err := internalplugin.ResolveDir(a.pluginDir())
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, dir)

	return nil
}

func runPluginExample(cmd *cobra.Command, _ []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.shutdown()

	dir, err := a.plugins.CreateExample()
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Example plugin written to %s\n", dir)
	fmt.Fprintf(a.out, "Build it with: make -C %s\n", dir)

	return nil
}

func runPluginCommands(cmd *cobra.Command, _ []string) error {
	return withPlugins(cmd, func(a *app) error {
		if a.plugins.Len() == 0 {
			fmt.Fprintln(a.out, "No plugins loaded.")

			return nil
		}

		return a.plugins.DisplayHelp(a.out, a.theme)
	})
}

// writeSummaries encodes plugin summaries as JSON or YAML.
func writeSummaries(w io.Writer, format string, summaries []internalplugin.Summary) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return enc.Encode(summaries)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)

		if err := enc.Encode(summaries); err != nil {
			return err
		}

		return enc.Close()
	default:
		return errors.Wrapf(ErrUnknownFormat, "%q", format)
	}
}

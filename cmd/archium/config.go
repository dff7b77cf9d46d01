package main

import (
	"fmt"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change the archium configuration",
	Long: `Show or change the archium configuration.

Settings are read from ~/.config/archium/config.toml, then ARCHIUM_*
environment variables, then command line flags.`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change one key in the config file",
	Example: `  archium config set package_manager paru
  archium config set plugins.ignore "*.disabled.so,test_*"`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd, configSetCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.shutdown()

	data, err := toml.Marshal(a.cfg)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "# %s\n", a.paths.ConfigFile)
	fmt.Fprintf(a.out, "# config dir: %s\n# cache dir:  %s\n# log file:   %s\n\n",
		a.paths.ConfigDir, a.paths.CacheDir, a.paths.LogFile)
	_, err = a.out.Write(data)

	return err
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.shutdown()

	if err := a.writer.Set(args[0], args[1]); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Saved %s = %s in %s\n", args[0], args[1], a.paths.ConfigFile)

	return nil
}

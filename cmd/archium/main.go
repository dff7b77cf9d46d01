// Package main provides the CLI entry point for archium.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/archium/archium/internal/dispatcher"
	"github.com/archium/archium/internal/prompt"
	"github.com/archium/archium/pkg/plugin"
)

const promptText = "Archium $ "

var (
	execCommand   string
	verboseFlag   bool
	debugFlag     bool
	noColorFlag   bool
	pluginDirFlag string
	noPluginsFlag bool
)

func main() {
	os.Exit(mainWithExitCode())
}

func mainWithExitCode() int {
	if err := rootCmd.Execute(); err != nil {
		// Command results were already reported by the dispatcher.
		var codeErr *plugin.CodeError
		if !errors.As(err, &codeErr) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}

		return 1
	}

	return 0
}

var rootCmd = &cobra.Command{
	Use:   "archium",
	Short: "Fast front-end for pacman, yay and paru",
	Long: `Archium - a fast, interactive front-end for pacman, yay and paru.

Without arguments archium starts an interactive prompt. Type "h" there for
the list of commands. Plugins in the plugin directory add more commands and
may hook into every command.

Examples:
  archium                 # interactive prompt
  archium -e u            # upgrade the system and exit
  archium -e "i firefox"  # install a package and exit`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		checkVersionFlag()
	},
	RunE:              run,
	SilenceUsage:      true,
	SilenceErrors:     true,
	CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
}

func init() {
	rootCmd.Flags().StringVarP(&execCommand, "exec", "e", "", "Run one command and exit")

	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&noColorFlag, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().StringVar(&pluginDirFlag, "plugin-dir", "", "Load plugins from this directory")
	rootCmd.PersistentFlags().BoolVar(&noPluginsFlag, "no-plugins", false, "Do not load plugins")
}

func run(cmd *cobra.Command, _ []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.shutdown()

	ctx, stop := signal.NotifyContext(context.Background(), exitSignals...)
	defer stop()

	a.initPlugins()

	pm, err := a.detectPackageManager()
	if err != nil {
		fmt.Fprintln(os.Stderr, a.theme.Error.Render("Error: No suitable package manager is installed."))

		return plugin.ErrorCodePackageManager.Err()
	}

	a.packageManager = pm

	prompter := prompt.WithContext(ctx, a.prompter())
	d := a.dispatcher(prompter)

	if cmd.Flags().Changed("exec") {
		code, err := d.Dispatch(ctx, execCommand)
		if a.interrupted(ctx) {
			return nil
		}

		if err != nil && !errors.Is(err, dispatcher.ErrQuit) {
			return err
		}

		return code.Err()
	}

	return a.repl(ctx, d, prompter)
}

// repl reads and dispatches lines until quit or end of input.
func (a *app) repl(ctx context.Context, d *dispatcher.Dispatcher, prompter prompt.Prompter) error {
	a.printBanner(ctx)

	for {
		line, err := prompter.ReadLine(a.theme.Prompt.Render(promptText))
		if a.interrupted(ctx) {
			return nil
		}

		if err != nil {
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(a.out)

				return nil
			}

			return err
		}

		_, err = d.Dispatch(ctx, line)
		if a.interrupted(ctx) {
			return nil
		}

		switch {
		case err == nil:
		case errors.Is(err, dispatcher.ErrQuit):
			fmt.Fprintln(a.out, "Exiting Archium.")

			return nil
		case errors.Is(err, io.EOF):
			fmt.Fprintln(a.out)

			return nil
		default:
			a.log.Error("command failed", "input", line, "error", err)
		}
	}
}

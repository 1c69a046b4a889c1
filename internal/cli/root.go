// Package cli defines the command-line interface for ottokitchen.
package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"
)

// Options stores global CLI options shared between commands. Flags that
// were not set on the command line leave the configured value alone.
type Options struct {
	ConfigPath string
	MenuFile   string
	Capacity   int
	LogLevel   string
}

// Execute builds the root command, runs it with the provided args and
// returns any error.
func Execute(ctx context.Context, args []string) error {
	rootCmd := newRootCommand(&Options{})
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}

// newRootCommand constructs the root cobra.Command with global flags and subcommands.
func newRootCommand(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ottokitchen",
		Short: "ottokitchen tracks a restaurant kitchen's open orders",
		Long: "ottokitchen loads a menu of dishes into a fixed-capacity kitchen and lets you " +
			"serve, release, adjust and report on the open orders.",
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" {
				return nil
			}
			a, err := newApp(cmd, opts)
			if err != nil {
				return err
			}
			cmd.SetContext(context.WithValue(cmd.Context(), appKey{}, a))
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			if a := appFromContext(cmd.Context()); a != nil {
				return a.Close()
			}
			return nil
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", "", "Path to a YAML configuration file")
	cmd.PersistentFlags().StringVarP(&opts.MenuFile, "menu", "m", "", "Dish CSV to load (default dishes.csv)")
	cmd.PersistentFlags().IntVar(&opts.Capacity, "capacity", 0, "Maximum number of open orders (default 20)")
	cmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "", "Log level (off, normal, verbose)")

	cmd.AddCommand(
		newReportCommand(),
		newMenuCommand(),
		newServeCommand(),
		newReleaseCommand(),
		newAdjustCommand(),
		newShellCommand(),
	)

	return cmd
}

// appKey is a private context key used to store the app in command contexts.
type appKey struct{}

var errNoApp = errors.New("kitchen not initialised")

func appFromContext(ctx context.Context) *app {
	if ctx == nil {
		return nil
	}
	a, _ := ctx.Value(appKey{}).(*app)
	return a
}

// runWithApp adapts a handler that needs the loaded kitchen to cobra's RunE.
func runWithApp(fn func(cmd *cobra.Command, a *app, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		a := appFromContext(cmd.Context())
		if a == nil {
			return errNoApp
		}
		return fn(cmd, a, args)
	}
}

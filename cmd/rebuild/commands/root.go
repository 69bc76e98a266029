// Package commands implements the CLI commands for the rebuild build tool.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.trai.ch/rebuild/internal/adapters/settings"
	"go.trai.ch/rebuild/internal/build"
)

// CLI represents the command line interface for rebuild.
type CLI struct {
	app     Application
	binder  FlagBinder
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Build(ctx context.Context, targets []string) error
	Clean(ctx context.Context) error
	Status(ctx context.Context, w io.Writer) error
}

// FlagBinder receives the global flags once they are parsed.
type FlagBinder interface {
	BindFlags(flags *pflag.FlagSet) error
}

// New creates a new CLI instance with the given app.
// When binder is nil, the global flags are parsed but not applied.
func New(a Application, binder FlagBinder) *CLI {
	rootCmd := &cobra.Command{
		Use:           "rebuild",
		Short:         "A minimal incremental build tool",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	// Declared before the default version flag so that -v stays with --verbose.
	flags := rootCmd.PersistentFlags()
	flags.StringP("file", "f", settings.DefaultFile, "Path of the build file")
	flags.BoolP("verbose", "v", false, "Print dependencies discovered by header scanning")
	flags.Bool("no-warnings", false, "Suppress warnings about dependencies that are not scanned")
	flags.String("progress", settings.DefaultProgress, "Progress computation: ratio or truncate")
	flags.String("compiler", settings.DefaultCompiler, "Compiler used for header scanning")

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		app:     a,
		binder:  binder,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentPreRunE = func(_ *cobra.Command, _ []string) error {
		if c.binder == nil {
			return nil
		}
		return c.binder.BindFlags(flags)
	}

	rootCmd.AddCommand(c.newBuildCmd())
	rootCmd.AddCommand(c.newCleanCmd())
	rootCmd.AddCommand(c.newStatusCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

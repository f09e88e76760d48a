// Package commands implements the CLI commands for the autoload resolver.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/autoload/internal/app"
	"go.trai.ch/autoload/internal/build"
)

// CLI represents the command line interface for autoload.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Resolve(ctx context.Context, names []string, opts app.ResolveOptions) error
	Load(ctx context.Context, classes []string, opts app.ConfigOptions) error
	Include(ctx context.Context, files []string, opts app.IncludeOptions) error
	Functions(ctx context.Context, opts app.FunctionsOptions) error
	Paths(ctx context.Context, opts app.ConfigOptions) error
	Clean(ctx context.Context, opts app.ConfigOptions) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "autoload",
		Short:         "Resolve names to files across layered search paths",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().StringArrayP("path", "p", nil, "Add a search path with the highest precedence (repeatable)")
	rootCmd.PersistentFlags().String("ext", "", "Extension appended to names (default from autoload.yaml or .php)")
	rootCmd.PersistentFlags().String("log-format", "auto", "Log format: auto, pretty or json")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newResolveCmd())
	rootCmd.AddCommand(c.newLoadCmd())
	rootCmd.AddCommand(c.newIncludeCmd())
	rootCmd.AddCommand(c.newFunctionsCmd())
	rootCmd.AddCommand(c.newPathsCmd())
	rootCmd.AddCommand(c.newCleanCmd())
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

func configOptions(cmd *cobra.Command) app.ConfigOptions {
	paths, _ := cmd.Flags().GetStringArray("path")
	ext, _ := cmd.Flags().GetString("ext")
	format, _ := cmd.Flags().GetString("log-format")
	return app.ConfigOptions{
		Paths:     paths,
		Extension: ext,
		LogFormat: format,
	}
}

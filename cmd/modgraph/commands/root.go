// Package commands implements the CLI commands for modgraph.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/modgraph/internal/build"
	"go.trai.ch/modgraph/internal/core/domain"
)

// CLI represents the command line interface for modgraph.
type CLI struct {
	app       Application
	rootCmd   *cobra.Command
	logFormat LogFormat
	logJSON   bool
}

// Application represents the application logic interface.
type Application interface {
	Resolve(ctx context.Context, root string) (domain.ModuleGraph, error)
	Clean(ctx context.Context, root string) error
	CachePath(root string) (string, error)
}

// LogFormat switches the logger between text and JSON output.
type LogFormat interface {
	SetJSON(enable bool)
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "modgraph",
		Short:         "Resolve the module graph of a JVM project",
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

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentFlags().BoolVar(&c.logJSON, "log-json", false, "Write logs as JSON")
	rootCmd.PersistentPreRun = func(_ *cobra.Command, _ []string) {
		if c.logFormat != nil {
			c.logFormat.SetJSON(c.logJSON)
		}
	}

	rootCmd.AddCommand(c.newResolveCmd())
	rootCmd.AddCommand(c.newCleanCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// WithLogFormat sets the logger the --log-json flag applies to.
func (c *CLI) WithLogFormat(f LogFormat) *CLI {
	c.logFormat = f
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

// SetOutput sets the output and error writers for the root command. Used for testing.
func (c *CLI) SetOutput(out, errOut io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(errOut)
}

// rootArg returns the project root named on the command line, defaulting to
// the working directory.
func rootArg(args []string) string {
	if len(args) == 0 {
		return "."
	}
	return args[0]
}

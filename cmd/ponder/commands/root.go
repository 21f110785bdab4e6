// Package commands implements the CLI commands for ponder.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/ponder/internal/app"
	"go.trai.ch/ponder/internal/build"
	"go.trai.ch/ponder/internal/core/ports"
)

// CLI represents the command line interface for ponder.
type CLI struct {
	app     Application
	logger  ports.Logger
	rootCmd *cobra.Command
}

// Option configures a CLI.
type Option func(*CLI)

// WithLogger lets the --json flag switch the logger to JSON output.
func WithLogger(l ports.Logger) Option {
	return func(c *CLI) {
		c.logger = l
	}
}

// jsonSetter is implemented by loggers that can emit JSON.
type jsonSetter interface {
	SetJSON(enable bool)
}

// Application represents the application logic interface.
type Application interface {
	Dev(ctx context.Context, opts app.Options) error
	Codegen(ctx context.Context, opts app.Options) error
	Status(ctx context.Context, root string, w io.Writer) error
	Clean(ctx context.Context, opts app.CleanOptions) error
}

// New creates a new CLI instance with the given app.
func New(a Application, opts ...Option) *CLI {
	rootCmd := &cobra.Command{
		Use:           "ponder",
		Short:         "Development server for blockchain indexing apps",
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

	rootCmd.PersistentFlags().StringP("root", "C", ".", "Project root directory")
	rootCmd.PersistentFlags().Bool("json", false, "Write logs as JSON")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}
	for _, opt := range opts {
		opt(c)
	}

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		if enable, _ := cmd.Flags().GetBool("json"); enable {
			if s, ok := c.logger.(jsonSetter); ok {
				s.SetJSON(true)
			}
		}
	}

	rootCmd.AddCommand(c.newDevCmd())
	rootCmd.AddCommand(c.newCodegenCmd())
	rootCmd.AddCommand(c.newStatusCmd())
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

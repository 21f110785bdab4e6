package commands

import (
	"os"

	"github.com/spf13/cobra"
	"go.trai.ch/ponder/internal/app"
	"go.trai.ch/ponder/internal/core/domain"
)

// Environment variables read as flag defaults.
const (
	envDatabaseURL = "DATABASE_URL"
	envPort        = "PORT"
)

func (c *CLI) newDevCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dev",
		Short: "Watch the config and schema files and regenerate on change",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts := projectOptions(cmd)
			opts.Port, _ = cmd.Flags().GetInt("port")
			opts.NoServer, _ = cmd.Flags().GetBool("no-server")
			opts.Debounce, _ = cmd.Flags().GetDuration("debounce")
			opts.OutputMode, _ = cmd.Flags().GetString("output-mode")
			opts.ReindexCommand, _ = cmd.Flags().GetString("on-reindex")

			// If --ci is set, override output-mode to "linear"
			if ci, _ := cmd.Flags().GetBool("ci"); ci {
				opts.OutputMode = "linear"
			}

			if !cmd.Flags().Changed("port") {
				if v, ok := os.LookupEnv(envPort); ok {
					if err := cmd.Flags().Set("port", v); err != nil {
						return err
					}
					opts.Port, _ = cmd.Flags().GetInt("port")
				}
			}

			return c.app.Dev(cmd.Context(), opts)
		},
	}
	addProjectFlags(cmd)
	cmd.Flags().IntP("port", "p", domain.DefaultServerPort, "Port of the GraphQL schema server")
	cmd.Flags().Bool("no-server", false, "Do not serve the GraphQL schema")
	cmd.Flags().Duration("debounce", domain.DefaultDebounceWindow, "Quiet period before a changed file is read")
	cmd.Flags().StringP("output-mode", "o", "auto", "Output mode: auto, tui, or linear")
	cmd.Flags().String("on-reindex", "", "Shell command run after every handler context rebuild")
	cmd.Flags().Bool("ci", false, "Use linear output mode (shorthand for --output-mode=linear)")
	return cmd
}

func (c *CLI) newCodegenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "codegen",
		Short: "Generate types and migrate the database once",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Codegen(cmd.Context(), projectOptions(cmd))
		},
	}
	addProjectFlags(cmd)
	return cmd
}

func addProjectFlags(cmd *cobra.Command) {
	cmd.Flags().String("config", domain.ConfigFileName, "Path to the config file")
	cmd.Flags().String("schema", domain.SchemaFileName, "Path to the schema file")
	cmd.Flags().String("generated", domain.DefaultGeneratedPath(), "Directory for generated sources")
	cmd.Flags().String("database-url", "", "Postgres URL or sqlite file (default $"+envDatabaseURL+")")
}

func projectOptions(cmd *cobra.Command) app.Options {
	var opts app.Options
	opts.Root, _ = cmd.Flags().GetString("root")
	opts.ConfigPath, _ = cmd.Flags().GetString("config")
	opts.SchemaPath, _ = cmd.Flags().GetString("schema")
	opts.GeneratedDir, _ = cmd.Flags().GetString("generated")
	opts.DatabaseURL, _ = cmd.Flags().GetString("database-url")
	if opts.DatabaseURL == "" {
		opts.DatabaseURL = os.Getenv(envDatabaseURL)
	}
	return opts
}

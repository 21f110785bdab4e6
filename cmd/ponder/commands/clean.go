package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/ponder/internal/app"
	"go.trai.ch/ponder/internal/core/domain"
)

func (c *CLI) newCleanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Remove the fingerprint store and generated sources",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			root, _ := cmd.Flags().GetString("root")
			generated, _ := cmd.Flags().GetBool("generated")
			all, _ := cmd.Flags().GetBool("all")
			dir, _ := cmd.Flags().GetString("generated-dir")

			opts := app.CleanOptions{
				Root:         root,
				GeneratedDir: dir,
			}

			switch {
			case all:
				opts.Store = true
				opts.Generated = true
			case generated:
				opts.Generated = true
			default:
				// Default behavior: forget recorded fingerprints
				opts.Store = true
			}

			return c.app.Clean(cmd.Context(), opts)
		},
	}

	cmd.Flags().BoolP("generated", "g", false, "Remove generated sources")
	cmd.Flags().BoolP("all", "a", false, "Remove the fingerprint store and generated sources")
	cmd.Flags().String("generated-dir", domain.DefaultGeneratedPath(), "Directory for generated sources")

	return cmd
}

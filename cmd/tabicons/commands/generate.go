package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/tabicons/internal/app"
)

func (c *CLI) newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Render every icon in the manifest and write it to disk",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			journal, _ := cmd.Flags().GetString("journal")
			opts := app.GenerateOptions{
				PlanOptions: planOptions(cmd),
				Out:         cmd.OutOrStdout(),
				Journal:     journal,
			}

			if watch, _ := cmd.Flags().GetBool("watch"); watch {
				return c.app.Watch(cmd.Context(), app.WatchOptions{GenerateOptions: opts})
			}
			return c.app.Generate(cmd.Context(), opts)
		},
	}
	addManifestFlag(cmd)
	addOutputFlags(cmd)
	cmd.Flags().BoolP("watch", "w", false, "Regenerate whenever the manifest changes")
	cmd.Flags().String("journal", "", "Write a JSON lines progress journal to this file")
	return cmd
}

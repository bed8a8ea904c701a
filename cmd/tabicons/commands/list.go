package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/tabicons/internal/app"
)

func (c *CLI) newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the icons in the manifest",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.List(app.ListOptions{
				PlanOptions: planOptions(cmd),
				Out:         cmd.OutOrStdout(),
			})
		},
	}
	addManifestFlag(cmd)
	return cmd
}

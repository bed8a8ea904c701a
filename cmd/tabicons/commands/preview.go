package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/tabicons/internal/app"
)

func (c *CLI) newPreviewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview CATEGORY",
		Short: "Print an icon as an ASCII grid",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			active, _ := cmd.Flags().GetBool("active")
			style, _ := cmd.Flags().GetString("style")

			return c.app.Preview(app.PreviewOptions{
				Category: args[0],
				Active:   active,
				Style:    style,
				Out:      cmd.OutOrStdout(),
			})
		},
	}
	cmd.Flags().BoolP("active", "a", false, "Render the active state")
	cmd.Flags().String("style", "", "Render style: hard or smooth")
	return cmd
}

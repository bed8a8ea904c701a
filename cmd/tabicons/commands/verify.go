package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/tabicons/internal/app"
	"go.trai.ch/tabicons/internal/core/domain"
)

func (c *CLI) newVerifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check that the icons on disk match a fresh render",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			report, err := c.app.Verify(cmd.Context(), app.VerifyOptions{
				PlanOptions: planOptions(cmd),
				Out:         out,
			})
			if report != nil {
				_, _ = fmt.Fprintf(out, "%d ok, %d missing, %d drifted, %d stray\n",
					report.Count(domain.VerifyStatusOK),
					report.Count(domain.VerifyStatusMissing),
					report.Count(domain.VerifyStatusDrifted),
					len(report.Stray),
				)
			}
			return err
		},
	}
	addManifestFlag(cmd)
	addOutputFlags(cmd)
	return cmd
}

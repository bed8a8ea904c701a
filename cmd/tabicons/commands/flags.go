package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/tabicons/internal/app"
	"go.trai.ch/tabicons/internal/core/domain"
)

func addManifestFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("manifest", "m", domain.DefaultManifestFilename, "Path to the icon manifest")
}

func addOutputFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("out", "o", domain.DefaultOutputDir, "Directory the icons are written to")
	cmd.Flags().String("style", "", "Render style: hard or smooth (default from manifest, else hard)")
}

// planOptions reads the manifest and output flags. The manifest is only
// required when --manifest was given explicitly, and --out only overrides
// the manifest output directory when set.
func planOptions(cmd *cobra.Command) app.PlanOptions {
	manifest, _ := cmd.Flags().GetString("manifest")
	opts := app.PlanOptions{
		ManifestPath:     manifest,
		ManifestRequired: cmd.Flags().Changed("manifest"),
	}

	if f := cmd.Flags().Lookup("out"); f != nil && f.Changed {
		opts.OutputDir = f.Value.String()
	}
	if f := cmd.Flags().Lookup("style"); f != nil {
		opts.Style = f.Value.String()
	}
	return opts
}

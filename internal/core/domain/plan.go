package domain

const (
	// DefaultOutputDir is the directory icons are written to when none is configured.
	DefaultOutputDir = "images"
	// DefaultManifestFilename is the manifest file looked up in the working directory.
	DefaultManifestFilename = "tabicons.yaml"
)

// GenerationPlan is everything needed for one generation or verification run.
type GenerationPlan struct {
	OutputDir string
	Style     RenderStyle
	Icons     Manifest
}

// DefaultPlan returns the built-in manifest rendered with the default style
// into DefaultOutputDir.
func DefaultPlan() *GenerationPlan {
	return &GenerationPlan{
		OutputDir: DefaultOutputDir,
		Style:     DefaultRenderStyle,
		Icons:     DefaultManifest(),
	}
}

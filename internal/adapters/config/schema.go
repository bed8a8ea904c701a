package config

// Iconfile represents the structure of the tabicons.yaml manifest file.
type Iconfile struct {
	Version string `yaml:"version"`
	Output  string `yaml:"output"`
	Style   string `yaml:"style"`
	// Icons is nil when the key is absent, so that "icons: []" can be told apart.
	Icons *[]IconDTO `yaml:"icons"`
}

// IconDTO represents a single icon entry in the manifest file.
type IconDTO struct {
	File     string `yaml:"file"`
	Category string `yaml:"category"`
	Active   bool   `yaml:"active"`
}

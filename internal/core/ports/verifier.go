package ports

// OutputVerifier checks the contents of an output directory.
//
//go:generate go run go.uber.org/mock/mockgen -source=verifier.go -destination=mocks/mock_verifier.go -package=mocks
type OutputVerifier interface {
	// MissingOutputs returns the entries of outputs that do not exist under root.
	MissingOutputs(root string, outputs []string) ([]string, error)

	// StrayOutputs returns the icon files in root that are not listed in known.
	// A missing root has no stray files.
	StrayOutputs(root string, known []string) ([]string, error)
}

package fs

import (
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/tabicons/internal/core/domain"
	"go.trai.ch/tabicons/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.OutputVerifier = (*Verifier)(nil)

// Verifier provides functionality to verify the existence of files.
type Verifier struct {
	walker *Walker
}

// NewVerifier creates a new Verifier.
func NewVerifier() *Verifier {
	return &Verifier{walker: NewWalker()}
}

// MissingOutputs returns the outputs that do not exist as regular files under root,
// in the order given.
func (v *Verifier) MissingOutputs(root string, outputs []string) ([]string, error) {
	var missing []string
	for _, output := range outputs {
		path := filepath.Join(root, output)
		info, err := os.Stat(path)
		if err != nil {
			if errors.Is(err, iofs.ErrNotExist) {
				missing = append(missing, output)
				continue
			}
			return nil, errors.Join(domain.ErrPathStatFailed, zerr.With(err, "path", path))
		}
		if !info.Mode().IsRegular() {
			missing = append(missing, output)
		}
	}
	return missing, nil
}

// StrayOutputs returns the icon files in root that are not listed in known.
// A missing root has no stray files.
func (v *Verifier) StrayOutputs(root string, known []string) ([]string, error) {
	listed := make(map[string]struct{}, len(known))
	for _, name := range known {
		listed[name] = struct{}{}
	}

	var stray []string
	for name, err := range v.walker.IconFiles(root) {
		if err != nil {
			return stray, err
		}
		if _, ok := listed[name]; !ok {
			stray = append(stray, name)
		}
	}
	return stray, nil
}

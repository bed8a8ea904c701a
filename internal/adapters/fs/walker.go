package fs

import (
	"errors"
	"io/fs"
	"iter"
	"path/filepath"
	"strings"

	"go.trai.ch/tabicons/internal/core/domain"
	"go.trai.ch/zerr"
)

// Walker provides output directory listing.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// IconFiles yields the names of the icon files directly inside dir.
// A symlinked dir is resolved first. Subdirectories are not descended into
// and a missing dir yields nothing. Any other failure is yielded once as an
// error, after which the walk stops.
func (w *Walker) IconFiles(dir string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		root, err := filepath.EvalSymlinks(dir)
		if err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				yield("", errors.Join(domain.ErrOutputDirListFailed, zerr.With(err, "path", dir)))
			}
			return
		}

		err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if d.IsDir() {
				if path == root {
					return nil
				}
				return filepath.SkipDir
			}

			if !w.isIcon(d) {
				return nil
			}

			if !yield(d.Name(), nil) {
				return filepath.SkipAll
			}

			return nil
		})
		if err != nil {
			yield("", errors.Join(domain.ErrOutputDirListFailed, zerr.With(err, "path", dir)))
		}
	}
}

func (w *Walker) isIcon(d fs.DirEntry) bool {
	if !d.Type().IsRegular() {
		return false
	}
	name := d.Name()
	return !strings.HasPrefix(name, ".") && strings.EqualFold(filepath.Ext(name), domain.IconExtension)
}

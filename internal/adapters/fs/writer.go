// Package fs provides file system adapters for writing, hashing and checking icons.
package fs

import (
	"bufio"
	"errors"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"go.trai.ch/tabicons/internal/core/domain"
	"go.trai.ch/tabicons/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ImageWriter = (*PNGWriter)(nil)

const (
	dirPerm  = 0o750
	filePerm = 0o644
)

// PNGWriter writes icons as PNG files.
type PNGWriter struct {
	encoder png.Encoder
}

// NewPNGWriter creates a PNGWriter using best compression. The encoder is
// deterministic, so the same image always yields the same bytes.
func NewPNGWriter() *PNGWriter {
	return &PNGWriter{encoder: png.Encoder{CompressionLevel: png.BestCompression}}
}

// EnsureDir creates dir and any missing parents.
func (w *PNGWriter) EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return errors.Join(domain.ErrOutputDirCreateFailed, zerr.With(err, "path", dir))
	}
	return nil
}

// Encode writes img to out as PNG.
func (w *PNGWriter) Encode(out io.Writer, img image.Image) error {
	if err := w.encoder.Encode(out, img); err != nil {
		return errors.Join(domain.ErrImageEncodeFailed, err)
	}
	return nil
}

// WriteFile encodes img to a temporary file next to path and renames it into
// place, so an interrupted write never leaves a truncated icon behind.
func (w *PNGWriter) WriteFile(path string, img image.Image) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return errors.Join(domain.ErrImageWriteFailed, zerr.With(err, "path", path))
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) //nolint:errcheck // Best effort cleanup; fails harmlessly after rename

	buf := bufio.NewWriter(tmp)
	if err := w.Encode(buf, img); err != nil {
		_ = tmp.Close()
		return domain.WithDetail(err, "path", path)
	}
	if err := buf.Flush(); err != nil {
		_ = tmp.Close()
		return errors.Join(domain.ErrImageWriteFailed, zerr.With(err, "path", path))
	}
	if err := tmp.Chmod(filePerm); err != nil {
		_ = tmp.Close()
		return errors.Join(domain.ErrImageWriteFailed, zerr.With(err, "path", path))
	}
	if err := tmp.Close(); err != nil {
		return errors.Join(domain.ErrImageWriteFailed, zerr.With(err, "path", path))
	}
	if err := os.Rename(tmpName, path); err != nil {
		return errors.Join(domain.ErrImageWriteFailed, zerr.With(err, "path", path))
	}
	return nil
}

package ports

import (
	"image"
	"io"
)

// ImageWriter persists rendered icons.
//
//go:generate go run go.uber.org/mock/mockgen -source=writer.go -destination=mocks/mock_writer.go -package=mocks
type ImageWriter interface {
	// EnsureDir creates dir and any missing parents. It is a no-op if dir exists.
	EnsureDir(dir string) error

	// Encode writes img to w in the output image format.
	Encode(w io.Writer, img image.Image) error

	// WriteFile encodes img and replaces the file at path with the result.
	WriteFile(path string, img image.Image) error
}

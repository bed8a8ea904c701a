package fs_test

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/tabicons/internal/adapters/fs"
	"go.trai.ch/tabicons/internal/core/domain"
)

func testImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 48, 48))
	img.SetNRGBA(24, 24, color.NRGBA{R: 25, G: 118, B: 210, A: 255})
	return img
}

func TestPNGWriter_EnsureDir(t *testing.T) {
	w := fs.NewPNGWriter()
	dir := filepath.Join(t.TempDir(), "a", "b", "images")

	require.NoError(t, w.EnsureDir(dir))
	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	// Idempotent
	require.NoError(t, w.EnsureDir(dir))
}

func TestPNGWriter_EnsureDirFailsOnFile(t *testing.T) {
	w := fs.NewPNGWriter()
	file := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(file, nil, 0o600))

	err := w.EnsureDir(filepath.Join(file, "images"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrOutputDirCreateFailed)
}

func TestPNGWriter_WriteFile(t *testing.T) {
	w := fs.NewPNGWriter()
	dir := t.TempDir()
	path := filepath.Join(dir, "home.png")

	require.NoError(t, w.WriteFile(path, testImage()))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close() //nolint:errcheck // Test cleanup

	decoded, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 48, 48), decoded.Bounds())

	r, g, b, a := decoded.At(24, 24).RGBA()
	assert.Equal(t, [4]uint32{25, 118, 210, 255}, [4]uint32{r >> 8, g >> 8, b >> 8, a >> 8})
	_, _, _, a = decoded.At(0, 0).RGBA()
	assert.Zero(t, a)

	// No temporary files are left behind.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "home.png", entries[0].Name())
}

func TestPNGWriter_WriteFileIsDeterministic(t *testing.T) {
	w := fs.NewPNGWriter()
	path := filepath.Join(t.TempDir(), "home.png")

	require.NoError(t, w.WriteFile(path, testImage()))
	first, err := os.ReadFile(path)
	require.NoError(t, err)

	require.NoError(t, w.WriteFile(path, testImage()))
	second, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.Equal(t, first, second)

	var buf bytes.Buffer
	require.NoError(t, w.Encode(&buf, testImage()))
	assert.Equal(t, first, buf.Bytes())
}

func TestPNGWriter_WriteFileMissingDir(t *testing.T) {
	w := fs.NewPNGWriter()

	err := w.WriteFile(filepath.Join(t.TempDir(), "missing", "home.png"), testImage())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrImageWriteFailed)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

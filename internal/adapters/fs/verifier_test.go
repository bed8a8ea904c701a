package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/tabicons/internal/adapters/fs"
	"go.trai.ch/tabicons/internal/core/domain"
)

func TestVerifier_MissingOutputs(t *testing.T) {
	tmpDir := t.TempDir()
	verifier := fs.NewVerifier()

	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "home.png"), []byte("content"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "home-active.png"), []byte("content"), 0o600))
	require.NoError(t, os.Mkdir(filepath.Join(tmpDir, "orders.png"), 0o750))

	// All outputs exist
	missing, err := verifier.MissingOutputs(tmpDir, []string{"home.png", "home-active.png"})
	require.NoError(t, err)
	assert.Empty(t, missing)

	// Missing files and directories are reported in order
	missing, err = verifier.MissingOutputs(tmpDir, []string{"profile.png", "home.png", "orders.png"})
	require.NoError(t, err)
	assert.Equal(t, []string{"profile.png", "orders.png"}, missing)
}

func TestVerifier_MissingRoot(t *testing.T) {
	verifier := fs.NewVerifier()

	missing, err := verifier.MissingOutputs(filepath.Join(t.TempDir(), "nope"), []string{"home.png"})
	require.NoError(t, err)
	assert.Equal(t, []string{"home.png"}, missing)
}

func TestVerifier_StrayOutputs(t *testing.T) {
	tmpDir := t.TempDir()
	verifier := fs.NewVerifier()

	for _, name := range []string{"home.png", "settings.png", "notes.txt", ".home.png.123.tmp"} {
		require.NoError(t, os.WriteFile(filepath.Join(tmpDir, name), []byte("content"), 0o600))
	}

	stray, err := verifier.StrayOutputs(tmpDir, []string{"home.png", "home-active.png"})
	require.NoError(t, err)
	assert.Equal(t, []string{"settings.png"}, stray)
}

func TestVerifier_StrayOutputsMissingRoot(t *testing.T) {
	verifier := fs.NewVerifier()

	stray, err := verifier.StrayOutputs(filepath.Join(t.TempDir(), "nope"), nil)
	require.NoError(t, err)
	assert.Empty(t, stray)
}

func TestVerifier_StrayOutputsSymlinkedRoot(t *testing.T) {
	tmpDir := t.TempDir()
	target := filepath.Join(tmpDir, "build", "images")
	require.NoError(t, os.MkdirAll(target, 0o750))
	for _, name := range []string{"home.png", "legacy.png"} {
		require.NoError(t, os.WriteFile(filepath.Join(target, name), []byte("content"), 0o600))
	}
	link := filepath.Join(tmpDir, "images")
	require.NoError(t, os.Symlink(target, link))

	stray, err := fs.NewVerifier().StrayOutputs(link, []string{"home.png"})
	require.NoError(t, err)
	assert.Equal(t, []string{"legacy.png"}, stray)
}

func TestVerifier_StrayOutputsRootIsFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(file, nil, 0o600))

	_, err := fs.NewVerifier().StrayOutputs(filepath.Join(file, "images"), nil)
	require.ErrorIs(t, err, domain.ErrOutputDirListFailed)
}

func TestVerifier_MissingOutputsStatFailure(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(file, nil, 0o600))

	_, err := fs.NewVerifier().MissingOutputs(filepath.Join(file, "images"), []string{"home.png"})
	require.ErrorIs(t, err, domain.ErrPathStatFailed)
}

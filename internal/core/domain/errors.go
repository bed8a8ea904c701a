package domain

import "go.trai.ch/zerr"

var (
	// ErrUnknownCategory is returned when a manifest entry names a category missing from the palette.
	ErrUnknownCategory = zerr.New("unknown icon category")

	// ErrInvalidIconFilename is returned when a manifest entry has an unusable file name.
	ErrInvalidIconFilename = zerr.New("invalid icon file name")

	// ErrDuplicateIconFilename is returned when two manifest entries write the same file.
	ErrDuplicateIconFilename = zerr.New("duplicate icon file name")

	// ErrEmptyManifest is returned when a manifest has no entries.
	ErrEmptyManifest = zerr.New("manifest has no icons")

	// ErrInvalidRenderStyle is returned when a render style is not recognised.
	ErrInvalidRenderStyle = zerr.New("invalid render style, expected 'hard' or 'smooth'")

	// ErrManifestNotFound is returned when an explicitly requested manifest file does not exist.
	ErrManifestNotFound = zerr.New("manifest file not found")

	// ErrManifestReadFailed is returned when the manifest file cannot be read.
	ErrManifestReadFailed = zerr.New("failed to read manifest file")

	// ErrManifestParseFailed is returned when the manifest file cannot be parsed.
	ErrManifestParseFailed = zerr.New("failed to parse manifest file")

	// ErrUnsupportedManifestVersion is returned when the manifest declares an unknown schema version.
	ErrUnsupportedManifestVersion = zerr.New("unsupported manifest version")

	// ErrOutputDirCreateFailed is returned when the output directory cannot be created.
	ErrOutputDirCreateFailed = zerr.New("failed to create output directory")

	// ErrImageEncodeFailed is returned when an icon cannot be encoded as PNG.
	ErrImageEncodeFailed = zerr.New("failed to encode icon")

	// ErrImageWriteFailed is returned when an icon file cannot be written.
	ErrImageWriteFailed = zerr.New("failed to write icon file")

	// ErrIconGenerationFailed is returned when generating a manifest entry fails.
	ErrIconGenerationFailed = zerr.New("icon generation failed")

	// ErrFileOpenFailed is returned when a file cannot be opened.
	ErrFileOpenFailed = zerr.New("failed to open file")

	// ErrFileHashFailed is returned when hashing a file fails.
	ErrFileHashFailed = zerr.New("failed to hash file content")

	// ErrPathStatFailed is returned when stating a path fails.
	ErrPathStatFailed = zerr.New("failed to stat path")

	// ErrOutputDirListFailed is returned when the output directory cannot be listed.
	ErrOutputDirListFailed = zerr.New("failed to list output directory")

	// ErrJournalCreateFailed is returned when the progress journal file cannot be created.
	ErrJournalCreateFailed = zerr.New("failed to create journal file")

	// ErrWatchFailed is returned when the manifest cannot be watched for changes.
	ErrWatchFailed = zerr.New("failed to watch manifest")

	// ErrVerificationFailed is returned when on-disk icons do not match a fresh render.
	ErrVerificationFailed = zerr.New("icon verification failed")
)

// WithDetail attaches a key-value pair to err. Unlike zerr.With on a
// sentinel, the result still matches err and its chain under errors.Is.
func WithDetail(err error, key string, value any) error {
	return zerr.With(zerr.Wrap(err, ""), key, value)
}

package ports

// Hasher computes content digests of encoded icons.
//
//go:generate go run go.uber.org/mock/mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type Hasher interface {
	// HashBytes returns the digest of data.
	HashBytes(data []byte) string

	// HashFile returns the digest of the file content at path.
	HashFile(path string) (string, error)
}

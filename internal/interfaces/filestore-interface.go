package interfaces

import "io"

// FileStore accepts a byte payload plus the client's declared filename,
// applies the extension allow-list and size ceiling, and stores the bytes
// under a generated name in a per-purpose directory. The returned path is
// what gets persisted on the owning row.
type FileStore interface {
	Save(purpose, filename string, b []byte) (string, error)
	// SaveAs stores under a fixed name, overwriting any previous file.
	SaveAs(purpose, name string, b []byte) (string, error)
	// Path reports where a fixed-name file would live, whether or not it
	// exists yet.
	Path(purpose, name string) string
	Open(path string) (io.ReadCloser, error)
	Exists(path string) bool
}

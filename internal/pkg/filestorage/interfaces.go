package filestorage

import "io"

// FileStorage is the blob half of the store: PDF content saved to and
// served from a local directory, keyed by the stored path recorded on
// the course record.
type FileStorage interface {
	// Save writes content under a name derived from the original upload
	// filename and returns the stored path to record on the course.
	Save(filename string, content io.Reader) (string, error)

	// Exists reports whether the blob for a stored path is still on disk.
	Exists(storedPath string) bool

	// Open opens the blob for streaming and reports its size.
	Open(storedPath string) (io.ReadCloser, int64, error)
}

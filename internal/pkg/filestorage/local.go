package filestorage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/cartable/api/internal/pkg/logger"
)

// LocalStorage stores course PDFs in a flat local directory. Blob names are
// derived from the original upload filename, so re-uploading a file with the
// same name replaces the previous blob.
type LocalStorage struct {
	basePath string // The root directory where files are stored
}

// NewLocalStorage creates a new LocalStorage instance, ensuring the storage
// directory exists.
func NewLocalStorage(basePath string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, os.ModePerm); err != nil {
		logger.Error().Err(err).Str("path", basePath).Msg("Failed to create storage directory")
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}
	logger.Info().Str("path", basePath).Msg("Local storage directory ensured")

	return &LocalStorage{basePath: basePath}, nil
}

// Save writes content to basePath/<basename(filename)> and returns the
// stored path recorded on the course record. An existing blob with the same
// name is silently overwritten.
func (ls *LocalStorage) Save(filename string, content io.Reader) (string, error) {
	name := filepath.Base(filename)
	if name == "" || name == "." || name == string(filepath.Separator) {
		return "", fmt.Errorf("invalid upload filename: %q", filename)
	}

	dstPath := filepath.Join(ls.basePath, name)
	dst, err := os.Create(dstPath)
	if err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to create destination file")
		return "", fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, content); err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to write uploaded file content")
		// Attempt to remove the partially written file
		_ = os.Remove(dstPath)
		return "", fmt.Errorf("failed to save file content: %w", err)
	}

	logger.Info().Str("filename", name).Str("stored_path", dstPath).Msg("File saved")
	return dstPath, nil
}

// Exists reports whether the blob referenced by a stored path is on disk.
func (ls *LocalStorage) Exists(storedPath string) bool {
	_, err := os.Stat(ls.physicalPath(storedPath))
	return err == nil
}

// Open opens the blob for streaming and reports its size.
func (ls *LocalStorage) Open(storedPath string) (io.ReadCloser, int64, error) {
	f, err := os.Open(ls.physicalPath(storedPath))
	if err != nil {
		return nil, 0, fmt.Errorf("failed to open stored file: %w", err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, 0, fmt.Errorf("failed to stat stored file: %w", err)
	}

	return f, info.Size(), nil
}

// physicalPath resolves a stored path (e.g. "pdf_files/algebra.pdf") to the
// file under basePath. Only the basename is kept, so records written with a
// different upload directory prefix still resolve.
func (ls *LocalStorage) physicalPath(storedPath string) string {
	return filepath.Join(ls.basePath, filepath.Base(storedPath))
}

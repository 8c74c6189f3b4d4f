package repositories

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/cartable/api/internal/app/models"
	"github.com/cartable/api/internal/pkg/apperrors"
	"github.com/cartable/api/internal/pkg/logger"
)

// CourseRepository persists the course table as a single JSON array file.
// Every read loads the whole table and every write replaces it: the file is
// the table. An RWMutex serializes file access within the process, and
// writes land in a temp file that is renamed into place, so a crash
// mid-write cannot leave a half-written table behind.
type CourseRepository struct {
	tablePath string
	mu        sync.RWMutex
}

// NewCourseRepository creates a repository backed by the table file at
// tablePath. The file does not have to exist yet.
func NewCourseRepository(tablePath string) *CourseRepository {
	return &CourseRepository{tablePath: tablePath}
}

// ReadAll loads the full course table in storage order. A missing table file
// means no data yet and yields an empty table. A table file that no longer
// parses as JSON also yields an empty table, with a warning log: corruption
// is swallowed rather than surfaced, matching the established contract of
// the on-disk format.
func (r *CourseRepository) ReadAll() ([]models.Course, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	data, err := os.ReadFile(r.tablePath)
	if errors.Is(err, fs.ErrNotExist) {
		return []models.Course{}, nil
	}
	if err != nil {
		return nil, apperrors.NewStorageError("read course table", err)
	}

	var courses []models.Course
	if err := json.Unmarshal(data, &courses); err != nil {
		logger.Warn().Err(err).Str("path", r.tablePath).Msg("Course table file is malformed, treating as empty")
		return []models.Course{}, nil
	}
	if courses == nil {
		courses = []models.Course{}
	}
	return courses, nil
}

// WriteAll replaces the table file with the given records, serialized as one
// pretty-printed JSON array. The content is written to a temp file in the
// table's directory and moved into place with a rename.
func (r *CourseRepository) WriteAll(courses []models.Course) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if courses == nil {
		courses = []models.Course{}
	}
	data, err := json.MarshalIndent(courses, "", "    ")
	if err != nil {
		return apperrors.NewStorageError("encode course table", err)
	}

	dir := filepath.Dir(r.tablePath)
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return apperrors.NewStorageError("create table directory", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(r.tablePath)+".tmp-*")
	if err != nil {
		return apperrors.NewStorageError("create temp table file", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		_ = os.Remove(tmpPath)
		return apperrors.NewStorageError("write temp table file", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return apperrors.NewStorageError("close temp table file", err)
	}
	if err := os.Rename(tmpPath, r.tablePath); err != nil {
		_ = os.Remove(tmpPath)
		return apperrors.NewStorageError("replace course table", err)
	}
	return nil
}

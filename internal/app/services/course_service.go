package services

import (
	"context"
	"io"
	"path/filepath"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/cartable/api/internal/app/models"
	"github.com/cartable/api/internal/app/models/dto"
	"github.com/cartable/api/internal/app/repositories"
	"github.com/cartable/api/internal/pkg/apperrors"
	"github.com/cartable/api/internal/pkg/filestorage"
	"github.com/cartable/api/internal/pkg/validation"
)

// CourseDownload is an open PDF stream plus the metadata the HTTP layer
// needs to serve it as an attachment. The caller owns Reader and must
// close it.
type CourseDownload struct {
	Reader   io.ReadCloser
	Filename string
	Size     int64
}

// CourseService defines the catalog's business rules on top of the table
// and blob stores: lookup by name, timestamp stamping, not-found signaling.
type CourseService interface {
	Create(ctx context.Context, req *dto.CreateCourseRequest, filename string, content io.Reader) (*models.Course, error)
	List(ctx context.Context) ([]models.Course, error)
	GetByName(ctx context.Context, name string) (*models.Course, error)
	Update(ctx context.Context, name string, req *dto.UpdateCourseRequest) (*models.Course, error)
	Delete(ctx context.Context, name string) (*models.Course, error)
	Download(ctx context.Context, name string) (*CourseDownload, error)
}

// courseServiceImpl implements CourseService
type courseServiceImpl struct {
	courseRepo  *repositories.CourseRepository
	fileStorage filestorage.FileStorage
	logger      zerolog.Logger

	// mu serializes the read-modify-write cycle of mutating operations so
	// two concurrent mutations cannot both read the old table and silently
	// discard each other's write.
	mu sync.Mutex
}

// NewCourseService creates a new CourseService
func NewCourseService(courseRepo *repositories.CourseRepository, fileStorage filestorage.FileStorage, logger zerolog.Logger) CourseService {
	return &courseServiceImpl{
		courseRepo:  courseRepo,
		fileStorage: fileStorage,
		logger:      logger,
	}
}

// Create stores the uploaded PDF, appends a new course record to the table
// and returns it. A filename without the .pdf suffix is rejected before
// anything touches disk. Duplicate names are allowed; later lookups resolve
// to the first match in storage order.
func (s *courseServiceImpl) Create(ctx context.Context, req *dto.CreateCourseRequest, filename string, content io.Reader) (*models.Course, error) {
	if !validation.HasPDFExtension(filename) {
		return nil, apperrors.ErrInvalidCourseFile
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	storedPath, err := s.fileStorage.Save(filename, content)
	if err != nil {
		return nil, apperrors.NewStorageError("save course file", err)
	}

	courses, err := s.courseRepo.ReadAll()
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	course := models.Course{
		Name:        req.Name,
		Description: req.Description,
		PDFPath:     storedPath,
		Level:       req.Level,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	courses = append(courses, course)
	if err := s.courseRepo.WriteAll(courses); err != nil {
		return nil, err
	}

	s.logger.Info().Str("name", course.Name).Str("pdf_path", course.PDFPath).Msg("Course created")
	return &course, nil
}

// List returns the full table in storage order. An empty table yields an
// empty, non-nil slice so the wire shows [] rather than null.
func (s *courseServiceImpl) List(ctx context.Context) ([]models.Course, error) {
	return s.courseRepo.ReadAll()
}

// GetByName returns the first record whose name matches exactly.
func (s *courseServiceImpl) GetByName(ctx context.Context, name string) (*models.Course, error) {
	courses, err := s.courseRepo.ReadAll()
	if err != nil {
		return nil, err
	}

	for i := range courses {
		if courses[i].Name == name {
			return &courses[i], nil
		}
	}
	return nil, apperrors.ErrCourseNotFound
}

// Update overwrites the mutable fields of the first record matching name.
// CreatedAt is preserved, UpdatedAt is refreshed, and the record keeps its
// slot in the table.
func (s *courseServiceImpl) Update(ctx context.Context, name string, req *dto.UpdateCourseRequest) (*models.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	courses, err := s.courseRepo.ReadAll()
	if err != nil {
		return nil, err
	}

	for i := range courses {
		if courses[i].Name != name {
			continue
		}

		courses[i].Description = req.Description
		courses[i].PDFPath = req.PDFPath
		courses[i].Level = req.Level
		courses[i].UpdatedAt = time.Now().UTC()

		if err := s.courseRepo.WriteAll(courses); err != nil {
			return nil, err
		}

		updated := courses[i]
		s.logger.Info().Str("name", name).Msg("Course updated")
		return &updated, nil
	}
	return nil, apperrors.ErrCourseNotFound
}

// Delete removes the first record matching name, preserving the order of
// the remaining records, and returns the removed record. The PDF blob is
// intentionally left on disk.
func (s *courseServiceImpl) Delete(ctx context.Context, name string) (*models.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	courses, err := s.courseRepo.ReadAll()
	if err != nil {
		return nil, err
	}

	for i := range courses {
		if courses[i].Name != name {
			continue
		}

		removed := courses[i]
		courses = append(courses[:i], courses[i+1:]...)

		if err := s.courseRepo.WriteAll(courses); err != nil {
			return nil, err
		}

		s.logger.Info().Str("name", name).Str("pdf_path", removed.PDFPath).Msg("Course deleted, file kept on disk")
		return &removed, nil
	}
	return nil, apperrors.ErrCourseNotFound
}

// Download looks the course up by name and opens its PDF for streaming.
// A course whose file has gone missing from the upload directory is a
// distinct not-found case from an unknown course name.
func (s *courseServiceImpl) Download(ctx context.Context, name string) (*CourseDownload, error) {
	course, err := s.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}

	if !s.fileStorage.Exists(course.PDFPath) {
		return nil, apperrors.ErrCourseFileMissing
	}

	reader, size, err := s.fileStorage.Open(course.PDFPath)
	if err != nil {
		return nil, apperrors.NewStorageError("open course file", err)
	}

	return &CourseDownload{
		Reader:   reader,
		Filename: filepath.Base(course.PDFPath),
		Size:     size,
	}, nil
}

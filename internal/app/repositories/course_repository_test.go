package repositories

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/cartable/api/internal/app/models"
)

func testCourse(name, description string) models.Course {
	created := time.Date(2024, 9, 1, 8, 30, 0, 0, time.UTC)
	return models.Course{
		Name:        name,
		Description: description,
		PDFPath:     "pdf_files/" + name + ".pdf",
		Level:       "6ème",
		CreatedAt:   created,
		UpdatedAt:   created,
	}
}

func newTestRepository(t *testing.T) (*CourseRepository, string) {
	t.Helper()
	tablePath := filepath.Join(t.TempDir(), "courses.json")
	return NewCourseRepository(tablePath), tablePath
}

func TestReadAllMissingFile(t *testing.T) {
	t.Parallel()
	repo, _ := newTestRepository(t)

	courses, err := repo.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll on missing file: got err=%v want=nil", err)
	}
	if courses == nil {
		t.Fatal("ReadAll on missing file: got nil slice, want empty slice")
	}
	if len(courses) != 0 {
		t.Fatalf("ReadAll on missing file: got %d courses, want 0", len(courses))
	}
}

func TestReadAllMalformedFile(t *testing.T) {
	t.Parallel()
	repo, tablePath := newTestRepository(t)

	if err := os.WriteFile(tablePath, []byte("{not json at all"), 0o644); err != nil {
		t.Fatalf("seed malformed file: %v", err)
	}

	courses, err := repo.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll on malformed file: got err=%v want=nil", err)
	}
	if len(courses) != 0 {
		t.Fatalf("ReadAll on malformed file: got %d courses, want 0", len(courses))
	}
}

func TestWriteAllReadAllRoundTrip(t *testing.T) {
	t.Parallel()
	repo, _ := newTestRepository(t)

	want := []models.Course{
		testCourse("Algebra", "linear equations"),
		testCourse("Geometry", "triangles"),
	}
	if err := repo.WriteAll(want); err != nil {
		t.Fatalf("WriteAll: %v", err)
	}

	got, err := repo.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("round trip: got %d courses, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].Name != want[i].Name ||
			got[i].Description != want[i].Description ||
			got[i].PDFPath != want[i].PDFPath ||
			got[i].Level != want[i].Level {
			t.Fatalf("round trip record %d: got=%+v want=%+v", i, got[i], want[i])
		}
		if !got[i].CreatedAt.Equal(want[i].CreatedAt) || !got[i].UpdatedAt.Equal(want[i].UpdatedAt) {
			t.Fatalf("round trip timestamps %d: got=%v/%v want=%v/%v",
				i, got[i].CreatedAt, got[i].UpdatedAt, want[i].CreatedAt, want[i].UpdatedAt)
		}
	}
}

func TestWriteAllReplacesWholeTable(t *testing.T) {
	t.Parallel()
	repo, _ := newTestRepository(t)

	if err := repo.WriteAll([]models.Course{testCourse("Algebra", "a"), testCourse("Geometry", "g")}); err != nil {
		t.Fatalf("first WriteAll: %v", err)
	}
	if err := repo.WriteAll([]models.Course{testCourse("History", "h")}); err != nil {
		t.Fatalf("second WriteAll: %v", err)
	}

	got, err := repo.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if len(got) != 1 || got[0].Name != "History" {
		t.Fatalf("table after rewrite: got=%+v want single History record", got)
	}
}

func TestWriteAllNilWritesEmptyArray(t *testing.T) {
	t.Parallel()
	repo, tablePath := newTestRepository(t)

	if err := repo.WriteAll(nil); err != nil {
		t.Fatalf("WriteAll(nil): %v", err)
	}

	data, err := os.ReadFile(tablePath)
	if err != nil {
		t.Fatalf("read table file: %v", err)
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("table file is not a JSON array: %v", err)
	}
	if len(raw) != 0 {
		t.Fatalf("table file: got %d entries, want 0", len(raw))
	}
}

func TestWriteAllLeavesNoTempFiles(t *testing.T) {
	t.Parallel()
	repo, tablePath := newTestRepository(t)

	if err := repo.WriteAll([]models.Course{testCourse("Algebra", "a")}); err != nil {
		t.Fatalf("WriteAll: %v", err)
	}

	entries, err := os.ReadDir(filepath.Dir(tablePath))
	if err != nil {
		t.Fatalf("read table dir: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != filepath.Base(tablePath) {
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Fatalf("table dir entries: got=%v want only %s", names, filepath.Base(tablePath))
	}
}

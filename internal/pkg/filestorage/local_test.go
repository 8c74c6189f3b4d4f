package filestorage

import (
	"io"
	"path/filepath"
	"strings"
	"testing"
)

func TestSaveAndOpenRoundTrip(t *testing.T) {
	t.Parallel()
	ls, err := NewLocalStorage(filepath.Join(t.TempDir(), "pdf_files"))
	if err != nil {
		t.Fatalf("NewLocalStorage: %v", err)
	}

	storedPath, err := ls.Save("algebra.pdf", strings.NewReader("content-1"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if filepath.Base(storedPath) != "algebra.pdf" {
		t.Fatalf("stored path: got=%q, want basename algebra.pdf", storedPath)
	}

	if !ls.Exists(storedPath) {
		t.Fatalf("Exists(%q): got false, want true", storedPath)
	}

	reader, size, err := ls.Open(storedPath)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		t.Fatalf("read blob: %v", err)
	}
	if string(data) != "content-1" || size != int64(len(data)) {
		t.Fatalf("blob round trip: got=%q size=%d", data, size)
	}
}

func TestSaveOverwritesExistingBlob(t *testing.T) {
	t.Parallel()
	ls, err := NewLocalStorage(filepath.Join(t.TempDir(), "pdf_files"))
	if err != nil {
		t.Fatalf("NewLocalStorage: %v", err)
	}

	if _, err := ls.Save("notes.pdf", strings.NewReader("old")); err != nil {
		t.Fatalf("first Save: %v", err)
	}
	storedPath, err := ls.Save("notes.pdf", strings.NewReader("new"))
	if err != nil {
		t.Fatalf("second Save: %v", err)
	}

	reader, _, err := ls.Open(storedPath)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer reader.Close()

	data, _ := io.ReadAll(reader)
	if string(data) != "new" {
		t.Fatalf("blob after overwrite: got=%q want=%q", data, "new")
	}
}

func TestStoredPathWithForeignPrefixResolves(t *testing.T) {
	t.Parallel()
	ls, err := NewLocalStorage(filepath.Join(t.TempDir(), "pdf_files"))
	if err != nil {
		t.Fatalf("NewLocalStorage: %v", err)
	}

	if _, err := ls.Save("algebra.pdf", strings.NewReader("x")); err != nil {
		t.Fatalf("Save: %v", err)
	}

	// Records written by an older deployment may carry a different
	// directory prefix; only the basename matters for resolution.
	if !ls.Exists("some/old/prefix/algebra.pdf") {
		t.Fatal("Exists with foreign prefix: got false, want true")
	}
}

func TestExistsMissingBlob(t *testing.T) {
	t.Parallel()
	ls, err := NewLocalStorage(filepath.Join(t.TempDir(), "pdf_files"))
	if err != nil {
		t.Fatalf("NewLocalStorage: %v", err)
	}

	if ls.Exists("pdf_files/ghost.pdf") {
		t.Fatal("Exists for missing blob: got true, want false")
	}
}

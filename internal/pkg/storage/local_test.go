package storage

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestLocalStorageUploadAndDelete(t *testing.T) {
	ctx := context.Background()
	base := t.TempDir()

	s, err := NewLocalStorage(base, "http://localhost:8080/uploads/")
	if err != nil {
		t.Fatalf("NewLocalStorage: %v", err)
	}

	path, err := s.Upload(ctx, bytes.NewReader([]byte("jpeg bytes")), "work-updates/2026-01-05/a.jpg", "image/jpeg")
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}
	if path != "work-updates/2026-01-05/a.jpg" {
		t.Errorf("Upload path = %q", path)
	}

	if got := s.PublicURL(path); got != "http://localhost:8080/uploads/work-updates/2026-01-05/a.jpg" {
		t.Errorf("PublicURL = %q", got)
	}

	if _, err := os.Stat(filepath.Join(base, "work-updates", "2026-01-05", "a.jpg")); err != nil {
		t.Fatalf("uploaded file missing: %v", err)
	}

	if err := s.Delete(ctx, path); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := os.Stat(filepath.Join(base, "work-updates", "2026-01-05", "a.jpg")); !os.IsNotExist(err) {
		t.Errorf("file still present after delete")
	}
}

func TestLocalStorageDeleteMissingBlobIsSuccess(t *testing.T) {
	s, err := NewLocalStorage(t.TempDir(), "http://localhost:8080/uploads")
	if err != nil {
		t.Fatalf("NewLocalStorage: %v", err)
	}

	if err := s.Delete(context.Background(), "work-updates/2026-01-05/gone.jpg"); err != nil {
		t.Errorf("Delete of missing blob = %v, want nil", err)
	}
}

func TestLocalStorageRejectsTraversal(t *testing.T) {
	ctx := context.Background()
	s, err := NewLocalStorage(t.TempDir(), "http://localhost:8080/uploads")
	if err != nil {
		t.Fatalf("NewLocalStorage: %v", err)
	}

	if _, err := s.Upload(ctx, bytes.NewReader([]byte("x")), "../../etc/evil", "text/plain"); err == nil {
		t.Error("Upload outside base path succeeded")
	}
	if err := s.Delete(ctx, "../../etc/passwd"); err == nil {
		t.Error("Delete outside base path succeeded")
	}
}

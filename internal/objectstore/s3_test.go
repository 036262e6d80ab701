package objectstore

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestNewS3StoreRequiresBucket(t *testing.T) {
	_, err := NewS3Store(context.Background(), Options{Region: "us-east-1"})
	if err == nil {
		t.Fatal("expected error for missing bucket")
	}
}

func TestDeleteLocal(t *testing.T) {
	store := &S3Store{bucket: "test"}

	path := filepath.Join(t.TempDir(), "staged.md")
	if err := os.WriteFile(path, []byte("content"), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	if err := store.DeleteLocal(path); err != nil {
		t.Fatalf("DeleteLocal() error = %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("expected file to be removed")
	}

	// Deleting a missing file is not an error
	if err := store.DeleteLocal(path); err != nil {
		t.Errorf("DeleteLocal() on missing file error = %v", err)
	}
}

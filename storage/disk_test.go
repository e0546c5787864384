package storage

import (
	"errors"
	"io"
	"strings"
	"testing"
)

func TestDiskStoreRoundTrip(t *testing.T) {
	store, err := NewDiskStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	content := "accreditation evidence"
	path, err := store.Store(strings.NewReader(content), int64(len(content)), "laporan.pdf")
	if err != nil {
		t.Fatalf("Store: %v", err)
	}
	if !strings.HasSuffix(path, ".pdf") {
		t.Errorf("stored path %q does not keep the extension", path)
	}

	r, err := store.Retrieve(path)
	if err != nil {
		t.Fatalf("Retrieve: %v", err)
	}
	data, _ := io.ReadAll(r)
	r.Close()
	if string(data) != content {
		t.Errorf("content = %q, want %q", data, content)
	}

	if err := store.Delete(path); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := store.Retrieve(path); !errors.Is(err, ErrNotExist) {
		t.Errorf("Retrieve after delete: err = %v, want ErrNotExist", err)
	}
	if err := store.Delete(path); !errors.Is(err, ErrNotExist) {
		t.Errorf("second Delete: err = %v, want ErrNotExist", err)
	}
}

func TestDiskStoreGeneratesUniquePaths(t *testing.T) {
	store, err := NewDiskStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		path, err := store.Store(strings.NewReader("x"), 1, "same-name.pdf")
		if err != nil {
			t.Fatal(err)
		}
		if seen[path] {
			t.Fatalf("duplicate storage path %q", path)
		}
		seen[path] = true
	}
}

func TestDiskStoreMissingBlob(t *testing.T) {
	store, err := NewDiskStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	if _, err := store.Retrieve("nope.pdf"); !errors.Is(err, ErrNotExist) {
		t.Errorf("Retrieve: err = %v, want ErrNotExist", err)
	}
	if err := store.Delete("nope.pdf"); !errors.Is(err, ErrNotExist) {
		t.Errorf("Delete: err = %v, want ErrNotExist", err)
	}
}

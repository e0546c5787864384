package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// DiskStore keeps blobs in a single flat directory. Stored names are
// generated, never derived from user input.
type DiskStore struct {
	dir string
}

func NewDiskStore(dir string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return nil, fmt.Errorf("create upload directory: %w", err)
	}
	return &DiskStore{dir: dir}, nil
}

func (s *DiskStore) Store(content io.Reader, size int64, originalName string) (string, error) {
	ext := strings.ToLower(filepath.Ext(originalName))

	// O_EXCL guards against the (unlikely) generated-name collision;
	// regenerate and try again instead of overwriting.
	for attempt := 0; attempt < 3; attempt++ {
		name := uuid.NewString() + ext
		fullPath := filepath.Join(s.dir, name)

		f, err := os.OpenFile(fullPath, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
		if err != nil {
			if os.IsExist(err) {
				continue
			}
			return "", fmt.Errorf("create blob file: %w", err)
		}

		if _, err := io.Copy(f, content); err != nil {
			f.Close()
			os.Remove(fullPath)
			return "", fmt.Errorf("write blob file: %w", err)
		}
		if err := f.Close(); err != nil {
			os.Remove(fullPath)
			return "", fmt.Errorf("close blob file: %w", err)
		}

		return name, nil
	}

	return "", fmt.Errorf("could not generate a unique blob name")
}

func (s *DiskStore) Retrieve(path string) (io.ReadCloser, error) {
	f, err := os.Open(filepath.Join(s.dir, filepath.Base(path)))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotExist
		}
		return nil, fmt.Errorf("open blob file: %w", err)
	}
	return f, nil
}

func (s *DiskStore) Delete(path string) error {
	err := os.Remove(filepath.Join(s.dir, filepath.Base(path)))
	if err != nil {
		if os.IsNotExist(err) {
			return ErrNotExist
		}
		return fmt.Errorf("remove blob file: %w", err)
	}
	return nil
}

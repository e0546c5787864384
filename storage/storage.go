package storage

import (
	"errors"
	"io"
	"log"
	"os"
	"strings"
)

// ErrNotExist is returned when a storage path has no blob behind it.
var ErrNotExist = errors.New("blob does not exist")

// BlobStore persists raw uploaded file content separately from the
// document metadata records. Paths returned by Store are opaque to
// callers and are only handed back to Retrieve and Delete.
type BlobStore interface {
	// Store writes content under a freshly generated unique path and
	// returns that path. It never overwrites an existing blob.
	Store(content io.Reader, size int64, originalName string) (string, error)

	// Retrieve opens the blob at path for reading. Returns ErrNotExist
	// if nothing is stored there.
	Retrieve(path string) (io.ReadCloser, error)

	// Delete removes the blob at path. Returns ErrNotExist if it is
	// already gone.
	Delete(path string) error
}

// New selects a blob store backend from the environment.
// STORAGE_BACKEND=s3 enables MinIO/S3; anything else uses local disk.
func New() (BlobStore, error) {
	backend := strings.ToLower(os.Getenv("STORAGE_BACKEND"))
	if backend == "s3" || backend == "minio" {
		store, err := NewS3Store()
		if err != nil {
			return nil, err
		}
		log.Println("Blob storage: s3")
		return store, nil
	}

	uploadPath := os.Getenv("UPLOAD_PATH")
	if uploadPath == "" {
		uploadPath = "./uploads"
	}
	store, err := NewDiskStore(uploadPath)
	if err != nil {
		return nil, err
	}
	log.Printf("Blob storage: disk (%s)", uploadPath)
	return store, nil
}

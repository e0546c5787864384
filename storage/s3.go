package storage

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// S3Store keeps blobs in a single MinIO/S3 bucket. Transient failures
// are retried a bounded number of times before being surfaced.
type S3Store struct {
	client *minio.Client
	bucket string
}

const (
	s3MaxAttempts = 3
	s3RetryDelay  = 500 * time.Millisecond
)

func NewS3Store() (*S3Store, error) {
	endpoint := os.Getenv("S3_ENDPOINT")
	accessKey := os.Getenv("S3_ACCESS_KEY")
	secretKey := os.Getenv("S3_SECRET_KEY")
	bucket := os.Getenv("S3_BUCKET")
	useSSL := os.Getenv("S3_USE_SSL") == "true"

	if endpoint == "" || bucket == "" {
		return nil, fmt.Errorf("s3 storage requires S3_ENDPOINT and S3_BUCKET")
	}

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("init minio client: %w", err)
	}

	store := &S3Store{client: client, bucket: bucket}
	if err := store.ensureBucket(context.Background()); err != nil {
		return nil, err
	}
	return store, nil
}

func (s *S3Store) ensureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("check bucket %s: %w", s.bucket, err)
	}
	if !exists {
		if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("make bucket %s: %w", s.bucket, err)
		}
	}
	return nil
}

func (s *S3Store) Store(content io.Reader, size int64, originalName string) (string, error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	key := uuid.NewString() + ext

	ctx := context.Background()
	var lastErr error
	for attempt := 0; attempt < s3MaxAttempts; attempt++ {
		if attempt > 0 {
			time.Sleep(s3RetryDelay)
		}
		_, err := s.client.PutObject(ctx, s.bucket, key, content, size,
			minio.PutObjectOptions{ContentType: "application/octet-stream"})
		if err == nil {
			return key, nil
		}
		lastErr = err
		if !isTransient(err) {
			break
		}
		// The reader was consumed by the failed attempt; only seekable
		// content can be retried.
		seeker, ok := content.(io.Seeker)
		if !ok {
			break
		}
		if _, err := seeker.Seek(0, io.SeekStart); err != nil {
			break
		}
	}
	return "", fmt.Errorf("upload blob %s: %w", key, lastErr)
}

func (s *S3Store) Retrieve(path string) (io.ReadCloser, error) {
	ctx := context.Background()
	obj, err := s.client.GetObject(ctx, s.bucket, path, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("get blob %s: %w", path, err)
	}
	// GetObject is lazy; Stat forces the request so a missing key is
	// reported here rather than on first read.
	if _, err := obj.Stat(); err != nil {
		obj.Close()
		if isNoSuchKey(err) {
			return nil, ErrNotExist
		}
		return nil, fmt.Errorf("stat blob %s: %w", path, err)
	}
	return obj, nil
}

func (s *S3Store) Delete(path string) error {
	ctx := context.Background()
	if _, err := s.client.StatObject(ctx, s.bucket, path, minio.StatObjectOptions{}); err != nil {
		if isNoSuchKey(err) {
			return ErrNotExist
		}
		return fmt.Errorf("stat blob %s: %w", path, err)
	}

	var lastErr error
	for attempt := 0; attempt < s3MaxAttempts; attempt++ {
		if attempt > 0 {
			time.Sleep(s3RetryDelay)
		}
		err := s.client.RemoveObject(ctx, s.bucket, path, minio.RemoveObjectOptions{})
		if err == nil {
			return nil
		}
		lastErr = err
		if !isTransient(err) {
			break
		}
	}
	return fmt.Errorf("remove blob %s: %w", path, lastErr)
}

func isNoSuchKey(err error) bool {
	resp := minio.ToErrorResponse(err)
	return resp.Code == "NoSuchKey" || resp.StatusCode == http.StatusNotFound
}

func isTransient(err error) bool {
	resp := minio.ToErrorResponse(err)
	if resp.StatusCode >= 500 || resp.Code == "SlowDown" {
		return true
	}
	// Network-level failures come back without an S3 error response.
	return resp.Code == ""
}

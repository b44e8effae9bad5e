package signs

import (
	"context"
	"fmt"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"voicemap/internal/config"
)

// MinioStore reads sign videos from a MinIO (or any S3-compatible) bucket.
type MinioStore struct {
	client *minio.Client
	bucket string
}

// NewMinioStore connects to the configured endpoint. Region skips the bucket
// location lookup, which keeps the store usable against single-region deployments.
func NewMinioStore(cfg config.SignStoreConfig) (*MinioStore, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: "us-east-1",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	return &MinioStore{client: client, bucket: cfg.Bucket}, nil
}

// Backend names the storage backend.
func (s *MinioStore) Backend() string {
	return "minio"
}

// Open fetches the object metadata and returns a seekable reader over the object.
func (s *MinioStore) Open(ctx context.Context, name string) (*Object, error) {
	if !ValidName(name) {
		return nil, ErrNotFound
	}

	obj, err := s.client.GetObject(ctx, s.bucket, name, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get object %s: %w", name, err)
	}

	info, err := obj.Stat()
	if err != nil {
		obj.Close()
		switch minio.ToErrorResponse(err).Code {
		case "NoSuchKey", "NoSuchBucket":
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to stat object %s: %w", name, err)
	}

	ct := info.ContentType
	if ct == "" || ct == "application/octet-stream" {
		ct = contentType(name)
	}

	return &Object{
		ReadSeekCloser: obj,
		Name:           name,
		Size:           info.Size,
		ModTime:        info.LastModified,
		ContentType:    ct,
	}, nil
}

// New picks the MinIO store when an endpoint is configured and the local directory otherwise.
func New(cfg *config.Config) (Store, error) {
	if cfg.SignStore.Enabled() {
		return NewMinioStore(cfg.SignStore)
	}
	return NewLocalStore(cfg.SignsDir), nil
}

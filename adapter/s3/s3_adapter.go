package s3

import (
	"bytes"
	"context"
	"errors"
	"io"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/hupe1980/filevault/adapter"
)

// Client is the interface for S3 operations used by the adapter.
// *s3.Client satisfies it; tests substitute a mock.
type Client interface {
	manager.UploadAPIClient
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	HeadObject(ctx context.Context, params *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// UploadConfig configures the S3 uploader.
type UploadConfig struct {
	// PartSize is the minimum part size for multipart uploads.
	// Default: 8MB (larger than SDK default of 5MB for better throughput)
	PartSize int64

	// Concurrency is the number of concurrent part uploads.
	// Default: 5 (matches SDK default)
	Concurrency int
}

// DefaultUploadConfig returns production-oriented upload settings.
func DefaultUploadConfig() UploadConfig {
	return UploadConfig{
		PartSize:    8 * 1024 * 1024,
		Concurrency: 5,
	}
}

// Adapter implements adapter.Adapter for Amazon S3.
type Adapter struct {
	client   Client
	uploader *manager.Uploader
	bucket   string
	prefix   string
}

// New creates a new S3 adapter.
// rootPrefix is prepended to all keys (e.g. "files/").
func New(client Client, bucket, rootPrefix string) *Adapter {
	return NewWithConfig(client, bucket, rootPrefix, DefaultUploadConfig())
}

// NewWithConfig creates a new S3 adapter with explicit upload settings.
func NewWithConfig(client Client, bucket, rootPrefix string, cfg UploadConfig) *Adapter {
	uploader := manager.NewUploader(client, func(u *manager.Uploader) {
		if cfg.PartSize > 0 {
			u.PartSize = cfg.PartSize
		}
		if cfg.Concurrency > 0 {
			u.Concurrency = cfg.Concurrency
		}
	})
	return &Adapter{
		client:   client,
		uploader: uploader,
		bucket:   bucket,
		prefix:   rootPrefix,
	}
}

func (a *Adapter) key(name string) string {
	return path.Join(a.prefix, name)
}

// Save persists the record as an S3 object. Large content goes through
// multipart upload.
func (a *Adapter) Save(ctx context.Context, rec *adapter.Record) (bool, error) {
	_, err := a.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket: aws.String(a.bucket),
		Key:    aws.String(a.key(rec.Key)),
		Body:   bytes.NewReader(rec.Content),
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

// Load fetches the object stored under key.
func (a *Adapter) Load(ctx context.Context, key string) (*adapter.Record, error) {
	resp, err := a.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(a.bucket),
		Key:    aws.String(a.key(key)),
	})
	if err != nil {
		return nil, translateNotFound(err)
	}
	defer func() { _ = resp.Body.Close() }()

	content, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	return &adapter.Record{Key: key, Content: content}, nil
}

// Init constructs a new, empty record bound to key. No object is written
// until the record is saved.
func (a *Adapter) Init(_ context.Context, key string, _ bool) (*adapter.Record, error) {
	return &adapter.Record{Key: key}, nil
}

// Delete removes the object stored under key. S3 deletes are idempotent,
// so existence is checked first to honor the not-found contract.
func (a *Adapter) Delete(ctx context.Context, key string) (bool, error) {
	fullKey := a.key(key)

	_, err := a.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(a.bucket),
		Key:    aws.String(fullKey),
	})
	if err != nil {
		return false, translateNotFound(err)
	}

	_, err = a.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(a.bucket),
		Key:    aws.String(fullKey),
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

func translateNotFound(err error) error {
	var nf *types.NotFound
	if errors.As(err, &nf) {
		return adapter.ErrNotFound
	}
	var nsk *types.NoSuchKey
	if errors.As(err, &nsk) {
		return adapter.ErrNotFound
	}
	return err
}

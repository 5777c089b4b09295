package minio

import (
	"bytes"
	"context"
	"io"
	"path"

	"github.com/hupe1980/filevault/adapter"
	"github.com/minio/minio-go/v7"
)

// Adapter implements adapter.Adapter for MinIO and S3-compatible storage.
type Adapter struct {
	client *minio.Client
	bucket string
	prefix string
}

// New creates a new MinIO adapter.
// bucket is the MinIO bucket name.
// rootPrefix is prepended to all keys (e.g. "files/").
func New(client *minio.Client, bucket, rootPrefix string) *Adapter {
	return &Adapter{
		client: client,
		bucket: bucket,
		prefix: rootPrefix,
	}
}

func (a *Adapter) key(name string) string {
	return path.Join(a.prefix, name)
}

// Save persists the record as an object.
func (a *Adapter) Save(ctx context.Context, rec *adapter.Record) (bool, error) {
	key := a.key(rec.Key)
	_, err := a.client.PutObject(ctx, a.bucket, key, bytes.NewReader(rec.Content), int64(len(rec.Content)), minio.PutObjectOptions{})
	if err != nil {
		return false, err
	}
	return true, nil
}

// Load fetches the object stored under key.
func (a *Adapter) Load(ctx context.Context, key string) (*adapter.Record, error) {
	obj, err := a.client.GetObject(ctx, a.bucket, a.key(key), minio.GetObjectOptions{})
	if err != nil {
		return nil, translateNotFound(err)
	}
	defer func() { _ = obj.Close() }()

	content, err := io.ReadAll(obj)
	if err != nil {
		// GetObject is lazy; a missing object surfaces on first read.
		return nil, translateNotFound(err)
	}
	return &adapter.Record{Key: key, Content: content}, nil
}

// Init constructs a new, empty record bound to key. No object is written
// until the record is saved.
func (a *Adapter) Init(_ context.Context, key string, _ bool) (*adapter.Record, error) {
	return &adapter.Record{Key: key}, nil
}

// Delete removes the object stored under key. RemoveObject succeeds on
// absent objects, so existence is checked first to honor the not-found
// contract.
func (a *Adapter) Delete(ctx context.Context, key string) (bool, error) {
	fullKey := a.key(key)

	if _, err := a.client.StatObject(ctx, a.bucket, fullKey, minio.StatObjectOptions{}); err != nil {
		return false, translateNotFound(err)
	}

	if err := a.client.RemoveObject(ctx, a.bucket, fullKey, minio.RemoveObjectOptions{}); err != nil {
		return false, err
	}
	return true, nil
}

func translateNotFound(err error) error {
	errResp := minio.ToErrorResponse(err)
	if errResp.Code == "NoSuchKey" || errResp.Code == "NotFound" {
		return adapter.ErrNotFound
	}
	return err
}

package redis

import (
	"context"
	"errors"
	"time"

	"github.com/hupe1980/filevault/adapter"
	"github.com/redis/go-redis/v9"
)

// Adapter implements adapter.Adapter backed by Redis strings.
//
// Records are stored under keyPrefix+key. An optional TTL expires records
// automatically; an expired record reads as not found.
type Adapter struct {
	client    redis.Cmdable
	keyPrefix string
	ttl       time.Duration
}

// Option configures the Redis adapter.
type Option func(*Adapter)

// WithTTL sets an expiration on saved records. Zero means no expiration.
func WithTTL(ttl time.Duration) Option {
	return func(a *Adapter) {
		a.ttl = ttl
	}
}

// WithKeyPrefix namespaces all records (e.g. "filevault:").
func WithKeyPrefix(prefix string) Option {
	return func(a *Adapter) {
		a.keyPrefix = prefix
	}
}

// New creates a new Redis adapter. client may be a *redis.Client, a
// cluster client, or anything else satisfying redis.Cmdable.
func New(client redis.Cmdable, opts ...Option) *Adapter {
	a := &Adapter{client: client}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *Adapter) key(k string) string {
	return a.keyPrefix + k
}

// Save persists the record with SET.
func (a *Adapter) Save(ctx context.Context, rec *adapter.Record) (bool, error) {
	if err := a.client.Set(ctx, a.key(rec.Key), rec.Content, a.ttl).Err(); err != nil {
		return false, err
	}
	return true, nil
}

// Load returns the record stored under key.
func (a *Adapter) Load(ctx context.Context, key string) (*adapter.Record, error) {
	content, err := a.client.Get(ctx, a.key(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, adapter.ErrNotFound
		}
		return nil, err
	}
	return &adapter.Record{Key: key, Content: content}, nil
}

// Init constructs a new, empty record bound to key. Nothing is written
// until the record is saved.
func (a *Adapter) Init(_ context.Context, key string, _ bool) (*adapter.Record, error) {
	return &adapter.Record{Key: key}, nil
}

// Delete removes the record stored under key. DEL reports how many keys it
// removed; zero means the record was never there.
func (a *Adapter) Delete(ctx context.Context, key string) (bool, error) {
	removed, err := a.client.Del(ctx, a.key(key)).Result()
	if err != nil {
		return false, err
	}
	if removed == 0 {
		return false, adapter.ErrNotFound
	}
	return true, nil
}

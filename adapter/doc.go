// Package adapter defines the storage capability consumed by filevault.
//
// Adapter is the interface for persisting key-addressed file records.
// Implementations must be safe for concurrent use.
//
// # Built-in Implementations
//
//   - Memory: In-memory map, for tests and ephemeral use
//   - Local: Local filesystem with atomic temp-file + rename saves
//   - s3.Adapter: Amazon S3 with multipart uploads
//   - minio.Adapter: MinIO and S3-compatible object storage
//   - dynamo.Adapter: DynamoDB items
//   - badger.Adapter: Embedded BadgerDB
//   - redis.Adapter: Redis strings
//
// # Wrappers
//
// Wrappers compose over any inner Adapter:
//
//   - Caching: Read-through LRU record cache with write-through invalidation
//   - Compressing: Transparent content compression (zstd, lz4)
//   - RateLimited: Token-bucket throttling of backend calls
//
// # Custom Implementations
//
// Implement the Adapter interface to support custom storage backends:
//
//	type Adapter interface {
//	    Save(ctx, rec) (bool, error)        // Persist a record
//	    Load(ctx, key) (*Record, error)     // Fetch, ErrNotFound if absent
//	    Init(ctx, key, touch) (*Record, error)  // Construct a fresh record
//	    Delete(ctx, key) (bool, error)      // Remove, ErrNotFound if absent
//	}
package adapter

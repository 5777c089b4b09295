package adapter

import (
	"context"
	"os"
)

// ErrNotFound is returned when no record maps to a key.
//
// Implementations should return an error that satisfies `errors.Is(err, ErrNotFound)`.
// The default maps to `os.ErrNotExist`, so filesystem-backed adapters can
// surface stat/open errors unchanged.
var ErrNotFound = os.ErrNotExist

// Record is a key-addressed file object: a key plus an opaque content payload.
//
// The key is externally meaningful (a path, an object name). Content may be
// nil before the record is first saved; adapters persist whatever content
// they are handed and do not interpret it.
type Record struct {
	Key     string
	Content []byte
}

// NewRecord creates a record bound to key with the given content.
func NewRecord(key string, content []byte) *Record {
	return &Record{Key: key, Content: content}
}

// Empty reports whether the record carries no content.
func (r *Record) Empty() bool {
	return len(r.Content) == 0
}

// Adapter is the pluggable persistence capability consumed by the vault.
//
// Any key-value-like backing store can satisfy it: the local filesystem,
// an object store, an embedded or remote database, or an in-memory map.
// Implementations must be safe for concurrent use.
//
// Semantics the vault relies on:
//
//   - Load and Delete return ErrNotFound when no record maps to the key.
//   - Init constructs a new, empty record bound to the key without
//     persisting it; the vault issues the follow-up Save when the key
//     is to be reserved eagerly.
//   - Save persists the record it is handed, empty content included.
//     Refusing ordinary empty saves is the vault's job, not the adapter's.
type Adapter interface {
	// Save persists the record and reports whether the backend accepted it.
	Save(ctx context.Context, rec *Record) (bool, error)

	// Load returns the record stored under key.
	Load(ctx context.Context, key string) (*Record, error)

	// Init constructs a new, empty record bound to key. The touch flag is
	// advisory: adapters that can reserve a key atomically may honor it,
	// everyone else leaves persistence to the caller's follow-up Save.
	Init(ctx context.Context, key string, touch bool) (*Record, error)

	// Delete removes the record stored under key and reports whether the
	// backend removed it.
	Delete(ctx context.Context, key string) (bool, error)
}

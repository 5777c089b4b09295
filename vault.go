package filevault

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/hupe1980/filevault/adapter"
)

// Record is the key + content pair stored by a Vault.
// It aliases adapter.Record so caller code and adapter implementations
// share one type.
type Record = adapter.Record

// NewRecord creates a record bound to key with the given content.
func NewRecord(key string, content []byte) *Record {
	return adapter.NewRecord(key, content)
}

// Vault validates keys and record invariants, then delegates persistence to
// a pluggable adapter.
//
// The vault is stateless and holds no locks, caches, or buffers of its own.
// Each operation is a single synchronous call chain: validate, then one or
// two adapter calls. Whatever durability, ordering, or atomicity the adapter
// provides is what the caller gets; in particular, the load-then-create
// sequence inside Init is not atomic (see Init).
type Vault struct {
	adapter adapter.Adapter
	logger  *Logger
}

// New creates a Vault delegating to the given adapter.
func New(a adapter.Adapter, opts ...Option) *Vault {
	o := options{
		logger: NoopLogger(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return &Vault{
		adapter: a,
		logger:  o.logger,
	}
}

// Save validates the record and persists it through the adapter.
//
// The key must be valid and the content non-empty; both checks run before
// the adapter sees anything. The adapter's boolean result is returned
// unchanged, with no added durability guarantee.
func (v *Vault) Save(ctx context.Context, rec *Record) (ok bool, err error) {
	defer func() { v.logger.LogSave(ctx, recKey(rec), recSize(rec), err) }()

	if rec == nil {
		return false, fmt.Errorf("%w: nil record", ErrInvalidKey)
	}
	if err := validateKey(rec.Key); err != nil {
		return false, err
	}
	if rec.Empty() {
		return false, fmt.Errorf("%w: %q", ErrEmptyContent, rec.Key)
	}
	return v.adapter.Save(ctx, rec)
}

// Load validates the key and fetches the record through the adapter.
// ErrNotFound from the adapter propagates unchanged.
func (v *Vault) Load(ctx context.Context, key string) (rec *Record, err error) {
	defer func() { v.logger.LogLoad(ctx, key, err) }()

	if err := validateKey(key); err != nil {
		return nil, err
	}
	return v.adapter.Load(ctx, key)
}

// Init reserves a new key: it fails with ErrAlreadyExists when a record is
// already stored under key, and otherwise asks the adapter for a fresh,
// empty record.
//
// With touch set, the empty record is persisted immediately, reserving the
// key in the backing store at the cost of one extra round trip. This is the
// one sanctioned path that persists empty content; it bypasses the empty
// check Save enforces for ordinary saves. Without touch, the record is
// returned unpersisted and the key remains unclaimed.
//
// The existence probe and the create are separate adapter calls, so two
// concurrent Init calls on the same absent key can both proceed unless the
// adapter provides reserve-if-absent atomicity underneath. Errors other
// than ErrNotFound raised by the probe propagate uninterpreted.
func (v *Vault) Init(ctx context.Context, key string, touch bool) (rec *Record, err error) {
	defer func() { v.logger.LogInit(ctx, key, touch, err) }()

	if err := validateKey(key); err != nil {
		return nil, err
	}

	if _, err := v.adapter.Load(ctx, key); err == nil {
		return nil, fmt.Errorf("%w: %q", ErrAlreadyExists, key)
	} else if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	rec, err = v.adapter.Init(ctx, key, touch)
	if err != nil {
		return nil, err
	}
	if touch {
		if _, err := v.adapter.Save(ctx, rec); err != nil {
			return nil, err
		}
	}
	return rec, nil
}

// Delete validates the key and removes the record through the adapter.
// ErrNotFound from the adapter propagates unchanged; the adapter's boolean
// result is returned untouched.
func (v *Vault) Delete(ctx context.Context, key string) (ok bool, err error) {
	defer func() { v.logger.LogDelete(ctx, key, err) }()

	if err := validateKey(key); err != nil {
		return false, err
	}
	return v.adapter.Delete(ctx, key)
}

// validateKey enforces the key invariant shared by every public operation:
// non-empty after trimming surrounding whitespace. It runs before any
// adapter call, so adapters never observe an invalid key.
func validateKey(key string) error {
	if strings.TrimSpace(key) == "" {
		return fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return nil
}

func recKey(rec *Record) string {
	if rec == nil {
		return ""
	}
	return rec.Key
}

func recSize(rec *Record) int {
	if rec == nil {
		return 0
	}
	return len(rec.Content)
}

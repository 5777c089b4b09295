package badger

import (
	"context"
	"errors"

	badger "github.com/dgraph-io/badger/v3"
	"github.com/hupe1980/filevault/adapter"
)

// Adapter implements adapter.Adapter backed by an embedded BadgerDB.
//
// Badger gives durable, transactional local storage without an external
// service, which makes it a good fit for single-node deployments that have
// outgrown the plain filesystem adapter.
type Adapter struct {
	db     *badger.DB
	prefix []byte
}

// New creates a new Badger adapter on top of an opened database.
// keyPrefix namespaces all records (e.g. "filevault/"); it may be empty.
func New(db *badger.DB, keyPrefix string) *Adapter {
	return &Adapter{
		db:     db,
		prefix: []byte(keyPrefix),
	}
}

func (a *Adapter) key(k string) []byte {
	return append(append([]byte{}, a.prefix...), k...)
}

// Save persists the record in a single write transaction.
func (a *Adapter) Save(ctx context.Context, rec *adapter.Record) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	err := a.db.Update(func(txn *badger.Txn) error {
		return txn.Set(a.key(rec.Key), rec.Content)
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

// Load returns the record stored under key.
func (a *Adapter) Load(ctx context.Context, key string) (*adapter.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var content []byte
	err := a.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(a.key(key))
		if err != nil {
			return err
		}
		content, err = item.ValueCopy(nil)
		return err
	})
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
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

// Delete removes the record stored under key. The probe and the delete run
// in one transaction, so the not-found check cannot race a concurrent
// writer.
func (a *Adapter) Delete(ctx context.Context, key string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	err := a.db.Update(func(txn *badger.Txn) error {
		k := a.key(key)
		if _, err := txn.Get(k); err != nil {
			return err
		}
		return txn.Delete(k)
	})
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return false, adapter.ErrNotFound
		}
		return false, err
	}
	return true, nil
}

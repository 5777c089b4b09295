package badger

import (
	"context"
	"testing"

	badger "github.com/dgraph-io/badger/v3"
	"github.com/hupe1980/filevault/adapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) *badger.DB {
	t.Helper()

	opts := badger.DefaultOptions("").WithInMemory(true).WithLogger(nil)
	db, err := badger.Open(opts)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestAdapter_Lifecycle(t *testing.T) {
	ctx := context.Background()
	a := New(newTestDB(t), "filevault/")

	_, err := a.Load(ctx, "missing")
	assert.ErrorIs(t, err, adapter.ErrNotFound)

	_, err = a.Delete(ctx, "missing")
	assert.ErrorIs(t, err, adapter.ErrNotFound)

	ok, err := a.Save(ctx, adapter.NewRecord("k", []byte("badger content")))
	require.NoError(t, err)
	assert.True(t, ok)

	rec, err := a.Load(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "k", rec.Key)
	assert.Equal(t, []byte("badger content"), rec.Content)

	ok, err = a.Delete(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = a.Load(ctx, "k")
	assert.ErrorIs(t, err, adapter.ErrNotFound)
}

func TestAdapter_PrefixIsolation(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)

	a := New(db, "tenant-a/")
	b := New(db, "tenant-b/")

	_, err := a.Save(ctx, adapter.NewRecord("k", []byte("belongs to a")))
	require.NoError(t, err)

	_, err = b.Load(ctx, "k")
	assert.ErrorIs(t, err, adapter.ErrNotFound)

	rec, err := a.Load(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("belongs to a"), rec.Content)
}

func TestAdapter_Init(t *testing.T) {
	ctx := context.Background()
	a := New(newTestDB(t), "")

	rec, err := a.Init(ctx, "fresh", false)
	require.NoError(t, err)
	assert.Equal(t, "fresh", rec.Key)
	assert.True(t, rec.Empty())

	// Init alone writes nothing.
	_, err = a.Load(ctx, "fresh")
	assert.ErrorIs(t, err, adapter.ErrNotFound)
}

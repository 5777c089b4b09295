// Package filevault provides a validating facade over pluggable file
// storage.
//
// A Vault exposes save/load/init/delete on key-addressed file records and
// delegates actual persistence to an injected adapter.Adapter. Before any
// backend call the vault enforces two invariants: keys must be non-empty
// after trimming whitespace, and ordinary saves must carry content.
// Everything else, adapter results and errors included, passes through
// unchanged.
//
// # Quick Start
//
//	ctx := context.Background()
//	vault := filevault.New(adapter.NewLocal("./data"))
//
//	ok, err := vault.Save(ctx, filevault.NewRecord("notes/a.txt", []byte("hello")))
//	rec, err := vault.Load(ctx, "notes/a.txt")
//	rec, err = vault.Init(ctx, "notes/b.txt", true) // reserve a new key
//	ok, err = vault.Delete(ctx, "notes/a.txt")
//
// # Backends
//
// Any key-value-like store can sit underneath. Built-in adapters cover the
// local filesystem, an in-memory map, Amazon S3, DynamoDB, MinIO, BadgerDB,
// and Redis; wrappers add caching, compression, and rate limiting on top of
// any of them:
//
//	inner := s3adapter.New(client, "my-bucket", "files/")
//	vault := filevault.New(adapter.NewCaching(adapter.NewCompressing(inner, adapter.CompressionZSTD), 64<<20))
//
// # Errors
//
// Failures are sentinel errors classified with errors.Is: ErrInvalidKey and
// ErrEmptyContent from the vault's own validation, ErrNotFound and
// ErrAlreadyExists for existence conflicts. Anything else an adapter raises
// propagates untranslated.
//
// # Concurrency
//
// The vault holds no shared mutable state and introduces no locking of its
// own. Init's existence probe and the subsequent create are separate
// adapter calls: concurrent Init races on the same key are only excluded
// when the adapter itself reserves atomically.
package filevault

// Package s3 provides an S3 implementation of the adapter.Adapter interface.
//
// # Usage
//
//	cfg, _ := config.LoadDefaultConfig(ctx)
//	client := s3.NewFromConfig(cfg)
//	a := s3adapter.New(client, "my-bucket", "files/")
//
//	vault := filevault.New(a)
//
// # Features
//
//   - Multipart uploads for large records
//   - NotFound/NoSuchKey translation to adapter.ErrNotFound
//   - Configurable prefix for multi-tenant isolation
package s3

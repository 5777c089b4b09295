// Package dynamo provides a DynamoDB implementation of the adapter.Adapter
// interface. Records are stored as items with the key as partition key and
// the content as a binary attribute.
//
// DynamoDB suits small, hot records (item size is capped at 400KB);
// for large payloads prefer the s3 or minio adapters.
package dynamo

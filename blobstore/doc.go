// Package blobstore provides read access to the blobs that hold rule
// documents.
//
// # Built-in Implementations
//
//   - LocalStore: a local directory, files are memory mapped
//   - MemoryStore: in-memory blobs for tests and embedded rule sets
//   - s3.Store: Amazon S3 with ranged reads and parallel downloads
//   - minio.Store: MinIO and other S3-compatible services
//
// # Custom Implementations
//
// Implement the BlobStore interface to support custom storage backends:
//
//	type BlobStore interface {
//	    Open(ctx, name) (Blob, error)
//	    List(ctx, prefix) ([]string, error)
//	}
//
// ReadAll fetches a whole blob using the most efficient path a store offers.
package blobstore

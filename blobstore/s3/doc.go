// Package s3 provides an S3 implementation of the blobstore.BlobStore interface.
//
// # Usage
//
//	store, err := s3.New(ctx, "my-bucket",
//	    s3.WithPrefix("rules/"),
//	    s3.WithRegion("us-east-1"),
//	)
//
//	report, err := rules.Load(ctx, store, "", builder)
//
// # Features
//
//   - Range reads for partial fetches
//   - Parallel part downloads for whole documents
//   - Automatic pagination for listing
//   - Configurable prefix
package s3

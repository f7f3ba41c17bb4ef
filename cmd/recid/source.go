package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hupe1980/recid/blobstore"
	minioblob "github.com/hupe1980/recid/blobstore/minio"
	s3blob "github.com/hupe1980/recid/blobstore/s3"
)

// source is a parsed --rules argument. If names is set, exactly those blobs
// are loaded; otherwise every supported blob under prefix.
type source struct {
	store  blobstore.BlobStore
	prefix string
	names  []string
}

type sourceFlags struct {
	region      string
	concurrency int
	rateLimit   float64
}

func openSource(ctx context.Context, src string, f sourceFlags) (*source, error) {
	switch {
	case strings.HasPrefix(src, "s3://"):
		bucket, prefix, _ := strings.Cut(strings.TrimPrefix(src, "s3://"), "/")
		if bucket == "" {
			return nil, fmt.Errorf("invalid source %q: missing bucket", src)
		}
		store, err := s3blob.New(ctx, bucket,
			s3blob.WithRegion(f.region),
			s3blob.WithConcurrency(f.concurrency),
		)
		if err != nil {
			return nil, err
		}
		return &source{store: store, prefix: prefix}, nil

	case strings.HasPrefix(src, "minio://"):
		parts := strings.SplitN(strings.TrimPrefix(src, "minio://"), "/", 3)
		if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
			return nil, fmt.Errorf("invalid source %q: want minio://host:port/bucket/prefix", src)
		}
		prefix := ""
		if len(parts) == 3 {
			prefix = parts[2]
		}
		store, err := minioblob.Dial(parts[0],
			os.Getenv("MINIO_ACCESS_KEY"),
			os.Getenv("MINIO_SECRET_KEY"),
			os.Getenv("MINIO_SECURE") == "true",
			parts[1], "")
		if err != nil {
			return nil, err
		}
		return &source{store: store, prefix: prefix}, nil

	default:
		fi, err := os.Stat(src)
		if err != nil {
			return nil, err
		}
		if fi.IsDir() {
			return &source{store: blobstore.NewLocalStore(src)}, nil
		}
		return &source{
			store: blobstore.NewLocalStore(filepath.Dir(src)),
			names: []string{filepath.Base(src)},
		}, nil
	}
}

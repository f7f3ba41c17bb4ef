package s3

import (
	"context"
	"fmt"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/hupe1980/recid/blobstore"
)

// Store implements blobstore.BlobStore and blobstore.Downloader for S3.
type Store struct {
	client     Client
	bucket     string
	prefix     string
	downloader *manager.Downloader
}

// Options configures a Store.
type Options struct {
	// Prefix is prepended to all keys (e.g. "rules/").
	Prefix string
	// Region overrides the region of the default AWS config.
	Region string
	// PartSize is the size of each ranged GET used by Download.
	// Zero keeps the manager default.
	PartSize int64
	// Concurrency is the number of parallel part downloads.
	// Zero keeps the manager default.
	Concurrency int
}

// Option configures a Store.
type Option func(*Options)

// WithPrefix sets the key prefix.
func WithPrefix(prefix string) Option {
	return func(o *Options) { o.Prefix = prefix }
}

// WithRegion sets the AWS region.
func WithRegion(region string) Option {
	return func(o *Options) { o.Region = region }
}

// WithPartSize sets the download part size in bytes.
func WithPartSize(n int64) Option {
	return func(o *Options) { o.PartSize = n }
}

// WithConcurrency sets the number of parallel part downloads.
func WithConcurrency(n int) Option {
	return func(o *Options) { o.Concurrency = n }
}

// New loads the default AWS configuration and returns a Store for bucket.
func New(ctx context.Context, bucket string, optFns ...Option) (*Store, error) {
	opts := Options{}
	for _, fn := range optFns {
		fn(&opts)
	}

	var loadOpts []func(*config.LoadOptions) error
	if opts.Region != "" {
		loadOpts = append(loadOpts, config.WithRegion(opts.Region))
	}

	cfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("s3: load aws config: %w", err)
	}

	return NewStore(s3.NewFromConfig(cfg), bucket, optFns...), nil
}

// NewStore creates a Store from an existing client.
func NewStore(client Client, bucket string, optFns ...Option) *Store {
	opts := Options{}
	for _, fn := range optFns {
		fn(&opts)
	}

	return &Store{
		client: client,
		bucket: bucket,
		prefix: opts.Prefix,
		downloader: manager.NewDownloader(client, func(d *manager.Downloader) {
			if opts.PartSize > 0 {
				d.PartSize = opts.PartSize
			}
			if opts.Concurrency > 0 {
				d.Concurrency = opts.Concurrency
			}
		}),
	}
}

func (s *Store) key(name string) string {
	return path.Join(s.prefix, name)
}

// Open returns a handle that reads the object with ranged GETs.
func (s *Store) Open(ctx context.Context, name string) (blobstore.Blob, error) {
	return openBlob(ctx, s.client, s.bucket, s.key(name))
}

// List returns all keys under prefix, relative to the store prefix.
func (s *Store) List(ctx context.Context, prefix string) ([]string, error) {
	return listObjects(ctx, s.client, s.bucket, s.key(prefix), s.prefix)
}

// Download fetches a whole object with parallel part downloads.
func (s *Store) Download(ctx context.Context, name string) ([]byte, error) {
	b, err := openBlob(ctx, s.client, s.bucket, s.key(name))
	if err != nil {
		return nil, err
	}

	buf := manager.NewWriteAtBuffer(make([]byte, 0, b.size))
	if b.size == 0 {
		return buf.Bytes(), nil
	}
	if _, err := s.downloader.Download(ctx, buf, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(b.key),
	}); err != nil {
		return nil, fmt.Errorf("s3: download %s: %w", name, err)
	}
	return buf.Bytes(), nil
}

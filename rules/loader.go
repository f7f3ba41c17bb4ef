package rules

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/recid"
	"github.com/hupe1980/recid/blobstore"
	"github.com/hupe1980/recid/index"
)

// Skip describes a rule that was not registered.
type Skip struct {
	// Source is the blob name.
	Source string
	// Index is the 0-based position of the rule within its blob.
	Index int
	// Rule is the rule as decoded.
	Rule Rule
	Err  error
}

// Report summarizes a load.
type Report struct {
	// Blobs is the number of blobs read.
	Blobs int
	// Rules is the number of rules registered.
	Rules int
	// Skipped lists rules that were not registered, in load order.
	Skipped []Skip
}

// Loader reads rule documents and registers them into a builder.
// A Loader is safe for concurrent use; each Load must target its own builder.
type Loader struct {
	opts options
}

// NewLoader creates a Loader.
func NewLoader(optFns ...Option) *Loader {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Loader{opts: opts}
}

// Load is a shorthand for NewLoader(optFns...).Load.
func Load(ctx context.Context, store blobstore.BlobStore, prefix string, b *index.Builder[string], optFns ...Option) (Report, error) {
	return NewLoader(optFns...).Load(ctx, store, prefix, b)
}

// Load registers the rules of every blob under prefix that passes the
// filter.
func (l *Loader) Load(ctx context.Context, store blobstore.BlobStore, prefix string, b *index.Builder[string]) (Report, error) {
	names, err := store.List(ctx, prefix)
	if err != nil {
		return Report{}, fmt.Errorf("rules: list %q: %w", prefix, err)
	}

	selected := names[:0:0]
	for _, name := range names {
		if l.opts.filter(name) {
			selected = append(selected, name)
		}
	}
	return l.LoadBlobs(ctx, store, selected, b)
}

// LoadBlobs registers the rules of the named blobs, in the given order.
// Decoding and I/O errors abort the load; the builder then holds the rules
// of the blobs before the failing one.
func (l *Loader) LoadBlobs(ctx context.Context, store blobstore.BlobStore, names []string, b *index.Builder[string]) (Report, error) {
	start := time.Now()

	docs, err := l.fetch(ctx, store, names)
	if err != nil {
		l.opts.logger.LogLoad(ctx, 0, 0, err)
		return Report{}, err
	}

	report := Report{Blobs: len(names)}
	for i, rules := range docs {
		if err := l.register(ctx, names[i], rules, b, &report); err != nil {
			l.opts.logger.LogLoad(ctx, report.Rules, len(report.Skipped), err)
			return report, err
		}
	}

	l.opts.metrics.RecordLoad(report.Rules, len(report.Skipped), time.Since(start))
	l.opts.logger.LogLoad(ctx, report.Rules, len(report.Skipped), nil)
	return report, nil
}

func (l *Loader) fetch(ctx context.Context, store blobstore.BlobStore, names []string) ([][]Rule, error) {
	docs := make([][]Rule, len(names))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(l.opts.concurrency)
	for i, name := range names {
		g.Go(func() error {
			if l.opts.limiter != nil {
				if err := l.opts.limiter.Wait(gctx); err != nil {
					return err
				}
			}
			data, err := blobstore.ReadAll(gctx, store, name)
			if err != nil {
				return fmt.Errorf("rules: read %s: %w", name, err)
			}
			rules, err := Decode(name, data, l.opts.codec)
			if err != nil {
				return err
			}
			docs[i] = rules
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return docs, nil
}

func (l *Loader) register(ctx context.Context, source string, rules []Rule, b *index.Builder[string], report *Report) error {
	for i, r := range rules {
		if err := ctx.Err(); err != nil {
			return err
		}

		id, err := l.classify(r)
		if err == nil {
			err = b.Add(id, r.Value)
		}
		switch {
		case err == nil:
			report.Rules++
		case errors.Is(err, index.ErrFrozen):
			return err
		default:
			report.Skipped = append(report.Skipped, Skip{Source: source, Index: i, Rule: r, Err: err})
			l.opts.logger.WarnContext(ctx, "rule skipped",
				"source", source,
				"index", i,
				"id", r.ID,
				"error", err,
			)
		}
	}
	return nil
}

// classify turns a rule id and limit into an ID.
func (l *Loader) classify(r Rule) (recid.ID, error) {
	var id recid.ID
	if rest, ok := strings.CutPrefix(r.ID, "*"); ok && rest != "" {
		id, _, _ = l.opts.classifier.Classify(rest)
		if id.Kind() == recid.KindName {
			id = id.WithWildcard(true)
		} else {
			id = recid.NewInvalid(r.ID)
		}
	} else {
		id, _, _ = l.opts.classifier.Classify(r.ID)
	}

	if r.Limit != "" {
		mask, err := recid.ParseFieldMask(r.Limit)
		if err != nil {
			return recid.ID{}, fmt.Errorf("%w: %w", ErrInvalidLimit, err)
		}
		id = id.WithLimit(mask)
	}
	return id, nil
}

package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/hupe1980/recid"
	"github.com/hupe1980/recid/codec"
	"github.com/hupe1980/recid/index"
	"github.com/hupe1980/recid/rules"
)

type loadFlags struct {
	rules  string
	strict bool
	codec  string
	source sourceFlags
}

func (f *loadFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.rules, "rules", "", "Rule source: directory, file, s3://bucket/prefix or minio://host/bucket/prefix")
	cmd.Flags().BoolVar(&f.strict, "strict", false, "Only accept alphanumeric names in rule ids")
	cmd.Flags().StringVar(&f.codec, "codec", "go-json", "JSON codec for rule documents (go-json, json, go-json-strict, json-strict)")
	cmd.Flags().StringVar(&f.source.region, "region", "", "AWS region for s3:// sources")
	cmd.Flags().IntVar(&f.source.concurrency, "concurrency", 0, "Parallel blob downloads (0 = default)")
	cmd.Flags().Float64Var(&f.source.rateLimit, "rate-limit", 0, "Maximum blob opens per second (0 = unlimited)")
	_ = cmd.MarkFlagRequired("rules")
}

// load reads the rule source into a frozen index.
func (f *loadFlags) load(ctx context.Context, e *env) (*index.Index[string], rules.Report, error) {
	c, err := codec.ByName(f.codec)
	if err != nil {
		return nil, rules.Report{}, err
	}

	src, err := openSource(ctx, f.rules, f.source)
	if err != nil {
		return nil, rules.Report{}, err
	}

	var copts []recid.ClassifierOption
	if f.strict {
		copts = append(copts, recid.WithStrictNames())
	}

	b := index.NewBuilder[string](index.WithLogger(e.logger), index.WithMetrics(e.metrics))
	l := rules.NewLoader(
		rules.WithLogger(e.logger),
		rules.WithMetrics(e.metrics),
		rules.WithClassifier(recid.NewClassifier(copts...)),
		rules.WithCodec(c),
		rules.WithConcurrency(f.source.concurrency),
		rules.WithRateLimit(f.source.rateLimit, 1),
	)

	var report rules.Report
	if src.names != nil {
		report, err = l.LoadBlobs(ctx, src.store, src.names, b)
	} else {
		report, err = l.Load(ctx, src.store, src.prefix, b)
	}
	if err != nil {
		return nil, report, err
	}
	return b.Freeze(), report, nil
}

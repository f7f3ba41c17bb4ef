package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"

	"github.com/hupe1980/recid"
	"github.com/hupe1980/recid/prommetrics"
)

type globalFlags struct {
	logLevel  string
	logFormat string
	metrics   bool
}

// env holds what every command needs after flag parsing.
type env struct {
	logger   *recid.Logger
	registry *prometheus.Registry
	metrics  recid.MetricsCollector
}

func (g *globalFlags) env(stderr io.Writer) (*env, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(g.logLevel)); err != nil {
		return nil, fmt.Errorf("invalid --log-level %q", g.logLevel)
	}

	e := &env{metrics: recid.NoopMetricsCollector{}}
	hopts := &slog.HandlerOptions{Level: level}
	switch strings.ToLower(g.logFormat) {
	case "text":
		e.logger = recid.NewLogger(slog.NewTextHandler(stderr, hopts))
	case "json":
		e.logger = recid.NewLogger(slog.NewJSONHandler(stderr, hopts))
	default:
		return nil, fmt.Errorf("invalid --log-format %q: want text or json", g.logFormat)
	}

	if g.metrics {
		e.registry = prometheus.NewRegistry()
		c, err := prommetrics.New(e.registry)
		if err != nil {
			return nil, err
		}
		e.metrics = c
	}
	return e, nil
}

// writeMetrics prints the gathered series in the Prometheus text format.
func (e *env) writeMetrics(w io.Writer) error {
	if e.registry == nil {
		return nil
	}
	families, err := e.registry.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}

func newRootCmd() *cobra.Command {
	g := &globalFlags{}

	cmd := &cobra.Command{
		Use:   "recid",
		Short: "Classify record identifiers and match records against rules",
		Long: `recid classifies identifier strings (FormIDs, FormKeys, ModKeys and
EditorIDs) and matches records against rule documents read from a local
directory, S3 or MinIO.

Rule sources:
  ./rules                          local directory or single file
  s3://bucket/prefix               AWS S3, default credential chain
  minio://host:port/bucket/prefix  MinIO, MINIO_ACCESS_KEY / MINIO_SECRET_KEY`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&g.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&g.logFormat, "log-format", "text", "Log format (text, json)")
	cmd.PersistentFlags().BoolVar(&g.metrics, "metrics", false, "Print Prometheus metrics to stderr on exit")

	cmd.AddCommand(
		newClassifyCmd(),
		newMatchCmd(g),
		newStatsCmd(g),
	)
	return cmd
}

func commandEnv(cmd *cobra.Command, g *globalFlags) (*env, error) {
	return g.env(cmd.ErrOrStderr())
}

package profile

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"

	"srscli/internal/dataset"
)

// Explorer profiles one loaded dataset. It holds an immutable reference to
// the dataset plus the derived flag indicating whether the dataset is
// backed by a multi-worker engine session.
type Explorer struct {
	ds                *dataset.Dataset
	logger            *slog.Logger
	out               io.Writer
	maxValueCountRows int
	workers           int
	distributed       bool
}

// Config holds configuration options for the Explorer
type Config struct {
	MaxValueCountRows int       // Maximum displayed rows per value-count table
	Workers           int       // Fan-out width for per-column computation
	Out               io.Writer // Report destination, defaults to stdout
}

// DefaultConfig returns a default configuration for typical use cases
func DefaultConfig() Config {
	return Config{
		MaxValueCountRows: 20,
		Workers:           4,
	}
}

// Options selects which reports Explore renders. Each switch triggers one
// report independently; any combination may be true in one call.
type Options struct {
	Schema      bool
	Overview    bool
	Summary     bool
	Nulls       bool
	Duplicates  bool
	ValueCounts bool
}

// AllOptions returns Options with every report selected
func AllOptions() Options {
	return Options{
		Schema:      true,
		Overview:    true,
		Summary:     true,
		Nulls:       true,
		Duplicates:  true,
		ValueCounts: true,
	}
}

// none reports whether no switch is set
func (o Options) none() bool {
	return !o.Schema && !o.Overview && !o.Summary && !o.Nulls && !o.Duplicates && !o.ValueCounts
}

// NewExplorer creates an explorer over the given dataset
func NewExplorer(ds *dataset.Dataset, logger *slog.Logger, cfg Config) *Explorer {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.MaxValueCountRows <= 0 {
		cfg.MaxValueCountRows = 20
	}
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	if cfg.Out == nil {
		cfg.Out = os.Stdout
	}

	return &Explorer{
		ds:                ds,
		logger:            logger,
		out:               cfg.Out,
		maxValueCountRows: cfg.MaxValueCountRows,
		workers:           cfg.Workers,
		distributed:       ds.Distributed(),
	}
}

// Explore computes and renders the reports selected by opts, in a fixed
// order: schema, overview, summary, nulls, duplicates, value counts.
// With no switch set it is a no-op with no output.
func (e *Explorer) Explore(ctx context.Context, opts Options) error {
	if opts.none() {
		return nil
	}

	e.logger.InfoContext(ctx, "exploring dataset",
		slog.String("source", e.ds.SourcePath()),
		slog.String("session", e.ds.Session()),
		slog.Bool("distributed", e.distributed),
		slog.Int("row_count", e.ds.RowCount()))

	if opts.Schema {
		if err := e.renderSchema(e.SchemaReport()); err != nil {
			return err
		}
	}
	if opts.Overview {
		if err := e.renderOverview(e.Overview()); err != nil {
			return err
		}
	}
	if opts.Summary {
		report, err := e.Summary(ctx)
		if err != nil {
			return err
		}
		if err := e.renderSummary(report); err != nil {
			return err
		}
	}
	if opts.Nulls {
		report, err := e.Nulls(ctx)
		if err != nil {
			return err
		}
		if err := e.renderNulls(report); err != nil {
			return err
		}
	}
	if opts.Duplicates {
		if err := e.renderDuplicates(e.Duplicates()); err != nil {
			return err
		}
	}
	if opts.ValueCounts {
		report, err := e.ValueCounts(ctx)
		if err != nil {
			return err
		}
		if err := e.renderValueCounts(report); err != nil {
			return err
		}
	}

	return nil
}

// Profile computes every report over the dataset for export
func (e *Explorer) Profile(ctx context.Context) (*Profile, error) {
	summary, err := e.Summary(ctx)
	if err != nil {
		return nil, err
	}
	nulls, err := e.Nulls(ctx)
	if err != nil {
		return nil, err
	}
	valueCounts, err := e.ValueCounts(ctx)
	if err != nil {
		return nil, err
	}

	return &Profile{
		Source:      e.ds.SourcePath(),
		Session:     e.ds.Session(),
		Distributed: e.distributed,
		GeneratedAt: time.Now().UTC(),
		Overview:    e.Overview(),
		Schema:      e.SchemaReport(),
		Summary:     summary,
		Nulls:       nulls,
		Duplicates:  e.Duplicates(),
		ValueCounts: valueCounts,
	}, nil
}

// Command profiler loads a retail sales dataset and prints the selected
// profiling reports, optionally exporting the full profile to report files.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"srscli/internal/config"
	"srscli/internal/dataset"
	"srscli/internal/exporter"
	"srscli/internal/files"
	"srscli/internal/infrastructure"
	"srscli/internal/profile"
)

func main() {
	input := flag.String("input", "", "dataset file (.csv, .xlsx or .xls); defaults to the newest file under data.raw_dir")
	sheet := flag.String("sheet", "", "workbook sheet name (first sheet when empty)")
	schema := flag.Bool("schema", false, "print column names with inferred types and nullability")
	overview := flag.Bool("overview", false, "print row count and the ordered column names")
	summary := flag.Bool("summary", false, "print per-column descriptive statistics")
	nulls := flag.Bool("nulls", false, "print per-column missing-value counts")
	duplicates := flag.Bool("duplicates", false, "print the count of fully-duplicate rows")
	valueCounts := flag.Bool("value-counts", false, "print per-column value frequencies")
	all := flag.Bool("all", false, "print every report")
	export := flag.Bool("export", false, "write the full profile to the reports directory")
	out := flag.String("out", "", "reports directory (defaults to export.reports_dir)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Warn("Failed to load config, using defaults", "error", err)
		cfg = config.Default()
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("Failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}
	defer infrastructure.CloseLogFile()

	ctx := infrastructure.ContextWithTraceID(context.Background())

	logger.InfoContext(ctx, "starting profiler",
		slog.String("app_name", cfg.Engine.AppName),
		slog.String("raw_dir", cfg.Data.RawDir),
		slog.String("tracking_experiment", cfg.Tracking.Experiment),
		slog.Bool("use_new_preprocessor", cfg.General.FeatureFlags.UseNewPreprocessor))

	path := *input
	if path == "" {
		latest, err := files.NewDiscovery(cfg.Data.RawDir).Latest("")
		if err != nil {
			logger.ErrorContext(ctx, "no input dataset found",
				slog.String("raw_dir", cfg.Data.RawDir),
				slog.String("error", err.Error()))
			os.Exit(1)
		}
		path = latest.Path
		logger.InfoContext(ctx, "discovered input dataset", slog.String("path", path))
	}

	loader := dataset.NewLoader(logger, cfg.Engine)
	var ds *dataset.Dataset
	if isWorkbook(path) {
		ds, err = loader.LoadWorkbook(ctx, path, *sheet)
	} else {
		ds, err = loader.LoadCSV(ctx, path)
	}
	if err != nil {
		logger.ErrorContext(ctx, "failed to load dataset",
			slog.String("path", path),
			slog.String("error", err.Error()))
		os.Exit(1)
	}

	opts := buildOptions(*all, *schema, *overview, *summary, *nulls, *duplicates, *valueCounts)

	explorer := profile.NewExplorer(ds, logger, profile.Config{
		MaxValueCountRows: 20,
		Workers:           cfg.Engine.Workers,
	})

	if err := explorer.Explore(ctx, opts); err != nil {
		logger.ErrorContext(ctx, "exploration failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if *export {
		reportsDir := cfg.Export.ReportsDir
		if *out != "" {
			reportsDir = *out
		}

		p, err := explorer.Profile(ctx)
		if err != nil {
			logger.ErrorContext(ctx, "profile computation failed", slog.String("error", err.Error()))
			os.Exit(1)
		}

		written, err := exporter.New(reportsDir, logger).Export(ctx, p, cfg.Export.Formats)
		if err != nil {
			logger.ErrorContext(ctx, "export failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		logger.InfoContext(ctx, "reports written",
			slog.String("reports_dir", reportsDir),
			slog.Any("paths", written))
	}
}

// buildOptions maps the CLI switches onto explorer options
func buildOptions(all, schema, overview, summary, nulls, duplicates, valueCounts bool) profile.Options {
	if all {
		return profile.AllOptions()
	}
	return profile.Options{
		Schema:      schema,
		Overview:    overview,
		Summary:     summary,
		Nulls:       nulls,
		Duplicates:  duplicates,
		ValueCounts: valueCounts,
	}
}

// isWorkbook reports whether the path points at an Excel workbook
func isWorkbook(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xls":
		return true
	}
	return false
}

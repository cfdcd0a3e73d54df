package exporter

import (
	"context"
	"encoding/csv"
	"log/slog"
	"os"
	"path/filepath"

	"srscli/internal/errors"
	"srscli/internal/profile"
)

// writeOptions configures CSV writing behavior
type writeOptions struct {
	Headers   []string
	Records   [][]string
	BOMPrefix bool // Add UTF-8 BOM for Excel compatibility
}

// WriteCSV writes the profile as two CSV files: <base>_summary.csv with
// per-column statistics (including null counts) and <base>_value_counts.csv
// with the frequency tables. It returns the paths written.
func (e *Exporter) WriteCSV(ctx context.Context, p *profile.Profile, base string) ([]string, error) {
	if err := e.ensureReportsDir(); err != nil {
		return nil, err
	}

	summaryPath := filepath.Join(e.reportsDir, base+"_summary.csv")
	if err := e.writeCSVFile(ctx, summaryPath, writeOptions{
		Headers:   summaryHeader,
		Records:   summaryRows(p),
		BOMPrefix: true,
	}); err != nil {
		return nil, err
	}

	countsPath := filepath.Join(e.reportsDir, base+"_value_counts.csv")
	if err := e.writeCSVFile(ctx, countsPath, writeOptions{
		Headers:   valueCountHeader,
		Records:   valueCountRows(p),
		BOMPrefix: true,
	}); err != nil {
		return nil, err
	}

	return []string{summaryPath, countsPath}, nil
}

// writeCSVFile writes one CSV file with the given options
func (e *Exporter) writeCSVFile(ctx context.Context, path string, options writeOptions) error {
	e.logger.InfoContext(ctx, "writing CSV report",
		slog.String("path", path),
		slog.Int("record_count", len(options.Records)))

	file, err := os.Create(path)
	if err != nil {
		return errors.NewStorageError("failed to create CSV report", err).
			WithContext("path", path)
	}
	defer file.Close()

	// BOM helps Excel recognize UTF-8
	if options.BOMPrefix {
		if _, err := file.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
			return errors.NewStorageError("failed to write BOM", err).
				WithContext("path", path)
		}
	}

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if len(options.Headers) > 0 {
		if err := writer.Write(options.Headers); err != nil {
			return errors.NewStorageError("failed to write CSV header row", err).
				WithContext("path", path)
		}
	}
	for _, record := range options.Records {
		if err := writer.Write(record); err != nil {
			return errors.NewStorageError("failed to write CSV data row", err).
				WithContext("path", path)
		}
	}

	writer.Flush()
	return writer.Error()
}

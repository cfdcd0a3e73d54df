package exporter

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"srscli/internal/errors"
	"srscli/internal/profile"
)

// Exporter writes computed dataset profiles to report files under the
// configured reports directory.
type Exporter struct {
	reportsDir string
	logger     *slog.Logger
}

// New creates an exporter writing into reportsDir
func New(reportsDir string, logger *slog.Logger) *Exporter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Exporter{reportsDir: reportsDir, logger: logger}
}

// Export writes the profile in each requested format. Supported formats
// are "csv", "json" and "xlsx". It returns the paths written.
func (e *Exporter) Export(ctx context.Context, p *profile.Profile, formats []string) ([]string, error) {
	base := baseName(p.Source)

	var written []string
	for _, format := range formats {
		switch strings.ToLower(format) {
		case "csv":
			paths, err := e.WriteCSV(ctx, p, base)
			if err != nil {
				return written, err
			}
			written = append(written, paths...)
		case "json":
			path, err := e.WriteJSON(ctx, p, base)
			if err != nil {
				return written, err
			}
			written = append(written, path)
		case "xlsx":
			path, err := e.WriteWorkbook(ctx, p, base)
			if err != nil {
				return written, err
			}
			written = append(written, path)
		default:
			return written, errors.NewValidationError(fmt.Sprintf("unsupported export format %q", format))
		}
	}

	e.logger.InfoContext(ctx, "profile exported",
		slog.String("source", p.Source),
		slog.Int("file_count", len(written)))

	return written, nil
}

// ensureReportsDir creates the reports directory when missing
func (e *Exporter) ensureReportsDir() error {
	if err := os.MkdirAll(e.reportsDir, 0755); err != nil {
		return errors.NewStorageError("failed to create reports directory", err).
			WithContext("path", e.reportsDir)
	}
	return nil
}

// baseName derives the report file stem from the dataset source path
func baseName(source string) string {
	name := filepath.Base(source)
	if ext := filepath.Ext(name); ext != "" {
		name = strings.TrimSuffix(name, ext)
	}
	if name == "" || name == "." {
		name = "dataset"
	}
	return name + "_profile"
}

// formatFloat formats statistics trimming insignificant zeros
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// summaryRows flattens the summary report into CSV/sheet rows. Numeric
// statistics are blank for string columns.
func summaryRows(p *profile.Profile) [][]string {
	nullsByColumn := make(map[string]int, len(p.Nulls.Columns))
	for _, col := range p.Nulls.Columns {
		nullsByColumn[col.Name] = col.Nulls
	}

	rows := make([][]string, 0, len(p.Summary.Columns))
	for _, col := range p.Summary.Columns {
		row := []string{
			col.Name,
			string(col.Type),
			strconv.Itoa(col.Count),
			strconv.Itoa(nullsByColumn[col.Name]),
			"", "", col.Min, "", "", "", col.Max,
		}
		if n := col.Numeric; n != nil {
			row[4] = formatFloat(n.Mean)
			row[5] = formatFloat(n.StdDev)
			row[6] = formatFloat(n.Min)
			row[7] = formatFloat(n.Q25)
			row[8] = formatFloat(n.Median)
			row[9] = formatFloat(n.Q75)
			row[10] = formatFloat(n.Max)
		}
		rows = append(rows, row)
	}
	return rows
}

// summaryHeader is the column order used by summaryRows
var summaryHeader = []string{
	"Column", "Type", "Count", "Nulls",
	"Mean", "StdDev", "Min", "Q25", "Median", "Q75", "Max",
}

// valueCountRows flattens the value-count report into CSV/sheet rows
func valueCountRows(p *profile.Profile) [][]string {
	var rows [][]string
	for _, col := range p.ValueCounts.Columns {
		for _, vc := range col.Values {
			rows = append(rows, []string{col.Name, vc.Value, strconv.Itoa(vc.Count)})
		}
	}
	return rows
}

// valueCountHeader is the column order used by valueCountRows
var valueCountHeader = []string{"Column", "Value", "Count"}

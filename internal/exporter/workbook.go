package exporter

import (
	"context"
	"log/slog"
	"path/filepath"
	"strconv"

	"github.com/xuri/excelize/v2"

	"srscli/internal/errors"
	"srscli/internal/profile"
)

// WriteWorkbook writes the profile as an Excel workbook with one sheet per
// report and returns the path written.
func (e *Exporter) WriteWorkbook(ctx context.Context, p *profile.Profile, base string) (string, error) {
	if err := e.ensureReportsDir(); err != nil {
		return "", err
	}

	path := filepath.Join(e.reportsDir, base+".xlsx")
	e.logger.InfoContext(ctx, "writing workbook report", slog.String("path", path))

	f := excelize.NewFile()
	defer f.Close()

	overviewRows := [][]any{
		{"Source", p.Source},
		{"Session", p.Session},
		{"Distributed", p.Distributed},
		{"Generated At", p.GeneratedAt.Format("2006-01-02 15:04:05")},
		{"Rows", p.Overview.RowCount},
		{"Columns", len(p.Overview.Columns)},
		{"Duplicate Rows", p.Duplicates.Count},
	}
	if err := writeSheet(f, "Overview", nil, overviewRows); err != nil {
		return "", wrapWorkbookErr(err, path)
	}

	schemaRows := make([][]any, 0, len(p.Schema.Columns))
	for _, col := range p.Schema.Columns {
		schemaRows = append(schemaRows, []any{col.Name, string(col.Type), col.Nullable})
	}
	if err := writeSheet(f, "Schema", []any{"Column", "Type", "Nullable"}, schemaRows); err != nil {
		return "", wrapWorkbookErr(err, path)
	}

	if err := writeSheet(f, "Summary", toAnyRow(summaryHeader), toAnyRows(summaryRows(p))); err != nil {
		return "", wrapWorkbookErr(err, path)
	}

	nullRows := make([][]any, 0, len(p.Nulls.Columns))
	for _, col := range p.Nulls.Columns {
		nullRows = append(nullRows, []any{col.Name, col.Nulls})
	}
	if err := writeSheet(f, "Nulls", []any{"Column", "Nulls"}, nullRows); err != nil {
		return "", wrapWorkbookErr(err, path)
	}

	if err := writeSheet(f, "Value Counts", toAnyRow(valueCountHeader), toAnyRows(valueCountRows(p))); err != nil {
		return "", wrapWorkbookErr(err, path)
	}

	// The default sheet carries the overview
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return "", wrapWorkbookErr(err, path)
	}
	if err := f.SaveAs(path); err != nil {
		return "", wrapWorkbookErr(err, path)
	}

	return path, nil
}

// writeSheet creates a sheet and fills it with an optional header plus rows
func writeSheet(f *excelize.File, name string, header []any, rows [][]any) error {
	if _, err := f.NewSheet(name); err != nil {
		return err
	}

	rowIdx := 1
	if header != nil {
		cell, err := excelize.CoordinatesToCellName(1, rowIdx)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(name, cell, &header); err != nil {
			return err
		}
		rowIdx++
	}

	for _, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, rowIdx)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(name, cell, &row); err != nil {
			return err
		}
		rowIdx++
	}

	return nil
}

// toAnyRow converts a string row for SetSheetRow, keeping numerics numeric
func toAnyRow(row []string) []any {
	out := make([]any, len(row))
	for i, cell := range row {
		if n, err := strconv.ParseFloat(cell, 64); err == nil && cell != "" {
			out[i] = n
			continue
		}
		out[i] = cell
	}
	return out
}

// toAnyRows converts string rows for SetSheetRow
func toAnyRows(rows [][]string) [][]any {
	out := make([][]any, len(rows))
	for i, row := range rows {
		out[i] = toAnyRow(row)
	}
	return out
}

// wrapWorkbookErr wraps excelize errors in the storage taxonomy
func wrapWorkbookErr(err error, path string) error {
	return errors.NewStorageError("failed to write workbook report", err).
		WithContext("path", path)
}

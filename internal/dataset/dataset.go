package dataset

import (
	"fmt"
	"strconv"
)

// Dataset is an immutable in-memory table of sales records sharing a fixed
// schema. Cells are stored as raw strings exactly as read from the source;
// typed access goes through the schema.
type Dataset struct {
	schema      Schema
	rows        [][]string
	sourcePath  string
	session     string
	distributed bool
}

// RowCount returns the number of data rows (header excluded)
func (d *Dataset) RowCount() int {
	return len(d.rows)
}

// ColumnCount returns the number of columns
func (d *Dataset) ColumnCount() int {
	return len(d.schema)
}

// Schema returns the dataset schema in header order
func (d *Dataset) Schema() Schema {
	return d.schema
}

// ColumnNames returns the column names in header order
func (d *Dataset) ColumnNames() []string {
	return d.schema.Names()
}

// Row returns the raw cells of row i
func (d *Dataset) Row(i int) []string {
	return d.rows[i]
}

// Value returns the raw cell at the given row and column index
func (d *Dataset) Value(row, col int) string {
	return d.rows[row][col]
}

// ColumnValues returns all raw values of the named column in row order
func (d *Dataset) ColumnValues(name string) ([]string, error) {
	idx := d.schema.Index(name)
	if idx < 0 {
		return nil, fmt.Errorf("unknown column %q", name)
	}
	values := make([]string, len(d.rows))
	for i, row := range d.rows {
		values[i] = row[idx]
	}
	return values, nil
}

// SourcePath returns the path the dataset was loaded from
func (d *Dataset) SourcePath() string {
	return d.sourcePath
}

// Session returns the engine session name the dataset was loaded under
func (d *Dataset) Session() string {
	return d.session
}

// Distributed reports whether the dataset is backed by a multi-worker
// engine session
func (d *Dataset) Distributed() bool {
	return d.distributed
}

// inferSchema derives column types and nullability from the header and the
// raw rows. A column is an integer column when every non-empty value parses
// as a base-10 integer; a column is nullable when at least one empty cell
// was observed.
func inferSchema(header []string, rows [][]string) Schema {
	schema := make(Schema, len(header))
	for i, name := range header {
		col := Column{Name: name, Type: TypeInteger}
		sawValue := false
		for _, row := range rows {
			cell := row[i]
			if cell == "" {
				col.Nullable = true
				continue
			}
			sawValue = true
			if col.Type == TypeInteger {
				if _, err := strconv.ParseInt(cell, 10, 64); err != nil {
					col.Type = TypeString
				}
			}
		}
		// A fully empty column carries no type evidence
		if !sawValue {
			col.Type = TypeString
		}
		schema[i] = col
	}
	return schema
}

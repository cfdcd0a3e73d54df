package profile

import (
	"time"

	"srscli/internal/dataset"
)

// SchemaReport lists the dataset columns with inferred types and nullability
type SchemaReport struct {
	Columns []ColumnInfo `json:"columns"`
}

// ColumnInfo is one schema entry
type ColumnInfo struct {
	Name     string             `json:"name"`
	Type     dataset.ColumnType `json:"type"`
	Nullable bool               `json:"nullable"`
}

// OverviewReport carries the row count and the ordered column names
type OverviewReport struct {
	RowCount int      `json:"row_count"`
	Columns  []string `json:"columns"`
}

// NumericSummary holds the descriptive statistics of a numeric column
type NumericSummary struct {
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
	Min    float64 `json:"min"`
	Q25    float64 `json:"q25"`
	Median float64 `json:"median"`
	Q75    float64 `json:"q75"`
	Max    float64 `json:"max"`
}

// ColumnSummary holds describe-style statistics for one column. Numeric is
// nil for string columns, which report only count/min/max (lexicographic).
type ColumnSummary struct {
	Name    string             `json:"name"`
	Type    dataset.ColumnType `json:"type"`
	Count   int                `json:"count"`
	Min     string             `json:"min"`
	Max     string             `json:"max"`
	Numeric *NumericSummary    `json:"numeric,omitempty"`
}

// SummaryReport carries per-column descriptive statistics in schema order
type SummaryReport struct {
	Columns []ColumnSummary `json:"columns"`
}

// ColumnNulls is the missing-value count of one column
type ColumnNulls struct {
	Name  string `json:"name"`
	Nulls int    `json:"nulls"`
}

// NullsReport carries per-column missing-value counts in schema order
type NullsReport struct {
	Columns []ColumnNulls `json:"columns"`
}

// DuplicatesReport carries the count of fully identical rows, i.e. rows
// that repeat an earlier row cell for cell
type DuplicatesReport struct {
	Count int `json:"count"`
}

// ValueCount is one distinct value with its frequency
type ValueCount struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// ColumnValueCounts lists the distinct values of one column, descending by
// frequency with ties broken by value, truncated for high-cardinality
// columns
type ColumnValueCounts struct {
	Name      string       `json:"name"`
	Distinct  int          `json:"distinct"`
	Values    []ValueCount `json:"values"`
	Truncated bool         `json:"truncated"`
}

// ValueCountsReport carries per-column value frequencies in schema order
type ValueCountsReport struct {
	Columns []ColumnValueCounts `json:"columns"`
}

// Profile aggregates every report over one dataset, ready for export
type Profile struct {
	Source      string            `json:"source"`
	Session     string            `json:"session"`
	Distributed bool              `json:"distributed"`
	GeneratedAt time.Time         `json:"generated_at"`
	Overview    OverviewReport    `json:"overview"`
	Schema      SchemaReport      `json:"schema"`
	Summary     SummaryReport     `json:"summary"`
	Nulls       NullsReport       `json:"nulls"`
	Duplicates  DuplicatesReport  `json:"duplicates"`
	ValueCounts ValueCountsReport `json:"value_counts"`
}

package profile

import (
	"context"
	"math"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	"srscli/internal/dataset"
)

// rowKey fingerprints a row unambiguously by length-prefixing each cell,
// so no cell content can make two distinct rows collide.
func rowKey(cells []string) string {
	var b strings.Builder
	for _, cell := range cells {
		b.WriteString(strconv.Itoa(len(cell)))
		b.WriteByte(':')
		b.WriteString(cell)
	}
	return b.String()
}

// SchemaReport returns the dataset schema as a report
func (e *Explorer) SchemaReport() SchemaReport {
	schema := e.ds.Schema()
	columns := make([]ColumnInfo, len(schema))
	for i, col := range schema {
		columns[i] = ColumnInfo{Name: col.Name, Type: col.Type, Nullable: col.Nullable}
	}
	return SchemaReport{Columns: columns}
}

// Overview returns the row count and the ordered column names
func (e *Explorer) Overview() OverviewReport {
	return OverviewReport{
		RowCount: e.ds.RowCount(),
		Columns:  e.ds.ColumnNames(),
	}
}

// Summary computes describe-style statistics for every column. Numeric
// columns populate mean/stddev/quartiles; string columns report only
// count and lexicographic min/max. Column work fans out across the
// configured worker count.
func (e *Explorer) Summary(ctx context.Context) (SummaryReport, error) {
	schema := e.ds.Schema()
	columns := make([]ColumnSummary, len(schema))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)
	for i, col := range schema {
		i, col := i, col
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			columns[i] = e.summarizeColumn(i, col)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return SummaryReport{}, err
	}

	return SummaryReport{Columns: columns}, nil
}

// summarizeColumn computes the summary of a single column by index
func (e *Explorer) summarizeColumn(idx int, col dataset.Column) ColumnSummary {
	summary := ColumnSummary{Name: col.Name, Type: col.Type}

	if col.Type == dataset.TypeInteger {
		values := make([]float64, 0, e.ds.RowCount())
		for row := 0; row < e.ds.RowCount(); row++ {
			cell := e.ds.Value(row, idx)
			if cell == "" {
				continue
			}
			if v, err := strconv.ParseFloat(cell, 64); err == nil {
				values = append(values, v)
			}
		}
		summary.Count = len(values)
		if len(values) > 0 {
			numeric := describeNumeric(values)
			summary.Numeric = &numeric
			summary.Min = strconv.FormatFloat(numeric.Min, 'f', -1, 64)
			summary.Max = strconv.FormatFloat(numeric.Max, 'f', -1, 64)
		}
		return summary
	}

	var min, max string
	for row := 0; row < e.ds.RowCount(); row++ {
		cell := e.ds.Value(row, idx)
		if cell == "" {
			continue
		}
		if summary.Count == 0 {
			min, max = cell, cell
		} else {
			if cell < min {
				min = cell
			}
			if cell > max {
				max = cell
			}
		}
		summary.Count++
	}
	summary.Min = min
	summary.Max = max
	return summary
}

// describeNumeric computes mean, sample standard deviation, and the
// quartiles (linear interpolation) of a non-empty value slice
func describeNumeric(values []float64) NumericSummary {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	var sum float64
	for _, v := range sorted {
		sum += v
	}
	mean := sum / float64(len(sorted))

	var stddev float64
	if len(sorted) > 1 {
		var sq float64
		for _, v := range sorted {
			d := v - mean
			sq += d * d
		}
		stddev = math.Sqrt(sq / float64(len(sorted)-1))
	}

	return NumericSummary{
		Mean:   mean,
		StdDev: stddev,
		Min:    sorted[0],
		Q25:    percentile(sorted, 0.25),
		Median: percentile(sorted, 0.50),
		Q75:    percentile(sorted, 0.75),
		Max:    sorted[len(sorted)-1],
	}
}

// percentile returns the p-th percentile of a sorted slice using linear
// interpolation between closest ranks
func percentile(sorted []float64, p float64) float64 {
	if len(sorted) == 1 {
		return sorted[0]
	}
	pos := p * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo] + (sorted[hi]-sorted[lo])*frac
}

// Nulls counts missing (empty) cells per column, fanning out across the
// configured worker count
func (e *Explorer) Nulls(ctx context.Context) (NullsReport, error) {
	schema := e.ds.Schema()
	columns := make([]ColumnNulls, len(schema))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)
	for i, col := range schema {
		i, col := i, col
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			nulls := 0
			for row := 0; row < e.ds.RowCount(); row++ {
				if e.ds.Value(row, i) == "" {
					nulls++
				}
			}
			columns[i] = ColumnNulls{Name: col.Name, Nulls: nulls}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return NullsReport{}, err
	}

	return NullsReport{Columns: columns}, nil
}

// Duplicates counts rows that are cell-for-cell identical to an earlier row
func (e *Explorer) Duplicates() DuplicatesReport {
	seen := make(map[string]struct{}, e.ds.RowCount())
	duplicates := 0
	for row := 0; row < e.ds.RowCount(); row++ {
		key := rowKey(e.ds.Row(row))
		if _, ok := seen[key]; ok {
			duplicates++
			continue
		}
		seen[key] = struct{}{}
	}
	return DuplicatesReport{Count: duplicates}
}

// ValueCounts computes per-column value frequencies, descending by
// frequency with ties broken by value, truncated to the configured maximum
// of displayed rows
func (e *Explorer) ValueCounts(ctx context.Context) (ValueCountsReport, error) {
	schema := e.ds.Schema()
	columns := make([]ColumnValueCounts, len(schema))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)
	for i, col := range schema {
		i, col := i, col
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			columns[i] = e.countColumnValues(i, col.Name)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return ValueCountsReport{}, err
	}

	return ValueCountsReport{Columns: columns}, nil
}

// countColumnValues builds the frequency table of a single column by index
func (e *Explorer) countColumnValues(idx int, name string) ColumnValueCounts {
	freq := make(map[string]int)
	for row := 0; row < e.ds.RowCount(); row++ {
		freq[e.ds.Value(row, idx)]++
	}

	values := make([]ValueCount, 0, len(freq))
	for value, count := range freq {
		values = append(values, ValueCount{Value: value, Count: count})
	}
	sort.Slice(values, func(a, b int) bool {
		if values[a].Count != values[b].Count {
			return values[a].Count > values[b].Count
		}
		return values[a].Value < values[b].Value
	})

	result := ColumnValueCounts{Name: name, Distinct: len(values)}
	if len(values) > e.maxValueCountRows {
		result.Values = values[:e.maxValueCountRows]
		result.Truncated = true
	} else {
		result.Values = values
	}
	return result
}

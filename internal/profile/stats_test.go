package profile

import (
	"bytes"
	"context"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"srscli/internal/config"
	"srscli/internal/dataset"
)

// loadDataset writes csvData to a temp file and loads it
func loadDataset(t *testing.T, csvData string, workers int) *dataset.Dataset {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sales.csv")
	require.NoError(t, os.WriteFile(path, []byte(csvData), 0644))

	loader := dataset.NewLoader(slog.Default(), config.EngineConfig{
		AppName: "srs-profiler",
		Workers: workers,
	})
	ds, err := loader.LoadCSV(context.Background(), path)
	require.NoError(t, err)
	return ds
}

func newTestExplorer(t *testing.T, csvData string, cfg Config) (*Explorer, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	cfg.Out = &out
	return NewExplorer(loadDataset(t, csvData, 2), slog.Default(), cfg), &out
}

func TestExplorer_Summary_Numeric(t *testing.T) {
	e, _ := newTestExplorer(t, "Total Sales\n2\n4\n4\n4\n5\n5\n7\n9\n", DefaultConfig())

	report, err := e.Summary(context.Background())
	require.NoError(t, err)
	require.Len(t, report.Columns, 1)

	col := report.Columns[0]
	assert.Equal(t, "Total Sales", col.Name)
	assert.Equal(t, dataset.TypeInteger, col.Type)
	assert.Equal(t, 8, col.Count)
	require.NotNil(t, col.Numeric)

	n := col.Numeric
	assert.InDelta(t, 5.0, n.Mean, 1e-9)
	assert.InDelta(t, math.Sqrt(32.0/7.0), n.StdDev, 1e-9)
	assert.InDelta(t, 2.0, n.Min, 1e-9)
	assert.InDelta(t, 4.0, n.Q25, 1e-9)
	assert.InDelta(t, 4.5, n.Median, 1e-9)
	assert.InDelta(t, 5.5, n.Q75, 1e-9)
	assert.InDelta(t, 9.0, n.Max, 1e-9)
	assert.Equal(t, "2", col.Min)
	assert.Equal(t, "9", col.Max)
}

func TestExplorer_Summary_String(t *testing.T) {
	e, _ := newTestExplorer(t, "City\nRiyadh\nJeddah\nDammam\nRiyadh\n", DefaultConfig())

	report, err := e.Summary(context.Background())
	require.NoError(t, err)

	col := report.Columns[0]
	assert.Equal(t, 4, col.Count)
	assert.Nil(t, col.Numeric)
	assert.Equal(t, "Dammam", col.Min)
	assert.Equal(t, "Riyadh", col.Max)
}

func TestExplorer_Summary_SkipsEmptyCells(t *testing.T) {
	// A quoted empty field; a fully blank line would be skipped by the reader
	e, _ := newTestExplorer(t, "Score\n10\n\"\"\n30\n", DefaultConfig())

	report, err := e.Summary(context.Background())
	require.NoError(t, err)

	col := report.Columns[0]
	assert.Equal(t, 2, col.Count)
	require.NotNil(t, col.Numeric)
	assert.InDelta(t, 20.0, col.Numeric.Mean, 1e-9)
}

func TestExplorer_Nulls(t *testing.T) {
	tests := []struct {
		name string
		csv  string
		want []int
	}{
		{
			name: "no missing values",
			csv:  "City,Channel\nRiyadh,OnLine\nJeddah,Store\n",
			want: []int{0, 0},
		},
		{
			name: "counts empty cells per column",
			csv:  "City,Channel\n,OnLine\n,\nJeddah,Store\n",
			want: []int{2, 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _ := newTestExplorer(t, tt.csv, DefaultConfig())
			report, err := e.Nulls(context.Background())
			require.NoError(t, err)
			require.Len(t, report.Columns, len(tt.want))
			for i, want := range tt.want {
				assert.Equal(t, want, report.Columns[i].Nulls, report.Columns[i].Name)
			}
		})
	}
}

func TestExplorer_Duplicates(t *testing.T) {
	tests := []struct {
		name string
		csv  string
		want int
	}{
		{
			name: "all rows unique",
			csv:  "City,Sales\nRiyadh,10\nJeddah,20\n",
			want: 0,
		},
		{
			name: "repeats of an earlier row count once each",
			csv:  "City,Sales\nRiyadh,10\nRiyadh,10\nRiyadh,10\nJeddah,20\n",
			want: 2,
		},
		{
			name: "same cells in different columns are distinct rows",
			csv:  "A,B\nx,y\ny,x\n",
			want: 0,
		},
		{
			name: "control characters inside cells do not collide rows",
			csv:  "A,B\nx\x1f,y\nx,\x1fy\n",
			want: 0,
		},
		{
			name: "identical rows with control characters still count",
			csv:  "A,B\nx\x1f,y\nx\x1f,y\n",
			want: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _ := newTestExplorer(t, tt.csv, DefaultConfig())
			assert.Equal(t, tt.want, e.Duplicates().Count)
		})
	}
}

func TestExplorer_ValueCounts(t *testing.T) {
	e, _ := newTestExplorer(t,
		"Channel\nOnLine\nStore\nOnLine\nOnLine\nStore\n", DefaultConfig())

	report, err := e.ValueCounts(context.Background())
	require.NoError(t, err)
	require.Len(t, report.Columns, 1)

	col := report.Columns[0]
	assert.Equal(t, 2, col.Distinct)
	assert.False(t, col.Truncated)
	assert.Equal(t, []ValueCount{
		{Value: "OnLine", Count: 3},
		{Value: "Store", Count: 2},
	}, col.Values)

	// Frequencies sum to the row count
	total := 0
	for _, vc := range col.Values {
		total += vc.Count
	}
	assert.Equal(t, 5, total)
}

func TestExplorer_ValueCounts_TiesBreakByValue(t *testing.T) {
	e, _ := newTestExplorer(t, "City\nJeddah\nRiyadh\nDammam\n", DefaultConfig())

	report, err := e.ValueCounts(context.Background())
	require.NoError(t, err)

	col := report.Columns[0]
	assert.Equal(t, []ValueCount{
		{Value: "Dammam", Count: 1},
		{Value: "Jeddah", Count: 1},
		{Value: "Riyadh", Count: 1},
	}, col.Values)
}

func TestExplorer_ValueCounts_Truncation(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxValueCountRows = 2
	e, _ := newTestExplorer(t, "ID\na\na\nb\nc\nd\n", cfg)

	report, err := e.ValueCounts(context.Background())
	require.NoError(t, err)

	col := report.Columns[0]
	assert.Equal(t, 4, col.Distinct)
	assert.True(t, col.Truncated)
	require.Len(t, col.Values, 2)
	assert.Equal(t, ValueCount{Value: "a", Count: 2}, col.Values[0])
}

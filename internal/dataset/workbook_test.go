package dataset

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	apperrors "srscli/internal/errors"
)

func writeWorkbook(t *testing.T, sheet string, rows [][]any) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	if sheet != "Sheet1" {
		_, err := f.NewSheet(sheet)
		require.NoError(t, err)
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}

	path := filepath.Join(t.TempDir(), "sales.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestLoader_LoadWorkbook(t *testing.T) {
	path := writeWorkbook(t, "Sheet1", [][]any{
		{"City", "Channel", "Total Sales"},
		{"Riyadh", "OnLine", 2450},
		{"Dammam", "Store", 180},
	})

	ds, err := testLoader(2).LoadWorkbook(context.Background(), path, "")
	require.NoError(t, err)

	assert.Equal(t, 2, ds.RowCount())
	assert.Equal(t, []string{"City", "Channel", "Total Sales"}, ds.ColumnNames())
	assert.Equal(t, TypeInteger, ds.Schema()[2].Type)
	assert.Equal(t, "180", ds.Value(1, 2))
}

func TestLoader_LoadWorkbook_PadsShortRows(t *testing.T) {
	path := writeWorkbook(t, "Sheet1", [][]any{
		{"City", "Channel"},
		{"Riyadh"},
	})

	ds, err := testLoader(1).LoadWorkbook(context.Background(), path, "")
	require.NoError(t, err)
	assert.Equal(t, "", ds.Value(0, 1))
	assert.True(t, ds.Schema()[1].Nullable)
}

func TestLoader_LoadWorkbook_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := testLoader(1).LoadWorkbook(context.Background(), filepath.Join(t.TempDir(), "no.xlsx"), "")
		require.Error(t, err)
		assert.True(t, apperrors.IsType(err, apperrors.ErrTypeStorage))
	})

	t.Run("unknown sheet", func(t *testing.T) {
		path := writeWorkbook(t, "Sheet1", [][]any{{"A"}, {"1"}})
		_, err := testLoader(1).LoadWorkbook(context.Background(), path, "Missing")
		require.Error(t, err)
		assert.True(t, apperrors.IsType(err, apperrors.ErrTypeParsing))
	})
}

package dataset

import (
	"context"

	"github.com/xuri/excelize/v2"

	"srscli/internal/errors"
)

// LoadWorkbook reads one sheet of an Excel workbook into a Dataset. An
// empty sheet name selects the first sheet. The first row is the header;
// short rows are padded with empty cells (workbooks drop trailing blanks),
// rows wider than the header fail the load.
func (l *Loader) LoadWorkbook(ctx context.Context, path, sheet string) (*Dataset, error) {
	session := l.openSession(ctx, path)

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.NewStorageError("failed to open workbook", err).
			WithContext("path", path)
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, errors.NewParsingError("workbook has no sheets", nil).
				WithContext("path", path)
		}
		sheet = sheets[0]
	}

	raw, err := f.GetRows(sheet)
	if err != nil {
		return nil, errors.NewParsingError("failed to read sheet", err).
			WithContext("path", path).
			WithContext("sheet", sheet)
	}
	if len(raw) == 0 {
		return nil, errors.NewParsingError("sheet is empty", nil).
			WithContext("path", path).
			WithContext("sheet", sheet)
	}

	header := raw[0]
	rows := make([][]string, 0, len(raw)-1)
	for i, record := range raw[1:] {
		if len(record) > len(header) {
			return nil, errors.NewParsingError("row has more cells than the header", nil).
				WithContext("path", path).
				WithContext("sheet", sheet).
				WithContext("row", i+1)
		}
		if len(record) < len(header) {
			padded := make([]string, len(header))
			copy(padded, record)
			record = padded
		}
		rows = append(rows, record)
	}

	return l.finishLoad(ctx, session, path, header, rows)
}

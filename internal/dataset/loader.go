package dataset

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"srscli/internal/config"
	"srscli/internal/errors"
)

// Loader reads delimited files into Datasets under a named engine session.
// The processing engine itself is an external collaborator; the loader only
// carries its session settings and reports them in diagnostics.
type Loader struct {
	logger  *slog.Logger
	appName string
	workers int
}

// NewLoader creates a loader bound to the given engine settings
func NewLoader(logger *slog.Logger, engine config.EngineConfig) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	workers := engine.Workers
	if workers <= 0 {
		workers = 1
	}
	appName := engine.AppName
	if appName == "" {
		appName = "srs-profiler"
	}
	return &Loader{
		logger:  logger,
		appName: appName,
		workers: workers,
	}
}

// Workers returns the configured engine worker count
func (l *Loader) Workers() int {
	return l.workers
}

// LoadCSV reads a comma-delimited file into a Dataset. The first row is the
// header and defines the schema order; every data row must have the same
// field count as the header.
func (l *Loader) LoadCSV(ctx context.Context, path string) (*Dataset, error) {
	session := l.openSession(ctx, path)

	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewNotFoundError(path)
		}
		return nil, errors.NewStorageError("failed to open dataset file", err).
			WithContext("path", path)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	// FieldsPerRecord stays at the default so ragged rows fail the load

	header, err := reader.Read()
	if err == io.EOF {
		return nil, errors.NewParsingError("dataset file is empty", nil).
			WithContext("path", path)
	}
	if err != nil {
		return nil, errors.NewParsingError("failed to read header row", err).
			WithContext("path", path)
	}

	var rows [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.NewParsingError("failed to read data row", err).
				WithContext("path", path).
				WithContext("row", len(rows)+1)
		}
		rows = append(rows, record)
	}

	return l.finishLoad(ctx, session, path, header, rows)
}

// openSession names a new engine session for one load and logs the
// diagnostic required of the loader: the session name and the source path.
func (l *Loader) openSession(ctx context.Context, path string) string {
	session := fmt.Sprintf("%s-%s", l.appName, uuid.New().String()[:8])
	l.logger.InfoContext(ctx, "opened engine session",
		slog.String("session", session),
		slog.String("source", path),
		slog.Int("workers", l.workers))
	return session
}

// finishLoad infers the schema, builds the Dataset, and logs load stats
func (l *Loader) finishLoad(ctx context.Context, session, path string, header []string, rows [][]string) (*Dataset, error) {
	ds := &Dataset{
		schema:      inferSchema(header, rows),
		rows:        rows,
		sourcePath:  path,
		session:     session,
		distributed: l.workers > 1,
	}

	l.logger.InfoContext(ctx, "dataset loaded",
		slog.String("session", session),
		slog.String("source", path),
		slog.Int("row_count", ds.RowCount()),
		slog.Int("column_count", ds.ColumnCount()))

	return ds, nil
}

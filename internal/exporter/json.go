package exporter

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"

	"srscli/internal/errors"
	"srscli/internal/profile"
)

// profileFormatTag versions the JSON envelope for downstream consumers
const profileFormatTag = "dataset_profile_v1"

// jsonEnvelope wraps the profile with format metadata
type jsonEnvelope struct {
	Format  string           `json:"format"`
	Profile *profile.Profile `json:"profile"`
}

// WriteJSON writes the whole profile as one JSON document and returns the
// path written
func (e *Exporter) WriteJSON(ctx context.Context, p *profile.Profile, base string) (string, error) {
	if err := e.ensureReportsDir(); err != nil {
		return "", err
	}

	path := filepath.Join(e.reportsDir, base+".json")
	e.logger.InfoContext(ctx, "writing JSON report", slog.String("path", path))

	file, err := os.Create(path)
	if err != nil {
		return "", errors.NewStorageError("failed to create JSON report", err).
			WithContext("path", path)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(jsonEnvelope{Format: profileFormatTag, Profile: p}); err != nil {
		return "", errors.NewStorageError("failed to encode profile to JSON", err).
			WithContext("path", path)
	}

	return path, nil
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "data/raw", cfg.Data.RawDir)
	assert.Equal(t, "data/processed", cfg.Data.ProcessedDir)
	assert.Equal(t, "srs-profiler", cfg.Engine.AppName)
	assert.Equal(t, 4, cfg.Engine.Workers)
	assert.Equal(t, 42, cfg.Model.RandomSeed)
	assert.Equal(t, 30, cfg.Model.Horizon)
	assert.Equal(t, []string{"csv", "json"}, cfg.Export.Formats)
	assert.Equal(t, "info", cfg.General.LogLevel)
	assert.False(t, cfg.General.FeatureFlags.UseNewPreprocessor)
}

func TestLoadFromFile(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr bool
		check   func(t *testing.T, cfg *Config)
	}{
		{
			name: "overrides defaults",
			yaml: `
data:
  raw_dir: /srv/sales/raw
engine:
  app_name: sales-eda
  workers: 8
  configs:
    shuffle_partitions: "16"
model:
  train_start: "2022-01-01"
  train_end: "2023-06-30"
general:
  feature_flags:
    use_new_preprocessor: true
`,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "/srv/sales/raw", cfg.Data.RawDir)
				assert.Equal(t, "data/processed", cfg.Data.ProcessedDir)
				assert.Equal(t, "sales-eda", cfg.Engine.AppName)
				assert.Equal(t, 8, cfg.Engine.Workers)
				assert.Equal(t, "16", cfg.Engine.Configs["shuffle_partitions"])
				assert.Equal(t, "2022-01-01", cfg.Model.TrainStart)
				assert.True(t, cfg.General.FeatureFlags.UseNewPreprocessor)
			},
		},
		{
			name: "invalid worker count",
			yaml: `
engine:
  workers: 0
`,
			wantErr: true,
		},
		{
			name: "invalid train date",
			yaml: `
model:
  train_start: "01/02/2022"
`,
			wantErr: true,
		},
		{
			name: "invalid log level",
			yaml: `
general:
  log_level: verbose
`,
			wantErr: true,
		},
		{
			name: "invalid export format",
			yaml: `
export:
  formats: ["csv", "parquet"]
`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.yaml), 0644))

			cfg, err := LoadFromFile(path)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}

func TestLoadFromFile_MissingFile(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("SRS_DATA_RAW_DIR", "/mnt/raw")
	t.Setenv("SRS_ENGINE_WORKERS", "2")
	t.Setenv("SRS_GENERAL_FEATURE_FLAGS_USE_NEW_PREPROCESSOR", "true")

	// Run from a temp dir so no config.yaml on disk interferes
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	defer os.Chdir(wd)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/mnt/raw", cfg.Data.RawDir)
	assert.Equal(t, 2, cfg.Engine.Workers)
	assert.True(t, cfg.General.FeatureFlags.UseNewPreprocessor)
	// Untouched fields keep defaults
	assert.Equal(t, "srs-profiler", cfg.Engine.AppName)
}

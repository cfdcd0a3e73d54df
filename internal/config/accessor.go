package config

import (
	"sort"

	"github.com/spf13/cast"
)

// flatten builds the dotted-key view of the configuration. Engine configs
// appear under "engine.configs.<key>".
func (c *Config) flatten() map[string]any {
	flat := map[string]any{
		"data.raw_dir":                           c.Data.RawDir,
		"data.processed_dir":                     c.Data.ProcessedDir,
		"engine.app_name":                        c.Engine.AppName,
		"engine.master":                          c.Engine.Master,
		"engine.workers":                         c.Engine.Workers,
		"tracking.uri":                           c.Tracking.URI,
		"tracking.experiment":                    c.Tracking.Experiment,
		"model.random_seed":                      c.Model.RandomSeed,
		"model.horizon":                          c.Model.Horizon,
		"model.train_start":                      c.Model.TrainStart,
		"model.train_end":                        c.Model.TrainEnd,
		"model.test_start":                       c.Model.TestStart,
		"model.test_end":                         c.Model.TestEnd,
		"export.reports_dir":                     c.Export.ReportsDir,
		"export.formats":                         c.Export.Formats,
		"logging.level":                          c.Logging.Level,
		"logging.format":                         c.Logging.Format,
		"logging.output":                         c.Logging.Output,
		"logging.file_path":                      c.Logging.FilePath,
		"general.log_level":                      c.General.LogLevel,
		"general.feature_flags.use_new_preprocessor": c.General.FeatureFlags.UseNewPreprocessor,
	}

	for k, v := range c.Engine.Configs {
		flat["engine.configs."+k] = v
	}

	return flat
}

// Get returns the configuration value at the given dotted key.
// The second return reports whether the key exists.
func (c *Config) Get(key string) (any, bool) {
	v, ok := c.flatten()[key]
	return v, ok
}

// GetString returns the value at key cast to a string, or "" when absent
func (c *Config) GetString(key string) string {
	v, ok := c.Get(key)
	if !ok {
		return ""
	}
	return cast.ToString(v)
}

// GetInt returns the value at key cast to an int, or 0 when absent
func (c *Config) GetInt(key string) int {
	v, ok := c.Get(key)
	if !ok {
		return 0
	}
	return cast.ToInt(v)
}

// GetBool returns the value at key cast to a bool, or false when absent
func (c *Config) GetBool(key string) bool {
	v, ok := c.Get(key)
	if !ok {
		return false
	}
	return cast.ToBool(v)
}

// Keys returns the sorted list of dotted configuration keys
func (c *Config) Keys() []string {
	flat := c.flatten()
	keys := make([]string, 0, len(flat))
	for k := range flat {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Package config provides the nested application configuration for the
// sales profiling workflow: dataset directories, processing-engine session
// settings, experiment-tracker coordinates, modeling date ranges, report
// export settings, and feature flags.
//
// Configuration is assembled from three layers, lowest precedence first:
// built-in defaults, an optional YAML file (config.yaml or
// configs/config.yaml), and SRS_-prefixed environment variables.
// The resulting Config is read-only for the process lifetime.
//
// Besides the typed struct surface, the package exposes a flat dotted-key
// view (Get, GetString, GetInt, GetBool) so callers can look up values such
// as "data.raw_dir" or "general.feature_flags.use_new_preprocessor" without
// walking the struct.
package config

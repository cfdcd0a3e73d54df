// Package profile implements the data explorer over a loaded dataset.
//
// An Explorer wraps one immutable dataset and exposes Explore, a single
// entry point whose boolean switches independently select which profiling
// report to render: schema, row/column overview, describe-style summary
// statistics, per-column null counts, the fully-duplicate row count, or
// per-column value-count tables. No switch set means no output.
//
// Reports are computed into typed structs first; Profile collects all of
// them for the exporter. Per-column work fans out on an errgroup bounded
// by the configured engine worker count.
package profile

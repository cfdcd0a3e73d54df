// Package dataset defines the in-memory tabular model for the sales data
// and the loaders that build it from CSV files or Excel workbooks.
//
// A Dataset is created once by a Loader and is read-only afterwards. The
// schema is taken from the source header row in order; column types are
// inferred (integer when every non-empty value parses as an integer,
// string otherwise) and nullability records whether empty cells were seen.
//
// Each load runs under a uuid-suffixed engine session name derived from
// the configured app name; the loader logs the session and source path as
// its diagnostic side effect.
package dataset

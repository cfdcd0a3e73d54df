// Package files provides discovery of dataset files (CSV and Excel
// workbooks) under the configured raw data directory.
package files

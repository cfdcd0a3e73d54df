// Package exporter writes computed dataset profiles to report files for
// the downstream feature-engineering and modeling stages.
//
// Three formats are supported: CSV (a per-column summary file and a
// value-counts file, both with a UTF-8 BOM for Excel compatibility), JSON
// (the whole profile in a versioned envelope), and an Excel workbook with
// one sheet per report.
package exporter

// Package tabular extracts gene lists from tabular files.
//
// The reader dispatches on file extension: .csv, .tsv and .txt parse
// as delimited text, .xlsx and .xls as Excel workbooks. Whatever the
// format, the first row is the header and the remaining rows are data.
//
// The gene column is picked in three steps: an explicitly requested
// header wins, otherwise the first column whose header matches a
// conventional gene column name (gene, symbol, gene_id and friends),
// otherwise the first column.
package tabular

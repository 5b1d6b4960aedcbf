// Package driven provides interfaces for infrastructure adapters (secondary/outbound ports).
package driven

import "github.com/bioscope-labs/pathway-agent/internal/core/domain"

// GeneFileReader extracts gene lists from tabular files on disk.
//
// Implementations decide formats by file extension. The reference
// implementation handles CSV, TSV, plain-text tables and Excel
// workbooks.
type GeneFileReader interface {
	// Extract reads the file and returns the normalized gene list from
	// the chosen column.
	//
	// geneColumn selects the column explicitly; when empty, the reader
	// falls back to a list of conventional gene column names and then
	// to the first column. sheet selects a worksheet for workbook
	// formats; when empty, the first sheet is read. Both are ignored
	// where they do not apply.
	//
	// Errors wrap domain.ErrNotFound, domain.ErrUnsupportedFormat,
	// domain.ErrColumnNotFound, domain.ErrSheetNotFound or
	// domain.ErrEmptyTable so callers can classify failures.
	Extract(path, geneColumn, sheet string) (*domain.FileExtraction, error)
}

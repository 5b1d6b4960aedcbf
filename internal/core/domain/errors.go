package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// Gene File Errors.

	// ErrUnsupportedFormat indicates a gene file extension with no reader.
	ErrUnsupportedFormat = errors.New("unsupported file format")

	// ErrColumnNotFound indicates an explicitly requested gene column is
	// absent from the file header.
	ErrColumnNotFound = errors.New("column not found")

	// ErrSheetNotFound indicates a requested worksheet is absent from a workbook.
	ErrSheetNotFound = errors.New("sheet not found")

	// ErrEmptyTable indicates a gene file with no rows at all.
	ErrEmptyTable = errors.New("empty table")
)

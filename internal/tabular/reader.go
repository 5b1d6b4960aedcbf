package tabular

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bioscope-labs/pathway-agent/internal/core/domain"
	"github.com/bioscope-labs/pathway-agent/internal/core/ports/driven"
)

// Ensure Reader implements the interface.
var _ driven.GeneFileReader = (*Reader)(nil)

// geneColumnAliases are conventional gene column headers. The file
// header is scanned left to right and the first cell matching any
// alias wins, so column order decides ties.
var geneColumnAliases = []string{
	"gene", "genes", "gene_symbol", "gene_name", "symbol", "geneid", "gene_id",
}

// Reader extracts gene lists from delimited text files and Excel
// workbooks.
type Reader struct{}

// NewReader creates a gene file reader.
func NewReader() *Reader {
	return &Reader{}
}

// Extract reads the file and returns the normalized gene list from the
// chosen column.
func (r *Reader) Extract(path, geneColumn, sheet string) (*domain.FileExtraction, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("file %s: %w", path, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}

	rows, err := readTable(path, sheet)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), domain.ErrEmptyTable)
	}

	header := cleanHeader(rows[0])
	if len(header) == 0 {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), domain.ErrEmptyTable)
	}
	data := rows[1:]

	idx, err := resolveColumn(header, geneColumn)
	if err != nil {
		return nil, err
	}

	values := make([]string, 0, len(data))
	for _, row := range data {
		if idx < len(row) {
			values = append(values, row[idx])
		} else {
			values = append(values, "")
		}
	}

	return &domain.FileExtraction{
		Genes:      domain.NormalizeGenes(values),
		File:       filepath.Base(path),
		GeneColumn: header[idx],
		Columns:    header,
		TotalRows:  len(data),
	}, nil
}

// readTable loads the raw cell grid for any supported extension.
func readTable(path, sheet string) ([][]string, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		return readDelimited(path, ',')
	case ".tsv", ".txt":
		return readDelimited(path, '\t')
	case ".xlsx":
		return readXLSX(path, sheet)
	case ".xls":
		return readXLS(path, sheet)
	default:
		return nil, fmt.Errorf("%q: %w", ext, domain.ErrUnsupportedFormat)
	}
}

// resolveColumn picks the gene column index. An explicitly requested
// header must exist; otherwise the conventional aliases are tried and
// the first column is the fallback.
func resolveColumn(header []string, geneColumn string) (int, error) {
	if geneColumn != "" {
		for i, col := range header {
			if col == geneColumn {
				return i, nil
			}
		}
		for i, col := range header {
			if strings.EqualFold(col, geneColumn) {
				return i, nil
			}
		}
		return 0, fmt.Errorf("column %q not found; available columns: %s: %w",
			geneColumn, strings.Join(header, ", "), domain.ErrColumnNotFound)
	}

	for i, col := range header {
		lower := strings.ToLower(col)
		for _, alias := range geneColumnAliases {
			if lower == alias {
				return i, nil
			}
		}
	}
	return 0, nil
}

// cleanHeader trims whitespace and any byte order mark the exporting
// tool left on the first cell.
func cleanHeader(row []string) []string {
	header := make([]string, len(row))
	for i, cell := range row {
		header[i] = cleanCell(cell)
	}
	return header
}

func cleanCell(cell string) string {
	cell = strings.TrimPrefix(cell, "\ufeff")
	return strings.TrimSpace(cell)
}

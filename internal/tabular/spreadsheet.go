package tabular

import (
	"fmt"
	"strings"

	"github.com/extrame/xls"
	"github.com/xuri/excelize/v2"

	"github.com/bioscope-labs/pathway-agent/internal/core/domain"
)

// readXLSX reads one worksheet of an .xlsx workbook into a cell grid.
func readXLSX(path, sheet string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%s: %w", path, domain.ErrEmptyTable)
	}

	name := sheets[0]
	if sheet != "" {
		name = ""
		for _, s := range sheets {
			if s == sheet {
				name = s
				break
			}
		}
		if name == "" {
			return nil, fmt.Errorf("sheet %q not in workbook (sheets: %s): %w",
				sheet, strings.Join(sheets, ", "), domain.ErrSheetNotFound)
		}
	}

	rows, err := f.GetRows(name)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", name, err)
	}
	return rows, nil
}

// readXLS reads one worksheet of a legacy .xls workbook into a cell
// grid. Cells keep their original column positions so header indices
// line up.
func readXLS(path, sheet string) ([][]string, error) {
	wb, closer, err := xls.OpenWithCloser(path, "utf-8")
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", path, err)
	}
	defer closer.Close()

	ws, err := findWorksheet(wb, sheet)
	if err != nil {
		return nil, err
	}

	var rows [][]string
	for i := 0; i <= int(ws.MaxRow); i++ {
		row := ws.Row(i)
		if row == nil {
			rows = append(rows, nil)
			continue
		}
		cells := make([]string, row.LastCol())
		for c := row.FirstCol(); c < row.LastCol(); c++ {
			cells[c] = row.Col(c)
		}
		rows = append(rows, cells)
	}
	return rows, nil
}

// findWorksheet resolves the sheet selector against a legacy workbook.
func findWorksheet(wb *xls.WorkBook, sheet string) (*xls.WorkSheet, error) {
	if sheet == "" {
		ws := wb.GetSheet(0)
		if ws == nil {
			return nil, fmt.Errorf("workbook has no sheets: %w", domain.ErrEmptyTable)
		}
		return ws, nil
	}

	var names []string
	for i := 0; i < wb.NumSheets(); i++ {
		ws := wb.GetSheet(i)
		if ws == nil {
			continue
		}
		if ws.Name == sheet {
			return ws, nil
		}
		names = append(names, ws.Name)
	}
	return nil, fmt.Errorf("sheet %q not in workbook (sheets: %s): %w",
		sheet, strings.Join(names, ", "), domain.ErrSheetNotFound)
}

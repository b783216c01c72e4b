// Package workbook loads spreadsheet files into grids. It is the only
// package that touches xlsx internals; everything downstream works on
// grid.Grid values.
package workbook

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/priya-sndrs/InstSys-CaseStudy-sub000/internal/grid"
)

// Sheet is one worksheet loaded into a grid.
type Sheet struct {
	Name string
	Grid *grid.Grid
}

// Load reads every worksheet of the file at path.
func Load(path string) ([]Sheet, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %q: %w", path, err)
	}
	defer f.Close()
	return sheetsFrom(f)
}

// LoadReader reads every worksheet from an in-memory workbook.
func LoadReader(r io.Reader) ([]Sheet, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()
	return sheetsFrom(f)
}

func sheetsFrom(f *excelize.File) ([]Sheet, error) {
	names := f.GetSheetList()
	sheets := make([]Sheet, 0, len(names))
	for _, name := range names {
		rows, err := f.GetRows(name)
		if err != nil {
			return nil, fmt.Errorf("read sheet %q: %w", name, err)
		}
		rows = squared(rows)
		if err := fillMerges(f, name, rows); err != nil {
			return nil, fmt.Errorf("resolve merges in sheet %q: %w", name, err)
		}
		sheets = append(sheets, Sheet{Name: name, Grid: grid.New(rows)})
	}
	return sheets, nil
}

// squared pads every row to the widest row so column indexes mean the same
// thing on every row.
func squared(rows [][]string) [][]string {
	maxCol := 0
	for _, row := range rows {
		if len(row) > maxCol {
			maxCol = len(row)
		}
	}
	out := make([][]string, len(rows))
	for i, row := range rows {
		out[i] = make([]string, maxCol)
		copy(out[i], row)
	}
	return out
}

// fillMerges copies each merged region's anchor value into the whole
// region. Label scans and day-column walks rely on this: a time label
// merged across three rows must be readable on all three.
func fillMerges(f *excelize.File, sheet string, rows [][]string) error {
	merges, err := f.GetMergeCells(sheet)
	if err != nil {
		return err
	}
	for _, m := range merges {
		startCol, startRow, err := excelize.CellNameToCoordinates(m.GetStartAxis())
		if err != nil {
			return err
		}
		endCol, endRow, err := excelize.CellNameToCoordinates(m.GetEndAxis())
		if err != nil {
			return err
		}
		value := m.GetCellValue()
		for r := startRow - 1; r < endRow && r < len(rows); r++ {
			for c := startCol - 1; c < endCol && c < len(rows[r]); c++ {
				if rows[r][c] == "" {
					rows[r][c] = value
				}
			}
		}
	}
	return nil
}

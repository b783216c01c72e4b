// Package grid provides the read-only 2D cell view the extraction engine
// scans. A Grid is built once per sheet from the workbook adapter's raw
// rows and never mutated afterwards.
package grid

import "strings"

// Grid is a rectangular view over spreadsheet cells. Rows may be ragged in
// the backing data; reads outside any row (or the sheet) yield "".
type Grid struct {
	rows [][]string
}

// New copies raw rows into a Grid. The copy keeps the Grid immutable even
// when the caller reuses its slices.
func New(rows [][]string) *Grid {
	copied := make([][]string, len(rows))
	for i, r := range rows {
		copied[i] = make([]string, len(r))
		copy(copied[i], r)
	}
	return &Grid{rows: copied}
}

// Cell returns the trimmed value at (row, col), or "" when out of bounds.
func (g *Grid) Cell(row, col int) string {
	if g == nil || row < 0 || col < 0 || row >= len(g.rows) {
		return ""
	}
	r := g.rows[row]
	if col >= len(r) {
		return ""
	}
	return strings.TrimSpace(r[col])
}

// RowCount reports the number of rows in the sheet.
func (g *Grid) RowCount() int {
	if g == nil {
		return 0
	}
	return len(g.rows)
}

// ColCount reports the number of cells in one row (0 when out of bounds).
func (g *Grid) ColCount(row int) int {
	if g == nil || row < 0 || row >= len(g.rows) {
		return 0
	}
	return len(g.rows[row])
}

// MaxColCount reports the widest row in the sheet.
func (g *Grid) MaxColCount() int {
	if g == nil {
		return 0
	}
	widest := 0
	for _, r := range g.rows {
		if len(r) > widest {
			widest = len(r)
		}
	}
	return widest
}

// RowIsEmpty reports whether every cell in the row is blank.
func (g *Grid) RowIsEmpty(row int) bool {
	if g == nil || row < 0 || row >= len(g.rows) {
		return true
	}
	for _, c := range g.rows[row] {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

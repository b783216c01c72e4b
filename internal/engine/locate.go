package engine

import (
	"strings"

	"github.com/priya-sndrs/InstSys-CaseStudy-sub000/internal/grid"
)

// ScanWindow bounds the label search. Labels sit near the top-left of every
// observed form, so the cap keeps pathological sheets cheap.
type ScanWindow struct {
	Rows int
	Cols int
}

// DefaultWindow covers every layout seen in the source sheets.
var DefaultWindow = ScanWindow{Rows: 30, Cols: 15}

func (w ScanWindow) rows() int {
	if w.Rows <= 0 {
		return DefaultWindow.Rows
	}
	return w.Rows
}

func (w ScanWindow) cols() int {
	if w.Cols <= 0 {
		return DefaultWindow.Cols
	}
	return w.Cols
}

// LocateFields scans the window row-major and resolves each spec at its
// first matching label cell: strategies run in the spec's priority order and
// the first normalizer-approved value wins, so earlier rows and columns take
// precedence. Every spec gets an entry in the result; unresolved specs have
// Found=false.
func LocateFields(g *grid.Grid, specs []FieldSpec, win ScanWindow) map[string]LabeledField {
	out := make(map[string]LabeledField, len(specs))
	for i := range specs {
		out[specs[i].Name] = LabeledField{Name: specs[i].Name}
	}

	remaining := len(specs)
	maxRow := min(win.rows(), g.RowCount())
	for r := 0; r < maxRow && remaining > 0; r++ {
		maxCol := min(win.cols(), g.ColCount(r))
		for c := 0; c < maxCol && remaining > 0; c++ {
			cell := g.Cell(r, c)
			if cell == "" {
				continue
			}
			upper := strings.ToUpper(cell)
			for i := range specs {
				spec := &specs[i]
				if out[spec.Name].Found || !spec.matchesLabel(upper) {
					continue
				}
				if lf, ok := resolveAt(g, spec, r, c, cell); ok {
					out[spec.Name] = lf
					remaining--
				}
			}
		}
	}
	return out
}

// resolveAt tries the spec's strategies at a candidate label cell.
func resolveAt(g *grid.Grid, spec *FieldSpec, row, col int, cell string) (LabeledField, bool) {
	for _, strat := range spec.strategies() {
		var raw string
		switch strat {
		case StrategySameCell:
			idx := strings.IndexAny(cell, ":=")
			if idx < 0 {
				continue
			}
			raw = cell[idx+1:]
		case StrategyRightCell:
			raw = g.Cell(row, col+1)
		case StrategyBelowCell:
			raw = g.Cell(row+1, col)
		}
		if value, ok := spec.clean(raw); ok {
			return LabeledField{
				Name:     spec.Name,
				Raw:      strings.TrimSpace(raw),
				Value:    value,
				Row:      row,
				Col:      col,
				Strategy: strat,
				Found:    true,
			}, true
		}
	}
	return LabeledField{}, false
}

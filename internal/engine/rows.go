package engine

import (
	"strings"

	"github.com/priya-sndrs/InstSys-CaseStudy-sub000/internal/grid"
)

// Row is one extracted table row, keyed by role name.
type Row map[string]string

// ExtractRows walks the table body from the block's first data row. The
// walk ends at the first empty anchor cell, at a terminator keyword, or at
// the row cap. A row whose anchor fails the validity pattern is skipped,
// not terminal, so stray notes inside the block don't cut the table short.
func ExtractRows(g *grid.Grid, cfg *TableConfig, block TableBlock) []Row {
	anchorCol, ok := block.Columns[cfg.AnchorRole]
	if !ok {
		anchorCol = 0
	}

	var rows []Row
	end := min(g.RowCount(), block.DataStart+cfg.maxRows())
	for r := block.DataStart; r < end; r++ {
		anchor := normalizeAnchor(g.Cell(r, anchorCol))
		if anchor == "" {
			break
		}
		if isTerminator(anchor, cfg.Terminators) {
			break
		}
		if cfg.AnchorPattern != nil && !cfg.AnchorPattern.MatchString(anchor) {
			continue
		}

		row := make(Row, len(cfg.Roles))
		for i := range cfg.Roles {
			role := &cfg.Roles[i]
			col, mapped := block.Columns[role.Name]
			if !mapped {
				continue
			}
			if value, valid := role.clean(g.Cell(r, col)); valid {
				row[role.Name] = value
			}
		}
		if len(row) == 0 {
			continue
		}
		rows = append(rows, row)
	}
	return rows
}

func isTerminator(anchor string, terminators []string) bool {
	for _, t := range terminators {
		if strings.Contains(anchor, strings.ToUpper(t)) {
			return true
		}
	}
	return false
}

// AnchorValues collects the anchor-role value of each row, in order. Used
// for summary lines such as the joined subject-code list.
func AnchorValues(rows []Row, anchorRole string) []string {
	values := make([]string, 0, len(rows))
	for _, row := range rows {
		if v, ok := row[anchorRole]; ok && v != "" {
			values = append(values, v)
		}
	}
	return values
}

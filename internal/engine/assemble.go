package engine

import (
	"strconv"
	"strings"

	"github.com/priya-sndrs/InstSys-CaseStudy-sub000/internal/grid"
)

// Summary keys every record carries.
const (
	SummaryRowCount = "row_count"
)

// Record is a finished extraction: resolved fields, table rows, computed
// summary values and the deterministic text rendering.
type Record struct {
	Kind       string
	Source     string
	Fields     map[string]string
	Rows       []Row
	Summary    map[string]string
	Provenance map[string]string
	Text       string
}

// Field returns a resolved field value, or "" when absent.
func (r *Record) Field(name string) string {
	return r.Fields[name]
}

// assemble finalizes a draft: defaults fill whatever located fields and
// inference chains both left empty, summaries are computed, and the text
// block is rendered. Defaults apply here and nowhere earlier, so a default
// can never shadow an inferred value.
func assemble(g *grid.Grid, d *Draft, cfg *Config) *Record {
	for field, def := range cfg.Defaults {
		d.setField(field, def, "default")
	}

	summary := map[string]string{
		SummaryRowCount: strconv.Itoa(len(d.Rows)),
	}
	if cfg.Summarize != nil {
		for k, v := range cfg.Summarize(g, d) {
			summary[k] = v
		}
	}

	rec := &Record{
		Kind:       d.Kind,
		Source:     d.Source,
		Fields:     d.Fields,
		Rows:       d.Rows,
		Summary:    summary,
		Provenance: d.Provenance,
	}
	rec.Text = RenderText(&cfg.Render, rec)
	return rec
}

// ScanLabeledNumber hunts the window for a cell whose text contains one of
// the labels and returns the first numeric token found in its
// neighborhood: the labeled cell's own remainder, then up to three cells
// to the right, then the cell below. Sheets write "Total Units: 21",
// "Total Units" next to a bare 21, or the figure one row down.
func ScanLabeledNumber(g *grid.Grid, labels []string, win ScanWindow) (string, bool) {
	rows := min(g.RowCount(), win.rows())
	for r := 0; r < rows; r++ {
		cols := min(g.ColCount(r), win.cols())
		for c := 0; c < cols; c++ {
			upper := strings.ToUpper(g.Cell(r, c))
			if upper == "" || !containsAny(upper, labels) {
				continue
			}
			if n := reDecimal.FindString(upper); n != "" {
				return n, true
			}
			for dc := 1; dc <= 3; dc++ {
				if n := reDecimal.FindString(g.Cell(r, c+dc)); n != "" {
					return n, true
				}
			}
			if n := reDecimal.FindString(g.Cell(r+1, c)); n != "" {
				return n, true
			}
		}
	}
	return "", false
}

func containsAny(upper string, labels []string) bool {
	for _, l := range labels {
		if strings.Contains(upper, strings.ToUpper(l)) {
			return true
		}
	}
	return false
}

// SumRowsDecimal totals one numeric role across rows, skipping rows where
// the role is absent or non-numeric. Reports false when nothing summed.
func SumRowsDecimal(rows []Row, role string) (string, bool) {
	sum := 0.0
	counted := false
	for _, row := range rows {
		v, ok := row[role]
		if !ok {
			continue
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			continue
		}
		sum += f
		counted = true
	}
	if !counted {
		return "", false
	}
	return strconv.FormatFloat(sum, 'f', -1, 64), true
}

package engine

import (
	"strings"
	"unicode/utf8"
)

// ValuePlaceholder stands in for any absent field in rendered output.
const ValuePlaceholder = "N/A"

const bannerWidth = 44

// RenderItem is one labeled line; Field keys into the record's fields, or
// its summary for footer items.
type RenderItem struct {
	Label string
	Field string
}

// RenderSection groups labeled lines under a heading.
type RenderSection struct {
	Heading string
	Items   []RenderItem
}

// TableRender lays out the record's rows as pipe-separated lines in a
// fixed column order.
type TableRender struct {
	Heading string
	Columns []string
}

// RenderSpec is the deterministic text layout of a record kind. Everything
// is ordered slices: the same record always renders to the same bytes.
type RenderSpec struct {
	Title    string
	Sections []RenderSection
	Table    *TableRender
	Footer   []RenderItem
}

// RenderText renders the record as a plain text block. Absent values
// render as the placeholder rather than vanishing, so a reader can see
// what the sheet did not yield.
func RenderText(spec *RenderSpec, rec *Record) string {
	var b strings.Builder

	rule := strings.Repeat("=", bannerWidth)
	b.WriteString(rule + "\n")
	b.WriteString(" " + spec.Title + "\n")
	b.WriteString(rule + "\n")

	for _, sec := range spec.Sections {
		if sec.Heading != "" {
			b.WriteString(sectionRule(sec.Heading))
		}
		width := labelWidth(sec.Items)
		for _, item := range sec.Items {
			writeItem(&b, item.Label, width, orPlaceholder(rec.Fields[item.Field]))
		}
	}

	if spec.Table != nil {
		b.WriteString(sectionRule(spec.Table.Heading))
		if len(rec.Rows) == 0 {
			b.WriteString(ValuePlaceholder + "\n")
		}
		for _, row := range rec.Rows {
			cells := make([]string, len(spec.Table.Columns))
			for i, col := range spec.Table.Columns {
				cells[i] = orPlaceholder(row[col])
			}
			b.WriteString(strings.Join(cells, " | ") + "\n")
		}
	}

	if len(spec.Footer) > 0 {
		b.WriteString(strings.Repeat("-", bannerWidth) + "\n")
		width := labelWidth(spec.Footer)
		for _, item := range spec.Footer {
			value := rec.Summary[item.Field]
			if value == "" {
				value = rec.Fields[item.Field]
			}
			writeItem(&b, item.Label, width, orPlaceholder(value))
		}
	}

	return b.String()
}

func sectionRule(heading string) string {
	rule := strings.Repeat("-", bannerWidth)
	return rule + "\n " + heading + "\n" + rule + "\n"
}

func labelWidth(items []RenderItem) int {
	width := 0
	for _, item := range items {
		if n := utf8.RuneCountInString(item.Label); n > width {
			width = n
		}
	}
	return width
}

func writeItem(b *strings.Builder, label string, width int, value string) {
	b.WriteString(label)
	b.WriteString(strings.Repeat(" ", width-utf8.RuneCountInString(label)))
	b.WriteString(" : ")
	b.WriteString(value)
	b.WriteString("\n")
}

func orPlaceholder(v string) string {
	if v == "" {
		return ValuePlaceholder
	}
	return v
}

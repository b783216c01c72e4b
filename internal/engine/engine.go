package engine

import (
	"errors"
	"fmt"

	"github.com/priya-sndrs/InstSys-CaseStudy-sub000/internal/grid"
)

// ErrNoIdentity reports that a sheet yielded none of the record kind's
// identity fields, so nothing anchors the record to a person.
var ErrNoIdentity = errors.New("no identity field resolved")

// Config is the full extraction recipe for one record kind: which labeled
// fields to locate, how to find and read the tabular block, which
// inference chains backfill gaps, and how the result is rendered.
type Config struct {
	Kind      string
	Fields    []FieldSpec
	Window    ScanWindow
	Table     *TableConfig
	Timetable *TimetableConfig
	Chains    []Chain
	// Identity lists fields of which at least one must resolve before
	// defaults apply; otherwise extraction fails with ErrNoIdentity.
	Identity []string
	// Defaults fill fields still empty at assembly.
	Defaults map[string]string
	Render   RenderSpec
	// Summarize computes kind-specific summary values at assembly.
	Summarize func(g *grid.Grid, d *Draft) map[string]string
}

// Extract runs the whole recipe against one sheet. The draft goes through
// label location, table or timetable extraction and the inference chains;
// the identity check runs before defaults so a default can never stand in
// for a missing person.
func (c *Config) Extract(g *grid.Grid, source string) (*Record, error) {
	d := &Draft{
		Kind:       c.Kind,
		Source:     source,
		Fields:     make(map[string]string, len(c.Fields)),
		Provenance: make(map[string]string, len(c.Fields)),
	}

	located := LocateFields(g, c.Fields, c.Window)
	for _, spec := range c.Fields {
		if lf := located[spec.Name]; lf.Found {
			d.setField(spec.Name, lf.Value, "label:"+lf.Strategy.String())
		}
	}

	if c.Table != nil {
		if block, ok := DetectTable(g, c.Table); ok {
			d.Rows = ExtractRows(g, c.Table, block)
		}
	}
	if len(d.Rows) == 0 && c.Timetable != nil {
		d.Rows = ExtractTimetable(g, c.Timetable)
	}

	ApplyChains(d, c.Chains)

	if !c.hasIdentity(d) {
		return nil, fmt.Errorf("%s record from %q: %w", c.Kind, source, ErrNoIdentity)
	}

	return assemble(g, d, c), nil
}

func (c *Config) hasIdentity(d *Draft) bool {
	if len(c.Identity) == 0 {
		return true
	}
	for _, field := range c.Identity {
		if d.Fields[field] != "" {
			return true
		}
	}
	return false
}

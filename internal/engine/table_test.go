package engine

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/priya-sndrs/InstSys-CaseStudy-sub000/internal/grid"
)

var subjectAnchor = regexp.MustCompile(`^[A-Z]{2,5}\s?\d{2,4}[A-Z]?$`)

func subjectTableConfig() *TableConfig {
	return &TableConfig{
		HeaderKeywords: []string{"SUBJECT", "CODE", "DESCRIPTION", "UNITS", "SCHEDULE", "ROOM"},
		Roles: []ColumnRole{
			{Name: "code", Synonyms: []string{"SUBJECT CODE", "CODE"}, Normalize: NormalizeText},
			{Name: "title", Synonyms: []string{"DESCRIPTION", "DESCRIPTIVE TITLE", "SUBJECT"}},
			{Name: "units", Synonyms: []string{"UNITS", "NO. OF UNITS"}, Normalize: NormalizeDecimal},
			{Name: "room", Synonyms: []string{"ROOM"}},
		},
		AnchorRole:      "code",
		AnchorPattern:   subjectAnchor,
		SentinelPattern: subjectAnchor,
		FixedColumns:    map[string]int{"code": 0, "title": 1, "units": 2},
		Terminators:     []string{"TOTAL", "NOTHING FOLLOWS"},
	}
}

func TestDetectTableHeaderRow(t *testing.T) {
	g := grid.New([][]string{
		{"CERTIFICATE OF REGISTRATION"},
		{""},
		{"Subject Code", "Descriptive Title", "Units", "Room"},
		{"CS 101", "Intro to Computing", "3", "204"},
	})

	block, ok := DetectTable(g, subjectTableConfig())
	require.True(t, ok)
	assert.Equal(t, DetectHeaderRow, block.Strategy)
	assert.Equal(t, 2, block.HeaderRow)
	assert.Equal(t, 3, block.DataStart)
	assert.Equal(t, 0, block.Columns["code"])
	assert.Equal(t, 1, block.Columns["title"])
	assert.Equal(t, 2, block.Columns["units"])
	assert.Equal(t, 3, block.Columns["room"])
}

func TestDetectTableSentinelFallback(t *testing.T) {
	// A lone keyword hit stays under the threshold of three, so the
	// column-0 pattern has to find the headerless block.
	g := grid.New([][]string{
		{"Units earned this term"},
		{""},
		{"CS 101", "Intro to Computing", "3"},
		{"MATH 113", "Calculus I", "5"},
	})

	block, ok := DetectTable(g, subjectTableConfig())
	require.True(t, ok)
	assert.Equal(t, DetectSentinel, block.Strategy)
	assert.Equal(t, -1, block.HeaderRow)
	assert.Equal(t, 2, block.DataStart)
	assert.Equal(t, map[string]int{"code": 0, "title": 1, "units": 2}, block.Columns)
}

func TestDetectTableNothingFound(t *testing.T) {
	g := grid.New([][]string{
		{"just prose"},
		{"more prose"},
	})
	_, ok := DetectTable(g, subjectTableConfig())
	assert.False(t, ok)
}

func TestMapColumnsExactBeatsSubstring(t *testing.T) {
	cfg := &TableConfig{
		Roles: []ColumnRole{
			{Name: "code", Synonyms: []string{"CODE"}},
		},
	}
	g := grid.New([][]string{
		{"Subject Code", "Code"},
	})

	cols := MapColumns(g, 0, cfg)
	assert.Equal(t, 1, cols["code"])
}

func TestMapColumnsUniqueAssignment(t *testing.T) {
	// Both roles score an exact hit on the lone "Time" column; the
	// earlier role claims it and the other stays unmapped.
	cfg := &TableConfig{
		Roles: []ColumnRole{
			{Name: "time_start", Synonyms: []string{"TIME START", "TIME"}},
			{Name: "time_end", Synonyms: []string{"TIME END", "TIME"}},
		},
	}
	g := grid.New([][]string{
		{"Time", "Subject"},
	})

	cols := MapColumns(g, 0, cfg)
	assert.Equal(t, 0, cols["time_start"])
	_, mapped := cols["time_end"]
	assert.False(t, mapped)
}

func TestMapColumnsNoHitStaysUnmapped(t *testing.T) {
	cfg := subjectTableConfig()
	g := grid.New([][]string{
		{"Subject Code", "Descriptive Title", "Units"},
	})

	cols := MapColumns(g, 0, cfg)
	_, mapped := cols["room"]
	assert.False(t, mapped)
	assert.Len(t, cols, 3)
}

func TestMapColumnsLongerSynonymWins(t *testing.T) {
	cfg := &TableConfig{
		Roles: []ColumnRole{
			{Name: "time_start", Synonyms: []string{"TIME START", "TIME"}},
			{Name: "time_end", Synonyms: []string{"TIME END"}},
		},
	}
	g := grid.New([][]string{
		{"Time Start", "Time End"},
	})

	cols := MapColumns(g, 0, cfg)
	assert.Equal(t, 0, cols["time_start"])
	assert.Equal(t, 1, cols["time_end"])
}

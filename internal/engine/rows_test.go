package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/priya-sndrs/InstSys-CaseStudy-sub000/internal/grid"
)

func TestExtractRowsWalksUntilEmptyAnchor(t *testing.T) {
	cfg := subjectTableConfig()
	g := grid.New([][]string{
		{"Subject Code", "Descriptive Title", "Units", "Room"},
		{"CS 101", "Intro to Computing", "3", "204"},
		{"MATH 113", "Calculus I", "5", "310"},
		{"", "orphaned note", "9", ""},
		{"CS 102", "Programming 1", "3", "204"},
	})
	block, ok := DetectTable(g, cfg)
	require.True(t, ok)

	rows := ExtractRows(g, cfg, block)
	require.Len(t, rows, 2)
	assert.Equal(t, "CS 101", rows[0]["code"])
	assert.Equal(t, "Intro to Computing", rows[0]["title"])
	assert.Equal(t, "3", rows[0]["units"])
	assert.Equal(t, "MATH 113", rows[1]["code"])
}

func TestExtractRowsStopsAtTerminator(t *testing.T) {
	cfg := subjectTableConfig()
	g := grid.New([][]string{
		{"Subject Code", "Descriptive Title", "Units", "Room"},
		{"CS 101", "Intro to Computing", "3", "204"},
		{"TOTAL UNITS", "", "3", ""},
		{"CS 102", "Programming 1", "3", "204"},
	})
	block, ok := DetectTable(g, cfg)
	require.True(t, ok)

	rows := ExtractRows(g, cfg, block)
	require.Len(t, rows, 1)
	assert.Equal(t, "CS 101", rows[0]["code"])
}

func TestExtractRowsSkipsInvalidAnchor(t *testing.T) {
	// A stray note inside the block is skipped, it must not end the walk.
	cfg := subjectTableConfig()
	g := grid.New([][]string{
		{"Subject Code", "Descriptive Title", "Units", "Room"},
		{"CS 101", "Intro to Computing", "3", "204"},
		{"see adviser for overload", "", "", ""},
		{"MATH 113", "Calculus I", "5", "310"},
	})
	block, ok := DetectTable(g, cfg)
	require.True(t, ok)

	rows := ExtractRows(g, cfg, block)
	require.Len(t, rows, 2)
	assert.Equal(t, "MATH 113", rows[1]["code"])
}

func TestExtractRowsRejectsRepeatedHeaderCell(t *testing.T) {
	// A header literal in a data cell is dropped by the role cleaner while
	// the rest of the row survives.
	cfg := subjectTableConfig()
	g := grid.New([][]string{
		{"Subject Code", "Descriptive Title", "Units", "Room"},
		{"CS 101", "DESCRIPTIVE TITLE", "3", "204"},
	})
	block, ok := DetectTable(g, cfg)
	require.True(t, ok)

	rows := ExtractRows(g, cfg, block)
	require.Len(t, rows, 1)
	_, present := rows[0]["title"]
	assert.False(t, present)
	assert.Equal(t, "3", rows[0]["units"])
}

func TestExtractRowsSentinelBlock(t *testing.T) {
	cfg := subjectTableConfig()
	g := grid.New([][]string{
		{"REPORT OF GRADES"},
		{"CS 101", "Intro to Computing", "3"},
		{"MATH 113", "Calculus I", "5"},
		{"TOTAL", "", "8"},
	})
	block, ok := DetectTable(g, cfg)
	require.True(t, ok)
	require.Equal(t, DetectSentinel, block.Strategy)

	rows := ExtractRows(g, cfg, block)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"CS 101", "MATH 113"}, AnchorValues(rows, "code"))
}

func TestExtractRowsRowCap(t *testing.T) {
	cfg := subjectTableConfig()
	cfg.MaxRows = 1
	g := grid.New([][]string{
		{"Subject Code", "Descriptive Title", "Units", "Room"},
		{"CS 101", "Intro to Computing", "3", "204"},
		{"MATH 113", "Calculus I", "5", "310"},
	})
	block, ok := DetectTable(g, cfg)
	require.True(t, ok)

	rows := ExtractRows(g, cfg, block)
	assert.Len(t, rows, 1)
}

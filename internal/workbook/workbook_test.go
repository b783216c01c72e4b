package workbook

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func buildWorkbook(t *testing.T, cells map[string]string, merges [][2]string) *excelize.File {
	t.Helper()
	f := excelize.NewFile()
	for axis, value := range cells {
		require.NoError(t, f.SetCellStr("Sheet1", axis, value))
	}
	for _, m := range merges {
		require.NoError(t, f.MergeCell("Sheet1", m[0], m[1]))
	}
	return f
}

func TestLoadReader(t *testing.T) {
	f := buildWorkbook(t, map[string]string{
		"A1": "Student Name",
		"B1": "Dela Cruz, Juan",
		"A2": "Program",
		"B2": "BSIT",
		"D3": "wide",
	}, nil)
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	sheets, err := LoadReader(buf)
	require.NoError(t, err)
	require.Len(t, sheets, 1)

	g := sheets[0].Grid
	assert.Equal(t, "Sheet1", sheets[0].Name)
	assert.Equal(t, "Student Name", g.Cell(0, 0))
	assert.Equal(t, "Dela Cruz, Juan", g.Cell(0, 1))
	assert.Equal(t, "BSIT", g.Cell(1, 1))
	assert.Equal(t, "wide", g.Cell(2, 3))
	// Squaring: every row reaches the widest column.
	assert.Equal(t, "", g.Cell(0, 3))
}

func TestLoadReaderFillsMergedRegions(t *testing.T) {
	f := buildWorkbook(t, map[string]string{
		"A1": "7:30 - 9:00",
		"C1": "x",
		"C2": "y",
	}, [][2]string{{"A1", "A2"}})
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	sheets, err := LoadReader(buf)
	require.NoError(t, err)
	require.Len(t, sheets, 1)

	g := sheets[0].Grid
	assert.Equal(t, "7:30 - 9:00", g.Cell(0, 0))
	assert.Equal(t, "7:30 - 9:00", g.Cell(1, 0))
}

func TestLoadReaderRejectsGarbage(t *testing.T) {
	_, err := LoadReader(strings.NewReader("not a workbook"))
	require.Error(t, err)
}

package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/priya-sndrs/InstSys-CaseStudy-sub000/internal/grid"
)

func nameSpec() FieldSpec {
	return FieldSpec{
		Name:      "student_name",
		Synonyms:  []string{"STUDENT NAME", "NAME OF STUDENT"},
		Normalize: NormalizeName,
	}
}

func TestLocateFieldsSameCell(t *testing.T) {
	g := grid.New([][]string{
		{"Student Name: dela cruz, juan"},
	})
	got := LocateFields(g, []FieldSpec{nameSpec()}, ScanWindow{})

	lf := got["student_name"]
	require.True(t, lf.Found)
	assert.Equal(t, "Dela Cruz, Juan", lf.Value)
	assert.Equal(t, StrategySameCell, lf.Strategy)
	assert.Equal(t, 0, lf.Row)
}

func TestLocateFieldsRightCell(t *testing.T) {
	g := grid.New([][]string{
		{"", ""},
		{"Student Name", "Dela Cruz, Juan"},
	})
	got := LocateFields(g, []FieldSpec{nameSpec()}, ScanWindow{})

	lf := got["student_name"]
	require.True(t, lf.Found)
	assert.Equal(t, "Dela Cruz, Juan", lf.Value)
	assert.Equal(t, StrategyRightCell, lf.Strategy)
}

func TestLocateFieldsBelowCell(t *testing.T) {
	g := grid.New([][]string{
		{"Student Name", ""},
		{"Dela Cruz, Juan", ""},
	})
	got := LocateFields(g, []FieldSpec{nameSpec()}, ScanWindow{})

	lf := got["student_name"]
	require.True(t, lf.Found)
	assert.Equal(t, "Dela Cruz, Juan", lf.Value)
	assert.Equal(t, StrategyBelowCell, lf.Strategy)
}

func TestLocateFieldsRejectsHeaderLiteral(t *testing.T) {
	// A repeated label in the value position must not become the value.
	g := grid.New([][]string{
		{"Student Name", "STUDENT NAME"},
		{"Dela Cruz, Juan", ""},
	})
	got := LocateFields(g, []FieldSpec{nameSpec()}, ScanWindow{})

	lf := got["student_name"]
	require.True(t, lf.Found)
	assert.Equal(t, StrategyBelowCell, lf.Strategy)
	assert.Equal(t, "Dela Cruz, Juan", lf.Value)
}

func TestLocateFieldsFirstMatchWins(t *testing.T) {
	g := grid.New([][]string{
		{"Student Name", "First, Match"},
		{"Student Name", "Second, Match"},
	})
	got := LocateFields(g, []FieldSpec{nameSpec()}, ScanWindow{})

	lf := got["student_name"]
	require.True(t, lf.Found)
	assert.Equal(t, "First, Match", lf.Value)
	assert.Equal(t, 0, lf.Row)
}

func TestLocateFieldsStrategyOverride(t *testing.T) {
	// Only below-cell allowed: the inline value must be ignored.
	spec := nameSpec()
	spec.Strategies = []Strategy{StrategyBelowCell}
	g := grid.New([][]string{
		{"Student Name: Inline, Value"},
		{"Below, Value"},
	})
	got := LocateFields(g, []FieldSpec{spec}, ScanWindow{})

	lf := got["student_name"]
	require.True(t, lf.Found)
	assert.Equal(t, "Below, Value", lf.Value)
	assert.Equal(t, StrategyBelowCell, lf.Strategy)
}

func TestLocateFieldsWindowBound(t *testing.T) {
	rows := make([][]string, 6)
	for i := range rows {
		rows[i] = []string{""}
	}
	rows = append(rows, []string{"Student Name", "Too Far, Down"})
	g := grid.New(rows)

	got := LocateFields(g, []FieldSpec{nameSpec()}, ScanWindow{Rows: 5, Cols: 5})
	assert.False(t, got["student_name"].Found)

	got = LocateFields(g, []FieldSpec{nameSpec()}, ScanWindow{Rows: 10, Cols: 5})
	assert.True(t, got["student_name"].Found)
}

func TestLocateFieldsUnresolvedEntryPresent(t *testing.T) {
	g := grid.New([][]string{{"nothing relevant"}})
	got := LocateFields(g, []FieldSpec{nameSpec()}, ScanWindow{})

	lf, present := got["student_name"]
	require.True(t, present)
	assert.False(t, lf.Found)
	assert.Empty(t, lf.Value)
}

func TestLocateFieldsLabelNoValueKeepsScanning(t *testing.T) {
	// The first label sighting has no usable value anywhere, so a later
	// sighting may still resolve the field.
	g := grid.New([][]string{
		{"Student Name", ""},
		{"", ""},
		{"Student Name", "Dela Cruz, Juan"},
	})
	got := LocateFields(g, []FieldSpec{nameSpec()}, ScanWindow{})

	lf := got["student_name"]
	require.True(t, lf.Found)
	assert.Equal(t, 2, lf.Row)
	assert.Equal(t, "Dela Cruz, Juan", lf.Value)
}

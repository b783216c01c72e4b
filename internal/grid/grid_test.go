package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCell_OutOfBoundsIsEmpty(t *testing.T) {
	t.Parallel()

	g := New([][]string{
		{"a", "b"},
		{"c"},
	})

	assert.Equal(t, "a", g.Cell(0, 0))
	assert.Equal(t, "c", g.Cell(1, 0))
	assert.Equal(t, "", g.Cell(1, 1), "short row reads as empty")
	assert.Equal(t, "", g.Cell(5, 0))
	assert.Equal(t, "", g.Cell(-1, 0))
	assert.Equal(t, "", g.Cell(0, -1))
}

func TestCell_TrimsWhitespace(t *testing.T) {
	t.Parallel()

	g := New([][]string{{"  padded  ", "\ttabbed\n"}})
	assert.Equal(t, "padded", g.Cell(0, 0))
	assert.Equal(t, "tabbed", g.Cell(0, 1))
}

func TestNew_CopiesInput(t *testing.T) {
	t.Parallel()

	rows := [][]string{{"x"}}
	g := New(rows)
	rows[0][0] = "mutated"
	assert.Equal(t, "x", g.Cell(0, 0))
}

func TestCounts(t *testing.T) {
	t.Parallel()

	g := New([][]string{
		{"a", "b", "c"},
		{"d"},
		{},
	})
	assert.Equal(t, 3, g.RowCount())
	assert.Equal(t, 3, g.ColCount(0))
	assert.Equal(t, 1, g.ColCount(1))
	assert.Equal(t, 0, g.ColCount(2))
	assert.Equal(t, 0, g.ColCount(9))
	assert.Equal(t, 3, g.MaxColCount())
}

func TestRowIsEmpty(t *testing.T) {
	t.Parallel()

	g := New([][]string{
		{"", "  ", ""},
		{"", "x"},
	})
	assert.True(t, g.RowIsEmpty(0))
	assert.False(t, g.RowIsEmpty(1))
	assert.True(t, g.RowIsEmpty(7))
}

func TestNilGrid(t *testing.T) {
	t.Parallel()

	var g *Grid
	assert.Equal(t, "", g.Cell(0, 0))
	assert.Equal(t, 0, g.RowCount())
	assert.Equal(t, 0, g.MaxColCount())
	assert.True(t, g.RowIsEmpty(0))
}

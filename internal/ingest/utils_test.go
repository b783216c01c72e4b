package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllowedPath(t *testing.T) {
	cases := []struct {
		path string
		want bool
	}{
		{"records/cor-2024.xlsx", true},
		{"records/COR-2024.XLSX", true},
		{"macros/gradesheet.xlsm", true},
		{"templates/blank.xltx", true},
		{"~$cor-2024.xlsx", false},
		{"records/~$gradesheet.xlsm", false},
		{"notes.txt", false},
		{"legacy/archive.xls", false},
		{"noext", false},
	}
	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			assert.Equal(t, tc.want, AllowedPath(tc.path))
		})
	}
}

func TestIsHidden(t *testing.T) {
	assert.True(t, IsHidden(".git"))
	assert.True(t, IsHidden("drop/.cache"))
	assert.False(t, IsHidden("drop/cor.xlsx"))
	assert.False(t, IsHidden("./drop/cor.xlsx"))
}

package records

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/priya-sndrs/InstSys-CaseStudy-sub000/constants"
	"github.com/priya-sndrs/InstSys-CaseStudy-sub000/internal/grid"
)

func TestDetectKind(t *testing.T) {
	tests := []struct {
		name     string
		rows     [][]string
		filename string
		want     constants.RecordKind
	}{
		{
			name:     "registration sheet",
			rows:     corSheetRows(),
			filename: "bsit-2a-cor.xlsx",
			want:     constants.KindSchedule,
		},
		{
			name: "grade sheet",
			rows: [][]string{
				{"REPORT OF GRADES"},
				{"Subject Code", "Units", "Final Grade", "Remarks"},
			},
			filename: "santos.xlsx",
			want:     constants.KindGrades,
		},
		{
			name: "faculty profile",
			rows: [][]string{
				{"TEACHING PERSONNEL PROFILE"},
				{"Employment Status:", "Full-Time"},
			},
			filename: "reyes.xlsx",
			want:     constants.KindTeaching,
		},
		{
			name: "staff profile routes away from teaching",
			rows: [][]string{
				{"NON-TEACHING PERSONNEL PROFILE"},
				{"Office:", "Registrar"},
			},
			filename: "torres.xlsx",
			want:     constants.KindNonTeaching,
		},
		{
			name: "weekly load",
			rows: [][]string{
				{"FACULTY SCHEDULE"},
				{"Time", "Monday", "Tuesday", "Wednesday"},
			},
			filename: "cruz-load.xlsx",
			want:     constants.KindPersonnelSchedule,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := DetectKind(grid.New(tt.rows), tt.filename)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDetectKindBelowThreshold(t *testing.T) {
	g := grid.New([][]string{
		{"annual fiesta committee"},
		{"snacks", "budget"},
	})
	_, ok := DetectKind(g, "notes.xlsx")
	assert.False(t, ok)
}

func TestDetectKindUsesFilenameHints(t *testing.T) {
	// Content alone is too thin; the filename tips it over.
	g := grid.New([][]string{
		{"S.Y. 2024-2025"},
	})
	got, ok := DetectKind(g, "dela-cruz-COR.xlsx")
	require.True(t, ok)
	assert.Equal(t, constants.KindSchedule, got)
}

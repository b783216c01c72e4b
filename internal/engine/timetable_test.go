package engine

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/priya-sndrs/InstSys-CaseStudy-sub000/internal/grid"
)

func TestParseClockLabel(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
		ok   bool
	}{
		{"morning hour stays am", "7:00", "7:00 AM", true},
		{"school-day heuristic reads 1-6 as pm", "1:30", "1:30 PM", true},
		{"six is pm", "6:00", "6:00 PM", true},
		{"noon", "12:00", "12:00 PM", true},
		{"explicit am honored", "9:00 AM", "9:00 AM", true},
		{"explicit pm honored", "9:00 PM", "9:00 PM", true},
		{"dotted marker", "8:30 a.m.", "8:30 AM", true},
		{"twelve am wraps", "12:00 AM", "12:00 AM", true},
		{"bare hour", "7", "7:00 AM", true},
		{"serial fraction", "0.5", "12:00 PM", true},
		{"twenty-four hour kept", "13:30", "1:30 PM", true},
		{"garbage", "soon", "", false},
		{"empty", "", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parseClockLabel(tt.raw)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseTimeRange(t *testing.T) {
	start, end, ok := parseTimeRange("7:30 - 9:00")
	require.True(t, ok)
	assert.Equal(t, "7:30 AM", start)
	assert.Equal(t, "9:00 AM", end)

	start, end, ok = parseTimeRange("11:30-1:00")
	require.True(t, ok)
	assert.Equal(t, "11:30 AM", start)
	assert.Equal(t, "1:00 PM", end)

	start, end, ok = parseTimeRange("1:00 TO 2:30 PM")
	require.True(t, ok)
	assert.Equal(t, "1:00 PM", start)
	assert.Equal(t, "2:30 PM", end)

	start, end, ok = parseTimeRange("10:00")
	require.True(t, ok)
	assert.Equal(t, "10:00 AM", start)
	assert.Empty(t, end)

	_, _, ok = parseTimeRange("whenever")
	assert.False(t, ok)
}

func timetableTestConfig() *TimetableConfig {
	return &TimetableConfig{
		SubjectPattern: regexp.MustCompile(`^[A-Z]{2,5}\s?\d{2,4}[A-Z]?$`),
	}
}

func TestBuildSubjectIndex(t *testing.T) {
	g := grid.New([][]string{
		{"TEACHING LOAD"},
		{"7:30 - 9:00", "CS 101", "BSCS 1-A"},
		{"9:00 - 10:30", "MATH 113", "BSCS 1-A"},
		{"7:30 - 9:00", "IT 205", "ignored, first sighting wins"},
	})

	index := BuildSubjectIndex(g, timetableTestConfig())
	assert.Equal(t, "CS 101", index["7:30 AM"])
	assert.Equal(t, "MATH 113", index["9:00 AM"])
	assert.Len(t, index, 2)
}

func TestExtractTimetable(t *testing.T) {
	g := grid.New([][]string{
		{"FACULTY SCHEDULE"},
		{"7:30 - 9:00", "CS 101"},
		{"9:00 - 10:30", "MATH 113"},
		{""},
		{"Time", "Monday", "Tuesday", "Wednesday"},
		{"7:30 - 9:00", "BSCS 1-A", "", "BSCS 1-A"},
		{"9:00 - 10:30", "", "BSIT 2-B", ""},
		{"1:00 - 2:30", "BSCS 3-A", "", ""},
	})

	rows := ExtractTimetable(g, timetableTestConfig())
	require.Len(t, rows, 4)

	assert.Equal(t, Row{
		RoleDay:       "Monday",
		RoleTimeStart: "7:30 AM",
		RoleTimeEnd:   "9:00 AM",
		RoleSubject:   "CS 101",
		RoleSection:   "BSCS 1-A",
	}, rows[0])

	assert.Equal(t, "Wednesday", rows[1][RoleDay])
	assert.Equal(t, "CS 101", rows[1][RoleSubject])

	assert.Equal(t, "Tuesday", rows[2][RoleDay])
	assert.Equal(t, "MATH 113", rows[2][RoleSubject])

	// The 1:00 slot never appeared in the first pass, so the subject is a
	// placeholder naming the slot.
	assert.Equal(t, "TBA-1:00 PM", rows[3][RoleSubject])
	assert.Equal(t, "1:00 PM", rows[3][RoleTimeStart])
}

func TestExtractTimetableNoDayHeader(t *testing.T) {
	g := grid.New([][]string{
		{"7:30 - 9:00", "CS 101"},
	})
	assert.Nil(t, ExtractTimetable(g, timetableTestConfig()))
}

func TestFindDayHeaderNeedsTwoDays(t *testing.T) {
	g := grid.New([][]string{
		{"Time", "Monday", "notes"},
	})
	_, _, ok := findDayHeader(g, timetableTestConfig())
	assert.False(t, ok)

	g = grid.New([][]string{
		{"Time", "Mon", "Wed"},
	})
	row, cols, ok := findDayHeader(g, timetableTestConfig())
	require.True(t, ok)
	assert.Equal(t, 0, row)
	assert.Equal(t, 1, cols["Monday"])
	assert.Equal(t, 2, cols["Wednesday"])
}

package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/priya-sndrs/InstSys-CaseStudy-sub000/internal/grid"
)

func registrationConfig() *Config {
	return &Config{
		Kind: "registration",
		Fields: []FieldSpec{
			{Name: "student_name", Synonyms: []string{"STUDENT NAME", "NAME OF STUDENT"}, Normalize: NormalizeName},
			{Name: "student_no", Synonyms: []string{"STUDENT NO", "STUDENT NUMBER", "ID NO"}},
			{Name: "program", Synonyms: []string{"PROGRAM", "COURSE", "DEGREE"}, Normalize: NormalizeProgram},
			{Name: "year_level", Synonyms: []string{"YEAR LEVEL"}, Normalize: NormalizeYearLevel},
			{Name: "email", Synonyms: []string{"EMAIL"}, Normalize: NormalizeEmail},
			{Name: "department", Synonyms: []string{"DEPARTMENT", "COLLEGE"}},
		},
		Table: subjectTableConfig(),
		Chains: []Chain{
			{Field: "department", Steps: []InferenceStep{
				FieldKeywordStep("program-keywords", "program", deptRules()),
				FilenameKeywordStep("filename-keywords", deptRules()),
			}},
		},
		Identity: []string{"student_name", "student_no"},
		Defaults: map[string]string{"department": "General"},
		Render: RenderSpec{
			Title: "CERTIFICATE OF REGISTRATION",
			Sections: []RenderSection{{
				Heading: "STUDENT",
				Items: []RenderItem{
					{Label: "Name", Field: "student_name"},
					{Label: "Student No.", Field: "student_no"},
					{Label: "Program", Field: "program"},
					{Label: "Email", Field: "email"},
					{Label: "Department", Field: "department"},
				},
			}},
			Table: &TableRender{
				Heading: "SUBJECTS",
				Columns: []string{"code", "title", "units", "room"},
			},
			Footer: []RenderItem{
				{Label: "Total Units", Field: "total_units"},
				{Label: "Subjects", Field: SummaryRowCount},
			},
		},
		Summarize: func(g *grid.Grid, d *Draft) map[string]string {
			out := make(map[string]string)
			if n, ok := ScanLabeledNumber(g, []string{"TOTAL UNITS"}, ScanWindow{Rows: 60, Cols: 15}); ok {
				out["total_units"] = n
			} else if n, ok := SumRowsDecimal(d.Rows, "units"); ok {
				out["total_units"] = n
			}
			return out
		},
	}
}

func TestExtractRegistrationSheet(t *testing.T) {
	g := grid.New([][]string{
		{"CERTIFICATE OF REGISTRATION"},
		{"Student Name: dela cruz, JUAN", "", "Student No.", "2021-00123"},
		{"Program", "Bachelor of Science in Computer Science"},
		{"Year Level", "2nd Year"},
		{""},
		{"Subject Code", "Descriptive Title", "Units", "Room"},
		{"CS 101", "Intro to Computing", "3", "204"},
		{"MATH 113", "Calculus I", "5", "310"},
		{""},
		{"Total Units:", "8"},
	})

	rec, err := registrationConfig().Extract(g, "bscs-2a-cor.xlsx")
	require.NoError(t, err)

	assert.Equal(t, "Dela Cruz, Juan", rec.Field("student_name"))
	assert.Equal(t, "2021-00123", rec.Field("student_no"))
	assert.Equal(t, "BSCS", rec.Field("program"))
	assert.Equal(t, "2", rec.Field("year_level"))
	assert.Equal(t, "Computer Studies", rec.Field("department"))

	assert.Equal(t, "label:same-cell", rec.Provenance["student_name"])
	assert.Equal(t, "label:right-cell", rec.Provenance["student_no"])
	assert.Equal(t, "inferred:program-keywords", rec.Provenance["department"])

	require.Len(t, rec.Rows, 2)
	assert.Equal(t, "8", rec.Summary["total_units"])
	assert.Equal(t, "2", rec.Summary[SummaryRowCount])

	assert.Contains(t, rec.Text, "CERTIFICATE OF REGISTRATION")
	assert.Contains(t, rec.Text, "CS 101 | Intro to Computing | 3 | 204")
	assert.Contains(t, rec.Text, "Email")
	assert.Contains(t, rec.Text, ValuePlaceholder)
	assert.Contains(t, rec.Text, "Total Units : 8")
}

func TestExtractValueFromLabelCell(t *testing.T) {
	// Label and value share one cell; nothing else on the sheet names a
	// program.
	g := grid.New([][]string{
		{"Student Name", "Santos, Ana"},
		{""},
		{"", "Program: BSCS"},
	})

	rec, err := registrationConfig().Extract(g, "plain.xlsx")
	require.NoError(t, err)

	assert.Equal(t, "BSCS", rec.Field("program"))
	assert.Equal(t, "label:same-cell", rec.Provenance["program"])
}

func TestExtractTimetableSheetWithSerialTimes(t *testing.T) {
	cfg := &Config{
		Kind: "personnel_schedule",
		Fields: []FieldSpec{
			{Name: "personnel_name", Synonyms: []string{"INSTRUCTOR", "FACULTY NAME"}, Normalize: NormalizeName},
		},
		Timetable: timetableTestConfig(),
		Identity:  []string{"personnel_name"},
		Render: RenderSpec{
			Title: "FACULTY SCHEDULE",
			Table: &TableRender{
				Heading: "WEEKLY SCHEDULE",
				Columns: []string{RoleDay, RoleTimeStart, RoleTimeEnd, RoleSubject, RoleSection},
			},
		},
	}

	g := grid.New([][]string{
		{"Instructor:", "reyes, maria"},
		{"0.3333333333333333", "CS 101"},
		{"Time", "Monday", "Thursday"},
		{"0.3333333333333333", "BSCS 1-A", ""},
	})

	rec, err := cfg.Extract(g, "reyes-load.xlsx")
	require.NoError(t, err)

	assert.Equal(t, "Reyes, Maria", rec.Field("personnel_name"))
	require.Len(t, rec.Rows, 1)
	assert.Equal(t, "Monday", rec.Rows[0][RoleDay])
	assert.Equal(t, "8:00 AM", rec.Rows[0][RoleTimeStart])
	assert.Equal(t, "CS 101", rec.Rows[0][RoleSubject])
	assert.Equal(t, "BSCS 1-A", rec.Rows[0][RoleSection])

	// The slot had no end reading, the rendering shows the placeholder.
	assert.Contains(t, rec.Text, "Monday | 8:00 AM | N/A | CS 101 | BSCS 1-A")
}

func TestExtractFailsWithoutIdentity(t *testing.T) {
	g := grid.New([][]string{
		{"nothing", "useful"},
	})

	_, err := registrationConfig().Extract(g, "bsit-whatever.xlsx")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoIdentity)
}

func TestExtractDefaultsApplyAtAssemblyOnly(t *testing.T) {
	g := grid.New([][]string{
		{"Student Name", "Santos, Ana"},
	})

	rec, err := registrationConfig().Extract(g, "plain.xlsx")
	require.NoError(t, err)

	// No program and no filename keyword: the chain missed and the
	// default filled in, visibly so.
	assert.Equal(t, "General", rec.Field("department"))
	assert.Equal(t, "default", rec.Provenance["department"])
	assert.Equal(t, "0", rec.Summary[SummaryRowCount])
}

func TestExtractDefaultNeverShadowsInference(t *testing.T) {
	g := grid.New([][]string{
		{"Student Name", "Santos, Ana"},
	})

	rec, err := registrationConfig().Extract(g, "bsit-2a.xlsx")
	require.NoError(t, err)

	assert.Equal(t, "Computer Studies", rec.Field("department"))
	assert.Equal(t, "inferred:filename-keywords", rec.Provenance["department"])
}

func TestExtractSummaryFallsBackToRowSum(t *testing.T) {
	// No TOTAL label anywhere, the units column is summed instead.
	g := grid.New([][]string{
		{"Student Name", "Santos, Ana"},
		{"Subject Code", "Descriptive Title", "Units", "Room"},
		{"CS 101", "Intro to Computing", "3", "204"},
		{"MATH 113", "Calculus I", "5", "310"},
	})

	rec, err := registrationConfig().Extract(g, "plain.xlsx")
	require.NoError(t, err)
	assert.Equal(t, "8", rec.Summary["total_units"])
}

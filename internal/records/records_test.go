package records

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/priya-sndrs/InstSys-CaseStudy-sub000/constants"
	"github.com/priya-sndrs/InstSys-CaseStudy-sub000/internal/engine"
	"github.com/priya-sndrs/InstSys-CaseStudy-sub000/internal/grid"
)

func corSheetRows() [][]string {
	return [][]string{
		{"COLEGIO DE SAN PEDRO"},
		{"CERTIFICATE OF REGISTRATION"},
		{"Student No.", "2021-00123", "", "Semester", "1st Semester"},
		{"Student Name", "DELA CRUZ, JUAN", "", "School Year", "2024-2025"},
		{"Course", "Bachelor of Science in Information Technology", "", "Year Level", "2nd Year"},
		{"Section", "2 - A"},
		{""},
		{"Subject Code", "Descriptive Title", "Units", "Day", "Time Start", "Time End", "Room"},
		{"IT 201", "Data Structures", "3", "MWF", "8:00 AM", "9:00 AM", "204"},
		{"IT 202", "Web Development", "3", "TTH", "0.4166666666666667", "0.5", "CL1"},
		{"GE 105", "Purposive Communication", "3", "MWF", "10:00 AM", "11:00 AM", "301"},
		{"TOTAL UNITS", "", "9"},
	}
}

func TestKindsRegistry(t *testing.T) {
	kinds := Kinds()
	assert.Len(t, kinds, 5)

	for _, k := range kinds {
		cfg, ok := ForKind(k)
		require.True(t, ok, k)
		assert.Equal(t, string(k), cfg.Kind)
	}

	_, ok := ForKind(constants.RecordKind("BOGUS"))
	assert.False(t, ok)
}

func TestScheduleExtraction(t *testing.T) {
	cfg, _ := ForKind(constants.KindSchedule)
	rec, err := cfg.Extract(grid.New(corSheetRows()), "bsit-2a-cor.xlsx")
	require.NoError(t, err)

	assert.Equal(t, "Dela Cruz, Juan", rec.Field(FieldStudentName))
	assert.Equal(t, "2021-00123", rec.Field(FieldStudentNo))
	assert.Equal(t, "BSIT", rec.Field(FieldProgram))
	assert.Equal(t, "2", rec.Field(FieldYearLevel))
	assert.Equal(t, "A", rec.Field(FieldSection))
	assert.Equal(t, "1st Semester", rec.Field(FieldSemester))
	assert.Equal(t, "2024-2025", rec.Field(FieldSchoolYear))
	assert.Empty(t, rec.Field(FieldAdviser))

	require.Len(t, rec.Rows, 3)
	assert.Equal(t, "IT 201", rec.Rows[0][RoleCode])
	assert.Equal(t, "Data Structures", rec.Rows[0][RoleTitle])
	assert.Equal(t, "8:00 AM", rec.Rows[0][engine.RoleTimeStart])
	// Serial times in the second row come out as clock text.
	assert.Equal(t, "10:00 AM", rec.Rows[1][engine.RoleTimeStart])
	assert.Equal(t, "12:00 PM", rec.Rows[1][engine.RoleTimeEnd])

	assert.Equal(t, "9", rec.Summary[SummaryTotalUnits])
	assert.Equal(t, "3", rec.Summary[SummarySubjectCount])
	assert.Equal(t, "IT 201, IT 202, GE 105", rec.Summary[SummarySubjectCodes])

	assert.Contains(t, rec.Text, "CERTIFICATE OF REGISTRATION")
	assert.Contains(t, rec.Text, "Adviser")
	assert.Contains(t, rec.Text, engine.ValuePlaceholder)
}

func TestScheduleProgramFromFilenameFallback(t *testing.T) {
	g := grid.New([][]string{
		{"Student Name", "Santos, Ana"},
	})
	cfg, _ := ForKind(constants.KindSchedule)
	rec, err := cfg.Extract(g, "BSCS-1A-COR.xlsx")
	require.NoError(t, err)

	assert.Equal(t, "BSCS", rec.Field(FieldProgram))
	assert.Equal(t, "inferred:filename-program", rec.Provenance[FieldProgram])
}

func TestGradesExtractionWeightedGWA(t *testing.T) {
	g := grid.New([][]string{
		{"REPORT OF GRADES"},
		{"Student Name:", "SANTOS, MARIA"},
		{"Student No:", "2020-01411"},
		{""},
		{"Subject Code", "Descriptive Title", "Units", "Final Grade", "Remarks"},
		{"CS 301", "Algorithms", "3", "1.50", "Passed"},
		{"CS 302", "Operating Systems", "3", "2.00", "Passed"},
		{"NSTP 101", "Civic Welfare Training", "3", "INC", "Incomplete"},
	})
	cfg, _ := ForKind(constants.KindGrades)
	rec, err := cfg.Extract(g, "santos-grades.xlsx")
	require.NoError(t, err)

	assert.Equal(t, "Santos, Maria", rec.Field(FieldStudentName))
	require.Len(t, rec.Rows, 3)
	assert.Equal(t, "INC", rec.Rows[2][RoleFinalGrade])

	// No GWA label on the sheet: units-weighted mean of the numeric
	// grades only.
	assert.Equal(t, "1.75", rec.Summary[SummaryGWA])
	assert.Equal(t, "3", rec.Summary[SummarySubjectCount])
}

func TestGradesStatedGWAWins(t *testing.T) {
	g := grid.New([][]string{
		{"Student Name:", "SANTOS, MARIA"},
		{"GWA:", "1.25"},
		{""},
		{"Subject Code", "Descriptive Title", "Units", "Final Grade", "Remarks"},
		{"CS 301", "Algorithms", "3", "3.00", "Passed"},
	})
	cfg, _ := ForKind(constants.KindGrades)
	rec, err := cfg.Extract(g, "grades.xlsx")
	require.NoError(t, err)

	assert.Equal(t, "1.25", rec.Summary[SummaryGWA])
}

func TestTeachingProfileChainOrder(t *testing.T) {
	g := grid.New([][]string{
		{"TEACHING PERSONNEL PROFILE"},
		{"Name:", "REYES, ANA MARIE"},
		{"Position:", "Instructor I"},
		{"Email:", "anamarie.reyes@school.edu.ph"},
		{"Contact No:", "0917-123-4567"},
		{"SSS No:", "3456789012"},
		{"PhilHealth No:", "123456789012"},
		{"Date of Birth:", "03/14/1990"},
		{"Employment Status:", "Full-Time"},
	})
	cfg, _ := ForKind(constants.KindTeaching)
	rec, err := cfg.Extract(g, "faculty-ccs-reyes.xlsx")
	require.NoError(t, err)

	assert.Equal(t, "Reyes, Ana Marie", rec.Field(FieldName))
	assert.Equal(t, "Instructor I", rec.Field(FieldPosition))
	assert.Equal(t, "09171234567", rec.Field(FieldPhone))
	assert.Equal(t, "34-5678901-2", rec.Field(FieldSSS))
	assert.Equal(t, "12-345678901-2", rec.Field(FieldPhilHealth))
	assert.Equal(t, "03/14/1990", rec.Field(FieldBirthdate))
	assert.Equal(t, "Full-Time", rec.Field(FieldEmployment))

	// Position and email carry no department hints, so the filename step
	// fires.
	assert.Equal(t, string(constants.ComputerStudies), rec.Field(FieldDepartment))
	assert.Equal(t, "inferred:filename-keywords", rec.Provenance[FieldDepartment])
}

func TestTeachingProfileDefaultDepartment(t *testing.T) {
	g := grid.New([][]string{
		{"Name:", "REYES, ANA MARIE"},
	})
	cfg, _ := ForKind(constants.KindTeaching)
	rec, err := cfg.Extract(g, "profile.xlsx")
	require.NoError(t, err)

	assert.Equal(t, string(constants.GeneralEducation), rec.Field(FieldDepartment))
	assert.Equal(t, "default", rec.Provenance[FieldDepartment])
}

func TestProfileChainOrderDiffersByVariant(t *testing.T) {
	// Identical sheet, conflicting hints: the position says computer
	// studies, the email says registrar. The two variants must resolve
	// it in their own order.
	sheet := [][]string{
		{"Name:", "TORRES, LIZA"},
		{"Position:", "CCS Laboratory Assistant"},
		{"Email:", "registrar.liza@school.edu.ph"},
	}

	teaching, _ := ForKind(constants.KindTeaching)
	rec, err := teaching.Extract(grid.New(sheet), "profile.xlsx")
	require.NoError(t, err)
	assert.Equal(t, string(constants.ComputerStudies), rec.Field(FieldDepartment))
	assert.Equal(t, "inferred:position-keywords", rec.Provenance[FieldDepartment])

	nonTeaching, _ := ForKind(constants.KindNonTeaching)
	rec, err = nonTeaching.Extract(grid.New(sheet), "profile.xlsx")
	require.NoError(t, err)
	assert.Equal(t, string(constants.Administration), rec.Field(FieldDepartment))
	assert.Equal(t, "inferred:email-local", rec.Provenance[FieldDepartment])
}

func TestDepartmentCellCanonicalized(t *testing.T) {
	// Free-text office names collapse onto the fixed taxonomy so the
	// personnel table's enum column accepts them.
	g := grid.New([][]string{
		{"Name:", "TORRES, LIZA"},
		{"Office:", "Registrar's Office"},
	})
	cfg, _ := ForKind(constants.KindNonTeaching)
	rec, err := cfg.Extract(g, "profile.xlsx")
	require.NoError(t, err)

	assert.Equal(t, string(constants.Administration), rec.Field(FieldDepartment))
	assert.Equal(t, "label:right-cell", rec.Provenance[FieldDepartment])
}

func TestDepartmentCellUnrecognizedFallsToChain(t *testing.T) {
	g := grid.New([][]string{
		{"Name:", "TORRES, LIZA"},
		{"Department:", "Facilities"},
		{"Email:", "registrar.liza@school.edu.ph"},
	})
	cfg, _ := ForKind(constants.KindNonTeaching)
	rec, err := cfg.Extract(g, "profile.xlsx")
	require.NoError(t, err)

	assert.Equal(t, string(constants.Administration), rec.Field(FieldDepartment))
	assert.Equal(t, "inferred:email-local", rec.Provenance[FieldDepartment])
}

func TestPersonnelScheduleExtraction(t *testing.T) {
	g := grid.New([][]string{
		{"FACULTY SCHEDULE"},
		{"Name:", "CRUZ, ROBERTO"},
		{"Department:", "Computer Studies"},
		{""},
		{"7:30 - 9:00", "CS 101"},
		{"Time", "Monday", "Tuesday", "Wednesday"},
		{"7:30 - 9:00", "BSCS 1-A", "", "BSCS 1-A"},
		{"1:00 - 2:30", "", "BSIT 2-B", ""},
	})
	cfg, _ := ForKind(constants.KindPersonnelSchedule)
	rec, err := cfg.Extract(g, "cruz-load.xlsx")
	require.NoError(t, err)

	assert.Equal(t, "Cruz, Roberto", rec.Field(FieldName))
	assert.Equal(t, "Computer Studies", rec.Field(FieldDepartment))

	require.Len(t, rec.Rows, 3)
	assert.Equal(t, "Monday", rec.Rows[0][engine.RoleDay])
	assert.Equal(t, "CS 101", rec.Rows[0][engine.RoleSubject])
	assert.Equal(t, "7:30 AM", rec.Rows[0][engine.RoleTimeStart])

	// Afternoon slot was never named in the first pass.
	assert.Equal(t, "1:00 PM", rec.Rows[2][engine.RoleTimeStart])
	assert.Equal(t, "TBA-1:00 PM", rec.Rows[2][engine.RoleSubject])
	assert.Equal(t, "3", rec.Summary[engine.SummaryRowCount])
}

func TestExtractionFailsWithoutIdentity(t *testing.T) {
	g := grid.New([][]string{
		{"Subject Code", "Descriptive Title", "Units"},
		{"CS 101", "Intro to Computing", "3"},
	})
	cfg, _ := ForKind(constants.KindGrades)
	_, err := cfg.Extract(g, "anonymous.xlsx")
	assert.ErrorIs(t, err, engine.ErrNoIdentity)
}

package records

import (
	"strconv"
	"strings"

	"github.com/priya-sndrs/InstSys-CaseStudy-sub000/constants"
	"github.com/priya-sndrs/InstSys-CaseStudy-sub000/internal/engine"
	"github.com/priya-sndrs/InstSys-CaseStudy-sub000/internal/grid"
)

// gradesConfig reads a report of grades: same student block as the COR,
// but the table carries grades and remarks instead of meeting times.
func gradesConfig() *engine.Config {
	return &engine.Config{
		Kind: string(constants.KindGrades),
		Fields: []engine.FieldSpec{
			{Name: FieldStudentName, Synonyms: []string{"STUDENT NAME", "NAME OF STUDENT", "STUDENT'S NAME"}, Normalize: engine.NormalizeName},
			{Name: FieldStudentNo, Synonyms: []string{"STUDENT NO", "STUDENT NUMBER", "STUDENT ID", "ID NUMBER", "ID NO"}},
			{Name: FieldProgram, Synonyms: []string{"PROGRAM", "COURSE", "DEGREE"}, Normalize: engine.NormalizeProgram},
			{Name: FieldYearLevel, Synonyms: []string{"YEAR LEVEL", "YR LEVEL", "YR."}, Normalize: engine.NormalizeYearLevel},
			{Name: FieldSection, Synonyms: []string{"SECTION"}, Normalize: engine.NormalizeSection},
			// Bare TERM would contains-match MIDTERM column headers.
			{Name: FieldSemester, Synonyms: []string{"SEMESTER"}},
			{Name: FieldSchoolYear, Synonyms: []string{"SCHOOL YEAR", "ACADEMIC YEAR", "S.Y", "A.Y"}},
			{Name: FieldGWA, Synonyms: []string{"GENERAL WEIGHTED AVERAGE", "GWA"}, Normalize: engine.NormalizeDecimal},
		},
		Table:    gradesTable(),
		Chains:   []engine.Chain{programFromFilename()},
		Identity: []string{FieldStudentName, FieldStudentNo},
		Render: engine.RenderSpec{
			Title: "REPORT OF GRADES",
			Sections: []engine.RenderSection{{
				Heading: "STUDENT INFORMATION",
				Items: []engine.RenderItem{
					{Label: "Name", Field: FieldStudentName},
					{Label: "Student No.", Field: FieldStudentNo},
					{Label: "Program", Field: FieldProgram},
					{Label: "Year Level", Field: FieldYearLevel},
					{Label: "Section", Field: FieldSection},
					{Label: "Semester", Field: FieldSemester},
					{Label: "School Year", Field: FieldSchoolYear},
				},
			}},
			Table: &engine.TableRender{
				Heading: "GRADES",
				Columns: []string{RoleCode, RoleTitle, RoleUnits, RoleFinalGrade, RoleRemarks},
			},
			Footer: []engine.RenderItem{
				{Label: "GWA", Field: SummaryGWA},
				{Label: "Subjects", Field: SummarySubjectCount},
			},
		},
		Summarize: gradesSummary,
	}
}

func gradesTable() *engine.TableConfig {
	return &engine.TableConfig{
		HeaderKeywords: []string{"SUBJECT", "CODE", "DESCRIPTION", "TITLE", "UNITS", "GRADE", "RATING", "REMARKS"},
		Roles: []engine.ColumnRole{
			{Name: RoleCode, Synonyms: []string{"SUBJECT CODE", "COURSE CODE", "SUBJ CODE", "COURSE NO", "CODE"}, Normalize: upperText},
			{Name: RoleTitle, Synonyms: []string{"DESCRIPTIVE TITLE", "SUBJECT TITLE", "COURSE TITLE", "DESCRIPTION", "SUBJECT"}},
			{Name: RoleUnits, Synonyms: []string{"NO. OF UNITS", "UNITS", "CREDIT"}, Normalize: engine.NormalizeDecimal},
			{Name: RoleFinalGrade, Synonyms: []string{"FINAL GRADE", "FINAL RATING", "GRADE", "RATING"}, Normalize: normalizeGrade},
			{Name: RoleRemarks, Synonyms: []string{"REMARKS", "REMARK"}, Normalize: upperText},
		},
		AnchorRole:      RoleCode,
		AnchorPattern:   reSubjectCode,
		SentinelPattern: reSubjectCode,
		FixedColumns:    map[string]int{RoleCode: 0, RoleTitle: 1, RoleUnits: 2, RoleFinalGrade: 3},
		Terminators:     []string{"TOTAL", "NOTHING FOLLOWS", "GWA"},
	}
}

// normalizeGrade accepts the numeric 1.00-5.00 scale plus the registrar's
// non-numeric marks.
func normalizeGrade(raw string) (string, bool) {
	if v, ok := engine.NormalizeDecimal(raw); ok {
		return v, true
	}
	switch token := strings.ToUpper(strings.TrimSpace(raw)); token {
	case "INC", "DRP", "W", "P", "F", "PASSED", "FAILED":
		return token, true
	default:
		return "", false
	}
}

// gradesSummary prefers the sheet's stated GWA; otherwise it computes the
// units-weighted mean of the numeric grades. Rows with a non-numeric grade
// or missing units stay out of the computation.
func gradesSummary(_ *grid.Grid, d *engine.Draft) map[string]string {
	out := map[string]string{
		SummarySubjectCount: strconv.Itoa(len(d.Rows)),
	}
	if v := d.Fields[FieldGWA]; v != "" {
		out[SummaryGWA] = v
		return out
	}

	var weighted, units float64
	for _, row := range d.Rows {
		u, err := strconv.ParseFloat(row[RoleUnits], 64)
		if err != nil || u <= 0 {
			continue
		}
		gr, err := strconv.ParseFloat(row[RoleFinalGrade], 64)
		if err != nil {
			continue
		}
		weighted += u * gr
		units += u
	}
	if units > 0 {
		out[SummaryGWA] = strconv.FormatFloat(weighted/units, 'f', 2, 64)
	}
	return out
}

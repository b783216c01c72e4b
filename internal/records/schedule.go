package records

import (
	"strconv"
	"strings"

	"github.com/priya-sndrs/InstSys-CaseStudy-sub000/constants"
	"github.com/priya-sndrs/InstSys-CaseStudy-sub000/internal/engine"
	"github.com/priya-sndrs/InstSys-CaseStudy-sub000/internal/grid"
)

// scheduleConfig reads a Certificate of Registration: the student block up
// top, the subject table below it, the units total underneath.
func scheduleConfig() *engine.Config {
	return &engine.Config{
		Kind: string(constants.KindSchedule),
		Fields: []engine.FieldSpec{
			{Name: FieldStudentName, Synonyms: []string{"STUDENT NAME", "NAME OF STUDENT", "STUDENT'S NAME"}, Normalize: engine.NormalizeName},
			{Name: FieldStudentNo, Synonyms: []string{"STUDENT NO", "STUDENT NUMBER", "STUDENT ID", "ID NUMBER", "ID NO"}},
			{Name: FieldProgram, Synonyms: []string{"PROGRAM", "COURSE", "DEGREE"}, Normalize: engine.NormalizeProgram},
			{Name: FieldYearLevel, Synonyms: []string{"YEAR LEVEL", "YR LEVEL", "YR."}, Normalize: engine.NormalizeYearLevel},
			{Name: FieldSection, Synonyms: []string{"SECTION"}, Normalize: engine.NormalizeSection},
			{Name: FieldSemester, Synonyms: []string{"SEMESTER", "TERM"}},
			{Name: FieldSchoolYear, Synonyms: []string{"SCHOOL YEAR", "ACADEMIC YEAR", "S.Y", "A.Y"}},
			{Name: FieldAdviser, Synonyms: []string{"ADVISER", "ADVISOR"}, Normalize: engine.NormalizeName},
		},
		Table:    subjectTable(),
		Chains:   []engine.Chain{programFromFilename()},
		Identity: []string{FieldStudentName, FieldStudentNo, FieldProgram},
		Render: engine.RenderSpec{
			Title: "CERTIFICATE OF REGISTRATION",
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
					{Label: "Adviser", Field: FieldAdviser},
				},
			}},
			Table: &engine.TableRender{
				Heading: "SUBJECTS",
				Columns: []string{RoleCode, RoleTitle, RoleUnits, engine.RoleDay, engine.RoleTimeStart, engine.RoleTimeEnd, RoleRoom},
			},
			Footer: []engine.RenderItem{
				{Label: "Total Units", Field: SummaryTotalUnits},
				{Label: "Subjects", Field: SummarySubjectCount},
			},
		},
		Summarize: subjectTableSummary,
	}
}

// subjectTable is the COR's table shape; the grades table reuses the
// anchor and most roles.
func subjectTable() *engine.TableConfig {
	return &engine.TableConfig{
		HeaderKeywords: []string{"SUBJECT", "CODE", "DESCRIPTION", "TITLE", "UNITS", "TIME", "DAY", "ROOM"},
		Roles: []engine.ColumnRole{
			{Name: RoleCode, Synonyms: []string{"SUBJECT CODE", "COURSE CODE", "SUBJ CODE", "COURSE NO", "CODE"}, Normalize: upperText},
			{Name: RoleTitle, Synonyms: []string{"DESCRIPTIVE TITLE", "SUBJECT TITLE", "COURSE TITLE", "DESCRIPTION", "SUBJECT"}},
			{Name: RoleUnits, Synonyms: []string{"NO. OF UNITS", "UNITS", "CREDIT"}, Normalize: engine.NormalizeDecimal},
			{Name: engine.RoleDay, Synonyms: []string{"DAYS", "DAY"}, Normalize: upperText},
			{Name: engine.RoleTimeStart, Synonyms: []string{"TIME START", "START TIME", "TIME"}, Normalize: engine.NormalizeTime},
			{Name: engine.RoleTimeEnd, Synonyms: []string{"TIME END", "END TIME"}, Normalize: engine.NormalizeTime},
			{Name: RoleRoom, Synonyms: []string{"ROOM", "RM"}},
		},
		AnchorRole:      RoleCode,
		AnchorPattern:   reSubjectCode,
		SentinelPattern: reSubjectCode,
		FixedColumns:    map[string]int{RoleCode: 0, RoleTitle: 1, RoleUnits: 2},
		Terminators:     []string{"TOTAL", "NOTHING FOLLOWS"},
	}
}

// subjectTableSummary prefers the sheet's own total-units figure over a
// computed sum, since registrars sometimes count lab units differently.
func subjectTableSummary(g *grid.Grid, d *engine.Draft) map[string]string {
	out := map[string]string{
		SummarySubjectCount: strconv.Itoa(len(d.Rows)),
		SummarySubjectCodes: strings.Join(engine.AnchorValues(d.Rows, RoleCode), ", "),
	}
	if n, ok := engine.ScanLabeledNumber(g, []string{"TOTAL UNITS", "TOTAL NO. OF UNITS", "TOTAL"}, engine.ScanWindow{Rows: 100, Cols: 15}); ok {
		out[SummaryTotalUnits] = n
	} else if n, ok := engine.SumRowsDecimal(d.Rows, RoleUnits); ok {
		out[SummaryTotalUnits] = n
	}
	return out
}

func programFromFilename() engine.Chain {
	return engine.Chain{
		Field: FieldProgram,
		Steps: []engine.InferenceStep{
			engine.FilenameKeywordStep("filename-program", programRules()),
		},
	}
}

func programRules() []engine.KeywordRule {
	codes := []string{"BSCRIM", "BSCS", "BSIT", "BSIS", "BSOA", "BSBA", "BSHM", "BSTM", "BSED", "BEED", "BSA"}
	rules := make([]engine.KeywordRule, len(codes))
	for i, c := range codes {
		rules[i] = engine.KeywordRule{Keywords: []string{c}, Value: c}
	}
	return rules
}

func upperText(raw string) (string, bool) {
	v, ok := engine.NormalizeText(raw)
	return strings.ToUpper(v), ok
}

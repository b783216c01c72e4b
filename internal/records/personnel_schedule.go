package records

import (
	"github.com/priya-sndrs/InstSys-CaseStudy-sub000/constants"
	"github.com/priya-sndrs/InstSys-CaseStudy-sub000/internal/engine"
)

// personnelScheduleConfig reads a faculty weekly timetable: a small header
// block and the day-by-time grid handled by the engine's two-pass
// extractor.
func personnelScheduleConfig() *engine.Config {
	return &engine.Config{
		Kind: string(constants.KindPersonnelSchedule),
		Fields: []engine.FieldSpec{
			{Name: FieldName, Synonyms: []string{"FACULTY NAME", "INSTRUCTOR", "PROFESSOR", "EMPLOYEE NAME", "NAME"}, Normalize: engine.NormalizeName},
			{Name: FieldDepartment, Synonyms: []string{"DEPARTMENT", "COLLEGE"}, Normalize: normalizeDepartment},
			{Name: FieldSemester, Synonyms: []string{"SEMESTER", "TERM"}},
			{Name: FieldSchoolYear, Synonyms: []string{"SCHOOL YEAR", "ACADEMIC YEAR", "S.Y", "A.Y"}},
		},
		Timetable: &engine.TimetableConfig{
			SubjectPattern: reSubjectCode,
		},
		Chains: []engine.Chain{{
			Field: FieldDepartment,
			Steps: []engine.InferenceStep{
				engine.FilenameKeywordStep("filename-keywords", departmentRules()),
			},
		}},
		Identity: []string{FieldName},
		Render: engine.RenderSpec{
			Title: "PERSONNEL SCHEDULE",
			Sections: []engine.RenderSection{{
				Heading: "PERSONNEL",
				Items: []engine.RenderItem{
					{Label: "Name", Field: FieldName},
					{Label: "Department", Field: FieldDepartment},
					{Label: "Semester", Field: FieldSemester},
					{Label: "School Year", Field: FieldSchoolYear},
				},
			}},
			Table: &engine.TableRender{
				Heading: "WEEKLY SCHEDULE",
				Columns: []string{engine.RoleDay, engine.RoleTimeStart, engine.RoleTimeEnd, engine.RoleSubject, engine.RoleSection},
			},
			Footer: []engine.RenderItem{
				{Label: "Slots", Field: engine.SummaryRowCount},
			},
		},
	}
}

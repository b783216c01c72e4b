package records

import (
	"github.com/priya-sndrs/InstSys-CaseStudy-sub000/constants"
	"github.com/priya-sndrs/InstSys-CaseStudy-sub000/internal/engine"
)

// teachingConfig reads a faculty profile form. No table: everything is
// labeled scalars, with the department backfilled by inference when the
// form leaves it blank.
func teachingConfig() *engine.Config {
	return &engine.Config{
		Kind:   string(constants.KindTeaching),
		Fields: personnelFields(),
		Chains: []engine.Chain{{
			// Position first: "Instructor I - Computer Studies" style
			// designations name the department more reliably than an
			// email handle does.
			Field: FieldDepartment,
			Steps: []engine.InferenceStep{
				engine.FieldKeywordStep("position-keywords", FieldPosition, departmentRules()),
				engine.EmailKeywordStep("email-local", FieldEmail, departmentRules()),
				engine.FilenameKeywordStep("filename-keywords", departmentRules()),
			},
		}},
		Identity: []string{FieldName},
		Defaults: map[string]string{
			FieldDepartment: string(constants.GeneralEducation),
		},
		Render: engine.RenderSpec{
			Title: "TEACHING PERSONNEL PROFILE",
			Sections: []engine.RenderSection{
				{
					Heading: "PERSONAL",
					Items: []engine.RenderItem{
						{Label: "Name", Field: FieldName},
						{Label: "Birthdate", Field: FieldBirthdate},
						{Label: "Address", Field: FieldAddress},
						{Label: "Phone", Field: FieldPhone},
						{Label: "Email", Field: FieldEmail},
					},
				},
				{
					Heading: "EMPLOYMENT",
					Items: []engine.RenderItem{
						{Label: "Position", Field: FieldPosition},
						{Label: "Department", Field: FieldDepartment},
						{Label: "Status", Field: FieldEmployment},
						{Label: "SSS No.", Field: FieldSSS},
						{Label: "PhilHealth No.", Field: FieldPhilHealth},
					},
				},
			},
		},
	}
}

// personnelFields is the label set shared by both profile variants.
func personnelFields() []engine.FieldSpec {
	return []engine.FieldSpec{
		{Name: FieldName, Synonyms: []string{"EMPLOYEE NAME", "FACULTY NAME", "NAME OF EMPLOYEE", "FULL NAME", "NAME"}, Normalize: engine.NormalizeName},
		{Name: FieldPosition, Synonyms: []string{"POSITION", "DESIGNATION", "RANK"}},
		{Name: FieldDepartment, Synonyms: []string{"DEPARTMENT", "COLLEGE", "OFFICE", "UNIT"}, Normalize: normalizeDepartment},
		{Name: FieldEmail, Synonyms: []string{"E-MAIL", "EMAIL"}, Normalize: engine.NormalizeEmail},
		{Name: FieldPhone, Synonyms: []string{"CONTACT NO", "CONTACT NUMBER", "PHONE", "MOBILE", "CELLPHONE"}, Normalize: engine.NormalizePhone},
		{Name: FieldSSS, Synonyms: []string{"SSS"}, Normalize: engine.NormalizeGovID},
		{Name: FieldPhilHealth, Synonyms: []string{"PHILHEALTH", "PHIC"}, Normalize: engine.NormalizeGovID},
		{Name: FieldBirthdate, Synonyms: []string{"DATE OF BIRTH", "BIRTHDATE", "BIRTHDAY"}, Normalize: engine.NormalizeDate},
		{Name: FieldAddress, Synonyms: []string{"ADDRESS", "RESIDENCE"}},
		// Bare STATUS would contains-match CIVIL STATUS.
		{Name: FieldEmployment, Synonyms: []string{"EMPLOYMENT STATUS", "EMPLOYMENT TYPE", "APPOINTMENT"}},
	}
}

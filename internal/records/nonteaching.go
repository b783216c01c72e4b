package records

import (
	"github.com/priya-sndrs/InstSys-CaseStudy-sub000/constants"
	"github.com/priya-sndrs/InstSys-CaseStudy-sub000/internal/engine"
)

// nonTeachingConfig reads a staff profile form. Same labels as the faculty
// form, but the inference order flips: staff positions ("Clerk II") rarely
// name an office while staff email handles ("registrar.mr") usually do.
func nonTeachingConfig() *engine.Config {
	return &engine.Config{
		Kind:   string(constants.KindNonTeaching),
		Fields: personnelFields(),
		Chains: []engine.Chain{{
			Field: FieldDepartment,
			Steps: []engine.InferenceStep{
				engine.EmailKeywordStep("email-local", FieldEmail, departmentRules()),
				engine.FieldKeywordStep("position-keywords", FieldPosition, departmentRules()),
				engine.FilenameKeywordStep("filename-keywords", departmentRules()),
			},
		}},
		Identity: []string{FieldName},
		Defaults: map[string]string{
			FieldDepartment: string(constants.Administration),
		},
		Render: engine.RenderSpec{
			Title: "NON-TEACHING PERSONNEL PROFILE",
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
						{Label: "Office", Field: FieldDepartment},
						{Label: "SSS No.", Field: FieldSSS},
						{Label: "PhilHealth No.", Field: FieldPhilHealth},
					},
				},
			},
		},
	}
}

package constants

import (
	"strings"
)

type Department string

const (
	ComputerStudies        Department = "Computer Studies"
	BusinessAdministration Department = "Business Administration"
	TeacherEducation       Department = "Teacher Education"
	HospitalityManagement  Department = "Hospitality Management"
	CriminalJustice        Department = "Criminal Justice"
	ArtsAndSciences        Department = "Arts and Sciences"
	GeneralEducation       Department = "General Education"
	Administration         Department = "Administration"
)

var allDepartments = []Department{
	ComputerStudies,
	BusinessAdministration,
	TeacherEducation,
	HospitalityManagement,
	CriminalJustice,
	ArtsAndSciences,
	GeneralEducation,
	Administration,
}

func DepartmentNames() []string {
	result := make([]string, len(allDepartments))
	for i, d := range allDepartments {
		result[i] = string(d)
	}
	return result
}

// CanonicalizeDepartment maps free text (office names, abbreviations) onto
// the fixed taxonomy. Returns Administration,false when nothing matches.
func CanonicalizeDepartment(input string) (Department, bool) {
	if input == "" {
		return Administration, false
	}

	normalized := strings.ToLower(strings.TrimSpace(input))

	synonyms := map[string]Department{
		"ccs":                    ComputerStudies,
		"computer science":       ComputerStudies,
		"information technology": ComputerStudies,
		"cba":                    BusinessAdministration,
		"business":               BusinessAdministration,
		"accountancy":            BusinessAdministration,
		"cte":                    TeacherEducation,
		"education":              TeacherEducation,
		"chm":                    HospitalityManagement,
		"hospitality":            HospitalityManagement,
		"tourism":                HospitalityManagement,
		"ccje":                   CriminalJustice,
		"criminology":            CriminalJustice,
		"cas":                    ArtsAndSciences,
		"gen ed":                 GeneralEducation,
		"gened":                  GeneralEducation,
		"admin":                  Administration,
		"registrar":              Administration,
	}

	if d, ok := synonyms[normalized]; ok {
		return d, true
	}

	for _, d := range allDepartments {
		if normalized == strings.ToLower(string(d)) {
			return d, true
		}
	}

	return Administration, false
}

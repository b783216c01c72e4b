// Package records holds the hand-authored extraction configurations, one
// per record kind. Each configuration instantiates the generic engine with
// the kind's labeled fields, table shape, inference chains and rendering
// layout. Configurations are built once at package init and are safe to
// share.
package records

import (
	"regexp"
	"sort"

	"github.com/priya-sndrs/InstSys-CaseStudy-sub000/constants"
	"github.com/priya-sndrs/InstSys-CaseStudy-sub000/internal/engine"
)

// Canonical field names shared by the configurations, the repositories and
// the schemas.
const (
	FieldStudentName = "student_name"
	FieldStudentNo   = "student_no"
	FieldProgram     = "program"
	FieldYearLevel   = "year_level"
	FieldSection     = "section"
	FieldSemester    = "semester"
	FieldSchoolYear  = "school_year"
	FieldAdviser     = "adviser"
	FieldGWA         = "gwa"

	FieldName       = "name"
	FieldPosition   = "position"
	FieldDepartment = "department"
	FieldEmail      = "email"
	FieldPhone      = "phone"
	FieldSSS        = "sss_no"
	FieldPhilHealth = "philhealth_no"
	FieldBirthdate  = "birthdate"
	FieldAddress    = "address"
	FieldEmployment = "employment_status"
)

// Table role names.
const (
	RoleCode       = "code"
	RoleTitle      = "title"
	RoleUnits      = "units"
	RoleRoom       = "room"
	RoleFinalGrade = "final_grade"
	RoleRemarks    = "remarks"
)

// Summary keys beyond the engine's row count.
const (
	SummarySubjectCount = "subject_count"
	SummaryTotalUnits   = "total_units"
	SummarySubjectCodes = "subject_codes"
	SummaryGWA          = "gwa"
)

// reSubjectCode anchors every subject table: two to four letters, optional
// space, two to four digits, optional trailing letter ("CS 101", "GE12",
// "IT 204L").
var reSubjectCode = regexp.MustCompile(`^[A-Z]{2,4}\s?\d{2,4}[A-Z]?$`)

var kindConfigs = map[constants.RecordKind]*engine.Config{
	constants.KindSchedule:          scheduleConfig(),
	constants.KindGrades:            gradesConfig(),
	constants.KindTeaching:          teachingConfig(),
	constants.KindNonTeaching:       nonTeachingConfig(),
	constants.KindPersonnelSchedule: personnelScheduleConfig(),
}

// ForKind returns the configuration for a record kind.
func ForKind(kind constants.RecordKind) (*engine.Config, bool) {
	cfg, ok := kindConfigs[kind]
	return cfg, ok
}

// Kinds lists the configured record kinds in stable order.
func Kinds() []constants.RecordKind {
	kinds := make([]constants.RecordKind, 0, len(kindConfigs))
	for k := range kindConfigs {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}

// departmentRules maps program, position and filename keywords onto the
// department taxonomy. Ordered: the specific program codes come before the
// broad subject words.
func departmentRules() []engine.KeywordRule {
	return []engine.KeywordRule{
		{Keywords: []string{"BSCS", "BSIT", "BSIS", "COMPUTER SCIENCE", "INFORMATION TECHNOLOGY", "COMPUTER STUDIES", "CCS"}, Value: string(constants.ComputerStudies)},
		{Keywords: []string{"BSBA", "BSA", "BSOA", "ACCOUNTANCY", "BUSINESS", "MARKETING", "CBA"}, Value: string(constants.BusinessAdministration)},
		{Keywords: []string{"BEED", "BSED", "EDUCATION", "CTE"}, Value: string(constants.TeacherEducation)},
		{Keywords: []string{"BSHM", "BSTM", "HOSPITALITY", "TOURISM", "CHM"}, Value: string(constants.HospitalityManagement)},
		{Keywords: []string{"BSCRIM", "CRIMINOLOGY", "CRIMINAL JUSTICE", "CCJE"}, Value: string(constants.CriminalJustice)},
		{Keywords: []string{"PSYCHOLOGY", "COMMUNICATION", "ENGLISH", "MATH", "SCIENCES", "CAS"}, Value: string(constants.ArtsAndSciences)},
		{Keywords: []string{"REGISTRAR", "CASHIER", "LIBRARY", "GUIDANCE", "CLINIC", "HUMAN RESOURCE", "ADMIN"}, Value: string(constants.Administration)},
	}
}

// normalizeDepartment maps a located department cell onto the taxonomy the
// personnel table accepts. Exact names and abbreviations resolve first, then
// office-style phrases fall through to the keyword rules. Unrecognized text
// is rejected so the inference chain gets its turn.
func normalizeDepartment(raw string) (string, bool) {
	if d, ok := constants.CanonicalizeDepartment(raw); ok {
		return string(d), true
	}
	return engine.FirstKeywordMatch(raw, departmentRules())
}

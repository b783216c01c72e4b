// Code generated by ent, DO NOT EDIT.

package student

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/priya-sndrs/InstSys-CaseStudy-sub000/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Student {
	return predicate.Student(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Student {
	return predicate.Student(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Student {
	return predicate.Student(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Student {
	return predicate.Student(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Student {
	return predicate.Student(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Student {
	return predicate.Student(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Student {
	return predicate.Student(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Student {
	return predicate.Student(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Student {
	return predicate.Student(sql.FieldLTE(FieldID, id))
}

// StudentNo applies equality check predicate on the "student_no" field. It's identical to StudentNoEQ.
func StudentNo(v string) predicate.Student {
	return predicate.Student(sql.FieldEQ(FieldStudentNo, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Student {
	return predicate.Student(sql.FieldEQ(FieldName, v))
}

// Program applies equality check predicate on the "program" field. It's identical to ProgramEQ.
func Program(v string) predicate.Student {
	return predicate.Student(sql.FieldEQ(FieldProgram, v))
}

// YearLevel applies equality check predicate on the "year_level" field. It's identical to YearLevelEQ.
func YearLevel(v string) predicate.Student {
	return predicate.Student(sql.FieldEQ(FieldYearLevel, v))
}

// Section applies equality check predicate on the "section" field. It's identical to SectionEQ.
func Section(v string) predicate.Student {
	return predicate.Student(sql.FieldEQ(FieldSection, v))
}

// Semester applies equality check predicate on the "semester" field. It's identical to SemesterEQ.
func Semester(v string) predicate.Student {
	return predicate.Student(sql.FieldEQ(FieldSemester, v))
}

// SchoolYear applies equality check predicate on the "school_year" field. It's identical to SchoolYearEQ.
func SchoolYear(v string) predicate.Student {
	return predicate.Student(sql.FieldEQ(FieldSchoolYear, v))
}

// Adviser applies equality check predicate on the "adviser" field. It's identical to AdviserEQ.
func Adviser(v string) predicate.Student {
	return predicate.Student(sql.FieldEQ(FieldAdviser, v))
}

// RecordText applies equality check predicate on the "record_text" field. It's identical to RecordTextEQ.
func RecordText(v string) predicate.Student {
	return predicate.Student(sql.FieldEQ(FieldRecordText, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Student {
	return predicate.Student(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Student {
	return predicate.Student(sql.FieldEQ(FieldUpdatedAt, v))
}

// StudentNoEQ applies the EQ predicate on the "student_no" field.
func StudentNoEQ(v string) predicate.Student {
	return predicate.Student(sql.FieldEQ(FieldStudentNo, v))
}

// StudentNoNEQ applies the NEQ predicate on the "student_no" field.
func StudentNoNEQ(v string) predicate.Student {
	return predicate.Student(sql.FieldNEQ(FieldStudentNo, v))
}

// StudentNoIn applies the In predicate on the "student_no" field.
func StudentNoIn(vs ...string) predicate.Student {
	return predicate.Student(sql.FieldIn(FieldStudentNo, vs...))
}

// StudentNoNotIn applies the NotIn predicate on the "student_no" field.
func StudentNoNotIn(vs ...string) predicate.Student {
	return predicate.Student(sql.FieldNotIn(FieldStudentNo, vs...))
}

// StudentNoGT applies the GT predicate on the "student_no" field.
func StudentNoGT(v string) predicate.Student {
	return predicate.Student(sql.FieldGT(FieldStudentNo, v))
}

// StudentNoGTE applies the GTE predicate on the "student_no" field.
func StudentNoGTE(v string) predicate.Student {
	return predicate.Student(sql.FieldGTE(FieldStudentNo, v))
}

// StudentNoLT applies the LT predicate on the "student_no" field.
func StudentNoLT(v string) predicate.Student {
	return predicate.Student(sql.FieldLT(FieldStudentNo, v))
}

// StudentNoLTE applies the LTE predicate on the "student_no" field.
func StudentNoLTE(v string) predicate.Student {
	return predicate.Student(sql.FieldLTE(FieldStudentNo, v))
}

// StudentNoContains applies the Contains predicate on the "student_no" field.
func StudentNoContains(v string) predicate.Student {
	return predicate.Student(sql.FieldContains(FieldStudentNo, v))
}

// StudentNoHasPrefix applies the HasPrefix predicate on the "student_no" field.
func StudentNoHasPrefix(v string) predicate.Student {
	return predicate.Student(sql.FieldHasPrefix(FieldStudentNo, v))
}

// StudentNoHasSuffix applies the HasSuffix predicate on the "student_no" field.
func StudentNoHasSuffix(v string) predicate.Student {
	return predicate.Student(sql.FieldHasSuffix(FieldStudentNo, v))
}

// StudentNoIsNil applies the IsNil predicate on the "student_no" field.
func StudentNoIsNil() predicate.Student {
	return predicate.Student(sql.FieldIsNull(FieldStudentNo))
}

// StudentNoNotNil applies the NotNil predicate on the "student_no" field.
func StudentNoNotNil() predicate.Student {
	return predicate.Student(sql.FieldNotNull(FieldStudentNo))
}

// StudentNoEqualFold applies the EqualFold predicate on the "student_no" field.
func StudentNoEqualFold(v string) predicate.Student {
	return predicate.Student(sql.FieldEqualFold(FieldStudentNo, v))
}

// StudentNoContainsFold applies the ContainsFold predicate on the "student_no" field.
func StudentNoContainsFold(v string) predicate.Student {
	return predicate.Student(sql.FieldContainsFold(FieldStudentNo, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Student {
	return predicate.Student(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Student {
	return predicate.Student(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Student {
	return predicate.Student(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Student {
	return predicate.Student(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Student {
	return predicate.Student(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Student {
	return predicate.Student(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Student {
	return predicate.Student(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Student {
	return predicate.Student(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Student {
	return predicate.Student(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Student {
	return predicate.Student(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Student {
	return predicate.Student(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Student {
	return predicate.Student(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Student {
	return predicate.Student(sql.FieldContainsFold(FieldName, v))
}

// ProgramEQ applies the EQ predicate on the "program" field.
func ProgramEQ(v string) predicate.Student {
	return predicate.Student(sql.FieldEQ(FieldProgram, v))
}

// ProgramNEQ applies the NEQ predicate on the "program" field.
func ProgramNEQ(v string) predicate.Student {
	return predicate.Student(sql.FieldNEQ(FieldProgram, v))
}

// ProgramIn applies the In predicate on the "program" field.
func ProgramIn(vs ...string) predicate.Student {
	return predicate.Student(sql.FieldIn(FieldProgram, vs...))
}

// ProgramNotIn applies the NotIn predicate on the "program" field.
func ProgramNotIn(vs ...string) predicate.Student {
	return predicate.Student(sql.FieldNotIn(FieldProgram, vs...))
}

// ProgramGT applies the GT predicate on the "program" field.
func ProgramGT(v string) predicate.Student {
	return predicate.Student(sql.FieldGT(FieldProgram, v))
}

// ProgramGTE applies the GTE predicate on the "program" field.
func ProgramGTE(v string) predicate.Student {
	return predicate.Student(sql.FieldGTE(FieldProgram, v))
}

// ProgramLT applies the LT predicate on the "program" field.
func ProgramLT(v string) predicate.Student {
	return predicate.Student(sql.FieldLT(FieldProgram, v))
}

// ProgramLTE applies the LTE predicate on the "program" field.
func ProgramLTE(v string) predicate.Student {
	return predicate.Student(sql.FieldLTE(FieldProgram, v))
}

// ProgramContains applies the Contains predicate on the "program" field.
func ProgramContains(v string) predicate.Student {
	return predicate.Student(sql.FieldContains(FieldProgram, v))
}

// ProgramHasPrefix applies the HasPrefix predicate on the "program" field.
func ProgramHasPrefix(v string) predicate.Student {
	return predicate.Student(sql.FieldHasPrefix(FieldProgram, v))
}

// ProgramHasSuffix applies the HasSuffix predicate on the "program" field.
func ProgramHasSuffix(v string) predicate.Student {
	return predicate.Student(sql.FieldHasSuffix(FieldProgram, v))
}

// ProgramIsNil applies the IsNil predicate on the "program" field.
func ProgramIsNil() predicate.Student {
	return predicate.Student(sql.FieldIsNull(FieldProgram))
}

// ProgramNotNil applies the NotNil predicate on the "program" field.
func ProgramNotNil() predicate.Student {
	return predicate.Student(sql.FieldNotNull(FieldProgram))
}

// ProgramEqualFold applies the EqualFold predicate on the "program" field.
func ProgramEqualFold(v string) predicate.Student {
	return predicate.Student(sql.FieldEqualFold(FieldProgram, v))
}

// ProgramContainsFold applies the ContainsFold predicate on the "program" field.
func ProgramContainsFold(v string) predicate.Student {
	return predicate.Student(sql.FieldContainsFold(FieldProgram, v))
}

// YearLevelEQ applies the EQ predicate on the "year_level" field.
func YearLevelEQ(v string) predicate.Student {
	return predicate.Student(sql.FieldEQ(FieldYearLevel, v))
}

// YearLevelNEQ applies the NEQ predicate on the "year_level" field.
func YearLevelNEQ(v string) predicate.Student {
	return predicate.Student(sql.FieldNEQ(FieldYearLevel, v))
}

// YearLevelIn applies the In predicate on the "year_level" field.
func YearLevelIn(vs ...string) predicate.Student {
	return predicate.Student(sql.FieldIn(FieldYearLevel, vs...))
}

// YearLevelNotIn applies the NotIn predicate on the "year_level" field.
func YearLevelNotIn(vs ...string) predicate.Student {
	return predicate.Student(sql.FieldNotIn(FieldYearLevel, vs...))
}

// YearLevelGT applies the GT predicate on the "year_level" field.
func YearLevelGT(v string) predicate.Student {
	return predicate.Student(sql.FieldGT(FieldYearLevel, v))
}

// YearLevelGTE applies the GTE predicate on the "year_level" field.
func YearLevelGTE(v string) predicate.Student {
	return predicate.Student(sql.FieldGTE(FieldYearLevel, v))
}

// YearLevelLT applies the LT predicate on the "year_level" field.
func YearLevelLT(v string) predicate.Student {
	return predicate.Student(sql.FieldLT(FieldYearLevel, v))
}

// YearLevelLTE applies the LTE predicate on the "year_level" field.
func YearLevelLTE(v string) predicate.Student {
	return predicate.Student(sql.FieldLTE(FieldYearLevel, v))
}

// YearLevelContains applies the Contains predicate on the "year_level" field.
func YearLevelContains(v string) predicate.Student {
	return predicate.Student(sql.FieldContains(FieldYearLevel, v))
}

// YearLevelHasPrefix applies the HasPrefix predicate on the "year_level" field.
func YearLevelHasPrefix(v string) predicate.Student {
	return predicate.Student(sql.FieldHasPrefix(FieldYearLevel, v))
}

// YearLevelHasSuffix applies the HasSuffix predicate on the "year_level" field.
func YearLevelHasSuffix(v string) predicate.Student {
	return predicate.Student(sql.FieldHasSuffix(FieldYearLevel, v))
}

// YearLevelIsNil applies the IsNil predicate on the "year_level" field.
func YearLevelIsNil() predicate.Student {
	return predicate.Student(sql.FieldIsNull(FieldYearLevel))
}

// YearLevelNotNil applies the NotNil predicate on the "year_level" field.
func YearLevelNotNil() predicate.Student {
	return predicate.Student(sql.FieldNotNull(FieldYearLevel))
}

// YearLevelEqualFold applies the EqualFold predicate on the "year_level" field.
func YearLevelEqualFold(v string) predicate.Student {
	return predicate.Student(sql.FieldEqualFold(FieldYearLevel, v))
}

// YearLevelContainsFold applies the ContainsFold predicate on the "year_level" field.
func YearLevelContainsFold(v string) predicate.Student {
	return predicate.Student(sql.FieldContainsFold(FieldYearLevel, v))
}

// SectionEQ applies the EQ predicate on the "section" field.
func SectionEQ(v string) predicate.Student {
	return predicate.Student(sql.FieldEQ(FieldSection, v))
}

// SectionNEQ applies the NEQ predicate on the "section" field.
func SectionNEQ(v string) predicate.Student {
	return predicate.Student(sql.FieldNEQ(FieldSection, v))
}

// SectionIn applies the In predicate on the "section" field.
func SectionIn(vs ...string) predicate.Student {
	return predicate.Student(sql.FieldIn(FieldSection, vs...))
}

// SectionNotIn applies the NotIn predicate on the "section" field.
func SectionNotIn(vs ...string) predicate.Student {
	return predicate.Student(sql.FieldNotIn(FieldSection, vs...))
}

// SectionGT applies the GT predicate on the "section" field.
func SectionGT(v string) predicate.Student {
	return predicate.Student(sql.FieldGT(FieldSection, v))
}

// SectionGTE applies the GTE predicate on the "section" field.
func SectionGTE(v string) predicate.Student {
	return predicate.Student(sql.FieldGTE(FieldSection, v))
}

// SectionLT applies the LT predicate on the "section" field.
func SectionLT(v string) predicate.Student {
	return predicate.Student(sql.FieldLT(FieldSection, v))
}

// SectionLTE applies the LTE predicate on the "section" field.
func SectionLTE(v string) predicate.Student {
	return predicate.Student(sql.FieldLTE(FieldSection, v))
}

// SectionContains applies the Contains predicate on the "section" field.
func SectionContains(v string) predicate.Student {
	return predicate.Student(sql.FieldContains(FieldSection, v))
}

// SectionHasPrefix applies the HasPrefix predicate on the "section" field.
func SectionHasPrefix(v string) predicate.Student {
	return predicate.Student(sql.FieldHasPrefix(FieldSection, v))
}

// SectionHasSuffix applies the HasSuffix predicate on the "section" field.
func SectionHasSuffix(v string) predicate.Student {
	return predicate.Student(sql.FieldHasSuffix(FieldSection, v))
}

// SectionIsNil applies the IsNil predicate on the "section" field.
func SectionIsNil() predicate.Student {
	return predicate.Student(sql.FieldIsNull(FieldSection))
}

// SectionNotNil applies the NotNil predicate on the "section" field.
func SectionNotNil() predicate.Student {
	return predicate.Student(sql.FieldNotNull(FieldSection))
}

// SectionEqualFold applies the EqualFold predicate on the "section" field.
func SectionEqualFold(v string) predicate.Student {
	return predicate.Student(sql.FieldEqualFold(FieldSection, v))
}

// SectionContainsFold applies the ContainsFold predicate on the "section" field.
func SectionContainsFold(v string) predicate.Student {
	return predicate.Student(sql.FieldContainsFold(FieldSection, v))
}

// SemesterEQ applies the EQ predicate on the "semester" field.
func SemesterEQ(v string) predicate.Student {
	return predicate.Student(sql.FieldEQ(FieldSemester, v))
}

// SemesterNEQ applies the NEQ predicate on the "semester" field.
func SemesterNEQ(v string) predicate.Student {
	return predicate.Student(sql.FieldNEQ(FieldSemester, v))
}

// SemesterIn applies the In predicate on the "semester" field.
func SemesterIn(vs ...string) predicate.Student {
	return predicate.Student(sql.FieldIn(FieldSemester, vs...))
}

// SemesterNotIn applies the NotIn predicate on the "semester" field.
func SemesterNotIn(vs ...string) predicate.Student {
	return predicate.Student(sql.FieldNotIn(FieldSemester, vs...))
}

// SemesterGT applies the GT predicate on the "semester" field.
func SemesterGT(v string) predicate.Student {
	return predicate.Student(sql.FieldGT(FieldSemester, v))
}

// SemesterGTE applies the GTE predicate on the "semester" field.
func SemesterGTE(v string) predicate.Student {
	return predicate.Student(sql.FieldGTE(FieldSemester, v))
}

// SemesterLT applies the LT predicate on the "semester" field.
func SemesterLT(v string) predicate.Student {
	return predicate.Student(sql.FieldLT(FieldSemester, v))
}

// SemesterLTE applies the LTE predicate on the "semester" field.
func SemesterLTE(v string) predicate.Student {
	return predicate.Student(sql.FieldLTE(FieldSemester, v))
}

// SemesterContains applies the Contains predicate on the "semester" field.
func SemesterContains(v string) predicate.Student {
	return predicate.Student(sql.FieldContains(FieldSemester, v))
}

// SemesterHasPrefix applies the HasPrefix predicate on the "semester" field.
func SemesterHasPrefix(v string) predicate.Student {
	return predicate.Student(sql.FieldHasPrefix(FieldSemester, v))
}

// SemesterHasSuffix applies the HasSuffix predicate on the "semester" field.
func SemesterHasSuffix(v string) predicate.Student {
	return predicate.Student(sql.FieldHasSuffix(FieldSemester, v))
}

// SemesterIsNil applies the IsNil predicate on the "semester" field.
func SemesterIsNil() predicate.Student {
	return predicate.Student(sql.FieldIsNull(FieldSemester))
}

// SemesterNotNil applies the NotNil predicate on the "semester" field.
func SemesterNotNil() predicate.Student {
	return predicate.Student(sql.FieldNotNull(FieldSemester))
}

// SemesterEqualFold applies the EqualFold predicate on the "semester" field.
func SemesterEqualFold(v string) predicate.Student {
	return predicate.Student(sql.FieldEqualFold(FieldSemester, v))
}

// SemesterContainsFold applies the ContainsFold predicate on the "semester" field.
func SemesterContainsFold(v string) predicate.Student {
	return predicate.Student(sql.FieldContainsFold(FieldSemester, v))
}

// SchoolYearEQ applies the EQ predicate on the "school_year" field.
func SchoolYearEQ(v string) predicate.Student {
	return predicate.Student(sql.FieldEQ(FieldSchoolYear, v))
}

// SchoolYearNEQ applies the NEQ predicate on the "school_year" field.
func SchoolYearNEQ(v string) predicate.Student {
	return predicate.Student(sql.FieldNEQ(FieldSchoolYear, v))
}

// SchoolYearIn applies the In predicate on the "school_year" field.
func SchoolYearIn(vs ...string) predicate.Student {
	return predicate.Student(sql.FieldIn(FieldSchoolYear, vs...))
}

// SchoolYearNotIn applies the NotIn predicate on the "school_year" field.
func SchoolYearNotIn(vs ...string) predicate.Student {
	return predicate.Student(sql.FieldNotIn(FieldSchoolYear, vs...))
}

// SchoolYearGT applies the GT predicate on the "school_year" field.
func SchoolYearGT(v string) predicate.Student {
	return predicate.Student(sql.FieldGT(FieldSchoolYear, v))
}

// SchoolYearGTE applies the GTE predicate on the "school_year" field.
func SchoolYearGTE(v string) predicate.Student {
	return predicate.Student(sql.FieldGTE(FieldSchoolYear, v))
}

// SchoolYearLT applies the LT predicate on the "school_year" field.
func SchoolYearLT(v string) predicate.Student {
	return predicate.Student(sql.FieldLT(FieldSchoolYear, v))
}

// SchoolYearLTE applies the LTE predicate on the "school_year" field.
func SchoolYearLTE(v string) predicate.Student {
	return predicate.Student(sql.FieldLTE(FieldSchoolYear, v))
}

// SchoolYearContains applies the Contains predicate on the "school_year" field.
func SchoolYearContains(v string) predicate.Student {
	return predicate.Student(sql.FieldContains(FieldSchoolYear, v))
}

// SchoolYearHasPrefix applies the HasPrefix predicate on the "school_year" field.
func SchoolYearHasPrefix(v string) predicate.Student {
	return predicate.Student(sql.FieldHasPrefix(FieldSchoolYear, v))
}

// SchoolYearHasSuffix applies the HasSuffix predicate on the "school_year" field.
func SchoolYearHasSuffix(v string) predicate.Student {
	return predicate.Student(sql.FieldHasSuffix(FieldSchoolYear, v))
}

// SchoolYearIsNil applies the IsNil predicate on the "school_year" field.
func SchoolYearIsNil() predicate.Student {
	return predicate.Student(sql.FieldIsNull(FieldSchoolYear))
}

// SchoolYearNotNil applies the NotNil predicate on the "school_year" field.
func SchoolYearNotNil() predicate.Student {
	return predicate.Student(sql.FieldNotNull(FieldSchoolYear))
}

// SchoolYearEqualFold applies the EqualFold predicate on the "school_year" field.
func SchoolYearEqualFold(v string) predicate.Student {
	return predicate.Student(sql.FieldEqualFold(FieldSchoolYear, v))
}

// SchoolYearContainsFold applies the ContainsFold predicate on the "school_year" field.
func SchoolYearContainsFold(v string) predicate.Student {
	return predicate.Student(sql.FieldContainsFold(FieldSchoolYear, v))
}

// AdviserEQ applies the EQ predicate on the "adviser" field.
func AdviserEQ(v string) predicate.Student {
	return predicate.Student(sql.FieldEQ(FieldAdviser, v))
}

// AdviserNEQ applies the NEQ predicate on the "adviser" field.
func AdviserNEQ(v string) predicate.Student {
	return predicate.Student(sql.FieldNEQ(FieldAdviser, v))
}

// AdviserIn applies the In predicate on the "adviser" field.
func AdviserIn(vs ...string) predicate.Student {
	return predicate.Student(sql.FieldIn(FieldAdviser, vs...))
}

// AdviserNotIn applies the NotIn predicate on the "adviser" field.
func AdviserNotIn(vs ...string) predicate.Student {
	return predicate.Student(sql.FieldNotIn(FieldAdviser, vs...))
}

// AdviserGT applies the GT predicate on the "adviser" field.
func AdviserGT(v string) predicate.Student {
	return predicate.Student(sql.FieldGT(FieldAdviser, v))
}

// AdviserGTE applies the GTE predicate on the "adviser" field.
func AdviserGTE(v string) predicate.Student {
	return predicate.Student(sql.FieldGTE(FieldAdviser, v))
}

// AdviserLT applies the LT predicate on the "adviser" field.
func AdviserLT(v string) predicate.Student {
	return predicate.Student(sql.FieldLT(FieldAdviser, v))
}

// AdviserLTE applies the LTE predicate on the "adviser" field.
func AdviserLTE(v string) predicate.Student {
	return predicate.Student(sql.FieldLTE(FieldAdviser, v))
}

// AdviserContains applies the Contains predicate on the "adviser" field.
func AdviserContains(v string) predicate.Student {
	return predicate.Student(sql.FieldContains(FieldAdviser, v))
}

// AdviserHasPrefix applies the HasPrefix predicate on the "adviser" field.
func AdviserHasPrefix(v string) predicate.Student {
	return predicate.Student(sql.FieldHasPrefix(FieldAdviser, v))
}

// AdviserHasSuffix applies the HasSuffix predicate on the "adviser" field.
func AdviserHasSuffix(v string) predicate.Student {
	return predicate.Student(sql.FieldHasSuffix(FieldAdviser, v))
}

// AdviserIsNil applies the IsNil predicate on the "adviser" field.
func AdviserIsNil() predicate.Student {
	return predicate.Student(sql.FieldIsNull(FieldAdviser))
}

// AdviserNotNil applies the NotNil predicate on the "adviser" field.
func AdviserNotNil() predicate.Student {
	return predicate.Student(sql.FieldNotNull(FieldAdviser))
}

// AdviserEqualFold applies the EqualFold predicate on the "adviser" field.
func AdviserEqualFold(v string) predicate.Student {
	return predicate.Student(sql.FieldEqualFold(FieldAdviser, v))
}

// AdviserContainsFold applies the ContainsFold predicate on the "adviser" field.
func AdviserContainsFold(v string) predicate.Student {
	return predicate.Student(sql.FieldContainsFold(FieldAdviser, v))
}

// RecordTextEQ applies the EQ predicate on the "record_text" field.
func RecordTextEQ(v string) predicate.Student {
	return predicate.Student(sql.FieldEQ(FieldRecordText, v))
}

// RecordTextNEQ applies the NEQ predicate on the "record_text" field.
func RecordTextNEQ(v string) predicate.Student {
	return predicate.Student(sql.FieldNEQ(FieldRecordText, v))
}

// RecordTextIn applies the In predicate on the "record_text" field.
func RecordTextIn(vs ...string) predicate.Student {
	return predicate.Student(sql.FieldIn(FieldRecordText, vs...))
}

// RecordTextNotIn applies the NotIn predicate on the "record_text" field.
func RecordTextNotIn(vs ...string) predicate.Student {
	return predicate.Student(sql.FieldNotIn(FieldRecordText, vs...))
}

// RecordTextGT applies the GT predicate on the "record_text" field.
func RecordTextGT(v string) predicate.Student {
	return predicate.Student(sql.FieldGT(FieldRecordText, v))
}

// RecordTextGTE applies the GTE predicate on the "record_text" field.
func RecordTextGTE(v string) predicate.Student {
	return predicate.Student(sql.FieldGTE(FieldRecordText, v))
}

// RecordTextLT applies the LT predicate on the "record_text" field.
func RecordTextLT(v string) predicate.Student {
	return predicate.Student(sql.FieldLT(FieldRecordText, v))
}

// RecordTextLTE applies the LTE predicate on the "record_text" field.
func RecordTextLTE(v string) predicate.Student {
	return predicate.Student(sql.FieldLTE(FieldRecordText, v))
}

// RecordTextContains applies the Contains predicate on the "record_text" field.
func RecordTextContains(v string) predicate.Student {
	return predicate.Student(sql.FieldContains(FieldRecordText, v))
}

// RecordTextHasPrefix applies the HasPrefix predicate on the "record_text" field.
func RecordTextHasPrefix(v string) predicate.Student {
	return predicate.Student(sql.FieldHasPrefix(FieldRecordText, v))
}

// RecordTextHasSuffix applies the HasSuffix predicate on the "record_text" field.
func RecordTextHasSuffix(v string) predicate.Student {
	return predicate.Student(sql.FieldHasSuffix(FieldRecordText, v))
}

// RecordTextIsNil applies the IsNil predicate on the "record_text" field.
func RecordTextIsNil() predicate.Student {
	return predicate.Student(sql.FieldIsNull(FieldRecordText))
}

// RecordTextNotNil applies the NotNil predicate on the "record_text" field.
func RecordTextNotNil() predicate.Student {
	return predicate.Student(sql.FieldNotNull(FieldRecordText))
}

// RecordTextEqualFold applies the EqualFold predicate on the "record_text" field.
func RecordTextEqualFold(v string) predicate.Student {
	return predicate.Student(sql.FieldEqualFold(FieldRecordText, v))
}

// RecordTextContainsFold applies the ContainsFold predicate on the "record_text" field.
func RecordTextContainsFold(v string) predicate.Student {
	return predicate.Student(sql.FieldContainsFold(FieldRecordText, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Student {
	return predicate.Student(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Student {
	return predicate.Student(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Student {
	return predicate.Student(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Student {
	return predicate.Student(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Student {
	return predicate.Student(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Student {
	return predicate.Student(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Student {
	return predicate.Student(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Student {
	return predicate.Student(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Student {
	return predicate.Student(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Student {
	return predicate.Student(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Student {
	return predicate.Student(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Student {
	return predicate.Student(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Student {
	return predicate.Student(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Student {
	return predicate.Student(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Student {
	return predicate.Student(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Student {
	return predicate.Student(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasSubjects applies the HasEdge predicate on the "subjects" edge.
func HasSubjects() predicate.Student {
	return predicate.Student(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, SubjectsTable, SubjectsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSubjectsWith applies the HasEdge predicate on the "subjects" edge with a given conditions (other predicates).
func HasSubjectsWith(preds ...predicate.SubjectEntry) predicate.Student {
	return predicate.Student(func(s *sql.Selector) {
		step := newSubjectsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasGrades applies the HasEdge predicate on the "grades" edge.
func HasGrades() predicate.Student {
	return predicate.Student(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, GradesTable, GradesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasGradesWith applies the HasEdge predicate on the "grades" edge with a given conditions (other predicates).
func HasGradesWith(preds ...predicate.GradeReport) predicate.Student {
	return predicate.Student(func(s *sql.Selector) {
		step := newGradesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Student) predicate.Student {
	return predicate.Student(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Student) predicate.Student {
	return predicate.Student(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Student) predicate.Student {
	return predicate.Student(sql.NotPredicates(p))
}

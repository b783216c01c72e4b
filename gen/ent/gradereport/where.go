// Code generated by ent, DO NOT EDIT.

package gradereport

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/priya-sndrs/InstSys-CaseStudy-sub000/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.GradeReport {
	return predicate.GradeReport(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.GradeReport {
	return predicate.GradeReport(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.GradeReport {
	return predicate.GradeReport(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.GradeReport {
	return predicate.GradeReport(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.GradeReport {
	return predicate.GradeReport(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.GradeReport {
	return predicate.GradeReport(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.GradeReport {
	return predicate.GradeReport(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.GradeReport {
	return predicate.GradeReport(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.GradeReport {
	return predicate.GradeReport(sql.FieldLTE(FieldID, id))
}

// StudentID applies equality check predicate on the "student_id" field. It's identical to StudentIDEQ.
func StudentID(v uuid.UUID) predicate.GradeReport {
	return predicate.GradeReport(sql.FieldEQ(FieldStudentID, v))
}

// Semester applies equality check predicate on the "semester" field. It's identical to SemesterEQ.
func Semester(v string) predicate.GradeReport {
	return predicate.GradeReport(sql.FieldEQ(FieldSemester, v))
}

// SchoolYear applies equality check predicate on the "school_year" field. It's identical to SchoolYearEQ.
func SchoolYear(v string) predicate.GradeReport {
	return predicate.GradeReport(sql.FieldEQ(FieldSchoolYear, v))
}

// Gwa applies equality check predicate on the "gwa" field. It's identical to GwaEQ.
func Gwa(v float64) predicate.GradeReport {
	return predicate.GradeReport(sql.FieldEQ(FieldGwa, v))
}

// RecordText applies equality check predicate on the "record_text" field. It's identical to RecordTextEQ.
func RecordText(v string) predicate.GradeReport {
	return predicate.GradeReport(sql.FieldEQ(FieldRecordText, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.GradeReport {
	return predicate.GradeReport(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.GradeReport {
	return predicate.GradeReport(sql.FieldEQ(FieldUpdatedAt, v))
}

// StudentIDEQ applies the EQ predicate on the "student_id" field.
func StudentIDEQ(v uuid.UUID) predicate.GradeReport {
	return predicate.GradeReport(sql.FieldEQ(FieldStudentID, v))
}

// StudentIDNEQ applies the NEQ predicate on the "student_id" field.
func StudentIDNEQ(v uuid.UUID) predicate.GradeReport {
	return predicate.GradeReport(sql.FieldNEQ(FieldStudentID, v))
}

// StudentIDIn applies the In predicate on the "student_id" field.
func StudentIDIn(vs ...uuid.UUID) predicate.GradeReport {
	return predicate.GradeReport(sql.FieldIn(FieldStudentID, vs...))
}

// StudentIDNotIn applies the NotIn predicate on the "student_id" field.
func StudentIDNotIn(vs ...uuid.UUID) predicate.GradeReport {
	return predicate.GradeReport(sql.FieldNotIn(FieldStudentID, vs...))
}

// SemesterEQ applies the EQ predicate on the "semester" field.
func SemesterEQ(v string) predicate.GradeReport {
	return predicate.GradeReport(sql.FieldEQ(FieldSemester, v))
}

// SemesterNEQ applies the NEQ predicate on the "semester" field.
func SemesterNEQ(v string) predicate.GradeReport {
	return predicate.GradeReport(sql.FieldNEQ(FieldSemester, v))
}

// SemesterIn applies the In predicate on the "semester" field.
func SemesterIn(vs ...string) predicate.GradeReport {
	return predicate.GradeReport(sql.FieldIn(FieldSemester, vs...))
}

// SemesterNotIn applies the NotIn predicate on the "semester" field.
func SemesterNotIn(vs ...string) predicate.GradeReport {
	return predicate.GradeReport(sql.FieldNotIn(FieldSemester, vs...))
}

// SemesterGT applies the GT predicate on the "semester" field.
func SemesterGT(v string) predicate.GradeReport {
	return predicate.GradeReport(sql.FieldGT(FieldSemester, v))
}

// SemesterGTE applies the GTE predicate on the "semester" field.
func SemesterGTE(v string) predicate.GradeReport {
	return predicate.GradeReport(sql.FieldGTE(FieldSemester, v))
}

// SemesterLT applies the LT predicate on the "semester" field.
func SemesterLT(v string) predicate.GradeReport {
	return predicate.GradeReport(sql.FieldLT(FieldSemester, v))
}

// SemesterLTE applies the LTE predicate on the "semester" field.
func SemesterLTE(v string) predicate.GradeReport {
	return predicate.GradeReport(sql.FieldLTE(FieldSemester, v))
}

// SemesterContains applies the Contains predicate on the "semester" field.
func SemesterContains(v string) predicate.GradeReport {
	return predicate.GradeReport(sql.FieldContains(FieldSemester, v))
}

// SemesterHasPrefix applies the HasPrefix predicate on the "semester" field.
func SemesterHasPrefix(v string) predicate.GradeReport {
	return predicate.GradeReport(sql.FieldHasPrefix(FieldSemester, v))
}

// SemesterHasSuffix applies the HasSuffix predicate on the "semester" field.
func SemesterHasSuffix(v string) predicate.GradeReport {
	return predicate.GradeReport(sql.FieldHasSuffix(FieldSemester, v))
}

// SemesterIsNil applies the IsNil predicate on the "semester" field.
func SemesterIsNil() predicate.GradeReport {
	return predicate.GradeReport(sql.FieldIsNull(FieldSemester))
}

// SemesterNotNil applies the NotNil predicate on the "semester" field.
func SemesterNotNil() predicate.GradeReport {
	return predicate.GradeReport(sql.FieldNotNull(FieldSemester))
}

// SemesterEqualFold applies the EqualFold predicate on the "semester" field.
func SemesterEqualFold(v string) predicate.GradeReport {
	return predicate.GradeReport(sql.FieldEqualFold(FieldSemester, v))
}

// SemesterContainsFold applies the ContainsFold predicate on the "semester" field.
func SemesterContainsFold(v string) predicate.GradeReport {
	return predicate.GradeReport(sql.FieldContainsFold(FieldSemester, v))
}

// SchoolYearEQ applies the EQ predicate on the "school_year" field.
func SchoolYearEQ(v string) predicate.GradeReport {
	return predicate.GradeReport(sql.FieldEQ(FieldSchoolYear, v))
}

// SchoolYearNEQ applies the NEQ predicate on the "school_year" field.
func SchoolYearNEQ(v string) predicate.GradeReport {
	return predicate.GradeReport(sql.FieldNEQ(FieldSchoolYear, v))
}

// SchoolYearIn applies the In predicate on the "school_year" field.
func SchoolYearIn(vs ...string) predicate.GradeReport {
	return predicate.GradeReport(sql.FieldIn(FieldSchoolYear, vs...))
}

// SchoolYearNotIn applies the NotIn predicate on the "school_year" field.
func SchoolYearNotIn(vs ...string) predicate.GradeReport {
	return predicate.GradeReport(sql.FieldNotIn(FieldSchoolYear, vs...))
}

// SchoolYearGT applies the GT predicate on the "school_year" field.
func SchoolYearGT(v string) predicate.GradeReport {
	return predicate.GradeReport(sql.FieldGT(FieldSchoolYear, v))
}

// SchoolYearGTE applies the GTE predicate on the "school_year" field.
func SchoolYearGTE(v string) predicate.GradeReport {
	return predicate.GradeReport(sql.FieldGTE(FieldSchoolYear, v))
}

// SchoolYearLT applies the LT predicate on the "school_year" field.
func SchoolYearLT(v string) predicate.GradeReport {
	return predicate.GradeReport(sql.FieldLT(FieldSchoolYear, v))
}

// SchoolYearLTE applies the LTE predicate on the "school_year" field.
func SchoolYearLTE(v string) predicate.GradeReport {
	return predicate.GradeReport(sql.FieldLTE(FieldSchoolYear, v))
}

// SchoolYearContains applies the Contains predicate on the "school_year" field.
func SchoolYearContains(v string) predicate.GradeReport {
	return predicate.GradeReport(sql.FieldContains(FieldSchoolYear, v))
}

// SchoolYearHasPrefix applies the HasPrefix predicate on the "school_year" field.
func SchoolYearHasPrefix(v string) predicate.GradeReport {
	return predicate.GradeReport(sql.FieldHasPrefix(FieldSchoolYear, v))
}

// SchoolYearHasSuffix applies the HasSuffix predicate on the "school_year" field.
func SchoolYearHasSuffix(v string) predicate.GradeReport {
	return predicate.GradeReport(sql.FieldHasSuffix(FieldSchoolYear, v))
}

// SchoolYearIsNil applies the IsNil predicate on the "school_year" field.
func SchoolYearIsNil() predicate.GradeReport {
	return predicate.GradeReport(sql.FieldIsNull(FieldSchoolYear))
}

// SchoolYearNotNil applies the NotNil predicate on the "school_year" field.
func SchoolYearNotNil() predicate.GradeReport {
	return predicate.GradeReport(sql.FieldNotNull(FieldSchoolYear))
}

// SchoolYearEqualFold applies the EqualFold predicate on the "school_year" field.
func SchoolYearEqualFold(v string) predicate.GradeReport {
	return predicate.GradeReport(sql.FieldEqualFold(FieldSchoolYear, v))
}

// SchoolYearContainsFold applies the ContainsFold predicate on the "school_year" field.
func SchoolYearContainsFold(v string) predicate.GradeReport {
	return predicate.GradeReport(sql.FieldContainsFold(FieldSchoolYear, v))
}

// GwaEQ applies the EQ predicate on the "gwa" field.
func GwaEQ(v float64) predicate.GradeReport {
	return predicate.GradeReport(sql.FieldEQ(FieldGwa, v))
}

// GwaNEQ applies the NEQ predicate on the "gwa" field.
func GwaNEQ(v float64) predicate.GradeReport {
	return predicate.GradeReport(sql.FieldNEQ(FieldGwa, v))
}

// GwaIn applies the In predicate on the "gwa" field.
func GwaIn(vs ...float64) predicate.GradeReport {
	return predicate.GradeReport(sql.FieldIn(FieldGwa, vs...))
}

// GwaNotIn applies the NotIn predicate on the "gwa" field.
func GwaNotIn(vs ...float64) predicate.GradeReport {
	return predicate.GradeReport(sql.FieldNotIn(FieldGwa, vs...))
}

// GwaGT applies the GT predicate on the "gwa" field.
func GwaGT(v float64) predicate.GradeReport {
	return predicate.GradeReport(sql.FieldGT(FieldGwa, v))
}

// GwaGTE applies the GTE predicate on the "gwa" field.
func GwaGTE(v float64) predicate.GradeReport {
	return predicate.GradeReport(sql.FieldGTE(FieldGwa, v))
}

// GwaLT applies the LT predicate on the "gwa" field.
func GwaLT(v float64) predicate.GradeReport {
	return predicate.GradeReport(sql.FieldLT(FieldGwa, v))
}

// GwaLTE applies the LTE predicate on the "gwa" field.
func GwaLTE(v float64) predicate.GradeReport {
	return predicate.GradeReport(sql.FieldLTE(FieldGwa, v))
}

// GwaIsNil applies the IsNil predicate on the "gwa" field.
func GwaIsNil() predicate.GradeReport {
	return predicate.GradeReport(sql.FieldIsNull(FieldGwa))
}

// GwaNotNil applies the NotNil predicate on the "gwa" field.
func GwaNotNil() predicate.GradeReport {
	return predicate.GradeReport(sql.FieldNotNull(FieldGwa))
}

// RecordTextEQ applies the EQ predicate on the "record_text" field.
func RecordTextEQ(v string) predicate.GradeReport {
	return predicate.GradeReport(sql.FieldEQ(FieldRecordText, v))
}

// RecordTextNEQ applies the NEQ predicate on the "record_text" field.
func RecordTextNEQ(v string) predicate.GradeReport {
	return predicate.GradeReport(sql.FieldNEQ(FieldRecordText, v))
}

// RecordTextIn applies the In predicate on the "record_text" field.
func RecordTextIn(vs ...string) predicate.GradeReport {
	return predicate.GradeReport(sql.FieldIn(FieldRecordText, vs...))
}

// RecordTextNotIn applies the NotIn predicate on the "record_text" field.
func RecordTextNotIn(vs ...string) predicate.GradeReport {
	return predicate.GradeReport(sql.FieldNotIn(FieldRecordText, vs...))
}

// RecordTextGT applies the GT predicate on the "record_text" field.
func RecordTextGT(v string) predicate.GradeReport {
	return predicate.GradeReport(sql.FieldGT(FieldRecordText, v))
}

// RecordTextGTE applies the GTE predicate on the "record_text" field.
func RecordTextGTE(v string) predicate.GradeReport {
	return predicate.GradeReport(sql.FieldGTE(FieldRecordText, v))
}

// RecordTextLT applies the LT predicate on the "record_text" field.
func RecordTextLT(v string) predicate.GradeReport {
	return predicate.GradeReport(sql.FieldLT(FieldRecordText, v))
}

// RecordTextLTE applies the LTE predicate on the "record_text" field.
func RecordTextLTE(v string) predicate.GradeReport {
	return predicate.GradeReport(sql.FieldLTE(FieldRecordText, v))
}

// RecordTextContains applies the Contains predicate on the "record_text" field.
func RecordTextContains(v string) predicate.GradeReport {
	return predicate.GradeReport(sql.FieldContains(FieldRecordText, v))
}

// RecordTextHasPrefix applies the HasPrefix predicate on the "record_text" field.
func RecordTextHasPrefix(v string) predicate.GradeReport {
	return predicate.GradeReport(sql.FieldHasPrefix(FieldRecordText, v))
}

// RecordTextHasSuffix applies the HasSuffix predicate on the "record_text" field.
func RecordTextHasSuffix(v string) predicate.GradeReport {
	return predicate.GradeReport(sql.FieldHasSuffix(FieldRecordText, v))
}

// RecordTextIsNil applies the IsNil predicate on the "record_text" field.
func RecordTextIsNil() predicate.GradeReport {
	return predicate.GradeReport(sql.FieldIsNull(FieldRecordText))
}

// RecordTextNotNil applies the NotNil predicate on the "record_text" field.
func RecordTextNotNil() predicate.GradeReport {
	return predicate.GradeReport(sql.FieldNotNull(FieldRecordText))
}

// RecordTextEqualFold applies the EqualFold predicate on the "record_text" field.
func RecordTextEqualFold(v string) predicate.GradeReport {
	return predicate.GradeReport(sql.FieldEqualFold(FieldRecordText, v))
}

// RecordTextContainsFold applies the ContainsFold predicate on the "record_text" field.
func RecordTextContainsFold(v string) predicate.GradeReport {
	return predicate.GradeReport(sql.FieldContainsFold(FieldRecordText, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.GradeReport {
	return predicate.GradeReport(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.GradeReport {
	return predicate.GradeReport(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.GradeReport {
	return predicate.GradeReport(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.GradeReport {
	return predicate.GradeReport(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.GradeReport {
	return predicate.GradeReport(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.GradeReport {
	return predicate.GradeReport(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.GradeReport {
	return predicate.GradeReport(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.GradeReport {
	return predicate.GradeReport(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.GradeReport {
	return predicate.GradeReport(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.GradeReport {
	return predicate.GradeReport(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.GradeReport {
	return predicate.GradeReport(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.GradeReport {
	return predicate.GradeReport(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.GradeReport {
	return predicate.GradeReport(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.GradeReport {
	return predicate.GradeReport(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.GradeReport {
	return predicate.GradeReport(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.GradeReport {
	return predicate.GradeReport(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasStudent applies the HasEdge predicate on the "student" edge.
func HasStudent() predicate.GradeReport {
	return predicate.GradeReport(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, StudentTable, StudentColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasStudentWith applies the HasEdge predicate on the "student" edge with a given conditions (other predicates).
func HasStudentWith(preds ...predicate.Student) predicate.GradeReport {
	return predicate.GradeReport(func(s *sql.Selector) {
		step := newStudentStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasEntries applies the HasEdge predicate on the "entries" edge.
func HasEntries() predicate.GradeReport {
	return predicate.GradeReport(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, EntriesTable, EntriesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEntriesWith applies the HasEdge predicate on the "entries" edge with a given conditions (other predicates).
func HasEntriesWith(preds ...predicate.GradeEntry) predicate.GradeReport {
	return predicate.GradeReport(func(s *sql.Selector) {
		step := newEntriesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.GradeReport) predicate.GradeReport {
	return predicate.GradeReport(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.GradeReport) predicate.GradeReport {
	return predicate.GradeReport(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.GradeReport) predicate.GradeReport {
	return predicate.GradeReport(sql.NotPredicates(p))
}

// Code generated by ent, DO NOT EDIT.

package gradeentry

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/priya-sndrs/InstSys-CaseStudy-sub000/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.GradeEntry {
	return predicate.GradeEntry(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.GradeEntry {
	return predicate.GradeEntry(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.GradeEntry {
	return predicate.GradeEntry(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.GradeEntry {
	return predicate.GradeEntry(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.GradeEntry {
	return predicate.GradeEntry(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.GradeEntry {
	return predicate.GradeEntry(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.GradeEntry {
	return predicate.GradeEntry(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.GradeEntry {
	return predicate.GradeEntry(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.GradeEntry {
	return predicate.GradeEntry(sql.FieldLTE(FieldID, id))
}

// ReportID applies equality check predicate on the "report_id" field. It's identical to ReportIDEQ.
func ReportID(v uuid.UUID) predicate.GradeEntry {
	return predicate.GradeEntry(sql.FieldEQ(FieldReportID, v))
}

// Code applies equality check predicate on the "code" field. It's identical to CodeEQ.
func Code(v string) predicate.GradeEntry {
	return predicate.GradeEntry(sql.FieldEQ(FieldCode, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.GradeEntry {
	return predicate.GradeEntry(sql.FieldEQ(FieldTitle, v))
}

// Units applies equality check predicate on the "units" field. It's identical to UnitsEQ.
func Units(v float64) predicate.GradeEntry {
	return predicate.GradeEntry(sql.FieldEQ(FieldUnits, v))
}

// FinalGrade applies equality check predicate on the "final_grade" field. It's identical to FinalGradeEQ.
func FinalGrade(v string) predicate.GradeEntry {
	return predicate.GradeEntry(sql.FieldEQ(FieldFinalGrade, v))
}

// Remarks applies equality check predicate on the "remarks" field. It's identical to RemarksEQ.
func Remarks(v string) predicate.GradeEntry {
	return predicate.GradeEntry(sql.FieldEQ(FieldRemarks, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.GradeEntry {
	return predicate.GradeEntry(sql.FieldEQ(FieldCreatedAt, v))
}

// ReportIDEQ applies the EQ predicate on the "report_id" field.
func ReportIDEQ(v uuid.UUID) predicate.GradeEntry {
	return predicate.GradeEntry(sql.FieldEQ(FieldReportID, v))
}

// ReportIDNEQ applies the NEQ predicate on the "report_id" field.
func ReportIDNEQ(v uuid.UUID) predicate.GradeEntry {
	return predicate.GradeEntry(sql.FieldNEQ(FieldReportID, v))
}

// ReportIDIn applies the In predicate on the "report_id" field.
func ReportIDIn(vs ...uuid.UUID) predicate.GradeEntry {
	return predicate.GradeEntry(sql.FieldIn(FieldReportID, vs...))
}

// ReportIDNotIn applies the NotIn predicate on the "report_id" field.
func ReportIDNotIn(vs ...uuid.UUID) predicate.GradeEntry {
	return predicate.GradeEntry(sql.FieldNotIn(FieldReportID, vs...))
}

// CodeEQ applies the EQ predicate on the "code" field.
func CodeEQ(v string) predicate.GradeEntry {
	return predicate.GradeEntry(sql.FieldEQ(FieldCode, v))
}

// CodeNEQ applies the NEQ predicate on the "code" field.
func CodeNEQ(v string) predicate.GradeEntry {
	return predicate.GradeEntry(sql.FieldNEQ(FieldCode, v))
}

// CodeIn applies the In predicate on the "code" field.
func CodeIn(vs ...string) predicate.GradeEntry {
	return predicate.GradeEntry(sql.FieldIn(FieldCode, vs...))
}

// CodeNotIn applies the NotIn predicate on the "code" field.
func CodeNotIn(vs ...string) predicate.GradeEntry {
	return predicate.GradeEntry(sql.FieldNotIn(FieldCode, vs...))
}

// CodeGT applies the GT predicate on the "code" field.
func CodeGT(v string) predicate.GradeEntry {
	return predicate.GradeEntry(sql.FieldGT(FieldCode, v))
}

// CodeGTE applies the GTE predicate on the "code" field.
func CodeGTE(v string) predicate.GradeEntry {
	return predicate.GradeEntry(sql.FieldGTE(FieldCode, v))
}

// CodeLT applies the LT predicate on the "code" field.
func CodeLT(v string) predicate.GradeEntry {
	return predicate.GradeEntry(sql.FieldLT(FieldCode, v))
}

// CodeLTE applies the LTE predicate on the "code" field.
func CodeLTE(v string) predicate.GradeEntry {
	return predicate.GradeEntry(sql.FieldLTE(FieldCode, v))
}

// CodeContains applies the Contains predicate on the "code" field.
func CodeContains(v string) predicate.GradeEntry {
	return predicate.GradeEntry(sql.FieldContains(FieldCode, v))
}

// CodeHasPrefix applies the HasPrefix predicate on the "code" field.
func CodeHasPrefix(v string) predicate.GradeEntry {
	return predicate.GradeEntry(sql.FieldHasPrefix(FieldCode, v))
}

// CodeHasSuffix applies the HasSuffix predicate on the "code" field.
func CodeHasSuffix(v string) predicate.GradeEntry {
	return predicate.GradeEntry(sql.FieldHasSuffix(FieldCode, v))
}

// CodeEqualFold applies the EqualFold predicate on the "code" field.
func CodeEqualFold(v string) predicate.GradeEntry {
	return predicate.GradeEntry(sql.FieldEqualFold(FieldCode, v))
}

// CodeContainsFold applies the ContainsFold predicate on the "code" field.
func CodeContainsFold(v string) predicate.GradeEntry {
	return predicate.GradeEntry(sql.FieldContainsFold(FieldCode, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.GradeEntry {
	return predicate.GradeEntry(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.GradeEntry {
	return predicate.GradeEntry(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.GradeEntry {
	return predicate.GradeEntry(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.GradeEntry {
	return predicate.GradeEntry(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.GradeEntry {
	return predicate.GradeEntry(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.GradeEntry {
	return predicate.GradeEntry(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.GradeEntry {
	return predicate.GradeEntry(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.GradeEntry {
	return predicate.GradeEntry(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.GradeEntry {
	return predicate.GradeEntry(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.GradeEntry {
	return predicate.GradeEntry(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.GradeEntry {
	return predicate.GradeEntry(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleIsNil applies the IsNil predicate on the "title" field.
func TitleIsNil() predicate.GradeEntry {
	return predicate.GradeEntry(sql.FieldIsNull(FieldTitle))
}

// TitleNotNil applies the NotNil predicate on the "title" field.
func TitleNotNil() predicate.GradeEntry {
	return predicate.GradeEntry(sql.FieldNotNull(FieldTitle))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.GradeEntry {
	return predicate.GradeEntry(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.GradeEntry {
	return predicate.GradeEntry(sql.FieldContainsFold(FieldTitle, v))
}

// UnitsEQ applies the EQ predicate on the "units" field.
func UnitsEQ(v float64) predicate.GradeEntry {
	return predicate.GradeEntry(sql.FieldEQ(FieldUnits, v))
}

// UnitsNEQ applies the NEQ predicate on the "units" field.
func UnitsNEQ(v float64) predicate.GradeEntry {
	return predicate.GradeEntry(sql.FieldNEQ(FieldUnits, v))
}

// UnitsIn applies the In predicate on the "units" field.
func UnitsIn(vs ...float64) predicate.GradeEntry {
	return predicate.GradeEntry(sql.FieldIn(FieldUnits, vs...))
}

// UnitsNotIn applies the NotIn predicate on the "units" field.
func UnitsNotIn(vs ...float64) predicate.GradeEntry {
	return predicate.GradeEntry(sql.FieldNotIn(FieldUnits, vs...))
}

// UnitsGT applies the GT predicate on the "units" field.
func UnitsGT(v float64) predicate.GradeEntry {
	return predicate.GradeEntry(sql.FieldGT(FieldUnits, v))
}

// UnitsGTE applies the GTE predicate on the "units" field.
func UnitsGTE(v float64) predicate.GradeEntry {
	return predicate.GradeEntry(sql.FieldGTE(FieldUnits, v))
}

// UnitsLT applies the LT predicate on the "units" field.
func UnitsLT(v float64) predicate.GradeEntry {
	return predicate.GradeEntry(sql.FieldLT(FieldUnits, v))
}

// UnitsLTE applies the LTE predicate on the "units" field.
func UnitsLTE(v float64) predicate.GradeEntry {
	return predicate.GradeEntry(sql.FieldLTE(FieldUnits, v))
}

// UnitsIsNil applies the IsNil predicate on the "units" field.
func UnitsIsNil() predicate.GradeEntry {
	return predicate.GradeEntry(sql.FieldIsNull(FieldUnits))
}

// UnitsNotNil applies the NotNil predicate on the "units" field.
func UnitsNotNil() predicate.GradeEntry {
	return predicate.GradeEntry(sql.FieldNotNull(FieldUnits))
}

// FinalGradeEQ applies the EQ predicate on the "final_grade" field.
func FinalGradeEQ(v string) predicate.GradeEntry {
	return predicate.GradeEntry(sql.FieldEQ(FieldFinalGrade, v))
}

// FinalGradeNEQ applies the NEQ predicate on the "final_grade" field.
func FinalGradeNEQ(v string) predicate.GradeEntry {
	return predicate.GradeEntry(sql.FieldNEQ(FieldFinalGrade, v))
}

// FinalGradeIn applies the In predicate on the "final_grade" field.
func FinalGradeIn(vs ...string) predicate.GradeEntry {
	return predicate.GradeEntry(sql.FieldIn(FieldFinalGrade, vs...))
}

// FinalGradeNotIn applies the NotIn predicate on the "final_grade" field.
func FinalGradeNotIn(vs ...string) predicate.GradeEntry {
	return predicate.GradeEntry(sql.FieldNotIn(FieldFinalGrade, vs...))
}

// FinalGradeGT applies the GT predicate on the "final_grade" field.
func FinalGradeGT(v string) predicate.GradeEntry {
	return predicate.GradeEntry(sql.FieldGT(FieldFinalGrade, v))
}

// FinalGradeGTE applies the GTE predicate on the "final_grade" field.
func FinalGradeGTE(v string) predicate.GradeEntry {
	return predicate.GradeEntry(sql.FieldGTE(FieldFinalGrade, v))
}

// FinalGradeLT applies the LT predicate on the "final_grade" field.
func FinalGradeLT(v string) predicate.GradeEntry {
	return predicate.GradeEntry(sql.FieldLT(FieldFinalGrade, v))
}

// FinalGradeLTE applies the LTE predicate on the "final_grade" field.
func FinalGradeLTE(v string) predicate.GradeEntry {
	return predicate.GradeEntry(sql.FieldLTE(FieldFinalGrade, v))
}

// FinalGradeContains applies the Contains predicate on the "final_grade" field.
func FinalGradeContains(v string) predicate.GradeEntry {
	return predicate.GradeEntry(sql.FieldContains(FieldFinalGrade, v))
}

// FinalGradeHasPrefix applies the HasPrefix predicate on the "final_grade" field.
func FinalGradeHasPrefix(v string) predicate.GradeEntry {
	return predicate.GradeEntry(sql.FieldHasPrefix(FieldFinalGrade, v))
}

// FinalGradeHasSuffix applies the HasSuffix predicate on the "final_grade" field.
func FinalGradeHasSuffix(v string) predicate.GradeEntry {
	return predicate.GradeEntry(sql.FieldHasSuffix(FieldFinalGrade, v))
}

// FinalGradeIsNil applies the IsNil predicate on the "final_grade" field.
func FinalGradeIsNil() predicate.GradeEntry {
	return predicate.GradeEntry(sql.FieldIsNull(FieldFinalGrade))
}

// FinalGradeNotNil applies the NotNil predicate on the "final_grade" field.
func FinalGradeNotNil() predicate.GradeEntry {
	return predicate.GradeEntry(sql.FieldNotNull(FieldFinalGrade))
}

// FinalGradeEqualFold applies the EqualFold predicate on the "final_grade" field.
func FinalGradeEqualFold(v string) predicate.GradeEntry {
	return predicate.GradeEntry(sql.FieldEqualFold(FieldFinalGrade, v))
}

// FinalGradeContainsFold applies the ContainsFold predicate on the "final_grade" field.
func FinalGradeContainsFold(v string) predicate.GradeEntry {
	return predicate.GradeEntry(sql.FieldContainsFold(FieldFinalGrade, v))
}

// RemarksEQ applies the EQ predicate on the "remarks" field.
func RemarksEQ(v string) predicate.GradeEntry {
	return predicate.GradeEntry(sql.FieldEQ(FieldRemarks, v))
}

// RemarksNEQ applies the NEQ predicate on the "remarks" field.
func RemarksNEQ(v string) predicate.GradeEntry {
	return predicate.GradeEntry(sql.FieldNEQ(FieldRemarks, v))
}

// RemarksIn applies the In predicate on the "remarks" field.
func RemarksIn(vs ...string) predicate.GradeEntry {
	return predicate.GradeEntry(sql.FieldIn(FieldRemarks, vs...))
}

// RemarksNotIn applies the NotIn predicate on the "remarks" field.
func RemarksNotIn(vs ...string) predicate.GradeEntry {
	return predicate.GradeEntry(sql.FieldNotIn(FieldRemarks, vs...))
}

// RemarksGT applies the GT predicate on the "remarks" field.
func RemarksGT(v string) predicate.GradeEntry {
	return predicate.GradeEntry(sql.FieldGT(FieldRemarks, v))
}

// RemarksGTE applies the GTE predicate on the "remarks" field.
func RemarksGTE(v string) predicate.GradeEntry {
	return predicate.GradeEntry(sql.FieldGTE(FieldRemarks, v))
}

// RemarksLT applies the LT predicate on the "remarks" field.
func RemarksLT(v string) predicate.GradeEntry {
	return predicate.GradeEntry(sql.FieldLT(FieldRemarks, v))
}

// RemarksLTE applies the LTE predicate on the "remarks" field.
func RemarksLTE(v string) predicate.GradeEntry {
	return predicate.GradeEntry(sql.FieldLTE(FieldRemarks, v))
}

// RemarksContains applies the Contains predicate on the "remarks" field.
func RemarksContains(v string) predicate.GradeEntry {
	return predicate.GradeEntry(sql.FieldContains(FieldRemarks, v))
}

// RemarksHasPrefix applies the HasPrefix predicate on the "remarks" field.
func RemarksHasPrefix(v string) predicate.GradeEntry {
	return predicate.GradeEntry(sql.FieldHasPrefix(FieldRemarks, v))
}

// RemarksHasSuffix applies the HasSuffix predicate on the "remarks" field.
func RemarksHasSuffix(v string) predicate.GradeEntry {
	return predicate.GradeEntry(sql.FieldHasSuffix(FieldRemarks, v))
}

// RemarksIsNil applies the IsNil predicate on the "remarks" field.
func RemarksIsNil() predicate.GradeEntry {
	return predicate.GradeEntry(sql.FieldIsNull(FieldRemarks))
}

// RemarksNotNil applies the NotNil predicate on the "remarks" field.
func RemarksNotNil() predicate.GradeEntry {
	return predicate.GradeEntry(sql.FieldNotNull(FieldRemarks))
}

// RemarksEqualFold applies the EqualFold predicate on the "remarks" field.
func RemarksEqualFold(v string) predicate.GradeEntry {
	return predicate.GradeEntry(sql.FieldEqualFold(FieldRemarks, v))
}

// RemarksContainsFold applies the ContainsFold predicate on the "remarks" field.
func RemarksContainsFold(v string) predicate.GradeEntry {
	return predicate.GradeEntry(sql.FieldContainsFold(FieldRemarks, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.GradeEntry {
	return predicate.GradeEntry(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.GradeEntry {
	return predicate.GradeEntry(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.GradeEntry {
	return predicate.GradeEntry(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.GradeEntry {
	return predicate.GradeEntry(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.GradeEntry {
	return predicate.GradeEntry(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.GradeEntry {
	return predicate.GradeEntry(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.GradeEntry {
	return predicate.GradeEntry(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.GradeEntry {
	return predicate.GradeEntry(sql.FieldLTE(FieldCreatedAt, v))
}

// HasReport applies the HasEdge predicate on the "report" edge.
func HasReport() predicate.GradeEntry {
	return predicate.GradeEntry(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ReportTable, ReportColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasReportWith applies the HasEdge predicate on the "report" edge with a given conditions (other predicates).
func HasReportWith(preds ...predicate.GradeReport) predicate.GradeEntry {
	return predicate.GradeEntry(func(s *sql.Selector) {
		step := newReportStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.GradeEntry) predicate.GradeEntry {
	return predicate.GradeEntry(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.GradeEntry) predicate.GradeEntry {
	return predicate.GradeEntry(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.GradeEntry) predicate.GradeEntry {
	return predicate.GradeEntry(sql.NotPredicates(p))
}

// Code generated by ent, DO NOT EDIT.

package loadentry

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/priya-sndrs/InstSys-CaseStudy-sub000/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.LoadEntry {
	return predicate.LoadEntry(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.LoadEntry {
	return predicate.LoadEntry(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.LoadEntry {
	return predicate.LoadEntry(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.LoadEntry {
	return predicate.LoadEntry(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.LoadEntry {
	return predicate.LoadEntry(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.LoadEntry {
	return predicate.LoadEntry(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.LoadEntry {
	return predicate.LoadEntry(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.LoadEntry {
	return predicate.LoadEntry(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.LoadEntry {
	return predicate.LoadEntry(sql.FieldLTE(FieldID, id))
}

// PersonnelID applies equality check predicate on the "personnel_id" field. It's identical to PersonnelIDEQ.
func PersonnelID(v uuid.UUID) predicate.LoadEntry {
	return predicate.LoadEntry(sql.FieldEQ(FieldPersonnelID, v))
}

// Day applies equality check predicate on the "day" field. It's identical to DayEQ.
func Day(v string) predicate.LoadEntry {
	return predicate.LoadEntry(sql.FieldEQ(FieldDay, v))
}

// TimeStart applies equality check predicate on the "time_start" field. It's identical to TimeStartEQ.
func TimeStart(v string) predicate.LoadEntry {
	return predicate.LoadEntry(sql.FieldEQ(FieldTimeStart, v))
}

// TimeEnd applies equality check predicate on the "time_end" field. It's identical to TimeEndEQ.
func TimeEnd(v string) predicate.LoadEntry {
	return predicate.LoadEntry(sql.FieldEQ(FieldTimeEnd, v))
}

// Subject applies equality check predicate on the "subject" field. It's identical to SubjectEQ.
func Subject(v string) predicate.LoadEntry {
	return predicate.LoadEntry(sql.FieldEQ(FieldSubject, v))
}

// Section applies equality check predicate on the "section" field. It's identical to SectionEQ.
func Section(v string) predicate.LoadEntry {
	return predicate.LoadEntry(sql.FieldEQ(FieldSection, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.LoadEntry {
	return predicate.LoadEntry(sql.FieldEQ(FieldCreatedAt, v))
}

// PersonnelIDEQ applies the EQ predicate on the "personnel_id" field.
func PersonnelIDEQ(v uuid.UUID) predicate.LoadEntry {
	return predicate.LoadEntry(sql.FieldEQ(FieldPersonnelID, v))
}

// PersonnelIDNEQ applies the NEQ predicate on the "personnel_id" field.
func PersonnelIDNEQ(v uuid.UUID) predicate.LoadEntry {
	return predicate.LoadEntry(sql.FieldNEQ(FieldPersonnelID, v))
}

// PersonnelIDIn applies the In predicate on the "personnel_id" field.
func PersonnelIDIn(vs ...uuid.UUID) predicate.LoadEntry {
	return predicate.LoadEntry(sql.FieldIn(FieldPersonnelID, vs...))
}

// PersonnelIDNotIn applies the NotIn predicate on the "personnel_id" field.
func PersonnelIDNotIn(vs ...uuid.UUID) predicate.LoadEntry {
	return predicate.LoadEntry(sql.FieldNotIn(FieldPersonnelID, vs...))
}

// DayEQ applies the EQ predicate on the "day" field.
func DayEQ(v string) predicate.LoadEntry {
	return predicate.LoadEntry(sql.FieldEQ(FieldDay, v))
}

// DayNEQ applies the NEQ predicate on the "day" field.
func DayNEQ(v string) predicate.LoadEntry {
	return predicate.LoadEntry(sql.FieldNEQ(FieldDay, v))
}

// DayIn applies the In predicate on the "day" field.
func DayIn(vs ...string) predicate.LoadEntry {
	return predicate.LoadEntry(sql.FieldIn(FieldDay, vs...))
}

// DayNotIn applies the NotIn predicate on the "day" field.
func DayNotIn(vs ...string) predicate.LoadEntry {
	return predicate.LoadEntry(sql.FieldNotIn(FieldDay, vs...))
}

// DayGT applies the GT predicate on the "day" field.
func DayGT(v string) predicate.LoadEntry {
	return predicate.LoadEntry(sql.FieldGT(FieldDay, v))
}

// DayGTE applies the GTE predicate on the "day" field.
func DayGTE(v string) predicate.LoadEntry {
	return predicate.LoadEntry(sql.FieldGTE(FieldDay, v))
}

// DayLT applies the LT predicate on the "day" field.
func DayLT(v string) predicate.LoadEntry {
	return predicate.LoadEntry(sql.FieldLT(FieldDay, v))
}

// DayLTE applies the LTE predicate on the "day" field.
func DayLTE(v string) predicate.LoadEntry {
	return predicate.LoadEntry(sql.FieldLTE(FieldDay, v))
}

// DayContains applies the Contains predicate on the "day" field.
func DayContains(v string) predicate.LoadEntry {
	return predicate.LoadEntry(sql.FieldContains(FieldDay, v))
}

// DayHasPrefix applies the HasPrefix predicate on the "day" field.
func DayHasPrefix(v string) predicate.LoadEntry {
	return predicate.LoadEntry(sql.FieldHasPrefix(FieldDay, v))
}

// DayHasSuffix applies the HasSuffix predicate on the "day" field.
func DayHasSuffix(v string) predicate.LoadEntry {
	return predicate.LoadEntry(sql.FieldHasSuffix(FieldDay, v))
}

// DayEqualFold applies the EqualFold predicate on the "day" field.
func DayEqualFold(v string) predicate.LoadEntry {
	return predicate.LoadEntry(sql.FieldEqualFold(FieldDay, v))
}

// DayContainsFold applies the ContainsFold predicate on the "day" field.
func DayContainsFold(v string) predicate.LoadEntry {
	return predicate.LoadEntry(sql.FieldContainsFold(FieldDay, v))
}

// TimeStartEQ applies the EQ predicate on the "time_start" field.
func TimeStartEQ(v string) predicate.LoadEntry {
	return predicate.LoadEntry(sql.FieldEQ(FieldTimeStart, v))
}

// TimeStartNEQ applies the NEQ predicate on the "time_start" field.
func TimeStartNEQ(v string) predicate.LoadEntry {
	return predicate.LoadEntry(sql.FieldNEQ(FieldTimeStart, v))
}

// TimeStartIn applies the In predicate on the "time_start" field.
func TimeStartIn(vs ...string) predicate.LoadEntry {
	return predicate.LoadEntry(sql.FieldIn(FieldTimeStart, vs...))
}

// TimeStartNotIn applies the NotIn predicate on the "time_start" field.
func TimeStartNotIn(vs ...string) predicate.LoadEntry {
	return predicate.LoadEntry(sql.FieldNotIn(FieldTimeStart, vs...))
}

// TimeStartGT applies the GT predicate on the "time_start" field.
func TimeStartGT(v string) predicate.LoadEntry {
	return predicate.LoadEntry(sql.FieldGT(FieldTimeStart, v))
}

// TimeStartGTE applies the GTE predicate on the "time_start" field.
func TimeStartGTE(v string) predicate.LoadEntry {
	return predicate.LoadEntry(sql.FieldGTE(FieldTimeStart, v))
}

// TimeStartLT applies the LT predicate on the "time_start" field.
func TimeStartLT(v string) predicate.LoadEntry {
	return predicate.LoadEntry(sql.FieldLT(FieldTimeStart, v))
}

// TimeStartLTE applies the LTE predicate on the "time_start" field.
func TimeStartLTE(v string) predicate.LoadEntry {
	return predicate.LoadEntry(sql.FieldLTE(FieldTimeStart, v))
}

// TimeStartContains applies the Contains predicate on the "time_start" field.
func TimeStartContains(v string) predicate.LoadEntry {
	return predicate.LoadEntry(sql.FieldContains(FieldTimeStart, v))
}

// TimeStartHasPrefix applies the HasPrefix predicate on the "time_start" field.
func TimeStartHasPrefix(v string) predicate.LoadEntry {
	return predicate.LoadEntry(sql.FieldHasPrefix(FieldTimeStart, v))
}

// TimeStartHasSuffix applies the HasSuffix predicate on the "time_start" field.
func TimeStartHasSuffix(v string) predicate.LoadEntry {
	return predicate.LoadEntry(sql.FieldHasSuffix(FieldTimeStart, v))
}

// TimeStartEqualFold applies the EqualFold predicate on the "time_start" field.
func TimeStartEqualFold(v string) predicate.LoadEntry {
	return predicate.LoadEntry(sql.FieldEqualFold(FieldTimeStart, v))
}

// TimeStartContainsFold applies the ContainsFold predicate on the "time_start" field.
func TimeStartContainsFold(v string) predicate.LoadEntry {
	return predicate.LoadEntry(sql.FieldContainsFold(FieldTimeStart, v))
}

// TimeEndEQ applies the EQ predicate on the "time_end" field.
func TimeEndEQ(v string) predicate.LoadEntry {
	return predicate.LoadEntry(sql.FieldEQ(FieldTimeEnd, v))
}

// TimeEndNEQ applies the NEQ predicate on the "time_end" field.
func TimeEndNEQ(v string) predicate.LoadEntry {
	return predicate.LoadEntry(sql.FieldNEQ(FieldTimeEnd, v))
}

// TimeEndIn applies the In predicate on the "time_end" field.
func TimeEndIn(vs ...string) predicate.LoadEntry {
	return predicate.LoadEntry(sql.FieldIn(FieldTimeEnd, vs...))
}

// TimeEndNotIn applies the NotIn predicate on the "time_end" field.
func TimeEndNotIn(vs ...string) predicate.LoadEntry {
	return predicate.LoadEntry(sql.FieldNotIn(FieldTimeEnd, vs...))
}

// TimeEndGT applies the GT predicate on the "time_end" field.
func TimeEndGT(v string) predicate.LoadEntry {
	return predicate.LoadEntry(sql.FieldGT(FieldTimeEnd, v))
}

// TimeEndGTE applies the GTE predicate on the "time_end" field.
func TimeEndGTE(v string) predicate.LoadEntry {
	return predicate.LoadEntry(sql.FieldGTE(FieldTimeEnd, v))
}

// TimeEndLT applies the LT predicate on the "time_end" field.
func TimeEndLT(v string) predicate.LoadEntry {
	return predicate.LoadEntry(sql.FieldLT(FieldTimeEnd, v))
}

// TimeEndLTE applies the LTE predicate on the "time_end" field.
func TimeEndLTE(v string) predicate.LoadEntry {
	return predicate.LoadEntry(sql.FieldLTE(FieldTimeEnd, v))
}

// TimeEndContains applies the Contains predicate on the "time_end" field.
func TimeEndContains(v string) predicate.LoadEntry {
	return predicate.LoadEntry(sql.FieldContains(FieldTimeEnd, v))
}

// TimeEndHasPrefix applies the HasPrefix predicate on the "time_end" field.
func TimeEndHasPrefix(v string) predicate.LoadEntry {
	return predicate.LoadEntry(sql.FieldHasPrefix(FieldTimeEnd, v))
}

// TimeEndHasSuffix applies the HasSuffix predicate on the "time_end" field.
func TimeEndHasSuffix(v string) predicate.LoadEntry {
	return predicate.LoadEntry(sql.FieldHasSuffix(FieldTimeEnd, v))
}

// TimeEndIsNil applies the IsNil predicate on the "time_end" field.
func TimeEndIsNil() predicate.LoadEntry {
	return predicate.LoadEntry(sql.FieldIsNull(FieldTimeEnd))
}

// TimeEndNotNil applies the NotNil predicate on the "time_end" field.
func TimeEndNotNil() predicate.LoadEntry {
	return predicate.LoadEntry(sql.FieldNotNull(FieldTimeEnd))
}

// TimeEndEqualFold applies the EqualFold predicate on the "time_end" field.
func TimeEndEqualFold(v string) predicate.LoadEntry {
	return predicate.LoadEntry(sql.FieldEqualFold(FieldTimeEnd, v))
}

// TimeEndContainsFold applies the ContainsFold predicate on the "time_end" field.
func TimeEndContainsFold(v string) predicate.LoadEntry {
	return predicate.LoadEntry(sql.FieldContainsFold(FieldTimeEnd, v))
}

// SubjectEQ applies the EQ predicate on the "subject" field.
func SubjectEQ(v string) predicate.LoadEntry {
	return predicate.LoadEntry(sql.FieldEQ(FieldSubject, v))
}

// SubjectNEQ applies the NEQ predicate on the "subject" field.
func SubjectNEQ(v string) predicate.LoadEntry {
	return predicate.LoadEntry(sql.FieldNEQ(FieldSubject, v))
}

// SubjectIn applies the In predicate on the "subject" field.
func SubjectIn(vs ...string) predicate.LoadEntry {
	return predicate.LoadEntry(sql.FieldIn(FieldSubject, vs...))
}

// SubjectNotIn applies the NotIn predicate on the "subject" field.
func SubjectNotIn(vs ...string) predicate.LoadEntry {
	return predicate.LoadEntry(sql.FieldNotIn(FieldSubject, vs...))
}

// SubjectGT applies the GT predicate on the "subject" field.
func SubjectGT(v string) predicate.LoadEntry {
	return predicate.LoadEntry(sql.FieldGT(FieldSubject, v))
}

// SubjectGTE applies the GTE predicate on the "subject" field.
func SubjectGTE(v string) predicate.LoadEntry {
	return predicate.LoadEntry(sql.FieldGTE(FieldSubject, v))
}

// SubjectLT applies the LT predicate on the "subject" field.
func SubjectLT(v string) predicate.LoadEntry {
	return predicate.LoadEntry(sql.FieldLT(FieldSubject, v))
}

// SubjectLTE applies the LTE predicate on the "subject" field.
func SubjectLTE(v string) predicate.LoadEntry {
	return predicate.LoadEntry(sql.FieldLTE(FieldSubject, v))
}

// SubjectContains applies the Contains predicate on the "subject" field.
func SubjectContains(v string) predicate.LoadEntry {
	return predicate.LoadEntry(sql.FieldContains(FieldSubject, v))
}

// SubjectHasPrefix applies the HasPrefix predicate on the "subject" field.
func SubjectHasPrefix(v string) predicate.LoadEntry {
	return predicate.LoadEntry(sql.FieldHasPrefix(FieldSubject, v))
}

// SubjectHasSuffix applies the HasSuffix predicate on the "subject" field.
func SubjectHasSuffix(v string) predicate.LoadEntry {
	return predicate.LoadEntry(sql.FieldHasSuffix(FieldSubject, v))
}

// SubjectIsNil applies the IsNil predicate on the "subject" field.
func SubjectIsNil() predicate.LoadEntry {
	return predicate.LoadEntry(sql.FieldIsNull(FieldSubject))
}

// SubjectNotNil applies the NotNil predicate on the "subject" field.
func SubjectNotNil() predicate.LoadEntry {
	return predicate.LoadEntry(sql.FieldNotNull(FieldSubject))
}

// SubjectEqualFold applies the EqualFold predicate on the "subject" field.
func SubjectEqualFold(v string) predicate.LoadEntry {
	return predicate.LoadEntry(sql.FieldEqualFold(FieldSubject, v))
}

// SubjectContainsFold applies the ContainsFold predicate on the "subject" field.
func SubjectContainsFold(v string) predicate.LoadEntry {
	return predicate.LoadEntry(sql.FieldContainsFold(FieldSubject, v))
}

// SectionEQ applies the EQ predicate on the "section" field.
func SectionEQ(v string) predicate.LoadEntry {
	return predicate.LoadEntry(sql.FieldEQ(FieldSection, v))
}

// SectionNEQ applies the NEQ predicate on the "section" field.
func SectionNEQ(v string) predicate.LoadEntry {
	return predicate.LoadEntry(sql.FieldNEQ(FieldSection, v))
}

// SectionIn applies the In predicate on the "section" field.
func SectionIn(vs ...string) predicate.LoadEntry {
	return predicate.LoadEntry(sql.FieldIn(FieldSection, vs...))
}

// SectionNotIn applies the NotIn predicate on the "section" field.
func SectionNotIn(vs ...string) predicate.LoadEntry {
	return predicate.LoadEntry(sql.FieldNotIn(FieldSection, vs...))
}

// SectionGT applies the GT predicate on the "section" field.
func SectionGT(v string) predicate.LoadEntry {
	return predicate.LoadEntry(sql.FieldGT(FieldSection, v))
}

// SectionGTE applies the GTE predicate on the "section" field.
func SectionGTE(v string) predicate.LoadEntry {
	return predicate.LoadEntry(sql.FieldGTE(FieldSection, v))
}

// SectionLT applies the LT predicate on the "section" field.
func SectionLT(v string) predicate.LoadEntry {
	return predicate.LoadEntry(sql.FieldLT(FieldSection, v))
}

// SectionLTE applies the LTE predicate on the "section" field.
func SectionLTE(v string) predicate.LoadEntry {
	return predicate.LoadEntry(sql.FieldLTE(FieldSection, v))
}

// SectionContains applies the Contains predicate on the "section" field.
func SectionContains(v string) predicate.LoadEntry {
	return predicate.LoadEntry(sql.FieldContains(FieldSection, v))
}

// SectionHasPrefix applies the HasPrefix predicate on the "section" field.
func SectionHasPrefix(v string) predicate.LoadEntry {
	return predicate.LoadEntry(sql.FieldHasPrefix(FieldSection, v))
}

// SectionHasSuffix applies the HasSuffix predicate on the "section" field.
func SectionHasSuffix(v string) predicate.LoadEntry {
	return predicate.LoadEntry(sql.FieldHasSuffix(FieldSection, v))
}

// SectionIsNil applies the IsNil predicate on the "section" field.
func SectionIsNil() predicate.LoadEntry {
	return predicate.LoadEntry(sql.FieldIsNull(FieldSection))
}

// SectionNotNil applies the NotNil predicate on the "section" field.
func SectionNotNil() predicate.LoadEntry {
	return predicate.LoadEntry(sql.FieldNotNull(FieldSection))
}

// SectionEqualFold applies the EqualFold predicate on the "section" field.
func SectionEqualFold(v string) predicate.LoadEntry {
	return predicate.LoadEntry(sql.FieldEqualFold(FieldSection, v))
}

// SectionContainsFold applies the ContainsFold predicate on the "section" field.
func SectionContainsFold(v string) predicate.LoadEntry {
	return predicate.LoadEntry(sql.FieldContainsFold(FieldSection, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.LoadEntry {
	return predicate.LoadEntry(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.LoadEntry {
	return predicate.LoadEntry(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.LoadEntry {
	return predicate.LoadEntry(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.LoadEntry {
	return predicate.LoadEntry(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.LoadEntry {
	return predicate.LoadEntry(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.LoadEntry {
	return predicate.LoadEntry(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.LoadEntry {
	return predicate.LoadEntry(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.LoadEntry {
	return predicate.LoadEntry(sql.FieldLTE(FieldCreatedAt, v))
}

// HasPersonnel applies the HasEdge predicate on the "personnel" edge.
func HasPersonnel() predicate.LoadEntry {
	return predicate.LoadEntry(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, PersonnelTable, PersonnelColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPersonnelWith applies the HasEdge predicate on the "personnel" edge with a given conditions (other predicates).
func HasPersonnelWith(preds ...predicate.Personnel) predicate.LoadEntry {
	return predicate.LoadEntry(func(s *sql.Selector) {
		step := newPersonnelStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.LoadEntry) predicate.LoadEntry {
	return predicate.LoadEntry(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.LoadEntry) predicate.LoadEntry {
	return predicate.LoadEntry(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.LoadEntry) predicate.LoadEntry {
	return predicate.LoadEntry(sql.NotPredicates(p))
}

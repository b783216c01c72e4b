// Code generated by ent, DO NOT EDIT.

package subjectentry

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/priya-sndrs/InstSys-CaseStudy-sub000/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.SubjectEntry {
	return predicate.SubjectEntry(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.SubjectEntry {
	return predicate.SubjectEntry(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.SubjectEntry {
	return predicate.SubjectEntry(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.SubjectEntry {
	return predicate.SubjectEntry(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.SubjectEntry {
	return predicate.SubjectEntry(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.SubjectEntry {
	return predicate.SubjectEntry(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.SubjectEntry {
	return predicate.SubjectEntry(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.SubjectEntry {
	return predicate.SubjectEntry(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.SubjectEntry {
	return predicate.SubjectEntry(sql.FieldLTE(FieldID, id))
}

// StudentID applies equality check predicate on the "student_id" field. It's identical to StudentIDEQ.
func StudentID(v uuid.UUID) predicate.SubjectEntry {
	return predicate.SubjectEntry(sql.FieldEQ(FieldStudentID, v))
}

// Code applies equality check predicate on the "code" field. It's identical to CodeEQ.
func Code(v string) predicate.SubjectEntry {
	return predicate.SubjectEntry(sql.FieldEQ(FieldCode, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.SubjectEntry {
	return predicate.SubjectEntry(sql.FieldEQ(FieldTitle, v))
}

// Units applies equality check predicate on the "units" field. It's identical to UnitsEQ.
func Units(v float64) predicate.SubjectEntry {
	return predicate.SubjectEntry(sql.FieldEQ(FieldUnits, v))
}

// Room applies equality check predicate on the "room" field. It's identical to RoomEQ.
func Room(v string) predicate.SubjectEntry {
	return predicate.SubjectEntry(sql.FieldEQ(FieldRoom, v))
}

// Day applies equality check predicate on the "day" field. It's identical to DayEQ.
func Day(v string) predicate.SubjectEntry {
	return predicate.SubjectEntry(sql.FieldEQ(FieldDay, v))
}

// TimeStart applies equality check predicate on the "time_start" field. It's identical to TimeStartEQ.
func TimeStart(v string) predicate.SubjectEntry {
	return predicate.SubjectEntry(sql.FieldEQ(FieldTimeStart, v))
}

// TimeEnd applies equality check predicate on the "time_end" field. It's identical to TimeEndEQ.
func TimeEnd(v string) predicate.SubjectEntry {
	return predicate.SubjectEntry(sql.FieldEQ(FieldTimeEnd, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.SubjectEntry {
	return predicate.SubjectEntry(sql.FieldEQ(FieldCreatedAt, v))
}

// StudentIDEQ applies the EQ predicate on the "student_id" field.
func StudentIDEQ(v uuid.UUID) predicate.SubjectEntry {
	return predicate.SubjectEntry(sql.FieldEQ(FieldStudentID, v))
}

// StudentIDNEQ applies the NEQ predicate on the "student_id" field.
func StudentIDNEQ(v uuid.UUID) predicate.SubjectEntry {
	return predicate.SubjectEntry(sql.FieldNEQ(FieldStudentID, v))
}

// StudentIDIn applies the In predicate on the "student_id" field.
func StudentIDIn(vs ...uuid.UUID) predicate.SubjectEntry {
	return predicate.SubjectEntry(sql.FieldIn(FieldStudentID, vs...))
}

// StudentIDNotIn applies the NotIn predicate on the "student_id" field.
func StudentIDNotIn(vs ...uuid.UUID) predicate.SubjectEntry {
	return predicate.SubjectEntry(sql.FieldNotIn(FieldStudentID, vs...))
}

// CodeEQ applies the EQ predicate on the "code" field.
func CodeEQ(v string) predicate.SubjectEntry {
	return predicate.SubjectEntry(sql.FieldEQ(FieldCode, v))
}

// CodeNEQ applies the NEQ predicate on the "code" field.
func CodeNEQ(v string) predicate.SubjectEntry {
	return predicate.SubjectEntry(sql.FieldNEQ(FieldCode, v))
}

// CodeIn applies the In predicate on the "code" field.
func CodeIn(vs ...string) predicate.SubjectEntry {
	return predicate.SubjectEntry(sql.FieldIn(FieldCode, vs...))
}

// CodeNotIn applies the NotIn predicate on the "code" field.
func CodeNotIn(vs ...string) predicate.SubjectEntry {
	return predicate.SubjectEntry(sql.FieldNotIn(FieldCode, vs...))
}

// CodeGT applies the GT predicate on the "code" field.
func CodeGT(v string) predicate.SubjectEntry {
	return predicate.SubjectEntry(sql.FieldGT(FieldCode, v))
}

// CodeGTE applies the GTE predicate on the "code" field.
func CodeGTE(v string) predicate.SubjectEntry {
	return predicate.SubjectEntry(sql.FieldGTE(FieldCode, v))
}

// CodeLT applies the LT predicate on the "code" field.
func CodeLT(v string) predicate.SubjectEntry {
	return predicate.SubjectEntry(sql.FieldLT(FieldCode, v))
}

// CodeLTE applies the LTE predicate on the "code" field.
func CodeLTE(v string) predicate.SubjectEntry {
	return predicate.SubjectEntry(sql.FieldLTE(FieldCode, v))
}

// CodeContains applies the Contains predicate on the "code" field.
func CodeContains(v string) predicate.SubjectEntry {
	return predicate.SubjectEntry(sql.FieldContains(FieldCode, v))
}

// CodeHasPrefix applies the HasPrefix predicate on the "code" field.
func CodeHasPrefix(v string) predicate.SubjectEntry {
	return predicate.SubjectEntry(sql.FieldHasPrefix(FieldCode, v))
}

// CodeHasSuffix applies the HasSuffix predicate on the "code" field.
func CodeHasSuffix(v string) predicate.SubjectEntry {
	return predicate.SubjectEntry(sql.FieldHasSuffix(FieldCode, v))
}

// CodeEqualFold applies the EqualFold predicate on the "code" field.
func CodeEqualFold(v string) predicate.SubjectEntry {
	return predicate.SubjectEntry(sql.FieldEqualFold(FieldCode, v))
}

// CodeContainsFold applies the ContainsFold predicate on the "code" field.
func CodeContainsFold(v string) predicate.SubjectEntry {
	return predicate.SubjectEntry(sql.FieldContainsFold(FieldCode, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.SubjectEntry {
	return predicate.SubjectEntry(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.SubjectEntry {
	return predicate.SubjectEntry(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.SubjectEntry {
	return predicate.SubjectEntry(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.SubjectEntry {
	return predicate.SubjectEntry(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.SubjectEntry {
	return predicate.SubjectEntry(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.SubjectEntry {
	return predicate.SubjectEntry(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.SubjectEntry {
	return predicate.SubjectEntry(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.SubjectEntry {
	return predicate.SubjectEntry(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.SubjectEntry {
	return predicate.SubjectEntry(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.SubjectEntry {
	return predicate.SubjectEntry(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.SubjectEntry {
	return predicate.SubjectEntry(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleIsNil applies the IsNil predicate on the "title" field.
func TitleIsNil() predicate.SubjectEntry {
	return predicate.SubjectEntry(sql.FieldIsNull(FieldTitle))
}

// TitleNotNil applies the NotNil predicate on the "title" field.
func TitleNotNil() predicate.SubjectEntry {
	return predicate.SubjectEntry(sql.FieldNotNull(FieldTitle))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.SubjectEntry {
	return predicate.SubjectEntry(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.SubjectEntry {
	return predicate.SubjectEntry(sql.FieldContainsFold(FieldTitle, v))
}

// UnitsEQ applies the EQ predicate on the "units" field.
func UnitsEQ(v float64) predicate.SubjectEntry {
	return predicate.SubjectEntry(sql.FieldEQ(FieldUnits, v))
}

// UnitsNEQ applies the NEQ predicate on the "units" field.
func UnitsNEQ(v float64) predicate.SubjectEntry {
	return predicate.SubjectEntry(sql.FieldNEQ(FieldUnits, v))
}

// UnitsIn applies the In predicate on the "units" field.
func UnitsIn(vs ...float64) predicate.SubjectEntry {
	return predicate.SubjectEntry(sql.FieldIn(FieldUnits, vs...))
}

// UnitsNotIn applies the NotIn predicate on the "units" field.
func UnitsNotIn(vs ...float64) predicate.SubjectEntry {
	return predicate.SubjectEntry(sql.FieldNotIn(FieldUnits, vs...))
}

// UnitsGT applies the GT predicate on the "units" field.
func UnitsGT(v float64) predicate.SubjectEntry {
	return predicate.SubjectEntry(sql.FieldGT(FieldUnits, v))
}

// UnitsGTE applies the GTE predicate on the "units" field.
func UnitsGTE(v float64) predicate.SubjectEntry {
	return predicate.SubjectEntry(sql.FieldGTE(FieldUnits, v))
}

// UnitsLT applies the LT predicate on the "units" field.
func UnitsLT(v float64) predicate.SubjectEntry {
	return predicate.SubjectEntry(sql.FieldLT(FieldUnits, v))
}

// UnitsLTE applies the LTE predicate on the "units" field.
func UnitsLTE(v float64) predicate.SubjectEntry {
	return predicate.SubjectEntry(sql.FieldLTE(FieldUnits, v))
}

// UnitsIsNil applies the IsNil predicate on the "units" field.
func UnitsIsNil() predicate.SubjectEntry {
	return predicate.SubjectEntry(sql.FieldIsNull(FieldUnits))
}

// UnitsNotNil applies the NotNil predicate on the "units" field.
func UnitsNotNil() predicate.SubjectEntry {
	return predicate.SubjectEntry(sql.FieldNotNull(FieldUnits))
}

// RoomEQ applies the EQ predicate on the "room" field.
func RoomEQ(v string) predicate.SubjectEntry {
	return predicate.SubjectEntry(sql.FieldEQ(FieldRoom, v))
}

// RoomNEQ applies the NEQ predicate on the "room" field.
func RoomNEQ(v string) predicate.SubjectEntry {
	return predicate.SubjectEntry(sql.FieldNEQ(FieldRoom, v))
}

// RoomIn applies the In predicate on the "room" field.
func RoomIn(vs ...string) predicate.SubjectEntry {
	return predicate.SubjectEntry(sql.FieldIn(FieldRoom, vs...))
}

// RoomNotIn applies the NotIn predicate on the "room" field.
func RoomNotIn(vs ...string) predicate.SubjectEntry {
	return predicate.SubjectEntry(sql.FieldNotIn(FieldRoom, vs...))
}

// RoomGT applies the GT predicate on the "room" field.
func RoomGT(v string) predicate.SubjectEntry {
	return predicate.SubjectEntry(sql.FieldGT(FieldRoom, v))
}

// RoomGTE applies the GTE predicate on the "room" field.
func RoomGTE(v string) predicate.SubjectEntry {
	return predicate.SubjectEntry(sql.FieldGTE(FieldRoom, v))
}

// RoomLT applies the LT predicate on the "room" field.
func RoomLT(v string) predicate.SubjectEntry {
	return predicate.SubjectEntry(sql.FieldLT(FieldRoom, v))
}

// RoomLTE applies the LTE predicate on the "room" field.
func RoomLTE(v string) predicate.SubjectEntry {
	return predicate.SubjectEntry(sql.FieldLTE(FieldRoom, v))
}

// RoomContains applies the Contains predicate on the "room" field.
func RoomContains(v string) predicate.SubjectEntry {
	return predicate.SubjectEntry(sql.FieldContains(FieldRoom, v))
}

// RoomHasPrefix applies the HasPrefix predicate on the "room" field.
func RoomHasPrefix(v string) predicate.SubjectEntry {
	return predicate.SubjectEntry(sql.FieldHasPrefix(FieldRoom, v))
}

// RoomHasSuffix applies the HasSuffix predicate on the "room" field.
func RoomHasSuffix(v string) predicate.SubjectEntry {
	return predicate.SubjectEntry(sql.FieldHasSuffix(FieldRoom, v))
}

// RoomIsNil applies the IsNil predicate on the "room" field.
func RoomIsNil() predicate.SubjectEntry {
	return predicate.SubjectEntry(sql.FieldIsNull(FieldRoom))
}

// RoomNotNil applies the NotNil predicate on the "room" field.
func RoomNotNil() predicate.SubjectEntry {
	return predicate.SubjectEntry(sql.FieldNotNull(FieldRoom))
}

// RoomEqualFold applies the EqualFold predicate on the "room" field.
func RoomEqualFold(v string) predicate.SubjectEntry {
	return predicate.SubjectEntry(sql.FieldEqualFold(FieldRoom, v))
}

// RoomContainsFold applies the ContainsFold predicate on the "room" field.
func RoomContainsFold(v string) predicate.SubjectEntry {
	return predicate.SubjectEntry(sql.FieldContainsFold(FieldRoom, v))
}

// DayEQ applies the EQ predicate on the "day" field.
func DayEQ(v string) predicate.SubjectEntry {
	return predicate.SubjectEntry(sql.FieldEQ(FieldDay, v))
}

// DayNEQ applies the NEQ predicate on the "day" field.
func DayNEQ(v string) predicate.SubjectEntry {
	return predicate.SubjectEntry(sql.FieldNEQ(FieldDay, v))
}

// DayIn applies the In predicate on the "day" field.
func DayIn(vs ...string) predicate.SubjectEntry {
	return predicate.SubjectEntry(sql.FieldIn(FieldDay, vs...))
}

// DayNotIn applies the NotIn predicate on the "day" field.
func DayNotIn(vs ...string) predicate.SubjectEntry {
	return predicate.SubjectEntry(sql.FieldNotIn(FieldDay, vs...))
}

// DayGT applies the GT predicate on the "day" field.
func DayGT(v string) predicate.SubjectEntry {
	return predicate.SubjectEntry(sql.FieldGT(FieldDay, v))
}

// DayGTE applies the GTE predicate on the "day" field.
func DayGTE(v string) predicate.SubjectEntry {
	return predicate.SubjectEntry(sql.FieldGTE(FieldDay, v))
}

// DayLT applies the LT predicate on the "day" field.
func DayLT(v string) predicate.SubjectEntry {
	return predicate.SubjectEntry(sql.FieldLT(FieldDay, v))
}

// DayLTE applies the LTE predicate on the "day" field.
func DayLTE(v string) predicate.SubjectEntry {
	return predicate.SubjectEntry(sql.FieldLTE(FieldDay, v))
}

// DayContains applies the Contains predicate on the "day" field.
func DayContains(v string) predicate.SubjectEntry {
	return predicate.SubjectEntry(sql.FieldContains(FieldDay, v))
}

// DayHasPrefix applies the HasPrefix predicate on the "day" field.
func DayHasPrefix(v string) predicate.SubjectEntry {
	return predicate.SubjectEntry(sql.FieldHasPrefix(FieldDay, v))
}

// DayHasSuffix applies the HasSuffix predicate on the "day" field.
func DayHasSuffix(v string) predicate.SubjectEntry {
	return predicate.SubjectEntry(sql.FieldHasSuffix(FieldDay, v))
}

// DayIsNil applies the IsNil predicate on the "day" field.
func DayIsNil() predicate.SubjectEntry {
	return predicate.SubjectEntry(sql.FieldIsNull(FieldDay))
}

// DayNotNil applies the NotNil predicate on the "day" field.
func DayNotNil() predicate.SubjectEntry {
	return predicate.SubjectEntry(sql.FieldNotNull(FieldDay))
}

// DayEqualFold applies the EqualFold predicate on the "day" field.
func DayEqualFold(v string) predicate.SubjectEntry {
	return predicate.SubjectEntry(sql.FieldEqualFold(FieldDay, v))
}

// DayContainsFold applies the ContainsFold predicate on the "day" field.
func DayContainsFold(v string) predicate.SubjectEntry {
	return predicate.SubjectEntry(sql.FieldContainsFold(FieldDay, v))
}

// TimeStartEQ applies the EQ predicate on the "time_start" field.
func TimeStartEQ(v string) predicate.SubjectEntry {
	return predicate.SubjectEntry(sql.FieldEQ(FieldTimeStart, v))
}

// TimeStartNEQ applies the NEQ predicate on the "time_start" field.
func TimeStartNEQ(v string) predicate.SubjectEntry {
	return predicate.SubjectEntry(sql.FieldNEQ(FieldTimeStart, v))
}

// TimeStartIn applies the In predicate on the "time_start" field.
func TimeStartIn(vs ...string) predicate.SubjectEntry {
	return predicate.SubjectEntry(sql.FieldIn(FieldTimeStart, vs...))
}

// TimeStartNotIn applies the NotIn predicate on the "time_start" field.
func TimeStartNotIn(vs ...string) predicate.SubjectEntry {
	return predicate.SubjectEntry(sql.FieldNotIn(FieldTimeStart, vs...))
}

// TimeStartGT applies the GT predicate on the "time_start" field.
func TimeStartGT(v string) predicate.SubjectEntry {
	return predicate.SubjectEntry(sql.FieldGT(FieldTimeStart, v))
}

// TimeStartGTE applies the GTE predicate on the "time_start" field.
func TimeStartGTE(v string) predicate.SubjectEntry {
	return predicate.SubjectEntry(sql.FieldGTE(FieldTimeStart, v))
}

// TimeStartLT applies the LT predicate on the "time_start" field.
func TimeStartLT(v string) predicate.SubjectEntry {
	return predicate.SubjectEntry(sql.FieldLT(FieldTimeStart, v))
}

// TimeStartLTE applies the LTE predicate on the "time_start" field.
func TimeStartLTE(v string) predicate.SubjectEntry {
	return predicate.SubjectEntry(sql.FieldLTE(FieldTimeStart, v))
}

// TimeStartContains applies the Contains predicate on the "time_start" field.
func TimeStartContains(v string) predicate.SubjectEntry {
	return predicate.SubjectEntry(sql.FieldContains(FieldTimeStart, v))
}

// TimeStartHasPrefix applies the HasPrefix predicate on the "time_start" field.
func TimeStartHasPrefix(v string) predicate.SubjectEntry {
	return predicate.SubjectEntry(sql.FieldHasPrefix(FieldTimeStart, v))
}

// TimeStartHasSuffix applies the HasSuffix predicate on the "time_start" field.
func TimeStartHasSuffix(v string) predicate.SubjectEntry {
	return predicate.SubjectEntry(sql.FieldHasSuffix(FieldTimeStart, v))
}

// TimeStartIsNil applies the IsNil predicate on the "time_start" field.
func TimeStartIsNil() predicate.SubjectEntry {
	return predicate.SubjectEntry(sql.FieldIsNull(FieldTimeStart))
}

// TimeStartNotNil applies the NotNil predicate on the "time_start" field.
func TimeStartNotNil() predicate.SubjectEntry {
	return predicate.SubjectEntry(sql.FieldNotNull(FieldTimeStart))
}

// TimeStartEqualFold applies the EqualFold predicate on the "time_start" field.
func TimeStartEqualFold(v string) predicate.SubjectEntry {
	return predicate.SubjectEntry(sql.FieldEqualFold(FieldTimeStart, v))
}

// TimeStartContainsFold applies the ContainsFold predicate on the "time_start" field.
func TimeStartContainsFold(v string) predicate.SubjectEntry {
	return predicate.SubjectEntry(sql.FieldContainsFold(FieldTimeStart, v))
}

// TimeEndEQ applies the EQ predicate on the "time_end" field.
func TimeEndEQ(v string) predicate.SubjectEntry {
	return predicate.SubjectEntry(sql.FieldEQ(FieldTimeEnd, v))
}

// TimeEndNEQ applies the NEQ predicate on the "time_end" field.
func TimeEndNEQ(v string) predicate.SubjectEntry {
	return predicate.SubjectEntry(sql.FieldNEQ(FieldTimeEnd, v))
}

// TimeEndIn applies the In predicate on the "time_end" field.
func TimeEndIn(vs ...string) predicate.SubjectEntry {
	return predicate.SubjectEntry(sql.FieldIn(FieldTimeEnd, vs...))
}

// TimeEndNotIn applies the NotIn predicate on the "time_end" field.
func TimeEndNotIn(vs ...string) predicate.SubjectEntry {
	return predicate.SubjectEntry(sql.FieldNotIn(FieldTimeEnd, vs...))
}

// TimeEndGT applies the GT predicate on the "time_end" field.
func TimeEndGT(v string) predicate.SubjectEntry {
	return predicate.SubjectEntry(sql.FieldGT(FieldTimeEnd, v))
}

// TimeEndGTE applies the GTE predicate on the "time_end" field.
func TimeEndGTE(v string) predicate.SubjectEntry {
	return predicate.SubjectEntry(sql.FieldGTE(FieldTimeEnd, v))
}

// TimeEndLT applies the LT predicate on the "time_end" field.
func TimeEndLT(v string) predicate.SubjectEntry {
	return predicate.SubjectEntry(sql.FieldLT(FieldTimeEnd, v))
}

// TimeEndLTE applies the LTE predicate on the "time_end" field.
func TimeEndLTE(v string) predicate.SubjectEntry {
	return predicate.SubjectEntry(sql.FieldLTE(FieldTimeEnd, v))
}

// TimeEndContains applies the Contains predicate on the "time_end" field.
func TimeEndContains(v string) predicate.SubjectEntry {
	return predicate.SubjectEntry(sql.FieldContains(FieldTimeEnd, v))
}

// TimeEndHasPrefix applies the HasPrefix predicate on the "time_end" field.
func TimeEndHasPrefix(v string) predicate.SubjectEntry {
	return predicate.SubjectEntry(sql.FieldHasPrefix(FieldTimeEnd, v))
}

// TimeEndHasSuffix applies the HasSuffix predicate on the "time_end" field.
func TimeEndHasSuffix(v string) predicate.SubjectEntry {
	return predicate.SubjectEntry(sql.FieldHasSuffix(FieldTimeEnd, v))
}

// TimeEndIsNil applies the IsNil predicate on the "time_end" field.
func TimeEndIsNil() predicate.SubjectEntry {
	return predicate.SubjectEntry(sql.FieldIsNull(FieldTimeEnd))
}

// TimeEndNotNil applies the NotNil predicate on the "time_end" field.
func TimeEndNotNil() predicate.SubjectEntry {
	return predicate.SubjectEntry(sql.FieldNotNull(FieldTimeEnd))
}

// TimeEndEqualFold applies the EqualFold predicate on the "time_end" field.
func TimeEndEqualFold(v string) predicate.SubjectEntry {
	return predicate.SubjectEntry(sql.FieldEqualFold(FieldTimeEnd, v))
}

// TimeEndContainsFold applies the ContainsFold predicate on the "time_end" field.
func TimeEndContainsFold(v string) predicate.SubjectEntry {
	return predicate.SubjectEntry(sql.FieldContainsFold(FieldTimeEnd, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.SubjectEntry {
	return predicate.SubjectEntry(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.SubjectEntry {
	return predicate.SubjectEntry(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.SubjectEntry {
	return predicate.SubjectEntry(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.SubjectEntry {
	return predicate.SubjectEntry(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.SubjectEntry {
	return predicate.SubjectEntry(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.SubjectEntry {
	return predicate.SubjectEntry(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.SubjectEntry {
	return predicate.SubjectEntry(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.SubjectEntry {
	return predicate.SubjectEntry(sql.FieldLTE(FieldCreatedAt, v))
}

// HasStudent applies the HasEdge predicate on the "student" edge.
func HasStudent() predicate.SubjectEntry {
	return predicate.SubjectEntry(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, StudentTable, StudentColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasStudentWith applies the HasEdge predicate on the "student" edge with a given conditions (other predicates).
func HasStudentWith(preds ...predicate.Student) predicate.SubjectEntry {
	return predicate.SubjectEntry(func(s *sql.Selector) {
		step := newStudentStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SubjectEntry) predicate.SubjectEntry {
	return predicate.SubjectEntry(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SubjectEntry) predicate.SubjectEntry {
	return predicate.SubjectEntry(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SubjectEntry) predicate.SubjectEntry {
	return predicate.SubjectEntry(sql.NotPredicates(p))
}

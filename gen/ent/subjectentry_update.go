// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/priya-sndrs/InstSys-CaseStudy-sub000/gen/ent/predicate"
	"github.com/priya-sndrs/InstSys-CaseStudy-sub000/gen/ent/student"
	"github.com/priya-sndrs/InstSys-CaseStudy-sub000/gen/ent/subjectentry"
)

// SubjectEntryUpdate is the builder for updating SubjectEntry entities.
type SubjectEntryUpdate struct {
	config
	hooks    []Hook
	mutation *SubjectEntryMutation
}

// Where appends a list predicates to the SubjectEntryUpdate builder.
func (_u *SubjectEntryUpdate) Where(ps ...predicate.SubjectEntry) *SubjectEntryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStudentID sets the "student_id" field.
func (_u *SubjectEntryUpdate) SetStudentID(v uuid.UUID) *SubjectEntryUpdate {
	_u.mutation.SetStudentID(v)
	return _u
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (_u *SubjectEntryUpdate) SetNillableStudentID(v *uuid.UUID) *SubjectEntryUpdate {
	if v != nil {
		_u.SetStudentID(*v)
	}
	return _u
}

// SetCode sets the "code" field.
func (_u *SubjectEntryUpdate) SetCode(v string) *SubjectEntryUpdate {
	_u.mutation.SetCode(v)
	return _u
}

// SetNillableCode sets the "code" field if the given value is not nil.
func (_u *SubjectEntryUpdate) SetNillableCode(v *string) *SubjectEntryUpdate {
	if v != nil {
		_u.SetCode(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *SubjectEntryUpdate) SetTitle(v string) *SubjectEntryUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *SubjectEntryUpdate) SetNillableTitle(v *string) *SubjectEntryUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// ClearTitle clears the value of the "title" field.
func (_u *SubjectEntryUpdate) ClearTitle() *SubjectEntryUpdate {
	_u.mutation.ClearTitle()
	return _u
}

// SetUnits sets the "units" field.
func (_u *SubjectEntryUpdate) SetUnits(v float64) *SubjectEntryUpdate {
	_u.mutation.ResetUnits()
	_u.mutation.SetUnits(v)
	return _u
}

// SetNillableUnits sets the "units" field if the given value is not nil.
func (_u *SubjectEntryUpdate) SetNillableUnits(v *float64) *SubjectEntryUpdate {
	if v != nil {
		_u.SetUnits(*v)
	}
	return _u
}

// AddUnits adds value to the "units" field.
func (_u *SubjectEntryUpdate) AddUnits(v float64) *SubjectEntryUpdate {
	_u.mutation.AddUnits(v)
	return _u
}

// ClearUnits clears the value of the "units" field.
func (_u *SubjectEntryUpdate) ClearUnits() *SubjectEntryUpdate {
	_u.mutation.ClearUnits()
	return _u
}

// SetRoom sets the "room" field.
func (_u *SubjectEntryUpdate) SetRoom(v string) *SubjectEntryUpdate {
	_u.mutation.SetRoom(v)
	return _u
}

// SetNillableRoom sets the "room" field if the given value is not nil.
func (_u *SubjectEntryUpdate) SetNillableRoom(v *string) *SubjectEntryUpdate {
	if v != nil {
		_u.SetRoom(*v)
	}
	return _u
}

// ClearRoom clears the value of the "room" field.
func (_u *SubjectEntryUpdate) ClearRoom() *SubjectEntryUpdate {
	_u.mutation.ClearRoom()
	return _u
}

// SetDay sets the "day" field.
func (_u *SubjectEntryUpdate) SetDay(v string) *SubjectEntryUpdate {
	_u.mutation.SetDay(v)
	return _u
}

// SetNillableDay sets the "day" field if the given value is not nil.
func (_u *SubjectEntryUpdate) SetNillableDay(v *string) *SubjectEntryUpdate {
	if v != nil {
		_u.SetDay(*v)
	}
	return _u
}

// ClearDay clears the value of the "day" field.
func (_u *SubjectEntryUpdate) ClearDay() *SubjectEntryUpdate {
	_u.mutation.ClearDay()
	return _u
}

// SetTimeStart sets the "time_start" field.
func (_u *SubjectEntryUpdate) SetTimeStart(v string) *SubjectEntryUpdate {
	_u.mutation.SetTimeStart(v)
	return _u
}

// SetNillableTimeStart sets the "time_start" field if the given value is not nil.
func (_u *SubjectEntryUpdate) SetNillableTimeStart(v *string) *SubjectEntryUpdate {
	if v != nil {
		_u.SetTimeStart(*v)
	}
	return _u
}

// ClearTimeStart clears the value of the "time_start" field.
func (_u *SubjectEntryUpdate) ClearTimeStart() *SubjectEntryUpdate {
	_u.mutation.ClearTimeStart()
	return _u
}

// SetTimeEnd sets the "time_end" field.
func (_u *SubjectEntryUpdate) SetTimeEnd(v string) *SubjectEntryUpdate {
	_u.mutation.SetTimeEnd(v)
	return _u
}

// SetNillableTimeEnd sets the "time_end" field if the given value is not nil.
func (_u *SubjectEntryUpdate) SetNillableTimeEnd(v *string) *SubjectEntryUpdate {
	if v != nil {
		_u.SetTimeEnd(*v)
	}
	return _u
}

// ClearTimeEnd clears the value of the "time_end" field.
func (_u *SubjectEntryUpdate) ClearTimeEnd() *SubjectEntryUpdate {
	_u.mutation.ClearTimeEnd()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *SubjectEntryUpdate) SetCreatedAt(v time.Time) *SubjectEntryUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *SubjectEntryUpdate) SetNillableCreatedAt(v *time.Time) *SubjectEntryUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetStudent sets the "student" edge to the Student entity.
func (_u *SubjectEntryUpdate) SetStudent(v *Student) *SubjectEntryUpdate {
	return _u.SetStudentID(v.ID)
}

// Mutation returns the SubjectEntryMutation object of the builder.
func (_u *SubjectEntryUpdate) Mutation() *SubjectEntryMutation {
	return _u.mutation
}

// ClearStudent clears the "student" edge to the Student entity.
func (_u *SubjectEntryUpdate) ClearStudent() *SubjectEntryUpdate {
	_u.mutation.ClearStudent()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SubjectEntryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SubjectEntryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SubjectEntryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SubjectEntryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SubjectEntryUpdate) check() error {
	if v, ok := _u.mutation.Code(); ok {
		if err := subjectentry.CodeValidator(v); err != nil {
			return &ValidationError{Name: "code", err: fmt.Errorf(`ent: validator failed for field "SubjectEntry.code": %w`, err)}
		}
	}
	if _u.mutation.StudentCleared() && len(_u.mutation.StudentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SubjectEntry.student"`)
	}
	return nil
}

func (_u *SubjectEntryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(subjectentry.Table, subjectentry.Columns, sqlgraph.NewFieldSpec(subjectentry.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Code(); ok {
		_spec.SetField(subjectentry.FieldCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(subjectentry.FieldTitle, field.TypeString, value)
	}
	if _u.mutation.TitleCleared() {
		_spec.ClearField(subjectentry.FieldTitle, field.TypeString)
	}
	if value, ok := _u.mutation.Units(); ok {
		_spec.SetField(subjectentry.FieldUnits, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedUnits(); ok {
		_spec.AddField(subjectentry.FieldUnits, field.TypeFloat64, value)
	}
	if _u.mutation.UnitsCleared() {
		_spec.ClearField(subjectentry.FieldUnits, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Room(); ok {
		_spec.SetField(subjectentry.FieldRoom, field.TypeString, value)
	}
	if _u.mutation.RoomCleared() {
		_spec.ClearField(subjectentry.FieldRoom, field.TypeString)
	}
	if value, ok := _u.mutation.Day(); ok {
		_spec.SetField(subjectentry.FieldDay, field.TypeString, value)
	}
	if _u.mutation.DayCleared() {
		_spec.ClearField(subjectentry.FieldDay, field.TypeString)
	}
	if value, ok := _u.mutation.TimeStart(); ok {
		_spec.SetField(subjectentry.FieldTimeStart, field.TypeString, value)
	}
	if _u.mutation.TimeStartCleared() {
		_spec.ClearField(subjectentry.FieldTimeStart, field.TypeString)
	}
	if value, ok := _u.mutation.TimeEnd(); ok {
		_spec.SetField(subjectentry.FieldTimeEnd, field.TypeString, value)
	}
	if _u.mutation.TimeEndCleared() {
		_spec.ClearField(subjectentry.FieldTimeEnd, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(subjectentry.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.StudentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   subjectentry.StudentTable,
			Columns: []string{subjectentry.StudentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(student.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StudentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   subjectentry.StudentTable,
			Columns: []string{subjectentry.StudentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(student.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{subjectentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SubjectEntryUpdateOne is the builder for updating a single SubjectEntry entity.
type SubjectEntryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SubjectEntryMutation
}

// SetStudentID sets the "student_id" field.
func (_u *SubjectEntryUpdateOne) SetStudentID(v uuid.UUID) *SubjectEntryUpdateOne {
	_u.mutation.SetStudentID(v)
	return _u
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (_u *SubjectEntryUpdateOne) SetNillableStudentID(v *uuid.UUID) *SubjectEntryUpdateOne {
	if v != nil {
		_u.SetStudentID(*v)
	}
	return _u
}

// SetCode sets the "code" field.
func (_u *SubjectEntryUpdateOne) SetCode(v string) *SubjectEntryUpdateOne {
	_u.mutation.SetCode(v)
	return _u
}

// SetNillableCode sets the "code" field if the given value is not nil.
func (_u *SubjectEntryUpdateOne) SetNillableCode(v *string) *SubjectEntryUpdateOne {
	if v != nil {
		_u.SetCode(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *SubjectEntryUpdateOne) SetTitle(v string) *SubjectEntryUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *SubjectEntryUpdateOne) SetNillableTitle(v *string) *SubjectEntryUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// ClearTitle clears the value of the "title" field.
func (_u *SubjectEntryUpdateOne) ClearTitle() *SubjectEntryUpdateOne {
	_u.mutation.ClearTitle()
	return _u
}

// SetUnits sets the "units" field.
func (_u *SubjectEntryUpdateOne) SetUnits(v float64) *SubjectEntryUpdateOne {
	_u.mutation.ResetUnits()
	_u.mutation.SetUnits(v)
	return _u
}

// SetNillableUnits sets the "units" field if the given value is not nil.
func (_u *SubjectEntryUpdateOne) SetNillableUnits(v *float64) *SubjectEntryUpdateOne {
	if v != nil {
		_u.SetUnits(*v)
	}
	return _u
}

// AddUnits adds value to the "units" field.
func (_u *SubjectEntryUpdateOne) AddUnits(v float64) *SubjectEntryUpdateOne {
	_u.mutation.AddUnits(v)
	return _u
}

// ClearUnits clears the value of the "units" field.
func (_u *SubjectEntryUpdateOne) ClearUnits() *SubjectEntryUpdateOne {
	_u.mutation.ClearUnits()
	return _u
}

// SetRoom sets the "room" field.
func (_u *SubjectEntryUpdateOne) SetRoom(v string) *SubjectEntryUpdateOne {
	_u.mutation.SetRoom(v)
	return _u
}

// SetNillableRoom sets the "room" field if the given value is not nil.
func (_u *SubjectEntryUpdateOne) SetNillableRoom(v *string) *SubjectEntryUpdateOne {
	if v != nil {
		_u.SetRoom(*v)
	}
	return _u
}

// ClearRoom clears the value of the "room" field.
func (_u *SubjectEntryUpdateOne) ClearRoom() *SubjectEntryUpdateOne {
	_u.mutation.ClearRoom()
	return _u
}

// SetDay sets the "day" field.
func (_u *SubjectEntryUpdateOne) SetDay(v string) *SubjectEntryUpdateOne {
	_u.mutation.SetDay(v)
	return _u
}

// SetNillableDay sets the "day" field if the given value is not nil.
func (_u *SubjectEntryUpdateOne) SetNillableDay(v *string) *SubjectEntryUpdateOne {
	if v != nil {
		_u.SetDay(*v)
	}
	return _u
}

// ClearDay clears the value of the "day" field.
func (_u *SubjectEntryUpdateOne) ClearDay() *SubjectEntryUpdateOne {
	_u.mutation.ClearDay()
	return _u
}

// SetTimeStart sets the "time_start" field.
func (_u *SubjectEntryUpdateOne) SetTimeStart(v string) *SubjectEntryUpdateOne {
	_u.mutation.SetTimeStart(v)
	return _u
}

// SetNillableTimeStart sets the "time_start" field if the given value is not nil.
func (_u *SubjectEntryUpdateOne) SetNillableTimeStart(v *string) *SubjectEntryUpdateOne {
	if v != nil {
		_u.SetTimeStart(*v)
	}
	return _u
}

// ClearTimeStart clears the value of the "time_start" field.
func (_u *SubjectEntryUpdateOne) ClearTimeStart() *SubjectEntryUpdateOne {
	_u.mutation.ClearTimeStart()
	return _u
}

// SetTimeEnd sets the "time_end" field.
func (_u *SubjectEntryUpdateOne) SetTimeEnd(v string) *SubjectEntryUpdateOne {
	_u.mutation.SetTimeEnd(v)
	return _u
}

// SetNillableTimeEnd sets the "time_end" field if the given value is not nil.
func (_u *SubjectEntryUpdateOne) SetNillableTimeEnd(v *string) *SubjectEntryUpdateOne {
	if v != nil {
		_u.SetTimeEnd(*v)
	}
	return _u
}

// ClearTimeEnd clears the value of the "time_end" field.
func (_u *SubjectEntryUpdateOne) ClearTimeEnd() *SubjectEntryUpdateOne {
	_u.mutation.ClearTimeEnd()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *SubjectEntryUpdateOne) SetCreatedAt(v time.Time) *SubjectEntryUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *SubjectEntryUpdateOne) SetNillableCreatedAt(v *time.Time) *SubjectEntryUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetStudent sets the "student" edge to the Student entity.
func (_u *SubjectEntryUpdateOne) SetStudent(v *Student) *SubjectEntryUpdateOne {
	return _u.SetStudentID(v.ID)
}

// Mutation returns the SubjectEntryMutation object of the builder.
func (_u *SubjectEntryUpdateOne) Mutation() *SubjectEntryMutation {
	return _u.mutation
}

// ClearStudent clears the "student" edge to the Student entity.
func (_u *SubjectEntryUpdateOne) ClearStudent() *SubjectEntryUpdateOne {
	_u.mutation.ClearStudent()
	return _u
}

// Where appends a list predicates to the SubjectEntryUpdate builder.
func (_u *SubjectEntryUpdateOne) Where(ps ...predicate.SubjectEntry) *SubjectEntryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SubjectEntryUpdateOne) Select(field string, fields ...string) *SubjectEntryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SubjectEntry entity.
func (_u *SubjectEntryUpdateOne) Save(ctx context.Context) (*SubjectEntry, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SubjectEntryUpdateOne) SaveX(ctx context.Context) *SubjectEntry {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SubjectEntryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SubjectEntryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SubjectEntryUpdateOne) check() error {
	if v, ok := _u.mutation.Code(); ok {
		if err := subjectentry.CodeValidator(v); err != nil {
			return &ValidationError{Name: "code", err: fmt.Errorf(`ent: validator failed for field "SubjectEntry.code": %w`, err)}
		}
	}
	if _u.mutation.StudentCleared() && len(_u.mutation.StudentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SubjectEntry.student"`)
	}
	return nil
}

func (_u *SubjectEntryUpdateOne) sqlSave(ctx context.Context) (_node *SubjectEntry, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(subjectentry.Table, subjectentry.Columns, sqlgraph.NewFieldSpec(subjectentry.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SubjectEntry.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, subjectentry.FieldID)
		for _, f := range fields {
			if !subjectentry.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != subjectentry.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Code(); ok {
		_spec.SetField(subjectentry.FieldCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(subjectentry.FieldTitle, field.TypeString, value)
	}
	if _u.mutation.TitleCleared() {
		_spec.ClearField(subjectentry.FieldTitle, field.TypeString)
	}
	if value, ok := _u.mutation.Units(); ok {
		_spec.SetField(subjectentry.FieldUnits, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedUnits(); ok {
		_spec.AddField(subjectentry.FieldUnits, field.TypeFloat64, value)
	}
	if _u.mutation.UnitsCleared() {
		_spec.ClearField(subjectentry.FieldUnits, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Room(); ok {
		_spec.SetField(subjectentry.FieldRoom, field.TypeString, value)
	}
	if _u.mutation.RoomCleared() {
		_spec.ClearField(subjectentry.FieldRoom, field.TypeString)
	}
	if value, ok := _u.mutation.Day(); ok {
		_spec.SetField(subjectentry.FieldDay, field.TypeString, value)
	}
	if _u.mutation.DayCleared() {
		_spec.ClearField(subjectentry.FieldDay, field.TypeString)
	}
	if value, ok := _u.mutation.TimeStart(); ok {
		_spec.SetField(subjectentry.FieldTimeStart, field.TypeString, value)
	}
	if _u.mutation.TimeStartCleared() {
		_spec.ClearField(subjectentry.FieldTimeStart, field.TypeString)
	}
	if value, ok := _u.mutation.TimeEnd(); ok {
		_spec.SetField(subjectentry.FieldTimeEnd, field.TypeString, value)
	}
	if _u.mutation.TimeEndCleared() {
		_spec.ClearField(subjectentry.FieldTimeEnd, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(subjectentry.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.StudentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   subjectentry.StudentTable,
			Columns: []string{subjectentry.StudentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(student.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StudentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   subjectentry.StudentTable,
			Columns: []string{subjectentry.StudentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(student.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &SubjectEntry{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{subjectentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

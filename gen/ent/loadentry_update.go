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
	"github.com/priya-sndrs/InstSys-CaseStudy-sub000/gen/ent/loadentry"
	"github.com/priya-sndrs/InstSys-CaseStudy-sub000/gen/ent/personnel"
	"github.com/priya-sndrs/InstSys-CaseStudy-sub000/gen/ent/predicate"
)

// LoadEntryUpdate is the builder for updating LoadEntry entities.
type LoadEntryUpdate struct {
	config
	hooks    []Hook
	mutation *LoadEntryMutation
}

// Where appends a list predicates to the LoadEntryUpdate builder.
func (_u *LoadEntryUpdate) Where(ps ...predicate.LoadEntry) *LoadEntryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPersonnelID sets the "personnel_id" field.
func (_u *LoadEntryUpdate) SetPersonnelID(v uuid.UUID) *LoadEntryUpdate {
	_u.mutation.SetPersonnelID(v)
	return _u
}

// SetNillablePersonnelID sets the "personnel_id" field if the given value is not nil.
func (_u *LoadEntryUpdate) SetNillablePersonnelID(v *uuid.UUID) *LoadEntryUpdate {
	if v != nil {
		_u.SetPersonnelID(*v)
	}
	return _u
}

// SetDay sets the "day" field.
func (_u *LoadEntryUpdate) SetDay(v string) *LoadEntryUpdate {
	_u.mutation.SetDay(v)
	return _u
}

// SetNillableDay sets the "day" field if the given value is not nil.
func (_u *LoadEntryUpdate) SetNillableDay(v *string) *LoadEntryUpdate {
	if v != nil {
		_u.SetDay(*v)
	}
	return _u
}

// SetTimeStart sets the "time_start" field.
func (_u *LoadEntryUpdate) SetTimeStart(v string) *LoadEntryUpdate {
	_u.mutation.SetTimeStart(v)
	return _u
}

// SetNillableTimeStart sets the "time_start" field if the given value is not nil.
func (_u *LoadEntryUpdate) SetNillableTimeStart(v *string) *LoadEntryUpdate {
	if v != nil {
		_u.SetTimeStart(*v)
	}
	return _u
}

// SetTimeEnd sets the "time_end" field.
func (_u *LoadEntryUpdate) SetTimeEnd(v string) *LoadEntryUpdate {
	_u.mutation.SetTimeEnd(v)
	return _u
}

// SetNillableTimeEnd sets the "time_end" field if the given value is not nil.
func (_u *LoadEntryUpdate) SetNillableTimeEnd(v *string) *LoadEntryUpdate {
	if v != nil {
		_u.SetTimeEnd(*v)
	}
	return _u
}

// ClearTimeEnd clears the value of the "time_end" field.
func (_u *LoadEntryUpdate) ClearTimeEnd() *LoadEntryUpdate {
	_u.mutation.ClearTimeEnd()
	return _u
}

// SetSubject sets the "subject" field.
func (_u *LoadEntryUpdate) SetSubject(v string) *LoadEntryUpdate {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *LoadEntryUpdate) SetNillableSubject(v *string) *LoadEntryUpdate {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// ClearSubject clears the value of the "subject" field.
func (_u *LoadEntryUpdate) ClearSubject() *LoadEntryUpdate {
	_u.mutation.ClearSubject()
	return _u
}

// SetSection sets the "section" field.
func (_u *LoadEntryUpdate) SetSection(v string) *LoadEntryUpdate {
	_u.mutation.SetSection(v)
	return _u
}

// SetNillableSection sets the "section" field if the given value is not nil.
func (_u *LoadEntryUpdate) SetNillableSection(v *string) *LoadEntryUpdate {
	if v != nil {
		_u.SetSection(*v)
	}
	return _u
}

// ClearSection clears the value of the "section" field.
func (_u *LoadEntryUpdate) ClearSection() *LoadEntryUpdate {
	_u.mutation.ClearSection()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *LoadEntryUpdate) SetCreatedAt(v time.Time) *LoadEntryUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *LoadEntryUpdate) SetNillableCreatedAt(v *time.Time) *LoadEntryUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetPersonnel sets the "personnel" edge to the Personnel entity.
func (_u *LoadEntryUpdate) SetPersonnel(v *Personnel) *LoadEntryUpdate {
	return _u.SetPersonnelID(v.ID)
}

// Mutation returns the LoadEntryMutation object of the builder.
func (_u *LoadEntryUpdate) Mutation() *LoadEntryMutation {
	return _u.mutation
}

// ClearPersonnel clears the "personnel" edge to the Personnel entity.
func (_u *LoadEntryUpdate) ClearPersonnel() *LoadEntryUpdate {
	_u.mutation.ClearPersonnel()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LoadEntryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LoadEntryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LoadEntryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LoadEntryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LoadEntryUpdate) check() error {
	if v, ok := _u.mutation.Day(); ok {
		if err := loadentry.DayValidator(v); err != nil {
			return &ValidationError{Name: "day", err: fmt.Errorf(`ent: validator failed for field "LoadEntry.day": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TimeStart(); ok {
		if err := loadentry.TimeStartValidator(v); err != nil {
			return &ValidationError{Name: "time_start", err: fmt.Errorf(`ent: validator failed for field "LoadEntry.time_start": %w`, err)}
		}
	}
	if _u.mutation.PersonnelCleared() && len(_u.mutation.PersonnelIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "LoadEntry.personnel"`)
	}
	return nil
}

func (_u *LoadEntryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(loadentry.Table, loadentry.Columns, sqlgraph.NewFieldSpec(loadentry.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Day(); ok {
		_spec.SetField(loadentry.FieldDay, field.TypeString, value)
	}
	if value, ok := _u.mutation.TimeStart(); ok {
		_spec.SetField(loadentry.FieldTimeStart, field.TypeString, value)
	}
	if value, ok := _u.mutation.TimeEnd(); ok {
		_spec.SetField(loadentry.FieldTimeEnd, field.TypeString, value)
	}
	if _u.mutation.TimeEndCleared() {
		_spec.ClearField(loadentry.FieldTimeEnd, field.TypeString)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(loadentry.FieldSubject, field.TypeString, value)
	}
	if _u.mutation.SubjectCleared() {
		_spec.ClearField(loadentry.FieldSubject, field.TypeString)
	}
	if value, ok := _u.mutation.Section(); ok {
		_spec.SetField(loadentry.FieldSection, field.TypeString, value)
	}
	if _u.mutation.SectionCleared() {
		_spec.ClearField(loadentry.FieldSection, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(loadentry.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.PersonnelCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   loadentry.PersonnelTable,
			Columns: []string{loadentry.PersonnelColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(personnel.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PersonnelIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   loadentry.PersonnelTable,
			Columns: []string{loadentry.PersonnelColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(personnel.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{loadentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LoadEntryUpdateOne is the builder for updating a single LoadEntry entity.
type LoadEntryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LoadEntryMutation
}

// SetPersonnelID sets the "personnel_id" field.
func (_u *LoadEntryUpdateOne) SetPersonnelID(v uuid.UUID) *LoadEntryUpdateOne {
	_u.mutation.SetPersonnelID(v)
	return _u
}

// SetNillablePersonnelID sets the "personnel_id" field if the given value is not nil.
func (_u *LoadEntryUpdateOne) SetNillablePersonnelID(v *uuid.UUID) *LoadEntryUpdateOne {
	if v != nil {
		_u.SetPersonnelID(*v)
	}
	return _u
}

// SetDay sets the "day" field.
func (_u *LoadEntryUpdateOne) SetDay(v string) *LoadEntryUpdateOne {
	_u.mutation.SetDay(v)
	return _u
}

// SetNillableDay sets the "day" field if the given value is not nil.
func (_u *LoadEntryUpdateOne) SetNillableDay(v *string) *LoadEntryUpdateOne {
	if v != nil {
		_u.SetDay(*v)
	}
	return _u
}

// SetTimeStart sets the "time_start" field.
func (_u *LoadEntryUpdateOne) SetTimeStart(v string) *LoadEntryUpdateOne {
	_u.mutation.SetTimeStart(v)
	return _u
}

// SetNillableTimeStart sets the "time_start" field if the given value is not nil.
func (_u *LoadEntryUpdateOne) SetNillableTimeStart(v *string) *LoadEntryUpdateOne {
	if v != nil {
		_u.SetTimeStart(*v)
	}
	return _u
}

// SetTimeEnd sets the "time_end" field.
func (_u *LoadEntryUpdateOne) SetTimeEnd(v string) *LoadEntryUpdateOne {
	_u.mutation.SetTimeEnd(v)
	return _u
}

// SetNillableTimeEnd sets the "time_end" field if the given value is not nil.
func (_u *LoadEntryUpdateOne) SetNillableTimeEnd(v *string) *LoadEntryUpdateOne {
	if v != nil {
		_u.SetTimeEnd(*v)
	}
	return _u
}

// ClearTimeEnd clears the value of the "time_end" field.
func (_u *LoadEntryUpdateOne) ClearTimeEnd() *LoadEntryUpdateOne {
	_u.mutation.ClearTimeEnd()
	return _u
}

// SetSubject sets the "subject" field.
func (_u *LoadEntryUpdateOne) SetSubject(v string) *LoadEntryUpdateOne {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *LoadEntryUpdateOne) SetNillableSubject(v *string) *LoadEntryUpdateOne {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// ClearSubject clears the value of the "subject" field.
func (_u *LoadEntryUpdateOne) ClearSubject() *LoadEntryUpdateOne {
	_u.mutation.ClearSubject()
	return _u
}

// SetSection sets the "section" field.
func (_u *LoadEntryUpdateOne) SetSection(v string) *LoadEntryUpdateOne {
	_u.mutation.SetSection(v)
	return _u
}

// SetNillableSection sets the "section" field if the given value is not nil.
func (_u *LoadEntryUpdateOne) SetNillableSection(v *string) *LoadEntryUpdateOne {
	if v != nil {
		_u.SetSection(*v)
	}
	return _u
}

// ClearSection clears the value of the "section" field.
func (_u *LoadEntryUpdateOne) ClearSection() *LoadEntryUpdateOne {
	_u.mutation.ClearSection()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *LoadEntryUpdateOne) SetCreatedAt(v time.Time) *LoadEntryUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *LoadEntryUpdateOne) SetNillableCreatedAt(v *time.Time) *LoadEntryUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetPersonnel sets the "personnel" edge to the Personnel entity.
func (_u *LoadEntryUpdateOne) SetPersonnel(v *Personnel) *LoadEntryUpdateOne {
	return _u.SetPersonnelID(v.ID)
}

// Mutation returns the LoadEntryMutation object of the builder.
func (_u *LoadEntryUpdateOne) Mutation() *LoadEntryMutation {
	return _u.mutation
}

// ClearPersonnel clears the "personnel" edge to the Personnel entity.
func (_u *LoadEntryUpdateOne) ClearPersonnel() *LoadEntryUpdateOne {
	_u.mutation.ClearPersonnel()
	return _u
}

// Where appends a list predicates to the LoadEntryUpdate builder.
func (_u *LoadEntryUpdateOne) Where(ps ...predicate.LoadEntry) *LoadEntryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LoadEntryUpdateOne) Select(field string, fields ...string) *LoadEntryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LoadEntry entity.
func (_u *LoadEntryUpdateOne) Save(ctx context.Context) (*LoadEntry, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LoadEntryUpdateOne) SaveX(ctx context.Context) *LoadEntry {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LoadEntryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LoadEntryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LoadEntryUpdateOne) check() error {
	if v, ok := _u.mutation.Day(); ok {
		if err := loadentry.DayValidator(v); err != nil {
			return &ValidationError{Name: "day", err: fmt.Errorf(`ent: validator failed for field "LoadEntry.day": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TimeStart(); ok {
		if err := loadentry.TimeStartValidator(v); err != nil {
			return &ValidationError{Name: "time_start", err: fmt.Errorf(`ent: validator failed for field "LoadEntry.time_start": %w`, err)}
		}
	}
	if _u.mutation.PersonnelCleared() && len(_u.mutation.PersonnelIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "LoadEntry.personnel"`)
	}
	return nil
}

func (_u *LoadEntryUpdateOne) sqlSave(ctx context.Context) (_node *LoadEntry, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(loadentry.Table, loadentry.Columns, sqlgraph.NewFieldSpec(loadentry.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LoadEntry.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, loadentry.FieldID)
		for _, f := range fields {
			if !loadentry.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != loadentry.FieldID {
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
	if value, ok := _u.mutation.Day(); ok {
		_spec.SetField(loadentry.FieldDay, field.TypeString, value)
	}
	if value, ok := _u.mutation.TimeStart(); ok {
		_spec.SetField(loadentry.FieldTimeStart, field.TypeString, value)
	}
	if value, ok := _u.mutation.TimeEnd(); ok {
		_spec.SetField(loadentry.FieldTimeEnd, field.TypeString, value)
	}
	if _u.mutation.TimeEndCleared() {
		_spec.ClearField(loadentry.FieldTimeEnd, field.TypeString)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(loadentry.FieldSubject, field.TypeString, value)
	}
	if _u.mutation.SubjectCleared() {
		_spec.ClearField(loadentry.FieldSubject, field.TypeString)
	}
	if value, ok := _u.mutation.Section(); ok {
		_spec.SetField(loadentry.FieldSection, field.TypeString, value)
	}
	if _u.mutation.SectionCleared() {
		_spec.ClearField(loadentry.FieldSection, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(loadentry.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.PersonnelCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   loadentry.PersonnelTable,
			Columns: []string{loadentry.PersonnelColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(personnel.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PersonnelIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   loadentry.PersonnelTable,
			Columns: []string{loadentry.PersonnelColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(personnel.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &LoadEntry{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{loadentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

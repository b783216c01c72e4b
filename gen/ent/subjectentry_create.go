// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/priya-sndrs/InstSys-CaseStudy-sub000/gen/ent/student"
	"github.com/priya-sndrs/InstSys-CaseStudy-sub000/gen/ent/subjectentry"
)

// SubjectEntryCreate is the builder for creating a SubjectEntry entity.
type SubjectEntryCreate struct {
	config
	mutation *SubjectEntryMutation
	hooks    []Hook
}

// SetStudentID sets the "student_id" field.
func (_c *SubjectEntryCreate) SetStudentID(v uuid.UUID) *SubjectEntryCreate {
	_c.mutation.SetStudentID(v)
	return _c
}

// SetCode sets the "code" field.
func (_c *SubjectEntryCreate) SetCode(v string) *SubjectEntryCreate {
	_c.mutation.SetCode(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *SubjectEntryCreate) SetTitle(v string) *SubjectEntryCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_c *SubjectEntryCreate) SetNillableTitle(v *string) *SubjectEntryCreate {
	if v != nil {
		_c.SetTitle(*v)
	}
	return _c
}

// SetUnits sets the "units" field.
func (_c *SubjectEntryCreate) SetUnits(v float64) *SubjectEntryCreate {
	_c.mutation.SetUnits(v)
	return _c
}

// SetNillableUnits sets the "units" field if the given value is not nil.
func (_c *SubjectEntryCreate) SetNillableUnits(v *float64) *SubjectEntryCreate {
	if v != nil {
		_c.SetUnits(*v)
	}
	return _c
}

// SetRoom sets the "room" field.
func (_c *SubjectEntryCreate) SetRoom(v string) *SubjectEntryCreate {
	_c.mutation.SetRoom(v)
	return _c
}

// SetNillableRoom sets the "room" field if the given value is not nil.
func (_c *SubjectEntryCreate) SetNillableRoom(v *string) *SubjectEntryCreate {
	if v != nil {
		_c.SetRoom(*v)
	}
	return _c
}

// SetDay sets the "day" field.
func (_c *SubjectEntryCreate) SetDay(v string) *SubjectEntryCreate {
	_c.mutation.SetDay(v)
	return _c
}

// SetNillableDay sets the "day" field if the given value is not nil.
func (_c *SubjectEntryCreate) SetNillableDay(v *string) *SubjectEntryCreate {
	if v != nil {
		_c.SetDay(*v)
	}
	return _c
}

// SetTimeStart sets the "time_start" field.
func (_c *SubjectEntryCreate) SetTimeStart(v string) *SubjectEntryCreate {
	_c.mutation.SetTimeStart(v)
	return _c
}

// SetNillableTimeStart sets the "time_start" field if the given value is not nil.
func (_c *SubjectEntryCreate) SetNillableTimeStart(v *string) *SubjectEntryCreate {
	if v != nil {
		_c.SetTimeStart(*v)
	}
	return _c
}

// SetTimeEnd sets the "time_end" field.
func (_c *SubjectEntryCreate) SetTimeEnd(v string) *SubjectEntryCreate {
	_c.mutation.SetTimeEnd(v)
	return _c
}

// SetNillableTimeEnd sets the "time_end" field if the given value is not nil.
func (_c *SubjectEntryCreate) SetNillableTimeEnd(v *string) *SubjectEntryCreate {
	if v != nil {
		_c.SetTimeEnd(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SubjectEntryCreate) SetCreatedAt(v time.Time) *SubjectEntryCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SubjectEntryCreate) SetNillableCreatedAt(v *time.Time) *SubjectEntryCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SubjectEntryCreate) SetID(v uuid.UUID) *SubjectEntryCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *SubjectEntryCreate) SetNillableID(v *uuid.UUID) *SubjectEntryCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetStudent sets the "student" edge to the Student entity.
func (_c *SubjectEntryCreate) SetStudent(v *Student) *SubjectEntryCreate {
	return _c.SetStudentID(v.ID)
}

// Mutation returns the SubjectEntryMutation object of the builder.
func (_c *SubjectEntryCreate) Mutation() *SubjectEntryMutation {
	return _c.mutation
}

// Save creates the SubjectEntry in the database.
func (_c *SubjectEntryCreate) Save(ctx context.Context) (*SubjectEntry, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SubjectEntryCreate) SaveX(ctx context.Context) *SubjectEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SubjectEntryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SubjectEntryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SubjectEntryCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := subjectentry.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := subjectentry.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SubjectEntryCreate) check() error {
	if _, ok := _c.mutation.StudentID(); !ok {
		return &ValidationError{Name: "student_id", err: errors.New(`ent: missing required field "SubjectEntry.student_id"`)}
	}
	if _, ok := _c.mutation.Code(); !ok {
		return &ValidationError{Name: "code", err: errors.New(`ent: missing required field "SubjectEntry.code"`)}
	}
	if v, ok := _c.mutation.Code(); ok {
		if err := subjectentry.CodeValidator(v); err != nil {
			return &ValidationError{Name: "code", err: fmt.Errorf(`ent: validator failed for field "SubjectEntry.code": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "SubjectEntry.created_at"`)}
	}
	if len(_c.mutation.StudentIDs()) == 0 {
		return &ValidationError{Name: "student", err: errors.New(`ent: missing required edge "SubjectEntry.student"`)}
	}
	return nil
}

func (_c *SubjectEntryCreate) sqlSave(ctx context.Context) (*SubjectEntry, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SubjectEntryCreate) createSpec() (*SubjectEntry, *sqlgraph.CreateSpec) {
	var (
		_node = &SubjectEntry{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(subjectentry.Table, sqlgraph.NewFieldSpec(subjectentry.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Code(); ok {
		_spec.SetField(subjectentry.FieldCode, field.TypeString, value)
		_node.Code = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(subjectentry.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Units(); ok {
		_spec.SetField(subjectentry.FieldUnits, field.TypeFloat64, value)
		_node.Units = &value
	}
	if value, ok := _c.mutation.Room(); ok {
		_spec.SetField(subjectentry.FieldRoom, field.TypeString, value)
		_node.Room = value
	}
	if value, ok := _c.mutation.Day(); ok {
		_spec.SetField(subjectentry.FieldDay, field.TypeString, value)
		_node.Day = value
	}
	if value, ok := _c.mutation.TimeStart(); ok {
		_spec.SetField(subjectentry.FieldTimeStart, field.TypeString, value)
		_node.TimeStart = value
	}
	if value, ok := _c.mutation.TimeEnd(); ok {
		_spec.SetField(subjectentry.FieldTimeEnd, field.TypeString, value)
		_node.TimeEnd = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(subjectentry.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.StudentIDs(); len(nodes) > 0 {
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
		_node.StudentID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// SubjectEntryCreateBulk is the builder for creating many SubjectEntry entities in bulk.
type SubjectEntryCreateBulk struct {
	config
	err      error
	builders []*SubjectEntryCreate
}

// Save creates the SubjectEntry entities in the database.
func (_c *SubjectEntryCreateBulk) Save(ctx context.Context) ([]*SubjectEntry, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SubjectEntry, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SubjectEntryMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *SubjectEntryCreateBulk) SaveX(ctx context.Context) []*SubjectEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SubjectEntryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SubjectEntryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

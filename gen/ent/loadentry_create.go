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
	"github.com/priya-sndrs/InstSys-CaseStudy-sub000/gen/ent/loadentry"
	"github.com/priya-sndrs/InstSys-CaseStudy-sub000/gen/ent/personnel"
)

// LoadEntryCreate is the builder for creating a LoadEntry entity.
type LoadEntryCreate struct {
	config
	mutation *LoadEntryMutation
	hooks    []Hook
}

// SetPersonnelID sets the "personnel_id" field.
func (_c *LoadEntryCreate) SetPersonnelID(v uuid.UUID) *LoadEntryCreate {
	_c.mutation.SetPersonnelID(v)
	return _c
}

// SetDay sets the "day" field.
func (_c *LoadEntryCreate) SetDay(v string) *LoadEntryCreate {
	_c.mutation.SetDay(v)
	return _c
}

// SetTimeStart sets the "time_start" field.
func (_c *LoadEntryCreate) SetTimeStart(v string) *LoadEntryCreate {
	_c.mutation.SetTimeStart(v)
	return _c
}

// SetTimeEnd sets the "time_end" field.
func (_c *LoadEntryCreate) SetTimeEnd(v string) *LoadEntryCreate {
	_c.mutation.SetTimeEnd(v)
	return _c
}

// SetNillableTimeEnd sets the "time_end" field if the given value is not nil.
func (_c *LoadEntryCreate) SetNillableTimeEnd(v *string) *LoadEntryCreate {
	if v != nil {
		_c.SetTimeEnd(*v)
	}
	return _c
}

// SetSubject sets the "subject" field.
func (_c *LoadEntryCreate) SetSubject(v string) *LoadEntryCreate {
	_c.mutation.SetSubject(v)
	return _c
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_c *LoadEntryCreate) SetNillableSubject(v *string) *LoadEntryCreate {
	if v != nil {
		_c.SetSubject(*v)
	}
	return _c
}

// SetSection sets the "section" field.
func (_c *LoadEntryCreate) SetSection(v string) *LoadEntryCreate {
	_c.mutation.SetSection(v)
	return _c
}

// SetNillableSection sets the "section" field if the given value is not nil.
func (_c *LoadEntryCreate) SetNillableSection(v *string) *LoadEntryCreate {
	if v != nil {
		_c.SetSection(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *LoadEntryCreate) SetCreatedAt(v time.Time) *LoadEntryCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *LoadEntryCreate) SetNillableCreatedAt(v *time.Time) *LoadEntryCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *LoadEntryCreate) SetID(v uuid.UUID) *LoadEntryCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *LoadEntryCreate) SetNillableID(v *uuid.UUID) *LoadEntryCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetPersonnel sets the "personnel" edge to the Personnel entity.
func (_c *LoadEntryCreate) SetPersonnel(v *Personnel) *LoadEntryCreate {
	return _c.SetPersonnelID(v.ID)
}

// Mutation returns the LoadEntryMutation object of the builder.
func (_c *LoadEntryCreate) Mutation() *LoadEntryMutation {
	return _c.mutation
}

// Save creates the LoadEntry in the database.
func (_c *LoadEntryCreate) Save(ctx context.Context) (*LoadEntry, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LoadEntryCreate) SaveX(ctx context.Context) *LoadEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LoadEntryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LoadEntryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LoadEntryCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := loadentry.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := loadentry.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LoadEntryCreate) check() error {
	if _, ok := _c.mutation.PersonnelID(); !ok {
		return &ValidationError{Name: "personnel_id", err: errors.New(`ent: missing required field "LoadEntry.personnel_id"`)}
	}
	if _, ok := _c.mutation.Day(); !ok {
		return &ValidationError{Name: "day", err: errors.New(`ent: missing required field "LoadEntry.day"`)}
	}
	if v, ok := _c.mutation.Day(); ok {
		if err := loadentry.DayValidator(v); err != nil {
			return &ValidationError{Name: "day", err: fmt.Errorf(`ent: validator failed for field "LoadEntry.day": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TimeStart(); !ok {
		return &ValidationError{Name: "time_start", err: errors.New(`ent: missing required field "LoadEntry.time_start"`)}
	}
	if v, ok := _c.mutation.TimeStart(); ok {
		if err := loadentry.TimeStartValidator(v); err != nil {
			return &ValidationError{Name: "time_start", err: fmt.Errorf(`ent: validator failed for field "LoadEntry.time_start": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "LoadEntry.created_at"`)}
	}
	if len(_c.mutation.PersonnelIDs()) == 0 {
		return &ValidationError{Name: "personnel", err: errors.New(`ent: missing required edge "LoadEntry.personnel"`)}
	}
	return nil
}

func (_c *LoadEntryCreate) sqlSave(ctx context.Context) (*LoadEntry, error) {
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

func (_c *LoadEntryCreate) createSpec() (*LoadEntry, *sqlgraph.CreateSpec) {
	var (
		_node = &LoadEntry{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(loadentry.Table, sqlgraph.NewFieldSpec(loadentry.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Day(); ok {
		_spec.SetField(loadentry.FieldDay, field.TypeString, value)
		_node.Day = value
	}
	if value, ok := _c.mutation.TimeStart(); ok {
		_spec.SetField(loadentry.FieldTimeStart, field.TypeString, value)
		_node.TimeStart = value
	}
	if value, ok := _c.mutation.TimeEnd(); ok {
		_spec.SetField(loadentry.FieldTimeEnd, field.TypeString, value)
		_node.TimeEnd = value
	}
	if value, ok := _c.mutation.Subject(); ok {
		_spec.SetField(loadentry.FieldSubject, field.TypeString, value)
		_node.Subject = value
	}
	if value, ok := _c.mutation.Section(); ok {
		_spec.SetField(loadentry.FieldSection, field.TypeString, value)
		_node.Section = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(loadentry.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.PersonnelIDs(); len(nodes) > 0 {
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
		_node.PersonnelID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// LoadEntryCreateBulk is the builder for creating many LoadEntry entities in bulk.
type LoadEntryCreateBulk struct {
	config
	err      error
	builders []*LoadEntryCreate
}

// Save creates the LoadEntry entities in the database.
func (_c *LoadEntryCreateBulk) Save(ctx context.Context) ([]*LoadEntry, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*LoadEntry, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LoadEntryMutation)
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
func (_c *LoadEntryCreateBulk) SaveX(ctx context.Context) []*LoadEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LoadEntryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LoadEntryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

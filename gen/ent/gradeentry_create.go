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
	"github.com/priya-sndrs/InstSys-CaseStudy-sub000/gen/ent/gradeentry"
	"github.com/priya-sndrs/InstSys-CaseStudy-sub000/gen/ent/gradereport"
)

// GradeEntryCreate is the builder for creating a GradeEntry entity.
type GradeEntryCreate struct {
	config
	mutation *GradeEntryMutation
	hooks    []Hook
}

// SetReportID sets the "report_id" field.
func (_c *GradeEntryCreate) SetReportID(v uuid.UUID) *GradeEntryCreate {
	_c.mutation.SetReportID(v)
	return _c
}

// SetCode sets the "code" field.
func (_c *GradeEntryCreate) SetCode(v string) *GradeEntryCreate {
	_c.mutation.SetCode(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *GradeEntryCreate) SetTitle(v string) *GradeEntryCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_c *GradeEntryCreate) SetNillableTitle(v *string) *GradeEntryCreate {
	if v != nil {
		_c.SetTitle(*v)
	}
	return _c
}

// SetUnits sets the "units" field.
func (_c *GradeEntryCreate) SetUnits(v float64) *GradeEntryCreate {
	_c.mutation.SetUnits(v)
	return _c
}

// SetNillableUnits sets the "units" field if the given value is not nil.
func (_c *GradeEntryCreate) SetNillableUnits(v *float64) *GradeEntryCreate {
	if v != nil {
		_c.SetUnits(*v)
	}
	return _c
}

// SetFinalGrade sets the "final_grade" field.
func (_c *GradeEntryCreate) SetFinalGrade(v string) *GradeEntryCreate {
	_c.mutation.SetFinalGrade(v)
	return _c
}

// SetNillableFinalGrade sets the "final_grade" field if the given value is not nil.
func (_c *GradeEntryCreate) SetNillableFinalGrade(v *string) *GradeEntryCreate {
	if v != nil {
		_c.SetFinalGrade(*v)
	}
	return _c
}

// SetRemarks sets the "remarks" field.
func (_c *GradeEntryCreate) SetRemarks(v string) *GradeEntryCreate {
	_c.mutation.SetRemarks(v)
	return _c
}

// SetNillableRemarks sets the "remarks" field if the given value is not nil.
func (_c *GradeEntryCreate) SetNillableRemarks(v *string) *GradeEntryCreate {
	if v != nil {
		_c.SetRemarks(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *GradeEntryCreate) SetCreatedAt(v time.Time) *GradeEntryCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *GradeEntryCreate) SetNillableCreatedAt(v *time.Time) *GradeEntryCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *GradeEntryCreate) SetID(v uuid.UUID) *GradeEntryCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *GradeEntryCreate) SetNillableID(v *uuid.UUID) *GradeEntryCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetReport sets the "report" edge to the GradeReport entity.
func (_c *GradeEntryCreate) SetReport(v *GradeReport) *GradeEntryCreate {
	return _c.SetReportID(v.ID)
}

// Mutation returns the GradeEntryMutation object of the builder.
func (_c *GradeEntryCreate) Mutation() *GradeEntryMutation {
	return _c.mutation
}

// Save creates the GradeEntry in the database.
func (_c *GradeEntryCreate) Save(ctx context.Context) (*GradeEntry, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *GradeEntryCreate) SaveX(ctx context.Context) *GradeEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GradeEntryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GradeEntryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *GradeEntryCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := gradeentry.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := gradeentry.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *GradeEntryCreate) check() error {
	if _, ok := _c.mutation.ReportID(); !ok {
		return &ValidationError{Name: "report_id", err: errors.New(`ent: missing required field "GradeEntry.report_id"`)}
	}
	if _, ok := _c.mutation.Code(); !ok {
		return &ValidationError{Name: "code", err: errors.New(`ent: missing required field "GradeEntry.code"`)}
	}
	if v, ok := _c.mutation.Code(); ok {
		if err := gradeentry.CodeValidator(v); err != nil {
			return &ValidationError{Name: "code", err: fmt.Errorf(`ent: validator failed for field "GradeEntry.code": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "GradeEntry.created_at"`)}
	}
	if len(_c.mutation.ReportIDs()) == 0 {
		return &ValidationError{Name: "report", err: errors.New(`ent: missing required edge "GradeEntry.report"`)}
	}
	return nil
}

func (_c *GradeEntryCreate) sqlSave(ctx context.Context) (*GradeEntry, error) {
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

func (_c *GradeEntryCreate) createSpec() (*GradeEntry, *sqlgraph.CreateSpec) {
	var (
		_node = &GradeEntry{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(gradeentry.Table, sqlgraph.NewFieldSpec(gradeentry.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Code(); ok {
		_spec.SetField(gradeentry.FieldCode, field.TypeString, value)
		_node.Code = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(gradeentry.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Units(); ok {
		_spec.SetField(gradeentry.FieldUnits, field.TypeFloat64, value)
		_node.Units = &value
	}
	if value, ok := _c.mutation.FinalGrade(); ok {
		_spec.SetField(gradeentry.FieldFinalGrade, field.TypeString, value)
		_node.FinalGrade = value
	}
	if value, ok := _c.mutation.Remarks(); ok {
		_spec.SetField(gradeentry.FieldRemarks, field.TypeString, value)
		_node.Remarks = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(gradeentry.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.ReportIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   gradeentry.ReportTable,
			Columns: []string{gradeentry.ReportColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(gradereport.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ReportID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// GradeEntryCreateBulk is the builder for creating many GradeEntry entities in bulk.
type GradeEntryCreateBulk struct {
	config
	err      error
	builders []*GradeEntryCreate
}

// Save creates the GradeEntry entities in the database.
func (_c *GradeEntryCreateBulk) Save(ctx context.Context) ([]*GradeEntry, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*GradeEntry, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*GradeEntryMutation)
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
func (_c *GradeEntryCreateBulk) SaveX(ctx context.Context) []*GradeEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GradeEntryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GradeEntryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

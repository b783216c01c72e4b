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
	"github.com/priya-sndrs/InstSys-CaseStudy-sub000/gen/ent/student"
)

// GradeReportCreate is the builder for creating a GradeReport entity.
type GradeReportCreate struct {
	config
	mutation *GradeReportMutation
	hooks    []Hook
}

// SetStudentID sets the "student_id" field.
func (_c *GradeReportCreate) SetStudentID(v uuid.UUID) *GradeReportCreate {
	_c.mutation.SetStudentID(v)
	return _c
}

// SetSemester sets the "semester" field.
func (_c *GradeReportCreate) SetSemester(v string) *GradeReportCreate {
	_c.mutation.SetSemester(v)
	return _c
}

// SetNillableSemester sets the "semester" field if the given value is not nil.
func (_c *GradeReportCreate) SetNillableSemester(v *string) *GradeReportCreate {
	if v != nil {
		_c.SetSemester(*v)
	}
	return _c
}

// SetSchoolYear sets the "school_year" field.
func (_c *GradeReportCreate) SetSchoolYear(v string) *GradeReportCreate {
	_c.mutation.SetSchoolYear(v)
	return _c
}

// SetNillableSchoolYear sets the "school_year" field if the given value is not nil.
func (_c *GradeReportCreate) SetNillableSchoolYear(v *string) *GradeReportCreate {
	if v != nil {
		_c.SetSchoolYear(*v)
	}
	return _c
}

// SetGwa sets the "gwa" field.
func (_c *GradeReportCreate) SetGwa(v float64) *GradeReportCreate {
	_c.mutation.SetGwa(v)
	return _c
}

// SetNillableGwa sets the "gwa" field if the given value is not nil.
func (_c *GradeReportCreate) SetNillableGwa(v *float64) *GradeReportCreate {
	if v != nil {
		_c.SetGwa(*v)
	}
	return _c
}

// SetRecordText sets the "record_text" field.
func (_c *GradeReportCreate) SetRecordText(v string) *GradeReportCreate {
	_c.mutation.SetRecordText(v)
	return _c
}

// SetNillableRecordText sets the "record_text" field if the given value is not nil.
func (_c *GradeReportCreate) SetNillableRecordText(v *string) *GradeReportCreate {
	if v != nil {
		_c.SetRecordText(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *GradeReportCreate) SetCreatedAt(v time.Time) *GradeReportCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *GradeReportCreate) SetNillableCreatedAt(v *time.Time) *GradeReportCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *GradeReportCreate) SetUpdatedAt(v time.Time) *GradeReportCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *GradeReportCreate) SetNillableUpdatedAt(v *time.Time) *GradeReportCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *GradeReportCreate) SetID(v uuid.UUID) *GradeReportCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *GradeReportCreate) SetNillableID(v *uuid.UUID) *GradeReportCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetStudent sets the "student" edge to the Student entity.
func (_c *GradeReportCreate) SetStudent(v *Student) *GradeReportCreate {
	return _c.SetStudentID(v.ID)
}

// AddEntryIDs adds the "entries" edge to the GradeEntry entity by IDs.
func (_c *GradeReportCreate) AddEntryIDs(ids ...uuid.UUID) *GradeReportCreate {
	_c.mutation.AddEntryIDs(ids...)
	return _c
}

// AddEntries adds the "entries" edges to the GradeEntry entity.
func (_c *GradeReportCreate) AddEntries(v ...*GradeEntry) *GradeReportCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddEntryIDs(ids...)
}

// Mutation returns the GradeReportMutation object of the builder.
func (_c *GradeReportCreate) Mutation() *GradeReportMutation {
	return _c.mutation
}

// Save creates the GradeReport in the database.
func (_c *GradeReportCreate) Save(ctx context.Context) (*GradeReport, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *GradeReportCreate) SaveX(ctx context.Context) *GradeReport {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GradeReportCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GradeReportCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *GradeReportCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := gradereport.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := gradereport.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := gradereport.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *GradeReportCreate) check() error {
	if _, ok := _c.mutation.StudentID(); !ok {
		return &ValidationError{Name: "student_id", err: errors.New(`ent: missing required field "GradeReport.student_id"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "GradeReport.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "GradeReport.updated_at"`)}
	}
	if len(_c.mutation.StudentIDs()) == 0 {
		return &ValidationError{Name: "student", err: errors.New(`ent: missing required edge "GradeReport.student"`)}
	}
	return nil
}

func (_c *GradeReportCreate) sqlSave(ctx context.Context) (*GradeReport, error) {
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

func (_c *GradeReportCreate) createSpec() (*GradeReport, *sqlgraph.CreateSpec) {
	var (
		_node = &GradeReport{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(gradereport.Table, sqlgraph.NewFieldSpec(gradereport.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Semester(); ok {
		_spec.SetField(gradereport.FieldSemester, field.TypeString, value)
		_node.Semester = value
	}
	if value, ok := _c.mutation.SchoolYear(); ok {
		_spec.SetField(gradereport.FieldSchoolYear, field.TypeString, value)
		_node.SchoolYear = value
	}
	if value, ok := _c.mutation.Gwa(); ok {
		_spec.SetField(gradereport.FieldGwa, field.TypeFloat64, value)
		_node.Gwa = &value
	}
	if value, ok := _c.mutation.RecordText(); ok {
		_spec.SetField(gradereport.FieldRecordText, field.TypeString, value)
		_node.RecordText = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(gradereport.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(gradereport.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.StudentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   gradereport.StudentTable,
			Columns: []string{gradereport.StudentColumn},
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
	if nodes := _c.mutation.EntriesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   gradereport.EntriesTable,
			Columns: []string{gradereport.EntriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(gradeentry.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// GradeReportCreateBulk is the builder for creating many GradeReport entities in bulk.
type GradeReportCreateBulk struct {
	config
	err      error
	builders []*GradeReportCreate
}

// Save creates the GradeReport entities in the database.
func (_c *GradeReportCreateBulk) Save(ctx context.Context) ([]*GradeReport, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*GradeReport, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*GradeReportMutation)
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
func (_c *GradeReportCreateBulk) SaveX(ctx context.Context) []*GradeReport {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GradeReportCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GradeReportCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

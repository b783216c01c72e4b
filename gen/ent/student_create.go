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
	"github.com/priya-sndrs/InstSys-CaseStudy-sub000/gen/ent/gradereport"
	"github.com/priya-sndrs/InstSys-CaseStudy-sub000/gen/ent/student"
	"github.com/priya-sndrs/InstSys-CaseStudy-sub000/gen/ent/subjectentry"
)

// StudentCreate is the builder for creating a Student entity.
type StudentCreate struct {
	config
	mutation *StudentMutation
	hooks    []Hook
}

// SetStudentNo sets the "student_no" field.
func (_c *StudentCreate) SetStudentNo(v string) *StudentCreate {
	_c.mutation.SetStudentNo(v)
	return _c
}

// SetNillableStudentNo sets the "student_no" field if the given value is not nil.
func (_c *StudentCreate) SetNillableStudentNo(v *string) *StudentCreate {
	if v != nil {
		_c.SetStudentNo(*v)
	}
	return _c
}

// SetName sets the "name" field.
func (_c *StudentCreate) SetName(v string) *StudentCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetProgram sets the "program" field.
func (_c *StudentCreate) SetProgram(v string) *StudentCreate {
	_c.mutation.SetProgram(v)
	return _c
}

// SetNillableProgram sets the "program" field if the given value is not nil.
func (_c *StudentCreate) SetNillableProgram(v *string) *StudentCreate {
	if v != nil {
		_c.SetProgram(*v)
	}
	return _c
}

// SetYearLevel sets the "year_level" field.
func (_c *StudentCreate) SetYearLevel(v string) *StudentCreate {
	_c.mutation.SetYearLevel(v)
	return _c
}

// SetNillableYearLevel sets the "year_level" field if the given value is not nil.
func (_c *StudentCreate) SetNillableYearLevel(v *string) *StudentCreate {
	if v != nil {
		_c.SetYearLevel(*v)
	}
	return _c
}

// SetSection sets the "section" field.
func (_c *StudentCreate) SetSection(v string) *StudentCreate {
	_c.mutation.SetSection(v)
	return _c
}

// SetNillableSection sets the "section" field if the given value is not nil.
func (_c *StudentCreate) SetNillableSection(v *string) *StudentCreate {
	if v != nil {
		_c.SetSection(*v)
	}
	return _c
}

// SetSemester sets the "semester" field.
func (_c *StudentCreate) SetSemester(v string) *StudentCreate {
	_c.mutation.SetSemester(v)
	return _c
}

// SetNillableSemester sets the "semester" field if the given value is not nil.
func (_c *StudentCreate) SetNillableSemester(v *string) *StudentCreate {
	if v != nil {
		_c.SetSemester(*v)
	}
	return _c
}

// SetSchoolYear sets the "school_year" field.
func (_c *StudentCreate) SetSchoolYear(v string) *StudentCreate {
	_c.mutation.SetSchoolYear(v)
	return _c
}

// SetNillableSchoolYear sets the "school_year" field if the given value is not nil.
func (_c *StudentCreate) SetNillableSchoolYear(v *string) *StudentCreate {
	if v != nil {
		_c.SetSchoolYear(*v)
	}
	return _c
}

// SetAdviser sets the "adviser" field.
func (_c *StudentCreate) SetAdviser(v string) *StudentCreate {
	_c.mutation.SetAdviser(v)
	return _c
}

// SetNillableAdviser sets the "adviser" field if the given value is not nil.
func (_c *StudentCreate) SetNillableAdviser(v *string) *StudentCreate {
	if v != nil {
		_c.SetAdviser(*v)
	}
	return _c
}

// SetRecordText sets the "record_text" field.
func (_c *StudentCreate) SetRecordText(v string) *StudentCreate {
	_c.mutation.SetRecordText(v)
	return _c
}

// SetNillableRecordText sets the "record_text" field if the given value is not nil.
func (_c *StudentCreate) SetNillableRecordText(v *string) *StudentCreate {
	if v != nil {
		_c.SetRecordText(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *StudentCreate) SetCreatedAt(v time.Time) *StudentCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *StudentCreate) SetNillableCreatedAt(v *time.Time) *StudentCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *StudentCreate) SetUpdatedAt(v time.Time) *StudentCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *StudentCreate) SetNillableUpdatedAt(v *time.Time) *StudentCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *StudentCreate) SetID(v uuid.UUID) *StudentCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *StudentCreate) SetNillableID(v *uuid.UUID) *StudentCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddSubjectIDs adds the "subjects" edge to the SubjectEntry entity by IDs.
func (_c *StudentCreate) AddSubjectIDs(ids ...uuid.UUID) *StudentCreate {
	_c.mutation.AddSubjectIDs(ids...)
	return _c
}

// AddSubjects adds the "subjects" edges to the SubjectEntry entity.
func (_c *StudentCreate) AddSubjects(v ...*SubjectEntry) *StudentCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddSubjectIDs(ids...)
}

// AddGradeIDs adds the "grades" edge to the GradeReport entity by IDs.
func (_c *StudentCreate) AddGradeIDs(ids ...uuid.UUID) *StudentCreate {
	_c.mutation.AddGradeIDs(ids...)
	return _c
}

// AddGrades adds the "grades" edges to the GradeReport entity.
func (_c *StudentCreate) AddGrades(v ...*GradeReport) *StudentCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddGradeIDs(ids...)
}

// Mutation returns the StudentMutation object of the builder.
func (_c *StudentCreate) Mutation() *StudentMutation {
	return _c.mutation
}

// Save creates the Student in the database.
func (_c *StudentCreate) Save(ctx context.Context) (*Student, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *StudentCreate) SaveX(ctx context.Context) *Student {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StudentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StudentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *StudentCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := student.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := student.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := student.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *StudentCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Student.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := student.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Student.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Student.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Student.updated_at"`)}
	}
	return nil
}

func (_c *StudentCreate) sqlSave(ctx context.Context) (*Student, error) {
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

func (_c *StudentCreate) createSpec() (*Student, *sqlgraph.CreateSpec) {
	var (
		_node = &Student{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(student.Table, sqlgraph.NewFieldSpec(student.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.StudentNo(); ok {
		_spec.SetField(student.FieldStudentNo, field.TypeString, value)
		_node.StudentNo = &value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(student.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Program(); ok {
		_spec.SetField(student.FieldProgram, field.TypeString, value)
		_node.Program = value
	}
	if value, ok := _c.mutation.YearLevel(); ok {
		_spec.SetField(student.FieldYearLevel, field.TypeString, value)
		_node.YearLevel = value
	}
	if value, ok := _c.mutation.Section(); ok {
		_spec.SetField(student.FieldSection, field.TypeString, value)
		_node.Section = value
	}
	if value, ok := _c.mutation.Semester(); ok {
		_spec.SetField(student.FieldSemester, field.TypeString, value)
		_node.Semester = value
	}
	if value, ok := _c.mutation.SchoolYear(); ok {
		_spec.SetField(student.FieldSchoolYear, field.TypeString, value)
		_node.SchoolYear = value
	}
	if value, ok := _c.mutation.Adviser(); ok {
		_spec.SetField(student.FieldAdviser, field.TypeString, value)
		_node.Adviser = value
	}
	if value, ok := _c.mutation.RecordText(); ok {
		_spec.SetField(student.FieldRecordText, field.TypeString, value)
		_node.RecordText = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(student.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(student.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.SubjectsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   student.SubjectsTable,
			Columns: []string{student.SubjectsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(subjectentry.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.GradesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   student.GradesTable,
			Columns: []string{student.GradesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(gradereport.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// StudentCreateBulk is the builder for creating many Student entities in bulk.
type StudentCreateBulk struct {
	config
	err      error
	builders []*StudentCreate
}

// Save creates the Student entities in the database.
func (_c *StudentCreateBulk) Save(ctx context.Context) ([]*Student, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Student, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StudentMutation)
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
func (_c *StudentCreateBulk) SaveX(ctx context.Context) []*Student {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StudentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StudentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

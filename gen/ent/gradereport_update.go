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
	"github.com/priya-sndrs/InstSys-CaseStudy-sub000/gen/ent/gradeentry"
	"github.com/priya-sndrs/InstSys-CaseStudy-sub000/gen/ent/gradereport"
	"github.com/priya-sndrs/InstSys-CaseStudy-sub000/gen/ent/predicate"
	"github.com/priya-sndrs/InstSys-CaseStudy-sub000/gen/ent/student"
)

// GradeReportUpdate is the builder for updating GradeReport entities.
type GradeReportUpdate struct {
	config
	hooks    []Hook
	mutation *GradeReportMutation
}

// Where appends a list predicates to the GradeReportUpdate builder.
func (_u *GradeReportUpdate) Where(ps ...predicate.GradeReport) *GradeReportUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStudentID sets the "student_id" field.
func (_u *GradeReportUpdate) SetStudentID(v uuid.UUID) *GradeReportUpdate {
	_u.mutation.SetStudentID(v)
	return _u
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (_u *GradeReportUpdate) SetNillableStudentID(v *uuid.UUID) *GradeReportUpdate {
	if v != nil {
		_u.SetStudentID(*v)
	}
	return _u
}

// SetSemester sets the "semester" field.
func (_u *GradeReportUpdate) SetSemester(v string) *GradeReportUpdate {
	_u.mutation.SetSemester(v)
	return _u
}

// SetNillableSemester sets the "semester" field if the given value is not nil.
func (_u *GradeReportUpdate) SetNillableSemester(v *string) *GradeReportUpdate {
	if v != nil {
		_u.SetSemester(*v)
	}
	return _u
}

// ClearSemester clears the value of the "semester" field.
func (_u *GradeReportUpdate) ClearSemester() *GradeReportUpdate {
	_u.mutation.ClearSemester()
	return _u
}

// SetSchoolYear sets the "school_year" field.
func (_u *GradeReportUpdate) SetSchoolYear(v string) *GradeReportUpdate {
	_u.mutation.SetSchoolYear(v)
	return _u
}

// SetNillableSchoolYear sets the "school_year" field if the given value is not nil.
func (_u *GradeReportUpdate) SetNillableSchoolYear(v *string) *GradeReportUpdate {
	if v != nil {
		_u.SetSchoolYear(*v)
	}
	return _u
}

// ClearSchoolYear clears the value of the "school_year" field.
func (_u *GradeReportUpdate) ClearSchoolYear() *GradeReportUpdate {
	_u.mutation.ClearSchoolYear()
	return _u
}

// SetGwa sets the "gwa" field.
func (_u *GradeReportUpdate) SetGwa(v float64) *GradeReportUpdate {
	_u.mutation.ResetGwa()
	_u.mutation.SetGwa(v)
	return _u
}

// SetNillableGwa sets the "gwa" field if the given value is not nil.
func (_u *GradeReportUpdate) SetNillableGwa(v *float64) *GradeReportUpdate {
	if v != nil {
		_u.SetGwa(*v)
	}
	return _u
}

// AddGwa adds value to the "gwa" field.
func (_u *GradeReportUpdate) AddGwa(v float64) *GradeReportUpdate {
	_u.mutation.AddGwa(v)
	return _u
}

// ClearGwa clears the value of the "gwa" field.
func (_u *GradeReportUpdate) ClearGwa() *GradeReportUpdate {
	_u.mutation.ClearGwa()
	return _u
}

// SetRecordText sets the "record_text" field.
func (_u *GradeReportUpdate) SetRecordText(v string) *GradeReportUpdate {
	_u.mutation.SetRecordText(v)
	return _u
}

// SetNillableRecordText sets the "record_text" field if the given value is not nil.
func (_u *GradeReportUpdate) SetNillableRecordText(v *string) *GradeReportUpdate {
	if v != nil {
		_u.SetRecordText(*v)
	}
	return _u
}

// ClearRecordText clears the value of the "record_text" field.
func (_u *GradeReportUpdate) ClearRecordText() *GradeReportUpdate {
	_u.mutation.ClearRecordText()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *GradeReportUpdate) SetCreatedAt(v time.Time) *GradeReportUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *GradeReportUpdate) SetNillableCreatedAt(v *time.Time) *GradeReportUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *GradeReportUpdate) SetUpdatedAt(v time.Time) *GradeReportUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetStudent sets the "student" edge to the Student entity.
func (_u *GradeReportUpdate) SetStudent(v *Student) *GradeReportUpdate {
	return _u.SetStudentID(v.ID)
}

// AddEntryIDs adds the "entries" edge to the GradeEntry entity by IDs.
func (_u *GradeReportUpdate) AddEntryIDs(ids ...uuid.UUID) *GradeReportUpdate {
	_u.mutation.AddEntryIDs(ids...)
	return _u
}

// AddEntries adds the "entries" edges to the GradeEntry entity.
func (_u *GradeReportUpdate) AddEntries(v ...*GradeEntry) *GradeReportUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEntryIDs(ids...)
}

// Mutation returns the GradeReportMutation object of the builder.
func (_u *GradeReportUpdate) Mutation() *GradeReportMutation {
	return _u.mutation
}

// ClearStudent clears the "student" edge to the Student entity.
func (_u *GradeReportUpdate) ClearStudent() *GradeReportUpdate {
	_u.mutation.ClearStudent()
	return _u
}

// ClearEntries clears all "entries" edges to the GradeEntry entity.
func (_u *GradeReportUpdate) ClearEntries() *GradeReportUpdate {
	_u.mutation.ClearEntries()
	return _u
}

// RemoveEntryIDs removes the "entries" edge to GradeEntry entities by IDs.
func (_u *GradeReportUpdate) RemoveEntryIDs(ids ...uuid.UUID) *GradeReportUpdate {
	_u.mutation.RemoveEntryIDs(ids...)
	return _u
}

// RemoveEntries removes "entries" edges to GradeEntry entities.
func (_u *GradeReportUpdate) RemoveEntries(v ...*GradeEntry) *GradeReportUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEntryIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *GradeReportUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GradeReportUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *GradeReportUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GradeReportUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *GradeReportUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := gradereport.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GradeReportUpdate) check() error {
	if _u.mutation.StudentCleared() && len(_u.mutation.StudentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "GradeReport.student"`)
	}
	return nil
}

func (_u *GradeReportUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(gradereport.Table, gradereport.Columns, sqlgraph.NewFieldSpec(gradereport.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Semester(); ok {
		_spec.SetField(gradereport.FieldSemester, field.TypeString, value)
	}
	if _u.mutation.SemesterCleared() {
		_spec.ClearField(gradereport.FieldSemester, field.TypeString)
	}
	if value, ok := _u.mutation.SchoolYear(); ok {
		_spec.SetField(gradereport.FieldSchoolYear, field.TypeString, value)
	}
	if _u.mutation.SchoolYearCleared() {
		_spec.ClearField(gradereport.FieldSchoolYear, field.TypeString)
	}
	if value, ok := _u.mutation.Gwa(); ok {
		_spec.SetField(gradereport.FieldGwa, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedGwa(); ok {
		_spec.AddField(gradereport.FieldGwa, field.TypeFloat64, value)
	}
	if _u.mutation.GwaCleared() {
		_spec.ClearField(gradereport.FieldGwa, field.TypeFloat64)
	}
	if value, ok := _u.mutation.RecordText(); ok {
		_spec.SetField(gradereport.FieldRecordText, field.TypeString, value)
	}
	if _u.mutation.RecordTextCleared() {
		_spec.ClearField(gradereport.FieldRecordText, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(gradereport.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(gradereport.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.StudentCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StudentIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EntriesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEntriesIDs(); len(nodes) > 0 && !_u.mutation.EntriesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EntriesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{gradereport.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// GradeReportUpdateOne is the builder for updating a single GradeReport entity.
type GradeReportUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *GradeReportMutation
}

// SetStudentID sets the "student_id" field.
func (_u *GradeReportUpdateOne) SetStudentID(v uuid.UUID) *GradeReportUpdateOne {
	_u.mutation.SetStudentID(v)
	return _u
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (_u *GradeReportUpdateOne) SetNillableStudentID(v *uuid.UUID) *GradeReportUpdateOne {
	if v != nil {
		_u.SetStudentID(*v)
	}
	return _u
}

// SetSemester sets the "semester" field.
func (_u *GradeReportUpdateOne) SetSemester(v string) *GradeReportUpdateOne {
	_u.mutation.SetSemester(v)
	return _u
}

// SetNillableSemester sets the "semester" field if the given value is not nil.
func (_u *GradeReportUpdateOne) SetNillableSemester(v *string) *GradeReportUpdateOne {
	if v != nil {
		_u.SetSemester(*v)
	}
	return _u
}

// ClearSemester clears the value of the "semester" field.
func (_u *GradeReportUpdateOne) ClearSemester() *GradeReportUpdateOne {
	_u.mutation.ClearSemester()
	return _u
}

// SetSchoolYear sets the "school_year" field.
func (_u *GradeReportUpdateOne) SetSchoolYear(v string) *GradeReportUpdateOne {
	_u.mutation.SetSchoolYear(v)
	return _u
}

// SetNillableSchoolYear sets the "school_year" field if the given value is not nil.
func (_u *GradeReportUpdateOne) SetNillableSchoolYear(v *string) *GradeReportUpdateOne {
	if v != nil {
		_u.SetSchoolYear(*v)
	}
	return _u
}

// ClearSchoolYear clears the value of the "school_year" field.
func (_u *GradeReportUpdateOne) ClearSchoolYear() *GradeReportUpdateOne {
	_u.mutation.ClearSchoolYear()
	return _u
}

// SetGwa sets the "gwa" field.
func (_u *GradeReportUpdateOne) SetGwa(v float64) *GradeReportUpdateOne {
	_u.mutation.ResetGwa()
	_u.mutation.SetGwa(v)
	return _u
}

// SetNillableGwa sets the "gwa" field if the given value is not nil.
func (_u *GradeReportUpdateOne) SetNillableGwa(v *float64) *GradeReportUpdateOne {
	if v != nil {
		_u.SetGwa(*v)
	}
	return _u
}

// AddGwa adds value to the "gwa" field.
func (_u *GradeReportUpdateOne) AddGwa(v float64) *GradeReportUpdateOne {
	_u.mutation.AddGwa(v)
	return _u
}

// ClearGwa clears the value of the "gwa" field.
func (_u *GradeReportUpdateOne) ClearGwa() *GradeReportUpdateOne {
	_u.mutation.ClearGwa()
	return _u
}

// SetRecordText sets the "record_text" field.
func (_u *GradeReportUpdateOne) SetRecordText(v string) *GradeReportUpdateOne {
	_u.mutation.SetRecordText(v)
	return _u
}

// SetNillableRecordText sets the "record_text" field if the given value is not nil.
func (_u *GradeReportUpdateOne) SetNillableRecordText(v *string) *GradeReportUpdateOne {
	if v != nil {
		_u.SetRecordText(*v)
	}
	return _u
}

// ClearRecordText clears the value of the "record_text" field.
func (_u *GradeReportUpdateOne) ClearRecordText() *GradeReportUpdateOne {
	_u.mutation.ClearRecordText()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *GradeReportUpdateOne) SetCreatedAt(v time.Time) *GradeReportUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *GradeReportUpdateOne) SetNillableCreatedAt(v *time.Time) *GradeReportUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *GradeReportUpdateOne) SetUpdatedAt(v time.Time) *GradeReportUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetStudent sets the "student" edge to the Student entity.
func (_u *GradeReportUpdateOne) SetStudent(v *Student) *GradeReportUpdateOne {
	return _u.SetStudentID(v.ID)
}

// AddEntryIDs adds the "entries" edge to the GradeEntry entity by IDs.
func (_u *GradeReportUpdateOne) AddEntryIDs(ids ...uuid.UUID) *GradeReportUpdateOne {
	_u.mutation.AddEntryIDs(ids...)
	return _u
}

// AddEntries adds the "entries" edges to the GradeEntry entity.
func (_u *GradeReportUpdateOne) AddEntries(v ...*GradeEntry) *GradeReportUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEntryIDs(ids...)
}

// Mutation returns the GradeReportMutation object of the builder.
func (_u *GradeReportUpdateOne) Mutation() *GradeReportMutation {
	return _u.mutation
}

// ClearStudent clears the "student" edge to the Student entity.
func (_u *GradeReportUpdateOne) ClearStudent() *GradeReportUpdateOne {
	_u.mutation.ClearStudent()
	return _u
}

// ClearEntries clears all "entries" edges to the GradeEntry entity.
func (_u *GradeReportUpdateOne) ClearEntries() *GradeReportUpdateOne {
	_u.mutation.ClearEntries()
	return _u
}

// RemoveEntryIDs removes the "entries" edge to GradeEntry entities by IDs.
func (_u *GradeReportUpdateOne) RemoveEntryIDs(ids ...uuid.UUID) *GradeReportUpdateOne {
	_u.mutation.RemoveEntryIDs(ids...)
	return _u
}

// RemoveEntries removes "entries" edges to GradeEntry entities.
func (_u *GradeReportUpdateOne) RemoveEntries(v ...*GradeEntry) *GradeReportUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEntryIDs(ids...)
}

// Where appends a list predicates to the GradeReportUpdate builder.
func (_u *GradeReportUpdateOne) Where(ps ...predicate.GradeReport) *GradeReportUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *GradeReportUpdateOne) Select(field string, fields ...string) *GradeReportUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated GradeReport entity.
func (_u *GradeReportUpdateOne) Save(ctx context.Context) (*GradeReport, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GradeReportUpdateOne) SaveX(ctx context.Context) *GradeReport {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *GradeReportUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GradeReportUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *GradeReportUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := gradereport.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GradeReportUpdateOne) check() error {
	if _u.mutation.StudentCleared() && len(_u.mutation.StudentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "GradeReport.student"`)
	}
	return nil
}

func (_u *GradeReportUpdateOne) sqlSave(ctx context.Context) (_node *GradeReport, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(gradereport.Table, gradereport.Columns, sqlgraph.NewFieldSpec(gradereport.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "GradeReport.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, gradereport.FieldID)
		for _, f := range fields {
			if !gradereport.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != gradereport.FieldID {
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
	if value, ok := _u.mutation.Semester(); ok {
		_spec.SetField(gradereport.FieldSemester, field.TypeString, value)
	}
	if _u.mutation.SemesterCleared() {
		_spec.ClearField(gradereport.FieldSemester, field.TypeString)
	}
	if value, ok := _u.mutation.SchoolYear(); ok {
		_spec.SetField(gradereport.FieldSchoolYear, field.TypeString, value)
	}
	if _u.mutation.SchoolYearCleared() {
		_spec.ClearField(gradereport.FieldSchoolYear, field.TypeString)
	}
	if value, ok := _u.mutation.Gwa(); ok {
		_spec.SetField(gradereport.FieldGwa, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedGwa(); ok {
		_spec.AddField(gradereport.FieldGwa, field.TypeFloat64, value)
	}
	if _u.mutation.GwaCleared() {
		_spec.ClearField(gradereport.FieldGwa, field.TypeFloat64)
	}
	if value, ok := _u.mutation.RecordText(); ok {
		_spec.SetField(gradereport.FieldRecordText, field.TypeString, value)
	}
	if _u.mutation.RecordTextCleared() {
		_spec.ClearField(gradereport.FieldRecordText, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(gradereport.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(gradereport.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.StudentCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StudentIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EntriesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEntriesIDs(); len(nodes) > 0 && !_u.mutation.EntriesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EntriesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &GradeReport{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{gradereport.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

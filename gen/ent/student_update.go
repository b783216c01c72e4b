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
	"github.com/priya-sndrs/InstSys-CaseStudy-sub000/gen/ent/gradereport"
	"github.com/priya-sndrs/InstSys-CaseStudy-sub000/gen/ent/predicate"
	"github.com/priya-sndrs/InstSys-CaseStudy-sub000/gen/ent/student"
	"github.com/priya-sndrs/InstSys-CaseStudy-sub000/gen/ent/subjectentry"
)

// StudentUpdate is the builder for updating Student entities.
type StudentUpdate struct {
	config
	hooks    []Hook
	mutation *StudentMutation
}

// Where appends a list predicates to the StudentUpdate builder.
func (_u *StudentUpdate) Where(ps ...predicate.Student) *StudentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStudentNo sets the "student_no" field.
func (_u *StudentUpdate) SetStudentNo(v string) *StudentUpdate {
	_u.mutation.SetStudentNo(v)
	return _u
}

// SetNillableStudentNo sets the "student_no" field if the given value is not nil.
func (_u *StudentUpdate) SetNillableStudentNo(v *string) *StudentUpdate {
	if v != nil {
		_u.SetStudentNo(*v)
	}
	return _u
}

// ClearStudentNo clears the value of the "student_no" field.
func (_u *StudentUpdate) ClearStudentNo() *StudentUpdate {
	_u.mutation.ClearStudentNo()
	return _u
}

// SetName sets the "name" field.
func (_u *StudentUpdate) SetName(v string) *StudentUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *StudentUpdate) SetNillableName(v *string) *StudentUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetProgram sets the "program" field.
func (_u *StudentUpdate) SetProgram(v string) *StudentUpdate {
	_u.mutation.SetProgram(v)
	return _u
}

// SetNillableProgram sets the "program" field if the given value is not nil.
func (_u *StudentUpdate) SetNillableProgram(v *string) *StudentUpdate {
	if v != nil {
		_u.SetProgram(*v)
	}
	return _u
}

// ClearProgram clears the value of the "program" field.
func (_u *StudentUpdate) ClearProgram() *StudentUpdate {
	_u.mutation.ClearProgram()
	return _u
}

// SetYearLevel sets the "year_level" field.
func (_u *StudentUpdate) SetYearLevel(v string) *StudentUpdate {
	_u.mutation.SetYearLevel(v)
	return _u
}

// SetNillableYearLevel sets the "year_level" field if the given value is not nil.
func (_u *StudentUpdate) SetNillableYearLevel(v *string) *StudentUpdate {
	if v != nil {
		_u.SetYearLevel(*v)
	}
	return _u
}

// ClearYearLevel clears the value of the "year_level" field.
func (_u *StudentUpdate) ClearYearLevel() *StudentUpdate {
	_u.mutation.ClearYearLevel()
	return _u
}

// SetSection sets the "section" field.
func (_u *StudentUpdate) SetSection(v string) *StudentUpdate {
	_u.mutation.SetSection(v)
	return _u
}

// SetNillableSection sets the "section" field if the given value is not nil.
func (_u *StudentUpdate) SetNillableSection(v *string) *StudentUpdate {
	if v != nil {
		_u.SetSection(*v)
	}
	return _u
}

// ClearSection clears the value of the "section" field.
func (_u *StudentUpdate) ClearSection() *StudentUpdate {
	_u.mutation.ClearSection()
	return _u
}

// SetSemester sets the "semester" field.
func (_u *StudentUpdate) SetSemester(v string) *StudentUpdate {
	_u.mutation.SetSemester(v)
	return _u
}

// SetNillableSemester sets the "semester" field if the given value is not nil.
func (_u *StudentUpdate) SetNillableSemester(v *string) *StudentUpdate {
	if v != nil {
		_u.SetSemester(*v)
	}
	return _u
}

// ClearSemester clears the value of the "semester" field.
func (_u *StudentUpdate) ClearSemester() *StudentUpdate {
	_u.mutation.ClearSemester()
	return _u
}

// SetSchoolYear sets the "school_year" field.
func (_u *StudentUpdate) SetSchoolYear(v string) *StudentUpdate {
	_u.mutation.SetSchoolYear(v)
	return _u
}

// SetNillableSchoolYear sets the "school_year" field if the given value is not nil.
func (_u *StudentUpdate) SetNillableSchoolYear(v *string) *StudentUpdate {
	if v != nil {
		_u.SetSchoolYear(*v)
	}
	return _u
}

// ClearSchoolYear clears the value of the "school_year" field.
func (_u *StudentUpdate) ClearSchoolYear() *StudentUpdate {
	_u.mutation.ClearSchoolYear()
	return _u
}

// SetAdviser sets the "adviser" field.
func (_u *StudentUpdate) SetAdviser(v string) *StudentUpdate {
	_u.mutation.SetAdviser(v)
	return _u
}

// SetNillableAdviser sets the "adviser" field if the given value is not nil.
func (_u *StudentUpdate) SetNillableAdviser(v *string) *StudentUpdate {
	if v != nil {
		_u.SetAdviser(*v)
	}
	return _u
}

// ClearAdviser clears the value of the "adviser" field.
func (_u *StudentUpdate) ClearAdviser() *StudentUpdate {
	_u.mutation.ClearAdviser()
	return _u
}

// SetRecordText sets the "record_text" field.
func (_u *StudentUpdate) SetRecordText(v string) *StudentUpdate {
	_u.mutation.SetRecordText(v)
	return _u
}

// SetNillableRecordText sets the "record_text" field if the given value is not nil.
func (_u *StudentUpdate) SetNillableRecordText(v *string) *StudentUpdate {
	if v != nil {
		_u.SetRecordText(*v)
	}
	return _u
}

// ClearRecordText clears the value of the "record_text" field.
func (_u *StudentUpdate) ClearRecordText() *StudentUpdate {
	_u.mutation.ClearRecordText()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *StudentUpdate) SetCreatedAt(v time.Time) *StudentUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *StudentUpdate) SetNillableCreatedAt(v *time.Time) *StudentUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *StudentUpdate) SetUpdatedAt(v time.Time) *StudentUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddSubjectIDs adds the "subjects" edge to the SubjectEntry entity by IDs.
func (_u *StudentUpdate) AddSubjectIDs(ids ...uuid.UUID) *StudentUpdate {
	_u.mutation.AddSubjectIDs(ids...)
	return _u
}

// AddSubjects adds the "subjects" edges to the SubjectEntry entity.
func (_u *StudentUpdate) AddSubjects(v ...*SubjectEntry) *StudentUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSubjectIDs(ids...)
}

// AddGradeIDs adds the "grades" edge to the GradeReport entity by IDs.
func (_u *StudentUpdate) AddGradeIDs(ids ...uuid.UUID) *StudentUpdate {
	_u.mutation.AddGradeIDs(ids...)
	return _u
}

// AddGrades adds the "grades" edges to the GradeReport entity.
func (_u *StudentUpdate) AddGrades(v ...*GradeReport) *StudentUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddGradeIDs(ids...)
}

// Mutation returns the StudentMutation object of the builder.
func (_u *StudentUpdate) Mutation() *StudentMutation {
	return _u.mutation
}

// ClearSubjects clears all "subjects" edges to the SubjectEntry entity.
func (_u *StudentUpdate) ClearSubjects() *StudentUpdate {
	_u.mutation.ClearSubjects()
	return _u
}

// RemoveSubjectIDs removes the "subjects" edge to SubjectEntry entities by IDs.
func (_u *StudentUpdate) RemoveSubjectIDs(ids ...uuid.UUID) *StudentUpdate {
	_u.mutation.RemoveSubjectIDs(ids...)
	return _u
}

// RemoveSubjects removes "subjects" edges to SubjectEntry entities.
func (_u *StudentUpdate) RemoveSubjects(v ...*SubjectEntry) *StudentUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSubjectIDs(ids...)
}

// ClearGrades clears all "grades" edges to the GradeReport entity.
func (_u *StudentUpdate) ClearGrades() *StudentUpdate {
	_u.mutation.ClearGrades()
	return _u
}

// RemoveGradeIDs removes the "grades" edge to GradeReport entities by IDs.
func (_u *StudentUpdate) RemoveGradeIDs(ids ...uuid.UUID) *StudentUpdate {
	_u.mutation.RemoveGradeIDs(ids...)
	return _u
}

// RemoveGrades removes "grades" edges to GradeReport entities.
func (_u *StudentUpdate) RemoveGrades(v ...*GradeReport) *StudentUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveGradeIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *StudentUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StudentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *StudentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StudentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *StudentUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := student.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StudentUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := student.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Student.name": %w`, err)}
		}
	}
	return nil
}

func (_u *StudentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(student.Table, student.Columns, sqlgraph.NewFieldSpec(student.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.StudentNo(); ok {
		_spec.SetField(student.FieldStudentNo, field.TypeString, value)
	}
	if _u.mutation.StudentNoCleared() {
		_spec.ClearField(student.FieldStudentNo, field.TypeString)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(student.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Program(); ok {
		_spec.SetField(student.FieldProgram, field.TypeString, value)
	}
	if _u.mutation.ProgramCleared() {
		_spec.ClearField(student.FieldProgram, field.TypeString)
	}
	if value, ok := _u.mutation.YearLevel(); ok {
		_spec.SetField(student.FieldYearLevel, field.TypeString, value)
	}
	if _u.mutation.YearLevelCleared() {
		_spec.ClearField(student.FieldYearLevel, field.TypeString)
	}
	if value, ok := _u.mutation.Section(); ok {
		_spec.SetField(student.FieldSection, field.TypeString, value)
	}
	if _u.mutation.SectionCleared() {
		_spec.ClearField(student.FieldSection, field.TypeString)
	}
	if value, ok := _u.mutation.Semester(); ok {
		_spec.SetField(student.FieldSemester, field.TypeString, value)
	}
	if _u.mutation.SemesterCleared() {
		_spec.ClearField(student.FieldSemester, field.TypeString)
	}
	if value, ok := _u.mutation.SchoolYear(); ok {
		_spec.SetField(student.FieldSchoolYear, field.TypeString, value)
	}
	if _u.mutation.SchoolYearCleared() {
		_spec.ClearField(student.FieldSchoolYear, field.TypeString)
	}
	if value, ok := _u.mutation.Adviser(); ok {
		_spec.SetField(student.FieldAdviser, field.TypeString, value)
	}
	if _u.mutation.AdviserCleared() {
		_spec.ClearField(student.FieldAdviser, field.TypeString)
	}
	if value, ok := _u.mutation.RecordText(); ok {
		_spec.SetField(student.FieldRecordText, field.TypeString, value)
	}
	if _u.mutation.RecordTextCleared() {
		_spec.ClearField(student.FieldRecordText, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(student.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(student.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.SubjectsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSubjectsIDs(); len(nodes) > 0 && !_u.mutation.SubjectsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SubjectsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.GradesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedGradesIDs(); len(nodes) > 0 && !_u.mutation.GradesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.GradesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{student.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// StudentUpdateOne is the builder for updating a single Student entity.
type StudentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StudentMutation
}

// SetStudentNo sets the "student_no" field.
func (_u *StudentUpdateOne) SetStudentNo(v string) *StudentUpdateOne {
	_u.mutation.SetStudentNo(v)
	return _u
}

// SetNillableStudentNo sets the "student_no" field if the given value is not nil.
func (_u *StudentUpdateOne) SetNillableStudentNo(v *string) *StudentUpdateOne {
	if v != nil {
		_u.SetStudentNo(*v)
	}
	return _u
}

// ClearStudentNo clears the value of the "student_no" field.
func (_u *StudentUpdateOne) ClearStudentNo() *StudentUpdateOne {
	_u.mutation.ClearStudentNo()
	return _u
}

// SetName sets the "name" field.
func (_u *StudentUpdateOne) SetName(v string) *StudentUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *StudentUpdateOne) SetNillableName(v *string) *StudentUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetProgram sets the "program" field.
func (_u *StudentUpdateOne) SetProgram(v string) *StudentUpdateOne {
	_u.mutation.SetProgram(v)
	return _u
}

// SetNillableProgram sets the "program" field if the given value is not nil.
func (_u *StudentUpdateOne) SetNillableProgram(v *string) *StudentUpdateOne {
	if v != nil {
		_u.SetProgram(*v)
	}
	return _u
}

// ClearProgram clears the value of the "program" field.
func (_u *StudentUpdateOne) ClearProgram() *StudentUpdateOne {
	_u.mutation.ClearProgram()
	return _u
}

// SetYearLevel sets the "year_level" field.
func (_u *StudentUpdateOne) SetYearLevel(v string) *StudentUpdateOne {
	_u.mutation.SetYearLevel(v)
	return _u
}

// SetNillableYearLevel sets the "year_level" field if the given value is not nil.
func (_u *StudentUpdateOne) SetNillableYearLevel(v *string) *StudentUpdateOne {
	if v != nil {
		_u.SetYearLevel(*v)
	}
	return _u
}

// ClearYearLevel clears the value of the "year_level" field.
func (_u *StudentUpdateOne) ClearYearLevel() *StudentUpdateOne {
	_u.mutation.ClearYearLevel()
	return _u
}

// SetSection sets the "section" field.
func (_u *StudentUpdateOne) SetSection(v string) *StudentUpdateOne {
	_u.mutation.SetSection(v)
	return _u
}

// SetNillableSection sets the "section" field if the given value is not nil.
func (_u *StudentUpdateOne) SetNillableSection(v *string) *StudentUpdateOne {
	if v != nil {
		_u.SetSection(*v)
	}
	return _u
}

// ClearSection clears the value of the "section" field.
func (_u *StudentUpdateOne) ClearSection() *StudentUpdateOne {
	_u.mutation.ClearSection()
	return _u
}

// SetSemester sets the "semester" field.
func (_u *StudentUpdateOne) SetSemester(v string) *StudentUpdateOne {
	_u.mutation.SetSemester(v)
	return _u
}

// SetNillableSemester sets the "semester" field if the given value is not nil.
func (_u *StudentUpdateOne) SetNillableSemester(v *string) *StudentUpdateOne {
	if v != nil {
		_u.SetSemester(*v)
	}
	return _u
}

// ClearSemester clears the value of the "semester" field.
func (_u *StudentUpdateOne) ClearSemester() *StudentUpdateOne {
	_u.mutation.ClearSemester()
	return _u
}

// SetSchoolYear sets the "school_year" field.
func (_u *StudentUpdateOne) SetSchoolYear(v string) *StudentUpdateOne {
	_u.mutation.SetSchoolYear(v)
	return _u
}

// SetNillableSchoolYear sets the "school_year" field if the given value is not nil.
func (_u *StudentUpdateOne) SetNillableSchoolYear(v *string) *StudentUpdateOne {
	if v != nil {
		_u.SetSchoolYear(*v)
	}
	return _u
}

// ClearSchoolYear clears the value of the "school_year" field.
func (_u *StudentUpdateOne) ClearSchoolYear() *StudentUpdateOne {
	_u.mutation.ClearSchoolYear()
	return _u
}

// SetAdviser sets the "adviser" field.
func (_u *StudentUpdateOne) SetAdviser(v string) *StudentUpdateOne {
	_u.mutation.SetAdviser(v)
	return _u
}

// SetNillableAdviser sets the "adviser" field if the given value is not nil.
func (_u *StudentUpdateOne) SetNillableAdviser(v *string) *StudentUpdateOne {
	if v != nil {
		_u.SetAdviser(*v)
	}
	return _u
}

// ClearAdviser clears the value of the "adviser" field.
func (_u *StudentUpdateOne) ClearAdviser() *StudentUpdateOne {
	_u.mutation.ClearAdviser()
	return _u
}

// SetRecordText sets the "record_text" field.
func (_u *StudentUpdateOne) SetRecordText(v string) *StudentUpdateOne {
	_u.mutation.SetRecordText(v)
	return _u
}

// SetNillableRecordText sets the "record_text" field if the given value is not nil.
func (_u *StudentUpdateOne) SetNillableRecordText(v *string) *StudentUpdateOne {
	if v != nil {
		_u.SetRecordText(*v)
	}
	return _u
}

// ClearRecordText clears the value of the "record_text" field.
func (_u *StudentUpdateOne) ClearRecordText() *StudentUpdateOne {
	_u.mutation.ClearRecordText()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *StudentUpdateOne) SetCreatedAt(v time.Time) *StudentUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *StudentUpdateOne) SetNillableCreatedAt(v *time.Time) *StudentUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *StudentUpdateOne) SetUpdatedAt(v time.Time) *StudentUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddSubjectIDs adds the "subjects" edge to the SubjectEntry entity by IDs.
func (_u *StudentUpdateOne) AddSubjectIDs(ids ...uuid.UUID) *StudentUpdateOne {
	_u.mutation.AddSubjectIDs(ids...)
	return _u
}

// AddSubjects adds the "subjects" edges to the SubjectEntry entity.
func (_u *StudentUpdateOne) AddSubjects(v ...*SubjectEntry) *StudentUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSubjectIDs(ids...)
}

// AddGradeIDs adds the "grades" edge to the GradeReport entity by IDs.
func (_u *StudentUpdateOne) AddGradeIDs(ids ...uuid.UUID) *StudentUpdateOne {
	_u.mutation.AddGradeIDs(ids...)
	return _u
}

// AddGrades adds the "grades" edges to the GradeReport entity.
func (_u *StudentUpdateOne) AddGrades(v ...*GradeReport) *StudentUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddGradeIDs(ids...)
}

// Mutation returns the StudentMutation object of the builder.
func (_u *StudentUpdateOne) Mutation() *StudentMutation {
	return _u.mutation
}

// ClearSubjects clears all "subjects" edges to the SubjectEntry entity.
func (_u *StudentUpdateOne) ClearSubjects() *StudentUpdateOne {
	_u.mutation.ClearSubjects()
	return _u
}

// RemoveSubjectIDs removes the "subjects" edge to SubjectEntry entities by IDs.
func (_u *StudentUpdateOne) RemoveSubjectIDs(ids ...uuid.UUID) *StudentUpdateOne {
	_u.mutation.RemoveSubjectIDs(ids...)
	return _u
}

// RemoveSubjects removes "subjects" edges to SubjectEntry entities.
func (_u *StudentUpdateOne) RemoveSubjects(v ...*SubjectEntry) *StudentUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSubjectIDs(ids...)
}

// ClearGrades clears all "grades" edges to the GradeReport entity.
func (_u *StudentUpdateOne) ClearGrades() *StudentUpdateOne {
	_u.mutation.ClearGrades()
	return _u
}

// RemoveGradeIDs removes the "grades" edge to GradeReport entities by IDs.
func (_u *StudentUpdateOne) RemoveGradeIDs(ids ...uuid.UUID) *StudentUpdateOne {
	_u.mutation.RemoveGradeIDs(ids...)
	return _u
}

// RemoveGrades removes "grades" edges to GradeReport entities.
func (_u *StudentUpdateOne) RemoveGrades(v ...*GradeReport) *StudentUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveGradeIDs(ids...)
}

// Where appends a list predicates to the StudentUpdate builder.
func (_u *StudentUpdateOne) Where(ps ...predicate.Student) *StudentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *StudentUpdateOne) Select(field string, fields ...string) *StudentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Student entity.
func (_u *StudentUpdateOne) Save(ctx context.Context) (*Student, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StudentUpdateOne) SaveX(ctx context.Context) *Student {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *StudentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StudentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *StudentUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := student.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StudentUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := student.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Student.name": %w`, err)}
		}
	}
	return nil
}

func (_u *StudentUpdateOne) sqlSave(ctx context.Context) (_node *Student, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(student.Table, student.Columns, sqlgraph.NewFieldSpec(student.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Student.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, student.FieldID)
		for _, f := range fields {
			if !student.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != student.FieldID {
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
	if value, ok := _u.mutation.StudentNo(); ok {
		_spec.SetField(student.FieldStudentNo, field.TypeString, value)
	}
	if _u.mutation.StudentNoCleared() {
		_spec.ClearField(student.FieldStudentNo, field.TypeString)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(student.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Program(); ok {
		_spec.SetField(student.FieldProgram, field.TypeString, value)
	}
	if _u.mutation.ProgramCleared() {
		_spec.ClearField(student.FieldProgram, field.TypeString)
	}
	if value, ok := _u.mutation.YearLevel(); ok {
		_spec.SetField(student.FieldYearLevel, field.TypeString, value)
	}
	if _u.mutation.YearLevelCleared() {
		_spec.ClearField(student.FieldYearLevel, field.TypeString)
	}
	if value, ok := _u.mutation.Section(); ok {
		_spec.SetField(student.FieldSection, field.TypeString, value)
	}
	if _u.mutation.SectionCleared() {
		_spec.ClearField(student.FieldSection, field.TypeString)
	}
	if value, ok := _u.mutation.Semester(); ok {
		_spec.SetField(student.FieldSemester, field.TypeString, value)
	}
	if _u.mutation.SemesterCleared() {
		_spec.ClearField(student.FieldSemester, field.TypeString)
	}
	if value, ok := _u.mutation.SchoolYear(); ok {
		_spec.SetField(student.FieldSchoolYear, field.TypeString, value)
	}
	if _u.mutation.SchoolYearCleared() {
		_spec.ClearField(student.FieldSchoolYear, field.TypeString)
	}
	if value, ok := _u.mutation.Adviser(); ok {
		_spec.SetField(student.FieldAdviser, field.TypeString, value)
	}
	if _u.mutation.AdviserCleared() {
		_spec.ClearField(student.FieldAdviser, field.TypeString)
	}
	if value, ok := _u.mutation.RecordText(); ok {
		_spec.SetField(student.FieldRecordText, field.TypeString, value)
	}
	if _u.mutation.RecordTextCleared() {
		_spec.ClearField(student.FieldRecordText, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(student.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(student.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.SubjectsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSubjectsIDs(); len(nodes) > 0 && !_u.mutation.SubjectsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SubjectsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.GradesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedGradesIDs(); len(nodes) > 0 && !_u.mutation.GradesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.GradesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Student{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{student.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

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
)

// GradeEntryUpdate is the builder for updating GradeEntry entities.
type GradeEntryUpdate struct {
	config
	hooks    []Hook
	mutation *GradeEntryMutation
}

// Where appends a list predicates to the GradeEntryUpdate builder.
func (_u *GradeEntryUpdate) Where(ps ...predicate.GradeEntry) *GradeEntryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetReportID sets the "report_id" field.
func (_u *GradeEntryUpdate) SetReportID(v uuid.UUID) *GradeEntryUpdate {
	_u.mutation.SetReportID(v)
	return _u
}

// SetNillableReportID sets the "report_id" field if the given value is not nil.
func (_u *GradeEntryUpdate) SetNillableReportID(v *uuid.UUID) *GradeEntryUpdate {
	if v != nil {
		_u.SetReportID(*v)
	}
	return _u
}

// SetCode sets the "code" field.
func (_u *GradeEntryUpdate) SetCode(v string) *GradeEntryUpdate {
	_u.mutation.SetCode(v)
	return _u
}

// SetNillableCode sets the "code" field if the given value is not nil.
func (_u *GradeEntryUpdate) SetNillableCode(v *string) *GradeEntryUpdate {
	if v != nil {
		_u.SetCode(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *GradeEntryUpdate) SetTitle(v string) *GradeEntryUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *GradeEntryUpdate) SetNillableTitle(v *string) *GradeEntryUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// ClearTitle clears the value of the "title" field.
func (_u *GradeEntryUpdate) ClearTitle() *GradeEntryUpdate {
	_u.mutation.ClearTitle()
	return _u
}

// SetUnits sets the "units" field.
func (_u *GradeEntryUpdate) SetUnits(v float64) *GradeEntryUpdate {
	_u.mutation.ResetUnits()
	_u.mutation.SetUnits(v)
	return _u
}

// SetNillableUnits sets the "units" field if the given value is not nil.
func (_u *GradeEntryUpdate) SetNillableUnits(v *float64) *GradeEntryUpdate {
	if v != nil {
		_u.SetUnits(*v)
	}
	return _u
}

// AddUnits adds value to the "units" field.
func (_u *GradeEntryUpdate) AddUnits(v float64) *GradeEntryUpdate {
	_u.mutation.AddUnits(v)
	return _u
}

// ClearUnits clears the value of the "units" field.
func (_u *GradeEntryUpdate) ClearUnits() *GradeEntryUpdate {
	_u.mutation.ClearUnits()
	return _u
}

// SetFinalGrade sets the "final_grade" field.
func (_u *GradeEntryUpdate) SetFinalGrade(v string) *GradeEntryUpdate {
	_u.mutation.SetFinalGrade(v)
	return _u
}

// SetNillableFinalGrade sets the "final_grade" field if the given value is not nil.
func (_u *GradeEntryUpdate) SetNillableFinalGrade(v *string) *GradeEntryUpdate {
	if v != nil {
		_u.SetFinalGrade(*v)
	}
	return _u
}

// ClearFinalGrade clears the value of the "final_grade" field.
func (_u *GradeEntryUpdate) ClearFinalGrade() *GradeEntryUpdate {
	_u.mutation.ClearFinalGrade()
	return _u
}

// SetRemarks sets the "remarks" field.
func (_u *GradeEntryUpdate) SetRemarks(v string) *GradeEntryUpdate {
	_u.mutation.SetRemarks(v)
	return _u
}

// SetNillableRemarks sets the "remarks" field if the given value is not nil.
func (_u *GradeEntryUpdate) SetNillableRemarks(v *string) *GradeEntryUpdate {
	if v != nil {
		_u.SetRemarks(*v)
	}
	return _u
}

// ClearRemarks clears the value of the "remarks" field.
func (_u *GradeEntryUpdate) ClearRemarks() *GradeEntryUpdate {
	_u.mutation.ClearRemarks()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *GradeEntryUpdate) SetCreatedAt(v time.Time) *GradeEntryUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *GradeEntryUpdate) SetNillableCreatedAt(v *time.Time) *GradeEntryUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetReport sets the "report" edge to the GradeReport entity.
func (_u *GradeEntryUpdate) SetReport(v *GradeReport) *GradeEntryUpdate {
	return _u.SetReportID(v.ID)
}

// Mutation returns the GradeEntryMutation object of the builder.
func (_u *GradeEntryUpdate) Mutation() *GradeEntryMutation {
	return _u.mutation
}

// ClearReport clears the "report" edge to the GradeReport entity.
func (_u *GradeEntryUpdate) ClearReport() *GradeEntryUpdate {
	_u.mutation.ClearReport()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *GradeEntryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GradeEntryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *GradeEntryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GradeEntryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GradeEntryUpdate) check() error {
	if v, ok := _u.mutation.Code(); ok {
		if err := gradeentry.CodeValidator(v); err != nil {
			return &ValidationError{Name: "code", err: fmt.Errorf(`ent: validator failed for field "GradeEntry.code": %w`, err)}
		}
	}
	if _u.mutation.ReportCleared() && len(_u.mutation.ReportIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "GradeEntry.report"`)
	}
	return nil
}

func (_u *GradeEntryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(gradeentry.Table, gradeentry.Columns, sqlgraph.NewFieldSpec(gradeentry.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Code(); ok {
		_spec.SetField(gradeentry.FieldCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(gradeentry.FieldTitle, field.TypeString, value)
	}
	if _u.mutation.TitleCleared() {
		_spec.ClearField(gradeentry.FieldTitle, field.TypeString)
	}
	if value, ok := _u.mutation.Units(); ok {
		_spec.SetField(gradeentry.FieldUnits, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedUnits(); ok {
		_spec.AddField(gradeentry.FieldUnits, field.TypeFloat64, value)
	}
	if _u.mutation.UnitsCleared() {
		_spec.ClearField(gradeentry.FieldUnits, field.TypeFloat64)
	}
	if value, ok := _u.mutation.FinalGrade(); ok {
		_spec.SetField(gradeentry.FieldFinalGrade, field.TypeString, value)
	}
	if _u.mutation.FinalGradeCleared() {
		_spec.ClearField(gradeentry.FieldFinalGrade, field.TypeString)
	}
	if value, ok := _u.mutation.Remarks(); ok {
		_spec.SetField(gradeentry.FieldRemarks, field.TypeString, value)
	}
	if _u.mutation.RemarksCleared() {
		_spec.ClearField(gradeentry.FieldRemarks, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(gradeentry.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.ReportCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ReportIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{gradeentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// GradeEntryUpdateOne is the builder for updating a single GradeEntry entity.
type GradeEntryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *GradeEntryMutation
}

// SetReportID sets the "report_id" field.
func (_u *GradeEntryUpdateOne) SetReportID(v uuid.UUID) *GradeEntryUpdateOne {
	_u.mutation.SetReportID(v)
	return _u
}

// SetNillableReportID sets the "report_id" field if the given value is not nil.
func (_u *GradeEntryUpdateOne) SetNillableReportID(v *uuid.UUID) *GradeEntryUpdateOne {
	if v != nil {
		_u.SetReportID(*v)
	}
	return _u
}

// SetCode sets the "code" field.
func (_u *GradeEntryUpdateOne) SetCode(v string) *GradeEntryUpdateOne {
	_u.mutation.SetCode(v)
	return _u
}

// SetNillableCode sets the "code" field if the given value is not nil.
func (_u *GradeEntryUpdateOne) SetNillableCode(v *string) *GradeEntryUpdateOne {
	if v != nil {
		_u.SetCode(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *GradeEntryUpdateOne) SetTitle(v string) *GradeEntryUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *GradeEntryUpdateOne) SetNillableTitle(v *string) *GradeEntryUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// ClearTitle clears the value of the "title" field.
func (_u *GradeEntryUpdateOne) ClearTitle() *GradeEntryUpdateOne {
	_u.mutation.ClearTitle()
	return _u
}

// SetUnits sets the "units" field.
func (_u *GradeEntryUpdateOne) SetUnits(v float64) *GradeEntryUpdateOne {
	_u.mutation.ResetUnits()
	_u.mutation.SetUnits(v)
	return _u
}

// SetNillableUnits sets the "units" field if the given value is not nil.
func (_u *GradeEntryUpdateOne) SetNillableUnits(v *float64) *GradeEntryUpdateOne {
	if v != nil {
		_u.SetUnits(*v)
	}
	return _u
}

// AddUnits adds value to the "units" field.
func (_u *GradeEntryUpdateOne) AddUnits(v float64) *GradeEntryUpdateOne {
	_u.mutation.AddUnits(v)
	return _u
}

// ClearUnits clears the value of the "units" field.
func (_u *GradeEntryUpdateOne) ClearUnits() *GradeEntryUpdateOne {
	_u.mutation.ClearUnits()
	return _u
}

// SetFinalGrade sets the "final_grade" field.
func (_u *GradeEntryUpdateOne) SetFinalGrade(v string) *GradeEntryUpdateOne {
	_u.mutation.SetFinalGrade(v)
	return _u
}

// SetNillableFinalGrade sets the "final_grade" field if the given value is not nil.
func (_u *GradeEntryUpdateOne) SetNillableFinalGrade(v *string) *GradeEntryUpdateOne {
	if v != nil {
		_u.SetFinalGrade(*v)
	}
	return _u
}

// ClearFinalGrade clears the value of the "final_grade" field.
func (_u *GradeEntryUpdateOne) ClearFinalGrade() *GradeEntryUpdateOne {
	_u.mutation.ClearFinalGrade()
	return _u
}

// SetRemarks sets the "remarks" field.
func (_u *GradeEntryUpdateOne) SetRemarks(v string) *GradeEntryUpdateOne {
	_u.mutation.SetRemarks(v)
	return _u
}

// SetNillableRemarks sets the "remarks" field if the given value is not nil.
func (_u *GradeEntryUpdateOne) SetNillableRemarks(v *string) *GradeEntryUpdateOne {
	if v != nil {
		_u.SetRemarks(*v)
	}
	return _u
}

// ClearRemarks clears the value of the "remarks" field.
func (_u *GradeEntryUpdateOne) ClearRemarks() *GradeEntryUpdateOne {
	_u.mutation.ClearRemarks()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *GradeEntryUpdateOne) SetCreatedAt(v time.Time) *GradeEntryUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *GradeEntryUpdateOne) SetNillableCreatedAt(v *time.Time) *GradeEntryUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetReport sets the "report" edge to the GradeReport entity.
func (_u *GradeEntryUpdateOne) SetReport(v *GradeReport) *GradeEntryUpdateOne {
	return _u.SetReportID(v.ID)
}

// Mutation returns the GradeEntryMutation object of the builder.
func (_u *GradeEntryUpdateOne) Mutation() *GradeEntryMutation {
	return _u.mutation
}

// ClearReport clears the "report" edge to the GradeReport entity.
func (_u *GradeEntryUpdateOne) ClearReport() *GradeEntryUpdateOne {
	_u.mutation.ClearReport()
	return _u
}

// Where appends a list predicates to the GradeEntryUpdate builder.
func (_u *GradeEntryUpdateOne) Where(ps ...predicate.GradeEntry) *GradeEntryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *GradeEntryUpdateOne) Select(field string, fields ...string) *GradeEntryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated GradeEntry entity.
func (_u *GradeEntryUpdateOne) Save(ctx context.Context) (*GradeEntry, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GradeEntryUpdateOne) SaveX(ctx context.Context) *GradeEntry {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *GradeEntryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GradeEntryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GradeEntryUpdateOne) check() error {
	if v, ok := _u.mutation.Code(); ok {
		if err := gradeentry.CodeValidator(v); err != nil {
			return &ValidationError{Name: "code", err: fmt.Errorf(`ent: validator failed for field "GradeEntry.code": %w`, err)}
		}
	}
	if _u.mutation.ReportCleared() && len(_u.mutation.ReportIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "GradeEntry.report"`)
	}
	return nil
}

func (_u *GradeEntryUpdateOne) sqlSave(ctx context.Context) (_node *GradeEntry, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(gradeentry.Table, gradeentry.Columns, sqlgraph.NewFieldSpec(gradeentry.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "GradeEntry.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, gradeentry.FieldID)
		for _, f := range fields {
			if !gradeentry.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != gradeentry.FieldID {
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
		_spec.SetField(gradeentry.FieldCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(gradeentry.FieldTitle, field.TypeString, value)
	}
	if _u.mutation.TitleCleared() {
		_spec.ClearField(gradeentry.FieldTitle, field.TypeString)
	}
	if value, ok := _u.mutation.Units(); ok {
		_spec.SetField(gradeentry.FieldUnits, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedUnits(); ok {
		_spec.AddField(gradeentry.FieldUnits, field.TypeFloat64, value)
	}
	if _u.mutation.UnitsCleared() {
		_spec.ClearField(gradeentry.FieldUnits, field.TypeFloat64)
	}
	if value, ok := _u.mutation.FinalGrade(); ok {
		_spec.SetField(gradeentry.FieldFinalGrade, field.TypeString, value)
	}
	if _u.mutation.FinalGradeCleared() {
		_spec.ClearField(gradeentry.FieldFinalGrade, field.TypeString)
	}
	if value, ok := _u.mutation.Remarks(); ok {
		_spec.SetField(gradeentry.FieldRemarks, field.TypeString, value)
	}
	if _u.mutation.RemarksCleared() {
		_spec.ClearField(gradeentry.FieldRemarks, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(gradeentry.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.ReportCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ReportIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &GradeEntry{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{gradeentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/priya-sndrs/InstSys-CaseStudy-sub000/gen/ent/gradeentry"
	"github.com/priya-sndrs/InstSys-CaseStudy-sub000/gen/ent/predicate"
)

// GradeEntryDelete is the builder for deleting a GradeEntry entity.
type GradeEntryDelete struct {
	config
	hooks    []Hook
	mutation *GradeEntryMutation
}

// Where appends a list predicates to the GradeEntryDelete builder.
func (_d *GradeEntryDelete) Where(ps ...predicate.GradeEntry) *GradeEntryDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *GradeEntryDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *GradeEntryDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *GradeEntryDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(gradeentry.Table, sqlgraph.NewFieldSpec(gradeentry.FieldID, field.TypeUUID))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// GradeEntryDeleteOne is the builder for deleting a single GradeEntry entity.
type GradeEntryDeleteOne struct {
	_d *GradeEntryDelete
}

// Where appends a list predicates to the GradeEntryDelete builder.
func (_d *GradeEntryDeleteOne) Where(ps ...predicate.GradeEntry) *GradeEntryDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *GradeEntryDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{gradeentry.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *GradeEntryDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}

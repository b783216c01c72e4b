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

// PersonnelCreate is the builder for creating a Personnel entity.
type PersonnelCreate struct {
	config
	mutation *PersonnelMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (_c *PersonnelCreate) SetName(v string) *PersonnelCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetVariant sets the "variant" field.
func (_c *PersonnelCreate) SetVariant(v string) *PersonnelCreate {
	_c.mutation.SetVariant(v)
	return _c
}

// SetPosition sets the "position" field.
func (_c *PersonnelCreate) SetPosition(v string) *PersonnelCreate {
	_c.mutation.SetPosition(v)
	return _c
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_c *PersonnelCreate) SetNillablePosition(v *string) *PersonnelCreate {
	if v != nil {
		_c.SetPosition(*v)
	}
	return _c
}

// SetDepartment sets the "department" field.
func (_c *PersonnelCreate) SetDepartment(v string) *PersonnelCreate {
	_c.mutation.SetDepartment(v)
	return _c
}

// SetNillableDepartment sets the "department" field if the given value is not nil.
func (_c *PersonnelCreate) SetNillableDepartment(v *string) *PersonnelCreate {
	if v != nil {
		_c.SetDepartment(*v)
	}
	return _c
}

// SetEmail sets the "email" field.
func (_c *PersonnelCreate) SetEmail(v string) *PersonnelCreate {
	_c.mutation.SetEmail(v)
	return _c
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_c *PersonnelCreate) SetNillableEmail(v *string) *PersonnelCreate {
	if v != nil {
		_c.SetEmail(*v)
	}
	return _c
}

// SetPhone sets the "phone" field.
func (_c *PersonnelCreate) SetPhone(v string) *PersonnelCreate {
	_c.mutation.SetPhone(v)
	return _c
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_c *PersonnelCreate) SetNillablePhone(v *string) *PersonnelCreate {
	if v != nil {
		_c.SetPhone(*v)
	}
	return _c
}

// SetSssNo sets the "sss_no" field.
func (_c *PersonnelCreate) SetSssNo(v string) *PersonnelCreate {
	_c.mutation.SetSssNo(v)
	return _c
}

// SetNillableSssNo sets the "sss_no" field if the given value is not nil.
func (_c *PersonnelCreate) SetNillableSssNo(v *string) *PersonnelCreate {
	if v != nil {
		_c.SetSssNo(*v)
	}
	return _c
}

// SetPhilhealthNo sets the "philhealth_no" field.
func (_c *PersonnelCreate) SetPhilhealthNo(v string) *PersonnelCreate {
	_c.mutation.SetPhilhealthNo(v)
	return _c
}

// SetNillablePhilhealthNo sets the "philhealth_no" field if the given value is not nil.
func (_c *PersonnelCreate) SetNillablePhilhealthNo(v *string) *PersonnelCreate {
	if v != nil {
		_c.SetPhilhealthNo(*v)
	}
	return _c
}

// SetBirthdate sets the "birthdate" field.
func (_c *PersonnelCreate) SetBirthdate(v string) *PersonnelCreate {
	_c.mutation.SetBirthdate(v)
	return _c
}

// SetNillableBirthdate sets the "birthdate" field if the given value is not nil.
func (_c *PersonnelCreate) SetNillableBirthdate(v *string) *PersonnelCreate {
	if v != nil {
		_c.SetBirthdate(*v)
	}
	return _c
}

// SetAddress sets the "address" field.
func (_c *PersonnelCreate) SetAddress(v string) *PersonnelCreate {
	_c.mutation.SetAddress(v)
	return _c
}

// SetNillableAddress sets the "address" field if the given value is not nil.
func (_c *PersonnelCreate) SetNillableAddress(v *string) *PersonnelCreate {
	if v != nil {
		_c.SetAddress(*v)
	}
	return _c
}

// SetEmployment sets the "employment" field.
func (_c *PersonnelCreate) SetEmployment(v string) *PersonnelCreate {
	_c.mutation.SetEmployment(v)
	return _c
}

// SetNillableEmployment sets the "employment" field if the given value is not nil.
func (_c *PersonnelCreate) SetNillableEmployment(v *string) *PersonnelCreate {
	if v != nil {
		_c.SetEmployment(*v)
	}
	return _c
}

// SetRecordText sets the "record_text" field.
func (_c *PersonnelCreate) SetRecordText(v string) *PersonnelCreate {
	_c.mutation.SetRecordText(v)
	return _c
}

// SetNillableRecordText sets the "record_text" field if the given value is not nil.
func (_c *PersonnelCreate) SetNillableRecordText(v *string) *PersonnelCreate {
	if v != nil {
		_c.SetRecordText(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PersonnelCreate) SetCreatedAt(v time.Time) *PersonnelCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PersonnelCreate) SetNillableCreatedAt(v *time.Time) *PersonnelCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *PersonnelCreate) SetUpdatedAt(v time.Time) *PersonnelCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *PersonnelCreate) SetNillableUpdatedAt(v *time.Time) *PersonnelCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PersonnelCreate) SetID(v uuid.UUID) *PersonnelCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *PersonnelCreate) SetNillableID(v *uuid.UUID) *PersonnelCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddLoadIDs adds the "loads" edge to the LoadEntry entity by IDs.
func (_c *PersonnelCreate) AddLoadIDs(ids ...uuid.UUID) *PersonnelCreate {
	_c.mutation.AddLoadIDs(ids...)
	return _c
}

// AddLoads adds the "loads" edges to the LoadEntry entity.
func (_c *PersonnelCreate) AddLoads(v ...*LoadEntry) *PersonnelCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddLoadIDs(ids...)
}

// Mutation returns the PersonnelMutation object of the builder.
func (_c *PersonnelCreate) Mutation() *PersonnelMutation {
	return _c.mutation
}

// Save creates the Personnel in the database.
func (_c *PersonnelCreate) Save(ctx context.Context) (*Personnel, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PersonnelCreate) SaveX(ctx context.Context) *Personnel {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PersonnelCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PersonnelCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PersonnelCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := personnel.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := personnel.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := personnel.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PersonnelCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Personnel.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := personnel.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Personnel.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Variant(); !ok {
		return &ValidationError{Name: "variant", err: errors.New(`ent: missing required field "Personnel.variant"`)}
	}
	if v, ok := _c.mutation.Variant(); ok {
		if err := personnel.VariantValidator(v); err != nil {
			return &ValidationError{Name: "variant", err: fmt.Errorf(`ent: validator failed for field "Personnel.variant": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Department(); ok {
		if err := personnel.DepartmentValidator(v); err != nil {
			return &ValidationError{Name: "department", err: fmt.Errorf(`ent: validator failed for field "Personnel.department": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Personnel.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Personnel.updated_at"`)}
	}
	return nil
}

func (_c *PersonnelCreate) sqlSave(ctx context.Context) (*Personnel, error) {
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

func (_c *PersonnelCreate) createSpec() (*Personnel, *sqlgraph.CreateSpec) {
	var (
		_node = &Personnel{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(personnel.Table, sqlgraph.NewFieldSpec(personnel.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(personnel.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Variant(); ok {
		_spec.SetField(personnel.FieldVariant, field.TypeString, value)
		_node.Variant = value
	}
	if value, ok := _c.mutation.Position(); ok {
		_spec.SetField(personnel.FieldPosition, field.TypeString, value)
		_node.Position = value
	}
	if value, ok := _c.mutation.Department(); ok {
		_spec.SetField(personnel.FieldDepartment, field.TypeString, value)
		_node.Department = value
	}
	if value, ok := _c.mutation.Email(); ok {
		_spec.SetField(personnel.FieldEmail, field.TypeString, value)
		_node.Email = value
	}
	if value, ok := _c.mutation.Phone(); ok {
		_spec.SetField(personnel.FieldPhone, field.TypeString, value)
		_node.Phone = value
	}
	if value, ok := _c.mutation.SssNo(); ok {
		_spec.SetField(personnel.FieldSssNo, field.TypeString, value)
		_node.SssNo = value
	}
	if value, ok := _c.mutation.PhilhealthNo(); ok {
		_spec.SetField(personnel.FieldPhilhealthNo, field.TypeString, value)
		_node.PhilhealthNo = value
	}
	if value, ok := _c.mutation.Birthdate(); ok {
		_spec.SetField(personnel.FieldBirthdate, field.TypeString, value)
		_node.Birthdate = value
	}
	if value, ok := _c.mutation.Address(); ok {
		_spec.SetField(personnel.FieldAddress, field.TypeString, value)
		_node.Address = value
	}
	if value, ok := _c.mutation.Employment(); ok {
		_spec.SetField(personnel.FieldEmployment, field.TypeString, value)
		_node.Employment = value
	}
	if value, ok := _c.mutation.RecordText(); ok {
		_spec.SetField(personnel.FieldRecordText, field.TypeString, value)
		_node.RecordText = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(personnel.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(personnel.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.LoadsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   personnel.LoadsTable,
			Columns: []string{personnel.LoadsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(loadentry.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// PersonnelCreateBulk is the builder for creating many Personnel entities in bulk.
type PersonnelCreateBulk struct {
	config
	err      error
	builders []*PersonnelCreate
}

// Save creates the Personnel entities in the database.
func (_c *PersonnelCreateBulk) Save(ctx context.Context) ([]*Personnel, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Personnel, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PersonnelMutation)
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
func (_c *PersonnelCreateBulk) SaveX(ctx context.Context) []*Personnel {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PersonnelCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PersonnelCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

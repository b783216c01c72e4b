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
	"github.com/priya-sndrs/InstSys-CaseStudy-sub000/gen/ent/loadentry"
	"github.com/priya-sndrs/InstSys-CaseStudy-sub000/gen/ent/personnel"
	"github.com/priya-sndrs/InstSys-CaseStudy-sub000/gen/ent/predicate"
)

// PersonnelUpdate is the builder for updating Personnel entities.
type PersonnelUpdate struct {
	config
	hooks    []Hook
	mutation *PersonnelMutation
}

// Where appends a list predicates to the PersonnelUpdate builder.
func (_u *PersonnelUpdate) Where(ps ...predicate.Personnel) *PersonnelUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *PersonnelUpdate) SetName(v string) *PersonnelUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *PersonnelUpdate) SetNillableName(v *string) *PersonnelUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetVariant sets the "variant" field.
func (_u *PersonnelUpdate) SetVariant(v string) *PersonnelUpdate {
	_u.mutation.SetVariant(v)
	return _u
}

// SetNillableVariant sets the "variant" field if the given value is not nil.
func (_u *PersonnelUpdate) SetNillableVariant(v *string) *PersonnelUpdate {
	if v != nil {
		_u.SetVariant(*v)
	}
	return _u
}

// SetPosition sets the "position" field.
func (_u *PersonnelUpdate) SetPosition(v string) *PersonnelUpdate {
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *PersonnelUpdate) SetNillablePosition(v *string) *PersonnelUpdate {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// ClearPosition clears the value of the "position" field.
func (_u *PersonnelUpdate) ClearPosition() *PersonnelUpdate {
	_u.mutation.ClearPosition()
	return _u
}

// SetDepartment sets the "department" field.
func (_u *PersonnelUpdate) SetDepartment(v string) *PersonnelUpdate {
	_u.mutation.SetDepartment(v)
	return _u
}

// SetNillableDepartment sets the "department" field if the given value is not nil.
func (_u *PersonnelUpdate) SetNillableDepartment(v *string) *PersonnelUpdate {
	if v != nil {
		_u.SetDepartment(*v)
	}
	return _u
}

// ClearDepartment clears the value of the "department" field.
func (_u *PersonnelUpdate) ClearDepartment() *PersonnelUpdate {
	_u.mutation.ClearDepartment()
	return _u
}

// SetEmail sets the "email" field.
func (_u *PersonnelUpdate) SetEmail(v string) *PersonnelUpdate {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *PersonnelUpdate) SetNillableEmail(v *string) *PersonnelUpdate {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// ClearEmail clears the value of the "email" field.
func (_u *PersonnelUpdate) ClearEmail() *PersonnelUpdate {
	_u.mutation.ClearEmail()
	return _u
}

// SetPhone sets the "phone" field.
func (_u *PersonnelUpdate) SetPhone(v string) *PersonnelUpdate {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *PersonnelUpdate) SetNillablePhone(v *string) *PersonnelUpdate {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// ClearPhone clears the value of the "phone" field.
func (_u *PersonnelUpdate) ClearPhone() *PersonnelUpdate {
	_u.mutation.ClearPhone()
	return _u
}

// SetSssNo sets the "sss_no" field.
func (_u *PersonnelUpdate) SetSssNo(v string) *PersonnelUpdate {
	_u.mutation.SetSssNo(v)
	return _u
}

// SetNillableSssNo sets the "sss_no" field if the given value is not nil.
func (_u *PersonnelUpdate) SetNillableSssNo(v *string) *PersonnelUpdate {
	if v != nil {
		_u.SetSssNo(*v)
	}
	return _u
}

// ClearSssNo clears the value of the "sss_no" field.
func (_u *PersonnelUpdate) ClearSssNo() *PersonnelUpdate {
	_u.mutation.ClearSssNo()
	return _u
}

// SetPhilhealthNo sets the "philhealth_no" field.
func (_u *PersonnelUpdate) SetPhilhealthNo(v string) *PersonnelUpdate {
	_u.mutation.SetPhilhealthNo(v)
	return _u
}

// SetNillablePhilhealthNo sets the "philhealth_no" field if the given value is not nil.
func (_u *PersonnelUpdate) SetNillablePhilhealthNo(v *string) *PersonnelUpdate {
	if v != nil {
		_u.SetPhilhealthNo(*v)
	}
	return _u
}

// ClearPhilhealthNo clears the value of the "philhealth_no" field.
func (_u *PersonnelUpdate) ClearPhilhealthNo() *PersonnelUpdate {
	_u.mutation.ClearPhilhealthNo()
	return _u
}

// SetBirthdate sets the "birthdate" field.
func (_u *PersonnelUpdate) SetBirthdate(v string) *PersonnelUpdate {
	_u.mutation.SetBirthdate(v)
	return _u
}

// SetNillableBirthdate sets the "birthdate" field if the given value is not nil.
func (_u *PersonnelUpdate) SetNillableBirthdate(v *string) *PersonnelUpdate {
	if v != nil {
		_u.SetBirthdate(*v)
	}
	return _u
}

// ClearBirthdate clears the value of the "birthdate" field.
func (_u *PersonnelUpdate) ClearBirthdate() *PersonnelUpdate {
	_u.mutation.ClearBirthdate()
	return _u
}

// SetAddress sets the "address" field.
func (_u *PersonnelUpdate) SetAddress(v string) *PersonnelUpdate {
	_u.mutation.SetAddress(v)
	return _u
}

// SetNillableAddress sets the "address" field if the given value is not nil.
func (_u *PersonnelUpdate) SetNillableAddress(v *string) *PersonnelUpdate {
	if v != nil {
		_u.SetAddress(*v)
	}
	return _u
}

// ClearAddress clears the value of the "address" field.
func (_u *PersonnelUpdate) ClearAddress() *PersonnelUpdate {
	_u.mutation.ClearAddress()
	return _u
}

// SetEmployment sets the "employment" field.
func (_u *PersonnelUpdate) SetEmployment(v string) *PersonnelUpdate {
	_u.mutation.SetEmployment(v)
	return _u
}

// SetNillableEmployment sets the "employment" field if the given value is not nil.
func (_u *PersonnelUpdate) SetNillableEmployment(v *string) *PersonnelUpdate {
	if v != nil {
		_u.SetEmployment(*v)
	}
	return _u
}

// ClearEmployment clears the value of the "employment" field.
func (_u *PersonnelUpdate) ClearEmployment() *PersonnelUpdate {
	_u.mutation.ClearEmployment()
	return _u
}

// SetRecordText sets the "record_text" field.
func (_u *PersonnelUpdate) SetRecordText(v string) *PersonnelUpdate {
	_u.mutation.SetRecordText(v)
	return _u
}

// SetNillableRecordText sets the "record_text" field if the given value is not nil.
func (_u *PersonnelUpdate) SetNillableRecordText(v *string) *PersonnelUpdate {
	if v != nil {
		_u.SetRecordText(*v)
	}
	return _u
}

// ClearRecordText clears the value of the "record_text" field.
func (_u *PersonnelUpdate) ClearRecordText() *PersonnelUpdate {
	_u.mutation.ClearRecordText()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *PersonnelUpdate) SetCreatedAt(v time.Time) *PersonnelUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *PersonnelUpdate) SetNillableCreatedAt(v *time.Time) *PersonnelUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PersonnelUpdate) SetUpdatedAt(v time.Time) *PersonnelUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddLoadIDs adds the "loads" edge to the LoadEntry entity by IDs.
func (_u *PersonnelUpdate) AddLoadIDs(ids ...uuid.UUID) *PersonnelUpdate {
	_u.mutation.AddLoadIDs(ids...)
	return _u
}

// AddLoads adds the "loads" edges to the LoadEntry entity.
func (_u *PersonnelUpdate) AddLoads(v ...*LoadEntry) *PersonnelUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddLoadIDs(ids...)
}

// Mutation returns the PersonnelMutation object of the builder.
func (_u *PersonnelUpdate) Mutation() *PersonnelMutation {
	return _u.mutation
}

// ClearLoads clears all "loads" edges to the LoadEntry entity.
func (_u *PersonnelUpdate) ClearLoads() *PersonnelUpdate {
	_u.mutation.ClearLoads()
	return _u
}

// RemoveLoadIDs removes the "loads" edge to LoadEntry entities by IDs.
func (_u *PersonnelUpdate) RemoveLoadIDs(ids ...uuid.UUID) *PersonnelUpdate {
	_u.mutation.RemoveLoadIDs(ids...)
	return _u
}

// RemoveLoads removes "loads" edges to LoadEntry entities.
func (_u *PersonnelUpdate) RemoveLoads(v ...*LoadEntry) *PersonnelUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveLoadIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PersonnelUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PersonnelUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PersonnelUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PersonnelUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PersonnelUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := personnel.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PersonnelUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := personnel.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Personnel.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Variant(); ok {
		if err := personnel.VariantValidator(v); err != nil {
			return &ValidationError{Name: "variant", err: fmt.Errorf(`ent: validator failed for field "Personnel.variant": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Department(); ok {
		if err := personnel.DepartmentValidator(v); err != nil {
			return &ValidationError{Name: "department", err: fmt.Errorf(`ent: validator failed for field "Personnel.department": %w`, err)}
		}
	}
	return nil
}

func (_u *PersonnelUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(personnel.Table, personnel.Columns, sqlgraph.NewFieldSpec(personnel.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(personnel.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Variant(); ok {
		_spec.SetField(personnel.FieldVariant, field.TypeString, value)
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(personnel.FieldPosition, field.TypeString, value)
	}
	if _u.mutation.PositionCleared() {
		_spec.ClearField(personnel.FieldPosition, field.TypeString)
	}
	if value, ok := _u.mutation.Department(); ok {
		_spec.SetField(personnel.FieldDepartment, field.TypeString, value)
	}
	if _u.mutation.DepartmentCleared() {
		_spec.ClearField(personnel.FieldDepartment, field.TypeString)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(personnel.FieldEmail, field.TypeString, value)
	}
	if _u.mutation.EmailCleared() {
		_spec.ClearField(personnel.FieldEmail, field.TypeString)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(personnel.FieldPhone, field.TypeString, value)
	}
	if _u.mutation.PhoneCleared() {
		_spec.ClearField(personnel.FieldPhone, field.TypeString)
	}
	if value, ok := _u.mutation.SssNo(); ok {
		_spec.SetField(personnel.FieldSssNo, field.TypeString, value)
	}
	if _u.mutation.SssNoCleared() {
		_spec.ClearField(personnel.FieldSssNo, field.TypeString)
	}
	if value, ok := _u.mutation.PhilhealthNo(); ok {
		_spec.SetField(personnel.FieldPhilhealthNo, field.TypeString, value)
	}
	if _u.mutation.PhilhealthNoCleared() {
		_spec.ClearField(personnel.FieldPhilhealthNo, field.TypeString)
	}
	if value, ok := _u.mutation.Birthdate(); ok {
		_spec.SetField(personnel.FieldBirthdate, field.TypeString, value)
	}
	if _u.mutation.BirthdateCleared() {
		_spec.ClearField(personnel.FieldBirthdate, field.TypeString)
	}
	if value, ok := _u.mutation.Address(); ok {
		_spec.SetField(personnel.FieldAddress, field.TypeString, value)
	}
	if _u.mutation.AddressCleared() {
		_spec.ClearField(personnel.FieldAddress, field.TypeString)
	}
	if value, ok := _u.mutation.Employment(); ok {
		_spec.SetField(personnel.FieldEmployment, field.TypeString, value)
	}
	if _u.mutation.EmploymentCleared() {
		_spec.ClearField(personnel.FieldEmployment, field.TypeString)
	}
	if value, ok := _u.mutation.RecordText(); ok {
		_spec.SetField(personnel.FieldRecordText, field.TypeString, value)
	}
	if _u.mutation.RecordTextCleared() {
		_spec.ClearField(personnel.FieldRecordText, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(personnel.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(personnel.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.LoadsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedLoadsIDs(); len(nodes) > 0 && !_u.mutation.LoadsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LoadsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{personnel.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PersonnelUpdateOne is the builder for updating a single Personnel entity.
type PersonnelUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PersonnelMutation
}

// SetName sets the "name" field.
func (_u *PersonnelUpdateOne) SetName(v string) *PersonnelUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *PersonnelUpdateOne) SetNillableName(v *string) *PersonnelUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetVariant sets the "variant" field.
func (_u *PersonnelUpdateOne) SetVariant(v string) *PersonnelUpdateOne {
	_u.mutation.SetVariant(v)
	return _u
}

// SetNillableVariant sets the "variant" field if the given value is not nil.
func (_u *PersonnelUpdateOne) SetNillableVariant(v *string) *PersonnelUpdateOne {
	if v != nil {
		_u.SetVariant(*v)
	}
	return _u
}

// SetPosition sets the "position" field.
func (_u *PersonnelUpdateOne) SetPosition(v string) *PersonnelUpdateOne {
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *PersonnelUpdateOne) SetNillablePosition(v *string) *PersonnelUpdateOne {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// ClearPosition clears the value of the "position" field.
func (_u *PersonnelUpdateOne) ClearPosition() *PersonnelUpdateOne {
	_u.mutation.ClearPosition()
	return _u
}

// SetDepartment sets the "department" field.
func (_u *PersonnelUpdateOne) SetDepartment(v string) *PersonnelUpdateOne {
	_u.mutation.SetDepartment(v)
	return _u
}

// SetNillableDepartment sets the "department" field if the given value is not nil.
func (_u *PersonnelUpdateOne) SetNillableDepartment(v *string) *PersonnelUpdateOne {
	if v != nil {
		_u.SetDepartment(*v)
	}
	return _u
}

// ClearDepartment clears the value of the "department" field.
func (_u *PersonnelUpdateOne) ClearDepartment() *PersonnelUpdateOne {
	_u.mutation.ClearDepartment()
	return _u
}

// SetEmail sets the "email" field.
func (_u *PersonnelUpdateOne) SetEmail(v string) *PersonnelUpdateOne {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *PersonnelUpdateOne) SetNillableEmail(v *string) *PersonnelUpdateOne {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// ClearEmail clears the value of the "email" field.
func (_u *PersonnelUpdateOne) ClearEmail() *PersonnelUpdateOne {
	_u.mutation.ClearEmail()
	return _u
}

// SetPhone sets the "phone" field.
func (_u *PersonnelUpdateOne) SetPhone(v string) *PersonnelUpdateOne {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *PersonnelUpdateOne) SetNillablePhone(v *string) *PersonnelUpdateOne {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// ClearPhone clears the value of the "phone" field.
func (_u *PersonnelUpdateOne) ClearPhone() *PersonnelUpdateOne {
	_u.mutation.ClearPhone()
	return _u
}

// SetSssNo sets the "sss_no" field.
func (_u *PersonnelUpdateOne) SetSssNo(v string) *PersonnelUpdateOne {
	_u.mutation.SetSssNo(v)
	return _u
}

// SetNillableSssNo sets the "sss_no" field if the given value is not nil.
func (_u *PersonnelUpdateOne) SetNillableSssNo(v *string) *PersonnelUpdateOne {
	if v != nil {
		_u.SetSssNo(*v)
	}
	return _u
}

// ClearSssNo clears the value of the "sss_no" field.
func (_u *PersonnelUpdateOne) ClearSssNo() *PersonnelUpdateOne {
	_u.mutation.ClearSssNo()
	return _u
}

// SetPhilhealthNo sets the "philhealth_no" field.
func (_u *PersonnelUpdateOne) SetPhilhealthNo(v string) *PersonnelUpdateOne {
	_u.mutation.SetPhilhealthNo(v)
	return _u
}

// SetNillablePhilhealthNo sets the "philhealth_no" field if the given value is not nil.
func (_u *PersonnelUpdateOne) SetNillablePhilhealthNo(v *string) *PersonnelUpdateOne {
	if v != nil {
		_u.SetPhilhealthNo(*v)
	}
	return _u
}

// ClearPhilhealthNo clears the value of the "philhealth_no" field.
func (_u *PersonnelUpdateOne) ClearPhilhealthNo() *PersonnelUpdateOne {
	_u.mutation.ClearPhilhealthNo()
	return _u
}

// SetBirthdate sets the "birthdate" field.
func (_u *PersonnelUpdateOne) SetBirthdate(v string) *PersonnelUpdateOne {
	_u.mutation.SetBirthdate(v)
	return _u
}

// SetNillableBirthdate sets the "birthdate" field if the given value is not nil.
func (_u *PersonnelUpdateOne) SetNillableBirthdate(v *string) *PersonnelUpdateOne {
	if v != nil {
		_u.SetBirthdate(*v)
	}
	return _u
}

// ClearBirthdate clears the value of the "birthdate" field.
func (_u *PersonnelUpdateOne) ClearBirthdate() *PersonnelUpdateOne {
	_u.mutation.ClearBirthdate()
	return _u
}

// SetAddress sets the "address" field.
func (_u *PersonnelUpdateOne) SetAddress(v string) *PersonnelUpdateOne {
	_u.mutation.SetAddress(v)
	return _u
}

// SetNillableAddress sets the "address" field if the given value is not nil.
func (_u *PersonnelUpdateOne) SetNillableAddress(v *string) *PersonnelUpdateOne {
	if v != nil {
		_u.SetAddress(*v)
	}
	return _u
}

// ClearAddress clears the value of the "address" field.
func (_u *PersonnelUpdateOne) ClearAddress() *PersonnelUpdateOne {
	_u.mutation.ClearAddress()
	return _u
}

// SetEmployment sets the "employment" field.
func (_u *PersonnelUpdateOne) SetEmployment(v string) *PersonnelUpdateOne {
	_u.mutation.SetEmployment(v)
	return _u
}

// SetNillableEmployment sets the "employment" field if the given value is not nil.
func (_u *PersonnelUpdateOne) SetNillableEmployment(v *string) *PersonnelUpdateOne {
	if v != nil {
		_u.SetEmployment(*v)
	}
	return _u
}

// ClearEmployment clears the value of the "employment" field.
func (_u *PersonnelUpdateOne) ClearEmployment() *PersonnelUpdateOne {
	_u.mutation.ClearEmployment()
	return _u
}

// SetRecordText sets the "record_text" field.
func (_u *PersonnelUpdateOne) SetRecordText(v string) *PersonnelUpdateOne {
	_u.mutation.SetRecordText(v)
	return _u
}

// SetNillableRecordText sets the "record_text" field if the given value is not nil.
func (_u *PersonnelUpdateOne) SetNillableRecordText(v *string) *PersonnelUpdateOne {
	if v != nil {
		_u.SetRecordText(*v)
	}
	return _u
}

// ClearRecordText clears the value of the "record_text" field.
func (_u *PersonnelUpdateOne) ClearRecordText() *PersonnelUpdateOne {
	_u.mutation.ClearRecordText()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *PersonnelUpdateOne) SetCreatedAt(v time.Time) *PersonnelUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *PersonnelUpdateOne) SetNillableCreatedAt(v *time.Time) *PersonnelUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PersonnelUpdateOne) SetUpdatedAt(v time.Time) *PersonnelUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddLoadIDs adds the "loads" edge to the LoadEntry entity by IDs.
func (_u *PersonnelUpdateOne) AddLoadIDs(ids ...uuid.UUID) *PersonnelUpdateOne {
	_u.mutation.AddLoadIDs(ids...)
	return _u
}

// AddLoads adds the "loads" edges to the LoadEntry entity.
func (_u *PersonnelUpdateOne) AddLoads(v ...*LoadEntry) *PersonnelUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddLoadIDs(ids...)
}

// Mutation returns the PersonnelMutation object of the builder.
func (_u *PersonnelUpdateOne) Mutation() *PersonnelMutation {
	return _u.mutation
}

// ClearLoads clears all "loads" edges to the LoadEntry entity.
func (_u *PersonnelUpdateOne) ClearLoads() *PersonnelUpdateOne {
	_u.mutation.ClearLoads()
	return _u
}

// RemoveLoadIDs removes the "loads" edge to LoadEntry entities by IDs.
func (_u *PersonnelUpdateOne) RemoveLoadIDs(ids ...uuid.UUID) *PersonnelUpdateOne {
	_u.mutation.RemoveLoadIDs(ids...)
	return _u
}

// RemoveLoads removes "loads" edges to LoadEntry entities.
func (_u *PersonnelUpdateOne) RemoveLoads(v ...*LoadEntry) *PersonnelUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveLoadIDs(ids...)
}

// Where appends a list predicates to the PersonnelUpdate builder.
func (_u *PersonnelUpdateOne) Where(ps ...predicate.Personnel) *PersonnelUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PersonnelUpdateOne) Select(field string, fields ...string) *PersonnelUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Personnel entity.
func (_u *PersonnelUpdateOne) Save(ctx context.Context) (*Personnel, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PersonnelUpdateOne) SaveX(ctx context.Context) *Personnel {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PersonnelUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PersonnelUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PersonnelUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := personnel.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PersonnelUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := personnel.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Personnel.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Variant(); ok {
		if err := personnel.VariantValidator(v); err != nil {
			return &ValidationError{Name: "variant", err: fmt.Errorf(`ent: validator failed for field "Personnel.variant": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Department(); ok {
		if err := personnel.DepartmentValidator(v); err != nil {
			return &ValidationError{Name: "department", err: fmt.Errorf(`ent: validator failed for field "Personnel.department": %w`, err)}
		}
	}
	return nil
}

func (_u *PersonnelUpdateOne) sqlSave(ctx context.Context) (_node *Personnel, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(personnel.Table, personnel.Columns, sqlgraph.NewFieldSpec(personnel.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Personnel.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, personnel.FieldID)
		for _, f := range fields {
			if !personnel.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != personnel.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(personnel.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Variant(); ok {
		_spec.SetField(personnel.FieldVariant, field.TypeString, value)
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(personnel.FieldPosition, field.TypeString, value)
	}
	if _u.mutation.PositionCleared() {
		_spec.ClearField(personnel.FieldPosition, field.TypeString)
	}
	if value, ok := _u.mutation.Department(); ok {
		_spec.SetField(personnel.FieldDepartment, field.TypeString, value)
	}
	if _u.mutation.DepartmentCleared() {
		_spec.ClearField(personnel.FieldDepartment, field.TypeString)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(personnel.FieldEmail, field.TypeString, value)
	}
	if _u.mutation.EmailCleared() {
		_spec.ClearField(personnel.FieldEmail, field.TypeString)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(personnel.FieldPhone, field.TypeString, value)
	}
	if _u.mutation.PhoneCleared() {
		_spec.ClearField(personnel.FieldPhone, field.TypeString)
	}
	if value, ok := _u.mutation.SssNo(); ok {
		_spec.SetField(personnel.FieldSssNo, field.TypeString, value)
	}
	if _u.mutation.SssNoCleared() {
		_spec.ClearField(personnel.FieldSssNo, field.TypeString)
	}
	if value, ok := _u.mutation.PhilhealthNo(); ok {
		_spec.SetField(personnel.FieldPhilhealthNo, field.TypeString, value)
	}
	if _u.mutation.PhilhealthNoCleared() {
		_spec.ClearField(personnel.FieldPhilhealthNo, field.TypeString)
	}
	if value, ok := _u.mutation.Birthdate(); ok {
		_spec.SetField(personnel.FieldBirthdate, field.TypeString, value)
	}
	if _u.mutation.BirthdateCleared() {
		_spec.ClearField(personnel.FieldBirthdate, field.TypeString)
	}
	if value, ok := _u.mutation.Address(); ok {
		_spec.SetField(personnel.FieldAddress, field.TypeString, value)
	}
	if _u.mutation.AddressCleared() {
		_spec.ClearField(personnel.FieldAddress, field.TypeString)
	}
	if value, ok := _u.mutation.Employment(); ok {
		_spec.SetField(personnel.FieldEmployment, field.TypeString, value)
	}
	if _u.mutation.EmploymentCleared() {
		_spec.ClearField(personnel.FieldEmployment, field.TypeString)
	}
	if value, ok := _u.mutation.RecordText(); ok {
		_spec.SetField(personnel.FieldRecordText, field.TypeString, value)
	}
	if _u.mutation.RecordTextCleared() {
		_spec.ClearField(personnel.FieldRecordText, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(personnel.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(personnel.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.LoadsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedLoadsIDs(); len(nodes) > 0 && !_u.mutation.LoadsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LoadsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Personnel{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{personnel.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

// Code generated by ent, DO NOT EDIT.

package personnel

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/priya-sndrs/InstSys-CaseStudy-sub000/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Personnel {
	return predicate.Personnel(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Personnel {
	return predicate.Personnel(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Personnel {
	return predicate.Personnel(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Personnel {
	return predicate.Personnel(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Personnel {
	return predicate.Personnel(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Personnel {
	return predicate.Personnel(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Personnel {
	return predicate.Personnel(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Personnel {
	return predicate.Personnel(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Personnel {
	return predicate.Personnel(sql.FieldLTE(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Personnel {
	return predicate.Personnel(sql.FieldEQ(FieldName, v))
}

// Variant applies equality check predicate on the "variant" field. It's identical to VariantEQ.
func Variant(v string) predicate.Personnel {
	return predicate.Personnel(sql.FieldEQ(FieldVariant, v))
}

// Position applies equality check predicate on the "position" field. It's identical to PositionEQ.
func Position(v string) predicate.Personnel {
	return predicate.Personnel(sql.FieldEQ(FieldPosition, v))
}

// Department applies equality check predicate on the "department" field. It's identical to DepartmentEQ.
func Department(v string) predicate.Personnel {
	return predicate.Personnel(sql.FieldEQ(FieldDepartment, v))
}

// Email applies equality check predicate on the "email" field. It's identical to EmailEQ.
func Email(v string) predicate.Personnel {
	return predicate.Personnel(sql.FieldEQ(FieldEmail, v))
}

// Phone applies equality check predicate on the "phone" field. It's identical to PhoneEQ.
func Phone(v string) predicate.Personnel {
	return predicate.Personnel(sql.FieldEQ(FieldPhone, v))
}

// SssNo applies equality check predicate on the "sss_no" field. It's identical to SssNoEQ.
func SssNo(v string) predicate.Personnel {
	return predicate.Personnel(sql.FieldEQ(FieldSssNo, v))
}

// PhilhealthNo applies equality check predicate on the "philhealth_no" field. It's identical to PhilhealthNoEQ.
func PhilhealthNo(v string) predicate.Personnel {
	return predicate.Personnel(sql.FieldEQ(FieldPhilhealthNo, v))
}

// Birthdate applies equality check predicate on the "birthdate" field. It's identical to BirthdateEQ.
func Birthdate(v string) predicate.Personnel {
	return predicate.Personnel(sql.FieldEQ(FieldBirthdate, v))
}

// Address applies equality check predicate on the "address" field. It's identical to AddressEQ.
func Address(v string) predicate.Personnel {
	return predicate.Personnel(sql.FieldEQ(FieldAddress, v))
}

// Employment applies equality check predicate on the "employment" field. It's identical to EmploymentEQ.
func Employment(v string) predicate.Personnel {
	return predicate.Personnel(sql.FieldEQ(FieldEmployment, v))
}

// RecordText applies equality check predicate on the "record_text" field. It's identical to RecordTextEQ.
func RecordText(v string) predicate.Personnel {
	return predicate.Personnel(sql.FieldEQ(FieldRecordText, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Personnel {
	return predicate.Personnel(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Personnel {
	return predicate.Personnel(sql.FieldEQ(FieldUpdatedAt, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Personnel {
	return predicate.Personnel(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Personnel {
	return predicate.Personnel(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Personnel {
	return predicate.Personnel(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Personnel {
	return predicate.Personnel(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Personnel {
	return predicate.Personnel(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Personnel {
	return predicate.Personnel(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Personnel {
	return predicate.Personnel(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Personnel {
	return predicate.Personnel(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Personnel {
	return predicate.Personnel(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Personnel {
	return predicate.Personnel(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Personnel {
	return predicate.Personnel(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Personnel {
	return predicate.Personnel(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Personnel {
	return predicate.Personnel(sql.FieldContainsFold(FieldName, v))
}

// VariantEQ applies the EQ predicate on the "variant" field.
func VariantEQ(v string) predicate.Personnel {
	return predicate.Personnel(sql.FieldEQ(FieldVariant, v))
}

// VariantNEQ applies the NEQ predicate on the "variant" field.
func VariantNEQ(v string) predicate.Personnel {
	return predicate.Personnel(sql.FieldNEQ(FieldVariant, v))
}

// VariantIn applies the In predicate on the "variant" field.
func VariantIn(vs ...string) predicate.Personnel {
	return predicate.Personnel(sql.FieldIn(FieldVariant, vs...))
}

// VariantNotIn applies the NotIn predicate on the "variant" field.
func VariantNotIn(vs ...string) predicate.Personnel {
	return predicate.Personnel(sql.FieldNotIn(FieldVariant, vs...))
}

// VariantGT applies the GT predicate on the "variant" field.
func VariantGT(v string) predicate.Personnel {
	return predicate.Personnel(sql.FieldGT(FieldVariant, v))
}

// VariantGTE applies the GTE predicate on the "variant" field.
func VariantGTE(v string) predicate.Personnel {
	return predicate.Personnel(sql.FieldGTE(FieldVariant, v))
}

// VariantLT applies the LT predicate on the "variant" field.
func VariantLT(v string) predicate.Personnel {
	return predicate.Personnel(sql.FieldLT(FieldVariant, v))
}

// VariantLTE applies the LTE predicate on the "variant" field.
func VariantLTE(v string) predicate.Personnel {
	return predicate.Personnel(sql.FieldLTE(FieldVariant, v))
}

// VariantContains applies the Contains predicate on the "variant" field.
func VariantContains(v string) predicate.Personnel {
	return predicate.Personnel(sql.FieldContains(FieldVariant, v))
}

// VariantHasPrefix applies the HasPrefix predicate on the "variant" field.
func VariantHasPrefix(v string) predicate.Personnel {
	return predicate.Personnel(sql.FieldHasPrefix(FieldVariant, v))
}

// VariantHasSuffix applies the HasSuffix predicate on the "variant" field.
func VariantHasSuffix(v string) predicate.Personnel {
	return predicate.Personnel(sql.FieldHasSuffix(FieldVariant, v))
}

// VariantEqualFold applies the EqualFold predicate on the "variant" field.
func VariantEqualFold(v string) predicate.Personnel {
	return predicate.Personnel(sql.FieldEqualFold(FieldVariant, v))
}

// VariantContainsFold applies the ContainsFold predicate on the "variant" field.
func VariantContainsFold(v string) predicate.Personnel {
	return predicate.Personnel(sql.FieldContainsFold(FieldVariant, v))
}

// PositionEQ applies the EQ predicate on the "position" field.
func PositionEQ(v string) predicate.Personnel {
	return predicate.Personnel(sql.FieldEQ(FieldPosition, v))
}

// PositionNEQ applies the NEQ predicate on the "position" field.
func PositionNEQ(v string) predicate.Personnel {
	return predicate.Personnel(sql.FieldNEQ(FieldPosition, v))
}

// PositionIn applies the In predicate on the "position" field.
func PositionIn(vs ...string) predicate.Personnel {
	return predicate.Personnel(sql.FieldIn(FieldPosition, vs...))
}

// PositionNotIn applies the NotIn predicate on the "position" field.
func PositionNotIn(vs ...string) predicate.Personnel {
	return predicate.Personnel(sql.FieldNotIn(FieldPosition, vs...))
}

// PositionGT applies the GT predicate on the "position" field.
func PositionGT(v string) predicate.Personnel {
	return predicate.Personnel(sql.FieldGT(FieldPosition, v))
}

// PositionGTE applies the GTE predicate on the "position" field.
func PositionGTE(v string) predicate.Personnel {
	return predicate.Personnel(sql.FieldGTE(FieldPosition, v))
}

// PositionLT applies the LT predicate on the "position" field.
func PositionLT(v string) predicate.Personnel {
	return predicate.Personnel(sql.FieldLT(FieldPosition, v))
}

// PositionLTE applies the LTE predicate on the "position" field.
func PositionLTE(v string) predicate.Personnel {
	return predicate.Personnel(sql.FieldLTE(FieldPosition, v))
}

// PositionContains applies the Contains predicate on the "position" field.
func PositionContains(v string) predicate.Personnel {
	return predicate.Personnel(sql.FieldContains(FieldPosition, v))
}

// PositionHasPrefix applies the HasPrefix predicate on the "position" field.
func PositionHasPrefix(v string) predicate.Personnel {
	return predicate.Personnel(sql.FieldHasPrefix(FieldPosition, v))
}

// PositionHasSuffix applies the HasSuffix predicate on the "position" field.
func PositionHasSuffix(v string) predicate.Personnel {
	return predicate.Personnel(sql.FieldHasSuffix(FieldPosition, v))
}

// PositionIsNil applies the IsNil predicate on the "position" field.
func PositionIsNil() predicate.Personnel {
	return predicate.Personnel(sql.FieldIsNull(FieldPosition))
}

// PositionNotNil applies the NotNil predicate on the "position" field.
func PositionNotNil() predicate.Personnel {
	return predicate.Personnel(sql.FieldNotNull(FieldPosition))
}

// PositionEqualFold applies the EqualFold predicate on the "position" field.
func PositionEqualFold(v string) predicate.Personnel {
	return predicate.Personnel(sql.FieldEqualFold(FieldPosition, v))
}

// PositionContainsFold applies the ContainsFold predicate on the "position" field.
func PositionContainsFold(v string) predicate.Personnel {
	return predicate.Personnel(sql.FieldContainsFold(FieldPosition, v))
}

// DepartmentEQ applies the EQ predicate on the "department" field.
func DepartmentEQ(v string) predicate.Personnel {
	return predicate.Personnel(sql.FieldEQ(FieldDepartment, v))
}

// DepartmentNEQ applies the NEQ predicate on the "department" field.
func DepartmentNEQ(v string) predicate.Personnel {
	return predicate.Personnel(sql.FieldNEQ(FieldDepartment, v))
}

// DepartmentIn applies the In predicate on the "department" field.
func DepartmentIn(vs ...string) predicate.Personnel {
	return predicate.Personnel(sql.FieldIn(FieldDepartment, vs...))
}

// DepartmentNotIn applies the NotIn predicate on the "department" field.
func DepartmentNotIn(vs ...string) predicate.Personnel {
	return predicate.Personnel(sql.FieldNotIn(FieldDepartment, vs...))
}

// DepartmentGT applies the GT predicate on the "department" field.
func DepartmentGT(v string) predicate.Personnel {
	return predicate.Personnel(sql.FieldGT(FieldDepartment, v))
}

// DepartmentGTE applies the GTE predicate on the "department" field.
func DepartmentGTE(v string) predicate.Personnel {
	return predicate.Personnel(sql.FieldGTE(FieldDepartment, v))
}

// DepartmentLT applies the LT predicate on the "department" field.
func DepartmentLT(v string) predicate.Personnel {
	return predicate.Personnel(sql.FieldLT(FieldDepartment, v))
}

// DepartmentLTE applies the LTE predicate on the "department" field.
func DepartmentLTE(v string) predicate.Personnel {
	return predicate.Personnel(sql.FieldLTE(FieldDepartment, v))
}

// DepartmentContains applies the Contains predicate on the "department" field.
func DepartmentContains(v string) predicate.Personnel {
	return predicate.Personnel(sql.FieldContains(FieldDepartment, v))
}

// DepartmentHasPrefix applies the HasPrefix predicate on the "department" field.
func DepartmentHasPrefix(v string) predicate.Personnel {
	return predicate.Personnel(sql.FieldHasPrefix(FieldDepartment, v))
}

// DepartmentHasSuffix applies the HasSuffix predicate on the "department" field.
func DepartmentHasSuffix(v string) predicate.Personnel {
	return predicate.Personnel(sql.FieldHasSuffix(FieldDepartment, v))
}

// DepartmentIsNil applies the IsNil predicate on the "department" field.
func DepartmentIsNil() predicate.Personnel {
	return predicate.Personnel(sql.FieldIsNull(FieldDepartment))
}

// DepartmentNotNil applies the NotNil predicate on the "department" field.
func DepartmentNotNil() predicate.Personnel {
	return predicate.Personnel(sql.FieldNotNull(FieldDepartment))
}

// DepartmentEqualFold applies the EqualFold predicate on the "department" field.
func DepartmentEqualFold(v string) predicate.Personnel {
	return predicate.Personnel(sql.FieldEqualFold(FieldDepartment, v))
}

// DepartmentContainsFold applies the ContainsFold predicate on the "department" field.
func DepartmentContainsFold(v string) predicate.Personnel {
	return predicate.Personnel(sql.FieldContainsFold(FieldDepartment, v))
}

// EmailEQ applies the EQ predicate on the "email" field.
func EmailEQ(v string) predicate.Personnel {
	return predicate.Personnel(sql.FieldEQ(FieldEmail, v))
}

// EmailNEQ applies the NEQ predicate on the "email" field.
func EmailNEQ(v string) predicate.Personnel {
	return predicate.Personnel(sql.FieldNEQ(FieldEmail, v))
}

// EmailIn applies the In predicate on the "email" field.
func EmailIn(vs ...string) predicate.Personnel {
	return predicate.Personnel(sql.FieldIn(FieldEmail, vs...))
}

// EmailNotIn applies the NotIn predicate on the "email" field.
func EmailNotIn(vs ...string) predicate.Personnel {
	return predicate.Personnel(sql.FieldNotIn(FieldEmail, vs...))
}

// EmailGT applies the GT predicate on the "email" field.
func EmailGT(v string) predicate.Personnel {
	return predicate.Personnel(sql.FieldGT(FieldEmail, v))
}

// EmailGTE applies the GTE predicate on the "email" field.
func EmailGTE(v string) predicate.Personnel {
	return predicate.Personnel(sql.FieldGTE(FieldEmail, v))
}

// EmailLT applies the LT predicate on the "email" field.
func EmailLT(v string) predicate.Personnel {
	return predicate.Personnel(sql.FieldLT(FieldEmail, v))
}

// EmailLTE applies the LTE predicate on the "email" field.
func EmailLTE(v string) predicate.Personnel {
	return predicate.Personnel(sql.FieldLTE(FieldEmail, v))
}

// EmailContains applies the Contains predicate on the "email" field.
func EmailContains(v string) predicate.Personnel {
	return predicate.Personnel(sql.FieldContains(FieldEmail, v))
}

// EmailHasPrefix applies the HasPrefix predicate on the "email" field.
func EmailHasPrefix(v string) predicate.Personnel {
	return predicate.Personnel(sql.FieldHasPrefix(FieldEmail, v))
}

// EmailHasSuffix applies the HasSuffix predicate on the "email" field.
func EmailHasSuffix(v string) predicate.Personnel {
	return predicate.Personnel(sql.FieldHasSuffix(FieldEmail, v))
}

// EmailIsNil applies the IsNil predicate on the "email" field.
func EmailIsNil() predicate.Personnel {
	return predicate.Personnel(sql.FieldIsNull(FieldEmail))
}

// EmailNotNil applies the NotNil predicate on the "email" field.
func EmailNotNil() predicate.Personnel {
	return predicate.Personnel(sql.FieldNotNull(FieldEmail))
}

// EmailEqualFold applies the EqualFold predicate on the "email" field.
func EmailEqualFold(v string) predicate.Personnel {
	return predicate.Personnel(sql.FieldEqualFold(FieldEmail, v))
}

// EmailContainsFold applies the ContainsFold predicate on the "email" field.
func EmailContainsFold(v string) predicate.Personnel {
	return predicate.Personnel(sql.FieldContainsFold(FieldEmail, v))
}

// PhoneEQ applies the EQ predicate on the "phone" field.
func PhoneEQ(v string) predicate.Personnel {
	return predicate.Personnel(sql.FieldEQ(FieldPhone, v))
}

// PhoneNEQ applies the NEQ predicate on the "phone" field.
func PhoneNEQ(v string) predicate.Personnel {
	return predicate.Personnel(sql.FieldNEQ(FieldPhone, v))
}

// PhoneIn applies the In predicate on the "phone" field.
func PhoneIn(vs ...string) predicate.Personnel {
	return predicate.Personnel(sql.FieldIn(FieldPhone, vs...))
}

// PhoneNotIn applies the NotIn predicate on the "phone" field.
func PhoneNotIn(vs ...string) predicate.Personnel {
	return predicate.Personnel(sql.FieldNotIn(FieldPhone, vs...))
}

// PhoneGT applies the GT predicate on the "phone" field.
func PhoneGT(v string) predicate.Personnel {
	return predicate.Personnel(sql.FieldGT(FieldPhone, v))
}

// PhoneGTE applies the GTE predicate on the "phone" field.
func PhoneGTE(v string) predicate.Personnel {
	return predicate.Personnel(sql.FieldGTE(FieldPhone, v))
}

// PhoneLT applies the LT predicate on the "phone" field.
func PhoneLT(v string) predicate.Personnel {
	return predicate.Personnel(sql.FieldLT(FieldPhone, v))
}

// PhoneLTE applies the LTE predicate on the "phone" field.
func PhoneLTE(v string) predicate.Personnel {
	return predicate.Personnel(sql.FieldLTE(FieldPhone, v))
}

// PhoneContains applies the Contains predicate on the "phone" field.
func PhoneContains(v string) predicate.Personnel {
	return predicate.Personnel(sql.FieldContains(FieldPhone, v))
}

// PhoneHasPrefix applies the HasPrefix predicate on the "phone" field.
func PhoneHasPrefix(v string) predicate.Personnel {
	return predicate.Personnel(sql.FieldHasPrefix(FieldPhone, v))
}

// PhoneHasSuffix applies the HasSuffix predicate on the "phone" field.
func PhoneHasSuffix(v string) predicate.Personnel {
	return predicate.Personnel(sql.FieldHasSuffix(FieldPhone, v))
}

// PhoneIsNil applies the IsNil predicate on the "phone" field.
func PhoneIsNil() predicate.Personnel {
	return predicate.Personnel(sql.FieldIsNull(FieldPhone))
}

// PhoneNotNil applies the NotNil predicate on the "phone" field.
func PhoneNotNil() predicate.Personnel {
	return predicate.Personnel(sql.FieldNotNull(FieldPhone))
}

// PhoneEqualFold applies the EqualFold predicate on the "phone" field.
func PhoneEqualFold(v string) predicate.Personnel {
	return predicate.Personnel(sql.FieldEqualFold(FieldPhone, v))
}

// PhoneContainsFold applies the ContainsFold predicate on the "phone" field.
func PhoneContainsFold(v string) predicate.Personnel {
	return predicate.Personnel(sql.FieldContainsFold(FieldPhone, v))
}

// SssNoEQ applies the EQ predicate on the "sss_no" field.
func SssNoEQ(v string) predicate.Personnel {
	return predicate.Personnel(sql.FieldEQ(FieldSssNo, v))
}

// SssNoNEQ applies the NEQ predicate on the "sss_no" field.
func SssNoNEQ(v string) predicate.Personnel {
	return predicate.Personnel(sql.FieldNEQ(FieldSssNo, v))
}

// SssNoIn applies the In predicate on the "sss_no" field.
func SssNoIn(vs ...string) predicate.Personnel {
	return predicate.Personnel(sql.FieldIn(FieldSssNo, vs...))
}

// SssNoNotIn applies the NotIn predicate on the "sss_no" field.
func SssNoNotIn(vs ...string) predicate.Personnel {
	return predicate.Personnel(sql.FieldNotIn(FieldSssNo, vs...))
}

// SssNoGT applies the GT predicate on the "sss_no" field.
func SssNoGT(v string) predicate.Personnel {
	return predicate.Personnel(sql.FieldGT(FieldSssNo, v))
}

// SssNoGTE applies the GTE predicate on the "sss_no" field.
func SssNoGTE(v string) predicate.Personnel {
	return predicate.Personnel(sql.FieldGTE(FieldSssNo, v))
}

// SssNoLT applies the LT predicate on the "sss_no" field.
func SssNoLT(v string) predicate.Personnel {
	return predicate.Personnel(sql.FieldLT(FieldSssNo, v))
}

// SssNoLTE applies the LTE predicate on the "sss_no" field.
func SssNoLTE(v string) predicate.Personnel {
	return predicate.Personnel(sql.FieldLTE(FieldSssNo, v))
}

// SssNoContains applies the Contains predicate on the "sss_no" field.
func SssNoContains(v string) predicate.Personnel {
	return predicate.Personnel(sql.FieldContains(FieldSssNo, v))
}

// SssNoHasPrefix applies the HasPrefix predicate on the "sss_no" field.
func SssNoHasPrefix(v string) predicate.Personnel {
	return predicate.Personnel(sql.FieldHasPrefix(FieldSssNo, v))
}

// SssNoHasSuffix applies the HasSuffix predicate on the "sss_no" field.
func SssNoHasSuffix(v string) predicate.Personnel {
	return predicate.Personnel(sql.FieldHasSuffix(FieldSssNo, v))
}

// SssNoIsNil applies the IsNil predicate on the "sss_no" field.
func SssNoIsNil() predicate.Personnel {
	return predicate.Personnel(sql.FieldIsNull(FieldSssNo))
}

// SssNoNotNil applies the NotNil predicate on the "sss_no" field.
func SssNoNotNil() predicate.Personnel {
	return predicate.Personnel(sql.FieldNotNull(FieldSssNo))
}

// SssNoEqualFold applies the EqualFold predicate on the "sss_no" field.
func SssNoEqualFold(v string) predicate.Personnel {
	return predicate.Personnel(sql.FieldEqualFold(FieldSssNo, v))
}

// SssNoContainsFold applies the ContainsFold predicate on the "sss_no" field.
func SssNoContainsFold(v string) predicate.Personnel {
	return predicate.Personnel(sql.FieldContainsFold(FieldSssNo, v))
}

// PhilhealthNoEQ applies the EQ predicate on the "philhealth_no" field.
func PhilhealthNoEQ(v string) predicate.Personnel {
	return predicate.Personnel(sql.FieldEQ(FieldPhilhealthNo, v))
}

// PhilhealthNoNEQ applies the NEQ predicate on the "philhealth_no" field.
func PhilhealthNoNEQ(v string) predicate.Personnel {
	return predicate.Personnel(sql.FieldNEQ(FieldPhilhealthNo, v))
}

// PhilhealthNoIn applies the In predicate on the "philhealth_no" field.
func PhilhealthNoIn(vs ...string) predicate.Personnel {
	return predicate.Personnel(sql.FieldIn(FieldPhilhealthNo, vs...))
}

// PhilhealthNoNotIn applies the NotIn predicate on the "philhealth_no" field.
func PhilhealthNoNotIn(vs ...string) predicate.Personnel {
	return predicate.Personnel(sql.FieldNotIn(FieldPhilhealthNo, vs...))
}

// PhilhealthNoGT applies the GT predicate on the "philhealth_no" field.
func PhilhealthNoGT(v string) predicate.Personnel {
	return predicate.Personnel(sql.FieldGT(FieldPhilhealthNo, v))
}

// PhilhealthNoGTE applies the GTE predicate on the "philhealth_no" field.
func PhilhealthNoGTE(v string) predicate.Personnel {
	return predicate.Personnel(sql.FieldGTE(FieldPhilhealthNo, v))
}

// PhilhealthNoLT applies the LT predicate on the "philhealth_no" field.
func PhilhealthNoLT(v string) predicate.Personnel {
	return predicate.Personnel(sql.FieldLT(FieldPhilhealthNo, v))
}

// PhilhealthNoLTE applies the LTE predicate on the "philhealth_no" field.
func PhilhealthNoLTE(v string) predicate.Personnel {
	return predicate.Personnel(sql.FieldLTE(FieldPhilhealthNo, v))
}

// PhilhealthNoContains applies the Contains predicate on the "philhealth_no" field.
func PhilhealthNoContains(v string) predicate.Personnel {
	return predicate.Personnel(sql.FieldContains(FieldPhilhealthNo, v))
}

// PhilhealthNoHasPrefix applies the HasPrefix predicate on the "philhealth_no" field.
func PhilhealthNoHasPrefix(v string) predicate.Personnel {
	return predicate.Personnel(sql.FieldHasPrefix(FieldPhilhealthNo, v))
}

// PhilhealthNoHasSuffix applies the HasSuffix predicate on the "philhealth_no" field.
func PhilhealthNoHasSuffix(v string) predicate.Personnel {
	return predicate.Personnel(sql.FieldHasSuffix(FieldPhilhealthNo, v))
}

// PhilhealthNoIsNil applies the IsNil predicate on the "philhealth_no" field.
func PhilhealthNoIsNil() predicate.Personnel {
	return predicate.Personnel(sql.FieldIsNull(FieldPhilhealthNo))
}

// PhilhealthNoNotNil applies the NotNil predicate on the "philhealth_no" field.
func PhilhealthNoNotNil() predicate.Personnel {
	return predicate.Personnel(sql.FieldNotNull(FieldPhilhealthNo))
}

// PhilhealthNoEqualFold applies the EqualFold predicate on the "philhealth_no" field.
func PhilhealthNoEqualFold(v string) predicate.Personnel {
	return predicate.Personnel(sql.FieldEqualFold(FieldPhilhealthNo, v))
}

// PhilhealthNoContainsFold applies the ContainsFold predicate on the "philhealth_no" field.
func PhilhealthNoContainsFold(v string) predicate.Personnel {
	return predicate.Personnel(sql.FieldContainsFold(FieldPhilhealthNo, v))
}

// BirthdateEQ applies the EQ predicate on the "birthdate" field.
func BirthdateEQ(v string) predicate.Personnel {
	return predicate.Personnel(sql.FieldEQ(FieldBirthdate, v))
}

// BirthdateNEQ applies the NEQ predicate on the "birthdate" field.
func BirthdateNEQ(v string) predicate.Personnel {
	return predicate.Personnel(sql.FieldNEQ(FieldBirthdate, v))
}

// BirthdateIn applies the In predicate on the "birthdate" field.
func BirthdateIn(vs ...string) predicate.Personnel {
	return predicate.Personnel(sql.FieldIn(FieldBirthdate, vs...))
}

// BirthdateNotIn applies the NotIn predicate on the "birthdate" field.
func BirthdateNotIn(vs ...string) predicate.Personnel {
	return predicate.Personnel(sql.FieldNotIn(FieldBirthdate, vs...))
}

// BirthdateGT applies the GT predicate on the "birthdate" field.
func BirthdateGT(v string) predicate.Personnel {
	return predicate.Personnel(sql.FieldGT(FieldBirthdate, v))
}

// BirthdateGTE applies the GTE predicate on the "birthdate" field.
func BirthdateGTE(v string) predicate.Personnel {
	return predicate.Personnel(sql.FieldGTE(FieldBirthdate, v))
}

// BirthdateLT applies the LT predicate on the "birthdate" field.
func BirthdateLT(v string) predicate.Personnel {
	return predicate.Personnel(sql.FieldLT(FieldBirthdate, v))
}

// BirthdateLTE applies the LTE predicate on the "birthdate" field.
func BirthdateLTE(v string) predicate.Personnel {
	return predicate.Personnel(sql.FieldLTE(FieldBirthdate, v))
}

// BirthdateContains applies the Contains predicate on the "birthdate" field.
func BirthdateContains(v string) predicate.Personnel {
	return predicate.Personnel(sql.FieldContains(FieldBirthdate, v))
}

// BirthdateHasPrefix applies the HasPrefix predicate on the "birthdate" field.
func BirthdateHasPrefix(v string) predicate.Personnel {
	return predicate.Personnel(sql.FieldHasPrefix(FieldBirthdate, v))
}

// BirthdateHasSuffix applies the HasSuffix predicate on the "birthdate" field.
func BirthdateHasSuffix(v string) predicate.Personnel {
	return predicate.Personnel(sql.FieldHasSuffix(FieldBirthdate, v))
}

// BirthdateIsNil applies the IsNil predicate on the "birthdate" field.
func BirthdateIsNil() predicate.Personnel {
	return predicate.Personnel(sql.FieldIsNull(FieldBirthdate))
}

// BirthdateNotNil applies the NotNil predicate on the "birthdate" field.
func BirthdateNotNil() predicate.Personnel {
	return predicate.Personnel(sql.FieldNotNull(FieldBirthdate))
}

// BirthdateEqualFold applies the EqualFold predicate on the "birthdate" field.
func BirthdateEqualFold(v string) predicate.Personnel {
	return predicate.Personnel(sql.FieldEqualFold(FieldBirthdate, v))
}

// BirthdateContainsFold applies the ContainsFold predicate on the "birthdate" field.
func BirthdateContainsFold(v string) predicate.Personnel {
	return predicate.Personnel(sql.FieldContainsFold(FieldBirthdate, v))
}

// AddressEQ applies the EQ predicate on the "address" field.
func AddressEQ(v string) predicate.Personnel {
	return predicate.Personnel(sql.FieldEQ(FieldAddress, v))
}

// AddressNEQ applies the NEQ predicate on the "address" field.
func AddressNEQ(v string) predicate.Personnel {
	return predicate.Personnel(sql.FieldNEQ(FieldAddress, v))
}

// AddressIn applies the In predicate on the "address" field.
func AddressIn(vs ...string) predicate.Personnel {
	return predicate.Personnel(sql.FieldIn(FieldAddress, vs...))
}

// AddressNotIn applies the NotIn predicate on the "address" field.
func AddressNotIn(vs ...string) predicate.Personnel {
	return predicate.Personnel(sql.FieldNotIn(FieldAddress, vs...))
}

// AddressGT applies the GT predicate on the "address" field.
func AddressGT(v string) predicate.Personnel {
	return predicate.Personnel(sql.FieldGT(FieldAddress, v))
}

// AddressGTE applies the GTE predicate on the "address" field.
func AddressGTE(v string) predicate.Personnel {
	return predicate.Personnel(sql.FieldGTE(FieldAddress, v))
}

// AddressLT applies the LT predicate on the "address" field.
func AddressLT(v string) predicate.Personnel {
	return predicate.Personnel(sql.FieldLT(FieldAddress, v))
}

// AddressLTE applies the LTE predicate on the "address" field.
func AddressLTE(v string) predicate.Personnel {
	return predicate.Personnel(sql.FieldLTE(FieldAddress, v))
}

// AddressContains applies the Contains predicate on the "address" field.
func AddressContains(v string) predicate.Personnel {
	return predicate.Personnel(sql.FieldContains(FieldAddress, v))
}

// AddressHasPrefix applies the HasPrefix predicate on the "address" field.
func AddressHasPrefix(v string) predicate.Personnel {
	return predicate.Personnel(sql.FieldHasPrefix(FieldAddress, v))
}

// AddressHasSuffix applies the HasSuffix predicate on the "address" field.
func AddressHasSuffix(v string) predicate.Personnel {
	return predicate.Personnel(sql.FieldHasSuffix(FieldAddress, v))
}

// AddressIsNil applies the IsNil predicate on the "address" field.
func AddressIsNil() predicate.Personnel {
	return predicate.Personnel(sql.FieldIsNull(FieldAddress))
}

// AddressNotNil applies the NotNil predicate on the "address" field.
func AddressNotNil() predicate.Personnel {
	return predicate.Personnel(sql.FieldNotNull(FieldAddress))
}

// AddressEqualFold applies the EqualFold predicate on the "address" field.
func AddressEqualFold(v string) predicate.Personnel {
	return predicate.Personnel(sql.FieldEqualFold(FieldAddress, v))
}

// AddressContainsFold applies the ContainsFold predicate on the "address" field.
func AddressContainsFold(v string) predicate.Personnel {
	return predicate.Personnel(sql.FieldContainsFold(FieldAddress, v))
}

// EmploymentEQ applies the EQ predicate on the "employment" field.
func EmploymentEQ(v string) predicate.Personnel {
	return predicate.Personnel(sql.FieldEQ(FieldEmployment, v))
}

// EmploymentNEQ applies the NEQ predicate on the "employment" field.
func EmploymentNEQ(v string) predicate.Personnel {
	return predicate.Personnel(sql.FieldNEQ(FieldEmployment, v))
}

// EmploymentIn applies the In predicate on the "employment" field.
func EmploymentIn(vs ...string) predicate.Personnel {
	return predicate.Personnel(sql.FieldIn(FieldEmployment, vs...))
}

// EmploymentNotIn applies the NotIn predicate on the "employment" field.
func EmploymentNotIn(vs ...string) predicate.Personnel {
	return predicate.Personnel(sql.FieldNotIn(FieldEmployment, vs...))
}

// EmploymentGT applies the GT predicate on the "employment" field.
func EmploymentGT(v string) predicate.Personnel {
	return predicate.Personnel(sql.FieldGT(FieldEmployment, v))
}

// EmploymentGTE applies the GTE predicate on the "employment" field.
func EmploymentGTE(v string) predicate.Personnel {
	return predicate.Personnel(sql.FieldGTE(FieldEmployment, v))
}

// EmploymentLT applies the LT predicate on the "employment" field.
func EmploymentLT(v string) predicate.Personnel {
	return predicate.Personnel(sql.FieldLT(FieldEmployment, v))
}

// EmploymentLTE applies the LTE predicate on the "employment" field.
func EmploymentLTE(v string) predicate.Personnel {
	return predicate.Personnel(sql.FieldLTE(FieldEmployment, v))
}

// EmploymentContains applies the Contains predicate on the "employment" field.
func EmploymentContains(v string) predicate.Personnel {
	return predicate.Personnel(sql.FieldContains(FieldEmployment, v))
}

// EmploymentHasPrefix applies the HasPrefix predicate on the "employment" field.
func EmploymentHasPrefix(v string) predicate.Personnel {
	return predicate.Personnel(sql.FieldHasPrefix(FieldEmployment, v))
}

// EmploymentHasSuffix applies the HasSuffix predicate on the "employment" field.
func EmploymentHasSuffix(v string) predicate.Personnel {
	return predicate.Personnel(sql.FieldHasSuffix(FieldEmployment, v))
}

// EmploymentIsNil applies the IsNil predicate on the "employment" field.
func EmploymentIsNil() predicate.Personnel {
	return predicate.Personnel(sql.FieldIsNull(FieldEmployment))
}

// EmploymentNotNil applies the NotNil predicate on the "employment" field.
func EmploymentNotNil() predicate.Personnel {
	return predicate.Personnel(sql.FieldNotNull(FieldEmployment))
}

// EmploymentEqualFold applies the EqualFold predicate on the "employment" field.
func EmploymentEqualFold(v string) predicate.Personnel {
	return predicate.Personnel(sql.FieldEqualFold(FieldEmployment, v))
}

// EmploymentContainsFold applies the ContainsFold predicate on the "employment" field.
func EmploymentContainsFold(v string) predicate.Personnel {
	return predicate.Personnel(sql.FieldContainsFold(FieldEmployment, v))
}

// RecordTextEQ applies the EQ predicate on the "record_text" field.
func RecordTextEQ(v string) predicate.Personnel {
	return predicate.Personnel(sql.FieldEQ(FieldRecordText, v))
}

// RecordTextNEQ applies the NEQ predicate on the "record_text" field.
func RecordTextNEQ(v string) predicate.Personnel {
	return predicate.Personnel(sql.FieldNEQ(FieldRecordText, v))
}

// RecordTextIn applies the In predicate on the "record_text" field.
func RecordTextIn(vs ...string) predicate.Personnel {
	return predicate.Personnel(sql.FieldIn(FieldRecordText, vs...))
}

// RecordTextNotIn applies the NotIn predicate on the "record_text" field.
func RecordTextNotIn(vs ...string) predicate.Personnel {
	return predicate.Personnel(sql.FieldNotIn(FieldRecordText, vs...))
}

// RecordTextGT applies the GT predicate on the "record_text" field.
func RecordTextGT(v string) predicate.Personnel {
	return predicate.Personnel(sql.FieldGT(FieldRecordText, v))
}

// RecordTextGTE applies the GTE predicate on the "record_text" field.
func RecordTextGTE(v string) predicate.Personnel {
	return predicate.Personnel(sql.FieldGTE(FieldRecordText, v))
}

// RecordTextLT applies the LT predicate on the "record_text" field.
func RecordTextLT(v string) predicate.Personnel {
	return predicate.Personnel(sql.FieldLT(FieldRecordText, v))
}

// RecordTextLTE applies the LTE predicate on the "record_text" field.
func RecordTextLTE(v string) predicate.Personnel {
	return predicate.Personnel(sql.FieldLTE(FieldRecordText, v))
}

// RecordTextContains applies the Contains predicate on the "record_text" field.
func RecordTextContains(v string) predicate.Personnel {
	return predicate.Personnel(sql.FieldContains(FieldRecordText, v))
}

// RecordTextHasPrefix applies the HasPrefix predicate on the "record_text" field.
func RecordTextHasPrefix(v string) predicate.Personnel {
	return predicate.Personnel(sql.FieldHasPrefix(FieldRecordText, v))
}

// RecordTextHasSuffix applies the HasSuffix predicate on the "record_text" field.
func RecordTextHasSuffix(v string) predicate.Personnel {
	return predicate.Personnel(sql.FieldHasSuffix(FieldRecordText, v))
}

// RecordTextIsNil applies the IsNil predicate on the "record_text" field.
func RecordTextIsNil() predicate.Personnel {
	return predicate.Personnel(sql.FieldIsNull(FieldRecordText))
}

// RecordTextNotNil applies the NotNil predicate on the "record_text" field.
func RecordTextNotNil() predicate.Personnel {
	return predicate.Personnel(sql.FieldNotNull(FieldRecordText))
}

// RecordTextEqualFold applies the EqualFold predicate on the "record_text" field.
func RecordTextEqualFold(v string) predicate.Personnel {
	return predicate.Personnel(sql.FieldEqualFold(FieldRecordText, v))
}

// RecordTextContainsFold applies the ContainsFold predicate on the "record_text" field.
func RecordTextContainsFold(v string) predicate.Personnel {
	return predicate.Personnel(sql.FieldContainsFold(FieldRecordText, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Personnel {
	return predicate.Personnel(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Personnel {
	return predicate.Personnel(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Personnel {
	return predicate.Personnel(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Personnel {
	return predicate.Personnel(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Personnel {
	return predicate.Personnel(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Personnel {
	return predicate.Personnel(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Personnel {
	return predicate.Personnel(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Personnel {
	return predicate.Personnel(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Personnel {
	return predicate.Personnel(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Personnel {
	return predicate.Personnel(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Personnel {
	return predicate.Personnel(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Personnel {
	return predicate.Personnel(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Personnel {
	return predicate.Personnel(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Personnel {
	return predicate.Personnel(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Personnel {
	return predicate.Personnel(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Personnel {
	return predicate.Personnel(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasLoads applies the HasEdge predicate on the "loads" edge.
func HasLoads() predicate.Personnel {
	return predicate.Personnel(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, LoadsTable, LoadsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasLoadsWith applies the HasEdge predicate on the "loads" edge with a given conditions (other predicates).
func HasLoadsWith(preds ...predicate.LoadEntry) predicate.Personnel {
	return predicate.Personnel(func(s *sql.Selector) {
		step := newLoadsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Personnel) predicate.Personnel {
	return predicate.Personnel(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Personnel) predicate.Personnel {
	return predicate.Personnel(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Personnel) predicate.Personnel {
	return predicate.Personnel(sql.NotPredicates(p))
}

// Code generated by ent, DO NOT EDIT.

package personnel

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the personnel type in the database.
	Label = "personnel"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldVariant holds the string denoting the variant field in the database.
	FieldVariant = "variant"
	// FieldPosition holds the string denoting the position field in the database.
	FieldPosition = "position"
	// FieldDepartment holds the string denoting the department field in the database.
	FieldDepartment = "department"
	// FieldEmail holds the string denoting the email field in the database.
	FieldEmail = "email"
	// FieldPhone holds the string denoting the phone field in the database.
	FieldPhone = "phone"
	// FieldSssNo holds the string denoting the sss_no field in the database.
	FieldSssNo = "sss_no"
	// FieldPhilhealthNo holds the string denoting the philhealth_no field in the database.
	FieldPhilhealthNo = "philhealth_no"
	// FieldBirthdate holds the string denoting the birthdate field in the database.
	FieldBirthdate = "birthdate"
	// FieldAddress holds the string denoting the address field in the database.
	FieldAddress = "address"
	// FieldEmployment holds the string denoting the employment field in the database.
	FieldEmployment = "employment"
	// FieldRecordText holds the string denoting the record_text field in the database.
	FieldRecordText = "record_text"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeLoads holds the string denoting the loads edge name in mutations.
	EdgeLoads = "loads"
	// Table holds the table name of the personnel in the database.
	Table = "personnel"
	// LoadsTable is the table that holds the loads relation/edge.
	LoadsTable = "load_entries"
	// LoadsInverseTable is the table name for the LoadEntry entity.
	// It exists in this package in order to avoid circular dependency with the "loadentry" package.
	LoadsInverseTable = "load_entries"
	// LoadsColumn is the table column denoting the loads relation/edge.
	LoadsColumn = "personnel_id"
)

// Columns holds all SQL columns for personnel fields.
var Columns = []string{
	FieldID,
	FieldName,
	FieldVariant,
	FieldPosition,
	FieldDepartment,
	FieldEmail,
	FieldPhone,
	FieldSssNo,
	FieldPhilhealthNo,
	FieldBirthdate,
	FieldAddress,
	FieldEmployment,
	FieldRecordText,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// VariantValidator is a validator for the "variant" field. It is called by the builders before save.
	VariantValidator func(string) error
	// DepartmentValidator is a validator for the "department" field. It is called by the builders before save.
	DepartmentValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Personnel queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByVariant orders the results by the variant field.
func ByVariant(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVariant, opts...).ToFunc()
}

// ByPosition orders the results by the position field.
func ByPosition(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPosition, opts...).ToFunc()
}

// ByDepartment orders the results by the department field.
func ByDepartment(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDepartment, opts...).ToFunc()
}

// ByEmail orders the results by the email field.
func ByEmail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmail, opts...).ToFunc()
}

// ByPhone orders the results by the phone field.
func ByPhone(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPhone, opts...).ToFunc()
}

// BySssNo orders the results by the sss_no field.
func BySssNo(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSssNo, opts...).ToFunc()
}

// ByPhilhealthNo orders the results by the philhealth_no field.
func ByPhilhealthNo(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPhilhealthNo, opts...).ToFunc()
}

// ByBirthdate orders the results by the birthdate field.
func ByBirthdate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBirthdate, opts...).ToFunc()
}

// ByAddress orders the results by the address field.
func ByAddress(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAddress, opts...).ToFunc()
}

// ByEmployment orders the results by the employment field.
func ByEmployment(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmployment, opts...).ToFunc()
}

// ByRecordText orders the results by the record_text field.
func ByRecordText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRecordText, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByLoadsCount orders the results by loads count.
func ByLoadsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newLoadsStep(), opts...)
	}
}

// ByLoads orders the results by loads terms.
func ByLoads(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newLoadsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newLoadsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(LoadsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, LoadsTable, LoadsColumn),
	)
}

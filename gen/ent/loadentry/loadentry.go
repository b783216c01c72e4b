// Code generated by ent, DO NOT EDIT.

package loadentry

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the loadentry type in the database.
	Label = "load_entry"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldPersonnelID holds the string denoting the personnel_id field in the database.
	FieldPersonnelID = "personnel_id"
	// FieldDay holds the string denoting the day field in the database.
	FieldDay = "day"
	// FieldTimeStart holds the string denoting the time_start field in the database.
	FieldTimeStart = "time_start"
	// FieldTimeEnd holds the string denoting the time_end field in the database.
	FieldTimeEnd = "time_end"
	// FieldSubject holds the string denoting the subject field in the database.
	FieldSubject = "subject"
	// FieldSection holds the string denoting the section field in the database.
	FieldSection = "section"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgePersonnel holds the string denoting the personnel edge name in mutations.
	EdgePersonnel = "personnel"
	// Table holds the table name of the loadentry in the database.
	Table = "load_entries"
	// PersonnelTable is the table that holds the personnel relation/edge.
	PersonnelTable = "load_entries"
	// PersonnelInverseTable is the table name for the Personnel entity.
	// It exists in this package in order to avoid circular dependency with the "personnel" package.
	PersonnelInverseTable = "personnel"
	// PersonnelColumn is the table column denoting the personnel relation/edge.
	PersonnelColumn = "personnel_id"
)

// Columns holds all SQL columns for loadentry fields.
var Columns = []string{
	FieldID,
	FieldPersonnelID,
	FieldDay,
	FieldTimeStart,
	FieldTimeEnd,
	FieldSubject,
	FieldSection,
	FieldCreatedAt,
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
	// DayValidator is a validator for the "day" field. It is called by the builders before save.
	DayValidator func(string) error
	// TimeStartValidator is a validator for the "time_start" field. It is called by the builders before save.
	TimeStartValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the LoadEntry queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByPersonnelID orders the results by the personnel_id field.
func ByPersonnelID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPersonnelID, opts...).ToFunc()
}

// ByDay orders the results by the day field.
func ByDay(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDay, opts...).ToFunc()
}

// ByTimeStart orders the results by the time_start field.
func ByTimeStart(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimeStart, opts...).ToFunc()
}

// ByTimeEnd orders the results by the time_end field.
func ByTimeEnd(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimeEnd, opts...).ToFunc()
}

// BySubject orders the results by the subject field.
func BySubject(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubject, opts...).ToFunc()
}

// BySection orders the results by the section field.
func BySection(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSection, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByPersonnelField orders the results by personnel field.
func ByPersonnelField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPersonnelStep(), sql.OrderByField(field, opts...))
	}
}
func newPersonnelStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PersonnelInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, PersonnelTable, PersonnelColumn),
	)
}

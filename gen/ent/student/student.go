// Code generated by ent, DO NOT EDIT.

package student

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the student type in the database.
	Label = "student"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldStudentNo holds the string denoting the student_no field in the database.
	FieldStudentNo = "student_no"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldProgram holds the string denoting the program field in the database.
	FieldProgram = "program"
	// FieldYearLevel holds the string denoting the year_level field in the database.
	FieldYearLevel = "year_level"
	// FieldSection holds the string denoting the section field in the database.
	FieldSection = "section"
	// FieldSemester holds the string denoting the semester field in the database.
	FieldSemester = "semester"
	// FieldSchoolYear holds the string denoting the school_year field in the database.
	FieldSchoolYear = "school_year"
	// FieldAdviser holds the string denoting the adviser field in the database.
	FieldAdviser = "adviser"
	// FieldRecordText holds the string denoting the record_text field in the database.
	FieldRecordText = "record_text"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeSubjects holds the string denoting the subjects edge name in mutations.
	EdgeSubjects = "subjects"
	// EdgeGrades holds the string denoting the grades edge name in mutations.
	EdgeGrades = "grades"
	// Table holds the table name of the student in the database.
	Table = "students"
	// SubjectsTable is the table that holds the subjects relation/edge.
	SubjectsTable = "subject_entries"
	// SubjectsInverseTable is the table name for the SubjectEntry entity.
	// It exists in this package in order to avoid circular dependency with the "subjectentry" package.
	SubjectsInverseTable = "subject_entries"
	// SubjectsColumn is the table column denoting the subjects relation/edge.
	SubjectsColumn = "student_id"
	// GradesTable is the table that holds the grades relation/edge.
	GradesTable = "grade_reports"
	// GradesInverseTable is the table name for the GradeReport entity.
	// It exists in this package in order to avoid circular dependency with the "gradereport" package.
	GradesInverseTable = "grade_reports"
	// GradesColumn is the table column denoting the grades relation/edge.
	GradesColumn = "student_id"
)

// Columns holds all SQL columns for student fields.
var Columns = []string{
	FieldID,
	FieldStudentNo,
	FieldName,
	FieldProgram,
	FieldYearLevel,
	FieldSection,
	FieldSemester,
	FieldSchoolYear,
	FieldAdviser,
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
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Student queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByStudentNo orders the results by the student_no field.
func ByStudentNo(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStudentNo, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByProgram orders the results by the program field.
func ByProgram(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProgram, opts...).ToFunc()
}

// ByYearLevel orders the results by the year_level field.
func ByYearLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldYearLevel, opts...).ToFunc()
}

// BySection orders the results by the section field.
func BySection(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSection, opts...).ToFunc()
}

// BySemester orders the results by the semester field.
func BySemester(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSemester, opts...).ToFunc()
}

// BySchoolYear orders the results by the school_year field.
func BySchoolYear(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSchoolYear, opts...).ToFunc()
}

// ByAdviser orders the results by the adviser field.
func ByAdviser(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAdviser, opts...).ToFunc()
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

// BySubjectsCount orders the results by subjects count.
func BySubjectsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newSubjectsStep(), opts...)
	}
}

// BySubjects orders the results by subjects terms.
func BySubjects(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSubjectsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByGradesCount orders the results by grades count.
func ByGradesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newGradesStep(), opts...)
	}
}

// ByGrades orders the results by grades terms.
func ByGrades(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newGradesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newSubjectsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SubjectsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, SubjectsTable, SubjectsColumn),
	)
}
func newGradesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(GradesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, GradesTable, GradesColumn),
	)
}

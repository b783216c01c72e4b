// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ExtractJob is the predicate function for extractjob builders.
type ExtractJob func(*sql.Selector)

// GradeEntry is the predicate function for gradeentry builders.
type GradeEntry func(*sql.Selector)

// GradeReport is the predicate function for gradereport builders.
type GradeReport func(*sql.Selector)

// LoadEntry is the predicate function for loadentry builders.
type LoadEntry func(*sql.Selector)

// Personnel is the predicate function for personnel builders.
type Personnel func(*sql.Selector)

// SourceFile is the predicate function for sourcefile builders.
type SourceFile func(*sql.Selector)

// Student is the predicate function for student builders.
type Student func(*sql.Selector)

// SubjectEntry is the predicate function for subjectentry builders.
type SubjectEntry func(*sql.Selector)

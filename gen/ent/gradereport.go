// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/priya-sndrs/InstSys-CaseStudy-sub000/gen/ent/gradereport"
	"github.com/priya-sndrs/InstSys-CaseStudy-sub000/gen/ent/student"
)

// GradeReport is the model entity for the GradeReport schema.
type GradeReport struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// StudentID holds the value of the "student_id" field.
	StudentID uuid.UUID `json:"student_id,omitempty"`
	// Semester holds the value of the "semester" field.
	Semester string `json:"semester,omitempty"`
	// SchoolYear holds the value of the "school_year" field.
	SchoolYear string `json:"school_year,omitempty"`
	// Gwa holds the value of the "gwa" field.
	Gwa *float64 `json:"gwa,omitempty"`
	// RecordText holds the value of the "record_text" field.
	RecordText string `json:"record_text,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the GradeReportQuery when eager-loading is set.
	Edges        GradeReportEdges `json:"edges"`
	selectValues sql.SelectValues
}

// GradeReportEdges holds the relations/edges for other nodes in the graph.
type GradeReportEdges struct {
	// Student holds the value of the student edge.
	Student *Student `json:"student,omitempty"`
	// Entries holds the value of the entries edge.
	Entries []*GradeEntry `json:"entries,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// StudentOrErr returns the Student value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e GradeReportEdges) StudentOrErr() (*Student, error) {
	if e.Student != nil {
		return e.Student, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: student.Label}
	}
	return nil, &NotLoadedError{edge: "student"}
}

// EntriesOrErr returns the Entries value or an error if the edge
// was not loaded in eager-loading.
func (e GradeReportEdges) EntriesOrErr() ([]*GradeEntry, error) {
	if e.loadedTypes[1] {
		return e.Entries, nil
	}
	return nil, &NotLoadedError{edge: "entries"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*GradeReport) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case gradereport.FieldGwa:
			values[i] = new(sql.NullFloat64)
		case gradereport.FieldSemester, gradereport.FieldSchoolYear, gradereport.FieldRecordText:
			values[i] = new(sql.NullString)
		case gradereport.FieldCreatedAt, gradereport.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case gradereport.FieldID, gradereport.FieldStudentID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the GradeReport fields.
func (_m *GradeReport) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case gradereport.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case gradereport.FieldStudentID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field student_id", values[i])
			} else if value != nil {
				_m.StudentID = *value
			}
		case gradereport.FieldSemester:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field semester", values[i])
			} else if value.Valid {
				_m.Semester = value.String
			}
		case gradereport.FieldSchoolYear:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field school_year", values[i])
			} else if value.Valid {
				_m.SchoolYear = value.String
			}
		case gradereport.FieldGwa:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field gwa", values[i])
			} else if value.Valid {
				_m.Gwa = new(float64)
				*_m.Gwa = value.Float64
			}
		case gradereport.FieldRecordText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field record_text", values[i])
			} else if value.Valid {
				_m.RecordText = value.String
			}
		case gradereport.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case gradereport.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the GradeReport.
// This includes values selected through modifiers, order, etc.
func (_m *GradeReport) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryStudent queries the "student" edge of the GradeReport entity.
func (_m *GradeReport) QueryStudent() *StudentQuery {
	return NewGradeReportClient(_m.config).QueryStudent(_m)
}

// QueryEntries queries the "entries" edge of the GradeReport entity.
func (_m *GradeReport) QueryEntries() *GradeEntryQuery {
	return NewGradeReportClient(_m.config).QueryEntries(_m)
}

// Update returns a builder for updating this GradeReport.
// Note that you need to call GradeReport.Unwrap() before calling this method if this GradeReport
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *GradeReport) Update() *GradeReportUpdateOne {
	return NewGradeReportClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the GradeReport entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *GradeReport) Unwrap() *GradeReport {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: GradeReport is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *GradeReport) String() string {
	var builder strings.Builder
	builder.WriteString("GradeReport(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("student_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.StudentID))
	builder.WriteString(", ")
	builder.WriteString("semester=")
	builder.WriteString(_m.Semester)
	builder.WriteString(", ")
	builder.WriteString("school_year=")
	builder.WriteString(_m.SchoolYear)
	builder.WriteString(", ")
	if v := _m.Gwa; v != nil {
		builder.WriteString("gwa=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("record_text=")
	builder.WriteString(_m.RecordText)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// GradeReports is a parsable slice of GradeReport.
type GradeReports []*GradeReport

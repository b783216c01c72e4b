// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/priya-sndrs/InstSys-CaseStudy-sub000/gen/ent/student"
	"github.com/priya-sndrs/InstSys-CaseStudy-sub000/gen/ent/subjectentry"
)

// SubjectEntry is the model entity for the SubjectEntry schema.
type SubjectEntry struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// StudentID holds the value of the "student_id" field.
	StudentID uuid.UUID `json:"student_id,omitempty"`
	// Code holds the value of the "code" field.
	Code string `json:"code,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// Units holds the value of the "units" field.
	Units *float64 `json:"units,omitempty"`
	// Room holds the value of the "room" field.
	Room string `json:"room,omitempty"`
	// Day holds the value of the "day" field.
	Day string `json:"day,omitempty"`
	// TimeStart holds the value of the "time_start" field.
	TimeStart string `json:"time_start,omitempty"`
	// TimeEnd holds the value of the "time_end" field.
	TimeEnd string `json:"time_end,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the SubjectEntryQuery when eager-loading is set.
	Edges        SubjectEntryEdges `json:"edges"`
	selectValues sql.SelectValues
}

// SubjectEntryEdges holds the relations/edges for other nodes in the graph.
type SubjectEntryEdges struct {
	// Student holds the value of the student edge.
	Student *Student `json:"student,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// StudentOrErr returns the Student value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SubjectEntryEdges) StudentOrErr() (*Student, error) {
	if e.Student != nil {
		return e.Student, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: student.Label}
	}
	return nil, &NotLoadedError{edge: "student"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SubjectEntry) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case subjectentry.FieldUnits:
			values[i] = new(sql.NullFloat64)
		case subjectentry.FieldCode, subjectentry.FieldTitle, subjectentry.FieldRoom, subjectentry.FieldDay, subjectentry.FieldTimeStart, subjectentry.FieldTimeEnd:
			values[i] = new(sql.NullString)
		case subjectentry.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case subjectentry.FieldID, subjectentry.FieldStudentID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SubjectEntry fields.
func (_m *SubjectEntry) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case subjectentry.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case subjectentry.FieldStudentID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field student_id", values[i])
			} else if value != nil {
				_m.StudentID = *value
			}
		case subjectentry.FieldCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field code", values[i])
			} else if value.Valid {
				_m.Code = value.String
			}
		case subjectentry.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case subjectentry.FieldUnits:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field units", values[i])
			} else if value.Valid {
				_m.Units = new(float64)
				*_m.Units = value.Float64
			}
		case subjectentry.FieldRoom:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field room", values[i])
			} else if value.Valid {
				_m.Room = value.String
			}
		case subjectentry.FieldDay:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field day", values[i])
			} else if value.Valid {
				_m.Day = value.String
			}
		case subjectentry.FieldTimeStart:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field time_start", values[i])
			} else if value.Valid {
				_m.TimeStart = value.String
			}
		case subjectentry.FieldTimeEnd:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field time_end", values[i])
			} else if value.Valid {
				_m.TimeEnd = value.String
			}
		case subjectentry.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SubjectEntry.
// This includes values selected through modifiers, order, etc.
func (_m *SubjectEntry) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryStudent queries the "student" edge of the SubjectEntry entity.
func (_m *SubjectEntry) QueryStudent() *StudentQuery {
	return NewSubjectEntryClient(_m.config).QueryStudent(_m)
}

// Update returns a builder for updating this SubjectEntry.
// Note that you need to call SubjectEntry.Unwrap() before calling this method if this SubjectEntry
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SubjectEntry) Update() *SubjectEntryUpdateOne {
	return NewSubjectEntryClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SubjectEntry entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SubjectEntry) Unwrap() *SubjectEntry {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SubjectEntry is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SubjectEntry) String() string {
	var builder strings.Builder
	builder.WriteString("SubjectEntry(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("student_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.StudentID))
	builder.WriteString(", ")
	builder.WriteString("code=")
	builder.WriteString(_m.Code)
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	if v := _m.Units; v != nil {
		builder.WriteString("units=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("room=")
	builder.WriteString(_m.Room)
	builder.WriteString(", ")
	builder.WriteString("day=")
	builder.WriteString(_m.Day)
	builder.WriteString(", ")
	builder.WriteString("time_start=")
	builder.WriteString(_m.TimeStart)
	builder.WriteString(", ")
	builder.WriteString("time_end=")
	builder.WriteString(_m.TimeEnd)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// SubjectEntries is a parsable slice of SubjectEntry.
type SubjectEntries []*SubjectEntry

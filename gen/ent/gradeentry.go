// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/priya-sndrs/InstSys-CaseStudy-sub000/gen/ent/gradeentry"
	"github.com/priya-sndrs/InstSys-CaseStudy-sub000/gen/ent/gradereport"
)

// GradeEntry is the model entity for the GradeEntry schema.
type GradeEntry struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// ReportID holds the value of the "report_id" field.
	ReportID uuid.UUID `json:"report_id,omitempty"`
	// Code holds the value of the "code" field.
	Code string `json:"code,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// Units holds the value of the "units" field.
	Units *float64 `json:"units,omitempty"`
	// FinalGrade holds the value of the "final_grade" field.
	FinalGrade string `json:"final_grade,omitempty"`
	// Remarks holds the value of the "remarks" field.
	Remarks string `json:"remarks,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the GradeEntryQuery when eager-loading is set.
	Edges        GradeEntryEdges `json:"edges"`
	selectValues sql.SelectValues
}

// GradeEntryEdges holds the relations/edges for other nodes in the graph.
type GradeEntryEdges struct {
	// Report holds the value of the report edge.
	Report *GradeReport `json:"report,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ReportOrErr returns the Report value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e GradeEntryEdges) ReportOrErr() (*GradeReport, error) {
	if e.Report != nil {
		return e.Report, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: gradereport.Label}
	}
	return nil, &NotLoadedError{edge: "report"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*GradeEntry) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case gradeentry.FieldUnits:
			values[i] = new(sql.NullFloat64)
		case gradeentry.FieldCode, gradeentry.FieldTitle, gradeentry.FieldFinalGrade, gradeentry.FieldRemarks:
			values[i] = new(sql.NullString)
		case gradeentry.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case gradeentry.FieldID, gradeentry.FieldReportID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the GradeEntry fields.
func (_m *GradeEntry) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case gradeentry.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case gradeentry.FieldReportID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field report_id", values[i])
			} else if value != nil {
				_m.ReportID = *value
			}
		case gradeentry.FieldCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field code", values[i])
			} else if value.Valid {
				_m.Code = value.String
			}
		case gradeentry.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case gradeentry.FieldUnits:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field units", values[i])
			} else if value.Valid {
				_m.Units = new(float64)
				*_m.Units = value.Float64
			}
		case gradeentry.FieldFinalGrade:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field final_grade", values[i])
			} else if value.Valid {
				_m.FinalGrade = value.String
			}
		case gradeentry.FieldRemarks:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field remarks", values[i])
			} else if value.Valid {
				_m.Remarks = value.String
			}
		case gradeentry.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the GradeEntry.
// This includes values selected through modifiers, order, etc.
func (_m *GradeEntry) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryReport queries the "report" edge of the GradeEntry entity.
func (_m *GradeEntry) QueryReport() *GradeReportQuery {
	return NewGradeEntryClient(_m.config).QueryReport(_m)
}

// Update returns a builder for updating this GradeEntry.
// Note that you need to call GradeEntry.Unwrap() before calling this method if this GradeEntry
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *GradeEntry) Update() *GradeEntryUpdateOne {
	return NewGradeEntryClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the GradeEntry entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *GradeEntry) Unwrap() *GradeEntry {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: GradeEntry is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *GradeEntry) String() string {
	var builder strings.Builder
	builder.WriteString("GradeEntry(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("report_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ReportID))
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
	builder.WriteString("final_grade=")
	builder.WriteString(_m.FinalGrade)
	builder.WriteString(", ")
	builder.WriteString("remarks=")
	builder.WriteString(_m.Remarks)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// GradeEntries is a parsable slice of GradeEntry.
type GradeEntries []*GradeEntry

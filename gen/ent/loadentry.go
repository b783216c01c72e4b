// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/priya-sndrs/InstSys-CaseStudy-sub000/gen/ent/loadentry"
	"github.com/priya-sndrs/InstSys-CaseStudy-sub000/gen/ent/personnel"
)

// LoadEntry is the model entity for the LoadEntry schema.
type LoadEntry struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// PersonnelID holds the value of the "personnel_id" field.
	PersonnelID uuid.UUID `json:"personnel_id,omitempty"`
	// Day holds the value of the "day" field.
	Day string `json:"day,omitempty"`
	// TimeStart holds the value of the "time_start" field.
	TimeStart string `json:"time_start,omitempty"`
	// TimeEnd holds the value of the "time_end" field.
	TimeEnd string `json:"time_end,omitempty"`
	// Subject holds the value of the "subject" field.
	Subject string `json:"subject,omitempty"`
	// Section holds the value of the "section" field.
	Section string `json:"section,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the LoadEntryQuery when eager-loading is set.
	Edges        LoadEntryEdges `json:"edges"`
	selectValues sql.SelectValues
}

// LoadEntryEdges holds the relations/edges for other nodes in the graph.
type LoadEntryEdges struct {
	// Personnel holds the value of the personnel edge.
	Personnel *Personnel `json:"personnel,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// PersonnelOrErr returns the Personnel value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e LoadEntryEdges) PersonnelOrErr() (*Personnel, error) {
	if e.Personnel != nil {
		return e.Personnel, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: personnel.Label}
	}
	return nil, &NotLoadedError{edge: "personnel"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*LoadEntry) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case loadentry.FieldDay, loadentry.FieldTimeStart, loadentry.FieldTimeEnd, loadentry.FieldSubject, loadentry.FieldSection:
			values[i] = new(sql.NullString)
		case loadentry.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case loadentry.FieldID, loadentry.FieldPersonnelID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the LoadEntry fields.
func (_m *LoadEntry) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case loadentry.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case loadentry.FieldPersonnelID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field personnel_id", values[i])
			} else if value != nil {
				_m.PersonnelID = *value
			}
		case loadentry.FieldDay:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field day", values[i])
			} else if value.Valid {
				_m.Day = value.String
			}
		case loadentry.FieldTimeStart:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field time_start", values[i])
			} else if value.Valid {
				_m.TimeStart = value.String
			}
		case loadentry.FieldTimeEnd:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field time_end", values[i])
			} else if value.Valid {
				_m.TimeEnd = value.String
			}
		case loadentry.FieldSubject:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field subject", values[i])
			} else if value.Valid {
				_m.Subject = value.String
			}
		case loadentry.FieldSection:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field section", values[i])
			} else if value.Valid {
				_m.Section = value.String
			}
		case loadentry.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the LoadEntry.
// This includes values selected through modifiers, order, etc.
func (_m *LoadEntry) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryPersonnel queries the "personnel" edge of the LoadEntry entity.
func (_m *LoadEntry) QueryPersonnel() *PersonnelQuery {
	return NewLoadEntryClient(_m.config).QueryPersonnel(_m)
}

// Update returns a builder for updating this LoadEntry.
// Note that you need to call LoadEntry.Unwrap() before calling this method if this LoadEntry
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *LoadEntry) Update() *LoadEntryUpdateOne {
	return NewLoadEntryClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the LoadEntry entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *LoadEntry) Unwrap() *LoadEntry {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: LoadEntry is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *LoadEntry) String() string {
	var builder strings.Builder
	builder.WriteString("LoadEntry(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("personnel_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.PersonnelID))
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
	builder.WriteString("subject=")
	builder.WriteString(_m.Subject)
	builder.WriteString(", ")
	builder.WriteString("section=")
	builder.WriteString(_m.Section)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// LoadEntries is a parsable slice of LoadEntry.
type LoadEntries []*LoadEntry

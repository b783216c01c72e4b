// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/priya-sndrs/InstSys-CaseStudy-sub000/gen/ent/personnel"
)

// Personnel is the model entity for the Personnel schema.
type Personnel struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Variant holds the value of the "variant" field.
	Variant string `json:"variant,omitempty"`
	// Position holds the value of the "position" field.
	Position string `json:"position,omitempty"`
	// Department holds the value of the "department" field.
	Department string `json:"department,omitempty"`
	// Email holds the value of the "email" field.
	Email string `json:"email,omitempty"`
	// Phone holds the value of the "phone" field.
	Phone string `json:"phone,omitempty"`
	// SssNo holds the value of the "sss_no" field.
	SssNo string `json:"sss_no,omitempty"`
	// PhilhealthNo holds the value of the "philhealth_no" field.
	PhilhealthNo string `json:"philhealth_no,omitempty"`
	// Birthdate holds the value of the "birthdate" field.
	Birthdate string `json:"birthdate,omitempty"`
	// Address holds the value of the "address" field.
	Address string `json:"address,omitempty"`
	// Employment holds the value of the "employment" field.
	Employment string `json:"employment,omitempty"`
	// RecordText holds the value of the "record_text" field.
	RecordText string `json:"record_text,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the PersonnelQuery when eager-loading is set.
	Edges        PersonnelEdges `json:"edges"`
	selectValues sql.SelectValues
}

// PersonnelEdges holds the relations/edges for other nodes in the graph.
type PersonnelEdges struct {
	// Loads holds the value of the loads edge.
	Loads []*LoadEntry `json:"loads,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// LoadsOrErr returns the Loads value or an error if the edge
// was not loaded in eager-loading.
func (e PersonnelEdges) LoadsOrErr() ([]*LoadEntry, error) {
	if e.loadedTypes[0] {
		return e.Loads, nil
	}
	return nil, &NotLoadedError{edge: "loads"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Personnel) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case personnel.FieldName, personnel.FieldVariant, personnel.FieldPosition, personnel.FieldDepartment, personnel.FieldEmail, personnel.FieldPhone, personnel.FieldSssNo, personnel.FieldPhilhealthNo, personnel.FieldBirthdate, personnel.FieldAddress, personnel.FieldEmployment, personnel.FieldRecordText:
			values[i] = new(sql.NullString)
		case personnel.FieldCreatedAt, personnel.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case personnel.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Personnel fields.
func (_m *Personnel) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case personnel.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case personnel.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case personnel.FieldVariant:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field variant", values[i])
			} else if value.Valid {
				_m.Variant = value.String
			}
		case personnel.FieldPosition:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field position", values[i])
			} else if value.Valid {
				_m.Position = value.String
			}
		case personnel.FieldDepartment:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field department", values[i])
			} else if value.Valid {
				_m.Department = value.String
			}
		case personnel.FieldEmail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field email", values[i])
			} else if value.Valid {
				_m.Email = value.String
			}
		case personnel.FieldPhone:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field phone", values[i])
			} else if value.Valid {
				_m.Phone = value.String
			}
		case personnel.FieldSssNo:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field sss_no", values[i])
			} else if value.Valid {
				_m.SssNo = value.String
			}
		case personnel.FieldPhilhealthNo:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field philhealth_no", values[i])
			} else if value.Valid {
				_m.PhilhealthNo = value.String
			}
		case personnel.FieldBirthdate:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field birthdate", values[i])
			} else if value.Valid {
				_m.Birthdate = value.String
			}
		case personnel.FieldAddress:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field address", values[i])
			} else if value.Valid {
				_m.Address = value.String
			}
		case personnel.FieldEmployment:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field employment", values[i])
			} else if value.Valid {
				_m.Employment = value.String
			}
		case personnel.FieldRecordText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field record_text", values[i])
			} else if value.Valid {
				_m.RecordText = value.String
			}
		case personnel.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case personnel.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Personnel.
// This includes values selected through modifiers, order, etc.
func (_m *Personnel) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryLoads queries the "loads" edge of the Personnel entity.
func (_m *Personnel) QueryLoads() *LoadEntryQuery {
	return NewPersonnelClient(_m.config).QueryLoads(_m)
}

// Update returns a builder for updating this Personnel.
// Note that you need to call Personnel.Unwrap() before calling this method if this Personnel
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Personnel) Update() *PersonnelUpdateOne {
	return NewPersonnelClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Personnel entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Personnel) Unwrap() *Personnel {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Personnel is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Personnel) String() string {
	var builder strings.Builder
	builder.WriteString("Personnel(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("variant=")
	builder.WriteString(_m.Variant)
	builder.WriteString(", ")
	builder.WriteString("position=")
	builder.WriteString(_m.Position)
	builder.WriteString(", ")
	builder.WriteString("department=")
	builder.WriteString(_m.Department)
	builder.WriteString(", ")
	builder.WriteString("email=")
	builder.WriteString(_m.Email)
	builder.WriteString(", ")
	builder.WriteString("phone=")
	builder.WriteString(_m.Phone)
	builder.WriteString(", ")
	builder.WriteString("sss_no=")
	builder.WriteString(_m.SssNo)
	builder.WriteString(", ")
	builder.WriteString("philhealth_no=")
	builder.WriteString(_m.PhilhealthNo)
	builder.WriteString(", ")
	builder.WriteString("birthdate=")
	builder.WriteString(_m.Birthdate)
	builder.WriteString(", ")
	builder.WriteString("address=")
	builder.WriteString(_m.Address)
	builder.WriteString(", ")
	builder.WriteString("employment=")
	builder.WriteString(_m.Employment)
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

// Personnels is a parsable slice of Personnel.
type Personnels []*Personnel

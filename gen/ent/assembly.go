// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/voteraction/voter-ingest/gen/ent/assembly"
)

// Assembly is the model entity for the Assembly schema.
type Assembly struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Number holds the value of the "number" field.
	Number int `json:"number,omitempty"`
	// State holds the value of the "state" field.
	State *string `json:"state,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AssemblyQuery when eager-loading is set.
	Edges        AssemblyEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AssemblyEdges holds the relations/edges for other nodes in the graph.
type AssemblyEdges struct {
	// Voters holds the value of the voters edge.
	Voters []*Voter `json:"voters,omitempty"`
	// ImportJobs holds the value of the import_jobs edge.
	ImportJobs []*ImportJob `json:"import_jobs,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// VotersOrErr returns the Voters value or an error if the edge
// was not loaded in eager-loading.
func (e AssemblyEdges) VotersOrErr() ([]*Voter, error) {
	if e.loadedTypes[0] {
		return e.Voters, nil
	}
	return nil, &NotLoadedError{edge: "voters"}
}

// ImportJobsOrErr returns the ImportJobs value or an error if the edge
// was not loaded in eager-loading.
func (e AssemblyEdges) ImportJobsOrErr() ([]*ImportJob, error) {
	if e.loadedTypes[1] {
		return e.ImportJobs, nil
	}
	return nil, &NotLoadedError{edge: "import_jobs"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Assembly) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case assembly.FieldNumber:
			values[i] = new(sql.NullInt64)
		case assembly.FieldName, assembly.FieldState:
			values[i] = new(sql.NullString)
		case assembly.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case assembly.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Assembly fields.
func (_m *Assembly) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case assembly.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case assembly.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case assembly.FieldNumber:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field number", values[i])
			} else if value.Valid {
				_m.Number = int(value.Int64)
			}
		case assembly.FieldState:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field state", values[i])
			} else if value.Valid {
				_m.State = new(string)
				*_m.State = value.String
			}
		case assembly.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Assembly.
// This includes values selected through modifiers, order, etc.
func (_m *Assembly) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryVoters queries the "voters" edge of the Assembly entity.
func (_m *Assembly) QueryVoters() *VoterQuery {
	return NewAssemblyClient(_m.config).QueryVoters(_m)
}

// QueryImportJobs queries the "import_jobs" edge of the Assembly entity.
func (_m *Assembly) QueryImportJobs() *ImportJobQuery {
	return NewAssemblyClient(_m.config).QueryImportJobs(_m)
}

// Update returns a builder for updating this Assembly.
// Note that you need to call Assembly.Unwrap() before calling this method if this Assembly
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Assembly) Update() *AssemblyUpdateOne {
	return NewAssemblyClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Assembly entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Assembly) Unwrap() *Assembly {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Assembly is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Assembly) String() string {
	var builder strings.Builder
	builder.WriteString("Assembly(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("number=")
	builder.WriteString(fmt.Sprintf("%v", _m.Number))
	builder.WriteString(", ")
	if v := _m.State; v != nil {
		builder.WriteString("state=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Assemblies is a parsable slice of Assembly.
type Assemblies []*Assembly

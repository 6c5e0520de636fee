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
	"github.com/voteraction/voter-ingest/gen/ent/importjob"
	"github.com/voteraction/voter-ingest/gen/ent/voter"
)

// Voter is the model entity for the Voter schema.
type Voter struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Epic holds the value of the "epic" field.
	Epic string `json:"epic,omitempty"`
	// AssemblyID holds the value of the "assembly_id" field.
	AssemblyID uuid.UUID `json:"assembly_id,omitempty"`
	// ImportJobID holds the value of the "import_job_id" field.
	ImportJobID *uuid.UUID `json:"import_job_id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// RelativeName holds the value of the "relative_name" field.
	RelativeName string `json:"relative_name,omitempty"`
	// RelationType holds the value of the "relation_type" field.
	RelationType string `json:"relation_type,omitempty"`
	// Age holds the value of the "age" field.
	Age int `json:"age,omitempty"`
	// Gender holds the value of the "gender" field.
	Gender string `json:"gender,omitempty"`
	// HouseNumber holds the value of the "house_number" field.
	HouseNumber string `json:"house_number,omitempty"`
	// BoothNumber holds the value of the "booth_number" field.
	BoothNumber int `json:"booth_number,omitempty"`
	// Village holds the value of the "village" field.
	Village string `json:"village,omitempty"`
	// Area holds the value of the "area" field.
	Area string `json:"area,omitempty"`
	// FamilySize holds the value of the "family_size" field.
	FamilySize int `json:"family_size,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the VoterQuery when eager-loading is set.
	Edges        VoterEdges `json:"edges"`
	selectValues sql.SelectValues
}

// VoterEdges holds the relations/edges for other nodes in the graph.
type VoterEdges struct {
	// Assembly holds the value of the assembly edge.
	Assembly *Assembly `json:"assembly,omitempty"`
	// ImportJob holds the value of the import_job edge.
	ImportJob *ImportJob `json:"import_job,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// AssemblyOrErr returns the Assembly value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e VoterEdges) AssemblyOrErr() (*Assembly, error) {
	if e.Assembly != nil {
		return e.Assembly, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: assembly.Label}
	}
	return nil, &NotLoadedError{edge: "assembly"}
}

// ImportJobOrErr returns the ImportJob value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e VoterEdges) ImportJobOrErr() (*ImportJob, error) {
	if e.ImportJob != nil {
		return e.ImportJob, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: importjob.Label}
	}
	return nil, &NotLoadedError{edge: "import_job"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Voter) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case voter.FieldImportJobID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case voter.FieldAge, voter.FieldBoothNumber, voter.FieldFamilySize:
			values[i] = new(sql.NullInt64)
		case voter.FieldEpic, voter.FieldName, voter.FieldRelativeName, voter.FieldRelationType, voter.FieldGender, voter.FieldHouseNumber, voter.FieldVillage, voter.FieldArea:
			values[i] = new(sql.NullString)
		case voter.FieldCreatedAt, voter.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case voter.FieldID, voter.FieldAssemblyID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Voter fields.
func (_m *Voter) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case voter.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case voter.FieldEpic:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field epic", values[i])
			} else if value.Valid {
				_m.Epic = value.String
			}
		case voter.FieldAssemblyID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field assembly_id", values[i])
			} else if value != nil {
				_m.AssemblyID = *value
			}
		case voter.FieldImportJobID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field import_job_id", values[i])
			} else if value.Valid {
				_m.ImportJobID = new(uuid.UUID)
				*_m.ImportJobID = *value.S.(*uuid.UUID)
			}
		case voter.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case voter.FieldRelativeName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field relative_name", values[i])
			} else if value.Valid {
				_m.RelativeName = value.String
			}
		case voter.FieldRelationType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field relation_type", values[i])
			} else if value.Valid {
				_m.RelationType = value.String
			}
		case voter.FieldAge:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field age", values[i])
			} else if value.Valid {
				_m.Age = int(value.Int64)
			}
		case voter.FieldGender:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field gender", values[i])
			} else if value.Valid {
				_m.Gender = value.String
			}
		case voter.FieldHouseNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field house_number", values[i])
			} else if value.Valid {
				_m.HouseNumber = value.String
			}
		case voter.FieldBoothNumber:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field booth_number", values[i])
			} else if value.Valid {
				_m.BoothNumber = int(value.Int64)
			}
		case voter.FieldVillage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field village", values[i])
			} else if value.Valid {
				_m.Village = value.String
			}
		case voter.FieldArea:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field area", values[i])
			} else if value.Valid {
				_m.Area = value.String
			}
		case voter.FieldFamilySize:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field family_size", values[i])
			} else if value.Valid {
				_m.FamilySize = int(value.Int64)
			}
		case voter.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case voter.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Voter.
// This includes values selected through modifiers, order, etc.
func (_m *Voter) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryAssembly queries the "assembly" edge of the Voter entity.
func (_m *Voter) QueryAssembly() *AssemblyQuery {
	return NewVoterClient(_m.config).QueryAssembly(_m)
}

// QueryImportJob queries the "import_job" edge of the Voter entity.
func (_m *Voter) QueryImportJob() *ImportJobQuery {
	return NewVoterClient(_m.config).QueryImportJob(_m)
}

// Update returns a builder for updating this Voter.
// Note that you need to call Voter.Unwrap() before calling this method if this Voter
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Voter) Update() *VoterUpdateOne {
	return NewVoterClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Voter entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Voter) Unwrap() *Voter {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Voter is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Voter) String() string {
	var builder strings.Builder
	builder.WriteString("Voter(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("epic=")
	builder.WriteString(_m.Epic)
	builder.WriteString(", ")
	builder.WriteString("assembly_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.AssemblyID))
	builder.WriteString(", ")
	if v := _m.ImportJobID; v != nil {
		builder.WriteString("import_job_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("relative_name=")
	builder.WriteString(_m.RelativeName)
	builder.WriteString(", ")
	builder.WriteString("relation_type=")
	builder.WriteString(_m.RelationType)
	builder.WriteString(", ")
	builder.WriteString("age=")
	builder.WriteString(fmt.Sprintf("%v", _m.Age))
	builder.WriteString(", ")
	builder.WriteString("gender=")
	builder.WriteString(_m.Gender)
	builder.WriteString(", ")
	builder.WriteString("house_number=")
	builder.WriteString(_m.HouseNumber)
	builder.WriteString(", ")
	builder.WriteString("booth_number=")
	builder.WriteString(fmt.Sprintf("%v", _m.BoothNumber))
	builder.WriteString(", ")
	builder.WriteString("village=")
	builder.WriteString(_m.Village)
	builder.WriteString(", ")
	builder.WriteString("area=")
	builder.WriteString(_m.Area)
	builder.WriteString(", ")
	builder.WriteString("family_size=")
	builder.WriteString(fmt.Sprintf("%v", _m.FamilySize))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Voters is a parsable slice of Voter.
type Voters []*Voter

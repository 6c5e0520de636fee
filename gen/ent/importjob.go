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
)

// ImportJob is the model entity for the ImportJob schema.
type ImportJob struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// AssemblyID holds the value of the "assembly_id" field.
	AssemblyID uuid.UUID `json:"assembly_id,omitempty"`
	// FileName holds the value of the "file_name" field.
	FileName string `json:"file_name,omitempty"`
	// FilePath holds the value of the "file_path" field.
	FilePath string `json:"file_path,omitempty"`
	// BoothNumber holds the value of the "booth_number" field.
	BoothNumber *int `json:"booth_number,omitempty"`
	// BoothName holds the value of the "booth_name" field.
	BoothName *string `json:"booth_name,omitempty"`
	// CommonAddress holds the value of the "common_address" field.
	CommonAddress *string `json:"common_address,omitempty"`
	// ExpectedCount holds the value of the "expected_count" field.
	ExpectedCount *int `json:"expected_count,omitempty"`
	// StartPage holds the value of the "start_page" field.
	StartPage *int `json:"start_page,omitempty"`
	// EndPage holds the value of the "end_page" field.
	EndPage *int `json:"end_page,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// Progress holds the value of the "progress" field.
	Progress int `json:"progress,omitempty"`
	// TotalVoters holds the value of the "total_voters" field.
	TotalVoters int `json:"total_voters,omitempty"`
	// Logs holds the value of the "logs" field.
	Logs *string `json:"logs,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// AddedAt holds the value of the "added_at" field.
	AddedAt time.Time `json:"added_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ImportJobQuery when eager-loading is set.
	Edges        ImportJobEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ImportJobEdges holds the relations/edges for other nodes in the graph.
type ImportJobEdges struct {
	// Assembly holds the value of the assembly edge.
	Assembly *Assembly `json:"assembly,omitempty"`
	// Voters holds the value of the voters edge.
	Voters []*Voter `json:"voters,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// AssemblyOrErr returns the Assembly value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ImportJobEdges) AssemblyOrErr() (*Assembly, error) {
	if e.Assembly != nil {
		return e.Assembly, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: assembly.Label}
	}
	return nil, &NotLoadedError{edge: "assembly"}
}

// VotersOrErr returns the Voters value or an error if the edge
// was not loaded in eager-loading.
func (e ImportJobEdges) VotersOrErr() ([]*Voter, error) {
	if e.loadedTypes[1] {
		return e.Voters, nil
	}
	return nil, &NotLoadedError{edge: "voters"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ImportJob) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case importjob.FieldBoothNumber, importjob.FieldExpectedCount, importjob.FieldStartPage, importjob.FieldEndPage, importjob.FieldProgress, importjob.FieldTotalVoters:
			values[i] = new(sql.NullInt64)
		case importjob.FieldFileName, importjob.FieldFilePath, importjob.FieldBoothName, importjob.FieldCommonAddress, importjob.FieldStatus, importjob.FieldLogs, importjob.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case importjob.FieldAddedAt, importjob.FieldUpdatedAt, importjob.FieldCompletedAt:
			values[i] = new(sql.NullTime)
		case importjob.FieldID, importjob.FieldAssemblyID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ImportJob fields.
func (_m *ImportJob) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case importjob.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case importjob.FieldAssemblyID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field assembly_id", values[i])
			} else if value != nil {
				_m.AssemblyID = *value
			}
		case importjob.FieldFileName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field file_name", values[i])
			} else if value.Valid {
				_m.FileName = value.String
			}
		case importjob.FieldFilePath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field file_path", values[i])
			} else if value.Valid {
				_m.FilePath = value.String
			}
		case importjob.FieldBoothNumber:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field booth_number", values[i])
			} else if value.Valid {
				_m.BoothNumber = new(int)
				*_m.BoothNumber = int(value.Int64)
			}
		case importjob.FieldBoothName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field booth_name", values[i])
			} else if value.Valid {
				_m.BoothName = new(string)
				*_m.BoothName = value.String
			}
		case importjob.FieldCommonAddress:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field common_address", values[i])
			} else if value.Valid {
				_m.CommonAddress = new(string)
				*_m.CommonAddress = value.String
			}
		case importjob.FieldExpectedCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field expected_count", values[i])
			} else if value.Valid {
				_m.ExpectedCount = new(int)
				*_m.ExpectedCount = int(value.Int64)
			}
		case importjob.FieldStartPage:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field start_page", values[i])
			} else if value.Valid {
				_m.StartPage = new(int)
				*_m.StartPage = int(value.Int64)
			}
		case importjob.FieldEndPage:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field end_page", values[i])
			} else if value.Valid {
				_m.EndPage = new(int)
				*_m.EndPage = int(value.Int64)
			}
		case importjob.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case importjob.FieldProgress:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field progress", values[i])
			} else if value.Valid {
				_m.Progress = int(value.Int64)
			}
		case importjob.FieldTotalVoters:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_voters", values[i])
			} else if value.Valid {
				_m.TotalVoters = int(value.Int64)
			}
		case importjob.FieldLogs:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field logs", values[i])
			} else if value.Valid {
				_m.Logs = new(string)
				*_m.Logs = value.String
			}
		case importjob.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case importjob.FieldAddedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field added_at", values[i])
			} else if value.Valid {
				_m.AddedAt = value.Time
			}
		case importjob.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case importjob.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ImportJob.
// This includes values selected through modifiers, order, etc.
func (_m *ImportJob) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryAssembly queries the "assembly" edge of the ImportJob entity.
func (_m *ImportJob) QueryAssembly() *AssemblyQuery {
	return NewImportJobClient(_m.config).QueryAssembly(_m)
}

// QueryVoters queries the "voters" edge of the ImportJob entity.
func (_m *ImportJob) QueryVoters() *VoterQuery {
	return NewImportJobClient(_m.config).QueryVoters(_m)
}

// Update returns a builder for updating this ImportJob.
// Note that you need to call ImportJob.Unwrap() before calling this method if this ImportJob
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ImportJob) Update() *ImportJobUpdateOne {
	return NewImportJobClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ImportJob entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ImportJob) Unwrap() *ImportJob {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ImportJob is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ImportJob) String() string {
	var builder strings.Builder
	builder.WriteString("ImportJob(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("assembly_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.AssemblyID))
	builder.WriteString(", ")
	builder.WriteString("file_name=")
	builder.WriteString(_m.FileName)
	builder.WriteString(", ")
	builder.WriteString("file_path=")
	builder.WriteString(_m.FilePath)
	builder.WriteString(", ")
	if v := _m.BoothNumber; v != nil {
		builder.WriteString("booth_number=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.BoothName; v != nil {
		builder.WriteString("booth_name=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.CommonAddress; v != nil {
		builder.WriteString("common_address=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ExpectedCount; v != nil {
		builder.WriteString("expected_count=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.StartPage; v != nil {
		builder.WriteString("start_page=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.EndPage; v != nil {
		builder.WriteString("end_page=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	builder.WriteString("progress=")
	builder.WriteString(fmt.Sprintf("%v", _m.Progress))
	builder.WriteString(", ")
	builder.WriteString("total_voters=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalVoters))
	builder.WriteString(", ")
	if v := _m.Logs; v != nil {
		builder.WriteString("logs=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("added_at=")
	builder.WriteString(_m.AddedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// ImportJobs is a parsable slice of ImportJob.
type ImportJobs []*ImportJob

// Code generated by ent, DO NOT EDIT.

package assembly

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the assembly type in the database.
	Label = "assembly"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldNumber holds the string denoting the number field in the database.
	FieldNumber = "number"
	// FieldState holds the string denoting the state field in the database.
	FieldState = "state"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeVoters holds the string denoting the voters edge name in mutations.
	EdgeVoters = "voters"
	// EdgeImportJobs holds the string denoting the import_jobs edge name in mutations.
	EdgeImportJobs = "import_jobs"
	// Table holds the table name of the assembly in the database.
	Table = "assemblies"
	// VotersTable is the table that holds the voters relation/edge.
	VotersTable = "voters"
	// VotersInverseTable is the table name for the Voter entity.
	// It exists in this package in order to avoid circular dependency with the "voter" package.
	VotersInverseTable = "voters"
	// VotersColumn is the table column denoting the voters relation/edge.
	VotersColumn = "assembly_id"
	// ImportJobsTable is the table that holds the import_jobs relation/edge.
	ImportJobsTable = "import_jobs"
	// ImportJobsInverseTable is the table name for the ImportJob entity.
	// It exists in this package in order to avoid circular dependency with the "importjob" package.
	ImportJobsInverseTable = "import_jobs"
	// ImportJobsColumn is the table column denoting the import_jobs relation/edge.
	ImportJobsColumn = "assembly_id"
)

// Columns holds all SQL columns for assembly fields.
var Columns = []string{
	FieldID,
	FieldName,
	FieldNumber,
	FieldState,
	FieldCreatedAt,
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
	// DefaultNumber holds the default value on creation for the "number" field.
	DefaultNumber int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Assembly queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByNumber orders the results by the number field.
func ByNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNumber, opts...).ToFunc()
}

// ByState orders the results by the state field.
func ByState(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldState, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByVotersCount orders the results by voters count.
func ByVotersCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newVotersStep(), opts...)
	}
}

// ByVoters orders the results by voters terms.
func ByVoters(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newVotersStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByImportJobsCount orders the results by import_jobs count.
func ByImportJobsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newImportJobsStep(), opts...)
	}
}

// ByImportJobs orders the results by import_jobs terms.
func ByImportJobs(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newImportJobsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newVotersStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(VotersInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, VotersTable, VotersColumn),
	)
}
func newImportJobsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ImportJobsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ImportJobsTable, ImportJobsColumn),
	)
}

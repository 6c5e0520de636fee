// Code generated by ent, DO NOT EDIT.

package importjob

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the importjob type in the database.
	Label = "import_job"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldAssemblyID holds the string denoting the assembly_id field in the database.
	FieldAssemblyID = "assembly_id"
	// FieldFileName holds the string denoting the file_name field in the database.
	FieldFileName = "file_name"
	// FieldFilePath holds the string denoting the file_path field in the database.
	FieldFilePath = "file_path"
	// FieldBoothNumber holds the string denoting the booth_number field in the database.
	FieldBoothNumber = "booth_number"
	// FieldBoothName holds the string denoting the booth_name field in the database.
	FieldBoothName = "booth_name"
	// FieldCommonAddress holds the string denoting the common_address field in the database.
	FieldCommonAddress = "common_address"
	// FieldExpectedCount holds the string denoting the expected_count field in the database.
	FieldExpectedCount = "expected_count"
	// FieldStartPage holds the string denoting the start_page field in the database.
	FieldStartPage = "start_page"
	// FieldEndPage holds the string denoting the end_page field in the database.
	FieldEndPage = "end_page"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldProgress holds the string denoting the progress field in the database.
	FieldProgress = "progress"
	// FieldTotalVoters holds the string denoting the total_voters field in the database.
	FieldTotalVoters = "total_voters"
	// FieldLogs holds the string denoting the logs field in the database.
	FieldLogs = "logs"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldAddedAt holds the string denoting the added_at field in the database.
	FieldAddedAt = "added_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// EdgeAssembly holds the string denoting the assembly edge name in mutations.
	EdgeAssembly = "assembly"
	// EdgeVoters holds the string denoting the voters edge name in mutations.
	EdgeVoters = "voters"
	// Table holds the table name of the importjob in the database.
	Table = "import_jobs"
	// AssemblyTable is the table that holds the assembly relation/edge.
	AssemblyTable = "import_jobs"
	// AssemblyInverseTable is the table name for the Assembly entity.
	// It exists in this package in order to avoid circular dependency with the "assembly" package.
	AssemblyInverseTable = "assemblies"
	// AssemblyColumn is the table column denoting the assembly relation/edge.
	AssemblyColumn = "assembly_id"
	// VotersTable is the table that holds the voters relation/edge.
	VotersTable = "voters"
	// VotersInverseTable is the table name for the Voter entity.
	// It exists in this package in order to avoid circular dependency with the "voter" package.
	VotersInverseTable = "voters"
	// VotersColumn is the table column denoting the voters relation/edge.
	VotersColumn = "import_job_id"
)

// Columns holds all SQL columns for importjob fields.
var Columns = []string{
	FieldID,
	FieldAssemblyID,
	FieldFileName,
	FieldFilePath,
	FieldBoothNumber,
	FieldBoothName,
	FieldCommonAddress,
	FieldExpectedCount,
	FieldStartPage,
	FieldEndPage,
	FieldStatus,
	FieldProgress,
	FieldTotalVoters,
	FieldLogs,
	FieldErrorMessage,
	FieldAddedAt,
	FieldUpdatedAt,
	FieldCompletedAt,
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
	// FileNameValidator is a validator for the "file_name" field. It is called by the builders before save.
	FileNameValidator func(string) error
	// FilePathValidator is a validator for the "file_path" field. It is called by the builders before save.
	FilePathValidator func(string) error
	// DefaultStatus holds the default value on creation for the "status" field.
	DefaultStatus string
	// StatusValidator is a validator for the "status" field. It is called by the builders before save.
	StatusValidator func(string) error
	// DefaultProgress holds the default value on creation for the "progress" field.
	DefaultProgress int
	// DefaultTotalVoters holds the default value on creation for the "total_voters" field.
	DefaultTotalVoters int
	// DefaultAddedAt holds the default value on creation for the "added_at" field.
	DefaultAddedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the ImportJob queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByAssemblyID orders the results by the assembly_id field.
func ByAssemblyID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAssemblyID, opts...).ToFunc()
}

// ByFileName orders the results by the file_name field.
func ByFileName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFileName, opts...).ToFunc()
}

// ByFilePath orders the results by the file_path field.
func ByFilePath(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFilePath, opts...).ToFunc()
}

// ByBoothNumber orders the results by the booth_number field.
func ByBoothNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBoothNumber, opts...).ToFunc()
}

// ByBoothName orders the results by the booth_name field.
func ByBoothName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBoothName, opts...).ToFunc()
}

// ByCommonAddress orders the results by the common_address field.
func ByCommonAddress(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCommonAddress, opts...).ToFunc()
}

// ByExpectedCount orders the results by the expected_count field.
func ByExpectedCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExpectedCount, opts...).ToFunc()
}

// ByStartPage orders the results by the start_page field.
func ByStartPage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartPage, opts...).ToFunc()
}

// ByEndPage orders the results by the end_page field.
func ByEndPage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEndPage, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByProgress orders the results by the progress field.
func ByProgress(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProgress, opts...).ToFunc()
}

// ByTotalVoters orders the results by the total_voters field.
func ByTotalVoters(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalVoters, opts...).ToFunc()
}

// ByLogs orders the results by the logs field.
func ByLogs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLogs, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByAddedAt orders the results by the added_at field.
func ByAddedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAddedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByAssemblyField orders the results by assembly field.
func ByAssemblyField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAssemblyStep(), sql.OrderByField(field, opts...))
	}
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
func newAssemblyStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AssemblyInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, AssemblyTable, AssemblyColumn),
	)
}
func newVotersStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(VotersInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, VotersTable, VotersColumn),
	)
}

// Code generated by ent, DO NOT EDIT.

package voter

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the voter type in the database.
	Label = "voter"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldEpic holds the string denoting the epic field in the database.
	FieldEpic = "epic"
	// FieldAssemblyID holds the string denoting the assembly_id field in the database.
	FieldAssemblyID = "assembly_id"
	// FieldImportJobID holds the string denoting the import_job_id field in the database.
	FieldImportJobID = "import_job_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldRelativeName holds the string denoting the relative_name field in the database.
	FieldRelativeName = "relative_name"
	// FieldRelationType holds the string denoting the relation_type field in the database.
	FieldRelationType = "relation_type"
	// FieldAge holds the string denoting the age field in the database.
	FieldAge = "age"
	// FieldGender holds the string denoting the gender field in the database.
	FieldGender = "gender"
	// FieldHouseNumber holds the string denoting the house_number field in the database.
	FieldHouseNumber = "house_number"
	// FieldBoothNumber holds the string denoting the booth_number field in the database.
	FieldBoothNumber = "booth_number"
	// FieldVillage holds the string denoting the village field in the database.
	FieldVillage = "village"
	// FieldArea holds the string denoting the area field in the database.
	FieldArea = "area"
	// FieldFamilySize holds the string denoting the family_size field in the database.
	FieldFamilySize = "family_size"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeAssembly holds the string denoting the assembly edge name in mutations.
	EdgeAssembly = "assembly"
	// EdgeImportJob holds the string denoting the import_job edge name in mutations.
	EdgeImportJob = "import_job"
	// Table holds the table name of the voter in the database.
	Table = "voters"
	// AssemblyTable is the table that holds the assembly relation/edge.
	AssemblyTable = "voters"
	// AssemblyInverseTable is the table name for the Assembly entity.
	// It exists in this package in order to avoid circular dependency with the "assembly" package.
	AssemblyInverseTable = "assemblies"
	// AssemblyColumn is the table column denoting the assembly relation/edge.
	AssemblyColumn = "assembly_id"
	// ImportJobTable is the table that holds the import_job relation/edge.
	ImportJobTable = "voters"
	// ImportJobInverseTable is the table name for the ImportJob entity.
	// It exists in this package in order to avoid circular dependency with the "importjob" package.
	ImportJobInverseTable = "import_jobs"
	// ImportJobColumn is the table column denoting the import_job relation/edge.
	ImportJobColumn = "import_job_id"
)

// Columns holds all SQL columns for voter fields.
var Columns = []string{
	FieldID,
	FieldEpic,
	FieldAssemblyID,
	FieldImportJobID,
	FieldName,
	FieldRelativeName,
	FieldRelationType,
	FieldAge,
	FieldGender,
	FieldHouseNumber,
	FieldBoothNumber,
	FieldVillage,
	FieldArea,
	FieldFamilySize,
	FieldCreatedAt,
	FieldUpdatedAt,
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
	// EpicValidator is a validator for the "epic" field. It is called by the builders before save.
	EpicValidator func(string) error
	// DefaultName holds the default value on creation for the "name" field.
	DefaultName string
	// DefaultRelativeName holds the default value on creation for the "relative_name" field.
	DefaultRelativeName string
	// DefaultRelationType holds the default value on creation for the "relation_type" field.
	DefaultRelationType string
	// RelationTypeValidator is a validator for the "relation_type" field. It is called by the builders before save.
	RelationTypeValidator func(string) error
	// DefaultAge holds the default value on creation for the "age" field.
	DefaultAge int
	// DefaultGender holds the default value on creation for the "gender" field.
	DefaultGender string
	// GenderValidator is a validator for the "gender" field. It is called by the builders before save.
	GenderValidator func(string) error
	// DefaultHouseNumber holds the default value on creation for the "house_number" field.
	DefaultHouseNumber string
	// DefaultBoothNumber holds the default value on creation for the "booth_number" field.
	DefaultBoothNumber int
	// DefaultVillage holds the default value on creation for the "village" field.
	DefaultVillage string
	// DefaultArea holds the default value on creation for the "area" field.
	DefaultArea string
	// DefaultFamilySize holds the default value on creation for the "family_size" field.
	DefaultFamilySize int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Voter queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByEpic orders the results by the epic field.
func ByEpic(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEpic, opts...).ToFunc()
}

// ByAssemblyID orders the results by the assembly_id field.
func ByAssemblyID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAssemblyID, opts...).ToFunc()
}

// ByImportJobID orders the results by the import_job_id field.
func ByImportJobID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldImportJobID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByRelativeName orders the results by the relative_name field.
func ByRelativeName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRelativeName, opts...).ToFunc()
}

// ByRelationType orders the results by the relation_type field.
func ByRelationType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRelationType, opts...).ToFunc()
}

// ByAge orders the results by the age field.
func ByAge(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAge, opts...).ToFunc()
}

// ByGender orders the results by the gender field.
func ByGender(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGender, opts...).ToFunc()
}

// ByHouseNumber orders the results by the house_number field.
func ByHouseNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHouseNumber, opts...).ToFunc()
}

// ByBoothNumber orders the results by the booth_number field.
func ByBoothNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBoothNumber, opts...).ToFunc()
}

// ByVillage orders the results by the village field.
func ByVillage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVillage, opts...).ToFunc()
}

// ByArea orders the results by the area field.
func ByArea(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldArea, opts...).ToFunc()
}

// ByFamilySize orders the results by the family_size field.
func ByFamilySize(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFamilySize, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByAssemblyField orders the results by assembly field.
func ByAssemblyField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAssemblyStep(), sql.OrderByField(field, opts...))
	}
}

// ByImportJobField orders the results by import_job field.
func ByImportJobField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newImportJobStep(), sql.OrderByField(field, opts...))
	}
}
func newAssemblyStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AssemblyInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, AssemblyTable, AssemblyColumn),
	)
}
func newImportJobStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ImportJobInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ImportJobTable, ImportJobColumn),
	)
}

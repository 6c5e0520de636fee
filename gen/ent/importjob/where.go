// Code generated by ent, DO NOT EDIT.

package importjob

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/voteraction/voter-ingest/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldLTE(FieldID, id))
}

// AssemblyID applies equality check predicate on the "assembly_id" field. It's identical to AssemblyIDEQ.
func AssemblyID(v uuid.UUID) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldEQ(FieldAssemblyID, v))
}

// FileName applies equality check predicate on the "file_name" field. It's identical to FileNameEQ.
func FileName(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldEQ(FieldFileName, v))
}

// FilePath applies equality check predicate on the "file_path" field. It's identical to FilePathEQ.
func FilePath(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldEQ(FieldFilePath, v))
}

// BoothNumber applies equality check predicate on the "booth_number" field. It's identical to BoothNumberEQ.
func BoothNumber(v int) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldEQ(FieldBoothNumber, v))
}

// BoothName applies equality check predicate on the "booth_name" field. It's identical to BoothNameEQ.
func BoothName(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldEQ(FieldBoothName, v))
}

// CommonAddress applies equality check predicate on the "common_address" field. It's identical to CommonAddressEQ.
func CommonAddress(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldEQ(FieldCommonAddress, v))
}

// ExpectedCount applies equality check predicate on the "expected_count" field. It's identical to ExpectedCountEQ.
func ExpectedCount(v int) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldEQ(FieldExpectedCount, v))
}

// StartPage applies equality check predicate on the "start_page" field. It's identical to StartPageEQ.
func StartPage(v int) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldEQ(FieldStartPage, v))
}

// EndPage applies equality check predicate on the "end_page" field. It's identical to EndPageEQ.
func EndPage(v int) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldEQ(FieldEndPage, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldEQ(FieldStatus, v))
}

// Progress applies equality check predicate on the "progress" field. It's identical to ProgressEQ.
func Progress(v int) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldEQ(FieldProgress, v))
}

// TotalVoters applies equality check predicate on the "total_voters" field. It's identical to TotalVotersEQ.
func TotalVoters(v int) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldEQ(FieldTotalVoters, v))
}

// Logs applies equality check predicate on the "logs" field. It's identical to LogsEQ.
func Logs(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldEQ(FieldLogs, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldEQ(FieldErrorMessage, v))
}

// AddedAt applies equality check predicate on the "added_at" field. It's identical to AddedAtEQ.
func AddedAt(v time.Time) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldEQ(FieldAddedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldEQ(FieldUpdatedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldEQ(FieldCompletedAt, v))
}

// AssemblyIDEQ applies the EQ predicate on the "assembly_id" field.
func AssemblyIDEQ(v uuid.UUID) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldEQ(FieldAssemblyID, v))
}

// AssemblyIDNEQ applies the NEQ predicate on the "assembly_id" field.
func AssemblyIDNEQ(v uuid.UUID) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldNEQ(FieldAssemblyID, v))
}

// AssemblyIDIn applies the In predicate on the "assembly_id" field.
func AssemblyIDIn(vs ...uuid.UUID) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldIn(FieldAssemblyID, vs...))
}

// AssemblyIDNotIn applies the NotIn predicate on the "assembly_id" field.
func AssemblyIDNotIn(vs ...uuid.UUID) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldNotIn(FieldAssemblyID, vs...))
}

// FileNameEQ applies the EQ predicate on the "file_name" field.
func FileNameEQ(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldEQ(FieldFileName, v))
}

// FileNameNEQ applies the NEQ predicate on the "file_name" field.
func FileNameNEQ(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldNEQ(FieldFileName, v))
}

// FileNameIn applies the In predicate on the "file_name" field.
func FileNameIn(vs ...string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldIn(FieldFileName, vs...))
}

// FileNameNotIn applies the NotIn predicate on the "file_name" field.
func FileNameNotIn(vs ...string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldNotIn(FieldFileName, vs...))
}

// FileNameGT applies the GT predicate on the "file_name" field.
func FileNameGT(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldGT(FieldFileName, v))
}

// FileNameGTE applies the GTE predicate on the "file_name" field.
func FileNameGTE(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldGTE(FieldFileName, v))
}

// FileNameLT applies the LT predicate on the "file_name" field.
func FileNameLT(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldLT(FieldFileName, v))
}

// FileNameLTE applies the LTE predicate on the "file_name" field.
func FileNameLTE(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldLTE(FieldFileName, v))
}

// FileNameContains applies the Contains predicate on the "file_name" field.
func FileNameContains(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldContains(FieldFileName, v))
}

// FileNameHasPrefix applies the HasPrefix predicate on the "file_name" field.
func FileNameHasPrefix(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldHasPrefix(FieldFileName, v))
}

// FileNameHasSuffix applies the HasSuffix predicate on the "file_name" field.
func FileNameHasSuffix(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldHasSuffix(FieldFileName, v))
}

// FileNameEqualFold applies the EqualFold predicate on the "file_name" field.
func FileNameEqualFold(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldEqualFold(FieldFileName, v))
}

// FileNameContainsFold applies the ContainsFold predicate on the "file_name" field.
func FileNameContainsFold(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldContainsFold(FieldFileName, v))
}

// FilePathEQ applies the EQ predicate on the "file_path" field.
func FilePathEQ(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldEQ(FieldFilePath, v))
}

// FilePathNEQ applies the NEQ predicate on the "file_path" field.
func FilePathNEQ(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldNEQ(FieldFilePath, v))
}

// FilePathIn applies the In predicate on the "file_path" field.
func FilePathIn(vs ...string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldIn(FieldFilePath, vs...))
}

// FilePathNotIn applies the NotIn predicate on the "file_path" field.
func FilePathNotIn(vs ...string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldNotIn(FieldFilePath, vs...))
}

// FilePathGT applies the GT predicate on the "file_path" field.
func FilePathGT(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldGT(FieldFilePath, v))
}

// FilePathGTE applies the GTE predicate on the "file_path" field.
func FilePathGTE(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldGTE(FieldFilePath, v))
}

// FilePathLT applies the LT predicate on the "file_path" field.
func FilePathLT(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldLT(FieldFilePath, v))
}

// FilePathLTE applies the LTE predicate on the "file_path" field.
func FilePathLTE(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldLTE(FieldFilePath, v))
}

// FilePathContains applies the Contains predicate on the "file_path" field.
func FilePathContains(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldContains(FieldFilePath, v))
}

// FilePathHasPrefix applies the HasPrefix predicate on the "file_path" field.
func FilePathHasPrefix(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldHasPrefix(FieldFilePath, v))
}

// FilePathHasSuffix applies the HasSuffix predicate on the "file_path" field.
func FilePathHasSuffix(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldHasSuffix(FieldFilePath, v))
}

// FilePathEqualFold applies the EqualFold predicate on the "file_path" field.
func FilePathEqualFold(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldEqualFold(FieldFilePath, v))
}

// FilePathContainsFold applies the ContainsFold predicate on the "file_path" field.
func FilePathContainsFold(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldContainsFold(FieldFilePath, v))
}

// BoothNumberEQ applies the EQ predicate on the "booth_number" field.
func BoothNumberEQ(v int) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldEQ(FieldBoothNumber, v))
}

// BoothNumberNEQ applies the NEQ predicate on the "booth_number" field.
func BoothNumberNEQ(v int) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldNEQ(FieldBoothNumber, v))
}

// BoothNumberIn applies the In predicate on the "booth_number" field.
func BoothNumberIn(vs ...int) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldIn(FieldBoothNumber, vs...))
}

// BoothNumberNotIn applies the NotIn predicate on the "booth_number" field.
func BoothNumberNotIn(vs ...int) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldNotIn(FieldBoothNumber, vs...))
}

// BoothNumberGT applies the GT predicate on the "booth_number" field.
func BoothNumberGT(v int) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldGT(FieldBoothNumber, v))
}

// BoothNumberGTE applies the GTE predicate on the "booth_number" field.
func BoothNumberGTE(v int) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldGTE(FieldBoothNumber, v))
}

// BoothNumberLT applies the LT predicate on the "booth_number" field.
func BoothNumberLT(v int) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldLT(FieldBoothNumber, v))
}

// BoothNumberLTE applies the LTE predicate on the "booth_number" field.
func BoothNumberLTE(v int) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldLTE(FieldBoothNumber, v))
}

// BoothNumberIsNil applies the IsNil predicate on the "booth_number" field.
func BoothNumberIsNil() predicate.ImportJob {
	return predicate.ImportJob(sql.FieldIsNull(FieldBoothNumber))
}

// BoothNumberNotNil applies the NotNil predicate on the "booth_number" field.
func BoothNumberNotNil() predicate.ImportJob {
	return predicate.ImportJob(sql.FieldNotNull(FieldBoothNumber))
}

// BoothNameEQ applies the EQ predicate on the "booth_name" field.
func BoothNameEQ(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldEQ(FieldBoothName, v))
}

// BoothNameNEQ applies the NEQ predicate on the "booth_name" field.
func BoothNameNEQ(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldNEQ(FieldBoothName, v))
}

// BoothNameIn applies the In predicate on the "booth_name" field.
func BoothNameIn(vs ...string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldIn(FieldBoothName, vs...))
}

// BoothNameNotIn applies the NotIn predicate on the "booth_name" field.
func BoothNameNotIn(vs ...string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldNotIn(FieldBoothName, vs...))
}

// BoothNameGT applies the GT predicate on the "booth_name" field.
func BoothNameGT(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldGT(FieldBoothName, v))
}

// BoothNameGTE applies the GTE predicate on the "booth_name" field.
func BoothNameGTE(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldGTE(FieldBoothName, v))
}

// BoothNameLT applies the LT predicate on the "booth_name" field.
func BoothNameLT(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldLT(FieldBoothName, v))
}

// BoothNameLTE applies the LTE predicate on the "booth_name" field.
func BoothNameLTE(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldLTE(FieldBoothName, v))
}

// BoothNameContains applies the Contains predicate on the "booth_name" field.
func BoothNameContains(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldContains(FieldBoothName, v))
}

// BoothNameHasPrefix applies the HasPrefix predicate on the "booth_name" field.
func BoothNameHasPrefix(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldHasPrefix(FieldBoothName, v))
}

// BoothNameHasSuffix applies the HasSuffix predicate on the "booth_name" field.
func BoothNameHasSuffix(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldHasSuffix(FieldBoothName, v))
}

// BoothNameIsNil applies the IsNil predicate on the "booth_name" field.
func BoothNameIsNil() predicate.ImportJob {
	return predicate.ImportJob(sql.FieldIsNull(FieldBoothName))
}

// BoothNameNotNil applies the NotNil predicate on the "booth_name" field.
func BoothNameNotNil() predicate.ImportJob {
	return predicate.ImportJob(sql.FieldNotNull(FieldBoothName))
}

// BoothNameEqualFold applies the EqualFold predicate on the "booth_name" field.
func BoothNameEqualFold(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldEqualFold(FieldBoothName, v))
}

// BoothNameContainsFold applies the ContainsFold predicate on the "booth_name" field.
func BoothNameContainsFold(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldContainsFold(FieldBoothName, v))
}

// CommonAddressEQ applies the EQ predicate on the "common_address" field.
func CommonAddressEQ(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldEQ(FieldCommonAddress, v))
}

// CommonAddressNEQ applies the NEQ predicate on the "common_address" field.
func CommonAddressNEQ(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldNEQ(FieldCommonAddress, v))
}

// CommonAddressIn applies the In predicate on the "common_address" field.
func CommonAddressIn(vs ...string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldIn(FieldCommonAddress, vs...))
}

// CommonAddressNotIn applies the NotIn predicate on the "common_address" field.
func CommonAddressNotIn(vs ...string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldNotIn(FieldCommonAddress, vs...))
}

// CommonAddressGT applies the GT predicate on the "common_address" field.
func CommonAddressGT(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldGT(FieldCommonAddress, v))
}

// CommonAddressGTE applies the GTE predicate on the "common_address" field.
func CommonAddressGTE(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldGTE(FieldCommonAddress, v))
}

// CommonAddressLT applies the LT predicate on the "common_address" field.
func CommonAddressLT(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldLT(FieldCommonAddress, v))
}

// CommonAddressLTE applies the LTE predicate on the "common_address" field.
func CommonAddressLTE(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldLTE(FieldCommonAddress, v))
}

// CommonAddressContains applies the Contains predicate on the "common_address" field.
func CommonAddressContains(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldContains(FieldCommonAddress, v))
}

// CommonAddressHasPrefix applies the HasPrefix predicate on the "common_address" field.
func CommonAddressHasPrefix(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldHasPrefix(FieldCommonAddress, v))
}

// CommonAddressHasSuffix applies the HasSuffix predicate on the "common_address" field.
func CommonAddressHasSuffix(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldHasSuffix(FieldCommonAddress, v))
}

// CommonAddressIsNil applies the IsNil predicate on the "common_address" field.
func CommonAddressIsNil() predicate.ImportJob {
	return predicate.ImportJob(sql.FieldIsNull(FieldCommonAddress))
}

// CommonAddressNotNil applies the NotNil predicate on the "common_address" field.
func CommonAddressNotNil() predicate.ImportJob {
	return predicate.ImportJob(sql.FieldNotNull(FieldCommonAddress))
}

// CommonAddressEqualFold applies the EqualFold predicate on the "common_address" field.
func CommonAddressEqualFold(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldEqualFold(FieldCommonAddress, v))
}

// CommonAddressContainsFold applies the ContainsFold predicate on the "common_address" field.
func CommonAddressContainsFold(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldContainsFold(FieldCommonAddress, v))
}

// ExpectedCountEQ applies the EQ predicate on the "expected_count" field.
func ExpectedCountEQ(v int) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldEQ(FieldExpectedCount, v))
}

// ExpectedCountNEQ applies the NEQ predicate on the "expected_count" field.
func ExpectedCountNEQ(v int) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldNEQ(FieldExpectedCount, v))
}

// ExpectedCountIn applies the In predicate on the "expected_count" field.
func ExpectedCountIn(vs ...int) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldIn(FieldExpectedCount, vs...))
}

// ExpectedCountNotIn applies the NotIn predicate on the "expected_count" field.
func ExpectedCountNotIn(vs ...int) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldNotIn(FieldExpectedCount, vs...))
}

// ExpectedCountGT applies the GT predicate on the "expected_count" field.
func ExpectedCountGT(v int) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldGT(FieldExpectedCount, v))
}

// ExpectedCountGTE applies the GTE predicate on the "expected_count" field.
func ExpectedCountGTE(v int) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldGTE(FieldExpectedCount, v))
}

// ExpectedCountLT applies the LT predicate on the "expected_count" field.
func ExpectedCountLT(v int) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldLT(FieldExpectedCount, v))
}

// ExpectedCountLTE applies the LTE predicate on the "expected_count" field.
func ExpectedCountLTE(v int) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldLTE(FieldExpectedCount, v))
}

// ExpectedCountIsNil applies the IsNil predicate on the "expected_count" field.
func ExpectedCountIsNil() predicate.ImportJob {
	return predicate.ImportJob(sql.FieldIsNull(FieldExpectedCount))
}

// ExpectedCountNotNil applies the NotNil predicate on the "expected_count" field.
func ExpectedCountNotNil() predicate.ImportJob {
	return predicate.ImportJob(sql.FieldNotNull(FieldExpectedCount))
}

// StartPageEQ applies the EQ predicate on the "start_page" field.
func StartPageEQ(v int) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldEQ(FieldStartPage, v))
}

// StartPageNEQ applies the NEQ predicate on the "start_page" field.
func StartPageNEQ(v int) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldNEQ(FieldStartPage, v))
}

// StartPageIn applies the In predicate on the "start_page" field.
func StartPageIn(vs ...int) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldIn(FieldStartPage, vs...))
}

// StartPageNotIn applies the NotIn predicate on the "start_page" field.
func StartPageNotIn(vs ...int) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldNotIn(FieldStartPage, vs...))
}

// StartPageGT applies the GT predicate on the "start_page" field.
func StartPageGT(v int) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldGT(FieldStartPage, v))
}

// StartPageGTE applies the GTE predicate on the "start_page" field.
func StartPageGTE(v int) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldGTE(FieldStartPage, v))
}

// StartPageLT applies the LT predicate on the "start_page" field.
func StartPageLT(v int) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldLT(FieldStartPage, v))
}

// StartPageLTE applies the LTE predicate on the "start_page" field.
func StartPageLTE(v int) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldLTE(FieldStartPage, v))
}

// StartPageIsNil applies the IsNil predicate on the "start_page" field.
func StartPageIsNil() predicate.ImportJob {
	return predicate.ImportJob(sql.FieldIsNull(FieldStartPage))
}

// StartPageNotNil applies the NotNil predicate on the "start_page" field.
func StartPageNotNil() predicate.ImportJob {
	return predicate.ImportJob(sql.FieldNotNull(FieldStartPage))
}

// EndPageEQ applies the EQ predicate on the "end_page" field.
func EndPageEQ(v int) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldEQ(FieldEndPage, v))
}

// EndPageNEQ applies the NEQ predicate on the "end_page" field.
func EndPageNEQ(v int) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldNEQ(FieldEndPage, v))
}

// EndPageIn applies the In predicate on the "end_page" field.
func EndPageIn(vs ...int) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldIn(FieldEndPage, vs...))
}

// EndPageNotIn applies the NotIn predicate on the "end_page" field.
func EndPageNotIn(vs ...int) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldNotIn(FieldEndPage, vs...))
}

// EndPageGT applies the GT predicate on the "end_page" field.
func EndPageGT(v int) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldGT(FieldEndPage, v))
}

// EndPageGTE applies the GTE predicate on the "end_page" field.
func EndPageGTE(v int) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldGTE(FieldEndPage, v))
}

// EndPageLT applies the LT predicate on the "end_page" field.
func EndPageLT(v int) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldLT(FieldEndPage, v))
}

// EndPageLTE applies the LTE predicate on the "end_page" field.
func EndPageLTE(v int) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldLTE(FieldEndPage, v))
}

// EndPageIsNil applies the IsNil predicate on the "end_page" field.
func EndPageIsNil() predicate.ImportJob {
	return predicate.ImportJob(sql.FieldIsNull(FieldEndPage))
}

// EndPageNotNil applies the NotNil predicate on the "end_page" field.
func EndPageNotNil() predicate.ImportJob {
	return predicate.ImportJob(sql.FieldNotNull(FieldEndPage))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldContainsFold(FieldStatus, v))
}

// ProgressEQ applies the EQ predicate on the "progress" field.
func ProgressEQ(v int) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldEQ(FieldProgress, v))
}

// ProgressNEQ applies the NEQ predicate on the "progress" field.
func ProgressNEQ(v int) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldNEQ(FieldProgress, v))
}

// ProgressIn applies the In predicate on the "progress" field.
func ProgressIn(vs ...int) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldIn(FieldProgress, vs...))
}

// ProgressNotIn applies the NotIn predicate on the "progress" field.
func ProgressNotIn(vs ...int) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldNotIn(FieldProgress, vs...))
}

// ProgressGT applies the GT predicate on the "progress" field.
func ProgressGT(v int) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldGT(FieldProgress, v))
}

// ProgressGTE applies the GTE predicate on the "progress" field.
func ProgressGTE(v int) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldGTE(FieldProgress, v))
}

// ProgressLT applies the LT predicate on the "progress" field.
func ProgressLT(v int) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldLT(FieldProgress, v))
}

// ProgressLTE applies the LTE predicate on the "progress" field.
func ProgressLTE(v int) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldLTE(FieldProgress, v))
}

// TotalVotersEQ applies the EQ predicate on the "total_voters" field.
func TotalVotersEQ(v int) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldEQ(FieldTotalVoters, v))
}

// TotalVotersNEQ applies the NEQ predicate on the "total_voters" field.
func TotalVotersNEQ(v int) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldNEQ(FieldTotalVoters, v))
}

// TotalVotersIn applies the In predicate on the "total_voters" field.
func TotalVotersIn(vs ...int) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldIn(FieldTotalVoters, vs...))
}

// TotalVotersNotIn applies the NotIn predicate on the "total_voters" field.
func TotalVotersNotIn(vs ...int) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldNotIn(FieldTotalVoters, vs...))
}

// TotalVotersGT applies the GT predicate on the "total_voters" field.
func TotalVotersGT(v int) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldGT(FieldTotalVoters, v))
}

// TotalVotersGTE applies the GTE predicate on the "total_voters" field.
func TotalVotersGTE(v int) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldGTE(FieldTotalVoters, v))
}

// TotalVotersLT applies the LT predicate on the "total_voters" field.
func TotalVotersLT(v int) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldLT(FieldTotalVoters, v))
}

// TotalVotersLTE applies the LTE predicate on the "total_voters" field.
func TotalVotersLTE(v int) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldLTE(FieldTotalVoters, v))
}

// LogsEQ applies the EQ predicate on the "logs" field.
func LogsEQ(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldEQ(FieldLogs, v))
}

// LogsNEQ applies the NEQ predicate on the "logs" field.
func LogsNEQ(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldNEQ(FieldLogs, v))
}

// LogsIn applies the In predicate on the "logs" field.
func LogsIn(vs ...string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldIn(FieldLogs, vs...))
}

// LogsNotIn applies the NotIn predicate on the "logs" field.
func LogsNotIn(vs ...string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldNotIn(FieldLogs, vs...))
}

// LogsGT applies the GT predicate on the "logs" field.
func LogsGT(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldGT(FieldLogs, v))
}

// LogsGTE applies the GTE predicate on the "logs" field.
func LogsGTE(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldGTE(FieldLogs, v))
}

// LogsLT applies the LT predicate on the "logs" field.
func LogsLT(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldLT(FieldLogs, v))
}

// LogsLTE applies the LTE predicate on the "logs" field.
func LogsLTE(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldLTE(FieldLogs, v))
}

// LogsContains applies the Contains predicate on the "logs" field.
func LogsContains(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldContains(FieldLogs, v))
}

// LogsHasPrefix applies the HasPrefix predicate on the "logs" field.
func LogsHasPrefix(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldHasPrefix(FieldLogs, v))
}

// LogsHasSuffix applies the HasSuffix predicate on the "logs" field.
func LogsHasSuffix(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldHasSuffix(FieldLogs, v))
}

// LogsIsNil applies the IsNil predicate on the "logs" field.
func LogsIsNil() predicate.ImportJob {
	return predicate.ImportJob(sql.FieldIsNull(FieldLogs))
}

// LogsNotNil applies the NotNil predicate on the "logs" field.
func LogsNotNil() predicate.ImportJob {
	return predicate.ImportJob(sql.FieldNotNull(FieldLogs))
}

// LogsEqualFold applies the EqualFold predicate on the "logs" field.
func LogsEqualFold(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldEqualFold(FieldLogs, v))
}

// LogsContainsFold applies the ContainsFold predicate on the "logs" field.
func LogsContainsFold(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldContainsFold(FieldLogs, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.ImportJob {
	return predicate.ImportJob(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.ImportJob {
	return predicate.ImportJob(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldContainsFold(FieldErrorMessage, v))
}

// AddedAtEQ applies the EQ predicate on the "added_at" field.
func AddedAtEQ(v time.Time) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldEQ(FieldAddedAt, v))
}

// AddedAtNEQ applies the NEQ predicate on the "added_at" field.
func AddedAtNEQ(v time.Time) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldNEQ(FieldAddedAt, v))
}

// AddedAtIn applies the In predicate on the "added_at" field.
func AddedAtIn(vs ...time.Time) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldIn(FieldAddedAt, vs...))
}

// AddedAtNotIn applies the NotIn predicate on the "added_at" field.
func AddedAtNotIn(vs ...time.Time) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldNotIn(FieldAddedAt, vs...))
}

// AddedAtGT applies the GT predicate on the "added_at" field.
func AddedAtGT(v time.Time) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldGT(FieldAddedAt, v))
}

// AddedAtGTE applies the GTE predicate on the "added_at" field.
func AddedAtGTE(v time.Time) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldGTE(FieldAddedAt, v))
}

// AddedAtLT applies the LT predicate on the "added_at" field.
func AddedAtLT(v time.Time) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldLT(FieldAddedAt, v))
}

// AddedAtLTE applies the LTE predicate on the "added_at" field.
func AddedAtLTE(v time.Time) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldLTE(FieldAddedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldLTE(FieldUpdatedAt, v))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.ImportJob {
	return predicate.ImportJob(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.ImportJob {
	return predicate.ImportJob(sql.FieldNotNull(FieldCompletedAt))
}

// HasAssembly applies the HasEdge predicate on the "assembly" edge.
func HasAssembly() predicate.ImportJob {
	return predicate.ImportJob(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, AssemblyTable, AssemblyColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAssemblyWith applies the HasEdge predicate on the "assembly" edge with a given conditions (other predicates).
func HasAssemblyWith(preds ...predicate.Assembly) predicate.ImportJob {
	return predicate.ImportJob(func(s *sql.Selector) {
		step := newAssemblyStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasVoters applies the HasEdge predicate on the "voters" edge.
func HasVoters() predicate.ImportJob {
	return predicate.ImportJob(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, VotersTable, VotersColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasVotersWith applies the HasEdge predicate on the "voters" edge with a given conditions (other predicates).
func HasVotersWith(preds ...predicate.Voter) predicate.ImportJob {
	return predicate.ImportJob(func(s *sql.Selector) {
		step := newVotersStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ImportJob) predicate.ImportJob {
	return predicate.ImportJob(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ImportJob) predicate.ImportJob {
	return predicate.ImportJob(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ImportJob) predicate.ImportJob {
	return predicate.ImportJob(sql.NotPredicates(p))
}

// Code generated by ent, DO NOT EDIT.

package voter

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/voteraction/voter-ingest/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Voter {
	return predicate.Voter(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Voter {
	return predicate.Voter(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Voter {
	return predicate.Voter(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Voter {
	return predicate.Voter(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Voter {
	return predicate.Voter(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Voter {
	return predicate.Voter(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Voter {
	return predicate.Voter(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Voter {
	return predicate.Voter(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Voter {
	return predicate.Voter(sql.FieldLTE(FieldID, id))
}

// Epic applies equality check predicate on the "epic" field. It's identical to EpicEQ.
func Epic(v string) predicate.Voter {
	return predicate.Voter(sql.FieldEQ(FieldEpic, v))
}

// AssemblyID applies equality check predicate on the "assembly_id" field. It's identical to AssemblyIDEQ.
func AssemblyID(v uuid.UUID) predicate.Voter {
	return predicate.Voter(sql.FieldEQ(FieldAssemblyID, v))
}

// ImportJobID applies equality check predicate on the "import_job_id" field. It's identical to ImportJobIDEQ.
func ImportJobID(v uuid.UUID) predicate.Voter {
	return predicate.Voter(sql.FieldEQ(FieldImportJobID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Voter {
	return predicate.Voter(sql.FieldEQ(FieldName, v))
}

// RelativeName applies equality check predicate on the "relative_name" field. It's identical to RelativeNameEQ.
func RelativeName(v string) predicate.Voter {
	return predicate.Voter(sql.FieldEQ(FieldRelativeName, v))
}

// RelationType applies equality check predicate on the "relation_type" field. It's identical to RelationTypeEQ.
func RelationType(v string) predicate.Voter {
	return predicate.Voter(sql.FieldEQ(FieldRelationType, v))
}

// Age applies equality check predicate on the "age" field. It's identical to AgeEQ.
func Age(v int) predicate.Voter {
	return predicate.Voter(sql.FieldEQ(FieldAge, v))
}

// Gender applies equality check predicate on the "gender" field. It's identical to GenderEQ.
func Gender(v string) predicate.Voter {
	return predicate.Voter(sql.FieldEQ(FieldGender, v))
}

// HouseNumber applies equality check predicate on the "house_number" field. It's identical to HouseNumberEQ.
func HouseNumber(v string) predicate.Voter {
	return predicate.Voter(sql.FieldEQ(FieldHouseNumber, v))
}

// BoothNumber applies equality check predicate on the "booth_number" field. It's identical to BoothNumberEQ.
func BoothNumber(v int) predicate.Voter {
	return predicate.Voter(sql.FieldEQ(FieldBoothNumber, v))
}

// Village applies equality check predicate on the "village" field. It's identical to VillageEQ.
func Village(v string) predicate.Voter {
	return predicate.Voter(sql.FieldEQ(FieldVillage, v))
}

// Area applies equality check predicate on the "area" field. It's identical to AreaEQ.
func Area(v string) predicate.Voter {
	return predicate.Voter(sql.FieldEQ(FieldArea, v))
}

// FamilySize applies equality check predicate on the "family_size" field. It's identical to FamilySizeEQ.
func FamilySize(v int) predicate.Voter {
	return predicate.Voter(sql.FieldEQ(FieldFamilySize, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Voter {
	return predicate.Voter(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Voter {
	return predicate.Voter(sql.FieldEQ(FieldUpdatedAt, v))
}

// EpicEQ applies the EQ predicate on the "epic" field.
func EpicEQ(v string) predicate.Voter {
	return predicate.Voter(sql.FieldEQ(FieldEpic, v))
}

// EpicNEQ applies the NEQ predicate on the "epic" field.
func EpicNEQ(v string) predicate.Voter {
	return predicate.Voter(sql.FieldNEQ(FieldEpic, v))
}

// EpicIn applies the In predicate on the "epic" field.
func EpicIn(vs ...string) predicate.Voter {
	return predicate.Voter(sql.FieldIn(FieldEpic, vs...))
}

// EpicNotIn applies the NotIn predicate on the "epic" field.
func EpicNotIn(vs ...string) predicate.Voter {
	return predicate.Voter(sql.FieldNotIn(FieldEpic, vs...))
}

// EpicGT applies the GT predicate on the "epic" field.
func EpicGT(v string) predicate.Voter {
	return predicate.Voter(sql.FieldGT(FieldEpic, v))
}

// EpicGTE applies the GTE predicate on the "epic" field.
func EpicGTE(v string) predicate.Voter {
	return predicate.Voter(sql.FieldGTE(FieldEpic, v))
}

// EpicLT applies the LT predicate on the "epic" field.
func EpicLT(v string) predicate.Voter {
	return predicate.Voter(sql.FieldLT(FieldEpic, v))
}

// EpicLTE applies the LTE predicate on the "epic" field.
func EpicLTE(v string) predicate.Voter {
	return predicate.Voter(sql.FieldLTE(FieldEpic, v))
}

// EpicContains applies the Contains predicate on the "epic" field.
func EpicContains(v string) predicate.Voter {
	return predicate.Voter(sql.FieldContains(FieldEpic, v))
}

// EpicHasPrefix applies the HasPrefix predicate on the "epic" field.
func EpicHasPrefix(v string) predicate.Voter {
	return predicate.Voter(sql.FieldHasPrefix(FieldEpic, v))
}

// EpicHasSuffix applies the HasSuffix predicate on the "epic" field.
func EpicHasSuffix(v string) predicate.Voter {
	return predicate.Voter(sql.FieldHasSuffix(FieldEpic, v))
}

// EpicEqualFold applies the EqualFold predicate on the "epic" field.
func EpicEqualFold(v string) predicate.Voter {
	return predicate.Voter(sql.FieldEqualFold(FieldEpic, v))
}

// EpicContainsFold applies the ContainsFold predicate on the "epic" field.
func EpicContainsFold(v string) predicate.Voter {
	return predicate.Voter(sql.FieldContainsFold(FieldEpic, v))
}

// AssemblyIDEQ applies the EQ predicate on the "assembly_id" field.
func AssemblyIDEQ(v uuid.UUID) predicate.Voter {
	return predicate.Voter(sql.FieldEQ(FieldAssemblyID, v))
}

// AssemblyIDNEQ applies the NEQ predicate on the "assembly_id" field.
func AssemblyIDNEQ(v uuid.UUID) predicate.Voter {
	return predicate.Voter(sql.FieldNEQ(FieldAssemblyID, v))
}

// AssemblyIDIn applies the In predicate on the "assembly_id" field.
func AssemblyIDIn(vs ...uuid.UUID) predicate.Voter {
	return predicate.Voter(sql.FieldIn(FieldAssemblyID, vs...))
}

// AssemblyIDNotIn applies the NotIn predicate on the "assembly_id" field.
func AssemblyIDNotIn(vs ...uuid.UUID) predicate.Voter {
	return predicate.Voter(sql.FieldNotIn(FieldAssemblyID, vs...))
}

// ImportJobIDEQ applies the EQ predicate on the "import_job_id" field.
func ImportJobIDEQ(v uuid.UUID) predicate.Voter {
	return predicate.Voter(sql.FieldEQ(FieldImportJobID, v))
}

// ImportJobIDNEQ applies the NEQ predicate on the "import_job_id" field.
func ImportJobIDNEQ(v uuid.UUID) predicate.Voter {
	return predicate.Voter(sql.FieldNEQ(FieldImportJobID, v))
}

// ImportJobIDIn applies the In predicate on the "import_job_id" field.
func ImportJobIDIn(vs ...uuid.UUID) predicate.Voter {
	return predicate.Voter(sql.FieldIn(FieldImportJobID, vs...))
}

// ImportJobIDNotIn applies the NotIn predicate on the "import_job_id" field.
func ImportJobIDNotIn(vs ...uuid.UUID) predicate.Voter {
	return predicate.Voter(sql.FieldNotIn(FieldImportJobID, vs...))
}

// ImportJobIDIsNil applies the IsNil predicate on the "import_job_id" field.
func ImportJobIDIsNil() predicate.Voter {
	return predicate.Voter(sql.FieldIsNull(FieldImportJobID))
}

// ImportJobIDNotNil applies the NotNil predicate on the "import_job_id" field.
func ImportJobIDNotNil() predicate.Voter {
	return predicate.Voter(sql.FieldNotNull(FieldImportJobID))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Voter {
	return predicate.Voter(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Voter {
	return predicate.Voter(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Voter {
	return predicate.Voter(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Voter {
	return predicate.Voter(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Voter {
	return predicate.Voter(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Voter {
	return predicate.Voter(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Voter {
	return predicate.Voter(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Voter {
	return predicate.Voter(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Voter {
	return predicate.Voter(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Voter {
	return predicate.Voter(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Voter {
	return predicate.Voter(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Voter {
	return predicate.Voter(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Voter {
	return predicate.Voter(sql.FieldContainsFold(FieldName, v))
}

// RelativeNameEQ applies the EQ predicate on the "relative_name" field.
func RelativeNameEQ(v string) predicate.Voter {
	return predicate.Voter(sql.FieldEQ(FieldRelativeName, v))
}

// RelativeNameNEQ applies the NEQ predicate on the "relative_name" field.
func RelativeNameNEQ(v string) predicate.Voter {
	return predicate.Voter(sql.FieldNEQ(FieldRelativeName, v))
}

// RelativeNameIn applies the In predicate on the "relative_name" field.
func RelativeNameIn(vs ...string) predicate.Voter {
	return predicate.Voter(sql.FieldIn(FieldRelativeName, vs...))
}

// RelativeNameNotIn applies the NotIn predicate on the "relative_name" field.
func RelativeNameNotIn(vs ...string) predicate.Voter {
	return predicate.Voter(sql.FieldNotIn(FieldRelativeName, vs...))
}

// RelativeNameGT applies the GT predicate on the "relative_name" field.
func RelativeNameGT(v string) predicate.Voter {
	return predicate.Voter(sql.FieldGT(FieldRelativeName, v))
}

// RelativeNameGTE applies the GTE predicate on the "relative_name" field.
func RelativeNameGTE(v string) predicate.Voter {
	return predicate.Voter(sql.FieldGTE(FieldRelativeName, v))
}

// RelativeNameLT applies the LT predicate on the "relative_name" field.
func RelativeNameLT(v string) predicate.Voter {
	return predicate.Voter(sql.FieldLT(FieldRelativeName, v))
}

// RelativeNameLTE applies the LTE predicate on the "relative_name" field.
func RelativeNameLTE(v string) predicate.Voter {
	return predicate.Voter(sql.FieldLTE(FieldRelativeName, v))
}

// RelativeNameContains applies the Contains predicate on the "relative_name" field.
func RelativeNameContains(v string) predicate.Voter {
	return predicate.Voter(sql.FieldContains(FieldRelativeName, v))
}

// RelativeNameHasPrefix applies the HasPrefix predicate on the "relative_name" field.
func RelativeNameHasPrefix(v string) predicate.Voter {
	return predicate.Voter(sql.FieldHasPrefix(FieldRelativeName, v))
}

// RelativeNameHasSuffix applies the HasSuffix predicate on the "relative_name" field.
func RelativeNameHasSuffix(v string) predicate.Voter {
	return predicate.Voter(sql.FieldHasSuffix(FieldRelativeName, v))
}

// RelativeNameEqualFold applies the EqualFold predicate on the "relative_name" field.
func RelativeNameEqualFold(v string) predicate.Voter {
	return predicate.Voter(sql.FieldEqualFold(FieldRelativeName, v))
}

// RelativeNameContainsFold applies the ContainsFold predicate on the "relative_name" field.
func RelativeNameContainsFold(v string) predicate.Voter {
	return predicate.Voter(sql.FieldContainsFold(FieldRelativeName, v))
}

// RelationTypeEQ applies the EQ predicate on the "relation_type" field.
func RelationTypeEQ(v string) predicate.Voter {
	return predicate.Voter(sql.FieldEQ(FieldRelationType, v))
}

// RelationTypeNEQ applies the NEQ predicate on the "relation_type" field.
func RelationTypeNEQ(v string) predicate.Voter {
	return predicate.Voter(sql.FieldNEQ(FieldRelationType, v))
}

// RelationTypeIn applies the In predicate on the "relation_type" field.
func RelationTypeIn(vs ...string) predicate.Voter {
	return predicate.Voter(sql.FieldIn(FieldRelationType, vs...))
}

// RelationTypeNotIn applies the NotIn predicate on the "relation_type" field.
func RelationTypeNotIn(vs ...string) predicate.Voter {
	return predicate.Voter(sql.FieldNotIn(FieldRelationType, vs...))
}

// RelationTypeGT applies the GT predicate on the "relation_type" field.
func RelationTypeGT(v string) predicate.Voter {
	return predicate.Voter(sql.FieldGT(FieldRelationType, v))
}

// RelationTypeGTE applies the GTE predicate on the "relation_type" field.
func RelationTypeGTE(v string) predicate.Voter {
	return predicate.Voter(sql.FieldGTE(FieldRelationType, v))
}

// RelationTypeLT applies the LT predicate on the "relation_type" field.
func RelationTypeLT(v string) predicate.Voter {
	return predicate.Voter(sql.FieldLT(FieldRelationType, v))
}

// RelationTypeLTE applies the LTE predicate on the "relation_type" field.
func RelationTypeLTE(v string) predicate.Voter {
	return predicate.Voter(sql.FieldLTE(FieldRelationType, v))
}

// RelationTypeContains applies the Contains predicate on the "relation_type" field.
func RelationTypeContains(v string) predicate.Voter {
	return predicate.Voter(sql.FieldContains(FieldRelationType, v))
}

// RelationTypeHasPrefix applies the HasPrefix predicate on the "relation_type" field.
func RelationTypeHasPrefix(v string) predicate.Voter {
	return predicate.Voter(sql.FieldHasPrefix(FieldRelationType, v))
}

// RelationTypeHasSuffix applies the HasSuffix predicate on the "relation_type" field.
func RelationTypeHasSuffix(v string) predicate.Voter {
	return predicate.Voter(sql.FieldHasSuffix(FieldRelationType, v))
}

// RelationTypeEqualFold applies the EqualFold predicate on the "relation_type" field.
func RelationTypeEqualFold(v string) predicate.Voter {
	return predicate.Voter(sql.FieldEqualFold(FieldRelationType, v))
}

// RelationTypeContainsFold applies the ContainsFold predicate on the "relation_type" field.
func RelationTypeContainsFold(v string) predicate.Voter {
	return predicate.Voter(sql.FieldContainsFold(FieldRelationType, v))
}

// AgeEQ applies the EQ predicate on the "age" field.
func AgeEQ(v int) predicate.Voter {
	return predicate.Voter(sql.FieldEQ(FieldAge, v))
}

// AgeNEQ applies the NEQ predicate on the "age" field.
func AgeNEQ(v int) predicate.Voter {
	return predicate.Voter(sql.FieldNEQ(FieldAge, v))
}

// AgeIn applies the In predicate on the "age" field.
func AgeIn(vs ...int) predicate.Voter {
	return predicate.Voter(sql.FieldIn(FieldAge, vs...))
}

// AgeNotIn applies the NotIn predicate on the "age" field.
func AgeNotIn(vs ...int) predicate.Voter {
	return predicate.Voter(sql.FieldNotIn(FieldAge, vs...))
}

// AgeGT applies the GT predicate on the "age" field.
func AgeGT(v int) predicate.Voter {
	return predicate.Voter(sql.FieldGT(FieldAge, v))
}

// AgeGTE applies the GTE predicate on the "age" field.
func AgeGTE(v int) predicate.Voter {
	return predicate.Voter(sql.FieldGTE(FieldAge, v))
}

// AgeLT applies the LT predicate on the "age" field.
func AgeLT(v int) predicate.Voter {
	return predicate.Voter(sql.FieldLT(FieldAge, v))
}

// AgeLTE applies the LTE predicate on the "age" field.
func AgeLTE(v int) predicate.Voter {
	return predicate.Voter(sql.FieldLTE(FieldAge, v))
}

// GenderEQ applies the EQ predicate on the "gender" field.
func GenderEQ(v string) predicate.Voter {
	return predicate.Voter(sql.FieldEQ(FieldGender, v))
}

// GenderNEQ applies the NEQ predicate on the "gender" field.
func GenderNEQ(v string) predicate.Voter {
	return predicate.Voter(sql.FieldNEQ(FieldGender, v))
}

// GenderIn applies the In predicate on the "gender" field.
func GenderIn(vs ...string) predicate.Voter {
	return predicate.Voter(sql.FieldIn(FieldGender, vs...))
}

// GenderNotIn applies the NotIn predicate on the "gender" field.
func GenderNotIn(vs ...string) predicate.Voter {
	return predicate.Voter(sql.FieldNotIn(FieldGender, vs...))
}

// GenderGT applies the GT predicate on the "gender" field.
func GenderGT(v string) predicate.Voter {
	return predicate.Voter(sql.FieldGT(FieldGender, v))
}

// GenderGTE applies the GTE predicate on the "gender" field.
func GenderGTE(v string) predicate.Voter {
	return predicate.Voter(sql.FieldGTE(FieldGender, v))
}

// GenderLT applies the LT predicate on the "gender" field.
func GenderLT(v string) predicate.Voter {
	return predicate.Voter(sql.FieldLT(FieldGender, v))
}

// GenderLTE applies the LTE predicate on the "gender" field.
func GenderLTE(v string) predicate.Voter {
	return predicate.Voter(sql.FieldLTE(FieldGender, v))
}

// GenderContains applies the Contains predicate on the "gender" field.
func GenderContains(v string) predicate.Voter {
	return predicate.Voter(sql.FieldContains(FieldGender, v))
}

// GenderHasPrefix applies the HasPrefix predicate on the "gender" field.
func GenderHasPrefix(v string) predicate.Voter {
	return predicate.Voter(sql.FieldHasPrefix(FieldGender, v))
}

// GenderHasSuffix applies the HasSuffix predicate on the "gender" field.
func GenderHasSuffix(v string) predicate.Voter {
	return predicate.Voter(sql.FieldHasSuffix(FieldGender, v))
}

// GenderEqualFold applies the EqualFold predicate on the "gender" field.
func GenderEqualFold(v string) predicate.Voter {
	return predicate.Voter(sql.FieldEqualFold(FieldGender, v))
}

// GenderContainsFold applies the ContainsFold predicate on the "gender" field.
func GenderContainsFold(v string) predicate.Voter {
	return predicate.Voter(sql.FieldContainsFold(FieldGender, v))
}

// HouseNumberEQ applies the EQ predicate on the "house_number" field.
func HouseNumberEQ(v string) predicate.Voter {
	return predicate.Voter(sql.FieldEQ(FieldHouseNumber, v))
}

// HouseNumberNEQ applies the NEQ predicate on the "house_number" field.
func HouseNumberNEQ(v string) predicate.Voter {
	return predicate.Voter(sql.FieldNEQ(FieldHouseNumber, v))
}

// HouseNumberIn applies the In predicate on the "house_number" field.
func HouseNumberIn(vs ...string) predicate.Voter {
	return predicate.Voter(sql.FieldIn(FieldHouseNumber, vs...))
}

// HouseNumberNotIn applies the NotIn predicate on the "house_number" field.
func HouseNumberNotIn(vs ...string) predicate.Voter {
	return predicate.Voter(sql.FieldNotIn(FieldHouseNumber, vs...))
}

// HouseNumberGT applies the GT predicate on the "house_number" field.
func HouseNumberGT(v string) predicate.Voter {
	return predicate.Voter(sql.FieldGT(FieldHouseNumber, v))
}

// HouseNumberGTE applies the GTE predicate on the "house_number" field.
func HouseNumberGTE(v string) predicate.Voter {
	return predicate.Voter(sql.FieldGTE(FieldHouseNumber, v))
}

// HouseNumberLT applies the LT predicate on the "house_number" field.
func HouseNumberLT(v string) predicate.Voter {
	return predicate.Voter(sql.FieldLT(FieldHouseNumber, v))
}

// HouseNumberLTE applies the LTE predicate on the "house_number" field.
func HouseNumberLTE(v string) predicate.Voter {
	return predicate.Voter(sql.FieldLTE(FieldHouseNumber, v))
}

// HouseNumberContains applies the Contains predicate on the "house_number" field.
func HouseNumberContains(v string) predicate.Voter {
	return predicate.Voter(sql.FieldContains(FieldHouseNumber, v))
}

// HouseNumberHasPrefix applies the HasPrefix predicate on the "house_number" field.
func HouseNumberHasPrefix(v string) predicate.Voter {
	return predicate.Voter(sql.FieldHasPrefix(FieldHouseNumber, v))
}

// HouseNumberHasSuffix applies the HasSuffix predicate on the "house_number" field.
func HouseNumberHasSuffix(v string) predicate.Voter {
	return predicate.Voter(sql.FieldHasSuffix(FieldHouseNumber, v))
}

// HouseNumberEqualFold applies the EqualFold predicate on the "house_number" field.
func HouseNumberEqualFold(v string) predicate.Voter {
	return predicate.Voter(sql.FieldEqualFold(FieldHouseNumber, v))
}

// HouseNumberContainsFold applies the ContainsFold predicate on the "house_number" field.
func HouseNumberContainsFold(v string) predicate.Voter {
	return predicate.Voter(sql.FieldContainsFold(FieldHouseNumber, v))
}

// BoothNumberEQ applies the EQ predicate on the "booth_number" field.
func BoothNumberEQ(v int) predicate.Voter {
	return predicate.Voter(sql.FieldEQ(FieldBoothNumber, v))
}

// BoothNumberNEQ applies the NEQ predicate on the "booth_number" field.
func BoothNumberNEQ(v int) predicate.Voter {
	return predicate.Voter(sql.FieldNEQ(FieldBoothNumber, v))
}

// BoothNumberIn applies the In predicate on the "booth_number" field.
func BoothNumberIn(vs ...int) predicate.Voter {
	return predicate.Voter(sql.FieldIn(FieldBoothNumber, vs...))
}

// BoothNumberNotIn applies the NotIn predicate on the "booth_number" field.
func BoothNumberNotIn(vs ...int) predicate.Voter {
	return predicate.Voter(sql.FieldNotIn(FieldBoothNumber, vs...))
}

// BoothNumberGT applies the GT predicate on the "booth_number" field.
func BoothNumberGT(v int) predicate.Voter {
	return predicate.Voter(sql.FieldGT(FieldBoothNumber, v))
}

// BoothNumberGTE applies the GTE predicate on the "booth_number" field.
func BoothNumberGTE(v int) predicate.Voter {
	return predicate.Voter(sql.FieldGTE(FieldBoothNumber, v))
}

// BoothNumberLT applies the LT predicate on the "booth_number" field.
func BoothNumberLT(v int) predicate.Voter {
	return predicate.Voter(sql.FieldLT(FieldBoothNumber, v))
}

// BoothNumberLTE applies the LTE predicate on the "booth_number" field.
func BoothNumberLTE(v int) predicate.Voter {
	return predicate.Voter(sql.FieldLTE(FieldBoothNumber, v))
}

// VillageEQ applies the EQ predicate on the "village" field.
func VillageEQ(v string) predicate.Voter {
	return predicate.Voter(sql.FieldEQ(FieldVillage, v))
}

// VillageNEQ applies the NEQ predicate on the "village" field.
func VillageNEQ(v string) predicate.Voter {
	return predicate.Voter(sql.FieldNEQ(FieldVillage, v))
}

// VillageIn applies the In predicate on the "village" field.
func VillageIn(vs ...string) predicate.Voter {
	return predicate.Voter(sql.FieldIn(FieldVillage, vs...))
}

// VillageNotIn applies the NotIn predicate on the "village" field.
func VillageNotIn(vs ...string) predicate.Voter {
	return predicate.Voter(sql.FieldNotIn(FieldVillage, vs...))
}

// VillageGT applies the GT predicate on the "village" field.
func VillageGT(v string) predicate.Voter {
	return predicate.Voter(sql.FieldGT(FieldVillage, v))
}

// VillageGTE applies the GTE predicate on the "village" field.
func VillageGTE(v string) predicate.Voter {
	return predicate.Voter(sql.FieldGTE(FieldVillage, v))
}

// VillageLT applies the LT predicate on the "village" field.
func VillageLT(v string) predicate.Voter {
	return predicate.Voter(sql.FieldLT(FieldVillage, v))
}

// VillageLTE applies the LTE predicate on the "village" field.
func VillageLTE(v string) predicate.Voter {
	return predicate.Voter(sql.FieldLTE(FieldVillage, v))
}

// VillageContains applies the Contains predicate on the "village" field.
func VillageContains(v string) predicate.Voter {
	return predicate.Voter(sql.FieldContains(FieldVillage, v))
}

// VillageHasPrefix applies the HasPrefix predicate on the "village" field.
func VillageHasPrefix(v string) predicate.Voter {
	return predicate.Voter(sql.FieldHasPrefix(FieldVillage, v))
}

// VillageHasSuffix applies the HasSuffix predicate on the "village" field.
func VillageHasSuffix(v string) predicate.Voter {
	return predicate.Voter(sql.FieldHasSuffix(FieldVillage, v))
}

// VillageEqualFold applies the EqualFold predicate on the "village" field.
func VillageEqualFold(v string) predicate.Voter {
	return predicate.Voter(sql.FieldEqualFold(FieldVillage, v))
}

// VillageContainsFold applies the ContainsFold predicate on the "village" field.
func VillageContainsFold(v string) predicate.Voter {
	return predicate.Voter(sql.FieldContainsFold(FieldVillage, v))
}

// AreaEQ applies the EQ predicate on the "area" field.
func AreaEQ(v string) predicate.Voter {
	return predicate.Voter(sql.FieldEQ(FieldArea, v))
}

// AreaNEQ applies the NEQ predicate on the "area" field.
func AreaNEQ(v string) predicate.Voter {
	return predicate.Voter(sql.FieldNEQ(FieldArea, v))
}

// AreaIn applies the In predicate on the "area" field.
func AreaIn(vs ...string) predicate.Voter {
	return predicate.Voter(sql.FieldIn(FieldArea, vs...))
}

// AreaNotIn applies the NotIn predicate on the "area" field.
func AreaNotIn(vs ...string) predicate.Voter {
	return predicate.Voter(sql.FieldNotIn(FieldArea, vs...))
}

// AreaGT applies the GT predicate on the "area" field.
func AreaGT(v string) predicate.Voter {
	return predicate.Voter(sql.FieldGT(FieldArea, v))
}

// AreaGTE applies the GTE predicate on the "area" field.
func AreaGTE(v string) predicate.Voter {
	return predicate.Voter(sql.FieldGTE(FieldArea, v))
}

// AreaLT applies the LT predicate on the "area" field.
func AreaLT(v string) predicate.Voter {
	return predicate.Voter(sql.FieldLT(FieldArea, v))
}

// AreaLTE applies the LTE predicate on the "area" field.
func AreaLTE(v string) predicate.Voter {
	return predicate.Voter(sql.FieldLTE(FieldArea, v))
}

// AreaContains applies the Contains predicate on the "area" field.
func AreaContains(v string) predicate.Voter {
	return predicate.Voter(sql.FieldContains(FieldArea, v))
}

// AreaHasPrefix applies the HasPrefix predicate on the "area" field.
func AreaHasPrefix(v string) predicate.Voter {
	return predicate.Voter(sql.FieldHasPrefix(FieldArea, v))
}

// AreaHasSuffix applies the HasSuffix predicate on the "area" field.
func AreaHasSuffix(v string) predicate.Voter {
	return predicate.Voter(sql.FieldHasSuffix(FieldArea, v))
}

// AreaEqualFold applies the EqualFold predicate on the "area" field.
func AreaEqualFold(v string) predicate.Voter {
	return predicate.Voter(sql.FieldEqualFold(FieldArea, v))
}

// AreaContainsFold applies the ContainsFold predicate on the "area" field.
func AreaContainsFold(v string) predicate.Voter {
	return predicate.Voter(sql.FieldContainsFold(FieldArea, v))
}

// FamilySizeEQ applies the EQ predicate on the "family_size" field.
func FamilySizeEQ(v int) predicate.Voter {
	return predicate.Voter(sql.FieldEQ(FieldFamilySize, v))
}

// FamilySizeNEQ applies the NEQ predicate on the "family_size" field.
func FamilySizeNEQ(v int) predicate.Voter {
	return predicate.Voter(sql.FieldNEQ(FieldFamilySize, v))
}

// FamilySizeIn applies the In predicate on the "family_size" field.
func FamilySizeIn(vs ...int) predicate.Voter {
	return predicate.Voter(sql.FieldIn(FieldFamilySize, vs...))
}

// FamilySizeNotIn applies the NotIn predicate on the "family_size" field.
func FamilySizeNotIn(vs ...int) predicate.Voter {
	return predicate.Voter(sql.FieldNotIn(FieldFamilySize, vs...))
}

// FamilySizeGT applies the GT predicate on the "family_size" field.
func FamilySizeGT(v int) predicate.Voter {
	return predicate.Voter(sql.FieldGT(FieldFamilySize, v))
}

// FamilySizeGTE applies the GTE predicate on the "family_size" field.
func FamilySizeGTE(v int) predicate.Voter {
	return predicate.Voter(sql.FieldGTE(FieldFamilySize, v))
}

// FamilySizeLT applies the LT predicate on the "family_size" field.
func FamilySizeLT(v int) predicate.Voter {
	return predicate.Voter(sql.FieldLT(FieldFamilySize, v))
}

// FamilySizeLTE applies the LTE predicate on the "family_size" field.
func FamilySizeLTE(v int) predicate.Voter {
	return predicate.Voter(sql.FieldLTE(FieldFamilySize, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Voter {
	return predicate.Voter(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Voter {
	return predicate.Voter(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Voter {
	return predicate.Voter(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Voter {
	return predicate.Voter(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Voter {
	return predicate.Voter(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Voter {
	return predicate.Voter(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Voter {
	return predicate.Voter(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Voter {
	return predicate.Voter(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Voter {
	return predicate.Voter(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Voter {
	return predicate.Voter(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Voter {
	return predicate.Voter(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Voter {
	return predicate.Voter(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Voter {
	return predicate.Voter(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Voter {
	return predicate.Voter(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Voter {
	return predicate.Voter(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Voter {
	return predicate.Voter(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasAssembly applies the HasEdge predicate on the "assembly" edge.
func HasAssembly() predicate.Voter {
	return predicate.Voter(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, AssemblyTable, AssemblyColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAssemblyWith applies the HasEdge predicate on the "assembly" edge with a given conditions (other predicates).
func HasAssemblyWith(preds ...predicate.Assembly) predicate.Voter {
	return predicate.Voter(func(s *sql.Selector) {
		step := newAssemblyStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasImportJob applies the HasEdge predicate on the "import_job" edge.
func HasImportJob() predicate.Voter {
	return predicate.Voter(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ImportJobTable, ImportJobColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasImportJobWith applies the HasEdge predicate on the "import_job" edge with a given conditions (other predicates).
func HasImportJobWith(preds ...predicate.ImportJob) predicate.Voter {
	return predicate.Voter(func(s *sql.Selector) {
		step := newImportJobStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Voter) predicate.Voter {
	return predicate.Voter(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Voter) predicate.Voter {
	return predicate.Voter(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Voter) predicate.Voter {
	return predicate.Voter(sql.NotPredicates(p))
}

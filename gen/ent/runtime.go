// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/voteraction/voter-ingest/db/ent/schema"
	"github.com/voteraction/voter-ingest/gen/ent/assembly"
	"github.com/voteraction/voter-ingest/gen/ent/importjob"
	"github.com/voteraction/voter-ingest/gen/ent/voter"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	assemblyFields := schema.Assembly{}.Fields()
	_ = assemblyFields
	// assemblyDescName is the schema descriptor for name field.
	assemblyDescName := assemblyFields[1].Descriptor()
	// assembly.NameValidator is a validator for the "name" field. It is called by the builders before save.
	assembly.NameValidator = assemblyDescName.Validators[0].(func(string) error)
	// assemblyDescNumber is the schema descriptor for number field.
	assemblyDescNumber := assemblyFields[2].Descriptor()
	// assembly.DefaultNumber holds the default value on creation for the number field.
	assembly.DefaultNumber = assemblyDescNumber.Default.(int)
	// assemblyDescCreatedAt is the schema descriptor for created_at field.
	assemblyDescCreatedAt := assemblyFields[4].Descriptor()
	// assembly.DefaultCreatedAt holds the default value on creation for the created_at field.
	assembly.DefaultCreatedAt = assemblyDescCreatedAt.Default.(func() time.Time)
	// assemblyDescID is the schema descriptor for id field.
	assemblyDescID := assemblyFields[0].Descriptor()
	// assembly.DefaultID holds the default value on creation for the id field.
	assembly.DefaultID = assemblyDescID.Default.(func() uuid.UUID)
	importjobFields := schema.ImportJob{}.Fields()
	_ = importjobFields
	// importjobDescFileName is the schema descriptor for file_name field.
	importjobDescFileName := importjobFields[2].Descriptor()
	// importjob.FileNameValidator is a validator for the "file_name" field. It is called by the builders before save.
	importjob.FileNameValidator = importjobDescFileName.Validators[0].(func(string) error)
	// importjobDescFilePath is the schema descriptor for file_path field.
	importjobDescFilePath := importjobFields[3].Descriptor()
	// importjob.FilePathValidator is a validator for the "file_path" field. It is called by the builders before save.
	importjob.FilePathValidator = importjobDescFilePath.Validators[0].(func(string) error)
	// importjobDescStatus is the schema descriptor for status field.
	importjobDescStatus := importjobFields[10].Descriptor()
	// importjob.DefaultStatus holds the default value on creation for the status field.
	importjob.DefaultStatus = importjobDescStatus.Default.(string)
	// importjob.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	importjob.StatusValidator = importjobDescStatus.Validators[0].(func(string) error)
	// importjobDescProgress is the schema descriptor for progress field.
	importjobDescProgress := importjobFields[11].Descriptor()
	// importjob.DefaultProgress holds the default value on creation for the progress field.
	importjob.DefaultProgress = importjobDescProgress.Default.(int)
	// importjobDescTotalVoters is the schema descriptor for total_voters field.
	importjobDescTotalVoters := importjobFields[12].Descriptor()
	// importjob.DefaultTotalVoters holds the default value on creation for the total_voters field.
	importjob.DefaultTotalVoters = importjobDescTotalVoters.Default.(int)
	// importjobDescAddedAt is the schema descriptor for added_at field.
	importjobDescAddedAt := importjobFields[15].Descriptor()
	// importjob.DefaultAddedAt holds the default value on creation for the added_at field.
	importjob.DefaultAddedAt = importjobDescAddedAt.Default.(func() time.Time)
	// importjobDescUpdatedAt is the schema descriptor for updated_at field.
	importjobDescUpdatedAt := importjobFields[16].Descriptor()
	// importjob.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	importjob.DefaultUpdatedAt = importjobDescUpdatedAt.Default.(func() time.Time)
	// importjob.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	importjob.UpdateDefaultUpdatedAt = importjobDescUpdatedAt.UpdateDefault.(func() time.Time)
	// importjobDescID is the schema descriptor for id field.
	importjobDescID := importjobFields[0].Descriptor()
	// importjob.DefaultID holds the default value on creation for the id field.
	importjob.DefaultID = importjobDescID.Default.(func() uuid.UUID)
	voterFields := schema.Voter{}.Fields()
	_ = voterFields
	// voterDescEpic is the schema descriptor for epic field.
	voterDescEpic := voterFields[1].Descriptor()
	// voter.EpicValidator is a validator for the "epic" field. It is called by the builders before save.
	voter.EpicValidator = voterDescEpic.Validators[0].(func(string) error)
	// voterDescName is the schema descriptor for name field.
	voterDescName := voterFields[4].Descriptor()
	// voter.DefaultName holds the default value on creation for the name field.
	voter.DefaultName = voterDescName.Default.(string)
	// voterDescRelativeName is the schema descriptor for relative_name field.
	voterDescRelativeName := voterFields[5].Descriptor()
	// voter.DefaultRelativeName holds the default value on creation for the relative_name field.
	voter.DefaultRelativeName = voterDescRelativeName.Default.(string)
	// voterDescRelationType is the schema descriptor for relation_type field.
	voterDescRelationType := voterFields[6].Descriptor()
	// voter.DefaultRelationType holds the default value on creation for the relation_type field.
	voter.DefaultRelationType = voterDescRelationType.Default.(string)
	// voter.RelationTypeValidator is a validator for the "relation_type" field. It is called by the builders before save.
	voter.RelationTypeValidator = voterDescRelationType.Validators[0].(func(string) error)
	// voterDescAge is the schema descriptor for age field.
	voterDescAge := voterFields[7].Descriptor()
	// voter.DefaultAge holds the default value on creation for the age field.
	voter.DefaultAge = voterDescAge.Default.(int)
	// voterDescGender is the schema descriptor for gender field.
	voterDescGender := voterFields[8].Descriptor()
	// voter.DefaultGender holds the default value on creation for the gender field.
	voter.DefaultGender = voterDescGender.Default.(string)
	// voter.GenderValidator is a validator for the "gender" field. It is called by the builders before save.
	voter.GenderValidator = voterDescGender.Validators[0].(func(string) error)
	// voterDescHouseNumber is the schema descriptor for house_number field.
	voterDescHouseNumber := voterFields[9].Descriptor()
	// voter.DefaultHouseNumber holds the default value on creation for the house_number field.
	voter.DefaultHouseNumber = voterDescHouseNumber.Default.(string)
	// voterDescBoothNumber is the schema descriptor for booth_number field.
	voterDescBoothNumber := voterFields[10].Descriptor()
	// voter.DefaultBoothNumber holds the default value on creation for the booth_number field.
	voter.DefaultBoothNumber = voterDescBoothNumber.Default.(int)
	// voterDescVillage is the schema descriptor for village field.
	voterDescVillage := voterFields[11].Descriptor()
	// voter.DefaultVillage holds the default value on creation for the village field.
	voter.DefaultVillage = voterDescVillage.Default.(string)
	// voterDescArea is the schema descriptor for area field.
	voterDescArea := voterFields[12].Descriptor()
	// voter.DefaultArea holds the default value on creation for the area field.
	voter.DefaultArea = voterDescArea.Default.(string)
	// voterDescFamilySize is the schema descriptor for family_size field.
	voterDescFamilySize := voterFields[13].Descriptor()
	// voter.DefaultFamilySize holds the default value on creation for the family_size field.
	voter.DefaultFamilySize = voterDescFamilySize.Default.(int)
	// voterDescCreatedAt is the schema descriptor for created_at field.
	voterDescCreatedAt := voterFields[14].Descriptor()
	// voter.DefaultCreatedAt holds the default value on creation for the created_at field.
	voter.DefaultCreatedAt = voterDescCreatedAt.Default.(func() time.Time)
	// voterDescUpdatedAt is the schema descriptor for updated_at field.
	voterDescUpdatedAt := voterFields[15].Descriptor()
	// voter.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	voter.DefaultUpdatedAt = voterDescUpdatedAt.Default.(func() time.Time)
	// voter.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	voter.UpdateDefaultUpdatedAt = voterDescUpdatedAt.UpdateDefault.(func() time.Time)
	// voterDescID is the schema descriptor for id field.
	voterDescID := voterFields[0].Descriptor()
	// voter.DefaultID holds the default value on creation for the id field.
	voter.DefaultID = voterDescID.Default.(func() uuid.UUID)
}

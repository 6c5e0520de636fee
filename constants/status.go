package constants

// JobStatus is the canonical status for rows in import_jobs.
type JobStatus string

// Stable values (store these exact strings in DB).
const (
	JobStatusPending    JobStatus = "PENDING"    // submitted, waiting for the worker
	JobStatusProcessing JobStatus = "PROCESSING" // claimed by the worker
	JobStatusCompleted  JobStatus = "COMPLETED"  // terminal success
	JobStatusFailed     JobStatus = "FAILED"     // terminal failure
)

// JobStatuses holds the allowed values for the status field in ImportJob.
var JobStatuses = []string{
	string(JobStatusPending),
	string(JobStatusProcessing),
	string(JobStatusCompleted),
	string(JobStatusFailed),
}

// Valid reports whether s is one of the stable status values.
func (s JobStatus) Valid() bool {
	for _, v := range JobStatuses {
		if string(s) == v {
			return true
		}
	}
	return false
}

// Relation type of the guardian named on a voter record.
const (
	RelationFather  = "Father"
	RelationHusband = "Husband"
	RelationMother  = "Mother"
)

// RelationTypes holds the allowed values for the relation_type field in Voter.
var RelationTypes = []string{RelationFather, RelationHusband, RelationMother}

// Gender codes as stored on Voter rows.
const (
	GenderMale   = "M"
	GenderFemale = "F"
)

// UnknownName is the sentinel used when no usable name could be extracted.
const UnknownName = "Unknown"

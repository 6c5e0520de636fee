// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Assembly is the predicate function for assembly builders.
type Assembly func(*sql.Selector)

// ImportJob is the predicate function for importjob builders.
type ImportJob func(*sql.Selector)

// Voter is the predicate function for voter builders.
type Voter func(*sql.Selector)

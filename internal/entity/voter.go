package entity

import (
	"time"

	"github.com/google/uuid"
)

// Voter represents a persisted elector record for data transfer between layers.
type Voter struct {
	ID           uuid.UUID  `json:"id"`
	EPIC         string     `json:"epic"`
	AssemblyID   uuid.UUID  `json:"assembly_id"`
	ImportJobID  *uuid.UUID `json:"import_job_id,omitempty"`
	Name         string     `json:"name"`
	RelativeName string     `json:"relative_name"`
	RelationType string     `json:"relation_type"`
	Age          int        `json:"age"` // 0 = unknown
	Gender       string     `json:"gender"`
	HouseNumber  string     `json:"house_number"`
	BoothNumber  int        `json:"booth_number"`
	Village      string     `json:"village"`
	Area         string     `json:"area"`
	FamilySize   int        `json:"family_size"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// Assembly represents a constituency for data transfer between layers.
type Assembly struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	Number int       `json:"number"`
	State  *string   `json:"state,omitempty"`
}
